// Package report renders simulation statistics for the terminal.
package report

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/monopolysim/internal/board"
	"github.com/lox/monopolysim/internal/statistics"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	spaceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))
)

// TopSpaces is how many board spaces the frequency section lists.
const TopSpaces = 10

// Render formats the merged simulation counters as a multi-section summary.
func Render(c *statistics.Counters) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("=== SIMULATION RESULTS ==="))
	b.WriteString("\n")
	writeOverview(&b, c)

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("=== PLAYERS ==="))
	b.WriteString("\n")
	writePlayerTable(&b, c)

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("=== MOST VISITED SPACES ==="))
	b.WriteString("\n")
	writeSpaceFrequencies(&b, c)

	return b.String()
}

func writeOverview(b *strings.Builder, c *statistics.Counters) {
	line := func(label, value string) {
		fmt.Fprintf(b, "%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
	}
	line("Games", fmt.Sprintf("%d", c.Games))
	line("Mean game length", fmt.Sprintf("%.1f rounds", c.MeanGameLength()))
	line("Mean jail stay", fmt.Sprintf("%.2f turns", c.MeanJailDuration()))
	line("In-jail frequency", fmt.Sprintf("%.2f%%", c.SpaceFrequency(statistics.JailBucket)*100))
}

func writePlayerTable(b *strings.Builder, c *statistics.Counters) {
	w := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "player\twin rate\tmean rank\tnet worth\trent paid\trent received\tbankrupt\tjailed")
	for p := 0; p < c.Players(); p++ {
		fmt.Fprintf(w, "%d\t%.1f%%\t%.2f\t%.0f\t%.0f\t%.0f\t%.1f%%\t%d\n",
			p,
			c.WinRate(p)*100,
			c.MeanRank(p),
			c.MeanNetWorth(p),
			c.MeanRentPaid(p),
			c.MeanRentReceived(p),
			c.BankruptcyRate(p)*100,
			c.SentToJail[p],
		)
	}
	w.Flush()
}

func writeSpaceFrequencies(b *strings.Builder, c *statistics.Counters) {
	spaces := make([]int, statistics.JailBucket+1)
	for i := range spaces {
		spaces[i] = i
	}
	sort.Slice(spaces, func(i, j int) bool {
		return c.BoardSpaceCounts[spaces[i]] > c.BoardSpaceCounts[spaces[j]]
	})

	w := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	for _, space := range spaces[:TopSpaces] {
		name := board.SpaceName(space)
		fmt.Fprintf(w, "%s\t%.2f%%\n", spaceStyle.Render(name), c.SpaceFrequency(space)*100)
	}
	w.Flush()
}
