// Package statistics accumulates per-game outcome counters and derives the
// aggregate figures reported at the end of a simulation run. Counters are
// private to one worker during simulation and merged by summation afterwards;
// nothing in here is safe for concurrent mutation and nothing needs to be.
package statistics

import "fmt"

// JailBucket is the board-space count bucket used for players in jail, one
// past the last real board index.
const JailBucket = 40

// Counters tracks raw event counts for a batch of simulated games. All
// fields are plain sums so that merging worker results is a field-wise
// addition.
type Counters struct {
	Games  uint64
	Rounds uint64

	// Per-player sums, indexed by player id.
	TurnsPlayed       []uint64
	Wins              []uint64 // games finished at rank 0 (outright or shared)
	RankSum           []uint64 // 0 = first place
	NetWorthSum       []uint64
	RentPaidTotal     []uint64
	RentPaidCount     []uint64
	RentReceivedTotal []uint64
	RentReceivedCount []uint64
	SentToJail        []uint64
	JailFinesPaid     []uint64
	CardsDrawn        []uint64
	CardAwardTotal    []uint64
	CardAwardCount    []uint64
	CardFeeTotal      []uint64
	CardFeeCount      []uint64
	Bankruptcies      []uint64
	PropertiesBought  []uint64

	// BoardSpaceCounts[i] counts every time a player occupies space i during
	// a turn. Index JailBucket is In Jail.
	BoardSpaceCounts [JailBucket + 1]uint64
	// PositionCount is the total number of position updates.
	PositionCount uint64

	// JailDuration is total turns any player spent in jail. Entering and
	// leaving on the next turn counts as 1.
	JailDuration uint64

	// GameLengths counts finished games by their round count.
	GameLengths map[int]uint64
}

// New returns zeroed counters for the given number of players.
func New(players int) *Counters {
	return &Counters{
		TurnsPlayed:       make([]uint64, players),
		Wins:              make([]uint64, players),
		RankSum:           make([]uint64, players),
		NetWorthSum:       make([]uint64, players),
		RentPaidTotal:     make([]uint64, players),
		RentPaidCount:     make([]uint64, players),
		RentReceivedTotal: make([]uint64, players),
		RentReceivedCount: make([]uint64, players),
		SentToJail:        make([]uint64, players),
		JailFinesPaid:     make([]uint64, players),
		CardsDrawn:        make([]uint64, players),
		CardAwardTotal:    make([]uint64, players),
		CardAwardCount:    make([]uint64, players),
		CardFeeTotal:      make([]uint64, players),
		CardFeeCount:      make([]uint64, players),
		Bankruptcies:      make([]uint64, players),
		PropertiesBought:  make([]uint64, players),
		GameLengths:       make(map[int]uint64),
	}
}

// Players returns the number of players these counters cover.
func (c *Counters) Players() int {
	return len(c.TurnsPlayed)
}

// Merge adds another set of counters into this one. Both must cover the same
// number of players.
func (c *Counters) Merge(other *Counters) error {
	if c.Players() != other.Players() {
		return fmt.Errorf("cannot merge counters for %d players into counters for %d players",
			other.Players(), c.Players())
	}

	c.Games += other.Games
	c.Rounds += other.Rounds
	c.PositionCount += other.PositionCount
	c.JailDuration += other.JailDuration

	for i := range c.BoardSpaceCounts {
		c.BoardSpaceCounts[i] += other.BoardSpaceCounts[i]
	}
	for rounds, n := range other.GameLengths {
		c.GameLengths[rounds] += n
	}

	addInto(c.TurnsPlayed, other.TurnsPlayed)
	addInto(c.Wins, other.Wins)
	addInto(c.RankSum, other.RankSum)
	addInto(c.NetWorthSum, other.NetWorthSum)
	addInto(c.RentPaidTotal, other.RentPaidTotal)
	addInto(c.RentPaidCount, other.RentPaidCount)
	addInto(c.RentReceivedTotal, other.RentReceivedTotal)
	addInto(c.RentReceivedCount, other.RentReceivedCount)
	addInto(c.SentToJail, other.SentToJail)
	addInto(c.JailFinesPaid, other.JailFinesPaid)
	addInto(c.CardsDrawn, other.CardsDrawn)
	addInto(c.CardAwardTotal, other.CardAwardTotal)
	addInto(c.CardAwardCount, other.CardAwardCount)
	addInto(c.CardFeeTotal, other.CardFeeTotal)
	addInto(c.CardFeeCount, other.CardFeeCount)
	addInto(c.Bankruptcies, other.Bankruptcies)
	addInto(c.PropertiesBought, other.PropertiesBought)
	return nil
}

func addInto(dst, src []uint64) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// Validate performs consistency checks on accumulated counters.
func (c *Counters) Validate() error {
	if c.Games == 0 {
		return fmt.Errorf("no games recorded")
	}

	var lengthGames uint64
	for _, n := range c.GameLengths {
		lengthGames += n
	}
	if lengthGames != c.Games {
		return fmt.Errorf("game length histogram covers %d games, expected %d", lengthGames, c.Games)
	}

	var spaceTotal uint64
	for _, n := range c.BoardSpaceCounts {
		spaceTotal += n
	}
	if spaceTotal != c.PositionCount {
		return fmt.Errorf("board space counts sum to %d, expected position count %d", spaceTotal, c.PositionCount)
	}

	for p := range c.RentPaidCount {
		if c.RentPaidCount[p] == 0 && c.RentPaidTotal[p] != 0 {
			return fmt.Errorf("player %d has rent paid total %d with zero payments", p, c.RentPaidTotal[p])
		}
	}

	var wins uint64
	for _, w := range c.Wins {
		wins += w
	}
	if wins < c.Games {
		return fmt.Errorf("recorded %d wins across %d games", wins, c.Games)
	}
	return nil
}

// MeanGameLength is the mean number of rounds per game.
func (c *Counters) MeanGameLength() float64 {
	if c.Games == 0 {
		return 0
	}
	return float64(c.Rounds) / float64(c.Games)
}

// WinRate is the fraction of games the player finished at rank 0.
func (c *Counters) WinRate(player int) float64 {
	if c.Games == 0 {
		return 0
	}
	return float64(c.Wins[player]) / float64(c.Games)
}

// MeanRank is the player's mean final rank (0 = first place).
func (c *Counters) MeanRank(player int) float64 {
	if c.Games == 0 {
		return 0
	}
	return float64(c.RankSum[player]) / float64(c.Games)
}

// MeanNetWorth is the player's mean end-of-game net worth.
func (c *Counters) MeanNetWorth(player int) float64 {
	if c.Games == 0 {
		return 0
	}
	return float64(c.NetWorthSum[player]) / float64(c.Games)
}

// MeanRentPaid is the player's mean rent paid per game.
func (c *Counters) MeanRentPaid(player int) float64 {
	if c.Games == 0 {
		return 0
	}
	return float64(c.RentPaidTotal[player]) / float64(c.Games)
}

// MeanRentReceived is the player's mean rent received per game.
func (c *Counters) MeanRentReceived(player int) float64 {
	if c.Games == 0 {
		return 0
	}
	return float64(c.RentReceivedTotal[player]) / float64(c.Games)
}

// SpaceFrequency is the relative frequency of a board space (index 40 = In
// Jail) over all position updates.
func (c *Counters) SpaceFrequency(space int) float64 {
	if c.PositionCount == 0 {
		return 0
	}
	return float64(c.BoardSpaceCounts[space]) / float64(c.PositionCount)
}

// MeanJailDuration is the mean stay length in turns across all times any
// player was sent to jail.
func (c *Counters) MeanJailDuration() float64 {
	var sentTotal uint64
	for _, n := range c.SentToJail {
		sentTotal += n
	}
	if sentTotal == 0 {
		return 0
	}
	return float64(c.JailDuration) / float64(sentTotal)
}

// BankruptcyRate is the fraction of games the player went bankrupt in.
func (c *Counters) BankruptcyRate(player int) float64 {
	if c.Games == 0 {
		return 0
	}
	return float64(c.Bankruptcies[player]) / float64(c.Games)
}
