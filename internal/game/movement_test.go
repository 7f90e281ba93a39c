package game

import (
	"testing"

	"github.com/lox/monopolysim/internal/board"
	"github.com/lox/monopolysim/internal/statistics"
)

func TestAdvanceWithoutPassingGo(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Player(0).Position = 5

	e.advanceBySpaces(0, 3)

	if got := state.Player(0).Position; got != 8 {
		t.Errorf("position = %d, want 8", got)
	}
	if got := state.Player(0).Cash; got != 1500 {
		t.Errorf("cash = %d, want 1500 (no Go salary)", got)
	}
	if e.counters.BoardSpaceCounts[8] != 1 || e.counters.PositionCount != 1 {
		t.Error("position update not counted")
	}
}

func TestAdvancePassingGoPaysSalary(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Player(0).Position = 38

	e.advanceBySpaces(0, 5)

	if got := state.Player(0).Position; got != 3 {
		t.Errorf("position = %d, want 3", got)
	}
	if got := state.Player(0).Cash; got != 1700 {
		t.Errorf("cash = %d, want 1700", got)
	}
}

func TestAdvanceLandingOnGoPaysSalary(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Player(0).Position = 35

	e.advanceBySpaces(0, 5)

	if got := state.Player(0).Position; got != board.GoSpace {
		t.Errorf("position = %d, want Go", got)
	}
	if got := state.Player(0).Cash; got != 1700 {
		t.Errorf("cash = %d, want 1700", got)
	}
}

func TestAdvanceToSpaceWrapsPastGo(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Player(0).Position = 30

	e.advanceToSpace(0, board.KingsCrossSpace)

	if got := state.Player(0).Position; got != board.KingsCrossSpace {
		t.Errorf("position = %d, want %d", got, board.KingsCrossSpace)
	}
	if got := state.Player(0).Cash; got != 1700 {
		t.Errorf("cash = %d, want 1700", got)
	}
}

func TestRetreatBySpaces(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Player(0).Position = 7

	e.retreatBySpaces(0, 3)

	if got := state.Player(0).Position; got != 4 {
		t.Errorf("position = %d, want 4", got)
	}
	if got := state.Player(0).Cash; got != 1500 {
		t.Errorf("cash = %d, want 1500", got)
	}
}

func TestGoToJail(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Player(0).Position = 30

	e.goToJail(0)

	p := state.Player(0)
	if !p.InJail() {
		t.Fatal("player not in jail")
	}
	if p.Position != -state.Rules.MaxTurnsInJail {
		t.Errorf("jail counter = %d, want %d", p.Position, -state.Rules.MaxTurnsInJail)
	}
	if e.counters.SentToJail[0] != 1 {
		t.Errorf("SentToJail[0] = %d, want 1", e.counters.SentToJail[0])
	}
	if e.counters.BoardSpaceCounts[statistics.JailBucket] != 1 {
		t.Error("jail visit not counted in the jail bucket")
	}
	if got := p.Cash; got != 1500 {
		t.Errorf("cash = %d, want 1500 (no salary on the way to jail)", got)
	}
}
