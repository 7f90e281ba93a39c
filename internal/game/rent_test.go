package game

import (
	"testing"

	"github.com/lox/monopolysim/internal/board"
)

func TestStreetRentBaseAndFullSet(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Turn = TurnState{RailwayRentMultiplier: 1}
	state.SetOwner(StreetAt(0), 1)

	base := board.StreetRents[0][0]
	if got := e.streetRent(0); got != base {
		t.Errorf("unimproved rent = %d, want %d", got, base)
	}

	// Completing the colour set doubles unimproved rent.
	state.SetOwner(StreetAt(1), 1)
	if got := e.streetRent(0); got != base*board.FullColourSetRentMultiplier {
		t.Errorf("full-set rent = %d, want %d", got, base*board.FullColourSetRentMultiplier)
	}

	// Buildings charge the table rate with no doubling.
	state.streetDevelopment[0] = 3
	if got := e.streetRent(0); got != board.StreetRents[0][3] {
		t.Errorf("developed rent = %d, want %d", got, board.StreetRents[0][3])
	}
}

func TestRailwayRentScalesWithHoldings(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Turn = TurnState{RailwayRentMultiplier: 1}
	state.SetOwner(RailwayAt(0), 1)
	state.SetOwner(RailwayAt(2), 1)

	if got := e.railwayRent(0); got != board.RailwayRents[1] {
		t.Errorf("two-railway rent = %d, want %d", got, board.RailwayRents[1])
	}

	// A card-driven landing doubles railway rent.
	state.Turn.RailwayRentMultiplier = 2
	if got := e.railwayRent(0); got != 2*board.RailwayRents[1] {
		t.Errorf("card rent = %d, want %d", got, 2*board.RailwayRents[1])
	}
}

func TestUtilityRentFromMovementRoll(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Turn = TurnState{RailwayRentMultiplier: 1, MovementRoll: 7}
	state.SetOwner(UtilityAt(0), 1)

	if got := e.utilityRent(0); got != 7*board.UtilityDiceMultipliers[0] {
		t.Errorf("one-utility rent = %d, want %d", got, 7*board.UtilityDiceMultipliers[0])
	}

	state.SetOwner(UtilityAt(1), 1)
	if got := e.utilityRent(0); got != 7*board.UtilityDiceMultipliers[1] {
		t.Errorf("two-utility rent = %d, want %d", got, 7*board.UtilityDiceMultipliers[1])
	}
}

func TestUtilityRentCardOverrideRollsFreshDie(t *testing.T) {
	rng := newScript(t)
	rng.singles = []int{4}
	e, state, _ := newTestEngine(t, rng)
	state.Turn = TurnState{RailwayRentMultiplier: 1, MovementRoll: 7,
		UtilityDiceOverride: board.CardUtilityDiceMultiplier}
	state.SetOwner(UtilityAt(0), 1)

	if got := e.utilityRent(0); got != 4*board.CardUtilityDiceMultiplier {
		t.Errorf("override rent = %d, want %d", got, 4*board.CardUtilityDiceMultiplier)
	}
}

func TestMortgagedPropertyChargesNoRent(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Turn = TurnState{RailwayRentMultiplier: 1}
	state.SetOwner(StreetAt(0), 1)
	state.Mortgage(StreetAt(0))

	e.payRent(0, StreetAt(0))

	if got := state.Player(0).Cash; got != 1500 {
		t.Errorf("payer cash = %d, want 1500", got)
	}
	// A zero-rent landing still counts as a rent event.
	if e.counters.RentPaidCount[0] != 1 || e.counters.RentPaidTotal[0] != 0 {
		t.Errorf("rent counters = %d/%d, want 1/0",
			e.counters.RentPaidCount[0], e.counters.RentPaidTotal[0])
	}
}

func TestLandingOnOwnPropertyIsFree(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Turn = TurnState{RailwayRentMultiplier: 1}
	state.SetOwner(StreetAt(0), 0)

	e.payRent(0, StreetAt(0))

	if got := state.Player(0).Cash; got != 1500 {
		t.Errorf("cash = %d, want 1500", got)
	}
	if e.counters.RentPaidCount[0] != 0 {
		t.Error("landing on own property recorded a rent event")
	}
}

func TestRentTransfersCash(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Turn = TurnState{RailwayRentMultiplier: 1}
	state.SetOwner(StreetAt(0), 1)
	state.SetOwner(StreetAt(1), 1)

	e.payRent(0, StreetAt(0))

	rent := board.StreetRents[0][0] * board.FullColourSetRentMultiplier
	if got := state.Player(0).Cash; got != 1500-rent {
		t.Errorf("payer cash = %d, want %d", got, 1500-rent)
	}
	if got := state.Player(1).Cash; got != 1500+rent {
		t.Errorf("owner cash = %d, want %d", got, 1500+rent)
	}
	if e.counters.RentPaidTotal[0] != uint64(rent) || e.counters.RentReceivedTotal[1] != uint64(rent) {
		t.Error("rent counters do not match the transfer")
	}
}

func TestCountersRecordAssessedRentOnShortfall(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Turn = TurnState{RailwayRentMultiplier: 1}
	state.Player(0).Cash = 5
	for i := 0; i < board.RailwayCount; i++ {
		state.SetOwner(RailwayAt(i), 1)
	}

	e.payRent(0, RailwayAt(0))

	assessed := board.RailwayRents[board.RailwayCount-1]
	if !state.Player(0).Bankrupt() {
		t.Fatal("expected bankruptcy")
	}
	if got := state.Player(1).Cash; got != 1505 {
		t.Errorf("owner cash = %d, want 1505", got)
	}
	if e.counters.RentPaidTotal[0] != uint64(assessed) {
		t.Errorf("RentPaidTotal[0] = %d, want assessed rent %d",
			e.counters.RentPaidTotal[0], assessed)
	}
	if e.counters.RentReceivedTotal[1] != uint64(assessed) {
		t.Errorf("RentReceivedTotal[1] = %d, want assessed rent %d",
			e.counters.RentReceivedTotal[1], assessed)
	}
}
