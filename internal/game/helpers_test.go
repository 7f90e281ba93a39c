package game

import (
	"testing"

	"github.com/lox/monopolysim/internal/dice"
	"github.com/lox/monopolysim/internal/statistics"
)

// scriptDice returns pre-programmed rolls and performs no shuffling, so card
// decks and player order keep their initial sequence. Running out of
// scripted rolls fails the test.
type scriptDice struct {
	t       *testing.T
	doubles []scriptRoll
	singles []int
}

type scriptRoll struct {
	total    int
	isDouble bool
}

func (s *scriptDice) DoubleRoll() (int, bool) {
	s.t.Helper()
	if len(s.doubles) == 0 {
		s.t.Fatal("unexpected DoubleRoll")
	}
	r := s.doubles[0]
	s.doubles = s.doubles[1:]
	return r.total, r.isDouble
}

func (s *scriptDice) SingleRoll() int {
	s.t.Helper()
	if len(s.singles) == 0 {
		s.t.Fatal("unexpected SingleRoll")
	}
	r := s.singles[0]
	s.singles = s.singles[1:]
	return r
}

func (s *scriptDice) UnitFloat() float64          { return 0 }
func (s *scriptDice) BiasedBool(p float64) bool   { return p >= 1 }
func (s *scriptDice) Shuffle(int, func(i, j int)) {}

// stubStrategy gives fixed answers at every decision point. Forced sales
// always offer every sellable asset in board order.
type stubStrategy struct {
	player int
	buy    bool
	bid    int
	jail   JailAction
}

func (s *stubStrategy) ShouldBuyProperty(*State, dice.Source, Property) bool { return s.buy }

func (s *stubStrategy) BidOnProperty(*State, dice.Source, Property, *Auction) int { return s.bid }

func (s *stubStrategy) DecideJailAction(*State, dice.Source) JailAction { return s.jail }

func (s *stubStrategy) ChooseForcedSaleAssets(st *State, _ dice.Source, _ int) []Property {
	var props []Property
	for _, p := range AllProperties() {
		if st.IsOwner(s.player, p) && st.IsSellable(p) {
			props = append(props, p)
		}
	}
	return props
}

func newTestEngine(t *testing.T, rng dice.Source) (*Engine, *State, [PlayerCount]*stubStrategy) {
	t.Helper()
	state := NewState(DefaultRules(), rng)
	var stubs [PlayerCount]*stubStrategy
	var strategies [PlayerCount]Strategy
	for i := range stubs {
		stubs[i] = &stubStrategy{player: i, jail: RollForDoubles}
		strategies[i] = stubs[i]
	}
	return NewEngine(state, strategies, rng, statistics.New(PlayerCount), nil), state, stubs
}

func newScript(t *testing.T) *scriptDice {
	return &scriptDice{t: t}
}
