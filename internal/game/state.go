package game

import (
	"github.com/lox/monopolysim/internal/board"
	"github.com/lox/monopolysim/internal/dice"
)

// mortgagedStreet is the street development level meaning mortgaged. It is
// mutually exclusive with buildings: levels are -1 mortgaged, 0 none,
// 1-4 houses, 5 hotel.
const mortgagedStreet = -1

const unowned = -1

// TurnState is reset at the start of every turn (and every repeat turn on
// doubles).
type TurnState struct {
	// MovementRoll is the dice total the player moved by this turn; utility
	// rent reads it on a normal landing.
	MovementRoll int

	// RailwayRentMultiplier is 1 normally, 2 after an "advance to next
	// railway" card.
	RailwayRentMultiplier int

	// UtilityDiceOverride is 0 normally; an "advance to next utility" card
	// sets it and utility rent becomes a fresh single-die roll times it.
	UtilityDiceOverride int

	// PositionChanged asserts that every non-bankrupting turn moves the
	// player somewhere.
	PositionChanged bool
}

// Auction holds per-player bids during one property auction. A bid of 0
// means no bid, since a property cannot be won for $0.
type Auction struct {
	Bids [PlayerCount]int
}

// State is the complete dynamic state of one game. It is created fresh per
// game and mutated only by the Engine.
type State struct {
	Rules   Rules
	Players [PlayerCount]Player

	// Round is the number of completed rounds.
	Round int

	Turn TurnState

	streetOwners      [board.StreetCount]int
	streetDevelopment [board.StreetCount]int
	railwayOwners     [board.RailwayCount]int
	railwayMortgaged  [board.RailwayCount]bool
	utilityOwners     [board.UtilityCount]int
	utilityMortgaged  [board.UtilityCount]bool

	chanceDeck         deck
	communityChestDeck deck

	// goojfOwners holds the owner of each deck's Get Out of Jail Free card,
	// indexed by DeckType; unowned while the card is in its deck.
	goojfOwners [deckTypeCount]int
}

// NewState creates the state for a fresh game with shuffled decks.
func NewState(rules Rules, rng dice.Source) *State {
	s := &State{
		Rules:              rules,
		chanceDeck:         newDeck(ChanceCardCount, ChanceGetOutOfJailFree),
		communityChestDeck: newDeck(CommunityChestCardCount, CCGetOutOfJailFree),
	}
	for i := range s.Players {
		s.Players[i] = Player{Cash: rules.InitialCash, BankruptRound: NotBankrupt}
	}
	for i := range s.streetOwners {
		s.streetOwners[i] = unowned
	}
	for i := range s.railwayOwners {
		s.railwayOwners[i] = unowned
	}
	for i := range s.utilityOwners {
		s.utilityOwners[i] = unowned
	}
	for i := range s.goojfOwners {
		s.goojfOwners[i] = unowned
	}
	s.chanceDeck.shuffle(rng)
	s.communityChestDeck.shuffle(rng)
	return s
}

// Player returns the state of the given player.
func (s *State) Player(player int) *Player {
	return &s.Players[player]
}

// SolventPlayers counts players that have not gone bankrupt.
func (s *State) SolventPlayers() int {
	n := 0
	for i := range s.Players {
		if !s.Players[i].Bankrupt() {
			n++
		}
	}
	return n
}

// JailCardOwner returns the player owning the deck's Get Out of Jail Free
// card, or ok=false while the card is in the deck.
func (s *State) JailCardOwner(deck DeckType) (player int, ok bool) {
	owner := s.goojfOwners[deck]
	return owner, owner >= 0
}

// OwnsJailCard reports whether the player owns the deck's Get Out of Jail
// Free card.
func (s *State) OwnsJailCard(player int, deck DeckType) bool {
	return s.goojfOwners[deck] == player
}

// OwnsAnyJailCard reports whether the player owns either Get Out of Jail
// Free card.
func (s *State) OwnsAnyJailCard(player int) bool {
	return s.OwnsJailCard(player, Chance) || s.OwnsJailCard(player, CommunityChest)
}

// TotalWealth sums player cash plus the sell-side value of all owned
// property: listed price plus building value when unmortgaged, half price
// when mortgaged. Individual transactions change it only by the net
// bank-vs-player flow, which the conservation tests rely on.
func (s *State) TotalWealth() int {
	total := 0
	for i := range s.Players {
		total += s.Players[i].Cash
	}
	for _, p := range AllProperties() {
		if _, ok := s.Owner(p); !ok {
			continue
		}
		if s.IsMortgaged(p) {
			total += p.Price() / 2
		} else {
			total += p.Price()
			if p.Kind == StreetProperty {
				set := board.Streets[p.Index].ColourSet
				total += board.BuildingValues[set] * s.StreetBuildingLevel(p.Index)
			}
		}
	}
	return total
}

// CheckInvariants verifies the structural invariants that must hold between
// any two engine operations: terminal zero-cash bankruptcy, single
// ownership, mortgage/development exclusivity and even development within
// colour sets. It panics on violation.
func (s *State) CheckInvariants() {
	for i := range s.Players {
		p := &s.Players[i]
		if p.Bankrupt() {
			assert(p.Cash == 0, "bankrupt player %d holds cash %d", i, p.Cash)
		} else {
			assert(p.Cash >= 0, "player %d has negative cash %d", i, p.Cash)
		}
	}
	for i, level := range s.streetDevelopment {
		assert(level >= mortgagedStreet && level <= 5, "street %d has invalid development %d", i, level)
	}
	for set := 0; set < board.ColourSetCount; set++ {
		minLevel, maxLevel := 5, 0
		for _, st := range board.Streets {
			if st.ColourSet != set {
				continue
			}
			level := s.StreetBuildingLevel(st.Index)
			minLevel = min(minLevel, level)
			maxLevel = max(maxLevel, level)
		}
		assert(maxLevel-minLevel <= 1, "colour set %d unevenly developed (min %d, max %d)", set, minLevel, maxLevel)
	}
}
