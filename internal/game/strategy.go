package game

import "github.com/lox/monopolysim/internal/dice"

// JailAction is a strategy's choice at the start of a jail turn.
type JailAction int

const (
	PayFine JailAction = iota
	UseChanceJailCard
	UseCommunityChestJailCard
	RollForDoubles
)

// Strategy makes the decisions the engine delegates to a player. One
// Strategy instance is bound to one player for one game.
//
// Contracts: ShouldBuyProperty is only called when the player can afford the
// property from cash on hand. DecideJailAction must not choose the fine
// without the cash to pay it, nor a Get Out of Jail Free card the player
// does not own. ChooseForcedSaleAssets must return only currently owned,
// currently sellable assets, in the order they should be sold, and must not
// return an empty list while the player still has sellable assets.
type Strategy interface {
	ShouldBuyProperty(s *State, rng dice.Source, prop Property) bool

	// BidOnProperty proposes a new bid in an auction. Bids that do not
	// strictly exceed the player's previous bid, or that exceed the
	// player's cash on hand, are ignored.
	BidOnProperty(s *State, rng dice.Source, prop Property, auction *Auction) int

	DecideJailAction(s *State, rng dice.Source) JailAction

	ChooseForcedSaleAssets(s *State, rng dice.Source, minAmount int) []Property
}
