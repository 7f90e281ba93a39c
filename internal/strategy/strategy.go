// Package strategy provides the built-in player strategies. A Player is
// assembled from one component per decision kind, so simulations can mix
// buying, bidding, jail and liquidation behaviours independently.
package strategy

import (
	"github.com/lox/monopolysim/internal/dice"
	"github.com/lox/monopolysim/internal/game"
)

// Buyer decides whether to buy an unowned property landed on.
type Buyer interface {
	ShouldBuy(s *game.State, rng dice.Source, player int, prop game.Property) bool
}

// Bidder proposes auction bids.
type Bidder interface {
	Bid(s *game.State, rng dice.Source, player int, prop game.Property, auction *game.Auction) int
}

// JailPolicy decides how to attempt a jail escape.
type JailPolicy interface {
	Decide(s *game.State, rng dice.Source, player int) game.JailAction
}

// Liquidator picks the assets to sell when cash must be raised.
type Liquidator interface {
	Choose(s *game.State, rng dice.Source, player int, minAmount int) []game.Property
}

// Player binds one decision component of each kind to one player id,
// implementing game.Strategy.
type Player struct {
	ID         int
	Buyer      Buyer
	Bidder     Bidder
	Jail       JailPolicy
	Liquidator Liquidator
}

var _ game.Strategy = (*Player)(nil)

func (p *Player) ShouldBuyProperty(s *game.State, rng dice.Source, prop game.Property) bool {
	return p.Buyer.ShouldBuy(s, rng, p.ID, prop)
}

func (p *Player) BidOnProperty(s *game.State, rng dice.Source, prop game.Property, auction *game.Auction) int {
	return p.Bidder.Bid(s, rng, p.ID, prop, auction)
}

func (p *Player) DecideJailAction(s *game.State, rng dice.Source) game.JailAction {
	return p.Jail.Decide(s, rng, p.ID)
}

func (p *Player) ChooseForcedSaleAssets(s *game.State, rng dice.Source, minAmount int) []game.Property {
	return p.Liquidator.Choose(s, rng, p.ID, minAmount)
}
