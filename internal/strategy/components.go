package strategy

import (
	"github.com/lox/monopolysim/internal/dice"
	"github.com/lox/monopolysim/internal/game"
)

// RandomBuyer buys an affordable property with a fixed probability.
type RandomBuyer struct {
	// Probability of buying, in [0, 1].
	Probability float64
}

func (b RandomBuyer) ShouldBuy(s *game.State, rng dice.Source, player int, prop game.Property) bool {
	if s.Player(player).Cash < prop.Price() {
		return false
	}
	return rng.BiasedBool(b.Probability)
}

// PricedBidder bids once per auction, uniformly distributed around the
// property's listed price:
//
//	mean = price * (1 + CentreAdjust)
//	bid  ~ uniform over [mean - Width*price/2, mean + Width*price/2]
//
// Once the bidder has a standing bid it never raises.
type PricedBidder struct {
	CentreAdjust float64 // shift of the mean, as a fraction of the price
	Width        float64 // spread, as a fraction of the price
}

func (b PricedBidder) Bid(s *game.State, rng dice.Source, player int, prop game.Property, auction *game.Auction) int {
	if auction.Bids[player] != 0 {
		return 0
	}
	price := float64(prop.Price())
	width := price * b.Width
	mean := price * (1 + b.CentreAdjust)
	bid := rng.UnitFloat()*width + (mean - width/2)
	if bid < 0 {
		return 0
	}
	return int(bid)
}

// TurnThresholdJail escapes jail by fixed per-turn thresholds: play a Get
// Out of Jail Free card once UseCardTurn jail turns have passed, pay the
// fine once PayFineTurn have, otherwise roll for doubles. Turns count from
// 0; set a threshold beyond the jail limit to disable that escape.
type TurnThresholdJail struct {
	UseCardTurn int
	PayFineTurn int
}

// NeverEscape is a threshold that disables an escape under any rules.
const NeverEscape = 999

func (j TurnThresholdJail) Decide(s *game.State, rng dice.Source, player int) game.JailAction {
	p := s.Player(player)
	turn := p.Position + s.Rules.MaxTurnsInJail

	if turn >= j.UseCardTurn {
		if s.OwnsJailCard(player, game.Chance) {
			return game.UseChanceJailCard
		}
		if s.OwnsJailCard(player, game.CommunityChest) {
			return game.UseCommunityChestJailCard
		}
	}
	if turn >= j.PayFineTurn && p.Cash >= s.Rules.JailFine {
		return game.PayFine
	}
	return game.RollForDoubles
}

// OrderedLiquidator sells undeveloped streets first (in board order, which
// is cheapest first), then utilities, then railways, choosing just enough to
// cover the requested amount.
type OrderedLiquidator struct{}

func (OrderedLiquidator) Choose(s *game.State, rng dice.Source, player int, minAmount int) []game.Property {
	var choices []game.Property
	remaining := minAmount

	for _, prop := range game.AllProperties() {
		if !s.IsOwner(player, prop) || !s.IsSellable(prop) {
			continue
		}
		choices = append(choices, prop)
		remaining -= prop.SellValue()
		if remaining <= 0 {
			break
		}
	}
	return choices
}
