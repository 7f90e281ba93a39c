package strategy

import "github.com/lox/monopolysim/internal/game"

// DefaultCentreAdjusts are the stock per-player auction bid adjustments:
// one player bids list price, the others bid below or above it.
var DefaultCentreAdjusts = [game.PlayerCount]float64{0, -0.25, 0.25, -0.5}

// Default returns the stock strategy for a player: never buy on landing
// (acquisition happens at auction), bid a fixed fraction of list price, sit
// out jail rolling for doubles, and liquidate cheapest assets first.
func Default(player int) *Player {
	return &Player{
		ID:         player,
		Buyer:      RandomBuyer{Probability: 0},
		Bidder:     PricedBidder{CentreAdjust: DefaultCentreAdjusts[player], Width: 0},
		Jail:       TurnThresholdJail{UseCardTurn: NeverEscape, PayFineTurn: NeverEscape},
		Liquidator: OrderedLiquidator{},
	}
}

// DefaultPlayers returns the stock strategy set for a game.
func DefaultPlayers() [game.PlayerCount]game.Strategy {
	var players [game.PlayerCount]game.Strategy
	for i := range players {
		players[i] = Default(i)
	}
	return players
}
