package game

import "github.com/lox/monopolysim/internal/board"

// onPropertySpace resolves landing on a property space: pay rent if it is
// owned, otherwise offer the purchase and auction it if declined.
func (e *Engine) onPropertySpace(player int, prop Property) {
	if _, owned := e.state.Owner(prop); owned {
		e.payRent(player, prop)
		return
	}
	if !e.maybeBuyProperty(player, prop) {
		e.auctionProperty(prop)
	}
}

// onBoardSpace applies the effect of the space the player stands on. Card
// movement effects re-enter this dispatch; the recursion is bounded because
// no chain of cards moves a player onto a third card space.
func (e *Engine) onBoardSpace(player int) {
	p := e.state.Player(player)
	assert(!p.InJail(), "board dispatch for jailed player %d", player)
	assert(!p.Bankrupt(), "board dispatch for bankrupt player %d", player)

	space := board.Spaces[p.BoardSpace()]
	switch space.Kind {
	case board.KindGo, board.KindJustVisiting, board.KindFreeParking:
		// The Go salary is paid during movement; these spaces do nothing.
	case board.KindStreet:
		e.onPropertySpace(player, StreetAt(space.Index))
	case board.KindRailway:
		e.onPropertySpace(player, RailwayAt(space.Index))
	case board.KindUtility:
		e.onPropertySpace(player, UtilityAt(space.Index))
	case board.KindTax:
		e.PlayerPayBank(player, space.Tax)
	case board.KindGoToJail:
		e.goToJail(player)
	case board.KindChance:
		e.onCard(player, Chance, e.drawCard(player, Chance))
	case board.KindCommunityChest:
		e.onCard(player, CommunityChest, e.drawCard(player, CommunityChest))
	default:
		panic("unknown board space kind")
	}
}
