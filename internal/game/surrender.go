package game

// Bankruptcy asset surrender. By the time a player goes bankrupt every
// unmortgaged property was liquidated by the forced sale, so only mortgaged
// properties and Get Out of Jail Free cards can remain, and they pass either
// to the bank or to the creditor player. Mortgage state is preserved on
// transfer; whether the new owner should pay interest or unmortgage is a
// known gap in the rules model and deliberately not resolved here.

func (e *Engine) surrenderAssetsToBank(player int) {
	for _, prop := range AllProperties() {
		if e.state.IsOwner(player, prop) {
			assert(e.state.IsMortgaged(prop),
				"bankrupt player %d still owns unmortgaged %s", player, prop.Name())
			e.state.SetOwner(prop, unowned)
		}
	}
	e.surrenderJailCards(player, unowned)
	assert(e.state.Player(player).Cash == 0, "bankrupt player %d retains cash", player)
}

func (e *Engine) surrenderAssetsToPlayer(src, dst int) {
	for _, prop := range AllProperties() {
		if e.state.IsOwner(src, prop) {
			assert(e.state.IsMortgaged(prop),
				"bankrupt player %d still owns unmortgaged %s", src, prop.Name())
			e.state.SetOwner(prop, dst)
		}
	}
	e.surrenderJailCards(src, dst)
	assert(e.state.Player(src).Cash == 0, "bankrupt player %d retains cash", src)
}

// surrenderJailCards passes the player's Get Out of Jail Free cards to the
// destination player, or back to their decks when the destination is the
// bank.
func (e *Engine) surrenderJailCards(player, dst int) {
	for _, dt := range []DeckType{Chance, CommunityChest} {
		if !e.state.OwnsJailCard(player, dt) {
			continue
		}
		if dst == unowned {
			e.returnJailCard(player, dt)
		} else {
			e.state.goojfOwners[dt] = dst
		}
	}
}
