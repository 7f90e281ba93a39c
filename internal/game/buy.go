package game

// buyProperty transfers an unowned property to the player for the given
// price, paid from cash on hand.
func (e *Engine) buyProperty(player int, prop Property, price int) {
	_, owned := e.state.Owner(prop)
	assert(!owned, "buying owned property %s", prop.Name())

	e.PlayerPayBankFromHand(player, price)
	e.state.SetOwner(prop, player)
	e.counters.PropertiesBought[player]++
	e.logger.Debug("property bought", "player", player, "property", prop.Name(), "price", price)
}

// maybeBuyProperty offers the player the chance to buy an unowned property
// at its listed price, reporting whether it was bought. Only cash on hand
// counts; a purchase never triggers a forced sale.
func (e *Engine) maybeBuyProperty(player int, prop Property) bool {
	price := prop.Price()
	if price > e.state.Player(player).Cash {
		return false
	}
	if !e.strategy(player).ShouldBuyProperty(e.state, e.rng, prop) {
		return false
	}
	e.buyProperty(player, prop, price)
	return true
}
