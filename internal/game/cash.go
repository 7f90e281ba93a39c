package game

// credit adds cash to a player's balance. Bankrupt players can never
// receive cash.
func (e *Engine) credit(player, amount int) {
	p := e.state.Player(player)
	assert(!p.Bankrupt(), "crediting bankrupt player %d", player)
	assert(amount >= 0, "crediting negative amount %d", amount)
	p.Cash += amount
}

// debitFromHand subtracts cash the player is known to have on hand.
func (e *Engine) debitFromHand(player, amount int) {
	p := e.state.Player(player)
	assert(!p.Bankrupt(), "debiting bankrupt player %d", player)
	assert(amount >= 0, "debiting negative amount %d", amount)
	assert(p.Cash >= amount, "player %d has %d on hand, cannot debit %d", player, p.Cash, amount)
	p.Cash -= amount
}

// BankPayPlayer credits the player unconditionally from the bank.
func (e *Engine) BankPayPlayer(player, amount int) {
	e.credit(player, amount)
}

// payGoSalary pays the player the Go salary from the bank.
func (e *Engine) payGoSalary(player int) {
	e.BankPayPlayer(player, e.state.Rules.GoSalary)
}

// generateDebitAmount returns how much of the amount the player can
// actually cover, forcing asset sales if cash on hand is short.
func (e *Engine) generateDebitAmount(player, amount int) int {
	p := e.state.Player(player)
	if p.Cash >= amount {
		return amount
	}
	e.forceSellAssets(player, amount-p.Cash)
	// Either the sales covered it, or everything the player has is handed over.
	return min(p.Cash, amount)
}

// rawDebit debits up to amount from the player, forcing asset sales as
// needed. A player who still cannot cover the full amount pays everything
// they have and goes bankrupt at the current round. Returns the amount
// actually paid.
func (e *Engine) rawDebit(player, amount int) int {
	p := e.state.Player(player)
	assert(!p.Bankrupt(), "debiting bankrupt player %d", player)

	payable := e.generateDebitAmount(player, amount)
	e.debitFromHand(player, payable)
	if payable < amount {
		assert(p.Cash == 0, "player %d underpaid with %d still on hand", player, p.Cash)
		p.BankruptRound = e.state.Round
		e.counters.Bankruptcies[player]++
		e.logger.Debug("player bankrupt", "player", player, "round", e.state.Round,
			"owed", amount, "paid", payable)
	}
	return payable
}

// PlayerPayBank debits the amount from the player, via forced sale if
// necessary. On bankruptcy the player's remaining assets are surrendered to
// the bank.
func (e *Engine) PlayerPayBank(player, amount int) {
	e.rawDebit(player, amount)
	if e.state.Player(player).Bankrupt() {
		e.surrenderAssetsToBank(player)
	}
}

// PlayerPayBankFromHand debits cash the player is known to have; it can
// never trigger a forced sale.
func (e *Engine) PlayerPayBankFromHand(player, amount int) {
	e.debitFromHand(player, amount)
}

// PlayerPayPlayer moves cash from src to dst, via forced sale if necessary.
// Whatever src actually raises is credited to dst even if src goes bankrupt
// short of the full amount, in which case src's remaining assets are also
// surrendered to dst. Returns the amount actually transferred.
func (e *Engine) PlayerPayPlayer(src, dst, amount int) int {
	yielded := e.rawDebit(src, amount)
	e.credit(dst, yielded)
	if e.state.Player(src).Bankrupt() {
		e.surrenderAssetsToPlayer(src, dst)
	}
	return yielded
}

// forceSellAssets liquidates assets chosen by the player's strategy until
// the shortfall is covered or no sellable assets remain. Sales credit the
// player immediately, in choice order, stopping early once the target cash
// is reached.
func (e *Engine) forceSellAssets(player, minAmount int) {
	assert(minAmount > 0, "forced sale for non-positive amount %d", minAmount)
	p := e.state.Player(player)
	target := p.Cash + minAmount

	for {
		choices := e.strategy(player).ChooseForcedSaleAssets(e.state, e.rng, minAmount)
		if len(choices) == 0 {
			return
		}
		for _, prop := range choices {
			e.sellPropertyToBank(player, prop)
			if p.Cash >= target {
				return
			}
		}
	}
}

// sellPropertyToBank returns an owned, sellable property to the bank for
// half its listed price.
func (e *Engine) sellPropertyToBank(player int, prop Property) {
	assert(e.state.IsOwner(player, prop), "player %d selling unowned property %s", player, prop.Name())
	assert(e.state.IsSellable(prop), "selling unsellable property %s", prop.Name())

	e.state.SetOwner(prop, unowned)
	e.credit(player, prop.SellValue())
}
