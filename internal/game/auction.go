package game

// auctionProperty runs an auction among all solvent players for an unowned
// property that the lander declined or could not afford.
//
// Bidding is round-robin in player order. Each player in turn may submit a
// new bid; it is accepted only if it strictly exceeds their own previous bid
// and does not exceed their cash on hand. Bidding stops after a full round
// in which no bid was accepted. The winner is the unique holder of the
// strictly highest nonzero bid and pays their bid from hand; on a tie for
// the highest bid, or if nobody bid, the property stays with the bank.
func (e *Engine) auctionProperty(prop Property) {
	_, owned := e.state.Owner(prop)
	assert(!owned, "auctioning owned property %s", prop.Name())

	var auction Auction
	for {
		changed := false
		for player := 0; player < PlayerCount; player++ {
			p := e.state.Player(player)
			if p.Bankrupt() {
				continue
			}
			bid := e.strategy(player).BidOnProperty(e.state, e.rng, prop, &auction)
			if bid > auction.Bids[player] && bid <= p.Cash {
				auction.Bids[player] = bid
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	winner, high := unowned, 0
	for player, bid := range auction.Bids {
		switch {
		case bid > high:
			winner, high = player, bid
		case bid == high && bid > 0:
			winner = unowned
		}
	}
	if winner == unowned {
		e.logger.Debug("auction unsold", "property", prop.Name())
		return
	}
	e.buyProperty(winner, prop, high)
}
