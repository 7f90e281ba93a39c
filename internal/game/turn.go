package game

import "github.com/lox/monopolysim/internal/board"

// normalTurn plays one turn for a player not in jail, reporting whether
// doubles earned another turn. Rolling the threshold-th consecutive double
// goes straight to jail with no movement.
func (e *Engine) normalTurn(player int) bool {
	p := e.state.Player(player)
	assert(!p.InJail(), "normal turn for jailed player %d", player)
	assert(!p.Bankrupt(), "normal turn for bankrupt player %d", player)

	roll, isDouble := e.rng.DoubleRoll()

	if isDouble {
		p.ConsecutiveDoubles++
		if p.ConsecutiveDoubles >= e.state.Rules.DoublesJailThreshold {
			p.ConsecutiveDoubles = 0
			e.goToJail(player)
			return false
		}
	} else {
		p.ConsecutiveDoubles = 0
	}

	e.state.Turn.MovementRoll = roll
	e.advanceBySpaces(player, roll)
	e.onBoardSpace(player)

	// A doubles roll that lands in jail does not earn another turn.
	return isDouble && !p.InJail() && !p.Bankrupt()
}

// jailTurn plays one turn for a jailed player. The player first chooses how
// to try to get out: pay the fine, play a Get Out of Jail Free card, or roll
// for doubles. Paying or playing a card releases immediately and the player
// moves by a fresh single-die roll. A doubles attempt moves by the rolled
// total on success; on failure at the jail deadline the fine is charged
// through the full payment path (it can bankrupt) and the same failed roll
// moves the player; on failure before the deadline the player stays in jail
// and the turn ends.
func (e *Engine) jailTurn(player int) {
	p := e.state.Player(player)
	assert(p.InJail(), "jail turn for player %d not in jail", player)
	assert(!p.Bankrupt(), "jail turn for bankrupt player %d", player)

	maxTurns := e.state.Rules.MaxTurnsInJail
	var roll int

	switch action := e.strategy(player).DecideJailAction(e.state, e.rng); action {
	case PayFine:
		e.PlayerPayBankFromHand(player, e.state.Rules.JailFine)
		e.counters.JailFinesPaid[player]++
		roll = e.rng.SingleRoll()

	case UseChanceJailCard:
		e.returnJailCard(player, Chance)
		roll = e.rng.SingleRoll()

	case UseCommunityChestJailCard:
		e.returnJailCard(player, CommunityChest)
		roll = e.rng.SingleRoll()

	case RollForDoubles:
		doubleRoll, isDouble := e.rng.DoubleRoll()
		if isDouble {
			// Released for free, moving by the successful roll.
			roll = doubleRoll
		} else {
			next := p.Position + 1
			assert(next <= 0, "jail counter overran for player %d", player)
			if next < 0 {
				// Still in jail.
				e.updatePosition(player, next)
				return
			}
			// Time in jail is up; the fine is compulsory and can bankrupt.
			e.PlayerPayBank(player, e.state.Rules.JailFine)
			e.counters.JailFinesPaid[player]++
			if p.Bankrupt() {
				e.counters.JailDuration += uint64(maxTurns)
				return
			}
			roll = doubleRoll
		}

	default:
		panic("unknown jail action")
	}

	// Releasing from jail: count the stay, then return to the board before
	// moving, since movement works on board indexes, not the jail counter.
	assert(p.Position >= -maxTurns && p.Position < 0, "bad jail counter %d", p.Position)
	e.counters.JailDuration += uint64(p.Position + maxTurns + 1)

	e.updatePosition(player, board.JustVisitingSpace)
	e.state.Turn.MovementRoll = roll

	// A jail exit roll is at most 12 and can never wrap the board past Go.
	e.advanceBySpacesNoGo(player, roll)
	e.onBoardSpace(player)
}

// playTurn plays one player's complete turn, looping while doubles earn
// repeat turns. Turn-scoped state resets for every repeat.
func (e *Engine) playTurn(player int) {
	for {
		p := e.state.Player(player)
		assert(!p.Bankrupt(), "turn for bankrupt player %d", player)

		e.state.Turn = TurnState{RailwayRentMultiplier: 1}

		extraTurn := false
		if p.InJail() {
			e.jailTurn(player)
		} else {
			extraTurn = e.normalTurn(player)
		}

		assert(e.state.Turn.PositionChanged || p.Bankrupt(),
			"turn for player %d moved nowhere", player)
		e.counters.TurnsPlayed[player]++

		if !extraTurn {
			return
		}
	}
}
