package game

// playRound plays one turn for every solvent player in the given order, then
// advances the round counter.
func (e *Engine) playRound(order [PlayerCount]int) {
	for _, player := range order {
		if !e.state.Player(player).Bankrupt() {
			e.playTurn(player)
		}
	}
	e.state.Round++
}

// playerOrder produces a fresh random turn order for one round.
func (e *Engine) playerOrder() [PlayerCount]int {
	var order [PlayerCount]int
	for i := range order {
		order[i] = i
	}
	e.rng.Shuffle(PlayerCount, func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

// isDone reports whether the game is over: the round limit was reached, or
// at most one solvent player remains. Checked once per completed round,
// never mid-turn.
func (e *Engine) isDone(maxRounds int) bool {
	if maxRounds > 0 && e.state.Round >= maxRounds {
		return true
	}
	return e.state.SolventPlayers() <= 1
}

// PlayGame runs the game to completion: rounds of turns in a per-round
// shuffled player order, until the game is done. maxRounds <= 0 means no
// round limit. Finishes by recording the game outcome into the counters.
func (e *Engine) PlayGame(maxRounds int) {
	for {
		e.playRound(e.playerOrder())
		if e.isDone(maxRounds) {
			break
		}
	}

	e.counters.Games++
	e.counters.Rounds += uint64(e.state.Round)
	e.counters.GameLengths[e.state.Round]++
	e.recordGameOutcome()

	e.logger.Debug("game over", "rounds", e.state.Round, "solvent", e.state.SolventPlayers())
}
