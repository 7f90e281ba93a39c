package game

// NotBankrupt marks a solvent player's BankruptRound.
const NotBankrupt = -1

// Player is the per-player dynamic state.
type Player struct {
	// Position is a board index when non-negative. A negative value means
	// the player is in jail and counts turns remaining: entering jail sets
	// it to -MaxTurnsInJail and each failed escape roll moves it toward 0.
	Position int

	Cash int

	// BankruptRound is the round the player went bankrupt, or NotBankrupt.
	// It is set at most once and never cleared.
	BankruptRound int

	ConsecutiveDoubles int

	// Houses and Hotels are counts only, used for per-building card fees.
	// Building placement is not modeled.
	Houses int
	Hotels int
}

// InJail reports whether the player is currently in jail.
func (p *Player) InJail() bool {
	return p.Position < 0
}

// Bankrupt reports whether the player has gone bankrupt. Bankruptcy is
// terminal: a bankrupt player's cash is exactly 0 and never changes again.
func (p *Player) Bankrupt() bool {
	return p.BankruptRound != NotBankrupt
}

// BoardSpace returns the player's position as a board index. The player must
// not be in jail.
func (p *Player) BoardSpace() int {
	assert(p.Position >= 0, "player in jail has no board space (position %d)", p.Position)
	return p.Position
}
