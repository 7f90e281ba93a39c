package game

import (
	"github.com/lox/monopolysim/internal/board"
	"github.com/lox/monopolysim/internal/statistics"
)

// updatePosition moves the player to the given position (a board index, or a
// negative in-jail counter) and records the visit.
func (e *Engine) updatePosition(player, position int) {
	p := e.state.Player(player)
	assert(p.Position != position, "player %d position set to its current value %d", player, position)
	assert(position < board.SpaceCount, "position %d out of range", position)

	p.Position = position
	e.state.Turn.PositionChanged = true

	if position >= 0 {
		e.counters.BoardSpaceCounts[position]++
	} else {
		e.counters.BoardSpaceCounts[statistics.JailBucket]++
	}
	e.counters.PositionCount++
}

// advanceRelative moves the player forward by offset spaces and reports
// whether Go was reached or passed. Landing exactly on Go counts; the Go
// space itself has no landing effect.
func (e *Engine) advanceRelative(player, offset int) bool {
	assert(offset > 0, "advancing by non-positive offset %d", offset)
	assert(offset < board.SpaceCount, "advancing a full lap (offset %d)", offset)
	pos := e.state.Player(player).Position
	assert(pos >= 0, "advancing player %d who is in jail", player)

	next := pos + offset
	if next < board.SpaceCount {
		e.updatePosition(player, next)
		return false
	}
	e.updatePosition(player, next-board.SpaceCount)
	return true
}

// advanceAbsolute moves the player forward to the given board index and
// reports whether Go was passed.
func (e *Engine) advanceAbsolute(player, index int) bool {
	assert(index >= 0 && index < board.SpaceCount, "invalid board index %d", index)
	pos := e.state.Player(player).Position
	assert(pos >= 0, "advancing player %d who is in jail", player)
	assert(pos != index, "advancing player %d to its current space %d", player, index)

	e.updatePosition(player, index)
	// Moving forward to a lower index wraps around the board past Go.
	return index < pos
}

// advanceToSpace moves the player forward to a space, paying the Go salary
// if Go was passed on the way. Not usable for Go itself; use advanceToGo.
func (e *Engine) advanceToSpace(player, space int) {
	assert(space != board.GoSpace, "use advanceToGo to move to Go")
	if e.advanceAbsolute(player, space) {
		e.payGoSalary(player)
	}
}

// advanceBySpaces moves the player forward, paying the Go salary if Go was
// passed.
func (e *Engine) advanceBySpaces(player, offset int) {
	if e.advanceRelative(player, offset) {
		e.payGoSalary(player)
	}
}

// advanceBySpacesNoGo moves the player forward on a path known not to pass
// Go (a jail escape roll can never wrap the board).
func (e *Engine) advanceBySpacesNoGo(player, offset int) {
	passedGo := e.advanceRelative(player, offset)
	assert(!passedGo, "unexpected Go pass advancing %d from jail exit", offset)
}

// retreatBySpaces moves the player backward. No card can move a player
// backward through Go, so wrapping below index 0 is a defect.
func (e *Engine) retreatBySpaces(player, offset int) {
	pos := e.state.Player(player).Position
	assert(pos > offset, "retreating %d spaces from %d would pass Go", offset, pos)
	e.updatePosition(player, pos-offset)
}

// advanceToGo moves the player to Go and pays the salary.
func (e *Engine) advanceToGo(player int) {
	e.updatePosition(player, board.GoSpace)
	e.payGoSalary(player)
}

// goToJail puts the player in jail. The position becomes the in-jail
// counter, not a board index, and no Go salary is ever paid on the way.
func (e *Engine) goToJail(player int) {
	e.updatePosition(player, -e.state.Rules.MaxTurnsInJail)
	e.counters.SentToJail[player]++
	e.logger.Debug("sent to jail", "player", player, "round", e.state.Round)
}
