package game

import "github.com/lox/monopolysim/internal/board"

// streetRent returns the rent due on a street, zero if mortgaged. An
// unimproved street in a fully owned colour set charges double.
func (e *Engine) streetRent(street int) int {
	owner, ok := e.state.Owner(StreetAt(street))
	assert(ok, "rent on unowned street %d", street)

	if e.state.IsMortgaged(StreetAt(street)) {
		return 0
	}
	level := e.state.StreetBuildingLevel(street)
	rent := board.StreetRents[street][level]
	if level == 0 && e.state.OwnsEntireColourSet(owner, board.Streets[street].ColourSet) {
		rent *= board.FullColourSetRentMultiplier
	}
	return rent
}

// railwayRent returns the rent due on a railway, zero if mortgaged. The
// rent scales with the number of railways the owner holds, doubled again
// when a card sent the player here.
func (e *Engine) railwayRent(railway int) int {
	owner, ok := e.state.Owner(RailwayAt(railway))
	assert(ok, "rent on unowned railway %d", railway)

	if e.state.IsMortgaged(RailwayAt(railway)) {
		return 0
	}
	owned := e.state.RailwaysOwned(owner)
	assert(owned >= 1 && owned <= board.RailwayCount, "railway owner holds %d railways", owned)
	return board.RailwayRents[owned-1] * e.state.Turn.RailwayRentMultiplier
}

// utilityRent returns the rent due on a utility, zero if mortgaged. The
// usual charge is the movement roll times a multiplier keyed on how many
// utilities the owner holds; a card override rolls a fresh die and uses the
// override multiplier instead.
func (e *Engine) utilityRent(utility int) int {
	owner, ok := e.state.Owner(UtilityAt(utility))
	assert(ok, "rent on unowned utility %d", utility)

	if e.state.IsMortgaged(UtilityAt(utility)) {
		return 0
	}
	if m := e.state.Turn.UtilityDiceOverride; m != 0 {
		return e.rng.SingleRoll() * m
	}
	owned := e.state.UtilitiesOwned(owner)
	assert(owned >= 1 && owned <= board.UtilityCount, "utility owner holds %d utilities", owned)
	roll := e.state.Turn.MovementRoll
	assert(roll > 0, "utility rent with no movement roll recorded")
	return roll * board.UtilityDiceMultipliers[owned-1]
}

func (e *Engine) rentFor(prop Property) int {
	switch prop.Kind {
	case StreetProperty:
		return e.streetRent(prop.Index)
	case RailwayProperty:
		return e.railwayRent(prop.Index)
	case UtilityProperty:
		return e.utilityRent(prop.Index)
	}
	panic("unknown property kind")
}

// payRent charges the visiting player rent on the property, transferring to
// the owner whatever can be raised. Landing on your own property is free.
// The counters record the assessed rent even when the payer could not cover
// all of it.
func (e *Engine) payRent(player int, prop Property) {
	owner, ok := e.state.Owner(prop)
	assert(ok, "player %d pays rent on unowned %s", player, prop.Name())
	if owner == player {
		return
	}

	rent := e.rentFor(prop)
	e.PlayerPayPlayer(player, owner, rent)

	e.counters.RentPaidTotal[player] += uint64(rent)
	e.counters.RentPaidCount[player]++
	e.counters.RentReceivedTotal[owner] += uint64(rent)
	e.counters.RentReceivedCount[owner]++

	e.logger.Debug("rent paid", "player", player, "owner", owner,
		"property", prop.Name(), "amount", rent)
}
