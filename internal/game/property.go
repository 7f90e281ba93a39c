package game

import "github.com/lox/monopolysim/internal/board"

// PropertyKind discriminates the three property variants.
type PropertyKind int

const (
	StreetProperty PropertyKind = iota
	RailwayProperty
	UtilityProperty
)

// Property identifies one purchasable property: a street (Index 0..21), a
// railway (Index 0..3) or a utility (Index 0..1).
type Property struct {
	Kind  PropertyKind
	Index int
}

// StreetAt, RailwayAt and UtilityAt build property identifiers.
func StreetAt(index int) Property  { return Property{Kind: StreetProperty, Index: index} }
func RailwayAt(index int) Property { return Property{Kind: RailwayProperty, Index: index} }
func UtilityAt(index int) Property { return Property{Kind: UtilityProperty, Index: index} }

// Price returns the listed purchase price.
func (p Property) Price() int {
	switch p.Kind {
	case StreetProperty:
		return board.StreetValues[p.Index]
	case RailwayProperty:
		return board.RailwayValue
	case UtilityProperty:
		return board.UtilityValue
	}
	panic("unknown property kind")
}

// SellValue returns the amount the bank pays when the property is sold back:
// half the listed price.
func (p Property) SellValue() int {
	return p.Price() / 2
}

// Name returns the property's display name.
func (p Property) Name() string {
	switch p.Kind {
	case StreetProperty:
		return board.StreetNames[p.Index]
	case RailwayProperty:
		return board.RailwayNames[p.Index]
	case UtilityProperty:
		return board.UtilityNames[p.Index]
	}
	panic("unknown property kind")
}

// AllProperties returns every property on the board, streets first, then
// utilities, then railways.
func AllProperties() []Property {
	props := make([]Property, 0, board.StreetCount+board.UtilityCount+board.RailwayCount)
	for i := 0; i < board.StreetCount; i++ {
		props = append(props, StreetAt(i))
	}
	for i := 0; i < board.UtilityCount; i++ {
		props = append(props, UtilityAt(i))
	}
	for i := 0; i < board.RailwayCount; i++ {
		props = append(props, RailwayAt(i))
	}
	return props
}

// Owner returns the owning player of a property, or ok=false if it is
// bank-owned.
func (s *State) Owner(p Property) (player int, ok bool) {
	owner := *s.ownerSlot(p)
	return owner, owner >= 0
}

// IsOwner reports whether the given player owns the property.
func (s *State) IsOwner(player int, p Property) bool {
	return *s.ownerSlot(p) == player
}

// SetOwner records the property's owner. The engine uses it for purchases
// and surrenders; tests use it to construct mid-game positions.
func (s *State) SetOwner(p Property, player int) {
	*s.ownerSlot(p) = player
}

func (s *State) ownerSlot(p Property) *int {
	switch p.Kind {
	case StreetProperty:
		return &s.streetOwners[p.Index]
	case RailwayProperty:
		return &s.railwayOwners[p.Index]
	case UtilityProperty:
		return &s.utilityOwners[p.Index]
	}
	panic("unknown property kind")
}

// IsMortgaged reports whether the property is mortgaged.
func (s *State) IsMortgaged(p Property) bool {
	switch p.Kind {
	case StreetProperty:
		return s.streetDevelopment[p.Index] == mortgagedStreet
	case RailwayProperty:
		return s.railwayMortgaged[p.Index]
	case UtilityProperty:
		return s.utilityMortgaged[p.Index]
	}
	panic("unknown property kind")
}

// Mortgage marks the property mortgaged. Streets must be undeveloped; a
// property can never be both mortgaged and developed.
func (s *State) Mortgage(p Property) {
	assert(!s.IsMortgaged(p), "property %s is already mortgaged", p.Name())
	switch p.Kind {
	case StreetProperty:
		assert(s.StreetBuildingLevel(p.Index) == 0, "cannot mortgage developed street %s", p.Name())
		s.streetDevelopment[p.Index] = mortgagedStreet
	case RailwayProperty:
		s.railwayMortgaged[p.Index] = true
	case UtilityProperty:
		s.utilityMortgaged[p.Index] = true
	}
}

// Unmortgage clears the mortgaged flag.
func (s *State) Unmortgage(p Property) {
	assert(s.IsMortgaged(p), "property %s is not mortgaged", p.Name())
	switch p.Kind {
	case StreetProperty:
		s.streetDevelopment[p.Index] = 0
	case RailwayProperty:
		s.railwayMortgaged[p.Index] = false
	case UtilityProperty:
		s.utilityMortgaged[p.Index] = false
	}
}

// StreetBuildingLevel returns 0 for no buildings (including mortgaged),
// 1-4 for houses and 5 for a hotel.
func (s *State) StreetBuildingLevel(street int) int {
	level := s.streetDevelopment[street]
	if level < 0 {
		return 0
	}
	return level
}

// StreetDevelopmentLevel returns -1 for mortgaged, 0 for no buildings,
// 1-4 for houses, 5 for a hotel.
func (s *State) StreetDevelopmentLevel(street int) int {
	return s.streetDevelopment[street]
}

// ColourSetHasBuildings reports whether any street in the colour set has at
// least one building.
func (s *State) ColourSetHasBuildings(colourSet int) bool {
	for _, st := range board.Streets {
		if st.ColourSet == colourSet && s.streetDevelopment[st.Index] > 0 {
			return true
		}
	}
	return false
}

// OwnsEntireColourSet reports whether the player owns every street in the
// colour set.
func (s *State) OwnsEntireColourSet(player, colourSet int) bool {
	owned := 0
	for _, st := range board.Streets {
		if st.ColourSet == colourSet && s.streetOwners[st.Index] == player {
			owned++
		}
	}
	return owned == board.ColourSetSizes[colourSet]
}

// RailwaysOwned counts the railways owned by the player.
func (s *State) RailwaysOwned(player int) int {
	n := 0
	for _, owner := range s.railwayOwners {
		if owner == player {
			n++
		}
	}
	return n
}

// UtilitiesOwned counts the utilities owned by the player.
func (s *State) UtilitiesOwned(player int) int {
	n := 0
	for _, owner := range s.utilityOwners {
		if owner == player {
			n++
		}
	}
	return n
}

// IsSellable reports whether an owned property may be sold back to the bank.
// Mortgaged properties can't be sold, nor streets with any buildings in
// their colour set.
func (s *State) IsSellable(p Property) bool {
	if s.IsMortgaged(p) {
		return false
	}
	if p.Kind == StreetProperty {
		st := board.Streets[p.Index]
		if s.StreetBuildingLevel(p.Index) != 0 || s.ColourSetHasBuildings(st.ColourSet) {
			return false
		}
	}
	return true
}

// IsMortgageable reports whether an owned property may be mortgaged. A
// street must be at development level exactly 0 with no buildings anywhere in
// its colour set.
func (s *State) IsMortgageable(p Property) bool {
	if s.IsMortgaged(p) {
		return false
	}
	if p.Kind == StreetProperty {
		st := board.Streets[p.Index]
		if s.StreetDevelopmentLevel(p.Index) != 0 || s.ColourSetHasBuildings(st.ColourSet) {
			return false
		}
	}
	return true
}
