// Package board holds the static Monopoly board data: the 40 spaces, the
// street/railway/utility tables, purchase prices and rent schedules. Nothing
// in here is mutated during a game; all dynamic state lives in internal/game.
package board

// SpaceCount is the number of spaces on the board.
const SpaceCount = 40

// SpaceKind classifies what landing on a board space does.
type SpaceKind int

const (
	KindGo SpaceKind = iota
	KindStreet
	KindRailway
	KindUtility
	KindCommunityChest
	KindChance
	KindTax
	KindJustVisiting
	KindFreeParking
	KindGoToJail
)

// Space describes a single board space. For property spaces Index identifies
// the street/railway/utility; for tax spaces Tax is the amount due.
type Space struct {
	Kind  SpaceKind
	Index int
	Tax   int
}

// Well-known space positions.
const (
	GoSpace           = 0
	JustVisitingSpace = 10
	GoToJailSpace     = 30
)

// Destinations of the "advance to" Chance cards.
const (
	KingsCrossSpace      = 5
	PallMallSpace        = 11
	TrafalgarSquareSpace = 24
	MayfairSpace         = 39
)

// Tax amounts.
const (
	IncomeTax = 200
	SuperTax  = 150
)

// Spaces maps a board position to its effect, in board order.
var Spaces = [SpaceCount]Space{
	{Kind: KindGo},
	{Kind: KindStreet, Index: 0},
	{Kind: KindCommunityChest},
	{Kind: KindStreet, Index: 1},
	{Kind: KindTax, Tax: IncomeTax},
	{Kind: KindRailway, Index: 0},
	{Kind: KindStreet, Index: 2},
	{Kind: KindChance},
	{Kind: KindStreet, Index: 3},
	{Kind: KindStreet, Index: 4},
	{Kind: KindJustVisiting},
	{Kind: KindStreet, Index: 5},
	{Kind: KindUtility, Index: 0},
	{Kind: KindStreet, Index: 6},
	{Kind: KindStreet, Index: 7},
	{Kind: KindRailway, Index: 1},
	{Kind: KindStreet, Index: 8},
	{Kind: KindCommunityChest},
	{Kind: KindStreet, Index: 9},
	{Kind: KindStreet, Index: 10},
	{Kind: KindFreeParking},
	{Kind: KindStreet, Index: 11},
	{Kind: KindChance},
	{Kind: KindStreet, Index: 12},
	{Kind: KindStreet, Index: 13},
	{Kind: KindRailway, Index: 2},
	{Kind: KindStreet, Index: 14},
	{Kind: KindStreet, Index: 15},
	{Kind: KindUtility, Index: 1},
	{Kind: KindStreet, Index: 16},
	{Kind: KindGoToJail},
	{Kind: KindStreet, Index: 17},
	{Kind: KindStreet, Index: 18},
	{Kind: KindCommunityChest},
	{Kind: KindStreet, Index: 19},
	{Kind: KindRailway, Index: 3},
	{Kind: KindChance},
	{Kind: KindStreet, Index: 20},
	{Kind: KindTax, Tax: SuperTax},
	{Kind: KindStreet, Index: 21},
}

// RailwaySpaces lists the board positions of the railways, in board order.
var RailwaySpaces = [RailwayCount]int{5, 15, 25, 35}

// UtilitySpaces lists the board positions of the utilities, in board order.
var UtilitySpaces = [UtilityCount]int{12, 28}

// NextRailwaySpace returns the position of the first railway after the given
// board position, wrapping around to the first railway.
func NextRailwaySpace(position int) int {
	for _, r := range RailwaySpaces {
		if position < r {
			return r
		}
	}
	return RailwaySpaces[0]
}

// NextUtilitySpace returns the position of the first utility after the given
// board position, wrapping around to the first utility.
func NextUtilitySpace(position int) int {
	for _, u := range UtilitySpaces {
		if position < u {
			return u
		}
	}
	return UtilitySpaces[0]
}

// SpaceName returns the display name for a player position. Position 10 is
// "Just Visiting"; any negative position (and 40, the statistics bucket)
// means In Jail.
func SpaceName(position int) string {
	if position < 0 || position == SpaceCount {
		return "In Jail"
	}
	return spaceNames[position]
}

var spaceNames = [SpaceCount]string{
	"Go",
	StreetNames[0],
	"Community Chest 1",
	StreetNames[1],
	"Income Tax",
	RailwayNames[0],
	StreetNames[2],
	"Chance 1",
	StreetNames[3],
	StreetNames[4],
	"Just Visiting",
	StreetNames[5],
	UtilityNames[0],
	StreetNames[6],
	StreetNames[7],
	RailwayNames[1],
	StreetNames[8],
	"Community Chest 2",
	StreetNames[9],
	StreetNames[10],
	"Free Parking",
	StreetNames[11],
	"Chance 2",
	StreetNames[12],
	StreetNames[13],
	RailwayNames[2],
	StreetNames[14],
	StreetNames[15],
	UtilityNames[1],
	StreetNames[16],
	"Go To Jail",
	StreetNames[17],
	StreetNames[18],
	"Community Chest 3",
	StreetNames[19],
	RailwayNames[3],
	"Chance 3",
	StreetNames[20],
	"Super Tax",
	StreetNames[21],
}
