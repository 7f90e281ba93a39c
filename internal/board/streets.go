package board

// StreetCount is the number of purchasable streets.
const StreetCount = 22

// ColourSetCount is the number of street colour sets.
const ColourSetCount = 8

// MaxColourSetSize is the largest number of streets in any colour set.
const MaxColourSetSize = 3

// Street identifies a street and its colour-set membership.
type Street struct {
	Index      int // board-order index, 0..21
	ColourSet  int
	IndexInSet int
}

// Streets lists all streets in board order.
var Streets = [StreetCount]Street{
	{0, 0, 0},
	{1, 0, 1},
	{2, 1, 0},
	{3, 1, 1},
	{4, 1, 2},
	{5, 2, 0},
	{6, 2, 1},
	{7, 2, 2},
	{8, 3, 0},
	{9, 3, 1},
	{10, 3, 2},
	{11, 4, 0},
	{12, 4, 1},
	{13, 4, 2},
	{14, 5, 0},
	{15, 5, 1},
	{16, 5, 2},
	{17, 6, 0},
	{18, 6, 1},
	{19, 6, 2},
	{20, 7, 0},
	{21, 7, 1},
}

// ColourSetSizes gives the number of streets in each colour set.
var ColourSetSizes = [ColourSetCount]int{2, 3, 3, 3, 3, 3, 3, 2}

// StreetValues lists purchase prices in board order.
var StreetValues = [StreetCount]int{
	60, 60,
	100, 100, 120,
	140, 140, 160,
	180, 180, 200,
	220, 220, 240,
	260, 260, 280,
	300, 300, 320,
	350, 400,
}

// StreetRents is the rent schedule per street. Inner index: 0 = unimproved,
// 1-4 = houses, 5 = hotel.
var StreetRents = [StreetCount][6]int{
	{2, 10, 30, 90, 160, 250},
	{4, 20, 60, 180, 320, 450},
	{6, 30, 90, 270, 400, 550},
	{6, 30, 90, 270, 400, 550},
	{8, 40, 100, 300, 450, 600},
	{10, 50, 150, 450, 625, 750},
	{10, 50, 150, 450, 625, 750},
	{12, 60, 180, 500, 700, 900},
	{14, 70, 200, 550, 750, 950},
	{14, 70, 200, 550, 750, 950},
	{16, 80, 220, 600, 800, 1000},
	{18, 90, 250, 700, 875, 1050},
	{18, 90, 250, 700, 875, 1050},
	{20, 100, 300, 750, 925, 1100},
	{22, 110, 330, 800, 975, 1150},
	{22, 110, 330, 800, 975, 1150},
	{24, 120, 360, 850, 1025, 1200},
	{26, 130, 390, 900, 1100, 1275},
	{26, 130, 390, 900, 1100, 1275},
	{28, 150, 450, 1000, 1200, 1400},
	{35, 175, 500, 1100, 1300, 1500},
	{50, 200, 600, 1400, 1700, 2000},
}

// FullColourSetRentMultiplier is applied to unimproved street rent when the
// owner holds the whole colour set.
const FullColourSetRentMultiplier = 2

// BuildingValues lists the house/hotel purchase price per colour set.
var BuildingValues = [ColourSetCount]int{50, 60, 100, 100, 150, 150, 200, 200}

// StreetNames lists street display names in board order.
var StreetNames = [StreetCount]string{
	"Old Kent Road",
	"Whitechapel Road",
	"The Angel, Islington",
	"Euston Road",
	"Pentonville Road",
	"Pall Mall",
	"Whitehall",
	"Northumberland Avenue",
	"Bow Street",
	"Marlborough Street",
	"Vine Street",
	"Strand",
	"Fleet Street",
	"Trafalgar Square",
	"Leicester Square",
	"Coventry Street",
	"Piccadilly",
	"Regent Street",
	"Oxford Street",
	"Bond Street",
	"Park Lane",
	"Mayfair",
}
