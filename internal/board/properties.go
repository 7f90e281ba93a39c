package board

// RailwayCount is the number of railways on the board.
const RailwayCount = 4

// UtilityCount is the number of utilities on the board.
const UtilityCount = 2

// RailwayValue is the purchase price of every railway.
const RailwayValue = 200

// UtilityValue is the purchase price of every utility.
const UtilityValue = 200

// RailwayRents is indexed by (railways owned by the landlord - 1).
var RailwayRents = [RailwayCount]int{25, 50, 100, 200}

// UtilityDiceMultipliers is indexed by (utilities owned by the landlord - 1);
// rent is the movement roll times the multiplier.
var UtilityDiceMultipliers = [UtilityCount]int{4, 10}

// CardUtilityDiceMultiplier replaces the ownership-based multiplier when a
// card sends the player to a utility; the rent is a fresh single-die roll
// times this value.
const CardUtilityDiceMultiplier = 10

// RailwayNames lists railway display names in board order.
var RailwayNames = [RailwayCount]string{
	"Kings Cross Station",
	"Marylebone Station",
	"Fenchurch St Station",
	"Liverpool St Station",
}

// UtilityNames lists utility display names in board order.
var UtilityNames = [UtilityCount]string{
	"Electric Company",
	"Water Works",
}
