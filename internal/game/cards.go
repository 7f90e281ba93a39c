package game

import "github.com/lox/monopolysim/internal/dice"

// DeckType identifies one of the two card decks.
type DeckType int

const (
	Chance DeckType = iota
	CommunityChest

	deckTypeCount = 2
)

func (d DeckType) String() string {
	if d == Chance {
		return "Chance"
	}
	return "Community Chest"
}

// Card identifies a card within its deck. Chance and Community Chest cards
// share the type but are only meaningful together with a DeckType.
type Card int

// Chance cards.
const (
	ChanceAdvanceToGo Card = iota
	ChanceAdvanceToKingsCross
	ChanceAdvanceToPallMall
	ChanceAdvanceToTrafalgarSquare
	ChanceAdvanceToMayfair
	ChanceAdvanceToNextRailway1
	ChanceAdvanceToNextRailway2
	ChanceAdvanceToNextUtility
	ChanceGoBack3Spaces
	ChanceGoToJail
	ChanceGetOutOfJailFree
	ChanceBankDividend       // +$50
	ChanceBuildingLoan       // +$150
	ChanceSpeedingFine       // -$15
	ChanceElectedChairman    // -$50 to each other player
	ChancePropertyRepairs    // -$25/house, -$100/hotel
)

// ChanceCardCount is the size of the Chance deck.
const ChanceCardCount = 16

// Community Chest cards.
const (
	CCAdvanceToGo Card = iota
	CCGoToJail
	CCGetOutOfJailFree
	CCBeautyContest   // +$10
	CCIncomeTaxRefund // +$20
	CCConsultancyFee  // +$25
	CCSaleOfStock     // +$50
	CCInheritance     // +$100
	CCHolidayFund     // +$100
	CCLifeInsurance   // +$100
	CCBankError       // +$200
	CCBirthday        // +$10 from each other player
	CCSchoolFees      // -$50
	CCDoctorsFee      // -$50
	CCHospitalFee     // -$100
	CCStreetRepairs   // -$40/house, -$115/hotel
)

// CommunityChestCardCount is the size of the Community Chest deck.
const CommunityChestCardCount = 16

// deck is a cyclic card sequence drawn without replacement until exhausted,
// then recycled in the same order.
type deck struct {
	cards []Card
	top   int

	goojf Card // this deck's Get Out of Jail Free card
	// goojfSlot is the slot the Get Out of Jail Free card was drawn from, or
	// -1 while the card is still in the deck.
	goojfSlot int
}

func newDeck(size int, goojf Card) deck {
	d := deck{cards: make([]Card, size), goojf: goojf, goojfSlot: -1}
	for i := range d.cards {
		d.cards[i] = Card(i)
	}
	return d
}

func (d *deck) shuffle(rng dice.Source) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *deck) next() Card {
	c := d.cards[d.top]
	d.top = (d.top + 1) % len(d.cards)
	return c
}

// draw takes the next card. If it is the deck's Get Out of Jail Free card
// and that card is currently owned by a player, the draw skips it and takes
// the following card instead, leaving deck order untouched.
func (d *deck) draw(goojfOwned bool) Card {
	prevTop := d.top
	c := d.next()
	if c == d.goojf {
		if goojfOwned {
			c = d.next()
			assert(c != d.goojf, "deck contains a second Get Out of Jail Free card")
		} else {
			assert(d.goojfSlot == -1, "Get Out of Jail Free drawn twice without being returned")
			d.goojfSlot = prevTop
		}
	}
	return c
}

// returnGOOJF puts a previously drawn Get Out of Jail Free card back at the
// end of the draw order.
func (d *deck) returnGOOJF() {
	assert(d.goojfSlot >= 0, "returning a Get Out of Jail Free card that was never drawn")
	size := len(d.cards)
	if d.top == d.goojfSlot {
		// The card is the next to be drawn; skipping it leaves it at the back.
		d.top = (d.top + 1) % size
	} else {
		// Walk the card back through the draw order until it sits just
		// before top, i.e. at the end of the deck.
		prev := d.goojfSlot
		for i := (d.goojfSlot + 1) % size; i != d.top; i = (i + 1) % size {
			d.cards[prev], d.cards[i] = d.cards[i], d.cards[prev]
			prev = i
		}
	}
	d.goojfSlot = -1
}
