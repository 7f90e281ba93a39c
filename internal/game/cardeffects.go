package game

import "github.com/lox/monopolysim/internal/board"

func (s *State) deck(dt DeckType) *deck {
	if dt == Chance {
		return &s.chanceDeck
	}
	return &s.communityChestDeck
}

// drawCard takes the next card from the given deck, skipping its Get Out of
// Jail Free card while a player holds it.
func (e *Engine) drawCard(player int, dt DeckType) Card {
	_, owned := e.state.JailCardOwner(dt)
	card := e.state.deck(dt).draw(owned)
	e.counters.CardsDrawn[player]++
	e.logger.Debug("card drawn", "player", player, "deck", dt.String(), "card", int(card))
	return card
}

// returnJailCard plays or forfeits a player's Get Out of Jail Free card,
// putting it back at the end of its deck's draw order.
func (e *Engine) returnJailCard(player int, dt DeckType) {
	assert(e.state.OwnsJailCard(player, dt), "player %d returning unheld %s jail card", player, dt)
	e.state.goojfOwners[dt] = unowned
	e.state.deck(dt).returnGOOJF()
}

// cashAward pays the player a fixed amount from the bank.
func (e *Engine) cashAward(player, amount int) {
	e.BankPayPlayer(player, amount)
	e.counters.CardAwardTotal[player] += uint64(amount)
	e.counters.CardAwardCount[player]++
}

// cashFee charges the player a fixed amount, via forced sale if necessary.
func (e *Engine) cashFee(player, amount int) {
	e.PlayerPayBank(player, amount)
	e.counters.CardFeeTotal[player] += uint64(amount)
	e.counters.CardFeeCount[player]++
}

// perBuildingFee charges the player per house and hotel owned.
func (e *Engine) perBuildingFee(player, perHouse, perHotel int) {
	p := e.state.Player(player)
	e.cashFee(player, perHouse*p.Houses+perHotel*p.Hotels)
}

// awardFromPlayers collects a fixed amount from every other solvent player.
func (e *Engine) awardFromPlayers(player, amount int) {
	for other := 0; other < PlayerCount; other++ {
		if other == player || e.state.Player(other).Bankrupt() {
			continue
		}
		e.PlayerPayPlayer(other, player, amount)
	}
}

// feeToPlayers pays a fixed amount to every other solvent player, stopping
// if the payer goes bankrupt partway through.
func (e *Engine) feeToPlayers(player, amount int) {
	for other := 0; other < PlayerCount; other++ {
		if other == player || e.state.Player(other).Bankrupt() {
			continue
		}
		e.PlayerPayPlayer(player, other, amount)
		if e.state.Player(player).Bankrupt() {
			break
		}
	}
}

// receiveJailCard grants the player the deck's Get Out of Jail Free card.
// The draw already skips an owned card, so it can never be granted twice.
func (e *Engine) receiveJailCard(player int, dt DeckType) {
	_, owned := e.state.JailCardOwner(dt)
	assert(!owned, "%s jail card drawn while owned", dt)
	e.state.goojfOwners[dt] = player
}

// Movement card effects re-enter board dispatch: a card can land the player
// on a space that charges rent, offers a purchase or draws another card.

func (e *Engine) cardAdvanceToGo(player int) {
	e.advanceToGo(player)
	e.onBoardSpace(player)
}

func (e *Engine) cardAdvanceToSpace(player, space int) {
	e.advanceToSpace(player, space)
	e.onBoardSpace(player)
}

func (e *Engine) cardGoBack3Spaces(player int) {
	// No Chance space sits within 3 spaces after Go, so this never wraps.
	e.retreatBySpaces(player, 3)
	e.onBoardSpace(player)
}

func (e *Engine) cardAdvanceToNextRailway(player int) {
	e.state.Turn.RailwayRentMultiplier = 2
	next := board.NextRailwaySpace(e.state.Player(player).BoardSpace())
	e.advanceToSpace(player, next)
	e.onBoardSpace(player)
}

func (e *Engine) cardAdvanceToNextUtility(player int) {
	e.state.Turn.UtilityDiceOverride = board.CardUtilityDiceMultiplier
	next := board.NextUtilitySpace(e.state.Player(player).BoardSpace())
	e.advanceToSpace(player, next)
	e.onBoardSpace(player)
}

// onChanceCard applies the effect of a Chance card.
func (e *Engine) onChanceCard(player int, card Card) {
	p := e.state.Player(player)
	assert(!p.Bankrupt() && !p.InJail(), "player %d drawing a card while jailed or bankrupt", player)

	switch card {
	case ChanceAdvanceToGo:
		e.cardAdvanceToGo(player)
	case ChanceAdvanceToKingsCross:
		e.cardAdvanceToSpace(player, board.KingsCrossSpace)
	case ChanceAdvanceToPallMall:
		e.cardAdvanceToSpace(player, board.PallMallSpace)
	case ChanceAdvanceToTrafalgarSquare:
		e.cardAdvanceToSpace(player, board.TrafalgarSquareSpace)
	case ChanceAdvanceToMayfair:
		e.cardAdvanceToSpace(player, board.MayfairSpace)
	case ChanceAdvanceToNextRailway1, ChanceAdvanceToNextRailway2:
		e.cardAdvanceToNextRailway(player)
	case ChanceAdvanceToNextUtility:
		e.cardAdvanceToNextUtility(player)
	case ChanceGoBack3Spaces:
		e.cardGoBack3Spaces(player)
	case ChanceGoToJail:
		e.goToJail(player)
	case ChanceGetOutOfJailFree:
		e.receiveJailCard(player, Chance)
	case ChanceBankDividend:
		e.cashAward(player, 50)
	case ChanceBuildingLoan:
		e.cashAward(player, 150)
	case ChanceSpeedingFine:
		e.cashFee(player, 15)
	case ChanceElectedChairman:
		e.feeToPlayers(player, 50)
	case ChancePropertyRepairs:
		e.perBuildingFee(player, 25, 100)
	default:
		panic("unknown Chance card")
	}
}

// onCommunityChestCard applies the effect of a Community Chest card.
func (e *Engine) onCommunityChestCard(player int, card Card) {
	p := e.state.Player(player)
	assert(!p.Bankrupt() && !p.InJail(), "player %d drawing a card while jailed or bankrupt", player)

	switch card {
	case CCAdvanceToGo:
		e.cardAdvanceToGo(player)
	case CCGoToJail:
		e.goToJail(player)
	case CCGetOutOfJailFree:
		e.receiveJailCard(player, CommunityChest)
	case CCBeautyContest:
		e.cashAward(player, 10)
	case CCIncomeTaxRefund:
		e.cashAward(player, 20)
	case CCConsultancyFee:
		e.cashAward(player, 25)
	case CCSaleOfStock:
		e.cashAward(player, 50)
	case CCInheritance, CCHolidayFund, CCLifeInsurance:
		e.cashAward(player, 100)
	case CCBankError:
		e.cashAward(player, 200)
	case CCBirthday:
		e.awardFromPlayers(player, 10)
	case CCSchoolFees, CCDoctorsFee:
		e.cashFee(player, 50)
	case CCHospitalFee:
		e.cashFee(player, 100)
	case CCStreetRepairs:
		e.perBuildingFee(player, 40, 115)
	default:
		panic("unknown Community Chest card")
	}
}

// onCard dispatches a drawn card's effect.
func (e *Engine) onCard(player int, dt DeckType, card Card) {
	if dt == Chance {
		e.onChanceCard(player, card)
	} else {
		e.onCommunityChestCard(player, card)
	}
}
