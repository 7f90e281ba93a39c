package game

import "testing"

func TestBankPayPlayer(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	e.BankPayPlayer(2, 75)
	if got := state.Player(2).Cash; got != 1575 {
		t.Errorf("cash = %d, want 1575", got)
	}
}

func TestPlayerPayBankFromHand(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	e.PlayerPayBankFromHand(0, 200)
	if got := state.Player(0).Cash; got != 1300 {
		t.Errorf("cash = %d, want 1300", got)
	}
}

func TestForcedSaleCoversDebt(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Player(0).Cash = 10
	state.SetOwner(StreetAt(0), 0)
	state.SetOwner(StreetAt(1), 0)

	e.PlayerPayBank(0, 50)

	// Two half-price sales at 30 each cover the shortfall.
	if got := state.Player(0).Cash; got != 20 {
		t.Errorf("cash = %d, want 20", got)
	}
	if state.Player(0).Bankrupt() {
		t.Error("player went bankrupt despite covering the debt")
	}
	for _, street := range []int{0, 1} {
		if _, owned := state.Owner(StreetAt(street)); owned {
			t.Errorf("street %d not returned to the bank by the forced sale", street)
		}
	}
}

func TestForcedSaleStopsAtTarget(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Player(0).Cash = 40
	state.SetOwner(StreetAt(0), 0)
	state.SetOwner(StreetAt(1), 0)

	e.PlayerPayBank(0, 50)

	// The first sale raises enough; the second property must survive.
	if got := state.Player(0).Cash; got != 20 {
		t.Errorf("cash = %d, want 20", got)
	}
	if !state.IsOwner(0, StreetAt(1)) {
		t.Error("forced sale liquidated more assets than needed")
	}
}

func TestPartialPaymentBankruptcy(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Player(0).Cash = 10
	state.SetOwner(StreetAt(0), 0)

	paid := e.PlayerPayPlayer(0, 1, 100)

	// Cash plus the 30 sale proceeds is all there is.
	if paid != 40 {
		t.Errorf("paid = %d, want 40", paid)
	}
	p := state.Player(0)
	if !p.Bankrupt() || p.BankruptRound != 0 {
		t.Errorf("expected bankruptcy at round 0, got bankrupt round %d", p.BankruptRound)
	}
	if p.Cash != 0 {
		t.Errorf("bankrupt player retains cash %d", p.Cash)
	}
	if got := state.Player(1).Cash; got != 1540 {
		t.Errorf("creditor cash = %d, want 1540", got)
	}
	if got := e.counters.Bankruptcies[0]; got != 1 {
		t.Errorf("Bankruptcies[0] = %d, want 1", got)
	}
}

func TestBankruptcySurrendersMortgagedToCreditor(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Player(0).Cash = 5
	state.SetOwner(RailwayAt(0), 0)
	state.Mortgage(RailwayAt(0))

	e.PlayerPayPlayer(0, 1, 50)

	if !state.Player(0).Bankrupt() {
		t.Fatal("expected bankruptcy")
	}
	if !state.IsOwner(1, RailwayAt(0)) {
		t.Error("mortgaged railway did not pass to the creditor")
	}
	if !state.IsMortgaged(RailwayAt(0)) {
		t.Error("mortgage flag lost in the transfer")
	}
	if got := state.Player(1).Cash; got != 1505 {
		t.Errorf("creditor cash = %d, want 1505", got)
	}
}

func TestBankruptcySurrendersToBank(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Player(0).Cash = 5
	state.SetOwner(RailwayAt(0), 0)
	state.Mortgage(RailwayAt(0))
	state.goojfOwners[Chance] = 0
	state.chanceDeck.goojfSlot = 3

	e.PlayerPayBank(0, 50)

	if !state.Player(0).Bankrupt() {
		t.Fatal("expected bankruptcy")
	}
	if _, owned := state.Owner(RailwayAt(0)); owned {
		t.Error("mortgaged railway did not return to the bank")
	}
	if _, owned := state.JailCardOwner(Chance); owned {
		t.Error("jail card did not return to its deck")
	}
	if state.chanceDeck.goojfSlot != -1 {
		t.Error("jail card not reinserted into the deck")
	}
}

func TestJailCardPassesToCreditor(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.Player(0).Cash = 5
	state.goojfOwners[CommunityChest] = 0
	state.communityChestDeck.goojfSlot = 7

	e.PlayerPayPlayer(0, 2, 50)

	if !state.OwnsJailCard(2, CommunityChest) {
		t.Error("jail card did not pass to the creditor")
	}
}

func TestPlayerPayPlayerConservesWealth(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.SetOwner(StreetAt(3), 0)
	before := state.TotalWealth()

	e.PlayerPayPlayer(0, 2, 300)

	if after := state.TotalWealth(); after != before {
		t.Errorf("total wealth changed from %d to %d on a cash transfer", before, after)
	}
}

func TestSellPropertyToBank(t *testing.T) {
	e, state, _ := newTestEngine(t, newScript(t))
	state.SetOwner(UtilityAt(0), 3)

	e.sellPropertyToBank(3, UtilityAt(0))

	if _, owned := state.Owner(UtilityAt(0)); owned {
		t.Error("utility still owned after sale")
	}
	if got := state.Player(3).Cash; got != 1500+UtilityAt(0).SellValue() {
		t.Errorf("cash = %d, want %d", got, 1500+UtilityAt(0).SellValue())
	}
}
