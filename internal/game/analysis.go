package game

import (
	"sort"

	"github.com/lox/monopolysim/internal/board"
)

// NetWorths values each player's holdings: cash, unmortgaged property at
// listed price, mortgaged property at half price, and buildings at purchase
// price (a hotel counting as five houses).
func (s *State) NetWorths() [PlayerCount]int {
	var worths [PlayerCount]int

	for player := range s.Players {
		worths[player] = s.Players[player].Cash
	}

	for _, st := range board.Streets {
		owner := s.streetOwners[st.Index]
		if owner == unowned {
			continue
		}
		prop := StreetAt(st.Index)
		if s.IsMortgaged(prop) {
			worths[owner] += prop.SellValue()
		} else {
			worths[owner] += prop.Price() +
				board.BuildingValues[st.ColourSet]*s.StreetBuildingLevel(st.Index)
		}
	}

	for i, owner := range s.railwayOwners {
		if owner != unowned {
			prop := RailwayAt(i)
			if s.IsMortgaged(prop) {
				worths[owner] += prop.SellValue()
			} else {
				worths[owner] += prop.Price()
			}
		}
	}
	for i, owner := range s.utilityOwners {
		if owner != unowned {
			prop := UtilityAt(i)
			if s.IsMortgaged(prop) {
				worths[owner] += prop.SellValue()
			} else {
				worths[owner] += prop.Price()
			}
		}
	}

	for player := range s.Players {
		assert(!s.Players[player].Bankrupt() || worths[player] == 0,
			"bankrupt player %d has net worth %d", player, worths[player])
	}
	return worths
}

// RankPlayers assigns each player a leaderboard rank, 0 being first place.
// Solvent players rank above bankrupt ones and are ordered by net worth;
// bankrupt players are ordered by how long they lasted. Exact draws share a
// rank.
func (s *State) RankPlayers() [PlayerCount]int {
	worths := s.NetWorths()

	// Reports whether player a outranks player b.
	outranks := func(a, b int) bool {
		ab, bb := s.Players[a].BankruptRound, s.Players[b].BankruptRound
		switch {
		case ab != NotBankrupt && bb != NotBankrupt:
			return ab > bb
		case ab != NotBankrupt:
			return false
		case bb != NotBankrupt:
			return true
		default:
			return worths[a] > worths[b]
		}
	}

	var byRank [PlayerCount]int
	for i := range byRank {
		byRank[i] = i
	}
	sort.SliceStable(byRank[:], func(i, j int) bool {
		return outranks(byRank[i], byRank[j])
	})

	var ranks [PlayerCount]int
	rank, prev := 0, -1
	for _, player := range byRank {
		if prev >= 0 && outranks(prev, player) {
			rank++
		}
		ranks[player] = rank
		prev = player
	}
	return ranks
}

// recordGameOutcome accumulates final rankings and net worths after a game.
func (e *Engine) recordGameOutcome() {
	worths := e.state.NetWorths()
	ranks := e.state.RankPlayers()
	for player := 0; player < PlayerCount; player++ {
		e.counters.RankSum[player] += uint64(ranks[player])
		e.counters.NetWorthSum[player] += uint64(worths[player])
		if ranks[player] == 0 {
			e.counters.Wins[player]++
		}
	}
}
