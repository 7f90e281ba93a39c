// Package game implements the turn-resolution and economic-transaction
// engine for a single Monopoly game: movement and board-space dispatch, card
// effects, rent, purchases and auctions, cash transfers with forced sale and
// bankruptcy, and the turn/jail state machine.
//
// The engine is fully synchronous and owns no global state; one Engine plays
// one game against one State, one dice source and one set of counters, so
// independent games can run on separate goroutines without coordination.
//
// Expected economic failure (not enough cash) is never an error: it resolves
// into forced sale and possibly the bankrupt state, which callers observe on
// the player. Calling an operation outside its contract (debiting a bankrupt
// player, mortgaging a developed street, and so on) is a programming defect
// and panics.
package game
