package game

import "fmt"

// PlayerCount is the fixed number of players in every game. Players are
// identified by index 0..PlayerCount-1; there is no join or leave.
const PlayerCount = 4

// Rules holds the tunable game constants. They are fixed for the lifetime of
// a game; the engine only ever reads them.
type Rules struct {
	InitialCash int
	GoSalary    int
	JailFine    int
	// DoublesJailThreshold is the number of consecutive doubles that sends a
	// player straight to jail.
	DoublesJailThreshold int
	MaxTurnsInJail       int
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		InitialCash:          1500,
		GoSalary:             200,
		JailFine:             50,
		DoublesJailThreshold: 3,
		MaxTurnsInJail:       3,
	}
}

// Validate checks that the rules are playable.
func (r Rules) Validate() error {
	if r.InitialCash <= 0 {
		return fmt.Errorf("initial cash must be positive, got %d", r.InitialCash)
	}
	if r.GoSalary < 0 {
		return fmt.Errorf("go salary cannot be negative, got %d", r.GoSalary)
	}
	if r.JailFine < 0 {
		return fmt.Errorf("jail fine cannot be negative, got %d", r.JailFine)
	}
	if r.DoublesJailThreshold < 1 {
		return fmt.Errorf("doubles jail threshold must be at least 1, got %d", r.DoublesJailThreshold)
	}
	if r.MaxTurnsInJail < 1 {
		return fmt.Errorf("max turns in jail must be at least 1, got %d", r.MaxTurnsInJail)
	}
	return nil
}

// assert panics with the given message if the condition is false. The engine
// uses it for contract violations, which are defects rather than runtime
// conditions.
func assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
