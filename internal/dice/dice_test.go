package dice

import "testing"

func TestRollerBounds(t *testing.T) {
	r := New(1)
	for i := 0; i < 1000; i++ {
		total, isDouble := r.DoubleRoll()
		if total < 2 || total > 12 {
			t.Fatalf("DoubleRoll total %d out of range", total)
		}
		if isDouble && total%2 != 0 {
			t.Fatalf("double roll with odd total %d", total)
		}
		if single := r.SingleRoll(); single < 1 || single > 6 {
			t.Fatalf("SingleRoll %d out of range", single)
		}
		if f := r.UnitFloat(); f < 0 || f >= 1 {
			t.Fatalf("UnitFloat %f out of range", f)
		}
	}
}

func TestRollerDeterminism(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		at, ad := a.DoubleRoll()
		bt, bd := b.DoubleRoll()
		if at != bt || ad != bd {
			t.Fatalf("roll %d diverged: (%d,%v) vs (%d,%v)", i, at, ad, bt, bd)
		}
	}
}

func TestRollerSeedsDiffer(t *testing.T) {
	a, b := New(1), New(2)
	same := 0
	for i := 0; i < 100; i++ {
		at, _ := a.DoubleRoll()
		bt, _ := b.DoubleRoll()
		if at == bt {
			same++
		}
	}
	if same == 100 {
		t.Error("different seeds produced identical roll sequences")
	}
}

func TestBiasedBoolExtremes(t *testing.T) {
	r := New(7)
	for i := 0; i < 100; i++ {
		if r.BiasedBool(0) {
			t.Fatal("BiasedBool(0) returned true")
		}
		if !r.BiasedBool(1) {
			t.Fatal("BiasedBool(1) returned false")
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	r := New(3)
	values := make([]int, 16)
	for i := range values {
		values[i] = i
	}
	r.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	seen := make(map[int]bool)
	for _, v := range values {
		if seen[v] {
			t.Fatalf("value %d appears twice after shuffle", v)
		}
		seen[v] = true
	}
	if len(seen) != 16 {
		t.Fatalf("shuffle lost values, have %d", len(seen))
	}
}
