package sidechain

import "testing"

func TestLookup(t *testing.T) {
	p, ok := Lookup(Test)
	if !ok {
		t.Fatalf("expected Test sidechain to be valid")
	}
	if p.Tau != 200 || p.MinWorkScore != 100 {
		t.Fatalf("unexpected params: %+v", p)
	}

	if _, ok := Lookup(ID(99)); ok {
		t.Fatalf("expected ID 99 to be invalid")
	}
}

func TestIsTauBoundary(t *testing.T) {
	cases := []struct {
		height int32
		want   bool
	}{
		{0, false},
		{199, false},
		{200, true},
		{400, true},
		{401, false},
	}
	for _, c := range cases {
		if got := IsTauBoundary(Test, c.height); got != c.want {
			t.Fatalf("IsTauBoundary(%d) = %v, want %v", c.height, got, c.want)
		}
	}
}

func TestLastTauHeight(t *testing.T) {
	if got := LastTauHeight(Test, 250); got != 200 {
		t.Fatalf("LastTauHeight(250) = %d, want 200", got)
	}
	if got := LastTauHeight(Test, 199); got != 0 {
		t.Fatalf("LastTauHeight(199) = %d, want 0", got)
	}
}
