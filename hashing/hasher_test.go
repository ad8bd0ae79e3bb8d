package hashing

import "testing"

func TestSHA3ProviderDeterministic(t *testing.T) {
	p := SHA3Provider{}
	a := p.Sum256([]byte("scdb"))
	b := p.Sum256([]byte("scdb"))
	if a != b {
		t.Fatalf("expected deterministic digest")
	}
	c := p.Sum256([]byte("scdb2"))
	if a == c {
		t.Fatalf("expected distinct inputs to hash differently")
	}
}

func TestHash256IsZero(t *testing.T) {
	var h Hash256
	if !h.IsZero() {
		t.Fatalf("expected zero value to report IsZero")
	}
	h[0] = 1
	if h.IsZero() {
		t.Fatalf("expected non-zero hash to report !IsZero")
	}
}
