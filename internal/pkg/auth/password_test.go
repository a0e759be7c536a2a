package auth

import "testing"

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("hash must not equal the password")
	}

	if err := h.Compare(hash, "correct horse"); err != nil {
		t.Fatalf("expected password to match: %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestBcryptHasherDefaultCost(t *testing.T) {
	h := NewBcryptHasher(0)
	if h.cost == 0 {
		t.Fatal("expected default cost to be applied")
	}
}
