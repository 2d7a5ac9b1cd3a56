package core

import "testing"

func TestNewToken(t *testing.T) {
	a := NewToken()
	b := NewToken()

	if a.IsZero() || b.IsZero() {
		t.Error("Issued tokens must not be zero")
	}
	if a == b {
		t.Error("Issued tokens must be unique")
	}
}

func TestZeroToken(t *testing.T) {
	var tok Token
	if !tok.IsZero() {
		t.Error("Zero value token must report IsZero")
	}
}

func TestTokenComparable(t *testing.T) {
	a := NewToken()
	b := a
	if a != b {
		t.Error("Copied token must compare equal")
	}
}
