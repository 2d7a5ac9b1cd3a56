package core

import "github.com/google/uuid"

// Token is an opaque producer identity. A Token is issued when a producer
// registers with an aggregator and is the only key the scheduler uses to
// group entries into messages; goroutine identity is never consulted, so
// the same Token works across worker pools and cooperative schedulers.
type Token struct {
	id uuid.UUID
}

// NewToken issues a fresh producer token.
func NewToken() Token {
	return Token{id: uuid.New()}
}

// IsZero reports whether t is the zero token. The zero token is never
// issued; inside the aggregator it denotes "no floor holder".
func (t Token) IsZero() bool {
	return t.id == uuid.Nil
}

// String returns a printable form for debugging.
func (t Token) String() string {
	return t.id.String()
}
