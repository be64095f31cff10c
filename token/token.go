package token

import (
	"sync/atomic"
	"time"
)

// Token is one issued authorization token and its validity window at issue time.
type Token struct {
	Value   string
	Expires time.Duration
}

// Store holds the current token. Reads are lock-free snapshots; only the
// refresh loop and session bootstrap write.
type Store struct {
	cur atomic.Pointer[Token]
}

func NewStore(initial Token) *Store {
	s := &Store{}
	s.Set(initial)
	return s
}

func (s *Store) Get() Token {
	if t := s.cur.Load(); t != nil {
		return *t
	}
	return Token{}
}

func (s *Store) Set(t Token) {
	s.cur.Store(&t)
}
