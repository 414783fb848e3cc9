// Package qr implements the in-memory store for the single-use QR tokens
// that authorize kiosk borrow and return actions. A token is an opaque
// random string minted for one user, valid for a short window, and consumed
// by its first successful redemption.
//
// The store is deliberately process-local: losing tokens on restart is fine
// (clients re-mint), and the short TTL plus single-use semantics stand in
// for a full session system.
package qr

import (
	"errors"
	"sync"
	"time"

	"github.com/khlug/booking/pkg/cryptox"
)

// DefaultTTL is the validity window for a minted token. Ten seconds matches
// the kiosk flow: the code is scanned straight off a freshly rendered page.
const DefaultTTL = 10 * time.Second

var (
	// ErrNotFound is returned for unknown, expired and already-redeemed
	// tokens alike. Callers must not be able to tell whether a token ever
	// existed.
	ErrNotFound = errors.New("qr: token not found")

	// ErrEmptyUserID is returned when minting without an owner.
	ErrEmptyUserID = errors.New("qr: empty user id")
)

type record struct {
	userID    string
	issuedAt  time.Time
	expiresAt time.Time
}

// Store owns every live token. All access goes through one mutex so that
// sweep+mint and sweep+redeem are single atomic steps; contention is low and
// operations are O(live tokens) at worst.
type Store struct {
	ttl time.Duration
	now func() time.Time // injectable clock for expiry tests

	mu     sync.Mutex
	tokens map[string]record
}

// NewStore creates a token store with the given TTL. A zero or negative ttl
// falls back to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:    ttl,
		now:    time.Now,
		tokens: make(map[string]record),
	}
}

// Mint creates a token for userID and returns the token value and its TTL.
// The store itself does not know the user directory; validating that userID
// exists is the caller's job. Minting sweeps expired tokens as a side
// effect, which bounds store growth without a background timer.
func (s *Store) Mint(userID string) (string, time.Duration, error) {
	if userID == "" {
		return "", 0, ErrEmptyUserID
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return "", 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	s.tokens[token] = record{
		userID:    userID,
		issuedAt:  now,
		expiresAt: now.Add(s.ttl),
	}

	return token, s.ttl, nil
}

// Redeem resolves a token to its owning user id and removes it, so a token
// can back at most one successful redemption ever. Expired and unknown
// tokens fail identically with ErrNotFound.
func (s *Store) Redeem(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(s.now())

	rec, ok := s.tokens[token]
	if !ok {
		return "", ErrNotFound
	}
	delete(s.tokens, token)

	return rec.userID, nil
}

// Len reports the number of live tokens after sweeping. Used by readiness
// reporting and tests.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(s.now())
	return len(s.tokens)
}

// sweepLocked drops every expired token. Caller must hold s.mu.
func (s *Store) sweepLocked(now time.Time) {
	for token, rec := range s.tokens {
		if rec.expiresAt.Before(now) {
			delete(s.tokens, token)
		}
	}
}
