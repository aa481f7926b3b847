package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

var (
	ErrNotFound = errors.New("otp not found")
	ErrExpired  = errors.New("otp expired")
	ErrMismatch = errors.New("otp mismatch")
)

const (
	// CodeLength is the number of digits in a one-time passcode
	CodeLength = 6
	// DefaultTTL is the default validity window for a code
	DefaultTTL = 300 * time.Second
)

// Entry is a stored one-time passcode keyed by a contact identifier
type Entry struct {
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issuedAt"`
}

// Store persists OTP entries. At most one live entry exists per contact;
// Save unconditionally overwrites any prior entry. CompareAndDelete must be
// atomic per contact so that each code is consumed at most once under
// concurrent verification.
type Store interface {
	Save(ctx context.Context, contact string, entry Entry) error
	Load(ctx context.Context, contact string) (Entry, error)
	Delete(ctx context.Context, contact string) error
	CompareAndDelete(ctx context.Context, contact, code string) (bool, error)
}

var timeNow = time.Now

// Manager generates, stores and validates one-time passcodes
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager creates a new OTP manager. A non-positive ttl falls back to DefaultTTL.
func NewManager(store Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{store: store, ttl: ttl}
}

// TTL returns the validity window for issued codes
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue generates a single random code and stores it under every given
// contact as independently consumable entries, replacing any prior code.
// The code is returned to the caller for delivery.
func (m *Manager) Issue(ctx context.Context, contacts ...string) (string, error) {
	code, err := GenerateCode()
	if err != nil {
		return "", err
	}

	entry := Entry{Code: code, IssuedAt: timeNow()}
	for _, contact := range contacts {
		if err := m.store.Save(ctx, contact, entry); err != nil {
			return "", fmt.Errorf("failed to store otp for %s: %w", contact, err)
		}
	}
	return code, nil
}

// Verify checks a code against the live entry for contact. It returns
// ErrNotFound when no entry exists, ErrExpired when the entry is past its
// window (the entry is deleted), ErrMismatch when the codes differ (the
// entry is retained so the caller may retry). On success the entry is
// consumed and cannot be used again.
func (m *Manager) Verify(ctx context.Context, contact, code string) error {
	entry, err := m.store.Load(ctx, contact)
	if err != nil {
		return err
	}

	if timeNow().Sub(entry.IssuedAt) > m.ttl {
		if err := m.store.Delete(ctx, contact); err != nil {
			return err
		}
		return ErrExpired
	}

	if entry.Code != code {
		return ErrMismatch
	}

	return m.consume(ctx, contact, code)
}

// Consume checks presence and match only, without the expiry check, and
// deletes the entry on success. PIN-change and settings codes are
// deliberately not expiry-checked; they stay redeemable until overwritten
// or consumed.
func (m *Manager) Consume(ctx context.Context, contact, code string) error {
	entry, err := m.store.Load(ctx, contact)
	if err != nil {
		return err
	}

	if entry.Code != code {
		return ErrMismatch
	}

	return m.consume(ctx, contact, code)
}

func (m *Manager) consume(ctx context.Context, contact, code string) error {
	ok, err := m.store.CompareAndDelete(ctx, contact, code)
	if err != nil {
		return err
	}
	if !ok {
		// a concurrent verification or reissue won the race
		return ErrNotFound
	}
	return nil
}

var randInt = func(max int64) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}

// GenerateCode returns a uniformly random numeric code of CodeLength digits
func GenerateCode() (string, error) {
	n, err := randInt(1_000_000)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}
	return fmt.Sprintf("%06d", n), nil
}
