// Package session wraps shopper session state behind a single store
// interface with explicit get/set/clear operations, instead of scattered
// direct key access. State is string-keyed and JSON- or plain-string-valued.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a key has no value in the session.
var ErrNotFound = errors.New("session: key not found")

// Store is the shopper session store. Implementations are pure data access:
// no validation, no interpretation of values.
type Store interface {
	// Get returns the raw value for key, or ErrNotFound.
	Get(ctx context.Context, sessionID, key string) (string, error)
	// Set writes the raw value for key.
	Set(ctx context.Context, sessionID, key, value string) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, sessionID string, keys ...string) error
	// Clear removes the whole session.
	Clear(ctx context.Context, sessionID string) error
}

// GetJSON unmarshals the value for key into v. ErrNotFound passes through
// untouched so callers can treat an absent key as "no value".
func GetJSON(ctx context.Context, s Store, sessionID, key string, v any) error {
	raw, err := s.Get(ctx, sessionID, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("session: unmarshal %q: %w", key, err)
	}
	return nil
}

// SetJSON marshals v and stores it under key.
func SetJSON(ctx context.Context, s Store, sessionID, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("session: marshal %q: %w", key, err)
	}
	return s.Set(ctx, sessionID, key, string(raw))
}
