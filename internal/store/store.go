package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Logical keys used by the storefront core.
const (
	KeyCart        = "cart"
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyOrders      = "orders"
)

// ErrKeyNotFound is returned by KV.Get when the key has no value.
var ErrKeyNotFound = errors.New("key not found")

// KV defines raw persistence operations over a key-value store.
type KV interface {
	Init(ctx context.Context) error
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Adapter provides typed JSON access over a KV store. Missing and
// malformed values both read as "absent" so callers can fall back to
// their empty default; the key is replaced wholesale on the next Set.
type Adapter struct {
	kv     KV
	logger *logrus.Logger
}

func NewAdapter(kv KV, logger *logrus.Logger) *Adapter {
	if logger == nil {
		logger = logrus.New()
	}
	return &Adapter{kv: kv, logger: logger}
}

// Get unmarshals the value under key into out. It reports whether a
// usable value was found; a present but unparseable value is logged and
// treated as absent rather than surfaced as an error.
func (a *Adapter) Get(ctx context.Context, key string, out any) (bool, error) {
	raw, err := a.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		a.logger.Warnf("discarding malformed value for key %s: %v", key, err)
		return false, nil
	}
	return true, nil
}

// Set marshals v and replaces the value under key.
func (a *Adapter) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := a.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Remove deletes the value under key. Removing a missing key is not an
// error.
func (a *Adapter) Remove(ctx context.Context, key string) error {
	if err := a.kv.Delete(ctx, key); err != nil && !errors.Is(err, ErrKeyNotFound) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
