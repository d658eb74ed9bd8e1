// Package storage reads and writes JSON-encoded values in a kv.Store under a
// fixed set of keys, namespaced per browser profile.
//
// Reads fail soft: a missing key, an unreachable store or malformed JSON all
// leave the caller's fallback in place. Writes fail loudly: the error is
// returned so the caller can tell the user the change was not saved.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/pkordes/travelplanner/internal/kv"
	"github.com/pkordes/travelplanner/internal/metrics"
	"github.com/pkordes/travelplanner/internal/profile"
)

// Fixed keys for every persisted record.
const (
	KeyUser       = "travelplanner:user"
	KeyTrips      = "travelplanner:trips"
	KeyActiveTrip = "travelplanner:activeTripId"
	KeyLightMode  = "travelplanner:lightmode"
)

// Adapter is the only component that talks to the kv.Store.
type Adapter struct {
	store   kv.Store
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewAdapter constructs an Adapter. m may be nil.
func NewAdapter(store kv.Store, log *slog.Logger, m *metrics.Metrics) *Adapter {
	return &Adapter{store: store, log: log, metrics: m}
}

// Read decodes the JSON value under key into dst and reports whether it did.
// On any failure dst is left untouched, so callers initialise it with their
// fallback before calling. dst must be a non-nil pointer.
// A warning is logged for malformed data; a missing key is silent.
func (a *Adapter) Read(ctx context.Context, key string, dst any) bool {
	raw, ok := a.ReadString(ctx, key)
	if !ok || raw == "" {
		return false
	}

	// Decode into a scratch value of the same type so a half-decoded
	// document never leaks into dst.
	scratch := reflect.New(reflect.TypeOf(dst).Elem())
	if err := json.Unmarshal([]byte(raw), scratch.Interface()); err != nil {
		a.log.WarnContext(ctx, "storage: unable to parse stored value, using fallback",
			"key", key,
			"profile", profile.FromContext(ctx),
			"error", err,
		)
		a.metrics.StorageFallback(key)
		return false
	}
	reflect.ValueOf(dst).Elem().Set(scratch.Elem())
	return true
}

// ReadString returns the raw string under key. Store errors other than a
// missing key are logged and treated as missing.
func (a *Adapter) ReadString(ctx context.Context, key string) (string, bool) {
	raw, err := a.store.Get(ctx, profile.Key(ctx, key))
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			a.log.WarnContext(ctx, "storage: read failed, using fallback", "key", key, "error", err)
		}
		return "", false
	}
	return raw, true
}

// Write encodes v as JSON and stores it under key.
func (a *Adapter) Write(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage.Adapter.Write %s: marshal: %w", key, err)
	}
	return a.WriteString(ctx, key, string(b))
}

// WriteString stores a raw string under key.
func (a *Adapter) WriteString(ctx context.Context, key, value string) error {
	if err := a.store.Set(ctx, profile.Key(ctx, key), value); err != nil {
		a.metrics.StorageWriteFailed(key)
		return fmt.Errorf("storage.Adapter.Write %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (a *Adapter) Delete(ctx context.Context, key string) error {
	if err := a.store.Delete(ctx, profile.Key(ctx, key)); err != nil {
		a.metrics.StorageWriteFailed(key)
		return fmt.Errorf("storage.Adapter.Delete %s: %w", key, err)
	}
	return nil
}
