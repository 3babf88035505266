// Package store is the key-value persistence layer. Values are opaque text;
// callers own the encoding.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Store reads and writes text values by key.
type Store interface {
	// Get returns the value for key. A missing key is ok == false with a nil error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set replaces the value for key. Readers never observe a partial value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	Close() error
}

// Watcher is implemented by stores that can report changes made by other processes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Event is emitted by Watch when the value of Key changed on disk.
type Event struct {
	Key string
}

// Backend names.
const (
	BackendDisk   = "disk"
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// ErrUnknownBackend is returned by Load for an unsupported backend name.
var ErrUnknownBackend = errors.New("store: unknown backend")

// Load opens the backend named by the config. A nil config loads the
// configuration from file and environment first.
func Load(ctx context.Context, cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch backend := strings.ToLower(strings.TrimSpace(cfg.Backend())); backend {
	case "", BackendDisk:
		return NewDisk(cfg.BasePath())
	case BackendMemory:
		return NewMemory(), nil
	case BackendSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath())
	case BackendRedis:
		return OpenRedis(ctx, cfg.Redis())
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, backend)
	}
}
