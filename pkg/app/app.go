// Package app is the record repository shared by the CLI, the calendar browser
// and the MCP server. It owns the read-modify-write cycle over the store.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/nomilog/pkg/logging"
	"tableflip.dev/nomilog/pkg/record"
	"tableflip.dev/nomilog/pkg/store"
)

var (
	ErrNotFound  = errors.New("app: record not found")
	ErrAmbiguous = errors.New("app: id prefix matches more than one record")
	ErrNoWatch   = errors.New("app: store does not support watching")
)

// Service provides record and settings operations over a store.
type Service struct {
	Store store.Store
	Log   logging.Logger
	// Now defaults to time.Now.
	Now func() time.Time
	// NewID defaults to random UUIDs.
	NewID func() string

	mu sync.Mutex
}

// New returns a service over s.
func New(s store.Store, log logging.Logger) *Service {
	return &Service{Store: s, Log: log}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) log() logging.Logger {
	if s.Log == nil {
		return logging.Nop()
	}
	return s.Log
}

// ListAll returns every stored record in storage order. A missing, unreadable
// or corrupt collection reads as empty. Writes load strictly and fail instead.
func (s *Service) ListAll(ctx context.Context) []*record.Record {
	records, err := s.load(ctx)
	if err != nil {
		s.log().Warn(ctx, "reading records failed, treating as empty", "err", err)
		return []*record.Record{}
	}
	return records
}

// Timeline returns every record, newest date first.
func (s *Service) Timeline(ctx context.Context) []*record.Record {
	records := s.ListAll(ctx)
	SortByDate(records)
	return records
}

// SortByDate orders records by date descending, then by creation descending.
func SortByDate(records []*record.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.Date.Equal(b.Date.Time) {
			return a.Date.After(b.Date.Time)
		}
		return a.CreatedAt.After(b.CreatedAt.Time)
	})
}

// Get returns the record with id.
func (s *Service) Get(ctx context.Context, id string) (*record.Record, error) {
	for _, r := range s.ListAll(ctx) {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ResolveID expands a unique id prefix, as printed by list --show-id, to a
// full id.
func (s *Service) ResolveID(ctx context.Context, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("%w: empty id", ErrNotFound)
	}
	var match string
	for _, r := range s.ListAll(ctx) {
		if r.ID == prefix {
			return r.ID, nil
		}
		if strings.HasPrefix(r.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("%w: %s", ErrAmbiguous, prefix)
			}
			match = r.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, prefix)
	}
	return match, nil
}

// Upsert replaces the record with the same id, or appends it.
func (s *Service) Upsert(ctx context.Context, r *record.Record) error {
	if r == nil || r.ID == "" {
		return errors.New("app: record id required")
	}
	if _, err := record.Validate(r.Input()); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("app: read records: %w", err)
	}
	replaced := false
	for i, existing := range records {
		if existing.ID == r.ID {
			records[i] = r.Clone()
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, r.Clone())
	}
	return s.save(ctx, records)
}

// Delete removes the record with id. Deleting an unknown id does nothing.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("app: read records: %w", err)
	}
	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		s.log().Debug(ctx, "delete of unknown record", "id", id)
	}
	return s.save(ctx, kept)
}

// Create validates in and stores it as a new record.
func (s *Service) Create(ctx context.Context, in record.Input) (*record.Record, error) {
	f, err := record.Validate(in)
	if err != nil {
		return nil, err
	}
	now := record.At(s.now())
	r := &record.Record{ID: s.newID(), CreatedAt: now, UpdatedAt: now}
	r.Apply(f)
	if err := s.Upsert(ctx, r); err != nil {
		return nil, err
	}
	s.log().Info(ctx, "record created", "id", r.ID, "category", r.Category.Key())
	return r, nil
}

// Update replaces the user fields of an existing record.
func (s *Service) Update(ctx context.Context, id string, in record.Input) (*record.Record, error) {
	f, err := record.Validate(in)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: read records: %w", err)
	}
	for i, existing := range records {
		if existing.ID != id {
			continue
		}
		r := existing.Clone()
		r.Apply(f)
		r.UpdatedAt = record.At(s.now())
		records[i] = r
		if err := s.save(ctx, records); err != nil {
			return nil, err
		}
		s.log().Info(ctx, "record updated", "id", r.ID)
		return r.Clone(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Watch streams store change events when the backend supports it.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	w, ok := s.Store.(store.Watcher)
	if !ok {
		return nil, ErrNoWatch
	}
	return w.Watch(ctx)
}

func (s *Service) load(ctx context.Context) ([]*record.Record, error) {
	if s.Store == nil {
		return nil, errors.New("app: no store configured")
	}
	raw, ok, err := s.Store.Get(ctx, record.RecordsKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []*record.Record{}, nil
	}
	var records []*record.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("app: decode records: %w", err)
	}
	out := records[:0]
	for _, r := range records {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Service) save(ctx context.Context, records []*record.Record) error {
	if s.Store == nil {
		return errors.New("app: no store configured")
	}
	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("app: encode records: %w", err)
	}
	if err := s.Store.Set(ctx, record.RecordsKey, string(b)); err != nil {
		return fmt.Errorf("app: write records: %w", err)
	}
	return nil
}
