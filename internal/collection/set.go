// Package collection holds a page's in-memory record set and applies
// optimistic mutations with a best-effort remote write behind them.
package collection

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Outcome reports where a mutation landed.
type Outcome string

const (
	// Synced means the remote write succeeded.
	Synced Outcome = "synced"
	// LocalOnly means the remote write failed and only local state was
	// updated (demo mode). Local and remote state have diverged; callers
	// decide whether to surface that.
	LocalOnly Outcome = "local_only"
)

// Remote applies mutations to the backing store. Create may return an
// authoritative replacement record (server-generated number/timestamps);
// returning nil keeps the optimistic one.
type Remote[T any] interface {
	Create(ctx context.Context, rec T) (*T, error)
	Update(ctx context.Context, rec T) error
	Delete(ctx context.Context, id string) error
}

// Set is an ordered record collection with unique ids. All mutations apply
// locally first, then attempt the remote write.
type Set[T any] struct {
	mu     sync.Mutex
	recs   []T
	id     func(T) string
	remote Remote[T] // nil disables remote writes entirely
}

// NewSet creates a Set seeded with initial records. Records with duplicate
// ids are dropped, keeping the first occurrence.
func NewSet[T any](id func(T) string, remote Remote[T], initial []T) *Set[T] {
	s := &Set[T]{id: id, remote: remote}
	seen := make(map[string]bool, len(initial))
	for _, rec := range initial {
		if seen[id(rec)] {
			continue
		}
		seen[id(rec)] = true
		s.recs = append(s.recs, rec)
	}
	return s
}

// NewID returns a fresh opaque record id.
func NewID() string {
	return uuid.NewString()
}

// Records returns a copy of the current collection in order.
func (s *Set[T]) Records() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.recs))
	copy(out, s.recs)
	return out
}

// Len returns the current record count.
func (s *Set[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recs)
}

// Get returns the record with the given id.
func (s *Set[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.recs {
		if s.id(rec) == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Add appends a record and attempts the remote create. Duplicate ids are
// rejected before any state changes.
func (s *Set[T]) Add(ctx context.Context, rec T) (Outcome, error) {
	s.mu.Lock()
	id := s.id(rec)
	for _, existing := range s.recs {
		if s.id(existing) == id {
			s.mu.Unlock()
			return "", eris.Errorf("collection: duplicate id %s", id)
		}
	}
	s.recs = append(s.recs, rec)
	s.mu.Unlock()

	if s.remote == nil {
		return LocalOnly, nil
	}

	authoritative, err := s.remote.Create(ctx, rec)
	if err != nil {
		zap.L().Warn("remote create failed, keeping local record",
			zap.String("id", id), zap.Error(err))
		return LocalOnly, nil
	}
	if authoritative != nil {
		s.replace(id, *authoritative)
	}
	return Synced, nil
}

// Update patches the record with the given id in place and attempts the
// remote update.
func (s *Set[T]) Update(ctx context.Context, id string, patch func(T) T) (Outcome, error) {
	s.mu.Lock()
	idx := -1
	for i, rec := range s.recs {
		if s.id(rec) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return "", eris.Errorf("collection: update: id %s not found", id)
	}
	updated := patch(s.recs[idx])
	s.recs[idx] = updated
	s.mu.Unlock()

	if s.remote == nil {
		return LocalOnly, nil
	}
	if err := s.remote.Update(ctx, updated); err != nil {
		zap.L().Warn("remote update failed, keeping local record",
			zap.String("id", id), zap.Error(err))
		return LocalOnly, nil
	}
	return Synced, nil
}

// Remove deletes the record with the given id, preserving the order of the
// remaining records, and attempts the remote delete.
func (s *Set[T]) Remove(ctx context.Context, id string) (Outcome, error) {
	s.mu.Lock()
	idx := -1
	for i, rec := range s.recs {
		if s.id(rec) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return "", eris.Errorf("collection: remove: id %s not found", id)
	}
	s.recs = append(s.recs[:idx], s.recs[idx+1:]...)
	s.mu.Unlock()

	if s.remote == nil {
		return LocalOnly, nil
	}
	if err := s.remote.Delete(ctx, id); err != nil {
		zap.L().Warn("remote delete failed, record removed locally only",
			zap.String("id", id), zap.Error(err))
		return LocalOnly, nil
	}
	return Synced, nil
}

// replace swaps the record with the given id for the authoritative copy.
func (s *Set[T]) replace(id string, rec T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.recs {
		if s.id(existing) == id {
			s.recs[i] = rec
			return
		}
	}
}
