package repositories

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"travelconsole/internal/domain"
)

// MemorySource keeps records in process. Edits live until restart.
type MemorySource[R any] struct {
	mu       sync.RWMutex
	resource string
	id       func(R) string
	records  []R
}

// NewMemorySource copies records into a new source.
func NewMemorySource[R any](resource string, id func(R) string, records []R) *MemorySource[R] {
	return &MemorySource[R]{
		resource: resource,
		id:       id,
		records:  slices.Clone(records),
	}
}

// List returns a snapshot in insertion order.
func (s *MemorySource[R]) List(ctx context.Context) ([]R, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records), nil
}

func (s *MemorySource[R]) Get(ctx context.Context, id string) (R, error) {
	var zero R
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if s.id(r) == id {
			return r, nil
		}
	}
	return zero, domain.NotFoundError{Resource: s.resource}
}

// Create stores build(id) under the next free numeric id. Assignment and insert
// happen under one lock, so concurrent creates never share an id.
func (s *MemorySource[R]) Create(ctx context.Context, build func(id string) R) (R, error) {
	var zero R
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 0
	for _, r := range s.records {
		if n, err := strconv.Atoi(s.id(r)); err == nil && n > next {
			next = n
		}
	}
	id := strconv.Itoa(next + 1)
	r := build(id)
	if s.id(r) != id {
		return zero, domain.ValidationError{Field: "id", Msg: "record must keep the assigned id"}
	}
	s.records = append(s.records, r)
	return r, nil
}

// Update replaces record id with change(current) under the write lock.
func (s *MemorySource[R]) Update(ctx context.Context, id string, change func(R) R) (R, error) {
	var zero R
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.id(s.records[i]) != id {
			continue
		}
		r := change(s.records[i])
		if s.id(r) != id {
			return zero, domain.ValidationError{Field: "id", Msg: "id cannot change"}
		}
		s.records[i] = r
		return r, nil
	}
	return zero, domain.NotFoundError{Resource: s.resource}
}
