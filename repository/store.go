package repository

import (
	"context"
	"sync"
)

// record is the constraint on types a Store can hold: a pointer to the
// record type that can read and assign its identifier.
type record[T any] interface {
	*T
	GetID() int64
	SetID(int64)
}

// Patch merges a partial update into a stored record.
type Patch[T any] interface {
	Apply(*T)
}

// Store is an in-memory collection of one kind of record. Records are kept in
// insertion order and numbered from a counter that starts at 1 and is never
// rewound, so an identifier is not reused after a delete. A Store is safe for
// concurrent use; each operation is atomic with respect to the others.
type Store[T any, P record[T]] struct {
	kind    string
	idParam string

	mu      sync.RWMutex
	records []T
	nextID  int64
}

// NewStore creates an empty Store. kind names the record type in not found
// errors ("Book") and idParam names the identifier in validation errors
// ("bookId").
func NewStore[T any, P record[T]](kind, idParam string) *Store[T, P] {
	return &Store[T, P]{
		kind:    kind,
		idParam: idParam,
		records: []T{},
		nextID:  1,
	}
}

// List returns a copy of all records in insertion order. The result is never nil.
func (s *Store[T, P]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]T, len(s.records))
	copy(records, s.records)
	return records, nil
}

// Get retrieves the record whose identifier equals rawID.
func (s *Store[T, P]) Get(ctx context.Context, rawID string) (T, error) {
	var zero T
	id, err := s.parse(ctx, rawID)
	if err != nil {
		return zero, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return zero, &NotFoundError{Kind: s.kind}
	}
	return s.records[i], nil
}

// Create assigns the next identifier to rec and appends it.
func (s *Store[T, P]) Create(ctx context.Context, rec T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	P(&rec).SetID(s.nextID)
	s.nextID++
	s.records = append(s.records, rec)
	return rec, nil
}

// Update applies patch to the record whose identifier equals rawID and
// returns the result. The identifier itself is restored after the patch, so
// no patch can renumber a record.
func (s *Store[T, P]) Update(ctx context.Context, rawID string, patch Patch[T]) (T, error) {
	var zero T
	id, err := s.parse(ctx, rawID)
	if err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return zero, &NotFoundError{Kind: s.kind}
	}
	rec := &s.records[i]
	current := P(rec).GetID()
	patch.Apply(rec)
	P(rec).SetID(current)
	return *rec, nil
}

// Delete removes the record whose identifier equals rawID.
func (s *Store[T, P]) Delete(ctx context.Context, rawID string) error {
	id, err := s.parse(ctx, rawID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return &NotFoundError{Kind: s.kind}
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}

// Len reports the number of live records.
func (s *Store[T, P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store[T, P]) parse(ctx context.Context, rawID string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	id, ok := parseID(rawID)
	if !ok {
		return 0, &ValidationError{Param: s.idParam}
	}
	return id, nil
}

// indexOf must be called with s.mu held.
func (s *Store[T, P]) indexOf(id float64) int {
	for i := range s.records {
		if float64(P(&s.records[i]).GetID()) == id {
			return i
		}
	}
	return -1
}
