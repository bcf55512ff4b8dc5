package store

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/aimldept/portal/internal/pkg/apperrors"
)

// FeedRecord is a subject-scoped, owner-deletable post. Announcements and
// materials share this contract.
type FeedRecord interface {
	RecordID() string
	OwnerID() string
	Subject() string
}

// FeedStore owns one prepend-ordered collection of posts and its JSON mirror.
// Collection order is most-recent-first: new records go to the front.
type FeedStore[T FeedRecord] struct {
	mu      sync.RWMutex
	file    *jsonFile[[]T]
	records []T
}

// OpenFeedStore loads the collection from path, starting empty when the file
// is missing or malformed.
func OpenFeedStore[T FeedRecord](path string, logger zerolog.Logger) *FeedStore[T] {
	s := &FeedStore[T]{
		file: newJSONFile[[]T](path, logger),
	}
	s.file.Load(&s.records)
	return s
}

// BySubjects returns, in collection order, the records whose subject code is
// in codes.
func (s *FeedStore[T]) BySubjects(codes []string) []T {
	allowed := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		allowed[c] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]T, 0)
	for _, rec := range s.records {
		if _, ok := allowed[rec.Subject()]; ok {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Prepend inserts a record at the front of the collection and persists.
func (s *FeedStore[T]) Prepend(record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]T{record}, s.records...)
	return s.file.Save(s.records)
}

// Remove deletes the record with the given ID, provided callerID owns it.
// An absent ID is ErrNotFound; a foreign owner is ErrPermissionDenied and the
// record stays in place. Callers wrap these with resource-specific messages.
func (s *FeedStore[T]) Remove(id, callerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, rec := range s.records {
		if rec.RecordID() == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperrors.ErrNotFound
	}
	if s.records[idx].OwnerID() != callerID {
		return apperrors.ErrPermissionDenied
	}

	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return s.file.Save(s.records)
}

// Len returns the number of records in the collection.
func (s *FeedStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
