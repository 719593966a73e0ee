// Package store provides the in-memory authoritative collection of
// memories and its CRUD and search operations.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/memomemo/memomemo/internal/model"
)

// ErrEmptyContent is returned when a capture has no usable content.
var ErrEmptyContent = errors.New("capture content is empty")

// Classifier derives metadata from a capture. The heuristic implementation
// simulates an external call and may block; real implementations can be
// substituted without touching the store.
type Classifier interface {
	Classify(ctx context.Context, c model.Capture) (model.Metadata, error)
}

// Options configures a Store. Zero values select production defaults.
type Options struct {
	// Now supplies timestamps. Defaults to UTC wall time.
	Now func() time.Time
	// Entropy feeds ULID generation. Defaults to a time-seeded source.
	Entropy io.Reader
}

// Store holds all memories for the lifetime of the process, newest first.
// It owns every record exclusively; callers receive copies.
type Store struct {
	classifier Classifier

	mu       sync.RWMutex
	memories []model.Memory
	now      func() time.Time
	entropy  io.Reader
}

// New creates an empty store backed by the given classifier.
func New(classifier Classifier, opts Options) *Store {
	now := opts.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	entropy := opts.Entropy
	if entropy == nil {
		entropy = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Store{
		classifier: classifier,
		now:        now,
		entropy:    entropy,
	}
}

// newID must be called with the lock held; the entropy source is not
// safe for concurrent use.
func (s *Store) newID(now time.Time) string {
	return ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
}

// Create runs the capture through the classifier, assembles a full memory
// record and prepends it to the collection. This is the only operation
// with a delay; once started it always completes.
func (s *Store) Create(ctx context.Context, c model.Capture) (model.Memory, error) {
	if c == nil {
		return model.Memory{}, errors.New("capture is required")
	}
	if strings.TrimSpace(c.Body()) == "" {
		return model.Memory{}, ErrEmptyContent
	}

	meta, err := s.classifier.Classify(ctx, c)
	if err != nil {
		return model.Memory{}, fmt.Errorf("classify: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	m := model.Memory{
		ID:            s.newID(now),
		Capture:       c,
		Metadata:      meta,
		CollectionIDs: []string{},
		Importance:    model.DefaultImportance,
		CreatedAt:     now,
		UpdatedAt:     now,
		AccessedAt:    now,
	}

	s.memories = append([]model.Memory{m}, s.memories...)
	return m.Clone(), nil
}

// UpdateParams holds partial field changes. Nil pointers and nil slices
// leave the field unchanged.
type UpdateParams struct {
	Title      *string
	Summary    *string
	Tags       []string
	Categories []string
	IsFavorite *bool
	IsArchived *bool
}

// Update applies the given changes and refreshes UpdatedAt. It reports
// false, without modifying anything, when the id is absent.
func (s *Store) Update(id string, p UpdateParams) (model.Memory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return model.Memory{}, false
	}

	m := &s.memories[i]
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Summary != nil {
		m.Summary = *p.Summary
	}
	if p.Tags != nil {
		tags := append([]string(nil), p.Tags...)
		if len(tags) > 6 {
			tags = tags[:6]
		}
		m.Tags = tags
	}
	// Categories must never be empty; an empty replacement is ignored.
	if len(p.Categories) > 0 {
		m.Categories = append([]string(nil), p.Categories...)
	}
	if p.IsFavorite != nil {
		m.IsFavorite = *p.IsFavorite
	}
	if p.IsArchived != nil {
		m.IsArchived = *p.IsArchived
	}
	m.UpdatedAt = s.now()

	return m.Clone(), true
}

// Delete removes the memory with the given id. Removal is irrecoverable.
// It reports false when the id is absent.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return false
	}
	s.memories = append(s.memories[:i], s.memories[i+1:]...)
	return true
}

// ToggleFavorite flips the favorite flag and refreshes UpdatedAt.
func (s *Store) ToggleFavorite(id string) (model.Memory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return model.Memory{}, false
	}
	m := &s.memories[i]
	m.IsFavorite = !m.IsFavorite
	m.UpdatedAt = s.now()
	return m.Clone(), true
}

// ToggleArchive flips the archived flag and refreshes UpdatedAt. Archived
// memories are kept but excluded from search results.
func (s *Store) ToggleArchive(id string) (model.Memory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return model.Memory{}, false
	}
	m := &s.memories[i]
	m.IsArchived = !m.IsArchived
	m.UpdatedAt = s.now()
	return m.Clone(), true
}

// Find returns a copy of the memory with the given id.
func (s *Store) Find(id string) (model.Memory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.index(id)
	if i < 0 {
		return model.Memory{}, false
	}
	return s.memories[i].Clone(), true
}

// List returns copies of all memories, newest first, including archived
// ones.
func (s *Store) List() []model.Memory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Memory, len(s.memories))
	for i, m := range s.memories {
		out[i] = m.Clone()
	}
	return out
}

// Len returns the number of stored memories.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.memories)
}

// index must be called with the lock held.
func (s *Store) index(id string) int {
	for i := range s.memories {
		if s.memories[i].ID == id {
			return i
		}
	}
	return -1
}
