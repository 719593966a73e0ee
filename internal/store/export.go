package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/memomemo/memomemo/internal/model"
)

// Export writes the full collection as an indented JSON array, newest
// first, including archived memories.
func (s *Store) Export(w io.Writer) error {
	memories := s.List()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(memories); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Import appends memories from a snapshot produced by Export. Records with
// an empty or already-present id are skipped. Returns the number imported.
func (s *Store) Import(r io.Reader) (int, error) {
	var memories []model.Memory
	if err := json.NewDecoder(r).Decode(&memories); err != nil {
		return 0, fmt.Errorf("parse snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	imported := 0
	for _, m := range memories {
		if m.ID == "" || s.index(m.ID) >= 0 {
			continue
		}
		s.memories = append(s.memories, m.Clone())
		imported++
	}
	return imported, nil
}

// Seed loads the first-run sample memories. It does nothing when the
// store already holds records.
func (s *Store) Seed(ctx context.Context) error {
	if s.Len() > 0 {
		return nil
	}

	samples := []model.Capture{
		model.URLCapture{
			Content: "A comprehensive guide to React performance optimization techniques including memoization, lazy loading, and code splitting best practices.",
			Source:  "sample",
			URL:     "https://example.com/react-performance",
		},
		model.TextCapture{
			Content: "Meeting notes from Q4 product strategy session. Discussed roadmap priorities, user feedback integration, and timeline for new AI features. Action items: review user research, schedule design review, update documentation.",
			Source:  "sample",
		},
		model.URLCapture{
			Content: "Beautiful dashboard UI design inspiration with clean layout, excellent use of white space and color contrast. Great example of modern web design principles.",
			Source:  "sample",
			URL:     "https://example.com/design-inspiration",
		},
	}

	for _, c := range samples {
		if _, err := s.Create(ctx, c); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}
