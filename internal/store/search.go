package store

import (
	"strings"

	"github.com/memomemo/memomemo/internal/model"
)

// FilterAll matches every memory type.
const FilterAll = "all"

// Search returns non-archived memories matching the query and type filter,
// in original newest-first order. An empty query matches everything; the
// query is compared case-insensitively against title, content, tags and
// categories.
func (s *Store) Search(query, typeFilter string) []model.Memory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lower := strings.ToLower(query)

	var out []model.Memory
	for _, m := range s.memories {
		if m.IsArchived {
			continue
		}
		if typeFilter != "" && typeFilter != FilterAll && string(m.Type()) != typeFilter {
			continue
		}
		if lower != "" && !matchesQuery(m, lower) {
			continue
		}
		out = append(out, m.Clone())
	}
	return out
}

func matchesQuery(m model.Memory, lower string) bool {
	if strings.Contains(strings.ToLower(m.Title), lower) {
		return true
	}
	if strings.Contains(strings.ToLower(m.Content()), lower) {
		return true
	}
	for _, t := range m.Tags {
		if strings.Contains(strings.ToLower(t), lower) {
			return true
		}
	}
	for _, c := range m.Categories {
		if strings.Contains(strings.ToLower(c), lower) {
			return true
		}
	}
	return false
}
