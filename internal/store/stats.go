package store

import (
	"time"

	"github.com/memomemo/memomemo/internal/model"
)

// Stats holds collection statistics.
type Stats struct {
	TotalMemories int                `json:"total_memories"`
	ThisWeek      int                `json:"this_week"`
	Collections   int                `json:"collections"`
	Favorites     int                `json:"favorites"`
	Archived      int                `json:"archived"`
	ByType        map[model.Type]int `json:"by_type"`
}

// Stats returns counters over the current collection. Collections is
// always zero; the feature has no create path.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		TotalMemories: len(s.memories),
		ByType:        make(map[model.Type]int),
	}

	weekAgo := s.now().Add(-7 * 24 * time.Hour)
	for _, m := range s.memories {
		st.ByType[m.Type()]++
		if m.IsFavorite {
			st.Favorites++
		}
		if m.IsArchived {
			st.Archived++
		}
		if !m.CreatedAt.Before(weekAgo) {
			st.ThisWeek++
		}
	}
	return st
}
