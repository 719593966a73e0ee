package store

import (
	"bytes"
	"context"
	"testing"

	"github.com/memomemo/memomemo/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)

	a, _ := src.Create(ctx, model.URLCapture{Content: "React guide", Source: "test", URL: "https://example.com/react"})
	b, _ := src.Create(ctx, model.TextCapture{Content: "Meeting notes", Source: "test"})
	src.ToggleFavorite(b.ID)

	var buf bytes.Buffer
	if err := src.Export(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := newTestStore(t)
	n, err := dst.Import(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 imported, got %d", n)
	}

	got, ok := dst.Find(a.ID)
	if !ok {
		t.Fatal("expected imported memory by original id")
	}
	if got.Type() != model.TypeURL || got.Content() != "React guide" {
		t.Errorf("capture not preserved: %#v", got.Capture)
	}
	c, ok := got.Capture.(model.URLCapture)
	if !ok || c.URL != "https://example.com/react" {
		t.Errorf("url variant field not preserved: %#v", got.Capture)
	}

	fav, _ := dst.Find(b.ID)
	if !fav.IsFavorite {
		t.Error("favorite flag not preserved")
	}
}

func TestImportSkipsDuplicates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.Create(ctx, model.TextCapture{Content: "one", Source: "test"})

	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	n, err := s.Import(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 imported, got %d", n)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 memory, got %d", s.Len())
	}
}

func TestImportRejectsMalformedSnapshot(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Import(bytes.NewReader([]byte("not json"))); err == nil {
		t.Error("expected parse error")
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", s.Len())
	}
	for _, m := range s.List() {
		if m.Capture.Origin() != "sample" {
			t.Errorf("expected sample source, got %q", m.Capture.Origin())
		}
	}

	// Seeding again is a no-op on a populated store.
	if err := s.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("expected 3 after second seed, got %d", s.Len())
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u, _ := s.Create(ctx, model.URLCapture{Content: "React guide", Source: "test", URL: "https://example.com"})
	s.Create(ctx, model.TextCapture{Content: "note one", Source: "test"})
	n2, _ := s.Create(ctx, model.TextCapture{Content: "note two", Source: "test"})

	s.ToggleFavorite(u.ID)
	s.ToggleArchive(n2.ID)

	st := s.Stats()
	if st.TotalMemories != 3 {
		t.Errorf("expected 3 total, got %d", st.TotalMemories)
	}
	if st.Favorites != 1 {
		t.Errorf("expected 1 favorite, got %d", st.Favorites)
	}
	if st.Archived != 1 {
		t.Errorf("expected 1 archived, got %d", st.Archived)
	}
	if st.Collections != 0 {
		t.Errorf("expected 0 collections, got %d", st.Collections)
	}
	if st.ByType[model.TypeURL] != 1 || st.ByType[model.TypeText] != 2 {
		t.Errorf("unexpected by-type counts: %v", st.ByType)
	}
	if st.ThisWeek != 3 {
		t.Errorf("expected all 3 created this week, got %d", st.ThisWeek)
	}
}
