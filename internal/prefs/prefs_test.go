package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestPrefs(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "prefs.db"))
	if err != nil {
		t.Fatalf("open prefs: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestThemeDefaultsToLight(t *testing.T) {
	s := newTestPrefs(t)

	theme, err := s.Theme()
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != ThemeLight {
		t.Errorf("expected light default, got %q", theme)
	}
}

func TestSetThemePersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.SetTheme(ThemeDark); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	theme, err := s2.Theme()
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != ThemeDark {
		t.Errorf("expected dark after reopen, got %q", theme)
	}
}

func TestSetThemeRejectsUnknownValue(t *testing.T) {
	s := newTestPrefs(t)
	if err := s.SetTheme("sepia"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestGetSetArbitraryKey(t *testing.T) {
	s := newTestPrefs(t)

	if _, ok, _ := s.Get("missing"); ok {
		t.Error("expected missing key to report false")
	}

	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, ok, err := s.Get("k")
	if err != nil || !ok || v != "v2" {
		t.Errorf("expected v2, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "prefs.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("expected prefs db file to be created")
	}
}
