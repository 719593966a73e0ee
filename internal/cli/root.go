// Package cli implements the memomemo CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/memomemo/memomemo/internal/prefs"
	"github.com/spf13/cobra"
)

var prefsPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "memomemo",
	Short: "Personal memory capture with mock AI classification",
	Long:  "MemoMemo captures notes and links, derives metadata with a deterministic mock classifier, and keeps the collection in memory for the session.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", "", "Preferences db path (default: $MEMOMEMO_PREFS or ~/.memomemo/prefs.db)")
}

func getPrefsPath() string {
	if prefsPath != "" {
		return prefsPath
	}
	if env := os.Getenv("MEMOMEMO_PREFS"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".memomemo", "prefs.db")
}

func openPrefs() (*prefs.Store, error) {
	return prefs.Open(getPrefsPath())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
