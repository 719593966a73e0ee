package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the UI theme",
		Long:  "Show the saved theme flag, or set it. The flag is the only durable preference.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runTheme,
	}

	RootCmd.AddCommand(cmd)
}

func runTheme(cmd *cobra.Command, args []string) {
	p, err := openPrefs()
	if err != nil {
		exitErr("open prefs", err)
	}
	defer p.Close()

	if len(args) == 0 {
		theme, err := p.Theme()
		if err != nil {
			exitErr("theme", err)
		}
		fmt.Printf(`{"theme":%q}`+"\n", theme)
		return
	}

	if err := p.SetTheme(args[0]); err != nil {
		exitErr("theme", err)
	}
	fmt.Printf(`{"ok":true,"theme":%q}`+"\n", args[0])
}
