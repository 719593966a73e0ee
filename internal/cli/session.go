package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/memomemo/memomemo/internal/classify"
	"github.com/memomemo/memomemo/internal/model"
	"github.com/memomemo/memomemo/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Interactive capture and search session",
		Long:  "Run an interactive session over an in-memory store. Memories live until the session ends; use save/load for snapshots.",
		Run:   runSession,
	}

	cmd.Flags().Bool("fast", false, "Skip the simulated classification delay")
	cmd.Flags().Bool("seed", false, "Load the sample memories on start")

	RootCmd.AddCommand(cmd)
}

const sessionHelp = `commands:
  capture <text>    save a memory (urls are detected automatically)
  search <query>    search title, content, tags and categories
  filter <type>     set the type filter (url, text, image, audio, file, all)
  list              list all memories, newest first
  get <id>          show one memory
  fav <id>          toggle favorite
  archive <id>      toggle archived (hidden from search)
  rm <id>           delete a memory
  stats             show collection statistics
  seed              load the sample memories
  save <file>       write a JSON snapshot
  load <file>       import a JSON snapshot
  help              show this help
  quit              end the session`

func runSession(cmd *cobra.Command, args []string) {
	fast, _ := cmd.Flags().GetBool("fast")
	seed, _ := cmd.Flags().GetBool("seed")

	h := classify.New()
	if fast {
		h.Latency = 0
	}
	s := store.New(h, store.Options{})

	ctx := cmd.Context()
	if seed {
		if err := s.Seed(ctx); err != nil {
			exitErr("seed", err)
		}
		fmt.Printf("seeded %d sample memories\n", s.Len())
	}

	fmt.Println("memomemo session (type 'help' for commands)")
	typeFilter := store.FilterAll

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		verb, rest := line, ""
		if i := strings.IndexByte(line, ' '); i >= 0 {
			verb, rest = line[:i], strings.TrimSpace(line[i+1:])
		}

		switch verb {
		case "capture":
			if rest == "" {
				fmt.Println("nothing to capture")
				continue
			}
			t := detectType(rest)
			m, err := s.Create(ctx, buildCapture(t, rest, "quick-capture"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "capture: %v\n", err)
				continue
			}
			printJSON(m)
			fmt.Printf("detected: %s\n", strings.Join(append(append([]string{}, m.Tags...), m.Categories...), ", "))

		case "search":
			printJSON(s.Search(rest, typeFilter))

		case "filter":
			if rest != store.FilterAll && !model.ValidTypes[model.Type(rest)] {
				fmt.Printf("invalid filter %q\n", rest)
				continue
			}
			typeFilter = rest
			fmt.Printf("filter: %s\n", typeFilter)

		case "list":
			printJSON(s.List())

		case "get":
			if m, ok := s.Find(rest); ok {
				printJSON(m)
			} else {
				fmt.Printf("not found: %s\n", rest)
			}

		case "fav":
			if m, ok := s.ToggleFavorite(rest); ok {
				fmt.Printf("favorite=%v %s\n", m.IsFavorite, m.ID)
			} else {
				fmt.Printf("not found: %s\n", rest)
			}

		case "archive":
			if m, ok := s.ToggleArchive(rest); ok {
				fmt.Printf("archived=%v %s\n", m.IsArchived, m.ID)
			} else {
				fmt.Printf("not found: %s\n", rest)
			}

		case "rm":
			if s.Delete(rest) {
				fmt.Printf("deleted %s\n", rest)
			} else {
				fmt.Printf("not found: %s\n", rest)
			}

		case "stats":
			printJSON(s.Stats())

		case "seed":
			if err := s.Seed(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "seed: %v\n", err)
				continue
			}
			fmt.Printf("%d memories\n", s.Len())

		case "save":
			if err := saveSnapshot(s, rest); err != nil {
				fmt.Fprintf(os.Stderr, "save: %v\n", err)
			} else {
				fmt.Printf("saved %d memories to %s\n", s.Len(), rest)
			}

		case "load":
			n, err := loadSnapshot(s, rest)
			if err != nil {
				fmt.Fprintf(os.Stderr, "load: %v\n", err)
			} else {
				fmt.Printf("imported %d memories\n", n)
			}

		case "help":
			fmt.Println(sessionHelp)

		case "quit", "exit":
			return

		default:
			fmt.Printf("unknown command %q (type 'help')\n", verb)
		}
	}
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func saveSnapshot(s *store.Store, path string) error {
	if path == "" {
		return fmt.Errorf("file path is required")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.Export(f)
}

func loadSnapshot(s *store.Store, path string) (int, error) {
	if path == "" {
		return 0, fmt.Errorf("file path is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return s.Import(f)
}
