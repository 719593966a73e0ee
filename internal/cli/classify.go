package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/memomemo/memomemo/internal/classify"
	"github.com/memomemo/memomemo/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "classify [content]",
		Short: "Run the mock classifier on content",
		Long:  "Classify content and print the derived metadata. Content can be a positional arg or piped via stdin.",
		Run:   runClassify,
	}

	cmd.Flags().StringP("type", "t", "", "Memory type: url, text, image, audio, file (default: auto-detect)")
	cmd.Flags().Bool("fast", false, "Skip the simulated processing delay")

	RootCmd.AddCommand(cmd)
}

var urlPattern = regexp.MustCompile(`(?i)^https?://`)

// detectType mirrors the quick-capture heuristic: anything starting with
// an http(s) scheme is a url, everything else is text.
func detectType(content string) model.Type {
	if urlPattern.MatchString(content) {
		return model.TypeURL
	}
	return model.TypeText
}

// buildCapture assembles the capture variant for a type.
func buildCapture(t model.Type, content, source string) model.Capture {
	switch t {
	case model.TypeURL:
		return model.URLCapture{Content: content, Source: source, URL: content}
	case model.TypeImage:
		return model.ImageCapture{Content: content, Source: source}
	case model.TypeAudio:
		return model.AudioCapture{Content: content, Source: source}
	case model.TypeFile:
		return model.FileCapture{Content: content, Source: source}
	default:
		return model.TextCapture{Content: content, Source: source}
	}
}

// readContent returns content from args or piped stdin.
func readContent(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitErr("read stdin", err)
		}
		return string(b)
	}
	return ""
}

func runClassify(cmd *cobra.Command, args []string) {
	typeFlag, _ := cmd.Flags().GetString("type")
	fast, _ := cmd.Flags().GetBool("fast")

	content := strings.TrimSpace(readContent(args))
	if content == "" {
		exitErr("classify", fmt.Errorf("content is required (positional arg or stdin)"))
	}

	t := detectType(content)
	if typeFlag != "" {
		t = model.Type(typeFlag)
		if !model.ValidTypes[t] {
			exitErr("classify", fmt.Errorf("invalid type %q", typeFlag))
		}
	}

	h := classify.New()
	if fast {
		h.Latency = 0
	}

	meta, err := h.Classify(cmd.Context(), buildCapture(t, content, "cli"))
	if err != nil {
		exitErr("classify", err)
	}

	b, _ := json.MarshalIndent(meta, "", "  ")
	fmt.Println(string(b))
}
