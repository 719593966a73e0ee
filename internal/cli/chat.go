package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/memomemo/memomemo/internal/chat"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the mock assistant",
		Long:  "Interactive chat against the canned-response assistant. Replies are picked at random and do not depend on the input.",
		Run:   runChat,
	}

	cmd.Flags().Bool("html", false, "Print responses as escaped HTML blocks")
	cmd.Flags().Bool("fast", false, "Skip the simulated typing delay")

	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, args []string) {
	asHTML, _ := cmd.Flags().GetBool("html")
	fast, _ := cmd.Flags().GetBool("fast")

	r := chat.NewResponder()
	printMessage(r.Greeting(), asHTML)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}

		if !fast {
			time.Sleep(r.Delay())
		}
		printMessage(r.Reply(line), asHTML)
	}
}

func printMessage(m chat.Message, asHTML bool) {
	blocks := chat.Parse(m.Text)
	if asHTML {
		fmt.Println(chat.RenderHTML(blocks))
	} else {
		fmt.Println(chat.RenderText(blocks))
	}
	fmt.Println()
}
