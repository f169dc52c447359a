package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/DanOgh07/quantumin-solver/internal/llm"
	"github.com/DanOgh07/quantumin-solver/internal/textutil"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor [question]",
	Short: "Chat with the calculus tutor",
	Long: `Ask the tutor a question, or start an interactive session when no
question is given. Requires a connected LLM provider.`,
	Example: `  quantumin tutor "why does the chain rule work?"
  quantumin tutor`,
	Run: func(cmd *cobra.Command, args []string) {
		session, db, err := openSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		if !session.Connected() {
			fmt.Fprintln(os.Stderr, "\033[33m!\033[0m No LLM provider connected, run: quantumin connect --api-key <key>")
			os.Exit(1)
		}

		if len(args) > 0 {
			question := strings.Join(args, " ")
			askTutor(session.Tutor, nil, question)
			return
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "\033[33m!\033[0m Interactive tutoring needs a terminal")
			os.Exit(1)
		}

		fmt.Println("\033[1;36mquantumin tutor\033[0m \033[90m(exit or Ctrl+D to quit)\033[0m")
		reader := bufio.NewReader(os.Stdin)
		var transcript []llm.Message

		for {
			fmt.Print("\033[32m>\033[0m ")
			line, err := reader.ReadString('\n')
			if err != nil {
				fmt.Println()
				return
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				return
			}
			transcript = askTutor(session.Tutor, transcript, line)
		}
	},
}

type tutorFunc func(ctx context.Context, conversation []llm.Message) (string, error)

func askTutor(ask tutorFunc, transcript []llm.Message, question string) []llm.Message {
	transcript = append(transcript, llm.Message{Role: llm.RoleUser, Content: question})

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Thinking..."
	s.Start()
	reply, err := ask(context.Background(), transcript)
	s.Stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
		return transcript[:len(transcript)-1]
	}

	width := 100
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		width = w - 2
	}
	fmt.Println(textutil.WrapText(reply, width))

	return append(transcript, llm.Message{Role: llm.RoleAssistant, Content: reply})
}

func init() {
	rootCmd.AddCommand(tutorCmd)
}
