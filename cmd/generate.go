package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var (
	generateCount      int
	generateDifficulty string
)

var generateCmd = &cobra.Command{
	Use:   "generate [topic]",
	Short: "Generate practice problems on a topic",
	Example: `  quantumin generate derivatives
  quantumin generate "u-substitution" -n 3 -d hard`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		topic := strings.Join(args, " ")

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

		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Generating..."
		s.Start()
		set, err := session.GenerateProblems(context.Background(), topic, generateDifficulty, generateCount)
		s.Stop()

		if err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\n\033[1;36m%s\033[0m \033[90m(%s)\033[0m\n\n", set.Topic, generateDifficulty)
		for i, p := range set.Problems {
			fmt.Printf("  \033[32m%d.\033[0m %s\n", i+1, p.Question)
			if p.Hint != "" {
				fmt.Printf("     \033[90mhint: %s\033[0m\n", p.Hint)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 5, "Number of problems")
	generateCmd.Flags().StringVarP(&generateDifficulty, "difficulty", "d", "medium", "Difficulty: easy, medium or hard")
}
