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

var analyzeCmd = &cobra.Command{
	Use:   "analyze [problem]",
	Short: "Analyze a problem without solving it",
	Long: `Ask the connected LLM provider what kind of problem this is, which
approach fits and which concepts it exercises.`,
	Example: `  quantumin analyze "integral(x * e^x)"`,
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := strings.Join(args, " ")

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
		s.Suffix = " Analyzing..."
		s.Start()
		analysis, err := session.Analyze(context.Background(), input)
		s.Stop()

		if err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\n\033[1;36m%s\033[0m\n\n", input)
		fmt.Printf("  \033[90mcategory\033[0m    %s\n", analysis.Category)
		fmt.Printf("  \033[90mapproach\033[0m    %s\n", analysis.Approach)
		fmt.Printf("  \033[90mconcepts\033[0m    %s\n", analysis.Concepts)
		fmt.Printf("  \033[90mdifficulty\033[0m  %s\n", analysis.Difficulty)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
