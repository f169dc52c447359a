package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/DanOgh07/quantumin-solver/internal/solver"
	"github.com/DanOgh07/quantumin-solver/internal/tui"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var (
	explainLast    bool
	explainNoPager bool
)

var explainCmd = &cobra.Command{
	Use:   "explain [problem]",
	Short: "Get a narrated explanation of a solution",
	Long: `Solve a problem and ask the connected LLM provider to explain the
steps in plain language. With --last the most recent solution from
history is explained instead.`,
	Aliases: []string{"why"},
	Example: `  quantumin explain "d/dx(sin(x^2))"
  quantumin explain --last`,
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

		var solution *solver.Solution
		var solErr error
		if explainLast {
			recent := session.Recent()
			if len(recent) == 0 {
				fmt.Fprintln(os.Stderr, "\033[33m!\033[0m No solutions in history yet")
				os.Exit(1)
			}
			solution = recent[0]
		} else {
			if len(args) == 0 {
				fmt.Fprintln(os.Stderr, "\033[33m!\033[0m Give a problem to explain, or use --last")
				os.Exit(1)
			}
			input := strings.Join(args, " ")
			solution, solErr = session.Solve(context.Background(), input)
			if solErr != nil {
				fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", solErr)
				os.Exit(1)
			}
		}

		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Explaining..."
		s.Start()
		explanation, err := session.Explain(context.Background(), solution)
		s.Stop()

		if err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
			os.Exit(1)
		}

		title := fmt.Sprintf("%s = %s", solution.Input, solution.Result)
		if explainNoPager {
			fmt.Println(title)
			fmt.Println()
			fmt.Println(explanation)
			return
		}
		if err := tui.RunPager(title, explanation); err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().BoolVar(&explainLast, "last", false, "Explain the most recent solution from history")
	explainCmd.Flags().BoolVar(&explainNoPager, "no-pager", false, "Print instead of paging")
}
