package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var solveJSON bool

var solveCmd = &cobra.Command{
	Use:   "solve [problem]",
	Short: "Solve a calculus problem step by step",
	Long: `Solve a calculus problem and show the worked steps.

The problem is classified first (derivative, integral, limit, equation
and so on) and then handed to the matching solver. With a connected LLM
provider, plain-language questions are translated into math first.`,
	Example: `  quantumin solve "d/dx(x^3 + 2x^2 - 5x + 1)"
  quantumin solve "integral(x^2)"
  quantumin solve "lim x->0 sin(x)/x"
  quantumin solve "x^2 - 5x + 6 = 0"
  quantumin solve "what is the derivative of x squared"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := strings.Join(args, " ")

		session, db, err := openSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Solving..."
		s.Start()
		sol, err := session.Solve(context.Background(), input)
		s.Stop()

		if err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
			os.Exit(1)
		}

		if solveJSON {
			out, _ := json.MarshalIndent(sol, "", "  ")
			fmt.Println(string(out))
			return
		}

		fmt.Printf("\n\033[1;36m%s\033[0m \033[90m[%s]\033[0m\n", sol.Input, sol.Category)
		if sol.Method != "" {
			fmt.Printf("\033[90mmethod: %s\033[0m\n", sol.Method)
		}
		fmt.Println()
		for _, step := range sol.Steps {
			fmt.Printf("  \033[32m%d.\033[0m %s\n", step.Ordinal, step.Explanation)
			if step.Expression != "" {
				fmt.Printf("     \033[90m%s\033[0m\n", step.Expression)
			}
		}
		fmt.Printf("\n\033[1;32m= %s\033[0m\n", sol.Result)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "Print the solution as JSON")
}
