package cmd

import (
	"fmt"
	"os"

	"github.com/DanOgh07/quantumin-solver/internal/solver"

	"github.com/spf13/cobra"
)

var (
	historySearch string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently solved problems",
	Example: `  quantumin history
  quantumin history -n 25
  quantumin history --search "sin"`,
	Run: func(cmd *cobra.Command, args []string) {
		session, db, err := openSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		var items []*solver.Solution
		if historySearch != "" {
			items, err = session.Search(historySearch)
			if err != nil {
				fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
				os.Exit(1)
			}
		} else {
			items = session.Recent()
		}

		if len(items) == 0 {
			fmt.Println("No solutions recorded yet")
			return
		}

		if historyLimit > 0 && len(items) > historyLimit {
			items = items[:historyLimit]
		}

		for _, sol := range items {
			fmt.Printf("\033[90m%s\033[0m  \033[1m%s\033[0m\n", sol.CreatedAt.Local().Format("2006-01-02 15:04"), sol.Input)
			fmt.Printf("         \033[32m= %s\033[0m \033[90m[%s]\033[0m\n", sol.Result, sol.Category)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&historySearch, "search", "s", "", "Search past inputs and results")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Limit the number of entries shown")
}
