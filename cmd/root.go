package cmd

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/DanOgh07/quantumin-solver/internal/config"
	"github.com/DanOgh07/quantumin-solver/internal/storage"
	"github.com/DanOgh07/quantumin-solver/internal/tui"
	"github.com/DanOgh07/quantumin-solver/internal/tutor"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quantumin",
	Short: "Calculus solver and tutor",
	Long: `quantumin solves calculus problems step by step: derivatives,
integrals, limits, equations and more. Connect an LLM provider to ask
questions in plain language and get tutoring.`,
	Run: func(cmd *cobra.Command, args []string) {
		p := tea.NewProgram(tui.InitialModel(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openSession wires config, storage and the tutoring session for
// one-shot commands. The caller closes the returned database.
func openSession() (*tutor.Session, *sql.DB, error) {
	cfg := config.Load()
	db, err := storage.InitDB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return tutor.NewSession(cfg, db), db, nil
}
