package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	connectProvider string
	connectAPIKey   string
	connectModel    string
	connectBaseURL  string
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect an LLM provider for natural language features",
	Long: `Store LLM provider credentials so plain-language questions,
tutoring and problem generation work. Connecting again replaces the
previous configuration.`,
	Example: `  quantumin connect --api-key sk-...
  quantumin connect --provider openai --api-key sk-... --model gpt-4o-mini
  quantumin connect --provider huggingface --api-key hf_... --model mistralai/Mistral-7B-Instruct-v0.3`,
	Run: func(cmd *cobra.Command, args []string) {
		if connectAPIKey == "" {
			connectAPIKey = os.Getenv("QUANTUMIN_API_KEY")
		}

		session, db, err := openSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := session.Connect(connectProvider, connectAPIKey, connectModel, connectBaseURL); err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
			os.Exit(1)
		}

		provider, model := session.Provider()
		fmt.Printf("\033[32m✓\033[0m Connected to %s (%s)\n", provider, model)
	},
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Forget the stored LLM provider configuration",
	Run: func(cmd *cobra.Command, args []string) {
		session, db, err := openSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := session.Disconnect(); err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
			os.Exit(1)
		}
		fmt.Println("\033[32m✓\033[0m Disconnected, symbolic solving still works offline")
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(disconnectCmd)

	connectCmd.Flags().StringVar(&connectProvider, "provider", "", "Provider: openai or huggingface")
	connectCmd.Flags().StringVar(&connectAPIKey, "api-key", "", "API key (falls back to QUANTUMIN_API_KEY)")
	connectCmd.Flags().StringVar(&connectModel, "model", "", "Model name")
	connectCmd.Flags().StringVar(&connectBaseURL, "base-url", "", "Override the provider base URL")
}
