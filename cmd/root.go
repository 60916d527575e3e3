package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/aigua/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "aigua",
	Short: "The water cycle, for young explorers",
	Long:  "Aigua: an interactive terminal app that teaches children the water cycle, with an AI quiz and an AI assistant.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AIGUA_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides AIGUA_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("provider", "", "LLM provider: gemini, openai, anthropic, openrouter, mock (overrides AIGUA_LLM_PROVIDER)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then AIGUA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, fromEnv string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if fromEnv != "" {
		return fromEnv, store.EnsureDir(fromEnv)
	}
	return store.DefaultDBPath()
}
