package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yuhsin-liao/bopomo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "bopomo",
	Short: "Zhuyin quiz for Traditional Chinese characters",
	Long:  "Bopomo — terminal quiz game that drills matching Traditional Chinese characters to their zhuyin (ㄅㄆㄇ) transcription, with AI-generated question sets.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Pick up API keys from a local .env; absence is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event log (overrides BOPOMO_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the event log path using --db flag (highest
// priority), then BOPOMO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
