package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yuhsin-liao/bopomo/internal/app"
	"github.com/yuhsin-liao/bopomo/internal/llm"
	"github.com/yuhsin-liao/bopomo/internal/quizgen"
	"github.com/yuhsin-liao/bopomo/internal/speech"
	"github.com/yuhsin-liao/bopomo/internal/store"
)

// runApp opens the event log, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	runID := uuid.New().String()
	provider, err := llm.NewProviderFromEnv(ctx, st, runID)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	return app.Run(app.Options{
		Source:  quizgen.New(provider, quizgen.DefaultConfig()),
		Speaker: speech.NewSpeaker(),
	})
}
