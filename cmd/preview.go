package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuhsin-liao/bopomo/internal/llm"
	"github.com/yuhsin-liao/bopomo/internal/quiz"
	"github.com/yuhsin-liao/bopomo/internal/quizgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate and answer a question batch in plain text (no database)",
	Long: `Generate a question set for a level and answer it on stdin.

This is a stateless developer tool — no event log, no TUI. Useful for
evaluating question quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("level", "beginner", "Difficulty: beginner, intermediate or advanced")
	previewCmd.Flags().Int("count", 10, "Number of questions to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	levelVal, _ := cmd.Flags().GetString("level")
	count, _ := cmd.Flags().GetInt("count")

	level, ok := quiz.ParseLevel(strings.ToLower(levelVal))
	if !ok {
		return fmt.Errorf("invalid level %q: must be beginner, intermediate or advanced", levelVal)
	}

	// No event log — logging skipped.
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil, "")
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	cfg := quizgen.DefaultConfig()
	if count > 0 {
		cfg.Count = count
	}
	source := quizgen.New(provider, cfg)

	fmt.Printf("Level: %s\nGenerating %d questions...\n\n", level, cfg.Count)

	questions, err := source.Fetch(ctx, level)
	if err != nil {
		return fmt.Errorf("generate questions: %w", err)
	}

	// Drive the same machine the TUI uses.
	session := quiz.NewSession()
	token, _ := session.SelectLevel(level)
	session.Begin(token, questions)

	scanner := bufio.NewScanner(os.Stdin)

	for {
		q, ok := session.Current()
		if !ok {
			break
		}
		opts := session.Options()

		fmt.Printf("── Question %d/%d ──\n", session.Index()+1, session.Len())
		fmt.Printf("%s  (%s)\n", q.Character, q.Meaning)
		for i, opt := range opts {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}

		fmt.Print("\nYour answer (1-4): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			return nil
		}
		pick, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || pick < 1 || pick > len(opts) {
			fmt.Println("(skipped)")
			fmt.Println()
			pick = 0
		}

		var res quiz.AnswerResult
		if pick > 0 {
			res, _ = session.Answer(opts[pick-1])
			if res.Correct {
				fmt.Println("\033[32m✓ Correct!\033[0m")
			} else {
				fmt.Printf("\033[31m✗ Wrong.\033[0m %s is read %s\n", q.Character, q.Zhuyin)
			}
			fmt.Println()
			session.Advance(res.Token)
		} else {
			res, _ = session.Answer("")
			session.Advance(res.Token)
		}
	}

	fmt.Printf("── Summary: %d/%d correct, %d points ──\n",
		session.CorrectCount(), session.Len(), session.Score())
	return nil
}
