package quizgen

import (
	"context"
	"fmt"

	"github.com/yuhsin-liao/bopomo/internal/quiz"
)

// Source produces a question batch for a difficulty level. A returned
// batch is fully validated: every question is usable or the whole call
// fails.
type Source interface {
	Fetch(ctx context.Context, level quiz.Level) ([]quiz.Question, error)
}

// GenerationError is the single failure class a Source surfaces: network
// trouble, empty payloads, parse failures, and schema or batch-shape
// violations all end up here. The UI maps it to the error screen.
type GenerationError struct {
	Level quiz.Level
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating %s quiz: %v", e.Level, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
