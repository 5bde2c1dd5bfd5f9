package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yuhsin-liao/bopomo/internal/llm"
	"github.com/yuhsin-liao/bopomo/internal/quiz"
)

// LLMSource implements Source on top of an llm.Provider.
type LLMSource struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMSource.
func New(provider llm.Provider, cfg Config) *LLMSource {
	return &LLMSource{provider: provider, config: cfg}
}

// questionItem is one raw item before validation.
type questionItem struct {
	Character   string   `json:"character"`
	Zhuyin      string   `json:"zhuyin"`
	Meaning     string   `json:"meaning"`
	Distractors []string `json:"distractors"`
}

// batchOutput is the object-rooted response shape.
type batchOutput struct {
	Questions []questionItem `json:"questions"`
}

// Fetch generates one validated question batch. A single provider
// failure fails the fetch; there is no retry here — the player restarts
// from the error screen.
func (s *LLMSource) Fetch(ctx context.Context, level quiz.Level) ([]quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(level, s.config.Count),
		Schema:      QuizSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Level: level, Err: err}
	}

	items, err := decodeBatch(resp.Content)
	if err != nil {
		return nil, &GenerationError{Level: level, Err: err}
	}

	if len(items) == 0 {
		return nil, &GenerationError{Level: level, Err: fmt.Errorf("empty question batch")}
	}
	if s.config.MaxCount > 0 && len(items) > s.config.MaxCount {
		return nil, &GenerationError{Level: level, Err: fmt.Errorf("oversized batch: %d questions", len(items))}
	}

	questions := make([]quiz.Question, len(items))
	for i, item := range items {
		if err := validateItem(item); err != nil {
			// One bad item poisons the whole batch; the session must
			// never hold a partially valid question list.
			return nil, &GenerationError{Level: level, Err: fmt.Errorf("question %d: %w", i+1, err)}
		}
		questions[i] = quiz.Question{
			Character:   item.Character,
			Zhuyin:      item.Zhuyin,
			Meaning:     item.Meaning,
			Distractors: item.Distractors,
		}
	}

	return questions, nil
}

// decodeBatch accepts the object root produced under the schema, or a
// bare top-level array from providers running without structured output.
func decodeBatch(raw json.RawMessage) ([]questionItem, error) {
	var out batchOutput
	if err := json.Unmarshal(raw, &out); err == nil && out.Questions != nil {
		return out.Questions, nil
	}

	var items []questionItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse question batch: %w", err)
	}
	return items, nil
}

// validateItem enforces the per-question contract.
func validateItem(item questionItem) error {
	if item.Character == "" {
		return fmt.Errorf("empty character")
	}
	if item.Zhuyin == "" {
		return fmt.Errorf("empty zhuyin")
	}
	if item.Meaning == "" {
		return fmt.Errorf("empty meaning")
	}
	if len(item.Distractors) != 3 {
		return fmt.Errorf("got %d distractors, want 3", len(item.Distractors))
	}
	seen := make(map[string]bool, 3)
	for _, d := range item.Distractors {
		if d == "" {
			return fmt.Errorf("empty distractor")
		}
		if d == item.Zhuyin {
			return fmt.Errorf("distractor %q equals the correct answer", d)
		}
		if seen[d] {
			return fmt.Errorf("duplicate distractor %q", d)
		}
		seen[d] = true
	}
	return nil
}
