package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yuhsin-liao/bopomo/internal/llm"
	"github.com/yuhsin-liao/bopomo/internal/quiz"
)

func validBatchJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{"character": "貓", "zhuyin": "ㄇㄠ", "meaning": "cat", "distractors": ["ㄇㄡ", "ㄋㄠ", "ㄇㄠˊ"]},
			{"character": "狗", "zhuyin": "ㄍㄡˇ", "meaning": "dog", "distractors": ["ㄍㄨˇ", "ㄎㄡˇ", "ㄍㄡ"]}
		]
	}`)
}

func TestFetch_ValidBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	src := New(mock, DefaultConfig())

	qs, err := src.Fetch(context.Background(), quiz.Beginner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].Character != "貓" || qs[0].Zhuyin != "ㄇㄠ" || qs[0].Meaning != "cat" {
		t.Errorf("first question = %+v", qs[0])
	}
	if len(qs[1].Distractors) != 3 {
		t.Errorf("distractors = %v", qs[1].Distractors)
	}

	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want exactly 1 (no retry)", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "zhuyin-quiz" {
		t.Error("request missing the quiz schema")
	}
	if !strings.Contains(req.Prompt, "beginner") {
		t.Errorf("prompt does not carry the difficulty: %q", req.Prompt)
	}
}

func TestFetch_BareArrayAccepted(t *testing.T) {
	raw := json.RawMessage(`[
		{"character": "一", "zhuyin": "ㄧ", "meaning": "one", "distractors": ["ㄨ", "ㄩ", "ㄧˊ"]}
	]`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	src := New(mock, DefaultConfig())

	qs, err := src.Fetch(context.Background(), quiz.Advanced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
}

func TestFetch_ProviderErrorWrapped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	src := New(mock, DefaultConfig())

	_, err := src.Fetch(context.Background(), quiz.Beginner)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("want GenerationError, got %v", err)
	}
	if genErr.Level != quiz.Beginner {
		t.Errorf("error level = %v", genErr.Level)
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Error("cause not preserved through the wrap")
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1 — generation must not retry", mock.CallCount())
	}
}

func TestFetch_MalformedBatches(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `not json at all`},
		{"empty batch", `{"questions": []}`},
		{"missing character", `{"questions": [{"character": "", "zhuyin": "ㄇㄠ", "meaning": "cat", "distractors": ["a","b","c"]}]}`},
		{"missing zhuyin", `{"questions": [{"character": "貓", "zhuyin": "", "meaning": "cat", "distractors": ["a","b","c"]}]}`},
		{"missing meaning", `{"questions": [{"character": "貓", "zhuyin": "ㄇㄠ", "meaning": "", "distractors": ["a","b","c"]}]}`},
		{"two distractors", `{"questions": [{"character": "貓", "zhuyin": "ㄇㄠ", "meaning": "cat", "distractors": ["a","b"]}]}`},
		{"four distractors", `{"questions": [{"character": "貓", "zhuyin": "ㄇㄠ", "meaning": "cat", "distractors": ["a","b","c","d"]}]}`},
		{"empty distractor", `{"questions": [{"character": "貓", "zhuyin": "ㄇㄠ", "meaning": "cat", "distractors": ["a","","c"]}]}`},
		{"distractor equals answer", `{"questions": [{"character": "貓", "zhuyin": "ㄇㄠ", "meaning": "cat", "distractors": ["ㄇㄠ","b","c"]}]}`},
		{"duplicate distractor", `{"questions": [{"character": "貓", "zhuyin": "ㄇㄠ", "meaning": "cat", "distractors": ["a","a","c"]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.raw)})
			src := New(mock, DefaultConfig())

			_, err := src.Fetch(context.Background(), quiz.Intermediate)
			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Errorf("want GenerationError, got %v", err)
			}
		})
	}
}

// A batch with one bad item among good ones fails whole — no partial data.
func TestFetch_OneBadItemFailsAll(t *testing.T) {
	raw := `{"questions": [
		{"character": "貓", "zhuyin": "ㄇㄠ", "meaning": "cat", "distractors": ["ㄇㄡ", "ㄋㄠ", "ㄇㄠˊ"]},
		{"character": "狗", "zhuyin": "ㄍㄡˇ", "meaning": "", "distractors": ["ㄍㄨˇ", "ㄎㄡˇ", "ㄍㄡ"]}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	src := New(mock, DefaultConfig())

	qs, err := src.Fetch(context.Background(), quiz.Beginner)
	if err == nil {
		t.Fatal("expected error for a batch with one malformed item")
	}
	if qs != nil {
		t.Errorf("partial batch returned: %v", qs)
	}
}

func TestFetch_OversizedBatch(t *testing.T) {
	var items []string
	for i := 0; i < 25; i++ {
		items = append(items, fmt.Sprintf(
			`{"character": "字", "zhuyin": "ㄗ%d", "meaning": "x", "distractors": ["a%d","b%d","c%d"]}`, i, i, i, i))
	}
	raw := `{"questions": [` + strings.Join(items, ",") + `]}`

	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	src := New(mock, DefaultConfig())

	if _, err := src.Fetch(context.Background(), quiz.Beginner); err == nil {
		t.Error("expected error for an oversized batch")
	}
}

func TestBuildPrompt_PerLevel(t *testing.T) {
	for _, level := range quiz.Levels {
		p := buildPrompt(level, 10)
		if !strings.Contains(p, strings.ToLower(level.String())) {
			t.Errorf("prompt for %v missing its difficulty label", level)
		}
		if !strings.Contains(p, "10") {
			t.Errorf("prompt for %v missing the count", level)
		}
	}
}
