package quizgen

import (
	"fmt"
	"strings"

	"github.com/yuhsin-liao/bopomo/internal/quiz"
)

const systemPrompt = `You are a Mandarin teacher creating a zhuyin (bopomofo) reading quiz for learners of Traditional Chinese.

Rules:
- Every question tests one Traditional Chinese character (one glyph, as used in Taiwan).
- "zhuyin" is the character's full zhuyin transcription including the tone mark, e.g. "ㄇㄠ" or "ㄍㄡˇ".
- "meaning" is a short English gloss, a few words at most.
- "distractors" are exactly 3 plausible but wrong zhuyin transcriptions. Good distractors swap a similar-sounding initial or final, or change only the tone. Never repeat the correct transcription and never repeat a distractor.
- Do not repeat a character within one quiz.
- Match the requested difficulty: beginner uses the most common everyday characters, intermediate uses common vocabulary beyond the basics, advanced uses literary or low-frequency characters with tricky readings.`

// levelDescriptions give the model a concrete target per difficulty.
var levelDescriptions = map[quiz.Level]string{
	quiz.Beginner:     "the 500 most common characters: pronouns, numbers, family, food, everyday objects",
	quiz.Intermediate: "common characters beyond the first 500: weather, travel, work, feelings",
	quiz.Advanced:     "low-frequency, literary, or multi-reading characters that native speakers find tricky",
}

// buildPrompt constructs the user message for one batch.
func buildPrompt(level quiz.Level, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a quiz of %d questions.\n", count)
	fmt.Fprintf(&b, "Difficulty: %s\n", strings.ToLower(level.String()))
	fmt.Fprintf(&b, "Character pool: %s\n", levelDescriptions[level])
	return b.String()
}
