package quiz

// Question is a single quiz item: a Traditional Chinese character, its
// zhuyin transcription, a short gloss, and three wrong transcriptions.
// Immutable once produced by a question source.
type Question struct {
	// Character is the glyph being tested, e.g. "貓".
	Character string

	// Zhuyin is the correct transcription, e.g. "ㄇㄠ".
	Zhuyin string

	// Meaning is a short English gloss shown after answering.
	Meaning string

	// Distractors are incorrect transcriptions, distinct from Zhuyin.
	// Sources produce exactly 3; rendering tolerates fewer.
	Distractors []string
}

// Level selects the difficulty of generated questions.
type Level int

const (
	Beginner Level = iota
	Intermediate
	Advanced
)

// Levels lists all difficulty levels in menu order.
var Levels = []Level{Beginner, Intermediate, Advanced}

func (l Level) String() string {
	switch l {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	}
	return "Unknown"
}

// ParseLevel maps a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "beginner", "Beginner":
		return Beginner, true
	case "intermediate", "Intermediate":
		return Intermediate, true
	case "advanced", "Advanced":
		return Advanced, true
	}
	return Beginner, false
}
