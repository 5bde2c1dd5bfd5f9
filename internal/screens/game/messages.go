package game

import (
	"github.com/yuhsin-liao/bopomo/internal/quiz"
)

// levelChosenMsg is sent when the player picks a level on the menu.
type levelChosenMsg struct {
	Level quiz.Level
}

// questionsMsg carries the result of a question fetch. Token ties the
// result back to the request that started it; the session drops results
// from superseded fetches.
type questionsMsg struct {
	Token     uint64
	Questions []quiz.Question
	Err       error
}

// advanceMsg fires after the feedback delay to move to the next
// question. Token invalidates timers from questions already left behind.
type advanceMsg struct {
	Token uint64
}
