package quiz

import "time"

// Phase is the session's screen state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseLoading
	PhasePlaying
	PhaseGameOver
	PhaseError
)

const (
	// Points for a correct answer before the streak bonus.
	basePoints = 10
	// Bonus per consecutive correct answer already on the streak.
	streakBonus = 2

	// How long the feedback stays up before auto-advancing. Wrong answers
	// get longer so the revealed correction can be read.
	correctDelay = 1500 * time.Millisecond
	wrongDelay   = 2500 * time.Millisecond
)

// ErrLoadFailed is the fixed user-facing message for a failed fetch.
const ErrLoadFailed = "Couldn't create your quiz. Check your connection and API key, then try again."

// AnswerResult reports the outcome of an accepted answer and what the
// caller must schedule next.
type AnswerResult struct {
	Correct bool

	// Delay until Advance should be delivered.
	Delay time.Duration

	// Token must be passed back to Advance. A token minted before the
	// session moved on is rejected, so stale timers can never fire into
	// a newer question or a fresh session.
	Token uint64
}

// Session is the quiz state machine. All mutations happen through its
// methods in response to discrete events; invalid transitions are no-ops.
// Not safe for concurrent use — the Bubble Tea update loop (or any other
// single-threaded event loop) is the expected caller.
type Session struct {
	phase Phase
	level Level

	questions []Question
	index     int

	score   int
	streak  int
	correct int

	selected    string
	hasSelected bool
	lastCorrect bool

	options []string

	errMsg string

	// fetchToken implements last-request-wins for in-flight fetches.
	// advanceToken invalidates deferred advance timers.
	fetchToken   uint64
	advanceToken uint64

	shuffle func([]string)
}

// NewSession creates a session in the menu phase.
func NewSession() *Session {
	return &Session{shuffle: shuffleStrings}
}

func (s *Session) Phase() Phase    { return s.phase }
func (s *Session) Level() Level    { return s.level }
func (s *Session) Score() int      { return s.score }
func (s *Session) Streak() int     { return s.streak }
func (s *Session) CorrectCount() int { return s.correct }
func (s *Session) Index() int      { return s.index }
func (s *Session) Len() int        { return len(s.questions) }
func (s *Session) ErrorMessage() string { return s.errMsg }

// Current returns the question being shown, valid only while playing.
func (s *Session) Current() (Question, bool) {
	if s.phase != PhasePlaying || s.index >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Options returns the shuffled answer options for the current question.
// The slice is computed once on question entry, not per render.
func (s *Session) Options() []string {
	return s.options
}

// Selected reports the option picked for the current question, if any.
func (s *Session) Selected() (string, bool) {
	return s.selected, s.hasSelected
}

// LastCorrect is meaningful only while Selected reports true.
func (s *Session) LastCorrect() bool { return s.lastCorrect }

// SelectLevel starts loading questions for the given level. Allowed from
// the menu, or from loading (a newer request supersedes the in-flight one).
// The returned token identifies this fetch; Begin and FailFetch ignore
// results carrying an older token.
func (s *Session) SelectLevel(level Level) (uint64, bool) {
	if s.phase != PhaseMenu && s.phase != PhaseLoading {
		return 0, false
	}
	s.phase = PhaseLoading
	s.level = level
	s.errMsg = ""
	s.fetchToken++
	s.advanceToken++ // kill any timer from a previous run
	return s.fetchToken, true
}

// Begin installs a fetched question set and enters the playing phase.
// Ignored when the token is stale, the session is no longer loading, or
// the set is empty.
func (s *Session) Begin(token uint64, questions []Question) bool {
	if s.phase != PhaseLoading || token != s.fetchToken || len(questions) == 0 {
		return false
	}
	s.phase = PhasePlaying
	s.questions = questions
	s.index = 0
	s.score = 0
	s.streak = 0
	s.correct = 0
	s.clearSelection()
	s.options = s.shuffledOptions(questions[0])
	return true
}

// FailFetch moves a loading session to the error phase. Stale tokens are
// ignored so a superseded fetch cannot clobber a newer session.
func (s *Session) FailFetch(token uint64) bool {
	if s.phase != PhaseLoading || token != s.fetchToken {
		return false
	}
	s.phase = PhaseError
	s.errMsg = ErrLoadFailed
	return true
}

// Answer records the player's pick for the current question. The first
// call per question wins; anything after (or outside the playing phase)
// is a no-op with ok=false.
func (s *Session) Answer(option string) (AnswerResult, bool) {
	if s.phase != PhasePlaying || s.hasSelected {
		return AnswerResult{}, false
	}
	q := s.questions[s.index]
	isCorrect := option == q.Zhuyin

	if isCorrect {
		s.score += basePoints + streakBonus*s.streak
		s.streak++
		s.correct++
	} else {
		s.streak = 0
	}

	s.selected = option
	s.hasSelected = true
	s.lastCorrect = isCorrect

	s.advanceToken++
	delay := correctDelay
	if !isCorrect {
		delay = wrongDelay
	}
	return AnswerResult{Correct: isCorrect, Delay: delay, Token: s.advanceToken}, true
}

// Advance moves past the answered question: next question, or gameover
// after the last one. Only the token minted by the matching Answer call
// is honored.
func (s *Session) Advance(token uint64) bool {
	if s.phase != PhasePlaying || !s.hasSelected || token != s.advanceToken {
		return false
	}
	if s.index < len(s.questions)-1 {
		s.index++
		s.clearSelection()
		s.options = s.shuffledOptions(s.questions[s.index])
		return true
	}
	s.phase = PhaseGameOver
	return true
}

// Restart returns to the menu from a terminal phase. Accumulated state is
// discarded; SelectLevel reinitializes everything on the next run.
func (s *Session) Restart() bool {
	if s.phase != PhaseGameOver && s.phase != PhaseError {
		return false
	}
	s.phase = PhaseMenu
	s.questions = nil
	s.options = nil
	s.clearSelection()
	s.advanceToken++
	return true
}

func (s *Session) clearSelection() {
	s.selected = ""
	s.hasSelected = false
	s.lastCorrect = false
}

func (s *Session) shuffledOptions(q Question) []string {
	opts := make([]string, 0, len(q.Distractors)+1)
	opts = append(opts, q.Distractors...)
	opts = append(opts, q.Zhuyin)
	s.shuffle(opts)
	return opts
}
