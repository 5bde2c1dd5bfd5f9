package quiz

import (
	"testing"
	"time"
)

func twoQuestions() []Question {
	return []Question{
		{
			Character:   "貓",
			Zhuyin:      "ㄇㄠ",
			Meaning:     "cat",
			Distractors: []string{"ㄇㄡ", "ㄋㄠ", "ㄇㄠˊ"},
		},
		{
			Character:   "狗",
			Zhuyin:      "ㄍㄡˇ",
			Meaning:     "dog",
			Distractors: []string{"ㄍㄨˇ", "ㄎㄡˇ", "ㄍㄡ"},
		},
	}
}

// startPlaying drives a fresh session into the playing phase.
func startPlaying(t *testing.T, qs []Question) *Session {
	t.Helper()
	s := NewSession()
	token, ok := s.SelectLevel(Beginner)
	if !ok {
		t.Fatal("SelectLevel rejected from menu")
	}
	if s.Phase() != PhaseLoading {
		t.Fatalf("Phase = %v, want PhaseLoading", s.Phase())
	}
	if !s.Begin(token, qs) {
		t.Fatal("Begin rejected a valid question set")
	}
	if s.Phase() != PhasePlaying {
		t.Fatalf("Phase = %v, want PhasePlaying", s.Phase())
	}
	return s
}

func TestNewSession_StartsAtMenu(t *testing.T) {
	s := NewSession()
	if s.Phase() != PhaseMenu {
		t.Errorf("Phase = %v, want PhaseMenu", s.Phase())
	}
	if s.Score() != 0 || s.Streak() != 0 {
		t.Errorf("fresh session has score=%d streak=%d", s.Score(), s.Streak())
	}
}

func TestBegin_RejectsEmptySet(t *testing.T) {
	s := NewSession()
	token, _ := s.SelectLevel(Beginner)
	if s.Begin(token, nil) {
		t.Error("Begin accepted an empty question set")
	}
	if s.Phase() != PhaseLoading {
		t.Errorf("Phase = %v, want PhaseLoading", s.Phase())
	}
}

// Scenario A: two correct answers, then gameover.
func TestFullRun_AllCorrect(t *testing.T) {
	qs := twoQuestions()
	s := startPlaying(t, qs)

	res, ok := s.Answer("ㄇㄠ")
	if !ok || !res.Correct {
		t.Fatalf("first answer: ok=%v correct=%v", ok, res.Correct)
	}
	if s.Score() != 10 {
		t.Errorf("score after first correct = %d, want 10", s.Score())
	}
	if s.Streak() != 1 {
		t.Errorf("streak after first correct = %d, want 1", s.Streak())
	}
	if res.Delay != 1500*time.Millisecond {
		t.Errorf("delay = %v, want 1.5s", res.Delay)
	}

	if !s.Advance(res.Token) {
		t.Fatal("advance to second question rejected")
	}
	if s.Index() != 1 {
		t.Fatalf("index = %d, want 1", s.Index())
	}
	if _, picked := s.Selected(); picked {
		t.Error("selection not cleared on advance")
	}

	res, ok = s.Answer("ㄍㄡˇ")
	if !ok || !res.Correct {
		t.Fatalf("second answer: ok=%v correct=%v", ok, res.Correct)
	}
	// 10 + (10 + 2*1) = 22, streak bonus uses the streak before this answer.
	if s.Score() != 22 {
		t.Errorf("score after second correct = %d, want 22", s.Score())
	}
	if s.Streak() != 2 {
		t.Errorf("streak = %d, want 2", s.Streak())
	}
	if s.CorrectCount() != 2 {
		t.Errorf("correct count = %d, want 2", s.CorrectCount())
	}

	if !s.Advance(res.Token) {
		t.Fatal("final advance rejected")
	}
	if s.Phase() != PhaseGameOver {
		t.Errorf("Phase = %v, want PhaseGameOver", s.Phase())
	}
}

// Scenario B: fetch failure leaves no partial state behind.
func TestFailFetch(t *testing.T) {
	s := NewSession()
	token, _ := s.SelectLevel(Advanced)
	if !s.FailFetch(token) {
		t.Fatal("FailFetch rejected a current token")
	}
	if s.Phase() != PhaseError {
		t.Errorf("Phase = %v, want PhaseError", s.Phase())
	}
	if s.ErrorMessage() != ErrLoadFailed {
		t.Errorf("error message = %q", s.ErrorMessage())
	}
	if s.Len() != 0 {
		t.Errorf("questions retained after failure: %d", s.Len())
	}
}

// Scenario C: a wrong answer resets the streak and leaves the score alone.
func TestAnswer_Incorrect(t *testing.T) {
	s := startPlaying(t, twoQuestions())

	res, ok := s.Answer("ㄇㄠ")
	if !ok {
		t.Fatal("answer rejected")
	}
	adv := res.Token
	if !s.Advance(adv) {
		t.Fatal("advance rejected")
	}

	res, ok = s.Answer("ㄍㄨˇ")
	if !ok {
		t.Fatal("answer rejected")
	}
	if res.Correct {
		t.Error("wrong option reported correct")
	}
	if s.Streak() != 0 {
		t.Errorf("streak = %d, want 0 after a miss", s.Streak())
	}
	if s.Score() != 10 {
		t.Errorf("score changed on a wrong answer: %d", s.Score())
	}
	if s.LastCorrect() {
		t.Error("LastCorrect = true after a miss")
	}
	sel, picked := s.Selected()
	if !picked || sel != "ㄍㄨˇ" {
		t.Errorf("Selected = %q, %v", sel, picked)
	}
	if res.Delay != 2500*time.Millisecond {
		t.Errorf("delay = %v, want 2.5s for a wrong answer", res.Delay)
	}
}

// Scenario D: a superseded fetch must not overwrite the newer session.
func TestSelectLevel_LastRequestWins(t *testing.T) {
	s := NewSession()
	first, _ := s.SelectLevel(Beginner)
	second, ok := s.SelectLevel(Advanced)
	if !ok {
		t.Fatal("second SelectLevel rejected while loading")
	}

	stale := []Question{{Character: "一", Zhuyin: "ㄧ", Meaning: "one", Distractors: []string{"ㄨ", "ㄩ", "ㄝ"}}}
	if s.Begin(first, stale) {
		t.Error("stale fetch result was applied")
	}
	if s.FailFetch(first) {
		t.Error("stale fetch failure was applied")
	}
	if s.Phase() != PhaseLoading {
		t.Fatalf("Phase = %v, want PhaseLoading", s.Phase())
	}

	if !s.Begin(second, twoQuestions()) {
		t.Error("current fetch result rejected")
	}
	if s.Level() != Advanced {
		t.Errorf("level = %v, want Advanced", s.Level())
	}
}

func TestAnswer_IdempotentPerQuestion(t *testing.T) {
	s := startPlaying(t, twoQuestions())

	res, _ := s.Answer("ㄇㄠ")
	score, streak := s.Score(), s.Streak()

	for _, opt := range []string{"ㄇㄠ", "ㄇㄡ", "ㄋㄠ"} {
		if _, ok := s.Answer(opt); ok {
			t.Errorf("second Answer(%q) accepted", opt)
		}
	}
	if s.Score() != score || s.Streak() != streak {
		t.Errorf("double answer mutated score/streak: %d/%d", s.Score(), s.Streak())
	}
	sel, _ := s.Selected()
	if sel != "ㄇㄠ" {
		t.Errorf("selection changed to %q", sel)
	}

	// The original token still advances.
	if !s.Advance(res.Token) {
		t.Error("advance rejected after repeat answers")
	}
}

func TestAnswer_GuardsOutsidePlaying(t *testing.T) {
	s := NewSession()
	if _, ok := s.Answer("ㄇㄠ"); ok {
		t.Error("Answer accepted in menu phase")
	}
	s.SelectLevel(Beginner)
	if _, ok := s.Answer("ㄇㄠ"); ok {
		t.Error("Answer accepted while loading")
	}
}

func TestAdvance_StaleTimerSuppressed(t *testing.T) {
	s := startPlaying(t, twoQuestions())
	res, _ := s.Answer("ㄇㄠ")
	s.Advance(res.Token)

	// Timer from question 0 fires again after we've moved on.
	if s.Advance(res.Token) {
		t.Error("stale advance token accepted on a later question")
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}
}

func TestAdvance_SuppressedAfterNewLevelSelect(t *testing.T) {
	s := startPlaying(t, twoQuestions())
	res, _ := s.Answer("ㄇㄡ") // wrong: 2.5s timer pending
	s.Advance(res.Token)
	res, _ = s.Answer("ㄍㄡˇ")
	s.Advance(res.Token) // gameover

	// Player restarts and picks a new level before the old timer fires.
	s.Restart()
	token, _ := s.SelectLevel(Intermediate)
	s.Begin(token, twoQuestions())

	if s.Advance(res.Token) {
		t.Error("timer from the previous run mutated the new session")
	}
	if s.Index() != 0 || s.Phase() != PhasePlaying {
		t.Errorf("session disturbed: phase=%v index=%d", s.Phase(), s.Index())
	}
}

func TestAdvance_RequiresPendingAnswer(t *testing.T) {
	s := startPlaying(t, twoQuestions())
	if s.Advance(1) {
		t.Error("Advance applied with no answer pending")
	}
}

func TestRestart(t *testing.T) {
	s := startPlaying(t, twoQuestions())
	if s.Restart() {
		t.Error("Restart accepted mid-game")
	}

	res, _ := s.Answer("ㄇㄠ")
	s.Advance(res.Token)
	res, _ = s.Answer("ㄍㄡˇ")
	s.Advance(res.Token)

	if s.Phase() != PhaseGameOver {
		t.Fatalf("Phase = %v, want PhaseGameOver", s.Phase())
	}
	if !s.Restart() {
		t.Fatal("Restart rejected from gameover")
	}
	if s.Phase() != PhaseMenu {
		t.Errorf("Phase = %v, want PhaseMenu", s.Phase())
	}

	// Stale gameover timer cannot touch the fresh session.
	if s.Advance(res.Token) {
		t.Error("stale advance accepted after restart")
	}
}

// Score strictly increases by 10 + 2*streak_before on every correct answer.
func TestScoreProgression(t *testing.T) {
	qs := make([]Question, 6)
	for i := range qs {
		qs[i] = Question{
			Character:   "茶",
			Zhuyin:      "ㄔㄚˊ",
			Meaning:     "tea",
			Distractors: []string{"ㄕㄚ", "ㄘㄚˊ", "ㄔㄜˊ"},
		}
	}
	s := startPlaying(t, qs)

	wantScore := 0
	for i := 0; i < len(qs); i++ {
		before := s.Streak()
		res, ok := s.Answer("ㄔㄚˊ")
		if !ok {
			t.Fatalf("answer %d rejected", i)
		}
		wantScore += 10 + 2*before
		if s.Score() != wantScore {
			t.Fatalf("score after answer %d = %d, want %d", i, s.Score(), wantScore)
		}
		if s.Streak() != before+1 {
			t.Fatalf("streak after answer %d = %d, want %d", i, s.Streak(), before+1)
		}
		s.Advance(res.Token)
	}
}

func TestOptions_SetEquality(t *testing.T) {
	qs := twoQuestions()
	s := startPlaying(t, qs)

	for i := 0; ; i++ {
		q, ok := s.Current()
		if !ok {
			break
		}
		opts := s.Options()
		if len(opts) != len(q.Distractors)+1 {
			t.Fatalf("question %d: %d options, want %d", i, len(opts), len(q.Distractors)+1)
		}
		seen := make(map[string]bool, len(opts))
		for _, o := range opts {
			seen[o] = true
		}
		if !seen[q.Zhuyin] {
			t.Errorf("question %d: correct answer missing from options", i)
		}
		for _, d := range q.Distractors {
			if !seen[d] {
				t.Errorf("question %d: distractor %q missing from options", i, d)
			}
		}

		res, ok := s.Answer(q.Zhuyin)
		if !ok {
			t.Fatal("answer rejected")
		}
		s.Advance(res.Token)
	}
}

// Options are computed once per question entry, not per access.
func TestOptions_StablePerQuestion(t *testing.T) {
	s := startPlaying(t, twoQuestions())
	first := s.Options()
	for i := 0; i < 20; i++ {
		again := s.Options()
		for j := range first {
			if first[j] != again[j] {
				t.Fatal("options reshuffled between accesses")
			}
		}
	}
}

func TestSingleQuestionSession(t *testing.T) {
	one := twoQuestions()[:1]
	s := startPlaying(t, one)
	res, _ := s.Answer("ㄇㄠ")
	if !s.Advance(res.Token) {
		t.Fatal("advance rejected")
	}
	if s.Phase() != PhaseGameOver {
		t.Errorf("Phase = %v, want PhaseGameOver after the only question", s.Phase())
	}
}
