// Package speech vocalizes quiz characters through the platform's
// text-to-speech engine. Everything here is best-effort: speaking is
// fire-and-forget and a missing engine is a silent no-op, so audio can
// never disturb the quiz state machine.
package speech

import (
	"os/exec"
	"runtime"
	"strings"
)

// Speaker vocalizes text. Implementations must return immediately and
// swallow all failures.
type Speaker interface {
	Speak(text string)
}

// Noop is a Speaker that does nothing. Used in tests and on platforms
// with no TTS engine.
type Noop struct{}

func (Noop) Speak(string) {}

// engine describes one platform TTS invocation.
type engine struct {
	binary string
	args   func(text string) []string
}

// Mandarin (Taiwan) voice at 0.8x normal rate. `say` rates are words per
// minute (~175 is normal); espeak rates are in wpm too (175 default).
var engines = map[string][]engine{
	"darwin": {
		{binary: "say", args: func(text string) []string {
			return []string{"-v", "Meijia", "-r", "140", text}
		}},
	},
	"linux": {
		{binary: "espeak-ng", args: func(text string) []string {
			return []string{"-v", "cmn", "-s", "140", text}
		}},
		{binary: "espeak", args: func(text string) []string {
			return []string{"-v", "zh", "-s", "140", text}
		}},
	},
	"windows": {
		{binary: "powershell", args: func(text string) []string {
			// The text is model output; doubling single quotes keeps it
			// inside the PowerShell string literal.
			quoted := strings.ReplaceAll(text, "'", "''")
			return []string{"-NoProfile", "-Command",
				"Add-Type -AssemblyName System.Speech;" +
					"$s = New-Object System.Speech.Synthesis.SpeechSynthesizer;" +
					"$s.Rate = -2; $s.Speak('" + quoted + "')"}
		}},
	},
}

// CommandSpeaker shells out to the system TTS binary.
type CommandSpeaker struct {
	engine engine
}

// NewSpeaker probes the platform for a usable TTS engine. When none is
// found it returns Noop — the quiz plays on without audio.
func NewSpeaker() Speaker {
	for _, e := range engines[runtime.GOOS] {
		if _, err := exec.LookPath(e.binary); err == nil {
			return &CommandSpeaker{engine: e}
		}
	}
	return Noop{}
}

// Speak vocalizes text in the background. Errors are discarded; there is
// nobody to report them to mid-quiz.
func (s *CommandSpeaker) Speak(text string) {
	if text == "" {
		return
	}
	cmd := exec.Command(s.engine.binary, s.engine.args(text)...)
	go func() {
		_ = cmd.Run()
	}()
}
