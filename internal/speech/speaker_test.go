package speech

import (
	"strings"
	"testing"
)

func TestNoopSpeak(t *testing.T) {
	// Must not panic or block.
	Noop{}.Speak("貓")
	Noop{}.Speak("")
}

func TestNewSpeaker_NeverNil(t *testing.T) {
	if NewSpeaker() == nil {
		t.Fatal("NewSpeaker returned nil")
	}
}

func TestCommandSpeaker_EmptyTextIsNoop(t *testing.T) {
	s := &CommandSpeaker{engine: engine{binary: "definitely-not-a-binary"}}
	// Empty text returns before exec; must not panic.
	s.Speak("")
}

func TestWindowsEngine_QuotesStayInsideLiteral(t *testing.T) {
	// Generated text must not be able to close the PowerShell string
	// literal and run trailing commands.
	const text = "貓'); Start-Process calc #"

	args := engines["windows"][0].args(text)
	script := args[len(args)-1]

	if strings.Contains(script, text) {
		t.Fatalf("text interpolated unescaped: %s", script)
	}
	if !strings.Contains(script, "$s.Speak('貓''); Start-Process calc #')") {
		t.Errorf("single quotes not doubled: %s", script)
	}
}

func TestWindowsEngine_PlainTextUnchanged(t *testing.T) {
	args := engines["windows"][0].args("貓")
	script := args[len(args)-1]
	if !strings.Contains(script, "$s.Speak('貓')") {
		t.Errorf("plain text mangled: %s", script)
	}
}
