package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuhsin-liao/bopomo/internal/ui/theme"
)

// OptionList is the zhuyin answer selector. It only tracks the cursor
// and the locked choice; correctness comes from the caller via Reveal,
// since the component never sees which transcription is right.
type OptionList struct {
	Options      []string
	Cursor       int
	Locked       bool
	ChosenIndex  int
	CorrectIndex int
}

// NewOptionList creates a selector over the given options.
func NewOptionList(options []string) OptionList {
	return OptionList{
		Options:      options,
		Cursor:       0,
		ChosenIndex:  -1,
		CorrectIndex: -1,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Once locked, all
// input is ignored until the caller replaces the component.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Locked {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "1", "2", "3", "4":
		idx := int(kmsg.String()[0] - '1')
		if idx < len(o.Options) {
			o.Cursor = idx
			o.Locked = true
			o.ChosenIndex = idx
		}
	case "enter":
		o.Locked = true
		o.ChosenIndex = o.Cursor
	}

	return o, nil
}

// Chosen returns the locked option text, or "" when nothing is locked.
func (o OptionList) Chosen() string {
	if !o.Locked || o.ChosenIndex < 0 || o.ChosenIndex >= len(o.Options) {
		return ""
	}
	return o.Options[o.ChosenIndex]
}

// Reveal marks the correct option so View can color the outcome.
func (o OptionList) Reveal(correctIndex int) OptionList {
	o.CorrectIndex = correctIndex
	return o
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor && !o.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if o.Locked && o.CorrectIndex >= 0 {
			if i == o.CorrectIndex {
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			} else if i == o.ChosenIndex {
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == o.Cursor {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}
