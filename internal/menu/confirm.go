package menu

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/logging/events"
)

// ConfirmForm asks a yes/no question before running a destructive action.
type ConfirmForm struct {
	ctx     Context
	action  string
	message string
	run     func(Context) tea.Cmd
}

func NewConfirmForm(prompt ConfirmPrompt) *ConfirmForm {
	return &ConfirmForm{
		ctx:     prompt.Context,
		action:  prompt.Action,
		message: prompt.Message,
		run:     prompt.Confirm,
	}
}

func (f *ConfirmForm) Context() Context { return f.ctx }
func (f *ConfirmForm) ActionID() string { return f.action }
func (f *ConfirmForm) Title() string    { return f.message }
func (f *ConfirmForm) Help() string     { return "Press y or Enter to confirm. n or Esc to cancel." }

// Update handles a key press. It returns the command to run, whether the
// action was confirmed and whether the form was dismissed.
func (f *ConfirmForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false, false
	}
	switch key.String() {
	case "y", "Y", "enter":
		events.Confirm.Accept(f.action)
		if f.run == nil {
			return nil, true, false
		}
		return f.run(f.ctx), true, false
	case "n", "N", "esc", "ctrl+c":
		events.Confirm.Cancel(f.action)
		return nil, false, true
	}
	return nil, false, false
}
