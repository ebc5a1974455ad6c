package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// harnessCmdTimeout bounds how long a command may block. Cursor blink ticks
// and backend waits run longer and are dropped.
const harnessCmdTimeout = 100 * time.Millisecond

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Init runs the model's Init command.
func (h *Harness) Init() {
	if h.model == nil {
		return
	}
	h.processCmd(h.model.Init())
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// SendKey sends a key press by name, such as "enter", "esc" or "y".
func (h *Harness) SendKey(key string) {
	switch key {
	case "enter":
		h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	case "up":
		h.Send(tea.KeyMsg{Type: tea.KeyUp})
	case "down":
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	case "home":
		h.Send(tea.KeyMsg{Type: tea.KeyHome})
	case "end":
		h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	case "backspace":
		h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	case "ctrl+c":
		h.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	default:
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	}
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := run(next).(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			h.quit = true
		default:
			mdl, out := h.model.Update(msg)
			if updated, ok := mdl.(*Model); ok {
				h.model = updated
			}
			queue = append(queue, out)
		}
	}
}

func run(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(harnessCmdTimeout):
		return nil
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
