package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/logging/events"
	"github.com/atomicstack/chainmenu/internal/menu"
)

func (m *Model) startConfirmForm(prompt menu.ConfirmPrompt) {
	m.confirmForm = menu.NewConfirmForm(prompt)
	m.mode = ModeConfirm
	events.Confirm.Prompt(prompt.Action, prompt.Message)
}

// handleConfirmForm routes key presses to the confirmation form. Other
// messages keep flowing through the regular handlers.
func (m *Model) handleConfirmForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.confirmForm == nil {
		m.mode = ModeMenu
		return false, nil
	}
	if _, ok := msg.(tea.KeyMsg); !ok {
		return false, nil
	}
	cmd, done, cancel := m.confirmForm.Update(msg)
	if cancel {
		m.confirmForm = nil
		m.mode = ModeMenu
		return true, nil
	}
	if done {
		actionID := m.confirmForm.ActionID()
		m.confirmForm = nil
		m.mode = ModeMenu
		if cmd == nil {
			return true, nil
		}
		m.startPending(actionID, "")
		return true, cmd
	}
	return true, nil
}

func (m *Model) viewConfirmFormWithHeader(header string) string {
	lines := make([]styledLine, 0, 8)
	if header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.confirmForm.Title(), style: styles.Confirm})
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.confirmForm.Help(), style: styles.Footer})
	if m.errMsg != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "Error: " + m.errMsg, style: styles.Error})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return strings.TrimRight(renderLines(lines), "\n")
}
