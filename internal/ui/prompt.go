package ui

import tea "github.com/charmbracelet/bubbletea"

type promptResult struct {
	Cmd  tea.Cmd
	Info string
	Err  error
}

// withPrompt resets pending state before a prompt takes over the screen and
// runs the provided action. The action can return a follow-up command, an
// informational message or an error for the status line.
func (m *Model) withPrompt(action func() promptResult) tea.Cmd {
	m.clearPending()
	m.forceClearInfo()
	m.errMsg = ""
	if action == nil {
		return nil
	}
	result := action()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		return nil
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	}
	return result.Cmd
}
