package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/backend"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil && m.exitReason == "" {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent records the poll outcome and rebuilds the menu when the
// chain graph or the recorder status moved.
func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		return nil
	}
	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}

	res := m.dispatcher.Handle(evt)
	switch {
	case res.ChainsUpdated:
		return m.refreshLevels(backend.KindChains.String())
	case res.RecorderUpdated:
		return m.refreshLevels(backend.KindRecorder.String())
	}
	return nil
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = err.Error()
			}
			return true, msg
		}
	}
	return false, ""
}
