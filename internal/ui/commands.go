package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/logging"
	"github.com/atomicstack/chainmenu/internal/logging/events"
	"github.com/atomicstack/chainmenu/internal/menu"
)

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	m.clearPending()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		if result.Reopen {
			m.reloadLevel(m.currentLevel())
		}
		return nil
	}
	m.errMsg = ""
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	switch {
	case result.Close:
		events.Action.Success(result.Info, "close")
		return m.quit(result.Info)
	case result.Reopen:
		events.Action.Success(result.Info, "reopen")
		m.reloadLevel(m.currentLevel())
		return nil
	default:
		events.Action.Success(result.Info, "rebuild")
		return m.popToRoot()
	}
}

func (m *Model) handleConfirmPromptMsg(msg tea.Msg) tea.Cmd {
	prompt, ok := msg.(menu.ConfirmPrompt)
	if !ok {
		return nil
	}
	return m.withPrompt(func() promptResult {
		m.startConfirmForm(prompt)
		return promptResult{}
	})
}

func (m *Model) loadMenuCmd(id, title string, loader menu.Loader) tea.Cmd {
	ctx := m.menuContext()
	return func() tea.Msg {
		items, err := loader(ctx)
		if err != nil {
			logging.Error(err)
		}
		return categoryLoadedMsg{id: id, title: title, items: items, err: err}
	}
}

// categoryLoadedMsg mirrors the async loader response.
type categoryLoadedMsg struct {
	id    string
	title string
	items []menu.Item
	err   error
}

func (m *Model) menuContext() menu.Context {
	return menu.Context{
		Graph:        m.graph,
		Mixer:        m.mixer,
		Recorder:     m.recorder,
		Navigator:    m.navigator,
		Root:         m.root,
		Multichannel: m.multichannel,
	}
}
