package menu

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/logging/events"
)

const cleanLearnMessage = "Do you want to clean MIDI-learn for ALL controls in all engines in the whole chain?"

func loadMIDILearnMenu(Context) ([]Item, error) {
	return []Item{
		{ID: "enter", Label: "Enter MIDI-learn"},
		{ID: "clean", Label: "Clean MIDI-learn"},
	}, nil
}

// EnterMIDILearnAction closes the menu and puts the chain in MIDI-learn mode.
func EnterMIDILearnAction(ctx Context, item Item) tea.Cmd {
	if ctx.Root == nil || ctx.Graph == nil {
		return errorResult(ErrNoLayer)
	}
	return func() tea.Msg {
		if err := ctx.Graph.EnterMIDILearn(ctx.Root); err != nil {
			return ActionResult{Err: err}
		}
		events.Learn.Enter(ctx.Root.ID)
		return ActionResult{Info: "MIDI-learn enabled", Close: true}
	}
}

// CleanMIDILearnAction asks before dropping every binding in the chain.
func CleanMIDILearnAction(ctx Context, item Item) tea.Cmd {
	if ctx.Root == nil || ctx.Graph == nil {
		return errorResult(ErrNoLayer)
	}
	return func() tea.Msg {
		return ConfirmPrompt{
			Context: ctx,
			Action:  "chain:midi-learn:clean",
			Message: cleanLearnMessage,
			Confirm: cleanMIDILearnCommand,
		}
	}
}

func cleanMIDILearnCommand(ctx Context) tea.Cmd {
	return func() tea.Msg {
		if err := ctx.Graph.MIDIUnlearn(ctx.Root); err != nil {
			return ActionResult{Err: err}
		}
		events.Learn.Clean(ctx.Root.ID)
		return ActionResult{Info: "MIDI-learn cleaned"}
	}
}
