package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/engine"
	"github.com/atomicstack/chainmenu/internal/logging/events"
)

const (
	removeMIDIFXMessage  = "Do you really want to remove all MIDI effects from this chain?"
	removeAudioFXMessage = "Do you really want to remove all audio effects from this chain?"
	removeChainMessage   = "Do you really want to remove this chain?"
)

func loadRemoveMenu(ctx Context) ([]Item, error) {
	return RemoveItems(ctx)
}

// RemoveItems lists what can be removed from the root layer's chain.
func RemoveItems(ctx Context) ([]Item, error) {
	root := ctx.Root
	if root == nil || ctx.Graph == nil {
		return nil, ErrNoLayer
	}
	mfx := ctx.Graph.MIDIChainLayers(root)
	fx := ctx.Graph.FXChainLayers(root)
	items := make([]Item, 0, 3)
	if root.Engine.Type == engine.TypeMIDISynth && len(mfx) > 0 || len(mfx) > 1 {
		items = append(items, Item{ID: "midi-fx", Label: "Remove All MIDI-FXs"})
	}
	if len(fx) > 0 {
		items = append(items, Item{ID: "audio-fx", Label: "Remove All Audio-FXs"})
	}
	if !root.IsMixbus() {
		items = append(items, Item{ID: "chain", Label: "Remove Chain"})
	}
	return items, nil
}

func confirm(ctx Context, action, message string, run func(Context) tea.Cmd) tea.Cmd {
	if ctx.Root == nil || ctx.Graph == nil {
		return errorResult(ErrNoLayer)
	}
	return func() tea.Msg {
		return ConfirmPrompt{Context: ctx, Action: action, Message: message, Confirm: run}
	}
}

func RemoveMIDIFXAction(ctx Context, item Item) tea.Cmd {
	return confirm(ctx, "chain:remove:midi-fx", removeMIDIFXMessage, func(ctx Context) tea.Cmd {
		return removeLayersCommand(ctx, "MIDI effects", ctx.Graph.MIDIChainLayers(ctx.Root))
	})
}

func RemoveAudioFXAction(ctx Context, item Item) tea.Cmd {
	return confirm(ctx, "chain:remove:audio-fx", removeAudioFXMessage, func(ctx Context) tea.Cmd {
		return removeLayersCommand(ctx, "audio effects", ctx.Graph.FXChainLayers(ctx.Root))
	})
}

func RemoveChainAction(ctx Context, item Item) tea.Cmd {
	return confirm(ctx, "chain:remove:chain", removeChainMessage, removeChainCommand)
}

// removeLayersCommand drops layers and keeps the menu open while its root
// layer is still the root of a chain.
func removeLayersCommand(ctx Context, what string, layers []*engine.Layer) tea.Cmd {
	return func() tea.Msg {
		ids := make([]string, 0, len(layers))
		for _, l := range layers {
			ids = append(ids, l.ID)
		}
		events.Chain.Remove(ctx.Root.ID, ids)
		if err := ctx.Graph.RemoveLayers(layers); err != nil {
			return ActionResult{Err: err}
		}
		info := fmt.Sprintf("Removed %d %s", len(layers), what)
		if !ctx.Graph.IsRoot(ctx.Root) {
			return ActionResult{Info: info, Close: true}
		}
		return ActionResult{Info: info}
	}
}

func removeChainCommand(ctx Context) tea.Cmd {
	return func() tea.Msg {
		index := ctx.RootIndex()
		if err := ctx.Graph.RemoveChain(index); err != nil {
			return ActionResult{Err: err}
		}
		events.Chain.RemoveChain(ctx.Root.ID, index)
		return ActionResult{Info: fmt.Sprintf("Removed chain %s", ctx.Root.BasePath()), Close: true}
	}
}
