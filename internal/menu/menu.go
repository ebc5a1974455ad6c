package menu

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/engine"
)

// Item represents a menu entry. Header items are section titles and cannot
// be selected. Tree rows carry the layer they stand for.
type Item struct {
	ID     string
	Label  string
	Header bool
	Layer  *engine.Layer
}

// Context carries runtime data needed by loader functions.
type Context struct {
	Graph        *engine.Graph
	Mixer        *engine.Mixer
	Recorder     *engine.Recorder
	Navigator    Navigator
	Root         *engine.Layer
	Multichannel bool
}

// RootIndex returns the chain index of the menu's root layer, or -1 when the
// root is no longer part of the graph.
func (c Context) RootIndex() int {
	if c.Graph == nil || c.Root == nil {
		return -1
	}
	return c.Graph.RootIndex(c.Root)
}

// Loader populates submenu entries on demand.
type Loader func(Context) ([]Item, error)

type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a menu action. Close
// ends the menu. Reopen keeps the current submenu open with reloaded items;
// otherwise the menu returns to the chain options and rebuilds them.
type ActionResult struct {
	Info   string
	Err    error
	Close  bool
	Reopen bool
}

// ConfirmPrompt requests a yes/no confirmation before running Confirm.
type ConfirmPrompt struct {
	Context Context
	Action  string
	Message string
	Confirm func(Context) tea.Cmd
}

// RootID identifies the chain options level.
const RootID = "chain"

// CategoryLoaders lists submenu loaders keyed by node ID.
func CategoryLoaders() map[string]Loader {
	return map[string]Loader{
		"chain:audio-options": loadAudioOptionsMenu,
		"chain:midi-learn":    loadMIDILearnMenu,
		"chain:remove":        loadRemoveMenu,
		"chain:midi-channel":  loadMIDIChannelMenu,
	}
}

// ActionHandlers maps menu identifiers to their execution logic.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		RootID:                       ChainLayerAction,
		"chain:note-range":           NoteRangeAction,
		"chain:clone":                CloneAction,
		"chain:audio-capture":        AudioCaptureAction,
		"chain:audio-output":         AudioOutputAction,
		"chain:recording":            ToggleRecordingAction,
		"chain:midi-routing":         MIDIRoutingAction,
		"chain:midi-channel":         MIDIChannelAction,
		"chain:add-midi-fx":          AddMIDIFXAction,
		"chain:add-audio-fx":         AddAudioFXAction,
		"chain:remove-audio-fx":      RemoveAudioFXAction,
		"chain:remove-chain":         RemoveChainAction,
		"chain:audio-options:mono":   ToggleMonoAction,
		"chain:audio-options:phase":  TogglePhaseAction,
		"chain:audio-options:prime":  TogglePrimeAction,
		"chain:midi-learn:enter":     EnterMIDILearnAction,
		"chain:midi-learn:clean":     CleanMIDILearnAction,
		"chain:remove:midi-fx":       RemoveMIDIFXAction,
		"chain:remove:audio-fx":      RemoveAudioFXAction,
		"chain:remove:chain":         RemoveChainAction,
	}
}

// Titles names the submenus for the header breadcrumb.
func Titles() map[string]string {
	return map[string]string{
		"chain:audio-options": "Audio options",
		"chain:midi-learn":    "MIDI-learn",
		"chain:remove":        "Remove...",
		"chain:midi-channel":  "MIDI Channel",
	}
}

func errorResult(err error) tea.Cmd {
	return func() tea.Msg { return ActionResult{Err: err} }
}
