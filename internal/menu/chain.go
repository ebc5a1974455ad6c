package menu

import (
	"errors"
	"fmt"

	"github.com/atomicstack/chainmenu/internal/chain"
	"github.com/atomicstack/chainmenu/internal/engine"
)

// ErrNoLayer is returned when the menu has no root layer to work on.
var ErrNoLayer = errors.New("no layer selected")

// chainOptions are the operations offered for a root layer.
type chainOptions struct {
	engine.Options
	midiLearn bool
}

func optionsFor(ctx Context, fx []*engine.Layer) chainOptions {
	root := ctx.Root
	if root.IsMixbus() {
		return chainOptions{
			Options: engine.Options{
				AudioCapture: false,
				Indelible:    true,
				AudioRec:     true,
			},
			midiLearn: true,
		}
	}
	opts := chainOptions{Options: root.Engine.Options, midiLearn: true}
	// only offered when the chain holds some engine other than its effects
	if root.Engine.Type == engine.TypeAudioEffect && len(fx) <= 1 {
		opts.midiLearn = false
	}
	return opts
}

// ChainOptionItems builds the option list for the context's root layer: the
// chain operations, the "> Chain" section with the chain tree and the remove
// entry.
func ChainOptionItems(ctx Context) ([]Item, error) {
	root := ctx.Root
	if root == nil || ctx.Graph == nil {
		return nil, ErrNoLayer
	}
	fx := ctx.Graph.FXChainLayers(root)
	mfx := ctx.Graph.MIDIChainLayers(root)
	opts := optionsFor(ctx, fx)
	items := make([]Item, 0, 16)

	add := func(id, label string) {
		items = append(items, Item{ID: id, Label: label})
	}

	if root.HasMIDIChan() {
		if opts.NoteRange {
			add("note-range", "Note Range & Transpose")
		}
		if opts.Clone {
			add("clone", "Clone MIDI to...")
		}
		add("audio-options", "Audio Options...")
	}
	if opts.AudioCapture {
		add("audio-capture", "Audio Capture")
	}
	if opts.AudioRoute {
		add("audio-output", "Audio Output")
	}
	if opts.AudioRec {
		if ctx.Recorder != nil && ctx.Recorder.Status() {
			add("recording", "■ Stop Audio Recording")
		} else {
			add("recording", "⬤ Start Audio Recording")
		}
	}
	if opts.midiLearn {
		add("midi-learn", "MIDI Learn")
	}
	if opts.MIDIRoute {
		add("midi-routing", "MIDI Routing")
	}
	if opts.MIDIChan {
		add("midi-channel", "MIDI Channel")
	}

	items = append(items, Item{ID: "section:chain", Label: "> Chain", Header: true})

	switch root.Engine.Type {
	case engine.TypeMIDISynth, engine.TypeMIDITool, engine.TypeSpecial:
		if root.HasMIDIChan() {
			add("add-midi-fx", "Add MIDI-FX")
		}
	}

	items = append(items, ChainTreeItems(mfx, root, fx)...)

	if root.Engine.Type != engine.TypeMIDITool && root.HasMIDIChan() {
		add("add-audio-fx", "Add Audio-FX")
	}

	switch {
	case root.IsMixbus():
		if len(fx) > 0 {
			add("remove-audio-fx", "Remove All Audio-FXs")
		}
	case root.Engine.Type == engine.TypeMIDITool && len(mfx) > 1:
		add("remove", "Remove...")
	case root.Engine.Type != engine.TypeMIDITool && len(mfx)+len(fx) > 0:
		add("remove", "Remove...")
	default:
		add("remove-chain", "Remove Chain")
	}
	return items, nil
}

// ChainTreeItems renders the chain tree and binds each row to its layer.
func ChainTreeItems(mfx []*engine.Layer, root *engine.Layer, fx []*engine.Layer) []Item {
	rows := chain.Render(asChainLayers(mfx), root, asChainLayers(fx))
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		layer, _ := row.Layer.(*engine.Layer)
		id := "layer"
		if layer != nil {
			id = "layer:" + layer.ID
		}
		items = append(items, Item{ID: id, Label: row.Label(), Layer: layer})
	}
	return items
}

func asChainLayers(layers []*engine.Layer) []chain.Layer {
	out := make([]chain.Layer, len(layers))
	for i, l := range layers {
		out[i] = l
	}
	return out
}

// SelectPath returns the header breadcrumb for the chain options of root.
func SelectPath(root *engine.Layer) string {
	if root == nil {
		return "Chain Options"
	}
	if root.MIDIChan == nil || *root.MIDIChan < engine.MIDIChannels {
		return fmt.Sprintf("%s > Chain Options", root.BasePath())
	}
	return "Main > Chain Options"
}
