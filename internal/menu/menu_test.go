package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/engine"
)

const fixture = `
chains:
  - layers:
      - id: arp
        engine: {name: Arpeggiator, type: MIDI Tool}
        midi_chan: 0
      - id: zyn
        engine:
          name: ZynAddSubFX
          type: MIDI Synth
          options: {note_range: true, clone: true, audio_route: true, audio_rec: true, midi_route: true, midi_chan: true}
        midi_chan: 0
        preset: Pads/Warm
        learn: ["cc 1:74", "cc 1:71"]
      - id: rev
        engine: {name: Reverb, type: Audio Effect}
        midi_chan: 0
  - layers:
      - id: eq
        engine: {name: EQ, type: Audio Effect}
        midi_chan: 256
      - id: comp
        engine: {name: Compressor, type: Audio Effect}
        midi_chan: 256
  - layers:
      - id: solo
        engine: {name: Delay, type: Audio Effect, options: {audio_capture: true}}
        midi_chan: 2
  - layers:
      - id: seq
        engine: {name: Sequencer, type: MIDI Tool}
        midi_chan: 3
`

func loadFixture(t *testing.T) *engine.Graph {
	t.Helper()
	g, err := engine.Load([]byte(fixture))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return g
}

func contextFor(t *testing.T, g *engine.Graph, index int) Context {
	t.Helper()
	root, err := g.RootLayer(index)
	if err != nil {
		t.Fatalf("root %d: %v", index, err)
	}
	return Context{
		Graph:     g,
		Mixer:     engine.NewMixer(),
		Recorder:  engine.NewRecorder(),
		Navigator: &Handoff{},
		Root:      root,
	}
}

func itemIDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func findItem(t *testing.T, items []Item, id string) Item {
	t.Helper()
	for _, item := range items {
		if item.ID == id {
			return item
		}
	}
	t.Fatalf("item %q not found in %v", id, itemIDs(items))
	return Item{}
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected command")
	}
	return cmd()
}

func runResult(t *testing.T, cmd tea.Cmd) ActionResult {
	t.Helper()
	msg := runCmd(t, cmd)
	res, ok := msg.(ActionResult)
	if !ok {
		t.Fatalf("expected ActionResult, got %T", msg)
	}
	return res
}

func runPrompt(t *testing.T, cmd tea.Cmd) ConfirmPrompt {
	t.Helper()
	msg := runCmd(t, cmd)
	prompt, ok := msg.(ConfirmPrompt)
	if !ok {
		t.Fatalf("expected ConfirmPrompt, got %T", msg)
	}
	return prompt
}
