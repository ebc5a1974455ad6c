package ui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/engine"
	"github.com/atomicstack/chainmenu/internal/menu"
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
        learn: ["cc 1:74"]
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
`

type testEnv struct {
	graph    *engine.Graph
	mixer    *engine.Mixer
	recorder *engine.Recorder
	handoff  *menu.Handoff
	root     *engine.Layer
}

func newTestEnv(t *testing.T, index int) *testEnv {
	t.Helper()
	g, err := engine.Load([]byte(fixture))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	root, err := g.RootLayer(index)
	if err != nil {
		t.Fatalf("root %d: %v", index, err)
	}
	return &testEnv{
		graph:    g,
		mixer:    engine.NewMixer(),
		recorder: engine.NewRecorder(),
		handoff:  &menu.Handoff{},
		root:     root,
	}
}

func (e *testEnv) options() Options {
	return Options{
		Graph:     e.graph,
		Mixer:     e.mixer,
		Recorder:  e.recorder,
		Navigator: e.handoff,
		Root:      e.root,
	}
}

func (e *testEnv) model() *Model {
	return NewModel(e.options())
}

func levelIDs(l *level) []string {
	ids := make([]string, len(l.Items))
	for i, item := range l.Items {
		ids[i] = item.ID
	}
	return ids
}

func TestNewModelBuildsChainOptions(t *testing.T) {
	m := newTestEnv(t, 1).model()
	root := m.currentLevel()
	if root.ID != menu.RootID {
		t.Fatalf("expected root level %q, got %q", menu.RootID, root.ID)
	}
	want := []string{
		"audio-options", "recording", "midi-learn",
		"section:chain", "layer:eq", "layer:comp",
		"add-audio-fx", "remove-audio-fx",
	}
	if got := levelIDs(root); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected items\n got %v\nwant %v", got, want)
	}
	if root.Cursor != 0 {
		t.Fatalf("expected cursor on first option, got %d", root.Cursor)
	}
	if m.errMsg != "" {
		t.Fatalf("unexpected error %q", m.errMsg)
	}
}

func TestNewModelWithoutRootReportsError(t *testing.T) {
	m := NewModel(Options{})
	if m.errMsg != menu.ErrNoLayer.Error() {
		t.Fatalf("expected %q, got %q", menu.ErrNoLayer.Error(), m.errMsg)
	}
	if len(m.currentLevel().Items) != 0 {
		t.Fatalf("expected no items without a root layer")
	}
}

func TestNewModelFixedSize(t *testing.T) {
	opts := newTestEnv(t, 0).options()
	opts.Width, opts.Height = 70, 20
	m := NewModel(opts)
	if !m.fixedWidth || !m.fixedHeight || m.width != 70 || m.height != 20 {
		t.Fatalf("expected fixed 70x20, got %dx%d", m.width, m.height)
	}
	m.handleWindowSizeMsg(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 70 || m.height != 20 {
		t.Fatalf("resize must not override fixed size, got %dx%d", m.width, m.height)
	}
}

func TestMenuHeaderRootLevel(t *testing.T) {
	m := newTestEnv(t, 0).model()
	if got := m.menuHeader(); got != "1#ZynAddSubFX > Chain Options" {
		t.Fatalf("unexpected header %q", got)
	}
}

func TestMenuHeaderMixbus(t *testing.T) {
	m := newTestEnv(t, 1).model()
	if got := m.menuHeader(); got != "Main > Chain Options" {
		t.Fatalf("unexpected header %q", got)
	}
}

func TestMenuHeaderNestedLevels(t *testing.T) {
	m := newTestEnv(t, 0).model()
	m.stack = append(m.stack, newLevel("chain:remove", "Remove...", nil, nil))
	if got := m.menuHeader(); got != "1#ZynAddSubFX > Chain Options > Remove..." {
		t.Fatalf("unexpected header %q", got)
	}
}

func TestHandlerForResolvesRegisteredTypes(t *testing.T) {
	m := newTestEnv(t, 0).model()
	if m.handlerFor(menu.ActionResult{}) == nil {
		t.Fatalf("expected a handler for action results")
	}
	if m.handlerFor(&menu.ConfirmPrompt{}) == nil {
		t.Fatalf("expected pointer messages to resolve to their element type")
	}
	if m.handlerFor(struct{}{}) != nil {
		t.Fatalf("expected no handler for unknown messages")
	}
}
