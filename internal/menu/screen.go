package menu

import (
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/engine"
	"github.com/atomicstack/chainmenu/internal/logging/events"
)

// Screens reached from the chain options.
const (
	ScreenKeyRange        = "midi_key_range"
	ScreenMIDIChan        = "midi_chan"
	ScreenAudioIn         = "audio_in"
	ScreenAudioOut        = "audio_out"
	ScreenMIDIOut         = "midi_out"
	ScreenSublayerOptions = "sublayer_options"
	ScreenEngine          = "engine"
)

// ScreenRequest asks the host to open another screen for a layer.
type ScreenRequest struct {
	Screen string
	Mode   string
	Chan   int
	Root   *engine.Layer
	Layer  *engine.Layer
}

func (r ScreenRequest) String() string {
	parts := []string{"screen=" + r.Screen}
	if r.Mode != "" {
		parts = append(parts, "mode="+r.Mode)
	}
	if r.Root != nil {
		parts = append(parts, "root="+r.Root.ID)
		if r.Root.HasMIDIChan() {
			parts = append(parts, fmt.Sprintf("chan=%d", r.Chan))
		}
	}
	if r.Layer != nil && r.Layer != r.Root {
		parts = append(parts, "layer="+r.Layer.ID)
	}
	return strings.Join(parts, " ")
}

// Navigator opens screens that live outside the chain options.
type Navigator interface {
	Show(ScreenRequest) error
}

// Handoff is a Navigator that keeps the last request for the host to act on
// once the menu has closed.
type Handoff struct {
	mu       sync.Mutex
	requests []ScreenRequest
}

// Show implements Navigator.
func (h *Handoff) Show(req ScreenRequest) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, req)
	return nil
}

// Last returns the most recent request.
func (h *Handoff) Last() (ScreenRequest, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.requests) == 0 {
		return ScreenRequest{}, false
	}
	return h.requests[len(h.requests)-1], true
}

// Requests returns every request in order.
func (h *Handoff) Requests() []ScreenRequest {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]ScreenRequest(nil), h.requests...)
}

func showScreen(ctx Context, req ScreenRequest) tea.Cmd {
	if ctx.Root == nil {
		return errorResult(ErrNoLayer)
	}
	if ctx.Navigator == nil {
		return errorResult(fmt.Errorf("no navigator for screen %s", req.Screen))
	}
	req.Root = ctx.Root
	req.Chan = ctx.Root.Chan()
	if req.Layer == nil {
		req.Layer = ctx.Root
	}
	return func() tea.Msg {
		events.Chain.Screen(req.Screen, req.Mode, req.Layer.ID)
		if err := ctx.Navigator.Show(req); err != nil {
			return ActionResult{Err: fmt.Errorf("open %s: %w", req.Screen, err)}
		}
		return ActionResult{Info: fmt.Sprintf("Opening %s", req.Screen), Close: true}
	}
}

func NoteRangeAction(ctx Context, item Item) tea.Cmd {
	return showScreen(ctx, ScreenRequest{Screen: ScreenKeyRange})
}

func CloneAction(ctx Context, item Item) tea.Cmd {
	return showScreen(ctx, ScreenRequest{Screen: ScreenMIDIChan, Mode: "CLONE"})
}

func AudioCaptureAction(ctx Context, item Item) tea.Cmd {
	return showScreen(ctx, ScreenRequest{Screen: ScreenAudioIn})
}

func AudioOutputAction(ctx Context, item Item) tea.Cmd {
	return showScreen(ctx, ScreenRequest{Screen: ScreenAudioOut})
}

func MIDIRoutingAction(ctx Context, item Item) tea.Cmd {
	return showScreen(ctx, ScreenRequest{Screen: ScreenMIDIOut})
}

func AddMIDIFXAction(ctx Context, item Item) tea.Cmd {
	return showScreen(ctx, ScreenRequest{Screen: ScreenEngine, Mode: "MIDI-FX"})
}

func AddAudioFXAction(ctx Context, item Item) tea.Cmd {
	return showScreen(ctx, ScreenRequest{Screen: ScreenEngine, Mode: "Audio-FX"})
}

// ChainLayerAction opens the sublayer options for a chain tree row.
func ChainLayerAction(ctx Context, item Item) tea.Cmd {
	if item.Layer == nil {
		return func() tea.Msg {
			return ActionResult{Err: fmt.Errorf("no action for %q", strings.TrimSpace(item.Label))}
		}
	}
	return showScreen(ctx, ScreenRequest{Screen: ScreenSublayerOptions, Layer: item.Layer})
}
