package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/logging/events"
)

func checkLabel(on bool, name string) string {
	if on {
		return "[x] " + name
	}
	return "[  ] " + name
}

func loadAudioOptionsMenu(ctx Context) ([]Item, error) {
	return AudioOptionItems(ctx)
}

// AudioOptionItems lists the mixer strip toggles for the root layer. The
// primed toggle is shown only with the multichannel recorder and cannot be
// changed while recording.
func AudioOptionItems(ctx Context) ([]Item, error) {
	if ctx.Root == nil || ctx.Mixer == nil {
		return nil, ErrNoLayer
	}
	ch := ctx.Root.Chan()
	items := []Item{
		{ID: "mono", Label: checkLabel(ctx.Mixer.Mono(ch), "Mono")},
		{ID: "phase", Label: checkLabel(ctx.Mixer.Phase(ch), "Phase reverse")},
	}
	if ctx.Multichannel && ctx.Recorder != nil && ctx.Root.HasMIDIChan() {
		primed := checkLabel(ctx.Recorder.IsPrimed(ch), "Recording Primed")
		if ctx.Recorder.Status() {
			items = append(items, Item{ID: "primed-locked", Label: primed})
		} else {
			items = append(items, Item{ID: "prime", Label: primed})
		}
	}
	return items, nil
}

func ToggleMonoAction(ctx Context, item Item) tea.Cmd {
	if ctx.Root == nil || ctx.Mixer == nil {
		return errorResult(ErrNoLayer)
	}
	return func() tea.Msg {
		on := ctx.Mixer.ToggleMono(ctx.Root.Chan())
		events.Mixer.Toggle("mono", ctx.Root.Chan(), on)
		return ActionResult{Info: fmt.Sprintf("Mono %s", onOff(on)), Reopen: true}
	}
}

func TogglePhaseAction(ctx Context, item Item) tea.Cmd {
	if ctx.Root == nil || ctx.Mixer == nil {
		return errorResult(ErrNoLayer)
	}
	return func() tea.Msg {
		on := ctx.Mixer.TogglePhase(ctx.Root.Chan())
		events.Mixer.Toggle("phase", ctx.Root.Chan(), on)
		return ActionResult{Info: fmt.Sprintf("Phase reverse %s", onOff(on)), Reopen: true}
	}
}

func TogglePrimeAction(ctx Context, item Item) tea.Cmd {
	if ctx.Root == nil || ctx.Recorder == nil {
		return errorResult(ErrNoLayer)
	}
	return func() tea.Msg {
		on, err := ctx.Recorder.TogglePrime(ctx.Root.Chan())
		if err != nil {
			return ActionResult{Err: err, Reopen: true}
		}
		events.Recorder.Prime(ctx.Root.Chan(), on)
		return ActionResult{Info: fmt.Sprintf("Recording primed %s", onOff(on)), Reopen: true}
	}
}

// ToggleRecordingAction starts or stops the audio recorder.
func ToggleRecordingAction(ctx Context, item Item) tea.Cmd {
	if ctx.Recorder == nil {
		return errorResult(fmt.Errorf("no audio recorder"))
	}
	return func() tea.Msg {
		recording := ctx.Recorder.ToggleRecording()
		events.Recorder.Status(recording)
		if recording {
			return ActionResult{Info: "Audio recording started"}
		}
		return ActionResult{Info: "Audio recording stopped"}
	}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
