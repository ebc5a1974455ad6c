package menu

import (
	"fmt"
	"slices"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/logging/events"
)

func loadMIDIChannelMenu(ctx Context) ([]Item, error) {
	return MIDIChannelItems(ctx)
}

// MIDIChannelItems lists the free MIDI channels plus the one the chain is
// using, in channel order.
func MIDIChannelItems(ctx Context) ([]Item, error) {
	if ctx.Root == nil || ctx.Graph == nil {
		return nil, ErrNoLayer
	}
	chans := ctx.Graph.FreeMIDIChans()
	current := ctx.Root.Chan()
	if current >= 0 && !slices.Contains(chans, current) {
		chans = append(chans, current)
	}
	slices.Sort(chans)
	items := make([]Item, 0, len(chans))
	for _, ch := range chans {
		label := fmt.Sprintf("MIDI CH#%d", ch+1)
		if ch == current {
			label += " (current)"
		}
		items = append(items, Item{ID: strconv.Itoa(ch), Label: label})
	}
	return items, nil
}

// MIDIChannelAction moves the chain onto the chosen channel.
func MIDIChannelAction(ctx Context, item Item) tea.Cmd {
	if ctx.Root == nil || ctx.Graph == nil {
		return errorResult(ErrNoLayer)
	}
	ch, err := strconv.Atoi(item.ID)
	if err != nil {
		return errorResult(fmt.Errorf("invalid midi channel %q", item.ID))
	}
	return func() tea.Msg {
		if ch == ctx.Root.Chan() {
			return ActionResult{}
		}
		if err := ctx.Graph.SetMIDIChan(ctx.Root, ch); err != nil {
			return ActionResult{Err: err}
		}
		events.Chain.Channel(ctx.Root.ID, ch)
		return ActionResult{Info: fmt.Sprintf("Moved chain to MIDI channel %d", ch+1)}
	}
}
