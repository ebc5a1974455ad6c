package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/logging"
	"github.com/atomicstack/chainmenu/internal/logging/events"
	"github.com/atomicstack/chainmenu/internal/menu"
)

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler menu.Action
	Item    menu.Item
}

// Bus coordinates the execution of menu actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a menu action into a Bubble Tea command while emitting trace
// logs. Failed results are also written to the error log.
func (b *Bus) Execute(ctx menu.Context, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		cmd := req.Handler(ctx, req.Item)
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		if res, ok := msg.(menu.ActionResult); ok && res.Err != nil {
			logging.Error(fmt.Errorf("%s: %w", req.ID, res.Err))
		}
		return msg
	}
}
