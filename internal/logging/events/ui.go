package events

import "github.com/atomicstack/chainmenu/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) MenuEnter(levelID, itemID, label, filter string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"level":  levelID,
		"item":   itemID,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) MenuBack(from, to string) {
	logging.Trace("menu.back", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) MenuCursor(levelID string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"level": levelID, "cursor": cursor})
}

func (UITracer) Refresh(reason string) {
	logging.Trace("menu.refresh", map[string]interface{}{"reason": reason})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

// Success records the outcome of an action. next is one of close, reopen or
// rebuild.
func (ActionTracer) Success(info, next string) {
	logging.Trace("action.success", map[string]interface{}{"info": info, "next": next})
}

func (FilterTracer) Cleared(levelID string) {
	logging.Trace("filter.clear", map[string]interface{}{"level": levelID})
}

// Edit records a change to the filter text made by op.
func (FilterTracer) Edit(levelID, op, filter string) {
	logging.Trace("filter."+op, map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Cursor(levelID string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"level": levelID, "cursor": pos})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
