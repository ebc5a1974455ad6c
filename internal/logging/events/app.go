package events

import "github.com/atomicstack/chainmenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

// Exit records why the menu closed and which screen, if any, it handed off to.
func (AppTracer) Exit(reason, handoff string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason, "handoff": handoff})
}

func (AppTracer) Snapshot(path string, chains int) {
	logging.Trace("app.snapshot", map[string]interface{}{"path": path, "chains": chains})
}
