package events

import "github.com/atomicstack/chainmenu/internal/logging"

type ChainTracer struct{}

type RecorderTracer struct{}

type MixerTracer struct{}

type LearnTracer struct{}

type ConfirmTracer struct{}

var (
	Chain    = ChainTracer{}
	Recorder = RecorderTracer{}
	Mixer    = MixerTracer{}
	Learn    = LearnTracer{}
	Confirm  = ConfirmTracer{}
)

func (ChainTracer) Open(root string, index int) {
	logging.Trace("chain.open", map[string]interface{}{"root": root, "index": index})
}

func (ChainTracer) Rebuild(root string, items int) {
	logging.Trace("chain.rebuild", map[string]interface{}{"root": root, "items": items})
}

func (ChainTracer) Close(root, reason string) {
	logging.Trace("chain.close", map[string]interface{}{"root": root, "reason": reason})
}

func (ChainTracer) Screen(screen, mode, layer string) {
	logging.Trace("chain.screen", map[string]interface{}{"screen": screen, "mode": mode, "layer": layer})
}

func (ChainTracer) Remove(root string, layers []string) {
	logging.Trace("chain.remove", map[string]interface{}{"root": root, "layers": layers})
}

func (ChainTracer) RemoveChain(root string, index int) {
	logging.Trace("chain.remove-chain", map[string]interface{}{"root": root, "index": index})
}

func (ChainTracer) Channel(root string, ch int) {
	logging.Trace("chain.midi-channel", map[string]interface{}{"root": root, "channel": ch})
}

func (RecorderTracer) Status(recording bool) {
	logging.Trace("recorder.status", map[string]interface{}{"recording": recording})
}

func (RecorderTracer) Prime(ch int, primed bool) {
	logging.Trace("recorder.prime", map[string]interface{}{"channel": ch, "primed": primed})
}

func (MixerTracer) Toggle(option string, ch int, on bool) {
	logging.Trace("mixer.toggle", map[string]interface{}{"option": option, "channel": ch, "on": on})
}

func (LearnTracer) Enter(root string) {
	logging.Trace("learn.enter", map[string]interface{}{"root": root})
}

func (LearnTracer) Clean(root string) {
	logging.Trace("learn.clean", map[string]interface{}{"root": root})
}

func (ConfirmTracer) Prompt(action, message string) {
	logging.Trace("confirm.prompt", map[string]interface{}{"action": action, "message": message})
}

func (ConfirmTracer) Accept(action string) {
	logging.Trace("confirm.accept", map[string]interface{}{"action": action})
}

func (ConfirmTracer) Cancel(action string) {
	logging.Trace("confirm.cancel", map[string]interface{}{"action": action})
}
