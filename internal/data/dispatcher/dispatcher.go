package dispatcher

import (
	"github.com/atomicstack/chainmenu/internal/backend"
	"github.com/atomicstack/chainmenu/internal/state"
)

// Result reports which stores changed while handling an event.
type Result struct {
	ChainsUpdated   bool
	RecorderUpdated bool
}

type Dispatcher struct {
	chains   state.ChainStore
	recorder state.RecorderStore
}

func New(c state.ChainStore, r state.RecorderStore) *Dispatcher {
	return &Dispatcher{chains: c, recorder: r}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindChains:
		if snapshot, ok := evt.Data.(backend.ChainSnapshot); ok {
			res.ChainsUpdated = d.chains.Set(snapshot.Revision, snapshot.Learning)
		}
	case backend.KindRecorder:
		if snapshot, ok := evt.Data.(backend.RecorderSnapshot); ok {
			res.RecorderUpdated = d.recorder.Set(snapshot.Recording)
		}
	}
	return res
}
