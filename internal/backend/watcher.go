package backend

import (
	"context"
	"sync"
	"time"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindChains Kind = iota
	KindRecorder
)

func (k Kind) String() string {
	switch k {
	case KindChains:
		return "chains"
	case KindRecorder:
		return "recorder"
	default:
		return "unknown"
	}
}

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// ChainSnapshot is the polled state of the layer graph.
type ChainSnapshot struct {
	Revision uint64
	Learning string
}

// RecorderSnapshot is the polled state of the audio recorder.
type RecorderSnapshot struct {
	Recording bool
}

// Graph is the part of the layer graph the watcher polls.
type Graph interface {
	Revision() uint64
	Learning() string
}

// Recorder is the part of the audio recorder the watcher polls.
type Recorder interface {
	Status() bool
}

// Watcher polls the graph and recorder at a fixed interval and publishes
// events.
type Watcher struct {
	graph    Graph
	recorder Recorder
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a backend watcher that polls every interval. A nil graph
// or recorder is not polled.
func NewWatcher(graph Graph, recorder Recorder, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		graph:    graph,
		recorder: recorder,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	if graph != nil {
		w.startChainPoller()
	}
	if recorder != nil {
		w.startRecorderPoller()
	}

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startChainPoller() {
	throttle := newThrottle(100 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindChains, func(ctx context.Context) (interface{}, error) {
		if err := throttle.wait(ctx); err != nil {
			return nil, err
		}
		return ChainSnapshot{Revision: w.graph.Revision(), Learning: w.graph.Learning()}, nil
	})
}

func (w *Watcher) startRecorderPoller() {
	throttle := newThrottle(100 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindRecorder, func(ctx context.Context) (interface{}, error) {
		if err := throttle.wait(ctx); err != nil {
			return nil, err
		}
		return RecorderSnapshot{Recording: w.recorder.Status()}, nil
	})
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		if w.ctx.Err() != nil {
			return false
		}
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
