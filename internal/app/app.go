package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/backend"
	"github.com/atomicstack/chainmenu/internal/engine"
	"github.com/atomicstack/chainmenu/internal/logging/events"
	"github.com/atomicstack/chainmenu/internal/menu"
	"github.com/atomicstack/chainmenu/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	SnapshotPath string
	ChainIndex   int
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	Multichannel bool
	PollInterval time.Duration
}

// Session holds everything a menu run works on.
type Session struct {
	Graph    *engine.Graph
	Root     *engine.Layer
	Mixer    *engine.Mixer
	Recorder *engine.Recorder
	Handoff  *menu.Handoff
}

// Open loads the chain snapshot and picks the chain the menu is shown for.
func Open(cfg Config) (*Session, error) {
	graph, err := engine.LoadFile(cfg.SnapshotPath)
	if err != nil {
		return nil, err
	}
	events.App.Snapshot(cfg.SnapshotPath, len(graph.RootLayers()))
	root, err := graph.RootLayer(cfg.ChainIndex)
	if err != nil {
		return nil, err
	}
	return &Session{
		Graph:    graph,
		Root:     root,
		Mixer:    engine.NewMixer(),
		Recorder: engine.NewRecorder(),
		Handoff:  &menu.Handoff{},
	}, nil
}

// Options builds the UI configuration for the session.
func (s *Session) Options(cfg Config, watcher *backend.Watcher) ui.Options {
	return ui.Options{
		Graph:        s.Graph,
		Mixer:        s.Mixer,
		Recorder:     s.Recorder,
		Navigator:    s.Handoff,
		Root:         s.Root,
		Multichannel: cfg.Multichannel,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
		Watcher:      watcher,
	}
}

// Finish reports the screen the menu handed off to, if any, on out.
func (s *Session) Finish(out io.Writer, reason string) error {
	req, ok := s.Handoff.Last()
	if !ok {
		events.App.Exit(reason, "")
		return nil
	}
	events.App.Exit(reason, req.String())
	_, err := fmt.Fprintln(out, req.String())
	return err
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	session, err := Open(cfg)
	if err != nil {
		return err
	}
	watcher := backend.NewWatcher(session.Graph, session.Recorder, cfg.PollInterval)
	defer watcher.Stop()
	model := ui.NewModel(session.Options(cfg, watcher))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return session.Finish(os.Stdout, model.ExitReason())
}
