package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/backend"
	"github.com/atomicstack/chainmenu/internal/data/dispatcher"
	"github.com/atomicstack/chainmenu/internal/engine"
	"github.com/atomicstack/chainmenu/internal/logging"
	"github.com/atomicstack/chainmenu/internal/logging/events"
	"github.com/atomicstack/chainmenu/internal/menu"
	"github.com/atomicstack/chainmenu/internal/state"
	"github.com/atomicstack/chainmenu/internal/theme"
	"github.com/atomicstack/chainmenu/internal/ui/command"
	uistate "github.com/atomicstack/chainmenu/internal/ui/state"
)

type level = uistate.Level

type Mode int

const (
	ModeMenu Mode = iota
	ModeConfirm
)

const menuHeaderSeparator = " > "

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, items []menu.Item, node *menu.Node) *level {
	return uistate.NewLevel(id, title, items, node)
}

// Options configures a Model.
type Options struct {
	Graph        *engine.Graph
	Mixer        *engine.Mixer
	Recorder     *engine.Recorder
	Navigator    menu.Navigator
	Root         *engine.Layer
	Multichannel bool
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	Watcher      *backend.Watcher
}

// Model implements the Bubble Tea model for the chain options menu.
type Model struct {
	stack             []*level
	loading           bool
	pendingID         string
	pendingLabel      string
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	backend           *backend.Watcher
	backendState      map[backend.Kind]error
	backendLastErr    string
	showFooter        bool
	verbose           bool
	confirmForm       *menu.ConfirmForm
	filterCursor      cursor.Model
	filterCursorDirty bool
	footer            help.Model
	exitReason        string

	handlers map[reflect.Type]msgHandler

	registry     *menu.Registry
	bus          *command.Bus
	mode         Mode
	graph        *engine.Graph
	mixer        *engine.Mixer
	recorder     *engine.Recorder
	navigator    menu.Navigator
	root         *engine.Layer
	multichannel bool
	chains       state.ChainStore
	recording    state.RecorderStore
	dispatcher   *dispatcher.Dispatcher

	preview    map[string]*previewData
	previewSeq int
}

// NewModel initialises the UI state with the chain options of opts.Root.
func NewModel(opts Options) *Model {
	registry := menu.BuildRegistry()
	chains := state.NewChainStore()
	recording := state.NewRecorderStore(opts.Recorder != nil && opts.Recorder.Status())
	m := &Model{
		registry:     registry,
		bus:          command.New(),
		backend:      opts.Watcher,
		backendState: map[backend.Kind]error{},
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		mode:         ModeMenu,
		graph:        opts.Graph,
		mixer:        opts.Mixer,
		recorder:     opts.Recorder,
		navigator:    opts.Navigator,
		root:         opts.Root,
		multichannel: opts.Multichannel,
		chains:       chains,
		recording:    recording,
		dispatcher:   dispatcher.New(chains, recording),
		preview:      make(map[string]*previewData),
		footer:       newFooter(),
	}
	m.stack = []*level{m.rootLevel()}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.syncViewport(m.stack[0])
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

func (m *Model) rootLevel() *level {
	node := m.registry.Root()
	items, err := menu.ChainOptionItems(m.menuContext())
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
	}
	return newLevel(menu.RootID, menu.SelectPath(m.root), items, node)
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	rootID := ""
	if m.root != nil {
		rootID = m.root.ID
	}
	events.Chain.Open(rootID, m.menuContext().RootIndex())
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.ensurePreviewForCurrentLevel(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	return m, m.finishUpdate(cmds)
}

// ExitReason reports why the menu asked to quit, if it did.
func (m *Model) ExitReason() string {
	return m.exitReason
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeConfirm:
		return m.handleConfirmForm(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(categoryLoadedMsg{}):  m.handleCategoryLoadedMsg,
		reflect.TypeOf(menu.ActionResult{}):  m.handleActionResultMsg,
		reflect.TypeOf(menu.ConfirmPrompt{}): m.handleConfirmPromptMsg,
		reflect.TypeOf(previewLoadedMsg{}):   m.handlePreviewLoadedMsg,
		reflect.TypeOf(backendEventMsg{}):    m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):     m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) quit(reason string) tea.Cmd {
	rootID := ""
	if m.root != nil {
		rootID = m.root.ID
	}
	m.exitReason = reason
	events.Chain.Close(rootID, reason)
	return tea.Quit
}
