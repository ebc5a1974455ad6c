package engine

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/atomicstack/chainmenu/internal/chain"
	"gitlab.com/gomidi/midi/v2"
)

// sourceInput marks a layer fed directly by the chain input.
const sourceInput = "\x00input"

var (
	ErrBadLayerIndex = errors.New("bad layer index")
	ErrUnknownLayer  = errors.New("layer not in graph")
	ErrChannelInUse  = errors.New("midi channel in use")
)

// Chain is an ordered set of layers sharing a root.
type Chain struct {
	layers []*Layer
	root   *Layer
	graph  *Graph
}

// Graph owns every chain and the routing between their layers.
type Graph struct {
	mu       sync.Mutex
	chains   []*Chain
	revision uint64
	learning string
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddChain appends a chain built from layers in source-to-output order and
// returns its root layer. The first layer that is neither a MIDI tool nor an
// audio effect is the root; otherwise the first MIDI tool, then the first
// audio effect. When no layer declares MIDI or audio outputs, that side of
// the chain is wired serially in order.
func (g *Graph) AddChain(layers ...*Layer) *Layer {
	return g.addChain(nil, layers)
}

// AddChainWithRoot is AddChain with an explicit root, which must be one of
// layers.
func (g *Graph) AddChainWithRoot(root *Layer, layers ...*Layer) (*Layer, error) {
	if !slices.Contains(layers, root) {
		return nil, ErrUnknownLayer
	}
	return g.addChain(root, layers), nil
}

func (g *Graph) addChain(root *Layer, layers []*Layer) *Layer {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(layers) == 0 {
		return nil
	}
	c := &Chain{layers: slices.Clone(layers), graph: g}
	for _, l := range c.layers {
		l.chain = c
	}
	c.root = root
	if c.root == nil {
		c.root = pickRoot(c.layers)
	}
	wireSerial(c.layers, c.root)
	g.chains = append(g.chains, c)
	g.revision++
	return c.root
}

func pickRoot(layers []*Layer) *Layer {
	for _, want := range []chain.Kind{chain.KindOther, chain.KindMIDITool, chain.KindAudioEffect} {
		for _, l := range layers {
			if l.Kind() == want {
				return l
			}
		}
	}
	return nil
}

func wireSerial(layers []*Layer, root *Layer) {
	declared := func(outs func(*Layer) []string) bool {
		for _, l := range layers {
			if len(outs(l)) > 0 {
				return true
			}
		}
		return false
	}
	if !declared(func(l *Layer) []string { return l.MIDIOut }) {
		var path []*Layer
		for _, l := range layers {
			if l.Kind() == chain.KindMIDITool && l != root {
				path = append(path, l)
			}
		}
		if root != nil {
			path = append(path, root)
		}
		for i := 0; i+1 < len(path); i++ {
			path[i].MIDIOut = []string{path[i+1].ID}
		}
	}
	if !declared(func(l *Layer) []string { return l.AudioOut }) {
		var path []*Layer
		if root != nil {
			path = append(path, root)
		}
		for _, l := range layers {
			if l.Kind() == chain.KindAudioEffect && l != root {
				path = append(path, l)
			}
		}
		for i := 0; i+1 < len(path); i++ {
			path[i].AudioOut = []string{path[i+1].ID}
		}
	}
}

// Revision increases on every structural change.
func (g *Graph) Revision() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.revision
}

// RootLayers returns the root layer of each chain in order.
func (g *Graph) RootLayers() []*Layer {
	g.mu.Lock()
	defer g.mu.Unlock()
	roots := make([]*Layer, 0, len(g.chains))
	for _, c := range g.chains {
		roots = append(roots, c.root)
	}
	return roots
}

// RootLayer returns the root layer at index.
func (g *Graph) RootLayer(index int) (*Layer, error) {
	roots := g.RootLayers()
	if index < 0 || index >= len(roots) {
		return nil, fmt.Errorf("%w '%d'", ErrBadLayerIndex, index)
	}
	return roots[index], nil
}

// RootIndex returns the chain index of root, or -1.
func (g *Graph) RootIndex(root *Layer) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, c := range g.chains {
		if c.root == root {
			return i
		}
	}
	return -1
}

// IsRoot reports whether l is currently the root of a chain.
func (g *Graph) IsRoot(l *Layer) bool {
	return l != nil && g.RootIndex(l) >= 0
}

// MIDIChainLayers returns the MIDI tools of root's chain in order, including
// root itself when it is a MIDI tool.
func (g *Graph) MIDIChainLayers(root *Layer) []*Layer {
	return g.layersOfKind(root, chain.KindMIDITool)
}

// FXChainLayers returns the audio effects of root's chain in order, including
// root itself when it is an audio effect.
func (g *Graph) FXChainLayers(root *Layer) []*Layer {
	return g.layersOfKind(root, chain.KindAudioEffect)
}

// ChainLayers returns every layer of root's chain.
func (g *Graph) ChainLayers(root *Layer) []*Layer {
	g.mu.Lock()
	defer g.mu.Unlock()
	c := g.chainOf(root)
	if c == nil {
		return nil
	}
	return slices.Clone(c.layers)
}

func (g *Graph) layersOfKind(root *Layer, kind chain.Kind) []*Layer {
	g.mu.Lock()
	defer g.mu.Unlock()
	c := g.chainOf(root)
	if c == nil {
		return nil
	}
	out := make([]*Layer, 0, len(c.layers))
	for _, l := range c.layers {
		if l.Kind() == kind {
			out = append(out, l)
		}
	}
	return out
}

func (g *Graph) chainOf(l *Layer) *Chain {
	if l == nil || l.chain == nil || l.chain.graph != g {
		return nil
	}
	for _, c := range g.chains {
		if c == l.chain {
			return c
		}
	}
	return nil
}

// FreeMIDIChans returns the assignable channels no chain is using.
func (g *Graph) FreeMIDIChans() []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	used := make(map[int]struct{}, len(g.chains))
	for _, c := range g.chains {
		if c.root != nil && c.root.MIDIChan != nil {
			used[*c.root.MIDIChan] = struct{}{}
		}
	}
	free := make([]int, 0, MIDIChannels)
	for ch := 0; ch < MIDIChannels; ch++ {
		if _, ok := used[ch]; !ok {
			free = append(free, ch)
		}
	}
	return free
}

// SetMIDIChan moves root's chain onto channel ch.
func (g *Graph) SetMIDIChan(root *Layer, ch int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	c := g.chainOf(root)
	if c == nil {
		return ErrUnknownLayer
	}
	if ch < 0 || ch >= MIDIChannels {
		return fmt.Errorf("midi channel %d out of range", ch+1)
	}
	for _, other := range g.chains {
		if other == c || other.root == nil || other.root.MIDIChan == nil {
			continue
		}
		if *other.root.MIDIChan == ch {
			return fmt.Errorf("%w: channel %d", ErrChannelInUse, ch+1)
		}
	}
	for _, l := range c.layers {
		l.MIDIChan = Channel(ch)
	}
	g.revision++
	return nil
}

// RemoveLayer drops l from its chain. Upstream layers inherit l's outputs so
// the chain stays connected. Removing the last layer removes the chain.
func (g *Graph) RemoveLayer(l *Layer) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	c := g.chainOf(l)
	if c == nil {
		return ErrUnknownLayer
	}
	idx := slices.Index(c.layers, l)
	c.layers = slices.Delete(c.layers, idx, idx+1)
	for _, other := range c.layers {
		other.MIDIOut = splice(other.MIDIOut, l.ID, l.MIDIOut)
		other.AudioOut = splice(other.AudioOut, l.ID, l.AudioOut)
	}
	l.chain = nil
	if len(c.layers) == 0 {
		g.dropChain(c)
	} else if c.root == l {
		c.root = pickRoot(c.layers)
	}
	g.revision++
	return nil
}

// RemoveLayers removes each layer in turn, stopping at the first failure.
func (g *Graph) RemoveLayers(layers []*Layer) error {
	for _, l := range layers {
		if err := g.RemoveLayer(l); err != nil {
			return fmt.Errorf("remove %s: %w", l.ID, err)
		}
	}
	return nil
}

// RemoveChain drops the chain at index.
func (g *Graph) RemoveChain(index int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if index < 0 || index >= len(g.chains) {
		return fmt.Errorf("%w '%d'", ErrBadLayerIndex, index)
	}
	c := g.chains[index]
	for _, l := range c.layers {
		l.chain = nil
	}
	g.dropChain(c)
	g.revision++
	return nil
}

func (g *Graph) dropChain(c *Chain) {
	if idx := slices.Index(g.chains, c); idx >= 0 {
		g.chains = slices.Delete(g.chains, idx, idx+1)
	}
	if c.root != nil && g.learning == c.root.ID {
		g.learning = ""
	}
}

// EnterMIDILearn puts root's chain in MIDI-learn mode.
func (g *Graph) EnterMIDILearn(root *Layer) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.chainOf(root) == nil {
		return ErrUnknownLayer
	}
	g.learning = root.ID
	return nil
}

// Learning returns the root layer ID of the chain in MIDI-learn mode.
func (g *Graph) Learning() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.learning
}

// Learn binds a control-change message to l.
func (g *Graph) Learn(l *Layer, msg midi.Message) error {
	var ch, controller, value uint8
	if !msg.GetControlChange(&ch, &controller, &value) {
		return fmt.Errorf("midi learn: unsupported message %s", msg.String())
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.chainOf(l) == nil {
		return ErrUnknownLayer
	}
	l.Bindings = append(l.Bindings, midi.ControlChange(ch, controller, 0))
	g.revision++
	return nil
}

// Bindings returns a copy of the MIDI-learn bindings of l.
func (g *Graph) Bindings(l *Layer) []midi.Message {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(l.Bindings)
}

// MIDIUnlearn clears the MIDI-learn bindings of every layer in root's chain.
func (g *Graph) MIDIUnlearn(root *Layer) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	c := g.chainOf(root)
	if c == nil {
		return ErrUnknownLayer
	}
	for _, l := range c.layers {
		l.Bindings = nil
	}
	g.revision++
	return nil
}

func (g *Graph) relation(l, o *Layer) chain.Relation {
	g.mu.Lock()
	defer g.mu.Unlock()
	if l == o {
		return chain.RelationSerial
	}
	c := l.chain
	switch {
	case l.Kind() == chain.KindMIDITool && o.Kind() == chain.KindMIDITool:
		if sameSources(midiSources(c, l), midiSources(c, o)) {
			return chain.RelationParallelMIDI
		}
	case l.Kind() == chain.KindAudioEffect && o.Kind() == chain.KindAudioEffect:
		if sameSources(audioSources(c, l), audioSources(c, o)) {
			return chain.RelationParallelAudio
		}
	}
	if slices.Contains(o.MIDIOut, l.ID) || slices.Contains(o.AudioOut, l.ID) {
		return chain.RelationSerial
	}
	return chain.RelationUnrelated
}

func midiSources(c *Chain, l *Layer) []string {
	return sources(c, l, func(up *Layer) []string { return up.MIDIOut })
}

func audioSources(c *Chain, l *Layer) []string {
	return sources(c, l, func(up *Layer) []string { return up.AudioOut })
}

func sources(c *Chain, l *Layer, outs func(*Layer) []string) []string {
	var ids []string
	for _, up := range c.layers {
		if up != l && slices.Contains(outs(up), l.ID) {
			ids = append(ids, up.ID)
		}
	}
	if len(ids) == 0 {
		return []string{sourceInput}
	}
	sort.Strings(ids)
	return ids
}

func sameSources(a, b []string) bool {
	return slices.Equal(a, b)
}

func splice(outs []string, removed string, replacement []string) []string {
	idx := slices.Index(outs, removed)
	if idx < 0 {
		return outs
	}
	next := slices.Delete(slices.Clone(outs), idx, idx+1)
	for _, id := range replacement {
		if !slices.Contains(next, id) {
			next = append(next, id)
		}
	}
	return next
}
