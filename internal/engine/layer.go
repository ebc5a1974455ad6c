package engine

import (
	"fmt"

	"github.com/atomicstack/chainmenu/internal/chain"
	"gitlab.com/gomidi/midi/v2"
)

// Layer is one processing stage of a chain.
type Layer struct {
	ID       string
	Engine   Engine
	MIDIChan *int
	Preset   string
	MIDIOut  []string
	AudioOut []string
	Bindings []midi.Message

	chain *Chain
}

var _ chain.Layer = (*Layer)(nil)

// Channel returns a MIDI channel pointer for layer construction.
func Channel(ch int) *int {
	return &ch
}

// Kind implements chain.Layer.
func (l *Layer) Kind() chain.Kind {
	return ParseKind(l.Engine.Type)
}

// DisplayName implements chain.Layer.
func (l *Layer) DisplayName() string {
	if l.Engine.Name != "" {
		return l.Engine.Name
	}
	return l.ID
}

// Passthrough implements chain.Layer.
func (l *Layer) Passthrough() bool {
	return l.Engine.Type == TypeAudioEffect && l.Engine.Nickname == PassthroughNickname
}

// RoutingRelation implements chain.Layer. Two layers of the same kind are
// parallel when they are fed by exactly the same upstream layers.
func (l *Layer) RoutingRelation(other chain.Layer) chain.Relation {
	o, ok := other.(*Layer)
	if !ok || o == nil || l.chain == nil || o.chain != l.chain {
		return chain.RelationUnrelated
	}
	return l.chain.graph.relation(l, o)
}

// HasMIDIChan reports whether the layer is bound to a MIDI channel.
func (l *Layer) HasMIDIChan() bool {
	return l.MIDIChan != nil
}

// Chan returns the layer's MIDI channel, or -1 when unset.
func (l *Layer) Chan() int {
	if l.MIDIChan == nil {
		return -1
	}
	return *l.MIDIChan
}

// IsMixbus reports whether the layer belongs to the main mixbus chain.
func (l *Layer) IsMixbus() bool {
	return l.Chan() == MainMixbus
}

// BasePath returns the short breadcrumb naming the layer.
func (l *Layer) BasePath() string {
	if l.MIDIChan == nil {
		return l.DisplayName()
	}
	return fmt.Sprintf("%d#%s", *l.MIDIChan+1, l.DisplayName())
}

// FormatBinding renders a MIDI-learn binding for display.
func FormatBinding(msg midi.Message) string {
	var ch, controller, value uint8
	if msg.GetControlChange(&ch, &controller, &value) {
		return fmt.Sprintf("CC%d ch%d", controller, ch+1)
	}
	return msg.String()
}
