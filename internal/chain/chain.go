// Package chain renders the serial/parallel structure of a processing chain
// as an indented tree of display rows.
package chain

import "strings"

// Kind is the processing category of a layer.
type Kind int

const (
	KindOther Kind = iota
	KindMIDITool
	KindAudioEffect
)

func (k Kind) String() string {
	switch k {
	case KindMIDITool:
		return "MIDI Tool"
	case KindAudioEffect:
		return "Audio Effect"
	default:
		return "Other"
	}
}

// Relation describes how a layer is routed relative to another layer.
type Relation int

const (
	RelationUnrelated Relation = iota
	RelationSerial
	RelationParallelMIDI
	RelationParallelAudio
)

// Layer is the read-only view of a chain layer the renderer needs.
// Implementations are compared by identity and must be comparable; pointer
// receivers are the expected shape.
type Layer interface {
	Kind() Kind
	DisplayName() string
	// Passthrough reports whether the layer runs the no-op analysis engine.
	Passthrough() bool
	// RoutingRelation reports how the layer is routed relative to other.
	RoutingRelation(other Layer) Relation
}

// Glyph is the tree connector printed before a layer name.
type Glyph string

const (
	GlyphMIDIEnd  Glyph = "╰─ "
	GlyphMIDIMid  Glyph = "├─ "
	GlyphAudioEnd Glyph = "┗━ "
	GlyphAudioMid Glyph = "┣━ "
	GlyphRoot     Glyph = "╰━ "
)

// Mid returns the middle-branch variant of an end connector. Other glyphs are
// returned unchanged.
func (g Glyph) Mid() Glyph {
	switch g {
	case GlyphMIDIEnd:
		return GlyphMIDIMid
	case GlyphAudioEnd:
		return GlyphAudioMid
	default:
		return g
	}
}

// Row is a single rendered line of the chain tree.
type Row struct {
	Depth     int
	Connector Glyph
	Name      string
	Layer     Layer
}

// Label returns the indented text for the row.
func (r Row) Label() string {
	return strings.Repeat("  ", r.Depth) + string(r.Connector) + r.Name
}
