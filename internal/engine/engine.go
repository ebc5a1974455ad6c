// Package engine holds the in-memory model of the synth's processing chains:
// layers and their engines, the routing between them, the mixer and the
// audio recorder.
package engine

import "github.com/atomicstack/chainmenu/internal/chain"

// Type is the engine category reported by an engine.
type Type string

const (
	TypeMIDITool    Type = "MIDI Tool"
	TypeAudioEffect Type = "Audio Effect"
	TypeMIDISynth   Type = "MIDI Synth"
	TypeSynth       Type = "Synth"
	TypeSpecial     Type = "Special"
)

const (
	// MainMixbus is the MIDI channel value used by the main mixbus chain.
	MainMixbus = 256
	// MIDIChannels is the number of assignable MIDI channels.
	MIDIChannels = 16
	// PassthroughNickname identifies the audio input analysis engine, which
	// never appears in the chain tree.
	PassthroughNickname = "AI"
)

// Options describes which chain operations an engine supports.
type Options struct {
	NoteRange    bool `yaml:"note_range"`
	Clone        bool `yaml:"clone"`
	AudioCapture bool `yaml:"audio_capture"`
	AudioRoute   bool `yaml:"audio_route"`
	AudioRec     bool `yaml:"audio_rec"`
	MIDIRoute    bool `yaml:"midi_route"`
	MIDIChan     bool `yaml:"midi_chan"`
	Indelible    bool `yaml:"indelible"`
}

// Engine is the processor running inside a layer.
type Engine struct {
	Name     string  `yaml:"name"`
	Nickname string  `yaml:"nickname"`
	Type     Type    `yaml:"type"`
	Options  Options `yaml:"options"`
}

// ParseKind maps an engine type onto a chain kind. Unknown types are treated
// as other processing so the chain stays renderable.
func ParseKind(t Type) chain.Kind {
	switch t {
	case TypeMIDITool:
		return chain.KindMIDITool
	case TypeAudioEffect:
		return chain.KindAudioEffect
	default:
		return chain.KindOther
	}
}
