package engine

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gopkg.in/yaml.v3"
)

type snapshot struct {
	Chains []chainSpec `yaml:"chains"`
}

type chainSpec struct {
	Layers []layerSpec `yaml:"layers"`
}

type layerSpec struct {
	ID       string   `yaml:"id"`
	Engine   Engine   `yaml:"engine"`
	MIDIChan *int     `yaml:"midi_chan"`
	Preset   string   `yaml:"preset"`
	Root     bool     `yaml:"root"`
	MIDIOut  []string `yaml:"midi_out"`
	AudioOut []string `yaml:"audio_out"`
	Learn    []string `yaml:"learn"`
}

// LoadFile reads a chain snapshot from path.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chain snapshot: %w", err)
	}
	g, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Load builds a graph from a YAML chain snapshot.
func Load(data []byte) (*Graph, error) {
	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse chain snapshot: %w", err)
	}
	g := NewGraph()
	seen := make(map[string]struct{})
	for ci, spec := range snap.Chains {
		if len(spec.Layers) == 0 {
			return nil, fmt.Errorf("chain %d has no layers", ci)
		}
		ids := make(map[string]struct{}, len(spec.Layers))
		for _, ls := range spec.Layers {
			ids[ls.ID] = struct{}{}
		}
		layers := make([]*Layer, 0, len(spec.Layers))
		var root *Layer
		for li, ls := range spec.Layers {
			l, err := buildLayer(ls, ids)
			if err != nil {
				return nil, fmt.Errorf("chain %d layer %d: %w", ci, li, err)
			}
			if _, dup := seen[l.ID]; dup {
				return nil, fmt.Errorf("chain %d: duplicate layer id %q", ci, l.ID)
			}
			seen[l.ID] = struct{}{}
			if ls.Root {
				if root != nil {
					return nil, fmt.Errorf("chain %d: more than one root layer", ci)
				}
				root = l
			}
			layers = append(layers, l)
		}
		if root == nil {
			g.AddChain(layers...)
			continue
		}
		if _, err := g.AddChainWithRoot(root, layers...); err != nil {
			return nil, fmt.Errorf("chain %d: %w", ci, err)
		}
	}
	return g, nil
}

func buildLayer(ls layerSpec, ids map[string]struct{}) (*Layer, error) {
	id := strings.TrimSpace(ls.ID)
	if id == "" {
		return nil, fmt.Errorf("missing id")
	}
	if ls.MIDIChan != nil && *ls.MIDIChan != MainMixbus && (*ls.MIDIChan < 0 || *ls.MIDIChan >= MIDIChannels) {
		return nil, fmt.Errorf("layer %s: midi_chan %d out of range", id, *ls.MIDIChan)
	}
	for _, out := range append(append([]string(nil), ls.MIDIOut...), ls.AudioOut...) {
		if _, ok := ids[out]; !ok {
			return nil, fmt.Errorf("layer %s: unknown output %q", id, out)
		}
	}
	l := &Layer{
		ID:       id,
		Engine:   ls.Engine,
		MIDIChan: ls.MIDIChan,
		Preset:   ls.Preset,
		MIDIOut:  ls.MIDIOut,
		AudioOut: ls.AudioOut,
	}
	for _, spec := range ls.Learn {
		msg, err := ParseBinding(spec)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", id, err)
		}
		l.Bindings = append(l.Bindings, msg)
	}
	return l, nil
}

// ParseBinding parses a "cc <channel>:<controller>" binding with a 1-based
// channel.
func ParseBinding(spec string) (midi.Message, error) {
	fields := strings.Fields(strings.TrimSpace(spec))
	if len(fields) != 2 || !strings.EqualFold(fields[0], "cc") {
		return nil, fmt.Errorf("invalid binding %q", spec)
	}
	chText, ctlText, ok := strings.Cut(fields[1], ":")
	if !ok {
		return nil, fmt.Errorf("invalid binding %q", spec)
	}
	ch, err := strconv.Atoi(chText)
	if err != nil || ch < 1 || ch > MIDIChannels {
		return nil, fmt.Errorf("invalid binding channel %q", chText)
	}
	ctl, err := strconv.Atoi(ctlText)
	if err != nil || ctl < 0 || ctl > 127 {
		return nil, fmt.Errorf("invalid binding controller %q", ctlText)
	}
	return midi.ControlChange(uint8(ch-1), uint8(ctl), 0), nil
}
