package chain

// Sequence concatenates midifx, root and audiofx, dropping repeated layers.
// The first occurrence of each layer keeps its position. A nil root is left
// out.
func Sequence(midifx []Layer, root Layer, audiofx []Layer) []Layer {
	total := len(midifx) + len(audiofx) + 1
	seen := make(map[Layer]struct{}, total)
	out := make([]Layer, 0, total)
	add := func(l Layer) {
		if l == nil {
			return
		}
		if _, ok := seen[l]; ok {
			return
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	for _, l := range midifx {
		add(l)
	}
	add(root)
	for _, l := range audiofx {
		add(l)
	}
	return out
}

// Render produces the chain tree rows for the given layers in a single
// forward pass.
//
// A change of kind between consecutive layers always breaks continuity. A
// layer in a parallel relation with its predecessor stays at the same depth
// and upgrades the previous row's connector to the middle-branch variant.
// Passthrough audio effects emit nothing and are invisible to the relation
// bookkeeping. A MIDI tool that repeats its predecessor ends the pass.
func Render(midifx []Layer, root Layer, audiofx []Layer) []Row {
	return renderSequence(Sequence(midifx, root, audiofx))
}

func renderSequence(layers []Layer) []Row {
	rows := make([]Row, 0, len(layers))
	indent := 0
	first := true
	last := -1
	var previous Layer
	advance := func() {
		if !first {
			indent++
		}
	}
	for _, layer := range layers {
		prev := previous
		if prev != nil && layer.Kind() != prev.Kind() {
			prev = nil
		}
		var glyph Glyph
		switch layer.Kind() {
		case KindMIDITool:
			glyph = GlyphMIDIEnd
			if prev != nil && layer == prev {
				return rows
			}
			if related(layer, prev, RelationParallelMIDI) {
				rows[last].Connector = rows[last].Connector.Mid()
			} else {
				advance()
			}
		case KindAudioEffect:
			glyph = GlyphAudioEnd
			if layer.Passthrough() {
				continue
			}
			if related(layer, prev, RelationParallelAudio) {
				rows[last].Connector = rows[last].Connector.Mid()
			} else {
				advance()
			}
		default:
			glyph = GlyphRoot
			advance()
		}
		rows = append(rows, Row{Depth: indent, Connector: glyph, Name: layer.DisplayName(), Layer: layer})
		last = len(rows) - 1
		previous = layer
		first = false
	}
	return rows
}

// related reports whether layer has the wanted relation to prev. A parallel
// match needs an emitted row to rewrite, which prev guarantees.
func related(layer, prev Layer, want Relation) bool {
	if prev == nil {
		return false
	}
	return layer.RoutingRelation(prev) == want
}

// Labels returns the label of every row in order.
func Labels(rows []Row) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Label()
	}
	return out
}
