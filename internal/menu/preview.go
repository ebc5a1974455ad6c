package menu

import (
	"fmt"
	"strings"

	"github.com/atomicstack/chainmenu/internal/engine"
	"github.com/atomicstack/chainmenu/internal/format/table"
)

// LayerPreview describes a layer for the preview panel.
func LayerPreview(ctx Context, layer *engine.Layer) ([]string, error) {
	if layer == nil {
		return nil, ErrNoLayer
	}
	channel := "none"
	switch {
	case layer.IsMixbus():
		channel = "main"
	case layer.HasMIDIChan():
		channel = fmt.Sprintf("%d", layer.Chan()+1)
	}
	rows := [][]string{
		{"Engine", layer.DisplayName()},
		{"Type", string(layer.Engine.Type)},
		{"Channel", channel},
	}
	if layer.Engine.Nickname != "" {
		rows = append(rows, []string{"Nickname", layer.Engine.Nickname})
	}
	if layer.Preset != "" {
		rows = append(rows, []string{"Preset", layer.Preset})
	}
	if len(layer.MIDIOut) > 0 {
		rows = append(rows, []string{"MIDI out", strings.Join(layer.MIDIOut, ", ")})
	}
	if len(layer.AudioOut) > 0 {
		rows = append(rows, []string{"Audio out", strings.Join(layer.AudioOut, ", ")})
	}
	var bindings []string
	if ctx.Graph != nil {
		for _, msg := range ctx.Graph.Bindings(layer) {
			bindings = append(bindings, engine.FormatBinding(msg))
		}
	}
	if len(bindings) == 0 {
		rows = append(rows, []string{"Learn", "none"})
	} else {
		rows = append(rows, []string{"Learn", strings.Join(bindings, ", ")})
	}
	return table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft}), nil
}
