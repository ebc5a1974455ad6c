package menu

import (
	"errors"
	"reflect"
	"testing"
)

func TestChainOptionItemsForSynthChain(t *testing.T) {
	ctx := contextFor(t, loadFixture(t), 0)
	items, err := ChainOptionItems(ctx)
	if err != nil {
		t.Fatalf("chain options: %v", err)
	}
	want := []string{
		"note-range", "clone", "audio-options", "audio-output", "recording",
		"midi-learn", "midi-routing", "midi-channel",
		"section:chain", "add-midi-fx", "layer:arp", "layer:zyn", "layer:rev",
		"add-audio-fx", "remove",
	}
	if got := itemIDs(items); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected items\n got %v\nwant %v", got, want)
	}
	section := findItem(t, items, "section:chain")
	if !section.Header || section.Label != "> Chain" {
		t.Fatalf("expected chain header, got %#v", section)
	}
	if rec := findItem(t, items, "recording"); rec.Label != "⬤ Start Audio Recording" {
		t.Fatalf("unexpected recording label %q", rec.Label)
	}
	if row := findItem(t, items, "layer:zyn"); row.Layer != ctx.Root || row.Label != "  ╰━ ZynAddSubFX" {
		t.Fatalf("unexpected root row %#v", row)
	}
}

func TestChainOptionItemsRecordingLabelFollowsRecorder(t *testing.T) {
	ctx := contextFor(t, loadFixture(t), 0)
	ctx.Recorder.SetStatus(true)
	items, err := ChainOptionItems(ctx)
	if err != nil {
		t.Fatalf("chain options: %v", err)
	}
	if rec := findItem(t, items, "recording"); rec.Label != "■ Stop Audio Recording" {
		t.Fatalf("unexpected recording label %q", rec.Label)
	}
}

func TestChainOptionItemsForMixbus(t *testing.T) {
	ctx := contextFor(t, loadFixture(t), 1)
	items, err := ChainOptionItems(ctx)
	if err != nil {
		t.Fatalf("chain options: %v", err)
	}
	want := []string{
		"audio-options", "recording", "midi-learn",
		"section:chain", "layer:eq", "layer:comp",
		"add-audio-fx", "remove-audio-fx",
	}
	if got := itemIDs(items); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected items\n got %v\nwant %v", got, want)
	}
	labels := []string{findItem(t, items, "layer:eq").Label, findItem(t, items, "layer:comp").Label}
	if !reflect.DeepEqual(labels, []string{"┗━ EQ", "  ┗━ Compressor"}) {
		t.Fatalf("unexpected tree %q", labels)
	}
}

func TestChainOptionItemsForLoneAudioEffect(t *testing.T) {
	ctx := contextFor(t, loadFixture(t), 2)
	items, err := ChainOptionItems(ctx)
	if err != nil {
		t.Fatalf("chain options: %v", err)
	}
	want := []string{"audio-options", "audio-capture", "section:chain", "layer:solo", "add-audio-fx", "remove"}
	if got := itemIDs(items); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected items\n got %v\nwant %v", got, want)
	}
}

func TestChainOptionItemsForMIDIToolChain(t *testing.T) {
	ctx := contextFor(t, loadFixture(t), 3)
	items, err := ChainOptionItems(ctx)
	if err != nil {
		t.Fatalf("chain options: %v", err)
	}
	want := []string{"audio-options", "midi-learn", "section:chain", "add-midi-fx", "layer:seq", "remove-chain"}
	if got := itemIDs(items); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected items\n got %v\nwant %v", got, want)
	}
}

func TestChainOptionItemsWithoutRoot(t *testing.T) {
	if _, err := ChainOptionItems(Context{Graph: loadFixture(t)}); !errors.Is(err, ErrNoLayer) {
		t.Fatalf("expected ErrNoLayer, got %v", err)
	}
}

func TestSelectPath(t *testing.T) {
	g := loadFixture(t)
	zyn, _ := g.RootLayer(0)
	eq, _ := g.RootLayer(1)
	cases := []struct {
		got, want string
	}{
		{SelectPath(zyn), "1#ZynAddSubFX > Chain Options"},
		{SelectPath(eq), "Main > Chain Options"},
		{SelectPath(nil), "Chain Options"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, tc.got)
		}
	}
}

func TestLayerPreviewDescribesLayer(t *testing.T) {
	ctx := contextFor(t, loadFixture(t), 0)
	lines, err := LayerPreview(ctx, ctx.Root)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	want := []string{
		"Engine     ZynAddSubFX",
		"Type       MIDI Synth",
		"Channel    1",
		"Preset     Pads/Warm",
		"Audio out  rev",
		"Learn      CC74 ch1, CC71 ch1",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected preview\n got %q\nwant %q", lines, want)
	}
	if _, err := LayerPreview(ctx, nil); !errors.Is(err, ErrNoLayer) {
		t.Fatalf("expected ErrNoLayer, got %v", err)
	}
}

func TestLayerPreviewShowsMixbusChannel(t *testing.T) {
	ctx := contextFor(t, loadFixture(t), 1)
	lines, err := LayerPreview(ctx, ctx.Root)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if lines[2] != "Channel    main" {
		t.Fatalf("unexpected channel row %q", lines[2])
	}
	if lines[len(lines)-1] != "Learn      none" {
		t.Fatalf("unexpected learn row %q", lines[len(lines)-1])
	}
}
