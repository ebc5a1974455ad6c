package events

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/chainmenu/internal/logging"
)

func TestTracersWriteEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	logging.Configure(path)
	logging.SetTraceEnabled(true)
	t.Cleanup(func() {
		logging.SetTraceEnabled(false)
		logging.Configure("")
	})

	Chain.Open("zyn", 0)
	Filter.Edit("chain", "append", "rev")
	Action.Error(nil)
	Mixer.Toggle("mono", 0, true)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	var got []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry struct {
			Event string `json:"event"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("decode %q: %v", scanner.Text(), err)
		}
		got = append(got, entry.Event)
	}
	want := []string{"chain.open", "filter.append", "mixer.toggle"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
