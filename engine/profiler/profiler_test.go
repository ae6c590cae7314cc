//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestBalanceDropsMismatchedCloses(t *testing.T) {
	evs := []event{
		{at: 0, scope: 0, open: true},
		{at: 2000, scope: 1, open: true},
		{at: 3000, scope: 0}, // not innermost, dropped
		{at: 1000, scope: 1}, // clock went backwards, clamped
	}
	got, end := balance(evs)
	want := []ssEvent{
		{Type: "O", At: 0, Frame: 0},
		{Type: "O", At: 2, Frame: 1},
		{Type: "C", At: 2, Frame: 1},
		{Type: "C", At: 2, Frame: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if end != 2 {
		t.Errorf("end = %d, want 2", end)
	}
}

func TestDumpBalancesScopes(t *testing.T) {
	Init(64)
	endFrame := Start("ui.Frame")
	Start("ui.Build")()    // closed immediately
	_ = Start("ui.Layout") // left open, closed by the writer
	endFrame()             // mismatched close is skipped

	path := filepath.Join(t.TempDir(), "capture.json")
	if err := Dump(path); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc ssFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("capture is not JSON: %v", err)
	}
	if len(doc.Profiles) != 1 {
		t.Fatalf("got %d profiles, want 1", len(doc.Profiles))
	}
	depth := 0
	for _, ev := range doc.Profiles[0].Events {
		switch ev.Type {
		case "O":
			depth++
		case "C":
			depth--
		}
		if depth < 0 {
			t.Fatal("close event before its open")
		}
	}
	if depth != 0 {
		t.Errorf("unbalanced capture, %d scopes left open", depth)
	}
}
