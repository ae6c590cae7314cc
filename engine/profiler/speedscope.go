//go:build profile

package profiler

import (
	"encoding/json"
	"fmt"
	"os"
)

// speedscope file format, evented profile flavour.
type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // microseconds since the first event
	Frame int    `json:"frame"`
}

// balance converts raw events into speedscope events. Closes that do not
// match the innermost open scope are dropped, and scopes still open at the
// end are closed at the last timestamp.
func balance(evs []event) (out []ssEvent, end int64) {
	base := evs[0].at
	stack := make([]int, 0, 32)
	last := int64(0)

	for _, e := range evs {
		at := (e.at - base) / 1000
		if at < last {
			at = last
		}
		if e.open {
			stack = append(stack, e.scope)
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.scope})
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.scope {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.scope})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	return out, last
}

func writeCapture(path string, evs []event, scopeNames []string) error {
	ssEvents, end := balance(evs)
	if len(ssEvents) == 0 {
		return fmt.Errorf("profiler: no usable events after filtering")
	}

	frames := make([]ssFrame, len(scopeNames))
	for i, n := range scopeNames {
		frames[i] = ssFrame{Name: n}
	}
	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "grui frames",
			Unit:     "microseconds",
			EndValue: end,
			Events:   ssEvents,
		}},
		Exporter: "grui-profiler",
		Name:     "grui capture",
	}

	// write next to the target and rename so viewers never see a partial file
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
