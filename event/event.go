// SPDX-License-Identifier: EPL-2.0

package event

import (
	"encoding/json"
	"fmt"

	"github.com/opensampler/padcore/waveform"
)

// Event is the outbound message union carried from the core to the UI
// boundary.
type Event interface {
	// Name is the wire tag of the event variant.
	Name() string
}

// FileDropped reports an external file dropped onto the shell at window
// coordinates (x, y).
type FileDropped struct {
	Path string  `json:"path"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func (FileDropped) Name() string { return "FileDropped" }

// WaveformReady carries the display summary produced by a finished Load.
type WaveformReady struct {
	waveform.Summary
}

func (WaveformReady) Name() string { return "WaveformReady" }

// envelope is the adjacently-tagged wire form: {"event": ..., "payload": ...}.
type envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// Marshal encodes ev into its wire envelope.
func Marshal(ev Event) ([]byte, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", ev.Name(), err)
	}

	return json.Marshal(envelope{Event: ev.Name(), Payload: payload})
}
