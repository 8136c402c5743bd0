// SPDX-License-Identifier: EPL-2.0

package command

import (
	"encoding/json"
	"fmt"
)

// Command is the inbound message union from the UI boundary. Exactly one
// variant arrives per message.
type Command interface {
	// Name is the wire tag of the command variant.
	Name() string
}

// Play triggers a pad: decode file_path and install a voice. Pan is part of
// the wire contract but has no effect on the mono output; it is a
// deliberate stub, not a field to start honoring silently.
type Play struct {
	PadID    uint    `json:"pad_id"`
	FilePath string  `json:"file_path"`
	Volume   float32 `json:"volume"`
	Pan      float32 `json:"pan"`
}

func (Play) Name() string { return "Play" }

// Stop removes a pad's voice immediately, with no fade-out.
type Stop struct {
	PadID uint `json:"pad_id"`
}

func (Stop) Name() string { return "Stop" }

// Load decodes file_path on a background worker and reports a waveform
// summary for display.
type Load struct {
	PadID    uint   `json:"pad_id"`
	FilePath string `json:"file_path"`
}

func (Load) Name() string { return "Load" }

// SetMasterVolume stores the shared output gain, clamped to [0, 1].
type SetMasterVolume struct {
	Volume float32 `json:"volume"`
}

func (SetMasterVolume) Name() string { return "SetMasterVolume" }

// envelope is the adjacently-tagged wire form:
// {"command": "<name>", "payload": {...}}.
type envelope struct {
	Command string          `json:"command"`
	Payload json.RawMessage `json:"payload"`
}

// Unmarshal decodes one wire envelope into its command variant.
func Unmarshal(data []byte) (Command, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformedCommand)
	}

	var (
		cmd Command
		err error
	)

	switch env.Command {
	case "Play":
		var c Play
		err = json.Unmarshal(env.Payload, &c)
		cmd = c
	case "Stop":
		var c Stop
		err = json.Unmarshal(env.Payload, &c)
		cmd = c
	case "Load":
		var c Load
		err = json.Unmarshal(env.Payload, &c)
		cmd = c
	case "SetMasterVolume":
		var c SetMasterVolume
		err = json.Unmarshal(env.Payload, &c)
		cmd = c
	default:
		return nil, fmt.Errorf("%q: %w", env.Command, ErrUnknownCommand)
	}

	if err != nil {
		return nil, fmt.Errorf("%s payload: %v: %w", env.Command, err, ErrMalformedCommand)
	}

	return cmd, nil
}

// Marshal encodes cmd into its wire envelope.
func Marshal(cmd Command) ([]byte, error) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", cmd.Name(), err)
	}

	return json.Marshal(envelope{Command: cmd.Name(), Payload: payload})
}
