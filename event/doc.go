// SPDX-License-Identifier: EPL-2.0

// Package event carries results out of the sampler core.
//
// Two variants exist: WaveformReady (a Load finished decoding and peak
// extraction) and FileDropped (the shell reported an external file drop).
// Events are queued on an Emitter and drained by the UI boundary once per
// tick; the wire form is an adjacently-tagged JSON envelope:
//
//	{"event": "WaveformReady", "payload": {"pad_id": 3, "peaks": [...], "duration": 1.25}}
package event
