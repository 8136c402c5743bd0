// SPDX-License-Identifier: EPL-2.0

// Package command decodes and dispatches inbound sampler commands.
//
// The wire form is an adjacently-tagged JSON envelope, one command per
// message:
//
//	{"command": "Play", "payload": {"pad_id": 0, "file_path": "kick.wav", "volume": 1.0, "pan": 0.0}}
//	{"command": "Stop", "payload": {"pad_id": 0}}
//	{"command": "Load", "payload": {"pad_id": 0, "file_path": "kick.wav"}}
//	{"command": "SetMasterVolume", "payload": {"volume": 0.8}}
//
// Play, Stop and SetMasterVolume are handled synchronously. Load spawns a
// background decode worker that reports through the event emitter when the
// waveform summary is ready. Malformed input is logged and dropped.
package command
