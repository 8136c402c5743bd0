// SPDX-License-Identifier: EPL-2.0

// Package padcore is the playback core of a drum-pad sampler.
//
// The core turns decoded audio files into live output: each pad owns at
// most one voice, voices are summed additively into a real-time device
// buffer, and a JSON command/event stream connects the core to whatever
// shell drives it.
//
// # Pipeline
//
// A triggered file travels one fixed path before it reaches the device:
//
//	decode -> normalize to float32 -> downmix to mono -> resample to the
//	device rate -> install as the pad's voice
//
// Decoding is format-pluggable (see formats/wav, formats/mp3,
// formats/vorbis, formats/aiff); everything after the decoder is
// format-agnostic and operates on audio.Source streams.
//
// # Quick Start
//
//	core, err := padcore.New(padcore.Options{})
//	if err != nil {
//	    // no playback device
//	}
//	defer core.Close()
//
//	core.HandleCommand([]byte(`{"command":"Play","payload":{"pad_id":0,"file_path":"kick.wav","volume":1.0,"pan":0.0}}`))
//
//	for _, ev := range core.Poll() {
//	    raw, _ := event.Marshal(ev)
//	    // forward raw to the UI
//	}
//
// # Commands and Events
//
// Inbound commands are adjacently-tagged JSON envelopes (Play, Stop, Load,
// SetMasterVolume); see the command subpackage for the wire contract.
// Outbound events (WaveformReady, FileDropped) queue on an emitter until
// the embedder drains them with Poll.
//
// # Mixing Model
//
// The mixer is deliberately simple: per output frame it sums every active
// voice, applies the master volume with a fixed 2.0 headroom boost, clamps
// to [-1, 1] and writes the same mono scalar to every device channel.
// Triggering a pad that is already playing restarts it; there is no voice
// stealing and no per-pad panning in the mix.
package padcore
