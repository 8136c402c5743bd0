// SPDX-License-Identifier: EPL-2.0

// Package engine mixes triggered pad samples into a live output stream.
//
// # Model
//
// Each triggered pad owns at most one Voice: a playback cursor over a fully
// materialized mono sample buffer. The Engine keeps the active voices in a
// table keyed by pad id; a new Play for a pad that already sounds simply
// replaces its voice.
//
// The output device (an Output implementation, miniaudio in production)
// calls Engine.Mix from its real-time thread once per hardware buffer. Mix
// sums every voice per frame, applies master volume with a fixed 2.0 gain
// boost, clamps to [-1, 1], and writes the same mono scalar to all output
// channels. Finished voices are dropped at the end of each pass.
//
// # Real-time constraints
//
// Everything a voice needs must be materialized before Play; Mix never
// performs I/O, decoding, allocation or logging. The shared voice table is
// guarded by a mutex held across the whole buffer pass on the callback side
// and only for map updates on the command side, so callback stalls stay
// bounded and short.
//
// # Failure
//
// OpenDefaultOutput returns ErrDeviceUnavailable when no playback backend
// exists; this is fatal, the sampler cannot run without audio output.
package engine
