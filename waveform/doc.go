// SPDX-License-Identifier: EPL-2.0

// Package waveform reduces decoded sample buffers to small fixed-width peak
// summaries for display.
//
// A Summary carries one non-negative peak magnitude per display column plus
// the sample duration. Extraction happens on background decode workers,
// never inside the audio callback.
package waveform
