// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio via jfreymuth/oggvorbis.
//
// oggvorbis decodes directly to float32 samples in [-1,1], so this package
// only adapts its reader to the audio.Source interface; no normalization is
// needed.
package vorbis
