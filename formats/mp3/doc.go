// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG Layer-3 audio via hajimehoshi/go-mp3.
//
// The decoder wraps go-mp3's 16-bit PCM byte stream as an audio.Source.
// go-mp3 always produces stereo interleaved output, so Channels() reports 2
// regardless of the encoded channel mode; the downstream MonoMixer folds it
// back down for the sampler.
package mp3
