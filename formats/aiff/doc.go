// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files via go-audio/aiff.
//
// Supports 16-, 24- and 32-bit PCM, normalized to float32 by the signed
// maximum of the source bit depth. go-audio requires seekable input; plain
// readers are buffered into memory first.
package aiff
