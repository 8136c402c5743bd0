// SPDX-License-Identifier: EPL-2.0

package padcore

import (
	"github.com/opensampler/padcore/audio"
	"github.com/opensampler/padcore/formats/aiff"
	"github.com/opensampler/padcore/formats/mp3"
	"github.com/opensampler/padcore/formats/vorbis"
	"github.com/opensampler/padcore/formats/wav"
)

// DefaultRegistry returns a decoder registry with every built-in format
// registered. Embedders can Register additional decoders on the returned
// registry before handing it to the core.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}
