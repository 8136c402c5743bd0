package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedBitDepth  = errors.New("unsupported bit depth")
	ErrUnsupportedEncoding  = errors.New("unsupported WAV encoding")
	ErrMissingDataChunk     = errors.New("no data chunk found")
)
