package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/opensampler/padcore/audio"
)

const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

type wavSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	bitDepth   int
	encoding   uint16 // formatPCM or formatIEEEFloat
	remaining  int64  // bytes left in the data chunk
	buf        []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }
func (s *wavSource) BufSize() int    { return cap(s.buf) / (s.bitDepth / 8) }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.remaining <= 0 {
		return 0, io.EOF
	}

	bps := s.bitDepth / 8
	want := int64(len(dst) * bps)
	if want > s.remaining {
		want = s.remaining
	}

	if cap(s.buf) < int(want) {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	n, err := io.ReadFull(s.r, s.buf)
	s.remaining -= int64(n)
	if n == 0 {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, io.EOF
		}
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, nil
	}
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / bps

	switch {
	case s.encoding == formatIEEEFloat:
		for i := 0; i < samples; i++ {
			bits := binary.LittleEndian.Uint32(s.buf[4*i : 4*i+4])
			dst[i] = math.Float32frombits(bits)
		}
	case s.bitDepth == 16:
		for i := 0; i < samples; i++ {
			v := int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
			dst[i] = float32(v) / 32768.0
		}
	case s.bitDepth == 24:
		for i := 0; i < samples; i++ {
			b := s.buf[3*i : 3*i+3]
			v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
			// Sign-extend from 24 bits
			if v&0x800000 != 0 {
				v |= ^int32(0xFFFFFF)
			}
			dst[i] = float32(v) / 8388608.0
		}
	case s.bitDepth == 32:
		for i := 0; i < samples; i++ {
			v := int32(binary.LittleEndian.Uint32(s.buf[4*i : 4*i+4]))
			dst[i] = float32(float64(v) / 2147483648.0)
		}
	}

	// A trailing partial sample in an otherwise valid stream decodes as
	// silence instead of failing the whole file.
	if rem := n % bps; rem != 0 {
		dst[samples] = 0
		samples++
		s.remaining = 0
	}

	return samples, nil
}

type Decoder struct{}

// Decode parses the RIFF/WAVE container and returns a streaming source over
// the data chunk. Supported encodings: PCM 16/24/32-bit signed integer and
// IEEE 32-bit float. Anything else is a decode error, never a silent
// zero-fill.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, ErrNotWavFile
	}

	var (
		haveFmt    bool
		encoding   uint16
		channels   int
		sampleRate int
		bitDepth   int
	)

	// Walk chunks until the data chunk; fmt must come first.
	for {
		var hdr [8]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrMissingDataChunk
			}
			return nil, fmt.Errorf("%w", err)
		}

		id := string(hdr[0:4])
		size := binary.LittleEndian.Uint32(hdr[4:8])

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, ErrUnsupportedWavLayout
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("%w", err)
			}

			encoding = binary.LittleEndian.Uint16(body[0:2])
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bitDepth = int(binary.LittleEndian.Uint16(body[14:16]))
			haveFmt = true

		case "data":
			if !haveFmt {
				return nil, ErrUnsupportedWavLayout
			}
			if channels < 1 || sampleRate <= 0 {
				return nil, ErrUnsupportedWavLayout
			}

			switch encoding {
			case formatPCM:
				if bitDepth != 16 && bitDepth != 24 && bitDepth != 32 {
					return nil, fmt.Errorf("%d bit: %w", bitDepth, ErrUnsupportedBitDepth)
				}
			case formatIEEEFloat:
				if bitDepth != 32 {
					return nil, fmt.Errorf("%d bit float: %w", bitDepth, ErrUnsupportedBitDepth)
				}
			default:
				return nil, fmt.Errorf("format tag %d: %w", encoding, ErrUnsupportedEncoding)
			}

			return &wavSource{
				r:          r,
				sampleRate: sampleRate,
				channels:   channels,
				bitDepth:   bitDepth,
				encoding:   encoding,
				remaining:  int64(size),
				buf:        make([]byte, 4096),
			}, nil

		default:
			// Skip unknown chunks (LIST, fact, cue, ...); sizes are padded
			// to even byte counts.
			skip := int64(size)
			if size%2 == 1 {
				skip++
			}
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return nil, ErrMissingDataChunk
			}
		}
	}
}
