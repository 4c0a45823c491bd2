// Package audio provides fixed-size frame reading over the raw,
// headerless, signed 8-bit, 8kHz, mono PCM stream this system consumes
// from its upstream transcoding pipeline. There is no container or
// codec to demux: every byte is one sample.
package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/taintline/nanptap/internal/tone"
)

// ErrStalledRead is returned when the underlying reader repeatedly
// returns zero bytes without signaling EOF. Some platforms' drivers can
// do this transiently on a pipe or device; treating it as end-of-stream
// after a bounded number of retries avoids spinning forever.
var ErrStalledRead = errors.New("audio: stalled read (repeated zero-byte, non-EOF reads)")

// maxStalledReads bounds the number of consecutive zero-byte, non-EOF
// reads tolerated before a frame read gives up and reports
// ErrStalledRead.
const maxStalledReads = 3

// Reader reads fixed-size frames of tone.FrameSamples signed 8-bit PCM
// samples from an underlying byte stream.
type Reader struct {
	r   io.Reader
	raw [tone.FrameSamples]byte
}

// NewReader wraps r for frame-at-a-time reading.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadFrame reads the next full frame. It returns io.EOF once the
// stream is exhausted — either cleanly between frames, or because a
// final short read left a partial frame that is discarded rather than
// processed (per spec, a short read not at EOF is retried until the
// frame fills or EOF is reached; EOF with a partial frame terminates
// the stream cleanly). It returns ErrStalledRead if reads stall
// without making progress or reaching EOF.
func (fr *Reader) ReadFrame() ([]int8, error) {
	n := 0
	stalls := 0

	for n < len(fr.raw) {
		m, err := fr.r.Read(fr.raw[n:])
		if m == 0 && err == nil {
			stalls++
			if stalls >= maxStalledReads {
				return nil, ErrStalledRead
			}
			continue
		}
		stalls = 0
		n += m

		if err != nil {
			if errors.Is(err, io.EOF) {
				if n == len(fr.raw) {
					break
				}
				return nil, io.EOF
			}
			return nil, fmt.Errorf("read frame: %w", err)
		}
	}

	return toSigned(fr.raw[:]), nil
}

// toSigned reinterprets raw PCM bytes as signed 8-bit samples.
func toSigned(raw []byte) []int8 {
	out := make([]int8, len(raw))
	for i, b := range raw {
		out[i] = int8(b)
	}
	return out
}
