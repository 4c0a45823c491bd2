package audio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taintline/nanptap/internal/tone"
)

func TestReadFrame_FullFrame(t *testing.T) {
	raw := bytes.Repeat([]byte{0x80}, tone.FrameSamples) // -128 as signed
	r := NewReader(bytes.NewReader(raw))

	frame, err := r.ReadFrame()
	assert.NoError(t, err)
	assert.Len(t, frame, tone.FrameSamples)
	assert.Equal(t, int8(-128), frame[0])
}

func TestReadFrame_PartialFrameAtEOFTerminatesCleanly(t *testing.T) {
	raw := bytes.Repeat([]byte{0x01}, tone.FrameSamples-1)
	r := NewReader(bytes.NewReader(raw))

	_, err := r.ReadFrame()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadFrame_MultipleFramesSequentially(t *testing.T) {
	raw := bytes.Repeat([]byte{0x02}, tone.FrameSamples*2)
	r := NewReader(bytes.NewReader(raw))

	f1, err := r.ReadFrame()
	assert.NoError(t, err)
	assert.Len(t, f1, tone.FrameSamples)

	f2, err := r.ReadFrame()
	assert.NoError(t, err)
	assert.Len(t, f2, tone.FrameSamples)

	_, err = r.ReadFrame()
	assert.ErrorIs(t, err, io.EOF)
}

// stallingReader returns (0, nil) forever: a driver that never signals
// EOF and never makes progress.
type stallingReader struct{}

func (stallingReader) Read(p []byte) (int, error) { return 0, nil }

func TestReadFrame_StallBoundedRetry(t *testing.T) {
	r := NewReader(stallingReader{})
	_, err := r.ReadFrame()
	assert.True(t, errors.Is(err, ErrStalledRead))
}

// shortThenEOFReader returns a fixed number of one-byte reads, then
// io.EOF with no further data: the test below uses it for the "short
// reads are retried until the frame fills" path from spec.md §7.
type shortThenEOFReader struct {
	remaining []byte
}

func (r *shortThenEOFReader) Read(p []byte) (int, error) {
	if len(r.remaining) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.remaining[:1])
	r.remaining = r.remaining[1:]
	return n, nil
}

func TestReadFrame_RetriesShortNonStallingReads(t *testing.T) {
	data := bytes.Repeat([]byte{0x03}, tone.FrameSamples)
	r := NewReader(&shortThenEOFReader{remaining: data})

	frame, err := r.ReadFrame()
	assert.NoError(t, err)
	assert.Len(t, frame, tone.FrameSamples)
}
