package synth

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taintline/nanptap/internal/tone"
)

func TestSilence_WritesZeroBytes(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Silence(&buf, 100, tone.SampleRate))
	assert.Equal(t, tone.SampleRate/10, buf.Len())
	for _, b := range buf.Bytes() {
		assert.Equal(t, byte(0), b)
	}
}

func TestDigit_RejectsNonDTMFCharacter(t *testing.T) {
	var buf bytes.Buffer
	err := Digit(&buf, 'x', 100, tone.SampleRate)
	assert.Error(t, err)
}

func TestDigit_ProducesExpectedSampleCount(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Digit(&buf, '5', 100, tone.SampleRate))
	assert.Equal(t, tone.SampleRate/10, buf.Len())
}

func TestDigit_ClassifiesBackToItself(t *testing.T) {
	for _, d := range "0123456789*#ABCD" {
		digit := byte(d)
		var buf bytes.Buffer
		assert.NoError(t, Digit(&buf, digit, 100, tone.SampleRate))

		a := tone.NewAnalyzer()
		frame := buf.Bytes()[:tone.FrameSamples]
		signed := make([]int8, len(frame))
		for i, b := range frame {
			signed[i] = int8(b)
		}

		got := a.Classify(signed)
		assert.Equal(t, tone.ClassTone, got.Kind)
		assert.Equal(t, digit, got.Symbol)
	}
}

func TestDialString_InterleavesDigitsAndGaps(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, DialString(&buf, "12", 100, 50, tone.SampleRate))
	wantLen := 2*(tone.SampleRate/10) + tone.SampleRate/20 // 2 digits, 1 gap
	assert.Equal(t, wantLen, buf.Len())
}
