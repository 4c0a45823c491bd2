package tone

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// synthesizeDigit renders n samples of the two-sinusoid sum for a DTMF
// digit at the given per-component amplitude, mirroring internal/synth
// without importing it (tone must not depend on synth).
func synthesizeDigit(t *testing.T, digit byte, amplitude float64, n int) []int8 {
	t.Helper()
	low, high, ok := DigitFrequencies(digit)
	if !ok {
		t.Fatalf("no DTMF mapping for %q", digit)
	}
	out := make([]int8, n)
	stepLow := 2 * math.Pi * low / SampleRate
	stepHigh := 2 * math.Pi * high / SampleRate
	var phaseLow, phaseHigh float64
	for i := 0; i < n; i++ {
		v := amplitude*math.Sin(phaseLow) + amplitude*math.Sin(phaseHigh)
		out[i] = int8(v)
		phaseLow += stepLow
		phaseHigh += stepHigh
	}
	return out
}

func TestAnalyzer_ClassifiesEveryDTMFDigit(t *testing.T) {
	digits := "0123456789*#ABCD"
	for _, d := range digits {
		digit := byte(d)
		t.Run(string(digit), func(t *testing.T) {
			a := NewAnalyzer()
			frame := synthesizeDigit(t, digit, 50.0, FrameSamples)
			got := a.Classify(frame)
			assert.Equal(t, ClassTone, got.Kind)
			assert.Equal(t, digit, got.Symbol)
		})
	}
}

func TestAnalyzer_Silence(t *testing.T) {
	a := NewAnalyzer()
	frame := make([]int8, FrameSamples)
	got := a.Classify(frame)
	assert.Equal(t, ClassSilence, got.Kind)
}

func TestAnalyzer_VoiceAfterSustainedLoudNoise(t *testing.T) {
	a := NewAnalyzer()
	// A single 300Hz sinusoid (no DTMF frequency) at amplitude 60, about
	// -6.5dBFS RMS, should accumulate past THRESH_VOICE within a handful
	// of frames even though the decayed average starts at zero.
	var got Classification
	for i := 0; i < 30; i++ {
		frame := make([]int8, FrameSamples)
		for s := range frame {
			frame[s] = int8(60 * math.Sin(2*math.Pi*300*float64(s)/SampleRate))
		}
		got = a.Classify(frame)
	}
	assert.Equal(t, ClassVoice, got.Kind)
}

func TestAnalyzer_HarmonicRejection(t *testing.T) {
	a := NewAnalyzer()

	// Pure fundamentals only: must validate as a tone.
	pure := synthesizeDigit(t, '5', 50.0, FrameSamples)
	got := a.Classify(pure)
	assert.Equal(t, ClassTone, got.Kind, "pure DTMF fundamentals must not be rejected")

	// Inject first-harmonic energy atop the same digit: detection must
	// not validate to a tone, since true DTMF never carries harmonic
	// energy at this level.
	a2 := NewAnalyzer()
	low, high, _ := DigitFrequencies('5')
	withHarmonic := make([]int8, FrameSamples)
	for i := range withHarmonic {
		tSec := float64(i) / SampleRate
		v := 50.0*math.Sin(2*math.Pi*low*tSec) +
			50.0*math.Sin(2*math.Pi*high*tSec) +
			50.0*math.Sin(2*math.Pi*2*low*tSec)
		if v > 127 {
			v = 127
		} else if v < -128 {
			v = -128
		}
		withHarmonic[i] = int8(v)
	}
	got2 := a2.Classify(withHarmonic)
	assert.NotEqual(t, ClassTone, got2.Kind, "harmonic energy at the fundamental's 2x must reject the tone")
}

func TestDBFS_ZeroMagnitudeIsBelowThreshold(t *testing.T) {
	assert.True(t, math.IsInf(dBFS(0), -1))
	assert.False(t, dBFS(0) > threshDTMF)
}
