// Package synth generates synthetic signed 8-bit PCM: pure DTMF tones,
// silence, and uniform (unfiltered) noise standing in for voice. It has no
// role in the detection pipeline; it exists to produce known-good
// inputs for the round-trip tests in spec.md §8 and to back the
// `--gen` development flag.
package synth

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/taintline/nanptap/internal/tone"
)

// componentAmplitude is the per-sinusoid amplitude used when encoding a
// digit as the sum of its two DTMF tones. It is chosen comfortably
// above the Frame Analyzer's detection threshold (it decodes to
// roughly +15dBFS after the Goertzel scaling in use, several dB clear
// of THRESH_DTMF) while leaving headroom in the int8 sample range for
// the two components to sum without clipping.
const componentAmplitude = 50.0

// Digit writes onMs milliseconds of the two-sinusoid sum representing
// digit (one of 0-9, *, #, A-D) as signed 8-bit PCM at sampleRate.
func Digit(w io.Writer, digit byte, onMs int, sampleRate int) error {
	low, high, ok := tone.DigitFrequencies(digit)
	if !ok {
		return fmt.Errorf("synth: %q is not a DTMF button", digit)
	}

	n := onMs * sampleRate / 1000
	samples := make([]byte, n)
	var phaseLow, phaseHigh float64
	stepLow := 2 * math.Pi * low / float64(sampleRate)
	stepHigh := 2 * math.Pi * high / float64(sampleRate)

	for i := 0; i < n; i++ {
		v := componentAmplitude*math.Sin(phaseLow) + componentAmplitude*math.Sin(phaseHigh)
		samples[i] = byte(int8(clamp(v)))
		phaseLow += stepLow
		phaseHigh += stepHigh
	}

	_, err := w.Write(samples)
	return err
}

// Silence writes ms milliseconds of zero-valued samples at sampleRate.
func Silence(w io.Writer, ms int, sampleRate int) error {
	n := ms * sampleRate / 1000
	_, err := w.Write(make([]byte, n))
	return err
}

// Voice writes ms milliseconds of noise at sampleRate shaped to the
// target RMS level dBFS, standing in for a voice/speech segment.
func Voice(w io.Writer, ms int, sampleRate int, dBFS float64) error {
	rms := tone.RMSForDBFS(dBFS)
	// Uniform noise on [-a, a] has RMS = a/sqrt(3).
	amplitude := rms * math.Sqrt(3)

	n := ms * sampleRate / 1000
	samples := make([]byte, n)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		v := amplitude * (2*rng.Float64() - 1)
		samples[i] = byte(int8(clamp(v)))
	}

	_, err := w.Write(samples)
	return err
}

// DialString writes a full dialing sequence: each digit held for onMs
// with gapMs of silence between digits, matching the scenario tables
// in spec.md §8.
func DialString(w io.Writer, digits string, onMs, gapMs, sampleRate int) error {
	for i := 0; i < len(digits); i++ {
		if err := Digit(w, digits[i], onMs, sampleRate); err != nil {
			return err
		}
		if i < len(digits)-1 {
			if err := Silence(w, gapMs, sampleRate); err != nil {
				return err
			}
		}
	}
	return nil
}

// clamp keeps a float64 sample within the signed 8-bit range before
// truncation.
func clamp(v float64) float64 {
	if v > 127 {
		return 127
	}
	if v < -128 {
		return -128
	}
	return v
}
