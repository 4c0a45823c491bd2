// Package tone implements the Frame Analyzer: per-frame Goertzel tone
// detection, harmonic rejection against speech, and a decayed-RMS voice
// detector, yielding exactly one Classification per audio frame.
package tone

import "math"

// SampleRate is the only supported input sample rate: 8kHz signed 8-bit
// PCM from the upstream transcoding pipeline.
const SampleRate = 8000

// FrameSamples (N) is the fixed Goertzel block length. At 8kHz this
// gives a frame duration of N/SampleRate ≈ 25.625ms.
const FrameSamples = 205

// FrameDurationMs is the per-frame time advance used by the Symbol
// Emitter, derived as N*1000/fs.
const FrameDurationMs = float64(FrameSamples) * 1000 / float64(SampleRate)

// lowFreqs are the four DTMF row frequencies (Hz), indices 0-3 of a
// FrequencySet.
var lowFreqs = [4]float64{697, 770, 852, 941}

// highFreqs are the four DTMF column frequencies (Hz), indices 4-7 of a
// FrequencySet.
var highFreqs = [4]float64{1209, 1336, 1477, 1633}

// dtmfMatrix maps a (row, col) pair — indices into lowFreqs/highFreqs —
// to the character a button at that intersection represents.
var dtmfMatrix = [4][4]byte{
	{'1', '2', '3', 'A'},
	{'4', '5', '6', 'B'},
	{'7', '8', '9', 'C'},
	{'*', '0', '#', 'D'},
}

// DigitFrequencies returns the (low, high) frequency pair a DTMF button
// encodes to, the inverse of the dtmfMatrix lookup used for detection.
// It is exported for the synthetic signal generator, which needs the
// same matrix to encode a digit that this package uses to decode one.
func DigitFrequencies(ch byte) (low, high float64, ok bool) {
	for row := range dtmfMatrix {
		for col := range dtmfMatrix[row] {
			if dtmfMatrix[row][col] == ch {
				return lowFreqs[row], highFreqs[col], true
			}
		}
	}
	return 0, 0, false
}

// goertzelCoef is 2*cos(2*pi*k/N) for a Goertzel bin index k derived
// from the target frequency f: k = round(N*f/fs).
func goertzelCoef(freq float64) float32 {
	k := math.Round(float64(FrameSamples) * freq / float64(SampleRate))
	return float32(2.0 * math.Cos(2.0*math.Pi*k/float64(FrameSamples)))
}

// coefficients holds the precomputed Goertzel coefficients for the 8
// DTMF fundamentals (index 0-3 low, 4-7 high) and their first harmonics,
// in the same index order.
type coefficients struct {
	fundamental [8]float32
	harmonic    [8]float32
}

func newCoefficients() coefficients {
	var c coefficients
	for i, f := range lowFreqs {
		c.fundamental[i] = goertzelCoef(f)
		c.harmonic[i] = goertzelCoef(2 * f)
	}
	for i, f := range highFreqs {
		c.fundamental[4+i] = goertzelCoef(f)
		c.harmonic[4+i] = goertzelCoef(2 * f)
	}
	return c
}
