package tone

import "math"

// Tone presence and voice-activity thresholds, in dBFS, per spec.
const (
	threshDTMF  = 10.0
	threshVoice = -23.0
)

// voiceDecay is the exponential-smoothing coefficient for the decayed
// RMS voice estimate: avg <- alpha*frame_rms + (1-alpha)*avg.
const voiceDecay = 0.1

// Analyzer is the Frame Analyzer. It owns the decayed-RMS voice
// estimate across frames; everything else (the Goertzel accumulators)
// is scratch state recomputed from scratch for every frame.
type Analyzer struct {
	coef     coefficients
	voiceAvg float32
}

// NewAnalyzer constructs an Analyzer ready to classify frames of
// FrameSamples int8 samples at SampleRate.
func NewAnalyzer() *Analyzer {
	return &Analyzer{coef: newCoefficients()}
}

// Classify analyzes one fixed-size frame and returns exactly one
// Classification: a validated tone if the bitset reduces to a unique
// (row, col) pair after harmonic rejection, otherwise Voice if the
// decayed-RMS detector fires, otherwise Silence.
func (a *Analyzer) Classify(frame []int8) Classification {
	present := a.fundamentalSet(frame)
	a.rejectHarmonics(frame, &present)

	if row := present.soleLowIndex(); row >= 0 {
		if col := present.soleHighIndex(); col >= 0 {
			return toneClass(dtmfMatrix[row][col])
		}
	}

	if a.detectVoice(frame) {
		return voice()
	}
	return silence()
}

// fundamentalSet computes the Goertzel magnitude at each of the 8 DTMF
// fundamentals and sets the corresponding bit when it exceeds
// threshDTMF in dBFS.
func (a *Analyzer) fundamentalSet(frame []int8) FrequencySet {
	var present FrequencySet
	for i := 0; i < 8; i++ {
		mag := goertzelMagnitude(frame, a.coef.fundamental[i])
		if dBFS(mag) > threshDTMF {
			present.Set(i)
		}
	}
	return present
}

// rejectHarmonics clears any bit in present whose first harmonic (2*f)
// also exceeds threshDTMF: true DTMF is machine-generated and pure, so
// it carries no detectable energy at its first harmonic, while speech
// formants routinely do.
func (a *Analyzer) rejectHarmonics(frame []int8, present *FrequencySet) {
	for i := 0; i < 8; i++ {
		if !present.Test(i) {
			continue
		}
		mag := goertzelMagnitude(frame, a.coef.harmonic[i])
		if dBFS(mag) > threshDTMF {
			present.Clear(i)
		}
	}
}

// detectVoice updates the decayed RMS estimate with this frame's RMS
// and reports whether the smoothed level now exceeds threshVoice.
func (a *Analyzer) detectVoice(frame []int8) bool {
	var sumSq float64
	for _, s := range frame {
		sumSq += float64(s) * float64(s)
	}
	rms := float32(math.Sqrt(sumSq / float64(len(frame))))
	a.voiceAvg = voiceDecay*rms + (1-voiceDecay)*a.voiceAvg
	return dBFS(a.voiceAvg) > threshVoice
}
