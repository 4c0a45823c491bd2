// Package emitter implements the Symbol Emitter: a single-threaded
// debouncer/timer that converts the Frame Analyzer's per-frame
// classifications into a clean, record-separated symbol stream.
package emitter

import (
	"strings"

	"github.com/taintline/nanptap/internal/tone"
)

// Timing parameters, in milliseconds, per spec.
const (
	MinDigitOnTime    = 40.0
	MaxDigitInterrupt = 10.0
	MaxInterdigitTime = 10000.0
	MinVoiceOnTime    = 1000.0
)

// Separator is the record-separator symbol inserted between
// independent dialing episodes and used to terminate the stream.
const Separator = '.'

// initialBufferSize is the starting capacity for the symbol buffer
// (Design Note: "sizing policy is amortized growth, starting at ~100").
const initialBufferSize = 100

// Emitter consumes frame Classifications in input order and produces
// an append-only SymbolBuffer over {0-9,*,#,A-D,.}. Time advances by
// frameMs per Process call; it is derived from the Frame Analyzer's
// frame size, not wall clock.
type Emitter struct {
	frameMs float64
	state   state
	buf     strings.Builder
	lastOut byte // last symbol actually written to buf, 0 if none yet
}

// state is the EmitterState of spec.md §3: the fields live across
// frames; reset clears all of them, resetTimers only the three timers.
type state struct {
	onChar      byte // 0 means "no digit currently on"
	onTimeMs    float64
	offTimeMs   float64
	voiceTimeMs float64
	emitted     bool
}

// New constructs an Emitter whose clock advances by frameMs per
// Process call.
func New(frameMs float64) *Emitter {
	e := &Emitter{frameMs: frameMs}
	e.buf.Grow(initialBufferSize)
	return e
}

// Process advances the state machine by one frame's classification.
func (e *Emitter) Process(c tone.Classification) {
	switch c.Kind {
	case tone.ClassTone:
		e.onTone(c.Symbol)
	default:
		e.onOff(c.Kind == tone.ClassVoice)
	}
}

// Finish performs the end-of-stream reset and terminating separator
// emission, simplifying the NANP Validator's grammar (every segment,
// including the last, ends at a '.'). If the stream already ends in a
// separator (an interdigit timeout or voice break fired right before
// end-of-stream), emit suppresses the redundant one.
func (e *Emitter) Finish() {
	e.reset()
	e.emit(Separator)
}

// Symbols returns the finalized symbol stream accumulated so far.
func (e *Emitter) Symbols() string {
	return e.buf.String()
}

func (e *Emitter) onTone(c byte) {
	s := &e.state

	if s.onTimeMs == 0 {
		e.resetTimers()
	}

	if c != s.onChar && s.onChar != 0 {
		e.emit(s.onChar)
		e.reset()
	}

	s.onChar = c
	s.onTimeMs += e.frameMs

	if s.onTimeMs > MinDigitOnTime {
		e.emit(s.onChar)
	}
}

// onOff resets after every separator it emits: a '.' ends the current
// episode, and the next episode (the first digit of the next call)
// needs its own idempotency gate, not the one the separator just
// consumed. emit itself guards against writing a second '.' back to
// back, so a reset here re-arming the gate does not reopen the door to
// a duplicate separator the way it would without that guard.
func (e *Emitter) onOff(isVoice bool) {
	s := &e.state

	if isVoice {
		s.voiceTimeMs += e.frameMs
		if s.voiceTimeMs > MinVoiceOnTime {
			e.emit(Separator)
			e.reset()
		}
	}

	s.offTimeMs += e.frameMs

	if s.onChar != 0 && s.offTimeMs > MaxDigitInterrupt {
		e.emit(s.onChar)
		e.reset()
	}

	if s.offTimeMs > MaxInterdigitTime {
		e.emit(Separator)
		e.reset()
	}
}

// emit is idempotent within one detection episode: the first call
// after a reset appends x and latches emitted; every call after that,
// until the next reset, is a no-op. This is what keeps a
// threshold-triggered detector, which keeps firing on every subsequent
// frame once the threshold is crossed, from contributing more than one
// symbol per episode.
//
// A separator additionally never follows another separator: reset
// re-arms the idempotency gate for the episode that follows a '.', so
// without this check a second trigger (end-of-stream after an
// interdigit timeout, or back-to-back voice breaks) would latch a
// fresh '.' onto one already written. Only the buffer's actual last
// byte is authoritative here, not any timer-derived state.
func (e *Emitter) emit(x byte) {
	if e.state.emitted {
		return
	}
	if x == Separator && e.lastOut == Separator {
		e.state.emitted = true
		return
	}
	e.buf.WriteByte(x)
	e.lastOut = x
	e.state.emitted = true
}

func (e *Emitter) reset() {
	e.state = state{}
}

func (e *Emitter) resetTimers() {
	e.state.onTimeMs = 0
	e.state.offTimeMs = 0
	e.state.voiceTimeMs = 0
}
