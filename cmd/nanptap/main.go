package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/taintline/nanptap/internal/audio"
	"github.com/taintline/nanptap/internal/cli"
	"github.com/taintline/nanptap/internal/emitter"
	"github.com/taintline/nanptap/internal/logging"
	"github.com/taintline/nanptap/internal/nanp"
	"github.com/taintline/nanptap/internal/synth"
	"github.com/taintline/nanptap/internal/tone"
)

// genOnMs and genGapMs are the digit-on and inter-digit-gap durations
// used by --gen. They sit comfortably above MinDigitOnTime and below
// MaxInterdigitTime so a generated dial string round-trips through the
// default pipeline without special-casing.
const (
	genOnMs  = 80
	genGapMs = 60
)

func main() {
	cliArgs := &cli.CLI{}
	kong.Parse(cliArgs,
		kong.Name("nanptap"),
		kong.Description("NANP DTMF extractor for taint-line routing data"),
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if cliArgs.Gen != "" {
		if err := runGen(cliArgs); err != nil {
			cli.PrintError(err.Error())
			os.Exit(1)
		}
		os.Exit(0)
	}

	log := logging.New(cliArgs.Verbose, cliArgs.Debug, cliArgs.LogToStderr)

	stream, closeStream, err := audio.Open(cliArgs.File)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	defer closeStream()

	symbols, err := extract(stream, log)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	fmt.Println(symbols)
	fmt.Println()
	for _, number := range nanp.Extract(symbols) {
		fmt.Println(number)
	}
}

// extract runs the three-stage pipeline — Frame Analyzer, Symbol
// Emitter, then the caller's nanp.Extract — over stream until it is
// exhausted and returns the finalized symbol stream. A stalled,
// non-EOF-terminated stream is logged and treated as end-of-stream
// rather than surfaced as an error; any other read error is returned,
// so only I/O and argument failures are reported to the user.
func extract(stream io.Reader, log *logging.Logger) (string, error) {
	reader := audio.NewReader(stream)
	analyzer := tone.NewAnalyzer()
	em := emitter.New(tone.FrameDurationMs)

	frames := 0
	for {
		frame, err := reader.ReadFrame()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if errors.Is(err, audio.ErrStalledRead) {
				log.Warn("input stalled, terminating stream", "frames", frames)
				break
			}
			return "", err
		}

		em.Process(analyzer.Classify(frame))
		frames++
		log.Debug("frame classified", "index", frames)
	}

	em.Finish()
	log.Info("extraction complete", "frames", frames)
	return em.Symbols(), nil
}

// runGen implements the --gen developer path: it writes a synthesized
// dial string for --gen's digits to --out (stdout by default) instead
// of running the extraction pipeline, so a known-good fixture can be
// piped straight back into nanptap for a round-trip check.
func runGen(cliArgs *cli.CLI) error {
	var w io.Writer = os.Stdout
	if cliArgs.Out != "" && cliArgs.Out != "-" {
		f, err := os.Create(cliArgs.Out)
		if err != nil {
			return fmt.Errorf("create output %q: %w", cliArgs.Out, err)
		}
		defer f.Close()
		bw := bufio.NewWriter(f)
		defer bw.Flush()
		w = bw
	}

	return synth.DialString(w, cliArgs.Gen, genOnMs, genGapMs, tone.SampleRate)
}
