package cli

// CLI is the nanptap command-line surface: a single positional input
// file (stdin when omitted) plus the verbosity/log-routing flags from
// spec.md §6, and a --gen dev flag backed by internal/synth.
type CLI struct {
	Verbose     bool   `short:"v" help:"Verbose diagnostics to the log stream."`
	Debug       bool   `short:"d" help:"Debug diagnostics to the log stream."`
	LogToStderr bool   `short:"2" name:"log-to-stderr" help:"Redirect the log stream to stderr so stdout carries only results."`
	Gen         string `help:"Write synthetic DTMF PCM for DIGITS to --out instead of extracting, then exit." placeholder:"DIGITS"`
	Out         string `help:"Output path for --gen." default:"-"`
	File        string `arg:"" optional:"" name:"file" help:"Input raw 8kHz signed 8-bit PCM file; reads stdin if omitted."`
}
