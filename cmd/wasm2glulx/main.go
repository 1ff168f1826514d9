package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/tetratelabs/wasm2glulx/internal/compiler"
	"github.com/tetratelabs/wasm2glulx/internal/config"
	"github.com/tetratelabs/wasm2glulx/internal/version"
)

func main() {
	doMain(os.Stdin, os.Stdout, os.Stderr, os.Exit)
}

// isTerminal is a variable so tests can pretend stdin and stdout are pipes.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// doMain is separated out for the purpose of unit testing.
func doMain(stdIn io.Reader, stdOut, stdErr io.Writer, exit func(code int)) {
	flag.CommandLine.SetOutput(stdErr)

	var help bool
	flag.BoolVar(&help, "h", false, "print usage")

	var output string
	flag.StringVar(&output, "o", "", "path to write the story file to")
	flag.StringVar(&output, "output", "", "path to write the story file to")

	glkAreaSize := uint32Flag(compiler.DefaultGlkAreaSize)
	flag.Var(&glkAreaSize, "glk-area-size", "size in bytes of the area holding buffers retained by Glk")
	stackSize := uint32Flag(compiler.DefaultStackSize)
	flag.Var(&stackSize, "stack-size", "size in bytes of the Glulx stack")
	tableGrowthLimit := uint32Flag(compiler.DefaultTableGrowthLimit)
	flag.Var(&tableGrowthLimit, "table-growth-limit",
		"maximum number of entries a table may grow by when it has no lower declared maximum")

	var text bool
	flag.BoolVar(&text, "text", false, "write an assembly listing instead of a story file")

	var configPath string
	flag.StringVar(&configPath, "config", "", "path to a TOML file of defaults for these flags")

	var verbose bool
	flag.BoolVar(&verbose, "v", false, "log compilation phases to stderr")

	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "print the version and exit")

	// flag.CommandLine exits by itself unless a test replaced it.
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		exit(1)
	}

	if help {
		printUsage(stdErr)
		exit(0)
	}
	if showVersion {
		fmt.Fprintln(stdOut, version.Version())
		exit(0)
	}
	if flag.NArg() > 1 {
		fmt.Fprintln(stdErr, "too many arguments")
		printUsage(stdErr)
		exit(1)
	}

	logger := newLogger(stdErr, verbose)
	defer logger.Sync() //nolint

	cfg := compiler.NewConfig().WithLogger(logger)
	if configPath != "" {
		f, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(stdErr, "wasm2glulx: %v\n", err)
			exit(1)
		}
		cfg = f.Apply(cfg)
	}
	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "glk-area-size":
			cfg = cfg.WithGlkAreaSize(uint32(glkAreaSize))
		case "stack-size":
			cfg = cfg.WithStackSize(uint32(stackSize))
		case "table-growth-limit":
			cfg = cfg.WithTableGrowthLimit(uint32(tableGrowthLimit))
		case "text":
			cfg = cfg.WithText(text)
		}
	})

	input := flag.Arg(0)
	fromStdin := input == "" || input == "-"
	if output == "" {
		if fromStdin {
			output = "-"
		} else {
			output = defaultOutput(input, cfg.Text())
		}
	}

	var bin []byte
	var err error
	if fromStdin {
		if f, ok := stdIn.(*os.File); ok && isTerminal(f) {
			fmt.Fprintln(stdErr, "wasm2glulx: refusing to read a module from a terminal")
			printUsage(stdErr)
			exit(1)
		}
		bin, err = io.ReadAll(stdIn)
	} else {
		bin, err = os.ReadFile(input)
	}
	if err != nil {
		reportErrors(stdErr, &compiler.CompileError{Kind: compiler.KindInput, Err: err})
		exit(1)
	}

	out, err := compiler.Compile(bin, cfg)
	if err != nil {
		reportErrors(stdErr, err)
		exit(1)
	}

	if output == "-" {
		if f, ok := stdOut.(*os.File); ok && !cfg.Text() && isTerminal(f) {
			fmt.Fprintln(stdErr, "wasm2glulx: refusing to write a story file to a terminal")
			exit(1)
		}
		_, err = stdOut.Write(out)
	} else {
		err = os.WriteFile(output, out, 0o644)
	}
	if err != nil {
		reportErrors(stdErr, &compiler.CompileError{Kind: compiler.KindOutput, Err: err})
		exit(1)
	}
	exit(0)
}

// defaultOutput names the output after the input, so foo.wasm becomes foo.ulx.
func defaultOutput(input string, text bool) string {
	ext := ".ulx"
	if text {
		ext = ".glulxasm"
	}
	return strings.TrimSuffix(input, ".wasm") + ext
}

func reportErrors(stdErr io.Writer, err error) {
	errs := compiler.Errors(err)
	fmt.Fprintf(stdErr, "wasm2glulx: %d error(s) encountered\n", len(errs))
	for _, e := range errs {
		fmt.Fprintf(stdErr, "* %v\n", e)
	}
}

// newLogger logs errors only, unless verbose asks for the compiler's debug
// messages too.
func newLogger(stdErr io.Writer, verbose bool) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	level := zapcore.ErrorLevel
	if verbose {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(stdErr), level)
	return zap.New(core)
}

func printUsage(stdErr io.Writer) {
	fmt.Fprintln(stdErr, "wasm2glulx: compile a WebAssembly module to a Glulx story file")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Usage:\n  wasm2glulx [options] [<path to wasm file>]")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "With no path, or a path of -, the module is read from stdin and the story file written to stdout.")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Options:")
	flag.PrintDefaults()
}

// uint32Flag rejects values that do not fit in 32 bits.
type uint32Flag uint32

func (f *uint32Flag) String() string {
	return strconv.FormatUint(uint64(*f), 10)
}

func (f *uint32Flag) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return err
	}
	*f = uint32Flag(v)
	return nil
}
