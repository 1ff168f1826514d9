package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytecodealliance/wasmtime-go"
	"github.com/stretchr/testify/require"
)

const helloWat = `(module
  (import "glk" "put_char" (func $put_char (param i32)))
  (func (export "glulx_main")
    i32.const 72
    call $put_char))`

func writeWasm(t *testing.T, wat string) string {
	t.Helper()
	bin, err := wasmtime.Wat2Wasm(wat)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "hello.wasm")
	require.NoError(t, os.WriteFile(path, bin, 0o600))
	return path
}

func TestMain_Help(t *testing.T) {
	exitCode, _, stdErr := runMain(t, nil, []string{"-h"})
	require.Equal(t, 0, exitCode)
	require.Contains(t, stdErr, "Usage:\n  wasm2glulx [options]")
	require.Contains(t, stdErr, "-glk-area-size")
}

func TestMain_Version(t *testing.T) {
	exitCode, stdOut, _ := runMain(t, nil, []string{"-version"})
	require.Equal(t, 0, exitCode)
	require.NotEmpty(t, strings.TrimSpace(stdOut))
}

func TestMain_TooManyArgs(t *testing.T) {
	exitCode, _, stdErr := runMain(t, nil, []string{"a.wasm", "b.wasm"})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stdErr, "too many arguments")
}

func TestMain_FlagOutOfRange(t *testing.T) {
	tests := []string{"--stack-size", "--glk-area-size", "--table-growth-limit"}

	for _, tt := range tests {
		name := tt
		t.Run(name, func(t *testing.T) {
			wasmPath := writeWasm(t, helloWat)
			exitCode, _, stdErr := runMain(t, nil, []string{name, "5000000000", wasmPath})
			require.Equal(t, 1, exitCode)
			require.Contains(t, stdErr, `invalid value "5000000000" for flag `+strings.TrimPrefix(name, "-"))
		})
	}
}

func TestMain_FlagHex(t *testing.T) {
	wasmPath := writeWasm(t, helloWat)
	outPath := filepath.Join(t.TempDir(), "story.ulx")

	exitCode, _, stdErr := runMain(t, nil, []string{"-o", outPath, "--stack-size", "0x4000", wasmPath})
	require.Equal(t, 0, exitCode, stdErr)

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, uint32(0x4000), binary.BigEndian.Uint32(out[20:]))
}

func TestMain_DefaultOutput(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "story file", expected: "hello.ulx"},
		{name: "listing", args: []string{"--text"}, expected: "hello.glulxasm"},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			wasmPath := writeWasm(t, helloWat)
			exitCode, _, stdErr := runMain(t, nil, append(tc.args, wasmPath))
			require.Equal(t, 0, exitCode, stdErr)

			out, err := os.ReadFile(filepath.Join(filepath.Dir(wasmPath), tc.expected))
			require.NoError(t, err)
			require.NotEmpty(t, out)
		})
	}
}

func TestMain_Output(t *testing.T) {
	wasmPath := writeWasm(t, helloWat)
	outPath := filepath.Join(t.TempDir(), "story.ulx")

	exitCode, _, stdErr := runMain(t, nil, []string{"-o", outPath, "--stack-size", "8192", wasmPath})
	require.Equal(t, 0, exitCode, stdErr)

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "Glul", string(out[:4]))
	require.Equal(t, uint32(8192), binary.BigEndian.Uint32(out[20:]))
}

func TestMain_Stdin(t *testing.T) {
	bin, err := wasmtime.Wat2Wasm(helloWat)
	require.NoError(t, err)

	for _, arg := range []string{"", "-"} {
		var args []string
		if arg != "" {
			args = []string{arg}
		}
		exitCode, stdOut, stdErr := runMain(t, bytes.NewReader(bin), args)
		require.Equal(t, 0, exitCode, stdErr)
		require.True(t, strings.HasPrefix(stdOut, "Glul"))
	}
}

func TestMain_Config(t *testing.T) {
	wasmPath := writeWasm(t, helloWat)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "wasm2glulx.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("stack_size = 4096\n"), 0o600))

	tests := []struct {
		name          string
		args          []string
		expectedStack uint32
	}{
		{name: "from config", expectedStack: 4096},
		{name: "flag wins", args: []string{"--stack-size", "16384"}, expectedStack: 16384},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			outPath := filepath.Join(t.TempDir(), "out.ulx")
			args := append([]string{"--config", configPath, "-o", outPath}, tc.args...)
			exitCode, _, stdErr := runMain(t, nil, append(args, wasmPath))
			require.Equal(t, 0, exitCode, stdErr)

			out, err := os.ReadFile(outPath)
			require.NoError(t, err)
			require.Equal(t, tc.expectedStack, binary.BigEndian.Uint32(out[20:]))
		})
	}
}

func TestMain_BadConfig(t *testing.T) {
	wasmPath := writeWasm(t, helloWat)
	configPath := filepath.Join(t.TempDir(), "wasm2glulx.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("stak_size = 4096\n"), 0o600))

	exitCode, _, stdErr := runMain(t, nil, []string{"--config", configPath, wasmPath})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stdErr, "failed to parse config file")
}

func TestMain_CompileErrors(t *testing.T) {
	wasmPath := writeWasm(t, `(module
  (import "env" "foo" (func))
  (import "glk" "bogus" (func)))`)

	exitCode, _, stdErr := runMain(t, nil, []string{wasmPath})
	require.Equal(t, 1, exitCode)
	require.Equal(t, `wasm2glulx: 3 error(s) encountered
* Unrecognized function import: env/foo (Did you mean to specify a module name to override the default "env"?)
* Unrecognized function import: glk/bogus
* Module contains no entrypoint. Provide a start function or export a function named glulx_main.
`, stdErr)
}

func TestMain_MissingInput(t *testing.T) {
	exitCode, _, stdErr := runMain(t, nil, []string{filepath.Join(t.TempDir(), "missing.wasm")})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stdErr, "wasm2glulx: 1 error(s) encountered\n* While reading input: ")
}

func runMain(t *testing.T, stdIn *bytes.Reader, args []string) (int, string, string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() {
		os.Args = oldArgs
	})
	os.Args = append([]string{"wasm2glulx"}, args...)
	if stdIn == nil {
		stdIn = bytes.NewReader(nil)
	}

	var exitCode int
	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}
	var exited bool
	func() {
		defer func() {
			if r := recover(); r != nil {
				exited = true
			}
		}()
		flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
		doMain(stdIn, stdOut, stdErr, func(code int) {
			exitCode = code
			panic(code)
		})
	}()

	require.True(t, exited)

	return exitCode, stdOut.String(), stdErr.String()
}
