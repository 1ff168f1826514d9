package compiler

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/bytecodealliance/wasmtime-go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
)

func wat2wasm(t *testing.T, wat string) []byte {
	t.Helper()
	bin, err := wasmtime.Wat2Wasm(wat)
	require.NoError(t, err)
	return bin
}

func errorStrings(err error) []string {
	return lo.Map(Errors(err), func(e error, _ int) string { return e.Error() })
}

// kitchenSinkWat touches every part of the compiler at least once.
const kitchenSinkWat = `(module
  (import "glk" "put_char" (func $put_char (param i32)))
  (import "glk" "put_buffer" (func $put_buffer (param i32 i32)))
  (import "glk" "select" (func $select (param i32)))
  (import "glk" "stream_open_memory" (func $open_memory (param i32 i32 i32 i32) (result i32)))
  (import "glulx" "random" (func $random (param i32) (result i32)))
  (import "glulx" "pow" (func $pow (param f64 f64) (result f64)))
  (import "glulx" "glkarea_put_bytes" (func $glkarea_put_bytes (param i32 i32 i32)))
  (memory 1 2)
  (table $t 4 8 funcref)
  (global $counter (mut i32) (i32.const 0))
  (global $big i64 (i64.const 0x123456789))
  (global $pi f64 (f64.const 3.14159))
  (global $self (mut funcref) (ref.func $square))
  (elem (table $t) (i32.const 0) func $square $cube)
  (elem $passive func $square)
  (data (i32.const 16) "Hello, world!\n")
  (data $later "later")
  (type $unary (func (param i32) (result i32)))

  (func $square (param i32) (result i32)
    local.get 0
    local.get 0
    i32.mul)

  (func $cube (param i32) (result i32)
    local.get 0
    local.get 0
    call $square
    i32.mul)

  (func $wide (param i64 i64) (result i64)
    local.get 0
    local.get 1
    i64.mul
    local.get 1
    i64.div_u
    global.get $big
    i64.rotl)

  (func $floats (param f32 f64) (result f64)
    local.get 0
    f64.promote_f32
    local.get 1
    f64.add
    global.get $pi
    call $pow
    f64.sqrt)

  (func $loop (param i32) (result i32) (local i32)
    block $done
      loop $again
        local.get 0
        i32.eqz
        br_if $done
        local.get 1
        local.get 0
        i32.add
        local.set 1
        local.get 0
        i32.const 1
        i32.sub
        local.set 0
        br $again
      end
    end
    local.get 1)

  (func $switch (param i32) (result i32)
    block $c
      block $b
        block $a
          local.get 0
          br_table $a $b $c
        end
        i32.const 10
        return
      end
      i32.const 20
      return
    end
    i32.const 30)

  (func $memory
    i32.const 0
    i32.const 0x41
    i32.store8
    i32.const 4
    i64.const -1
    i64.store
    i32.const 32
    i32.const 0
    i32.const 5
    memory.init $later
    data.drop $later
    i32.const 64
    i32.const 16
    i32.const 14
    memory.copy
    i32.const 100
    i32.const 0
    i32.const 10
    memory.fill
    i32.const 1
    memory.grow
    drop
    i32.const 8
    i32.const 1
    i32.atomic.rmw.add
    drop
    i32.const 8
    i64.const 1
    i64.const 2
    i64.atomic.rmw.cmpxchg
    drop)

  (func $tables (result i32)
    i32.const 2
    i32.const 0
    i32.const 1
    table.init $t $passive
    elem.drop $passive
    ref.null func
    i32.const 1
    table.grow $t
    drop
    i32.const 3
    global.get $self
    table.set $t
    i32.const 7
    i32.const 1
    call_indirect $t (type $unary))

  (func (export "glulx_main")
    (local $stream i32)
    global.get $counter
    i32.const 1
    i32.add
    global.set $counter
    i32.const 16
    i32.const 14
    call $put_buffer
    i32.const 0
    i32.const 16
    i32.const 8
    call $glkarea_put_bytes
    i32.const 0
    i32.const 8
    i32.const 1
    i32.const 0
    call $open_memory
    local.set $stream
    i32.const 200
    call $select
    i32.const 10
    call $random
    call $loop
    call $switch
    call $cube
    call $put_char
    i64.const 3
    i64.const 4
    call $wide
    drop
    f32.const 1.5
    f64.const 2.5
    call $floats
    drop
    call $memory
    call $tables
    drop))`

func TestCompile_header(t *testing.T) {
	bin := wat2wasm(t, kitchenSinkWat)
	out, err := Compile(bin, NewConfig().WithStackSize(0x2000))
	require.NoError(t, err)

	word := func(offset int) uint32 {
		return binary.BigEndian.Uint32(out[offset:])
	}
	require.Equal(t, glulx.Magic, word(0x00))
	require.Equal(t, glulx.Version, word(0x04))
	ramStart, extStart, endMem := word(0x08), word(0x0c), word(0x10)
	require.Zero(t, ramStart%256)
	require.Zero(t, extStart%256)
	require.Zero(t, endMem%256)
	require.True(t, ramStart <= extStart && extStart <= endMem)
	require.Equal(t, uint32(len(out)), extStart)
	// One page of memory lives in the zeroed tail.
	require.GreaterOrEqual(t, endMem-extStart, uint32(65536))
	require.Equal(t, uint32(0x2000), word(0x14))

	// The hello string is stored verbatim as a data segment.
	require.True(t, bytes.Contains(out, []byte("Hello, world!\n")))
}

func TestCompile_deterministic(t *testing.T) {
	bin := wat2wasm(t, kitchenSinkWat)
	first, err := Compile(bin, nil)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := Compile(bin, nil)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestCompile_text(t *testing.T) {
	bin := wat2wasm(t, kitchenSinkWat)
	out, err := Compile(bin, NewConfig().WithText(true))
	require.NoError(t, err)

	listing := string(out)
	require.True(t, strings.HasPrefix(listing, ".stack_size 1048576\n.start_func ("))
	require.Contains(t, listing, "\n.ram_items\n")
	require.Contains(t, listing, "\n.zero_items\n")
}

func TestCompile_glkAreaSize(t *testing.T) {
	bin := wat2wasm(t, `(module (func (export "glulx_main")))`)
	endMem := func(cfg *Config) uint32 {
		out, err := Compile(bin, cfg)
		require.NoError(t, err)
		return binary.BigEndian.Uint32(out[0x10:])
	}
	small := endMem(NewConfig().WithGlkAreaSize(256))
	large := endMem(NewConfig().WithGlkAreaSize(256 + 4096))
	require.Equal(t, uint32(4096), large-small)
}

func lowerWat(t *testing.T, wat string) *compilation {
	t.Helper()
	c, err := lower(wat2wasm(t, wat), NewConfig())
	require.NoError(t, err)
	return c
}

// indexOfMark returns the position in c.rom where l is placed, or -1.
func indexOfMark(c *compilation, l glulx.Label) int {
	mark := glulx.Mark(l)
	for i, it := range c.rom {
		if it == mark {
			return i
		}
	}
	return -1
}

func TestCompile_identicalTypesShareTypenum(t *testing.T) {
	c := lowerWat(t, `(module
  (import "glk" "put_char" (func $put_char (param i32)))
  (type $a (func (result i32)))
  (type $b (func (result i32)))
  (table 1 funcref)
  (elem (i32.const 0) $f)
  (func $f (type $a)
    i32.const 65)
  (func (export "glulx_main")
    i32.const 0
    call_indirect (type $b)
    call $put_char))`)

	require.Equal(t, c.layout.types[0].typenum, c.layout.types[1].typenum)

	f := c.layout.funcs[1]
	mark := indexOfMark(c, f.addr)
	require.Greater(t, mark, 0)
	require.Equal(t, glulx.Word(f.typenum), c.rom[mark-1])

	// The type check of the call_indirect compares against the same number.
	var checked []glulx.Operand
	for _, it := range c.rom {
		in, ok := it.(glulx.Instr)
		if ok && in.Op == glulx.OpJne && in.Operands[2] == glulx.Branch(c.rt.trapIndirectCallTypeMismatch) {
			checked = append(checked, in.Operands[1])
		}
	}
	require.Equal(t, []glulx.Operand{glulx.Uimm(f.typenum)}, checked)
}

func TestCompile_traps(t *testing.T) {
	tests := []struct {
		code     TrapCode
		expected string
	}{
		{code: TrapUnreachable, expected: "unreachable"},
		{code: TrapIntegerOverflow, expected: "integer overflow"},
		{code: TrapIntegerDivideByZero, expected: "integer divide by zero"},
		{code: TrapInvalidConversionToInteger, expected: "invalid conversion to integer"},
		{code: TrapOutOfBoundsMemoryAccess, expected: "out of bounds memory access"},
		{code: TrapIndirectCallTypeMismatch, expected: "indirect call type mismatch"},
		{code: TrapOutOfBoundsTableAccess, expected: "out of bounds table access"},
		{code: TrapUndefinedElement, expected: "undefined element"},
		{code: TrapUninitializedElement, expected: "uninitialized element"},
		{code: TrapCallStackExhausted, expected: "call stack exhausted"},
	}
	require.Len(t, tests, int(trapCodeCount))

	c := lowerWat(t, `(module (func (export "glulx_main") unreachable))`)

	// The trap routine raises its argument as the debugtrap code.
	handler := indexOfMark(c, c.rt.trap)
	require.GreaterOrEqual(t, handler, 0)
	require.Contains(t, c.rom[handler:], glulx.Item(glulx.Debugtrap(glulx.Local(0))))

	// The string table is followed by the strings in trap code order.
	table := indexOfMark(c, c.layout.trapTable)
	require.GreaterOrEqual(t, table, 0)
	strs := table + 1 + int(trapCodeCount)

	for i, tt := range tests {
		tc := tt
		t.Run(tc.expected, func(t *testing.T) {
			require.Equal(t, TrapCode(i), tc.code)
			require.Equal(t, tc.expected, tc.code.String())

			entry := indexOfMark(c, c.rt.traps[tc.code])
			require.GreaterOrEqual(t, entry, 0)
			require.Equal(t,
				glulx.Item(glulx.Callfi(glulx.ImmLabel(c.rt.trap), glulx.Uimm(uint32(tc.code)), glulx.Discard())),
				c.rom[entry+1])

			require.True(t, strings.HasPrefix(glulx.Listing(c.rom[table+1+i]), ".labelref ("))
			require.Equal(t, glulx.Item(glulx.Str(glulx.Latin1("Fatal error: "+tc.expected))), c.rom[strs+2*i+1])
		})
	}
}

func TestCompile_entrypoints(t *testing.T) {
	tests := []struct {
		name string
		wat  string
	}{
		{
			name: "main only",
			wat:  `(module (func (export "glulx_main")))`,
		},
		{
			name: "start only",
			wat:  `(module (func $s) (start $s))`,
		},
		{
			name: "start and main",
			wat:  `(module (func $s) (start $s) (func (export "glulx_main")))`,
		},
		{
			name: "start is main",
			wat:  `(module (func $s (export "glulx_main")) (start $s))`,
		},
		{
			name: "interrupt handler",
			wat:  `(module (func (export "glulx_main")) (func (export "glulx_interrupt_handler")))`,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(wat2wasm(t, tc.wat), nil)
			require.NoError(t, err)
		})
	}
}

func TestCompile_errors(t *testing.T) {
	tests := []struct {
		name     string
		wat      string
		expected []string
	}{
		{
			name: "unrecognized env import",
			wat:  `(module (import "env" "foo" (func)) (func (export "glulx_main")))`,
			expected: []string{
				`Unrecognized function import: env/foo (Did you mean to specify a module name to override the default "env"?)`,
			},
		},
		{
			name: "unrecognized module",
			wat:  `(module (import "wasi_snapshot_preview1" "fd_write" (func (param i32 i32 i32 i32) (result i32))) (func (export "glulx_main")))`,
			expected: []string{
				"Unrecognized function import: wasi_snapshot_preview1/fd_write",
			},
		},
		{
			name: "unrecognized glk function",
			wat:  `(module (import "glk" "frobnicate" (func)) (func (export "glulx_main")))`,
			expected: []string{
				"Unrecognized function import: glk/frobnicate",
			},
		},
		{
			name: "memory import",
			wat:  `(module (import "env" "memory" (memory 1)) (func (export "glulx_main")))`,
			expected: []string{
				`Unrecognized memory import: env/memory (Did you mean to specify a module name to override the default "env"?)`,
			},
		},
		{
			name: "incorrectly typed glk import",
			wat:  `(module (import "glk" "put_char" (func (param i64))) (func (export "glulx_main")))`,
			expected: []string{
				"Incorrectly-typed import of glk/put_char.\n    Expected: (i32) -> ()\n    Actual:   (i64) -> ()",
			},
		},
		{
			name: "incorrectly typed glulx import",
			wat:  `(module (import "glulx" "powf" (func (param f64 f64) (result f64))) (func (export "glulx_main")))`,
			expected: []string{
				"Incorrectly-typed import of glulx/powf.\n    Expected: (f32, f32) -> (f32)\n    Actual:   (f64, f64) -> (f64)",
			},
		},
		{
			name: "no entrypoint",
			wat:  `(module (func (export "main")))`,
			expected: []string{
				"Module contains no entrypoint. Provide a start function or export a function named glulx_main.",
			},
		},
		{
			name: "incorrectly typed main",
			wat:  `(module (func (export "glulx_main") (param i32)))`,
			expected: []string{
				"Incorrectly-typed export of glulx_main.\n    Expected: () -> ()\n    Actual:   (i32) -> ()",
			},
		},
		{
			name: "incorrectly typed interrupt handler",
			wat:  `(module (func (export "glulx_main")) (func (export "glulx_interrupt_handler") (result i32) i32.const 0))`,
			expected: []string{
				"Incorrectly-typed export of glulx_interrupt_handler.\n    Expected: () -> ()\n    Actual:   () -> (i32)",
			},
		},
		{
			name: "multiple memories",
			wat:  `(module (memory 1) (memory 1) (func (export "glulx_main")))`,
			expected: []string{
				"Modules that define multiple memories are not supported",
			},
		},
		{
			name: "vector instruction",
			wat: `(module (func $vectors (export "glulx_main")
  v128.const i32x4 0 0 0 0
  drop))`,
			expected: []string{
				`Encountered an unsupported instruction in function vectors: "v128.const"`,
			},
		},
		{
			name: "atomic wait",
			wat: `(module (memory 1 1 shared) (func $waiter (export "glulx_main")
  i32.const 0
  i32.const 0
  i64.const -1
  memory.atomic.wait32
  drop))`,
			expected: []string{
				`Encountered an unsupported instruction in function waiter: "memory.atomic.wait32"`,
			},
		},
		{
			name: "memory too large",
			wat:  `(module (memory 65536) (func (export "glulx_main")))`,
			expected: []string{
				"The program memory overflows Glulx's 4GiB address space",
			},
		},
		{
			name: "reports everything",
			wat: `(module
  (import "env" "a" (func))
  (import "glk" "select" (func (param i64)))
  (func (export "glulx_main") (param i32)))`,
			expected: []string{
				`Unrecognized function import: env/a (Did you mean to specify a module name to override the default "env"?)`,
				"Incorrectly-typed import of glk/select.\n    Expected: (i32) -> ()\n    Actual:   (i64) -> ()",
				"Incorrectly-typed export of glulx_main.\n    Expected: () -> ()\n    Actual:   (i32) -> ()",
			},
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(wat2wasm(t, tc.wat), nil)
			require.Error(t, err)
			require.Equal(t, tc.expected, errorStrings(err))
		})
	}
}

func TestCompile_validation(t *testing.T) {
	tests := []struct {
		name string
		bin  []byte
	}{
		{name: "not wasm", bin: []byte("not a module")},
		{name: "type mismatch", bin: wat2wasm(t, `(module (func (export "glulx_main") (result i32) i64.const 1))`)},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.bin, nil)
			require.Error(t, err)
			kind, ok := KindOf(err)
			require.True(t, ok)
			require.Equal(t, KindValidation, kind)
			require.True(t, strings.HasPrefix(err.Error(), "Module validation error: "), err.Error())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errFailingWriter }

var errFailingWriter = errors.New("disk full")

func TestCompileStream(t *testing.T) {
	bin := wat2wasm(t, `(module (func (export "glulx_main")))`)

	var out bytes.Buffer
	require.NoError(t, CompileStream(bytes.NewReader(bin), &out, nil))
	require.Equal(t, "Glul", out.String()[:4])

	err := CompileStream(bytes.NewReader(bin), failingWriter{}, nil)
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindOutput, kind)
	require.Contains(t, err.Error(), "While writing output: writing story file: disk full")
}
