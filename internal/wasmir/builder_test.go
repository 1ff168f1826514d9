package wasmir

import (
	"testing"

	"github.com/bytecodealliance/wasmtime-go"
	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/wasm2glulx/internal/wasm"
	"github.com/tetratelabs/wasm2glulx/internal/wasm/binary"
)

func buildWat(t *testing.T, wat string, funcIndex wasm.Index) *Function {
	bin, err := wasmtime.Wat2Wasm(wat)
	require.NoError(t, err)
	m, err := binary.DecodeModule(bin)
	require.NoError(t, err)
	fn, err := Build(m, funcIndex)
	require.NoError(t, err)
	return fn
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		wat      string
		expected string
	}{
		{
			name: "straight line",
			wat: `(module (func (param i32 i64) (result i64)
  local.get 1
  local.get 0
  i64.extend_i32_u
  i64.add))`,
			expected: `local.get 1 [] -> [i64]
local.get 0 [] -> [i32]
i64.extend_i32_u [i32] -> [i64]
i64.add [i64 i64] -> [i64]
`,
		},
		{
			name: "nop and fence are dropped",
			wat: `(module (memory 1 1 shared) (func
  nop
  atomic.fence
  i32.const 0
  i32.const 7
  i32.atomic.store
  nop))`,
			expected: `i32.const 0 [] -> [i32]
i32.const 7 [] -> [i32]
i32.store [i32 i32] -> []
`,
		},
		{
			name: "dead code after br",
			wat: `(module (func (result i32)
  (block (result i32)
    i32.const 1
    br 0
    i32.const 2
    drop
    (block (br 0) (i32.const 3) drop)
    i64.const 4
    drop)))`,
			expected: `block [] -> [i32]
  i32.const 1 [] -> [i32]
  br [i32] -> []
end
`,
		},
		{
			name: "if else with dead then tail",
			wat: `(module (func (param i32) (result f32)
  local.get 0
  (if (result f32)
    (then (return (f32.const 1)) (f32.const 9))
    (else (f32.const 2)))))`,
			expected: `local.get 0 [] -> [i32]
if [i32] -> [f32]
  f32.const [] -> [f32]
  return [f32] -> []
else
  f32.const [] -> [f32]
end
`,
		},
		{
			name: "select and drop take their operand types",
			wat: `(module (func (param f64 f64 i32) (result f64)
  local.get 0
  local.get 1
  local.get 2
  select
  f64.const 0
  drop))`,
			expected: `local.get 0 [] -> [f64]
local.get 1 [] -> [f64]
local.get 2 [] -> [i32]
select [f64 f64 i32] -> [f64]
f64.const [] -> [f64]
drop [f64] -> []
`,
		},
		{
			name: "loop with parameters",
			wat: `(module
  (type $t (func (param i32) (result i32)))
  (func (result i32) (local i32)
    i32.const 10
    (loop (type $t) (param i32) (result i32)
      i32.const 1
      i32.sub
      local.tee 0
      local.get 0
      br_if 0)))
  `,
			expected: `i32.const 10 [] -> [i32]
loop [i32] -> [i32]
  i32.const 1 [] -> [i32]
  i32.sub [i32 i32] -> [i32]
  local.tee 0 [i32] -> [i32]
  local.get 0 [] -> [i32]
  br_if [i32 i32] -> [i32]
end
`,
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			fn := buildWat(t, tc.wat, 0)
			require.Equal(t, tc.expected, Format(fn.Body))
		})
	}
}

func TestBuild_branchTargets(t *testing.T) {
	fn := buildWat(t, `(module (func (param i32)
  (block $outer
    (block $inner
      local.get 0
      br_table $inner $outer 1)
    nop)
  local.get 0
  br_if 0))`, 0)

	require.True(t, fn.HasBranchToEntry())
	outer := fn.Body.Body[0]
	require.Equal(t, wasm.OpcodeBlock, outer.Op)
	require.True(t, outer.Block.Targeted)
	inner := outer.Block.Body[0]
	require.True(t, inner.Block.Targeted)

	brTable := inner.Block.Body[1]
	require.Equal(t, wasm.OpcodeBrTable, brTable.Op)
	require.Equal(t, []*Block{inner.Block, outer.Block}, brTable.Targets)
	require.Equal(t, outer.Block, brTable.Default)
	require.Equal(t, []wasm.ValueType{wasm.ValueTypeI32}, brTable.In)

	brIf := fn.Body.Body[2]
	require.Equal(t, wasm.OpcodeBrIf, brIf.Op)
	require.Equal(t, fn.Body, brIf.Target)
}

func TestBuild_returnIsNotABranchToEntry(t *testing.T) {
	fn := buildWat(t, `(module (func (result i32) (return (i32.const 1))))`, 0)
	require.False(t, fn.HasBranchToEntry())
	ret := fn.Body.Body[1]
	require.Equal(t, wasm.OpcodeReturn, ret.Op)
	require.Equal(t, fn.Body, ret.Target)
}

func TestBuild_immediates(t *testing.T) {
	fn := buildWat(t, `(module
  (memory 1)
  (table 1 funcref)
  (global $g (mut i64) (i64.const 0))
  (type $v (func))
  (func
    i32.const 4
    i64.load offset=12 align=4
    global.set $g
    i32.const 0
    call_indirect (type 0)
    f64.const -1.5
    drop
    ref.null extern
    drop))`, 0)

	body := fn.Body.Body
	load := body[1]
	require.Equal(t, wasm.OpcodeI64Load, load.Op)
	require.Equal(t, uint32(12), load.Offset)
	require.Equal(t, uint32(2), load.Align)

	require.Equal(t, []wasm.ValueType{wasm.ValueTypeI64}, body[2].In)

	callIndirect := body[4]
	require.Equal(t, wasm.OpcodeCallIndirect, callIndirect.Op)
	require.Equal(t, uint32(0), callIndirect.Index)
	require.Equal(t, uint32(0), callIndirect.Index2)
	require.Equal(t, []wasm.ValueType{wasm.ValueTypeI32}, callIndirect.In)

	require.Equal(t, uint64(0xbff8000000000000), body[5].Value)
	require.Equal(t, wasm.RefTypeExternref, body[7].RefType)
	require.Equal(t, []wasm.ValueType{wasm.ValueTypeExternref}, body[8].In)
}

func TestBuild_vectorIsUnsupported(t *testing.T) {
	bin, err := wasmtime.Wat2Wasm(`(module (func (result i32)
  v128.const i32x4 1 2 3 4
  i32x4.extract_lane 0))`)
	require.NoError(t, err)
	m, err := binary.DecodeModule(bin)
	require.NoError(t, err)

	_, err = Build(m, 0)
	require.Equal(t, &UnsupportedError{Op: wasm.OpcodeVec(0x0c)}, err)
	require.EqualError(t, err, "unsupported instruction: v128.const")
}

func TestBuild_deadVectorCodeIsSkipped(t *testing.T) {
	fn := buildWat(t, `(module (func
  unreachable
  v128.const i32x4 1 2 3 4
  i8x16.shuffle 0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15
  drop))`, 0)
	require.Equal(t, "unreachable\n", Format(fn.Body))
}

func TestBuild_importedFunction(t *testing.T) {
	bin, err := wasmtime.Wat2Wasm(`(module (import "glk" "glk_exit" (func)) (func))`)
	require.NoError(t, err)
	m, err := binary.DecodeModule(bin)
	require.NoError(t, err)

	_, err = Build(m, 0)
	require.EqualError(t, err, "function[0] is not defined in this module")

	fn, err := Build(m, 1)
	require.NoError(t, err)
	require.Equal(t, wasm.Index(1), fn.Index)
}
