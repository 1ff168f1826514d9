package compiler

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

func TestConstWords(t *testing.T) {
	f64 := make([]byte, 8)
	binary.LittleEndian.PutUint64(f64, 0x400921f9f01b866e)

	tests := []struct {
		name       string
		expr       *wasm.ConstantExpression
		expected   []uint32
		expectedFn wasm.Index
		isFunc     bool
	}{
		{
			name:     "i32",
			expr:     &wasm.ConstantExpression{Opcode: wasm.OpcodeI32Const, Data: []byte{0x7f}},
			expected: []uint32{0xffffffff},
		},
		{
			name:     "i64",
			expr:     &wasm.ConstantExpression{Opcode: wasm.OpcodeI64Const, Data: []byte{0x80, 0x80, 0x80, 0x80, 0x10}},
			expected: []uint32{1, 0},
		},
		{
			name:     "f32",
			expr:     &wasm.ConstantExpression{Opcode: wasm.OpcodeF32Const, Data: []byte{0x00, 0x00, 0x80, 0x3f}},
			expected: []uint32{0x3f800000},
		},
		{
			name:     "f64",
			expr:     &wasm.ConstantExpression{Opcode: wasm.OpcodeF64Const, Data: f64},
			expected: []uint32{0x400921f9, 0xf01b866e},
		},
		{
			name:     "ref.null",
			expr:     &wasm.ConstantExpression{Opcode: wasm.OpcodeRefNull, Data: []byte{wasm.ValueTypeFuncref}},
			expected: []uint32{0},
		},
		{
			name:       "ref.func",
			expr:       &wasm.ConstantExpression{Opcode: wasm.OpcodeRefFunc, Data: []byte{0x03}},
			expectedFn: 3,
			isFunc:     true,
		},
	}

	c := &compilation{}
	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			words, fn, ok := c.constWords(tc.expr)
			require.Equal(t, !tc.isFunc, ok)
			require.Equal(t, tc.expected, words)
			require.Equal(t, tc.expectedFn, fn)
		})
	}
}

func TestSegmentOffset(t *testing.T) {
	c := &compilation{}

	offset, ok := c.segmentOffset(&wasm.ConstantExpression{Opcode: wasm.OpcodeI32Const, Data: []byte{0x80, 0x01}})
	require.True(t, ok)
	require.Equal(t, uint32(128), offset)

	_, ok = c.segmentOffset(&wasm.ConstantExpression{Opcode: wasm.OpcodeGlobalGet, Data: []byte{0x00}})
	require.False(t, ok)
}

func TestWordBytes(t *testing.T) {
	require.Equal(t, []byte{0x12, 0x34, 0x56, 0x78, 0, 0, 0, 1}, wordBytes([]uint32{0x12345678, 1}))
	require.Empty(t, wordBytes(nil))
}

func TestCompile_data(t *testing.T) {
	tests := []struct {
		name string
		wat  string
	}{
		{
			name: "globals of every type",
			wat: `(module
  (global i32 (i32.const 7))
  (global (mut i64) (i64.const -2))
  (global f32 (f32.const 0))
  (global (mut f64) (f64.const 1))
  (global funcref (ref.func $main))
  (global (mut funcref) (ref.null func))
  (global externref (ref.null extern))
  (func $main (export "glulx_main")))`,
		},
		{
			name: "declarative elements",
			wat: `(module
  (table 1 funcref)
  (elem declare func $main)
  (func $main (export "glulx_main")
    i32.const 0
    ref.func $main
    table.set 0))`,
		},
		{
			name: "element expressions",
			wat: `(module
  (table 3 funcref)
  (elem (i32.const 0) funcref (ref.func $main) (ref.null func) (ref.func $main))
  (func $main (export "glulx_main")))`,
		},
		{
			name: "passive data",
			wat: `(module
  (memory 1)
  (data "passive")
  (data (i32.const 8) "active")
  (func (export "glulx_main")
    i32.const 0
    i32.const 0
    i32.const 7
    memory.init 0
    data.drop 0
    data.drop 1))`,
		},
		{
			name: "table without maximum",
			wat: `(module
  (table 2 funcref)
  (func (export "glulx_main")
    ref.null func
    i32.const 2000
    table.grow 0
    drop))`,
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
