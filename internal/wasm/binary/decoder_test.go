package binary

import (
	"bytes"
	"testing"

	"github.com/bytecodealliance/wasmtime-go"
	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

func header(sections ...byte) []byte {
	b := append([]byte{}, Magic...)
	b = append(b, version...)
	return append(b, sections...)
}

func u32(v uint32) *uint32 { return &v }

func TestDecodeModule(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected *wasm.Module
	}{
		{
			name:     "empty",
			input:    header(),
			expected: &wasm.Module{},
		},
		{
			name: "type section",
			input: header(wasm.SectionIDType, 0x0a,
				0x02,
				0x60, 0x00, 0x00,
				0x60, 0x02, wasm.ValueTypeI32, wasm.ValueTypeI64, 0x01, wasm.ValueTypeF64),
			expected: &wasm.Module{TypeSection: []*wasm.FunctionType{
				{},
				{Params: []wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI64}, Results: []wasm.ValueType{wasm.ValueTypeF64}},
			}},
		},
		{
			name: "shared memory",
			input: header(wasm.SectionIDMemory, 0x04,
				0x01, 0x03, 0x01, 0x02),
			expected: &wasm.Module{MemorySection: []*wasm.MemoryType{{Min: 1, Max: u32(2), Shared: true}}},
		},
		{
			name: "data count before code",
			input: header(
				wasm.SectionIDDataCount, 0x01, 0x00,
				wasm.SectionIDData, 0x01, 0x00),
			expected: &wasm.Module{DataCountSection: u32(0), DataSection: []*wasm.DataSegment{}},
		},
		{
			name: "name section",
			input: header(wasm.SectionIDCustom, 0x10,
				0x04, 'n', 'a', 'm', 'e',
				subsectionIDFunctionNames, 0x09,
				0x02, 0x00, 0x01, 'a', 0x02, 0x03, 'f', 'o', 'o'),
			expected: &wasm.Module{NameSection: &wasm.NameSection{
				FunctionNames: map[wasm.Index]string{0: "a", 2: "foo"},
			}},
		},
		{
			name: "malformed name section is ignored",
			input: header(wasm.SectionIDCustom, 0x08,
				0x04, 'n', 'a', 'm', 'e',
				subsectionIDFunctionNames, 0x09, 0x02),
			expected: &wasm.Module{},
		},
		{
			name: "other custom sections are skipped",
			input: header(wasm.SectionIDCustom, 0x06,
				0x03, 'f', 'o', 'o', 0xff, 0xff),
			expected: &wasm.Module{},
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			m, e := DecodeModule(tc.input)
			require.NoError(t, e)
			require.Equal(t, tc.expected, m)
		})
	}
}

func TestDecodeModule_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		expectedErr string
	}{
		{
			name:        "wrong magic",
			input:       []byte("wasm\x01\x00\x00\x00"),
			expectedErr: "invalid magic number",
		},
		{
			name:        "wrong version",
			input:       []byte("\x00asm\x01\x00\x00\x01"),
			expectedErr: "invalid version header",
		},
		{
			name:        "unknown section",
			input:       header(0x0d, 0x00),
			expectedErr: "section unknown: invalid section id",
		},
		{
			name:        "section past end",
			input:       header(wasm.SectionIDType, 0x05, 0x00),
			expectedErr: "section type: size 5 exceeds remaining 1 bytes",
		},
		{
			name:        "trailing bytes in section",
			input:       header(wasm.SectionIDStart, 0x02, 0x00, 0x00),
			expectedErr: "section start: invalid section length: expected to be 2 but got 1",
		},
		{
			name: "out of order",
			input: header(
				wasm.SectionIDExport, 0x01, 0x00,
				wasm.SectionIDType, 0x01, 0x00),
			expectedErr: "section type out of order",
		},
		{
			name:        "function without code",
			input:       header(wasm.SectionIDFunction, 0x02, 0x01, 0x00),
			expectedErr: "function and code section have inconsistent lengths",
		},
		{
			name: "data count mismatch",
			input: header(
				wasm.SectionIDDataCount, 0x01, 0x01,
				wasm.SectionIDData, 0x01, 0x00),
			expectedErr: "data count section (1) doesn't match the length of data section (0)",
		},
		{
			name:        "bad limits flag",
			input:       header(wasm.SectionIDMemory, 0x03, 0x01, 0x04, 0x00),
			expectedErr: "section memory: read memory type: invalid byte for limits: 0x4 not in (0x00, 0x01, 0x02, 0x03)",
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			_, e := DecodeModule(tc.input)
			require.EqualError(t, e, tc.expectedErr)
		})
	}
}

func TestDecodeModule_Wat(t *testing.T) {
	bin, err := wasmtime.Wat2Wasm(`(module
  (type $t (func (param i32) (result i32)))
  (import "glk" "glk_put_char" (func $put (param i32)))
  (import "env" "g" (global $g i32))
  (memory 1 2)
  (table $tab 2 funcref)
  (global $counter (mut i64) (i64.const -1))
  (func $id (type $t) (local f32 f32) (local.get 0))
  (func $main (export "glulx_main") (call $put (i32.const 65)))
  (elem (table $tab) (i32.const 0) func $id $main)
  (elem $later funcref (ref.func $id) (ref.null func))
  (elem declare func $main)
  (data (i32.const 16) "hi")
  (data $p "passive")
  (start $main)
)`)
	require.NoError(t, err)

	m, err := DecodeModule(bin)
	require.NoError(t, err)

	require.Equal(t, uint32(1), m.ImportFuncCount())
	require.Equal(t, uint32(1), m.ImportGlobalCount())
	require.Equal(t, uint32(3), m.FuncCount())
	require.Equal(t, "(i32) -> (i32)", m.TypeOfFunction(1).String())
	require.Equal(t, "(i32) -> ()", m.TypeOfFunction(0).String())
	require.Nil(t, m.TypeOfFunction(3))

	idx, ok := m.ExportedFunction("glulx_main")
	require.True(t, ok)
	require.Equal(t, wasm.Index(2), idx)
	require.Equal(t, wasm.Index(2), *m.StartSection)

	require.Equal(t, []*wasm.MemoryType{{Min: 1, Max: u32(2)}}, m.MemorySection)
	require.Equal(t, []*wasm.TableType{{Type: wasm.RefTypeFuncref, Min: 2}}, m.TableSection)
	require.Equal(t, &wasm.GlobalType{ValType: wasm.ValueTypeI64, Mutable: true}, m.GlobalSection[0].Type)
	require.Equal(t, &wasm.ConstantExpression{Opcode: wasm.OpcodeI64Const, Data: []byte{0x7f}}, m.GlobalSection[0].Init)

	require.Equal(t, []wasm.LocalGroup{{Count: 2, Type: wasm.ValueTypeF32}}, m.CodeSection[0].Locals)
	require.Equal(t, uint64(2), m.CodeSection[0].LocalCount())
	lt, ok := m.CodeSection[0].LocalType(1)
	require.True(t, ok)
	require.Equal(t, wasm.ValueTypeF32, lt)
	_, ok = m.CodeSection[0].LocalType(2)
	require.False(t, ok)

	require.Equal(t, 3, len(m.ElementSection))
	active := m.ElementSection[0]
	require.Equal(t, wasm.ElementModeActive, active.Mode)
	require.Equal(t, &wasm.ConstantExpression{Opcode: wasm.OpcodeI32Const, Data: []byte{0x00}}, active.OffsetExpr)
	require.Equal(t, []wasm.ElementInit{{Kind: wasm.ElementInitFunc, Index: 1}, {Kind: wasm.ElementInitFunc, Index: 2}}, active.Init)

	passive := m.ElementSection[1]
	require.Equal(t, wasm.ElementModePassive, passive.Mode)
	require.Nil(t, passive.OffsetExpr)
	require.Equal(t, []wasm.ElementInit{{Kind: wasm.ElementInitFunc, Index: 1}, {Kind: wasm.ElementInitNull}}, passive.Init)

	require.Equal(t, wasm.ElementModeDeclarative, m.ElementSection[2].Mode)

	require.Equal(t, 2, len(m.DataSection))
	require.False(t, m.DataSection[0].IsPassive())
	require.Equal(t, []byte("hi"), m.DataSection[0].Init)
	require.True(t, m.DataSection[1].IsPassive())
	require.Equal(t, []byte("passive"), m.DataSection[1].Init)
}

func TestDecodeElementSegment(t *testing.T) {
	i32Zero := []byte{byte(wasm.OpcodeI32Const), 0x00, byte(wasm.OpcodeEnd)}
	refFunc5 := []byte{byte(wasm.OpcodeRefFunc), 0x05, byte(wasm.OpcodeEnd)}
	offset := &wasm.ConstantExpression{Opcode: wasm.OpcodeI32Const, Data: []byte{0x00}}
	funcs := []wasm.ElementInit{{Kind: wasm.ElementInitFunc, Index: 5}}

	cat := func(parts ...[]byte) (ret []byte) {
		for _, p := range parts {
			ret = append(ret, p...)
		}
		return
	}

	tests := []struct {
		name     string
		input    []byte
		expected *wasm.ElementSegment
	}{
		{
			name:     "0: active legacy",
			input:    cat([]byte{0x00}, i32Zero, []byte{0x01, 0x05}),
			expected: &wasm.ElementSegment{Mode: wasm.ElementModeActive, OffsetExpr: offset, Init: funcs, Type: wasm.RefTypeFuncref},
		},
		{
			name:     "1: passive",
			input:    []byte{0x01, 0x00, 0x01, 0x05},
			expected: &wasm.ElementSegment{Mode: wasm.ElementModePassive, Init: funcs, Type: wasm.RefTypeFuncref},
		},
		{
			name:     "2: active with table",
			input:    cat([]byte{0x02, 0x01}, i32Zero, []byte{0x00, 0x01, 0x05}),
			expected: &wasm.ElementSegment{Mode: wasm.ElementModeActive, TableIndex: 1, OffsetExpr: offset, Init: funcs, Type: wasm.RefTypeFuncref},
		},
		{
			name:     "3: declarative",
			input:    []byte{0x03, 0x00, 0x01, 0x05},
			expected: &wasm.ElementSegment{Mode: wasm.ElementModeDeclarative, Init: funcs, Type: wasm.RefTypeFuncref},
		},
		{
			name:     "4: active expressions",
			input:    cat([]byte{0x04}, i32Zero, []byte{0x01}, refFunc5),
			expected: &wasm.ElementSegment{Mode: wasm.ElementModeActive, OffsetExpr: offset, Init: funcs, Type: wasm.RefTypeFuncref},
		},
		{
			name:  "5: passive expressions",
			input: cat([]byte{0x05, wasm.RefTypeFuncref, 0x02}, refFunc5, []byte{byte(wasm.OpcodeRefNull), wasm.RefTypeFuncref, byte(wasm.OpcodeEnd)}),
			expected: &wasm.ElementSegment{Mode: wasm.ElementModePassive, Type: wasm.RefTypeFuncref,
				Init: []wasm.ElementInit{{Kind: wasm.ElementInitFunc, Index: 5}, {Kind: wasm.ElementInitNull}}},
		},
		{
			name:     "6: active expressions with table",
			input:    cat([]byte{0x06, 0x00}, i32Zero, []byte{wasm.RefTypeExternref, 0x01, byte(wasm.OpcodeGlobalGet), 0x02, byte(wasm.OpcodeEnd)}),
			expected: &wasm.ElementSegment{Mode: wasm.ElementModeActive, OffsetExpr: offset, Type: wasm.RefTypeExternref, Init: []wasm.ElementInit{{Kind: wasm.ElementInitGlobal, Index: 2}}},
		},
		{
			name:     "7: declarative expressions",
			input:    cat([]byte{0x07, wasm.RefTypeFuncref, 0x01}, refFunc5),
			expected: &wasm.ElementSegment{Mode: wasm.ElementModeDeclarative, Init: funcs, Type: wasm.RefTypeFuncref},
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			actual, err := decodeElementSegment(bytes.NewReader(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestDecodeConstantExpression(t *testing.T) {
	tests := []struct {
		in  []byte
		exp *wasm.ConstantExpression
	}{
		{
			in:  []byte{byte(wasm.OpcodeF32Const), 0x00, 0x00, 0x80, 0x3f, byte(wasm.OpcodeEnd)},
			exp: &wasm.ConstantExpression{Opcode: wasm.OpcodeF32Const, Data: []byte{0x00, 0x00, 0x80, 0x3f}},
		},
		{
			in:  []byte{byte(wasm.OpcodeGlobalGet), 0x80, 0x01, byte(wasm.OpcodeEnd)},
			exp: &wasm.ConstantExpression{Opcode: wasm.OpcodeGlobalGet, Data: []byte{0x80, 0x01}},
		},
		{
			in:  []byte{byte(wasm.OpcodeRefNull), wasm.RefTypeExternref, byte(wasm.OpcodeEnd)},
			exp: &wasm.ConstantExpression{Opcode: wasm.OpcodeRefNull, Data: []byte{wasm.RefTypeExternref}},
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(wasm.InstructionName(tc.exp.Opcode), func(t *testing.T) {
			actual, err := decodeConstantExpression(bytes.NewReader(tc.in))
			require.NoError(t, err)
			require.Equal(t, tc.exp, actual)
		})
	}
}

func TestDecodeConstantExpression_Errors(t *testing.T) {
	tests := []struct {
		name        string
		in          []byte
		expectedErr string
	}{
		{
			name:        "not terminated",
			in:          []byte{byte(wasm.OpcodeI32Const), 0x00, byte(wasm.OpcodeNop)},
			expectedErr: "constant expression is not terminated by end",
		},
		{
			name:        "short float",
			in:          []byte{byte(wasm.OpcodeF64Const), 0x00, 0x00},
			expectedErr: "read value: unexpected EOF",
		},
		{
			name:        "not constant",
			in:          []byte{byte(wasm.OpcodeI32Add), byte(wasm.OpcodeEnd)},
			expectedErr: "invalid byte for constant expression opcode: 0x6a",
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeConstantExpression(bytes.NewReader(tc.in))
			require.EqualError(t, err, tc.expectedErr)
		})
	}
}
