package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFunctionType_String(t *testing.T) {
	tests := []struct {
		name     string
		input    *FunctionType
		expected string
	}{
		{name: "void", input: &FunctionType{}, expected: "() -> ()"},
		{name: "one param", input: &FunctionType{Params: []ValueType{ValueTypeI32}}, expected: "(i32) -> ()"},
		{
			name:     "params and results",
			input:    &FunctionType{Params: []ValueType{ValueTypeI64, ValueTypeV128}, Results: []ValueType{ValueTypeF32, ValueTypeFuncref}},
			expected: "(i64, v128) -> (f32, funcref)",
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.input.String())
		})
	}
}

func TestWordCount(t *testing.T) {
	require.Equal(t, uint32(0), WordCount(nil))
	require.Equal(t, uint32(1+2+1+2+4+1), WordCount([]ValueType{
		ValueTypeI32, ValueTypeI64, ValueTypeF32, ValueTypeF64, ValueTypeV128, ValueTypeExternref,
	}))
}

func TestInstructionName(t *testing.T) {
	tests := []struct {
		op       Opcode
		expected string
	}{
		{op: OpcodeUnreachable, expected: "unreachable"},
		{op: OpcodeTypedSelect, expected: "select"},
		{op: OpcodeI64ExtendI32S, expected: "i64.extend_i32_s"},
		{op: OpcodeMemoryCopy, expected: "memory.copy"},
		{op: OpcodeI32TruncSatF64U, expected: "i32.trunc_sat_f64_u"},
		{op: OpcodeI64AtomicRmw32CmpxchgU, expected: "i64.atomic.rmw32.cmpxchg_u"},
		{op: OpcodeMemoryAtomicWait32, expected: "memory.atomic.wait32"},
		{op: OpcodeVec(0x0c), expected: "v128.const"},
		{op: OpcodeVec(0xae), expected: "i32x4.add"},
		{op: OpcodeVec(0x9a), expected: "v128 instruction 0x9a"},
		{op: 0x06, expected: "unknown instruction 0x6"},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.expected, func(t *testing.T) {
			require.Equal(t, tc.expected, InstructionName(tc.op))
		})
	}
}

func TestLookupOpcode(t *testing.T) {
	info, ok := LookupOpcode(OpcodeF64Store)
	require.True(t, ok)
	require.Equal(t, ImmMemArg, info.Imm)
	require.True(t, info.Fixed)
	require.Equal(t, []ValueType{ValueTypeI32, ValueTypeF64}, info.Params)
	require.Nil(t, info.Results)

	info, ok = LookupOpcode(OpcodeBrTable)
	require.True(t, ok)
	require.False(t, info.Fixed)

	_, ok = LookupOpcode(OpcodeVec(0))
	require.False(t, ok)
	require.True(t, IsVec(OpcodeVec(0x113)))
	require.False(t, IsVec(OpcodeMemoryFill))
}
