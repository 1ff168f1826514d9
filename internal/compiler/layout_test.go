package compiler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

func u32(v uint32) *uint32 { return &v }

func TestNewLayout_tables(t *testing.T) {
	tests := []struct {
		name     string
		table    *wasm.TableType
		limit    uint32
		expected uint32
	}{
		{name: "declared maximum", table: &wasm.TableType{Min: 1, Max: u32(5)}, limit: 100, expected: 5},
		{name: "growth limit", table: &wasm.TableType{Min: 10, Max: u32(5000)}, limit: 100, expected: 110},
		{name: "no maximum", table: &wasm.TableType{Min: 3}, limit: 7, expected: 10},
		{name: "no growth", table: &wasm.TableType{Min: 3}, limit: 0, expected: 3},
		{name: "saturates", table: &wasm.TableType{Min: math.MaxUint32 - 1}, limit: 10, expected: math.MaxUint32},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			m := &wasm.Module{TableSection: []*wasm.TableType{tc.table}}
			l, errs := newLayout(m, &glulx.LabelGenerator{}, NewConfig().WithTableGrowthLimit(tc.limit))
			if uint64(tc.expected)*4 > math.MaxUint32 {
				require.Equal(t, []error{errOverflow(OverflowTable)}, errs)
				return
			}
			require.Empty(t, errs)
			require.Equal(t, tc.expected, l.tables[0].maxCount)
			require.Equal(t, tc.table.Min, l.tables[0].minCount)
		})
	}
}

func TestNewLayout_memory(t *testing.T) {
	tests := []struct {
		name        string
		mem         *wasm.MemoryType
		expectedMin uint32
		expectedMax uint32
	}{
		{name: "bounded", mem: &wasm.MemoryType{Min: 1, Max: u32(3)}, expectedMin: 65536, expectedMax: 3 * 65536},
		{name: "unbounded", mem: &wasm.MemoryType{Min: 2}, expectedMin: 2 * 65536, expectedMax: maxMemoryPages * 65536},
		{name: "empty", mem: &wasm.MemoryType{Min: 0, Max: u32(0)}},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			m := &wasm.Module{MemorySection: []*wasm.MemoryType{tc.mem}}
			l, errs := newLayout(m, &glulx.LabelGenerator{}, NewConfig())
			require.Empty(t, errs)
			require.Equal(t, tc.expectedMin, l.mem.minSize)
			require.Equal(t, tc.expectedMax, l.mem.maxSize)
		})
	}
}

func TestNewLayout_errors(t *testing.T) {
	tests := []struct {
		name     string
		m        *wasm.Module
		expected []error
	}{
		{
			name:     "multiple memories",
			m:        &wasm.Module{MemorySection: []*wasm.MemoryType{{Min: 1}, {Min: 1}}},
			expected: []error{&CompileError{Kind: KindUnsupportedMultipleMemories}},
		},
		{
			name:     "memory too big",
			m:        &wasm.Module{MemorySection: []*wasm.MemoryType{{Min: 65536}}},
			expected: []error{errOverflow(OverflowMemory)},
		},
		{
			name: "table overflow is reported once",
			m: &wasm.Module{
				TableSection: []*wasm.TableType{{Min: 1 << 30}, {Min: 1 << 31}},
			},
			expected: []error{errOverflow(OverflowTable)},
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			_, errs := newLayout(tc.m, &glulx.LabelGenerator{}, NewConfig().WithTableGrowthLimit(0))
			require.Equal(t, tc.expected, errs)
		})
	}
}

func TestNewLayout_functions(t *testing.T) {
	m := &wasm.Module{
		TypeSection: []*wasm.FunctionType{
			{Params: []wasm.ValueType{wasm.ValueTypeI64, wasm.ValueTypeI32}},
			{Results: []wasm.ValueType{wasm.ValueTypeF64, wasm.ValueTypeI64, wasm.ValueTypeI64}},
		},
		ImportSection: []*wasm.Import{
			{Type: wasm.ExternTypeFunc, Module: "glk", Name: "exit", DescFunc: 0},
		},
		FunctionSection: []wasm.Index{1, 0},
	}
	l, errs := newLayout(m, &glulx.LabelGenerator{}, NewConfig())
	require.Empty(t, errs)

	require.Equal(t, []typeLayout{
		{typenum: 1, paramWords: 3, resultWords: 0},
		{typenum: 2, paramWords: 0, resultWords: 6},
	}, l.types)

	require.Len(t, l.funcs, 3)
	for i, f := range l.funcs {
		require.Equal(t, uint32(i)+1, f.fnnum)
	}
	require.Equal(t, uint32(1), l.funcs[0].typenum)
	require.Equal(t, uint32(2), l.funcs[1].typenum)
	require.Equal(t, uint32(1), l.funcs[2].typenum)
	require.Equal(t, typeLayout{typenum: 2, resultWords: 6}, l.funcType(1))

	// Six result words, more than the four word minimum.
	require.Equal(t, uint32(24), l.hiReturn.size)
}

func TestCanonicalTypes(t *testing.T) {
	i32, i64 := wasm.ValueTypeI32, wasm.ValueTypeI64
	tests := []struct {
		name     string
		types    []*wasm.FunctionType
		expected []wasm.Index
	}{
		{name: "none", expected: []wasm.Index{}},
		{
			name:     "distinct",
			types:    []*wasm.FunctionType{{Params: []wasm.ValueType{i32}}, {Results: []wasm.ValueType{i32}}},
			expected: []wasm.Index{0, 1},
		},
		{
			name: "duplicates map to the first",
			types: []*wasm.FunctionType{
				{Results: []wasm.ValueType{i32}},
				{Params: []wasm.ValueType{i64}},
				{Results: []wasm.ValueType{i32}},
				{Params: []wasm.ValueType{i64}},
				{Results: []wasm.ValueType{i32}},
			},
			expected: []wasm.Index{0, 1, 0, 1, 0},
		},
		{
			name:     "params and results are not interchangeable",
			types:    []*wasm.FunctionType{{Params: []wasm.ValueType{i32}}, {Results: []wasm.ValueType{i32}}, {}},
			expected: []wasm.Index{0, 1, 2},
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, canonicalTypes(tc.types))
		})
	}
}

func TestNewLayout_identicalTypes(t *testing.T) {
	m := &wasm.Module{
		TypeSection: []*wasm.FunctionType{
			{Results: []wasm.ValueType{wasm.ValueTypeI32}},
			{Results: []wasm.ValueType{wasm.ValueTypeI32}},
		},
		FunctionSection: []wasm.Index{0, 1},
	}
	l, errs := newLayout(m, &glulx.LabelGenerator{}, NewConfig())
	require.Empty(t, errs)
	require.Equal(t, uint32(1), l.types[1].typenum)
	require.Equal(t, l.funcs[0].typenum, l.funcs[1].typenum)
}
