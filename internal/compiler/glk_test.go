package compiler

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

func TestGlkFunctions_params(t *testing.T) {
	for name, fn := range glkFunctions {
		for i, p := range fn.params {
			switch p.kind {
			case glkByteArray, glkWordArray, glkOwnedByteArray, glkOwnedWordArray:
				require.Less(t, int(p.n), len(fn.params), "%s param %d", name, i)
				require.NotEqual(t, uint32(i), p.n, "%s param %d counts itself", name, i)
				require.Equal(t, glkScalar, fn.params[p.n].kind, "%s param %d", name, i)
			case glkScalarPtr:
				require.NotZero(t, p.n, "%s param %d", name, i)
			}
		}
	}
}

func TestGlkFunctions_selectors(t *testing.T) {
	seen := map[uint32]string{}
	for name, fn := range glkFunctions {
		other, dup := seen[fn.selector]
		require.False(t, dup, "%s and %s share selector %#x", name, other, fn.selector)
		seen[fn.selector] = name
	}
}

func TestGlkParam_nullable(t *testing.T) {
	tests := []struct {
		p        glkParam
		expected bool
	}{
		{p: gScalar, expected: false},
		{p: gPtr(1), expected: true},
		{p: gBytes(1), expected: true},
		{p: gWords(1), expected: true},
		{p: gLat1, expected: false},
		{p: gUnicode, expected: false},
		{p: gOwnedBytes(1), expected: false},
		{p: gOwnedWords(1), expected: false},
	}
	for _, tc := range tests {
		require.Equal(t, tc.expected, tc.p.nullable(), "kind %d", tc.p.kind)
	}
}

func TestGlkFunction_signature(t *testing.T) {
	require.Equal(t, "(i32, i32, i32) -> (i32)", glkFunctions["get_line_stream"].signature().String())
	require.Equal(t, "() -> ()", glkFunctions["exit"].signature().String())
	require.Equal(t, "(i32) -> ()", glkFunctions["select"].signature().String())
}

func typeNames(ts []wasm.ValueType) []string {
	return lo.Map(ts, func(v wasm.ValueType, _ int) string { return wasm.ValueTypeName(v) })
}

// importAll builds a module importing every name from module, calling each
// import once with zero arguments.
func importAll(module string, names []string, sig func(string) (params, results []string)) string {
	var sb strings.Builder
	sb.WriteString("(module\n")
	for i, name := range names {
		params, results := sig(name)
		fmt.Fprintf(&sb, "  (import %q %q (func $f%d", module, name, i)
		if len(params) > 0 {
			fmt.Fprintf(&sb, " (param %s)", strings.Join(params, " "))
		}
		if len(results) > 0 {
			fmt.Fprintf(&sb, " (result %s)", strings.Join(results, " "))
		}
		sb.WriteString("))\n")
	}
	// Imports must come before any definition.
	sb.WriteString("  (memory 1)\n")
	sb.WriteString("  (func (export \"glulx_main\")\n")
	for i, name := range names {
		params, results := sig(name)
		for _, p := range params {
			fmt.Fprintf(&sb, "    %s.const 0\n", p)
		}
		fmt.Fprintf(&sb, "    call $f%d\n", i)
		for range results {
			sb.WriteString("    drop\n")
		}
	}
	sb.WriteString("  ))\n")
	return sb.String()
}

func TestCompile_everyGlkFunction(t *testing.T) {
	names := lo.Keys(glkFunctions)
	sort.Strings(names)
	wat := importAll(glkModule, names, func(name string) ([]string, []string) {
		sig := glkFunctions[name].signature()
		return typeNames(sig.Params), typeNames(sig.Results)
	})

	out, err := Compile(wat2wasm(t, wat), NewConfig().WithText(true))
	require.NoError(t, err)
	require.Contains(t, string(out), "\tglk ")
}
