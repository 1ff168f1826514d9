package compiler

import (
	"sort"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

func TestCompile_everyIntrinsic(t *testing.T) {
	names := lo.Keys(intrinsics)
	sort.Strings(names)
	wat := importAll(glulxModule, names, func(name string) ([]string, []string) {
		in := intrinsics[name]
		return typeNames(in.params), typeNames(in.results)
	})

	_, err := Compile(wat2wasm(t, wat), nil)
	require.NoError(t, err)
}

func TestIntrinsics_signatures(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{name: "save", expected: "(i32) -> (i32)"},
		{name: "restore", expected: "(i32) -> (i32)"},
		{name: "saveundo", expected: "() -> (i32)"},
		{name: "restoreundo", expected: "() -> (i32)"},
		{name: "hasundo", expected: "() -> (i32)"},
		{name: "gestalt", expected: "(i32, i32) -> (i32)"},
		{name: "glkarea_put_word", expected: "(i32, i32) -> ()"},
		{name: "glkarea_get_words", expected: "(i32, i32, i32) -> ()"},
		{name: "atan2f", expected: "(f32, f32) -> (f32)"},
		{name: "fmod", expected: "(f64, f64) -> (f64)"},
		{name: "exp", expected: "(f64) -> (f64)"},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			in, ok := intrinsics[tc.name]
			require.True(t, ok)
			sig := &wasm.FunctionType{Params: in.params, Results: in.results}
			require.Equal(t, tc.expected, sig.String())
		})
	}
}
