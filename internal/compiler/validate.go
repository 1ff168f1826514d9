package compiler

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/experimental"
)

// validationFeatures are the proposals a module may use. Atomics are accepted
// and run as ordinary memory accesses.
const validationFeatures = api.CoreFeaturesV2 | experimental.CoreFeaturesThreads

// validate checks bin against the WebAssembly specification by compiling it
// with wazero's interpreter, which performs full validation and nothing else
// the story file depends on.
func validate(ctx context.Context, bin []byte) error {
	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter().WithCoreFeatures(validationFeatures))
	defer r.Close(ctx) //nolint

	compiled, err := r.CompileModule(ctx, bin)
	if err != nil {
		return &CompileError{Kind: KindValidation, Err: err}
	}
	return compiled.Close(ctx)
}
