package compiler

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

// ErrorKind classifies a CompileError.
type ErrorKind int

const (
	// KindValidation means the module failed validation.
	KindValidation ErrorKind = iota
	// KindUnrecognizedImport means the module imports something no host provides.
	KindUnrecognizedImport
	// KindIncorrectlyTypedImport means a known import was declared with the wrong signature.
	KindIncorrectlyTypedImport
	// KindIncorrectlyTypedExport means a specially named export has the wrong signature.
	KindIncorrectlyTypedExport
	// KindNoEntrypoint means there is neither a start function nor a glulx_main export.
	KindNoEntrypoint
	// KindOverflow means something does not fit Glulx's 32-bit address space.
	KindOverflow
	// KindUnsupportedMultipleMemories means the module has more than one memory.
	KindUnsupportedMultipleMemories
	// KindUnsupportedInstruction means a reachable instruction has no lowering.
	KindUnsupportedInstruction
	// KindInput is an I/O error reading the module.
	KindInput
	// KindOutput is an I/O error writing the story file.
	KindOutput
	// KindOther is anything else.
	KindOther
)

// OverflowLocation says what overflowed in a KindOverflow error.
type OverflowLocation int

const (
	OverflowTypeDecl OverflowLocation = iota
	OverflowTypeList
	OverflowFnList
	OverflowLocals
	OverflowStack
	OverflowTable
	OverflowElement
	OverflowData
	OverflowMemory
	OverflowFinalAssembly
)

// CompileError is one reason a compilation failed. Compile returns these
// joined with multierr; use Errors to split them.
type CompileError struct {
	Kind ErrorKind
	// Location is set for KindOverflow.
	Location OverflowLocation
	// Function names the function for OverflowLocals, OverflowStack and
	// KindUnsupportedInstruction. It is empty when the function is unnamed.
	Function string
	// Instruction is the mnemonic of an unsupported instruction.
	Instruction string
	// Import is set for KindUnrecognizedImport and KindIncorrectlyTypedImport.
	Import *wasm.Import
	// Export is set for KindIncorrectlyTypedExport.
	Export *wasm.Export
	// Expected and Actual are the signatures of an incorrectly typed import or export.
	Expected, Actual *wasm.FunctionType
	// Err is the underlying cause for KindValidation, KindInput, KindOutput and KindOther.
	Err error
}

// Error implements error.
func (e *CompileError) Error() string {
	switch e.Kind {
	case KindValidation:
		return fmt.Sprintf("Module validation error: %v", e.Err)
	case KindUnrecognizedImport:
		msg := fmt.Sprintf("Unrecognized %s import: %s/%s", importKindName(e.Import.Type), e.Import.Module, e.Import.Name)
		if e.Import.Module == "env" {
			msg += " (Did you mean to specify a module name to override the default \"env\"?)"
		}
		return msg
	case KindIncorrectlyTypedImport:
		return fmt.Sprintf("Incorrectly-typed import of %s/%s.\n    Expected: %s\n    Actual:   %s",
			e.Import.Module, e.Import.Name, e.Expected, e.Actual)
	case KindIncorrectlyTypedExport:
		return fmt.Sprintf("Incorrectly-typed export of %s.\n    Expected: %s\n    Actual:   %s",
			e.Export.Name, e.Expected, e.Actual)
	case KindNoEntrypoint:
		return "Module contains no entrypoint. Provide a start function or export a function named glulx_main."
	case KindOverflow:
		return e.overflowPrefix() + "overflows Glulx's 4GiB address space"
	case KindUnsupportedMultipleMemories:
		return "Modules that define multiple memories are not supported"
	case KindUnsupportedInstruction:
		if e.Function == "" {
			return fmt.Sprintf("Encountered an unsupported instruction in an unnamed function: %q", e.Instruction)
		}
		return fmt.Sprintf("Encountered an unsupported instruction in function %s: %q", e.Function, e.Instruction)
	case KindInput:
		return fmt.Sprintf("While reading input: %v", e.Err)
	case KindOutput:
		return fmt.Sprintf("While writing output: %v", e.Err)
	}
	return fmt.Sprintf("%v", e.Err)
}

func (e *CompileError) overflowPrefix() string {
	switch e.Location {
	case OverflowTypeDecl:
		return "A type declaration "
	case OverflowTypeList:
		return "The module's list of types "
	case OverflowFnList:
		return "The module's list of functions "
	case OverflowLocals:
		if e.Function == "" {
			return "The set of local variables used by an unnamed function "
		}
		return fmt.Sprintf("The set of local variables used by the function `%s` ", e.Function)
	case OverflowStack:
		if e.Function == "" {
			return "The stack used by an unnamed function "
		}
		return fmt.Sprintf("The stack used by the function `%s` ", e.Function)
	case OverflowTable:
		return "A table declaration "
	case OverflowElement:
		return "An element segment "
	case OverflowData:
		return "A data segment "
	case OverflowMemory:
		return "The program memory "
	}
	return "The assembled output "
}

// Unwrap returns the underlying cause, if any.
func (e *CompileError) Unwrap() error { return e.Err }

func importKindName(t wasm.ExternType) string {
	if t == wasm.ExternTypeFunc {
		return "function"
	}
	return wasm.ExternTypeName(t)
}

// Errors splits an error returned by Compile into its individual causes.
func Errors(err error) []error {
	return multierr.Errors(err)
}

// KindOf returns the kind of err, which must wrap a *CompileError.
func KindOf(err error) (ErrorKind, bool) {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

func errOverflow(loc OverflowLocation) *CompileError {
	return &CompileError{Kind: KindOverflow, Location: loc}
}

func errValidation(format string, args ...interface{}) *CompileError {
	return &CompileError{Kind: KindValidation, Err: fmt.Errorf(format, args...)}
}

func errUnrecognizedImport(im *wasm.Import) *CompileError {
	return &CompileError{Kind: KindUnrecognizedImport, Import: im}
}
