// Package wasmir turns a function body into a tree of blocks whose
// instructions are annotated with the value types they pop and push.
//
// Unreachable code is dropped, so every instruction in the tree executes
// with a known stack shape.
package wasmir

import (
	"fmt"
	"strings"

	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

type BlockKind byte

const (
	BlockKindFunction BlockKind = iota
	BlockKindBlock
	BlockKindLoop
	BlockKindIf
)

func (k BlockKind) String() string {
	switch k {
	case BlockKindFunction:
		return "function"
	case BlockKindBlock:
		return "block"
	case BlockKindLoop:
		return "loop"
	case BlockKindIf:
		return "if"
	}
	return fmt.Sprintf("BlockKind(%d)", k)
}

// Block is the body of a function, block, loop or if.
type Block struct {
	Kind    BlockKind
	Params  []wasm.ValueType
	Results []wasm.ValueType
	Body    []*Instr
	// Else is the alternative of an if. It is empty when absent.
	Else []*Instr
	// Targeted is true when a br, br_if or br_table refers to this block.
	Targeted bool
}

// LabelTypes returns the types carried by a branch to this block.
func (b *Block) LabelTypes() []wasm.ValueType {
	if b.Kind == BlockKindLoop {
		return b.Params
	}
	return b.Results
}

// Instr is a single reachable instruction.
type Instr struct {
	Op wasm.Opcode
	// In are the types popped, bottom first. Out are the types pushed.
	//
	// For branches, In ends with the values carried to the target. Anything
	// below them on the stack is discarded by the branch.
	In, Out []wasm.ValueType

	// Index is the primary index immediate: local, global, function, type,
	// table, data or element, or the destination of a copy.
	Index uint32
	// Index2 is the secondary index immediate: the table of call_indirect and
	// table.init, the memory of memory.init or the source of a copy.
	Index2 uint32

	// Offset and Align are the memory argument.
	Offset uint32
	Align  uint32

	// Value holds the bits of a constant. f32 bits are in the low word.
	Value uint64
	// RefType is the type of ref.null.
	RefType wasm.RefType

	// Block is the nested block of block, loop and if.
	Block *Block
	// Target is the block a br or br_if branches to. For return, the function block.
	Target *Block
	// Targets and Default are the br_table targets.
	Targets []*Block
	Default *Block
}

// Function is a defined function ready to be lowered.
type Function struct {
	Index wasm.Index
	Name  string
	Type  *wasm.FunctionType
	// Locals are the declared locals, excluding parameters.
	Locals []wasm.LocalGroup
	Body   *Block
}

// HasBranchToEntry is true when a branch targets the function body itself.
func (f *Function) HasBranchToEntry() bool {
	return f.Body.Targeted
}

// UnsupportedError is returned by Build for a reachable instruction that has no
// lowering at all, such as any vector instruction.
type UnsupportedError struct {
	Op wasm.Opcode
}

func (e *UnsupportedError) Error() string {
	return "unsupported instruction: " + wasm.InstructionName(e.Op)
}

// Format renders the block as indented text, for tests and debug logs.
func Format(b *Block) string {
	var sb strings.Builder
	format(&sb, b.Body, 0)
	if b.Kind == BlockKindIf && len(b.Else) > 0 {
		sb.WriteString("else\n")
		format(&sb, b.Else, 0)
	}
	return sb.String()
}

func format(sb *strings.Builder, instrs []*Instr, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, in := range instrs {
		sb.WriteString(indent)
		sb.WriteString(wasm.InstructionName(in.Op))
		switch in.Op {
		case wasm.OpcodeLocalGet, wasm.OpcodeLocalSet, wasm.OpcodeLocalTee,
			wasm.OpcodeGlobalGet, wasm.OpcodeGlobalSet, wasm.OpcodeCall:
			fmt.Fprintf(sb, " %d", in.Index)
		case wasm.OpcodeI32Const:
			fmt.Fprintf(sb, " %d", int32(in.Value))
		case wasm.OpcodeI64Const:
			fmt.Fprintf(sb, " %d", int64(in.Value))
		}
		if len(in.In) > 0 || len(in.Out) > 0 {
			fmt.Fprintf(sb, " [%s] -> [%s]", typeNames(in.In), typeNames(in.Out))
		}
		sb.WriteByte('\n')
		if in.Block != nil {
			format(sb, in.Block.Body, depth+1)
			if in.Block.Kind == BlockKindIf && len(in.Block.Else) > 0 {
				sb.WriteString(indent + "else\n")
				format(sb, in.Block.Else, depth+1)
			}
			sb.WriteString(indent + "end\n")
		}
	}
}

func typeNames(ts []wasm.ValueType) string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = wasm.ValueTypeName(t)
	}
	return strings.Join(names, " ")
}
