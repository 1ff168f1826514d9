package wasm

import "fmt"

// Opcode identifies an instruction. Single-byte opcodes are their own value.
// Instructions behind a prefix byte are (prefix << 8) | subopcode for the misc
// and atomic prefixes, and OpcodeVec(sub) for the vector prefix. See also
// InstructionName.
type Opcode = uint32

const (
	// OpcodeMiscPrefix is the prefix of the saturating truncations and the bulk memory and table instructions.
	OpcodeMiscPrefix byte = 0xfc
	// OpcodeVecPrefix is the prefix of the 128-bit vector instructions.
	OpcodeVecPrefix byte = 0xfd
	// OpcodeAtomicPrefix is the prefix of the threads proposal instructions.
	OpcodeAtomicPrefix byte = 0xfe
)

const opcodeVecBase Opcode = 0xfd << 16

// OpcodeVec returns the Opcode for the vector instruction with the given subopcode.
func OpcodeVec(sub uint32) Opcode {
	return opcodeVecBase | (sub & 0xffff)
}

// IsVec returns true if op is a vector instruction.
func IsVec(op Opcode) bool {
	return op&^0xffff == opcodeVecBase
}

// Immediate describes the immediate operands following an opcode in the binary format.
type Immediate byte

const (
	ImmNone Immediate = iota
	// ImmBlockType is a block type: 0x40, a value type or a signed type index.
	ImmBlockType
	ImmLabel
	// ImmBrTable is a vector of labels followed by the default label.
	ImmBrTable
	ImmFunc
	// ImmCallIndirect is a type index followed by a table index.
	ImmCallIndirect
	ImmLocal
	ImmGlobal
	ImmTable
	// ImmMemArg is an alignment exponent followed by an offset.
	ImmMemArg
	// ImmMemory is a memory index, always zero without multi-memory.
	ImmMemory
	ImmI32
	ImmI64
	ImmF32
	ImmF64
	// ImmSelectTypes is a vector of value types.
	ImmSelectTypes
	ImmRefType
	// ImmMemoryInit is a data index followed by a memory index.
	ImmMemoryInit
	ImmData
	// ImmMemoryCopy is a destination then source memory index.
	ImmMemoryCopy
	// ImmTableInit is an element index followed by a table index.
	ImmTableInit
	ImmElem
	// ImmTableCopy is a destination then source table index.
	ImmTableCopy
	// ImmFence is a single reserved zero byte.
	ImmFence
)

// OpcodeInfo describes an instruction.
type OpcodeInfo struct {
	Name string
	Imm  Immediate
	// Fixed is true when the instruction always pops Params and pushes Results.
	// Otherwise the stack effect depends on its immediates or operands.
	Fixed   bool
	Params  []ValueType
	Results []ValueType
}

// LookupOpcode returns the description of a non-vector opcode.
func LookupOpcode(op Opcode) (OpcodeInfo, bool) {
	info, ok := opcodeInfos[op]
	return info, ok
}

// InstructionName returns the text format mnemonic of the opcode.
func InstructionName(op Opcode) string {
	if IsVec(op) {
		if name, ok := simdNames[op&0xffff]; ok {
			return name
		}
		return fmt.Sprintf("v128 instruction %#x", op&0xffff)
	}
	if info, ok := opcodeInfos[op]; ok {
		return info.Name
	}
	return fmt.Sprintf("unknown instruction %#x", op)
}
