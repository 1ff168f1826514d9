package glulx

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Opcode is a Glulx opcode number.
type Opcode uint32

type opcodeInfo struct {
	name string
	// sig has one character per operand: L for a load, S for a store, B for a
	// branch target.
	sig string
}

// Name returns the assembler mnemonic of op.
func (op Opcode) Name() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return fmt.Sprintf("op%#x", uint32(op))
}

// encodedLen is the number of bytes the opcode number occupies.
func (op Opcode) encodedLen() int {
	switch {
	case op < 0x80:
		return 1
	case op < 0x4000:
		return 2
	default:
		return 4
	}
}

func (op Opcode) appendTo(buf []byte) []byte {
	switch op.encodedLen() {
	case 1:
		return append(buf, byte(op))
	case 2:
		return binary.BigEndian.AppendUint16(buf, uint16(op)|0x8000)
	default:
		return binary.BigEndian.AppendUint32(buf, uint32(op)|0xc0000000)
	}
}

// maxOperands is the most operands any Glulx instruction takes.
const maxOperands = 8

// Instr is a single Glulx instruction. Construct one with the function named
// after its mnemonic, e.g. Add or Jeq.
type Instr struct {
	Op       Opcode
	Operands []Operand
}

func newInstr(op Opcode, operands ...Operand) Instr {
	info, ok := opcodes[op]
	if !ok {
		panic(fmt.Sprintf("unknown opcode %#x", uint32(op)))
	}
	if len(operands) != len(info.sig) || len(operands) > maxOperands {
		panic(fmt.Sprintf("%s takes %d operands, got %d", info.name, len(info.sig), len(operands)))
	}
	for i, o := range operands {
		switch info.sig[i] {
		case 'S':
			if !o.isStore() {
				panic(fmt.Sprintf("%s operand %d must be a store", info.name, i))
			}
		case 'L':
			if o.isStore() || o.(Load).IsBranch() {
				panic(fmt.Sprintf("%s operand %d must be a load", info.name, i))
			}
		case 'B':
			if o.isStore() || !o.(Load).IsBranch() {
				panic(fmt.Sprintf("%s operand %d must be a branch target", info.name, i))
			}
		}
	}
	return Instr{Op: op, Operands: operands}
}

func (i Instr) modeBytes() int {
	return (len(i.Operands) + 1) / 2
}

// worstLen is an upper bound on the encoded length wherever i is placed.
func (i Instr) worstLen() int {
	n := i.Op.encodedLen() + i.modeBytes()
	for _, o := range i.Operands {
		n += o.worstLen()
	}
	return n
}

type resolvedInstr struct {
	op       Opcode
	operands []rawOperand
}

// resolve encodes the operands of i placed at pos.
func (i Instr) resolve(pos uint32, r Resolver) (resolvedInstr, error) {
	cursor, err := addLen(pos, i.Op.encodedLen()+i.modeBytes())
	if err != nil {
		return resolvedInstr{}, err
	}
	raw := make([]rawOperand, len(i.Operands))
	for n, o := range i.Operands {
		if raw[n], err = o.resolve(cursor, r); err != nil {
			return resolvedInstr{}, err
		}
		if cursor, err = addLen(cursor, raw[n].len()); err != nil {
			return resolvedInstr{}, err
		}
	}
	return resolvedInstr{op: i.Op, operands: raw}, nil
}

func (ri resolvedInstr) len() int {
	n := ri.op.encodedLen() + (len(ri.operands)+1)/2
	for _, o := range ri.operands {
		n += o.len()
	}
	return n
}

func (ri resolvedInstr) appendTo(buf []byte) []byte {
	buf = ri.op.appendTo(buf)
	for n := 0; n < len(ri.operands); n += 2 {
		b := ri.operands[n].mode
		if n+1 < len(ri.operands) {
			b |= ri.operands[n+1].mode << 4
		}
		buf = append(buf, b)
	}
	for _, o := range ri.operands {
		buf = o.appendTo(buf)
	}
	return buf
}

// String implements fmt.Stringer.
func (i Instr) String() string {
	var sb strings.Builder
	sb.WriteString(i.Op.Name())
	for _, o := range i.Operands {
		sb.WriteByte(' ')
		sb.WriteString(o.String())
	}
	return sb.String()
}

// Returning replaces the branch target of i, which must be a branching
// instruction, so that taking the branch returns 1 from the current function
// if v is true and 0 otherwise. Build i with any label, ex.
//
//	Jz(Local(0), Label{}).Returning(true)
func (i Instr) Returning(v bool) Instr {
	n := len(i.Operands) - 1
	if n < 0 || i.Operands[n].isStore() || !i.Operands[n].(Load).IsBranch() {
		panic(fmt.Sprintf("%s does not branch", i.Op.Name()))
	}
	operands := make([]Operand, len(i.Operands))
	copy(operands, i.Operands)
	operands[n] = BranchReturn(v)
	return Instr{Op: i.Op, Operands: operands}
}
