package glulx

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// Operand addressing modes, as they appear in an instruction's mode nibbles.
const (
	modeNull    byte = 0x0
	modeImm8    byte = 0x1
	modeImm16   byte = 0x2
	modeImm32   byte = 0x3
	modeAddr8   byte = 0x5
	modeAddr16  byte = 0x6
	modeAddr32  byte = 0x7
	modeStack   byte = 0x8
	modeFrame8  byte = 0x9
	modeFrame16 byte = 0xa
	modeFrame32 byte = 0xb
	modeRAM8    byte = 0xd
	modeRAM16   byte = 0xe
	modeRAM32   byte = 0xf
)

// rawOperand is an operand after label resolution.
type rawOperand struct {
	mode  byte
	value uint32
}

func (o rawOperand) len() int {
	switch o.mode {
	case modeNull, modeStack:
		return 0
	case modeImm8, modeAddr8, modeFrame8, modeRAM8:
		return 1
	case modeImm16, modeAddr16, modeFrame16, modeRAM16:
		return 2
	default:
		return 4
	}
}

func (o rawOperand) appendTo(buf []byte) []byte {
	switch o.len() {
	case 1:
		return append(buf, byte(o.value))
	case 2:
		return binary.BigEndian.AppendUint16(buf, uint16(o.value))
	case 4:
		return binary.BigEndian.AppendUint32(buf, o.value)
	}
	return buf
}

// signed picks the narrowest immediate mode for v. Zero needs no payload.
func signed(v int32) rawOperand {
	switch {
	case v == 0:
		return rawOperand{mode: modeNull}
	case v >= math.MinInt8 && v <= math.MaxInt8:
		return rawOperand{mode: modeImm8, value: uint32(v)}
	case v >= math.MinInt16 && v <= math.MaxInt16:
		return rawOperand{mode: modeImm16, value: uint32(v)}
	default:
		return rawOperand{mode: modeImm32, value: uint32(v)}
	}
}

// unsigned picks the narrowest of the three modes starting at base.
func unsigned(base byte, v uint32) rawOperand {
	switch {
	case v <= math.MaxUint8:
		return rawOperand{mode: base, value: v}
	case v <= math.MaxUint16:
		return rawOperand{mode: base + 1, value: v}
	default:
		return rawOperand{mode: base + 2, value: v}
	}
}

// Operand is either a Load or a Store.
type Operand interface {
	fmt.Stringer
	isStore() bool
	// worstLen is an upper bound on the payload length wherever the operand
	// ends up.
	worstLen() int
	// resolve encodes the operand whose payload begins at pos.
	resolve(pos uint32, r Resolver) (rawOperand, error)
}

// LoadKind is the variant of a Load.
type LoadKind uint8

const (
	LoadPop LoadKind = iota
	LoadImm
	LoadFrameAddr
	LoadImmLabel
	LoadDerefLabel
	LoadBranch
	// LoadBranchReturn is a branch operand which returns Value from the
	// current function instead of jumping.
	LoadBranchReturn
)

// Load is an operand which is read by an instruction.
type Load struct {
	Kind LoadKind
	// Value is the immediate for LoadImm, or the frame offset for LoadFrameAddr.
	Value int32
	Label Label
	// Offset is added to the address of Label.
	Offset int32
	// Shift right-shifts the address of a LoadImmLabel.
	Shift uint8
}

// Pop reads from the top of the stack.
func Pop() Load { return Load{Kind: LoadPop} }

// Imm is a signed immediate.
func Imm(v int32) Load { return Load{Kind: LoadImm, Value: v} }

// Uimm is an unsigned immediate, stored in two's complement.
func Uimm(v uint32) Load { return Load{Kind: LoadImm, Value: int32(v)} }

// ImmF32 is an immediate holding the bits of a single-precision float.
func ImmF32(f float32) Load { return Uimm(math.Float32bits(f)) }

// FrameAddr reads the local at byte offset addr.
func FrameAddr(addr uint32) Load { return Load{Kind: LoadFrameAddr, Value: int32(addr)} }

// Local reads the n-th four-byte local.
func Local(n uint32) Load { return FrameAddr(4 * n) }

// ImmLabel is the address of l as an immediate.
func ImmLabel(l Label) Load { return Load{Kind: LoadImmLabel, Label: l} }

// ImmLabelOff is the address of l plus offset as an immediate.
func ImmLabelOff(l Label, offset int32) Load {
	return Load{Kind: LoadImmLabel, Label: l, Offset: offset}
}

// ImmLabelShift is the address of l plus offset, right-shifted, as an
// immediate. The address must have at least shift low zero bits.
func ImmLabelShift(l Label, offset int32, shift uint8) Load {
	return Load{Kind: LoadImmLabel, Label: l, Offset: offset, Shift: shift}
}

// Deref reads the word at l.
func Deref(l Label) Load { return Load{Kind: LoadDerefLabel, Label: l} }

// DerefOff reads the word at l plus offset.
func DerefOff(l Label, offset int32) Load {
	return Load{Kind: LoadDerefLabel, Label: l, Offset: offset}
}

// Branch is a branch target. It is only valid as the final operand of a
// branching instruction.
func Branch(l Label) Load { return Load{Kind: LoadBranch, Label: l} }

// BranchReturn is a branch operand that returns 1 if v is true and 0 otherwise.
func BranchReturn(v bool) Load {
	if v {
		return Load{Kind: LoadBranchReturn, Value: 1}
	}
	return Load{Kind: LoadBranchReturn}
}

// IsBranch returns true for the operands valid in a branch position.
func (o Load) IsBranch() bool { return o.Kind == LoadBranch || o.Kind == LoadBranchReturn }

func (Load) isStore() bool { return false }

func (o Load) worstLen() int {
	switch o.Kind {
	case LoadPop:
		return 0
	case LoadImm, LoadBranchReturn:
		return signed(o.Value).len()
	case LoadFrameAddr:
		return unsigned(modeFrame8, uint32(o.Value)).len()
	default:
		return 4
	}
}

func (o Load) resolve(pos uint32, r Resolver) (rawOperand, error) {
	switch o.Kind {
	case LoadPop:
		return rawOperand{mode: modeStack}, nil
	case LoadImm, LoadBranchReturn:
		return signed(o.Value), nil
	case LoadFrameAddr:
		return unsigned(modeFrame8, uint32(o.Value)), nil
	case LoadImmLabel:
		addr, err := r.ResolveAbsolute(o.Label, o.Offset)
		if err != nil {
			return rawOperand{}, err
		}
		if bits.TrailingZeros32(addr) < int(o.Shift) {
			return rawOperand{}, alignmentError(o.Label, o.Offset, o.Shift)
		}
		return signed(int32(addr >> o.Shift)), nil
	case LoadDerefLabel:
		return resolveDeref(r, o.Label, o.Offset)
	case LoadBranch:
		target, err := r.ResolveAbsolute(o.Label, 0)
		if err != nil {
			return rawOperand{}, err
		}
		return branchOffset(target, pos), nil
	}
	panic(fmt.Sprintf("invalid load kind %d", o.Kind))
}

// branchOffset encodes a branch whose payload begins at pos. Glulx measures
// the offset from the end of the instruction, minus two; offsets 0 and 1 mean
// return 0 and return 1, so they are never produced. Widths are tried from
// smallest to largest, and a wider payload only moves the instruction end
// toward the target, so a width accepted once stays acceptable when
// positions shrink.
func branchOffset(target, pos uint32) rawOperand {
	null := int64(target) - int64(pos) + 2
	if off := null - 1; off >= math.MinInt8 && off <= math.MaxInt8 && off != 0 && off != 1 {
		return rawOperand{mode: modeImm8, value: uint32(int32(off))}
	}
	if off := null - 2; off >= math.MinInt16 && off <= math.MaxInt16 && off != 0 && off != 1 {
		return rawOperand{mode: modeImm16, value: uint32(int32(off))}
	}
	off := null - 4
	if off == 0 || off == 1 {
		panic("branch target lies inside its own operand")
	}
	return rawOperand{mode: modeImm32, value: uint32(int32(off))}
}

func resolveDeref(r Resolver, l Label, offset int32) (rawOperand, error) {
	res, err := resolveOffset(r, l, offset)
	if err != nil {
		return rawOperand{}, err
	}
	if res.RAM {
		return unsigned(modeRAM8, res.Addr), nil
	}
	return unsigned(modeAddr8, res.Addr), nil
}

// String implements fmt.Stringer.
func (o Load) String() string {
	switch o.Kind {
	case LoadPop:
		return "pop"
	case LoadImm:
		return fmt.Sprintf("%d", o.Value)
	case LoadFrameAddr:
		return fmt.Sprintf("fp+%d", o.Value)
	case LoadImmLabel:
		var sb strings.Builder
		sb.WriteString("&")
		sb.WriteString(labelOffString(o.Label, o.Offset))
		if o.Shift != 0 {
			fmt.Fprintf(&sb, ">>%d", o.Shift)
		}
		return sb.String()
	case LoadDerefLabel:
		return "*" + labelOffString(o.Label, o.Offset)
	case LoadBranch:
		return "=>" + o.Label.String()
	case LoadBranchReturn:
		return fmt.Sprintf("=>return %d", o.Value)
	}
	return "?"
}

// StoreKind is the variant of a Store.
type StoreKind uint8

const (
	StorePush StoreKind = iota
	StoreDiscard
	StoreFrameAddr
	StoreDerefLabel
)

// Store is an operand which is written by an instruction.
type Store struct {
	Kind StoreKind
	// Addr is the frame offset for a StoreFrameAddr.
	Addr   uint32
	Label  Label
	Offset int32
}

// Push writes to the top of the stack.
func Push() Store { return Store{Kind: StorePush} }

// Discard throws the result away.
func Discard() Store { return Store{Kind: StoreDiscard} }

// StoreFrame writes the local at byte offset addr.
func StoreFrame(addr uint32) Store { return Store{Kind: StoreFrameAddr, Addr: addr} }

// StoreLocal writes the n-th four-byte local.
func StoreLocal(n uint32) Store { return StoreFrame(4 * n) }

// StoreLabel writes the word at l.
func StoreLabel(l Label) Store { return Store{Kind: StoreDerefLabel, Label: l} }

// StoreLabelOff writes the word at l plus offset.
func StoreLabelOff(l Label, offset int32) Store {
	return Store{Kind: StoreDerefLabel, Label: l, Offset: offset}
}

func (Store) isStore() bool { return true }

func (o Store) worstLen() int {
	switch o.Kind {
	case StorePush, StoreDiscard:
		return 0
	case StoreFrameAddr:
		return unsigned(modeFrame8, o.Addr).len()
	default:
		return 4
	}
}

func (o Store) resolve(_ uint32, r Resolver) (rawOperand, error) {
	switch o.Kind {
	case StorePush:
		return rawOperand{mode: modeStack}, nil
	case StoreDiscard:
		return rawOperand{mode: modeNull}, nil
	case StoreFrameAddr:
		return unsigned(modeFrame8, o.Addr), nil
	case StoreDerefLabel:
		return resolveDeref(r, o.Label, o.Offset)
	}
	panic(fmt.Sprintf("invalid store kind %d", o.Kind))
}

// Symmetric returns the Load that reads back what o writes, or false for
// Push and Discard.
func (o Store) Symmetric() (Load, bool) {
	switch o.Kind {
	case StoreFrameAddr:
		return FrameAddr(o.Addr), true
	case StoreDerefLabel:
		return DerefOff(o.Label, o.Offset), true
	}
	return Load{}, false
}

// String implements fmt.Stringer.
func (o Store) String() string {
	switch o.Kind {
	case StorePush:
		return "push"
	case StoreDiscard:
		return "discard"
	case StoreFrameAddr:
		return fmt.Sprintf("fp+%d", o.Addr)
	case StoreDerefLabel:
		return "*" + labelOffString(o.Label, o.Offset)
	}
	return "?"
}

func labelOffString(l Label, offset int32) string {
	if offset == 0 {
		return l.String()
	}
	if offset < 0 {
		return fmt.Sprintf("%s-%#x", l, -int64(offset))
	}
	return fmt.Sprintf("%s+%#x", l, offset)
}
