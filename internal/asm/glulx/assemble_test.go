package glulx

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// helloAssembly is a minimal program: a function that prints a string and quits.
func helloAssembly(g *LabelGenerator) *Assembly {
	start, str, counter, scratch := g.Gen("start"), g.Gen("hello"), g.Gen("counter"), g.Gen("scratch")
	return &Assembly{
		ROM: []Item{
			Mark(start),
			FnHeader(ArgsInLocals, 0),
			Setiosys(Imm(2), Imm(0)),
			Streamstr(ImmLabel(str)),
			Add(Deref(counter), Imm(1), StoreLabel(counter)),
			Copy(Imm(7), StoreLabelOff(scratch, 4)),
			Quit(),
			Mark(str),
			Str(Latin1("Hello, sailor!\n")),
		},
		RAM: []Item{
			Mark(counter),
			Word(0),
		},
		Zero: []ZeroItem{
			ZeroAlign(4),
			ZeroMark(scratch),
			ZeroSpace(1000),
		},
		StackSize: 4096,
		StartFunc: start,
	}
}

func TestAssemble_Header(t *testing.T) {
	var g LabelGenerator
	out, stats, err := helloAssembly(&g).AssembleWithStats()
	require.NoError(t, err)

	word := func(off int) uint32 { return binary.BigEndian.Uint32(out[off:]) }
	require.Equal(t, Magic, word(0x00))
	require.Equal(t, Version, word(0x04))

	ramStart, extStart, endMem := word(0x08), word(0x0c), word(0x10)
	require.Equal(t, stats.RAMStart, ramStart)
	require.Equal(t, stats.ExtStart, extStart)
	require.Equal(t, stats.EndMem, endMem)
	require.Zero(t, ramStart%256)
	require.Zero(t, extStart%256)
	require.Zero(t, endMem%256)
	require.True(t, HeaderLength <= ramStart && ramStart <= extStart && extStart <= endMem)
	require.Equal(t, int(extStart), len(out))
	require.GreaterOrEqual(t, endMem-extStart, uint32(1000))

	require.Equal(t, uint32(4096), word(0x14))
	require.Equal(t, uint32(HeaderLength), word(0x18), "start function is the first ROM item")
	require.Zero(t, word(0x1c))
	// FnHeader with no locals.
	require.Equal(t, []byte{0xc1, 0x00, 0x00}, out[HeaderLength:HeaderLength+3])
}

func TestAssemble_Checksum(t *testing.T) {
	var g LabelGenerator
	out, err := helloAssembly(&g).Assemble()
	require.NoError(t, err)

	var sum uint32
	for off := 0; off < len(out); off += 4 {
		if off == 0x20 {
			continue
		}
		sum += binary.BigEndian.Uint32(out[off:])
	}
	require.Equal(t, binary.BigEndian.Uint32(out[0x20:]), sum)
}

func TestAssemble_Deterministic(t *testing.T) {
	var g1, g2 LabelGenerator
	out1, err := helloAssembly(&g1).Assemble()
	require.NoError(t, err)
	out2, err := helloAssembly(&g2).Assemble()
	require.NoError(t, err)
	require.Equal(t, out1, out2)
}

func TestAssemble_RAMOperands(t *testing.T) {
	var g LabelGenerator
	out, stats, err := helloAssembly(&g).AssembleWithStats()
	require.NoError(t, err)

	// setiosys 2 0 needs one payload byte since zero encodes as the null
	// mode. streamstr takes the string address, which ends up in ROM well
	// below 0x80.
	instrs := out[HeaderLength+3:]
	require.Equal(t, []byte{0x81, 0x49, 0x01, 0x02}, instrs[:4])
	require.Equal(t, byte(0x72), instrs[4])
	require.Equal(t, byte(0x01), instrs[5]&0x0f, "string address fits an 8-bit immediate")

	// add *counter 1 *counter: RAM offset 0 encodes as mode D with one byte.
	add := instrs[7:]
	require.Equal(t, byte(0x10), add[0])
	require.Equal(t, byte(0x1d), add[1])
	require.Equal(t, byte(0x0d), add[2])
	require.Equal(t, []byte{0x00, 0x01, 0x00}, add[3:6])

	// copy 7 *scratch+4: the zero region also resolves relative to RAM, and
	// scratch lies one page past RAM start.
	cp := add[6:]
	require.Equal(t, uint32(0x100), stats.ExtStart-stats.RAMStart)
	require.Equal(t, []byte{0x40, 0xe1, 0x07, 0x01, 0x04}, cp[:5])
}

func TestAssemble_BranchShrinkage(t *testing.T) {
	var g LabelGenerator
	start, target := g.Gen("start"), g.Gen("target")
	a := &Assembly{
		ROM: []Item{
			Mark(start),
			FnHeader(ArgsInLocals, 1),
			Jz(Local(0), target),
			Blob(make([]byte, 130)),
			Mark(target),
			Ret(Imm(0)),
		},
		StackSize: 256,
		StartFunc: start,
	}
	out, stats, err := a.AssembleWithStats()
	require.NoError(t, err)
	require.Greater(t, stats.Passes, 1)

	// c1 04 01 00 00, then jz: opcode, modes (frame8 | imm16<<4), local offset, 2-byte offset.
	jz := out[HeaderLength+5:]
	require.Equal(t, []byte{0x22, 0x29, 0x00, 0x00, 0x84}, jz[:5])

	// Glulx branches to the end of the instruction plus offset minus two.
	instrEnd := HeaderLength + 5 + 5
	require.Equal(t, instrEnd+0x84-2, instrEnd+130)
	require.Equal(t, []byte{0x31, 0x00}, out[instrEnd+130:instrEnd+132])
}

func TestAssemble_BackwardBranch(t *testing.T) {
	var g LabelGenerator
	start, top := g.Gen("start"), g.Gen("top")
	a := &Assembly{
		ROM:       []Item{Mark(start), FnHeader(ArgsInLocals, 0), Mark(top), Jump(top)},
		StackSize: 256,
		StartFunc: start,
	}
	out, err := a.Assemble()
	require.NoError(t, err)
	require.Equal(t, []byte{0x20, 0x01, 0xff}, out[HeaderLength+3:HeaderLength+6])
}

func TestAssemble_Errors(t *testing.T) {
	var g LabelGenerator
	start, dup, missing, odd := g.Gen("start"), g.Gen("dup"), g.Gen("missing"), g.Gen("odd")

	tests := []struct {
		name   string
		rom    []Item
		zero   []ZeroItem
		expErr error
	}{
		{
			name:   "duplicate",
			rom:    []Item{Mark(start), FnHeader(ArgsInLocals, 0), Mark(dup), Quit(), Mark(dup)},
			expErr: ErrDuplicateLabel,
		},
		{
			name:   "duplicate across zero region",
			rom:    []Item{Mark(start), FnHeader(ArgsInLocals, 0), Mark(dup), Quit()},
			zero:   []ZeroItem{ZeroMark(dup)},
			expErr: ErrDuplicateLabel,
		},
		{
			name:   "undefined",
			rom:    []Item{Mark(start), FnHeader(ArgsInLocals, 0), Jump(missing)},
			expErr: ErrUndefinedLabel,
		},
		{
			name:   "undefined start",
			rom:    []Item{FnHeader(ArgsInLocals, 0), Quit()},
			expErr: ErrUndefinedLabel,
		},
		{
			name: "alignment",
			rom: []Item{
				Mark(start), FnHeader(ArgsInLocals, 0),
				Aload(ImmLabelShift(odd, 0, 2), Imm(0), Discard()),
				Quit(),
				Blob([]byte{1}),
				Mark(odd),
			},
			expErr: ErrInsufficientAlignment,
		},
		{
			name:   "alignment in label ref",
			rom:    []Item{Mark(start), FnHeader(ArgsInLocals, 0), Quit(), Mark(odd), LabelRefShift(odd, 0, 1)},
			expErr: ErrInsufficientAlignment,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			a := &Assembly{ROM: tc.rom, Zero: tc.zero, StackSize: 256, StartFunc: start}
			_, err := a.Assemble()
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.expErr), err.Error())
		})
	}
}

func TestAssemble_Overflow(t *testing.T) {
	var g LabelGenerator
	start := g.Gen("start")
	a := &Assembly{
		ROM:       []Item{Mark(start), FnHeader(ArgsInLocals, 0), Quit()},
		Zero:      []ZeroItem{ZeroSpace(0xffffff00), ZeroSpace(0x1000)},
		StackSize: 256,
		StartFunc: start,
	}
	_, err := a.Assemble()
	require.ErrorIs(t, err, ErrOverflow)
}

func TestAssemble_DecodingTable(t *testing.T) {
	var g LabelGenerator
	start, table := g.Gen("start"), g.Gen("table")
	root := &DecodeNode{
		Kind:  NodeBranch,
		Left:  &DecodeNode{Kind: NodeStringTerminator},
		Right: &DecodeNode{Kind: NodeByte, Byte: 'a'},
	}
	a := &Assembly{
		ROM: []Item{
			Mark(start), FnHeader(ArgsInLocals, 0), Quit(),
			Mark(table), DecodingTable(root),
		},
		StackSize:     256,
		StartFunc:     start,
		DecodingTable: table,
	}
	out, err := a.Assemble()
	require.NoError(t, err)

	addr := binary.BigEndian.Uint32(out[0x1c:])
	require.Equal(t, uint32(HeaderLength+3+2), addr)
	tbl := out[addr:]
	require.Equal(t, uint32(12+9+1+2), binary.BigEndian.Uint32(tbl[0:]))
	require.Equal(t, uint32(3), binary.BigEndian.Uint32(tbl[4:]))
	rootAddr := binary.BigEndian.Uint32(tbl[8:])
	require.Equal(t, addr+12, rootAddr)
	require.Equal(t, byte(0x00), tbl[12])
	require.Equal(t, rootAddr+9, binary.BigEndian.Uint32(tbl[13:]))
	require.Equal(t, rootAddr+10, binary.BigEndian.Uint32(tbl[17:]))
	require.Equal(t, []byte{0x01, 0x02, 'a'}, tbl[21:24])
}

func TestDecodeNode_overflow(t *testing.T) {
	root := &DecodeNode{
		Kind:  NodeBranch,
		Left:  &DecodeNode{Kind: NodeByte, Byte: 'a'},
		Right: &DecodeNode{Kind: NodeStringTerminator},
	}

	out, err := root.appendTo(nil, 0x100, nil)
	require.NoError(t, err)
	require.Len(t, out, root.len())

	// The right child would start past the end of the address space.
	_, err = root.appendTo(nil, math.MaxUint32-10, nil)
	require.ErrorIs(t, err, ErrOverflow)
}
