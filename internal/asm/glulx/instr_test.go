package glulx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testTable(g *LabelGenerator) (*labelTable, Label, Label, Label) {
	rom, ram, aligned := g.Gen("rom"), g.Gen("ram"), g.Gen("aligned")
	return &labelTable{
		positions: map[Label]uint32{rom: 0x1234, ram: 0x10010, aligned: 0x2000},
		ramStart:  0x10000,
	}, rom, ram, aligned
}

func TestLoad_resolve(t *testing.T) {
	var g LabelGenerator
	table, rom, ram, aligned := testTable(&g)

	tests := []struct {
		name     string
		load     Load
		expected rawOperand
	}{
		{name: "pop", load: Pop(), expected: rawOperand{mode: modeStack}},
		{name: "zero", load: Imm(0), expected: rawOperand{mode: modeNull}},
		{name: "imm8", load: Imm(-1), expected: rawOperand{mode: modeImm8, value: 0xffffffff}},
		{name: "imm16", load: Imm(200), expected: rawOperand{mode: modeImm16, value: 200}},
		{name: "imm32", load: Uimm(0x80000000), expected: rawOperand{mode: modeImm32, value: 0x80000000}},
		{name: "frame8", load: Local(3), expected: rawOperand{mode: modeFrame8, value: 12}},
		{name: "frame16", load: Local(300), expected: rawOperand{mode: modeFrame16, value: 1200}},
		{name: "rom", load: Deref(rom), expected: rawOperand{mode: modeAddr16, value: 0x1234}},
		{name: "rom offset", load: DerefOff(rom, -0x1234), expected: rawOperand{mode: modeAddr8, value: 0}},
		{name: "ram", load: Deref(ram), expected: rawOperand{mode: modeRAM8, value: 0x10}},
		{name: "ram offset", load: DerefOff(ram, 0x100), expected: rawOperand{mode: modeRAM16, value: 0x110}},
		{name: "imm label", load: ImmLabel(ram), expected: rawOperand{mode: modeImm32, value: 0x10010}},
		{name: "shifted imm label", load: ImmLabelShift(aligned, 0, 4), expected: rawOperand{mode: modeImm16, value: 0x200}},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			actual, err := tc.load.resolve(0, table)
			require.NoError(t, err)
			require.Equal(t, tc.expected, actual)
			require.LessOrEqual(t, actual.len(), tc.load.worstLen())
		})
	}
}

func TestStore_resolve(t *testing.T) {
	var g LabelGenerator
	table, rom, ram, _ := testTable(&g)

	tests := []struct {
		name     string
		store    Store
		expected rawOperand
	}{
		{name: "push", store: Push(), expected: rawOperand{mode: modeStack}},
		{name: "discard", store: Discard(), expected: rawOperand{mode: modeNull}},
		{name: "local", store: StoreLocal(1), expected: rawOperand{mode: modeFrame8, value: 4}},
		{name: "frame offset", store: StoreFrame(0x100), expected: rawOperand{mode: modeFrame16, value: 0x100}},
		{name: "rom", store: StoreLabel(rom), expected: rawOperand{mode: modeAddr16, value: 0x1234}},
		{name: "ram", store: StoreLabelOff(ram, 4), expected: rawOperand{mode: modeRAM8, value: 0x14}},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			actual, err := tc.store.resolve(0, table)
			require.NoError(t, err)
			require.Equal(t, tc.expected, actual)
			require.LessOrEqual(t, actual.len(), tc.store.worstLen())
		})
	}
}

func TestStore_Symmetric(t *testing.T) {
	var g LabelGenerator
	l := g.Gen("g")

	load, ok := StoreLabelOff(l, 4).Symmetric()
	require.True(t, ok)
	require.Equal(t, DerefOff(l, 4), load)

	load, ok = StoreLocal(2).Symmetric()
	require.True(t, ok)
	require.Equal(t, Local(2), load)

	_, ok = Push().Symmetric()
	require.False(t, ok)
	_, ok = Discard().Symmetric()
	require.False(t, ok)
}

func TestBranchOffset(t *testing.T) {
	tests := []struct {
		name     string
		target   uint32
		pos      uint32
		expected rawOperand
	}{
		{name: "next instruction", target: 101, pos: 100, expected: rawOperand{mode: modeImm8, value: 2}},
		{name: "self loop", target: 98, pos: 100, expected: rawOperand{mode: modeImm8, value: 0xffffffff}},
		{name: "far forward", target: 1100, pos: 100, expected: rawOperand{mode: modeImm16, value: 1000}},
		{name: "very far", target: 0x100000, pos: 100, expected: rawOperand{mode: modeImm32, value: 0x100000 - 100 - 2}},
		// An 8-bit offset would be 1 and a 16-bit offset 0, both of which
		// Glulx reads as returns.
		{name: "avoid return codes", target: 100, pos: 100, expected: rawOperand{mode: modeImm32, value: 0xfffffffe}},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			actual := branchOffset(tc.target, tc.pos)
			require.Equal(t, tc.expected, actual)
			// The branch lands where it should: end of operand + offset - 2.
			end := int64(tc.pos) + int64(actual.len())
			require.Equal(t, int64(tc.target), end+int64(int32(actual.value))-2)
		})
	}
}

func TestInstr_worstLen(t *testing.T) {
	var g LabelGenerator
	table, rom, ram, aligned := testTable(&g)

	tests := []Instr{
		Nop(),
		Add(Pop(), Imm(1), Push()),
		Copy(Deref(ram), StoreLabel(rom)),
		Callfiii(ImmLabel(rom), Local(0), Local(1), Local(2), Discard()),
		Jeq(Pop(), Imm(0x12345), rom),
		Jdeq(Local(0), Local(1), Local(2), Local(3), Imm(0), Imm(0), ram),
		Aload(Pop(), ImmLabelShift(aligned, 0, 2), Push()),
		Linearsearch(Pop(), Pop(), Pop(), Pop(), Pop(), Pop(), Pop(), Push()),
		Glk(Uimm(0x12a), Imm(3), Push()),
	}

	for _, instr := range tests {
		for _, pos := range []uint32{0x100, 0x1230, 0x10000} {
			n, err := instr.resolvedLen(pos, table)
			require.NoError(t, err)
			require.LessOrEqual(t, n, instr.worstLen(), instr.String())
			buf, err := instr.appendTo(nil, pos, table)
			require.NoError(t, err)
			require.Len(t, buf, n)
		}
	}
}

func TestInstr_encoding(t *testing.T) {
	tests := []struct {
		name     string
		instr    Instr
		expected []byte
	}{
		{name: "one-byte opcode", instr: Add(Pop(), Imm(1), Push()), expected: []byte{0x10, 0x18, 0x08, 0x01}},
		{name: "two-byte opcode", instr: Gestalt(Imm(4), Imm(2), Push()), expected: []byte{0x81, 0x00, 0x11, 0x08, 0x04, 0x02}},
		{name: "no operands", instr: Stkswap(), expected: []byte{0x52}},
		{name: "frame addr", instr: Copy(Local(2), StoreLocal(300)), expected: []byte{0x40, 0xa9, 0x08, 0x04, 0xb0}},
		{name: "return true", instr: Jz(Local(0), Label{}).Returning(true), expected: []byte{0x22, 0x19, 0x00, 0x01}},
		{name: "return false", instr: Jeq(Pop(), Imm(3), Label{}).Returning(false), expected: []byte{0x24, 0x18, 0x00, 0x03}},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			buf, err := tc.instr.appendTo(nil, 0x100, &labelTable{positions: map[Label]uint32{}})
			require.NoError(t, err)
			require.Equal(t, tc.expected, buf)
		})
	}
}

func TestOpcode_encodedLen(t *testing.T) {
	require.Equal(t, 1, OpAdd.encodedLen())
	require.Equal(t, 2, OpGlk.encodedLen())
	require.Equal(t, 2, OpJdisinf.encodedLen())
	require.Equal(t, 4, Opcode(0x4000).encodedLen())
	require.Equal(t, []byte{0xc0, 0x00, 0x40, 0x00}, Opcode(0x4000).appendTo(nil))
	require.Equal(t, "callfiii", OpCallfiii.Name())
}

func TestNewInstr_panicsOnBadSignature(t *testing.T) {
	require.Panics(t, func() { newInstr(OpAdd, Pop(), Pop()) })
	require.Panics(t, func() { newInstr(OpAdd, Pop(), Push(), Push()) })
	require.Panics(t, func() { newInstr(OpJump, Pop()) })
	require.Panics(t, func() { newInstr(OpAdd, BranchReturn(true), Pop(), Push()) })
	require.Panics(t, func() { Add(Pop(), Pop(), Push()).Returning(true) })
}

func TestFnHeader(t *testing.T) {
	tests := []struct {
		locals   uint32
		expected []byte
	}{
		{locals: 0, expected: []byte{0xc1, 0, 0}},
		{locals: 3, expected: []byte{0xc1, 4, 3, 0, 0}},
		{locals: 255, expected: []byte{0xc1, 4, 255, 0, 0}},
		{locals: 300, expected: []byte{0xc1, 4, 255, 4, 45, 0, 0}},
	}

	for _, tt := range tests {
		tc := tt
		item := FnHeader(ArgsInLocals, tc.locals)
		buf, err := item.appendTo(nil, 0, nil)
		require.NoError(t, err)
		require.Equal(t, tc.expected, buf)
		require.Equal(t, len(tc.expected), item.worstLen())
	}
}
