package compiler

import (
	"math/bits"

	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

// TrapCode identifies why a compiled program stopped. It is the operand of the
// debugtrap the trap handler executes.
type TrapCode uint32

const (
	TrapUnreachable TrapCode = iota
	TrapIntegerOverflow
	TrapIntegerDivideByZero
	TrapInvalidConversionToInteger
	TrapOutOfBoundsMemoryAccess
	TrapIndirectCallTypeMismatch
	TrapOutOfBoundsTableAccess
	TrapUndefinedElement
	TrapUninitializedElement
	TrapCallStackExhausted
	trapCodeCount
)

var trapMessages = [trapCodeCount]string{
	TrapUnreachable:                "unreachable",
	TrapIntegerOverflow:            "integer overflow",
	TrapIntegerDivideByZero:        "integer divide by zero",
	TrapInvalidConversionToInteger: "invalid conversion to integer",
	TrapOutOfBoundsMemoryAccess:    "out of bounds memory access",
	TrapIndirectCallTypeMismatch:   "indirect call type mismatch",
	TrapOutOfBoundsTableAccess:     "out of bounds table access",
	TrapUndefinedElement:           "undefined element",
	TrapUninitializedElement:       "uninitialized element",
	TrapCallStackExhausted:         "call stack exhausted",
}

func (t TrapCode) String() string {
	if t < trapCodeCount {
		return trapMessages[t]
	}
	return "unknown trap"
}

// runtime holds the labels of the support routines every story file carries.
type runtime struct {
	trap  glulx.Label
	traps [trapCodeCount]glulx.Label

	trapUnreachable              glulx.Label
	trapIntegerOverflow          glulx.Label
	trapIntegerDivideByZero      glulx.Label
	trapInvalidConversion        glulx.Label
	trapOutOfBoundsMemory        glulx.Label
	trapIndirectCallTypeMismatch glulx.Label
	trapOutOfBoundsTable         glulx.Label
	trapUndefinedElement         glulx.Label
	trapUninitializedElement     glulx.Label
	trapCallStackExhausted       glulx.Label

	swap, swaps                                   glulx.Label
	checkaddr, checkglkaddr                       glulx.Label
	checkstr, checkunistr                         glulx.Label
	memload8, memload16, memload32, memload64     glulx.Label
	memstore8, memstore16, memstore32, memstore64 glulx.Label
	swaparray, swapglkarray, swapunistr           glulx.Label

	clzTable, ctzTable, popcntTable glulx.Label
	clz, ctz                        glulx.Label
	divmodu64                       glulx.Label
	u32tod, u64tod, u64tof          glulx.Label
	dtou32, dtou64                  glulx.Label
	rotl64                          glulx.Label
	f64TruncS, f64TruncU            glulx.Label
	f64ToI64S, f64ToI64U            glulx.Label

	memoryGrow, memoryInit, memoryCopy, memoryFill glulx.Label
	tableGrow, tableFill, tableInitOrCopy          glulx.Label

	// ops maps instructions lowered as a plain call to their routine.
	ops map[wasm.Opcode]glulx.Label
	// atomics are the read-modify-write routines still to be emitted.
	atomics []wasm.Opcode
}

func newRuntime(gen *glulx.LabelGenerator) *runtime {
	rt := &runtime{trap: gen.Gen("rt_trap"), ops: map[wasm.Opcode]glulx.Label{}}
	for i := range rt.traps {
		rt.traps[i] = gen.Gen("trap_" + TrapCode(i).String())
	}
	rt.trapUnreachable = rt.traps[TrapUnreachable]
	rt.trapIntegerOverflow = rt.traps[TrapIntegerOverflow]
	rt.trapIntegerDivideByZero = rt.traps[TrapIntegerDivideByZero]
	rt.trapInvalidConversion = rt.traps[TrapInvalidConversionToInteger]
	rt.trapOutOfBoundsMemory = rt.traps[TrapOutOfBoundsMemoryAccess]
	rt.trapIndirectCallTypeMismatch = rt.traps[TrapIndirectCallTypeMismatch]
	rt.trapOutOfBoundsTable = rt.traps[TrapOutOfBoundsTableAccess]
	rt.trapUndefinedElement = rt.traps[TrapUndefinedElement]
	rt.trapUninitializedElement = rt.traps[TrapUninitializedElement]
	rt.trapCallStackExhausted = rt.traps[TrapCallStackExhausted]

	for _, l := range []*glulx.Label{
		&rt.swap, &rt.swaps, &rt.checkaddr, &rt.checkglkaddr, &rt.checkstr, &rt.checkunistr,
		&rt.memload8, &rt.memload16, &rt.memload32, &rt.memload64,
		&rt.memstore8, &rt.memstore16, &rt.memstore32, &rt.memstore64,
		&rt.swaparray, &rt.swapglkarray, &rt.swapunistr,
		&rt.clzTable, &rt.ctzTable, &rt.popcntTable, &rt.clz, &rt.ctz,
		&rt.divmodu64, &rt.u32tod, &rt.u64tod, &rt.u64tof, &rt.dtou32, &rt.dtou64, &rt.rotl64,
		&rt.f64TruncS, &rt.f64TruncU, &rt.f64ToI64S, &rt.f64ToI64U,
		&rt.memoryGrow, &rt.memoryInit, &rt.memoryCopy, &rt.memoryFill,
		&rt.tableGrow, &rt.tableFill, &rt.tableInitOrCopy,
	} {
		*l = gen.Gen("rt")
	}
	return rt
}

// op allocates the routine for an instruction lowered as a call.
func (c *compilation) op(op wasm.Opcode) glulx.Label {
	l, ok := c.rt.ops[op]
	if !ok {
		l = c.gen.Gen("rt_" + wasm.InstructionName(op))
		c.rt.ops[op] = l
	}
	return l
}

// routine emits a function taking its arguments in locals.
func (c *compilation) routine(l glulx.Label, locals uint32, body ...glulx.Item) {
	c.emit(glulx.Mark(l), glulx.FnHeader(glulx.ArgsInLocals, locals))
	c.emit(body...)
}

// Shorthand for routine bodies.
var (
	lc   = glulx.Local
	slc  = glulx.StoreLocal
	pop  = glulx.Pop
	push = glulx.Push
	imm  = glulx.Imm
	uimm = glulx.Uimm
	ret0 = glulx.Ret(glulx.Imm(0))
	retp = glulx.Ret(glulx.Pop())
)

func retTrue(i glulx.Instr) glulx.Instr  { return i.Returning(true) }
func retFalse(i glulx.Instr) glulx.Instr { return i.Returning(false) }

// genRuntime emits every support routine along with the trap strings.
func (c *compilation) genRuntime() {
	c.genTraps()
	c.genMemoryAccess()
	c.genI32Routines()
	c.genI64Routines()
	c.genFloatRoutines()
	c.genConversions()
	c.genBulkMemory()
	c.genTableRoutines()
}

// genTraps emits the trap handler. When a Glk output stream is current it prints
// the reason first, then raises a debugtrap with the code and quits.
func (c *compilation) genTraps() {
	rt := c.rt
	for code, l := range rt.traps {
		c.emit(glulx.Mark(l), glulx.Callfi(glulx.ImmLabel(rt.trap), uimm(uint32(code)), glulx.Discard()))
	}

	silent := c.gen.Gen("trap_silent")
	c.routine(rt.trap, 1,
		// glk_stream_get_current
		glulx.Glk(uimm(0x48), imm(0), push()),
		glulx.Jz(pop(), silent),
		glulx.Aload(glulx.ImmLabel(c.layout.trapTable), lc(0), push()),
		glulx.Streamstr(pop()),
		glulx.Streamchar(uimm('\n')),
		glulx.Mark(silent),
		glulx.Debugtrap(lc(0)),
		glulx.Quit(),
	)

	strs := make([]glulx.Label, trapCodeCount)
	c.emit(glulx.Align(4), glulx.Mark(c.layout.trapTable))
	for i := range strs {
		strs[i] = c.gen.Gen("trap_string")
		c.emit(glulx.LabelRef(strs[i]))
	}
	for i, l := range strs {
		c.emit(glulx.Mark(l), glulx.Str(glulx.Latin1("Fatal error: "+trapMessages[i])))
	}
}

// genMemoryAccess emits the bounds-checked, byte-swapping loads and stores of
// linear memory. Memory is little-endian and Glulx is big-endian.
func (c *compilation) genMemoryAccess() {
	rt := c.rt
	mem := c.layout.mem
	oob := rt.trapOutOfBoundsMemory

	c.routine(rt.swap, 1,
		glulx.Shiftl(lc(0), imm(16), push()),
		glulx.Ushiftr(lc(0), imm(16), push()),
		glulx.Bitor(pop(), pop(), slc(0)),
		glulx.Bitand(lc(0), uimm(0xff00ff00), push()),
		glulx.Ushiftr(pop(), imm(8), push()),
		glulx.Bitand(lc(0), uimm(0x00ff00ff), push()),
		glulx.Shiftl(pop(), imm(8), push()),
		glulx.Bitor(pop(), pop(), push()),
		retp,
	)
	c.routine(rt.swaps, 1,
		glulx.Bitand(lc(0), uimm(0xff), push()),
		glulx.Shiftl(pop(), imm(8), push()),
		glulx.Ushiftr(lc(0), imm(8), push()),
		glulx.Bitand(pop(), uimm(0xff), push()),
		glulx.Bitor(pop(), pop(), push()),
		retp,
	)

	// checkaddr(addr, offset, size) returns addr+offset if size bytes there
	// lie within memory.
	c.routine(rt.checkaddr, 5,
		glulx.Jgtu(lc(2), glulx.Deref(mem.curSize), oob),
		glulx.Sub(glulx.Deref(mem.curSize), lc(2), slc(3)),
		glulx.Add(lc(0), lc(1), slc(4)),
		glulx.Jltu(lc(4), lc(0), oob),
		glulx.Jgtu(lc(4), lc(3), oob),
		glulx.Ret(lc(4)),
	)
	// checkglkaddr(addr, size) is checkaddr for the Glk area.
	c.routine(rt.checkglkaddr, 2,
		glulx.Jgtu(lc(1), uimm(c.layout.glk.size), oob),
		glulx.Sub(uimm(c.layout.glk.size), lc(1), push()),
		glulx.Jgtu(lc(0), pop(), oob),
		ret0,
	)
	// checkstr(addr) returns the length of the NUL-terminated string at addr.
	strLoop, strDone := c.gen.Gen("checkstr_loop"), c.gen.Gen("checkstr_done")
	c.routine(rt.checkstr, 3,
		glulx.Jgeu(lc(0), glulx.Deref(mem.curSize), oob),
		glulx.Sub(glulx.Deref(mem.curSize), lc(0), slc(1)),
		glulx.Mark(strLoop),
		glulx.Jgeu(lc(2), lc(1), oob),
		glulx.Add(lc(0), lc(2), push()),
		glulx.Aloadb(glulx.ImmLabel(mem.addr), pop(), push()),
		glulx.Jz(pop(), strDone),
		glulx.Add(lc(2), imm(1), slc(2)),
		glulx.Jump(strLoop),
		glulx.Mark(strDone),
		glulx.Ret(lc(2)),
	)
	// checkunistr(addr) returns the length in characters of the zero-word
	// terminated string at addr.
	uniLoop, uniDone := c.gen.Gen("checkunistr_loop"), c.gen.Gen("checkunistr_done")
	c.routine(rt.checkunistr, 3,
		glulx.Jgeu(lc(0), glulx.Deref(mem.curSize), oob),
		glulx.Sub(glulx.Deref(mem.curSize), lc(0), slc(1)),
		glulx.Ushiftr(lc(1), imm(2), slc(1)),
		glulx.Mark(uniLoop),
		glulx.Jgeu(lc(2), lc(1), oob),
		glulx.Shiftl(lc(2), imm(2), push()),
		glulx.Add(pop(), lc(0), push()),
		glulx.Aload(pop(), glulx.ImmLabelShift(mem.addr, 0, 2), push()),
		glulx.Jz(pop(), uniDone),
		glulx.Add(lc(2), imm(1), slc(2)),
		glulx.Jump(uniLoop),
		glulx.Mark(uniDone),
		glulx.Ret(lc(2)),
	)

	word := glulx.ImmLabelShift(mem.addr, 0, 2)
	checked := func(size uint32, out glulx.Store) glulx.Instr {
		return glulx.Callfiii(glulx.ImmLabel(rt.checkaddr), lc(1), lc(0), uimm(size), out)
	}
	// Loads take (offset, addr).
	c.routine(rt.memload64, 3,
		checked(8, slc(2)),
		glulx.Aload(lc(2), glulx.ImmLabelShift(mem.addr, 4, 2), push()),
		glulx.Callfi(glulx.ImmLabel(rt.swap), pop(), glulx.StoreLabel(c.layout.hiReturn.addr)),
		glulx.Aload(lc(2), word, push()),
		glulx.Tailcall(glulx.ImmLabel(rt.swap), imm(1)),
	)
	c.routine(rt.memload32, 2,
		checked(4, push()),
		glulx.Aload(pop(), word, push()),
		glulx.Tailcall(glulx.ImmLabel(rt.swap), imm(1)),
	)
	c.routine(rt.memload16, 2,
		checked(2, push()),
		glulx.Aloads(pop(), glulx.ImmLabelShift(mem.addr, 0, 1), push()),
		glulx.Tailcall(glulx.ImmLabel(rt.swaps), imm(1)),
	)
	c.routine(rt.memload8, 2,
		checked(1, push()),
		glulx.Aloadb(pop(), glulx.ImmLabel(mem.addr), push()),
		retp,
	)

	// Stores take (offset, value, addr), and for 64 bits (offset, hi, lo,
	// addr).
	c.routine(rt.memstore64, 5,
		glulx.Callfiii(glulx.ImmLabel(rt.checkaddr), lc(3), lc(0), uimm(8), slc(4)),
		glulx.Callfi(glulx.ImmLabel(rt.swap), lc(2), push()),
		glulx.Astore(lc(4), word, pop()),
		glulx.Callfi(glulx.ImmLabel(rt.swap), lc(1), push()),
		glulx.Astore(lc(4), glulx.ImmLabelShift(mem.addr, 4, 2), pop()),
		ret0,
	)
	storeChecked := func(size uint32) glulx.Instr {
		return glulx.Callfiii(glulx.ImmLabel(rt.checkaddr), lc(2), lc(0), uimm(size), push())
	}
	c.routine(rt.memstore32, 3,
		glulx.Callfi(glulx.ImmLabel(rt.swap), lc(1), push()),
		storeChecked(4),
		glulx.Astore(pop(), word, pop()),
		ret0,
	)
	c.routine(rt.memstore16, 3,
		glulx.Callfi(glulx.ImmLabel(rt.swaps), lc(1), push()),
		storeChecked(2),
		glulx.Astores(pop(), glulx.ImmLabelShift(mem.addr, 0, 1), pop()),
		ret0,
	)
	c.routine(rt.memstore8, 3,
		storeChecked(1),
		glulx.Astoreb(pop(), glulx.ImmLabel(mem.addr), lc(1)),
		ret0,
	)

	// swaparray(base, len) byte-swaps len words of memory in place, and
	// swapglkarray does the same in the Glk area. Both are their own inverse.
	for _, a := range []struct {
		l    glulx.Label
		base glulx.Label
	}{{rt.swaparray, mem.addr}, {rt.swapglkarray, c.layout.glk.addr}} {
		loop, done := c.gen.Gen("swaparray_loop"), c.gen.Gen("swaparray_done")
		w := glulx.ImmLabelShift(a.base, 0, 2)
		c.routine(a.l, 2,
			glulx.Mark(loop),
			glulx.Jz(lc(1), done),
			glulx.Aload(lc(0), w, push()),
			glulx.Callfi(glulx.ImmLabel(rt.swap), pop(), push()),
			glulx.Astore(lc(0), w, pop()),
			glulx.Add(lc(0), imm(4), slc(0)),
			glulx.Sub(lc(1), imm(1), slc(1)),
			glulx.Jump(loop),
			glulx.Mark(done),
			ret0,
		)
	}
	loop, done := c.gen.Gen("swapunistr_loop"), c.gen.Gen("swapunistr_done")
	c.routine(rt.swapunistr, 2,
		glulx.Mark(loop),
		glulx.Aload(lc(0), word, slc(1)),
		glulx.Jz(lc(1), done),
		glulx.Callfi(glulx.ImmLabel(rt.swap), lc(1), push()),
		glulx.Astore(lc(0), word, pop()),
		glulx.Add(lc(0), imm(4), slc(0)),
		glulx.Jump(loop),
		glulx.Mark(done),
		ret0,
	)
}

// genI32Routines emits shifts, divisions, bit counts and comparisons on i32.
// Binary routines take (y, x) for x op y.
func (c *compilation) genI32Routines() {
	rt := c.rt
	divZero := rt.trapIntegerDivideByZero

	divsOK := c.gen.Gen("divs_ok")
	c.routine(c.op(wasm.OpcodeI32DivS), 2,
		glulx.Jz(lc(0), divZero),
		glulx.Jne(lc(0), imm(-1), divsOK),
		glulx.Jeq(lc(1), uimm(0x80000000), rt.trapIntegerOverflow),
		glulx.Mark(divsOK),
		glulx.Div(lc(1), lc(0), push()),
		retp,
	)

	remsOK := c.gen.Gen("rems_ok")
	c.routine(c.op(wasm.OpcodeI32RemS), 2,
		glulx.Jz(lc(0), divZero),
		glulx.Jne(lc(0), imm(-1), remsOK),
		ret0,
		glulx.Mark(remsOK),
		glulx.Mod(lc(1), lc(0), push()),
		retp,
	)

	divu := c.op(wasm.OpcodeI32DivU)
	small, one, retq := c.gen.Gen("divu_small"), c.gen.Gen("divu_one"), c.gen.Gen("divu_q")
	c.routine(divu, 7,
		glulx.Jz(lc(0), divZero),
		retFalse(glulx.Jgtu(lc(0), lc(1), glulx.Label{})),
		retTrue(glulx.Jlt(lc(0), imm(0), glulx.Label{})),
		glulx.Jge(lc(1), imm(0), small),
		glulx.Jeq(lc(0), imm(1), one),
		// n >= 2^31 and 1 < d < 2^31. Split n as 0x7fffffff + 1 + (n & 0x7fffffff)
		// and divide both parts, fixing up the quotient from the remainders.
		glulx.Bitand(lc(1), uimm(0x7fffffff), slc(2)),
		glulx.Div(uimm(0x7fffffff), lc(0), slc(3)),
		glulx.Mod(uimm(0x7fffffff), lc(0), slc(4)),
		glulx.Div(lc(2), lc(0), slc(5)),
		glulx.Mod(lc(2), lc(0), slc(6)),
		glulx.Add(lc(3), lc(5), slc(3)),
		glulx.Add(lc(4), lc(6), push()),
		glulx.Add(pop(), imm(1), push()),
		glulx.Jltu(pop(), lc(0), retq),
		glulx.Add(lc(3), imm(1), push()),
		retp,
		glulx.Mark(retq),
		glulx.Ret(lc(3)),
		glulx.Mark(small),
		glulx.Div(lc(1), lc(0), push()),
		retp,
		glulx.Mark(one),
		glulx.Ret(lc(1)),
	)
	c.routine(c.op(wasm.OpcodeI32RemU), 2,
		glulx.Callfii(glulx.ImmLabel(divu), lc(0), lc(1), push()),
		glulx.Mul(pop(), lc(0), push()),
		glulx.Sub(lc(1), pop(), push()),
		retp,
	)

	// Shifts take (count, x).
	shift := func(op wasm.Opcode, f func(l1, l2 glulx.Load, s glulx.Store) glulx.Instr) {
		c.routine(c.op(op), 2,
			glulx.Bitand(lc(0), imm(31), slc(0)),
			f(lc(1), lc(0), push()),
			retp,
		)
	}
	shift(wasm.OpcodeI32Shl, glulx.Shiftl)
	shift(wasm.OpcodeI32ShrS, glulx.Sshiftr)
	shift(wasm.OpcodeI32ShrU, glulx.Ushiftr)
	rotate := func(op wasm.Opcode, first, second func(l1, l2 glulx.Load, s glulx.Store) glulx.Instr) {
		c.routine(c.op(op), 2,
			glulx.Bitand(lc(0), imm(31), slc(0)),
			first(lc(1), lc(0), push()),
			glulx.Sub(imm(32), lc(0), push()),
			second(lc(1), pop(), push()),
			glulx.Bitor(pop(), pop(), push()),
			retp,
		)
	}
	rotate(wasm.OpcodeI32Rotl, glulx.Shiftl, glulx.Ushiftr)
	rotate(wasm.OpcodeI32Rotr, glulx.Ushiftr, glulx.Shiftl)

	c.genBitCounts()

	c.routine(c.op(wasm.OpcodeI32Eqz), 1,
		retTrue(glulx.Jz(lc(0), glulx.Label{})),
		ret0,
	)
	cmp := func(op wasm.Opcode, j func(l1, l2 glulx.Load, target glulx.Label) glulx.Instr) {
		c.routine(c.op(op), 2,
			retTrue(j(lc(1), lc(0), glulx.Label{})),
			ret0,
		)
	}
	cmp(wasm.OpcodeI32Eq, glulx.Jeq)
	cmp(wasm.OpcodeI32Ne, glulx.Jne)
	cmp(wasm.OpcodeI32LtS, glulx.Jlt)
	cmp(wasm.OpcodeI32LtU, glulx.Jltu)
	cmp(wasm.OpcodeI32GtS, glulx.Jgt)
	cmp(wasm.OpcodeI32GtU, glulx.Jgtu)
	cmp(wasm.OpcodeI32LeS, glulx.Jle)
	cmp(wasm.OpcodeI32LeU, glulx.Jleu)
	cmp(wasm.OpcodeI32GeS, glulx.Jge)
	cmp(wasm.OpcodeI32GeU, glulx.Jgeu)
}

// genBitCounts emits clz, ctz and popcnt on i32, which look bytes up in
// tables.
func (c *compilation) genBitCounts() {
	rt := c.rt
	var clz8, ctz8, pop8 [256]byte
	for i := range clz8 {
		clz8[i] = byte(bits.LeadingZeros8(uint8(i)))
		ctz8[i] = byte(bits.TrailingZeros8(uint8(i)))
		pop8[i] = byte(bits.OnesCount8(uint8(i)))
	}
	c.emit(
		glulx.Mark(rt.clzTable), glulx.Blob(clz8[:]),
		glulx.Mark(rt.ctzTable), glulx.Blob(ctz8[:]),
		glulx.Mark(rt.popcntTable), glulx.Blob(pop8[:]),
	)

	// clz scans from the top byte down. A byte is only looked up once every
	// byte above it is zero, so it needs no mask.
	var body []glulx.Item
	for i, sh := range []int32{24, 16, 8} {
		next := c.gen.Gen("clz_next")
		body = append(body,
			glulx.Ushiftr(lc(0), imm(sh), slc(1)),
			glulx.Jz(lc(1), next),
			glulx.Aloadb(glulx.ImmLabel(rt.clzTable), lc(1), push()),
			glulx.Add(pop(), imm(int32(8*i)), push()),
			retp,
			glulx.Mark(next),
		)
	}
	body = append(body,
		glulx.Aloadb(glulx.ImmLabel(rt.clzTable), lc(0), push()),
		glulx.Add(pop(), imm(24), push()),
		retp,
	)
	c.routine(rt.clz, 2, body...)
	c.rt.ops[wasm.OpcodeI32Clz] = rt.clz

	body = nil
	for i, sh := range []int32{0, 8, 16} {
		next := c.gen.Gen("ctz_next")
		body = append(body,
			glulx.Ushiftr(lc(0), imm(sh), push()),
			glulx.Bitand(pop(), uimm(0xff), slc(1)),
			glulx.Jz(lc(1), next),
			glulx.Aloadb(glulx.ImmLabel(rt.ctzTable), lc(1), push()),
			glulx.Add(pop(), imm(int32(8*i)), push()),
			retp,
			glulx.Mark(next),
		)
	}
	body = append(body,
		glulx.Ushiftr(lc(0), imm(24), push()),
		glulx.Aloadb(glulx.ImmLabel(rt.ctzTable), pop(), push()),
		glulx.Add(pop(), imm(24), push()),
		retp,
	)
	c.routine(rt.ctz, 2, body...)
	c.rt.ops[wasm.OpcodeI32Ctz] = rt.ctz

	popcnt := c.op(wasm.OpcodeI32Popcnt)
	body = []glulx.Item{
		glulx.Bitand(lc(0), uimm(0xff), push()),
		glulx.Aloadb(glulx.ImmLabel(rt.popcntTable), pop(), push()),
	}
	for _, sh := range []int32{8, 16} {
		body = append(body,
			glulx.Ushiftr(lc(0), imm(sh), push()),
			glulx.Bitand(pop(), uimm(0xff), push()),
			glulx.Aloadb(glulx.ImmLabel(rt.popcntTable), pop(), push()),
			glulx.Add(pop(), pop(), push()),
		)
	}
	body = append(body,
		glulx.Ushiftr(lc(0), imm(24), push()),
		glulx.Aloadb(glulx.ImmLabel(rt.popcntTable), pop(), push()),
		glulx.Add(pop(), pop(), push()),
		retp,
	)
	c.routine(popcnt, 1, body...)
}
