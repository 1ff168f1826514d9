package compiler

import (
	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

type extension byte

const (
	zeroExtend extension = iota
	signExtend8
	signExtend16
	// noExtend is a load as wide as its result.
	noExtend
)

type memLoad struct {
	width  uint32
	ext    extension
	result wasm.ValueType
}

var memLoads = map[wasm.Opcode]memLoad{
	wasm.OpcodeI32Load:    {4, noExtend, wasm.ValueTypeI32},
	wasm.OpcodeI64Load:    {8, noExtend, wasm.ValueTypeI64},
	wasm.OpcodeF32Load:    {4, noExtend, wasm.ValueTypeF32},
	wasm.OpcodeF64Load:    {8, noExtend, wasm.ValueTypeF64},
	wasm.OpcodeI32Load8S:  {1, signExtend8, wasm.ValueTypeI32},
	wasm.OpcodeI32Load8U:  {1, zeroExtend, wasm.ValueTypeI32},
	wasm.OpcodeI32Load16S: {2, signExtend16, wasm.ValueTypeI32},
	wasm.OpcodeI32Load16U: {2, zeroExtend, wasm.ValueTypeI32},
	wasm.OpcodeI64Load8S:  {1, signExtend8, wasm.ValueTypeI64},
	wasm.OpcodeI64Load8U:  {1, zeroExtend, wasm.ValueTypeI64},
	wasm.OpcodeI64Load16S: {2, signExtend16, wasm.ValueTypeI64},
	wasm.OpcodeI64Load16U: {2, zeroExtend, wasm.ValueTypeI64},
	wasm.OpcodeI64Load32S: {4, noExtend, wasm.ValueTypeI64},
	wasm.OpcodeI64Load32U: {4, zeroExtend, wasm.ValueTypeI64},

	// Without threads an atomic access is a plain one.
	wasm.OpcodeI32AtomicLoad:    {4, noExtend, wasm.ValueTypeI32},
	wasm.OpcodeI64AtomicLoad:    {8, noExtend, wasm.ValueTypeI64},
	wasm.OpcodeI32AtomicLoad8U:  {1, zeroExtend, wasm.ValueTypeI32},
	wasm.OpcodeI32AtomicLoad16U: {2, zeroExtend, wasm.ValueTypeI32},
	wasm.OpcodeI64AtomicLoad8U:  {1, zeroExtend, wasm.ValueTypeI64},
	wasm.OpcodeI64AtomicLoad16U: {2, zeroExtend, wasm.ValueTypeI64},
	wasm.OpcodeI64AtomicLoad32U: {4, zeroExtend, wasm.ValueTypeI64},
}

type memStore struct {
	width uint32
	// wide is set when the operand is two words.
	wide bool
}

var memStores = map[wasm.Opcode]memStore{
	wasm.OpcodeI32Store:   {4, false},
	wasm.OpcodeI64Store:   {8, true},
	wasm.OpcodeF32Store:   {4, false},
	wasm.OpcodeF64Store:   {8, true},
	wasm.OpcodeI32Store8:  {1, false},
	wasm.OpcodeI32Store16: {2, false},
	wasm.OpcodeI64Store8:  {1, true},
	wasm.OpcodeI64Store16: {2, true},
	wasm.OpcodeI64Store32: {4, true},

	wasm.OpcodeI32AtomicStore:   {4, false},
	wasm.OpcodeI64AtomicStore:   {8, true},
	wasm.OpcodeI32AtomicStore8:  {1, false},
	wasm.OpcodeI32AtomicStore16: {2, false},
	wasm.OpcodeI64AtomicStore8:  {1, true},
	wasm.OpcodeI64AtomicStore16: {2, true},
	wasm.OpcodeI64AtomicStore32: {4, true},
}

func (c *compilation) memloadRoutine(width uint32) glulx.Label {
	switch width {
	case 1:
		return c.rt.memload8
	case 2:
		return c.rt.memload16
	case 4:
		return c.rt.memload32
	}
	return c.rt.memload64
}

func (c *compilation) memstoreRoutine(width uint32) glulx.Label {
	switch width {
	case 1:
		return c.rt.memstore8
	case 2:
		return c.rt.memstore16
	case 4:
		return c.rt.memstore32
	}
	return c.rt.memstore64
}

// genMemory lowers memory instructions, returning false for anything else.
func (c *compilation) genMemory(n *node, cr *credits, db *debts) bool {
	if ld, ok := memLoads[n.Op]; ok {
		c.genLoad(n.Offset, ld, cr, db)
		return true
	}
	if st, ok := memStores[n.Op]; ok {
		c.genStore(n.Offset, st, cr)
		return true
	}

	mem := c.layout.mem
	switch n.Op {
	case wasm.OpcodeMemorySize:
		out := db.pop()
		cr.gen(c)
		c.emit(glulx.Ushiftr(glulx.Deref(mem.curSize), glulx.Imm(16), out))
	case wasm.OpcodeMemoryGrow:
		c.genRuntimeCall(c.rt.memoryGrow, 1, 1, cr, db)
	case wasm.OpcodeMemoryInit:
		d := c.layout.datas[n.Index]
		cr.gen(c)
		c.emit(
			glulx.Copy(glulx.ImmLabel(d.addr), glulx.Push()),
			glulx.Copy(glulx.Deref(d.curSize), glulx.Push()),
			glulx.Call(glulx.ImmLabel(c.rt.memoryInit), glulx.Imm(5), glulx.Discard()),
		)
	case wasm.OpcodeDataDrop:
		cr.gen(c)
		c.emit(glulx.Copy(glulx.Imm(0), glulx.StoreLabel(c.layout.datas[n.Index].curSize)))
	case wasm.OpcodeMemoryCopy:
		c.genRuntimeCall(c.rt.memoryCopy, 3, 0, cr, db)
	case wasm.OpcodeMemoryFill:
		c.genRuntimeCall(c.rt.memoryFill, 3, 0, cr, db)
	default:
		if rmw, ok := atomicRMWs[n.Op]; ok {
			c.genAtomicRMW(n.Op, n.Offset, rmw, cr, db)
			return true
		}
		return false
	}
	return true
}

func (c *compilation) genLoad(offset uint32, ld memLoad, cr *credits, db *debts) {
	addr := cr.pop()
	cr.gen(c)
	call := func(out glulx.Store) glulx.Instr {
		return glulx.Callfii(glulx.ImmLabel(c.memloadRoutine(ld.width)), glulx.Uimm(offset), addr, out)
	}
	sex := func(x glulx.Load, out glulx.Store) glulx.Instr {
		if ld.ext == signExtend8 {
			return glulx.Sexb(x, out)
		}
		return glulx.Sexs(x, out)
	}

	if wasm.ValueTypeWords(ld.result) == 1 {
		out := db.pop()
		if ld.ext == signExtend8 || ld.ext == signExtend16 {
			c.emit(call(glulx.Push()), sex(glulx.Pop(), out))
		} else {
			c.emit(call(out))
		}
		return
	}

	lo, hi := db.popLoHi()
	switch {
	case ld.width == 8:
		c.emit(call(lo))
		c.copyIfSensible(glulx.Deref(c.layout.hiReturn.addr), hi)
	case ld.ext == zeroExtend:
		c.emit(call(lo), glulx.Copy(glulx.Imm(0), hi))
	case ld.ext == noExtend:
		c.emit(call(glulx.Push()))
		c.genSignExtend(glulx.Pop(), lo, hi)
	default:
		c.emit(call(glulx.Push()), sex(glulx.Pop(), glulx.Push()))
		c.genSignExtend(glulx.Pop(), lo, hi)
	}
}

// genSignExtend widens the i32 x to the words lo and hi.
func (c *compilation) genSignExtend(x glulx.Load, lo, hi glulx.Store) {
	if x.Kind == glulx.LoadPop {
		c.emit(glulx.Stkpeek(glulx.Imm(0), glulx.Push()))
		c.copyIfSensible(glulx.Pop(), lo)
		c.emit(glulx.Sshiftr(glulx.Pop(), glulx.Imm(31), hi))
		return
	}
	c.copyIfSensible(x, lo)
	c.emit(glulx.Sshiftr(x, glulx.Imm(31), hi))
}

func (c *compilation) genStore(offset uint32, st memStore, cr *credits) {
	routine := glulx.ImmLabel(c.memstoreRoutine(st.width))
	if st.width == 8 {
		cr.gen(c)
		c.emit(
			glulx.Copy(glulx.Uimm(offset), glulx.Push()),
			glulx.Call(routine, glulx.Imm(4), glulx.Discard()),
		)
		return
	}

	var val glulx.Load
	if st.wide {
		var hi glulx.Load
		hi, val = cr.popHiLo()
		addr := cr.pop()
		cr.gen(c)
		c.copyIfSensible(hi, glulx.Discard())
		c.emit(glulx.Callfiii(routine, glulx.Uimm(offset), val, addr, glulx.Discard()))
		return
	}
	val = cr.pop()
	addr := cr.pop()
	cr.gen(c)
	c.emit(glulx.Callfiii(routine, glulx.Uimm(offset), val, addr, glulx.Discard()))
}

// genBulkMemory emits memory.grow and the bulk memory routines.
func (c *compilation) genBulkMemory() {
	rt := c.rt
	mem := c.layout.mem
	oob := rt.trapOutOfBoundsMemory
	curSize := glulx.Deref(mem.curSize)

	// memory.grow(n) extends the VM's memory when the new end lies past it.
	// Memory is the last thing in the address space, so nothing moves.
	fail, enough := c.gen.Gen("grow_fail"), c.gen.Gen("grow_enough")
	c.routine(rt.memoryGrow, 4,
		glulx.Ushiftr(curSize, imm(16), slc(1)),
		glulx.Sub(uimm(mem.maxSize>>16), lc(1), push()),
		glulx.Jgtu(lc(0), pop(), fail),
		glulx.Shiftl(lc(0), imm(16), push()),
		glulx.Add(curSize, pop(), slc(2)),
		glulx.Add(glulx.ImmLabel(mem.addr), lc(2), slc(3)),
		glulx.Jltu(lc(3), glulx.ImmLabel(mem.addr), fail),
		glulx.Getmemsize(push()),
		glulx.Jleu(lc(3), pop(), enough),
		glulx.Setmemsize(lc(3), push()),
		glulx.Jnz(pop(), fail),
		glulx.Mark(enough),
		glulx.Copy(lc(2), glulx.StoreLabel(mem.curSize)),
		glulx.Ret(lc(1)),
		glulx.Mark(fail),
		glulx.Ret(imm(-1)),
	)

	// memory.init takes (data size, data addr, n, s, d).
	c.routine(rt.memoryInit, 5,
		glulx.Jgtu(lc(3), lc(0), oob),
		glulx.Sub(lc(0), lc(3), push()),
		glulx.Jgtu(lc(2), pop(), oob),
		glulx.Callfiii(glulx.ImmLabel(rt.checkaddr), lc(4), imm(0), lc(2), glulx.Discard()),
		glulx.Add(glulx.ImmLabel(mem.addr), lc(4), push()),
		glulx.Add(lc(1), lc(3), push()),
		glulx.Mcopy(lc(2), pop(), pop()),
		ret0,
	)
	// memory.copy takes (n, s, d). mcopy handles overlap.
	c.routine(rt.memoryCopy, 3,
		glulx.Callfiii(glulx.ImmLabel(rt.checkaddr), lc(1), imm(0), lc(0), glulx.Discard()),
		glulx.Callfiii(glulx.ImmLabel(rt.checkaddr), lc(2), imm(0), lc(0), glulx.Discard()),
		glulx.Add(glulx.ImmLabel(mem.addr), lc(2), push()),
		glulx.Add(glulx.ImmLabel(mem.addr), lc(1), push()),
		glulx.Mcopy(lc(0), pop(), pop()),
		ret0,
	)
	// memory.fill takes (n, val, d).
	loop := c.gen.Gen("fill_loop")
	c.routine(rt.memoryFill, 3,
		glulx.Callfiii(glulx.ImmLabel(rt.checkaddr), lc(2), imm(0), lc(0), glulx.Discard()),
		retFalse(glulx.Jz(lc(0), glulx.Label{})),
		glulx.Bitand(lc(1), uimm(0xff), slc(1)),
		glulx.Jnz(lc(1), loop),
		glulx.Add(glulx.ImmLabel(mem.addr), lc(2), push()),
		glulx.Mzero(lc(0), pop()),
		ret0,
		glulx.Mark(loop),
		glulx.Astoreb(glulx.ImmLabel(mem.addr), lc(2), lc(1)),
		glulx.Add(lc(2), imm(1), slc(2)),
		glulx.Sub(lc(0), imm(1), slc(0)),
		glulx.Jnz(lc(0), loop),
		ret0,
	)
}
