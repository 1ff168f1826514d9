package compiler

import (
	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

type rmwOp byte

const (
	rmwAdd rmwOp = iota
	rmwSub
	rmwAnd
	rmwOr
	rmwXor
	rmwXchg
	rmwCmpxchg
)

type atomicRMW struct {
	op    rmwOp
	width uint32
	// wide is set for the i64 forms.
	wide bool
}

var atomicRMWs = map[wasm.Opcode]atomicRMW{
	wasm.OpcodeI32AtomicRmwAdd:    {rmwAdd, 4, false},
	wasm.OpcodeI64AtomicRmwAdd:    {rmwAdd, 8, true},
	wasm.OpcodeI32AtomicRmw8AddU:  {rmwAdd, 1, false},
	wasm.OpcodeI32AtomicRmw16AddU: {rmwAdd, 2, false},
	wasm.OpcodeI64AtomicRmw8AddU:  {rmwAdd, 1, true},
	wasm.OpcodeI64AtomicRmw16AddU: {rmwAdd, 2, true},
	wasm.OpcodeI64AtomicRmw32AddU: {rmwAdd, 4, true},

	wasm.OpcodeI32AtomicRmwSub:    {rmwSub, 4, false},
	wasm.OpcodeI64AtomicRmwSub:    {rmwSub, 8, true},
	wasm.OpcodeI32AtomicRmw8SubU:  {rmwSub, 1, false},
	wasm.OpcodeI32AtomicRmw16SubU: {rmwSub, 2, false},
	wasm.OpcodeI64AtomicRmw8SubU:  {rmwSub, 1, true},
	wasm.OpcodeI64AtomicRmw16SubU: {rmwSub, 2, true},
	wasm.OpcodeI64AtomicRmw32SubU: {rmwSub, 4, true},

	wasm.OpcodeI32AtomicRmwAnd:    {rmwAnd, 4, false},
	wasm.OpcodeI64AtomicRmwAnd:    {rmwAnd, 8, true},
	wasm.OpcodeI32AtomicRmw8AndU:  {rmwAnd, 1, false},
	wasm.OpcodeI32AtomicRmw16AndU: {rmwAnd, 2, false},
	wasm.OpcodeI64AtomicRmw8AndU:  {rmwAnd, 1, true},
	wasm.OpcodeI64AtomicRmw16AndU: {rmwAnd, 2, true},
	wasm.OpcodeI64AtomicRmw32AndU: {rmwAnd, 4, true},

	wasm.OpcodeI32AtomicRmwOr:    {rmwOr, 4, false},
	wasm.OpcodeI64AtomicRmwOr:    {rmwOr, 8, true},
	wasm.OpcodeI32AtomicRmw8OrU:  {rmwOr, 1, false},
	wasm.OpcodeI32AtomicRmw16OrU: {rmwOr, 2, false},
	wasm.OpcodeI64AtomicRmw8OrU:  {rmwOr, 1, true},
	wasm.OpcodeI64AtomicRmw16OrU: {rmwOr, 2, true},
	wasm.OpcodeI64AtomicRmw32OrU: {rmwOr, 4, true},

	wasm.OpcodeI32AtomicRmwXor:    {rmwXor, 4, false},
	wasm.OpcodeI64AtomicRmwXor:    {rmwXor, 8, true},
	wasm.OpcodeI32AtomicRmw8XorU:  {rmwXor, 1, false},
	wasm.OpcodeI32AtomicRmw16XorU: {rmwXor, 2, false},
	wasm.OpcodeI64AtomicRmw8XorU:  {rmwXor, 1, true},
	wasm.OpcodeI64AtomicRmw16XorU: {rmwXor, 2, true},
	wasm.OpcodeI64AtomicRmw32XorU: {rmwXor, 4, true},

	wasm.OpcodeI32AtomicRmwXchg:    {rmwXchg, 4, false},
	wasm.OpcodeI64AtomicRmwXchg:    {rmwXchg, 8, true},
	wasm.OpcodeI32AtomicRmw8XchgU:  {rmwXchg, 1, false},
	wasm.OpcodeI32AtomicRmw16XchgU: {rmwXchg, 2, false},
	wasm.OpcodeI64AtomicRmw8XchgU:  {rmwXchg, 1, true},
	wasm.OpcodeI64AtomicRmw16XchgU: {rmwXchg, 2, true},
	wasm.OpcodeI64AtomicRmw32XchgU: {rmwXchg, 4, true},

	wasm.OpcodeI32AtomicRmwCmpxchg:    {rmwCmpxchg, 4, false},
	wasm.OpcodeI64AtomicRmwCmpxchg:    {rmwCmpxchg, 8, true},
	wasm.OpcodeI32AtomicRmw8CmpxchgU:  {rmwCmpxchg, 1, false},
	wasm.OpcodeI32AtomicRmw16CmpxchgU: {rmwCmpxchg, 2, false},
	wasm.OpcodeI64AtomicRmw8CmpxchgU:  {rmwCmpxchg, 1, true},
	wasm.OpcodeI64AtomicRmw16CmpxchgU: {rmwCmpxchg, 2, true},
	wasm.OpcodeI64AtomicRmw32CmpxchgU: {rmwCmpxchg, 4, true},
}

// atomicRoutine returns the routine for an atomic read-modify-write, emitting
// it after the functions if this is its first use.
func (c *compilation) atomicRoutine(op wasm.Opcode) glulx.Label {
	if l, ok := c.rt.ops[op]; ok {
		return l
	}
	l := c.op(op)
	c.rt.atomics = append(c.rt.atomics, op)
	return l
}

// genAtomicRMW lowers a read-modify-write. With a single thread there is
// nothing to synchronize with, so it is a load followed by a store.
func (c *compilation) genAtomicRMW(op wasm.Opcode, offset uint32, rmw atomicRMW, cr *credits, db *debts) {
	routine := glulx.ImmLabel(c.atomicRoutine(op))
	hrLoad := glulx.Deref(c.layout.hiReturn.addr)

	switch {
	case rmw.op == rmwCmpxchg && !rmw.wide:
		out := db.pop()
		cr.gen(c)
		c.emit(
			glulx.Copy(glulx.Uimm(offset), glulx.Push()),
			glulx.Call(routine, glulx.Imm(4), out),
		)
	case rmw.op == rmwCmpxchg || rmw.width == 8:
		args := int32(6)
		if rmw.op != rmwCmpxchg {
			args = 4
		}
		lo, hi := db.popLoHi()
		cr.gen(c)
		c.emit(
			glulx.Copy(glulx.Uimm(offset), glulx.Push()),
			glulx.Call(routine, glulx.Imm(args), lo),
		)
		c.copyIfSensible(hrLoad, hi)
	case rmw.wide:
		hi, val := cr.popHiLo()
		addr := cr.pop()
		lo, outHi := db.popLoHi()
		cr.gen(c)
		c.copyIfSensible(hi, glulx.Discard())
		c.emit(
			glulx.Callfiii(routine, glulx.Uimm(offset), val, addr, lo),
			glulx.Copy(glulx.Imm(0), outHi),
		)
	default:
		val := cr.pop()
		addr := cr.pop()
		out := db.pop()
		cr.gen(c)
		c.emit(glulx.Callfiii(routine, glulx.Uimm(offset), val, addr, out))
	}
}

// genAtomicRoutines emits the routines of every read-modify-write used.
func (c *compilation) genAtomicRoutines() {
	hr := glulx.StoreLabel(c.layout.hiReturn.addr)
	hrLoad := glulx.Deref(c.layout.hiReturn.addr)

	for _, op := range c.rt.atomics {
		rmw := atomicRMWs[op]
		l := c.rt.ops[op]
		load := glulx.ImmLabel(c.memloadRoutine(rmw.width))
		store := glulx.ImmLabel(c.memstoreRoutine(rmw.width))
		done := c.gen.Gen("cmpxchg_done")

		switch {
		case rmw.op == rmwCmpxchg && rmw.width == 8:
			// (offset, replacement hi, lo, expected hi, lo, addr)
			c.routine(l, 8,
				glulx.Callfii(load, lc(0), lc(5), slc(6)),
				glulx.Copy(hrLoad, slc(7)),
				glulx.Jne(lc(6), lc(4), done),
				glulx.Jne(lc(7), lc(3), done),
				glulx.Copy(lc(5), push()),
				glulx.Copy(lc(2), push()),
				glulx.Copy(lc(1), push()),
				glulx.Copy(lc(0), push()),
				glulx.Call(store, imm(4), glulx.Discard()),
				glulx.Mark(done),
				glulx.Copy(lc(7), hr),
				glulx.Ret(lc(6)),
			)
		case rmw.op == rmwCmpxchg && rmw.wide:
			// The expected value is wrapped to the access width.
			c.routine(l, 8, concat(
				[]glulx.Item{glulx.Callfii(load, lc(0), lc(5), slc(6))},
				maskTo(rmw.width, 4),
				[]glulx.Item{
					glulx.Jne(lc(6), lc(4), done),
					glulx.Callfiii(store, lc(0), lc(2), lc(5), glulx.Discard()),
					glulx.Mark(done),
					glulx.Copy(imm(0), hr),
					glulx.Ret(lc(6)),
				},
			)...)
		case rmw.op == rmwCmpxchg:
			// (offset, replacement, expected, addr)
			c.routine(l, 5, concat(
				[]glulx.Item{glulx.Callfii(load, lc(0), lc(3), slc(4))},
				maskTo(rmw.width, 2),
				[]glulx.Item{
					glulx.Jne(lc(4), lc(2), done),
					glulx.Callfiii(store, lc(0), lc(1), lc(3), glulx.Discard()),
					glulx.Mark(done),
					glulx.Ret(lc(4)),
				},
			)...)
		case rmw.width == 8:
			// (offset, value hi, lo, addr)
			body := []glulx.Item{
				glulx.Callfii(load, lc(0), lc(3), slc(4)),
				glulx.Copy(hrLoad, slc(5)),
			}
			switch rmw.op {
			case rmwAdd, rmwSub:
				arith := wasm.OpcodeI64Add
				if rmw.op == rmwSub {
					arith = wasm.OpcodeI64Sub
				}
				body = append(body,
					glulx.Copy(lc(4), push()),
					glulx.Copy(lc(5), push()),
					glulx.Copy(lc(2), push()),
					glulx.Copy(lc(1), push()),
					glulx.Call(glulx.ImmLabel(c.rt.ops[arith]), imm(4), slc(6)),
					glulx.Copy(hrLoad, slc(7)),
				)
			case rmwXchg:
				body = append(body, glulx.Copy(lc(1), slc(7)), glulx.Copy(lc(2), slc(6)))
			default:
				f := bitwiseOp(rmw.op)
				body = append(body, f(lc(5), lc(1), slc(7)), f(lc(4), lc(2), slc(6)))
			}
			body = append(body,
				glulx.Copy(lc(3), push()),
				glulx.Copy(lc(6), push()),
				glulx.Copy(lc(7), push()),
				glulx.Copy(lc(0), push()),
				glulx.Call(store, imm(4), glulx.Discard()),
				glulx.Copy(lc(5), hr),
				glulx.Ret(lc(4)),
			)
			c.routine(l, 8, body...)
		default:
			// (offset, value, addr)
			var modify glulx.Instr
			switch rmw.op {
			case rmwAdd:
				modify = glulx.Add(lc(3), lc(1), push())
			case rmwSub:
				modify = glulx.Sub(lc(3), lc(1), push())
			case rmwXchg:
				modify = glulx.Copy(lc(1), push())
			default:
				modify = bitwiseOp(rmw.op)(lc(3), lc(1), push())
			}
			c.routine(l, 4,
				glulx.Callfii(load, lc(0), lc(2), slc(3)),
				modify,
				glulx.Callfiii(store, lc(0), pop(), lc(2), glulx.Discard()),
				glulx.Ret(lc(3)),
			)
		}
	}
	c.rt.atomics = nil
}

func bitwiseOp(op rmwOp) func(l1, l2 glulx.Load, s glulx.Store) glulx.Instr {
	switch op {
	case rmwAnd:
		return glulx.Bitand
	case rmwOr:
		return glulx.Bitor
	}
	return glulx.Bitxor
}

// maskTo truncates local l to width bytes.
func maskTo(width, l uint32) []glulx.Item {
	if width >= 4 {
		return nil
	}
	return []glulx.Item{glulx.Bitand(lc(l), uimm(1<<(8*width)-1), slc(l))}
}
