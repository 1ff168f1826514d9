package compiler

import (
	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
)

// returnOperand is where a call stores its Glulx return value. When that is the
// only result word and only one debt is owed, it goes straight to the debt.
func returnOperand(resultWords uint32, db *debts) glulx.Store {
	switch {
	case resultWords == 0:
		return glulx.Discard()
	case resultWords == 1 && db.len() == 1:
		return db.pop()
	}
	return glulx.Push()
}

func (c *compilation) genCall(n *node, cr *credits, db *debts) {
	fl := c.layout.funcs[n.Index]
	tl := c.layout.types[fl.typenum-1]
	addr := glulx.ImmLabel(fl.addr)
	ret := returnOperand(tl.resultWords, db)

	switch tl.paramWords {
	case 0:
		cr.gen(c)
		c.emit(glulx.Callf(addr, ret))
	case 1:
		a := cr.pop()
		cr.gen(c)
		c.emit(glulx.Callfi(addr, a, ret))
	case 2:
		a := cr.pop()
		b := cr.pop()
		cr.gen(c)
		c.emit(glulx.Callfii(addr, a, b, ret))
	case 3:
		a := cr.pop()
		b := cr.pop()
		d := cr.pop()
		cr.gen(c)
		c.emit(glulx.Callfiii(addr, a, b, d, ret))
	default:
		cr.gen(c)
		c.emit(glulx.Call(addr, glulx.Uimm(tl.paramWords), ret))
	}
	c.genCopies(c.creditsFromReturns(c.m.TypeSection[fl.typenum-1].Results), db.take())
}

// genCallIndirect checks the table entry and the callee's type number, which
// precedes every function, before calling it.
func (c *compilation) genCallIndirect(n *node, cr *credits, db *debts) {
	tl := c.layout.types[n.Index]
	table := c.layout.tables[n.Index2]
	ret := returnOperand(tl.resultWords, db)

	idx := cr.pop()
	cr.gen(c)

	// hi_return is free until the call returns.
	fnptr := c.layout.hiReturn.addr
	if idx.Kind == glulx.LoadPop {
		c.emit(glulx.Stkpeek(glulx.Imm(0), glulx.Push()))
	}
	c.emit(
		glulx.Jgeu(idx, glulx.Deref(table.curCount), c.rt.trapUndefinedElement),
		glulx.Aload(glulx.ImmLabel(table.addr), idx, glulx.StoreLabel(fnptr)),
		glulx.Jz(glulx.Deref(fnptr), c.rt.trapUninitializedElement),
		glulx.Aload(glulx.Deref(fnptr), glulx.Imm(-1), glulx.Push()),
		glulx.Jne(glulx.Pop(), glulx.Uimm(tl.typenum), c.rt.trapIndirectCallTypeMismatch),
		glulx.Call(glulx.Deref(fnptr), glulx.Uimm(tl.paramWords), ret),
	)
	c.genCopies(c.creditsFromReturns(c.m.TypeSection[n.Index].Results), db.take())
}
