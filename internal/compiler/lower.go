package compiler

import (
	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
	"github.com/tetratelabs/wasm2glulx/internal/wasmir"
)

// genOther lowers a nucleus which is neither a block nor a terminal. pre is the
// stack height in words before its operands are popped. It consumes cr and db.
func (c *compilation) genOther(f *frame, n *node, pre uint32, cr *credits, db *debts) {
	switch n.Op {
	case wasm.OpcodeLocalTee:
		c.genLocalTee(f, n, cr, db)
	case wasm.OpcodeBrIf:
		c.genBrIf(f, n, pre, cr, db)
	case wasm.OpcodeSelect:
		c.genSelect(n, cr, db)
	case wasm.OpcodeCall:
		c.genCall(n, cr, db)
	case wasm.OpcodeCallIndirect:
		c.genCallIndirect(n, cr, db)
	default:
		if c.genMemory(n, cr, db) || c.genTable(n, cr, db) || c.genArith(n, cr, db) {
			break
		}
		if l, ok := c.rt.ops[n.Op]; ok {
			c.genRuntimeCall(l, height(n.in), height(n.Out), cr, db)
			break
		}
		c.fail(&CompileError{Kind: KindUnsupportedInstruction, Function: f.name, Instruction: wasm.InstructionName(n.Op)})
		cr.gen(c)
		c.emit(glulx.Jump(c.rt.trapUnreachable))
		db.declareBankruptcy()
	}
	db.gen(c)
}

// genRuntimeCall calls a runtime routine with the in words on the stack as its
// arguments, the top one becoming local 0. A second result word comes back
// through hi_return.
func (c *compilation) genRuntimeCall(routine glulx.Label, in, out uint32, cr *credits, db *debts) {
	var ret, hi glulx.Store
	switch out {
	case 0:
		ret = glulx.Discard()
	case 1:
		ret = db.pop()
	case 2:
		ret, hi = db.popLoHi()
	default:
		panic("BUG: runtime routines return at most two words")
	}

	addr := glulx.ImmLabel(routine)
	switch in {
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
		c.emit(glulx.Call(addr, glulx.Uimm(in), ret))
	}
	if out == 2 {
		c.copyIfSensible(glulx.Deref(c.layout.hiReturn.addr), hi)
	}
}

// genLocalTee stores the top of the stack to a local and leaves it there.
func (c *compilation) genLocalTee(f *frame, n *node, cr *credits, db *debts) {
	g, t := f.localSlot(n.Index)
	words := wasm.ValueTypeWords(t)
	// Popped from the top down, so the high word of a two-word value comes
	// first, matching the lower local.
	value := make([]glulx.Load, words)
	for i := range value {
		value[i] = cr.pop()
	}
	cr.gen(c)
	for i, l := range value {
		c.copyIfSensible(l, glulx.StoreLocal(g+uint32(i)))
	}
	c.genCopies(c.newCredits(f, []*wasmir.Instr{{Op: wasm.OpcodeLocalGet, Index: n.Index}}), db.take())
}
