package compiler

import (
	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

// genTable lowers table instructions, returning false for anything else.
// Table entries are function addresses, with zero for null.
func (c *compilation) genTable(n *node, cr *credits, db *debts) bool {
	switch n.Op {
	case wasm.OpcodeTableGet:
		t := c.layout.tables[n.Index]
		out := db.pop()
		idx := cr.pop()
		cr.gen(c)
		if idx.Kind == glulx.LoadPop {
			c.emit(glulx.Stkpeek(glulx.Imm(0), glulx.Push()))
		}
		c.emit(
			glulx.Jgeu(idx, glulx.Deref(t.curCount), c.rt.trapOutOfBoundsTable),
			glulx.Aload(glulx.ImmLabel(t.addr), idx, out),
		)
	case wasm.OpcodeTableSet:
		t := c.layout.tables[n.Index]
		val := cr.pop()
		idx := cr.pop()
		cr.gen(c)
		if idx.Kind == glulx.LoadPop {
			depth := int32(0)
			if val.Kind == glulx.LoadPop {
				depth = 1
			}
			c.emit(glulx.Stkpeek(glulx.Imm(depth), glulx.Push()))
		}
		c.emit(glulx.Jgeu(idx, glulx.Deref(t.curCount), c.rt.trapOutOfBoundsTable))
		if idx.Kind == glulx.LoadPop && val.Kind == glulx.LoadPop {
			c.emit(glulx.Stkswap())
		}
		c.emit(glulx.Astore(glulx.ImmLabel(t.addr), idx, val))
	case wasm.OpcodeTableGrow:
		t := c.layout.tables[n.Index]
		out := db.pop()
		cr.gen(c)
		c.emit(
			glulx.Copy(glulx.ImmLabel(t.addr), glulx.Push()),
			glulx.Copy(glulx.ImmLabel(t.curCount), glulx.Push()),
			glulx.Copy(glulx.Uimm(t.maxCount), glulx.Push()),
			glulx.Call(glulx.ImmLabel(c.rt.tableGrow), glulx.Imm(5), out),
		)
	case wasm.OpcodeTableFill:
		t := c.layout.tables[n.Index]
		cr.gen(c)
		c.emit(
			glulx.Copy(glulx.ImmLabel(t.addr), glulx.Push()),
			glulx.Copy(glulx.Deref(t.curCount), glulx.Push()),
			glulx.Call(glulx.ImmLabel(c.rt.tableFill), glulx.Imm(5), glulx.Discard()),
		)
	case wasm.OpcodeTableCopy:
		dst, src := c.layout.tables[n.Index], c.layout.tables[n.Index2]
		c.genTableInitOrCopy(dst, src.addr, src.curCount, cr)
	case wasm.OpcodeTableInit:
		e := c.layout.elems[n.Index]
		c.genTableInitOrCopy(c.layout.tables[n.Index2], e.addr, e.curCount, cr)
	case wasm.OpcodeElemDrop:
		cr.gen(c)
		c.emit(glulx.Copy(glulx.Imm(0), glulx.StoreLabel(c.layout.elems[n.Index].curCount)))
	default:
		return false
	}
	return true
}

func (c *compilation) genTableInitOrCopy(dst tableLayout, srcAddr, srcCount glulx.Label, cr *credits) {
	cr.gen(c)
	c.emit(
		glulx.Copy(glulx.ImmLabel(dst.addr), glulx.Push()),
		glulx.Copy(glulx.Deref(dst.curCount), glulx.Push()),
		glulx.Copy(glulx.ImmLabel(srcAddr), glulx.Push()),
		glulx.Copy(glulx.Deref(srcCount), glulx.Push()),
		glulx.Call(glulx.ImmLabel(c.rt.tableInitOrCopy), glulx.Imm(7), glulx.Discard()),
	)
}

func (c *compilation) genTableRoutines() {
	rt := c.rt
	oob := rt.trapOutOfBoundsTable

	// (max, count cell, table, n, init) returns the old count, or -1.
	loop, done, fail := c.gen.Gen("grow_loop"), c.gen.Gen("grow_done"), c.gen.Gen("grow_fail")
	c.routine(rt.tableGrow, 8,
		glulx.Aload(lc(1), imm(0), slc(5)),
		glulx.Sub(lc(0), lc(5), push()),
		glulx.Jgtu(lc(3), pop(), fail),
		glulx.Add(lc(5), lc(3), slc(6)),
		glulx.Copy(lc(5), slc(7)),
		glulx.Mark(loop),
		glulx.Jgeu(lc(7), lc(6), done),
		glulx.Astore(lc(2), lc(7), lc(4)),
		glulx.Add(lc(7), imm(1), slc(7)),
		glulx.Jump(loop),
		glulx.Mark(done),
		glulx.Astore(lc(1), imm(0), lc(6)),
		glulx.Ret(lc(5)),
		glulx.Mark(fail),
		glulx.Ret(imm(-1)),
	)

	// (count, table, n, val, i)
	loop = c.gen.Gen("fill_loop")
	c.routine(rt.tableFill, 5,
		glulx.Jgtu(lc(4), lc(0), oob),
		glulx.Sub(lc(0), lc(4), push()),
		glulx.Jgtu(lc(2), pop(), oob),
		glulx.Mark(loop),
		retFalse(glulx.Jz(lc(2), glulx.Label{})),
		glulx.Astore(lc(1), lc(4), lc(3)),
		glulx.Add(lc(4), imm(1), slc(4)),
		glulx.Sub(lc(2), imm(1), slc(2)),
		glulx.Jump(loop),
	)

	// (src count, src, dst count, dst, n, s, d). mcopy copies as if through a
	// temporary buffer, so overlapping ranges in one table work.
	c.routine(rt.tableInitOrCopy, 7,
		glulx.Jgtu(lc(5), lc(0), oob),
		glulx.Sub(lc(0), lc(5), push()),
		glulx.Jgtu(lc(4), pop(), oob),
		glulx.Jgtu(lc(6), lc(2), oob),
		glulx.Sub(lc(2), lc(6), push()),
		glulx.Jgtu(lc(4), pop(), oob),
		glulx.Shiftl(lc(5), imm(2), push()),
		glulx.Add(lc(1), pop(), slc(5)),
		glulx.Shiftl(lc(6), imm(2), push()),
		glulx.Add(lc(3), pop(), slc(6)),
		glulx.Shiftl(lc(4), imm(2), slc(4)),
		glulx.Mcopy(lc(4), lc(5), lc(6)),
		ret0,
	)
}
