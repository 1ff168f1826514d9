package compiler

import (
	"fmt"
	"math"

	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

// genTest branches to target if t holds for the operands on cr. Any credits
// below the operands are pushed first.
func (c *compilation) genTest(t test, target glulx.Label, cr *credits) {
	switch t {
	case testNez, testEqz:
		x := cr.pop()
		cr.gen(c)
		if t == testNez {
			c.emit(glulx.Jnz(x, target))
		} else {
			c.emit(glulx.Jz(x, target))
		}
		return
	}

	if t.words() == 4 {
		yHi, yLo := cr.popHiLo()
		xHi, xLo := cr.popHiLo()
		cr.gen(c)
		var in glulx.Instr
		switch t {
		case testF64Eq:
			in = glulx.Jdeq(yHi, yLo, xHi, xLo, glulx.Imm(0), glulx.Imm(0), target)
		case testF64Ne:
			in = glulx.Jdne(yHi, yLo, xHi, xLo, glulx.Imm(0), glulx.Imm(0), target)
		case testF64Lt:
			in = glulx.Jdgt(yHi, yLo, xHi, xLo, target)
		case testF64Gt:
			in = glulx.Jdlt(yHi, yLo, xHi, xLo, target)
		case testF64Le:
			in = glulx.Jdge(yHi, yLo, xHi, xLo, target)
		case testF64Ge:
			in = glulx.Jdle(yHi, yLo, xHi, xLo, target)
		}
		c.emit(in)
		return
	}

	// The operands are read y first, so that both can come off the stack.
	y := cr.pop()
	x := cr.pop()
	cr.gen(c)
	var in glulx.Instr
	switch t {
	case testEq:
		in = glulx.Jeq(y, x, target)
	case testNe:
		in = glulx.Jne(y, x, target)
	case testLtS:
		in = glulx.Jgt(y, x, target)
	case testLtU:
		in = glulx.Jgtu(y, x, target)
	case testGtS:
		in = glulx.Jlt(y, x, target)
	case testGtU:
		in = glulx.Jltu(y, x, target)
	case testLeS:
		in = glulx.Jge(y, x, target)
	case testLeU:
		in = glulx.Jgeu(y, x, target)
	case testGeS:
		in = glulx.Jle(y, x, target)
	case testGeU:
		in = glulx.Jleu(y, x, target)
	case testF32Eq:
		in = glulx.Jfeq(y, x, glulx.Imm(0), target)
	case testF32Ne:
		in = glulx.Jfne(y, x, glulx.Imm(0), target)
	case testF32Lt:
		in = glulx.Jfgt(y, x, target)
	case testF32Gt:
		in = glulx.Jflt(y, x, target)
	case testF32Le:
		in = glulx.Jfge(y, x, target)
	case testF32Ge:
		in = glulx.Jfle(y, x, target)
	default:
		panic(fmt.Sprintf("BUG: unknown test %d", t))
	}
	c.emit(in)
}

// genBrInner trims the stack from h words down to what target expects and
// jumps there.
func (c *compilation) genBrInner(f *frame, target jumpTarget, h uint32) {
	if h != target.base+target.arity {
		if h < target.base+target.arity {
			panic("BUG: branch with too little on the stack")
		}
		total := h - target.base
		drop := total - target.arity
		if total > math.MaxInt32 {
			c.fail(&CompileError{Kind: KindOverflow, Location: OverflowStack, Function: f.name})
			return
		}
		if drop != total {
			c.emit(glulx.Stkroll(glulx.Imm(int32(total)), glulx.Imm(int32(target.arity))))
		}
		for i := uint32(0); i < drop; i++ {
			c.emit(glulx.Copy(glulx.Pop(), glulx.Discard()))
		}
	}
	c.emit(glulx.Jump(target.label))
}

// genTerminal lowers br, br_table and unreachable, with h words on the stack
// including the instruction's operands.
func (c *compilation) genTerminal(f *frame, n *node, h uint32, cr *credits) {
	switch n.Op {
	case wasm.OpcodeUnreachable:
		cr.take()
		c.emit(glulx.Jump(c.rt.trapUnreachable))
	case wasm.OpcodeBr:
		cr.gen(c)
		c.genBrInner(f, f.targets[n.Target], h)
	case wasm.OpcodeBrTable:
		c.genBrTable(f, n, h, cr)
	default:
		panic("BUG: not a terminal: " + wasm.InstructionName(n.Op))
	}
}

func (c *compilation) genBrTable(f *frame, n *node, h uint32, cr *credits) {
	idx := cr.pop()
	cr.gen(c)
	// Once the index is consumed this many words remain.
	h--

	def := f.targets[n.Default]
	defLabel := def.label
	var defStub bool
	if idx.Kind == glulx.LoadPop {
		// The bounds check consumes a copy, leaving the index for aload.
		c.emit(glulx.Stkpeek(glulx.Imm(0), glulx.Push()))
		defStub = true
	} else {
		defStub = h != def.base+def.arity
	}
	if defStub {
		defLabel = c.gen.Gen("br_table_default")
	}

	jt := jumpTable{label: c.gen.Gen("jump_table")}
	c.emit(
		glulx.Jgeu(idx, glulx.Uimm(uint32(len(n.Targets))), defLabel),
		glulx.Aload(glulx.ImmLabel(jt.label), idx, glulx.Push()),
		glulx.Jumpabs(glulx.Pop()),
	)

	type stub struct {
		label  glulx.Label
		target jumpTarget
	}
	var stubs []stub
	stubFor := map[glulx.Label]glulx.Label{}
	for _, b := range n.Targets {
		t := f.targets[b]
		if h == t.base+t.arity {
			jt.entries = append(jt.entries, t.label)
			continue
		}
		l, ok := stubFor[t.label]
		if !ok {
			l = c.gen.Gen("br_table_prep")
			stubFor[t.label] = l
			stubs = append(stubs, stub{label: l, target: t})
		}
		jt.entries = append(jt.entries, l)
	}
	f.jumpTables = append(f.jumpTables, jt)

	for _, s := range stubs {
		c.emit(glulx.Mark(s.label))
		c.genBrInner(f, s.target, h)
	}
	if defStub {
		c.emit(glulx.Mark(defLabel))
		if idx.Kind == glulx.LoadPop {
			c.emit(glulx.Copy(glulx.Pop(), glulx.Discard()))
		}
		c.genBrInner(f, def, h)
	}
}

// genBrIf lowers br_if, where pre is the stack height before its operands are
// popped.
func (c *compilation) genBrIf(f *frame, n *node, pre uint32, cr *credits, db *debts) {
	target := f.targets[n.Target]
	h := pre - n.test.words()
	if h == target.base+target.arity {
		c.genTest(n.test, target.label, cr)
	} else {
		prep := c.gen.Gen("branch_prep")
		noBranch := c.gen.Gen("no_branch")
		c.genTest(n.test, prep, cr)
		c.emit(glulx.Jump(noBranch), glulx.Mark(prep))
		c.genBrInner(f, target, h)
		c.emit(glulx.Mark(noBranch))
	}
	db.gen(c)
}

// genSelect keeps the first of two values if the test holds and the second
// otherwise.
func (c *compilation) genSelect(n *node, cr *credits, db *debts) {
	w := wasm.ValueTypeWords(n.Out[0])
	noroll := c.gen.Gen("noroll")
	c.genTest(n.test, noroll, cr)
	c.emit(glulx.Stkroll(glulx.Uimm(2*w), glulx.Uimm(w)), glulx.Mark(noroll))
	for i := uint32(0); i < w; i++ {
		c.emit(glulx.Copy(glulx.Pop(), glulx.Discard()))
	}
	db.gen(c)
}
