package compiler

import (
	"math"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
	"github.com/tetratelabs/wasm2glulx/internal/wasmir"
)

// maxLocalWords bounds the locals of a function, so that every frame offset
// fits in a word.
const maxLocalWords = 1 << 30

// jumpTarget is where a branch to a block goes, and the stack height in words
// it leaves behind: base plus the arity words it carries.
type jumpTarget struct {
	label glulx.Label
	base  uint32
	arity uint32
}

type jumpTable struct {
	label   glulx.Label
	entries []glulx.Label
}

// frame is the state of the function being lowered.
type frame struct {
	fn          *wasmir.Function
	name        string
	paramSlots  []uint32
	paramWords  uint32
	localGroups []localGroupSlot
	words       uint32
	targets     map[*wasmir.Block]jumpTarget
	jumpTables  []jumpTable
}

type localGroupSlot struct {
	first uint32 // wasm index of the first local
	slot  uint32 // glulx local of the first local
	wasm.LocalGroup
}

// newFrame assigns Glulx locals. The last parameter gets local 0, as Glulx puts
// the top of the stack there, then the declared locals follow in order. A
// two-word value keeps its high word in the lower local.
func newFrame(fn *wasmir.Function) (*frame, bool) {
	f := &frame{fn: fn, name: fn.Name, targets: map[*wasmir.Block]jumpTarget{}}
	params := fn.Type.Params
	f.paramSlots = make([]uint32, len(params))
	var slot uint64
	for i := len(params) - 1; i >= 0; i-- {
		f.paramSlots[i] = uint32(slot)
		slot += uint64(wasm.ValueTypeWords(params[i]))
	}
	f.paramWords = uint32(slot)
	first := uint32(len(params))
	for _, g := range fn.Locals {
		if slot >= maxLocalWords {
			return nil, false
		}
		f.localGroups = append(f.localGroups, localGroupSlot{first: first, slot: uint32(slot), LocalGroup: g})
		slot += uint64(g.Count) * uint64(wasm.ValueTypeWords(g.Type))
		first += g.Count
	}
	if slot >= maxLocalWords {
		return nil, false
	}
	f.words = uint32(slot)
	return f, true
}

// localSlot returns the first Glulx local of wasm local idx and its type.
func (f *frame) localSlot(idx uint32) (uint32, wasm.ValueType) {
	if params := f.fn.Type.Params; idx < uint32(len(params)) {
		return f.paramSlots[idx], params[idx]
	}
	for _, g := range f.localGroups {
		if idx-g.first < g.Count {
			return g.slot + (idx-g.first)*wasm.ValueTypeWords(g.Type), g.Type
		}
	}
	panic("BUG: local index out of range")
}

func height(stack []wasm.ValueType) uint32 {
	return uint32(wordCount(stack))
}

// applyTypes pops in and pushes out on a copy of stack.
func applyTypes(stack, in, out []wasm.ValueType) []wasm.ValueType {
	ret := make([]wasm.ValueType, 0, len(stack)-len(in)+len(out))
	ret = append(ret, stack[:len(stack)-len(in)]...)
	return append(ret, out...)
}

func (c *compilation) genFunction(fn *wasmir.Function) {
	fl := c.layout.funcs[fn.Index]
	f, ok := newFrame(fn)
	c.emit(glulx.Word(fl.typenum), glulx.Mark(fl.addr))
	if !ok {
		c.fail(&CompileError{Kind: KindOverflow, Location: OverflowLocals, Function: fn.Name})
		c.emit(glulx.FnHeader(glulx.ArgsInLocals, 0), glulx.Jump(c.rt.trapUnreachable))
		return
	}
	c.emit(glulx.FnHeader(glulx.ArgsInLocals, f.words))
	start := len(c.rom)

	db := debts{returns: c.newReturns(fn.Type.Results)}
	if fn.HasBranchToEntry() {
		end := c.gen.Gen("endfunction")
		f.targets[fn.Body] = jumpTarget{label: end, arity: uint32(wordCount(fn.Type.Results))}
		c.genInstrseq(f, fn.Body.Body, nil, credits{}, debts{})
		c.emit(glulx.Mark(end))
		db.gen(c)
	} else {
		c.genInstrseq(f, fn.Body.Body, nil, credits{}, db)
	}

	for _, jt := range f.jumpTables {
		c.emit(glulx.Mark(jt.label))
		for _, e := range jt.entries {
			c.emit(glulx.LabelRef(e))
		}
	}
	c.logger.Debug("lowered function",
		zap.Uint32("index", fn.Index), zap.String("name", fn.Name), zap.Int("items", len(c.rom)-start))
}

// genStubFunction emits a function which traps, standing in for one that
// could not be lowered.
func (c *compilation) genStubFunction(funcIdx wasm.Index) {
	fl := c.layout.funcs[funcIdx]
	c.emit(glulx.Word(fl.typenum), glulx.Mark(fl.addr),
		glulx.FnHeader(glulx.ArgsInLocals, 0), glulx.Jump(c.rt.trapUnreachable))
}

// genInstrseq lowers instrs, which run with stack beneath them. The initial
// credits are values above stack which have not been pushed yet, and the final
// debts are where the values instrs leave behind go.
func (c *compilation) genInstrseq(f *frame, instrs []*wasmir.Instr, stack []wasm.ValueType, initial credits, final debts) {
	subs := subsequences(fuseTests(instrs))
	if len(subs) == 0 {
		c.genCopies(initial, final)
		return
	}

	for i, s := range subs {
		last := i == len(subs)-1

		loads := lo.Map(s.loads, func(n *node, _ int) *wasmir.Instr { return n.Instr })
		cr := c.newCredits(f, loads)
		if i == 0 {
			in := initial.take()
			in.appendLater(cr)
			cr = in
		}
		for _, n := range s.loads {
			stack = append(stack, n.Out...)
		}
		makeDebts := func(stack []wasm.ValueType) debts {
			stores := lo.Map(s.stores, func(n *node, _ int) *wasmir.Instr { return n.Instr })
			db := c.newDebts(f, stack, stores, s.ret != nil)
			if last {
				fin := final.take()
				fin.appendEarlier(db)
				db = fin
			}
			return db
		}

		switch s.kind {
		case subseqCopy:
			c.genCopies(cr, makeDebts(stack))
		case subseqBlock:
			c.genBlock(f, s.nucleus, cloneStack(stack), &cr)
			cr.mustBeEmpty()
			stack = applyTypes(stack, s.nucleus.in, s.nucleus.Out)
			if last {
				fin := final.take()
				fin.gen(c)
			}
		case subseqLoop:
			cr.gen(c)
			post := applyTypes(stack, s.nucleus.in, s.nucleus.Out)
			c.genLoop(f, s.nucleus, cloneStack(stack), makeDebts(post))
			stack = post
		case subseqOther:
			pre := height(stack)
			stack = applyTypes(stack, s.nucleus.in, s.nucleus.Out)
			db := makeDebts(stack)
			c.genOther(f, s.nucleus, pre, &cr, &db)
			cr.mustBeEmpty()
			db.mustBeEmpty()
		case subseqTerminal:
			c.genTerminal(f, s.nucleus, height(stack), &cr)
			cr.mustBeEmpty()
			final.declareBankruptcy()
			return
		}
		if s.ret != nil {
			return
		}
		stack = stack[:len(stack)-len(s.stores)]
	}
}

func cloneStack(stack []wasm.ValueType) []wasm.ValueType {
	return append([]wasm.ValueType(nil), stack...)
}

// genBlock lowers a block or if. Its results are left on the stack.
func (c *compilation) genBlock(f *frame, n *node, stack []wasm.ValueType, cr *credits) {
	b := n.Block
	inner := stack[:len(stack)-len(n.in)]
	end := c.gen.Gen("endblock")
	base := c.checkHeight(f, height(inner))
	f.targets[b] = jumpTarget{label: end, base: base, arity: uint32(wordCount(b.Results))}
	inner = append(cloneStack(inner), b.Params...)

	if b.Kind == wasmir.BlockKindIf {
		consequent := c.gen.Gen("consequent")
		c.genTest(n.test, consequent, cr)
		c.genInstrseq(f, b.Else, cloneStack(inner), credits{}, debts{})
		c.emit(glulx.Jump(end), glulx.Mark(consequent))
		c.genInstrseq(f, b.Body, inner, credits{}, debts{})
	} else {
		c.genInstrseq(f, b.Body, inner, cr.take(), debts{})
	}
	c.emit(glulx.Mark(end))
}

// genLoop lowers a loop, whose parameters are on the stack.
func (c *compilation) genLoop(f *frame, n *node, stack []wasm.ValueType, db debts) {
	b := n.Block
	arity := uint32(wordCount(b.Params))
	start := c.gen.Gen("loop")
	f.targets[b] = jumpTarget{label: start, base: c.checkHeight(f, height(stack)-arity), arity: arity}
	c.emit(glulx.Mark(start))
	c.genInstrseq(f, b.Body, stack, credits{}, db)
}

// checkHeight reports a stack too deep to address with a signed operand.
func (c *compilation) checkHeight(f *frame, h uint32) uint32 {
	if h > math.MaxInt32 {
		c.fail(&CompileError{Kind: KindOverflow, Location: OverflowStack, Function: f.name})
	}
	return h
}
