package compiler

import (
	"fmt"

	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
	"github.com/tetratelabs/wasm2glulx/internal/wasmir"
)

// credits are values a subsequence has been handed but not yet pushed. Pushing
// them is deferred so that an instruction can read its operands directly from
// where they live. The last load is the top of the stack.
type credits struct {
	loads []glulx.Load
}

// newCredits returns the operands read by a run of load instructions.
func (c *compilation) newCredits(f *frame, instrs []*wasmir.Instr) credits {
	var cr credits
	for _, in := range instrs {
		cr.loads = append(cr.loads, c.loadsOf(f, in)...)
	}
	return cr
}

func (c *compilation) loadsOf(f *frame, in *wasmir.Instr) []glulx.Load {
	switch in.Op {
	case wasm.OpcodeLocalGet:
		g, t := f.localSlot(in.Index)
		words := wasm.ValueTypeWords(t)
		loads := make([]glulx.Load, words)
		for i := uint32(0); i < words; i++ {
			loads[i] = glulx.Local(g + words - 1 - i)
		}
		return loads
	case wasm.OpcodeGlobalGet:
		gl := c.layout.globals[in.Index]
		loads := make([]glulx.Load, gl.words)
		for i := uint32(0); i < gl.words; i++ {
			loads[i] = glulx.DerefOff(gl.addr, int32(4*(gl.words-1-i)))
		}
		return loads
	case wasm.OpcodeI32Const, wasm.OpcodeF32Const:
		return []glulx.Load{glulx.Uimm(uint32(in.Value))}
	case wasm.OpcodeI64Const, wasm.OpcodeF64Const:
		return []glulx.Load{glulx.Uimm(uint32(in.Value)), glulx.Uimm(uint32(in.Value >> 32))}
	case wasm.OpcodeRefNull:
		return []glulx.Load{glulx.Imm(0)}
	case wasm.OpcodeRefFunc:
		return []glulx.Load{glulx.ImmLabel(c.layout.funcs[in.Index].addr)}
	case wasm.OpcodeTableSize:
		return []glulx.Load{glulx.Deref(c.layout.tables[in.Index].curCount)}
	}
	panic(fmt.Sprintf("BUG: %s is not a load", wasm.InstructionName(in.Op)))
}

// creditsFromReturns returns the words of a call's results other than the
// bottom one, which the call itself stores.
func (c *compilation) creditsFromReturns(results []wasm.ValueType) credits {
	words := uint32(wordCount(results))
	if words < 2 {
		return credits{}
	}
	var cr credits
	for i := int(words) - 2; i >= 0; i-- {
		cr.loads = append(cr.loads, glulx.DerefOff(c.layout.hiReturn.addr, int32(4*i)))
	}
	return cr
}

// pop returns the operand for the top of the stack.
func (cr *credits) pop() glulx.Load {
	n := len(cr.loads)
	if n == 0 {
		return glulx.Pop()
	}
	l := cr.loads[n-1]
	cr.loads = cr.loads[:n-1]
	return l
}

// popHiLo pops a two-word value.
func (cr *credits) popHiLo() (hi, lo glulx.Load) {
	hi = cr.pop()
	lo = cr.pop()
	return
}

// gen pushes every outstanding credit.
func (cr *credits) gen(c *compilation) {
	for _, l := range cr.loads {
		c.emit(glulx.Copy(l, glulx.Push()))
	}
	cr.loads = nil
}

func (cr *credits) take() credits {
	ret := *cr
	cr.loads = nil
	return ret
}

// appendLater adds credits for values above the existing ones.
func (cr *credits) appendLater(other credits) {
	cr.loads = append(cr.loads, other.loads...)
}

func (cr *credits) len() int { return len(cr.loads) }

func (cr *credits) mustBeEmpty() {
	if len(cr.loads) != 0 {
		panic(fmt.Sprintf("BUG: %d credits were dropped", len(cr.loads)))
	}
}

// popSwappedPair pops operands y then x of a binary operation, returning them
// in the order x, y. When both are on the stack they are swapped first.
func (c *compilation) popSwappedPair(cr *credits) (x, y glulx.Load) {
	y = cr.pop()
	x = cr.pop()
	if y.Kind == glulx.LoadPop {
		c.emit(glulx.Stkswap())
	}
	return
}

// popSwappedQuad is popSwappedPair for two-word operands, in the order
// x_hi, x_lo, y_hi, y_lo.
func (c *compilation) popSwappedQuad(cr *credits) (xHi, xLo, yHi, yLo glulx.Load) {
	yHi, yLo = cr.popHiLo()
	xHi, xLo = cr.popHiLo()
	var onStack int32
	for _, l := range []glulx.Load{yHi, yLo} {
		if l.Kind == glulx.LoadPop {
			onStack++
		}
	}
	if onStack > 0 {
		c.emit(glulx.Stkroll(glulx.Imm(2+onStack), glulx.Imm(onStack)))
	}
	return
}

// returns are the words a function still owes its caller. The first n-1
// popped go to the hi-return area; the last is the Glulx return value.
type returns struct {
	hiReturn glulx.Label
	m, n     uint32
}

func (r *returns) store() glulx.Store {
	s := glulx.StoreLabelOff(r.hiReturn, int32(4*r.m))
	r.m++
	return s
}

// debts are destinations for values a subsequence will produce. The last store
// takes the top of the stack.
type debts struct {
	stores  []glulx.Store
	returns *returns
}

// newDebts returns the destinations of a run of store instructions applied to
// stack, followed by a return if andReturn is set.
func (c *compilation) newDebts(f *frame, stack []wasm.ValueType, instrs []*wasmir.Instr, andReturn bool) debts {
	var db debts
	for _, in := range instrs {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		words := wasm.ValueTypeWords(t)
		for i := uint32(0); i < words; i++ {
			switch in.Op {
			case wasm.OpcodeLocalSet:
				g, _ := f.localSlot(in.Index)
				db.stores = append(db.stores, glulx.StoreLocal(g+i))
			case wasm.OpcodeGlobalSet:
				db.stores = append(db.stores, glulx.StoreLabelOff(c.layout.globals[in.Index].addr, int32(4*i)))
			case wasm.OpcodeDrop:
				db.stores = append(db.stores, glulx.Discard())
			default:
				panic(fmt.Sprintf("BUG: %s is not a store", wasm.InstructionName(in.Op)))
			}
		}
	}
	for i, j := 0, len(db.stores)-1; i < j; i, j = i+1, j-1 {
		db.stores[i], db.stores[j] = db.stores[j], db.stores[i]
	}
	if andReturn {
		db.returns = c.newReturns(f.fn.Type.Results)
	}
	return db
}

func (c *compilation) newReturns(results []wasm.ValueType) *returns {
	return &returns{hiReturn: c.layout.hiReturn.addr, n: uint32(wordCount(results))}
}

func (db *debts) len() int {
	n := len(db.stores)
	if db.returns != nil && db.returns.n > db.returns.m {
		n += int(db.returns.n - db.returns.m)
	}
	return n
}

// pop returns the destination for the next value produced.
func (db *debts) pop() glulx.Store {
	if n := len(db.stores); n > 0 {
		s := db.stores[n-1]
		db.stores = db.stores[:n-1]
		return s
	}
	if r := db.returns; r != nil && r.m+1 < r.n {
		return r.store()
	}
	// The last word of a return stays on the stack for the final ret.
	return glulx.Push()
}

// popLoHi pops the destinations of a two-word value. The store for the low word
// comes first, as in the double-precision opcodes.
func (db *debts) popLoHi() (lo, hi glulx.Store) {
	hi = db.pop()
	lo = db.pop()
	return
}

// popForCopy is pop, except that it returns false instead of Push.
func (db *debts) popForCopy() (glulx.Store, bool) {
	if n := len(db.stores); n > 0 {
		s := db.stores[n-1]
		db.stores = db.stores[:n-1]
		return s, true
	}
	if r := db.returns; r != nil && r.m+1 < r.n {
		return r.store(), true
	}
	return glulx.Store{}, false
}

func (db *debts) take() debts {
	ret := *db
	db.stores, db.returns = nil, nil
	return ret
}

// appendEarlier adds debts that are paid before the existing ones. A return
// makes the existing ones moot.
func (db *debts) appendEarlier(other debts) {
	if other.returns != nil {
		db.stores = other.stores
		db.returns = other.returns
		return
	}
	db.stores = append(db.stores, other.stores...)
}

// declareBankruptcy forgives every debt, for code after an unconditional
// branch.
func (db *debts) declareBankruptcy() {
	db.stores, db.returns = nil, nil
}

func (db *debts) mustBeEmpty() {
	if db.len() != 0 || db.returns != nil {
		panic(fmt.Sprintf("BUG: %d debts were dropped", db.len()))
	}
}

// gen pays every outstanding debt from the stack.
func (db *debts) gen(c *compilation) {
	for n := len(db.stores); n > 0; n-- {
		c.emit(glulx.Copy(glulx.Pop(), db.stores[n-1]))
	}
	db.stores = nil
	if r := db.returns; r != nil {
		if r.n == 0 {
			c.emit(glulx.Ret(glulx.Imm(0)))
		} else {
			for r.m+1 < r.n {
				c.emit(glulx.Copy(glulx.Pop(), r.store()))
			}
			c.emit(glulx.Ret(glulx.Pop()))
		}
		db.returns = nil
	}
}

type copyPair struct {
	load  glulx.Load
	store glulx.Store
}

// genCopies pays debts from credits, copying directly between locations where
// that is safe. A copy whose source an earlier copy overwrites is spilled
// through the stack instead.
func (c *compilation) genCopies(cr credits, db debts) {
	if len(db.stores) == 0 && db.returns != nil && db.returns.m == 0 && db.returns.n == 1 {
		db.returns = nil
		op := cr.pop()
		cr.gen(c)
		c.emit(glulx.Ret(op))
		return
	}

	poisoned := map[glulx.Load]struct{}{}
	var good []copyPair
	var oops *copyPair
	for {
		store, ok := db.popForCopy()
		if !ok {
			break
		}
		load := cr.pop()
		if _, bad := poisoned[load]; bad {
			oops = &copyPair{load: load, store: store}
			break
		}
		if sym, ok := store.Symmetric(); ok {
			poisoned[sym] = struct{}{}
		}
		good = append(good, copyPair{load: load, store: store})
	}

	cr.gen(c)
	if oops != nil {
		c.emit(glulx.Copy(oops.load, glulx.Push()))
	}
	for _, p := range good {
		c.copyIfSensible(p.load, p.store)
	}
	if oops != nil {
		c.emit(glulx.Copy(glulx.Pop(), oops.store))
	}
	db.gen(c)
}

// copyIfSensible emits a copy unless it would do nothing.
func (c *compilation) copyIfSensible(load glulx.Load, store glulx.Store) {
	if store.Kind == glulx.StoreDiscard && load.Kind != glulx.LoadPop {
		return
	}
	if load.Kind == glulx.LoadPop && store.Kind == glulx.StorePush {
		return
	}
	if sym, ok := store.Symmetric(); ok && sym == load {
		return
	}
	c.emit(glulx.Copy(load, store))
}
