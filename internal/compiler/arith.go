package compiler

import (
	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

type (
	unaryOp  func(l1 glulx.Load, s1 glulx.Store) glulx.Instr
	binaryOp func(l1, l2 glulx.Load, s1 glulx.Store) glulx.Instr
	dUnaryOp func(l1, l2 glulx.Load, s1, s2 glulx.Store) glulx.Instr
	dBinOp   func(l1, l2, l3, l4 glulx.Load, s1, s2 glulx.Store) glulx.Instr
)

// Word-sized operations that map onto one opcode. Commutative ones can take
// their operands in either order.
var (
	commutativeOps = map[wasm.Opcode]binaryOp{
		wasm.OpcodeI32Add: glulx.Add,
		wasm.OpcodeI32Mul: glulx.Mul,
		wasm.OpcodeI32And: glulx.Bitand,
		wasm.OpcodeI32Or:  glulx.Bitor,
		wasm.OpcodeI32Xor: glulx.Bitxor,
		wasm.OpcodeF32Add: glulx.Fadd,
		wasm.OpcodeF32Mul: glulx.Fmul,
	}
	orderedOps = map[wasm.Opcode]binaryOp{
		wasm.OpcodeI32Sub: glulx.Sub,
		wasm.OpcodeF32Sub: glulx.Fsub,
		wasm.OpcodeF32Div: glulx.Fdiv,
	}
	unaryOps = map[wasm.Opcode]unaryOp{
		wasm.OpcodeI32Extend8S:    glulx.Sexb,
		wasm.OpcodeI32Extend16S:   glulx.Sexs,
		wasm.OpcodeF32Ceil:        glulx.Ceil,
		wasm.OpcodeF32Floor:       glulx.Floor,
		wasm.OpcodeF32Sqrt:        glulx.Sqrt,
		wasm.OpcodeF32ConvertI32S: glulx.Numtof,
		wasm.OpcodeF32Abs: func(l1 glulx.Load, s1 glulx.Store) glulx.Instr {
			return glulx.Bitand(l1, glulx.Uimm(0x7fffffff), s1)
		},
		wasm.OpcodeF32Neg: func(l1 glulx.Load, s1 glulx.Store) glulx.Instr {
			return glulx.Bitxor(l1, glulx.Uimm(0x80000000), s1)
		},
	}
	// immShifts are the i32 shifts done inline when the count is a constant.
	immShifts = map[wasm.Opcode]binaryOp{
		wasm.OpcodeI32Shl:  glulx.Shiftl,
		wasm.OpcodeI32ShrS: glulx.Sshiftr,
		wasm.OpcodeI32ShrU: glulx.Ushiftr,
	}

	dCommutativeOps = map[wasm.Opcode]dBinOp{
		wasm.OpcodeF64Add: glulx.Dadd,
		wasm.OpcodeF64Mul: glulx.Dmul,
	}
	dOrderedOps = map[wasm.Opcode]dBinOp{
		wasm.OpcodeF64Sub: glulx.Dsub,
		wasm.OpcodeF64Div: glulx.Ddiv,
	}
	dUnaryOps = map[wasm.Opcode]dUnaryOp{
		wasm.OpcodeF64Ceil:  glulx.Dceil,
		wasm.OpcodeF64Floor: glulx.Dfloor,
		wasm.OpcodeF64Sqrt:  glulx.Dsqrt,
	}
	// hiWordOps change only the sign bit, which lives in the high word.
	hiWordOps = map[wasm.Opcode]unaryOp{
		wasm.OpcodeF64Abs: unaryOps[wasm.OpcodeF32Abs],
		wasm.OpcodeF64Neg: unaryOps[wasm.OpcodeF32Neg],
	}
	i64Bitwise = map[wasm.Opcode]binaryOp{
		wasm.OpcodeI64And: glulx.Bitand,
		wasm.OpcodeI64Or:  glulx.Bitor,
		wasm.OpcodeI64Xor: glulx.Bitxor,
	}
)

// genArith lowers numeric instructions that need no runtime routine, returning
// false for anything else.
func (c *compilation) genArith(n *node, cr *credits, db *debts) bool {
	if f, ok := commutativeOps[n.Op]; ok {
		y := cr.pop()
		x := cr.pop()
		out := db.pop()
		cr.gen(c)
		c.emit(f(y, x, out))
		return true
	}
	if f, ok := orderedOps[n.Op]; ok {
		out := db.pop()
		x, y := c.popSwappedPair(cr)
		cr.gen(c)
		c.emit(f(x, y, out))
		return true
	}
	if f, ok := unaryOps[n.Op]; ok {
		x := cr.pop()
		out := db.pop()
		cr.gen(c)
		c.emit(f(x, out))
		return true
	}
	if f, ok := immShifts[n.Op]; ok && cr.len() >= 1 && isImm(cr.loads[cr.len()-1]) {
		y := cr.pop()
		x := cr.pop()
		out := db.pop()
		cr.gen(c)
		count := uint32(y.Value) & 31
		if count == 0 {
			c.copyIfSensible(x, out)
		} else {
			c.emit(f(x, glulx.Uimm(count), out))
		}
		return true
	}
	if f, ok := dCommutativeOps[n.Op]; ok {
		yHi, yLo := cr.popHiLo()
		xHi, xLo := cr.popHiLo()
		lo, hi := db.popLoHi()
		cr.gen(c)
		c.emit(f(yHi, yLo, xHi, xLo, lo, hi))
		return true
	}
	if f, ok := dOrderedOps[n.Op]; ok {
		lo, hi := db.popLoHi()
		xHi, xLo, yHi, yLo := c.popSwappedQuad(cr)
		cr.gen(c)
		c.emit(f(xHi, xLo, yHi, yLo, lo, hi))
		return true
	}
	if f, ok := dUnaryOps[n.Op]; ok {
		xHi, xLo := cr.popHiLo()
		lo, hi := db.popLoHi()
		cr.gen(c)
		c.emit(f(xHi, xLo, lo, hi))
		return true
	}
	if f, ok := hiWordOps[n.Op]; ok {
		xHi, xLo := cr.popHiLo()
		lo, hi := db.popLoHi()
		cr.gen(c)
		c.genHiWordOp(f, xHi, xLo, lo, hi)
		return true
	}
	if f, ok := i64Bitwise[n.Op]; ok && cr.len() >= 4 {
		yHi, yLo := cr.popHiLo()
		xHi, xLo := cr.popHiLo()
		lo, hi := db.popLoHi()
		cr.gen(c)
		if hi.Kind == glulx.StorePush {
			c.emit(f(xLo, yLo, lo), f(xHi, yHi, hi))
		} else {
			c.emit(f(xHi, yHi, hi), f(xLo, yLo, lo))
		}
		return true
	}

	switch n.Op {
	case wasm.OpcodeI32WrapI64:
		hi, lo := cr.popHiLo()
		out := db.pop()
		cr.gen(c)
		c.copyIfSensible(hi, glulx.Discard())
		c.copyIfSensible(lo, out)
	case wasm.OpcodeI64ExtendI32S:
		x := cr.pop()
		lo, hi := db.popLoHi()
		cr.gen(c)
		c.genSignExtend(x, lo, hi)
	case wasm.OpcodeI64ExtendI32U:
		x := cr.pop()
		lo, hi := db.popLoHi()
		cr.gen(c)
		c.copyIfSensible(x, lo)
		c.emit(glulx.Copy(glulx.Imm(0), hi))
	case wasm.OpcodeI64Extend8S, wasm.OpcodeI64Extend16S, wasm.OpcodeI64Extend32S:
		xHi, xLo := cr.popHiLo()
		lo, hi := db.popLoHi()
		cr.gen(c)
		c.copyIfSensible(xHi, glulx.Discard())
		switch n.Op {
		case wasm.OpcodeI64Extend8S:
			c.emit(glulx.Sexb(xLo, glulx.Push()))
			xLo = glulx.Pop()
		case wasm.OpcodeI64Extend16S:
			c.emit(glulx.Sexs(xLo, glulx.Push()))
			xLo = glulx.Pop()
		}
		c.genSignExtend(xLo, lo, hi)
	case wasm.OpcodeF64ConvertI32S:
		x := cr.pop()
		lo, hi := db.popLoHi()
		cr.gen(c)
		c.emit(glulx.Numtod(x, lo, hi))
	case wasm.OpcodeF64PromoteF32:
		x := cr.pop()
		lo, hi := db.popLoHi()
		cr.gen(c)
		c.emit(glulx.Ftod(x, lo, hi))
	case wasm.OpcodeF32DemoteF64:
		xHi, xLo := cr.popHiLo()
		out := db.pop()
		cr.gen(c)
		c.emit(glulx.Dtof(xHi, xLo, out))
	case wasm.OpcodeI32ReinterpretF32, wasm.OpcodeF32ReinterpretI32,
		wasm.OpcodeI64ReinterpretF64, wasm.OpcodeF64ReinterpretI64:
		c.genCopies(cr.take(), db.take())
	case wasm.OpcodeRefIsNull:
		c.genRuntimeCall(c.rt.ops[wasm.OpcodeI32Eqz], 1, 1, cr, db)
	default:
		return false
	}
	return true
}

func isImm(l glulx.Load) bool {
	return l.Kind == glulx.LoadImm
}

// genHiWordOp applies f to the high word of a two-word value and passes the low
// word through. The high word is on top, so it is computed first unless the low
// word still has to be pushed beneath it.
func (c *compilation) genHiWordOp(f unaryOp, xHi, xLo glulx.Load, lo, hi glulx.Store) {
	if lo.Kind == glulx.StorePush {
		c.copyIfSensible(xLo, lo)
		c.emit(f(xHi, hi))
		return
	}
	c.emit(f(xHi, hi))
	c.copyIfSensible(xLo, lo)
}
