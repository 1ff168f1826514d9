package compiler

import (
	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

// Binary i64 routines are called with x below y, so their locals are:
const (
	yHi = iota
	yLo
	xHi
	xLo
)

// neg64 negates the two-word value in locals hi and lo in place.
func (c *compilation) neg64(hi, lo uint32) []glulx.Item {
	noBorrow, done := c.gen.Gen("neg64_noborrow"), c.gen.Gen("neg64_done")
	return []glulx.Item{
		glulx.Jz(lc(lo), noBorrow),
		glulx.Bitnot(lc(hi), slc(hi)),
		glulx.Jump(done),
		glulx.Mark(noBorrow),
		glulx.Neg(lc(hi), slc(hi)),
		glulx.Mark(done),
		glulx.Neg(lc(lo), slc(lo)),
	}
}

func concat(parts ...[]glulx.Item) []glulx.Item {
	var out []glulx.Item
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// genI64Routines emits arithmetic on two-word integers. Each routine returns
// the low word and leaves the high word in hi_return.
func (c *compilation) genI64Routines() {
	rt := c.rt
	hr := glulx.StoreLabel(c.layout.hiReturn.addr)

	noCarry := c.gen.Gen("add64_nocarry")
	c.routine(c.op(wasm.OpcodeI64Add), 6,
		glulx.Add(lc(xLo), lc(yLo), slc(4)),
		glulx.Add(lc(xHi), lc(yHi), slc(5)),
		glulx.Jgeu(lc(4), lc(xLo), noCarry),
		glulx.Add(lc(5), imm(1), slc(5)),
		glulx.Mark(noCarry),
		glulx.Copy(lc(5), hr),
		glulx.Ret(lc(4)),
	)
	noBorrow := c.gen.Gen("sub64_noborrow")
	c.routine(c.op(wasm.OpcodeI64Sub), 5,
		glulx.Sub(lc(xHi), lc(yHi), slc(4)),
		glulx.Jgeu(lc(xLo), lc(yLo), noBorrow),
		glulx.Sub(lc(4), imm(1), slc(4)),
		glulx.Mark(noBorrow),
		glulx.Copy(lc(4), hr),
		glulx.Sub(lc(xLo), lc(yLo), push()),
		retp,
	)

	// The low words multiply as 16-bit halves:
	// xLo*yLo = a1*b1<<32 + (a0*b1 + a1*b0)<<16 + a0*b0.
	noMidCarry, noLoCarry := c.gen.Gen("mul64_nomidcarry"), c.gen.Gen("mul64_nolocarry")
	const a0, a1, b0, b1, mid, rlo, rhi, tmp = 4, 5, 6, 7, 8, 9, 10, 11
	c.routine(c.op(wasm.OpcodeI64Mul), 12,
		glulx.Bitand(lc(xLo), uimm(0xffff), slc(a0)),
		glulx.Ushiftr(lc(xLo), imm(16), slc(a1)),
		glulx.Bitand(lc(yLo), uimm(0xffff), slc(b0)),
		glulx.Ushiftr(lc(yLo), imm(16), slc(b1)),
		glulx.Mul(lc(a0), lc(b0), slc(rlo)),
		glulx.Mul(lc(a1), lc(b1), slc(rhi)),
		glulx.Mul(lc(a0), lc(b1), slc(mid)),
		glulx.Mul(lc(a1), lc(b0), slc(tmp)),
		glulx.Add(lc(mid), lc(tmp), slc(mid)),
		glulx.Jgeu(lc(mid), lc(tmp), noMidCarry),
		glulx.Add(lc(rhi), uimm(0x10000), slc(rhi)),
		glulx.Mark(noMidCarry),
		glulx.Ushiftr(lc(mid), imm(16), push()),
		glulx.Add(lc(rhi), pop(), slc(rhi)),
		glulx.Shiftl(lc(mid), imm(16), slc(tmp)),
		glulx.Add(lc(rlo), lc(tmp), slc(rlo)),
		glulx.Jgeu(lc(rlo), lc(tmp), noLoCarry),
		glulx.Add(lc(rhi), imm(1), slc(rhi)),
		glulx.Mark(noLoCarry),
		glulx.Mul(lc(xHi), lc(yLo), push()),
		glulx.Add(lc(rhi), pop(), slc(rhi)),
		glulx.Mul(lc(xLo), lc(yHi), push()),
		glulx.Add(lc(rhi), pop(), slc(rhi)),
		glulx.Copy(lc(rhi), hr),
		glulx.Ret(lc(rlo)),
	)

	bitwise := func(op wasm.Opcode, f func(l1, l2 glulx.Load, s glulx.Store) glulx.Instr) {
		c.routine(c.op(op), 4,
			f(lc(xHi), lc(yHi), hr),
			f(lc(xLo), lc(yLo), push()),
			retp,
		)
	}
	bitwise(wasm.OpcodeI64And, glulx.Bitand)
	bitwise(wasm.OpcodeI64Or, glulx.Bitor)
	bitwise(wasm.OpcodeI64Xor, glulx.Bitxor)

	c.genI64Shifts()
	c.genI64Division()

	// Bit counts take (hi, lo).
	lowHalf := c.gen.Gen("clz64_low")
	c.routine(c.op(wasm.OpcodeI64Clz), 2,
		glulx.Copy(imm(0), hr),
		glulx.Jz(lc(0), lowHalf),
		glulx.Copy(lc(0), push()),
		glulx.Tailcall(glulx.ImmLabel(rt.clz), imm(1)),
		glulx.Mark(lowHalf),
		glulx.Callfi(glulx.ImmLabel(rt.clz), lc(1), push()),
		glulx.Add(pop(), imm(32), push()),
		retp,
	)
	highHalf := c.gen.Gen("ctz64_high")
	c.routine(c.op(wasm.OpcodeI64Ctz), 2,
		glulx.Copy(imm(0), hr),
		glulx.Jz(lc(1), highHalf),
		glulx.Copy(lc(1), push()),
		glulx.Tailcall(glulx.ImmLabel(rt.ctz), imm(1)),
		glulx.Mark(highHalf),
		glulx.Callfi(glulx.ImmLabel(rt.ctz), lc(0), push()),
		glulx.Add(pop(), imm(32), push()),
		retp,
	)
	popcnt := glulx.ImmLabel(c.op(wasm.OpcodeI32Popcnt))
	c.routine(c.op(wasm.OpcodeI64Popcnt), 2,
		glulx.Copy(imm(0), hr),
		glulx.Callfi(popcnt, lc(0), push()),
		glulx.Callfi(popcnt, lc(1), push()),
		glulx.Add(pop(), pop(), push()),
		retp,
	)

	c.routine(c.op(wasm.OpcodeI64Eqz), 2,
		retFalse(glulx.Jnz(lc(0), glulx.Label{})),
		retFalse(glulx.Jnz(lc(1), glulx.Label{})),
		glulx.Ret(imm(1)),
	)
	c.routine(c.op(wasm.OpcodeI64Eq), 4,
		retFalse(glulx.Jne(lc(xHi), lc(yHi), glulx.Label{})),
		retFalse(glulx.Jne(lc(xLo), lc(yLo), glulx.Label{})),
		glulx.Ret(imm(1)),
	)
	c.routine(c.op(wasm.OpcodeI64Ne), 4,
		retTrue(glulx.Jne(lc(xHi), lc(yHi), glulx.Label{})),
		retTrue(glulx.Jne(lc(xLo), lc(yLo), glulx.Label{})),
		ret0,
	)

	type jump func(l1, l2 glulx.Load, target glulx.Label) glulx.Instr
	// The high words decide unless they are equal, then the low words decide
	// unsigned.
	cmp := func(op wasm.Opcode, hiTrue, hiFalse, loTrue jump) {
		c.routine(c.op(op), 4,
			retTrue(hiTrue(lc(xHi), lc(yHi), glulx.Label{})),
			retFalse(hiFalse(lc(xHi), lc(yHi), glulx.Label{})),
			retTrue(loTrue(lc(xLo), lc(yLo), glulx.Label{})),
			ret0,
		)
	}
	cmp(wasm.OpcodeI64LtS, glulx.Jlt, glulx.Jgt, glulx.Jltu)
	cmp(wasm.OpcodeI64LtU, glulx.Jltu, glulx.Jgtu, glulx.Jltu)
	cmp(wasm.OpcodeI64GtS, glulx.Jgt, glulx.Jlt, glulx.Jgtu)
	cmp(wasm.OpcodeI64GtU, glulx.Jgtu, glulx.Jltu, glulx.Jgtu)
	cmp(wasm.OpcodeI64LeS, glulx.Jlt, glulx.Jgt, glulx.Jleu)
	cmp(wasm.OpcodeI64LeU, glulx.Jltu, glulx.Jgtu, glulx.Jleu)
	cmp(wasm.OpcodeI64GeS, glulx.Jgt, glulx.Jlt, glulx.Jgeu)
	cmp(wasm.OpcodeI64GeU, glulx.Jgtu, glulx.Jltu, glulx.Jgeu)
}

// genI64Shifts emits shifts and rotates, whose count is the low word of y.
func (c *compilation) genI64Shifts() {
	hr := glulx.StoreLabel(c.layout.hiReturn.addr)
	const n, res = 4, 5

	ident, big := c.gen.Gen("shl64_ident"), c.gen.Gen("shl64_big")
	c.routine(c.op(wasm.OpcodeI64Shl), 5,
		glulx.Bitand(lc(yLo), imm(63), slc(n)),
		glulx.Jz(lc(n), ident),
		glulx.Jgeu(lc(n), imm(32), big),
		glulx.Shiftl(lc(xHi), lc(n), push()),
		glulx.Sub(imm(32), lc(n), push()),
		glulx.Ushiftr(lc(xLo), pop(), push()),
		glulx.Bitor(pop(), pop(), hr),
		glulx.Shiftl(lc(xLo), lc(n), push()),
		retp,
		glulx.Mark(big),
		glulx.Sub(lc(n), imm(32), push()),
		glulx.Shiftl(lc(xLo), pop(), hr),
		ret0,
		glulx.Mark(ident),
		glulx.Copy(lc(xHi), hr),
		glulx.Ret(lc(xLo)),
	)

	shr := func(op wasm.Opcode, hiShift func(l1, l2 glulx.Load, s glulx.Store) glulx.Instr, fill glulx.Instr) {
		ident, big := c.gen.Gen("shr64_ident"), c.gen.Gen("shr64_big")
		c.routine(c.op(op), 6,
			glulx.Bitand(lc(yLo), imm(63), slc(n)),
			glulx.Jz(lc(n), ident),
			glulx.Jgeu(lc(n), imm(32), big),
			glulx.Ushiftr(lc(xLo), lc(n), push()),
			glulx.Sub(imm(32), lc(n), push()),
			glulx.Shiftl(lc(xHi), pop(), push()),
			glulx.Bitor(pop(), pop(), slc(res)),
			hiShift(lc(xHi), lc(n), hr),
			glulx.Ret(lc(res)),
			glulx.Mark(big),
			glulx.Sub(lc(n), imm(32), push()),
			hiShift(lc(xHi), pop(), push()),
			fill,
			retp,
			glulx.Mark(ident),
			glulx.Copy(lc(xHi), hr),
			glulx.Ret(lc(xLo)),
		)
	}
	shr(wasm.OpcodeI64ShrU, glulx.Ushiftr, glulx.Copy(imm(0), hr))
	shr(wasm.OpcodeI64ShrS, glulx.Sshiftr, glulx.Sshiftr(lc(xHi), imm(31), hr))

	// rotl64 swaps the halves for counts of 32 or more, leaving a rotate by
	// less than a word.
	const h, l, inv = 5, 6, 7
	small, rot := c.gen.Gen("rotl64_small"), c.gen.Gen("rotl64_rot")
	c.routine(c.rt.rotl64, 8,
		glulx.Bitand(lc(yLo), imm(63), slc(n)),
		glulx.Copy(lc(xHi), slc(h)),
		glulx.Copy(lc(xLo), slc(l)),
		glulx.Jltu(lc(n), imm(32), small),
		glulx.Copy(lc(xLo), slc(h)),
		glulx.Copy(lc(xHi), slc(l)),
		glulx.Sub(lc(n), imm(32), slc(n)),
		glulx.Mark(small),
		glulx.Jnz(lc(n), rot),
		glulx.Copy(lc(h), hr),
		glulx.Ret(lc(l)),
		glulx.Mark(rot),
		glulx.Sub(imm(32), lc(n), slc(inv)),
		glulx.Shiftl(lc(h), lc(n), push()),
		glulx.Ushiftr(lc(l), lc(inv), push()),
		glulx.Bitor(pop(), pop(), hr),
		glulx.Shiftl(lc(l), lc(n), push()),
		glulx.Ushiftr(lc(h), lc(inv), push()),
		glulx.Bitor(pop(), pop(), push()),
		retp,
	)
	c.rt.ops[wasm.OpcodeI64Rotl] = c.rt.rotl64
	// A right rotate by n is a left rotate by 64-n.
	c.routine(c.op(wasm.OpcodeI64Rotr), 5,
		glulx.Bitand(lc(yLo), imm(63), push()),
		glulx.Sub(imm(64), pop(), push()),
		glulx.Bitand(pop(), imm(63), slc(n)),
		glulx.Copy(lc(xLo), push()),
		glulx.Copy(lc(xHi), push()),
		glulx.Copy(lc(n), push()),
		glulx.Copy(imm(0), push()),
		glulx.Tailcall(glulx.ImmLabel(c.rt.rotl64), imm(4)),
	)
}

// genI64Division emits division by shift and subtract. divmodu64 takes (mode,
// yHi, yLo, xHi, xLo) and returns the quotient for mode 0, the remainder
// otherwise.
func (c *compilation) genI64Division() {
	rt := c.rt
	hr := glulx.StoreLabel(c.layout.hiReturn.addr)
	hrLoad := glulx.Deref(c.layout.hiReturn.addr)

	const mode, dvHi, dvLo, ndHi, ndLo, qh, ql, rh, rl, i, carry = 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10
	loop, subtract, noBorrow, next, rem := c.gen.Gen("div64_loop"), c.gen.Gen("div64_sub"),
		c.gen.Gen("div64_noborrow"), c.gen.Gen("div64_next"), c.gen.Gen("div64_rem")
	// shiftInto shifts hi left by one, bringing in the top bit of lo.
	shiftInto := func(hi, lo uint32) []glulx.Item {
		return []glulx.Item{
			glulx.Shiftl(lc(hi), imm(1), slc(hi)),
			glulx.Ushiftr(lc(lo), imm(31), push()),
			glulx.Bitor(lc(hi), pop(), slc(hi)),
		}
	}
	c.routine(rt.divmodu64, 11, concat(
		[]glulx.Item{
			glulx.Bitor(lc(dvHi), lc(dvLo), push()),
			glulx.Jz(pop(), rt.trapIntegerDivideByZero),
			glulx.Copy(imm(64), slc(i)),
			glulx.Mark(loop),
			glulx.Ushiftr(lc(rh), imm(31), slc(carry)),
		},
		shiftInto(rh, rl),
		shiftInto(rl, ndHi),
		shiftInto(ndHi, ndLo),
		[]glulx.Item{glulx.Shiftl(lc(ndLo), imm(1), slc(ndLo))},
		shiftInto(qh, ql),
		[]glulx.Item{
			glulx.Shiftl(lc(ql), imm(1), slc(ql)),
			glulx.Jnz(lc(carry), subtract),
			glulx.Jgtu(lc(rh), lc(dvHi), subtract),
			glulx.Jltu(lc(rh), lc(dvHi), next),
			glulx.Jltu(lc(rl), lc(dvLo), next),
			glulx.Mark(subtract),
			glulx.Jgeu(lc(rl), lc(dvLo), noBorrow),
			glulx.Sub(lc(rh), imm(1), slc(rh)),
			glulx.Mark(noBorrow),
			glulx.Sub(lc(rl), lc(dvLo), slc(rl)),
			glulx.Sub(lc(rh), lc(dvHi), slc(rh)),
			glulx.Bitor(lc(ql), imm(1), slc(ql)),
			glulx.Mark(next),
			glulx.Sub(lc(i), imm(1), slc(i)),
			glulx.Jnz(lc(i), loop),
			glulx.Jnz(lc(mode), rem),
			glulx.Copy(lc(qh), hr),
			glulx.Ret(lc(ql)),
			glulx.Mark(rem),
			glulx.Copy(lc(rh), hr),
			glulx.Ret(lc(rl)),
		},
	)...)

	unsigned := func(op wasm.Opcode, m int32) {
		c.routine(c.op(op), 4,
			glulx.Copy(lc(xLo), push()),
			glulx.Copy(lc(xHi), push()),
			glulx.Copy(lc(yLo), push()),
			glulx.Copy(lc(yHi), push()),
			glulx.Copy(imm(m), push()),
			glulx.Tailcall(glulx.ImmLabel(rt.divmodu64), imm(5)),
		)
	}
	unsigned(wasm.OpcodeI64DivU, 0)
	unsigned(wasm.OpcodeI64RemU, 1)

	// The signed forms divide magnitudes. A quotient is negative when the
	// signs differ and a remainder takes the sign of the dividend.
	const neg, resLo, resHi = 4, 5, 6
	signed := func(op wasm.Opcode, m int32) {
		xPos, yPos, done := c.gen.Gen("div64_xpos"), c.gen.Gen("div64_ypos"), c.gen.Gen("div64_done")
		var body []glulx.Item
		if m == 0 {
			ok := c.gen.Gen("div64_ok")
			body = append(body,
				glulx.Jne(lc(xHi), uimm(0x80000000), ok),
				glulx.Jnz(lc(xLo), ok),
				glulx.Jne(lc(yHi), imm(-1), ok),
				glulx.Jne(lc(yLo), imm(-1), ok),
				glulx.Jump(rt.trapIntegerOverflow),
				glulx.Mark(ok),
			)
		}
		body = append(body, glulx.Jge(lc(xHi), imm(0), xPos))
		body = append(body, c.neg64(xHi, xLo)...)
		body = append(body, glulx.Copy(imm(1), slc(neg)), glulx.Mark(xPos))
		body = append(body, glulx.Jge(lc(yHi), imm(0), yPos))
		body = append(body, c.neg64(yHi, yLo)...)
		if m == 0 {
			body = append(body, glulx.Bitxor(lc(neg), imm(1), slc(neg)))
		}
		body = append(body,
			glulx.Mark(yPos),
			glulx.Copy(lc(xLo), push()),
			glulx.Copy(lc(xHi), push()),
			glulx.Copy(lc(yLo), push()),
			glulx.Copy(lc(yHi), push()),
			glulx.Copy(imm(m), push()),
			glulx.Call(glulx.ImmLabel(rt.divmodu64), imm(5), slc(resLo)),
			glulx.Copy(hrLoad, slc(resHi)),
			glulx.Jz(lc(neg), done),
		)
		body = append(body, c.neg64(resHi, resLo)...)
		body = append(body,
			glulx.Mark(done),
			glulx.Copy(lc(resHi), hr),
			glulx.Ret(lc(resLo)),
		)
		c.routine(c.op(op), 7, body...)
	}
	signed(wasm.OpcodeI64DivS, 0)
	signed(wasm.OpcodeI64RemS, 1)
}
