package compiler

import (
	"math"

	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

// dconst returns the words of a double constant.
func dconst(v float64) (hi, lo glulx.Load) {
	b := math.Float64bits(v)
	return uimm(uint32(b >> 32)), uimm(uint32(b))
}

type (
	fjump func(l1, l2 glulx.Load, target glulx.Label) glulx.Instr
	djump func(l1, l2, l3, l4 glulx.Load, target glulx.Label) glulx.Instr
)

// jdconst branches when the double in locals (hi, lo) compares to v.
func jdconst(j djump, hi, lo uint32, v float64, target glulx.Label) glulx.Instr {
	vh, vl := dconst(v)
	return j(lc(hi), lc(lo), vh, vl, target)
}

// genFloatRoutines emits the float operations Glulx has no opcode for.
func (c *compilation) genFloatRoutines() {
	hr := glulx.StoreLabel(c.layout.hiReturn.addr)
	signBit := uimm(0x80000000)

	negative := c.gen.Gen("trunc_neg")
	c.routine(c.op(wasm.OpcodeF32Trunc), 1,
		glulx.Jflt(lc(0), imm(0), negative),
		glulx.Floor(lc(0), push()),
		retp,
		glulx.Mark(negative),
		glulx.Ceil(lc(0), push()),
		retp,
	)

	// Ties go to the even neighbour, and a zero result keeps the sign of x.
	up, down, nonzero := c.gen.Gen("nearest_up"), c.gen.Gen("nearest_down"), c.gen.Gen("nearest_nonzero")
	c.routine(c.op(wasm.OpcodeF32Nearest), 4,
		glulx.Floor(lc(0), slc(1)),
		glulx.Fsub(lc(0), lc(1), slc(2)),
		glulx.Jflt(lc(2), glulx.ImmF32(0.5), down),
		glulx.Jfgt(lc(2), glulx.ImmF32(0.5), up),
		glulx.Fmod(lc(1), glulx.ImmF32(2), slc(3), glulx.Discard()),
		glulx.Jfeq(lc(3), imm(0), imm(0), down),
		glulx.Mark(up),
		glulx.Fadd(lc(1), glulx.ImmF32(1), slc(1)),
		glulx.Mark(down),
		glulx.Jfne(lc(1), imm(0), imm(0), nonzero),
		glulx.Bitand(lc(0), signBit, push()),
		retp,
		glulx.Mark(nonzero),
		glulx.Ret(lc(1)),
	)

	// min and max take (y, x). NaNs propagate, and of two equal values the
	// bitwise combination picks the right signed zero.
	minmax := func(op wasm.Opcode, less fjump, same func(l1, l2 glulx.Load, s glulx.Store) glulx.Instr) {
		retX, retY := c.gen.Gen("minmax_x"), c.gen.Gen("minmax_y")
		c.routine(c.op(op), 2,
			glulx.Jisnan(lc(1), retX),
			glulx.Jisnan(lc(0), retY),
			less(lc(1), lc(0), retX),
			less(lc(0), lc(1), retY),
			same(lc(0), lc(1), push()),
			retp,
			glulx.Mark(retX),
			glulx.Ret(lc(1)),
			glulx.Mark(retY),
			glulx.Ret(lc(0)),
		)
	}
	minmax(wasm.OpcodeF32Min, glulx.Jflt, glulx.Bitor)
	minmax(wasm.OpcodeF32Max, glulx.Jfgt, glulx.Bitand)
	c.routine(c.op(wasm.OpcodeF32Copysign), 2,
		glulx.Bitand(lc(1), uimm(0x7fffffff), push()),
		glulx.Bitand(lc(0), signBit, push()),
		glulx.Bitor(pop(), pop(), push()),
		retp,
	)

	// Unordered operands fail every comparison but ne, which Glulx provides.
	fcmp := func(op wasm.Opcode, j fjump) {
		c.routine(c.op(op), 2, retTrue(j(lc(1), lc(0), glulx.Label{})), ret0)
	}
	c.routine(c.op(wasm.OpcodeF32Eq), 2, retTrue(glulx.Jfeq(lc(1), lc(0), imm(0), glulx.Label{})), ret0)
	c.routine(c.op(wasm.OpcodeF32Ne), 2, retTrue(glulx.Jfne(lc(1), lc(0), imm(0), glulx.Label{})), ret0)
	fcmp(wasm.OpcodeF32Lt, glulx.Jflt)
	fcmp(wasm.OpcodeF32Gt, glulx.Jfgt)
	fcmp(wasm.OpcodeF32Le, glulx.Jfle)
	fcmp(wasm.OpcodeF32Ge, glulx.Jfge)

	// Double routines take (hi, lo), or (yHi, yLo, xHi, xLo) for two
	// operands.
	zh, zl := dconst(0)
	negative = c.gen.Gen("dtrunc_neg")
	c.routine(c.op(wasm.OpcodeF64Trunc), 2,
		glulx.Jdlt(lc(0), lc(1), zh, zl, negative),
		glulx.Dfloor(lc(0), lc(1), slc(1), slc(0)),
		glulx.Copy(lc(0), hr),
		glulx.Ret(lc(1)),
		glulx.Mark(negative),
		glulx.Dceil(lc(0), lc(1), slc(1), slc(0)),
		glulx.Copy(lc(0), hr),
		glulx.Ret(lc(1)),
	)

	const fh, fl, dh, dl = 2, 3, 4, 5
	up, down, nonzero = c.gen.Gen("dnearest_up"), c.gen.Gen("dnearest_down"), c.gen.Gen("dnearest_nonzero")
	twoH, twoL := dconst(2)
	oneH, oneL := dconst(1)
	c.routine(c.op(wasm.OpcodeF64Nearest), 6,
		glulx.Dfloor(lc(0), lc(1), slc(fl), slc(fh)),
		glulx.Dsub(lc(0), lc(1), lc(fh), lc(fl), slc(dl), slc(dh)),
		jdconst(glulx.Jdlt, dh, dl, 0.5, down),
		jdconst(glulx.Jdgt, dh, dl, 0.5, up),
		glulx.Dmodr(lc(fh), lc(fl), twoH, twoL, slc(dl), slc(dh)),
		glulx.Jdeq(lc(dh), lc(dl), zh, zl, zh, zl, down),
		glulx.Mark(up),
		glulx.Dadd(lc(fh), lc(fl), oneH, oneL, slc(fl), slc(fh)),
		glulx.Mark(down),
		glulx.Jdne(lc(fh), lc(fl), zh, zl, zh, zl, nonzero),
		glulx.Bitand(lc(0), signBit, hr),
		ret0,
		glulx.Mark(nonzero),
		glulx.Copy(lc(fh), hr),
		glulx.Ret(lc(fl)),
	)

	dminmax := func(op wasm.Opcode, less djump, same func(l1, l2 glulx.Load, s glulx.Store) glulx.Instr) {
		retX, retY := c.gen.Gen("dminmax_x"), c.gen.Gen("dminmax_y")
		c.routine(c.op(op), 4,
			glulx.Jdisnan(lc(xHi), lc(xLo), retX),
			glulx.Jdisnan(lc(yHi), lc(yLo), retY),
			less(lc(xHi), lc(xLo), lc(yHi), lc(yLo), retX),
			less(lc(yHi), lc(yLo), lc(xHi), lc(xLo), retY),
			same(lc(xHi), lc(yHi), hr),
			glulx.Ret(lc(yLo)),
			glulx.Mark(retX),
			glulx.Copy(lc(xHi), hr),
			glulx.Ret(lc(xLo)),
			glulx.Mark(retY),
			glulx.Copy(lc(yHi), hr),
			glulx.Ret(lc(yLo)),
		)
	}
	dminmax(wasm.OpcodeF64Min, glulx.Jdlt, glulx.Bitor)
	dminmax(wasm.OpcodeF64Max, glulx.Jdgt, glulx.Bitand)
	c.routine(c.op(wasm.OpcodeF64Copysign), 4,
		glulx.Bitand(lc(xHi), uimm(0x7fffffff), push()),
		glulx.Bitand(lc(yHi), signBit, push()),
		glulx.Bitor(pop(), pop(), hr),
		glulx.Ret(lc(xLo)),
	)

	dcmp := func(op wasm.Opcode, j djump) {
		c.routine(c.op(op), 4, retTrue(j(lc(xHi), lc(xLo), lc(yHi), lc(yLo), glulx.Label{})), ret0)
	}
	c.routine(c.op(wasm.OpcodeF64Eq), 4,
		retTrue(glulx.Jdeq(lc(xHi), lc(xLo), lc(yHi), lc(yLo), zh, zl, glulx.Label{})), ret0)
	c.routine(c.op(wasm.OpcodeF64Ne), 4,
		retTrue(glulx.Jdne(lc(xHi), lc(xLo), lc(yHi), lc(yLo), zh, zl, glulx.Label{})), ret0)
	dcmp(wasm.OpcodeF64Lt, glulx.Jdlt)
	dcmp(wasm.OpcodeF64Gt, glulx.Jdgt)
	dcmp(wasm.OpcodeF64Le, glulx.Jdle)
	dcmp(wasm.OpcodeF64Ge, glulx.Jdge)
}

// genConversions emits conversions between integers and floats. Every float
// to integer conversion goes through a double, which holds any f32 exactly.
func (c *compilation) genConversions() {
	rt := c.rt
	hr := glulx.StoreLabel(c.layout.hiReturn.addr)
	hrLoad := glulx.Deref(c.layout.hiReturn.addr)
	invalid, overflow := rt.trapInvalidConversion, rt.trapIntegerOverflow
	p32h, p32l := dconst(1 << 32)
	p31h, p31l := dconst(1 << 31)

	// dtou32 converts a double in [0, 2^32) toward zero.
	small := c.gen.Gen("dtou32_small")
	c.routine(rt.dtou32, 4,
		glulx.Jdlt(lc(0), lc(1), p31h, p31l, small),
		glulx.Dsub(lc(0), lc(1), p31h, p31l, slc(3), slc(2)),
		glulx.Dtonumz(lc(2), lc(3), push()),
		glulx.Add(pop(), uimm(0x80000000), push()),
		retp,
		glulx.Mark(small),
		glulx.Dtonumz(lc(0), lc(1), push()),
		retp,
	)
	// dtou64 converts a double in [0, 2^64) toward zero, splitting it into
	// words with exact double arithmetic.
	c.routine(rt.dtou64, 8,
		glulx.Dfloor(lc(0), lc(1), slc(3), slc(2)),
		glulx.Ddiv(lc(2), lc(3), p32h, p32l, slc(5), slc(4)),
		glulx.Dfloor(lc(4), lc(5), slc(5), slc(4)),
		glulx.Dmul(lc(4), lc(5), p32h, p32l, slc(7), slc(6)),
		glulx.Dsub(lc(2), lc(3), lc(6), lc(7), slc(7), slc(6)),
		glulx.Callfii(glulx.ImmLabel(rt.dtou32), lc(4), lc(5), hr),
		glulx.Callfii(glulx.ImmLabel(rt.dtou32), lc(6), lc(7), push()),
		retp,
	)

	type check struct {
		j      djump
		v      float64
		target glulx.Label
	}
	// trapping emits a conversion from a double which traps outside the range
	// its checks allow.
	trapping := func(l glulx.Label, locals uint32, checks []check, body ...glulx.Item) {
		items := []glulx.Item{glulx.Jdisnan(lc(0), lc(1), invalid)}
		for _, ck := range checks {
			items = append(items, jdconst(ck.j, 0, 1, ck.v, ck.target))
		}
		c.routine(l, locals, append(items, body...)...)
	}
	i32TruncS, i32TruncU := c.op(wasm.OpcodeI32TruncF64S), c.op(wasm.OpcodeI32TruncF64U)
	trapping(i32TruncS, 2,
		[]check{{glulx.Jdle, -(1 << 31) - 1, overflow}, {glulx.Jdge, 1 << 31, overflow}},
		glulx.Dtonumz(lc(0), lc(1), push()),
		retp,
	)
	trapping(i32TruncU, 2,
		[]check{{glulx.Jdle, -1, overflow}, {glulx.Jdge, 1 << 32, overflow}},
		glulx.Callfii(glulx.ImmLabel(rt.dtou32), lc(0), lc(1), push()),
		retp,
	)
	belowOne := c.gen.Gen("i64_trunc_zero")
	trapping(rt.f64ToI64U, 2,
		[]check{{glulx.Jdle, -1, overflow}, {glulx.Jdge, 1 << 64, overflow}, {glulx.Jdlt, 1, belowOne}},
		glulx.Callfii(glulx.ImmLabel(rt.dtou64), lc(0), lc(1), push()),
		retp,
		glulx.Mark(belowOne),
		glulx.Copy(imm(0), hr),
		ret0,
	)
	c.rt.ops[wasm.OpcodeI64TruncF64U] = rt.f64ToI64U
	negative := c.gen.Gen("i64_trunc_neg")
	trapping(rt.f64ToI64S, 4,
		[]check{{glulx.Jdlt, -(1 << 63), overflow}, {glulx.Jdge, 1 << 63, overflow}},
		concat(
			[]glulx.Item{
				jdconst(glulx.Jdlt, 0, 1, 0, negative),
				glulx.Callfii(glulx.ImmLabel(rt.dtou64), lc(0), lc(1), push()),
				retp,
				glulx.Mark(negative),
				glulx.Bitxor(lc(0), uimm(0x80000000), slc(0)),
				glulx.Callfii(glulx.ImmLabel(rt.dtou64), lc(0), lc(1), slc(2)),
				glulx.Copy(hrLoad, slc(3)),
			},
			c.neg64(3, 2),
			[]glulx.Item{
				glulx.Copy(lc(3), hr),
				glulx.Ret(lc(2)),
			},
		)...,
	)
	c.rt.ops[wasm.OpcodeI64TruncF64S] = rt.f64ToI64S

	// Saturating conversions clamp instead of trapping.
	sat := func(op wasm.Opcode, lowest, highest float64, min, max uint64, inner glulx.Label) {
		low, high := c.gen.Gen("sat_low"), c.gen.Gen("sat_high")
		zero := c.gen.Gen("sat_zero")
		c.routine(c.op(op), 2,
			glulx.Jdisnan(lc(0), lc(1), zero),
			jdconst(glulx.Jdle, 0, 1, lowest, low),
			jdconst(glulx.Jdge, 0, 1, highest, high),
			glulx.Callfii(glulx.ImmLabel(inner), lc(0), lc(1), push()),
			retp,
			glulx.Mark(zero),
			glulx.Copy(imm(0), hr),
			ret0,
			glulx.Mark(low),
			glulx.Copy(uimm(uint32(min>>32)), hr),
			glulx.Ret(uimm(uint32(min))),
			glulx.Mark(high),
			glulx.Copy(uimm(uint32(max>>32)), hr),
			glulx.Ret(uimm(uint32(max))),
		)
	}
	sat(wasm.OpcodeI32TruncSatF64S, -(1 << 31), 1<<31, 0x80000000, 0x7fffffff, i32TruncS)
	sat(wasm.OpcodeI32TruncSatF64U, 0, 1<<32, 0, math.MaxUint32, i32TruncU)
	sat(wasm.OpcodeI64TruncSatF64S, -(1 << 63), 1<<63, 1<<63, math.MaxInt64, rt.f64ToI64S)
	sat(wasm.OpcodeI64TruncSatF64U, 0, 1<<64, 0, math.MaxUint64, rt.f64ToI64U)

	// The f32 forms widen and defer to the f64 ones.
	for _, w := range [][2]wasm.Opcode{
		{wasm.OpcodeI32TruncF32S, wasm.OpcodeI32TruncF64S},
		{wasm.OpcodeI32TruncF32U, wasm.OpcodeI32TruncF64U},
		{wasm.OpcodeI64TruncF32S, wasm.OpcodeI64TruncF64S},
		{wasm.OpcodeI64TruncF32U, wasm.OpcodeI64TruncF64U},
		{wasm.OpcodeI32TruncSatF32S, wasm.OpcodeI32TruncSatF64S},
		{wasm.OpcodeI32TruncSatF32U, wasm.OpcodeI32TruncSatF64U},
		{wasm.OpcodeI64TruncSatF32S, wasm.OpcodeI64TruncSatF64S},
		{wasm.OpcodeI64TruncSatF32U, wasm.OpcodeI64TruncSatF64U},
	} {
		c.routine(c.op(w[0]), 1,
			glulx.Ftod(lc(0), push(), push()),
			glulx.Tailcall(glulx.ImmLabel(c.op(w[1])), imm(2)),
		)
	}

	done := c.gen.Gen("u32tod_done")
	c.routine(rt.u32tod, 3,
		glulx.Numtod(lc(0), slc(1), slc(2)),
		glulx.Jge(lc(0), imm(0), done),
		glulx.Dadd(lc(2), lc(1), p32h, p32l, slc(1), slc(2)),
		glulx.Mark(done),
		glulx.Copy(lc(2), hr),
		glulx.Ret(lc(1)),
	)
	c.rt.ops[wasm.OpcodeF64ConvertI32U] = rt.u32tod
	c.routine(c.op(wasm.OpcodeF32ConvertI32U), 2,
		glulx.Callfi(glulx.ImmLabel(rt.u32tod), lc(0), slc(1)),
		glulx.Dtof(hrLoad, lc(1), push()),
		retp,
	)

	// hi*2^32 + lo is exact in each part, so the sum rounds once. The
	// high word is converted into locals 2 and 3 by hi.
	i64tod := func(l glulx.Label, hi ...glulx.Item) {
		c.routine(l, 6, append(hi,
			glulx.Dmul(lc(2), lc(3), p32h, p32l, slc(3), slc(2)),
			glulx.Callfi(glulx.ImmLabel(rt.u32tod), lc(1), slc(5)),
			glulx.Copy(hrLoad, slc(4)),
			glulx.Dadd(lc(2), lc(3), lc(4), lc(5), slc(3), slc(2)),
			glulx.Copy(lc(2), hr),
			glulx.Ret(lc(3)),
		)...)
	}
	i64tod(rt.u64tod,
		glulx.Callfi(glulx.ImmLabel(rt.u32tod), lc(0), slc(3)),
		glulx.Copy(hrLoad, slc(2)),
	)
	c.rt.ops[wasm.OpcodeF64ConvertI64U] = rt.u64tod
	i64tod(c.op(wasm.OpcodeF64ConvertI64S), glulx.Numtod(lc(0), slc(3), slc(2)))

	// Past 2^53 the double would round before the conversion to f32 rounds
	// again, so the bits below the double's precision are folded into a
	// sticky bit first.
	exact, clear := c.gen.Gen("u64tof_exact"), c.gen.Gen("u64tof_clear")
	c.routine(rt.u64tof, 3,
		glulx.Jltu(lc(0), uimm(0x200000), exact),
		glulx.Bitand(lc(1), uimm(0x7ff), push()),
		glulx.Jz(pop(), clear),
		glulx.Bitor(lc(1), uimm(0x800), slc(1)),
		glulx.Mark(clear),
		glulx.Bitand(lc(1), uimm(0xfffff800), slc(1)),
		glulx.Mark(exact),
		glulx.Callfii(glulx.ImmLabel(rt.u64tod), lc(0), lc(1), slc(2)),
		glulx.Dtof(hrLoad, lc(2), push()),
		retp,
	)
	c.rt.ops[wasm.OpcodeF32ConvertI64U] = rt.u64tof
	positive := c.gen.Gen("s64tof_pos")
	c.routine(c.op(wasm.OpcodeF32ConvertI64S), 2, concat(
		[]glulx.Item{glulx.Jge(lc(0), imm(0), positive)},
		c.neg64(0, 1),
		[]glulx.Item{
			glulx.Callfii(glulx.ImmLabel(rt.u64tof), lc(0), lc(1), push()),
			glulx.Bitxor(pop(), uimm(0x80000000), push()),
			retp,
			glulx.Mark(positive),
			glulx.Callfii(glulx.ImmLabel(rt.u64tof), lc(0), lc(1), push()),
			retp,
		},
	)...)
}
