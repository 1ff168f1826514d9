package compiler

import (
	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

const (
	i32 = wasm.ValueTypeI32
	f32 = wasm.ValueTypeF32
	f64 = wasm.ValueTypeF64
)

// intrinsic is a function of the "glulx" import module. body is given the
// layout and runtime and returns the function's code, which takes its
// arguments in nargs locals, the last argument in local 0.
type intrinsic struct {
	params, results []wasm.ValueType
	body            func(c *compilation) []glulx.Item
}

func types(ts ...wasm.ValueType) []wasm.ValueType { return ts }

// hiReturn stores the high word of a two-word result.
func (c *compilation) hiReturn() glulx.Store { return glulx.StoreLabel(c.layout.hiReturn.addr) }

func f32Unary(f unaryOp) intrinsic {
	return intrinsic{types(f32), types(f32), func(*compilation) []glulx.Item {
		return []glulx.Item{f(lc(0), push()), retp}
	}}
}

func f32Binary(f binaryOp) intrinsic {
	return intrinsic{types(f32, f32), types(f32), func(*compilation) []glulx.Item {
		return []glulx.Item{f(lc(1), lc(0), push()), retp}
	}}
}

// f64 arguments arrive as (hi, lo) pairs, the last argument lowest.
func f64Unary(f dUnaryOp) intrinsic {
	return intrinsic{types(f64), types(f64), func(c *compilation) []glulx.Item {
		return []glulx.Item{f(lc(0), lc(1), push(), c.hiReturn()), retp}
	}}
}

func f64Binary(f dBinOp) intrinsic {
	return intrinsic{types(f64, f64), types(f64), func(c *compilation) []glulx.Item {
		return []glulx.Item{f(lc(2), lc(3), lc(0), lc(1), push(), c.hiReturn()), retp}
	}}
}

func simple(params []wasm.ValueType, results []wasm.ValueType, items ...glulx.Item) intrinsic {
	return intrinsic{params, results, func(*compilation) []glulx.Item { return items }}
}

var intrinsics = map[string]intrinsic{
	"restart":     simple(nil, nil, glulx.Restart(), ret0),
	"save":        simple(types(i32), types(i32), glulx.Save(lc(0), push()), retp),
	"restore":     simple(types(i32), types(i32), glulx.Restore(lc(0), push()), retp),
	"saveundo":    simple(nil, types(i32), glulx.Saveundo(push()), retp),
	"restoreundo": simple(nil, types(i32), glulx.Restoreundo(push()), retp),
	"hasundo":     simple(nil, types(i32), glulx.Hasundo(push()), retp),
	"discardundo": simple(nil, nil, glulx.Discardundo(), ret0),
	"random":      simple(types(i32), types(i32), glulx.Random(lc(0), push()), retp),
	"setrandom":   simple(types(i32), nil, glulx.Setrandom(lc(0)), ret0),
	"gestalt":     simple(types(i32, i32), types(i32), glulx.Gestalt(lc(1), lc(0), push()), retp),

	// protect(addr, len)
	"protect": {types(i32, i32), nil, func(c *compilation) []glulx.Item {
		return []glulx.Item{
			glulx.Callfiii(glulx.ImmLabel(c.rt.checkaddr), lc(1), imm(0), lc(0), glulx.Discard()),
			glulx.Add(glulx.ImmLabel(c.layout.mem.addr), lc(1), push()),
			glulx.Protect(pop(), lc(0)),
			ret0,
		}
	}},

	// glkarea_get_byte(glkaddr) and friends access the Glk area directly. Words
	// there are in Glulx byte order.
	"glkarea_get_byte": {types(i32), types(i32), func(c *compilation) []glulx.Item {
		return []glulx.Item{
			glulx.Callfii(glulx.ImmLabel(c.rt.checkglkaddr), lc(0), imm(1), glulx.Discard()),
			glulx.Aloadb(glulx.ImmLabel(c.layout.glk.addr), lc(0), push()),
			retp,
		}
	}},
	"glkarea_get_word": {types(i32), types(i32), func(c *compilation) []glulx.Item {
		return []glulx.Item{
			glulx.Callfii(glulx.ImmLabel(c.rt.checkglkaddr), lc(0), imm(4), glulx.Discard()),
			glulx.Aload(lc(0), glulx.ImmLabelShift(c.layout.glk.addr, 0, 2), push()),
			retp,
		}
	}},
	// glkarea_put_byte(glkaddr, byte)
	"glkarea_put_byte": {types(i32, i32), nil, func(c *compilation) []glulx.Item {
		return []glulx.Item{
			glulx.Callfii(glulx.ImmLabel(c.rt.checkglkaddr), lc(1), imm(1), glulx.Discard()),
			glulx.Astoreb(glulx.ImmLabel(c.layout.glk.addr), lc(1), lc(0)),
			ret0,
		}
	}},
	"glkarea_put_word": {types(i32, i32), nil, func(c *compilation) []glulx.Item {
		return []glulx.Item{
			glulx.Callfii(glulx.ImmLabel(c.rt.checkglkaddr), lc(1), imm(4), glulx.Discard()),
			glulx.Astore(lc(1), glulx.ImmLabelShift(c.layout.glk.addr, 0, 2), lc(0)),
			ret0,
		}
	}},
	// glkarea_get_bytes(addr, glkaddr, n) copies from the Glk area to memory.
	"glkarea_get_bytes": {types(i32, i32, i32), nil, func(c *compilation) []glulx.Item {
		return c.glkAreaCopy(false, false)
	}},
	// glkarea_put_bytes(glkaddr, addr, n) copies from memory to the Glk area.
	"glkarea_put_bytes": {types(i32, i32, i32), nil, func(c *compilation) []glulx.Item {
		return c.glkAreaCopy(true, false)
	}},
	// The word forms count words and convert them between byte orders.
	"glkarea_get_words": {types(i32, i32, i32), nil, func(c *compilation) []glulx.Item {
		return c.glkAreaCopy(false, true)
	}},
	"glkarea_put_words": {types(i32, i32, i32), nil, func(c *compilation) []glulx.Item {
		return c.glkAreaCopy(true, true)
	}},

	"expf":   f32Unary(glulx.Exp),
	"logf":   f32Unary(glulx.Log),
	"sinf":   f32Unary(glulx.Sin),
	"cosf":   f32Unary(glulx.Cos),
	"tanf":   f32Unary(glulx.Tan),
	"asinf":  f32Unary(glulx.Asin),
	"acosf":  f32Unary(glulx.Acos),
	"atanf":  f32Unary(glulx.Atan),
	"powf":   f32Binary(glulx.Pow),
	"atan2f": f32Binary(glulx.Atan2),
	"fmodf": f32Binary(func(l1, l2 glulx.Load, s1 glulx.Store) glulx.Instr {
		return glulx.Fmod(l1, l2, s1, glulx.Discard())
	}),

	"exp":   f64Unary(glulx.Dexp),
	"log":   f64Unary(glulx.Dlog),
	"sin":   f64Unary(glulx.Dsin),
	"cos":   f64Unary(glulx.Dcos),
	"tan":   f64Unary(glulx.Dtan),
	"asin":  f64Unary(glulx.Dasin),
	"acos":  f64Unary(glulx.Dacos),
	"atan":  f64Unary(glulx.Datan),
	"pow":   f64Binary(glulx.Dpow),
	"atan2": f64Binary(glulx.Datan2),
	"fmod":  f64Binary(glulx.Dmodr),
}

// glkAreaCopy copies n bytes or words between memory and the Glk area. The
// first argument is the destination, the second the source.
func (c *compilation) glkAreaCopy(toGlk, words bool) []glulx.Item {
	mem, glk := c.layout.mem.addr, c.layout.glk.addr
	const dst, src, n, size = 2, 1, 0, 3
	memArg, glkArg := lc(dst), lc(src)
	if toGlk {
		memArg, glkArg = lc(src), lc(dst)
	}

	var items []glulx.Item
	if words {
		items = append(items,
			glulx.Jgtu(lc(n), uimm(0x3fffffff), c.rt.trapOutOfBoundsMemory),
			glulx.Shiftl(lc(n), imm(2), slc(size)),
		)
	} else {
		items = append(items, glulx.Copy(lc(n), slc(size)))
	}
	items = append(items,
		glulx.Callfiii(glulx.ImmLabel(c.rt.checkaddr), memArg, imm(0), lc(size), glulx.Discard()),
		glulx.Callfii(glulx.ImmLabel(c.rt.checkglkaddr), glkArg, lc(size), glulx.Discard()),
	)
	if toGlk {
		items = append(items,
			glulx.Add(glkArg, glulx.ImmLabel(glk), push()),
			glulx.Add(memArg, glulx.ImmLabel(mem), push()),
		)
	} else {
		items = append(items,
			glulx.Add(memArg, glulx.ImmLabel(mem), push()),
			glulx.Add(glkArg, glulx.ImmLabel(glk), push()),
		)
	}
	// mcopy(len, src, dst) pops the source first.
	items = append(items, glulx.Mcopy(lc(size), pop(), pop()))
	if words {
		swap := c.rt.swaparray
		if toGlk {
			swap = c.rt.swapglkarray
		}
		items = append(items, glulx.Callfii(glulx.ImmLabel(swap), lc(dst), lc(n), glulx.Discard()))
	}
	return append(items, ret0)
}

// genIntrinsicImport emits the function for an import from "glulx".
func (c *compilation) genIntrinsicImport(funcIdx wasm.Index, im *wasm.Import) {
	in, ok := intrinsics[im.Name]
	if !ok {
		c.fail(errUnrecognizedImport(im))
		c.genStubFunction(funcIdx)
		return
	}
	if actual := c.m.TypeSection[im.DescFunc]; !actual.EqualsSignature(in.params, in.results) {
		c.fail(&CompileError{
			Kind:     KindIncorrectlyTypedImport,
			Import:   im,
			Expected: &wasm.FunctionType{Params: in.params, Results: in.results},
			Actual:   actual,
		})
		c.genStubFunction(funcIdx)
		return
	}

	fl := c.layout.funcs[funcIdx]
	locals := uint32(wordCount(in.params))
	if len(in.params) == 3 {
		// Room for the byte count of the Glk area copies.
		locals++
	}
	c.emit(glulx.Word(fl.typenum), glulx.Mark(fl.addr), glulx.FnHeader(glulx.ArgsInLocals, locals))
	c.emit(in.body(c)...)
}
