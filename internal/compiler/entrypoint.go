package compiler

import (
	"bytes"

	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/leb128"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

const (
	mainExport             = "glulx_main"
	interruptHandlerExport = "glulx_interrupt_handler"
)

// genEntrypoint emits the function the VM starts at. It selects Glk for I/O,
// applies the active segments, installs any interrupt handler and then runs
// the start function followed by glulx_main.
func (c *compilation) genEntrypoint() {
	c.emit(
		glulx.Mark(c.layout.entrypoint),
		glulx.FnHeader(glulx.ArgsInLocals, 0),
		glulx.Setiosys(imm(2), imm(0)),
	)

	for i, e := range c.m.ElementSection {
		if e.Mode != wasm.ElementModeActive {
			continue
		}
		offset, ok := c.segmentOffset(e.OffsetExpr)
		if !ok {
			continue
		}
		el := c.layout.elems[i]
		t := c.layout.tables[e.TableIndex]
		c.emit(
			glulx.Copy(uimm(offset), push()),
			glulx.Copy(imm(0), push()),
			glulx.Copy(uimm(el.count), push()),
			glulx.Copy(glulx.ImmLabel(t.addr), push()),
			glulx.Copy(glulx.Deref(t.curCount), push()),
			glulx.Copy(glulx.ImmLabel(el.addr), push()),
			glulx.Copy(glulx.Deref(el.curCount), push()),
			glulx.Call(glulx.ImmLabel(c.rt.tableInitOrCopy), imm(7), glulx.Discard()),
			glulx.Copy(imm(0), glulx.StoreLabel(el.curCount)),
		)
	}

	for i, d := range c.m.DataSection {
		if d.IsPassive() {
			continue
		}
		offset, ok := c.segmentOffset(d.OffsetExpression)
		if !ok {
			continue
		}
		dl := c.layout.datas[i]
		c.emit(
			glulx.Copy(uimm(offset), push()),
			glulx.Copy(imm(0), push()),
			glulx.Copy(uimm(dl.size), push()),
			glulx.Copy(glulx.ImmLabel(dl.addr), push()),
			glulx.Copy(glulx.Deref(dl.curSize), push()),
			glulx.Call(glulx.ImmLabel(c.rt.memoryInit), imm(5), glulx.Discard()),
			glulx.Copy(imm(0), glulx.StoreLabel(dl.curSize)),
		)
	}

	if handler, ok := c.m.ExportedFunction(interruptHandlerExport); ok && c.checkNullaryExport(interruptHandlerExport, handler) {
		c.emit(
			glulx.Copy(glulx.ImmLabel(c.layout.funcs[handler].addr), push()),
			// glk_set_interrupt_handler
			glulx.Glk(uimm(0x02), imm(1), glulx.Discard()),
		)
	}

	main, hasMain := c.m.ExportedFunction(mainExport)
	if hasMain && !c.checkNullaryExport(mainExport, main) {
		hasMain = false
	}
	start := c.m.StartSection
	switch {
	case start != nil && hasMain && *start != main:
		c.emit(
			glulx.Callf(glulx.ImmLabel(c.layout.funcs[*start].addr), glulx.Discard()),
			glulx.Tailcall(glulx.ImmLabel(c.layout.funcs[main].addr), imm(0)),
		)
	case start != nil:
		c.emit(glulx.Tailcall(glulx.ImmLabel(c.layout.funcs[*start].addr), imm(0)))
	case hasMain:
		c.emit(glulx.Tailcall(glulx.ImmLabel(c.layout.funcs[main].addr), imm(0)))
	default:
		if _, exported := c.m.ExportedFunction(mainExport); !exported {
			c.fail(&CompileError{Kind: KindNoEntrypoint})
		}
		c.emit(ret0)
	}
}

// checkNullaryExport reports the export name of funcIdx unless it takes and
// returns nothing.
func (c *compilation) checkNullaryExport(name string, funcIdx wasm.Index) bool {
	actual := c.m.TypeOfFunction(funcIdx)
	if len(actual.Params) == 0 && len(actual.Results) == 0 {
		return true
	}
	var export *wasm.Export
	for _, e := range c.m.ExportSection {
		if e.Type == wasm.ExternTypeFunc && e.Name == name {
			export = e
			break
		}
	}
	c.fail(&CompileError{
		Kind:     KindIncorrectlyTypedExport,
		Export:   export,
		Expected: &wasm.FunctionType{},
		Actual:   actual,
	})
	return false
}

// segmentOffset evaluates the offset of an active segment. Only i32.const is
// possible, since the only globals an offset could read are imported ones.
func (c *compilation) segmentOffset(e *wasm.ConstantExpression) (uint32, bool) {
	if e.Opcode != wasm.OpcodeI32Const {
		return 0, false
	}
	v, _, err := leb128.DecodeInt32(bytes.NewReader(e.Data))
	return uint32(v), err == nil
}
