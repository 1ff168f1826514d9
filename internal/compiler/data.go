package compiler

import (
	"bytes"
	"encoding/binary"

	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/leb128"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

// genData emits everything other than code: globals, tables, segments and the
// zeroed areas. Memory comes last so that memory.grow never moves anything.
func (c *compilation) genData() {
	c.genGlobals()
	c.genTables()
	c.genElems()
	c.genDatas()

	c.zero = append(c.zero,
		glulx.ZeroAlign(4),
		glulx.ZeroMark(c.layout.hiReturn.addr), glulx.ZeroSpace(c.layout.hiReturn.size),
		glulx.ZeroMark(c.layout.glk.addr), glulx.ZeroSpace(c.layout.glk.size),
	)

	mem := c.layout.mem
	c.ram = append(c.ram, glulx.Mark(mem.curSize), glulx.Word(mem.minSize))
	c.zero = append(c.zero, glulx.ZeroAlign(256), glulx.ZeroMark(mem.addr), glulx.ZeroSpace(mem.minSize))
}

// constWords evaluates a constant expression to the words of its value, high
// word first. ok is false when the value is a function reference, returned
// instead as fn.
func (c *compilation) constWords(e *wasm.ConstantExpression) (words []uint32, fn wasm.Index, ok bool) {
	r := bytes.NewReader(e.Data)
	switch e.Opcode {
	case wasm.OpcodeI32Const:
		v, _, _ := leb128.DecodeInt32(r)
		return []uint32{uint32(v)}, 0, true
	case wasm.OpcodeI64Const:
		v, _, _ := leb128.DecodeInt64(r)
		return []uint32{uint32(uint64(v) >> 32), uint32(v)}, 0, true
	case wasm.OpcodeF32Const:
		return []uint32{binary.LittleEndian.Uint32(e.Data)}, 0, true
	case wasm.OpcodeF64Const:
		v := binary.LittleEndian.Uint64(e.Data)
		return []uint32{uint32(v >> 32), uint32(v)}, 0, true
	case wasm.OpcodeRefFunc:
		idx, _, _ := leb128.DecodeUint32(r)
		return nil, idx, false
	}
	// ref.null, and global.get of an import, which has already been reported.
	return []uint32{0}, 0, true
}

func (c *compilation) genGlobals() {
	imported := c.m.ImportGlobalCount()
	for i, g := range c.m.GlobalSection {
		gl := c.layout.globals[imported+uint32(i)]
		words, fn, ok := c.constWords(g.Init)
		if !ok {
			items := []glulx.Item{glulx.Mark(gl.addr), glulx.LabelRef(c.layout.funcs[fn].addr)}
			if g.Type.Mutable {
				c.ram = append(c.ram, items...)
			} else {
				c.rom = append(c.rom, items...)
			}
			continue
		}
		// A const of the wrong width would have failed validation.
		words = append(make([]uint32, int(gl.words)-len(words)), words...)

		zero := true
		for _, w := range words {
			zero = zero && w == 0
		}
		switch {
		case zero:
			c.zero = append(c.zero, glulx.ZeroMark(gl.addr), glulx.ZeroSpace(4*gl.words))
		case g.Type.Mutable:
			c.ram = append(c.ram, glulx.Mark(gl.addr), glulx.Blob(wordBytes(words)))
		default:
			c.rom = append(c.rom, glulx.Mark(gl.addr), glulx.Blob(wordBytes(words)))
		}
	}
	// Imported globals are rejected, but code referring to them still needs
	// somewhere to point.
	for i := uint32(0); i < imported; i++ {
		gl := c.layout.globals[i]
		c.zero = append(c.zero, glulx.ZeroMark(gl.addr), glulx.ZeroSpace(4*gl.words))
	}
}

func wordBytes(words []uint32) []byte {
	b := make([]byte, 0, 4*len(words))
	for _, w := range words {
		b = binary.BigEndian.AppendUint32(b, w)
	}
	return b
}

// genTables reserves every table at its maximum size, so growing one only
// bumps its count.
func (c *compilation) genTables() {
	for _, t := range c.layout.tables {
		c.zero = append(c.zero, glulx.ZeroMark(t.addr), glulx.ZeroSpace(4*t.maxCount))
		c.ram = append(c.ram, glulx.Mark(t.curCount), glulx.Word(t.minCount))
	}
}

// genElems emits each element segment as an array of function addresses in
// ROM, with its current count in RAM. Declarative segments start out dropped.
func (c *compilation) genElems() {
	for i, e := range c.m.ElementSection {
		el := c.layout.elems[i]
		c.rom = append(c.rom, glulx.Mark(el.addr))
		count := el.count
		if e.Mode == wasm.ElementModeDeclarative {
			count = 0
		} else {
			for _, init := range e.Init {
				if init.Kind == wasm.ElementInitFunc {
					c.rom = append(c.rom, glulx.LabelRef(c.layout.funcs[init.Index].addr))
				} else {
					c.rom = append(c.rom, glulx.Word(0))
				}
			}
		}
		c.ram = append(c.ram, glulx.Mark(el.curCount), glulx.Word(count))
	}
}

func (c *compilation) genDatas() {
	for i, d := range c.m.DataSection {
		dl := c.layout.datas[i]
		c.rom = append(c.rom, glulx.Mark(dl.addr), glulx.Blob(d.Init))
		c.ram = append(c.ram, glulx.Mark(dl.curSize), glulx.Word(dl.size))
	}
}
