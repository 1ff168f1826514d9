package wasmir

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tetratelabs/wasm2glulx/internal/leb128"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

type controlFrame struct {
	block            *Block
	originalStackLen int
	inElse           bool
}

type builder struct {
	m       *wasm.Module
	fn      *Function
	r       *bytes.Reader
	stack   []wasm.ValueType
	frames  []*controlFrame
	globals []*wasm.GlobalType
	tables  []*wasm.TableType

	unreachableState struct {
		on    bool
		depth int
	}
}

// Build decodes the body of the defined function at funcIndex, an index in the
// function namespace. The module must already be validated.
func Build(m *wasm.Module, funcIndex wasm.Index) (*Function, error) {
	imported := m.ImportFuncCount()
	if funcIndex < imported || funcIndex-imported >= uint32(len(m.CodeSection)) {
		return nil, fmt.Errorf("function[%d] is not defined in this module", funcIndex)
	}
	code := m.CodeSection[funcIndex-imported]
	typ := m.TypeOfFunction(funcIndex)
	if typ == nil {
		return nil, fmt.Errorf("function[%d] has an invalid type", funcIndex)
	}

	b := &builder{m: m, r: bytes.NewReader(code.Body)}
	b.fn = &Function{
		Index:  funcIndex,
		Name:   m.FuncName(funcIndex),
		Type:   typ,
		Locals: code.Locals,
		Body:   &Block{Kind: BlockKindFunction, Results: typ.Results},
	}
	for _, im := range m.ImportSection {
		switch im.Type {
		case wasm.ExternTypeGlobal:
			b.globals = append(b.globals, im.DescGlobal)
		case wasm.ExternTypeTable:
			b.tables = append(b.tables, im.DescTable)
		}
	}
	for _, g := range m.GlobalSection {
		b.globals = append(b.globals, g.Type)
	}
	b.tables = append(b.tables, m.TableSection...)

	b.frames = append(b.frames, &controlFrame{block: b.fn.Body})
	for len(b.frames) > 0 {
		if err := b.handleInstruction(); err != nil {
			return nil, err
		}
	}
	if b.r.Len() != 0 {
		return nil, fmt.Errorf("%d bytes after the end of the function body", b.r.Len())
	}
	return b.fn, nil
}

func (b *builder) readOpcode() (wasm.Opcode, error) {
	op, err := b.r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("read opcode: %w", err)
	}
	switch op {
	case wasm.OpcodeMiscPrefix, wasm.OpcodeAtomicPrefix:
		sub, _, err := leb128.DecodeUint32(b.r)
		if err != nil {
			return 0, fmt.Errorf("read %#x subopcode: %w", op, err)
		}
		if sub > 0xff {
			return 0, fmt.Errorf("invalid subopcode %#x for prefix %#x", sub, op)
		}
		return wasm.Opcode(op)<<8 | sub, nil
	case wasm.OpcodeVecPrefix:
		sub, _, err := leb128.DecodeUint32(b.r)
		if err != nil {
			return 0, fmt.Errorf("read %#x subopcode: %w", op, err)
		}
		return wasm.OpcodeVec(sub), nil
	}
	return wasm.Opcode(op), nil
}

func (b *builder) handleInstruction() error {
	op, err := b.readOpcode()
	if err != nil {
		return err
	}

	if wasm.IsVec(op) {
		if !b.unreachableState.on {
			return &UnsupportedError{Op: op}
		}
		return b.skipVecImmediates(op)
	}

	info, ok := wasm.LookupOpcode(op)
	if !ok {
		return fmt.Errorf("invalid instruction %#x", op)
	}

	if b.unreachableState.on {
		return b.handleUnreachable(op, info)
	}

	in := &Instr{Op: op}
	if info.Imm == wasm.ImmBlockType {
		params, results, err := b.readBlockType()
		if err != nil {
			return fmt.Errorf("reading block type for %s instruction: %w", info.Name, err)
		}
		return b.enterBlock(in, params, results)
	}
	if err = b.readImmediates(info.Imm, in); err != nil {
		return fmt.Errorf("read immediates of %s: %w", info.Name, err)
	}

	if op == wasm.OpcodeNop || op == wasm.OpcodeAtomicFence {
		// Nothing to run on a single thread.
		return nil
	}

	if info.Fixed {
		in.Op = plainAccess(op)
		if err = b.apply(in, info.Params, info.Results); err != nil {
			return err
		}
		b.emit(in)
		return nil
	}

	switch op {
	case wasm.OpcodeUnreachable:
		b.emit(in)
		b.unreachableState.on = true
	case wasm.OpcodeElse:
		frame := b.frames[len(b.frames)-1]
		b.stack = b.stack[:frame.originalStackLen]
		b.stack = append(b.stack, frame.block.Params...)
		frame.inElse = true
	case wasm.OpcodeEnd:
		b.exitBlock()
	case wasm.OpcodeBr:
		target, err := b.label(in.Index)
		if err != nil {
			return err
		}
		in.Target = target
		if err = b.apply(in, target.LabelTypes(), nil); err != nil {
			return err
		}
		b.emit(in)
		b.unreachableState.on = true
	case wasm.OpcodeBrIf:
		target, err := b.label(in.Index)
		if err != nil {
			return err
		}
		in.Target = target
		carried := target.LabelTypes()
		if err = b.apply(in, append(cloneTypes(carried), wasm.ValueTypeI32), carried); err != nil {
			return err
		}
		b.emit(in)
	case wasm.OpcodeBrTable:
		if err = b.apply(in, append(cloneTypes(in.Default.LabelTypes()), wasm.ValueTypeI32), nil); err != nil {
			return err
		}
		b.emit(in)
		b.unreachableState.on = true
	case wasm.OpcodeReturn:
		in.Target = b.fn.Body
		if err = b.apply(in, b.fn.Type.Results, nil); err != nil {
			return err
		}
		b.emit(in)
		b.unreachableState.on = true
	case wasm.OpcodeCall:
		t := b.m.TypeOfFunction(in.Index)
		if t == nil {
			return fmt.Errorf("call to invalid function[%d]", in.Index)
		}
		return b.applyAndEmit(in, t.Params, t.Results)
	case wasm.OpcodeCallIndirect:
		if in.Index >= uint32(len(b.m.TypeSection)) {
			return fmt.Errorf("call_indirect with invalid type[%d]", in.Index)
		}
		t := b.m.TypeSection[in.Index]
		return b.applyAndEmit(in, append(cloneTypes(t.Params), wasm.ValueTypeI32), t.Results)
	case wasm.OpcodeDrop:
		t, err := b.peek(0)
		if err != nil {
			return err
		}
		return b.applyAndEmit(in, []wasm.ValueType{t}, nil)
	case wasm.OpcodeSelect, wasm.OpcodeTypedSelect:
		in.Op = wasm.OpcodeSelect
		t, err := b.peek(1)
		if err != nil {
			return err
		}
		return b.applyAndEmit(in, []wasm.ValueType{t, t, wasm.ValueTypeI32}, []wasm.ValueType{t})
	case wasm.OpcodeLocalGet, wasm.OpcodeLocalSet, wasm.OpcodeLocalTee:
		t, err := b.localType(in.Index)
		if err != nil {
			return err
		}
		ts := []wasm.ValueType{t}
		switch op {
		case wasm.OpcodeLocalGet:
			return b.applyAndEmit(in, nil, ts)
		case wasm.OpcodeLocalSet:
			return b.applyAndEmit(in, ts, nil)
		}
		return b.applyAndEmit(in, ts, ts)
	case wasm.OpcodeGlobalGet, wasm.OpcodeGlobalSet:
		if in.Index >= uint32(len(b.globals)) {
			return fmt.Errorf("invalid global[%d]", in.Index)
		}
		ts := []wasm.ValueType{b.globals[in.Index].ValType}
		if op == wasm.OpcodeGlobalGet {
			return b.applyAndEmit(in, nil, ts)
		}
		return b.applyAndEmit(in, ts, nil)
	case wasm.OpcodeTableGet, wasm.OpcodeTableSet, wasm.OpcodeTableGrow, wasm.OpcodeTableFill:
		if in.Index >= uint32(len(b.tables)) {
			return fmt.Errorf("invalid table[%d]", in.Index)
		}
		ref := b.tables[in.Index].Type
		i32 := wasm.ValueTypeI32
		switch op {
		case wasm.OpcodeTableGet:
			return b.applyAndEmit(in, []wasm.ValueType{i32}, []wasm.ValueType{ref})
		case wasm.OpcodeTableSet:
			return b.applyAndEmit(in, []wasm.ValueType{i32, ref}, nil)
		case wasm.OpcodeTableGrow:
			return b.applyAndEmit(in, []wasm.ValueType{ref, i32}, []wasm.ValueType{i32})
		}
		return b.applyAndEmit(in, []wasm.ValueType{i32, ref, i32}, nil)
	case wasm.OpcodeRefNull:
		return b.applyAndEmit(in, nil, []wasm.ValueType{in.RefType})
	case wasm.OpcodeRefIsNull:
		t, err := b.peek(0)
		if err != nil {
			return err
		}
		return b.applyAndEmit(in, []wasm.ValueType{t}, []wasm.ValueType{wasm.ValueTypeI32})
	case wasm.OpcodeRefFunc:
		return b.applyAndEmit(in, nil, []wasm.ValueType{wasm.ValueTypeFuncref})
	default:
		return fmt.Errorf("BUG: unhandled instruction %s", info.Name)
	}
	return nil
}

// handleUnreachable skips an instruction of dead code, tracking nesting so the
// matching else or end resumes decoding.
func (b *builder) handleUnreachable(op wasm.Opcode, info wasm.OpcodeInfo) error {
	switch op {
	case wasm.OpcodeBlock, wasm.OpcodeLoop, wasm.OpcodeIf:
		if _, _, err := b.readBlockType(); err != nil {
			return fmt.Errorf("reading block type for %s instruction: %w", info.Name, err)
		}
		b.unreachableState.depth++
		return nil
	case wasm.OpcodeElse:
		if b.unreachableState.depth > 0 {
			return nil
		}
		b.unreachableState.on = false
		frame := b.frames[len(b.frames)-1]
		b.stack = b.stack[:frame.originalStackLen]
		b.stack = append(b.stack, frame.block.Params...)
		frame.inElse = true
		return nil
	case wasm.OpcodeEnd:
		if b.unreachableState.depth > 0 {
			b.unreachableState.depth--
			return nil
		}
		b.unreachableState.on = false
		b.exitBlock()
		return nil
	}
	return b.readImmediates(info.Imm, &Instr{})
}

func (b *builder) enterBlock(in *Instr, params, results []wasm.ValueType) error {
	kind := BlockKindBlock
	switch in.Op {
	case wasm.OpcodeLoop:
		kind = BlockKindLoop
	case wasm.OpcodeIf:
		kind = BlockKindIf
	}
	in.Block = &Block{Kind: kind, Params: params, Results: results}

	popped := params
	if kind == BlockKindIf {
		popped = append(cloneTypes(params), wasm.ValueTypeI32)
	}
	if err := b.apply(in, popped, results); err != nil {
		return err
	}
	b.emit(in)

	// The results are pushed by the matching end, not now.
	b.stack = b.stack[:len(b.stack)-len(results)]
	b.frames = append(b.frames, &controlFrame{block: in.Block, originalStackLen: len(b.stack)})
	b.stack = append(b.stack, params...)
	return nil
}

func (b *builder) exitBlock() {
	frame := b.frames[len(b.frames)-1]
	b.frames = b.frames[:len(b.frames)-1]
	b.stack = b.stack[:frame.originalStackLen]
	b.stack = append(b.stack, frame.block.Results...)
}

func (b *builder) emit(in *Instr) {
	frame := b.frames[len(b.frames)-1]
	if frame.inElse {
		frame.block.Else = append(frame.block.Else, in)
	} else {
		frame.block.Body = append(frame.block.Body, in)
	}
}

func (b *builder) applyAndEmit(in *Instr, params, results []wasm.ValueType) error {
	if err := b.apply(in, params, results); err != nil {
		return err
	}
	b.emit(in)
	return nil
}

// apply pops params and pushes results, recording both on in.
func (b *builder) apply(in *Instr, params, results []wasm.ValueType) error {
	floor := b.frames[len(b.frames)-1].originalStackLen
	if len(b.stack)-len(params) < floor {
		return fmt.Errorf("%s needs %d values but the stack has %d",
			wasm.InstructionName(in.Op), len(params), len(b.stack)-floor)
	}
	b.stack = b.stack[:len(b.stack)-len(params)]
	b.stack = append(b.stack, results...)
	in.In = params
	in.Out = results
	return nil
}

func (b *builder) peek(n int) (wasm.ValueType, error) {
	floor := b.frames[len(b.frames)-1].originalStackLen
	if len(b.stack)-n-1 < floor {
		return 0, fmt.Errorf("stack underflow")
	}
	return b.stack[len(b.stack)-n-1], nil
}

func (b *builder) label(depth uint32) (*Block, error) {
	if int(depth) >= len(b.frames) {
		return nil, fmt.Errorf("invalid branch depth %d", depth)
	}
	target := b.frames[len(b.frames)-int(depth)-1].block
	target.Targeted = true
	return target, nil
}

func (b *builder) localType(idx uint32) (wasm.ValueType, error) {
	params := b.fn.Type.Params
	if idx < uint32(len(params)) {
		return params[idx], nil
	}
	code := &wasm.Code{Locals: b.fn.Locals}
	if t, ok := code.LocalType(idx - uint32(len(params))); ok {
		return t, nil
	}
	return 0, fmt.Errorf("invalid local index %d", idx)
}

func (b *builder) readBlockType() (params, results []wasm.ValueType, err error) {
	raw, _, err := leb128.DecodeInt33AsInt64(b.r)
	if err != nil {
		return nil, nil, err
	}
	// A negative value is a single byte type code read as signed.
	switch raw {
	case -0x40:
		return nil, nil, nil
	case -0x01, -0x02, -0x03, -0x04, -0x05, -0x10, -0x11: // i32 i64 f32 f64 v128 funcref externref
		return nil, []wasm.ValueType{wasm.ValueType(raw + 0x80)}, nil
	}
	if raw < 0 || raw >= int64(len(b.m.TypeSection)) {
		return nil, nil, fmt.Errorf("invalid block type: %d", raw)
	}
	t := b.m.TypeSection[raw]
	return t.Params, t.Results, nil
}

func (b *builder) readImmediates(imm wasm.Immediate, in *Instr) (err error) {
	u32 := func() (v uint32) {
		if err == nil {
			v, _, err = leb128.DecodeUint32(b.r)
		}
		return
	}

	switch imm {
	case wasm.ImmNone:
	case wasm.ImmLabel, wasm.ImmFunc, wasm.ImmLocal, wasm.ImmGlobal, wasm.ImmTable,
		wasm.ImmMemory, wasm.ImmData, wasm.ImmElem:
		in.Index = u32()
	case wasm.ImmCallIndirect, wasm.ImmMemoryInit, wasm.ImmMemoryCopy, wasm.ImmTableInit, wasm.ImmTableCopy:
		in.Index = u32()
		in.Index2 = u32()
	case wasm.ImmBrTable:
		n := u32()
		if err == nil && int64(n) > int64(b.r.Len()) {
			return fmt.Errorf("br_table of %d targets exceeds the body", n)
		}
		depths := make([]uint32, n)
		for i := range depths {
			depths[i] = u32()
		}
		def := u32()
		if err != nil || b.unreachableState.on {
			return
		}
		for _, d := range depths {
			var t *Block
			if t, err = b.label(d); err != nil {
				return
			}
			in.Targets = append(in.Targets, t)
		}
		in.Default, err = b.label(def)
	case wasm.ImmMemArg:
		in.Align = u32()
		if err == nil && in.Align&0x40 != 0 {
			// Multi-memory index, always zero after validation.
			in.Align &^= 0x40
			in.Index2 = u32()
		}
		in.Offset = u32()
	case wasm.ImmI32:
		var v int32
		if v, _, err = leb128.DecodeInt32(b.r); err == nil {
			in.Value = uint64(uint32(v))
		}
	case wasm.ImmI64:
		var v int64
		if v, _, err = leb128.DecodeInt64(b.r); err == nil {
			in.Value = uint64(v)
		}
	case wasm.ImmF32:
		buf := make([]byte, 4)
		if _, err = io.ReadFull(b.r, buf); err == nil {
			in.Value = uint64(binary.LittleEndian.Uint32(buf))
		}
	case wasm.ImmF64:
		buf := make([]byte, 8)
		if _, err = io.ReadFull(b.r, buf); err == nil {
			in.Value = binary.LittleEndian.Uint64(buf)
		}
	case wasm.ImmSelectTypes:
		n := u32()
		for i := uint32(0); i < n && err == nil; i++ {
			_, err = b.r.ReadByte()
		}
	case wasm.ImmRefType:
		in.RefType, err = b.r.ReadByte()
	case wasm.ImmFence:
		_, err = b.r.ReadByte()
	default:
		return fmt.Errorf("BUG: unknown immediate kind %d", imm)
	}
	return
}

// skipVecImmediates skips the immediates of a vector instruction in dead code.
func (b *builder) skipVecImmediates(op wasm.Opcode) error {
	sub := op & 0xffff
	var n int
	switch {
	case sub <= 0x0b, sub == 0x5c, sub == 0x5d:
		return b.readImmediates(wasm.ImmMemArg, &Instr{})
	case sub >= 0x54 && sub <= 0x5b:
		if err := b.readImmediates(wasm.ImmMemArg, &Instr{}); err != nil {
			return err
		}
		n = 1
	case sub == 0x0c, sub == 0x0d:
		n = 16
	case sub >= 0x15 && sub <= 0x22:
		n = 1
	}
	if _, err := io.CopyN(io.Discard, b.r, int64(n)); err != nil {
		return fmt.Errorf("read immediates of %s: %w", wasm.InstructionName(op), err)
	}
	return nil
}

// plainAccess maps atomic loads and stores to the plain access of the same
// width. Glulx runs a single thread, so they are equivalent.
func plainAccess(op wasm.Opcode) wasm.Opcode {
	switch op {
	case wasm.OpcodeI32AtomicLoad:
		return wasm.OpcodeI32Load
	case wasm.OpcodeI64AtomicLoad:
		return wasm.OpcodeI64Load
	case wasm.OpcodeI32AtomicLoad8U:
		return wasm.OpcodeI32Load8U
	case wasm.OpcodeI32AtomicLoad16U:
		return wasm.OpcodeI32Load16U
	case wasm.OpcodeI64AtomicLoad8U:
		return wasm.OpcodeI64Load8U
	case wasm.OpcodeI64AtomicLoad16U:
		return wasm.OpcodeI64Load16U
	case wasm.OpcodeI64AtomicLoad32U:
		return wasm.OpcodeI64Load32U
	case wasm.OpcodeI32AtomicStore:
		return wasm.OpcodeI32Store
	case wasm.OpcodeI64AtomicStore:
		return wasm.OpcodeI64Store
	case wasm.OpcodeI32AtomicStore8:
		return wasm.OpcodeI32Store8
	case wasm.OpcodeI32AtomicStore16:
		return wasm.OpcodeI32Store16
	case wasm.OpcodeI64AtomicStore8:
		return wasm.OpcodeI64Store8
	case wasm.OpcodeI64AtomicStore16:
		return wasm.OpcodeI64Store16
	case wasm.OpcodeI64AtomicStore32:
		return wasm.OpcodeI64Store32
	}
	return op
}

func cloneTypes(ts []wasm.ValueType) []wasm.ValueType {
	return append([]wasm.ValueType(nil), ts...)
}
