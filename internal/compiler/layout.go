package compiler

import (
	"math"

	"github.com/samber/lo"

	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

// layout assigns a label, and where it matters a number, to everything in the
// module that the generated code refers to.
type layout struct {
	types   []typeLayout
	funcs   []funcLayout
	tables  []tableLayout
	globals []globalLayout
	elems   []elemLayout
	datas   []dataLayout

	mem      memLayout
	glk      glkLayout
	hiReturn hiReturnLayout

	entrypoint glulx.Label
	trapTable  glulx.Label
}

type typeLayout struct {
	typenum     uint32
	paramWords  uint32
	resultWords uint32
}

type funcLayout struct {
	addr    glulx.Label
	fnnum   uint32
	typenum uint32
}

type tableLayout struct {
	addr     glulx.Label
	curCount glulx.Label
	minCount uint32
	maxCount uint32
}

type globalLayout struct {
	addr  glulx.Label
	words uint32
}

type elemLayout struct {
	addr     glulx.Label
	curCount glulx.Label
	count    uint32
}

type dataLayout struct {
	addr    glulx.Label
	curSize glulx.Label
	size    uint32
}

type memLayout struct {
	addr    glulx.Label
	curSize glulx.Label
	// minSize and maxSize are in bytes.
	minSize uint32
	maxSize uint32
}

type glkLayout struct {
	addr glulx.Label
	size uint32
}

type hiReturnLayout struct {
	addr glulx.Label
	// size is in bytes.
	size uint32
}

// maxMemoryPages is the most pages a memory can reach. A full 65536 would
// leave no room for anything else in the address space.
const maxMemoryPages = 65535

func wordCount(ts []wasm.ValueType) uint64 {
	return lo.SumBy(ts, func(t wasm.ValueType) uint64 { return uint64(wasm.ValueTypeWords(t)) })
}

// newLayout returns the layout of m, or the accumulated errors if anything in
// it does not fit.
// canonicalTypes maps each type index to the first index with an identical
// signature. Indirect calls compare type numbers, so structurally equal types
// share one.
func canonicalTypes(types []*wasm.FunctionType) []wasm.Index {
	canon := make([]wasm.Index, len(types))
	first := make(map[string]wasm.Index, len(types))
	for i, t := range types {
		key := t.String()
		j, ok := first[key]
		if !ok {
			j = wasm.Index(i)
			first[key] = j
		}
		canon[i] = j
	}
	return canon
}

func canonicalTypenum(canon []wasm.Index, typeIdx wasm.Index) uint32 {
	if int(typeIdx) < len(canon) {
		return canon[typeIdx] + 1
	}
	return typeIdx + 1
}

func newLayout(m *wasm.Module, gen *glulx.LabelGenerator, cfg *Config) (*layout, []error) {
	var errs []error
	l := &layout{}

	if uint64(len(m.TypeSection)) >= math.MaxUint32 {
		errs = append(errs, errOverflow(OverflowTypeList))
	}
	canon := canonicalTypes(m.TypeSection)
	var maxResultWords uint64
	typeOverflowed := false
	for i, t := range m.TypeSection {
		params, results := wordCount(t.Params), wordCount(t.Results)
		if params > math.MaxUint32 || results > math.MaxUint32 {
			if !typeOverflowed {
				errs = append(errs, errOverflow(OverflowTypeDecl))
				typeOverflowed = true
			}
		}
		maxResultWords = lo.Max([]uint64{maxResultWords, results})
		l.types = append(l.types, typeLayout{
			typenum:     canon[i] + 1,
			paramWords:  uint32(params),
			resultWords: uint32(results),
		})
	}

	if uint64(m.FuncCount()) >= math.MaxUint32 {
		errs = append(errs, errOverflow(OverflowFnList))
	}
	funcTypes := make([]wasm.Index, 0, m.FuncCount())
	for _, im := range m.ImportSection {
		if im.Type == wasm.ExternTypeFunc {
			funcTypes = append(funcTypes, im.DescFunc)
		}
	}
	funcTypes = append(funcTypes, m.FunctionSection...)
	for i, typeIdx := range funcTypes {
		l.funcs = append(l.funcs, funcLayout{
			addr:    gen.Gen("function"),
			fnnum:   uint32(i) + 1,
			typenum: canonicalTypenum(canon, typeIdx),
		})
	}

	var tables []*wasm.TableType
	var globals []*wasm.GlobalType
	memories := 0
	var memory *wasm.MemoryType
	for _, im := range m.ImportSection {
		switch im.Type {
		case wasm.ExternTypeTable:
			tables = append(tables, im.DescTable)
		case wasm.ExternTypeGlobal:
			globals = append(globals, im.DescGlobal)
		case wasm.ExternTypeMemory:
			memories++
			memory = im.DescMem
		}
	}
	tables = append(tables, m.TableSection...)
	for _, g := range m.GlobalSection {
		globals = append(globals, g.Type)
	}
	memories += len(m.MemorySection)
	if len(m.MemorySection) > 0 {
		memory = m.MemorySection[0]
	}

	tableOverflowed := false
	for _, t := range tables {
		maxCount := uint32(math.MaxUint32)
		if t.Max != nil {
			maxCount = *t.Max
		}
		if limit := saturatingAdd(t.Min, cfg.tableGrowthLimit); limit < maxCount {
			maxCount = limit
		}
		if maxCount < t.Min {
			maxCount = t.Min
		}
		if uint64(maxCount)*4 > math.MaxUint32 && !tableOverflowed {
			errs = append(errs, errOverflow(OverflowTable))
			tableOverflowed = true
		}
		l.tables = append(l.tables, tableLayout{
			addr:     gen.Gen("table"),
			curCount: gen.Gen("table_count"),
			minCount: t.Min,
			maxCount: maxCount,
		})
	}

	for _, g := range globals {
		l.globals = append(l.globals, globalLayout{
			addr:  gen.Gen("global"),
			words: wasm.ValueTypeWords(g.ValType),
		})
	}

	elemOverflowed := false
	for _, e := range m.ElementSection {
		if uint64(len(e.Init))*4 > math.MaxUint32 && !elemOverflowed {
			errs = append(errs, errOverflow(OverflowElement))
			elemOverflowed = true
		}
		l.elems = append(l.elems, elemLayout{
			addr:     gen.Gen("element"),
			curCount: gen.Gen("element_count"),
			count:    uint32(len(e.Init)),
		})
	}

	dataOverflowed := false
	for _, d := range m.DataSection {
		if uint64(len(d.Init)) > math.MaxUint32 && !dataOverflowed {
			errs = append(errs, errOverflow(OverflowData))
			dataOverflowed = true
		}
		l.datas = append(l.datas, dataLayout{
			addr:    gen.Gen("data"),
			curSize: gen.Gen("data_size"),
			size:    uint32(len(d.Init)),
		})
	}

	if memories > 1 {
		errs = append(errs, &CompileError{Kind: KindUnsupportedMultipleMemories})
	}
	l.mem = memLayout{addr: gen.Gen("memory"), curSize: gen.Gen("memory_size")}
	if memory != nil {
		if uint64(memory.Min)*wasm.MemoryPageSize > math.MaxUint32 {
			errs = append(errs, errOverflow(OverflowMemory))
		} else {
			l.mem.minSize = memory.Min * wasm.MemoryPageSize
		}
		maxPages := uint32(maxMemoryPages)
		if memory.Max != nil && *memory.Max < maxPages {
			maxPages = *memory.Max
		}
		l.mem.maxSize = maxPages * wasm.MemoryPageSize
	}

	l.glk = glkLayout{addr: gen.Gen("glk_area"), size: cfg.glkAreaSize}
	l.hiReturn = hiReturnLayout{
		addr: gen.Gen("hi_return"),
		size: uint32(lo.Max([]uint64{maxResultWords, 4})) * 4,
	}
	if maxResultWords*4 > math.MaxInt32 && !typeOverflowed {
		errs = append(errs, errOverflow(OverflowTypeDecl))
	}
	l.entrypoint = gen.Gen("entrypoint")
	l.trapTable = gen.Gen("trap_strings")

	if len(errs) > 0 {
		return nil, errs
	}
	return l, nil
}

func saturatingAdd(a, b uint32) uint32 {
	if s := a + b; s >= a {
		return s
	}
	return math.MaxUint32
}

func (l *layout) funcType(funcIdx wasm.Index) typeLayout {
	return l.types[l.funcs[funcIdx].typenum-1]
}
