package wasm

import (
	"fmt"
	"strings"
)

// Module is a decoded WebAssembly binary.
// See https://www.w3.org/TR/wasm-core-2/#modules%E2%91%A8
//
// Differences from the specification:
// * Only the function names of the custom "name" section are kept, in NameSection.
// * Sections are kept in binary order so that the index namespaces match the binary.
type Module struct {
	// TypeSection contains the FunctionType of every imported or defined function.
	TypeSection []*FunctionType

	// ImportSection contains imported functions, tables, memories or globals.
	//
	// Note: the index namespace of each kind begins with its imports, in the order they appear here.
	ImportSection []*Import

	// FunctionSection contains the index in TypeSection of each function defined in this module.
	//
	// Note: FunctionSection is index correlated with the CodeSection.
	FunctionSection []Index

	TableSection  []*TableType
	MemorySection []*MemoryType
	GlobalSection []*Global
	ExportSection []*Export

	// StartSection is the index of a function called on instantiation, or nil.
	StartSection *Index

	ElementSection []*ElementSegment

	// CodeSection is index correlated with FunctionSection.
	CodeSection []*Code

	DataSection []*DataSegment

	// DataCountSection is the declared data segment count, or nil when absent.
	DataCountSection *uint32

	// NameSection is nil when the module has no decodable "name" section.
	NameSection *NameSection
}

// Index is the offset in an index namespace, which begins with imports of the same kind.
type Index = uint32

// ImportFuncCount returns the number of imported functions.
func (m *Module) ImportFuncCount() uint32 { return m.importCount(ExternTypeFunc) }

// ImportTableCount returns the number of imported tables.
func (m *Module) ImportTableCount() uint32 { return m.importCount(ExternTypeTable) }

// ImportMemoryCount returns the number of imported memories.
func (m *Module) ImportMemoryCount() uint32 { return m.importCount(ExternTypeMemory) }

// ImportGlobalCount returns the number of imported globals.
func (m *Module) ImportGlobalCount() uint32 { return m.importCount(ExternTypeGlobal) }

func (m *Module) importCount(kind ExternType) (n uint32) {
	for _, im := range m.ImportSection {
		if im.Type == kind {
			n++
		}
	}
	return
}

// FuncCount is the size of the function index namespace.
func (m *Module) FuncCount() uint32 {
	return m.ImportFuncCount() + uint32(len(m.FunctionSection))
}

// TypeOfFunction returns the function type for the given function namespace index or nil.
func (m *Module) TypeOfFunction(funcIdx Index) *FunctionType {
	var typeIdx Index
	n := Index(0)
	found := false
	for _, im := range m.ImportSection {
		if im.Type != ExternTypeFunc {
			continue
		}
		if n == funcIdx {
			typeIdx, found = im.DescFunc, true
			break
		}
		n++
	}
	if !found {
		local := funcIdx - n
		if funcIdx < n || local >= uint32(len(m.FunctionSection)) {
			return nil
		}
		typeIdx = m.FunctionSection[local]
	}
	if typeIdx >= uint32(len(m.TypeSection)) {
		return nil
	}
	return m.TypeSection[typeIdx]
}

// FuncName returns the name the "name" section gives funcIdx, or "" if unnamed.
func (m *Module) FuncName(funcIdx Index) string {
	if m.NameSection == nil {
		return ""
	}
	return m.NameSection.FunctionNames[funcIdx]
}

// ExportedFunction returns the index of the function exported as name.
func (m *Module) ExportedFunction(name string) (Index, bool) {
	for _, e := range m.ExportSection {
		if e.Type == ExternTypeFunc && e.Name == name {
			return e.Index, true
		}
	}
	return 0, false
}

// FunctionType is a possibly empty function signature.
type FunctionType struct {
	Params  []ValueType
	Results []ValueType
}

// String renders the signature as the text format would, ex. "(i32, i64) -> (f32)".
func (t *FunctionType) String() string {
	return "(" + valueTypeList(t.Params) + ") -> (" + valueTypeList(t.Results) + ")"
}

// EqualsSignature returns true if the function type has the same parameters and results.
func (t *FunctionType) EqualsSignature(params []ValueType, results []ValueType) bool {
	return valueTypesEqual(t.Params, params) && valueTypesEqual(t.Results, results)
}

func valueTypesEqual(a, b []ValueType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func valueTypeList(vs []ValueType) string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = ValueTypeName(v)
	}
	return strings.Join(names, ", ")
}

// Import is the binary representation of an import indicated by Type.
type Import struct {
	Type   ExternType
	Module string
	Name   string
	// DescFunc is the index in Module.TypeSection when Type equals ExternTypeFunc
	DescFunc Index
	// DescTable is the inlined TableType when Type equals ExternTypeTable
	DescTable *TableType
	// DescMem is the inlined MemoryType when Type equals ExternTypeMemory
	DescMem *MemoryType
	// DescGlobal is the inlined GlobalType when Type equals ExternTypeGlobal
	DescGlobal *GlobalType
}

// TableType is a table definition. Min and Max count elements.
type TableType struct {
	Type RefType
	Min  uint32
	Max  *uint32
}

// MemoryType is a memory definition. Min and Max count 64KiB pages.
type MemoryType struct {
	Min    uint32
	Max    *uint32
	Shared bool
}

// MemoryPageSize is the unit of MemoryType.Min and MemoryType.Max.
const MemoryPageSize = 65536

type GlobalType struct {
	ValType ValueType
	Mutable bool
}

type Global struct {
	Type *GlobalType
	Init *ConstantExpression
}

// ConstantExpression is a single constant instruction followed by end. Data holds
// the encoded immediate: a LEB128 for the integer and index forms, the raw little
// endian bits for floats and the reference type byte for ref.null.
type ConstantExpression struct {
	Opcode Opcode
	Data   []byte
}

type Export struct {
	Type ExternType
	// Name is what the host refers to this definition as.
	Name string
	// Index is the index of the definition to export, the index namespace is by Type.
	Index Index
}

// ElementMode is how an element segment is applied.
type ElementMode = byte

const (
	ElementModeActive ElementMode = iota
	ElementModePassive
	ElementModeDeclarative
)

// ElementInitKind is the kind of one entry of ElementSegment.Init.
type ElementInitKind = byte

const (
	// ElementInitFunc is a reference to the function at ElementInit.Index.
	ElementInitFunc ElementInitKind = iota
	// ElementInitNull is a null reference.
	ElementInitNull
	// ElementInitGlobal is the value of the global at ElementInit.Index.
	ElementInitGlobal
)

type ElementInit struct {
	Kind  ElementInitKind
	Index Index
}

type ElementSegment struct {
	// OffsetExpr is only set when Mode is ElementModeActive.
	OffsetExpr *ConstantExpression
	TableIndex Index
	Init       []ElementInit
	Type       RefType
	Mode       ElementMode
}

// Code is an entry in the Module.CodeSection containing the locals and body of the function.
type Code struct {
	// Locals are the declared locals in run-length groups, as encoded. Counts
	// are kept compressed since they can sum to more than fits in memory.
	Locals []LocalGroup
	// Body is a sequence of instructions ending in OpcodeEnd.
	Body []byte
}

// LocalGroup is Count consecutive locals of the same type.
type LocalGroup struct {
	Count uint32
	Type  ValueType
}

// LocalCount returns the number of declared locals, excluding parameters.
func (c *Code) LocalCount() (n uint64) {
	for _, g := range c.Locals {
		n += uint64(g.Count)
	}
	return
}

// LocalType returns the type of the i-th declared local, excluding parameters.
func (c *Code) LocalType(i uint32) (ValueType, bool) {
	for _, g := range c.Locals {
		if i < g.Count {
			return g.Type, true
		}
		i -= g.Count
	}
	return 0, false
}

type DataSegment struct {
	// OffsetExpression is nil for passive segments.
	OffsetExpression *ConstantExpression
	MemoryIndex      Index
	Init             []byte
}

// IsPassive returns true if the segment is only applied by memory.init.
func (d *DataSegment) IsPassive() bool {
	return d.OffsetExpression == nil
}

// NameSection holds the parts of the custom "name" section used for diagnostics.
type NameSection struct {
	ModuleName string
	// FunctionNames maps an index in the function namespace to a symbolic name.
	FunctionNames map[Index]string
}

// SectionID identifies the sections of a Module in the binary format.
type SectionID = byte

const (
	SectionIDCustom SectionID = iota
	SectionIDType
	SectionIDImport
	SectionIDFunction
	SectionIDTable
	SectionIDMemory
	SectionIDGlobal
	SectionIDExport
	SectionIDStart
	SectionIDElement
	SectionIDCode
	SectionIDData
	SectionIDDataCount
)

// SectionIDName returns the canonical name of a module section.
func SectionIDName(sectionID SectionID) string {
	switch sectionID {
	case SectionIDCustom:
		return "custom"
	case SectionIDType:
		return "type"
	case SectionIDImport:
		return "import"
	case SectionIDFunction:
		return "function"
	case SectionIDTable:
		return "table"
	case SectionIDMemory:
		return "memory"
	case SectionIDGlobal:
		return "global"
	case SectionIDExport:
		return "export"
	case SectionIDStart:
		return "start"
	case SectionIDElement:
		return "element"
	case SectionIDCode:
		return "code"
	case SectionIDData:
		return "data"
	case SectionIDDataCount:
		return "data_count"
	}
	return "unknown"
}

// ValueType is the binary encoding of a type such as i32.
type ValueType = byte

const (
	ValueTypeI32       ValueType = 0x7f
	ValueTypeI64       ValueType = 0x7e
	ValueTypeF32       ValueType = 0x7d
	ValueTypeF64       ValueType = 0x7c
	ValueTypeV128      ValueType = 0x7b
	ValueTypeFuncref   ValueType = 0x70
	ValueTypeExternref ValueType = 0x6f
)

// RefType is the subset of ValueType usable as a table element.
type RefType = ValueType

const (
	RefTypeFuncref   = ValueTypeFuncref
	RefTypeExternref = ValueTypeExternref
)

// ValueTypeName returns the text format name of the given ValueType, or "unknown".
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeV128:
		return "v128"
	case ValueTypeFuncref:
		return "funcref"
	case ValueTypeExternref:
		return "externref"
	}
	return "unknown"
}

// ValueTypeWords returns how many 32-bit Glulx words hold a value of type t.
func ValueTypeWords(t ValueType) uint32 {
	switch t {
	case ValueTypeI64, ValueTypeF64:
		return 2
	case ValueTypeV128:
		return 4
	}
	return 1
}

// WordCount sums ValueTypeWords over ts.
func WordCount(ts []ValueType) (n uint32) {
	for _, t := range ts {
		n += ValueTypeWords(t)
	}
	return
}

// ExternType indicates the kind of an import or export.
type ExternType = byte

const (
	ExternTypeFunc   ExternType = 0x00
	ExternTypeTable  ExternType = 0x01
	ExternTypeMemory ExternType = 0x02
	ExternTypeGlobal ExternType = 0x03
)

// ExternTypeName returns the canonical name of the import or export kind.
func ExternTypeName(et ExternType) string {
	switch et {
	case ExternTypeFunc:
		return "func"
	case ExternTypeTable:
		return "table"
	case ExternTypeMemory:
		return "memory"
	case ExternTypeGlobal:
		return "global"
	}
	return fmt.Sprintf("%#x", et)
}
