package compiler

import (
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
	"github.com/tetratelabs/wasm2glulx/internal/wasmir"
)

type instrClass byte

const (
	classOther instrClass = iota
	// classLoad pushes a value from somewhere an operand can read directly.
	classLoad
	// classStore pops a value into somewhere an operand can write directly.
	classStore
	classRet
	classBlock
	classLoop
	// classTerminal transfers control unconditionally.
	classTerminal
)

func classify(in *wasmir.Instr) instrClass {
	switch in.Op {
	case wasm.OpcodeLocalGet, wasm.OpcodeGlobalGet, wasm.OpcodeI32Const, wasm.OpcodeI64Const,
		wasm.OpcodeF32Const, wasm.OpcodeF64Const, wasm.OpcodeRefNull, wasm.OpcodeRefFunc,
		wasm.OpcodeTableSize:
		return classLoad
	case wasm.OpcodeLocalSet, wasm.OpcodeGlobalSet, wasm.OpcodeDrop:
		return classStore
	case wasm.OpcodeReturn:
		return classRet
	case wasm.OpcodeBlock, wasm.OpcodeIf:
		return classBlock
	case wasm.OpcodeLoop:
		return classLoop
	case wasm.OpcodeBr, wasm.OpcodeBrTable, wasm.OpcodeUnreachable:
		return classTerminal
	}
	return classOther
}

// test is the condition of a conditional branch.
type test byte

const (
	testNez test = iota
	testEqz
	testEq
	testNe
	testLtS
	testLtU
	testGtS
	testGtU
	testLeS
	testLeU
	testGeS
	testGeU
	testF32Eq
	testF32Ne
	testF32Lt
	testF32Gt
	testF32Le
	testF32Ge
	testF64Eq
	testF64Ne
	testF64Lt
	testF64Gt
	testF64Le
	testF64Ge
)

var fusableTests = map[wasm.Opcode]test{
	wasm.OpcodeI32Eqz: testEqz,
	wasm.OpcodeI32Eq:  testEq,
	wasm.OpcodeI32Ne:  testNe,
	wasm.OpcodeI32LtS: testLtS,
	wasm.OpcodeI32LtU: testLtU,
	wasm.OpcodeI32GtS: testGtS,
	wasm.OpcodeI32GtU: testGtU,
	wasm.OpcodeI32LeS: testLeS,
	wasm.OpcodeI32LeU: testLeU,
	wasm.OpcodeI32GeS: testGeS,
	wasm.OpcodeI32GeU: testGeU,
	wasm.OpcodeF32Eq:  testF32Eq,
	wasm.OpcodeF32Ne:  testF32Ne,
	wasm.OpcodeF32Lt:  testF32Lt,
	wasm.OpcodeF32Gt:  testF32Gt,
	wasm.OpcodeF32Le:  testF32Le,
	wasm.OpcodeF32Ge:  testF32Ge,
	wasm.OpcodeF64Eq:  testF64Eq,
	wasm.OpcodeF64Ne:  testF64Ne,
	wasm.OpcodeF64Lt:  testF64Lt,
	wasm.OpcodeF64Gt:  testF64Gt,
	wasm.OpcodeF64Le:  testF64Le,
	wasm.OpcodeF64Ge:  testF64Ge,
}

// words is the number of stack words the test consumes.
func (t test) words() uint32 {
	switch {
	case t <= testEqz:
		return 1
	case t >= testF64Eq:
		return 4
	}
	return 2
}

// node is an instruction with the comparison feeding its condition, if any,
// folded in.
type node struct {
	*wasmir.Instr
	test test
	// in is what the node pops, including the operands of a folded comparison.
	in []wasm.ValueType
}

func takesTest(op wasm.Opcode) bool {
	return op == wasm.OpcodeBrIf || op == wasm.OpcodeIf || op == wasm.OpcodeSelect
}

// fuseTests folds each comparison that directly feeds a br_if, if or select
// into it.
func fuseTests(instrs []*wasmir.Instr) []*node {
	nodes := make([]*node, 0, len(instrs))
	for _, in := range instrs {
		n := &node{Instr: in, in: in.In}
		if takesTest(in.Op) && len(nodes) > 0 {
			prev := nodes[len(nodes)-1]
			if t, ok := fusableTests[prev.Op]; ok && prev.test == testNez {
				n.test = t
				n.in = append(append([]wasm.ValueType{}, in.In[:len(in.In)-1]...), prev.in...)
				nodes[len(nodes)-1] = n
				continue
			}
		}
		nodes = append(nodes, n)
	}
	return nodes
}

type subseqKind byte

const (
	// subseqCopy moves loads straight to stores.
	subseqCopy subseqKind = iota
	subseqOther
	subseqBlock
	subseqLoop
	subseqTerminal
)

// subseq is a run of the shape loads* nucleus? stores* return?. A block or
// terminal nucleus takes no stores; the values a block leaves behind are the
// next subsequence's business.
type subseq struct {
	kind    subseqKind
	loads   []*node
	nucleus *node
	stores  []*node
	ret     *node
}

func (s *subseq) empty() bool {
	return len(s.loads) == 0 && s.nucleus == nil && len(s.stores) == 0 && s.ret == nil
}

// subsequences splits a fused instruction list. Nothing after a return or a
// terminal is kept, as it can never run.
func subsequences(nodes []*node) []*subseq {
	var out []*subseq
	cur := &subseq{}
	// pastLoads is set once the current subsequence has a nucleus or stores,
	// so a further load starts a new one.
	pastLoads := false
	flush := func() {
		if !cur.empty() {
			out = append(out, cur)
		}
		cur = &subseq{}
		pastLoads = false
	}

	for _, n := range nodes {
		switch classify(n.Instr) {
		case classLoad:
			if pastLoads {
				flush()
			}
			cur.loads = append(cur.loads, n)
		case classStore:
			cur.stores = append(cur.stores, n)
			pastLoads = true
		case classRet:
			cur.ret = n
			flush()
			return out
		case classBlock:
			if pastLoads {
				flush()
			}
			cur.kind, cur.nucleus = subseqBlock, n
			flush()
		case classLoop:
			flush()
			cur.kind, cur.nucleus = subseqLoop, n
			pastLoads = true
		case classTerminal:
			if pastLoads {
				flush()
			}
			cur.kind, cur.nucleus = subseqTerminal, n
			flush()
			return out
		default:
			if pastLoads {
				flush()
			}
			cur.kind, cur.nucleus = subseqOther, n
			pastLoads = true
		}
	}
	flush()
	return out
}
