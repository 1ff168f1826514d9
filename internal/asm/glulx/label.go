package glulx

import "fmt"

// Label is a symbolic address. Two labels are equal only if they came from the
// same call to LabelGenerator.Gen; the description is informational.
//
// The zero Label is not a valid label and never resolves.
type Label struct {
	num  uint32
	desc string
}

// IsZero returns true if l was never generated.
func (l Label) IsZero() bool { return l.num == 0 }

// Desc returns the human-readable description l was generated with.
func (l Label) Desc() string { return l.desc }

// String implements fmt.Stringer.
func (l Label) String() string {
	return fmt.Sprintf("%s{%d}", l.desc, l.num)
}

// LabelGenerator hands out labels in monotonically increasing order. The zero
// value is ready to use.
type LabelGenerator struct {
	next uint32
}

// Gen returns a fresh label carrying the given description.
func (g *LabelGenerator) Gen(desc string) Label {
	g.next++
	if g.next == 0 {
		panic("label generator exhausted")
	}
	return Label{num: g.next, desc: desc}
}

// Count returns the number of labels handed out so far.
func (g *LabelGenerator) Count() uint32 { return g.next }
