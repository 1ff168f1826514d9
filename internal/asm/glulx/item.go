package glulx

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strings"
)

// Item is a unit of content placed in ROM or RAM.
type Item interface {
	worstLen() int
	// align is the alignment the following item is padded to.
	align() uint32
	resolvedLen(pos uint32, r Resolver) (int, error)
	appendTo(buf []byte, pos uint32, r Resolver) ([]byte, error)
	listing() string
}

// CallingConvention selects how a function receives its arguments.
type CallingConvention byte

const (
	// ArgsOnStack pushes the arguments followed by their count.
	ArgsOnStack CallingConvention = 0xc0
	// ArgsInLocals copies the arguments into the first locals.
	ArgsInLocals CallingConvention = 0xc1
)

type markItem struct{ label Label }

// Mark defines l as the address of whatever item follows.
func Mark(l Label) Item { return markItem{label: l} }

func (markItem) worstLen() int { return 0 }
func (markItem) align() uint32 { return 1 }
func (markItem) resolvedLen(uint32, Resolver) (int, error) { return 0, nil }
func (markItem) appendTo(buf []byte, _ uint32, _ Resolver) ([]byte, error) { return buf, nil }
func (m markItem) listing() string { return ".label " + m.label.String() }

type alignItem struct{ n uint32 }

// Align pads so that the next item starts at a multiple of n.
func Align(n uint32) Item {
	if n == 0 {
		panic("alignment must be positive")
	}
	return alignItem{n: n}
}

func (alignItem) worstLen() int { return 0 }
func (a alignItem) align() uint32 { return a.n }
func (alignItem) resolvedLen(uint32, Resolver) (int, error) { return 0, nil }
func (a alignItem) appendTo(buf []byte, pos uint32, _ Resolver) ([]byte, error) {
	padded, err := alignUp(pos, a.n)
	if err != nil {
		return nil, err
	}
	return append(buf, make([]byte, padded-pos)...), nil
}
func (a alignItem) listing() string { return fmt.Sprintf(".align %d", a.n) }

type decodingTableItem struct{ root *DecodeNode }

// DecodingTable is a compressed-string decoding table with the given tree.
func DecodingTable(root *DecodeNode) Item { return decodingTableItem{root: root} }

func (t decodingTableItem) worstLen() int { return 12 + t.root.len() }
func (decodingTableItem) align() uint32 { return 1 }
func (t decodingTableItem) resolvedLen(uint32, Resolver) (int, error) {
	return t.worstLen(), nil
}

func (t decodingTableItem) appendTo(buf []byte, pos uint32, r Resolver) ([]byte, error) {
	length, err := addLen(0, t.worstLen())
	if err != nil {
		return nil, err
	}
	root, err := addLen(pos, 12)
	if err != nil {
		return nil, err
	}
	if _, err = addLen(root, t.root.len()); err != nil {
		return nil, err
	}
	buf = binary.BigEndian.AppendUint32(buf, length)
	buf = binary.BigEndian.AppendUint32(buf, uint32(t.root.countNodes()))
	buf = binary.BigEndian.AppendUint32(buf, root)
	return t.root.appendTo(buf, root, r)
}
func (decodingTableItem) listing() string { return ".decoding_table" }

type fnHeaderItem struct {
	conv   CallingConvention
	locals uint32
}

// FnHeader starts a function with the given number of four-byte locals.
func FnHeader(conv CallingConvention, locals uint32) Item {
	return fnHeaderItem{conv: conv, locals: locals}
}

func (f fnHeaderItem) worstLen() int {
	return 2*int((uint64(f.locals)+254)/255) + 3
}
func (fnHeaderItem) align() uint32 { return 1 }
func (f fnHeaderItem) resolvedLen(uint32, Resolver) (int, error) {
	return f.worstLen(), nil
}

func (f fnHeaderItem) appendTo(buf []byte, _ uint32, _ Resolver) ([]byte, error) {
	buf = append(buf, byte(f.conv))
	for n := f.locals / 255; n > 0; n-- {
		buf = append(buf, 4, 255)
	}
	if rem := f.locals % 255; rem != 0 {
		buf = append(buf, 4, byte(rem))
	}
	return append(buf, 0, 0), nil
}

func (f fnHeaderItem) listing() string {
	if f.conv == ArgsOnStack {
		return fmt.Sprintf(".fnstack %d", f.locals)
	}
	return fmt.Sprintf(".fnlocal %d", f.locals)
}

func (i Instr) align() uint32 { return 1 }

func (i Instr) resolvedLen(pos uint32, r Resolver) (int, error) {
	ri, err := i.resolve(pos, r)
	if err != nil {
		return 0, err
	}
	return ri.len(), nil
}

func (i Instr) appendTo(buf []byte, pos uint32, r Resolver) ([]byte, error) {
	ri, err := i.resolve(pos, r)
	if err != nil {
		return nil, err
	}
	return ri.appendTo(buf), nil
}

func (i Instr) listing() string { return "\t" + i.String() }

type byteStringItem struct{ s ByteString }

// Str is an E0 string. It must not contain NUL; see NewByteString.
func Str(s ByteString) Item { return byteStringItem{s: s} }

func (s byteStringItem) worstLen() int { return len(s.s) + 2 }
func (byteStringItem) align() uint32 { return 1 }
func (s byteStringItem) resolvedLen(uint32, Resolver) (int, error) {
	return s.worstLen(), nil
}

func (s byteStringItem) appendTo(buf []byte, _ uint32, _ Resolver) ([]byte, error) {
	buf = append(buf, 0xe0)
	buf = append(buf, s.s...)
	return append(buf, 0), nil
}
func (s byteStringItem) listing() string { return ".string " + s.s.String() }

type compressedStringItem struct{ b []byte }

// CompressedString is an E1 string of already-encoded data. No checks are made
// against the decoding table.
func CompressedString(b []byte) Item { return compressedStringItem{b: b} }

func (c compressedStringItem) worstLen() int { return len(c.b) + 1 }
func (compressedStringItem) align() uint32 { return 1 }
func (c compressedStringItem) resolvedLen(uint32, Resolver) (int, error) {
	return c.worstLen(), nil
}

func (c compressedStringItem) appendTo(buf []byte, _ uint32, _ Resolver) ([]byte, error) {
	buf = append(buf, 0xe1)
	return append(buf, c.b...), nil
}
func (c compressedStringItem) listing() string { return ".compressed_string " + hexBytes(c.b) }

type utf32StringItem struct{ s Utf32String }

// UnicodeString is an E2 string.
func UnicodeString(s Utf32String) Item { return utf32StringItem{s: s} }

func (u utf32StringItem) worstLen() int { return u.s.byteLen() + 8 }
func (utf32StringItem) align() uint32 { return 1 }
func (u utf32StringItem) resolvedLen(uint32, Resolver) (int, error) {
	return u.worstLen(), nil
}

func (u utf32StringItem) appendTo(buf []byte, _ uint32, _ Resolver) ([]byte, error) {
	buf = binary.BigEndian.AppendUint32(buf, 0xe2000000)
	buf = u.s.appendTo(buf)
	return binary.BigEndian.AppendUint32(buf, 0), nil
}
func (u utf32StringItem) listing() string { return ".unistring " + u.s.String() }

type blobItem struct{ b []byte }

// Blob is emitted verbatim.
func Blob(b []byte) Item { return blobItem{b: b} }

// Word is a blob holding one big-endian word.
func Word(v uint32) Item { return blobItem{b: binary.BigEndian.AppendUint32(nil, v)} }

func (b blobItem) worstLen() int { return len(b.b) }
func (blobItem) align() uint32 { return 1 }
func (b blobItem) resolvedLen(uint32, Resolver) (int, error) {
	return len(b.b), nil
}

func (b blobItem) appendTo(buf []byte, _ uint32, _ Resolver) ([]byte, error) {
	return append(buf, b.b...), nil
}
func (b blobItem) listing() string { return ".blob " + hexBytes(b.b) }

type labelRefItem struct {
	label  Label
	offset int32
	shift  uint8
}

// LabelRef is four bytes holding the absolute address of l.
func LabelRef(l Label) Item { return labelRefItem{label: l} }

// LabelRefShift is four bytes holding the absolute address of l plus offset,
// right-shifted by shift bits.
func LabelRefShift(l Label, offset int32, shift uint8) Item {
	return labelRefItem{label: l, offset: offset, shift: shift}
}

func (labelRefItem) worstLen() int { return 4 }
func (labelRefItem) align() uint32 { return 1 }
func (labelRefItem) resolvedLen(uint32, Resolver) (int, error) {
	return 4, nil
}

func (l labelRefItem) appendTo(buf []byte, _ uint32, r Resolver) ([]byte, error) {
	addr, err := r.ResolveAbsolute(l.label, l.offset)
	if err != nil {
		return nil, err
	}
	if bits.TrailingZeros32(addr) < int(l.shift) {
		return nil, alignmentError(l.label, l.offset, l.shift)
	}
	return binary.BigEndian.AppendUint32(buf, addr>>l.shift), nil
}

func (l labelRefItem) listing() string {
	var sb strings.Builder
	sb.WriteString(".labelref (")
	sb.WriteString(labelOffString(l.label, l.offset))
	if l.shift != 0 {
		fmt.Fprintf(&sb, ">>%d", l.shift)
	}
	sb.WriteString(")")
	return sb.String()
}

type zeroKind uint8

const (
	zeroMark zeroKind = iota
	zeroSpace
	zeroAlign
)

// ZeroItem is content of the zero-initialized region past the end of the
// story file. None of it is serialized.
type ZeroItem struct {
	kind  zeroKind
	label Label
	n     uint32
}

// ZeroMark defines l as the address of the following zero item.
func ZeroMark(l Label) ZeroItem { return ZeroItem{kind: zeroMark, label: l} }

// ZeroSpace reserves n zeroed bytes.
func ZeroSpace(n uint32) ZeroItem { return ZeroItem{kind: zeroSpace, n: n} }

// ZeroAlign pads so that the next zero item starts at a multiple of n.
func ZeroAlign(n uint32) ZeroItem {
	if n == 0 {
		panic("alignment must be positive")
	}
	return ZeroItem{kind: zeroAlign, n: n}
}

func (z ZeroItem) len() uint32 {
	if z.kind == zeroSpace {
		return z.n
	}
	return 0
}

func (z ZeroItem) align() uint32 {
	if z.kind == zeroAlign {
		return z.n
	}
	return 1
}

func (z ZeroItem) listing() string {
	switch z.kind {
	case zeroMark:
		return ".label " + z.label.String()
	case zeroAlign:
		return fmt.Sprintf(".align %d", z.n)
	default:
		return fmt.Sprintf(".space %d", z.n)
	}
}
