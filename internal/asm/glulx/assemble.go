package glulx

import (
	"encoding/binary"
	"fmt"
)

const (
	// Magic is the first word of every story file: "Glul".
	Magic uint32 = 0x476C756C
	// Version is the Glulx specification version this assembler targets.
	Version uint32 = 0x00030103
	// HeaderLength is the size of the story file header in bytes.
	HeaderLength = 36
	// pageSize is the alignment of RAM start and end of memory.
	pageSize = 256
)

// Assembly is a complete Glulx program.
type Assembly struct {
	// ROM items are placed right after the header.
	ROM []Item
	// RAM items begin at the first page boundary after ROM.
	RAM []Item
	// Zero items lie past the end of the file and are zeroed by the VM.
	Zero []ZeroItem
	// StackSize is the number of bytes of stack the VM allocates.
	StackSize uint32
	// StartFunc is the function the VM calls first.
	StartFunc Label
	// DecodingTable is the initial string decoding table, or the zero Label
	// for none.
	DecodingTable Label
}

// Stats describes the outcome of a successful assembly.
type Stats struct {
	// Passes is the number of fixed-point passes after the worst-case layout.
	Passes   int
	RAMStart uint32
	ExtStart uint32
	EndMem   uint32
}

// Assemble produces the story file.
func (a *Assembly) Assemble() ([]byte, error) {
	out, _, err := a.AssembleWithStats()
	return out, err
}

// AssembleWithStats produces the story file along with layout statistics.
//
// Labels are placed in four phases:
//
//  1. Every item is laid out assuming each operand has its widest encoding.
//  2. Items are laid out again with operands encoded against the previous
//     label positions, until no label moves. Operands only ever shrink from
//     one pass to the next, so this terminates.
//  3. Items are serialized against the final positions.
//  4. The header and checksum are written.
func (a *Assembly) AssembleWithStats() ([]byte, Stats, error) {
	var stats Stats
	t := &labelTable{positions: map[Label]uint32{}}

	pos := uint32(HeaderLength)
	var err error
	if pos, err = initialPositions(a.ROM, t.positions, pos); err != nil {
		return nil, stats, err
	}
	if pos, err = alignUp(pos, pageSize); err != nil {
		return nil, stats, err
	}
	t.ramStart = pos
	if pos, err = initialPositions(a.RAM, t.positions, pos); err != nil {
		return nil, stats, err
	}
	if pos, err = alignUp(pos, pageSize); err != nil {
		return nil, stats, err
	}
	if _, err = zeroPositions(a.Zero, t.positions, pos, true); err != nil {
		return nil, stats, err
	}

	for {
		stats.Passes++
		var romMoved, ramMoved, zeroMoved bool
		if romMoved, pos, err = updatePositions(a.ROM, t, HeaderLength); err != nil {
			return nil, stats, err
		}
		if pos, err = alignUp(pos, pageSize); err != nil {
			return nil, stats, err
		}
		t.ramStart = pos
		if ramMoved, pos, err = updatePositions(a.RAM, t, pos); err != nil {
			return nil, stats, err
		}
		if pos, err = alignUp(pos, pageSize); err != nil {
			return nil, stats, err
		}
		if zeroMoved, err = zeroPositions(a.Zero, t.positions, pos, false); err != nil {
			return nil, stats, err
		}
		if !romMoved && !ramMoved && !zeroMoved {
			break
		}
	}

	body := make([]byte, 0, t.ramStart)
	if body, err = serializeItems(body, a.ROM, t); err != nil {
		return nil, stats, err
	}
	if HeaderLength+len(body) != int(t.ramStart) {
		panic(fmt.Sprintf("ROM ended at %#x, expected RAM start %#x", HeaderLength+len(body), t.ramStart))
	}
	if body, err = serializeItems(body, a.RAM, t); err != nil {
		return nil, stats, err
	}

	extStart, err := addLen(HeaderLength, len(body))
	if err != nil {
		return nil, stats, err
	}
	zeroEnd, err := verifyZeroItems(a.Zero, t.positions, extStart)
	if err != nil {
		return nil, stats, err
	}
	endMem, err := alignUp(zeroEnd, pageSize)
	if err != nil {
		return nil, stats, err
	}

	startFunc, err := t.ResolveAbsolute(a.StartFunc, 0)
	if err != nil {
		return nil, stats, err
	}
	var decodingTable uint32
	if !a.DecodingTable.IsZero() {
		if decodingTable, err = t.ResolveAbsolute(a.DecodingTable, 0); err != nil {
			return nil, stats, err
		}
	}

	header := [...]uint32{Magic, Version, t.ramStart, extStart, endMem, a.StackSize, startFunc, decodingTable}
	sum := Checksum(body)
	for _, w := range header {
		sum += w
	}

	out := make([]byte, 0, HeaderLength+len(body))
	for _, w := range header {
		out = binary.BigEndian.AppendUint32(out, w)
	}
	out = binary.BigEndian.AppendUint32(out, sum)
	out = append(out, body...)

	stats.RAMStart, stats.ExtStart, stats.EndMem = t.ramStart, extStart, endMem
	return out, stats, nil
}

// Checksum is the wrapping sum of the big-endian words of b. len(b) must be a
// multiple of four.
func Checksum(b []byte) uint32 {
	var sum uint32
	for i := 0; i+4 <= len(b); i += 4 {
		sum += binary.BigEndian.Uint32(b[i:])
	}
	return sum
}

func initialPositions(items []Item, positions map[Label]uint32, pos uint32) (uint32, error) {
	for _, item := range items {
		if m, ok := item.(markItem); ok {
			if _, dup := positions[m.label]; dup {
				return 0, duplicateLabelError(m.label)
			}
			positions[m.label] = pos
		}
		end, err := addLen(pos, item.worstLen())
		if err != nil {
			return 0, err
		}
		if pos, err = alignUp(end, item.align()); err != nil {
			return 0, err
		}
	}
	return pos, nil
}

func updatePositions(items []Item, t *labelTable, pos uint32) (moved bool, end uint32, err error) {
	for _, item := range items {
		n, err := item.resolvedLen(pos, t)
		if err != nil {
			return false, 0, err
		}
		if m, ok := item.(markItem); ok && t.positions[m.label] != pos {
			moved = true
			t.positions[m.label] = pos
		}
		next, err := addLen(pos, n)
		if err != nil {
			return false, 0, err
		}
		if pos, err = alignUp(next, item.align()); err != nil {
			return false, 0, err
		}
	}
	return moved, pos, nil
}

// zeroPositions lays out the zero region. When initial is set, labels are
// inserted and checked for duplicates; otherwise they are updated.
func zeroPositions(items []ZeroItem, positions map[Label]uint32, pos uint32, initial bool) (bool, error) {
	moved := false
	for _, item := range items {
		if item.kind == zeroMark {
			old, exists := positions[item.label]
			switch {
			case initial && exists:
				return false, duplicateLabelError(item.label)
			case old != pos || !exists:
				moved = true
				positions[item.label] = pos
			}
		}
		end, err := addLen(pos, int(item.len()))
		if err != nil {
			return false, err
		}
		if pos, err = alignUp(end, item.align()); err != nil {
			return false, err
		}
	}
	return moved, nil
}

func serializeItems(buf []byte, items []Item, t *labelTable) ([]byte, error) {
	for _, item := range items {
		pos := uint32(HeaderLength + len(buf))
		if m, ok := item.(markItem); ok {
			if want := t.positions[m.label]; want != pos {
				panic(fmt.Sprintf("label %s placed at %#x, expected %#x", m.label, pos, want))
			}
		}
		var err error
		if buf, err = item.appendTo(buf, pos, t); err != nil {
			return nil, err
		}
	}
	if rem := (HeaderLength + len(buf)) % pageSize; rem != 0 {
		buf = append(buf, make([]byte, pageSize-rem)...)
	}
	return buf, nil
}

func verifyZeroItems(items []ZeroItem, positions map[Label]uint32, pos uint32) (uint32, error) {
	for _, item := range items {
		if item.kind == zeroMark {
			if want := positions[item.label]; want != pos {
				panic(fmt.Sprintf("label %s placed at %#x, expected %#x", item.label, pos, want))
			}
		}
		end, err := addLen(pos, int(item.len()))
		if err != nil {
			return 0, err
		}
		if pos, err = alignUp(end, item.align()); err != nil {
			return 0, err
		}
	}
	return pos, nil
}
