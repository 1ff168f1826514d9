package glulx

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when an address or length does not fit in 32 bits.
	ErrOverflow = errors.New("address space overflow")
	// ErrUndefinedLabel is returned when a referenced label never appears in any item list.
	ErrUndefinedLabel = errors.New("undefined label")
	// ErrDuplicateLabel is returned when a label is defined more than once.
	ErrDuplicateLabel = errors.New("duplicate label")
	// ErrInsufficientAlignment is returned when a shifted label reference
	// would lose low-order bits of the address.
	ErrInsufficientAlignment = errors.New("insufficient label alignment")
)

// Error is the error type returned by Assemble. Use errors.Is against the
// sentinel values above to check the kind.
type Error struct {
	kind   error
	Label  Label
	Offset int32
	Shift  uint8
}

func (e *Error) Error() string {
	switch e.kind {
	case ErrOverflow:
		return e.kind.Error()
	case ErrInsufficientAlignment:
		return fmt.Sprintf("label %s%+d is not aligned to a multiple of %d", e.Label, e.Offset, uint64(1)<<e.Shift)
	default:
		return fmt.Sprintf("%v: %s", e.kind, e.Label)
	}
}

// Unwrap returns the sentinel describing the kind of e.
func (e *Error) Unwrap() error { return e.kind }

func overflowError() error { return &Error{kind: ErrOverflow} }

func undefinedLabelError(l Label) error { return &Error{kind: ErrUndefinedLabel, Label: l} }

func duplicateLabelError(l Label) error { return &Error{kind: ErrDuplicateLabel, Label: l} }

func alignmentError(l Label, offset int32, shift uint8) error {
	return &Error{kind: ErrInsufficientAlignment, Label: l, Offset: offset, Shift: shift}
}

// addOffset adds a signed offset to an address, failing on wraparound.
func addOffset(addr uint32, offset int32) (uint32, error) {
	sum := int64(addr) + int64(offset)
	if sum < 0 || sum > 0xffffffff {
		return 0, overflowError()
	}
	return uint32(sum), nil
}

// addLen adds an unsigned length to a position, failing on wraparound.
func addLen(pos uint32, n int) (uint32, error) {
	sum := uint64(pos) + uint64(n)
	if n < 0 || sum > 0xffffffff {
		return 0, overflowError()
	}
	return uint32(sum), nil
}

// alignUp rounds pos up to the next multiple of align.
func alignUp(pos, align uint32) (uint32, error) {
	if align <= 1 {
		return pos, nil
	}
	rem := pos % align
	if rem == 0 {
		return pos, nil
	}
	return addLen(pos, int(align-rem))
}
