package leb128

import (
	"errors"
	"fmt"
	"io"
)

const (
	maxVarintLen32 = 5
	maxVarintLen33 = maxVarintLen32
	maxVarintLen64 = 10
)

var (
	errOverflow32 = errors.New("overflows a 32-bit integer")
	errOverflow33 = errors.New("overflows a 33-bit integer")
	errOverflow64 = errors.New("overflows a 64-bit integer")
)

// DecodeUint32 reads an unsigned LEB128 value from r. num is the count of bytes consumed.
func DecodeUint32(r io.ByteReader) (ret uint32, num uint64, err error) {
	v, num, err := decodeUnsigned(r, maxVarintLen32, 32)
	if err != nil {
		return 0, num, err
	}
	return uint32(v), num, nil
}

// DecodeUint64 reads an unsigned LEB128 value from r.
func DecodeUint64(r io.ByteReader) (ret uint64, num uint64, err error) {
	return decodeUnsigned(r, maxVarintLen64, 64)
}

// DecodeInt32 reads a signed LEB128 value from r.
func DecodeInt32(r io.ByteReader) (ret int32, num uint64, err error) {
	v, num, err := decodeSigned(r, maxVarintLen32, 32)
	if err != nil {
		return 0, num, err
	}
	return int32(v), num, nil
}

// DecodeInt33AsInt64 reads the signed 33-bit encoding used by block types.
func DecodeInt33AsInt64(r io.ByteReader) (ret int64, num uint64, err error) {
	return decodeSigned(r, maxVarintLen33, 33)
}

// DecodeInt64 reads a signed LEB128 value from r.
func DecodeInt64(r io.ByteReader) (ret int64, num uint64, err error) {
	return decodeSigned(r, maxVarintLen64, 64)
}

func decodeUnsigned(r io.ByteReader, maxLen int, bits uint) (ret uint64, num uint64, err error) {
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, num, fmt.Errorf("readByte failed: %w", err)
		}
		num++
		if int(num) == maxLen {
			// The final byte may only carry the bits that remain.
			if b&0x80 != 0 || (bits < 64 && uint64(b)>>(bits-shift) != 0) || (bits == 64 && b > 1) {
				return 0, num, overflowErr(bits)
			}
		}
		ret |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return ret, num, nil
		}
		shift += 7
	}
}

func decodeSigned(r io.ByteReader, maxLen int, bits uint) (ret int64, num uint64, err error) {
	var shift uint
	var b byte
	for {
		b, err = r.ReadByte()
		if err != nil {
			return 0, num, fmt.Errorf("readByte failed: %w", err)
		}
		num++
		if int(num) == maxLen {
			if b&0x80 != 0 {
				return 0, num, overflowErr(bits)
			}
			// Unused high bits of the final byte must be a sign extension.
			used := bits - shift
			rest := int8(b<<1) >> 1 >> (used - 1)
			if rest != 0 && rest != -1 {
				return 0, num, overflowErr(bits)
			}
		}
		ret |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			break
		}
	}
	if shift < 64 && b&0x40 != 0 {
		ret |= -1 << shift
	}
	return ret, num, nil
}

func overflowErr(bits uint) error {
	switch bits {
	case 32:
		return errOverflow32
	case 33:
		return errOverflow33
	default:
		return errOverflow64
	}
}
