package glulx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmbeddedNul is returned when a string to be stored with a terminator
// contains a NUL.
var ErrEmbeddedNul = errors.New("string contains an embedded NUL")

// ByteString is the payload of an E0 string. Glulx leaves the encoding of
// these unspecified; in practice interpreters print them as Latin-1.
type ByteString []byte

// NewByteString validates that b can be terminated with a NUL.
func NewByteString(b []byte) (ByteString, error) {
	for _, c := range b {
		if c == 0 {
			return nil, ErrEmbeddedNul
		}
	}
	return ByteString(append([]byte(nil), b...)), nil
}

// Latin1 converts s to Latin-1, replacing characters outside that range and
// NULs with '?'.
func Latin1(s string) ByteString {
	out := make(ByteString, 0, len(s))
	for _, r := range s {
		if r == 0 || r > 0xff {
			r = '?'
		}
		out = append(out, byte(r))
	}
	return out
}

// String renders s as a quoted Go string literal, reading it as Latin-1.
func (s ByteString) String() string {
	var sb strings.Builder
	for _, c := range s {
		sb.WriteRune(rune(c))
	}
	return strconv.Quote(sb.String())
}

// Utf32String is the payload of an E2 string.
type Utf32String []rune

// NewUtf32String validates that s contains no NUL and only valid scalar values.
func NewUtf32String(s string) (Utf32String, error) {
	out := make(Utf32String, 0, len(s))
	for _, r := range s {
		if r == 0 {
			return nil, ErrEmbeddedNul
		}
		out = append(out, r)
	}
	return out, nil
}

func (s Utf32String) byteLen() int { return 4 * len(s) }

func (s Utf32String) appendTo(buf []byte) []byte {
	for _, r := range s {
		buf = binary.BigEndian.AppendUint32(buf, uint32(r))
	}
	return buf
}

// String renders s as a quoted Go string literal.
func (s Utf32String) String() string {
	return strconv.Quote(string(s))
}

func hexBytes(b []byte) string {
	return fmt.Sprintf("%x", b)
}
