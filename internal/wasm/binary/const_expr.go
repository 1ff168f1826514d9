package binary

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tetratelabs/wasm2glulx/internal/leb128"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

var errUnterminatedConst = errors.New("constant expression is not terminated by end")

// decodeConstantExpression reads a single-instruction constant expression.
// Data keeps the immediate undecoded, without the end opcode.
func decodeConstantExpression(r *bytes.Reader) (*wasm.ConstantExpression, error) {
	b, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("read opcode: %w", err)
	}
	start := r.Size() - int64(r.Len())

	op := wasm.Opcode(b)
	switch op {
	case wasm.OpcodeI32Const:
		_, _, err = leb128.DecodeInt32(r)
	case wasm.OpcodeI64Const:
		_, _, err = leb128.DecodeInt64(r)
	case wasm.OpcodeF32Const:
		err = skip(r, 4)
	case wasm.OpcodeF64Const:
		err = skip(r, 8)
	case wasm.OpcodeGlobalGet, wasm.OpcodeRefFunc:
		_, _, err = leb128.DecodeUint32(r)
	case wasm.OpcodeRefNull:
		_, err = decodeRefType(r)
	default:
		return nil, fmt.Errorf("%v for constant expression opcode: %#x", ErrInvalidByte, b)
	}
	if err != nil {
		return nil, fmt.Errorf("read value: %w", err)
	}

	data := make([]byte, r.Size()-int64(r.Len())-start)
	if _, err = r.ReadAt(data, start); err != nil {
		return nil, fmt.Errorf("read value: %w", err)
	}
	if end, err := r.ReadByte(); err != nil || wasm.Opcode(end) != wasm.OpcodeEnd {
		return nil, errUnterminatedConst
	}
	return &wasm.ConstantExpression{Opcode: op, Data: data}, nil
}

func skip(r *bytes.Reader, n int) error {
	if r.Len() < n {
		return io.ErrUnexpectedEOF
	}
	_, err := r.Seek(int64(n), io.SeekCurrent)
	return err
}
