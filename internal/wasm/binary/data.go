package binary

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tetratelabs/wasm2glulx/internal/leb128"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

func decodeDataSegment(r *bytes.Reader) (*wasm.DataSegment, error) {
	prefix, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("read data segment prefix: %w", err)
	}

	ret := &wasm.DataSegment{}
	switch prefix {
	case 0x0:
		// Active with the memory index zero.
	case 0x1:
		// Passive.
	case 0x2:
		if ret.MemoryIndex, _, err = leb128.DecodeUint32(r); err != nil {
			return nil, fmt.Errorf("read memory index: %v", err)
		}
	default:
		return nil, fmt.Errorf("invalid data segment prefix: 0x%x", prefix)
	}

	if prefix != 0x1 {
		if ret.OffsetExpression, err = decodeConstantExpression(r); err != nil {
			return nil, fmt.Errorf("read offset expression: %v", err)
		}
	}

	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get the size of vector: %v", err)
	}
	if int64(vs) > int64(r.Len()) {
		return nil, fmt.Errorf("read bytes for init: %w", io.ErrUnexpectedEOF)
	}

	ret.Init = make([]byte, vs)
	if _, err := io.ReadFull(r, ret.Init); err != nil {
		return nil, fmt.Errorf("read bytes for init: %v", err)
	}
	return ret, nil
}
