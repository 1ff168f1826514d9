package binary

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tetratelabs/wasm2glulx/internal/leb128"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

func decodeCode(r *bytes.Reader) (*wasm.Code, error) {
	ss, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get the size of code: %w", err)
	}
	if int64(ss) > int64(r.Len()) {
		return nil, fmt.Errorf("code size %d exceeds remaining %d bytes", ss, r.Len())
	}

	buf := make([]byte, ss)
	_, _ = io.ReadFull(r, buf)
	r = bytes.NewReader(buf)

	ls, err := decodeVectorLen(r)
	if err != nil {
		return nil, fmt.Errorf("get the size locals: %v", err)
	}

	var locals []wasm.LocalGroup
	for i := uint32(0); i < ls; i++ {
		n, _, err := leb128.DecodeUint32(r)
		if err != nil {
			return nil, fmt.Errorf("read n of locals: %v", err)
		}

		vt, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("read type of local: %v", err)
		}
		if err = checkValueType(vt); err != nil {
			return nil, fmt.Errorf("invalid local type: %v", err)
		}
		if n > 0 {
			locals = append(locals, wasm.LocalGroup{Count: n, Type: vt})
		}
	}

	body := make([]byte, r.Len())
	_, _ = io.ReadFull(r, body)
	if len(body) == 0 || wasm.Opcode(body[len(body)-1]) != wasm.OpcodeEnd {
		return nil, fmt.Errorf("expr not end with OpcodeEnd")
	}

	return &wasm.Code{Locals: locals, Body: body}, nil
}
