package binary

import (
	"bytes"
	"fmt"

	"github.com/tetratelabs/wasm2glulx/internal/leb128"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

func ensureElementKindFuncRef(r *bytes.Reader) error {
	elemKind, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("read element prefix: %w", err)
	}
	if elemKind != 0x0 { // ElemKind is fixed to 0x0 (funcref)
		return fmt.Errorf("element kind must be zero but was 0x%x", elemKind)
	}
	return nil
}

func decodeElementInitValueVector(r *bytes.Reader) ([]wasm.ElementInit, error) {
	vs, err := decodeVectorLen(r)
	if err != nil {
		return nil, err
	}

	vec := make([]wasm.ElementInit, vs)
	for i := range vec {
		u32, _, err := leb128.DecodeUint32(r)
		if err != nil {
			return nil, fmt.Errorf("read function index: %w", err)
		}
		vec[i] = wasm.ElementInit{Kind: wasm.ElementInitFunc, Index: u32}
	}
	return vec, nil
}

func decodeElementConstExprVector(r *bytes.Reader) ([]wasm.ElementInit, error) {
	vs, err := decodeVectorLen(r)
	if err != nil {
		return nil, err
	}
	vec := make([]wasm.ElementInit, vs)
	for i := range vec {
		expr, err := decodeConstantExpression(r)
		if err != nil {
			return nil, err
		}
		switch expr.Opcode {
		case wasm.OpcodeRefFunc:
			v, _, _ := leb128.DecodeUint32(bytes.NewReader(expr.Data))
			vec[i] = wasm.ElementInit{Kind: wasm.ElementInitFunc, Index: v}
		case wasm.OpcodeGlobalGet:
			v, _, _ := leb128.DecodeUint32(bytes.NewReader(expr.Data))
			vec[i] = wasm.ElementInit{Kind: wasm.ElementInitGlobal, Index: v}
		case wasm.OpcodeRefNull:
			vec[i] = wasm.ElementInit{Kind: wasm.ElementInitNull}
		default:
			return nil, fmt.Errorf("const expr must be either ref.null, ref.func or global.get but was %s", wasm.InstructionName(expr.Opcode))
		}
	}
	return vec, nil
}

func decodeElementSegment(r *bytes.Reader) (*wasm.ElementSegment, error) {
	prefix, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("read element prefix: %w", err)
	}
	if prefix > 7 {
		return nil, fmt.Errorf("invalid element segment prefix: 0x%x", prefix)
	}

	// Bit 0 set means passive or declarative, by bit 1. Bit 1 set on an active
	// segment means an explicit table index. Bit 2 set means the initializers
	// are constant expressions and the element kind is a reference type.
	ret := &wasm.ElementSegment{Type: wasm.RefTypeFuncref}
	switch {
	case prefix&1 == 0:
		ret.Mode = wasm.ElementModeActive
		if prefix&2 != 0 {
			if ret.TableIndex, _, err = leb128.DecodeUint32(r); err != nil {
				return nil, fmt.Errorf("read table index: %w", err)
			}
		}
		if ret.OffsetExpr, err = decodeConstantExpression(r); err != nil {
			return nil, fmt.Errorf("read expr for offset: %w", err)
		}
	case prefix&2 == 0:
		ret.Mode = wasm.ElementModePassive
	default:
		ret.Mode = wasm.ElementModeDeclarative
	}

	// The legacy encodings 0 and 4 have no element kind or type.
	hasKind := prefix != 0 && prefix != 4
	if prefix&4 == 0 {
		if hasKind {
			if err = ensureElementKindFuncRef(r); err != nil {
				return nil, err
			}
		}
		ret.Init, err = decodeElementInitValueVector(r)
	} else {
		if hasKind {
			if ret.Type, err = decodeRefType(r); err != nil {
				return nil, err
			}
		}
		ret.Init, err = decodeElementConstExprVector(r)
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}
