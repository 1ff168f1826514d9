package binary

import (
	"bytes"
	"fmt"

	"github.com/tetratelabs/wasm2glulx/internal/leb128"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

func decodeImport(r *bytes.Reader) (*wasm.Import, error) {
	module, err := decodeUTF8(r, "import module")
	if err != nil {
		return nil, err
	}
	name, err := decodeUTF8(r, "import name")
	if err != nil {
		return nil, err
	}
	im := &wasm.Import{Module: module, Name: name}

	if im.Type, err = r.ReadByte(); err != nil {
		return nil, fmt.Errorf("import %s/%s: read kind: %w", module, name, err)
	}
	switch im.Type {
	case wasm.ExternTypeFunc:
		im.DescFunc, _, err = leb128.DecodeUint32(r)
	case wasm.ExternTypeTable:
		im.DescTable, err = decodeTableType(r)
	case wasm.ExternTypeMemory:
		im.DescMem, err = decodeMemoryType(r)
	case wasm.ExternTypeGlobal:
		im.DescGlobal, err = decodeGlobalType(r)
	default:
		return nil, fmt.Errorf("import %s/%s: %w: kind %#x", module, name, ErrInvalidByte, im.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("import %s/%s: read %s: %w", module, name, wasm.ExternTypeName(im.Type), err)
	}
	return im, nil
}

func decodeExport(r *bytes.Reader) (*wasm.Export, error) {
	name, err := decodeUTF8(r, "export name")
	if err != nil {
		return nil, err
	}
	e := &wasm.Export{Name: name}

	if e.Type, err = r.ReadByte(); err != nil {
		return nil, fmt.Errorf("export %s: read kind: %w", name, err)
	}
	if e.Type > wasm.ExternTypeGlobal {
		return nil, fmt.Errorf("export %s: %w: kind %#x", name, ErrInvalidByte, e.Type)
	}
	if e.Index, _, err = leb128.DecodeUint32(r); err != nil {
		return nil, fmt.Errorf("export %s: read index: %w", name, err)
	}
	return e, nil
}
