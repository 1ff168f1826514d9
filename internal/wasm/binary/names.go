package binary

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tetratelabs/wasm2glulx/internal/leb128"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

const (
	// subsectionIDModuleName contains only the module name.
	subsectionIDModuleName = uint8(0)
	// subsectionIDFunctionNames is a map of indices to function names, in ascending order by function index
	subsectionIDFunctionNames = uint8(1)
)

// decodeNameSection deserializes the data associated with the "name" key in
// SectionIDCustom. Only the module and function names are kept. Other
// subsections are skipped.
func decodeNameSection(r *bytes.Reader) (result *wasm.NameSection, err error) {
	result = &wasm.NameSection{}

	var subsectionID uint8
	var subsectionSize uint32
	for {
		if subsectionID, err = r.ReadByte(); err != nil {
			if err == io.EOF {
				return result, nil
			}
			return nil, fmt.Errorf("failed to read a subsection ID: %w", err)
		}

		if subsectionSize, _, err = leb128.DecodeUint32(r); err != nil {
			return nil, fmt.Errorf("failed to read the size of subsection[%d]: %w", subsectionID, err)
		}
		if int64(subsectionSize) > int64(r.Len()) {
			return nil, fmt.Errorf("subsection[%d] size %d exceeds remaining %d bytes", subsectionID, subsectionSize, r.Len())
		}
		sub := make([]byte, subsectionSize)
		_, _ = io.ReadFull(r, sub)
		sr := bytes.NewReader(sub)

		switch subsectionID {
		case subsectionIDModuleName:
			if result.ModuleName, err = decodeUTF8(sr, "module name"); err != nil {
				return nil, err
			}
		case subsectionIDFunctionNames:
			if result.FunctionNames, err = decodeFunctionNames(sr); err != nil {
				return nil, err
			}
		}
	}
}

func decodeFunctionNames(r *bytes.Reader) (map[wasm.Index]string, error) {
	functionCount, err := decodeVectorLen(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read the function count of subsection[%d]: %w", subsectionIDFunctionNames, err)
	}

	result := make(map[wasm.Index]string, functionCount)
	for i := uint32(0); i < functionCount; i++ {
		functionIndex, _, err := leb128.DecodeUint32(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read a function index in subsection[%d]: %w", subsectionIDFunctionNames, err)
		}

		if result[functionIndex], err = decodeUTF8(r, "function[%d] name", functionIndex); err != nil {
			return nil, err
		}
	}
	return result, nil
}
