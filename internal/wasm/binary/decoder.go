package binary

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tetratelabs/wasm2glulx/internal/leb128"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

var (
	ErrInvalidByte        = errors.New("invalid byte")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("invalid version header")
	ErrInvalidSectionID   = errors.New("invalid section id")
)

// Magic is the 4 byte preamble (literally "\0asm") of the binary format
var Magic = []byte{0x00, 0x61, 0x73, 0x6D}

// version is format version and doesn't change between known specification versions
var version = []byte{0x01, 0x00, 0x00, 0x00}

// DecodeModule decodes a module in the WebAssembly 2.0 Binary Format, including
// the sections and encodings of the threads proposal.
//
// The result is not validated beyond what is needed to decode it.
func DecodeModule(binary []byte) (*wasm.Module, error) {
	r := bytes.NewReader(binary)

	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil || !bytes.Equal(buf, Magic) {
		return nil, ErrInvalidMagicNumber
	}
	if _, err := io.ReadFull(r, buf); err != nil || !bytes.Equal(buf, version) {
		return nil, ErrInvalidVersion
	}

	m := &wasm.Module{}
	var lastID wasm.SectionID
	for {
		sectionID, err := r.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("read section id: %w", err)
		}

		sectionSize, _, err := leb128.DecodeUint32(r)
		if err != nil {
			return nil, fmt.Errorf("get size of section %s: %v", wasm.SectionIDName(sectionID), err)
		}
		if int64(sectionSize) > int64(r.Len()) {
			return nil, fmt.Errorf("section %s: size %d exceeds remaining %d bytes", wasm.SectionIDName(sectionID), sectionSize, r.Len())
		}

		// Each section is decoded from its own reader so that a short read can't
		// spill into the next one.
		content := make([]byte, sectionSize)
		_, _ = io.ReadFull(r, content)
		sr := bytes.NewReader(content)

		if sectionID != wasm.SectionIDCustom {
			if lastID != wasm.SectionIDCustom && sectionOrder(sectionID) <= sectionOrder(lastID) {
				return nil, fmt.Errorf("section %s out of order", wasm.SectionIDName(sectionID))
			}
			lastID = sectionID
		}

		switch sectionID {
		case wasm.SectionIDCustom:
			var name string
			if name, err = decodeUTF8(sr, "custom section name"); err == nil && name == "name" && m.NameSection == nil {
				// A malformed name section is not fatal: names only serve diagnostics.
				if ns, nsErr := decodeNameSection(sr); nsErr == nil {
					m.NameSection = ns
				}
			}
			sr.Reset(nil)
		case wasm.SectionIDType:
			m.TypeSection, err = decodeTypeSection(sr)
		case wasm.SectionIDImport:
			m.ImportSection, err = decodeImportSection(sr)
		case wasm.SectionIDFunction:
			m.FunctionSection, err = decodeFunctionSection(sr)
		case wasm.SectionIDTable:
			m.TableSection, err = decodeTableSection(sr)
		case wasm.SectionIDMemory:
			m.MemorySection, err = decodeMemorySection(sr)
		case wasm.SectionIDGlobal:
			m.GlobalSection, err = decodeGlobalSection(sr)
		case wasm.SectionIDExport:
			m.ExportSection, err = decodeExportSection(sr)
		case wasm.SectionIDStart:
			m.StartSection, err = decodeStartSection(sr)
		case wasm.SectionIDElement:
			m.ElementSection, err = decodeElementSection(sr)
		case wasm.SectionIDCode:
			m.CodeSection, err = decodeCodeSection(sr)
		case wasm.SectionIDData:
			m.DataSection, err = decodeDataSection(sr)
		case wasm.SectionIDDataCount:
			m.DataCountSection, err = decodeDataCountSection(sr)
		default:
			err = ErrInvalidSectionID
		}

		if err == nil && sr.Len() != 0 {
			err = fmt.Errorf("invalid section length: expected to be %d but got %d", sectionSize, int(sectionSize)-sr.Len())
		}
		if err != nil {
			return nil, fmt.Errorf("section %s: %v", wasm.SectionIDName(sectionID), err)
		}
	}

	if len(m.FunctionSection) != len(m.CodeSection) {
		return nil, fmt.Errorf("function and code section have inconsistent lengths")
	}
	if m.DataCountSection != nil && int(*m.DataCountSection) != len(m.DataSection) {
		return nil, fmt.Errorf("data count section (%d) doesn't match the length of data section (%d)",
			*m.DataCountSection, len(m.DataSection))
	}
	return m, nil
}

// sectionOrder is the position a section must appear in. The data count
// section is numbered after data but sits between element and code.
func sectionOrder(id wasm.SectionID) int {
	if id == wasm.SectionIDDataCount {
		return int(wasm.SectionIDElement)*2 + 1
	}
	return int(id) * 2
}
