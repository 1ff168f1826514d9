package compiler

import (
	"bytes"
	"errors"
	"io"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
	"github.com/tetratelabs/wasm2glulx/internal/wasm/binary"
	"github.com/tetratelabs/wasm2glulx/internal/wasmir"
)

// Import modules a program may draw functions from.
const (
	glkModule   = "glk"
	glulxModule = "glulx"
)

// compilation is the state of one Compile call. Lowering only ever appends to
// the item lists.
type compilation struct {
	cfg    *Config
	logger *zap.Logger
	m      *wasm.Module
	gen    *glulx.LabelGenerator
	layout *layout
	rt     *runtime

	rom  []glulx.Item
	ram  []glulx.Item
	zero []glulx.ZeroItem

	errs []error
}

// emit appends to ROM, where all code lives.
func (c *compilation) emit(items ...glulx.Item) {
	c.rom = append(c.rom, items...)
}

// fail records an error and lets compilation carry on, so that one run reports
// as much as it can.
func (c *compilation) fail(err error) {
	c.errs = append(c.errs, err)
}

// Compile translates a WebAssembly binary into a Glulx story file, or into an
// assembly listing if cfg.Text is set. A failed compilation returns every
// problem found, combined with multierr; see Errors.
func Compile(bin []byte, cfg *Config) ([]byte, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	c, err := lower(bin, cfg)
	if err != nil {
		return nil, err
	}

	a := &glulx.Assembly{
		ROM:       c.rom,
		RAM:       c.ram,
		Zero:      c.zero,
		StackSize: cfg.stackSize,
		StartFunc: c.layout.entrypoint,
	}
	if cfg.text {
		var buf bytes.Buffer
		if err = a.WriteListing(&buf); err != nil {
			return nil, &CompileError{Kind: KindOther, Err: err}
		}
		return buf.Bytes(), nil
	}

	out, stats, err := a.AssembleWithStats()
	if err != nil {
		if errors.Is(err, glulx.ErrOverflow) {
			return nil, errOverflow(OverflowFinalAssembly)
		}
		return nil, &CompileError{Kind: KindOther, Err: err}
	}
	cfg.logger.Debug("assembled story file",
		zap.Int("passes", stats.Passes), zap.Int("bytes", len(out)),
		zap.Uint32("ram_start", stats.RAMStart), zap.Uint32("ext_start", stats.ExtStart),
		zap.Uint32("end_mem", stats.EndMem))
	return out, nil
}

// lower decodes, validates and lays out bin, then generates every item of the
// story file.
func lower(bin []byte, cfg *Config) (*compilation, error) {
	logger := cfg.logger

	logger.Debug("decoding module", zap.Int("bytes", len(bin)))
	m, err := binary.DecodeModule(bin)
	if err != nil {
		return nil, &CompileError{Kind: KindValidation, Err: err}
	}

	// wazero rejects multiple memories outright, and layout has a better
	// message for them.
	if m.ImportMemoryCount()+uint32(len(m.MemorySection)) <= 1 {
		logger.Debug("validating module")
		if err = validate(cfg.ctx, bin); err != nil {
			return nil, err
		}
	}

	gen := &glulx.LabelGenerator{}
	l, errs := newLayout(m, gen, cfg)
	if len(errs) > 0 {
		return nil, multierr.Combine(errs...)
	}
	logger.Debug("laid out module",
		zap.Int("functions", len(l.funcs)), zap.Int("tables", len(l.tables)),
		zap.Int("globals", len(l.globals)), zap.Uint32("memory_bytes", l.mem.minSize))

	c := &compilation{cfg: cfg, logger: logger, m: m, gen: gen, layout: l, rt: newRuntime(gen)}
	c.genRuntime()
	c.genImports()
	c.genFunctions()
	c.genAtomicRoutines()
	c.genEntrypoint()
	c.genData()
	if len(c.errs) > 0 {
		return nil, multierr.Combine(c.errs...)
	}
	return c, nil
}

// CompileStream reads a module from r and writes the result of Compile to w.
func CompileStream(r io.Reader, w io.Writer, cfg *Config) error {
	bin, err := io.ReadAll(r)
	if err != nil {
		return &CompileError{Kind: KindInput, Err: pkgerrors.Wrap(err, "reading module")}
	}
	out, err := Compile(bin, cfg)
	if err != nil {
		return err
	}
	if _, err = w.Write(out); err != nil {
		return &CompileError{Kind: KindOutput, Err: pkgerrors.Wrap(err, "writing story file")}
	}
	return nil
}

// genImports emits a function for every imported one. Imports of anything
// other than functions are never satisfied.
func (c *compilation) genImports() {
	var funcIdx wasm.Index
	for _, im := range c.m.ImportSection {
		if im.Type != wasm.ExternTypeFunc {
			c.fail(errUnrecognizedImport(im))
			continue
		}
		switch im.Module {
		case glkModule:
			c.genGlkImport(funcIdx, im)
		case glulxModule:
			c.genIntrinsicImport(funcIdx, im)
		default:
			c.fail(errUnrecognizedImport(im))
			c.genStubFunction(funcIdx)
		}
		funcIdx++
	}
}

func (c *compilation) genFunctions() {
	imported := c.m.ImportFuncCount()
	for i := range c.m.FunctionSection {
		funcIdx := imported + wasm.Index(i)
		fn, err := wasmir.Build(c.m, funcIdx)
		if err != nil {
			var unsupported *wasmir.UnsupportedError
			if errors.As(err, &unsupported) {
				c.fail(&CompileError{
					Kind:        KindUnsupportedInstruction,
					Function:    c.m.FuncName(funcIdx),
					Instruction: wasm.InstructionName(unsupported.Op),
				})
			} else {
				c.fail(&CompileError{Kind: KindValidation, Err: err})
			}
			c.genStubFunction(funcIdx)
			continue
		}
		c.genFunction(fn)
	}
}
