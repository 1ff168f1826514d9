package compiler

import (
	"github.com/samber/lo"

	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
	"github.com/tetratelabs/wasm2glulx/internal/wasm"
)

type glkParamKind byte

const (
	// glkScalar is passed through unchanged.
	glkScalar glkParamKind = iota
	// glkScalarPtr points to n words which Glk reads or writes.
	glkScalarPtr
	// glkByteArray points to bytes counted by parameter n.
	glkByteArray
	// glkWordArray points to words counted by parameter n.
	glkWordArray
	// glkLat1 points to a NUL-terminated Latin-1 string.
	glkLat1
	// glkUnicode points to a zero-terminated string of words.
	glkUnicode
	// glkOwnedByteArray is an offset into the Glk area of bytes counted by
	// parameter n, which Glk holds on to after the call returns.
	glkOwnedByteArray
	// glkOwnedWordArray is glkOwnedByteArray for words.
	glkOwnedWordArray
)

type glkParam struct {
	kind glkParamKind
	n    uint32
}

// nullable pointers pass a zero address through as NULL.
func (p glkParam) nullable() bool {
	switch p.kind {
	case glkScalarPtr, glkByteArray, glkWordArray:
		return true
	}
	return false
}

type glkFunction struct {
	selector  uint32
	params    []glkParam
	hasReturn bool
}

func (f glkFunction) signature() *wasm.FunctionType {
	t := &wasm.FunctionType{Params: lo.Map(f.params, func(glkParam, int) wasm.ValueType { return wasm.ValueTypeI32 })}
	if f.hasReturn {
		t.Results = []wasm.ValueType{wasm.ValueTypeI32}
	}
	return t
}

var (
	gScalar  = glkParam{kind: glkScalar}
	gLat1    = glkParam{kind: glkLat1}
	gUnicode = glkParam{kind: glkUnicode}
)

func gPtr(words uint32) glkParam { return glkParam{kind: glkScalarPtr, n: words} }
func gBytes(lenArg uint32) glkParam { return glkParam{kind: glkByteArray, n: lenArg} }
func gWords(lenArg uint32) glkParam { return glkParam{kind: glkWordArray, n: lenArg} }
func gOwnedBytes(lenArg uint32) glkParam { return glkParam{kind: glkOwnedByteArray, n: lenArg} }
func gOwnedWords(lenArg uint32) glkParam { return glkParam{kind: glkOwnedWordArray, n: lenArg} }

func scalars(n int) []glkParam {
	return lo.Times(n, func(int) glkParam { return gScalar })
}

// Sizes in words of the Glk structures passed by pointer.
const (
	glkEventWords        = 4
	glkStreamResultWords = 2
	glkTimevalWords      = 3
	glkDateWords         = 8
)

// glkFunctions are the functions of the "glk" import module, by name. Selectors
// are those of the Glk dispatch layer.
var glkFunctions = map[string]glkFunction{
	"exit":        {0x0001, nil, false},
	"tick":        {0x0003, nil, false},
	"gestalt":     {0x0004, scalars(2), true},
	"gestalt_ext": {0x0005, []glkParam{gScalar, gScalar, gWords(3), gScalar}, true},

	"window_iterate":         {0x0020, []glkParam{gScalar, gPtr(1)}, true},
	"window_get_rock":        {0x0021, scalars(1), true},
	"window_get_root":        {0x0022, nil, true},
	"window_open":            {0x0023, scalars(5), true},
	"window_close":           {0x0024, []glkParam{gScalar, gPtr(glkStreamResultWords)}, false},
	"window_get_size":        {0x0025, []glkParam{gScalar, gPtr(1), gPtr(1)}, false},
	"window_set_arrangement": {0x0026, scalars(4), false},
	"window_get_arrangement": {0x0027, []glkParam{gScalar, gPtr(1), gPtr(1), gPtr(1)}, false},
	"window_get_type":        {0x0028, scalars(1), true},
	"window_get_parent":      {0x0029, scalars(1), true},
	"window_clear":           {0x002a, scalars(1), false},
	"window_move_cursor":     {0x002b, scalars(3), false},
	"window_get_stream":      {0x002c, scalars(1), true},
	"window_set_echo_stream": {0x002d, scalars(2), false},
	"window_get_echo_stream": {0x002e, scalars(1), true},
	"set_window":             {0x002f, scalars(1), false},
	"window_get_sibling":     {0x0030, scalars(1), true},

	"stream_iterate":       {0x0040, []glkParam{gScalar, gPtr(1)}, true},
	"stream_get_rock":      {0x0041, scalars(1), true},
	"stream_open_file":     {0x0042, scalars(3), true},
	"stream_open_memory":   {0x0043, []glkParam{gOwnedBytes(1), gScalar, gScalar, gScalar}, true},
	"stream_close":         {0x0044, []glkParam{gScalar, gPtr(glkStreamResultWords)}, false},
	"stream_set_position":  {0x0045, scalars(3), false},
	"stream_get_position":  {0x0046, scalars(1), true},
	"stream_set_current":   {0x0047, scalars(1), false},
	"stream_get_current":   {0x0048, nil, true},
	"stream_open_resource": {0x0049, scalars(2), true},

	"fileref_create_temp":         {0x0060, scalars(2), true},
	"fileref_create_by_name":      {0x0061, []glkParam{gScalar, gLat1, gScalar}, true},
	"fileref_create_by_prompt":    {0x0062, scalars(3), true},
	"fileref_destroy":             {0x0063, scalars(1), false},
	"fileref_iterate":             {0x0064, []glkParam{gScalar, gPtr(1)}, true},
	"fileref_get_rock":            {0x0065, scalars(1), true},
	"fileref_delete_file":         {0x0066, scalars(1), false},
	"fileref_does_file_exist":     {0x0067, scalars(1), true},
	"fileref_create_from_fileref": {0x0068, scalars(3), true},

	"put_char":          {0x0080, scalars(1), false},
	"put_char_stream":   {0x0081, scalars(2), false},
	"put_string":        {0x0082, []glkParam{gLat1}, false},
	"put_string_stream": {0x0083, []glkParam{gScalar, gLat1}, false},
	"put_buffer":        {0x0084, []glkParam{gBytes(1), gScalar}, false},
	"put_buffer_stream": {0x0085, []glkParam{gScalar, gBytes(2), gScalar}, false},
	"set_style":         {0x0086, scalars(1), false},
	"set_style_stream":  {0x0087, scalars(2), false},

	"get_char_stream":   {0x0090, scalars(1), true},
	"get_line_stream":   {0x0091, []glkParam{gScalar, gBytes(2), gScalar}, true},
	"get_buffer_stream": {0x0092, []glkParam{gScalar, gBytes(2), gScalar}, true},

	"char_to_lower": {0x00a0, scalars(1), true},
	"char_to_upper": {0x00a1, scalars(1), true},

	"stylehint_set":     {0x00b0, scalars(4), false},
	"stylehint_clear":   {0x00b1, scalars(3), false},
	"style_distinguish": {0x00b2, scalars(3), true},
	"style_measure":     {0x00b3, []glkParam{gScalar, gScalar, gScalar, gPtr(1)}, true},

	"select":      {0x00c0, []glkParam{gPtr(glkEventWords)}, false},
	"select_poll": {0x00c1, []glkParam{gPtr(glkEventWords)}, false},

	"request_line_event":   {0x00d0, []glkParam{gScalar, gOwnedBytes(2), gScalar, gScalar}, false},
	"cancel_line_event":    {0x00d1, []glkParam{gScalar, gPtr(glkEventWords)}, false},
	"request_char_event":   {0x00d2, scalars(1), false},
	"cancel_char_event":    {0x00d3, scalars(1), false},
	"request_mouse_event":  {0x00d4, scalars(1), false},
	"cancel_mouse_event":   {0x00d5, scalars(1), false},
	"request_timer_events": {0x00d6, scalars(1), false},

	"image_get_info":              {0x00e0, []glkParam{gScalar, gPtr(1), gPtr(1)}, true},
	"image_draw":                  {0x00e1, scalars(4), true},
	"image_draw_scaled":           {0x00e2, scalars(6), true},
	"window_flow_break":           {0x00e8, scalars(1), false},
	"window_erase_rect":           {0x00e9, scalars(5), false},
	"window_fill_rect":            {0x00ea, scalars(6), false},
	"window_set_background_color": {0x00eb, scalars(2), false},

	"schannel_iterate":        {0x00f0, []glkParam{gScalar, gPtr(1)}, true},
	"schannel_get_rock":       {0x00f1, scalars(1), true},
	"schannel_create":         {0x00f2, scalars(1), true},
	"schannel_destroy":        {0x00f3, scalars(1), false},
	"schannel_create_ext":     {0x00f4, scalars(2), true},
	"schannel_play_multi":     {0x00f7, []glkParam{gWords(1), gScalar, gWords(3), gScalar, gScalar}, true},
	"schannel_play":           {0x00f8, scalars(2), true},
	"schannel_play_ext":       {0x00f9, scalars(4), true},
	"schannel_stop":           {0x00fa, scalars(1), false},
	"schannel_set_volume":     {0x00fb, scalars(2), false},
	"sound_load_hint":         {0x00fc, scalars(2), false},
	"schannel_set_volume_ext": {0x00fd, scalars(4), false},
	"schannel_pause":          {0x00fe, scalars(1), false},
	"schannel_unpause":        {0x00ff, scalars(1), false},

	"set_hyperlink":           {0x0100, scalars(1), false},
	"set_hyperlink_stream":    {0x0101, scalars(2), false},
	"request_hyperlink_event": {0x0102, scalars(1), false},
	"cancel_hyperlink_event":  {0x0103, scalars(1), false},

	"buffer_to_lower_case_uni":   {0x0120, []glkParam{gWords(1), gScalar, gScalar}, true},
	"buffer_to_upper_case_uni":   {0x0121, []glkParam{gWords(1), gScalar, gScalar}, true},
	"buffer_to_title_case_uni":   {0x0122, []glkParam{gWords(1), gScalar, gScalar, gScalar}, true},
	"buffer_canon_decompose_uni": {0x0123, []glkParam{gWords(1), gScalar, gScalar}, true},
	"buffer_canon_normalize_uni": {0x0124, []glkParam{gWords(1), gScalar, gScalar}, true},

	"put_char_uni":          {0x0128, scalars(1), false},
	"put_string_uni":        {0x0129, []glkParam{gUnicode}, false},
	"put_buffer_uni":        {0x012a, []glkParam{gWords(1), gScalar}, false},
	"put_char_stream_uni":   {0x012b, scalars(2), false},
	"put_string_stream_uni": {0x012c, []glkParam{gScalar, gUnicode}, false},
	"put_buffer_stream_uni": {0x012d, []glkParam{gScalar, gWords(2), gScalar}, false},

	"get_char_stream_uni":   {0x0130, scalars(1), true},
	"get_buffer_stream_uni": {0x0131, []glkParam{gScalar, gWords(2), gScalar}, true},
	"get_line_stream_uni":   {0x0132, []glkParam{gScalar, gWords(2), gScalar}, true},

	"stream_open_file_uni":     {0x0138, scalars(3), true},
	"stream_open_memory_uni":   {0x0139, []glkParam{gOwnedWords(1), gScalar, gScalar, gScalar}, true},
	"stream_open_resource_uni": {0x013a, scalars(2), true},

	"request_char_event_uni": {0x0140, scalars(1), false},
	"request_line_event_uni": {0x0141, []glkParam{gScalar, gOwnedWords(2), gScalar, gScalar}, false},

	"set_echo_line_event":        {0x0150, scalars(2), false},
	"set_terminators_line_event": {0x0151, []glkParam{gScalar, gWords(2), gScalar}, false},

	"current_time":              {0x0160, []glkParam{gPtr(glkTimevalWords)}, false},
	"current_simple_time":       {0x0161, scalars(1), true},
	"time_to_date_utc":          {0x0168, []glkParam{gPtr(glkTimevalWords), gPtr(glkDateWords)}, false},
	"time_to_date_local":        {0x0169, []glkParam{gPtr(glkTimevalWords), gPtr(glkDateWords)}, false},
	"simple_time_to_date_utc":   {0x016a, []glkParam{gScalar, gScalar, gPtr(glkDateWords)}, false},
	"simple_time_to_date_local": {0x016b, []glkParam{gScalar, gScalar, gPtr(glkDateWords)}, false},
	"date_to_time_utc":          {0x016c, []glkParam{gPtr(glkDateWords), gPtr(glkTimevalWords)}, false},
	"date_to_time_local":        {0x016d, []glkParam{gPtr(glkDateWords), gPtr(glkTimevalWords)}, false},
	"date_to_simple_time_utc":   {0x016e, []glkParam{gPtr(glkDateWords), gScalar}, true},
	"date_to_simple_time_local": {0x016f, []glkParam{gPtr(glkDateWords), gScalar}, true},
}

// genGlkImport emits the shim for a function imported from "glk". It checks
// and relocates pointer arguments, byte-swaps the words they point to on the
// way in and out, and makes the call.
func (c *compilation) genGlkImport(funcIdx wasm.Index, im *wasm.Import) {
	fn, ok := glkFunctions[im.Name]
	if !ok {
		c.fail(errUnrecognizedImport(im))
		c.genStubFunction(funcIdx)
		return
	}
	if expected, actual := fn.signature(), c.m.TypeSection[im.DescFunc]; !actual.EqualsSignature(expected.Params, expected.Results) {
		c.fail(&CompileError{Kind: KindIncorrectlyTypedImport, Import: im, Expected: expected, Actual: actual})
		c.genStubFunction(funcIdx)
		return
	}

	fl := c.layout.funcs[funcIdx]
	nargs := uint32(len(fn.params))
	// The last parameter is local 0.
	local := func(i uint32) glulx.Load { return lc(nargs - 1 - i) }

	c.emit(glulx.Word(fl.typenum), glulx.Mark(fl.addr), glulx.FnHeader(glulx.ArgsInLocals, nargs))
	// Glk takes its arguments last one pushed first.
	for i := int(nargs) - 1; i >= 0; i-- {
		c.genGlkArg(fn.params[i], local(uint32(i)), local)
	}
	ret := glulx.Discard()
	if fn.hasReturn {
		ret = glulx.Push()
	}
	c.emit(glulx.Glk(uimm(fn.selector), uimm(nargs), ret))
	for i, p := range fn.params {
		c.genGlkUnswap(p, local(uint32(i)), local)
	}
	if fn.hasReturn {
		c.emit(retp)
	} else {
		c.emit(ret0)
	}
}

func (c *compilation) genGlkArg(p glkParam, arg glulx.Load, local func(uint32) glulx.Load) {
	rt := c.rt
	mem := glulx.ImmLabel(c.layout.mem.addr)
	glkArea := glulx.ImmLabel(c.layout.glk.addr)

	var body []glulx.Item
	switch p.kind {
	case glkScalar:
		c.emit(glulx.Copy(arg, push()))
		return
	case glkScalarPtr:
		body = []glulx.Item{
			glulx.Callfiii(glulx.ImmLabel(rt.checkaddr), arg, imm(0), uimm(4*p.n), glulx.Discard()),
			glulx.Callfii(glulx.ImmLabel(rt.swaparray), arg, uimm(p.n), glulx.Discard()),
			glulx.Add(arg, mem, push()),
		}
	case glkByteArray:
		body = []glulx.Item{
			glulx.Callfiii(glulx.ImmLabel(rt.checkaddr), arg, imm(0), local(p.n), glulx.Discard()),
			glulx.Add(arg, mem, push()),
		}
	case glkWordArray:
		body = []glulx.Item{
			glulx.Jgtu(local(p.n), uimm(0x3fffffff), rt.trapOutOfBoundsMemory),
			glulx.Shiftl(local(p.n), imm(2), push()),
			glulx.Callfiii(glulx.ImmLabel(rt.checkaddr), arg, imm(0), pop(), glulx.Discard()),
			glulx.Callfii(glulx.ImmLabel(rt.swaparray), arg, local(p.n), glulx.Discard()),
			glulx.Add(arg, mem, push()),
		}
	case glkLat1:
		c.emit(
			glulx.Callfi(glulx.ImmLabel(rt.checkstr), arg, glulx.Discard()),
			glulx.Add(arg, mem, push()),
		)
		return
	case glkUnicode:
		c.emit(
			glulx.Callfi(glulx.ImmLabel(rt.checkunistr), arg, glulx.Discard()),
			glulx.Callfi(glulx.ImmLabel(rt.swapunistr), arg, glulx.Discard()),
			glulx.Add(arg, mem, push()),
		)
		return
	case glkOwnedByteArray:
		c.emit(
			glulx.Callfii(glulx.ImmLabel(rt.checkglkaddr), arg, local(p.n), glulx.Discard()),
			glulx.Add(arg, glkArea, push()),
		)
		return
	case glkOwnedWordArray:
		c.emit(
			glulx.Jgtu(local(p.n), uimm(0x3fffffff), rt.trapOutOfBoundsMemory),
			glulx.Shiftl(local(p.n), imm(2), push()),
			glulx.Callfii(glulx.ImmLabel(rt.checkglkaddr), arg, pop(), glulx.Discard()),
			glulx.Add(arg, glkArea, push()),
		)
		return
	}

	notNull, next := c.gen.Gen("glk_ptr"), c.gen.Gen("glk_next")
	c.emit(
		glulx.Jnz(arg, notNull),
		glulx.Copy(imm(0), push()),
		glulx.Jump(next),
		glulx.Mark(notNull),
	)
	c.emit(body...)
	c.emit(glulx.Mark(next))
}

// genGlkUnswap restores the byte order of the words a pointer argument refers
// to, and converts any Glk wrote.
func (c *compilation) genGlkUnswap(p glkParam, arg glulx.Load, local func(uint32) glulx.Load) {
	var swap glulx.Instr
	switch p.kind {
	case glkScalarPtr:
		swap = glulx.Callfii(glulx.ImmLabel(c.rt.swaparray), arg, uimm(p.n), glulx.Discard())
	case glkWordArray:
		swap = glulx.Callfii(glulx.ImmLabel(c.rt.swaparray), arg, local(p.n), glulx.Discard())
	case glkUnicode:
		c.emit(glulx.Callfi(glulx.ImmLabel(c.rt.swapunistr), arg, glulx.Discard()))
		return
	default:
		return
	}
	skip := c.gen.Gen("glk_null")
	c.emit(glulx.Jz(arg, skip), swap, glulx.Mark(skip))
}
