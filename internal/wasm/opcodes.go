package wasm

const (
	OpcodeUnreachable            Opcode = 0x00
	OpcodeNop                    Opcode = 0x01
	OpcodeBlock                  Opcode = 0x02
	OpcodeLoop                   Opcode = 0x03
	OpcodeIf                     Opcode = 0x04
	OpcodeElse                   Opcode = 0x05
	OpcodeEnd                    Opcode = 0x0b
	OpcodeBr                     Opcode = 0x0c
	OpcodeBrIf                   Opcode = 0x0d
	OpcodeBrTable                Opcode = 0x0e
	OpcodeReturn                 Opcode = 0x0f
	OpcodeCall                   Opcode = 0x10
	OpcodeCallIndirect           Opcode = 0x11
	OpcodeDrop                   Opcode = 0x1a
	OpcodeSelect                 Opcode = 0x1b
	OpcodeTypedSelect            Opcode = 0x1c
	OpcodeLocalGet               Opcode = 0x20
	OpcodeLocalSet               Opcode = 0x21
	OpcodeLocalTee               Opcode = 0x22
	OpcodeGlobalGet              Opcode = 0x23
	OpcodeGlobalSet              Opcode = 0x24
	OpcodeTableGet               Opcode = 0x25
	OpcodeTableSet               Opcode = 0x26
	OpcodeI32Load                Opcode = 0x28
	OpcodeI64Load                Opcode = 0x29
	OpcodeF32Load                Opcode = 0x2a
	OpcodeF64Load                Opcode = 0x2b
	OpcodeI32Load8S              Opcode = 0x2c
	OpcodeI32Load8U              Opcode = 0x2d
	OpcodeI32Load16S             Opcode = 0x2e
	OpcodeI32Load16U             Opcode = 0x2f
	OpcodeI64Load8S              Opcode = 0x30
	OpcodeI64Load8U              Opcode = 0x31
	OpcodeI64Load16S             Opcode = 0x32
	OpcodeI64Load16U             Opcode = 0x33
	OpcodeI64Load32S             Opcode = 0x34
	OpcodeI64Load32U             Opcode = 0x35
	OpcodeI32Store               Opcode = 0x36
	OpcodeI64Store               Opcode = 0x37
	OpcodeF32Store               Opcode = 0x38
	OpcodeF64Store               Opcode = 0x39
	OpcodeI32Store8              Opcode = 0x3a
	OpcodeI32Store16             Opcode = 0x3b
	OpcodeI64Store8              Opcode = 0x3c
	OpcodeI64Store16             Opcode = 0x3d
	OpcodeI64Store32             Opcode = 0x3e
	OpcodeMemorySize             Opcode = 0x3f
	OpcodeMemoryGrow             Opcode = 0x40
	OpcodeI32Const               Opcode = 0x41
	OpcodeI64Const               Opcode = 0x42
	OpcodeF32Const               Opcode = 0x43
	OpcodeF64Const               Opcode = 0x44
	OpcodeI32Eqz                 Opcode = 0x45
	OpcodeI32Eq                  Opcode = 0x46
	OpcodeI32Ne                  Opcode = 0x47
	OpcodeI32LtS                 Opcode = 0x48
	OpcodeI32LtU                 Opcode = 0x49
	OpcodeI32GtS                 Opcode = 0x4a
	OpcodeI32GtU                 Opcode = 0x4b
	OpcodeI32LeS                 Opcode = 0x4c
	OpcodeI32LeU                 Opcode = 0x4d
	OpcodeI32GeS                 Opcode = 0x4e
	OpcodeI32GeU                 Opcode = 0x4f
	OpcodeI64Eqz                 Opcode = 0x50
	OpcodeI64Eq                  Opcode = 0x51
	OpcodeI64Ne                  Opcode = 0x52
	OpcodeI64LtS                 Opcode = 0x53
	OpcodeI64LtU                 Opcode = 0x54
	OpcodeI64GtS                 Opcode = 0x55
	OpcodeI64GtU                 Opcode = 0x56
	OpcodeI64LeS                 Opcode = 0x57
	OpcodeI64LeU                 Opcode = 0x58
	OpcodeI64GeS                 Opcode = 0x59
	OpcodeI64GeU                 Opcode = 0x5a
	OpcodeF32Eq                  Opcode = 0x5b
	OpcodeF32Ne                  Opcode = 0x5c
	OpcodeF32Lt                  Opcode = 0x5d
	OpcodeF32Gt                  Opcode = 0x5e
	OpcodeF32Le                  Opcode = 0x5f
	OpcodeF32Ge                  Opcode = 0x60
	OpcodeF64Eq                  Opcode = 0x61
	OpcodeF64Ne                  Opcode = 0x62
	OpcodeF64Lt                  Opcode = 0x63
	OpcodeF64Gt                  Opcode = 0x64
	OpcodeF64Le                  Opcode = 0x65
	OpcodeF64Ge                  Opcode = 0x66
	OpcodeI32Clz                 Opcode = 0x67
	OpcodeI32Ctz                 Opcode = 0x68
	OpcodeI32Popcnt              Opcode = 0x69
	OpcodeI32Add                 Opcode = 0x6a
	OpcodeI32Sub                 Opcode = 0x6b
	OpcodeI32Mul                 Opcode = 0x6c
	OpcodeI32DivS                Opcode = 0x6d
	OpcodeI32DivU                Opcode = 0x6e
	OpcodeI32RemS                Opcode = 0x6f
	OpcodeI32RemU                Opcode = 0x70
	OpcodeI32And                 Opcode = 0x71
	OpcodeI32Or                  Opcode = 0x72
	OpcodeI32Xor                 Opcode = 0x73
	OpcodeI32Shl                 Opcode = 0x74
	OpcodeI32ShrS                Opcode = 0x75
	OpcodeI32ShrU                Opcode = 0x76
	OpcodeI32Rotl                Opcode = 0x77
	OpcodeI32Rotr                Opcode = 0x78
	OpcodeI64Clz                 Opcode = 0x79
	OpcodeI64Ctz                 Opcode = 0x7a
	OpcodeI64Popcnt              Opcode = 0x7b
	OpcodeI64Add                 Opcode = 0x7c
	OpcodeI64Sub                 Opcode = 0x7d
	OpcodeI64Mul                 Opcode = 0x7e
	OpcodeI64DivS                Opcode = 0x7f
	OpcodeI64DivU                Opcode = 0x80
	OpcodeI64RemS                Opcode = 0x81
	OpcodeI64RemU                Opcode = 0x82
	OpcodeI64And                 Opcode = 0x83
	OpcodeI64Or                  Opcode = 0x84
	OpcodeI64Xor                 Opcode = 0x85
	OpcodeI64Shl                 Opcode = 0x86
	OpcodeI64ShrS                Opcode = 0x87
	OpcodeI64ShrU                Opcode = 0x88
	OpcodeI64Rotl                Opcode = 0x89
	OpcodeI64Rotr                Opcode = 0x8a
	OpcodeF32Abs                 Opcode = 0x8b
	OpcodeF32Neg                 Opcode = 0x8c
	OpcodeF32Ceil                Opcode = 0x8d
	OpcodeF32Floor               Opcode = 0x8e
	OpcodeF32Trunc               Opcode = 0x8f
	OpcodeF32Nearest             Opcode = 0x90
	OpcodeF32Sqrt                Opcode = 0x91
	OpcodeF32Add                 Opcode = 0x92
	OpcodeF32Sub                 Opcode = 0x93
	OpcodeF32Mul                 Opcode = 0x94
	OpcodeF32Div                 Opcode = 0x95
	OpcodeF32Min                 Opcode = 0x96
	OpcodeF32Max                 Opcode = 0x97
	OpcodeF32Copysign            Opcode = 0x98
	OpcodeF64Abs                 Opcode = 0x99
	OpcodeF64Neg                 Opcode = 0x9a
	OpcodeF64Ceil                Opcode = 0x9b
	OpcodeF64Floor               Opcode = 0x9c
	OpcodeF64Trunc               Opcode = 0x9d
	OpcodeF64Nearest             Opcode = 0x9e
	OpcodeF64Sqrt                Opcode = 0x9f
	OpcodeF64Add                 Opcode = 0xa0
	OpcodeF64Sub                 Opcode = 0xa1
	OpcodeF64Mul                 Opcode = 0xa2
	OpcodeF64Div                 Opcode = 0xa3
	OpcodeF64Min                 Opcode = 0xa4
	OpcodeF64Max                 Opcode = 0xa5
	OpcodeF64Copysign            Opcode = 0xa6
	OpcodeI32WrapI64             Opcode = 0xa7
	OpcodeI32TruncF32S           Opcode = 0xa8
	OpcodeI32TruncF32U           Opcode = 0xa9
	OpcodeI32TruncF64S           Opcode = 0xaa
	OpcodeI32TruncF64U           Opcode = 0xab
	OpcodeI64ExtendI32S          Opcode = 0xac
	OpcodeI64ExtendI32U          Opcode = 0xad
	OpcodeI64TruncF32S           Opcode = 0xae
	OpcodeI64TruncF32U           Opcode = 0xaf
	OpcodeI64TruncF64S           Opcode = 0xb0
	OpcodeI64TruncF64U           Opcode = 0xb1
	OpcodeF32ConvertI32S         Opcode = 0xb2
	OpcodeF32ConvertI32U         Opcode = 0xb3
	OpcodeF32ConvertI64S         Opcode = 0xb4
	OpcodeF32ConvertI64U         Opcode = 0xb5
	OpcodeF32DemoteF64           Opcode = 0xb6
	OpcodeF64ConvertI32S         Opcode = 0xb7
	OpcodeF64ConvertI32U         Opcode = 0xb8
	OpcodeF64ConvertI64S         Opcode = 0xb9
	OpcodeF64ConvertI64U         Opcode = 0xba
	OpcodeF64PromoteF32          Opcode = 0xbb
	OpcodeI32ReinterpretF32      Opcode = 0xbc
	OpcodeI64ReinterpretF64      Opcode = 0xbd
	OpcodeF32ReinterpretI32      Opcode = 0xbe
	OpcodeF64ReinterpretI64      Opcode = 0xbf
	OpcodeI32Extend8S            Opcode = 0xc0
	OpcodeI32Extend16S           Opcode = 0xc1
	OpcodeI64Extend8S            Opcode = 0xc2
	OpcodeI64Extend16S           Opcode = 0xc3
	OpcodeI64Extend32S           Opcode = 0xc4
	OpcodeRefNull                Opcode = 0xd0
	OpcodeRefIsNull              Opcode = 0xd1
	OpcodeRefFunc                Opcode = 0xd2

	OpcodeI32TruncSatF32S        Opcode = 0xfc00
	OpcodeI32TruncSatF32U        Opcode = 0xfc01
	OpcodeI32TruncSatF64S        Opcode = 0xfc02
	OpcodeI32TruncSatF64U        Opcode = 0xfc03
	OpcodeI64TruncSatF32S        Opcode = 0xfc04
	OpcodeI64TruncSatF32U        Opcode = 0xfc05
	OpcodeI64TruncSatF64S        Opcode = 0xfc06
	OpcodeI64TruncSatF64U        Opcode = 0xfc07
	OpcodeMemoryInit             Opcode = 0xfc08
	OpcodeDataDrop               Opcode = 0xfc09
	OpcodeMemoryCopy             Opcode = 0xfc0a
	OpcodeMemoryFill             Opcode = 0xfc0b
	OpcodeTableInit              Opcode = 0xfc0c
	OpcodeElemDrop               Opcode = 0xfc0d
	OpcodeTableCopy              Opcode = 0xfc0e
	OpcodeTableGrow              Opcode = 0xfc0f
	OpcodeTableSize              Opcode = 0xfc10
	OpcodeTableFill              Opcode = 0xfc11

	OpcodeMemoryAtomicNotify     Opcode = 0xfe00
	OpcodeMemoryAtomicWait32     Opcode = 0xfe01
	OpcodeMemoryAtomicWait64     Opcode = 0xfe02
	OpcodeAtomicFence            Opcode = 0xfe03
	OpcodeI32AtomicLoad          Opcode = 0xfe10
	OpcodeI64AtomicLoad          Opcode = 0xfe11
	OpcodeI32AtomicLoad8U        Opcode = 0xfe12
	OpcodeI32AtomicLoad16U       Opcode = 0xfe13
	OpcodeI64AtomicLoad8U        Opcode = 0xfe14
	OpcodeI64AtomicLoad16U       Opcode = 0xfe15
	OpcodeI64AtomicLoad32U       Opcode = 0xfe16
	OpcodeI32AtomicStore         Opcode = 0xfe17
	OpcodeI64AtomicStore         Opcode = 0xfe18
	OpcodeI32AtomicStore8        Opcode = 0xfe19
	OpcodeI32AtomicStore16       Opcode = 0xfe1a
	OpcodeI64AtomicStore8        Opcode = 0xfe1b
	OpcodeI64AtomicStore16       Opcode = 0xfe1c
	OpcodeI64AtomicStore32       Opcode = 0xfe1d
	OpcodeI32AtomicRmwAdd        Opcode = 0xfe1e
	OpcodeI64AtomicRmwAdd        Opcode = 0xfe1f
	OpcodeI32AtomicRmw8AddU      Opcode = 0xfe20
	OpcodeI32AtomicRmw16AddU     Opcode = 0xfe21
	OpcodeI64AtomicRmw8AddU      Opcode = 0xfe22
	OpcodeI64AtomicRmw16AddU     Opcode = 0xfe23
	OpcodeI64AtomicRmw32AddU     Opcode = 0xfe24
	OpcodeI32AtomicRmwSub        Opcode = 0xfe25
	OpcodeI64AtomicRmwSub        Opcode = 0xfe26
	OpcodeI32AtomicRmw8SubU      Opcode = 0xfe27
	OpcodeI32AtomicRmw16SubU     Opcode = 0xfe28
	OpcodeI64AtomicRmw8SubU      Opcode = 0xfe29
	OpcodeI64AtomicRmw16SubU     Opcode = 0xfe2a
	OpcodeI64AtomicRmw32SubU     Opcode = 0xfe2b
	OpcodeI32AtomicRmwAnd        Opcode = 0xfe2c
	OpcodeI64AtomicRmwAnd        Opcode = 0xfe2d
	OpcodeI32AtomicRmw8AndU      Opcode = 0xfe2e
	OpcodeI32AtomicRmw16AndU     Opcode = 0xfe2f
	OpcodeI64AtomicRmw8AndU      Opcode = 0xfe30
	OpcodeI64AtomicRmw16AndU     Opcode = 0xfe31
	OpcodeI64AtomicRmw32AndU     Opcode = 0xfe32
	OpcodeI32AtomicRmwOr         Opcode = 0xfe33
	OpcodeI64AtomicRmwOr         Opcode = 0xfe34
	OpcodeI32AtomicRmw8OrU       Opcode = 0xfe35
	OpcodeI32AtomicRmw16OrU      Opcode = 0xfe36
	OpcodeI64AtomicRmw8OrU       Opcode = 0xfe37
	OpcodeI64AtomicRmw16OrU      Opcode = 0xfe38
	OpcodeI64AtomicRmw32OrU      Opcode = 0xfe39
	OpcodeI32AtomicRmwXor        Opcode = 0xfe3a
	OpcodeI64AtomicRmwXor        Opcode = 0xfe3b
	OpcodeI32AtomicRmw8XorU      Opcode = 0xfe3c
	OpcodeI32AtomicRmw16XorU     Opcode = 0xfe3d
	OpcodeI64AtomicRmw8XorU      Opcode = 0xfe3e
	OpcodeI64AtomicRmw16XorU     Opcode = 0xfe3f
	OpcodeI64AtomicRmw32XorU     Opcode = 0xfe40
	OpcodeI32AtomicRmwXchg       Opcode = 0xfe41
	OpcodeI64AtomicRmwXchg       Opcode = 0xfe42
	OpcodeI32AtomicRmw8XchgU     Opcode = 0xfe43
	OpcodeI32AtomicRmw16XchgU    Opcode = 0xfe44
	OpcodeI64AtomicRmw8XchgU     Opcode = 0xfe45
	OpcodeI64AtomicRmw16XchgU    Opcode = 0xfe46
	OpcodeI64AtomicRmw32XchgU    Opcode = 0xfe47
	OpcodeI32AtomicRmwCmpxchg    Opcode = 0xfe48
	OpcodeI64AtomicRmwCmpxchg    Opcode = 0xfe49
	OpcodeI32AtomicRmw8CmpxchgU  Opcode = 0xfe4a
	OpcodeI32AtomicRmw16CmpxchgU Opcode = 0xfe4b
	OpcodeI64AtomicRmw8CmpxchgU  Opcode = 0xfe4c
	OpcodeI64AtomicRmw16CmpxchgU Opcode = 0xfe4d
	OpcodeI64AtomicRmw32CmpxchgU Opcode = 0xfe4e
)

var opcodeInfos = map[Opcode]OpcodeInfo{
	OpcodeUnreachable:            {Name: "unreachable", Imm: ImmNone},
	OpcodeNop:                    {Name: "nop", Imm: ImmNone, Fixed: true},
	OpcodeBlock:                  {Name: "block", Imm: ImmBlockType},
	OpcodeLoop:                   {Name: "loop", Imm: ImmBlockType},
	OpcodeIf:                     {Name: "if", Imm: ImmBlockType},
	OpcodeElse:                   {Name: "else", Imm: ImmNone},
	OpcodeEnd:                    {Name: "end", Imm: ImmNone},
	OpcodeBr:                     {Name: "br", Imm: ImmLabel},
	OpcodeBrIf:                   {Name: "br_if", Imm: ImmLabel},
	OpcodeBrTable:                {Name: "br_table", Imm: ImmBrTable},
	OpcodeReturn:                 {Name: "return", Imm: ImmNone},
	OpcodeCall:                   {Name: "call", Imm: ImmFunc},
	OpcodeCallIndirect:           {Name: "call_indirect", Imm: ImmCallIndirect},
	OpcodeDrop:                   {Name: "drop", Imm: ImmNone},
	OpcodeSelect:                 {Name: "select", Imm: ImmNone},
	OpcodeTypedSelect:            {Name: "select", Imm: ImmSelectTypes},
	OpcodeLocalGet:               {Name: "local.get", Imm: ImmLocal},
	OpcodeLocalSet:               {Name: "local.set", Imm: ImmLocal},
	OpcodeLocalTee:               {Name: "local.tee", Imm: ImmLocal},
	OpcodeGlobalGet:              {Name: "global.get", Imm: ImmGlobal},
	OpcodeGlobalSet:              {Name: "global.set", Imm: ImmGlobal},
	OpcodeTableGet:               {Name: "table.get", Imm: ImmTable},
	OpcodeTableSet:               {Name: "table.set", Imm: ImmTable},
	OpcodeI32Load:                {Name: "i32.load", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64Load:                {Name: "i64.load", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}},
	OpcodeF32Load:                {Name: "f32.load", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF64Load:                {Name: "f64.load", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeF64}},
	OpcodeI32Load8S:              {Name: "i32.load8_s", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Load8U:              {Name: "i32.load8_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Load16S:             {Name: "i32.load16_s", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Load16U:             {Name: "i32.load16_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64Load8S:              {Name: "i64.load8_s", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Load8U:              {Name: "i64.load8_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Load16S:             {Name: "i64.load16_s", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Load16U:             {Name: "i64.load16_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Load32S:             {Name: "i64.load32_s", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Load32U:             {Name: "i64.load32_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32Store:               {Name: "i32.store", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}},
	OpcodeI64Store:               {Name: "i64.store", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}},
	OpcodeF32Store:               {Name: "f32.store", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeF32}},
	OpcodeF64Store:               {Name: "f64.store", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeF64}},
	OpcodeI32Store8:              {Name: "i32.store8", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}},
	OpcodeI32Store16:             {Name: "i32.store16", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}},
	OpcodeI64Store8:              {Name: "i64.store8", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}},
	OpcodeI64Store16:             {Name: "i64.store16", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}},
	OpcodeI64Store32:             {Name: "i64.store32", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}},
	OpcodeMemorySize:             {Name: "memory.size", Imm: ImmMemory, Fixed: true, Results: []ValueType{ValueTypeI32}},
	OpcodeMemoryGrow:             {Name: "memory.grow", Imm: ImmMemory, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Const:               {Name: "i32.const", Imm: ImmI32, Fixed: true, Results: []ValueType{ValueTypeI32}},
	OpcodeI64Const:               {Name: "i64.const", Imm: ImmI64, Fixed: true, Results: []ValueType{ValueTypeI64}},
	OpcodeF32Const:               {Name: "f32.const", Imm: ImmF32, Fixed: true, Results: []ValueType{ValueTypeF32}},
	OpcodeF64Const:               {Name: "f64.const", Imm: ImmF64, Fixed: true, Results: []ValueType{ValueTypeF64}},
	OpcodeI32Eqz:                 {Name: "i32.eqz", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Eq:                  {Name: "i32.eq", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Ne:                  {Name: "i32.ne", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32LtS:                 {Name: "i32.lt_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32LtU:                 {Name: "i32.lt_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32GtS:                 {Name: "i32.gt_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32GtU:                 {Name: "i32.gt_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32LeS:                 {Name: "i32.le_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32LeU:                 {Name: "i32.le_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32GeS:                 {Name: "i32.ge_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32GeU:                 {Name: "i32.ge_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64Eqz:                 {Name: "i64.eqz", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64Eq:                  {Name: "i64.eq", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64Ne:                  {Name: "i64.ne", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64LtS:                 {Name: "i64.lt_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64LtU:                 {Name: "i64.lt_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64GtS:                 {Name: "i64.gt_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64GtU:                 {Name: "i64.gt_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64LeS:                 {Name: "i64.le_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64LeU:                 {Name: "i64.le_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64GeS:                 {Name: "i64.ge_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64GeU:                 {Name: "i64.ge_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI32}},
	OpcodeF32Eq:                  {Name: "f32.eq", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32, ValueTypeF32}, Results: []ValueType{ValueTypeI32}},
	OpcodeF32Ne:                  {Name: "f32.ne", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32, ValueTypeF32}, Results: []ValueType{ValueTypeI32}},
	OpcodeF32Lt:                  {Name: "f32.lt", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32, ValueTypeF32}, Results: []ValueType{ValueTypeI32}},
	OpcodeF32Gt:                  {Name: "f32.gt", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32, ValueTypeF32}, Results: []ValueType{ValueTypeI32}},
	OpcodeF32Le:                  {Name: "f32.le", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32, ValueTypeF32}, Results: []ValueType{ValueTypeI32}},
	OpcodeF32Ge:                  {Name: "f32.ge", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32, ValueTypeF32}, Results: []ValueType{ValueTypeI32}},
	OpcodeF64Eq:                  {Name: "f64.eq", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64, ValueTypeF64}, Results: []ValueType{ValueTypeI32}},
	OpcodeF64Ne:                  {Name: "f64.ne", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64, ValueTypeF64}, Results: []ValueType{ValueTypeI32}},
	OpcodeF64Lt:                  {Name: "f64.lt", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64, ValueTypeF64}, Results: []ValueType{ValueTypeI32}},
	OpcodeF64Gt:                  {Name: "f64.gt", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64, ValueTypeF64}, Results: []ValueType{ValueTypeI32}},
	OpcodeF64Le:                  {Name: "f64.le", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64, ValueTypeF64}, Results: []ValueType{ValueTypeI32}},
	OpcodeF64Ge:                  {Name: "f64.ge", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64, ValueTypeF64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Clz:                 {Name: "i32.clz", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Ctz:                 {Name: "i32.ctz", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Popcnt:              {Name: "i32.popcnt", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Add:                 {Name: "i32.add", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Sub:                 {Name: "i32.sub", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Mul:                 {Name: "i32.mul", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32DivS:                {Name: "i32.div_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32DivU:                {Name: "i32.div_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32RemS:                {Name: "i32.rem_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32RemU:                {Name: "i32.rem_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32And:                 {Name: "i32.and", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Or:                  {Name: "i32.or", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Xor:                 {Name: "i32.xor", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Shl:                 {Name: "i32.shl", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32ShrS:                {Name: "i32.shr_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32ShrU:                {Name: "i32.shr_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Rotl:                {Name: "i32.rotl", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Rotr:                {Name: "i32.rotr", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64Clz:                 {Name: "i64.clz", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Ctz:                 {Name: "i64.ctz", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Popcnt:              {Name: "i64.popcnt", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Add:                 {Name: "i64.add", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Sub:                 {Name: "i64.sub", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Mul:                 {Name: "i64.mul", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64DivS:                {Name: "i64.div_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64DivU:                {Name: "i64.div_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64RemS:                {Name: "i64.rem_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64RemU:                {Name: "i64.rem_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64And:                 {Name: "i64.and", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Or:                  {Name: "i64.or", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Xor:                 {Name: "i64.xor", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Shl:                 {Name: "i64.shl", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64ShrS:                {Name: "i64.shr_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64ShrU:                {Name: "i64.shr_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Rotl:                {Name: "i64.rotl", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Rotr:                {Name: "i64.rotr", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeF32Abs:                 {Name: "f32.abs", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32Neg:                 {Name: "f32.neg", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32Ceil:                {Name: "f32.ceil", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32Floor:               {Name: "f32.floor", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32Trunc:               {Name: "f32.trunc", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32Nearest:             {Name: "f32.nearest", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32Sqrt:                {Name: "f32.sqrt", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32Add:                 {Name: "f32.add", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32, ValueTypeF32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32Sub:                 {Name: "f32.sub", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32, ValueTypeF32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32Mul:                 {Name: "f32.mul", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32, ValueTypeF32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32Div:                 {Name: "f32.div", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32, ValueTypeF32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32Min:                 {Name: "f32.min", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32, ValueTypeF32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32Max:                 {Name: "f32.max", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32, ValueTypeF32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32Copysign:            {Name: "f32.copysign", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32, ValueTypeF32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF64Abs:                 {Name: "f64.abs", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64Neg:                 {Name: "f64.neg", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64Ceil:                {Name: "f64.ceil", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64Floor:               {Name: "f64.floor", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64Trunc:               {Name: "f64.trunc", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64Nearest:             {Name: "f64.nearest", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64Sqrt:                {Name: "f64.sqrt", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64Add:                 {Name: "f64.add", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64, ValueTypeF64}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64Sub:                 {Name: "f64.sub", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64, ValueTypeF64}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64Mul:                 {Name: "f64.mul", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64, ValueTypeF64}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64Div:                 {Name: "f64.div", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64, ValueTypeF64}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64Min:                 {Name: "f64.min", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64, ValueTypeF64}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64Max:                 {Name: "f64.max", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64, ValueTypeF64}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64Copysign:            {Name: "f64.copysign", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64, ValueTypeF64}, Results: []ValueType{ValueTypeF64}},
	OpcodeI32WrapI64:             {Name: "i32.wrap_i64", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32TruncF32S:           {Name: "i32.trunc_f32_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32TruncF32U:           {Name: "i32.trunc_f32_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32TruncF64S:           {Name: "i32.trunc_f64_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32TruncF64U:           {Name: "i32.trunc_f64_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64ExtendI32S:          {Name: "i64.extend_i32_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64ExtendI32U:          {Name: "i64.extend_i32_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64TruncF32S:           {Name: "i64.trunc_f32_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64TruncF32U:           {Name: "i64.trunc_f32_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64TruncF64S:           {Name: "i64.trunc_f64_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64TruncF64U:           {Name: "i64.trunc_f64_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeI64}},
	OpcodeF32ConvertI32S:         {Name: "f32.convert_i32_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32ConvertI32U:         {Name: "f32.convert_i32_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32ConvertI64S:         {Name: "f32.convert_i64_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32ConvertI64U:         {Name: "f32.convert_i64_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64}, Results: []ValueType{ValueTypeF32}},
	OpcodeF32DemoteF64:           {Name: "f32.demote_f64", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeF32}},
	OpcodeF64ConvertI32S:         {Name: "f64.convert_i32_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64ConvertI32U:         {Name: "f64.convert_i32_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64ConvertI64S:         {Name: "f64.convert_i64_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64ConvertI64U:         {Name: "f64.convert_i64_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64}, Results: []ValueType{ValueTypeF64}},
	OpcodeF64PromoteF32:          {Name: "f64.promote_f32", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeF64}},
	OpcodeI32ReinterpretF32:      {Name: "i32.reinterpret_f32", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64ReinterpretF64:      {Name: "i64.reinterpret_f64", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeI64}},
	OpcodeF32ReinterpretI32:      {Name: "f32.reinterpret_i32", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeF32}},
	OpcodeF64ReinterpretI64:      {Name: "f64.reinterpret_i64", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64}, Results: []ValueType{ValueTypeF64}},
	OpcodeI32Extend8S:            {Name: "i32.extend8_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32Extend16S:           {Name: "i32.extend16_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64Extend8S:            {Name: "i64.extend8_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Extend16S:           {Name: "i64.extend16_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64Extend32S:           {Name: "i64.extend32_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeRefNull:                {Name: "ref.null", Imm: ImmRefType},
	OpcodeRefIsNull:              {Name: "ref.is_null", Imm: ImmNone},
	OpcodeRefFunc:                {Name: "ref.func", Imm: ImmFunc},
	OpcodeI32TruncSatF32S:        {Name: "i32.trunc_sat_f32_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32TruncSatF32U:        {Name: "i32.trunc_sat_f32_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32TruncSatF64S:        {Name: "i32.trunc_sat_f64_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32TruncSatF64U:        {Name: "i32.trunc_sat_f64_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64TruncSatF32S:        {Name: "i64.trunc_sat_f32_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64TruncSatF32U:        {Name: "i64.trunc_sat_f32_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64TruncSatF64S:        {Name: "i64.trunc_sat_f64_s", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64TruncSatF64U:        {Name: "i64.trunc_sat_f64_u", Imm: ImmNone, Fixed: true, Params: []ValueType{ValueTypeF64}, Results: []ValueType{ValueTypeI64}},
	OpcodeMemoryInit:             {Name: "memory.init", Imm: ImmMemoryInit, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32, ValueTypeI32}},
	OpcodeDataDrop:               {Name: "data.drop", Imm: ImmData, Fixed: true},
	OpcodeMemoryCopy:             {Name: "memory.copy", Imm: ImmMemoryCopy, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32, ValueTypeI32}},
	OpcodeMemoryFill:             {Name: "memory.fill", Imm: ImmMemory, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32, ValueTypeI32}},
	OpcodeTableInit:              {Name: "table.init", Imm: ImmTableInit, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32, ValueTypeI32}},
	OpcodeElemDrop:               {Name: "elem.drop", Imm: ImmElem, Fixed: true},
	OpcodeTableCopy:              {Name: "table.copy", Imm: ImmTableCopy, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32, ValueTypeI32}},
	OpcodeTableGrow:              {Name: "table.grow", Imm: ImmTable},
	OpcodeTableSize:              {Name: "table.size", Imm: ImmTable, Fixed: true, Results: []ValueType{ValueTypeI32}},
	OpcodeTableFill:              {Name: "table.fill", Imm: ImmTable},
	OpcodeMemoryAtomicNotify:     {Name: "memory.atomic.notify", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeMemoryAtomicWait32:     {Name: "memory.atomic.wait32", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI32}},
	OpcodeMemoryAtomicWait64:     {Name: "memory.atomic.wait64", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI32}},
	OpcodeAtomicFence:            {Name: "atomic.fence", Imm: ImmFence, Fixed: true},
	OpcodeI32AtomicLoad:          {Name: "i32.atomic.load", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicLoad:          {Name: "i64.atomic.load", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32AtomicLoad8U:        {Name: "i32.atomic.load8_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32AtomicLoad16U:       {Name: "i32.atomic.load16_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicLoad8U:        {Name: "i64.atomic.load8_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicLoad16U:       {Name: "i64.atomic.load16_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicLoad32U:       {Name: "i64.atomic.load32_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32AtomicStore:         {Name: "i32.atomic.store", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}},
	OpcodeI64AtomicStore:         {Name: "i64.atomic.store", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}},
	OpcodeI32AtomicStore8:        {Name: "i32.atomic.store8", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}},
	OpcodeI32AtomicStore16:       {Name: "i32.atomic.store16", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}},
	OpcodeI64AtomicStore8:        {Name: "i64.atomic.store8", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}},
	OpcodeI64AtomicStore16:       {Name: "i64.atomic.store16", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}},
	OpcodeI64AtomicStore32:       {Name: "i64.atomic.store32", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}},
	OpcodeI32AtomicRmwAdd:        {Name: "i32.atomic.rmw.add", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicRmwAdd:        {Name: "i64.atomic.rmw.add", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32AtomicRmw8AddU:      {Name: "i32.atomic.rmw8.add_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32AtomicRmw16AddU:     {Name: "i32.atomic.rmw16.add_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicRmw8AddU:      {Name: "i64.atomic.rmw8.add_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicRmw16AddU:     {Name: "i64.atomic.rmw16.add_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicRmw32AddU:     {Name: "i64.atomic.rmw32.add_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32AtomicRmwSub:        {Name: "i32.atomic.rmw.sub", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicRmwSub:        {Name: "i64.atomic.rmw.sub", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32AtomicRmw8SubU:      {Name: "i32.atomic.rmw8.sub_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32AtomicRmw16SubU:     {Name: "i32.atomic.rmw16.sub_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicRmw8SubU:      {Name: "i64.atomic.rmw8.sub_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicRmw16SubU:     {Name: "i64.atomic.rmw16.sub_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicRmw32SubU:     {Name: "i64.atomic.rmw32.sub_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32AtomicRmwAnd:        {Name: "i32.atomic.rmw.and", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicRmwAnd:        {Name: "i64.atomic.rmw.and", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32AtomicRmw8AndU:      {Name: "i32.atomic.rmw8.and_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32AtomicRmw16AndU:     {Name: "i32.atomic.rmw16.and_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicRmw8AndU:      {Name: "i64.atomic.rmw8.and_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicRmw16AndU:     {Name: "i64.atomic.rmw16.and_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicRmw32AndU:     {Name: "i64.atomic.rmw32.and_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32AtomicRmwOr:         {Name: "i32.atomic.rmw.or", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicRmwOr:         {Name: "i64.atomic.rmw.or", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32AtomicRmw8OrU:       {Name: "i32.atomic.rmw8.or_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32AtomicRmw16OrU:      {Name: "i32.atomic.rmw16.or_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicRmw8OrU:       {Name: "i64.atomic.rmw8.or_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicRmw16OrU:      {Name: "i64.atomic.rmw16.or_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicRmw32OrU:      {Name: "i64.atomic.rmw32.or_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32AtomicRmwXor:        {Name: "i32.atomic.rmw.xor", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicRmwXor:        {Name: "i64.atomic.rmw.xor", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32AtomicRmw8XorU:      {Name: "i32.atomic.rmw8.xor_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32AtomicRmw16XorU:     {Name: "i32.atomic.rmw16.xor_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicRmw8XorU:      {Name: "i64.atomic.rmw8.xor_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicRmw16XorU:     {Name: "i64.atomic.rmw16.xor_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicRmw32XorU:     {Name: "i64.atomic.rmw32.xor_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32AtomicRmwXchg:       {Name: "i32.atomic.rmw.xchg", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicRmwXchg:       {Name: "i64.atomic.rmw.xchg", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32AtomicRmw8XchgU:     {Name: "i32.atomic.rmw8.xchg_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32AtomicRmw16XchgU:    {Name: "i32.atomic.rmw16.xchg_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicRmw8XchgU:     {Name: "i64.atomic.rmw8.xchg_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicRmw16XchgU:    {Name: "i64.atomic.rmw16.xchg_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicRmw32XchgU:    {Name: "i64.atomic.rmw32.xchg_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32AtomicRmwCmpxchg:    {Name: "i32.atomic.rmw.cmpxchg", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicRmwCmpxchg:    {Name: "i64.atomic.rmw.cmpxchg", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI32AtomicRmw8CmpxchgU:  {Name: "i32.atomic.rmw8.cmpxchg_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI32AtomicRmw16CmpxchgU: {Name: "i32.atomic.rmw16.cmpxchg_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI32, ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	OpcodeI64AtomicRmw8CmpxchgU:  {Name: "i64.atomic.rmw8.cmpxchg_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicRmw16CmpxchgU: {Name: "i64.atomic.rmw16.cmpxchg_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
	OpcodeI64AtomicRmw32CmpxchgU: {Name: "i64.atomic.rmw32.cmpxchg_u", Imm: ImmMemArg, Fixed: true, Params: []ValueType{ValueTypeI32, ValueTypeI64, ValueTypeI64}, Results: []ValueType{ValueTypeI64}},
}
