package glulx

// Glulx opcodes.
const (
	OpNop           Opcode = 0x00
	OpAdd           Opcode = 0x10
	OpSub           Opcode = 0x11
	OpMul           Opcode = 0x12
	OpDiv           Opcode = 0x13
	OpMod           Opcode = 0x14
	OpNeg           Opcode = 0x15
	OpBitand        Opcode = 0x18
	OpBitor         Opcode = 0x19
	OpBitxor        Opcode = 0x1A
	OpBitnot        Opcode = 0x1B
	OpShiftl        Opcode = 0x1C
	OpSshiftr       Opcode = 0x1D
	OpUshiftr       Opcode = 0x1E
	OpJump          Opcode = 0x20
	OpJz            Opcode = 0x22
	OpJnz           Opcode = 0x23
	OpJeq           Opcode = 0x24
	OpJne           Opcode = 0x25
	OpJlt           Opcode = 0x26
	OpJge           Opcode = 0x27
	OpJgt           Opcode = 0x28
	OpJle           Opcode = 0x29
	OpJltu          Opcode = 0x2A
	OpJgeu          Opcode = 0x2B
	OpJgtu          Opcode = 0x2C
	OpJleu          Opcode = 0x2D
	OpCall          Opcode = 0x30
	OpRet           Opcode = 0x31
	OpCatch         Opcode = 0x32
	OpThrow         Opcode = 0x33
	OpTailcall      Opcode = 0x34
	OpCopy          Opcode = 0x40
	OpCopys         Opcode = 0x41
	OpCopyb         Opcode = 0x42
	OpSexs          Opcode = 0x44
	OpSexb          Opcode = 0x45
	OpAload         Opcode = 0x48
	OpAloads        Opcode = 0x49
	OpAloadb        Opcode = 0x4A
	OpAloadbit      Opcode = 0x4B
	OpAstore        Opcode = 0x4C
	OpAstores       Opcode = 0x4D
	OpAstoreb       Opcode = 0x4E
	OpAstorebit     Opcode = 0x4F
	OpStkcount      Opcode = 0x50
	OpStkpeek       Opcode = 0x51
	OpStkswap       Opcode = 0x52
	OpStkroll       Opcode = 0x53
	OpStkcopy       Opcode = 0x54
	OpStreamchar    Opcode = 0x70
	OpStreamnum     Opcode = 0x71
	OpStreamstr     Opcode = 0x72
	OpStreamunichar Opcode = 0x73
	OpGestalt       Opcode = 0x100
	OpDebugtrap     Opcode = 0x101
	OpGetmemsize    Opcode = 0x102
	OpSetmemsize    Opcode = 0x103
	OpJumpabs       Opcode = 0x104
	OpRandom        Opcode = 0x110
	OpSetrandom     Opcode = 0x111
	OpQuit          Opcode = 0x120
	OpVerify        Opcode = 0x121
	OpRestart       Opcode = 0x122
	OpSave          Opcode = 0x123
	OpRestore       Opcode = 0x124
	OpSaveundo      Opcode = 0x125
	OpRestoreundo   Opcode = 0x126
	OpProtect       Opcode = 0x127
	OpHasundo       Opcode = 0x128
	OpDiscardundo   Opcode = 0x129
	OpGlk           Opcode = 0x130
	OpGetstringtbl  Opcode = 0x140
	OpSetstringtbl  Opcode = 0x141
	OpGetiosys      Opcode = 0x148
	OpSetiosys      Opcode = 0x149
	OpLinearsearch  Opcode = 0x150
	OpBinarysearch  Opcode = 0x151
	OpLinkedsearch  Opcode = 0x152
	OpCallf         Opcode = 0x160
	OpCallfi        Opcode = 0x161
	OpCallfii       Opcode = 0x162
	OpCallfiii      Opcode = 0x163
	OpMzero         Opcode = 0x170
	OpMcopy         Opcode = 0x171
	OpMalloc        Opcode = 0x178
	OpMfree         Opcode = 0x179
	OpAccelfunc     Opcode = 0x180
	OpAccelparam    Opcode = 0x181
	OpNumtof        Opcode = 0x190
	OpFtonumz       Opcode = 0x191
	OpFtonumn       Opcode = 0x192
	OpCeil          Opcode = 0x198
	OpFloor         Opcode = 0x199
	OpFadd          Opcode = 0x1A0
	OpFsub          Opcode = 0x1A1
	OpFmul          Opcode = 0x1A2
	OpFdiv          Opcode = 0x1A3
	OpFmod          Opcode = 0x1A4
	OpSqrt          Opcode = 0x1A8
	OpExp           Opcode = 0x1A9
	OpLog           Opcode = 0x1AA
	OpPow           Opcode = 0x1AB
	OpSin           Opcode = 0x1B0
	OpCos           Opcode = 0x1B1
	OpTan           Opcode = 0x1B2
	OpAsin          Opcode = 0x1B3
	OpAcos          Opcode = 0x1B4
	OpAtan          Opcode = 0x1B5
	OpAtan2         Opcode = 0x1B6
	OpJfeq          Opcode = 0x1C0
	OpJfne          Opcode = 0x1C1
	OpJflt          Opcode = 0x1C2
	OpJfle          Opcode = 0x1C3
	OpJfgt          Opcode = 0x1C4
	OpJfge          Opcode = 0x1C5
	OpJisnan        Opcode = 0x1C8
	OpJisinf        Opcode = 0x1C9
	OpNumtod        Opcode = 0x200
	OpDtonumz       Opcode = 0x201
	OpDtonumn       Opcode = 0x202
	OpFtod          Opcode = 0x203
	OpDtof          Opcode = 0x204
	OpDceil         Opcode = 0x208
	OpDfloor        Opcode = 0x209
	OpDadd          Opcode = 0x210
	OpDsub          Opcode = 0x211
	OpDmul          Opcode = 0x212
	OpDdiv          Opcode = 0x213
	OpDmodr         Opcode = 0x214
	OpDmodq         Opcode = 0x215
	OpDsqrt         Opcode = 0x218
	OpDexp          Opcode = 0x219
	OpDlog          Opcode = 0x21A
	OpDpow          Opcode = 0x21B
	OpDsin          Opcode = 0x220
	OpDcos          Opcode = 0x221
	OpDtan          Opcode = 0x222
	OpDasin         Opcode = 0x223
	OpDacos         Opcode = 0x224
	OpDatan         Opcode = 0x225
	OpDatan2        Opcode = 0x226
	OpJdeq          Opcode = 0x230
	OpJdne          Opcode = 0x231
	OpJdlt          Opcode = 0x232
	OpJdle          Opcode = 0x233
	OpJdgt          Opcode = 0x234
	OpJdge          Opcode = 0x235
	OpJdisnan       Opcode = 0x238
	OpJdisinf       Opcode = 0x239
)

var opcodes = map[Opcode]opcodeInfo{
	OpNop:           {name: "nop", sig: ""},
	OpAdd:           {name: "add", sig: "LLS"},
	OpSub:           {name: "sub", sig: "LLS"},
	OpMul:           {name: "mul", sig: "LLS"},
	OpDiv:           {name: "div", sig: "LLS"},
	OpMod:           {name: "mod", sig: "LLS"},
	OpNeg:           {name: "neg", sig: "LS"},
	OpBitand:        {name: "bitand", sig: "LLS"},
	OpBitor:         {name: "bitor", sig: "LLS"},
	OpBitxor:        {name: "bitxor", sig: "LLS"},
	OpBitnot:        {name: "bitnot", sig: "LS"},
	OpShiftl:        {name: "shiftl", sig: "LLS"},
	OpSshiftr:       {name: "sshiftr", sig: "LLS"},
	OpUshiftr:       {name: "ushiftr", sig: "LLS"},
	OpJump:          {name: "jump", sig: "B"},
	OpJz:            {name: "jz", sig: "LB"},
	OpJnz:           {name: "jnz", sig: "LB"},
	OpJeq:           {name: "jeq", sig: "LLB"},
	OpJne:           {name: "jne", sig: "LLB"},
	OpJlt:           {name: "jlt", sig: "LLB"},
	OpJge:           {name: "jge", sig: "LLB"},
	OpJgt:           {name: "jgt", sig: "LLB"},
	OpJle:           {name: "jle", sig: "LLB"},
	OpJltu:          {name: "jltu", sig: "LLB"},
	OpJgeu:          {name: "jgeu", sig: "LLB"},
	OpJgtu:          {name: "jgtu", sig: "LLB"},
	OpJleu:          {name: "jleu", sig: "LLB"},
	OpCall:          {name: "call", sig: "LLS"},
	OpRet:           {name: "return", sig: "L"},
	OpCatch:         {name: "catch", sig: "SB"},
	OpThrow:         {name: "throw", sig: "LL"},
	OpTailcall:      {name: "tailcall", sig: "LL"},
	OpCopy:          {name: "copy", sig: "LS"},
	OpCopys:         {name: "copys", sig: "LS"},
	OpCopyb:         {name: "copyb", sig: "LS"},
	OpSexs:          {name: "sexs", sig: "LS"},
	OpSexb:          {name: "sexb", sig: "LS"},
	OpAload:         {name: "aload", sig: "LLS"},
	OpAloads:        {name: "aloads", sig: "LLS"},
	OpAloadb:        {name: "aloadb", sig: "LLS"},
	OpAloadbit:      {name: "aloadbit", sig: "LLS"},
	OpAstore:        {name: "astore", sig: "LLL"},
	OpAstores:       {name: "astores", sig: "LLL"},
	OpAstoreb:       {name: "astoreb", sig: "LLL"},
	OpAstorebit:     {name: "astorebit", sig: "LLL"},
	OpStkcount:      {name: "stkcount", sig: "S"},
	OpStkpeek:       {name: "stkpeek", sig: "LS"},
	OpStkswap:       {name: "stkswap", sig: ""},
	OpStkroll:       {name: "stkroll", sig: "LL"},
	OpStkcopy:       {name: "stkcopy", sig: "L"},
	OpStreamchar:    {name: "streamchar", sig: "L"},
	OpStreamnum:     {name: "streamnum", sig: "L"},
	OpStreamstr:     {name: "streamstr", sig: "L"},
	OpStreamunichar: {name: "streamunichar", sig: "L"},
	OpGestalt:       {name: "gestalt", sig: "LLS"},
	OpDebugtrap:     {name: "debugtrap", sig: "L"},
	OpGetmemsize:    {name: "getmemsize", sig: "S"},
	OpSetmemsize:    {name: "setmemsize", sig: "LS"},
	OpJumpabs:       {name: "jumpabs", sig: "L"},
	OpRandom:        {name: "random", sig: "LS"},
	OpSetrandom:     {name: "setrandom", sig: "L"},
	OpQuit:          {name: "quit", sig: ""},
	OpVerify:        {name: "verify", sig: "S"},
	OpRestart:       {name: "restart", sig: ""},
	OpSave:          {name: "save", sig: "LS"},
	OpRestore:       {name: "restore", sig: "LS"},
	OpSaveundo:      {name: "saveundo", sig: "S"},
	OpRestoreundo:   {name: "restoreundo", sig: "S"},
	OpProtect:       {name: "protect", sig: "LL"},
	OpHasundo:       {name: "hasundo", sig: "S"},
	OpDiscardundo:   {name: "discardundo", sig: ""},
	OpGlk:           {name: "glk", sig: "LLS"},
	OpGetstringtbl:  {name: "getstringtbl", sig: "S"},
	OpSetstringtbl:  {name: "setstringtbl", sig: "L"},
	OpGetiosys:      {name: "getiosys", sig: "SS"},
	OpSetiosys:      {name: "setiosys", sig: "LL"},
	OpLinearsearch:  {name: "linearsearch", sig: "LLLLLLLS"},
	OpBinarysearch:  {name: "binarysearch", sig: "LLLLLLLS"},
	OpLinkedsearch:  {name: "linkedsearch", sig: "LLLLLLS"},
	OpCallf:         {name: "callf", sig: "LS"},
	OpCallfi:        {name: "callfi", sig: "LLS"},
	OpCallfii:       {name: "callfii", sig: "LLLS"},
	OpCallfiii:      {name: "callfiii", sig: "LLLLS"},
	OpMzero:         {name: "mzero", sig: "LL"},
	OpMcopy:         {name: "mcopy", sig: "LLL"},
	OpMalloc:        {name: "malloc", sig: "LS"},
	OpMfree:         {name: "mfree", sig: "L"},
	OpAccelfunc:     {name: "accelfunc", sig: "LL"},
	OpAccelparam:    {name: "accelparam", sig: "LL"},
	OpNumtof:        {name: "numtof", sig: "LS"},
	OpFtonumz:       {name: "ftonumz", sig: "LS"},
	OpFtonumn:       {name: "ftonumn", sig: "LS"},
	OpCeil:          {name: "ceil", sig: "LS"},
	OpFloor:         {name: "floor", sig: "LS"},
	OpFadd:          {name: "fadd", sig: "LLS"},
	OpFsub:          {name: "fsub", sig: "LLS"},
	OpFmul:          {name: "fmul", sig: "LLS"},
	OpFdiv:          {name: "fdiv", sig: "LLS"},
	OpFmod:          {name: "fmod", sig: "LLSS"},
	OpSqrt:          {name: "sqrt", sig: "LS"},
	OpExp:           {name: "exp", sig: "LS"},
	OpLog:           {name: "log", sig: "LS"},
	OpPow:           {name: "pow", sig: "LLS"},
	OpSin:           {name: "sin", sig: "LS"},
	OpCos:           {name: "cos", sig: "LS"},
	OpTan:           {name: "tan", sig: "LS"},
	OpAsin:          {name: "asin", sig: "LS"},
	OpAcos:          {name: "acos", sig: "LS"},
	OpAtan:          {name: "atan", sig: "LS"},
	OpAtan2:         {name: "atan2", sig: "LLS"},
	OpJfeq:          {name: "jfeq", sig: "LLLB"},
	OpJfne:          {name: "jfne", sig: "LLLB"},
	OpJflt:          {name: "jflt", sig: "LLB"},
	OpJfle:          {name: "jfle", sig: "LLB"},
	OpJfgt:          {name: "jfgt", sig: "LLB"},
	OpJfge:          {name: "jfge", sig: "LLB"},
	OpJisnan:        {name: "jisnan", sig: "LB"},
	OpJisinf:        {name: "jisinf", sig: "LB"},
	OpNumtod:        {name: "numtod", sig: "LSS"},
	OpDtonumz:       {name: "dtonumz", sig: "LLS"},
	OpDtonumn:       {name: "dtonumn", sig: "LLS"},
	OpFtod:          {name: "ftod", sig: "LSS"},
	OpDtof:          {name: "dtof", sig: "LLS"},
	OpDceil:         {name: "dceil", sig: "LLSS"},
	OpDfloor:        {name: "dfloor", sig: "LLSS"},
	OpDadd:          {name: "dadd", sig: "LLLLSS"},
	OpDsub:          {name: "dsub", sig: "LLLLSS"},
	OpDmul:          {name: "dmul", sig: "LLLLSS"},
	OpDdiv:          {name: "ddiv", sig: "LLLLSS"},
	OpDmodr:         {name: "dmodr", sig: "LLLLSS"},
	OpDmodq:         {name: "dmodq", sig: "LLLLSS"},
	OpDsqrt:         {name: "dsqrt", sig: "LLSS"},
	OpDexp:          {name: "dexp", sig: "LLSS"},
	OpDlog:          {name: "dlog", sig: "LLSS"},
	OpDpow:          {name: "dpow", sig: "LLLLSS"},
	OpDsin:          {name: "dsin", sig: "LLSS"},
	OpDcos:          {name: "dcos", sig: "LLSS"},
	OpDtan:          {name: "dtan", sig: "LLSS"},
	OpDasin:         {name: "dasin", sig: "LLSS"},
	OpDacos:         {name: "dacos", sig: "LLSS"},
	OpDatan:         {name: "datan", sig: "LLSS"},
	OpDatan2:        {name: "datan2", sig: "LLLLSS"},
	OpJdeq:          {name: "jdeq", sig: "LLLLLLB"},
	OpJdne:          {name: "jdne", sig: "LLLLLLB"},
	OpJdlt:          {name: "jdlt", sig: "LLLLB"},
	OpJdle:          {name: "jdle", sig: "LLLLB"},
	OpJdgt:          {name: "jdgt", sig: "LLLLB"},
	OpJdge:          {name: "jdge", sig: "LLLLB"},
	OpJdisnan:       {name: "jdisnan", sig: "LLB"},
	OpJdisinf:       {name: "jdisinf", sig: "LLB"},
}

// Nop does nothing.
func Nop() Instr { return newInstr(OpNop) }

// Add stores l1+l2.
func Add(l1, l2 Load, s1 Store) Instr { return newInstr(OpAdd, l1, l2, s1) }

// Sub stores l1-l2.
func Sub(l1, l2 Load, s1 Store) Instr { return newInstr(OpSub, l1, l2, s1) }

// Mul stores l1*l2.
func Mul(l1, l2 Load, s1 Store) Instr { return newInstr(OpMul, l1, l2, s1) }

// Div stores the signed quotient l1/l2, rounded toward zero.
func Div(l1, l2 Load, s1 Store) Instr { return newInstr(OpDiv, l1, l2, s1) }

// Mod stores the signed remainder of l1/l2.
func Mod(l1, l2 Load, s1 Store) Instr { return newInstr(OpMod, l1, l2, s1) }

// Neg stores the negation of l1.
func Neg(l1 Load, s1 Store) Instr { return newInstr(OpNeg, l1, s1) }

func Bitand(l1, l2 Load, s1 Store) Instr { return newInstr(OpBitand, l1, l2, s1) }

func Bitor(l1, l2 Load, s1 Store) Instr { return newInstr(OpBitor, l1, l2, s1) }

func Bitxor(l1, l2 Load, s1 Store) Instr { return newInstr(OpBitxor, l1, l2, s1) }

func Bitnot(l1 Load, s1 Store) Instr { return newInstr(OpBitnot, l1, s1) }

// Shiftl shifts l1 left by l2 bits; shifts of 32 or more produce zero.
func Shiftl(l1, l2 Load, s1 Store) Instr { return newInstr(OpShiftl, l1, l2, s1) }

// Sshiftr arithmetic right shift; shifts of 32 or more replicate the sign bit.
func Sshiftr(l1, l2 Load, s1 Store) Instr { return newInstr(OpSshiftr, l1, l2, s1) }

// Ushiftr logical right shift; shifts of 32 or more produce zero.
func Ushiftr(l1, l2 Load, s1 Store) Instr { return newInstr(OpUshiftr, l1, l2, s1) }

func Jump(target Label) Instr { return newInstr(OpJump, Branch(target)) }

func Jz(l1 Load, target Label) Instr { return newInstr(OpJz, l1, Branch(target)) }

func Jnz(l1 Load, target Label) Instr { return newInstr(OpJnz, l1, Branch(target)) }

func Jeq(l1, l2 Load, target Label) Instr { return newInstr(OpJeq, l1, l2, Branch(target)) }

func Jne(l1, l2 Load, target Label) Instr { return newInstr(OpJne, l1, l2, Branch(target)) }

func Jlt(l1, l2 Load, target Label) Instr { return newInstr(OpJlt, l1, l2, Branch(target)) }

func Jge(l1, l2 Load, target Label) Instr { return newInstr(OpJge, l1, l2, Branch(target)) }

func Jgt(l1, l2 Load, target Label) Instr { return newInstr(OpJgt, l1, l2, Branch(target)) }

func Jle(l1, l2 Load, target Label) Instr { return newInstr(OpJle, l1, l2, Branch(target)) }

func Jltu(l1, l2 Load, target Label) Instr { return newInstr(OpJltu, l1, l2, Branch(target)) }

func Jgeu(l1, l2 Load, target Label) Instr { return newInstr(OpJgeu, l1, l2, Branch(target)) }

func Jgtu(l1, l2 Load, target Label) Instr { return newInstr(OpJgtu, l1, l2, Branch(target)) }

func Jleu(l1, l2 Load, target Label) Instr { return newInstr(OpJleu, l1, l2, Branch(target)) }

// Call calls function l1 with l2 arguments popped from the stack.
func Call(l1, l2 Load, s1 Store) Instr { return newInstr(OpCall, l1, l2, s1) }

// Ret returns l1 from the current function.
func Ret(l1 Load) Instr { return newInstr(OpRet, l1) }

func Catch(s1 Store, target Label) Instr { return newInstr(OpCatch, s1, Branch(target)) }

func Throw(l1, l2 Load) Instr { return newInstr(OpThrow, l1, l2) }

// Tailcall calls function l1 with l2 stack arguments, replacing the current frame.
func Tailcall(l1, l2 Load) Instr { return newInstr(OpTailcall, l1, l2) }

func Copy(l1 Load, s1 Store) Instr { return newInstr(OpCopy, l1, s1) }

func Copys(l1 Load, s1 Store) Instr { return newInstr(OpCopys, l1, s1) }

func Copyb(l1 Load, s1 Store) Instr { return newInstr(OpCopyb, l1, s1) }

// Sexs sign-extends the low 16 bits of l1.
func Sexs(l1 Load, s1 Store) Instr { return newInstr(OpSexs, l1, s1) }

// Sexb sign-extends the low 8 bits of l1.
func Sexb(l1 Load, s1 Store) Instr { return newInstr(OpSexb, l1, s1) }

// Aload loads the word at l1+4*l2.
func Aload(l1, l2 Load, s1 Store) Instr { return newInstr(OpAload, l1, l2, s1) }

// Aloads loads the 16-bit value at l1+2*l2.
func Aloads(l1, l2 Load, s1 Store) Instr { return newInstr(OpAloads, l1, l2, s1) }

// Aloadb loads the byte at l1+l2.
func Aloadb(l1, l2 Load, s1 Store) Instr { return newInstr(OpAloadb, l1, l2, s1) }

func Aloadbit(l1, l2 Load, s1 Store) Instr { return newInstr(OpAloadbit, l1, l2, s1) }

// Astore stores l3 into the word at l1+4*l2.
func Astore(l1, l2, l3 Load) Instr { return newInstr(OpAstore, l1, l2, l3) }

func Astores(l1, l2, l3 Load) Instr { return newInstr(OpAstores, l1, l2, l3) }

func Astoreb(l1, l2, l3 Load) Instr { return newInstr(OpAstoreb, l1, l2, l3) }

func Astorebit(l1, l2, l3 Load) Instr { return newInstr(OpAstorebit, l1, l2, l3) }

func Stkcount(s1 Store) Instr { return newInstr(OpStkcount, s1) }

// Stkpeek copies the l1-th value from the top of the stack without popping.
func Stkpeek(l1 Load, s1 Store) Instr { return newInstr(OpStkpeek, l1, s1) }

// Stkswap swaps the top two values on the stack.
func Stkswap() Instr { return newInstr(OpStkswap) }

// Stkroll rotates the top l1 values on the stack up by l2 positions.
func Stkroll(l1, l2 Load) Instr { return newInstr(OpStkroll, l1, l2) }

func Stkcopy(l1 Load) Instr { return newInstr(OpStkcopy, l1) }

func Streamchar(l1 Load) Instr { return newInstr(OpStreamchar, l1) }

func Streamnum(l1 Load) Instr { return newInstr(OpStreamnum, l1) }

func Streamstr(l1 Load) Instr { return newInstr(OpStreamstr, l1) }

func Streamunichar(l1 Load) Instr { return newInstr(OpStreamunichar, l1) }

func Gestalt(l1, l2 Load, s1 Store) Instr { return newInstr(OpGestalt, l1, l2, s1) }

func Debugtrap(l1 Load) Instr { return newInstr(OpDebugtrap, l1) }

func Getmemsize(s1 Store) Instr { return newInstr(OpGetmemsize, s1) }

// Setmemsize resizes memory to l1 bytes, storing zero on success.
func Setmemsize(l1 Load, s1 Store) Instr { return newInstr(OpSetmemsize, l1, s1) }

// Jumpabs jumps to the absolute address l1.
func Jumpabs(l1 Load) Instr { return newInstr(OpJumpabs, l1) }

func Random(l1 Load, s1 Store) Instr { return newInstr(OpRandom, l1, s1) }

func Setrandom(l1 Load) Instr { return newInstr(OpSetrandom, l1) }

func Quit() Instr { return newInstr(OpQuit) }

func Verify(s1 Store) Instr { return newInstr(OpVerify, s1) }

func Restart() Instr { return newInstr(OpRestart) }

func Save(l1 Load, s1 Store) Instr { return newInstr(OpSave, l1, s1) }

func Restore(l1 Load, s1 Store) Instr { return newInstr(OpRestore, l1, s1) }

func Saveundo(s1 Store) Instr { return newInstr(OpSaveundo, s1) }

func Restoreundo(s1 Store) Instr { return newInstr(OpRestoreundo, s1) }

func Protect(l1, l2 Load) Instr { return newInstr(OpProtect, l1, l2) }

func Hasundo(s1 Store) Instr { return newInstr(OpHasundo, s1) }

func Discardundo() Instr { return newInstr(OpDiscardundo) }

// Glk calls Glk selector l1 with l2 arguments popped from the stack.
func Glk(l1, l2 Load, s1 Store) Instr { return newInstr(OpGlk, l1, l2, s1) }

func Getstringtbl(s1 Store) Instr { return newInstr(OpGetstringtbl, s1) }

func Setstringtbl(l1 Load) Instr { return newInstr(OpSetstringtbl, l1) }

func Getiosys(s1, s2 Store) Instr { return newInstr(OpGetiosys, s1, s2) }

func Setiosys(l1, l2 Load) Instr { return newInstr(OpSetiosys, l1, l2) }

func Linearsearch(l1, l2, l3, l4, l5, l6, l7 Load, s1 Store) Instr { return newInstr(OpLinearsearch, l1, l2, l3, l4, l5, l6, l7, s1) }

func Binarysearch(l1, l2, l3, l4, l5, l6, l7 Load, s1 Store) Instr { return newInstr(OpBinarysearch, l1, l2, l3, l4, l5, l6, l7, s1) }

func Linkedsearch(l1, l2, l3, l4, l5, l6 Load, s1 Store) Instr { return newInstr(OpLinkedsearch, l1, l2, l3, l4, l5, l6, s1) }

func Callf(l1 Load, s1 Store) Instr { return newInstr(OpCallf, l1, s1) }

func Callfi(l1, l2 Load, s1 Store) Instr { return newInstr(OpCallfi, l1, l2, s1) }

func Callfii(l1, l2, l3 Load, s1 Store) Instr { return newInstr(OpCallfii, l1, l2, l3, s1) }

func Callfiii(l1, l2, l3, l4 Load, s1 Store) Instr { return newInstr(OpCallfiii, l1, l2, l3, l4, s1) }

// Mzero zeroes l1 bytes starting at l2.
func Mzero(l1, l2 Load) Instr { return newInstr(OpMzero, l1, l2) }

// Mcopy copies l1 bytes from l2 to l3; the regions may overlap.
func Mcopy(l1, l2, l3 Load) Instr { return newInstr(OpMcopy, l1, l2, l3) }

func Malloc(l1 Load, s1 Store) Instr { return newInstr(OpMalloc, l1, s1) }

func Mfree(l1 Load) Instr { return newInstr(OpMfree, l1) }

func Accelfunc(l1, l2 Load) Instr { return newInstr(OpAccelfunc, l1, l2) }

func Accelparam(l1, l2 Load) Instr { return newInstr(OpAccelparam, l1, l2) }

func Numtof(l1 Load, s1 Store) Instr { return newInstr(OpNumtof, l1, s1) }

func Ftonumz(l1 Load, s1 Store) Instr { return newInstr(OpFtonumz, l1, s1) }

func Ftonumn(l1 Load, s1 Store) Instr { return newInstr(OpFtonumn, l1, s1) }

func Ceil(l1 Load, s1 Store) Instr { return newInstr(OpCeil, l1, s1) }

func Floor(l1 Load, s1 Store) Instr { return newInstr(OpFloor, l1, s1) }

func Fadd(l1, l2 Load, s1 Store) Instr { return newInstr(OpFadd, l1, l2, s1) }

func Fsub(l1, l2 Load, s1 Store) Instr { return newInstr(OpFsub, l1, l2, s1) }

func Fmul(l1, l2 Load, s1 Store) Instr { return newInstr(OpFmul, l1, l2, s1) }

func Fdiv(l1, l2 Load, s1 Store) Instr { return newInstr(OpFdiv, l1, l2, s1) }

// Fmod stores the remainder in s1 and the quotient in s2.
func Fmod(l1, l2 Load, s1, s2 Store) Instr { return newInstr(OpFmod, l1, l2, s1, s2) }

func Sqrt(l1 Load, s1 Store) Instr { return newInstr(OpSqrt, l1, s1) }

func Exp(l1 Load, s1 Store) Instr { return newInstr(OpExp, l1, s1) }

func Log(l1 Load, s1 Store) Instr { return newInstr(OpLog, l1, s1) }

func Pow(l1, l2 Load, s1 Store) Instr { return newInstr(OpPow, l1, l2, s1) }

func Sin(l1 Load, s1 Store) Instr { return newInstr(OpSin, l1, s1) }

func Cos(l1 Load, s1 Store) Instr { return newInstr(OpCos, l1, s1) }

func Tan(l1 Load, s1 Store) Instr { return newInstr(OpTan, l1, s1) }

func Asin(l1 Load, s1 Store) Instr { return newInstr(OpAsin, l1, s1) }

func Acos(l1 Load, s1 Store) Instr { return newInstr(OpAcos, l1, s1) }

func Atan(l1 Load, s1 Store) Instr { return newInstr(OpAtan, l1, s1) }

func Atan2(l1, l2 Load, s1 Store) Instr { return newInstr(OpAtan2, l1, l2, s1) }

// Jfeq branches if l1 and l2 differ by no more than l3.
func Jfeq(l1, l2, l3 Load, target Label) Instr { return newInstr(OpJfeq, l1, l2, l3, Branch(target)) }

func Jfne(l1, l2, l3 Load, target Label) Instr { return newInstr(OpJfne, l1, l2, l3, Branch(target)) }

func Jflt(l1, l2 Load, target Label) Instr { return newInstr(OpJflt, l1, l2, Branch(target)) }

func Jfle(l1, l2 Load, target Label) Instr { return newInstr(OpJfle, l1, l2, Branch(target)) }

func Jfgt(l1, l2 Load, target Label) Instr { return newInstr(OpJfgt, l1, l2, Branch(target)) }

func Jfge(l1, l2 Load, target Label) Instr { return newInstr(OpJfge, l1, l2, Branch(target)) }

func Jisnan(l1 Load, target Label) Instr { return newInstr(OpJisnan, l1, Branch(target)) }

func Jisinf(l1 Load, target Label) Instr { return newInstr(OpJisinf, l1, Branch(target)) }

func Numtod(l1 Load, s1, s2 Store) Instr { return newInstr(OpNumtod, l1, s1, s2) }

func Dtonumz(l1, l2 Load, s1 Store) Instr { return newInstr(OpDtonumz, l1, l2, s1) }

func Dtonumn(l1, l2 Load, s1 Store) Instr { return newInstr(OpDtonumn, l1, l2, s1) }

func Ftod(l1 Load, s1, s2 Store) Instr { return newInstr(OpFtod, l1, s1, s2) }

func Dtof(l1, l2 Load, s1 Store) Instr { return newInstr(OpDtof, l1, l2, s1) }

func Dceil(l1, l2 Load, s1, s2 Store) Instr { return newInstr(OpDceil, l1, l2, s1, s2) }

func Dfloor(l1, l2 Load, s1, s2 Store) Instr { return newInstr(OpDfloor, l1, l2, s1, s2) }

func Dadd(l1, l2, l3, l4 Load, s1, s2 Store) Instr { return newInstr(OpDadd, l1, l2, l3, l4, s1, s2) }

func Dsub(l1, l2, l3, l4 Load, s1, s2 Store) Instr { return newInstr(OpDsub, l1, l2, l3, l4, s1, s2) }

func Dmul(l1, l2, l3, l4 Load, s1, s2 Store) Instr { return newInstr(OpDmul, l1, l2, l3, l4, s1, s2) }

func Ddiv(l1, l2, l3, l4 Load, s1, s2 Store) Instr { return newInstr(OpDdiv, l1, l2, l3, l4, s1, s2) }

func Dmodr(l1, l2, l3, l4 Load, s1, s2 Store) Instr { return newInstr(OpDmodr, l1, l2, l3, l4, s1, s2) }

func Dmodq(l1, l2, l3, l4 Load, s1, s2 Store) Instr { return newInstr(OpDmodq, l1, l2, l3, l4, s1, s2) }

func Dsqrt(l1, l2 Load, s1, s2 Store) Instr { return newInstr(OpDsqrt, l1, l2, s1, s2) }

func Dexp(l1, l2 Load, s1, s2 Store) Instr { return newInstr(OpDexp, l1, l2, s1, s2) }

func Dlog(l1, l2 Load, s1, s2 Store) Instr { return newInstr(OpDlog, l1, l2, s1, s2) }

func Dpow(l1, l2, l3, l4 Load, s1, s2 Store) Instr { return newInstr(OpDpow, l1, l2, l3, l4, s1, s2) }

func Dsin(l1, l2 Load, s1, s2 Store) Instr { return newInstr(OpDsin, l1, l2, s1, s2) }

func Dcos(l1, l2 Load, s1, s2 Store) Instr { return newInstr(OpDcos, l1, l2, s1, s2) }

func Dtan(l1, l2 Load, s1, s2 Store) Instr { return newInstr(OpDtan, l1, l2, s1, s2) }

func Dasin(l1, l2 Load, s1, s2 Store) Instr { return newInstr(OpDasin, l1, l2, s1, s2) }

func Dacos(l1, l2 Load, s1, s2 Store) Instr { return newInstr(OpDacos, l1, l2, s1, s2) }

func Datan(l1, l2 Load, s1, s2 Store) Instr { return newInstr(OpDatan, l1, l2, s1, s2) }

func Datan2(l1, l2, l3, l4 Load, s1, s2 Store) Instr { return newInstr(OpDatan2, l1, l2, l3, l4, s1, s2) }

func Jdeq(l1, l2, l3, l4, l5, l6 Load, target Label) Instr { return newInstr(OpJdeq, l1, l2, l3, l4, l5, l6, Branch(target)) }

func Jdne(l1, l2, l3, l4, l5, l6 Load, target Label) Instr { return newInstr(OpJdne, l1, l2, l3, l4, l5, l6, Branch(target)) }

func Jdlt(l1, l2, l3, l4 Load, target Label) Instr { return newInstr(OpJdlt, l1, l2, l3, l4, Branch(target)) }

func Jdle(l1, l2, l3, l4 Load, target Label) Instr { return newInstr(OpJdle, l1, l2, l3, l4, Branch(target)) }

func Jdgt(l1, l2, l3, l4 Load, target Label) Instr { return newInstr(OpJdgt, l1, l2, l3, l4, Branch(target)) }

func Jdge(l1, l2, l3, l4 Load, target Label) Instr { return newInstr(OpJdge, l1, l2, l3, l4, Branch(target)) }

func Jdisnan(l1, l2 Load, target Label) Instr { return newInstr(OpJdisnan, l1, l2, Branch(target)) }

func Jdisinf(l1, l2 Load, target Label) Instr { return newInstr(OpJdisinf, l1, l2, Branch(target)) }
