package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/wasm2glulx/internal/asm/glulx"
)

func TestGenCopies(t *testing.T) {
	l0, l1, l2 := glulx.Local(0), glulx.Local(4), glulx.Local(8)
	s0, s1, s2 := glulx.StoreLocal(0), glulx.StoreLocal(4), glulx.StoreLocal(8)

	tests := []struct {
		name     string
		cr       credits
		db       debts
		expected []glulx.Item
	}{
		{
			name: "direct",
			// local.get 1, local.set 2
			cr:       credits{loads: []glulx.Load{l1}},
			db:       debts{stores: []glulx.Store{s2}},
			expected: []glulx.Item{glulx.Copy(l1, s2)},
		},
		{
			name: "swap spills through the stack",
			// local.get 0, local.get 1, local.set 0, local.set 1
			cr: credits{loads: []glulx.Load{l0, l1}},
			db: debts{stores: []glulx.Store{s1, s0}},
			expected: []glulx.Item{
				glulx.Copy(l0, glulx.Push()),
				glulx.Copy(l1, s0),
				glulx.Copy(glulx.Pop(), s1),
			},
		},
		{
			name: "reversal",
			// local.get 0, local.get 1, local.get 2, local.set 0, local.set 1, local.set 2
			cr: credits{loads: []glulx.Load{l0, l1, l2}},
			db: debts{stores: []glulx.Store{s2, s1, s0}},
			expected: []glulx.Item{
				glulx.Copy(l0, glulx.Push()),
				glulx.Copy(l2, s0),
				glulx.Copy(glulx.Pop(), s2),
			},
		},
		{
			name:     "self copy is elided",
			cr:       credits{loads: []glulx.Load{l0}},
			db:       debts{stores: []glulx.Store{s0}},
			expected: nil,
		},
		{
			name:     "drop of a constant is elided",
			cr:       credits{loads: []glulx.Load{glulx.Imm(7)}},
			db:       debts{stores: []glulx.Store{glulx.Discard()}},
			expected: nil,
		},
		{
			name: "more debts than credits",
			cr:   credits{loads: []glulx.Load{l0}},
			db:   debts{stores: []glulx.Store{s2, s1}},
			expected: []glulx.Item{
				glulx.Copy(l0, s1),
				glulx.Copy(glulx.Pop(), s2),
			},
		},
		{
			name: "more credits than debts",
			cr:   credits{loads: []glulx.Load{l0, l1}},
			db:   debts{stores: []glulx.Store{s2}},
			expected: []glulx.Item{
				glulx.Copy(l0, glulx.Push()),
				glulx.Copy(l1, s2),
			},
		},
		{
			name:     "single word return",
			cr:       credits{loads: []glulx.Load{l1}},
			db:       debts{returns: &returns{n: 1}},
			expected: []glulx.Item{glulx.Ret(l1)},
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			c := &compilation{}
			c.genCopies(tc.cr, tc.db)
			require.Equal(t, tc.expected, c.rom)
		})
	}
}

func TestDebts_returns(t *testing.T) {
	hi := (&glulx.LabelGenerator{}).Gen("hi_return")
	c := &compilation{}

	// An i64 result: the high word goes to hi_return and the low word is
	// returned.
	db := debts{returns: &returns{hiReturn: hi, n: 2}}
	require.Equal(t, 2, db.len())
	db.gen(c)
	require.Equal(t, []glulx.Item{
		glulx.Copy(glulx.Pop(), glulx.StoreLabelOff(hi, 0)),
		glulx.Ret(glulx.Pop()),
	}, c.rom)
	db.mustBeEmpty()
}

func TestDebts_popLoHi(t *testing.T) {
	db := debts{stores: []glulx.Store{glulx.StoreLocal(0), glulx.StoreLocal(4)}}
	lo, hi := db.popLoHi()
	require.Equal(t, glulx.StoreLocal(0), lo)
	require.Equal(t, glulx.StoreLocal(4), hi)
	require.Equal(t, glulx.Push(), db.pop())
}

func TestCredits_pop(t *testing.T) {
	cr := credits{loads: []glulx.Load{glulx.Local(0), glulx.Local(4)}}
	hi, lo := cr.popHiLo()
	require.Equal(t, glulx.Local(4), hi)
	require.Equal(t, glulx.Local(0), lo)
	require.Equal(t, glulx.Pop(), cr.pop())
	require.Zero(t, cr.len())
}

func TestMustBeEmpty(t *testing.T) {
	cr := credits{loads: []glulx.Load{glulx.Imm(1)}}
	require.PanicsWithValue(t, "BUG: 1 credits were dropped", cr.mustBeEmpty)

	db := debts{stores: []glulx.Store{glulx.Discard(), glulx.Discard()}}
	require.PanicsWithValue(t, "BUG: 2 debts were dropped", db.mustBeEmpty)

	(&credits{}).mustBeEmpty()
	(&debts{}).mustBeEmpty()
}

func TestPopSwappedPair(t *testing.T) {
	tests := []struct {
		name     string
		cr       credits
		x, y     glulx.Load
		expected []glulx.Item
	}{
		{
			name: "both credited",
			cr:   credits{loads: []glulx.Load{glulx.Local(0), glulx.Imm(3)}},
			x:    glulx.Local(0),
			y:    glulx.Imm(3),
		},
		{
			name:     "both on the stack",
			x:        glulx.Pop(),
			y:        glulx.Pop(),
			expected: []glulx.Item{glulx.Stkswap()},
		},
		{
			name: "only x on the stack",
			cr:   credits{loads: []glulx.Load{glulx.Imm(3)}},
			x:    glulx.Pop(),
			y:    glulx.Imm(3),
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			c := &compilation{}
			x, y := c.popSwappedPair(&tc.cr)
			require.Equal(t, tc.x, x)
			require.Equal(t, tc.y, y)
			require.Equal(t, tc.expected, c.rom)
		})
	}
}
