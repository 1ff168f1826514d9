package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/wasm2glulx/internal/compiler"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    *compiler.Config
		expectedErr string
	}{
		{
			name:     "empty",
			expected: compiler.NewConfig(),
		},
		{
			name: "all keys",
			input: `glk_area_size = 8192
stack_size = 65536
table_growth_limit = 16
text = true
`,
			expected: compiler.NewConfig().
				WithGlkAreaSize(8192).
				WithStackSize(65536).
				WithTableGrowthLimit(16).
				WithText(true),
		},
		{
			name:     "some keys",
			input:    "stack_size = 2048\n",
			expected: compiler.NewConfig().WithStackSize(2048),
		},
		{
			name:        "unknown key",
			input:       "stak_size = 2048\n",
			expectedErr: "failed to parse config file",
		},
		{
			name:        "wrong type",
			input:       "text = \"yes\"\n",
			expectedErr: "failed to parse config file",
		},
		{
			name:        "negative size",
			input:       "stack_size = -1\n",
			expectedErr: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			f, err := Parse([]byte(tc.input))
			if tc.expectedErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.expectedErr)
				return
			}
			require.NoError(t, err)

			cfg := f.Apply(compiler.NewConfig())
			require.Equal(t, tc.expected.GlkAreaSize(), cfg.GlkAreaSize())
			require.Equal(t, tc.expected.StackSize(), cfg.StackSize())
			require.Equal(t, tc.expected.TableGrowthLimit(), cfg.TableGrowthLimit())
			require.Equal(t, tc.expected.Text(), cfg.Text())
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wasm2glulx.toml")
	require.NoError(t, os.WriteFile(path, []byte("glk_area_size = 1024\n"), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint32(1024), *f.GlkAreaSize)
	require.Nil(t, f.StackSize)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config file")
}
