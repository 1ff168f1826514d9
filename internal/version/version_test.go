package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromBuildInfo(t *testing.T) {
	tests := []struct {
		name     string
		info     *debug.BuildInfo
		expected string
	}{
		{
			name:     "installed",
			info:     &debug.BuildInfo{Main: debug.Module{Path: modulePath, Version: "v1.2.3"}},
			expected: "v1.2.3",
		},
		{
			name:     "go run",
			info:     &debug.BuildInfo{Main: debug.Module{Path: modulePath, Version: "(devel)"}},
			expected: dev,
		},
		{
			name: "dependency",
			info: &debug.BuildInfo{
				Main: debug.Module{Path: "example.com/game"},
				Deps: []*debug.Module{
					{Path: "go.uber.org/zap", Version: "v1.21.0"},
					{Path: modulePath, Version: "v0.0.0-20220818123113-1948909ec0b1"},
				},
			},
			expected: "v0.0.0-20220818123113-1948909ec0b1",
		},
		{
			name: "replaced dependency",
			info: &debug.BuildInfo{
				Main: debug.Module{Path: "example.com/game"},
				Deps: []*debug.Module{
					{Path: modulePath, Version: "v0.1.0", Replace: &debug.Module{Path: "../wasm2glulx"}},
				},
			},
			expected: dev,
		},
		{
			name:     "absent",
			info:     &debug.BuildInfo{Main: debug.Module{Path: "example.com/game"}},
			expected: dev,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, fromBuildInfo(tc.info))
		})
	}
}

func TestVersion(t *testing.T) {
	require.NotEmpty(t, Version())
}
