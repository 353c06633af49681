package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()
	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	assert.Equal(t, Version, info.Version)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
	}

	str := info.String()
	assert.Contains(t, str, "v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
}

func TestFullVersionString(t *testing.T) {
	out := FullVersionString(Info{Version: "v1.2.3"}, []ToolInfo{
		{Name: "git", Version: "2.43.0", Path: "/usr/bin/git", Found: true},
		{Name: "cargo"},
	})
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "Tools:")
	assert.Contains(t, out, "2.43.0")
	assert.Contains(t, out, "cargo  not found")

	assert.NotContains(t, FullVersionString(Info{}, nil), "Tools:")
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{"git", "git version 2.43.0\n", "2.43.0", false},
		{"cargo", "cargo 1.79.0 (ffa9cf99a 2024-06-03)\n", "1.79.0", false},
		{"prerelease", "tool 0.15.0-alpha.1", "0.15.0-alpha.1", false},
		{"garbage", "no numbers here", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractVersion(tt.output)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectTool_Missing(t *testing.T) {
	info := DetectTool("definitely-not-installed-7c2e")
	assert.False(t, info.Found)
	assert.Contains(t, info.String(), "not found")
}
