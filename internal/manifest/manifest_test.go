package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rendered = `[package]
name = "data-sync"
version = "1.0.0"
edition = "2021"
authors = ["Jane Doe <jane@example.com>"]
description = "Synchronizes data"
repository = "https://github.com/jdoe/data-sync"

[[bin]]
name = "data-sync"
path = "src/bin/data_sync.rs"

[[bench]]
name = "benchmarks"
harness = false

[dependencies]
clap = { version = "4", features = ["derive"] }
`

func TestParse(t *testing.T) {
	m, err := Parse(rendered)
	require.NoError(t, err)
	assert.Equal(t, "data-sync", m.Package.Name)
	assert.Equal(t, []string{"Jane Doe <jane@example.com>"}, m.Package.Authors)
	require.Len(t, m.Bins, 1)
	assert.Equal(t, "src/bin/data_sync.rs", m.Bins[0].Path)
	require.Len(t, m.Benches, 1)
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     string
		problems int
		contains string
	}{
		{"matching name", rendered, "data-sync", 0, ""},
		{"wrong name", rendered, "other-name", 1, `expected "other-name"`},
		{"unparsable", "[package\nname = ", "data-sync", 1, "parsing manifest"},
		{"nameless bin", "[package]\nname = \"a\"\n[[bin]]\npath = \"src/main.rs\"\n", "a", 1, "has no name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := Verify(tt.text, tt.want)
			assert.Len(t, problems, tt.problems)
			if tt.contains != "" {
				require.NotEmpty(t, problems)
				assert.Contains(t, problems[0], tt.contains)
			}
		})
	}
}
