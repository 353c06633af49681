package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedDiff(t *testing.T) {
	before := "[package]\nname = \"rust-cli-quickstart\"\nversion = \"1.0.0\"\n"
	after := "[package]\nname = \"data-sync\"\nversion = \"1.0.0\"\n"

	diff, err := UnifiedDiff("Cargo.toml", before, after)
	require.NoError(t, err)

	assert.Contains(t, diff, "--- a/Cargo.toml")
	assert.Contains(t, diff, "+++ b/Cargo.toml")
	assert.Contains(t, diff, "-name = \"rust-cli-quickstart\"")
	assert.Contains(t, diff, "+name = \"data-sync\"")
	assert.Contains(t, diff, " [package]")
}

func TestUnifiedDiff_Identical(t *testing.T) {
	diff, err := UnifiedDiff("src/lib.rs", "same\n", "same\n")
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestUnifiedDiff_NewAndRemovedFile(t *testing.T) {
	diff, err := UnifiedDiff("README.md", "", "# Data Sync\n")
	require.NoError(t, err)
	assert.Contains(t, diff, "+# Data Sync")

	diff, err = UnifiedDiff("customize.rs", "fn main() {}\n", "")
	require.NoError(t, err)
	assert.Contains(t, diff, "-fn main() {}")
}

func TestColorizeDiff_KeepsContent(t *testing.T) {
	diff, err := UnifiedDiff("a.txt", "one\ntwo\n", "one\nthree\n")
	require.NoError(t, err)

	colored := ColorizeDiff(diff)
	for _, want := range []string{"one", "-two", "+three", "@@"} {
		assert.Contains(t, colored, want)
	}
	assert.Equal(t, strings.Count(diff, "\n"), strings.Count(colored, "\n"))
	assert.Empty(t, ColorizeDiff(""))
}

func TestDiffSummary(t *testing.T) {
	tests := []struct {
		name                        string
		rewritten, renamed, removed int
		want                        string
	}{
		{"nothing", 0, 0, 0, "No changes"},
		{"rewritten only", 4, 0, 0, "4 files rewritten"},
		{"mixed", 4, 2, 1, "4 files rewritten, 2 files renamed, 1 file removed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiffSummary(tt.rewritten, tt.renamed, tt.removed))
		})
	}
}
