package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		pairs []Pair
		want  string
	}{
		{
			name: "pascal then snake",
			text: "rust_cli_quickstart::RustCliQuickStart",
			pairs: []Pair{
				{Old: "RustCliQuickStart", New: "Foo"},
				{Old: "rust_cli_quickstart", New: "foo"},
			},
			want: "foo::Foo",
		},
		{
			name: "snake then pascal",
			text: "rust_cli_quickstart::RustCliQuickStart",
			pairs: []Pair{
				{Old: "rust_cli_quickstart", New: "foo"},
				{Old: "RustCliQuickStart", New: "Foo"},
			},
			want: "foo::Foo",
		},
		{
			name:  "global replacement",
			text:  "a-b a-b a-b",
			pairs: []Pair{{Old: "a-b", New: "c"}},
			want:  "c c c",
		},
		{
			name:  "empty old token skipped",
			text:  "keep",
			pairs: []Pair{{Old: "", New: "x"}},
			want:  "keep",
		},
		{
			name:  "no pairs",
			text:  "unchanged",
			pairs: nil,
			want:  "unchanged",
		},
		{
			name: "later pairs see earlier output",
			text: "alpha",
			pairs: []Pair{
				{Old: "alpha", New: "beta"},
				{Old: "beta", New: "gamma"},
			},
			want: "gamma",
		},
		{
			name:  "non overlapping",
			text:  "aaaa",
			pairs: []Pair{{Old: "aa", New: "b"}},
			want:  "bb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.text, tt.pairs))
		})
	}
}

// A longer token containing a shorter one must be listed first; the reverse
// order corrupts it.
func TestApply_OrderMatters(t *testing.T) {
	text := "my_tool my_tool_cli"

	safe := Apply(text, []Pair{
		{Old: "my_tool_cli", New: "data_sync"},
		{Old: "my_tool", New: "widget"},
	})
	assert.Equal(t, "widget data_sync", safe)

	unsafe := Apply(text, []Pair{
		{Old: "my_tool", New: "widget"},
		{Old: "my_tool_cli", New: "data_sync"},
	})
	assert.Equal(t, "widget widget_cli", unsafe)
}

func TestApply_SecondRunIsNoop(t *testing.T) {
	pairs := []Pair{
		{Old: "RustCliQuickStart", New: "DataSync"},
		{Old: "rust_cli_quickstart", New: "data_sync"},
	}
	once := Apply("use rust_cli_quickstart::RustCliQuickStartTool;", pairs)
	assert.Equal(t, once, Apply(once, pairs))
}

func TestCount(t *testing.T) {
	pairs := []Pair{
		{Old: "RustCliQuickStart", New: "DataSync"},
		{Old: "rust_cli_quickstart", New: "data_sync"},
		{Old: "", New: "x"},
	}
	text := "rust_cli_quickstart RustCliQuickStartLog RustCliQuickStartTool"

	assert.Equal(t, []int{2, 1, 0}, Count(text, pairs))
	assert.Equal(t, 3, Total(text, pairs))
	assert.Equal(t, 0, Total("nothing here", pairs))
}
