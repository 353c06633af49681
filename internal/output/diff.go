package output

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff returns a unified diff between before and after with three
// lines of context. Identical inputs produce an empty string.
func UnifiedDiff(path, before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
}

// ColorizeDiff styles the added and deleted lines of a unified diff.
func ColorizeDiff(diff string) string {
	if diff == "" {
		return ""
	}

	lines := strings.Split(strings.TrimSuffix(diff, "\n"), "\n")
	var sb strings.Builder
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			line = StyleSummary.Render(line)
		case strings.HasPrefix(line, "@@"):
			line = StyleNoun.Render(line)
		case strings.HasPrefix(line, "+"):
			line = StyleAdded.Render(line)
		case strings.HasPrefix(line, "-"):
			line = StyleDeleted.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// DiffSummary returns a summary such as "2 rewritten, 1 renamed".
func DiffSummary(rewritten, renamed, removed int) string {
	if rewritten == 0 && renamed == 0 && removed == 0 {
		return "No changes"
	}

	parts := make([]string, 0, 3)
	if rewritten > 0 {
		parts = append(parts, FormatCount(rewritten, "file")+" "+StatusRewritten)
	}
	if renamed > 0 {
		parts = append(parts, FormatCount(renamed, "file")+" "+StatusRenamed)
	}
	if removed > 0 {
		parts = append(parts, FormatCount(removed, "file")+" "+StatusRemoved)
	}
	return strings.Join(parts, ", ")
}
