// Package naming derives the case variants of a project name.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"

	oerrors "github.com/jlyonsmith/rust-cli-quickstart/internal/errors"
)

// Variants holds every spelling of a project name used by the scaffold.
type Variants struct {
	// Snake is lowercase words joined by underscores (e.g., "data_sync").
	Snake string

	// Pascal is capitalized words concatenated (e.g., "DataSync").
	Pascal string

	// Param is lowercase words joined by hyphens (e.g., "data-sync").
	Param string

	// Title is capitalized words joined by a space (e.g., "Data Sync").
	Title string
}

// Derive computes all case variants of name from a single word segmentation.
// It returns an ErrInvalidName error when name contains no letters or digits.
func Derive(name string) (Variants, error) {
	words := Words(name)
	if len(words) == 0 {
		return Variants{}, oerrors.NewInvalidNameError(name,
			"Pass a name containing letters or digits, e.g. customize \"my cool cli\"")
	}

	capitalized := make([]string, len(words))
	for i, w := range words {
		capitalized[i] = capitalize(w)
	}

	return Variants{
		Snake:  strings.Join(words, "_"),
		Pascal: strings.Join(capitalized, ""),
		Param:  strings.Join(words, "-"),
		Title:  strings.Join(capitalized, " "),
	}, nil
}

// Words splits name into lowercase words. Runs of non-alphanumeric characters
// separate words, and each remaining chunk is split on case boundaries.
func Words(name string) []string {
	chunks := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var words []string
	for _, chunk := range chunks {
		words = append(words, splitChunk(chunk)...)
	}
	return words
}

// splitChunk splits an alphanumeric chunk at the boundaries strcase finds,
// except around digits: a digit never starts a word, and after a digit only
// an upper-case letter does. "oauth2" and "3d" stay whole, "http2Proxy"
// splits before "Proxy".
func splitChunk(chunk string) []string {
	snake := strcase.ToSnake(chunk)

	var words []string
	start, pos := 0, 0
	for i := 0; i < len(snake); i++ {
		if snake[i] != '_' {
			pos++
			continue
		}
		if pos == start || pos >= len(chunk) {
			continue
		}
		prev, next := chunk[pos-1], chunk[pos]
		if isDigit(next) || (isDigit(prev) && !isUpper(next)) {
			continue
		}
		words = append(words, strings.ToLower(chunk[start:pos]))
		start = pos
	}
	if start < len(chunk) {
		words = append(words, strings.ToLower(chunk[start:]))
	}
	return words
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
