// Package filter implements the wordsift line filter: normalize each
// line of a word list, keep the words that fall inside the configured
// length range and consist only of alphabetic characters, and stream
// the survivors to the destination in source order.
package filter

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/wordsift/internal/stats"
)

// Alphabet selects which characters count as alphabetic.
type Alphabet string

const (
	// AlphabetUnicode accepts any Unicode letter, matching the behavior
	// of locale-independent isalpha-style predicates.
	AlphabetUnicode Alphabet = "unicode"
	// AlphabetASCII restricts the predicate to A-Z after uppercasing.
	AlphabetASCII Alphabet = "ascii"
)

// ParseAlphabet converts a config string into an Alphabet.
func ParseAlphabet(s string) (Alphabet, error) {
	switch Alphabet(strings.ToLower(strings.TrimSpace(s))) {
	case AlphabetUnicode, "":
		return AlphabetUnicode, nil
	case AlphabetASCII:
		return AlphabetASCII, nil
	default:
		return "", fmt.Errorf("unknown alphabet %q (want unicode or ascii)", s)
	}
}

// Rules describes which normalized words qualify.
type Rules struct {
	MinLength int
	MaxLength int
	Alphabet  Alphabet
}

// DefaultRules returns the built-in 3..7 Unicode rule set.
func DefaultRules() Rules {
	return Rules{
		MinLength: 3,
		MaxLength: 7,
		Alphabet:  AlphabetUnicode,
	}
}

// Validate checks that the rule set is internally consistent.
func (r Rules) Validate() error {
	if r.MinLength < 1 {
		return fmt.Errorf("min_length must be at least 1, got %d", r.MinLength)
	}
	if r.MaxLength < r.MinLength {
		return fmt.Errorf("max_length %d is below min_length %d", r.MaxLength, r.MinLength)
	}
	if _, err := ParseAlphabet(string(r.Alphabet)); err != nil {
		return err
	}
	return nil
}

// Normalize strips surrounding whitespace and uppercases the line.
// Uppercasing uses the language-neutral Unicode case mapping so that
// non-ASCII letters fold the same way on every host.
func Normalize(line string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(line))
}

// Evaluate applies the qualifying predicate to an already-normalized
// word. It returns stats.ReasonNone when the word qualifies, otherwise
// the first reason that disqualifies it. Length is measured in runes so
// multi-byte letters count once.
func (r Rules) Evaluate(word string) stats.Reason {
	if word == "" {
		return stats.ReasonEmpty
	}

	length := utf8.RuneCountInString(word)
	if length < r.MinLength {
		return stats.ReasonTooShort
	}
	if length > r.MaxLength {
		return stats.ReasonTooLong
	}

	for _, ch := range word {
		if !r.isAlpha(ch) {
			return stats.ReasonNotAlpha
		}
	}

	return stats.ReasonNone
}

func (r Rules) isAlpha(ch rune) bool {
	if r.Alphabet == AlphabetASCII {
		return ch >= 'A' && ch <= 'Z'
	}
	return unicode.IsLetter(ch)
}
