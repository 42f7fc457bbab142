package crossword

import (
	"strings"
	"unicode"
)

// Normalize cleans and deduplicates raw entries into canonical search keys.
//
// For each entry the word is trimmed, uppercased, and stripped of every rune
// that is not a letter or digit (any alphabet). Entries whose trimmed or
// canonical form is shorter than two runes are dropped, as are entries whose
// canonical form was already produced by an earlier entry - first occurrence
// wins, later duplicates are discarded silently. Input order is preserved
// among survivors.
func Normalize(entries []Entry) []NormalizedEntry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]NormalizedEntry, 0, len(entries))

	for _, e := range entries {
		label := strings.TrimSpace(e.Word)
		if len([]rune(label)) < 2 {
			continue
		}
		word := canonicalize(label)
		if len([]rune(word)) < 2 {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, NormalizedEntry{
			Word:  word,
			Label: label,
			Clue:  strings.TrimSpace(e.Clue),
		})
	}
	return out
}

// canonicalize uppercases s and strips every rune that is not a letter or
// digit. Works for any alphabet, not just ASCII.
func canonicalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}
