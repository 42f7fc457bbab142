// Package wordlist loads (word, clue) entries from files.
//
// Three formats are supported, dispatched on file extension:
//
//   - .toml: an array of [[words]] tables with "word" and optional "clue"
//   - .csv: two columns, word then clue; the clue column may be omitted
//   - .txt: one "word: clue" pair per line, "#" starts a comment
//
// Loading validates only the file structure. Word content (case,
// punctuation, duplicates) is left to the generator's normalization pass.
package wordlist

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pmeier/crossgrid/pkg/crossword"
	"github.com/pmeier/crossgrid/pkg/errors"
)

// Load reads a wordlist file, choosing the parser by extension.
func Load(path string) ([]crossword.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "wordlist %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidWordlist, err, "open %s", path)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return ParseTOML(f)
	case ".csv":
		return ParseCSV(f)
	case ".txt":
		return ParseText(f)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported wordlist format %q", ext)
	}
}

// tomlList mirrors the TOML file structure.
type tomlList struct {
	Words []tomlWord `toml:"words"`
}

type tomlWord struct {
	Word string `toml:"word"`
	Clue string `toml:"clue"`
}

// ParseTOML reads entries from a TOML document:
//
//	[[words]]
//	word = "cross"
//	clue = "Traverse"
func ParseTOML(r io.Reader) ([]crossword.Entry, error) {
	var list tomlList
	if _, err := toml.NewDecoder(r).Decode(&list); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse toml wordlist")
	}
	if len(list.Words) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyWordlist, "wordlist has no entries")
	}

	entries := make([]crossword.Entry, len(list.Words))
	for i, w := range list.Words {
		entries[i] = crossword.Entry{Word: w.Word, Clue: w.Clue}
	}
	return entries, nil
}

// ParseCSV reads entries from CSV rows of the form "word,clue".
// The clue column is optional. Rows with more than two columns are
// rejected.
func ParseCSV(r io.Reader) ([]crossword.Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var entries []crossword.Entry
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse csv wordlist")
		}

		switch len(row) {
		case 1:
			entries = append(entries, crossword.Entry{Word: row[0]})
		case 2:
			entries = append(entries, crossword.Entry{Word: row[0], Clue: row[1]})
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"csv row has %d columns, want 1 or 2", len(row))
		}
	}

	if len(entries) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyWordlist, "wordlist has no entries")
	}
	return entries, nil
}

// ParseText reads entries from plain text, one per line:
//
//	# comment
//	cross: Traverse
//	road
//
// Everything before the first ":" is the word, everything after is the
// clue. Lines without a ":" are words with no clue. Blank lines and lines
// starting with "#" are skipped.
func ParseText(r io.Reader) ([]crossword.Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read text wordlist")
	}

	var entries []crossword.Entry
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, clue, found := strings.Cut(line, ":")
		entry := crossword.Entry{Word: strings.TrimSpace(word)}
		if found {
			entry.Clue = strings.TrimSpace(clue)
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyWordlist, "wordlist has no entries")
	}
	return entries, nil
}
