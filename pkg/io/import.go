package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pmeier/crossgrid/pkg/crossword"
)

var directionFromString = map[string]crossword.Direction{
	"across": crossword.DirectionAcross,
	"down":   crossword.DirectionDown,
}

// ReadJSON decodes a JSON puzzle from r.
//
// The input must be a JSON object with a "words" array. Each word must have
// "word", "row", "col", and "direction" fields; "clue" and "number" are
// optional. An "unplaced" array and a "grid" projection may be present; the
// grid is ignored and rebuilt from the word placements.
//
// ReadJSON returns an error if:
//   - The JSON is malformed or invalid
//   - A word has an unknown direction
//   - Two placements claim different letters for the same cell
//
// Errors are wrapped with context describing which word caused the problem.
//
// The returned puzzle is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*crossword.Puzzle, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return readDocument(doc)
}

// Unmarshal decodes a puzzle from JSON bytes.
func Unmarshal(data []byte) (*crossword.Puzzle, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return readDocument(doc)
}

func readDocument(doc document) (*crossword.Puzzle, error) {
	p := &crossword.Puzzle{
		Words:    make([]crossword.PlacedWord, len(doc.Words)),
		Grid:     make(crossword.Grid),
		Unplaced: doc.Unplaced,
	}
	if p.Unplaced == nil {
		p.Unplaced = []string{}
	}

	for i, w := range doc.Words {
		dir, ok := directionFromString[w.Direction]
		if !ok {
			return nil, fmt.Errorf("word %s: unknown direction %q", w.Word, w.Direction)
		}

		placed := crossword.PlacedWord{
			Word:      w.Word,
			Label:     w.Label,
			Clue:      w.Clue,
			Origin:    crossword.Coord{Row: w.Row, Col: w.Col},
			Direction: dir,
			Number:    w.Number,
		}
		p.Words[i] = placed

		for j, letter := range []rune(w.Word) {
			pos := placed.Origin.Step(dir, j)
			if existing, ok := p.Grid[pos]; ok {
				if existing.Letter != letter {
					return nil, fmt.Errorf("word %s: cell (%d,%d) already holds %c",
						w.Word, pos.Row, pos.Col, existing.Letter)
				}
				continue
			}
			p.Grid[pos] = &crossword.Cell{Letter: letter}
		}
	}

	// Clue numbers live on origin cells as well as on the words.
	for _, w := range p.Words {
		if w.Number != 0 {
			p.Grid[w.Origin].Number = w.Number
		}
	}

	p.Bounds = crossword.ComputeBounds(p.Grid)
	return p, nil
}

// ImportJSON reads a JSON file at path and returns the decoded puzzle.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. If the file cannot be opened, or if decoding fails, ImportJSON
// returns an error describing the failure.
func ImportJSON(path string) (*crossword.Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
