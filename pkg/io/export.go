package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pmeier/crossgrid/pkg/crossword"
)

var directionToString = map[crossword.Direction]string{
	crossword.DirectionAcross: "across",
	crossword.DirectionDown:   "down",
}

type document struct {
	Words    []word    `json:"words"`
	Unplaced []string  `json:"unplaced,omitempty"`
	Grid     [][]*cell `json:"grid,omitempty"`
}

type word struct {
	Word      string `json:"word"`
	Label     string `json:"label,omitempty"`
	Clue      string `json:"clue,omitempty"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
	Number    int    `json:"number"`
}

type cell struct {
	Letter string `json:"letter"`
	Number int    `json:"number,omitempty"`
}

func toDocument(p *crossword.Puzzle) document {
	doc := document{
		Words:    make([]word, len(p.Words)),
		Unplaced: p.Unplaced,
	}

	for i, w := range p.Words {
		doc.Words[i] = word{
			Word:      w.Word,
			Label:     w.Label,
			Clue:      w.Clue,
			Row:       w.Origin.Row,
			Col:       w.Origin.Col,
			Direction: directionToString[w.Direction],
			Number:    w.Number,
		}
	}

	dense := p.Project()
	doc.Grid = make([][]*cell, len(dense))
	for r, row := range dense {
		doc.Grid[r] = make([]*cell, len(row))
		for c, cl := range row {
			if cl == nil {
				continue
			}
			doc.Grid[r][c] = &cell{Letter: string(cl.Letter), Number: cl.Number}
		}
	}

	return doc
}

// WriteJSON encodes a puzzle as JSON and writes it to w.
// The output includes all placed words (with origin, direction, and clue
// number), the unplaced words, and a dense grid projection. This format
// can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(p *crossword.Puzzle, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(p)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Marshal encodes a puzzle as JSON bytes.
// This is a convenience wrapper around [WriteJSON] for callers that store
// or transmit puzzles rather than writing files.
func Marshal(p *crossword.Puzzle) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(p, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportJSON writes a puzzle to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(p *crossword.Puzzle, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(p, f)
}
