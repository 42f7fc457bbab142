package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pmeier/crossgrid/pkg/crossword"
)

func samplePuzzle(t *testing.T) *crossword.Puzzle {
	t.Helper()
	gen := crossword.NewGenerator(1, nil)
	p := gen.Generate([]crossword.Entry{
		{Word: "rat", Clue: "Rodent"},
		{Word: "car", Clue: "Vehicle"},
	})
	if len(p.Words) != 2 {
		t.Fatalf("placed = %d, want 2", len(p.Words))
	}
	return p
}

func TestRoundTrip(t *testing.T) {
	p := samplePuzzle(t)

	var buf bytes.Buffer
	if err := WriteJSON(p, &buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}

	if len(got.Words) != len(p.Words) {
		t.Fatalf("words = %d, want %d", len(got.Words), len(p.Words))
	}
	for i, w := range got.Words {
		orig := p.Words[i]
		if w.Word != orig.Word || w.Origin != orig.Origin ||
			w.Direction != orig.Direction || w.Number != orig.Number ||
			w.Clue != orig.Clue || w.Label != orig.Label {
			t.Errorf("word %d = %+v, want %+v", i, w, orig)
		}
	}

	if len(got.Grid) != len(p.Grid) {
		t.Fatalf("grid cells = %d, want %d", len(got.Grid), len(p.Grid))
	}
	for pos, cl := range p.Grid {
		gc, ok := got.Grid[pos]
		if !ok {
			t.Fatalf("missing cell at %+v", pos)
		}
		if gc.Letter != cl.Letter || gc.Number != cl.Number {
			t.Errorf("cell %+v = %+v, want %+v", pos, gc, cl)
		}
	}

	if got.Bounds != p.Bounds {
		t.Errorf("bounds = %+v, want %+v", got.Bounds, p.Bounds)
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	p := samplePuzzle(t)

	data, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if len(got.Words) != len(p.Words) {
		t.Errorf("words = %d, want %d", len(got.Words), len(p.Words))
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "Malformed",
			input: `{"words": [`,
		},
		{
			name:  "UnknownDirection",
			input: `{"words": [{"word": "RAT", "row": 0, "col": 0, "direction": "diagonal"}]}`,
		},
		{
			name: "ConflictingLetters",
			input: `{"words": [
				{"word": "RAT", "row": 0, "col": 0, "direction": "across"},
				{"word": "CAB", "row": 0, "col": 0, "direction": "down"}
			]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.input)); err == nil {
				t.Error("ReadJSON succeeded, want error")
			}
		})
	}
}

func TestReadJSONUnplacedNeverNil(t *testing.T) {
	p, err := ReadJSON(strings.NewReader(`{"words": []}`))
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	if p.Unplaced == nil {
		t.Error("Unplaced is nil, want empty slice")
	}
}

func TestWriteJSONIncludesUnplaced(t *testing.T) {
	gen := crossword.NewGenerator(1, nil)
	p := gen.Generate([]crossword.Entry{
		{Word: "dog"},
		{Word: "fire"},
	})

	var buf bytes.Buffer
	if err := WriteJSON(p, &buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}
	if !strings.Contains(buf.String(), `"unplaced"`) {
		t.Error("output missing unplaced array")
	}
}
