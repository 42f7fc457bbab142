package nodelink

import (
	"strings"
	"testing"

	"github.com/pmeier/crossgrid/pkg/crossword"
)

func samplePuzzle() *crossword.Puzzle {
	// RAT across at (0,0) crossed by CAR down at (-1,1): the A at (0,1)
	// is shared. TEA across at (4,0) touches nothing.
	return &crossword.Puzzle{
		Words: []crossword.PlacedWord{
			{Word: "RAT", Origin: crossword.Coord{Row: 0, Col: 0}, Direction: crossword.DirectionAcross, Number: 2},
			{Word: "CAR", Origin: crossword.Coord{Row: -1, Col: 1}, Direction: crossword.DirectionDown, Number: 1},
			{Word: "TEA", Origin: crossword.Coord{Row: 4, Col: 0}, Direction: crossword.DirectionAcross, Number: 3},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(samplePuzzle(), Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Fatalf("not an undirected graph:\n%s", dot)
	}

	// One node per placed word.
	for _, id := range []string{`"2-across"`, `"1-down"`, `"3-across"`} {
		if !strings.Contains(dot, id) {
			t.Errorf("missing node %s:\n%s", id, dot)
		}
	}

	// Exactly one edge, between the crossing pair.
	if got := strings.Count(dot, " -- "); got != 1 {
		t.Errorf("edge count = %d, want 1:\n%s", got, dot)
	}
	hasEdge := strings.Contains(dot, `"2-across" -- "1-down"`) ||
		strings.Contains(dot, `"1-down" -- "2-across"`)
	if !hasEdge {
		t.Errorf("missing crossing edge:\n%s", dot)
	}
}

func TestToDOTLabels(t *testing.T) {
	plain := ToDOT(samplePuzzle(), Options{})
	if !strings.Contains(plain, "2 across\\nRAT") {
		t.Errorf("plain label missing word:\n%s", plain)
	}
	if strings.Contains(plain, "len 3") {
		t.Error("plain label should not include detail")
	}

	detailed := ToDOT(samplePuzzle(), Options{Detailed: true})
	if !strings.Contains(detailed, "(0,0) len 3") {
		t.Errorf("detailed label missing origin and length:\n%s", detailed)
	}
}

func TestToDOTEmptyPuzzle(t *testing.T) {
	dot := ToDOT(&crossword.Puzzle{}, Options{})
	if !strings.HasPrefix(dot, "graph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("malformed dot for empty puzzle:\n%s", dot)
	}
}
