package svg

import (
	"strings"
	"testing"

	"github.com/pmeier/crossgrid/pkg/crossword"
)

func samplePuzzle() *crossword.Puzzle {
	g := make(crossword.Grid)
	words := []crossword.PlacedWord{
		{Word: "ARC", Origin: crossword.Coord{}, Direction: crossword.DirectionAcross, Number: 1},
		{Word: "ANT", Origin: crossword.Coord{}, Direction: crossword.DirectionDown, Number: 1},
	}
	for _, w := range words {
		for i, letter := range []rune(w.Word) {
			pos := w.Origin.Step(w.Direction, i)
			if _, ok := g[pos]; !ok {
				g[pos] = &crossword.Cell{Letter: letter}
			}
		}
	}
	g[crossword.Coord{}].Number = 1

	return &crossword.Puzzle{
		Words:  words,
		Grid:   g,
		Bounds: crossword.ComputeBounds(g),
	}
}

func TestRenderSVGStructure(t *testing.T) {
	out := string(RenderSVG(samplePuzzle()))

	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(out, "</svg>\n") {
		t.Fatalf("output is not an svg document:\n%s", out)
	}
	// 3x3 bounds at default cell size 40.
	if !strings.Contains(out, `viewBox="0 0 120.0 120.0"`) {
		t.Errorf("unexpected viewBox:\n%s", out)
	}
	// Five occupied cells, plus the background rect.
	if got := strings.Count(out, "<rect"); got != 6 {
		t.Errorf("rect count = %d, want 6", got)
	}
	// Clue number on the origin cell.
	if !strings.Contains(out, ">1</text>") {
		t.Error("output missing clue number")
	}
}

func TestRenderSVGLettersHiddenByDefault(t *testing.T) {
	out := string(RenderSVG(samplePuzzle()))
	for _, letter := range []string{">A<", ">R<", ">C<", ">N<", ">T<"} {
		if strings.Contains(out, letter) {
			t.Errorf("default render leaked letter %s", letter)
		}
	}
}

func TestRenderSVGWithLetters(t *testing.T) {
	out := string(RenderSVG(samplePuzzle(), WithLetters()))
	for _, letter := range []string{">A<", ">R<", ">C<", ">N<", ">T<"} {
		if !strings.Contains(out, letter) {
			t.Errorf("letter render missing %s", letter)
		}
	}
}

func TestRenderSVGCellSize(t *testing.T) {
	out := string(RenderSVG(samplePuzzle(), WithCellSize(10)))
	if !strings.Contains(out, `viewBox="0 0 30.0 30.0"`) {
		t.Errorf("cell size option not applied:\n%s", out)
	}
}
