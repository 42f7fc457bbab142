package crossword

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// checkStructure asserts the placement invariants that must hold for any
// puzzle regardless of seed or ordering: letters agree at every coordinate,
// no word run extends past its span, and non-intersecting cells have no
// perpendicular neighbors.
func checkStructure(t *testing.T, p *Puzzle) {
	t.Helper()

	// Coordinates covered per direction, to tell intersections apart from
	// illegal adjacency.
	covered := make(map[Coord]map[Direction]bool)
	for _, w := range p.Words {
		for i := range []rune(w.Word) {
			pos := w.Origin.Step(w.Direction, i)
			if covered[pos] == nil {
				covered[pos] = make(map[Direction]bool)
			}
			covered[pos][w.Direction] = true
		}
	}

	for _, w := range p.Words {
		word := []rune(w.Word)

		if _, ok := p.Grid[w.Origin.Step(w.Direction, -1)]; ok {
			t.Errorf("%s: cell before span start is occupied", w.Word)
		}
		if _, ok := p.Grid[w.Origin.Step(w.Direction, len(word))]; ok {
			t.Errorf("%s: cell after span end is occupied", w.Word)
		}

		perp := w.Direction.perpendicular()
		for i, r := range word {
			pos := w.Origin.Step(w.Direction, i)
			cell, ok := p.Grid[pos]
			if !ok {
				t.Fatalf("%s: no cell at %+v", w.Word, pos)
			}
			if cell.Letter != r {
				t.Errorf("%s: letter at %+v = %q, want %q", w.Word, pos, cell.Letter, r)
			}
			if covered[pos][perp] {
				continue // explicit intersection
			}
			if _, ok := p.Grid[pos.Step(perp, -1)]; ok {
				t.Errorf("%s: non-intersecting cell %+v has occupied perpendicular neighbor", w.Word, pos)
			}
			if _, ok := p.Grid[pos.Step(perp, 1)]; ok {
				t.Errorf("%s: non-intersecting cell %+v has occupied perpendicular neighbor", w.Word, pos)
			}
		}
	}
}

// checkNumbering asserts clue numbers are 1..N, strictly increasing with
// the reading order of distinct origins, shared between words with the same
// origin, and stamped onto the origin cells.
func checkNumbering(t *testing.T, p *Puzzle) {
	t.Helper()

	byOrigin := make(map[Coord]int)
	for _, w := range p.Words {
		if w.Number < 1 {
			t.Errorf("%s: number = %d, want >= 1", w.Word, w.Number)
		}
		if n, ok := byOrigin[w.Origin]; ok && n != w.Number {
			t.Errorf("origin %+v numbered both %d and %d", w.Origin, n, w.Number)
		}
		byOrigin[w.Origin] = w.Number
		if cell := p.Grid[w.Origin]; cell == nil || cell.Number != w.Number {
			t.Errorf("%s: origin cell not stamped with number %d", w.Word, w.Number)
		}
	}

	for a, na := range byOrigin {
		for b, nb := range byOrigin {
			before := a.Row < b.Row || (a.Row == b.Row && a.Col < b.Col)
			if before && na >= nb {
				t.Errorf("origin %+v (number %d) reads before %+v (number %d)", a, na, b, nb)
			}
		}
	}
}

func checkBounds(t *testing.T, p *Puzzle) {
	t.Helper()

	dense := p.Project()
	if len(dense) != p.Bounds.Height {
		t.Errorf("projection rows = %d, want %d", len(dense), p.Bounds.Height)
	}
	for _, row := range dense {
		if len(row) != p.Bounds.Width {
			t.Errorf("projection cols = %d, want %d", len(row), p.Bounds.Width)
		}
	}
}

func TestGenerateAccounting(t *testing.T) {
	entries := []Entry{
		{Word: "ocean", Clue: "big water"},
		{Word: "canoe", Clue: "small boat"},
		{Word: "anchor"},
		{Word: "ocean"}, // duplicate, dropped
		{Word: "x"},     // too short, dropped
		{Word: "harbor"},
		{Word: "tide"},
	}
	p := NewGenerator(20, seeded(7)).Generate(entries)

	distinct := len(Normalize(entries))
	if got := len(p.Words) + len(p.Unplaced); got != distinct {
		t.Errorf("placed + unplaced = %d, want %d", got, distinct)
	}
	checkStructure(t, p)
	checkNumbering(t, p)
	checkBounds(t, p)
}

func TestGenerateDisjointWords(t *testing.T) {
	// No shared letters, so only one word can ever be placed.
	p := NewGenerator(10, seeded(1)).Generate([]Entry{
		{Word: "dog"},
		{Word: "fire"},
	})
	if len(p.Words) != 1 {
		t.Fatalf("placed = %d, want 1", len(p.Words))
	}
	if len(p.Unplaced) != 1 {
		t.Fatalf("unplaced = %d, want 1", len(p.Unplaced))
	}
}

func TestGenerateSharedLetter(t *testing.T) {
	p := NewGenerator(10, seeded(3)).Generate([]Entry{
		{Word: "rat"},
		{Word: "car"},
	})
	if len(p.Words) != 2 {
		t.Fatalf("placed = %d, want 2", len(p.Words))
	}
	if len(p.Unplaced) != 0 {
		t.Fatalf("unplaced = %v, want none", p.Unplaced)
	}

	// The two spans must share at least one coordinate.
	spans := make([]map[Coord]bool, 2)
	for i, w := range p.Words {
		spans[i] = make(map[Coord]bool)
		for j := range []rune(w.Word) {
			spans[i][w.Origin.Step(w.Direction, j)] = true
		}
	}
	shared := 0
	for c := range spans[0] {
		if spans[1][c] {
			shared++
		}
	}
	if shared == 0 {
		t.Error("placed words do not intersect")
	}
	checkStructure(t, p)
}

func TestGenerateEmptyInput(t *testing.T) {
	p := NewGenerator(5, seeded(1)).Generate(nil)
	if len(p.Words) != 0 {
		t.Errorf("words = %d, want 0", len(p.Words))
	}
	if len(p.Grid) != 0 {
		t.Errorf("grid cells = %d, want 0", len(p.Grid))
	}
	if p.Bounds != (Bounds{}) {
		t.Errorf("bounds = %+v, want zero value", p.Bounds)
	}
	if len(p.Unplaced) != 0 {
		t.Errorf("unplaced = %v, want none", p.Unplaced)
	}
}

func TestGenerateNothingSurvives(t *testing.T) {
	// Every entry fails normalization; the raw trimmed non-empty words come
	// back as unplaced instead of vanishing.
	p := NewGenerator(5, seeded(1)).Generate([]Entry{
		{Word: "   "},
		{Word: "x"},
		{Word: "!!"},
	})
	if len(p.Words) != 0 {
		t.Fatalf("words = %d, want 0", len(p.Words))
	}
	want := []string{"x", "!!"}
	if !reflect.DeepEqual(p.Unplaced, want) {
		t.Errorf("unplaced = %v, want %v", p.Unplaced, want)
	}
}

func TestGenerateSingleWord(t *testing.T) {
	p := NewGenerator(1, seeded(9)).Generate([]Entry{{Word: "ocean", Clue: "clue"}})
	if len(p.Words) != 1 {
		t.Fatalf("placed = %d, want 1", len(p.Words))
	}
	w := p.Words[0]
	if w.Origin != (Coord{}) {
		t.Errorf("origin = %+v, want {0 0}", w.Origin)
	}
	if w.Number != 1 {
		t.Errorf("number = %d, want 1", w.Number)
	}
	if len(p.Unplaced) != 0 {
		t.Errorf("unplaced = %v, want none", p.Unplaced)
	}
	if len(p.Grid) != 5 {
		t.Errorf("grid cells = %d, want 5", len(p.Grid))
	}
	checkBounds(t, p)
}

func TestGenerateSeededReproducible(t *testing.T) {
	// Candidate enumeration walks a map, so reproducibility depends on the
	// tie-break ordering. Repeat enough times that unstable ordering would
	// be caught, not lucked past.
	entries := []Entry{
		{Word: "puzzle"}, {Word: "zipper"}, {Word: "east"},
		{Word: "tonic"}, {Word: "inlet"}, {Word: "crate"},
	}
	want := NewGenerator(30, seeded(42)).Generate(entries)

	for i := 0; i < 50; i++ {
		got := NewGenerator(30, seeded(42)).Generate(entries)
		if !reflect.DeepEqual(got.Words, want.Words) {
			t.Fatalf("run %d: same seed produced different placements:\n%+v\nvs\n%+v",
				i, got.Words, want.Words)
		}
		if !reflect.DeepEqual(got.Unplaced, want.Unplaced) {
			t.Fatalf("run %d: same seed produced different unplaced lists", i)
		}
		if got.Bounds != want.Bounds {
			t.Fatalf("run %d: bounds %+v != %+v for same seed", i, got.Bounds, want.Bounds)
		}
	}
}

func TestGenerateMoreAttemptsNeverWorse(t *testing.T) {
	// With an identical seed the first attempt is identical, and keep-best
	// only ever improves on it, so a larger budget can never leave more
	// words unplaced.
	entries := []Entry{
		{Word: "quartz"}, {Word: "zigzag"}, {Word: "jukebox"},
		{Word: "sphinx"}, {Word: "gnome"}, {Word: "lymph"},
		{Word: "crypt"}, {Word: "fjord"},
	}
	small := NewGenerator(1, seeded(11)).Generate(entries)
	large := NewGenerator(64, seeded(11)).Generate(entries)

	if len(large.Unplaced) > len(small.Unplaced) {
		t.Errorf("unplaced with 64 attempts = %d, with 1 attempt = %d; want no worse",
			len(large.Unplaced), len(small.Unplaced))
	}
	checkStructure(t, small)
	checkStructure(t, large)
}

func TestGenerateAttemptBudgetFloor(t *testing.T) {
	// A non-positive budget still runs the deterministic first attempt.
	p := NewGenerator(0, seeded(5)).Generate([]Entry{{Word: "hello"}})
	if len(p.Words) != 1 {
		t.Errorf("placed = %d, want 1", len(p.Words))
	}
}

func TestGenerateDenseSet(t *testing.T) {
	// A vowel-heavy set where everything interlocks; all invariants must
	// hold on the winning grid.
	entries := []Entry{
		{Word: "alone"}, {Word: "nacre"}, {Word: "ocean"},
		{Word: "canal"}, {Word: "eland"}, {Word: "llano"},
		{Word: "anode"}, {Word: "clean"},
	}
	p := NewGenerator(80, seeded(23)).Generate(entries)

	if len(p.Words) < 2 {
		t.Fatalf("placed = %d, want at least 2", len(p.Words))
	}
	if got := len(p.Words) + len(p.Unplaced); got != 8 {
		t.Errorf("placed + unplaced = %d, want 8", got)
	}
	checkStructure(t, p)
	checkNumbering(t, p)
	checkBounds(t, p)
}
