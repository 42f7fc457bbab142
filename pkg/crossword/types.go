package crossword

// Direction is the orientation of a placed word.
type Direction int

const (
	// DirectionAcross runs left to right (increasing column).
	DirectionAcross Direction = iota
	// DirectionDown runs top to bottom (increasing row).
	DirectionDown
)

// String returns "across" or "down".
func (d Direction) String() string {
	if d == DirectionDown {
		return "down"
	}
	return "across"
}

// perpendicular returns the other direction.
func (d Direction) perpendicular() Direction {
	if d == DirectionAcross {
		return DirectionDown
	}
	return DirectionAcross
}

// Coord identifies a grid cell by integer row and column. Coordinates are
// unbounded in either direction; the first placed word starts at {0, 0} and
// the grid grows around it. Coord is a value type used directly as a map
// key - no formatted string keys anywhere.
type Coord struct {
	Row int
	Col int
}

// Step returns the coordinate n cells away from c along d.
// Negative n steps backwards.
func (c Coord) Step(d Direction, n int) Coord {
	if d == DirectionAcross {
		return Coord{Row: c.Row, Col: c.Col + n}
	}
	return Coord{Row: c.Row + n, Col: c.Col}
}

// Cell is one occupied grid coordinate. Number is 0 until the winning
// attempt is numbered, then holds the clue number of the word(s) that start
// at this coordinate.
type Cell struct {
	Letter rune
	Number int
}

// Grid is a sparse coordinate-to-cell mapping. At most one cell exists per
// coordinate and its letter never changes once set; placements crossing an
// occupied coordinate must match the letter already there.
type Grid map[Coord]*Cell

// Entry is a raw (word, clue) input pair. Word may contain any mix of case,
// whitespace and punctuation; normalization reduces it to a canonical
// uppercase letters-and-digits form before placement.
type Entry struct {
	Word string
	Clue string
}

// NormalizedEntry is an Entry that survived normalization. Word holds the
// canonical search key, Label the original trimmed text for display.
type NormalizedEntry struct {
	Word  string
	Label string
	Clue  string
}

// PlacedWord is one word committed to the grid. Number is 0 until the
// numbering phase runs on the winning attempt, then 1..N in reading order
// of distinct origins; an across and a down word sharing an origin share a
// number.
type PlacedWord struct {
	Word      string
	Label     string
	Clue      string
	Origin    Coord
	Direction Direction
	Number    int
}

// Bounds is the minimal axis-aligned rectangle containing all occupied
// coordinates. The zero value is the convention for an empty grid.
type Bounds struct {
	MinRow int
	MinCol int
	MaxRow int
	MaxCol int
	Width  int
	Height int
}

// Puzzle is the complete result of a generation run: the placed words, the
// winning grid, its bounds, and the display labels of words that could not
// be placed. Consumers (renderers, exporters, the HTTP API) treat it as
// read-only.
type Puzzle struct {
	Words    []PlacedWord
	Grid     Grid
	Bounds   Bounds
	Unplaced []string
}
