package crossword

import "slices"

// assignNumbers stamps reading-order clue numbers onto the winning
// attempt's words and grid. Distinct origins are sorted by row, then
// column, and numbered 1..N in that order; an across and a down word
// starting at the same coordinate share a number. The number is also
// written to the origin's cell for renderers.
func assignNumbers(words []PlacedWord, grid Grid) {
	origins := make([]Coord, 0, len(words))
	seen := make(map[Coord]struct{}, len(words))
	for _, w := range words {
		if _, dup := seen[w.Origin]; dup {
			continue
		}
		seen[w.Origin] = struct{}{}
		origins = append(origins, w.Origin)
	}

	slices.SortFunc(origins, func(a, b Coord) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})

	numbers := make(map[Coord]int, len(origins))
	for i, o := range origins {
		numbers[o] = i + 1
		if cell, ok := grid[o]; ok {
			cell.Number = i + 1
		}
	}
	for i := range words {
		words[i].Number = numbers[words[i].Origin]
	}
}
