package crossword

// candidate is a prospective placement: an origin, a direction, and the
// word indices that land on already-occupied cells. Candidates are produced
// and consumed per word per attempt and never outlive either.
type candidate struct {
	origin        Coord
	dir           Direction
	intersections []int
}

// score ranks a candidate. Overlap dominates: every intersection is worth
// 100 points. A much weaker term biases placements toward the origin so the
// grid stays compact. Equal scores are ordered by (row, col, direction) of
// the candidate at the consumer.
func (c candidate) score() float64 {
	return 100*float64(len(c.intersections)) - 0.1*float64(abs(c.origin.Row)+abs(c.origin.Col))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// findCandidates enumerates every legal placement of word on a non-empty
// grid. Every occupied cell whose letter matches some rune of the word
// anchors a hypothesis per direction: the origin is chosen so that the
// matching rune lands on that cell. Each hypothesis is validated along the
// full span and deduplicated by (origin, direction).
//
// Cost is proportional to occupied-cell count times word length, fine for
// the tens-to-low-hundreds of cells these grids reach.
func findCandidates(g Grid, word []rune) []candidate {
	type key struct {
		origin Coord
		dir    Direction
	}
	seen := make(map[key]struct{})
	var out []candidate

	for pos, cell := range g {
		for i, r := range word {
			if cell.Letter != r {
				continue
			}
			for _, dir := range []Direction{DirectionAcross, DirectionDown} {
				origin := pos.Step(dir, -i)
				k := key{origin: origin, dir: dir}
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				if inter, ok := validatePlacement(g, origin, dir, word); ok {
					out = append(out, candidate{origin: origin, dir: dir, intersections: inter})
				}
			}
		}
	}
	return out
}

// validatePlacement checks a hypothesized placement along its full span and
// returns the intersection indices if it is legal.
//
// The cell before the span start and the cell after the span end must be
// unoccupied, so two words can never silently concatenate into one run.
// Along the span, an occupied cell must match the word's rune there (and is
// recorded as an intersection); an unoccupied cell must have both
// perpendicular neighbors unoccupied, so the new word cannot create an
// adjacent letter run that is not an explicit intersection. A placement
// with no intersections at all is rejected - after the first word, every
// word must cross an existing letter.
func validatePlacement(g Grid, origin Coord, dir Direction, word []rune) ([]int, bool) {
	if _, occupied := g[origin.Step(dir, -1)]; occupied {
		return nil, false
	}
	if _, occupied := g[origin.Step(dir, len(word))]; occupied {
		return nil, false
	}

	perp := dir.perpendicular()
	var intersections []int
	for i, r := range word {
		pos := origin.Step(dir, i)
		if cell, occupied := g[pos]; occupied {
			if cell.Letter != r {
				return nil, false
			}
			intersections = append(intersections, i)
			continue
		}
		if _, occupied := g[pos.Step(perp, -1)]; occupied {
			return nil, false
		}
		if _, occupied := g[pos.Step(perp, 1)]; occupied {
			return nil, false
		}
	}

	if len(intersections) == 0 {
		return nil, false
	}
	return intersections, true
}
