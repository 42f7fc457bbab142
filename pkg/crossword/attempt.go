package crossword

import (
	"cmp"
	"math/rand/v2"
	"slices"
)

// topCandidates is how many of the best-scoring candidates exploratory
// attempts choose among uniformly at random.
const topCandidates = 3

// attempt holds the state of one full placement pass: the words that made
// it onto the grid, the labels of those that did not, and the grid itself.
// Each attempt owns its grid exclusively; discarded attempts are dropped
// whole.
type attempt struct {
	words    []PlacedWord
	unplaced []string
	grid     Grid
}

// placed reports how many words this attempt fit onto the grid.
func (a *attempt) placed() int { return len(a.words) }

// runAttempt places entries one at a time into a fresh grid, in the given
// order. The first word starts at {0,0} in a direction chosen uniformly at
// random. Each later word gets its candidates enumerated and one committed:
// deterministic attempts always take the highest-scoring candidate,
// exploratory ones pick uniformly among the top three (fewer if fewer
// exist) to diversify layouts across restarts. A word with no legal
// candidate is recorded as unplaced and skipped for the rest of the
// attempt.
func runAttempt(entries []NormalizedEntry, rng *rand.Rand, exploratory bool) *attempt {
	a := &attempt{grid: make(Grid)}

	for i, e := range entries {
		word := []rune(e.Word)

		if i == 0 {
			dir := DirectionAcross
			if rng.IntN(2) == 1 {
				dir = DirectionDown
			}
			a.commit(e, Coord{}, dir, word)
			continue
		}

		cands := findCandidates(a.grid, word)
		if len(cands) == 0 {
			a.unplaced = append(a.unplaced, e.Label)
			continue
		}

		// Total order: findCandidates walks a map, so score ties must be
		// broken on candidate identity for seeded runs to reproduce.
		slices.SortFunc(cands, func(x, y candidate) int {
			if c := cmp.Compare(y.score(), x.score()); c != 0 {
				return c
			}
			if c := cmp.Compare(x.origin.Row, y.origin.Row); c != 0 {
				return c
			}
			if c := cmp.Compare(x.origin.Col, y.origin.Col); c != 0 {
				return c
			}
			return cmp.Compare(x.dir, y.dir)
		})

		pick := 0
		if exploratory {
			n := min(topCandidates, len(cands))
			pick = rng.IntN(n)
		}
		c := cands[pick]
		a.commit(e, c.origin, c.dir, word)
	}
	return a
}

// commit writes a word onto the grid and records it. Cells are created only
// where absent; letters on existing cells are never overwritten - the
// candidate validation already guaranteed they match.
func (a *attempt) commit(e NormalizedEntry, origin Coord, dir Direction, word []rune) {
	for i, r := range word {
		pos := origin.Step(dir, i)
		if _, occupied := a.grid[pos]; !occupied {
			a.grid[pos] = &Cell{Letter: r}
		}
	}
	a.words = append(a.words, PlacedWord{
		Word:      e.Word,
		Label:     e.Label,
		Clue:      e.Clue,
		Origin:    origin,
		Direction: dir,
	})
}
