package crossword

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// Generator runs the multi-attempt placement search. It is not safe for
// concurrent use: the random source is shared across attempts.
type Generator struct {
	maxAttempts int
	rng         *rand.Rand
}

// NewGenerator creates a search driver with the given attempt budget.
// A budget below one is treated as one, so the deterministic first attempt
// always runs. If rng is nil a randomly seeded source is used; pass a
// seeded *rand.Rand for reproducible layouts, which covers every random
// choice the search makes including the first word's direction.
func NewGenerator(maxAttempts int, rng *rand.Rand) *Generator {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{maxAttempts: maxAttempts, rng: rng}
}

// Generate arranges as many entries as possible into a connected grid.
//
// Entries are normalized first (see [Normalize]). Attempt 0 places the
// survivors in order of descending canonical length - long words are the
// hardest to fit late and should claim central positions early. Every later
// attempt shuffles that ordering. An attempt becomes the new best only when
// it places strictly more words than the current best, so the first attempt
// to reach a given placed count wins ties. The search stops early when an
// attempt places every word.
//
// Expected failure modes are data, not errors: words that fit nowhere in
// the winning attempt appear in Puzzle.Unplaced under their display label,
// and an input with no surviving entries yields an empty puzzle whose
// Unplaced lists every non-empty trimmed raw word.
func (g *Generator) Generate(entries []Entry) *Puzzle {
	normalized := Normalize(entries)
	if len(normalized) == 0 {
		return emptyPuzzle(entries)
	}

	ordered := slices.Clone(normalized)
	slices.SortStableFunc(ordered, func(a, b NormalizedEntry) int {
		return len([]rune(b.Word)) - len([]rune(a.Word))
	})

	var best *attempt
	for i := 0; i < g.maxAttempts; i++ {
		if i > 0 {
			g.rng.Shuffle(len(ordered), func(x, y int) {
				ordered[x], ordered[y] = ordered[y], ordered[x]
			})
		}
		a := runAttempt(ordered, g.rng, i > 0)
		if best == nil || a.placed() > best.placed() {
			best = a
		}
		if best.placed() == len(ordered) {
			break
		}
	}

	assignNumbers(best.words, best.grid)

	unplaced := best.unplaced
	if unplaced == nil {
		unplaced = []string{}
	}
	return &Puzzle{
		Words:    best.words,
		Grid:     best.grid,
		Bounds:   ComputeBounds(best.grid),
		Unplaced: unplaced,
	}
}

// emptyPuzzle is the degenerate result for inputs with no surviving
// normalized entries: nothing placed, every non-empty trimmed raw word
// reported as unplaced.
func emptyPuzzle(entries []Entry) *Puzzle {
	unplaced := []string{}
	for _, e := range entries {
		if w := strings.TrimSpace(e.Word); w != "" {
			unplaced = append(unplaced, w)
		}
	}
	return &Puzzle{
		Words:    []PlacedWord{},
		Grid:     make(Grid),
		Unplaced: unplaced,
	}
}
