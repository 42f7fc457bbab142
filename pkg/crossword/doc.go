// Package crossword arranges (word, clue) pairs into a single connected
// crossword grid, maximizing letter intersections while enforcing standard
// crossword adjacency rules: words never concatenate into unintended runs,
// and a letter written to a coordinate is immutable for the rest of the
// attempt.
//
// The search is a best-effort heuristic with randomized restarts. Each
// attempt places words one at a time into a fresh sparse grid; the driver
// keeps the attempt that placed the most words and stops early when every
// word fits. The layout is not guaranteed to be globally optimal - the
// attempt budget is the only bound on the work performed.
//
// # Usage
//
//	gen := crossword.NewGenerator(50, nil)
//	puzzle := gen.Generate([]crossword.Entry{
//	    {Word: "ocean", Clue: "Large body of water"},
//	    {Word: "canoe", Clue: "Paddled boat"},
//	})
//	for _, w := range puzzle.Words {
//	    fmt.Println(w.Number, w.Direction, w.Label)
//	}
//
// Pass a seeded *rand.Rand as the second argument to NewGenerator for
// reproducible layouts. The package performs no I/O and is safe to call
// from any single goroutine; a Generator must not be shared concurrently.
package crossword
