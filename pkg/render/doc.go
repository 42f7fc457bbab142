// Package render contains the puzzle renderers.
//
// Three visualizations are available as subpackages:
//
//   - text: monospace grid plus numbered clue lists, for terminals
//   - svg: scalable cell grid with clue numbers, for print and web
//   - nodelink: word-intersection graph via Graphviz, for inspecting
//     how densely a generated puzzle is connected
//
// All renderers consume a [crossword.Puzzle] and treat it as read-only.
//
// [crossword.Puzzle]: github.com/pmeier/crossgrid/pkg/crossword.Puzzle
package render
