// Package text renders puzzles as monospace text for terminal display.
package text

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pmeier/crossgrid/pkg/crossword"
)

// Options configures text rendering.
type Options struct {
	// ShowLetters fills cells with their solution letters.
	// When false, cells are rendered as empty boxes for solving.
	ShowLetters bool

	// ShowClues appends the numbered across/down clue lists below the grid.
	ShowClues bool
}

// Render produces a text rendering of the puzzle grid.
//
// Occupied cells show their letter (or "_" when letters are hidden),
// empty positions show ".". With ShowClues, the across and down clue
// lists follow the grid sorted by clue number.
func Render(p *crossword.Puzzle, opts Options) string {
	var b strings.Builder

	dense := p.Project()
	for _, row := range dense {
		for c, cell := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			switch {
			case cell == nil:
				b.WriteByte('.')
			case opts.ShowLetters:
				b.WriteRune(cell.Letter)
			default:
				b.WriteByte('_')
			}
		}
		b.WriteByte('\n')
	}

	if opts.ShowClues {
		writeClues(&b, p)
	}

	if len(p.Unplaced) > 0 {
		b.WriteByte('\n')
		b.WriteString("Unplaced: ")
		b.WriteString(strings.Join(p.Unplaced, ", "))
		b.WriteByte('\n')
	}

	return b.String()
}

func writeClues(b *strings.Builder, p *crossword.Puzzle) {
	across := wordsInDirection(p, crossword.DirectionAcross)
	down := wordsInDirection(p, crossword.DirectionDown)

	if len(across) > 0 {
		b.WriteByte('\n')
		b.WriteString("Across\n")
		writeClueList(b, across)
	}
	if len(down) > 0 {
		b.WriteByte('\n')
		b.WriteString("Down\n")
		writeClueList(b, down)
	}
}

func wordsInDirection(p *crossword.Puzzle, dir crossword.Direction) []crossword.PlacedWord {
	var words []crossword.PlacedWord
	for _, w := range p.Words {
		if w.Direction == dir {
			words = append(words, w)
		}
	}
	sort.Slice(words, func(i, j int) bool {
		return words[i].Number < words[j].Number
	})
	return words
}

func writeClueList(b *strings.Builder, words []crossword.PlacedWord) {
	for _, w := range words {
		clue := w.Clue
		if clue == "" {
			clue = w.Label
		}
		if clue == "" {
			clue = w.Word
		}
		fmt.Fprintf(b, "  %d. %s (%d)\n", w.Number, clue, len([]rune(w.Word)))
	}
}
