// Package svg renders puzzles as scalable vector graphics.
package svg

import (
	"bytes"
	"fmt"

	"github.com/pmeier/crossgrid/pkg/crossword"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cellSize    float64
	showLetters bool
}

// WithCellSize sets the rendered size of one grid cell in SVG units.
// The default is 40.
func WithCellSize(size float64) SVGOption {
	return func(r *svgRenderer) { r.cellSize = size }
}

// WithLetters fills cells with their solution letters.
// By default cells are empty for solving, showing only clue numbers.
func WithLetters() SVGOption {
	return func(r *svgRenderer) { r.showLetters = true }
}

// RenderSVG renders the puzzle grid as an SVG document.
//
// Each occupied cell becomes a bordered square. Clue numbers appear in
// the top-left corner of their origin cells; solution letters are
// included only with [WithLetters].
func RenderSVG(p *crossword.Puzzle, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	cs := r.cellSize
	width := float64(p.Bounds.Width) * cs
	height := float64(p.Bounds.Height) * cs

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	buf.WriteString(`  <rect width="100%" height="100%" fill="white"/>` + "\n")

	dense := p.Project()
	for rowIdx, row := range dense {
		for colIdx, cell := range row {
			if cell == nil {
				continue
			}
			x := float64(colIdx) * cs
			y := float64(rowIdx) * cs

			fmt.Fprintf(&buf,
				`  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="white" stroke="black" stroke-width="1.5"/>`+"\n",
				x, y, cs, cs)

			if cell.Number != 0 {
				fmt.Fprintf(&buf,
					`  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.1f">%d</text>`+"\n",
					x+cs*0.08, y+cs*0.28, cs*0.25, cell.Number)
			}
			if r.showLetters {
				fmt.Fprintf(&buf,
					`  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.1f" text-anchor="middle">%c</text>`+"\n",
					x+cs/2, y+cs*0.72, cs*0.5, cell.Letter)
			}
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{cellSize: 40}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
