// Package nodelink renders the word-intersection graph of a puzzle.
//
// Each placed word becomes a node labeled with its clue number and
// direction; an edge connects two words wherever they share a grid cell.
// The rendering makes it easy to see how densely connected a generated
// puzzle is and which words carry the most crossings.
package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/pmeier/crossgrid/pkg/crossword"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes origin coordinates and word lengths in node labels.
	// When false, only the clue number, direction, and word are shown.
	Detailed bool
}

// ToDOT converts a puzzle to Graphviz DOT format for node-link
// visualization. The resulting DOT string can be rendered using
// [RenderSVG] or [RenderPNG].
func ToDOT(p *crossword.Puzzle, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("\n")

	for _, w := range p.Words {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeID(w), fmtLabel(w, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, e := range intersections(p) {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.a, e.b)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(w crossword.PlacedWord) string {
	return fmt.Sprintf("%d-%s", w.Number, w.Direction)
}

func fmtLabel(w crossword.PlacedWord, detailed bool) string {
	label := fmt.Sprintf("%d %s\n%s", w.Number, w.Direction, w.Word)
	if detailed {
		label += fmt.Sprintf("\n(%d,%d) len %d",
			w.Origin.Row, w.Origin.Col, len([]rune(w.Word)))
	}
	return label
}

type edge struct {
	a, b string
}

// intersections finds all word pairs sharing at least one grid cell.
// Each pair appears once regardless of how the words cross.
func intersections(p *crossword.Puzzle) []edge {
	occupants := make(map[crossword.Coord][]int)
	for i, w := range p.Words {
		for j := range []rune(w.Word) {
			pos := w.Origin.Step(w.Direction, j)
			occupants[pos] = append(occupants[pos], i)
		}
	}

	seen := make(map[edge]bool)
	var edges []edge
	for _, words := range occupants {
		for i := 0; i < len(words); i++ {
			for j := i + 1; j < len(words); j++ {
				e := edge{
					a: nodeID(p.Words[words[i]]),
					b: nodeID(p.Words[words[j]]),
				}
				if !seen[e] {
					seen[e] = true
					edges = append(edges, e)
				}
			}
		}
	}
	return edges
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG, normalizeViewBox)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG, nil)
}

func renderFormat(dot string, format graphviz.Format, post func([]byte) []byte) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if post != nil {
		return post(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
