package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pmeier/crossgrid/pkg/cache"
	"github.com/pmeier/crossgrid/pkg/crossword"
	"github.com/pmeier/crossgrid/pkg/io"
	"github.com/pmeier/crossgrid/pkg/render/nodelink"
	"github.com/pmeier/crossgrid/pkg/render/svg"
	"github.com/pmeier/crossgrid/pkg/render/text"
)

const (
	vizGrid     = "grid"     // the puzzle grid itself
	vizNodelink = "nodelink" // word-intersection graph

	// renderTTL bounds how long rendered artifacts stay in the local cache.
	renderTTL = 7 * 24 * time.Hour
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file path; derived from input when empty
	vizType  string  // visualization type: "grid" or "nodelink"
	format   string  // output format: "svg", "png", "text", "dot"
	letters  bool    // include solution letters
	clues    bool    // include clue lists (text format)
	cellSize float64 // cell size in SVG units (grid SVG)
	detailed bool    // show origin and length in nodelink labels
	noCache  bool    // bypass the render cache
}

// newRenderCmd creates the render command for producing puzzle output.
// It supports the grid itself (text or SVG) and a node-link diagram of
// word intersections (DOT, SVG, or PNG via Graphviz).
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		vizType:  vizGrid,
		format:   "svg",
		cellSize: 40,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a puzzle to text, SVG, or a node-link diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRenderOpts(&opts); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.vizType, "type", "t", opts.vizType, "visualization type: grid (default), nodelink")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), text, png, dot")
	cmd.Flags().BoolVar(&opts.letters, "letters", false, "include solution letters")
	cmd.Flags().BoolVar(&opts.clues, "clues", false, "include clue lists (text format)")
	cmd.Flags().Float64Var(&opts.cellSize, "cell-size", opts.cellSize, "cell size in SVG units")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show detailed information (nodelink)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

// validFormats maps each visualization type to its supported formats.
var validFormats = map[string]map[string]bool{
	vizGrid:     {"svg": true, "text": true},
	vizNodelink: {"svg": true, "png": true, "dot": true},
}

func validateRenderOpts(opts *renderOpts) error {
	formats, ok := validFormats[opts.vizType]
	if !ok {
		return fmt.Errorf("invalid type: %s (must be 'grid' or 'nodelink')", opts.vizType)
	}
	if !formats[opts.format] {
		return fmt.Errorf("invalid format for %s: %s", opts.vizType, opts.format)
	}
	return nil
}

// runRender loads the puzzle and renders it, serving from the local render
// cache when the input and options are unchanged.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	raw, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	c, err := renderCache(opts.noCache)
	if err != nil {
		logger.Warnf("Render cache unavailable: %v", err)
		c = cache.NewNullCache()
	}
	defer c.Close()

	key := cache.ArtifactKey(cache.Hash(raw), renderVariant(opts))

	data, cached, err := c.Get(ctx, key)
	if err != nil || !cached {
		puzzle, err := io.Unmarshal(raw)
		if err != nil {
			return err
		}
		logger.Debugf("Loaded puzzle: %d words, %dx%d grid",
			len(puzzle.Words), puzzle.Bounds.Width, puzzle.Bounds.Height)

		prog := newProgress(logger)
		data, err = renderPuzzle(puzzle, opts)
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Rendered %s/%s", opts.vizType, opts.format))

		if err := c.Set(ctx, key, data, renderTTL); err != nil {
			logger.Debugf("Cache write failed: %v", err)
		}
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + renderExt(opts.format)
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return err
	}

	printSuccess("Rendered %s", output)
	printDetail("%s/%s", opts.vizType, opts.format)
	if cached {
		printDetail("served from cache")
	}
	return nil
}

// renderVariant encodes the options that change the rendered bytes, so each
// combination gets its own cache entry.
func renderVariant(opts *renderOpts) string {
	return fmt.Sprintf("%s-%s-letters=%t-clues=%t-cell=%g-detailed=%t",
		opts.vizType, opts.format, opts.letters, opts.clues, opts.cellSize, opts.detailed)
}

func renderExt(format string) string {
	if format == "text" {
		return ".txt"
	}
	return "." + format
}

// renderPuzzle dispatches to the appropriate renderer.
func renderPuzzle(p *crossword.Puzzle, opts *renderOpts) ([]byte, error) {
	if opts.vizType == vizNodelink {
		dot := nodelink.ToDOT(p, nodelink.Options{Detailed: opts.detailed})
		switch opts.format {
		case "dot":
			return []byte(dot), nil
		case "svg":
			return nodelink.RenderSVG(dot)
		case "png":
			return nodelink.RenderPNG(dot)
		}
	}

	switch opts.format {
	case "text":
		return []byte(text.Render(p, text.Options{
			ShowLetters: opts.letters,
			ShowClues:   opts.clues,
		})), nil
	case "svg":
		svgOpts := []svg.SVGOption{svg.WithCellSize(opts.cellSize)}
		if opts.letters {
			svgOpts = append(svgOpts, svg.WithLetters())
		}
		return svg.RenderSVG(p, svgOpts...), nil
	}
	return nil, fmt.Errorf("unknown format: %s", opts.format)
}

// renderCache opens the local file cache, or a null cache when disabled.
func renderCache(disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the render cache directory (~/.cache/crossgrid on Linux).
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "crossgrid"), nil
}
