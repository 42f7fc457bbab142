package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pmeier/crossgrid/pkg/crossword"
	"github.com/pmeier/crossgrid/pkg/io"
	"github.com/pmeier/crossgrid/pkg/observability"
	"github.com/pmeier/crossgrid/pkg/wordlist"
)

// defaultAttempts is the generation attempt budget when --attempts is not given.
const defaultAttempts = 50

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output   string // output file path; derived from input when empty
	attempts int    // attempt budget for the placement search
	seed     uint64 // seed for reproducible runs; random when unset
	seeded   bool   // whether --seed was provided
}

// newGenerateCmd creates the generate command for building puzzles from
// wordlist files (.toml, .csv, or .txt).
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{attempts: defaultAttempts}

	cmd := &cobra.Command{
		Use:   "generate [wordlist]",
		Short: "Generate a puzzle from a wordlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seeded = cmd.Flags().Changed("seed")
			return runGenerate(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: wordlist name with .json)")
	cmd.Flags().IntVar(&opts.attempts, "attempts", opts.attempts, "number of placement attempts")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for reproducible generation")

	return cmd
}

// runGenerate loads the wordlist, runs the placement search, and writes the
// puzzle JSON.
func runGenerate(ctx context.Context, input string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Generating puzzle from %s", input)

	entries, err := wordlist.Load(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d entries", len(entries))

	var rng *rand.Rand
	if opts.seeded {
		logger.Debugf("Using seed %d", opts.seed)
		rng = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}

	prog := newProgress(logger)
	observability.Generator().OnGenerateStart(ctx, len(entries), opts.attempts)
	puzzle := crossword.NewGenerator(opts.attempts, rng).Generate(entries)
	observability.Generator().OnGenerateComplete(ctx,
		len(puzzle.Words), len(puzzle.Unplaced), time.Since(prog.start))
	prog.done(placementSummary(puzzle))

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
	}
	if err := io.ExportJSON(puzzle, output); err != nil {
		return err
	}

	printSuccess("Generated %dx%d puzzle", puzzle.Bounds.Width, puzzle.Bounds.Height)
	printStats(len(puzzle.Words), len(puzzle.Unplaced), false)
	printFile(output)
	if len(puzzle.Unplaced) > 0 {
		printWarning("Could not place: %s", strings.Join(puzzle.Unplaced, ", "))
	}
	printNextStep("Render it", "crossgrid render "+output)
	return nil
}

func placementSummary(p *crossword.Puzzle) string {
	if len(p.Unplaced) == 0 {
		return "Placed all words"
	}
	return fmt.Sprintf("Placed %d of %d words", len(p.Words), len(p.Words)+len(p.Unplaced))
}
