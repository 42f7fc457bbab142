package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pmeier/crossgrid/pkg/crossword"
	"github.com/pmeier/crossgrid/pkg/io"
	"github.com/pmeier/crossgrid/pkg/render/text"
)

// newViewCmd creates the view command for browsing a puzzle in the terminal.
func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a puzzle interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzle, err := io.ImportJSON(args[0])
			if err != nil {
				return err
			}

			model := newViewModel(args[0], puzzle)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// viewModel is the bubbletea model for the puzzle viewer.
type viewModel struct {
	path        string
	puzzle      *crossword.Puzzle
	showLetters bool
	showClues   bool
}

func newViewModel(path string, p *crossword.Puzzle) viewModel {
	return viewModel{path: path, puzzle: p, showClues: true}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "l":
			m.showLetters = !m.showLetters
		case "c":
			m.showClues = !m.showClues
		}
	}
	return m, nil
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Crossgrid"))
	b.WriteString(StyleDim.Render("  " + m.path))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("l letters  c clues  q quit"))
	b.WriteString("\n\n")

	b.WriteString(text.Render(m.puzzle, text.Options{
		ShowLetters: m.showLetters,
		ShowClues:   m.showClues,
	}))

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %dx%d · %d words",
		m.puzzle.Bounds.Width, m.puzzle.Bounds.Height, len(m.puzzle.Words))))
	b.WriteString("\n")

	return b.String()
}
