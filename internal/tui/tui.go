package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program around the given board model.
// The program uses the alternate screen buffer for a clean TUI experience.
func NewProgram(m Model, opts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, opts...)

	return tea.NewProgram(m, allOpts...)
}

// Run creates and runs a TUI program, blocking until it exits.
// It returns the final model so callers can report how far the knight got.
func Run(m Model, opts ...tea.ProgramOption) (Model, error) {
	final, err := NewProgram(m, opts...).Run()
	if err != nil {
		return m, fmt.Errorf("TUI error: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return m, nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
// Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
