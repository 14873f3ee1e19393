// Package bubbletea provides a Bubble Tea TUI for editing a book review with
// a live preview.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// SaveFunc persists the review text of the book being edited.
type SaveFunc func(ctx context.Context, review string) error

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. When ctx is cancelled the program quits. Saves started from the
// editor receive ctx.
func Run(ctx context.Context, m Model) error {
	m.ctx = ctx
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// SavedMsg reports the outcome of a save started with ctrl+s.
type SavedMsg struct {
	Review string
	Err    error
}
