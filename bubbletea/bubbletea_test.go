package bubbletea_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/readlog"
	bt "github.com/fwojciec/readlog/bubbletea"
	"github.com/stretchr/testify/require"
)

// initModel creates an editor for review and sends a WindowSizeMsg to
// initialize the panes.
func initModel(t *testing.T, review string, save bt.SaveFunc) bt.Model {
	t.Helper()
	book := readlog.Book{ID: 1, Title: "Dune", Author: "Frank Herbert", Review: review}
	m := bt.New(book, save, readlog.DefaultTheme())
	return updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// nopSave is a save function that does nothing.
func nopSave(context.Context, string) error {
	return nil
}
