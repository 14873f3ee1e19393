package bubbletea_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/readlog"
	bt "github.com/fwojciec/readlog/bubbletea"
	"github.com/fwojciec/readlog/goldmark"
	"github.com/fwojciec/readlog/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	book := readlog.Book{Title: "Dune", Review: "**great**"}
	m := bt.New(book, nopSave, readlog.DefaultTheme())

	assert.Equal(t, "**great**", m.Value())
	assert.False(t, m.Dirty())
	assert.False(t, m.Previewing())
	assert.Equal(t, bt.PreviewHTML, m.Mode())
	assert.NoError(t, m.Err())
	assert.Equal(t, "Initializing...", m.View())
}

func TestModel_Update(t *testing.T) {
	t.Parallel()

	t.Run("window size sizes panes", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, "", nopSave)
		assert.Equal(t, 80, m.Viewport.Width)
		assert.Equal(t, 20, m.Viewport.Height) // 24 - status(1) - help(1) - newlines(2)

		m = updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
		assert.Equal(t, 100, m.Viewport.Width)
		assert.Equal(t, 36, m.Viewport.Height)
	})

	t.Run("status line shows title and saved state", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, "ok", nopSave)
		view := m.View()
		assert.Contains(t, view, "Dune")
		assert.Contains(t, view, "2 chars")
		assert.Contains(t, view, "saved")
	})

	t.Run("status line counts graphemes", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, "👍🏽é", nopSave)
		assert.Contains(t, m.View(), "2 chars")
	})

	t.Run("typing marks review modified", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, "ok", nopSave)
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})

		assert.Equal(t, "ok!", m.Value())
		assert.True(t, m.Dirty())
		assert.Contains(t, m.View(), "modified")
	})

	t.Run("tab toggles preview", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, "**great** <3", nopSave)
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyTab})

		require.True(t, m.Previewing())
		assert.False(t, m.Input.Focused())
		assert.Equal(t, "<p><strong>great</strong> &lt;3</p>", bt.Preview(m))
		assert.Contains(t, m.View(), "<strong>great</strong>")
		assert.Contains(t, m.View(), "preview: html")

		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.False(t, m.Previewing())
		assert.True(t, m.Input.Focused())
	})

	t.Run("typing is ignored while previewing", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, "ok", nopSave)
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyTab})
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

		assert.Equal(t, "ok", m.Value())
	})

	t.Run("html preview matches saved render", func(t *testing.T) {
		t.Parallel()

		review := "# Verdict\n\n- *pace*\n- ~~plot~~\n\n> quote"
		m := initModel(t, review, nopSave)
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyTab})

		assert.Equal(t, markdown.Render(review), bt.Preview(m))
	})

	t.Run("ctrl+p cycles preview mode", func(t *testing.T) {
		t.Parallel()

		review := "# Verdict\n\nGood."
		m := initModel(t, review, nopSave)
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyTab})
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})

		assert.Equal(t, bt.PreviewTerminal, m.Mode())
		assert.Equal(t, goldmark.Render(review, 80, readlog.DefaultTheme()), bt.Preview(m))
		assert.Contains(t, m.View(), "preview: terminal")

		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
		assert.Equal(t, bt.PreviewHTML, m.Mode())
	})

	t.Run("ctrl+s on clean review does nothing", func(t *testing.T) {
		t.Parallel()

		called := false
		m := initModel(t, "ok", func(context.Context, string) error {
			called = true
			return nil
		})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

		assert.Nil(t, cmd)
		assert.False(t, called)
	})

	t.Run("ctrl+s saves current text", func(t *testing.T) {
		t.Parallel()

		var got string
		m := initModel(t, "ok", func(_ context.Context, review string) error {
			got = review
			return nil
		})
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
		m = updated.(bt.Model)
		require.NotNil(t, cmd)
		assert.Contains(t, m.View(), "saving...")

		msg := cmd()
		saved, ok := msg.(bt.SavedMsg)
		require.True(t, ok)
		assert.Equal(t, "ok!", saved.Review)
		assert.Equal(t, "ok!", got)

		m = updateModel(t, m, msg)
		assert.False(t, m.Dirty())
		assert.NoError(t, m.Err())
		assert.Contains(t, m.View(), "saved")
	})

	t.Run("save receives the program context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		m := initModel(t, "ok", func(ctx context.Context, _ string) error {
			return ctx.Err()
		})
		m = bt.WithContext(m, ctx)
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
		require.NotNil(t, cmd)
		cancel()

		saved, ok := cmd().(bt.SavedMsg)
		require.True(t, ok)
		assert.ErrorIs(t, saved.Err, context.Canceled)
	})

	t.Run("failed save keeps review dirty", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, "ok", nopSave)
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
		m = updateModel(t, m, bt.SavedMsg{Review: "ok!", Err: errors.New("disk full")})

		assert.True(t, m.Dirty())
		assert.EqualError(t, m.Err(), "disk full")
		assert.Contains(t, m.View(), "save failed: disk full")
	})

	t.Run("esc and ctrl+c quit", func(t *testing.T) {
		t.Parallel()

		for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
			m := initModel(t, "", nopSave)
			_, cmd := m.Update(tea.KeyMsg{Type: k})
			require.NotNil(t, cmd)
			_, isQuit := cmd().(tea.QuitMsg)
			assert.True(t, isQuit)
		}
	})
}

func TestModel_Teatest(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		saved string
	)
	save := func(_ context.Context, review string) error {
		mu.Lock()
		defer mu.Unlock()
		saved = review
		return nil
	}

	book := readlog.Book{ID: 1, Title: "Piranesi", Author: "Susanna Clarke"}
	m := bt.New(book, save, readlog.DefaultTheme())
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	tm.Type("lovely")
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("modified"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("saved"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	final, ok := fm.(bt.Model)
	require.True(t, ok)
	assert.Equal(t, "lovely", final.Value())
	assert.False(t, final.Dirty())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "lovely", saved)
}
