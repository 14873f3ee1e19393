package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/readlog"
	"github.com/fwojciec/readlog/goldmark"
	"github.com/fwojciec/readlog/markdown"
	"github.com/rivo/uniseg"
)

var _ tea.Model = Model{}

const helpText = "ctrl+s save · tab preview · ctrl+p preview mode · esc quit"

// PreviewMode selects what the preview pane shows.
type PreviewMode int

const (
	// PreviewHTML shows the HTML fragment produced by markdown.Render, the
	// same output the web app displays for the saved review.
	PreviewHTML PreviewMode = iota
	// PreviewTerminal shows the review rendered for the terminal.
	PreviewTerminal
)

func (p PreviewMode) String() string {
	if p == PreviewTerminal {
		return "terminal"
	}
	return "html"
}

func (p PreviewMode) next() PreviewMode {
	return (p + 1) % 2
}

// Model is the Bubble Tea model for the review editor.
type Model struct {
	// Input is the review editor. Exported for test access.
	Input textarea.Model
	// Viewport is the preview pane. Exported for test access.
	Viewport viewport.Model

	// ctx is passed to save. Set by Run; nil means context.Background.
	ctx    context.Context
	book   readlog.Book
	save   SaveFunc
	theme  readlog.Theme
	styles Styles

	previewing bool
	mode       PreviewMode

	// saved is the review text as last persisted.
	saved  string
	saving bool
	err    error

	width int
	ready bool
}

// New creates an editor for book's review. save is called on ctrl+s.
func New(book readlog.Book, save SaveFunc, theme readlog.Theme) Model {
	ta := textarea.New()
	ta.Placeholder = "Write your review..."
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetValue(book.Review)
	ta.Focus()

	return Model{
		Input:  ta,
		book:   book,
		save:   save,
		theme:  theme,
		styles: NewStyles(theme),
		saved:  book.Review,
	}
}

// Value returns the current review text.
func (m Model) Value() string { return m.Input.Value() }

// Dirty reports whether the review has unsaved changes.
func (m Model) Dirty() bool { return m.Input.Value() != m.saved }

// Previewing reports whether the preview pane is shown.
func (m Model) Previewing() bool { return m.previewing }

// Mode returns the current preview mode.
func (m Model) Mode() PreviewMode { return m.mode }

// Err returns the error of the last failed save, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SavedMsg:
		m.saving = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.saved = msg.Review
		return m, nil
	}

	var cmd tea.Cmd
	if m.previewing {
		m.Viewport, cmd = m.Viewport.Update(msg)
	} else {
		m.Input, cmd = m.Input.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	if m.previewing {
		b.WriteString(m.Viewport.View())
	} else {
		b.WriteString(m.Input.View())
	}
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().MaxWidth(m.width).Render(m.styles.Muted.Render(helpText)))
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 1
	helpHeight := 1
	bodyHeight := msg.Height - statusHeight - helpHeight - 2 // newlines between sections
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	m.width = msg.Width
	m.Input.SetWidth(msg.Width)
	m.Input.SetHeight(bodyHeight)
	if !m.ready {
		m.Viewport = viewport.New(msg.Width, bodyHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = bodyHeight
	}
	if m.previewing {
		m = m.refreshPreview()
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyTab:
		m.previewing = !m.previewing
		if m.previewing {
			m.Input.Blur()
			m = m.refreshPreview()
			m.Viewport.GotoTop()
			return m, nil
		}
		return m, m.Input.Focus()

	case tea.KeyCtrlP:
		m.mode = m.mode.next()
		if m.previewing {
			m = m.refreshPreview()
		}
		return m, nil

	case tea.KeyCtrlS:
		return m.startSave()
	}

	var cmd tea.Cmd
	if m.previewing {
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) startSave() (tea.Model, tea.Cmd) {
	if m.saving || !m.Dirty() {
		return m, nil
	}
	m.saving = true
	m.err = nil
	review := m.Input.Value()
	save := m.save
	ctx := m.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return m, func() tea.Msg {
		return SavedMsg{Review: review, Err: save(ctx, review)}
	}
}

// previewSource renders the current text for the active preview mode,
// before it is fitted to the pane.
func (m Model) previewSource() string {
	text := m.Input.Value()
	if m.mode == PreviewTerminal {
		return goldmark.Render(text, m.Viewport.Width, m.theme)
	}
	return markdown.Render(text)
}

func (m Model) refreshPreview() Model {
	content := m.previewSource()
	if m.mode == PreviewHTML && m.Viewport.Width > 0 {
		content = lipgloss.NewStyle().Width(m.Viewport.Width).Render(content)
	}
	m.Viewport.SetContent(content)
	return m
}

func (m Model) statusLine() string {
	title := m.book.Title
	if title == "" {
		title = "untitled"
	}
	parts := []string{
		m.styles.Title.Render(title),
		m.styles.Muted.Render(fmt.Sprintf("%d chars", uniseg.GraphemeClusterCount(m.Input.Value()))),
	}
	if m.previewing {
		parts = append(parts, m.styles.Muted.Render("preview: "+m.mode.String()))
	}
	switch {
	case m.saving:
		parts = append(parts, m.styles.Muted.Render("saving..."))
	case m.err != nil:
		parts = append(parts, m.styles.Error.Render("save failed: "+m.err.Error()))
	case m.Dirty():
		parts = append(parts, m.styles.Accent.Render("modified"))
	default:
		parts = append(parts, m.styles.Success.Render("saved"))
	}
	line := strings.Join(parts, m.styles.Muted.Render(" · "))
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}
