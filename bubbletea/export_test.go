package bubbletea

import "context"

// Preview exports previewSource for testing.
func Preview(m Model) string {
	return m.previewSource()
}

// WithContext sets the context passed to save, as Run does.
func WithContext(m Model, ctx context.Context) Model {
	m.ctx = ctx
	return m
}
