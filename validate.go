package readlog

import "fmt"

// Validate checks the constraints every stored book must satisfy.
// An empty Status is treated as StatusUnread.
func (b Book) Validate() error {
	if b.Title == "" {
		return fmt.Errorf("title is required: %w", ErrValidation)
	}
	if b.Author == "" {
		return fmt.Errorf("author is required: %w", ErrValidation)
	}
	if b.Pages < 0 {
		return fmt.Errorf("pages must be non-negative, got %d: %w", b.Pages, ErrValidation)
	}
	if b.Volume < 0 {
		return fmt.Errorf("volume must be non-negative, got %d: %w", b.Volume, ErrValidation)
	}
	if b.ReadingProgress < 0 || (b.Pages > 0 && b.ReadingProgress > b.Pages) {
		return fmt.Errorf("reading progress must be in [0, %d], got %d: %w", b.Pages, b.ReadingProgress, ErrValidation)
	}
	for _, s := range []struct {
		name  string
		value int
	}{
		{"rating", b.Rating},
		{"spice", b.Spice},
		{"tension", b.Tension},
	} {
		if s.value < 0 || s.value > 5 {
			return fmt.Errorf("%s must be in [0, 5], got %d: %w", s.name, s.value, ErrValidation)
		}
	}
	switch b.Status {
	case "", StatusUnread, StatusReading, StatusRead, StatusAbandoned:
	default:
		return fmt.Errorf("unknown status %q: %w", b.Status, ErrValidation)
	}
	return nil
}
