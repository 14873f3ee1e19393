package readlog

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	Heading int // Headings
	Quote   int // Block quote bar and text
	Code    int // Code spans and fenced blocks
	Link    int // Link labels
	Muted   int // Status bar, URLs, placeholders
	Error   int // Error messages
	Success int // Save confirmations
	Accent  int // Titles, focused elements
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Heading: 5,
		Quote:   6,
		Code:    3,
		Link:    4,
		Muted:   8,
		Error:   1,
		Success: 2,
		Accent:  5,
	}
}
