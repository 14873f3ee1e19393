package readlog

// Event is a sealed interface for change notifications pushed to clients.
// The unexported marker method prevents external implementations.
type Event interface {
	// Type returns the wire name of the event.
	Type() string
	event()
}

// EventBookCreated signals a new book.
type EventBookCreated struct {
	Book Book
}

func (EventBookCreated) Type() string { return "book_created" }
func (EventBookCreated) event()       {}

// EventBookUpdated signals a changed book, including review edits.
type EventBookUpdated struct {
	Book Book
}

func (EventBookUpdated) Type() string { return "book_updated" }
func (EventBookUpdated) event()       {}

// EventBookDeleted signals a removed book.
type EventBookDeleted struct {
	ID int
}

func (EventBookDeleted) Type() string { return "book_deleted" }
func (EventBookDeleted) event()       {}

// Interface compliance checks.
var (
	_ Event = EventBookCreated{}
	_ Event = EventBookUpdated{}
	_ Event = EventBookDeleted{}
)
