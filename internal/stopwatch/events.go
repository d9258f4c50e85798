package stopwatch

// EventType defines the type of Counter event.
type EventType string

const (
	EventStarted     EventType = "started"
	EventStopped     EventType = "stopped"
	EventReset       EventType = "reset"
	EventTextChanged EventType = "text_changed"
)

// Event is a Counter update delivered to subscribers. Text is the counter's
// formatted time at the moment the event was emitted.
type Event struct {
	Type EventType
	Text string
}

// Listener receives Counter events.
type Listener func(Event)
