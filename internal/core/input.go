package core

// Event is a discrete player intent, abstracted from physical key presses.
// Hosts debounce input so a single press yields a single event.
type Event int

const (
	EventNone    Event = iota
	EventImpulse       // Space, Up, W - flap
	EventStart         // leave the menu and begin playing
	EventRestart       // start over after game over
	EventQuit          // Q, Esc, Ctrl+C - end the session
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventImpulse:
		return "Impulse"
	case EventStart:
		return "Start"
	case EventRestart:
		return "Restart"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of events delivered with one simulation tick.
// A set, not a queue: pressing flap twice within a tick still yields one impulse.
type InputFrame struct {
	Events map[Event]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(events ...Event) InputFrame {
	f := InputFrame{Events: make(map[Event]bool, len(events))}
	for _, e := range events {
		f.Set(e)
	}
	return f
}

// Set marks an event as triggered for this frame.
func (f *InputFrame) Set(e Event) {
	if e == EventNone {
		return
	}
	if f.Events == nil {
		f.Events = make(map[Event]bool)
	}
	f.Events[e] = true
}

// Has returns true if the given event was triggered this frame.
func (f InputFrame) Has(e Event) bool {
	if f.Events == nil {
		return false
	}
	return f.Events[e]
}

// Clear resets all events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Events {
		delete(f.Events, k)
	}
}
