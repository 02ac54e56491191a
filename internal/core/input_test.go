package core

import "testing"

func TestInputFrameSet(t *testing.T) {
	f := NewInputFrame(EventImpulse)

	if !f.Has(EventImpulse) {
		t.Error("frame should contain Impulse")
	}
	if f.Has(EventQuit) {
		t.Error("frame should not contain Quit")
	}

	// Setting twice is still a single event
	f.Set(EventImpulse)
	if len(f.Events) != 1 {
		t.Errorf("expected 1 event, got %d", len(f.Events))
	}

	f.Set(EventNone)
	if len(f.Events) != 1 {
		t.Error("EventNone should never be recorded")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(EventStart) {
		t.Error("zero frame should be empty")
	}

	f.Set(EventStart)
	if !f.Has(EventStart) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame(EventRestart, EventQuit)

	f.Clear()
	if f.Has(EventRestart) || f.Has(EventQuit) || len(f.Events) != 0 {
		t.Error("Clear should remove all events")
	}

	f.Set(EventImpulse)
	if !f.Has(EventImpulse) {
		t.Error("a cleared frame should accept new events")
	}
}

func TestEventString(t *testing.T) {
	names := map[Event]string{
		EventNone:    "None",
		EventImpulse: "Impulse",
		EventStart:   "Start",
		EventRestart: "Restart",
		EventQuit:    "Quit",
		Event(99):    "Unknown",
	}
	for e, want := range names {
		if e.String() != want {
			t.Errorf("Event(%d).String() = %q, expected %q", int(e), e.String(), want)
		}
	}
}
