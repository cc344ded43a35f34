package order

// Timeline is the ordered event log of an order. Events are only ever added,
// at one of two ends, and never modified or removed:
//   - AppendEnd for the creation event and status transitions (oldest first)
//   - InsertFront for out-of-band sub-events that should surface first
//
// Both keep the relative order of the events already present. Consumers must
// not assume a single direction when reading.
type Timeline struct {
	events []TrackingEvent
}

// NewTimeline copies events in the given order.
func NewTimeline(events ...TrackingEvent) Timeline {
	t := Timeline{events: make([]TrackingEvent, 0, len(events))}
	t.events = append(t.events, events...)
	return t
}

// AppendEnd places event after every existing event.
func (t *Timeline) AppendEnd(event TrackingEvent) {
	t.events = append(t.events, event)
}

// InsertFront places event before every existing event.
func (t *Timeline) InsertFront(event TrackingEvent) {
	events := make([]TrackingEvent, 0, len(t.events)+1)
	events = append(events, event)
	t.events = append(events, t.events...)
}

// Events returns a copy; mutating it does not affect the timeline.
func (t Timeline) Events() []TrackingEvent {
	out := make([]TrackingEvent, len(t.events))
	copy(out, t.events)
	return out
}

func (t Timeline) Len() int {
	return len(t.events)
}

func (t Timeline) IsEmpty() bool {
	return len(t.events) == 0
}

// Validate checks every event came from NewTrackingEvent.
func (t Timeline) Validate() error {
	for _, e := range t.events {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}
