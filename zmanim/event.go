// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import "time"

// Event is the result of a solar calculation: either a moment in
// time or "no event", the expected outcome when the sun does not
// cross the requested zenith at the location on the date, as during
// polar summer and winter. The zero value is "no event". No event is
// absorbing: arithmetic on a non occurring Event yields a non
// occurring Event, so formulas built from Events never need explicit
// occurrence checks and can never leak a finite but meaningless
// time.
type Event struct {
	when   time.Time
	occurs bool
}

// NewEvent returns an Event for the supplied moment.
func NewEvent(when time.Time) Event {
	return Event{when: when, occurs: true}
}

// Occurs reports whether the event occurs.
func (e Event) Occurs() bool { return e.occurs }

// Time returns the moment of the event, or the zero time when the
// event does not occur. Callers rendering an Event should test
// Occurs rather than coerce a missing event to a default time.
func (e Event) Time() time.Time {
	if !e.occurs {
		return time.Time{}
	}
	return e.when
}

// Add returns the event shifted by d.
func (e Event) Add(d time.Duration) Event {
	if !e.occurs {
		return Event{}
	}
	return NewEvent(e.when.Add(d))
}

// AddDays returns the event shifted by the supplied number of
// calendar days, preserving its wall clock time in its location.
func (e Event) AddDays(days int) Event {
	if !e.occurs {
		return Event{}
	}
	return NewEvent(e.when.AddDate(0, 0, days))
}

// Sub returns the duration e - o. The second result is false when
// either event does not occur.
func (e Event) Sub(o Event) (time.Duration, bool) {
	if !e.occurs || !o.occurs {
		return 0, false
	}
	return e.when.Sub(o.when), true
}

// Before reports whether e occurs strictly before o. It is false
// whenever either event does not occur.
func (e Event) Before(o Event) bool {
	return e.occurs && o.occurs && e.when.Before(o.when)
}

// After reports whether e occurs strictly after o. It is false
// whenever either event does not occur.
func (e Event) After(o Event) bool {
	return e.occurs && o.occurs && e.when.After(o.when)
}

// Equal reports whether both events occur at the same instant.
func (e Event) Equal(o Event) bool {
	return e.occurs && o.occurs && e.when.Equal(o.when)
}

// In returns the event with its moment rendered in the supplied
// location.
func (e Event) In(loc *time.Location) Event {
	if !e.occurs {
		return Event{}
	}
	return NewEvent(e.when.In(loc))
}

func (e Event) String() string {
	if !e.occurs {
		return "no event"
	}
	return e.when.Format(time.RFC3339)
}
