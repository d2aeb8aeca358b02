// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import (
	"fmt"
	"time"
)

// Window is the day window over which proportional hours are
// measured. A window occurs only when both endpoints occur; the
// temporal hour is one twelfth of it. An occurring window whose end
// is not strictly after its start has no meaningful temporal hour
// and is treated as a programming defect.
type Window struct {
	Start, End Event
}

// NewWindow returns the window from start to end, panicking on an
// occurring window whose end is not after its start. Windows with a
// missing endpoint are legitimate and evaluate to no event.
func NewWindow(start, end Event) Window {
	w := Window{Start: start, End: end}
	w.check()
	return w
}

func (w Window) check() {
	if w.Start.Occurs() && w.End.Occurs() && !w.End.After(w.Start) {
		panic(fmt.Sprintf("window end %v is not after start %v", w.End, w.Start))
	}
}

// Occurs reports whether both endpoints occur.
func (w Window) Occurs() bool {
	return w.Start.Occurs() && w.End.Occurs()
}

// TemporalHour returns one twelfth of the window. The second result
// is false when the window does not occur.
func (w Window) TemporalHour() (time.Duration, bool) {
	w.check()
	if !w.Occurs() {
		return 0, false
	}
	span, _ := w.End.Sub(w.Start)
	return span / 12, true
}

// Evaluate returns the moment hours temporal hours after the start
// of the window; negative values count back from the start. Every
// named day marker reduces to this formula. The result does not
// occur whenever either endpoint does not occur, for every value of
// hours including zero.
func (w Window) Evaluate(hours float64) Event {
	th, ok := w.TemporalHour()
	if !ok {
		return Event{}
	}
	return w.Start.Add(time.Duration(hours * float64(th)))
}

// Midpoint returns the moment halfway through the window, six
// proportional hours in.
func (w Window) Midpoint() Event {
	return w.Evaluate(6)
}

// EvaluateHalfDay treats the interval from start to end as its own
// six hour half day. Hours zero or greater are measured forward from
// start, negative hours backward from end, supporting markers that
// split morning and afternoon asymmetrically around the transit. The
// result does not occur whenever either endpoint does not occur.
func EvaluateHalfDay(start, end Event, hours float64) Event {
	span, ok := end.Sub(start)
	if !ok {
		return Event{}
	}
	hourLength := span / 6
	if hours >= 0 {
		return start.Add(time.Duration(hours * float64(hourLength)))
	}
	return end.Add(time.Duration(hours * float64(hourLength)))
}
