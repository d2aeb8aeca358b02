// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import (
	"iter"
	"time"

	"cloudeng.io/algo/container/heap"
)

// Entry is a named, occurring marker in a Timetable.
type Entry struct {
	Name string
	When time.Time
}

// Timetable evaluates a set of Zman definitions for a Day and
// presents the occurring ones in time order. Definitions whose
// event does not occur on a given day are simply absent from that
// day's listing.
type Timetable struct {
	rows []Zman
}

// NewTimetable returns a Timetable over the supplied definitions.
func NewTimetable(rows ...Zman) *Timetable {
	return &Timetable{rows: rows}
}

// Events returns an iterator over the occurring markers for the
// supplied Day, ordered by time.
func (tt *Timetable) Events(d *Day) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		h := heap.NewMin(heap.WithSliceCap[int64, Entry](len(tt.rows)))
		for _, z := range tt.rows {
			ev := z.Evaluate(d)
			if !ev.Occurs() {
				continue
			}
			h.Push(ev.Time().UnixMilli(), Entry{Name: z.Name, When: ev.Time()})
		}
		for h.Len() > 0 {
			_, e := h.Pop()
			if !yield(e) {
				return
			}
		}
	}
}
