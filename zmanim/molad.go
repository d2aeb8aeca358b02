// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import (
	"time"

	"cloudeng.io/datetime"
)

// MoladProvider supplies the lunar conjunction preceding the start
// of the supplied date. Implementations decide the underlying
// theory; the lunar package provides an astronomical one.
type MoladProvider interface {
	LunarConjunction(date datetime.CalendarDate) time.Time
}

// ClampToDay restricts a lunar derived moment to a single civil day
// and, optionally, to its night. A moment not strictly between
// dayStart and dayEnd belongs to a neighbouring date and yields no
// event. When both night boundaries are supplied and the moment
// falls in daylight, strictly after nightEnd and strictly before
// nightStart, it is moved to nightStart when deferToNightfall is
// set and back to nightEnd otherwise. With either night boundary
// absent the moment is returned unmodified.
func ClampToDay(moment, dayStart, dayEnd time.Time, nightEnd, nightStart Event, deferToNightfall bool) Event {
	if !moment.After(dayStart) || !moment.Before(dayEnd) {
		return Event{}
	}
	if nightEnd.Occurs() && nightStart.Occurs() &&
		moment.After(nightEnd.Time()) && moment.Before(nightStart.Time()) {
		if deferToNightfall {
			return nightStart
		}
		return nightEnd
	}
	return NewEvent(moment)
}

// MoladBasedTime clamps moment to the Day's civil date, between its
// local midnights, adjusting daylight moments to the supplied night
// boundaries as described for ClampToDay.
func (d *Day) MoladBasedTime(moment time.Time, nightEnd, nightStart Event, deferToNightfall bool) Event {
	start := d.date.Time(datetime.NewTimeOfDay(0, 0, 0), d.loc.TZ)
	end := start.AddDate(0, 0, 1)
	return ClampToDay(moment, start, end, nightEnd, nightStart, deferToNightfall)
}

// KidushLevanaStart returns the earliest time for kidush levana on
// the Day's date, days after the preceding lunar conjunction. The
// result is empty unless that moment falls on this date, and a
// daylight moment is deferred to nightStart.
func (d *Day) KidushLevanaStart(p MoladProvider, days int, nightEnd, nightStart Event) Event {
	moment := p.LunarConjunction(d.date).Add(time.Duration(days) * 24 * time.Hour)
	return d.MoladBasedTime(moment, nightEnd, nightStart, true)
}

// KidushLevanaEnd returns the latest time for kidush levana on the
// Day's date, days after the preceding lunar conjunction. The result
// is empty unless that moment falls on this date, and a daylight
// moment is pulled back to nightEnd.
func (d *Day) KidushLevanaEnd(p MoladProvider, days int, nightEnd, nightStart Event) Event {
	moment := p.LunarConjunction(d.date).Add(time.Duration(days) * 24 * time.Hour)
	return d.MoladBasedTime(moment, nightEnd, nightStart, false)
}
