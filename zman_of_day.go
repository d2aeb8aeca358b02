// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"cloudeng.io/astronomy/zmanim"
	"cloudeng.io/datetime"
)

// ZmanTimeOfDay adapts a proportional day marker to
// datetime.DynamicTimeOfDay so that zmanim can drive date and time
// schedules. Elevation and Options configure the underlying day
// calculation.
type ZmanTimeOfDay struct {
	Zman      zmanim.Zman
	Elevation float64
	Options   []zmanim.Option
}

func (z ZmanTimeOfDay) Name() string {
	return z.Zman.Name
}

// Evaluate returns the marker's local time of day. A marker that
// does not occur on the date, and an invalid place, both evaluate
// to midnight: the interface leaves no way to report either.
func (z ZmanTimeOfDay) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	d, err := zmanim.NewDay(cd, placeLocation(place, z.Elevation), z.Options...)
	if err != nil {
		return datetime.NewTimeOfDay(0, 0, 0)
	}
	ev := z.Zman.Evaluate(d)
	if !ev.Occurs() {
		return datetime.NewTimeOfDay(0, 0, 0)
	}
	return datetime.TimeOfDayFromTime(ev.Time().In(place.TimeLocation))
}
