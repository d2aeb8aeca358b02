// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import (
	"time"

	"cloudeng.io/astronomy/solar"
)

// Selector picks a day boundary from a Day. Selectors compose into
// Zman definitions so that a marker catalog is plain data rather
// than a method per opinion.
type Selector func(*Day) Event

// DawnAt returns a Selector for the sea level morning crossing of
// the supplied zenith.
func DawnAt(zenith float64) Selector {
	return func(d *Day) Event { return d.SeaLevelSunriseAt(zenith) }
}

// DuskAt returns a Selector for the sea level evening crossing of
// the supplied zenith.
func DuskAt(zenith float64) Selector {
	return func(d *Day) Event { return d.SeaLevelSunsetAt(zenith) }
}

// OffsetBy returns a Selector that shifts another Selector by a
// fixed duration.
func OffsetBy(sel Selector, offset time.Duration) Selector {
	return func(d *Day) Event { return sel(d).Add(offset) }
}

// Zman names a proportional day marker: Hours temporal hours into
// the window from Start to End. Synchronous declares that Start and
// End follow one convention, mirrored about midday, which permits
// the half day refinement of WithAstronomicalChatzosForZmanim.
type Zman struct {
	Name        string
	Start, End  Selector
	Hours       float64
	Synchronous bool
}

// Evaluate computes the marker on the supplied Day.
func (z Zman) Evaluate(d *Day) Event {
	return d.ProportionalZman(NewWindow(z.Start(d), z.End(d)), z.Hours, z.Synchronous)
}

// StandardZmanim returns the widely published marker definitions.
// The GRA opinions measure the day from sunrise to sunset and the
// MGA opinions from dawn to nightfall, here the fixed 72 minute and
// the 16.1 degree variants. The slice is freshly allocated and may
// be extended or reordered by the caller.
func StandardZmanim() []Zman {
	gra := func(name string, hours float64) Zman {
		return Zman{
			Name:        name,
			Start:       (*Day).Sunrise,
			End:         (*Day).Sunset,
			Hours:       hours,
			Synchronous: true,
		}
	}
	mga72 := func(name string, hours float64) Zman {
		return Zman{
			Name:        name,
			Start:       OffsetBy((*Day).Sunrise, -72*time.Minute),
			End:         OffsetBy((*Day).Sunset, 72*time.Minute),
			Hours:       hours,
			Synchronous: true,
		}
	}
	return []Zman{
		gra("Sof Zman Shma GRA", 3),
		gra("Sof Zman Tfila GRA", 4),
		gra("Mincha Gedola", 6.5),
		gra("Mincha Ketana", 9.5),
		gra("Plag Hamincha", 10.75),
		mga72("Sof Zman Shma MGA 72", 3),
		mga72("Sof Zman Tfila MGA 72", 4),
		{
			Name:        "Sof Zman Shma MGA 16.1",
			Start:       DawnAt(solar.Geometric + 16.1),
			End:         DuskAt(solar.Geometric + 16.1),
			Hours:       3,
			Synchronous: true,
		},
	}
}
