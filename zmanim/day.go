// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package zmanim computes sunrise, sunset and twilight for a date
// and location and derives further day markers from a proportional
// day model: the interval between a chosen start and end of day is
// divided into twelve temporal hours and markers are expressed as a
// number of those hours into the window. Events that do not occur,
// routine at high latitudes and for deep twilight angles, are first
// class values that propagate silently through every derivation; see
// Event. The solar arithmetic itself is delegated to a
// solar.Calculator.
package zmanim

import (
	"time"

	"cloudeng.io/astronomy/solar"
	"cloudeng.io/datetime"
)

// Day is an immutable calculation context for a single calendar date
// at a location. All events are computed on demand and a Day is safe
// for concurrent use. The elevation, transit and offset policies are
// bound once, at construction, rather than consulted from mutable
// state mid formula.
type Day struct {
	date     datetime.CalendarDate
	calcDate datetime.CalendarDate
	loc      Location
	opts     options
}

// NewDay returns a Day for the supplied date and location. The
// location is validated and every configuration defect is returned
// in a single error.
func NewDay(date datetime.CalendarDate, loc Location, opts ...Option) (*Day, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	d := &Day{date: date, calcDate: date, loc: loc, opts: o}
	// In zones whose clock is twenty or more hours away from mean
	// solar time the civil date's events fall on a different UTC
	// calendar day, so the calculator is asked about the
	// neighbouring date. Anchoring back to local time always uses
	// the civil date; see localMoment.
	if adj := loc.AntimeridianAdjustment(date.Year()); adj != 0 {
		t := date.Time(datetime.NewTimeOfDay(12, 0, 0), time.UTC).AddDate(0, 0, adj)
		d.calcDate = datetime.NewCalendarDate(t.Year(), datetime.Month(t.Month()), t.Day())
	}
	return d, nil
}

// Date returns the civil date of the Day.
func (d *Day) Date() datetime.CalendarDate { return d.date }

// Location returns the location of the Day.
func (d *Day) Location() Location { return d.loc }

// SunriseAt returns the morning crossing of the supplied zenith,
// elevation adjusted when the Day was built WithElevation.
func (d *Day) SunriseAt(zenith float64) Event {
	return d.morning(zenith, d.opts.useElevation)
}

// SeaLevelSunriseAt returns the morning crossing of the supplied
// zenith at sea level, regardless of the elevation setting.
func (d *Day) SeaLevelSunriseAt(zenith float64) Event {
	return d.morning(zenith, false)
}

// SunsetAt returns the evening crossing of the supplied zenith,
// elevation adjusted when the Day was built WithElevation. A nominal
// sunset at or before the same zenith's sunrise, which unusual zone
// and angle combinations can produce, is moved forward one calendar
// day so that sunset always follows sunrise.
func (d *Day) SunsetAt(zenith float64) Event {
	return d.evening(zenith, d.opts.useElevation)
}

// SeaLevelSunsetAt is SunsetAt at sea level, regardless of the
// elevation setting.
func (d *Day) SeaLevelSunsetAt(zenith float64) Event {
	return d.evening(zenith, false)
}

// Sunrise returns sunrise at the geometric zenith.
func (d *Day) Sunrise() Event { return d.SunriseAt(solar.Geometric) }

// SeaLevelSunrise returns sunrise at the geometric zenith at sea
// level.
func (d *Day) SeaLevelSunrise() Event { return d.SeaLevelSunriseAt(solar.Geometric) }

// Sunset returns sunset at the geometric zenith.
func (d *Day) Sunset() Event { return d.SunsetAt(solar.Geometric) }

// SeaLevelSunset returns sunset at the geometric zenith at sea
// level.
func (d *Day) SeaLevelSunset() Event { return d.SeaLevelSunsetAt(solar.Geometric) }

// CivilDawn returns the start of civil twilight.
func (d *Day) CivilDawn() Event { return d.SunriseAt(solar.Civil) }

// CivilDusk returns the end of civil twilight.
func (d *Day) CivilDusk() Event { return d.SunsetAt(solar.Civil) }

// NauticalDawn returns the start of nautical twilight.
func (d *Day) NauticalDawn() Event { return d.SunriseAt(solar.Nautical) }

// NauticalDusk returns the end of nautical twilight.
func (d *Day) NauticalDusk() Event { return d.SunsetAt(solar.Nautical) }

// AstronomicalDawn returns the start of astronomical twilight.
func (d *Day) AstronomicalDawn() Event { return d.SunriseAt(solar.Astronomical) }

// AstronomicalDusk returns the end of astronomical twilight.
func (d *Day) AstronomicalDusk() Event { return d.SunsetAt(solar.Astronomical) }

func (d *Day) morning(zenith float64, elevation bool) Event {
	v, ok := d.opts.calc.SunriseUTC(d.calcDate, d.loc.Observer(), zenith, elevation)
	if !ok {
		return Event{}
	}
	return d.localMoment(v)
}

func (d *Day) evening(zenith float64, elevation bool) Event {
	v, ok := d.opts.calc.SunsetUTC(d.calcDate, d.loc.Observer(), zenith, elevation)
	if !ok {
		return Event{}
	}
	set := d.localMoment(v)
	if rise := d.morning(zenith, elevation); rise.Occurs() && !set.After(rise) {
		return set.AddDays(1)
	}
	return set
}

// localMoment converts a fractional UTC hour into a local moment
// anchored on the Day's civil date. When the sum of the hour value
// and the zone's standard offset leaves the 0..24 range the crossing
// lies on the neighbouring UTC calendar day, so the anchor is
// shifted before the clock components are applied. The standard,
// non daylight offset decides the shift: the daylight adjusted
// offset would move the boundary by an hour for part of the year.
func (d *Day) localMoment(hours float64) Event {
	shift := 0
	raw := d.loc.StandardOffset(d.date.Year()).Hours()
	if hours+raw > 24 {
		shift = -1
	} else if hours+raw < 0 {
		shift = 1
	}
	h := int(hours)
	rem := (hours - float64(h)) * 60
	m := int(rem)
	rem = (rem - float64(m)) * 60
	s := int(rem)
	ms := int((rem - float64(s)) * 1000)
	t := time.Date(d.date.Year(), time.Month(d.date.Month()), d.date.Day()+shift,
		h, m, s, ms*int(time.Millisecond), time.UTC)
	return NewEvent(t.In(d.loc.TZ))
}

// Transit returns the moment the sun crosses the location's meridian
// when the calculator can compute it, and the midpoint of sea level
// sunrise and sunset otherwise.
func (d *Day) Transit() Event {
	if tc, ok := d.opts.calc.(solar.TransitCalculator); ok {
		if v, ok := tc.TransitUTC(d.calcDate, d.loc.Observer()); ok {
			return d.localMoment(v)
		}
	}
	return d.seaLevelMidday()
}

func (d *Day) seaLevelMidday() Event {
	return NewWindow(d.SeaLevelSunrise(), d.SeaLevelSunset()).Midpoint()
}

// Chatzos returns solar midday. With WithAstronomicalChatzos it is
// the astronomical transit, falling back to the sea level midpoint
// for calculators without transit support. Otherwise it is the
// midpoint, itself falling back to the transit on days without
// sunrise or sunset.
func (d *Day) Chatzos() Event {
	if d.opts.astronomicalChatzos {
		return d.Transit()
	}
	if mid := d.seaLevelMidday(); mid.Occurs() {
		return mid
	}
	return d.Transit()
}

// TemporalHour returns the length of one proportional hour of the
// day from sunrise to sunset, honouring the elevation setting.
func (d *Day) TemporalHour() (time.Duration, bool) {
	return NewWindow(d.Sunrise(), d.Sunset()).TemporalHour()
}

// ProportionalZman evaluates hours proportional hours into the
// window; it is the generic entry point that named marker catalogs
// reduce to. With WithAstronomicalChatzosForZmanim, windows declared
// synchronous are split at Chatzos: markers within the first six
// hours are measured on the morning half day and later markers on
// the afternoon half day. An asynchronous window, whose dawn and
// dusk follow different conventions, is always evaluated whole since
// half of it is not a meaningful quantity.
func (d *Day) ProportionalZman(w Window, hours float64, synchronous bool) Event {
	if d.opts.chatzosForZmanim && synchronous {
		if hours < 6 {
			return EvaluateHalfDay(w.Start, d.Chatzos(), hours)
		}
		return EvaluateHalfDay(d.Chatzos(), w.End, hours-6)
	}
	return w.Evaluate(hours)
}

// CandleLighting returns the candle lighting time, by default 18
// minutes before sea level sunset; see WithCandleLightingOffset.
// Sea level sunset is used even when the Day was built
// WithElevation.
func (d *Day) CandleLighting() Event {
	return d.SeaLevelSunset().Add(-d.opts.candleLighting)
}

// TzaisAteretTorah returns nightfall following the Yeshivat Ateret
// Torah custom of a fixed offset, by default 40 minutes, after sea
// level sunset; see WithAteretTorahOffset.
func (d *Day) TzaisAteretTorah() Event {
	return d.SeaLevelSunset().Add(d.opts.ateretTorah)
}

// SunriseSolarDipFromOffset searches for the dip below the geometric
// zenith whose dawn falls minutes before sea level sunrise. The dip
// is walked upward in fixed steps, 0.0001 degrees by default, until
// the computed dawn reaches the target; the search fails once the
// scan bound is passed or when the reference sunrise does not occur.
// The step and bound are configurable via WithDipScan but the linear
// walk itself is deliberate: published tables depend on its exact
// output.
func (d *Day) SunriseSolarDipFromOffset(minutes float64) (float64, bool) {
	rise := d.SeaLevelSunrise()
	if !rise.Occurs() {
		return 0, false
	}
	target := rise.Add(-time.Duration(minutes * float64(time.Minute)))
	degrees := 0.0
	candidate := rise
	for !candidate.Occurs() || candidate.After(target) {
		degrees += d.opts.dawnStep
		if degrees > d.opts.dipBound {
			return 0, false
		}
		candidate = d.SeaLevelSunriseAt(solar.Geometric + degrees)
	}
	return degrees, true
}

// SunsetSolarDipFromOffset is the evening counterpart of
// SunriseSolarDipFromOffset, walking in 0.001 degree steps by
// default until dusk reaches minutes after sea level sunset.
func (d *Day) SunsetSolarDipFromOffset(minutes float64) (float64, bool) {
	set := d.SeaLevelSunset()
	if !set.Occurs() {
		return 0, false
	}
	target := set.Add(time.Duration(minutes * float64(time.Minute)))
	degrees := 0.0
	candidate := set
	for !candidate.Occurs() || candidate.Before(target) {
		degrees += d.opts.duskStep
		if degrees > d.opts.dipBound {
			return 0, false
		}
		candidate = d.SeaLevelSunsetAt(solar.Geometric + degrees)
	}
	return degrees, true
}
