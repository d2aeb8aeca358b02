// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package lunar computes the moments of the principal lunar phases.
// The conjunctions returned here are the true, apparent new moons,
// which drift by hours around the fixed interval molad of the
// calendrical tradition; Phases adapts them as a molad source for
// the zmanim package.
package lunar

import (
	"time"

	"cloudeng.io/datetime"
	"github.com/mooncaker816/learnmeeus/v3/deltat"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/moonphase"
)

// Mean length of the synodic month in days.
const synodicMonth = 29.530588861

const yearsPerLunation = synodicMonth / 365.25

func decimalYear(date datetime.CalendarDate) float64 {
	t := date.Time(datetime.NewTimeOfDay(12, 0, 0), time.UTC)
	return float64(t.Year()) + float64(t.YearDay()-1)/365.25
}

// toUT converts a moment on the dynamical time scale, as returned by
// the phase computations, to universal time.
func toUT(jde, year float64) time.Time {
	jd := jde - deltat.PolyAfter2000(year).Day()
	y, m, d := julian.JDToCalendar(jd)
	day := int(d)
	frac := d - float64(day)
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(frac * 24 * float64(time.Hour)))
}

// Conjunction returns the new moon nearest the supplied date.
func Conjunction(date datetime.CalendarDate) time.Time {
	y := decimalYear(date)
	return toUT(moonphase.New(y), y)
}

// FullMoon returns the full moon nearest the supplied date.
func FullMoon(date datetime.CalendarDate) time.Time {
	y := decimalYear(date)
	return toUT(moonphase.Full(y), y)
}

// PreviousConjunction returns the last new moon strictly before the
// start of the supplied date in UTC.
func PreviousConjunction(date datetime.CalendarDate) time.Time {
	start := date.Time(datetime.NewTimeOfDay(0, 0, 0), time.UTC)
	y := decimalYear(date)
	nm := toUT(moonphase.New(y), y)
	for !nm.Before(start) {
		y -= yearsPerLunation
		nm = toUT(moonphase.New(y), y)
	}
	return nm
}

// NextConjunction returns the first new moon at or after the start
// of the supplied date in UTC.
func NextConjunction(date datetime.CalendarDate) time.Time {
	start := date.Time(datetime.NewTimeOfDay(0, 0, 0), time.UTC)
	y := decimalYear(date)
	nm := toUT(moonphase.New(y), y)
	for nm.Before(start) {
		y += yearsPerLunation
		nm = toUT(moonphase.New(y), y)
	}
	return nm
}

// Phases supplies astronomical conjunctions to calculations that
// expect a molad source.
type Phases struct{}

// LunarConjunction implements zmanim.MoladProvider.
func (Phases) LunarConjunction(date datetime.CalendarDate) time.Time {
	return PreviousConjunction(date)
}
