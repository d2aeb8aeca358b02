// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"cloudeng.io/datetime"
	"github.com/mooncaker816/learnmeeus/v3/deltat"
	"github.com/mooncaker816/learnmeeus/v3/globe"
	"github.com/mooncaker816/learnmeeus/v3/rise"
	"github.com/mooncaker816/learnmeeus/v3/sidereal"
	msolar "github.com/mooncaker816/learnmeeus/v3/solar"
	"github.com/soniakeys/unit"
)

// Meeus computes solar events by interpolating the sun's apparent
// equatorial coordinates over three days, the rigorous treatment of
// chapter 15 of Jean Meeus' "Astronomical Algorithms". It is slower
// than NOAA and agrees with it to within a couple of minutes, which
// makes it a useful cross check.
type Meeus struct{}

// Name implements Calculator.
func (Meeus) Name() string { return "Meeus" }

// SunriseUTC implements Calculator.
func (Meeus) SunriseUTC(date datetime.CalendarDate, obs Observer, zenith float64, adjustForElevation bool) (float64, bool) {
	r, _, _, ok := meeusTimes(date, obs, zenith, adjustForElevation)
	return r, ok
}

// SunsetUTC implements Calculator.
func (Meeus) SunsetUTC(date datetime.CalendarDate, obs Observer, zenith float64, adjustForElevation bool) (float64, bool) {
	_, _, s, ok := meeusTimes(date, obs, zenith, adjustForElevation)
	return s, ok
}

// TransitUTC implements TransitCalculator. Unlike NOAA it fails
// when the sun neither rises nor sets on the date.
func (Meeus) TransitUTC(date datetime.CalendarDate, obs Observer) (float64, bool) {
	_, tr, _, ok := meeusTimes(date, obs, Geometric, false)
	return tr, ok
}

func meeusTimes(date datetime.CalendarDate, obs Observer, zenith float64, adjustForElevation bool) (r, tr, s float64, ok bool) {
	elevation := 0.0
	if adjustForElevation {
		elevation = obs.Elevation
	}
	adjusted := AdjustZenith(zenith, elevation)
	h0 := unit.AngleFromDeg(Geometric - adjusted)
	p := globe.Coord{
		Lat: unit.AngleFromDeg(obs.Latitude),
		Lon: unit.AngleFromDeg(-obs.Longitude), // positive west
	}
	jd := midnightJD(date)
	Th0 := sidereal.Apparent0UT(jd)
	deltaT := deltat.PolyAfter2000(float64(date.Year()))
	alpha := make([]unit.RA, 3)
	delta := make([]unit.Angle, 3)
	for i := range alpha {
		alpha[i], delta[i] = msolar.ApparentEquatorial(jd + float64(i-1))
	}
	tRise, tTransit, tSet, err := rise.Times(p, deltaT, h0, Th0, alpha, delta)
	if err != nil {
		return 0, 0, 0, false
	}
	return normalizeHours(tRise.Hour()), normalizeHours(tTransit.Hour()), normalizeHours(tSet.Hour()), true
}
