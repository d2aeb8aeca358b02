// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"math"

	"cloudeng.io/datetime"
	"github.com/mooncaker816/learnmeeus/v3/base"
	"github.com/mooncaker816/learnmeeus/v3/julian"
)

// NOAA computes solar events with the US National Oceanic and
// Atmospheric Administration's algorithm, which implements the
// low accuracy approximations from Jean Meeus' "Astronomical
// Algorithms". Results are good to well under a minute for latitudes
// equatorward of the polar circles. It is the default calculator.
type NOAA struct{}

// Name implements Calculator.
func (NOAA) Name() string { return "NOAA" }

// SunriseUTC implements Calculator.
func (NOAA) SunriseUTC(date datetime.CalendarDate, obs Observer, zenith float64, adjustForElevation bool) (float64, bool) {
	return noaaCrossing(date, obs, zenith, adjustForElevation, true)
}

// SunsetUTC implements Calculator.
func (NOAA) SunsetUTC(date datetime.CalendarDate, obs Observer, zenith float64, adjustForElevation bool) (float64, bool) {
	return noaaCrossing(date, obs, zenith, adjustForElevation, false)
}

// TransitUTC implements TransitCalculator.
func (NOAA) TransitUTC(date datetime.CalendarDate, obs Observer) (float64, bool) {
	jd := midnightJD(date)
	minutes := solarNoonUTC(julianCenturies(jd), -obs.Longitude)
	if math.IsNaN(minutes) {
		return 0, false
	}
	return normalizeHours(minutes / 60), true
}

func noaaCrossing(date datetime.CalendarDate, obs Observer, zenith float64, adjustForElevation, morning bool) (float64, bool) {
	elevation := 0.0
	if adjustForElevation {
		elevation = obs.Elevation
	}
	adjusted := AdjustZenith(zenith, elevation)
	// The NOAA formulation measures longitude positive westwards.
	minutes := riseSetUTC(midnightJD(date), obs.Latitude, -obs.Longitude, adjusted, morning)
	if math.IsNaN(minutes) {
		return 0, false
	}
	return normalizeHours(minutes / 60), true
}

func midnightJD(date datetime.CalendarDate) float64 {
	return julian.CalendarGregorianToJD(date.Year(), int(date.Month()), float64(date.Day()))
}

func julianCenturies(jd float64) float64 {
	return (jd - base.J2000) / base.JulianCentury
}

func julianDay(t float64) float64 {
	return t*base.JulianCentury + base.J2000
}

// riseSetUTC returns the UTC time, in minutes from midnight on the
// supplied Julian day, at which the sun crosses the zenith.
// Longitude is positive west. The declination is first taken at
// solar noon and the crossing then recomputed at its own first
// approximation. The result is NaN when there is no crossing.
func riseSetUTC(jd, latitude, longitude, zenith float64, morning bool) float64 {
	t := julianCenturies(jd)
	noonMinutes := solarNoonUTC(t, longitude)
	tNoon := julianCenturies(jd + noonMinutes/1440)
	utc := riseSetPass(tNoon, latitude, longitude, zenith, morning)
	tRefined := julianCenturies(julianDay(t) + utc/1440)
	return riseSetPass(tRefined, latitude, longitude, zenith, morning)
}

func riseSetPass(t, latitude, longitude, zenith float64, morning bool) float64 {
	eqTime := equationOfTime(t)
	decl := solarDeclination(t)
	ha := hourAngle(latitude, decl, zenith)
	if !morning {
		ha = -ha
	}
	delta := longitude - rad2deg(ha)
	return 720 + 4*delta - eqTime
}

// solarNoonUTC returns the UTC time of solar noon, in minutes from
// midnight, for the day at Julian centuries t. Longitude is positive
// west.
func solarNoonUTC(t, longitude float64) float64 {
	tNoon := julianCenturies(julianDay(t) + longitude/360)
	noonUTC := 720 + longitude*4 - equationOfTime(tNoon)
	tRefined := julianCenturies(julianDay(t) - 0.5 + noonUTC/1440)
	return 720 + longitude*4 - equationOfTime(tRefined)
}

// hourAngle returns the hour angle, in radians, at which the sun
// reaches the zenith for an observer at latitude, or NaN when it
// never does on the date.
func hourAngle(latitude, declination, zenith float64) float64 {
	latR := deg2rad(latitude)
	decR := deg2rad(declination)
	return math.Acos(math.Cos(deg2rad(zenith))/(math.Cos(latR)*math.Cos(decR)) -
		math.Tan(latR)*math.Tan(decR))
}

func geometricMeanLongitude(t float64) float64 {
	l0 := math.Mod(base.Horner(t, 280.46646, 36000.76983, 0.0003032), 360)
	if l0 < 0 {
		l0 += 360
	}
	return l0
}

func geometricMeanAnomaly(t float64) float64 {
	return base.Horner(t, 357.52911, 35999.05029, -0.0001537)
}

func orbitEccentricity(t float64) float64 {
	return base.Horner(t, 0.016708634, -0.000042037, -0.0000001267)
}

func equationOfCenter(t float64) float64 {
	m := deg2rad(geometricMeanAnomaly(t))
	return math.Sin(m)*(1.914602-t*(0.004817+0.000014*t)) +
		math.Sin(2*m)*(0.019993-0.000101*t) +
		math.Sin(3*m)*0.000289
}

func apparentLongitude(t float64) float64 {
	trueLong := geometricMeanLongitude(t) + equationOfCenter(t)
	omega := 125.04 - 1934.136*t
	return trueLong - 0.00569 - 0.00478*math.Sin(deg2rad(omega))
}

func meanObliquity(t float64) float64 {
	seconds := base.Horner(t, 21.448, -46.8150, -0.00059, 0.001813)
	return 23 + (26+seconds/60)/60
}

func correctedObliquity(t float64) float64 {
	omega := 125.04 - 1934.136*t
	return meanObliquity(t) + 0.00256*math.Cos(deg2rad(omega))
}

// solarDeclination returns the declination of the sun in degrees.
func solarDeclination(t float64) float64 {
	e := deg2rad(correctedObliquity(t))
	lambda := deg2rad(apparentLongitude(t))
	return rad2deg(math.Asin(math.Sin(e) * math.Sin(lambda)))
}

// equationOfTime returns the difference between true and mean solar
// time in minutes.
func equationOfTime(t float64) float64 {
	e := deg2rad(correctedObliquity(t))
	y := math.Tan(e / 2)
	y *= y
	l0 := deg2rad(geometricMeanLongitude(t))
	m := deg2rad(geometricMeanAnomaly(t))
	ecc := orbitEccentricity(t)
	eqTime := y*math.Sin(2*l0) -
		2*ecc*math.Sin(m) +
		4*ecc*y*math.Sin(m)*math.Cos(2*l0) -
		0.5*y*y*math.Sin(4*l0) -
		1.25*ecc*ecc*math.Sin(2*m)
	return rad2deg(eqTime) * 4
}
