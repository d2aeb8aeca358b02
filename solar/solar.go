// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package solar computes the UTC times at which the sun crosses a
// requested zenith angle for an observer on a given calendar date.
// Angles are conventionally expressed as 90 degrees plus a dip below
// the horizon, so that 96 degrees is civil twilight and so on; any
// angle may be requested and angles the sun never reaches simply
// produce no crossing.
package solar

import (
	"math"

	"cloudeng.io/datetime"
)

// Named zenith angles, in degrees, for the commonly used twilight
// definitions.
const (
	// Geometric is the geometric (airless) horizon, 90 degrees from
	// the zenith.
	Geometric = 90.0
	// Civil is civil twilight, 6 degrees below the horizon.
	Civil = 96.0
	// Nautical is nautical twilight, 12 degrees below the horizon.
	Nautical = 102.0
	// Astronomical is astronomical twilight, 18 degrees below the
	// horizon.
	Astronomical = 108.0
)

const (
	solarRadius   = 16.0 / 60 // in degrees
	refraction    = 34.0 / 60 // in degrees
	earthRadiusKm = 6356.9
)

// Observer is a position on the earth's surface. Longitude is
// positive east of the Greenwich meridian and elevation is in meters
// above sea level.
type Observer struct {
	Latitude  float64
	Longitude float64
	Elevation float64
}

// Calculator computes the UTC time, in fractional hours of the
// supplied date normalized to [0,24), at which the sun crosses a
// zenith angle in the morning or evening. The boolean result is
// false when the sun does not cross the requested zenith on that
// date, as is common at high latitudes; this is an expected outcome
// and not an error.
type Calculator interface {
	Name() string
	SunriseUTC(date datetime.CalendarDate, obs Observer, zenith float64, adjustForElevation bool) (float64, bool)
	SunsetUTC(date datetime.CalendarDate, obs Observer, zenith float64, adjustForElevation bool) (float64, bool)
}

// TransitCalculator is implemented by calculators that can compute
// the true astronomical solar transit, the moment the sun crosses
// the observer's meridian.
type TransitCalculator interface {
	TransitUTC(date datetime.CalendarDate, obs Observer) (float64, bool)
}

// ElevationAdjustment returns the number of degrees the visible
// horizon is lowered for an observer elevationMeters above sea
// level. The result is never negative: raising the observer can only
// widen the dip.
func ElevationAdjustment(elevationMeters float64) float64 {
	if elevationMeters <= 0 {
		return 0
	}
	return rad2deg(math.Acos(earthRadiusKm / (earthRadiusKm + elevationMeters/1000)))
}

// AdjustZenith returns the zenith angle to use for an observer at
// the supplied elevation. Only the geometric zenith is adjusted: it
// gains the solar radius, atmospheric refraction and the elevation
// adjustment so that sunrise and sunset refer to the upper limb of
// the visible sun. An explicit twilight angle is used exactly as
// requested.
func AdjustZenith(zenith, elevationMeters float64) float64 {
	if zenith != Geometric {
		return zenith
	}
	return zenith + solarRadius + refraction + ElevationAdjustment(elevationMeters)
}

func normalizeHours(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

func rad2deg(r float64) float64 { return r * 180 / math.Pi }
