// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import (
	"fmt"
	"time"

	"cloudeng.io/astronomy/solar"
	"cloudeng.io/errors"
)

// Location describes the place for which events are computed.
// Longitude is positive east of the Greenwich meridian and elevation
// is in meters above sea level.
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
	Elevation float64
	TZ        *time.Location
}

// Validate returns a single error describing every invalid field, or
// nil. Out of range coordinates, a negative elevation and a missing
// time zone are configuration defects rather than domain outcomes
// and are reported eagerly.
func (l Location) Validate() error {
	errs := errors.M{}
	if l.Latitude < -90 || l.Latitude > 90 {
		errs.Append(fmt.Errorf("latitude %v outside -90..90", l.Latitude))
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		errs.Append(fmt.Errorf("longitude %v outside -180..180", l.Longitude))
	}
	if l.Elevation < 0 {
		errs.Append(fmt.Errorf("negative elevation %v", l.Elevation))
	}
	if l.TZ == nil {
		errs.Append(fmt.Errorf("missing time zone"))
	}
	return errs.Err()
}

// Observer returns the location as a solar observer.
func (l Location) Observer() solar.Observer {
	return solar.Observer{Latitude: l.Latitude, Longitude: l.Longitude, Elevation: l.Elevation}
}

// StandardOffset returns the raw, standard offset of the location's
// zone from UTC for the supplied year, with any daylight saving
// component removed. The zone's offsets in January and July are
// sampled and the smaller taken, which holds for daylight saving in
// either hemisphere.
func (l Location) StandardOffset(year int) time.Duration {
	jan := time.Date(year, time.January, 1, 12, 0, 0, 0, time.UTC).In(l.TZ)
	jul := time.Date(year, time.July, 1, 12, 0, 0, 0, time.UTC).In(l.TZ)
	_, offset := jan.Zone()
	if _, july := jul.Zone(); july < offset {
		offset = july
	}
	return time.Duration(offset) * time.Second
}

// LocalMeanTimeOffset returns the difference between local mean time
// at the location's longitude and its standard zone time. It is zero
// only on the zone's reference meridian.
func (l Location) LocalMeanTimeOffset(year int) time.Duration {
	lmt := time.Duration(l.Longitude * 4 * float64(time.Minute))
	return lmt - l.StandardOffset(year)
}

// AntimeridianAdjustment returns the number of calendar days, -1, 0
// or 1, by which the civil date is adjusted before solar events are
// computed. Zones such as Pacific/Kiritimati keep civil dates from
// across the antimeridian, putting local mean time twenty or more
// hours away from zone time; without the adjustment every event
// would be computed for the wrong solar day.
func (l Location) AntimeridianAdjustment(year int) int {
	switch offset := l.LocalMeanTimeOffset(year).Hours(); {
	case offset >= 20:
		return 1
	case offset <= -20:
		return -1
	}
	return 0
}
