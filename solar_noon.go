// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"cloudeng.io/astronomy/zmanim"
	"cloudeng.io/datetime"
	"github.com/nathan-osman/go-sunrise"
)

// ApparentSolarNoon returns the midpoint of sunrise and sunset at
// the place on the date.
func ApparentSolarNoon(date datetime.CalendarDate, place datetime.Place) time.Time {
	rise, set := sunrise.SunriseSunset(
		place.Latitude, place.Longitude, date.Year(), time.Month(date.Month()), date.Day())
	return rise.Add(set.Sub(rise) / 2).In(place.TimeLocation)
}

// SolarNoon implements datetime.DynamicTimeOfDay for the solar noon (aka Zenith).
type SolarNoon struct{}

func (s SolarNoon) Name() string {
	return "SolarNoon"
}

func (s SolarNoon) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return datetime.TimeOfDayFromTime(ApparentSolarNoon(cd, place))
}

// TrueSolarNoon returns the meridian transit of the sun at the
// place on the date, computed astronomically rather than as the
// midpoint of sunrise and sunset. Unlike the midpoint it is defined
// during the polar day and night.
func TrueSolarNoon(date datetime.CalendarDate, place datetime.Place) (time.Time, error) {
	d, err := zmanim.NewDay(date, placeLocation(place, 0))
	if err != nil {
		return time.Time{}, err
	}
	return d.Transit().Time(), nil
}

// TrueSolarNoonOfDay implements datetime.DynamicTimeOfDay for the
// astronomical transit. An invalid place evaluates to midnight.
type TrueSolarNoonOfDay struct{}

func (s TrueSolarNoonOfDay) Name() string {
	return "TrueSolarNoon"
}

func (s TrueSolarNoonOfDay) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	noon, err := TrueSolarNoon(cd, place)
	if err != nil {
		return datetime.NewTimeOfDay(0, 0, 0)
	}
	return datetime.TimeOfDayFromTime(noon.In(place.TimeLocation))
}
