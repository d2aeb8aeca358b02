// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy provides calendar oriented astronomical
// calculations: sunrise, sunset, twilight, solar noon, solstices and
// equinoxes, and proportional day markers, in forms that plug into
// the dynamic date and time extension points of cloudeng.io/datetime.
package astronomy

import (
	"time"

	"cloudeng.io/astronomy/zmanim"
	"cloudeng.io/datetime"
	"github.com/nathan-osman/go-sunrise"
)

// SunRiseAndSet returns the time of sunrise and sunset for the
// specified date and place in the place's time zone.
func SunRiseAndSet(date datetime.CalendarDate, place datetime.Place) (rise, set time.Time) {
	rise, set = sunrise.SunriseSunset(
		place.Latitude, place.Longitude,
		date.Year(), time.Month(date.Month()), date.Day())
	return rise.In(place.TimeLocation), set.In(place.TimeLocation)
}

func placeLocation(place datetime.Place, elevation float64) zmanim.Location {
	return zmanim.Location{
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
		Elevation: elevation,
		TZ:        place.TimeLocation,
	}
}

// Dawn returns the morning crossing of the supplied zenith at the
// place on the date. The event does not occur when the sun stays on
// one side of the zenith all day.
func Dawn(date datetime.CalendarDate, place datetime.Place, zenith float64) (zmanim.Event, error) {
	d, err := zmanim.NewDay(date, placeLocation(place, 0))
	if err != nil {
		return zmanim.Event{}, err
	}
	return d.SeaLevelSunriseAt(zenith), nil
}

// Dusk returns the evening crossing of the supplied zenith at the
// place on the date.
func Dusk(date datetime.CalendarDate, place datetime.Place, zenith float64) (zmanim.Event, error) {
	d, err := zmanim.NewDay(date, placeLocation(place, 0))
	if err != nil {
		return zmanim.Event{}, err
	}
	return d.SeaLevelSunsetAt(zenith), nil
}
