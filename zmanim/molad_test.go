// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim_test

import (
	"testing"
	"time"

	"cloudeng.io/astronomy/zmanim"
	"cloudeng.io/datetime"
)

func TestClampToDay(t *testing.T) {
	dayStart := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	dawn := zmanim.NewEvent(time.Date(2024, 1, 11, 6, 0, 0, 0, time.UTC))
	nightfall := zmanim.NewEvent(time.Date(2024, 1, 11, 18, 0, 0, 0, time.UTC))
	var none zmanim.Event

	night := time.Date(2024, 1, 11, 3, 0, 0, 0, time.UTC)
	noon := time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)

	// A night moment passes through untouched.
	for _, deferTo := range []bool{true, false} {
		got := zmanim.ClampToDay(night, dayStart, dayEnd, dawn, nightfall, deferTo)
		if !got.Occurs() || !got.Time().Equal(night) {
			t.Errorf("got %v, want %v", got, night)
		}
	}

	// A daylight moment moves to the requested night boundary.
	if got := zmanim.ClampToDay(noon, dayStart, dayEnd, dawn, nightfall, true); !got.Equal(nightfall) {
		t.Errorf("got %v, want %v", got, nightfall)
	}
	if got := zmanim.ClampToDay(noon, dayStart, dayEnd, dawn, nightfall, false); !got.Equal(dawn) {
		t.Errorf("got %v, want %v", got, dawn)
	}

	// Exactly on a night boundary is not daylight.
	for _, boundary := range []time.Time{dawn.Time(), nightfall.Time()} {
		got := zmanim.ClampToDay(boundary, dayStart, dayEnd, dawn, nightfall, true)
		if !got.Occurs() || !got.Time().Equal(boundary) {
			t.Errorf("got %v, want %v", got, boundary)
		}
	}

	// Without both night boundaries a daylight moment is returned
	// unmodified.
	for _, tc := range []struct{ end, start zmanim.Event }{
		{none, nightfall},
		{dawn, none},
		{none, none},
	} {
		got := zmanim.ClampToDay(noon, dayStart, dayEnd, tc.end, tc.start, true)
		if !got.Occurs() || !got.Time().Equal(noon) {
			t.Errorf("got %v, want %v", got, noon)
		}
	}

	// The midnights themselves, and anything beyond them, are not
	// part of the day.
	for _, moment := range []time.Time{
		dayStart,
		dayEnd,
		dayStart.AddDate(0, 0, -1).Add(12 * time.Hour),
		dayStart.AddDate(0, 0, 3),
	} {
		for _, tc := range []struct{ end, start zmanim.Event }{
			{dawn, nightfall},
			{none, nightfall},
			{dawn, none},
			{none, none},
		} {
			if got := zmanim.ClampToDay(moment, dayStart, dayEnd, tc.end, tc.start, true); got.Occurs() {
				t.Errorf("%v: got %v, want no event", moment, got)
			}
		}
	}
}

func moladDay(t *testing.T) *zmanim.Day {
	t.Helper()
	ny := mustLoad(t, "America/New_York")
	d, err := zmanim.NewDay(datetime.NewCalendarDate(2024, 1, 11),
		zmanim.Location{Name: "New York", Latitude: 40.7128, Longitude: -74.0061, TZ: ny},
		zmanim.WithCalculator(fakeCalc{rise: 12, set: 22, riseOK: true, setOK: true}))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestMoladBasedTime(t *testing.T) {
	d := moladDay(t)
	ny := d.Location().TZ
	dawn := zmanim.NewEvent(time.Date(2024, 1, 11, 6, 0, 0, 0, ny))
	nightfall := zmanim.NewEvent(time.Date(2024, 1, 11, 18, 0, 0, 0, ny))

	// The clamp works in the local zone: half past eleven at night
	// in New York is on the next UTC day but still on this date.
	lateNight := time.Date(2024, 1, 11, 23, 30, 0, 0, ny)
	got := d.MoladBasedTime(lateNight, dawn, nightfall, true)
	if !got.Occurs() || !got.Time().Equal(lateNight) {
		t.Errorf("got %v, want %v", got, lateNight)
	}

	noon := time.Date(2024, 1, 11, 12, 0, 0, 0, ny)
	if got := d.MoladBasedTime(noon, dawn, nightfall, true); !got.Equal(nightfall) {
		t.Errorf("got %v, want %v", got, nightfall)
	}
	if got := d.MoladBasedTime(noon, dawn, nightfall, false); !got.Equal(dawn) {
		t.Errorf("got %v, want %v", got, dawn)
	}

	yesterday := time.Date(2024, 1, 10, 12, 0, 0, 0, ny)
	if got := d.MoladBasedTime(yesterday, dawn, nightfall, true); got.Occurs() {
		t.Errorf("got %v, want no event", got)
	}
}

type fixedMolad struct{ at time.Time }

func (f fixedMolad) LunarConjunction(datetime.CalendarDate) time.Time { return f.at }

func TestKidushLevana(t *testing.T) {
	d := moladDay(t)
	ny := d.Location().TZ
	dawn := zmanim.NewEvent(time.Date(2024, 1, 11, 6, 0, 0, 0, ny))
	nightfall := zmanim.NewEvent(time.Date(2024, 1, 11, 18, 0, 0, 0, ny))
	molad := fixedMolad{at: time.Date(2024, 1, 8, 15, 0, 0, 0, ny)}

	// Three days after the molad falls at three in the afternoon:
	// the earliest time waits for nightfall, the latest recedes to
	// dawn.
	if got := d.KidushLevanaStart(molad, 3, dawn, nightfall); !got.Equal(nightfall) {
		t.Errorf("got %v, want %v", got, nightfall)
	}
	if got := d.KidushLevanaEnd(molad, 3, dawn, nightfall); !got.Equal(dawn) {
		t.Errorf("got %v, want %v", got, dawn)
	}

	// Seven days after the molad is beyond this date.
	if got := d.KidushLevanaStart(molad, 7, dawn, nightfall); got.Occurs() {
		t.Errorf("got %v, want no event", got)
	}
}
