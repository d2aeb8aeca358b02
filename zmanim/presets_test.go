// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim_test

import (
	"testing"
	"time"

	"cloudeng.io/astronomy/zmanim"
)

func findZman(t *testing.T, rows []zmanim.Zman, name string) zmanim.Zman {
	t.Helper()
	for _, z := range rows {
		if z.Name == name {
			return z
		}
	}
	t.Fatalf("no zman named %q", name)
	return zmanim.Zman{}
}

func TestStandardZmanimGRA(t *testing.T) {
	// A day from six to six makes the proportional times legible at
	// a glance.
	d := newFakeDay(t, fakeCalc{rise: 6, set: 18, riseOK: true, setOK: true})
	rows := zmanim.StandardZmanim()
	for _, tc := range []struct {
		name string
		want time.Time
	}{
		{"Sof Zman Shma GRA", utc(1, 9, 0, 0)},
		{"Sof Zman Tfila GRA", utc(1, 10, 0, 0)},
		{"Mincha Gedola", utc(1, 12, 30, 0)},
		{"Mincha Ketana", utc(1, 15, 30, 0)},
		{"Plag Hamincha", utc(1, 16, 45, 0)},
		{"Sof Zman Shma MGA 72", utc(1, 8, 24, 0)},
		{"Sof Zman Tfila MGA 72", utc(1, 9, 36, 0)},
	} {
		got := findZman(t, rows, tc.name).Evaluate(d)
		if !got.Occurs() || !got.Time().Equal(tc.want) {
			t.Errorf("%v: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestStandardZmanimOrdering(t *testing.T) {
	d := jerusalemEquinox(t)
	rows := zmanim.StandardZmanim()
	for _, z := range rows {
		if !z.Evaluate(d).Occurs() {
			t.Errorf("%v does not occur on an equinox in Jerusalem", z.Name)
		}
	}
	// The dawn based opinions start the day earlier, so their
	// deadlines fall earlier too.
	gra := findZman(t, rows, "Sof Zman Shma GRA").Evaluate(d)
	if got := findZman(t, rows, "Sof Zman Shma MGA 72").Evaluate(d); !got.Before(gra) {
		t.Errorf("MGA 72 shma %v not before GRA %v", got, gra)
	}
	if got := findZman(t, rows, "Sof Zman Shma MGA 16.1").Evaluate(d); !got.Before(gra) {
		t.Errorf("MGA 16.1 shma %v not before GRA %v", got, gra)
	}
}

func TestSelectors(t *testing.T) {
	calc := fakeCalc{rise: 6, set: 18, riseOK: true, setOK: true, elevDelta: 0.25}
	d := newFakeDay(t, calc, zmanim.WithElevation(true))

	// DawnAt and DuskAt are sea level selectors; the method
	// expression selectors honour the elevation option.
	if got, want := zmanim.DawnAt(96)(d).Time(), utc(1, 6, 0, 0); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := (*zmanim.Day).Sunrise(d).Time(), utc(1, 5, 45, 0); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := zmanim.DuskAt(96)(d).Time(), utc(1, 18, 0, 0); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	off := zmanim.OffsetBy(zmanim.DawnAt(90), -72*time.Minute)
	if got, want := off(d).Time(), utc(1, 4, 48, 0); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	// Offsets absorb missing events.
	none := zmanim.OffsetBy(func(*zmanim.Day) zmanim.Event { return zmanim.Event{} }, time.Hour)
	if got := none(d); got.Occurs() {
		t.Errorf("got %v, want no event", got)
	}
}
