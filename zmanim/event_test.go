// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim_test

import (
	"testing"
	"time"

	"cloudeng.io/astronomy/zmanim"
)

func TestEventZero(t *testing.T) {
	var e zmanim.Event
	if e.Occurs() {
		t.Errorf("zero event occurs")
	}
	if !e.Time().IsZero() {
		t.Errorf("got %v, want zero time", e.Time())
	}
	if got, want := e.String(), "no event"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEventArithmetic(t *testing.T) {
	base := zmanim.NewEvent(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	later := base.Add(90 * time.Minute)
	if got, want := later.Time(), time.Date(2024, 3, 1, 13, 30, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	d, ok := later.Sub(base)
	if !ok {
		t.Fatalf("no difference between two occurring events")
	}
	if got, want := d, 90*time.Minute; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !base.Before(later) || !later.After(base) {
		t.Errorf("ordering of %v and %v is wrong", base, later)
	}
	if !base.Equal(base.Add(0)) {
		t.Errorf("event not equal to itself")
	}
}

func TestEventAbsorbing(t *testing.T) {
	var none zmanim.Event
	base := zmanim.NewEvent(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	if none.Add(time.Hour).Occurs() {
		t.Errorf("shifting a missing event produced one")
	}
	if none.AddDays(1).Occurs() {
		t.Errorf("shifting a missing event produced one")
	}
	if _, ok := none.Sub(base); ok {
		t.Errorf("difference with a missing event is defined")
	}
	if _, ok := base.Sub(none); ok {
		t.Errorf("difference with a missing event is defined")
	}
	if none.Before(base) || none.After(base) || base.Before(none) || base.After(none) {
		t.Errorf("missing events are ordered")
	}
	if none.Equal(none) {
		t.Errorf("missing events compare equal")
	}
}

func TestEventAddDays(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	// March 10 2024 is only 23 hours long in New York; the wall
	// clock time must survive the transition.
	e := zmanim.NewEvent(time.Date(2024, 3, 9, 18, 0, 0, 0, ny))
	got := e.AddDays(1).Time()
	if want := time.Date(2024, 3, 10, 18, 0, 0, 0, ny); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEventIn(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	e := zmanim.NewEvent(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	moved := e.In(ny)
	if !moved.Occurs() || !moved.Time().Equal(e.Time()) {
		t.Errorf("conversion changed the instant: %v vs %v", moved, e)
	}
	if got, want := moved.Time().Location(), ny; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
