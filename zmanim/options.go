// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import (
	"time"

	"cloudeng.io/astronomy/solar"
)

type options struct {
	calc                solar.Calculator
	useElevation        bool
	astronomicalChatzos bool
	chatzosForZmanim    bool
	candleLighting      time.Duration
	ateretTorah         time.Duration
	dawnStep            float64
	duskStep            float64
	dipBound            float64
}

// Option configures a Day. Options are bound once at construction;
// a Day never changes afterwards and is safe to share.
type Option func(o *options)

// WithCalculator sets the solar calculator used for every event.
// The default is solar.NOAA.
func WithCalculator(c solar.Calculator) Option {
	return func(o *options) { o.calc = c }
}

// WithElevation enables the use of the location's elevation for
// sunrise and sunset. Twilight events at explicit zenith angles are
// never elevation adjusted and the sea level variants ignore this
// setting.
func WithElevation(use bool) Option {
	return func(o *options) { o.useElevation = use }
}

// WithAstronomicalChatzos selects the calculator's true solar
// transit for Chatzos rather than the midpoint of sea level sunrise
// and sunset. A calculator unable to compute the transit falls back
// to the midpoint.
func WithAstronomicalChatzos(use bool) Option {
	return func(o *options) { o.astronomicalChatzos = use }
}

// WithAstronomicalChatzosForZmanim routes markers that are half a
// day before or after chatzos through the half day scale anchored at
// Chatzos. Only windows declared synchronous are routed; see
// Day.ProportionalZman.
func WithAstronomicalChatzosForZmanim(use bool) Option {
	return func(o *options) { o.chatzosForZmanim = use }
}

// WithCandleLightingOffset sets the interval before sea level sunset
// at which candles are lit. The default is 18 minutes.
func WithCandleLightingOffset(d time.Duration) Option {
	return func(o *options) { o.candleLighting = d }
}

// WithAteretTorahOffset sets the interval after sea level sunset
// used for the Ateret Torah nightfall. The default is 40 minutes.
func WithAteretTorahOffset(d time.Duration) Option {
	return func(o *options) { o.ateretTorah = d }
}

// WithDipScan overrides the increments and the bound, in degrees,
// used by the solar dip searches. The historical defaults are a
// 0.0001 degree step for dawn, a 0.001 degree step for dusk and a
// bound of 50 degrees beyond which the search is abandoned.
func WithDipScan(dawnStep, duskStep, bound float64) Option {
	return func(o *options) {
		o.dawnStep = dawnStep
		o.duskStep = duskStep
		o.dipBound = bound
	}
}

func defaultOptions() options {
	return options{
		calc:           solar.NOAA{},
		candleLighting: 18 * time.Minute,
		ateretTorah:    40 * time.Minute,
		dawnStep:       0.0001,
		duskStep:       0.001,
		dipBound:       50,
	}
}
