package fao56

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestIrrigationValidation(t *testing.T) {
	ir := NewIrrigation()
	dt := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	var vre ValueRangeError

	if err := ir.AddEvent(dt, -5., 1.); !errors.As(err, &vre) {
		t.Errorf("negative depth: got %v", err)
	}
	if err := ir.AddEvent(dt, 20., 0.); !errors.As(err, &vre) {
		t.Errorf("zero wetted fraction: got %v", err)
	}
	if err := ir.AddEvent(dt, 20., 1.1); !errors.As(err, &vre) {
		t.Errorf("wetted fraction above 1: got %v", err)
	}
	if err := ir.AddEvent(dt, 20., .5); err != nil {
		t.Fatal(err)
	}
	// a second event on the same date is rejected, not merged
	if err := ir.AddEvent(dt.Add(6*time.Hour), 10., 1.); !errors.As(err, &vre) {
		t.Errorf("duplicate date: got %v", err)
	}
	if ev, ok := ir.Event(dt); !ok || ev.Depth != 20. {
		t.Error("original event altered by rejected duplicate")
	}

	ir.AddEvent(dt.AddDate(0, 0, -3), 10., 1.)
	dts := ir.Dates()
	if len(dts) != 2 || !dts[0].Before(dts[1]) {
		t.Error("dates not ordered")
	}
}

func TestSoilProfileValidation(t *testing.T) {
	var vre ValueRangeError
	if _, err := NewSoilProfile(nil); !errors.As(err, &vre) {
		t.Errorf("empty profile: got %v", err)
	}
	if _, err := NewSoilProfile([]SoilLayer{
		{Bottom: 30., ThetaFC: .25, ThetaWP: .1, Theta0: .2},
		{Bottom: 30., ThetaFC: .25, ThetaWP: .1, Theta0: .2},
	}); !errors.As(err, &vre) {
		t.Errorf("non-increasing bottoms: got %v", err)
	}
	if _, err := NewSoilProfile([]SoilLayer{
		{Bottom: 30., ThetaFC: .1, ThetaWP: .25, Theta0: .2},
	}); !errors.As(err, &vre) {
		t.Errorf("inverted retention: got %v", err)
	}
}

func TestSoilProfileWaterTo(t *testing.T) {
	sp, err := NewSoilProfile([]SoilLayer{
		{Bottom: 30., ThetaFC: .3, ThetaWP: .15, Theta0: .25},
		{Bottom: 100., ThetaFC: .25, ThetaWP: .1, Theta0: .15},
	})
	if err != nil {
		t.Fatal(err)
	}
	if d := sp.Depth(); d != 1. {
		t.Errorf("profile depth: got %f", d)
	}

	// 0.5 m spans all of layer 1 and 0.2 m of layer 2
	taw, d0 := sp.waterTo(.5)
	if math.Abs(taw-(45.+30.)) > 1e-9 {
		t.Errorf("TAW to 0.5 m: got %f", taw)
	}
	if math.Abs(d0-(15.+20.)) > 1e-9 {
		t.Errorf("D0 to 0.5 m: got %f", d0)
	}

	// beyond the profile bottom nothing more accumulates
	tawFull, _ := sp.waterTo(1.)
	tawOver, _ := sp.waterTo(2.)
	if tawFull != tawOver {
		t.Errorf("integration past profile bottom: %f vs %f", tawFull, tawOver)
	}
}

func TestWeatherCollaborator(t *testing.T) {
	w := NewWeather(ShortReference, 200., 40., 2.)
	dt := time.Date(2023, 6, 1, 9, 30, 0, 0, time.UTC) // intra-day time is dropped
	if err := w.AddDay(dt, NewWeatherDay(20., 28., 12., 2., 0.)); err != nil {
		t.Fatal(err)
	}
	if _, ok := w.Day(time.Date(2023, 6, 1, 23, 0, 0, 0, time.UTC)); !ok {
		t.Error("date keying not normalized")
	}
	var vre ValueRangeError
	if err := w.AddDay(dt, NewWeatherDay(21., 29., 13., 2., 0.)); !errors.As(err, &vre) {
		t.Errorf("reload accepted: got %v", err)
	}

	w.Rfcrp = "X"
	var cfg ConfigurationError
	if err := w.Check(); !errors.As(err, &cfg) {
		t.Errorf("unknown reference crop: got %v", err)
	}
}
