package fao56

import (
	"errors"
	"math"
	"testing"
)

func testDay() WeatherDay {
	wd := NewWeatherDay(25., 30., 15., 2., 0.)
	return wd
}

func TestVaporPressurePrecedence(t *testing.T) {
	// measured vapor pressure wins over everything
	wd := testDay()
	wd.Vapr = 1.4
	wd.Tdew = 5.
	wd.RHmax, wd.RHmin = 90., 30.
	ea, err := vaporPressure(wd)
	if err != nil || ea != 1.4 {
		t.Fatalf("vapr path: got %f, %v", ea, err)
	}

	// dew point next
	wd.Vapr = math.NaN()
	ea, err = vaporPressure(wd)
	if err != nil || math.Abs(ea-esat(5.)) > 1e-12 {
		t.Fatalf("tdew path: got %f, %v", ea, err)
	}

	// humidity extremes last
	wd.Tdew = math.NaN()
	ea, err = vaporPressure(wd)
	want := (esat(15.)*90. + esat(30.)*30.) / 200.
	if err != nil || math.Abs(ea-want) > 1e-12 {
		t.Fatalf("rh path: got %f want %f, %v", ea, want, err)
	}

	// nothing derivable
	wd.RHmax, wd.RHmin = math.NaN(), math.NaN()
	if _, err = vaporPressure(wd); err == nil {
		t.Fatal("expected missing-input failure")
	}
	var mie MissingInputError
	if !errors.As(err, &mie) {
		t.Fatalf("wrong error type: %T", err)
	}
}

func TestASCERefETHumidityPaths(t *testing.T) {
	// identical actual vapor pressure through different measures must
	// give identical ETref
	w1 := testDay()
	w1.Vapr = esat(10.)
	w2 := testDay()
	w2.Tdew = 10.
	e1, _, _, err1 := asceRefET(w1, ShortReference, 200., 40., 2., 180)
	e2, _, _, err2 := asceRefET(w2, ShortReference, 200., 40., 2., 180)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if e1 != e2 {
		t.Errorf("vapr vs tdew paths disagree: %f vs %f", e1, e2)
	}

	w3 := testDay()
	w3.RHmax, w3.RHmin = 80., 40.
	e3, u2, rhmin, err := asceRefET(w3, ShortReference, 200., 40., 2., 180)
	if err != nil {
		t.Fatalf("rh path: %v", err)
	}
	if !(e3 > 0. && e3 < 20.) {
		t.Errorf("rh path ETref implausible: %f", e3)
	}
	if u2 != 2. {
		t.Errorf("2 m wind should pass through: got %f", u2)
	}
	if rhmin != 40. {
		t.Errorf("measured RHmin should pass through: got %f", rhmin)
	}
}

func TestASCERefETTallExceedsShort(t *testing.T) {
	// hot, dry and windy: the alfalfa reference must exceed grass
	wd := NewWeatherDay(28., 35., 18., 4., 0.)
	wd.Vapr = 1.
	short, _, _, err := asceRefET(wd, ShortReference, 1000., 38., 2., 190)
	if err != nil {
		t.Fatal(err)
	}
	tall, _, _, err := asceRefET(wd, TallReference, 1000., 38., 2., 190)
	if err != nil {
		t.Fatal(err)
	}
	if tall <= short {
		t.Errorf("ETr %f not above ETo %f", tall, short)
	}
}

func TestASCERefETMissingInputs(t *testing.T) {
	wd := testDay()
	wd.Vapr = 1.2
	wd.Srad = math.NaN()
	if _, _, _, err := asceRefET(wd, ShortReference, 200., 40., 2., 180); err == nil {
		t.Error("missing radiation accepted")
	}
	wd = testDay()
	wd.Vapr = 1.2
	wd.Wndsp = math.NaN()
	if _, _, _, err := asceRefET(wd, ShortReference, 200., 40., 2., 180); err == nil {
		t.Error("missing wind accepted")
	}
}

func TestWindAt2m(t *testing.T) {
	if u := windAt2m(3., 2.); u != 3. {
		t.Errorf("2 m measurement adjusted: %f", u)
	}
	// above 2 m the log profile reduces the speed
	if u := windAt2m(3., 10.); !(u < 3. && u > 1.5) {
		t.Errorf("10 m adjustment implausible: %f", u)
	}
}

func TestExtraterrestrialRadiation(t *testing.T) {
	// mid-latitude summer vs winter
	smr := extraterrestrialRadiation(45., 172)
	wtr := extraterrestrialRadiation(45., 355)
	if !(smr > 35. && smr < 45.) {
		t.Errorf("summer Ra implausible: %f", smr)
	}
	if !(wtr > 5. && wtr < 15.) {
		t.Errorf("winter Ra implausible: %f", wtr)
	}
	// polar night
	if ra := extraterrestrialRadiation(80., 355); ra > 1e-9 {
		t.Errorf("polar-night Ra nonzero: %f", ra)
	}
}
