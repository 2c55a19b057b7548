package fao56

import (
	"fmt"
	"math"
	"time"

	"github.com/maseology/goHydro/solirrad"
)

// reference crop selectors
const (
	ShortReference = "S" // clipped cool-season grass
	TallReference  = "T" // alfalfa
)

// WeatherDay holds one calendar day of station observations. Optional
// fields left unmeasured must be set to NaN (see NewWeatherDay); a zero
// value is a legal measurement for most of them.
type WeatherDay struct {
	Srad         float64 // incoming solar radiation [MJ/m²/d]
	Tmax, Tmin   float64 // air temperature extremes [°C]
	Vapr         float64 // actual vapor pressure [kPa]
	Tdew         float64 // dew point temperature [°C]
	RHmax, RHmin float64 // relative humidity extremes [%]
	Wndsp        float64 // wind speed at measurement height [m/s]
	Rain         float64 // precipitation [mm]
	ETref        float64 // reference ET [mm], NaN unless supplied
	Measured     bool    // ETref is an observation rather than an estimate
}

// NewWeatherDay builds a record from the required fields, leaving every
// optional measurement absent (NaN).
func NewWeatherDay(srad, tmax, tmin, wndsp, rain float64) WeatherDay {
	nan := math.NaN()
	return WeatherDay{
		Srad: srad, Tmax: tmax, Tmin: tmin, Wndsp: wndsp, Rain: rain,
		Vapr: nan, Tdew: nan, RHmax: nan, RHmin: nan, ETref: nan,
	}
}

// Weather collects the daily records and station metadata needed by the
// reference ET computation. Records are keyed by calendar date and are
// immutable once added.
type Weather struct {
	Rfcrp string  // reference crop: ShortReference or TallReference
	Z     float64 // station elevation [m]
	Lat   float64 // station latitude [deg]
	Wndht float64 // wind measurement height [m]
	Days  map[time.Time]WeatherDay
}

// NewWeather builds an empty collection for the given station.
func NewWeather(rfcrp string, z, lat, wndht float64) *Weather {
	return &Weather{
		Rfcrp: rfcrp,
		Z:     z,
		Lat:   lat,
		Wndht: wndht,
		Days:  make(map[time.Time]WeatherDay),
	}
}

// AddDay registers the record for one date. A date may only be loaded
// once; re-loading is rejected rather than silently overwritten.
func (w *Weather) AddDay(dt time.Time, wd WeatherDay) error {
	k := dayDate(dt)
	if _, ok := w.Days[k]; ok {
		return ValueRangeError(fmt.Sprintf(" weather: %s already loaded", k.Format("2006-01-02")))
	}
	w.Days[k] = wd
	return nil
}

// Day returns the record for a date, if loaded.
func (w *Weather) Day(dt time.Time) (WeatherDay, bool) {
	wd, ok := w.Days[dayDate(dt)]
	return wd, ok
}

// Check validates the station metadata.
func (w *Weather) Check() error {
	if w.Rfcrp != ShortReference && w.Rfcrp != TallReference {
		return ConfigurationError(fmt.Sprintf(" weather: unknown reference crop %q", w.Rfcrp))
	}
	if w.Lat < -90. || w.Lat > 90. {
		return ConfigurationError(fmt.Sprintf(" weather: latitude %.2f out of range", w.Lat))
	}
	if w.Wndht <= 0. {
		return ConfigurationError(" weather: wind measurement height must be positive")
	}
	return nil
}

// CheckAndPrint summarizes the loaded record: period, annualized rain,
// and a screen of observed solar radiation against the top-of-atmosphere
// ceiling at the station latitude.
func (w *Weather) CheckAndPrint() {
	fmt.Println("Weather summary:")
	nt := len(w.Days)
	if nt == 0 {
		fmt.Println(" no records loaded")
		return
	}
	var t0, t1 time.Time
	sr, nsus := 0., 0
	si := solirrad.New(w.Lat, 0., 0.)
	for dt, wd := range w.Days {
		if t0.IsZero() || dt.Before(t0) {
			t0 = dt
		}
		if dt.After(t1) {
			t1 = dt
		}
		sr += wd.Rain
		if wd.Srad*1.e6/86400. > si.PSIdaily(dt.YearDay()) { // mean daily flux [W/m²]
			nsus++
		}
	}
	fmt.Printf(" %v to %v, daily (%d records)\n", t0.Format("2006-01-02"), t1.Format("2006-01-02"), nt)
	fmt.Printf(" station: %s reference, %.0f m asl, lat %.3f, wind at %.1f m\n", w.Rfcrp, w.Z, w.Lat, w.Wndht)
	fmt.Printf(" rain (mm/yr): %.0f\n", sr*365.24/float64(nt))
	if nsus > 0 {
		fmt.Printf(" WARNING: %d record(s) with solar radiation above the extraterrestrial ceiling\n", nsus)
	}
}
