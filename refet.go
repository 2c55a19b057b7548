package fao56

import (
	"math"
	"time"
)

// daily constants of the ASCE standardized reference equation
const (
	cnShort, cdShort = 900., .34  // clipped grass
	cnTall, cdTall   = 1600., .38 // alfalfa
	albedo           = .23
	sigma            = 4.901e-9 // Stefan-Boltzmann [MJ/K⁴/m²/d]
	gsc              = 4.92     // solar constant [MJ/m²/h]
)

// esat returns saturation vapor pressure [kPa] at temperature t [°C].
func esat(t float64) float64 {
	return .6108 * math.Exp(17.27*t/(t+237.3))
}

// vaporPressure derives actual vapor pressure [kPa] from the available
// humidity measure, in documented precedence: measured vapor pressure,
// then dew point, then the relative humidity extremes.
func vaporPressure(wd WeatherDay) (float64, error) {
	switch {
	case !math.IsNaN(wd.Vapr):
		return wd.Vapr, nil
	case !math.IsNaN(wd.Tdew):
		return esat(wd.Tdew), nil
	case !math.IsNaN(wd.RHmax) && !math.IsNaN(wd.RHmin):
		return (esat(wd.Tmin)*wd.RHmax + esat(wd.Tmax)*wd.RHmin) / 200., nil
	}
	return 0., MissingInputError(" refet: no humidity measure to derive vapor pressure")
}

// windAt2m adjusts a wind speed measured at height z [m] to the
// standard 2 m using the log profile over clipped grass.
func windAt2m(u, z float64) float64 {
	if z == 2. {
		return u
	}
	return u * 4.87 / math.Log(67.8*z-5.42)
}

// extraterrestrialRadiation returns top-of-atmosphere solar radiation
// [MJ/m²/d] at latitude lat [deg] on day-of-year doy.
func extraterrestrialRadiation(lat float64, doy int) float64 {
	phi := lat * math.Pi / 180.
	j := 2. * math.Pi * float64(doy) / 365.
	dr := 1. + .033*math.Cos(j)
	dec := .409 * math.Sin(j-1.39)
	x := -math.Tan(phi) * math.Tan(dec)
	if x < -1. {
		x = -1.
	} else if x > 1. {
		x = 1.
	}
	ws := math.Acos(x)
	return 24. / math.Pi * gsc * dr * (ws*math.Sin(phi)*math.Sin(dec) + math.Cos(phi)*math.Cos(dec)*math.Sin(ws))
}

// climateFactors derives the 2 m wind speed [m/s] and minimum relative
// humidity [%] needed by the Kcmax climate correction, estimating RHmin
// from vapor pressure when it was not measured.
func climateFactors(wd WeatherDay, wndht float64) (u2, rhmin float64, err error) {
	if math.IsNaN(wd.Wndsp) {
		return 0., 0., MissingInputError(" refet: wind speed is required")
	}
	u2 = windAt2m(wd.Wndsp, wndht)
	if !math.IsNaN(wd.RHmin) {
		return u2, wd.RHmin, nil
	}
	ea, err := vaporPressure(wd)
	if err != nil {
		return 0., 0., err
	}
	if math.IsNaN(wd.Tmax) {
		return 0., 0., MissingInputError(" refet: maximum temperature is required")
	}
	rhmin = 100. * ea / esat(wd.Tmax)
	if rhmin > 100. {
		rhmin = 100.
	} else if rhmin < 0. {
		rhmin = 0.
	}
	return u2, rhmin, nil
}

// asceRefET computes the ASCE standardized reference ET [mm/d] for one
// day, also returning the Kcmax climate factors.
func asceRefET(wd WeatherDay, rfcrp string, z, lat, wndht float64, doy int) (etref, u2, rhmin float64, err error) {
	if math.IsNaN(wd.Srad) || math.IsNaN(wd.Tmax) || math.IsNaN(wd.Tmin) {
		return 0., 0., 0., MissingInputError(" refet: solar radiation and temperature extremes are required")
	}
	if u2, rhmin, err = climateFactors(wd, wndht); err != nil {
		return 0., 0., 0., err
	}
	ea, err := vaporPressure(wd)
	if err != nil {
		return 0., 0., 0., err
	}

	tavg := (wd.Tmax + wd.Tmin) / 2.
	pres := 101.3 * math.Pow((293.-.0065*z)/293., 5.26)
	gamma := .000665 * pres
	delta := 2503. * math.Exp(17.27*tavg/(tavg+237.3)) / math.Pow(tavg+237.3, 2.)
	es := (esat(wd.Tmax) + esat(wd.Tmin)) / 2.

	// net radiation, G = 0 on the daily step
	ra := extraterrestrialRadiation(lat, doy)
	rso := (.75 + 2.e-5*z) * ra
	rr := 1.
	if rso > 0. {
		rr = wd.Srad / rso
		if rr < .3 {
			rr = .3
		} else if rr > 1. {
			rr = 1.
		}
	}
	fcd := 1.35*rr - .35
	rnl := sigma * fcd * (.34 - .14*math.Sqrt(ea)) *
		(math.Pow(wd.Tmax+273.16, 4.) + math.Pow(wd.Tmin+273.16, 4.)) / 2.
	rn := (1.-albedo)*wd.Srad - rnl

	cn, cd := cnShort, cdShort
	if rfcrp == TallReference {
		cn, cd = cnTall, cdTall
	}
	etref = (.408*delta*rn + gamma*cn/(tavg+273.)*u2*(es-ea)) /
		(delta + gamma*(1.+cd*u2))
	if etref < 0. {
		etref = 0.
	}
	return etref, u2, rhmin, nil
}

// RefET returns the ASCE standardized reference ET [mm/d] for a loaded
// date, regardless of any observed value carried by the record.
func (w *Weather) RefET(dt time.Time) (float64, error) {
	wd, ok := w.Day(dt)
	if !ok {
		return 0., DataGapError{Date: dayDate(dt)}
	}
	etref, _, _, err := asceRefET(wd, w.Rfcrp, w.Z, w.Lat, w.Wndht, dayDate(dt).YearDay())
	return etref, err
}
