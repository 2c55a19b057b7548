package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/maseology/fao56"
	"github.com/maseology/mmio"
)

// demo season: a 150-day crop at a semi-arid station, irrigated on a
// fixed interval, with a stratified soil profile
func main() {

	const (
		lat, elev = 40.45, 1274. // Greeley CO-ish
		wndht     = 3.
	)

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nrun complete")

	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 149)

	par := fao56.DefaultParameters()
	par.Theta0 = .18

	wth := fao56.NewWeather(fao56.ShortReference, elev, lat, wndht)
	for d, i := start, 0; !d.After(end); d, i = d.AddDate(0, 0, 1), i+1 {
		doy := float64(d.YearDay())
		wd := fao56.NewWeatherDay(
			22.+6.*math.Sin(2.*math.Pi*(doy-81.)/365.), // Srad [MJ/m²]
			24.+8.*math.Sin(2.*math.Pi*(doy-105.)/365.), // Tmax [°C]
			8.+7.*math.Sin(2.*math.Pi*(doy-105.)/365.),  // Tmin [°C]
			2.5, // wind [m/s]
			0.)  // rain [mm]
		if i%11 == 3 {
			wd.Rain = 8.
		}
		wd.RHmax, wd.RHmin = 85., 30.
		if err := wth.AddDay(d, wd); err != nil {
			log.Fatalf("%v", err)
		}
	}
	wth.CheckAndPrint()

	irr := fao56.NewIrrigation()
	for d := start.AddDate(0, 0, 20); d.Before(end); d = d.AddDate(0, 0, 7) {
		if err := irr.AddEvent(d, 25., 1.); err != nil {
			log.Fatalf("%v", err)
		}
	}

	sp, err := fao56.NewSoilProfile([]fao56.SoilLayer{
		{Bottom: 15., ThetaFC: .29, ThetaWP: .145, Theta0: .2},
		{Bottom: 45., ThetaFC: .24, ThetaWP: .12, Theta0: .17},
		{Bottom: 75., ThetaFC: .182, ThetaWP: .091, Theta0: .12},
		{Bottom: 105., ThetaFC: .158, ThetaWP: .079, Theta0: .1},
		{Bottom: 150., ThetaFC: .12, ThetaWP: .06, Theta0: .08},
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	m := fao56.NewModel(&par, wth, irr, start, end)
	m.Sol = sp
	if err := m.RunWithProgress(); err != nil {
		log.Fatalf("%v", err)
	}

	m.Res.WriteCSV("fao56out.csv")
	de, dr, drmax, _ := m.FinalState()
	fmt.Printf("\n %d days simulated;  final De: %.1f  Dr: %.1f  Drmax: %.1f mm\n", len(m.Res), de, dr, drmax)
}
