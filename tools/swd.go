// Package tools post-processes simulated series against field
// measurements: layered soil-water content observations are reduced to
// root-zone deficits and compared with simulated depletion.
package tools

import (
	"fmt"
	"sort"
	"time"
)

// SoilWaterContent holds measured volumetric water content organized by
// soil layer and measurement date. Layers follow the convention of the
// model soil profile: the first spans from the surface to Bottoms[0].
type SoilWaterContent struct {
	Bottoms []float64 // layer bottoms [cm], strictly increasing
	Obs     map[time.Time][]float64
}

// NewSoilWaterContent builds an empty measurement set over the given
// layering.
func NewSoilWaterContent(bottoms []float64) (*SoilWaterContent, error) {
	last := 0.
	for i, b := range bottoms {
		if b <= last {
			return nil, fmt.Errorf(" soilwatercontent: layer %d bottom %.1f cm not below %.1f cm", i, b, last)
		}
		last = b
	}
	return &SoilWaterContent{Bottoms: bottoms, Obs: make(map[time.Time][]float64)}, nil
}

// AddObservation registers one date of readings, one per layer.
func (swc *SoilWaterContent) AddObservation(dt time.Time, theta []float64) error {
	if len(theta) != len(swc.Bottoms) {
		return fmt.Errorf(" soilwatercontent: %d readings for %d layers", len(theta), len(swc.Bottoms))
	}
	swc.Obs[date(dt)] = theta
	return nil
}

// Deficit reduces the readings to a root-zone soil-water deficit [mm]
// down to depth [m], given each layer's field capacity. Layers wetter
// than field capacity contribute no deficit.
func (swc *SoilWaterContent) Deficit(thetaFC []float64, depth float64) (map[time.Time]float64, error) {
	if len(thetaFC) != len(swc.Bottoms) {
		return nil, fmt.Errorf(" soilwatercontent: %d field capacities for %d layers", len(thetaFC), len(swc.Bottoms))
	}
	out := make(map[time.Time]float64, len(swc.Obs))
	for dt, theta := range swc.Obs {
		top, d := 0., 0.
		for i, b := range swc.Bottoms {
			bot := b / 100.
			if bot > depth {
				bot = depth
			}
			if bot <= top {
				break
			}
			if dl := 1000. * (thetaFC[i] - theta[i]) * (bot - top); dl > 0. {
				d += dl
			}
			top = b / 100.
		}
		out[dt] = d
	}
	return out, nil
}

// Dates lists the measurement dates in order.
func (swc *SoilWaterContent) Dates() []time.Time {
	dts := make([]time.Time, 0, len(swc.Obs))
	for dt := range swc.Obs {
		dts = append(dts, dt)
	}
	sort.Slice(dts, func(i, j int) bool { return dts[i].Before(dts[j]) })
	return dts
}

// date truncates to the calendar day in UTC, matching the model's
// record keying.
func date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
