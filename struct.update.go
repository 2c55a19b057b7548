package fao56

import (
	"math"
	"time"
)

// Override forces state-variable substitutions for one date. A NaN
// field leaves the interpolated value in place.
type Override struct {
	Kcb, H, Fc float64
}

// Updates is the optional set of per-date overrides applied on top of
// the growth-stage interpolation.
type Updates struct {
	byDate map[time.Time]Override
}

// NewUpdates builds an empty override set.
func NewUpdates() *Updates {
	return &Updates{byDate: make(map[time.Time]Override)}
}

// Set registers the override for a date, replacing any earlier one.
func (u *Updates) Set(dt time.Time, o Override) {
	u.byDate[dayDate(dt)] = o
}

// SetKcb overrides only the basal crop coefficient for a date.
func (u *Updates) SetKcb(dt time.Time, kcb float64) {
	nan := math.NaN()
	u.Set(dt, Override{Kcb: kcb, H: nan, Fc: nan})
}

// apply substitutes the present override fields into the interpolated
// values for the date.
func (u *Updates) apply(dt time.Time, kcb, h, fc float64) (float64, float64, float64) {
	if u == nil {
		return kcb, h, fc
	}
	o, ok := u.byDate[dayDate(dt)]
	if !ok {
		return kcb, h, fc
	}
	if !math.IsNaN(o.Kcb) {
		kcb = o.Kcb
	}
	if !math.IsNaN(o.H) {
		h = o.H
	}
	if !math.IsNaN(o.Fc) {
		fc = o.Fc
	}
	return kcb, h, fc
}
