package fao56

import (
	"math"

	"github.com/maseology/mmaths"
)

// kcMin is the floor crop coefficient of bare, dry soil used by the
// canopy-cover relation (FAO-56 eq. 76).
const kcMin = .15

// stageCoeffs interpolates the basal crop coefficient and plant height
// for a day-of-season across the four phenological stages. Beyond the
// season the end-of-season values hold.
func (par *Parameters) stageCoeffs(dos int) (kcb, h float64) {
	s1 := par.Lini
	s2 := s1 + par.Ldev
	s3 := s2 + par.Lmid
	s4 := s3 + par.Lend
	switch {
	case dos < s1:
		return par.Kcbini, par.Hini
	case dos < s2:
		u := float64(dos-s1) / float64(par.Ldev)
		return mmaths.LinearTransform(par.Kcbini, par.Kcbmid, u),
			mmaths.LinearTransform(par.Hini, par.Hmax, u)
	case dos < s3:
		return par.Kcbmid, par.Hmax
	case dos < s4:
		u := float64(dos-s3) / float64(par.Lend)
		return mmaths.LinearTransform(par.Kcbmid, par.Kcbend, u), par.Hmax
	default:
		return par.Kcbend, par.Hmax
	}
}

// seasonFrac returns the crop development fraction implied by the basal
// coefficient, 0 at planting values and 1 from mid-season on.
func (par *Parameters) seasonFrac(kcb float64) float64 {
	if par.Kcbmid <= par.Kcbini {
		return 1.
	}
	u := (kcb - par.Kcbini) / (par.Kcbmid - par.Kcbini)
	if u < 0. {
		return 0.
	} else if u > 1. {
		return 1.
	}
	return u
}

// kcMax returns the daily upper-limit crop coefficient from the 2 m
// wind speed, minimum relative humidity and plant height (FAO-56
// eq. 72).
func kcMax(kcb, h, u2, rhmin float64) float64 {
	if h < .001 {
		h = .001
	}
	v := 1.2 + (.04*(u2-2.)-.004*(rhmin-45.))*math.Pow(h/3., .3)
	if kcb+.05 > v {
		return kcb + .05
	}
	return v
}

// canopyCover derives the effective fraction of ground covered by
// vegetation from the basal coefficient (FAO-56 eq. 76).
func canopyCover(kcb, h, kcmax float64) float64 {
	if kcmax <= kcMin {
		return 0.
	}
	u := (kcb - kcMin) / (kcmax - kcMin)
	if u <= 0. {
		return 0.
	}
	fc := math.Pow(u, 1.+.5*h)
	if fc > .99 {
		fc = .99
	}
	return fc
}
