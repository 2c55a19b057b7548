package fao56

import "github.com/maseology/mmaths"

// rootZone carries root-zone depletion through the daily water-balance
// recurrence. When a stratified profile is present a parallel state is
// kept for the maximum root zone, against which deep percolation is
// judged; the two states converge once roots reach full depth.
type rootZone struct {
	par        *Parameters
	sp         *SoilProfile
	zr         float64 // current rooting depth [m]
	dr, taw    float64 // depletion and capacity of the current root zone [mm]
	drx, tawx  float64 // ditto for the maximum root zone (stratified mode)
	stratified bool
}

func newRootZone(par *Parameters, sp *SoilProfile) rootZone {
	rz := rootZone{par: par, sp: sp, zr: par.Zrini, stratified: sp != nil}
	if rz.stratified {
		rz.taw, rz.dr = sp.waterTo(rz.zr)
		rz.tawx, rz.drx = sp.waterTo(par.Zrmax)
		rz.drx = clampf(rz.drx, 0., rz.tawx)
	} else {
		rz.taw = 1000. * (par.ThetaFC - par.ThetaWP) * rz.zr
		rz.dr = 1000. * (par.ThetaFC - par.Theta0) * rz.zr
	}
	rz.dr = clampf(rz.dr, 0., rz.taw)
	return rz
}

// setRoots advances rooting depth with the crop development implied by
// today's basal coefficient. Roots never recede. The carried depletion
// is re-expressed against the enlarged capacity: in single-layer mode
// the fractional depletion is preserved; in stratified mode the newly
// tapped soil brings its share of the sub-root depletion, which makes
// Dr equal Drmax exactly once Zr reaches Zrmax.
func (rz *rootZone) setRoots(kcb float64) {
	u := rz.par.seasonFrac(kcb)
	zr := rz.par.Zrmax
	if u < 1. {
		zr = mmaths.LinearTransform(rz.par.Zrini, rz.par.Zrmax, u)
	}
	if zr <= rz.zr {
		return
	}
	tawOld := rz.taw
	if rz.stratified {
		rz.taw, _ = rz.sp.waterTo(zr)
		if zr == rz.par.Zrmax {
			rz.dr = rz.drx // roots span the full accounted profile
		} else if rz.tawx > tawOld {
			rz.dr += (rz.drx - rz.dr) * (rz.taw - tawOld) / (rz.tawx - tawOld)
		}
	} else {
		rz.taw = 1000. * (rz.par.ThetaFC - rz.par.ThetaWP) * zr
		if tawOld > 0. {
			rz.dr *= rz.taw / tawOld
		}
	}
	rz.zr = zr
	rz.dr = clampf(rz.dr, 0., rz.taw)
}

// advance performs one day of the root-zone water balance. etc is the
// unstressed crop demand used by the depletion-fraction adjustment.
func (rz *rootZone) advance(etref, kcb, e, etc, rain, irrig float64, consP bool) (p, raw, rawx, ks, etcadj, t, dp float64) {
	p = rz.par.Pbase
	if !consP {
		p = clampf(rz.par.Pbase+.04*(5.-etc), .1, .8)
	}
	raw = p * rz.taw
	if rz.stratified {
		rawx = p * rz.tawx
	}

	ks = 1.
	if rz.dr > raw && rz.taw > raw {
		ks = clampf((rz.taw-rz.dr)/(rz.taw-raw), 0., 1.)
	}
	t = ks * kcb * etref
	etcadj = t + e

	// water passing the (maximum) root zone is lost to percolation
	dref := rz.dr
	if rz.stratified {
		dref = rz.drx
	}
	dp = rain + irrig - etcadj - dref
	if dp < 0. {
		dp = 0.
	}

	rz.dr = clampf(rz.dr-rain-irrig+etcadj+dp, 0., rz.taw)
	if rz.stratified {
		rz.drx = clampf(rz.drx-rain-irrig+etcadj+dp, 0., rz.tawx)
	}
	return
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
