package fao56

// evapLayer carries the cumulative depletion of the evaporating surface
// soil layer through the two-stage drying cycle (FAO-56 eqs. 71-77).
type evapLayer struct {
	de       float64 // cumulative depletion [mm], in [0,TEW]
	tew, rew float64
}

// newEvapLayer initializes surface depletion from the initial water
// content relative to field capacity.
func newEvapLayer(par *Parameters) evapLayer {
	ev := evapLayer{tew: par.TEW(), rew: par.REW}
	ev.de = 1000. * (par.ThetaFC - par.Theta0) * par.Ze
	if ev.de < 0. {
		ev.de = 0.
	} else if ev.de > ev.tew {
		ev.de = ev.tew
	}
	return ev
}

// advance performs one day of surface evaporation accounting given the
// day's wetting and demand, returning the exposed-and-wetted fraction,
// the evaporation reduction coefficient, the evaporation coefficient,
// evaporation itself and percolation under the wetted fraction [mm].
func (ev *evapLayer) advance(etref, kcb, kcmax, fc, fw, rain, irrig float64) (few, kr, ke, e, dpe float64) {
	few = 1. - fc
	if fw < few {
		few = fw
	}

	kr = 1.
	if ev.de > ev.rew {
		kr = (ev.tew - ev.de) / (ev.tew - ev.rew)
		if kr < 0. {
			kr = 0.
		}
	}

	ke = kr * (kcmax - kcb)
	if x := few * kcmax; x < ke {
		ke = x
	}
	if ke < 0. {
		ke = 0.
	}
	e = ke * etref

	// wetting concentrated on the fraction fw; excess over the carried
	// depletion percolates below the evaporating layer
	win := rain + irrig/fw
	dpe = win - ev.de
	if dpe < 0. {
		dpe = 0.
	}
	ev.de -= win
	ev.de += dpe
	if e > 0. && few > 0. {
		ev.de += e / few
	}
	if ev.de < 0. {
		ev.de = 0.
	} else if ev.de > ev.tew {
		ev.de = ev.tew
	}
	return
}
