package fao56

import (
	"math"
	"time"

	"github.com/gosuri/uiprogress"
)

type runState int

const (
	uninitialized runState = iota
	running
	completed
)

// Model binds the collaborators and date range of one simulation. A
// Model owns its day-to-day state exclusively; simulate independent
// plots with independent Models.
type Model struct {
	Par *Parameters
	Wth *Weather
	Irr *Irrigation
	Upd *Updates     // optional per-date overrides
	Sol *SoilProfile // optional stratified profile

	// ConsP holds the depletion fraction at Pbase instead of adjusting
	// it daily with crop demand.
	ConsP bool

	Start, End time.Time
	Res        Results

	state runState
	ev    evapLayer
	rz    rootZone
}

// NewModel binds the required collaborators for the given date range.
// Overrides, a soil profile and ConsP may be set on the returned value
// before Run.
func NewModel(par *Parameters, wth *Weather, irr *Irrigation, start, end time.Time) *Model {
	return &Model{Par: par, Wth: wth, Irr: irr, Start: dayDate(start), End: dayDate(end)}
}

// check validates the configuration before the recurrence starts.
func (m *Model) check() error {
	if m.Par == nil || m.Wth == nil || m.Irr == nil {
		return ConfigurationError(" model: parameters, weather and irrigation are all required")
	}
	if m.Start.After(m.End) {
		return ConfigurationError(" model: start date after end date")
	}
	if err := m.Par.Check(); err != nil {
		return err
	}
	if err := m.Wth.Check(); err != nil {
		return err
	}
	if m.Sol != nil && m.Sol.Depth() < m.Par.Zrmax {
		return ConfigurationError(" model: soil profile shallower than the maximum rooting depth")
	}
	return nil
}

// Run executes the daily recurrence over [Start,End], filling Res with
// one record per day. Any fatal condition aborts the run; the model
// never interpolates missing weather or substitutes defaults for
// missing daily inputs.
func (m *Model) Run() error { return m.run(nil) }

// RunWithProgress is Run with a terminal progress bar over the day
// loop.
func (m *Model) RunWithProgress() error {
	nd := int(m.End.Sub(m.Start).Hours()/24.) + 1
	uiprogress.Start()
	bar := uiprogress.AddBar(nd).AppendCompleted().PrependElapsed()
	err := m.run(func() { bar.Incr() })
	uiprogress.Stop()
	return err
}

func (m *Model) run(tick func()) error {
	if err := m.check(); err != nil {
		return err
	}
	m.state = running
	m.ev = newEvapLayer(m.Par)
	m.rz = newRootZone(m.Par, m.Sol)
	fw := 1.

	nd := int(m.End.Sub(m.Start).Hours()/24.) + 1
	res := make(Results, 0, nd)
	for d := m.Start; !d.After(m.End); d = d.AddDate(0, 0, 1) {
		wd, ok := m.Wth.Day(d)
		if !ok {
			m.state = uninitialized
			return DataGapError{Date: d}
		}
		doy := d.YearDay()

		var etref, u2, rhmin float64
		var err error
		if wd.Measured && !math.IsNaN(wd.ETref) {
			// an observed reference ET bypasses the ASCE computation
			etref = wd.ETref
			u2, rhmin, err = climateFactors(wd, m.Wth.Wndht)
		} else {
			etref, u2, rhmin, err = asceRefET(wd, m.Wth.Rfcrp, m.Wth.Z, m.Wth.Lat, m.Wth.Wndht, doy)
		}
		if err != nil {
			m.state = uninitialized
			return err
		}

		dos := int(d.Sub(m.Start).Hours() / 24.)
		kcb, h := m.Par.stageCoeffs(dos)
		kcb, h, _ = m.Upd.apply(d, kcb, h, math.NaN())
		m.rz.setRoots(kcb)

		kcmax := kcMax(kcb, h, u2, rhmin)
		fc := canopyCover(kcb, h, kcmax)
		_, _, fc = m.Upd.apply(d, kcb, h, fc)

		irrig := 0.
		if iev, ok := m.Irr.Event(d); ok && iev.Depth > 0. {
			irrig = iev.Depth
			fw = iev.Fw
		} else if wd.Rain > 0. {
			fw = 1. // rain wets the whole surface
		}

		few, kr, ke, e, dpe := m.ev.advance(etref, kcb, kcmax, fc, fw, wd.Rain, irrig)
		kc := kcb + ke
		etc := kc * etref
		p, raw, rawx, ks, etcadj, t, dp := m.rz.advance(etref, kcb, e, etc, wd.Rain, irrig, m.ConsP)

		rec := OutputRecord{
			Date: d, Year: d.Year(), DOY: doy, DOW: int(d.Weekday()),
			ETref: etref, Kcb: kcb, H: h, Kcmax: kcmax, Fc: fc, Fw: fw, Few: few,
			De: m.ev.de, Kr: kr, Ke: ke, E: e, DPe: dpe, Kc: kc, ETc: etc,
			TAW: m.rz.taw, Zr: m.rz.zr, P: p, RAW: raw,
			Ks: ks, ETcadj: etcadj, T: t, DP: dp,
			Dr: m.rz.dr, FDr: frac(m.rz.dr, m.rz.taw),
			Irrig: irrig, Rain: wd.Rain,
		}
		if m.rz.stratified {
			rec.TAWrmax = m.rz.tawx
			rec.RAWrmax = rawx
			rec.Drmax = m.rz.drx
			rec.FDrmax = frac(m.rz.drx, m.rz.tawx)
		}
		res = append(res, rec)
		if tick != nil {
			tick()
		}
	}
	m.Res = res
	m.state = completed
	return nil
}

// FinalState surfaces the closing depletions [mm] once a run has
// completed. In single-layer runs drmax is zero.
func (m *Model) FinalState() (de, dr, drmax float64, ok bool) {
	if m.state != completed {
		return 0., 0., 0., false
	}
	return m.ev.de, m.rz.dr, m.rz.drx, true
}

func frac(d, taw float64) float64 {
	if taw <= 0. {
		return 0.
	}
	return d / taw
}
