package tools

import (
	"time"

	"github.com/maseology/fao56"
	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"
)

// Evaluation pairs simulated root-zone depletion with measured
// soil-water deficit on the dates where both exist.
type Evaluation struct {
	Dates    []time.Time
	Obs, Sim []float64
}

// NewEvaluation extracts the matched pairs from a completed run.
func NewEvaluation(res fao56.Results, obs map[time.Time]float64) Evaluation {
	var ev Evaluation
	for _, r := range res {
		if o, ok := obs[date(r.Date)]; ok {
			ev.Dates = append(ev.Dates, r.Date)
			ev.Obs = append(ev.Obs, o)
			ev.Sim = append(ev.Sim, r.Dr)
		}
	}
	return ev
}

// Stats returns goodness-of-fit measures of the simulated depletion.
func (ev Evaluation) Stats() (kge, nse, rmse, bias float64) {
	return objfunc.KGE(ev.Obs, ev.Sim),
		objfunc.NSE(ev.Obs, ev.Sim),
		objfunc.RMSE(ev.Obs, ev.Sim),
		objfunc.Bias(ev.Obs, ev.Sim)
}

// WriteCSV saves the matched pairs for plotting.
func (ev Evaluation) WriteCSV(fp string) {
	mmio.WriteCsvDateFloats(fp, "date,obs,sim", ev.Dates, ev.Obs, ev.Sim)
}
