package fao56

import (
	"time"

	"github.com/maseology/mmio"
)

const csvHeader = "Year,DOY,DOW,ETref,Kcb,h,Kcmax,fc,fw,few,De,Kr,Ke,E,DPe,Kc,ETc,TAW,TAWrmax,Zr,p,RAW,RAWrmax,Ks,ETcadj,T,DP,Dr,fDr,Drmax,fDrmax,Irrig,Rain"

// WriteCSV saves the simulated series as a dated table in the standard
// column order.
func (res Results) WriteCSV(fp string) {
	n := len(res)
	dts := make([]time.Time, n)
	cols := make([][]float64, 33)
	for j := range cols {
		cols[j] = make([]float64, n)
	}
	for i, r := range res {
		dts[i] = r.Date
		for j, v := range []float64{
			float64(r.Year), float64(r.DOY), float64(r.DOW),
			r.ETref, r.Kcb, r.H, r.Kcmax, r.Fc, r.Fw, r.Few,
			r.De, r.Kr, r.Ke, r.E, r.DPe, r.Kc, r.ETc,
			r.TAW, r.TAWrmax, r.Zr, r.P, r.RAW, r.RAWrmax,
			r.Ks, r.ETcadj, r.T, r.DP, r.Dr, r.FDr, r.Drmax, r.FDrmax,
			r.Irrig, r.Rain,
		} {
			cols[j][i] = v
		}
	}
	mmio.WriteCsvDateFloats(fp, "date,"+csvHeader, dts, cols...)
}
