package tools

import (
	"math"
	"testing"
	"time"

	"github.com/maseology/fao56"
)

func TestEvaluationPairing(t *testing.T) {
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	res := make(fao56.Results, 10)
	for i := range res {
		res[i] = fao56.OutputRecord{Date: start.AddDate(0, 0, i), Dr: float64(10 + i)}
	}
	obs := map[time.Time]float64{
		start.AddDate(0, 0, 2): 12.,
		start.AddDate(0, 0, 7): 18.,
		start.AddDate(0, 0, 30): 99., // outside the simulated range
	}

	ev := NewEvaluation(res, obs)
	if len(ev.Dates) != 2 {
		t.Fatalf("matched pairs: got %d", len(ev.Dates))
	}
	if ev.Sim[0] != 12. || ev.Sim[1] != 17. {
		t.Errorf("simulated extraction: got %v", ev.Sim)
	}
	if ev.Obs[0] != 12. || ev.Obs[1] != 18. {
		t.Errorf("observed extraction: got %v", ev.Obs)
	}
}

func TestEvaluationStats(t *testing.T) {
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	res := make(fao56.Results, 6)
	obs := make(map[time.Time]float64, 6)
	for i, v := range []float64{10., 14., 22., 31., 26., 18.} {
		dt := start.AddDate(0, 0, i)
		res[i] = fao56.OutputRecord{Date: dt, Dr: v}
		obs[dt] = v // perfect model
	}
	ev := NewEvaluation(res, obs)
	kge, nse, rmse, bias := ev.Stats()
	if math.Abs(kge-1.) > 1e-9 || math.Abs(nse-1.) > 1e-9 {
		t.Errorf("perfect-fit efficiencies: KGE %f NSE %f", kge, nse)
	}
	if math.Abs(rmse) > 1e-9 {
		t.Errorf("perfect-fit RMSE: got %f", rmse)
	}
	if math.IsNaN(bias) || math.IsInf(bias, 0) {
		t.Errorf("bias not finite: got %f", bias)
	}
}
