package fao56

import (
	"encoding/gob"
	"fmt"
	"os"
	"time"
)

// OutputRecord is one simulated day. The field set is identical in
// single-layer and stratified runs; TAWrmax, RAWrmax, Drmax and FDrmax
// are zero when no soil profile was supplied.
type OutputRecord struct {
	Date           time.Time
	Year, DOY, DOW int

	ETref   float64 // reference ET [mm]
	Kcb     float64 // basal crop coefficient
	H       float64 // plant height [m]
	Kcmax   float64 // upper-limit crop coefficient
	Fc      float64 // canopy cover fraction
	Fw      float64 // wetted soil fraction
	Few     float64 // exposed-and-wetted fraction
	De      float64 // surface layer depletion [mm]
	Kr      float64 // evaporation reduction coefficient
	Ke      float64 // evaporation coefficient
	E       float64 // soil evaporation [mm]
	DPe     float64 // percolation under the wetted fraction [mm]
	Kc      float64 // total crop coefficient
	ETc     float64 // unstressed crop ET [mm]
	TAW     float64 // root-zone total available water [mm]
	TAWrmax float64
	Zr      float64 // rooting depth [m]
	P       float64 // depletion fraction
	RAW     float64 // readily available water [mm]
	RAWrmax float64
	Ks      float64 // transpiration reduction coefficient
	ETcadj  float64 // stress-adjusted crop ET [mm]
	T       float64 // transpiration [mm]
	DP      float64 // deep percolation [mm]
	Dr      float64 // root-zone depletion [mm]
	FDr     float64 // fractional root-zone depletion
	Drmax   float64
	FDrmax  float64
	Irrig   float64 // irrigation applied [mm]
	Rain    float64 // precipitation [mm]
}

// Results is the complete simulated series, one record per day, ordered
// by date with no gaps.
type Results []OutputRecord

// SaveGob writes the series to file.
func (res Results) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" results.SaveGob %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(res); err != nil {
		return fmt.Errorf(" results.SaveGob %v", err)
	}
	return nil
}

// LoadGobResults reads a series saved with SaveGob.
func LoadGobResults(fp string) (Results, error) {
	var res Results
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(&res); err != nil {
		return nil, err
	}
	return res, nil
}
