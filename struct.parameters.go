package fao56

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Parameters holds the crop and soil constants of a single plot. All
// seventeen fields must be set (or defaulted) before a run; the model
// never substitutes values for missing parameters.
type Parameters struct {
	Kcbini, Kcbmid, Kcbend   float64 // basal crop coefficients
	Lini, Ldev, Lmid, Lend   int     // growth stage lengths [days]
	Hini, Hmax               float64 // plant heights [m]
	ThetaFC, ThetaWP, Theta0 float64 // field capacity, wilting point, initial content [m³/m³]
	Zrini, Zrmax             float64 // rooting depths [m]
	Pbase                    float64 // depletion fraction under no stress
	Ze                       float64 // evaporating soil layer depth [m]
	REW                      float64 // readily evaporable water [mm]
}

// DefaultParameters returns the stock FAO-56 parameter set used when a
// crop-specific value is not available.
func DefaultParameters() Parameters {
	return Parameters{
		Kcbini: .15, Kcbmid: 1.1, Kcbend: .5,
		Lini: 25, Ldev: 50, Lmid: 50, Lend: 25,
		Hini: .01, Hmax: 1.2,
		ThetaFC: .25, ThetaWP: .1, Theta0: .1,
		Zrini: .2, Zrmax: 1.4,
		Pbase: .5,
		Ze:    .1,
		REW:   8.,
	}
}

// TEW returns total evaporable water of the surface layer [mm].
func (par *Parameters) TEW() float64 {
	return 1000. * (par.ThetaFC - .5*par.ThetaWP) * par.Ze
}

// Check validates the parameter set before it enters the recurrence.
func (par *Parameters) Check() error {
	if par.Lini < 0 || par.Ldev < 0 || par.Lmid < 0 || par.Lend < 0 {
		return ConfigurationError(" parameters: negative stage length")
	}
	if par.ThetaWP >= par.ThetaFC {
		return ConfigurationError(fmt.Sprintf(" parameters: thetaWP %.3f must be below thetaFC %.3f", par.ThetaWP, par.ThetaFC))
	}
	if par.Ze <= 0. {
		return ConfigurationError(" parameters: evaporation layer depth Ze must be positive")
	}
	if tew := par.TEW(); tew <= par.REW {
		return ConfigurationError(fmt.Sprintf(" parameters: TEW %.1f mm must exceed REW %.1f mm", tew, par.REW))
	}
	if par.Zrini <= 0. || par.Zrmax < par.Zrini {
		return ConfigurationError(" parameters: rooting depths need 0 < Zrini <= Zrmax")
	}
	if par.Pbase <= 0. || par.Pbase >= 1. {
		return ConfigurationError(" parameters: depletion fraction p must lie in (0,1)")
	}
	return nil
}

// SaveGob writes the parameter set to file.
func (par *Parameters) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" parameters.SaveGob %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(par); err != nil {
		return fmt.Errorf(" parameters.SaveGob %v", err)
	}
	return nil
}

// LoadGobParameters reads a parameter set saved with SaveGob.
func LoadGobParameters(fp string) (*Parameters, error) {
	var par Parameters
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(&par); err != nil {
		return nil, err
	}
	return &par, nil
}
