package fao56

import (
	"encoding/gob"
	"fmt"
	"os"
)

// SoilLayer describes one stratum of a layered soil profile. A layer
// spans from the bottom of the layer above (the surface for the first)
// down to Bottom.
type SoilLayer struct {
	Bottom                   float64 // depth to layer bottom [cm]
	ThetaFC, ThetaWP, Theta0 float64 // water contents [m³/m³]
}

// SoilProfile is the optional stratified description of the plot soil.
// When supplied, root-zone water capacities are integrated over the
// layers instead of taken from the single Parameters values.
type SoilProfile struct {
	Layers []SoilLayer
}

// NewSoilProfile validates and assembles a profile from layers ordered
// shallowest to deepest.
func NewSoilProfile(layers []SoilLayer) (*SoilProfile, error) {
	if len(layers) == 0 {
		return nil, ValueRangeError(" soilprofile: no layers given")
	}
	last := 0.
	for i, l := range layers {
		if l.Bottom <= last {
			return nil, ValueRangeError(fmt.Sprintf(" soilprofile: layer %d bottom %.1f cm not below %.1f cm", i, l.Bottom, last))
		}
		if l.ThetaWP >= l.ThetaFC {
			return nil, ValueRangeError(fmt.Sprintf(" soilprofile: layer %d thetaWP %.3f must be below thetaFC %.3f", i, l.ThetaWP, l.ThetaFC))
		}
		last = l.Bottom
	}
	return &SoilProfile{Layers: layers}, nil
}

// Depth returns the profile bottom [m].
func (sp *SoilProfile) Depth() float64 {
	return sp.Layers[len(sp.Layers)-1].Bottom / 100.
}

// waterTo integrates the layered water capacities from the surface down
// to depth [m], returning total available water and the depletion
// implied by the initial contents, both [mm].
func (sp *SoilProfile) waterTo(depth float64) (taw, d0 float64) {
	top := 0.
	for _, l := range sp.Layers {
		bot := l.Bottom / 100.
		if bot > depth {
			bot = depth
		}
		if bot <= top {
			break
		}
		thk := bot - top
		taw += 1000. * (l.ThetaFC - l.ThetaWP) * thk
		d0 += 1000. * (l.ThetaFC - l.Theta0) * thk
		top = l.Bottom / 100.
	}
	if d0 < 0. {
		d0 = 0.
	}
	return
}

// SaveGob writes the profile to file.
func (sp *SoilProfile) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" soilprofile.SaveGob %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(sp); err != nil {
		return fmt.Errorf(" soilprofile.SaveGob %v", err)
	}
	return nil
}

// LoadGobSoilProfile reads a profile saved with SaveGob.
func LoadGobSoilProfile(fp string) (*SoilProfile, error) {
	var sp SoilProfile
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(&sp); err != nil {
		return nil, err
	}
	return &sp, nil
}
