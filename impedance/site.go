package impedance

import (
	"fmt"

	"github.com/cwbudde/algo-geomag/earth"
)

// ComputeSite runs [Compute] on the resistivity and thickness columns of site.
func ComputeSite(site *earth.Site, freqs []float64, opts ...Option) (*Result, error) {
	if site == nil {
		return nil, fmt.Errorf("%w: nil site", ErrConfig)
	}
	rho, err := site.Resistivities(earth.All())
	if err != nil {
		return nil, err
	}
	h, err := site.Thicknesses(earth.All())
	if err != nil {
		return nil, err
	}
	return Compute(rho, h, freqs, opts...)
}
