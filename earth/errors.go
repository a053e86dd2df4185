package earth

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by site construction and accessors.
var (
	ErrConfig          = errors.New("earth: invalid layer stack configuration")
	ErrInvalidLayer    = errors.New("earth: invalid layer property")
	ErrIndexOutOfRange = errors.New("earth: layer index out of range")
	ErrUnknownProfile  = errors.New("earth: unknown profile")
)

func validateColumns(conductivities, thicknesses []float64, names []string) error {
	if len(conductivities) == 0 {
		return fmt.Errorf("%w: at least one layer is required", ErrConfig)
	}
	if len(conductivities) != len(thicknesses) || len(conductivities) != len(names) {
		return fmt.Errorf("%w: %d conductivities, %d thicknesses, %d names",
			ErrConfig, len(conductivities), len(thicknesses), len(names))
	}
	return nil
}

func validateLayer(i, n int, thickness, conductivity float64) error {
	if math.IsNaN(conductivity) || math.IsInf(conductivity, 0) || conductivity <= 0 {
		return fmt.Errorf("%w: layer %d conductivity must be finite and > 0: %g", ErrInvalidLayer, i, conductivity)
	}
	if math.IsNaN(thickness) || thickness <= 0 {
		return fmt.Errorf("%w: layer %d thickness must be > 0: %g", ErrInvalidLayer, i, thickness)
	}
	if i < n-1 && math.IsInf(thickness, 1) {
		return fmt.Errorf("%w: only the bottom layer may be a half-space (layer %d of %d)", ErrInvalidLayer, i, n)
	}
	return nil
}
