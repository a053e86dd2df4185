package impedance

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by the impedance engine.
var (
	ErrConfig       = errors.New("impedance: invalid layer stack")
	ErrInvalidInput = errors.New("impedance: invalid input")
)

func validateStack(resistivities, thicknesses []float64) error {
	n := len(resistivities)
	if n == 0 {
		return fmt.Errorf("%w: at least one layer is required", ErrConfig)
	}
	if len(thicknesses) != n {
		return fmt.Errorf("%w: %d resistivities but %d thicknesses", ErrConfig, n, len(thicknesses))
	}
	for i, rho := range resistivities {
		if math.IsNaN(rho) || math.IsInf(rho, 0) || rho <= 0 {
			return fmt.Errorf("%w: resistivity of layer %d must be finite and > 0: %g", ErrInvalidInput, i, rho)
		}
	}
	for i, h := range thicknesses {
		if math.IsNaN(h) || h <= 0 {
			return fmt.Errorf("%w: thickness of layer %d must be > 0: %g", ErrInvalidInput, i, h)
		}
		if i < n-1 && math.IsInf(h, 1) {
			return fmt.Errorf("%w: layer %d of %d has infinite thickness above the half-space", ErrInvalidInput, i, n)
		}
	}
	return nil
}

func validateFrequencies(freqs []float64) error {
	for i, f := range freqs {
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return fmt.Errorf("%w: frequency %d must be finite and >= 0: %g", ErrInvalidInput, i, f)
		}
	}
	return nil
}

// validateSpectrum rejects frequency/resistivity pairs whose wavenumber
// argument ωμ0/ρ overflows or underflows to zero.
func validateSpectrum(resistivities, freqs []float64) error {
	for j, f := range freqs {
		if f == 0 {
			continue
		}
		omegaMu := 2 * math.Pi * f * Mu0
		if math.IsInf(omegaMu, 0) {
			return fmt.Errorf("%w: frequency %d is too large: %g", ErrInvalidInput, j, f)
		}
		for i, rho := range resistivities {
			if omegaMu/rho == 0 {
				return fmt.Errorf("%w: frequency %d (%g Hz) underflows against resistivity of layer %d (%g)",
					ErrInvalidInput, j, f, i, rho)
			}
		}
	}
	return nil
}

func validateScale(scale float64) error {
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return fmt.Errorf("%w: output scale must be finite and non-zero: %g", ErrInvalidInput, scale)
	}
	return nil
}

func validateLayerIndex(layer, n int) error {
	if layer < 0 || layer >= n {
		return fmt.Errorf("%w: layer index %d not in [0, %d)", ErrInvalidInput, layer, n)
	}
	return nil
}
