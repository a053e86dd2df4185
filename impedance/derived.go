package impedance

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

func split(z []complex128) (re, im []float64) {
	re = make([]float64, len(z))
	im = make([]float64, len(z))
	for i, c := range z {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}

// Magnitude returns |z[i]| for each value.
func Magnitude(z []complex128) []float64 {
	if len(z) == 0 {
		return nil
	}
	re, im := split(z)
	out := make([]float64, len(z))
	vecmath.Magnitude(out, re, im)
	return out
}

// Phase returns arg(z[i]) in degrees for each value.
func Phase(z []complex128) []float64 {
	if len(z) == 0 {
		return nil
	}
	out := make([]float64, len(z))
	for i, c := range z {
		out[i] = cmplx.Phase(c) * 180 / math.Pi
	}
	return out
}

// ApparentResistivity converts SI impedances (Ohm) to apparent resistivity
// ρa = |Z|²/(ωμ0) in Ohm·m. Zero-frequency entries yield 0.
func ApparentResistivity(z []complex128, freqs []float64) ([]float64, error) {
	if len(z) != len(freqs) {
		return nil, fmt.Errorf("%w: %d impedances but %d frequencies", ErrInvalidInput, len(z), len(freqs))
	}
	if err := validateFrequencies(freqs); err != nil {
		return nil, err
	}
	if len(z) == 0 {
		return nil, nil
	}

	re, im := split(z)
	power := make([]float64, len(z))
	vecmath.Power(power, re, im)

	inv := make([]float64, len(freqs))
	for i, f := range freqs {
		if f > 0 {
			inv[i] = 1 / (2 * math.Pi * f * Mu0)
		}
	}

	out := make([]float64, len(z))
	vecmath.MulBlock(out, power, inv)
	return out, nil
}

// Magnitude returns |Z| of the scaled impedance row.
func (r *Result) Magnitude() []float64 {
	return Magnitude(r.Rows[RowImpedance])
}

// Phase returns the phase of the impedance row in degrees.
func (r *Result) Phase() []float64 {
	return Phase(r.Rows[RowImpedance])
}

// ApparentResistivity returns ρa at the selected layer in Ohm·m. It uses
// the unscaled impedance, so the result does not depend on the output scale.
func (r *Result) ApparentResistivity() []float64 {
	// Freqs were validated by Compute and have the boundary's length.
	rho, _ := ApparentResistivity(r.boundaries[r.Layer], r.Freqs)
	return rho
}
