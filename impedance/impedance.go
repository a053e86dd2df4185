package impedance

import (
	"fmt"
	"math"
	"math/cmplx"
)

// NumRows is the fixed row count of a [Result].
const NumRows = 4

// Row indices of a [Result].
const (
	RowReservedLow  = 0
	RowImpedance    = 1
	RowNegated      = 2
	RowReservedHigh = 3
)

// Result is the output of [Compute].
//
// Rows always has shape 4 × len(Freqs). Row 1 is the scaled impedance at the
// selected layer, row 2 is its exact negation, rows 0 and 3 are zero.
type Result struct {
	Freqs []float64
	Layer int
	Scale float64
	Rows  [NumRows][]complex128

	// boundaries[i][j] is the unscaled impedance (Ohm) at the top of layer i
	// for frequency j.
	boundaries [][]complex128
}

// Compute evaluates the layered-Earth impedance recursion for every frequency.
//
// resistivities and thicknesses are ordered shallow to deep and must have the
// same length. The last thickness belongs to the half-space and is not used.
// Frequencies are in Hz and must be >= 0; zero-frequency columns are zero at
// every layer. The returned Result owns fresh memory; inputs are not modified.
func Compute(resistivities, thicknesses, freqs []float64, opts ...Option) (*Result, error) {
	if err := validateStack(resistivities, thicknesses); err != nil {
		return nil, err
	}
	if err := validateFrequencies(freqs); err != nil {
		return nil, err
	}
	if err := validateSpectrum(resistivities, freqs); err != nil {
		return nil, err
	}
	cfg := ApplyOptions(opts...)
	if err := validateLayerIndex(cfg.Layer, len(resistivities)); err != nil {
		return nil, err
	}
	if err := validateScale(cfg.Scale); err != nil {
		return nil, err
	}

	boundaries, err := boundaryImpedances(resistivities, thicknesses, freqs)
	if err != nil {
		return nil, err
	}

	m := len(freqs)
	res := &Result{
		Freqs:      append([]float64(nil), freqs...),
		Layer:      cfg.Layer,
		Scale:      cfg.Scale,
		boundaries: boundaries,
	}
	for r := range res.Rows {
		res.Rows[r] = make([]complex128, m)
	}

	scale := complex(cfg.Scale, 0)
	for j, z := range boundaries[cfg.Layer] {
		res.Rows[RowImpedance][j] = z * scale
		res.Rows[RowNegated][j] = -res.Rows[RowImpedance][j]
	}
	return res, nil
}

// boundaryImpedances returns the n × m table of impedances at the top of every
// layer. Zero-frequency columns are skipped and stay zero. A column that is
// not finite at some layer is reported as invalid input.
func boundaryImpedances(rho, h, freqs []float64) ([][]complex128, error) {
	n := len(rho)
	m := len(freqs)

	backing := make([]complex128, n*m)
	z := make([][]complex128, n)
	for i := range z {
		z[i] = backing[i*m : (i+1)*m : (i+1)*m]
	}

	for j, f := range freqs {
		if f == 0 {
			continue
		}
		recurse(z, j, rho, h, 2*math.Pi*f)
		for i := range z {
			if cmplx.IsNaN(z[i][j]) || cmplx.IsInf(z[i][j]) {
				return nil, fmt.Errorf("%w: impedance of layer %d is not finite at %g Hz", ErrInvalidInput, i, f)
			}
		}
	}
	return z, nil
}

// recurse fills column j of z for angular frequency omega > 0, starting at the
// half-space and working up to the surface.
func recurse(z [][]complex128, j int, rho, h []float64, omega float64) {
	n := len(rho)
	f := complex(0, omega*Mu0)

	k := wavenumber(omega, rho[n-1])
	zi := f / k
	z[n-1][j] = zi

	for i := n - 2; i >= 0; i-- {
		k = wavenumber(omega, rho[i])
		t := k * zi / f
		r := (1 - t) / (1 + t)
		e := r * cmplx.Exp(-2*k*complex(h[i], 0))
		zi = f * (1 - e) / (k * (1 + e))
		z[i][j] = zi
	}
}

// wavenumber returns sqrt(jωμ0/ρ).
func wavenumber(omega, rho float64) complex128 {
	return cmplx.Sqrt(complex(0, omega*Mu0/rho))
}

// Shape returns the row and column count of the result matrix.
func (r *Result) Shape() (rows, cols int) {
	return NumRows, len(r.Freqs)
}

// Z returns a copy of the scaled impedance row.
func (r *Result) Z() []complex128 {
	return append([]complex128(nil), r.Rows[RowImpedance]...)
}

// NumLayers returns the depth of the layer stack the result was computed for.
func (r *Result) NumLayers() int {
	return len(r.boundaries)
}

// Boundary returns a copy of the unscaled impedance in Ohm at the top of the
// given layer, one value per frequency.
func (r *Result) Boundary(layer int) ([]complex128, error) {
	if err := validateLayerIndex(layer, len(r.boundaries)); err != nil {
		return nil, err
	}
	return append([]complex128(nil), r.boundaries[layer]...), nil
}

// At returns the impedance at the top of the given layer, scaled like row 1.
func (r *Result) At(layer int) ([]complex128, error) {
	z, err := r.Boundary(layer)
	if err != nil {
		return nil, err
	}
	scale := complex(r.Scale, 0)
	for j := range z {
		z[j] *= scale
	}
	return z, nil
}
