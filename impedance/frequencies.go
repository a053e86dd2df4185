package impedance

import (
	"fmt"
	"math"
)

// LogFrequencies returns n logarithmically spaced frequencies from lo to hi
// inclusive. Both bounds must be > 0 and lo must not exceed hi.
func LogFrequencies(lo, hi float64, n int) ([]float64, error) {
	if err := validateRange(lo, hi, n); err != nil {
		return nil, err
	}
	if lo <= 0 {
		return nil, fmt.Errorf("%w: log spacing needs lo > 0: %g", ErrInvalidInput, lo)
	}
	if n == 1 {
		return []float64{lo}, nil
	}

	out := make([]float64, n)
	logLo := math.Log10(lo)
	step := (math.Log10(hi) - logLo) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, logLo+step*float64(i))
	}
	out[0], out[n-1] = lo, hi
	return out, nil
}

// LinearFrequencies returns n evenly spaced frequencies from lo to hi
// inclusive. lo may be 0.
func LinearFrequencies(lo, hi float64, n int) ([]float64, error) {
	if err := validateRange(lo, hi, n); err != nil {
		return nil, err
	}
	if n == 1 {
		return []float64{lo}, nil
	}

	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out, nil
}

func validateRange(lo, hi float64, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: frequency count must be > 0: %d", ErrInvalidInput, n)
	}
	if err := validateFrequencies([]float64{lo, hi}); err != nil {
		return err
	}
	if lo > hi {
		return fmt.Errorf("%w: frequency range reversed: %g > %g", ErrInvalidInput, lo, hi)
	}
	return nil
}
