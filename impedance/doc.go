// Package impedance computes the surface electromagnetic impedance of a
// one-dimensional layered Earth.
//
// The forward model is the classic magnetotelluric recursion. For angular
// frequency ω each layer i with resistivity ρ_i has the wavenumber
//
//	k_i = sqrt(jωμ0 / ρ_i)
//
// The half-space at the bottom of the stack has impedance Z_{n-1} = jωμ0/k_{n-1}.
// Moving upward through each finite layer of thickness h_i:
//
//	r_i = (1 - k_i Z_{i+1}/(jωμ0)) / (1 + k_i Z_{i+1}/(jωμ0))
//	Z_i = jωμ0 (1 - r_i e^{-2 k_i h_i}) / (k_i (1 + r_i e^{-2 k_i h_i}))
//
// [Compute] evaluates the recursion for every frequency and reports the
// impedance at one layer boundary as a 4-row [Result]. Row 1 holds the scaled
// impedance, row 2 its negation, rows 0 and 3 are zero. The default scale
// 1e-3/μ0 converts the SI impedance (Ohm) to mV/km/nT.
//
// # Usage
//
//	site := earth.MustProfile("BM")
//	res, err := impedance.ComputeSite(site, []float64{0.001, 0.01, 0.1})
//	if err != nil {
//	    // invalid input
//	}
//	z := res.Z() // row 1
//
// Zero frequencies are not evaluated; their columns are exactly zero at every
// layer. All functions are pure and safe for concurrent use.
package impedance
