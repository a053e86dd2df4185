package impedance

import (
	"errors"
	"math"
	"math/cmplx"
	"sync"
	"testing"

	"github.com/cwbudde/algo-geomag/internal/testutil"
)

// Ben's Model columns.
var (
	bmRho = []float64{1 / 0.2, 1 / 0.0003333, 1 / 0.02, 1 / 0.1, 1 / 1.12201}
	bmH   = []float64{2000, 75000, 332000, 250000, math.Inf(1)}
)

func TestComputeBensModelGolden(t *testing.T) {
	tests := []struct {
		name  string
		freq  float64
		layer int
		want  complex128
	}{
		{name: "1Hz surface", freq: 1, layer: 0, want: complex(3.296876357755729, 3.4394899471777336)},
		{name: "0.1Hz surface", freq: 0.1, layer: 0, want: complex(1.9754508645729816, 0.5068657271878114)},
		{name: "1mHz surface", freq: 0.001, layer: 0, want: complex(0.48707611871896883, 0.5288029679917026)},
		{name: "1Hz half-space", freq: 1, layer: 4, want: complex(1.4926969327277406, 1.4926969327277406)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(bmRho, bmH, []float64{tt.freq}, WithLayer(tt.layer))
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			testutil.RequireComplexNearlyEqual(t, res.Rows[RowImpedance], []complex128{tt.want}, 1e-8)
		})
	}
}

func TestComputeHalfSpaceHasNoRecursion(t *testing.T) {
	freqs := []float64{0.001, 0.1, 1, 10}
	rho := 10.0

	res, err := Compute([]float64{rho}, []float64{math.Inf(1)}, freqs)
	if err != nil {
		t.Fatal(err)
	}

	z, _ := res.Boundary(0)
	for j, f := range freqs {
		omega := 2 * math.Pi * f
		want := complex(0, omega*Mu0) / cmplx.Sqrt(complex(0, omega*Mu0/rho))
		if z[j] != want {
			t.Fatalf("Z[%d] = %v, want %v", j, z[j], want)
		}
	}

	// |Z| of a half-space is sqrt(ωμ0ρ) with a 45° phase.
	rhoA := res.ApparentResistivity()
	testutil.RequireSliceNearlyEqual(t, rhoA, []float64{rho, rho, rho, rho}, 1e-9)
	testutil.RequireSliceNearlyEqual(t, res.Phase(), []float64{45, 45, 45, 45}, 1e-9)
}

func TestComputeUniformStackMatchesHalfSpace(t *testing.T) {
	rho := []float64{5, 5, 5, 5}
	h := []float64{2000, 75000, 332000, math.Inf(1)}
	freqs := []float64{0.0001, 0.01, 1}

	layered, err := Compute(rho, h, freqs)
	if err != nil {
		t.Fatal(err)
	}
	half, err := Compute(rho[:1], h[3:], freqs)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireComplexNearlyEqual(t, layered.Z(), half.Z(), 1e-10)
}

func TestComputeZeroFrequency(t *testing.T) {
	freqs := []float64{0, 0.01, 0, 1}

	res, err := Compute(bmRho, bmH, freqs)
	if err != nil {
		t.Fatal(err)
	}

	for layer := 0; layer < res.NumLayers(); layer++ {
		z, _ := res.Boundary(layer)
		for _, j := range []int{0, 2} {
			if z[j] != 0 {
				t.Fatalf("layer %d column %d = %v, want 0", layer, j, z[j])
			}
		}
		for _, j := range []int{1, 3} {
			if z[j] == 0 {
				t.Fatalf("layer %d column %d is zero for a positive frequency", layer, j)
			}
		}
	}
	testutil.RequireFiniteComplex(t, res.Rows[RowImpedance])
	if rhoA := res.ApparentResistivity(); rhoA[0] != 0 || rhoA[2] != 0 {
		t.Fatalf("apparent resistivity at DC = %v, want 0", rhoA)
	}
}

func TestComputeRowsContract(t *testing.T) {
	freqs, err := LogFrequencies(1e-4, 10, 25)
	if err != nil {
		t.Fatal(err)
	}

	for _, layer := range []int{0, 2, 4} {
		res, err := Compute(bmRho, bmH, freqs, WithLayer(layer))
		if err != nil {
			t.Fatal(err)
		}

		rows, cols := res.Shape()
		if rows != NumRows || cols != len(freqs) {
			t.Fatalf("Shape() = (%d, %d), want (4, %d)", rows, cols, len(freqs))
		}
		for j := range freqs {
			if res.Rows[RowNegated][j] != -res.Rows[RowImpedance][j] {
				t.Fatalf("row 2 is not the negation of row 1 at %d", j)
			}
			if res.Rows[RowReservedLow][j] != 0 || res.Rows[RowReservedHigh][j] != 0 {
				t.Fatalf("reserved rows not zero at %d", j)
			}
		}

		want, _ := res.At(layer)
		testutil.RequireComplexNearlyEqual(t, res.Z(), want, 0)
	}
}

func TestComputeShapeIndependentOfDepth(t *testing.T) {
	freqs := []float64{0.01, 0.1, 1}
	for n := 1; n <= len(bmRho); n++ {
		h := append(append([]float64(nil), bmH[:n-1]...), math.Inf(1))
		res, err := Compute(bmRho[:n], h, freqs)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if rows, cols := res.Shape(); rows != 4 || cols != 3 {
			t.Fatalf("n=%d: Shape() = (%d, %d)", n, rows, cols)
		}
		if res.NumLayers() != n {
			t.Fatalf("NumLayers() = %d, want %d", res.NumLayers(), n)
		}
	}
}

func TestComputeEmptyFrequencies(t *testing.T) {
	res, err := Compute(bmRho, bmH, nil)
	if err != nil {
		t.Fatal(err)
	}
	if rows, cols := res.Shape(); rows != 4 || cols != 0 {
		t.Fatalf("Shape() = (%d, %d), want (4, 0)", rows, cols)
	}
}

func TestComputeFiniteAndNonNegativeMagnitude(t *testing.T) {
	freqs, _ := LogFrequencies(1e-5, 1e3, 64)

	for _, layer := range []int{0, 1, 2, 3, 4} {
		res, err := Compute(bmRho, bmH, freqs, WithLayer(layer))
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireFiniteComplex(t, res.Rows[RowImpedance])
		for j, m := range res.Magnitude() {
			if !(m > 0) || math.IsInf(m, 0) {
				t.Fatalf("layer %d |Z[%d]| = %v", layer, j, m)
			}
		}
	}
}

func TestComputeContinuousInFrequency(t *testing.T) {
	freqs, _ := LogFrequencies(1e-4, 1, 2000)

	res, err := Compute(bmRho, bmH, freqs)
	if err != nil {
		t.Fatal(err)
	}
	mag := res.Magnitude()
	for j := 1; j < len(mag); j++ {
		if rel := math.Abs(mag[j]-mag[j-1]) / mag[j-1]; rel > 0.01 {
			t.Fatalf("|Z| jumps by %.3g between %g Hz and %g Hz", rel, freqs[j-1], freqs[j])
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	freqs, _ := LogFrequencies(1e-3, 1, 16)

	a, err := Compute(bmRho, bmH, freqs, WithLayer(1))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compute(bmRho, bmH, freqs, WithLayer(1))
	if err != nil {
		t.Fatal(err)
	}
	for r := range a.Rows {
		for j := range a.Rows[r] {
			if a.Rows[r][j] != b.Rows[r][j] {
				t.Fatalf("row %d column %d differs: %v vs %v", r, j, a.Rows[r][j], b.Rows[r][j])
			}
		}
	}

	d, err := testutil.MaxAbsDiff(a.Magnitude(), b.Magnitude())
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Fatalf("|Z| differs between runs by %v", d)
	}
}

func TestComputeDoesNotMutateInputs(t *testing.T) {
	rho := append([]float64(nil), bmRho...)
	h := append([]float64(nil), bmH...)
	freqs := []float64{0, 0.5, 1}

	res, err := Compute(rho, h, freqs)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, rho, bmRho, 0)
	res.Freqs[1] = 42
	if freqs[1] != 0.5 {
		t.Fatal("result aliases the caller's frequency slice")
	}
}

func TestComputeConcurrent(t *testing.T) {
	freqs, _ := LogFrequencies(1e-3, 1, 32)
	want, err := Compute(bmRho, bmH, freqs)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Compute(bmRho, bmH, freqs)
			if err != nil {
				t.Error(err)
				return
			}
			for j := range freqs {
				if got.Rows[RowImpedance][j] != want.Rows[RowImpedance][j] {
					t.Errorf("column %d differs under concurrency", j)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestComputeWithScale(t *testing.T) {
	res, err := Compute(bmRho, bmH, []float64{1}, WithScale(1))
	if err != nil {
		t.Fatal(err)
	}
	si, _ := res.Boundary(0)
	testutil.RequireComplexNearlyEqual(t, res.Z(), si, 0)
}

func TestComputeErrors(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name    string
		rho     []float64
		h       []float64
		freqs   []float64
		opts    []Option
		wantErr error
	}{
		{name: "empty stack", freqs: []float64{1}, wantErr: ErrConfig},
		{name: "length mismatch", rho: []float64{1, 2}, h: []float64{inf}, freqs: []float64{1}, wantErr: ErrConfig},
		{name: "zero resistivity", rho: []float64{0}, h: []float64{inf}, freqs: []float64{1}, wantErr: ErrInvalidInput},
		{name: "negative resistivity", rho: []float64{-1}, h: []float64{inf}, freqs: []float64{1}, wantErr: ErrInvalidInput},
		{name: "infinite resistivity", rho: []float64{inf}, h: []float64{inf}, freqs: []float64{1}, wantErr: ErrInvalidInput},
		{name: "zero thickness", rho: []float64{1, 1}, h: []float64{0, inf}, freqs: []float64{1}, wantErr: ErrInvalidInput},
		{name: "nan thickness", rho: []float64{1, 1}, h: []float64{math.NaN(), inf}, freqs: []float64{1}, wantErr: ErrInvalidInput},
		{name: "inner half-space", rho: []float64{1, 1}, h: []float64{inf, inf}, freqs: []float64{1}, wantErr: ErrInvalidInput},
		{name: "negative frequency", rho: []float64{1}, h: []float64{inf}, freqs: []float64{1, -1}, wantErr: ErrInvalidInput},
		{name: "nan frequency", rho: []float64{1}, h: []float64{inf}, freqs: []float64{math.NaN()}, wantErr: ErrInvalidInput},
		{name: "layer too deep", rho: []float64{1}, h: []float64{inf}, freqs: []float64{1}, opts: []Option{WithLayer(1)}, wantErr: ErrInvalidInput},
		{name: "negative layer", rho: []float64{1}, h: []float64{inf}, freqs: []float64{1}, opts: []Option{WithLayer(-1)}, wantErr: ErrInvalidInput},
		{name: "smallest denormal frequency", rho: bmRho, h: bmH, freqs: []float64{5e-324}, wantErr: ErrInvalidInput},
		{name: "underflowing frequency", rho: bmRho, h: bmH, freqs: []float64{1, 1e-320}, wantErr: ErrInvalidInput},
		{name: "overflowing frequency", rho: bmRho, h: bmH, freqs: []float64{1e308}, wantErr: ErrInvalidInput},
		{name: "resistive underflow", rho: []float64{1e30}, h: []float64{1}, freqs: []float64{1e-290}, wantErr: ErrInvalidInput},
		{name: "zero scale", rho: []float64{1}, h: []float64{inf}, freqs: []float64{1}, opts: []Option{WithScale(0)}, wantErr: ErrInvalidInput},
		{name: "nan scale", rho: []float64{1}, h: []float64{inf}, freqs: []float64{1}, opts: []Option{WithScale(math.NaN())}, wantErr: ErrInvalidInput},
		{name: "infinite scale", rho: []float64{1}, h: []float64{inf}, freqs: []float64{1}, opts: []Option{WithScale(inf)}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.rho, tt.h, tt.freqs, tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Compute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestComputeExtremeFrequencyStaysFinite(t *testing.T) {
	res, err := Compute(bmRho, bmH, []float64{1e-200, 1e300})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	for layer := 0; layer < res.NumLayers(); layer++ {
		z, _ := res.Boundary(layer)
		testutil.RequireFiniteComplex(t, z)
	}
}

func TestResultLayerAccessorsOutOfRange(t *testing.T) {
	res, err := Compute(bmRho, bmH, []float64{1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := res.At(5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("At(5) error = %v", err)
	}
	if _, err := res.Boundary(-1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Boundary(-1) error = %v", err)
	}
}
