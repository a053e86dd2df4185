package earth

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Profile codes of the preset Earth models.
const (
	CodeBensModel        = "BM"
	CodeOceanModel       = "OM"
	CodeDavidsModel      = "DB"
	CodeUniformModel     = "UN"
	CodeContinentalShelf = "CS"
	CodeShallowOcean     = "SO"
	CodeDeepOcean        = "DO"
)

type profileSpec struct {
	code           string
	name           string
	description    string
	conductivities []float64
	thicknesses    []float64
	names          []string
}

var (
	fiveLayerNames = []string{"Sediments", "Crust", "Lithosphere", "Upper Mantle", "Lower Mantle"}
	oceanNames     = []string{"Seawater", "Sediments", "Crust", "Lithosphere", "Upper Mantle", "Lower Mantle"}
	shelfNames     = []string{"Seawater", "Sediments", "Crust", "Lithosphere", "Upper Mantle", "Transition Zone", "Lower Mantle"}
	shelfSigma     = []float64{3.3333333, 0.3333333, 0.00033333333, 0.001, 0.01, 0.1, 1}
)

var profileSpecs = []profileSpec{
	{
		code:           CodeBensModel,
		name:           "Ben's Model",
		description:    "This model is Ben's model",
		conductivities: []float64{0.2, 0.0003333, 0.02, 0.1, 1.12201},
		thicknesses:    []float64{2000, 75000, 332000, 250000, math.Inf(1)},
		names:          fiveLayerNames,
	},
	{
		code:           CodeOceanModel,
		name:           "Ocean Model",
		description:    "This model is modified Ben's model. An 1 km thick ocean on top of Ben's model.",
		conductivities: []float64{3.3333333, 0.2, 0.0003333, 0.02, 0.1, 1.12201},
		thicknesses:    []float64{1000, 2000, 75000, 332000, 250000, math.Inf(1)},
		names:          oceanNames,
	},
	{
		code:           CodeDavidsModel,
		name:           "David's Model",
		description:    "This model is suggested by David.",
		conductivities: []float64{0.00005, 0.005, 0.001, 0.01, 0.3333333},
		thicknesses:    []float64{15000, 10000, 125000, 200000, math.Inf(1)},
		names:          fiveLayerNames,
	},
	{
		code:           CodeUniformModel,
		name:           "Uniform Model",
		description:    "This model is suggested by David.",
		conductivities: []float64{0.2, 0.2, 0.2, 0.2, 1.12201},
		thicknesses:    []float64{2000, 75000, 332000, 250000, math.Inf(1)},
		names:          fiveLayerNames,
	},
	// The IGS study models carry a finite base thickness; it is ignored by
	// the recursion like any half-space.
	{
		code:           CodeContinentalShelf,
		name:           "Continental Shelf",
		description:    "Used in IGS study by David",
		conductivities: shelfSigma,
		thicknesses:    []float64{100, 3000, 20000, 140000, 246900, 250000, 340000},
		names:          shelfNames,
	},
	{
		code:           CodeShallowOcean,
		name:           "Shallow Ocean",
		description:    "Used in IGS study by David",
		conductivities: shelfSigma,
		thicknesses:    []float64{1000, 2000, 10000, 70000, 327000, 250000, 340000},
		names:          shelfNames,
	},
	{
		code:           CodeDeepOcean,
		name:           "Deep Ocean",
		description:    "Used in IGS study by David",
		conductivities: shelfSigma,
		thicknesses:    []float64{4000, 2000, 10000, 70000, 327000, 250000, 340000},
		names:          shelfNames,
	},
}

// profiles is built once at init and only read afterwards.
var profiles = buildProfiles(profileSpecs)

func buildProfiles(specs []profileSpec) map[string]*Site {
	out := make(map[string]*Site, len(specs))
	for _, p := range specs {
		site, err := NewSite(p.name, p.description, p.conductivities, p.thicknesses, p.names)
		if err != nil {
			panic(fmt.Sprintf("earth: preset %s: %v", p.code, err))
		}
		out[p.code] = site
	}
	return out
}

// Profile returns the preset site registered under code. Lookup is
// case-insensitive and ignores surrounding whitespace.
func Profile(code string) (*Site, error) {
	site, ok := profiles[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, code)
	}
	return site, nil
}

// MustProfile is like [Profile] but panics for unknown codes.
func MustProfile(code string) *Site {
	site, err := Profile(code)
	if err != nil {
		panic(err)
	}
	return site
}

// ProfileCodes returns the registered profile codes in sorted order.
func ProfileCodes() []string {
	codes := make([]string, 0, len(profiles))
	for code := range profiles {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
