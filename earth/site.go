package earth

import (
	"fmt"
	"math"
)

// Site is a named, ordered stack of layers, shallowest first.
//
// A Site is immutable after construction and safe for concurrent reads.
type Site struct {
	name        string
	description string
	layers      []Layer
}

// Row is one line of the tabular view returned by [Site.Get].
type Row struct {
	Name         string
	Conductivity float64 // S/m
	Resistivity  float64 // Ohm·m
	Thickness    float64 // m
}

// NewSite builds a site from parallel columns ordered shallow to deep.
//
// All three columns must have the same, non-zero length. Conductivities must
// be finite and positive. Thicknesses must be positive; only the bottom layer
// may be +Inf. A finite bottom thickness is accepted and treated as the
// half-space terminator.
func NewSite(name, description string, conductivities, thicknesses []float64, names []string) (*Site, error) {
	if err := validateColumns(conductivities, thicknesses, names); err != nil {
		return nil, err
	}

	n := len(conductivities)
	layers := make([]Layer, n)
	for i := range layers {
		if err := validateLayer(i, n, thicknesses[i], conductivities[i]); err != nil {
			return nil, err
		}
		layers[i] = NewLayer(names[i], thicknesses[i], conductivities[i])
	}

	return &Site{
		name:        name,
		description: description,
		layers:      layers,
	}, nil
}

// Name returns the site name.
func (s *Site) Name() string { return s.name }

// Description returns the free-text site description.
func (s *Site) Description() string { return s.description }

// Len returns the number of layers including the half-space.
func (s *Site) Len() int { return len(s.layers) }

// Layer returns the layer at index i.
func (s *Site) Layer(i int) (Layer, error) {
	if i < 0 || i >= len(s.layers) {
		return Layer{}, indexError(i, len(s.layers))
	}
	return s.layers[i], nil
}

// Layers returns a copy of the layer stack.
func (s *Site) Layers() []Layer {
	return append([]Layer(nil), s.layers...)
}

// Names returns the layer names covered by sel.
func (s *Site) Names(sel Selection) ([]string, error) {
	return column(s, sel, Layer.Name)
}

// Conductivities returns the layer conductivities covered by sel, in S/m.
func (s *Site) Conductivities(sel Selection) ([]float64, error) {
	return column(s, sel, Layer.Conductivity)
}

// Resistivities returns the layer resistivities covered by sel, in Ohm·m.
func (s *Site) Resistivities(sel Selection) ([]float64, error) {
	return column(s, sel, Layer.Resistivity)
}

// Thicknesses returns the layer thicknesses covered by sel, in meters.
func (s *Site) Thicknesses(sel Selection) ([]float64, error) {
	return column(s, sel, Layer.Thickness)
}

// Get returns the tabular view of the layers covered by sel.
func (s *Site) Get(sel Selection) ([]Row, error) {
	return column(s, sel, func(l Layer) Row {
		return Row{
			Name:         l.name,
			Conductivity: l.conductivity,
			Resistivity:  l.resistivity,
			Thickness:    l.thickness,
		}
	})
}

// DepthToTop returns the depth in meters of the top of layer i.
func (s *Site) DepthToTop(i int) (float64, error) {
	if i < 0 || i >= len(s.layers) {
		return 0, indexError(i, len(s.layers))
	}
	depth := 0.0
	for _, l := range s.layers[:i] {
		depth += l.thickness
	}
	return depth, nil
}

// String implements fmt.Stringer.
func (s *Site) String() string {
	bottom := s.layers[len(s.layers)-1]
	finite := ""
	if !math.IsInf(bottom.thickness, 1) {
		finite = ", finite base"
	}
	return fmt.Sprintf("%s: %d layers%s", s.name, len(s.layers), finite)
}

func column[T any](s *Site, sel Selection, get func(Layer) T) ([]T, error) {
	lo, hi, err := sel.bounds(len(s.layers))
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, hi-lo)
	for _, l := range s.layers[lo:hi] {
		out = append(out, get(l))
	}
	return out, nil
}

func indexError(i, n int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
}
