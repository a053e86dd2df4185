package earth

import "fmt"

// Layer is one horizontal stratum with constant conductivity.
//
// Resistivity is derived once at construction and never recomputed.
type Layer struct {
	name         string
	thickness    float64 // m, +Inf for a half-space
	conductivity float64 // S/m
	resistivity  float64 // Ohm·m
}

// NewLayer returns a layer with the given name, thickness in meters and
// conductivity in S/m. The caller is responsible for passing positive values;
// [NewSite] validates them.
func NewLayer(name string, thickness, conductivity float64) Layer {
	return Layer{
		name:         name,
		thickness:    thickness,
		conductivity: conductivity,
		resistivity:  1 / conductivity,
	}
}

// Name returns the layer name.
func (l Layer) Name() string { return l.name }

// Thickness returns the layer thickness in meters.
func (l Layer) Thickness() float64 { return l.thickness }

// Conductivity returns the layer conductivity in S/m.
func (l Layer) Conductivity() float64 { return l.conductivity }

// Resistivity returns the layer resistivity in Ohm·m.
func (l Layer) Resistivity() float64 { return l.resistivity }

// String implements fmt.Stringer.
func (l Layer) String() string {
	return fmt.Sprintf("%s (h=%g m, sigma=%g S/m)", l.name, l.thickness, l.conductivity)
}
