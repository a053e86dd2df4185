// Package earth describes one-dimensional layered Earth conductivity models.
//
// A [Site] is an ordered stack of horizontal [Layer] values, shallowest first.
// The deepest layer terminates the stack as a half-space: its thickness is
// normally +Inf and is never used numerically.
//
// Column accessors take a [Selection] so callers can ask for every layer
// ([All]) or for exactly one layer ([Index]), including the surface layer at
// index 0:
//
//	site, _ := earth.Profile("BM")
//	rho, _ := site.Resistivities(earth.All())
//	top, _ := site.Get(earth.Index(0))
//
// The package also carries a read-only catalog of preset Earth models keyed
// by short codes (see [Profile] and [ProfileCodes]).
package earth
