package earth

// Selection picks either every layer of a site or exactly one of them.
//
// The zero value selects every layer, as does [All]. Use [Index] to address
// a single layer; Index(0) is the surface layer, not "no selection".
type Selection struct {
	index int
	one   bool
}

// All selects every layer.
func All() Selection {
	return Selection{}
}

// Index selects the layer at i.
func Index(i int) Selection {
	return Selection{index: i, one: true}
}

// Single reports the selected index and whether the selection addresses a
// single layer.
func (s Selection) Single() (int, bool) {
	return s.index, s.one
}

// bounds returns the half-open layer range [lo, hi) covered by s for a stack
// of n layers.
func (s Selection) bounds(n int) (lo, hi int, err error) {
	if !s.one {
		return 0, n, nil
	}
	if s.index < 0 || s.index >= n {
		return 0, 0, indexError(s.index, n)
	}
	return s.index, s.index + 1, nil
}
