package domain

// Planned sequence of places, consumed one step per turn.
type Route []string

// Pop the first place off the route. The returned Route shares the
// underlying array with r; neither is modified.
func (r Route) Next() (string, Route, bool) {
	if len(r) == 0 {
		return "", nil, false
	}
	return r[0], r[1:], true
}
