package bigo

// aliasTable maps a local variable name to the size reduction last assigned
// to it. It lives in the walker's per-function frame: entries are learned
// from assignments and initializers whose RHS reduces the size parameter,
// last write wins, and the whole table is dropped on function exit.
type aliasTable map[string]reduction

// learn records name -> r when r is an actual reduction. Non-matching
// right-hand sides leave any earlier entry in place.
func (t aliasTable) learn(name string, r reduction) {
	if name == "" || r.kind == reduceNone {
		return
	}
	t[name] = r
}

// lookup resolves a bare identifier to its recorded reduction, if any.
func (t aliasTable) lookup(name string) reduction {
	return t[name]
}
