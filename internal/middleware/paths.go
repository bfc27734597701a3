package middleware

// set of request paths a middleware passes through untouched (exact match)
type pathSet map[string]struct{}

func newPathSet(paths []string) pathSet {
	set := make(pathSet, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}

	return set
}

func (s pathSet) has(path string) bool {
	_, ok := s[path]
	return ok
}
