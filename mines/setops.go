package mines

type void struct{}

type intSet map[int]void

func newIntSet(members []int) intSet {
	s := make(intSet, len(members))
	for _, v := range members {
		s[v] = void{}
	}
	return s
}

func (s intSet) has(v int) bool {
	_, ok := s[v]
	return ok
}

// subtract returns the members of a that are not in b, preserving order.
func subtract(a, b []int) (result []int) {
	hash := newIntSet(b)
	for _, v := range a {
		if !hash.has(v) {
			result = append(result, v)
		}
	}
	return
}

// isSubset reports whether every member of a is in b.
func isSubset(a, b []int) bool {
	hash := newIntSet(b)
	for _, v := range a {
		if !hash.has(v) {
			return false
		}
	}
	return true
}

// disjoint reports whether a and b share no members.
func disjoint(a, b []int) bool {
	hash := newIntSet(b)
	for _, v := range a {
		if hash.has(v) {
			return false
		}
	}
	return true
}
