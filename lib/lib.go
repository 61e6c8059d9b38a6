package lib

// Paginate clamps an offset/limit window to a slice of the given length and
// returns the start and end indices.
func Paginate(offset int, limit int, sliceLength int) (int, int) {
	if offset > sliceLength {
		offset = sliceLength
	}

	end := offset + limit
	if end > sliceLength {
		end = sliceLength
	}

	return offset, end
}

// Unique returns slice with duplicates removed, keeping first occurrences in
// order.
func Unique[T comparable](slice []T) (result []T) {
	seen := make(map[T]struct{})
	for _, v := range slice {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}
