package euler

// DecodePath materializes the path from a satisfying model by
// evaluating P at every position 0..k. Because t is a bijection onto
// the k slots, every adjacent pair of the result is pinned by exactly
// one edge occurrence, so no explicit traversal is ever needed.
func DecodePath(model Model, k int) []int {
	path := make([]int, k+1)
	for position := range path {
		path[position] = model.P(position)
	}
	return path
}
