package domain

// PointsResult is the outcome of a scoring pass. Total always equals the sum
// of Breakdown, and Breakdown always carries all six categories.
type PointsResult struct {
	Total     int
	Breakdown map[Category]int
}

// ZeroPoints returns a result with every category at zero.
func ZeroPoints() PointsResult {
	b := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		b[c] = 0
	}
	return PointsResult{Breakdown: b}
}
