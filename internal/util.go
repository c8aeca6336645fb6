package internal

import "math"

func minFloat(first float64, rest ...float64) float64 {
	result := first
	for _, x := range rest {
		result = math.Min(result, x)
	}
	return result
}
