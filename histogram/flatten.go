package histogram

// Flatten concatenates multi-dimensional sample containers into one ordered
// sample list, row-major, blocks in argument order. It is the single
// flattening convention of the pipeline: every estimator receives its
// samples through this function (or an equivalent composition of it), never
// through an ad-hoc reshape.
//
// Complexity: O(total samples), one allocation.
func Flatten(blocks ...[][]float64) []float64 {
	total := 0
	for _, block := range blocks {
		for _, row := range block {
			total += len(row)
		}
	}

	out := make([]float64, 0, total)
	for _, block := range blocks {
		for _, row := range block {
			out = append(out, row...)
		}
	}

	return out
}
