package cpu

// Sum returns the sum of all elements.
func Sum(x []float32) float32 {
	var s float32
	for _, v := range x {
		s += v
	}
	return s
}

// Mean returns the arithmetic mean of all elements.
// Returns 0 for an empty slice.
func Mean(x []float32) float32 {
	if len(x) == 0 {
		return 0
	}
	return Sum(x) / float32(len(x))
}

// ColSum computes column sums of a row-major matrix a[m,n]: dst[j] = Σᵢ a[i,j].
// Used by the linear transform's bias gradient.
func ColSum(dst, a []float32, m, n int) {
	for j := range dst[:n] {
		dst[j] = 0
	}
	for i := 0; i < m; i++ {
		row := a[i*n : (i+1)*n]
		for j, v := range row {
			dst[j] += v
		}
	}
}

// RowSum computes row sums of a row-major matrix a[m,n]: dst[i] = Σⱼ a[i,j].
func RowSum(dst, a []float32, m, n int) {
	for i := 0; i < m; i++ {
		dst[i] = Sum(a[i*n : (i+1)*n])
	}
}
