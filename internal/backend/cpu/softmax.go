package cpu

import "math"

// LogSoftmaxRows computes log(softmax(x)) independently for each row of the
// row-major matrix x[rows, cols], writing into dst.
//
// Uses the log-sum-exp trick: subtracting the per-row maximum before
// exponentiating keeps exp() in range for arbitrarily large logits.
//
//	LogSoftmax(z)[i] = z[i] - (max(z) + log(Σ exp(z - max(z))))
func LogSoftmaxRows(dst, x []float32, rows, cols int) {
	for r := 0; r < rows; r++ {
		row := x[r*cols : (r+1)*cols]
		out := dst[r*cols : (r+1)*cols]

		maxZ := row[0]
		for _, v := range row[1:] {
			if v > maxZ {
				maxZ = v
			}
		}

		var sumExp float64
		for _, v := range row {
			sumExp += math.Exp(float64(v - maxZ))
		}
		logSumExp := maxZ + float32(math.Log(sumExp))

		for i, v := range row {
			out[i] = v - logSumExp
		}
	}
}

// SoftmaxFromLog recovers softmax probabilities from log-probabilities:
// dst[i] = exp(logp[i]).
func SoftmaxFromLog(dst, logp []float32) {
	for i, v := range logp {
		dst[i] = float32(math.Exp(float64(v)))
	}
}
