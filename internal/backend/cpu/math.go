package cpu

import "math"

// Add computes dst[i] = a[i] + b[i].
func Add(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub computes dst[i] = a[i] - b[i].
func Sub(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Mul computes dst[i] = a[i] * b[i].
func Mul(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Scale computes dst[i] = alpha * a[i].
func Scale(dst, a []float32, alpha float32) {
	for i := range dst {
		dst[i] = alpha * a[i]
	}
}

// AddInto accumulates src into dst: dst[i] += src[i].
// This is the kernel behind gradient accumulation.
func AddInto(dst, src []float32) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// AXPY computes y[i] += alpha * x[i] in place.
// With alpha = -lr this is the SGD update rule.
func AXPY(y []float32, alpha float32, x []float32) {
	for i := range y {
		y[i] += alpha * x[i]
	}
}

// Sigmoid computes dst[i] = 1 / (1 + exp(-x[i])).
func Sigmoid(dst, x []float32) {
	for i, v := range x {
		dst[i] = float32(1.0 / (1.0 + math.Exp(float64(-v))))
	}
}

// ReLU computes dst[i] = max(0, x[i]).
func ReLU(dst, x []float32) {
	for i, v := range x {
		if v > 0 {
			dst[i] = v
		} else {
			dst[i] = 0
		}
	}
}

// ReLUMask computes dst[i] = 1 where x[i] > 0, else 0.
// Used by the ReLU backward rule.
func ReLUMask(dst, x []float32) {
	for i, v := range x {
		if v > 0 {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

// PowN computes dst[i] = x[i]^n for a non-negative integer exponent,
// by repeated multiplication (exact for the small didactic exponents used).
func PowN(dst, x []float32, n int) {
	for i, v := range x {
		p := float32(1)
		for e := 0; e < n; e++ {
			p *= v
		}
		dst[i] = p
	}
}
