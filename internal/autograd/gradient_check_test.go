package autograd_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/born-ml/grad/internal/autograd"
	"github.com/born-ml/grad/internal/tensor"
)

// numericGrad computes d f / d data[i] for every i by central finite
// differences, perturbing data in place. f must recompute the full forward
// pass from the current data on every call.
func numericGrad(data []float32, f func() float32) []float32 {
	const eps = 1e-2
	grads := make([]float32, len(data))
	for i := range data {
		orig := data[i]
		data[i] = orig + eps
		fp := f()
		data[i] = orig - eps
		fm := f()
		data[i] = orig
		grads[i] = (fp - fm) / (2 * eps)
	}
	return grads
}

// assertGradMatches compares the accumulated gradient of x against the
// numerical gradient of f.
func assertGradMatches(t *testing.T, x *tensor.Tensor, f func() float32) {
	t.Helper()

	grad := x.Grad()
	if grad == nil {
		t.Fatal("no gradient accumulated")
	}

	numerical := numericGrad(x.Data(), f)
	analytic := grad.Data()
	for i := range numerical {
		diff := math.Abs(float64(analytic[i] - numerical[i]))
		if diff > 1e-2 {
			t.Errorf("element %d: autodiff grad %f differs from numerical grad %f by %f",
				i, analytic[i], numerical[i], diff)
		}
	}
}

func randomTensor(t *testing.T, rng *rand.Rand, shape tensor.Shape) *tensor.Tensor {
	t.Helper()
	data := make([]float32, shape.NumElements())
	for i := range data {
		data[i] = rng.Float32()*2 - 1
	}
	x, err := tensor.FromSlice(data, shape)
	if err != nil {
		t.Fatal(err)
	}
	return x
}

func mustBackward(t *testing.T, loss *tensor.Tensor) {
	t.Helper()
	if err := autograd.Backward(loss); err != nil {
		t.Fatalf("Backward: %v", err)
	}
}

func TestGradient_Add(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	a := randomTensor(t, rng, tensor.Shape{3, 4}).RequireGrad()
	b := randomTensor(t, rng, tensor.Shape{3, 4}).RequireGrad()

	forward := func() float32 {
		sum, err := autograd.Add(a, b)
		if err != nil {
			t.Fatal(err)
		}
		return autograd.Mean(autograd.Pow(sum, 2)).Item()
	}

	y, err := autograd.Add(a, b)
	if err != nil {
		t.Fatal(err)
	}
	mustBackward(t, autograd.Mean(autograd.Pow(y, 2)))

	assertGradMatches(t, a, forward)
	assertGradMatches(t, b, forward)
}

func TestGradient_Sub(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := randomTensor(t, rng, tensor.Shape{2, 3}).RequireGrad()
	b := randomTensor(t, rng, tensor.Shape{2, 3}).RequireGrad()

	forward := func() float32 {
		d, err := autograd.Sub(a, b)
		if err != nil {
			t.Fatal(err)
		}
		return autograd.Mean(autograd.Pow(d, 2)).Item()
	}

	y, err := autograd.Sub(a, b)
	if err != nil {
		t.Fatal(err)
	}
	mustBackward(t, autograd.Mean(autograd.Pow(y, 2)))

	assertGradMatches(t, a, forward)
	assertGradMatches(t, b, forward)
}

func TestGradient_Mul(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	a := randomTensor(t, rng, tensor.Shape{2, 3}).RequireGrad()
	b := randomTensor(t, rng, tensor.Shape{2, 3}).RequireGrad()

	forward := func() float32 {
		p, err := autograd.Mul(a, b)
		if err != nil {
			t.Fatal(err)
		}
		return autograd.Mean(p).Item()
	}

	y, err := autograd.Mul(a, b)
	if err != nil {
		t.Fatal(err)
	}
	mustBackward(t, autograd.Mean(y))

	assertGradMatches(t, a, forward)
	assertGradMatches(t, b, forward)
}

func TestGradient_MatMul(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	a := randomTensor(t, rng, tensor.Shape{3, 4}).RequireGrad()
	b := randomTensor(t, rng, tensor.Shape{4, 2}).RequireGrad()

	forward := func() float32 {
		p, err := autograd.MatMul(a, b)
		if err != nil {
			t.Fatal(err)
		}
		return autograd.Mean(autograd.Pow(p, 2)).Item()
	}

	y, err := autograd.MatMul(a, b)
	if err != nil {
		t.Fatal(err)
	}
	mustBackward(t, autograd.Mean(autograd.Pow(y, 2)))

	assertGradMatches(t, a, forward)
	assertGradMatches(t, b, forward)
}

func TestGradient_Linear(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	x := randomTensor(t, rng, tensor.Shape{4, 3}).RequireGrad()
	w := randomTensor(t, rng, tensor.Shape{2, 3}).RequireGrad()
	b := randomTensor(t, rng, tensor.Shape{2}).RequireGrad()

	forward := func() float32 {
		out, err := autograd.Linear(x, w, b)
		if err != nil {
			t.Fatal(err)
		}
		return autograd.Mean(autograd.Pow(out, 2)).Item()
	}

	y, err := autograd.Linear(x, w, b)
	if err != nil {
		t.Fatal(err)
	}
	mustBackward(t, autograd.Mean(autograd.Pow(y, 2)))

	assertGradMatches(t, x, forward)
	assertGradMatches(t, w, forward)
	assertGradMatches(t, b, forward)
}

func TestGradient_Sigmoid(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	x := randomTensor(t, rng, tensor.Shape{3, 3}).RequireGrad()

	forward := func() float32 {
		return autograd.Mean(autograd.Sigmoid(x)).Item()
	}

	mustBackward(t, autograd.Mean(autograd.Sigmoid(x)))
	assertGradMatches(t, x, forward)
}

func TestGradient_ReLU(t *testing.T) {
	// Keep inputs away from 0, where ReLU is not differentiable and the
	// finite-difference estimate straddles the kink.
	x, err := tensor.FromSlice([]float32{-1.5, -0.7, 0.4, 1.2, -2.1, 0.9}, tensor.Shape{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	x.RequireGrad()

	forward := func() float32 {
		return autograd.Mean(autograd.ReLU(x)).Item()
	}

	mustBackward(t, autograd.Mean(autograd.ReLU(x)))
	assertGradMatches(t, x, forward)
}

func TestGradient_Pow(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	x := randomTensor(t, rng, tensor.Shape{5}).RequireGrad()

	forward := func() float32 {
		return autograd.Mean(autograd.Pow(x, 3)).Item()
	}

	mustBackward(t, autograd.Mean(autograd.Pow(x, 3)))
	assertGradMatches(t, x, forward)
}

func TestGradient_Mean(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	x := randomTensor(t, rng, tensor.Shape{4, 5}).RequireGrad()

	mustBackward(t, autograd.Mean(x))

	// d mean / d x[i] = 1/n exactly.
	want := float32(1) / 20
	for i, g := range x.Grad().Data() {
		if math.Abs(float64(g-want)) > 1e-6 {
			t.Errorf("element %d: got %f, want %f", i, g, want)
		}
	}
}

func TestGradient_LogSoftmax(t *testing.T) {
	rng := rand.New(rand.NewSource(18))
	x := randomTensor(t, rng, tensor.Shape{3, 4}).RequireGrad()

	forward := func() float32 {
		lp, err := autograd.LogSoftmax(x)
		if err != nil {
			t.Fatal(err)
		}
		return autograd.Mean(autograd.Pow(lp, 2)).Item()
	}

	lp, err := autograd.LogSoftmax(x)
	if err != nil {
		t.Fatal(err)
	}
	mustBackward(t, autograd.Mean(autograd.Pow(lp, 2)))

	assertGradMatches(t, x, forward)
}

func TestGradient_CrossEntropy(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	logits := randomTensor(t, rng, tensor.Shape{4, 5}).RequireGrad()
	labels := []int{1, 0, 4, 2}

	forward := func() float32 {
		lp, err := autograd.LogSoftmax(logits)
		if err != nil {
			t.Fatal(err)
		}
		loss, err := autograd.NLL(lp, labels)
		if err != nil {
			t.Fatal(err)
		}
		return loss.Item()
	}

	lp, err := autograd.LogSoftmax(logits)
	if err != nil {
		t.Fatal(err)
	}
	loss, err := autograd.NLL(lp, labels)
	if err != nil {
		t.Fatal(err)
	}
	mustBackward(t, loss)

	assertGradMatches(t, logits, forward)

	// The analytic gradient of cross-entropy wrt logits is
	// (softmax - onehot) / batch; spot-check it directly.
	grad := logits.Grad().Data()
	var sum float32
	for _, g := range grad {
		sum += g
	}
	// Each row's gradient sums to zero, so the total does too.
	if math.Abs(float64(sum)) > 1e-5 {
		t.Errorf("gradient sums to %f, want 0", sum)
	}
}
