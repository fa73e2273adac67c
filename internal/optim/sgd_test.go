package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/grad/internal/autograd"
	"github.com/born-ml/grad/internal/nn"
	"github.com/born-ml/grad/internal/optim"
	"github.com/born-ml/grad/internal/tensor"
)

func TestNewSGD_RejectsBadLR(t *testing.T) {
	_, err := optim.NewSGD(nil, optim.SGDConfig{LR: 0})
	assert.Error(t, err)

	_, err = optim.NewSGD(nil, optim.SGDConfig{LR: -0.1})
	assert.Error(t, err)
}

func TestSGD_Step(t *testing.T) {
	p := nn.NewParameter("w", tensor.Ones(tensor.Shape{3}))
	grad, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3})
	require.NoError(t, err)
	p.Tensor().SetGrad(grad)

	sgd, err := optim.NewSGD([]*nn.Parameter{p}, optim.SGDConfig{LR: 0.1})
	require.NoError(t, err)
	sgd.Step()

	// w = 1 - 0.1 * grad
	assert.InDeltaSlice(t, []float32{0.9, 0.8, 0.7}, p.Tensor().Data(), 1e-6)
}

func TestSGD_StepSkipsParamsWithoutGradient(t *testing.T) {
	touched := nn.NewParameter("a", tensor.Ones(tensor.Shape{2}))
	touched.Tensor().SetGrad(tensor.Ones(tensor.Shape{2}))
	idle := nn.NewParameter("b", tensor.Ones(tensor.Shape{2}))

	sgd, err := optim.NewSGD([]*nn.Parameter{touched, idle}, optim.SGDConfig{LR: 0.5})
	require.NoError(t, err)
	sgd.Step()

	assert.InDeltaSlice(t, []float32{0.5, 0.5}, touched.Tensor().Data(), 1e-6)
	assert.Equal(t, []float32{1, 1}, idle.Tensor().Data())
}

func TestSGD_ZeroGrad(t *testing.T) {
	p := nn.NewParameter("w", tensor.Ones(tensor.Shape{2}))
	p.Tensor().SetGrad(tensor.Ones(tensor.Shape{2}))

	sgd, err := optim.NewSGD([]*nn.Parameter{p}, optim.SGDConfig{LR: 0.1})
	require.NoError(t, err)

	sgd.ZeroGrad()
	assert.Nil(t, p.Grad())
}

func TestSGD_LearningRate(t *testing.T) {
	sgd, err := optim.NewSGD(nil, optim.SGDConfig{LR: 0.1})
	require.NoError(t, err)

	assert.InDelta(t, 0.1, sgd.GetLR(), 1e-9)
	sgd.SetLR(0.01)
	assert.InDelta(t, 0.01, sgd.GetLR(), 1e-9)
}

// TestSGD_FixedPointNetwork runs one full train step on a tiny network whose
// hand-picked weights make every gradient exactly zero (a one-class softmax
// pins the output probability to 1), so the step must leave all weights
// bit-identical.
func TestSGD_FixedPointNetwork(t *testing.T) {
	x, err := tensor.FromSlice([]float32{1, 1}, tensor.Shape{1, 2})
	require.NoError(t, err)

	w1t, err := tensor.FromSlice([]float32{1, -1}, tensor.Shape{1, 2})
	require.NoError(t, err)
	w2t, err := tensor.FromSlice([]float32{2}, tensor.Shape{1, 1})
	require.NoError(t, err)

	w1 := nn.NewParameter("w1", w1t)
	b1 := nn.NewParameter("b1", tensor.Zeros(tensor.Shape{1}))
	w2 := nn.NewParameter("w2", w2t)
	b2 := nn.NewParameter("b2", tensor.Zeros(tensor.Shape{1}))
	params := []*nn.Parameter{w1, b1, w2, b2}

	sgd, err := optim.NewSGD(params, optim.SGDConfig{LR: 0.1})
	require.NoError(t, err)
	sgd.ZeroGrad()

	h, err := autograd.Linear(x, w1.Tensor(), b1.Tensor())
	require.NoError(t, err)
	logit, err := autograd.Linear(autograd.Sigmoid(h), w2.Tensor(), b2.Tensor())
	require.NoError(t, err)
	lp, err := autograd.LogSoftmax(logit)
	require.NoError(t, err)
	loss, err := autograd.NLL(lp, []int{0})
	require.NoError(t, err)

	assert.InDelta(t, 0, loss.Item(), 1e-9)
	require.NoError(t, autograd.Backward(loss))
	sgd.Step()

	assert.Equal(t, []float32{1, -1}, w1.Tensor().Data())
	assert.Equal(t, []float32{0}, b1.Tensor().Data())
	assert.Equal(t, []float32{2}, w2.Tensor().Data())
	assert.Equal(t, []float32{0}, b2.Tensor().Data())
}

// TestSGD_LossDecreases trains a single linear layer on a fixed regression
// target and checks that the MSE loss decreases monotonically. The problem is
// convex and the inputs are bounded, so with a small learning rate every step
// must improve.
func TestSGD_LossDecreases(t *testing.T) {
	layer := nn.NewLinear(2, 1)
	criterion := nn.NewMSELoss()

	// y = x0 - x1, four corners of the unit square.
	inputs, err := tensor.FromSlice([]float32{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	}, tensor.Shape{4, 2})
	require.NoError(t, err)
	targets, err := tensor.FromSlice([]float32{0, -1, 1, 0}, tensor.Shape{4, 1})
	require.NoError(t, err)

	sgd, err := optim.NewSGD(layer.Parameters(), optim.SGDConfig{LR: 0.2})
	require.NoError(t, err)

	prev := float32(0)
	for step := 0; step < 100; step++ {
		sgd.ZeroGrad()

		pred := layer.Forward(inputs)
		loss, err := criterion.Forward(pred, targets)
		require.NoError(t, err)
		require.NoError(t, autograd.Backward(loss))
		sgd.Step()

		cur := loss.Item()
		if step > 0 {
			// Small float32 slack near convergence.
			assert.LessOrEqual(t, cur, prev+1e-6, "loss increased at step %d", step)
		}
		prev = cur
	}

	// The optimum is exactly W=[1,-1], b=0; 100 steps get close.
	assert.Less(t, prev, float32(0.01))
}
