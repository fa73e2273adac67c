package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/grad/internal/tensor"
)

func TestFromSlice(t *testing.T) {
	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3}, x.Shape())
	assert.Equal(t, 6, x.NumElements())
	assert.Equal(t, float32(6), x.At(1, 2))
	assert.False(t, x.RequiresGrad())
	assert.True(t, x.IsLeaf())
}

func TestFromSlice_SizeMismatch(t *testing.T) {
	_, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2})
	require.Error(t, err)

	var shapeErr *tensor.ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}

func TestFromSlice_InvalidShape(t *testing.T) {
	_, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{-1, 2})
	assert.Error(t, err)
}

func TestCreation(t *testing.T) {
	z := tensor.Zeros(tensor.Shape{2, 2})
	assert.Equal(t, []float32{0, 0, 0, 0}, z.Data())

	o := tensor.Ones(tensor.Shape{3})
	assert.Equal(t, []float32{1, 1, 1}, o.Data())

	f := tensor.Full(tensor.Shape{2}, 2.5)
	assert.Equal(t, []float32{2.5, 2.5}, f.Data())
}

func TestScalar(t *testing.T) {
	s := tensor.Scalar(3.14)
	assert.Equal(t, 1, s.NumElements())
	assert.Equal(t, 0, len(s.Shape()))
	assert.InDelta(t, 3.14, s.Item(), 1e-6)
}

func TestRandn_ShapeAndVariation(t *testing.T) {
	r := tensor.Randn(tensor.Shape{100})
	require.Equal(t, 100, r.NumElements())

	// All-equal output would mean the generator is broken.
	first := r.Data()[0]
	allSame := true
	for _, v := range r.Data() {
		if v != first {
			allSame = false
			break
		}
	}
	assert.False(t, allSame)
}

func TestItem_PanicsOnNonScalar(t *testing.T) {
	x := tensor.Zeros(tensor.Shape{2, 2})
	assert.Panics(t, func() { x.Item() })
}

func TestAtSet(t *testing.T) {
	x := tensor.Zeros(tensor.Shape{2, 3})
	x.Set(7, 1, 1)

	assert.Equal(t, float32(7), x.At(1, 1))
	assert.Equal(t, float32(7), x.Data()[4])
}

func TestRequireGrad_Chains(t *testing.T) {
	x := tensor.Zeros(tensor.Shape{2}).RequireGrad()
	assert.True(t, x.RequiresGrad())
}

func TestSetGrad(t *testing.T) {
	x := tensor.Zeros(tensor.Shape{2}).RequireGrad()
	require.Nil(t, x.Grad())

	g := tensor.Ones(tensor.Shape{2})
	x.SetGrad(g)
	assert.Same(t, g, x.Grad())

	x.ZeroGrad()
	assert.Nil(t, x.Grad())
}

func TestSetGrad_PanicsOnShapeMismatch(t *testing.T) {
	x := tensor.Zeros(tensor.Shape{2})
	assert.Panics(t, func() { x.SetGrad(tensor.Zeros(tensor.Shape{3})) })
}

func TestDetach_SharesDataUntracked(t *testing.T) {
	x, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2})
	require.NoError(t, err)
	x.RequireGrad()

	d := x.Detach()
	assert.False(t, d.RequiresGrad())
	assert.True(t, d.IsLeaf())

	// Same backing buffer: writes through one are visible through the other.
	d.Data()[0] = 9
	assert.Equal(t, float32(9), x.Data()[0])
}

func TestClone_DeepCopy(t *testing.T) {
	x, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2})
	require.NoError(t, err)

	c := x.Clone()
	c.Data()[0] = 9
	assert.Equal(t, float32(1), x.Data()[0])
}

func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 1, tensor.Shape{}.NumElements()) // scalar
	assert.Equal(t, 6, tensor.Shape{2, 3}.NumElements())
	assert.Equal(t, 0, tensor.Shape{2, 0}.NumElements())
}

func TestShape_Equal(t *testing.T) {
	assert.True(t, tensor.Shape{2, 3}.Equal(tensor.Shape{2, 3}))
	assert.False(t, tensor.Shape{2, 3}.Equal(tensor.Shape{3, 2}))
	assert.False(t, tensor.Shape{2}.Equal(tensor.Shape{2, 1}))
}

func TestShape_ComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, tensor.Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, tensor.Shape{5}.ComputeStrides())
}

func TestShape_Validate(t *testing.T) {
	assert.NoError(t, tensor.Shape{2, 3}.Validate())
	assert.NoError(t, tensor.Shape{}.Validate())
	assert.Error(t, tensor.Shape{2, -1}.Validate())
}
