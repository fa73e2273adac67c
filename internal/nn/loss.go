package nn

import (
	"github.com/born-ml/grad/internal/autograd"
	"github.com/born-ml/grad/internal/tensor"
)

// MSELoss computes mean squared error: mean((predictions - targets)²).
// Commonly used for regression tasks.
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes the scalar MSE loss.
// Returns a ShapeError if predictions and targets differ in shape.
func (m *MSELoss) Forward(predictions, targets *tensor.Tensor) (*tensor.Tensor, error) {
	diff, err := autograd.Sub(predictions, targets)
	if err != nil {
		return nil, err
	}
	return autograd.Mean(autograd.Pow(diff, 2)), nil
}

// CrossEntropyLoss computes cross-entropy loss for multi-class
// classification, as the LogSoftmax + NLL decomposition for numerical
// stability:
//
//	Loss = mean(-log_softmax(logits)[target])
//
// Expects raw logits (unnormalized scores); the log-sum-exp trick inside
// LogSoftmax keeps large logits from overflowing.
type CrossEntropyLoss struct{}

// NewCrossEntropyLoss creates a new cross-entropy loss function.
func NewCrossEntropyLoss() *CrossEntropyLoss {
	return &CrossEntropyLoss{}
}

// Forward computes the scalar cross-entropy loss.
//
// Parameters:
//   - logits: model predictions [batch_size, num_classes]
//   - targets: ground-truth class indices, one per example
//
// Returns a ShapeError for malformed logits and an InvalidLabelError for a
// target outside [0, num_classes).
func (c *CrossEntropyLoss) Forward(logits *tensor.Tensor, targets []int) (*tensor.Tensor, error) {
	logProbs, err := autograd.LogSoftmax(logits)
	if err != nil {
		return nil, err
	}
	return autograd.NLL(logProbs, targets)
}

// Accuracy computes classification accuracy for a batch: the fraction of
// rows whose argmax matches the target label.
func Accuracy(logits *tensor.Tensor, targets []int) float32 {
	shape := logits.Shape()
	batch, classes := shape[0], shape[1]
	data := logits.Data()

	correct := 0
	for b := 0; b < batch; b++ {
		row := data[b*classes : (b+1)*classes]
		if argmax(row) == targets[b] {
			correct++
		}
	}
	return float32(correct) / float32(batch)
}

// argmax returns the index of the maximum value in the slice.
func argmax(z []float32) int {
	maxIdx := 0
	maxVal := z[0]
	for i, v := range z[1:] {
		if v > maxVal {
			maxVal = v
			maxIdx = i + 1
		}
	}
	return maxIdx
}
