package autograd

import (
	"fmt"

	"github.com/born-ml/grad/internal/tensor"
)

// NLL computes the negative-log-likelihood loss from log-probabilities and
// integer class labels: the negative mean, over the batch, of each example's
// log-probability at its true-label index.
//
//	logProbs: [batch, classes] (typically the LogSoftmax output)
//	labels:   batch class indices in [0, classes)
//
// Returns a ShapeError for a non-2D input or a label count that does not
// match the batch, and an InvalidLabelError for an out-of-range label.
//
// Backward: dL/dlogProbs is -g/batch at each example's true-label index and
// 0 elsewhere.
func NLL(logProbs *tensor.Tensor, labels []int) (*tensor.Tensor, error) {
	ls := logProbs.Shape()
	if len(ls) != 2 {
		return nil, tensor.NewShapeError("NLL", "2D [batch, classes]", ls)
	}
	batch, classes := ls[0], ls[1]
	if len(labels) != batch {
		return nil, tensor.NewShapeError("NLL",
			fmt.Sprintf("%d labels", batch),
			fmt.Sprintf("%d labels", len(labels)))
	}

	data := logProbs.Data()
	var total float32
	for i, label := range labels {
		if label < 0 || label >= classes {
			return nil, &InvalidLabelError{Index: i, Label: label, Classes: classes}
		}
		total += data[i*classes+label]
	}
	out := tensor.Scalar(-total / float32(batch))

	if logProbs.RequiresGrad() {
		nd := attach(KindNLL, out, logProbs)
		nd.labels = labels
	}
	return out, nil
}

func (nd *node) backwardNLL(grad *tensor.Tensor) []*tensor.Tensor {
	logProbs := nd.inputs[0]
	classes := logProbs.Shape()[1]
	batch := len(nd.labels)

	gradX := tensor.Zeros(logProbs.Shape())
	dst := gradX.Data()
	scale := -grad.Item() / float32(batch)
	for i, label := range nd.labels {
		dst[i*classes+label] = scale
	}
	return []*tensor.Tensor{gradX}
}
