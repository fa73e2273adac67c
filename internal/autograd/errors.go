package autograd

import "fmt"

// NotTrackedError reports a backward request on a tensor with no tracked
// ancestry. Nothing in the graph asked for gradients, so there is nothing to
// differentiate.
type NotTrackedError struct{}

// Error implements the error interface.
func (e *NotTrackedError) Error() string {
	return "autograd: backward requested on an untracked tensor (no tracked ancestry)"
}

// GraphCycleError reports a cycle among producer back-references found during
// the reverse traversal. Forward-only composition cannot create cycles, so
// this signals a construction bug and is unrecoverable; the check exists so a
// corrupted graph fails fast instead of looping.
type GraphCycleError struct{}

// Error implements the error interface.
func (e *GraphCycleError) Error() string {
	return "autograd: cycle detected in computation graph (invariant violation)"
}

// InvalidLabelError reports a class label outside [0, Classes) passed to the
// negative-log-likelihood operation.
type InvalidLabelError struct {
	Index   int // Position of the offending label in the batch
	Label   int // The out-of-range label value
	Classes int // Number of classes the log-probabilities cover
}

// Error implements the error interface.
func (e *InvalidLabelError) Error() string {
	return fmt.Sprintf("autograd: label %d at index %d outside [0, %d)", e.Label, e.Index, e.Classes)
}
