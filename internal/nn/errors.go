package nn

import (
	"errors"
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// ErrNoForward is returned by Backward when the layer holds no cached
// state from a preceding Forward call. Each Forward enables exactly one
// Backward.
var ErrNoForward = errors.New("nn: backward called without a preceding forward")

// ErrShape reports a dimension mismatch between an array and what a
// layer expects. It is gonum's own shape error so callers can match
// either with errors.Is.
var ErrShape = mat.ErrShape

// shapeError wraps ErrShape with the offending dimensions.
func shapeError(op string, gotR, gotC, wantR, wantC int) error {
	return fmt.Errorf("%s: got %dx%d, want %sx%s: %w", op, gotR, gotC, dim(wantR), dim(wantC), ErrShape)
}

func dim(n int) string {
	if n < 0 {
		return "N"
	}
	return strconv.Itoa(n)
}

// checkDims returns a shape error unless m is r×c. A negative want
// dimension matches any size.
func checkDims(op string, m mat.Matrix, r, c int) error {
	mr, mc := m.Dims()
	if (r >= 0 && mr != r) || (c >= 0 && mc != c) {
		return shapeError(op, mr, mc, r, c)
	}
	return nil
}

// copyInput returns a private copy of input for a layer cache. Empty
// inputs are rejected since gonum cannot represent them.
func copyInput(op string, input mat.Matrix) (*mat.Dense, error) {
	r, c := input.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%s: empty input %dx%d: %w", op, r, c, ErrShape)
	}
	return mat.DenseCopyOf(input), nil
}
