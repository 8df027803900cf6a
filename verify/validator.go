package verify

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathproof/core"
	"github.com/katalvlaran/pathproof/manypaths"
)

// Validator compares a manypaths.Result against the reference oracle of
// its graph, or against literal expected values. It does not mutate the
// result or the graph.
type Validator struct {
	oracle *Oracle
}

// NewValidator builds a Validator (and its internal Oracle) for g.
func NewValidator(g *core.Graph) *Validator {
	return &Validator{oracle: NewOracle(g)}
}

// AgainstOracle verifies every pair in sources × targets: the result's
// weight must match the oracle's within Tolerance (unreachable compared as
// a status) and the path vertex sequence must match exactly, element-wise.
// Ties between equal-weight paths are not tolerated — the algorithm under
// test must reproduce the oracle's sequence.
//
// The first discrepancy aborts validation and is returned as an
// ErrMismatch-wrapped error naming the pair.
func (v *Validator) AgainstOracle(res *manypaths.Result, sources, targets []int64) error {
	for _, s := range sources {
		for _, t := range targets {
			wantW, err := v.oracle.Weight(s, t)
			if err != nil {
				return err
			}
			wantP, err := v.oracle.Path(s, t)
			if err != nil {
				return err
			}
			if err := v.Expect(res, s, t, wantW, wantP); err != nil {
				return err
			}
		}
	}

	return nil
}

// Expect verifies a single pair against literal expected values: weight
// math.Inf(1) plus a nil path means "expected unreachable".
func (v *Validator) Expect(res *manypaths.Result, source, target int64, weight float64, path []int64) error {
	gotW := res.Weight(source, target)
	gotP := res.Path(source, target)

	wantInf := math.IsInf(weight, 1)
	if wantInf != math.IsInf(gotW, 1) {
		return fmt.Errorf("%w: weight(%d,%d): got %v, want %v", ErrMismatch, source, target, gotW, weight)
	}
	if !wantInf && math.Abs(gotW-weight) > Tolerance {
		return fmt.Errorf("%w: weight(%d,%d): got %v, want %v", ErrMismatch, source, target, gotW, weight)
	}
	if !equalPath(gotP, path) {
		return fmt.Errorf("%w: path(%d,%d): got %v, want %v", ErrMismatch, source, target, gotP, path)
	}

	return nil
}

// equalPath reports element-wise equality of two vertex sequences; nil and
// empty are both "no path" and compare equal.
func equalPath(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
