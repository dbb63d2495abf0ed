// SPDX-License-Identifier: MIT

package bounds

import (
	"errors"
	"fmt"
)

// ErrUnknownMethod is returned when a method name does not match any
// recognized lower- or upper-bound method.
var ErrUnknownMethod = errors.New("bounds: unknown method")

// LBMethod selects the lower-bound estimator. The set is closed: every value
// is one of the constants below.
type LBMethod string

// Recognized lower-bound methods.
const (
	LBMatch                 LBMethod = "match"
	LBLovasz                LBMethod = "lovasz"
	LBClique                LBMethod = "clique"
	LBIndependentEdges      LBMethod = "independent_edges"
	LBMaximalIndependentSet LBMethod = "maximal_independent_set"
)

// ParseLBMethod validates a method name from configuration.
func ParseLBMethod(s string) (LBMethod, error) {
	switch m := LBMethod(s); m {
	case LBMatch, LBLovasz, LBClique, LBIndependentEdges, LBMaximalIndependentSet:
		return m, nil
	default:
		return "", fmt.Errorf("lower-bound method %q: %w", s, ErrUnknownMethod)
	}
}

// UBMethod selects the upper-bound heuristic. The set is closed.
type UBMethod string

// Recognized upper-bound methods.
const (
	UBNumber     UBMethod = "number"
	UBVertex     UBMethod = "vertex"
	UBMergeStars UBMethod = "merge_stars"
)

// ParseUBMethod validates a method name from configuration.
func ParseUBMethod(s string) (UBMethod, error) {
	switch m := UBMethod(s); m {
	case UBNumber, UBVertex, UBMergeStars:
		return m, nil
	default:
		return "", fmt.Errorf("upper-bound method %q: %w", s, ErrUnknownMethod)
	}
}
