// Package codegen allocates unique human-shareable codes (store slugs,
// store codes, order codes) by generating candidates from a policy and
// retrying against a uniqueness check with a bounded budget.
//
// The allocator never silently returns a code the exists check reported as
// taken: it either finds a free candidate within the budget, falls back to
// the policy's high-entropy fallback, or fails with ErrBudgetExhausted.
package codegen

import (
	"errors"

	"github.com/warungku/warung/pkg/metrics"
)

// ErrBudgetExhausted is returned when every candidate within the policy's
// budget collided. The whole operation may simply be retried.
var ErrBudgetExhausted = errors.New("codegen: retry budget exhausted")

// ExistsFunc reports whether a candidate code is already taken. It runs
// against whatever uniqueness scope the caller needs — typically a query on
// the transaction handle of the surrounding placement.
type ExistsFunc func(code string) (bool, error)

// Policy produces candidate codes for one allocation.
type Policy struct {
	// Name labels retry metrics.
	Name string

	// Budget is the maximum number of candidates tried before giving up.
	Budget int

	// Candidate returns the code to try at the given attempt (0-based).
	Candidate func(attempt int) string

	// Fallback, when non-nil, produces one last high-entropy candidate
	// after the budget is spent. It is still checked for uniqueness.
	Fallback func() string
}

// Allocate runs the attempt/check loop for policy and returns the first
// candidate the exists check clears.
func Allocate(policy Policy, exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < policy.Budget; attempt++ {
		code := policy.Candidate(attempt)

		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}

		metrics.CodeRetries.WithLabelValues(policy.Name).Inc()
	}

	if policy.Fallback != nil {
		code := policy.Fallback()

		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}

	return "", ErrBudgetExhausted
}
