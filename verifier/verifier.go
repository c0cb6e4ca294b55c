// Package verifier re-derives the identities of the Fibonacci-Lucas spectral
// law from exact arithmetic and checks them against their closed forms. Each
// check is independent, side-effect free and deterministic; a failed check
// carries the offending index so that a counterexample is reported rather
// than swallowed.
package verifier

import (
	"fmt"

	"github.com/rs/zerolog"
)

// FloatPrec is the precision, in bits, of every floating-point quantity used
// by the numerical checks. The exact checks do not depend on it.
const FloatPrec = 256

// Check is the outcome of a single verification step.
type Check struct {
	Name   string
	Passed bool
	Detail string
}

// Runner executes the verification suite. The zero value is not usable; use
// NewRunner.
type Runner struct {
	log zerolog.Logger
}

// NewRunner returns a Runner reporting progress on the given logger.
func NewRunner(log zerolog.Logger) *Runner {
	return &Runner{log: log}
}

// All runs every check of the suite in order and returns the collected
// results. The returned error is non-nil if at least one check failed; the
// per-check details identify each counterexample.
func (r *Runner) All() (checks []Check, err error) {
	for _, run := range []func() []Check{
		r.SpectralLaw,
		r.UnitNorm,
		r.Coefficients,
		r.NormSurvey,
		r.EntropyStacking,
	} {
		checks = append(checks, run()...)
	}

	failed := 0
	for _, c := range checks {
		if !c.Passed {
			failed++
		}
	}
	if failed > 0 {
		return checks, fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	return checks, nil
}

func (r *Runner) report(c Check) Check {
	if c.Passed {
		r.log.Info().Str("check", c.Name).Msg(c.Detail)
	} else {
		r.log.Error().Str("check", c.Name).Msg(c.Detail)
	}
	return c
}

func pass(name, format string, args ...interface{}) Check {
	return Check{Name: name, Passed: true, Detail: fmt.Sprintf(format, args...)}
}

func fail(name, format string, args ...interface{}) Check {
	return Check{Name: name, Passed: false, Detail: fmt.Sprintf(format, args...)}
}
