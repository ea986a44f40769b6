// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the determinant/inverse kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSingularEpsilon is the |det| threshold below which Inverse
	// treats a matrix as exactly singular.
	DefaultSingularEpsilon = 1e-10

	// DefaultCofactorLimit is the largest order accepted by cofactor expansion.
	// Cofactor expansion costs O(n!); 10 is the largest grid the calculator offers.
	DefaultCofactorLimit = 10

	// DefaultMethod is the determinant algorithm used when no option selects one.
	DefaultMethod = MethodCofactor
)

// Method selects the determinant algorithm.
type Method int

const (
	// MethodCofactor is recursive first-row cofactor expansion, O(n!).
	MethodCofactor Method = iota
	// MethodLU is Gaussian elimination with partial pivoting, O(n³).
	MethodLU
)

// String returns the lower-case method name used by the CLI.
func (m Method) String() string {
	switch m {
	case MethodCofactor:
		return "cofactor"
	case MethodLU:
		return "lu"
	default:
		return "unknown"
	}
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid       = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicCofactorLimitInvalid = "matrix: WithCofactorLimit: limit must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps           float64 // >= 0; DefaultSingularEpsilon
	method        Method  // DefaultMethod
	cofactorLimit int     // >= 1; DefaultCofactorLimit
}

// Epsilon returns the singularity threshold.
func (o Options) Epsilon() float64 { return o.eps }

// Method returns the determinant algorithm.
func (o Options) Method() Method { return o.method }

// CofactorLimit returns the largest order accepted by cofactor expansion.
func (o Options) CofactorLimit() int { return o.cofactorLimit }

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the singularity threshold used by Inverse.
// A matrix with |det| < eps is reported as ErrSingular.
//
// Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithCofactor selects recursive cofactor expansion (the default).
func WithCofactor() Option {
	return func(o *Options) { o.method = MethodCofactor }
}

// WithLU selects partial-pivot Gaussian elimination for every determinant
// computed by the call, including the minors evaluated by Inverse.
// The cofactor limit does not apply under this method.
func WithLU() Option {
	return func(o *Options) { o.method = MethodLU }
}

// WithMethod selects the determinant algorithm by value; unknown values panic.
func WithMethod(m Method) Option {
	switch m {
	case MethodCofactor:
		return WithCofactor()
	case MethodLU:
		return WithLU()
	default:
		panic("matrix: WithMethod: unknown method")
	}
}

// WithCofactorLimit raises or lowers the largest order accepted by cofactor
// expansion. Orders above the limit fail with ErrTooLarge.
//
// Panics when limit < 1.
func WithCofactorLimit(limit int) Option {
	if limit < 1 {
		panic(panicCofactorLimitInvalid)
	}

	return func(o *Options) { o.cofactorLimit = limit }
}

// NewOptions resolves opts on top of the documented defaults.
// Useful for callers (CLI, calc) that want to inspect the effective policy.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:           DefaultSingularEpsilon,
		method:        DefaultMethod,
		cofactorLimit: DefaultCofactorLimit,
	}
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins). Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
