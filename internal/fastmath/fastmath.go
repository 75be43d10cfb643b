// Package fastmath provides the exponential and logarithm primitives used by
// the loss package, in two interchangeable flavors: exact (stdlib math) and
// approximate (range reduction plus a short polynomial).
//
// The approximate flavor trades a few ulps of accuracy for speed in the
// per-sample gradient loop. Callers that enable it must widen their
// gradient-comparison tolerances accordingly; the loss package does this
// through its Tolerance configuration.
package fastmath

import "math"

// Funcs bundles the exp/log primitives selected for a run. The struct is
// immutable after construction and safe for concurrent use.
type Funcs struct {
	Exp func(float64) float64
	Log func(float64) float64
}

// Exact returns stdlib-backed primitives.
func Exact() Funcs {
	return Funcs{Exp: math.Exp, Log: math.Log}
}

// Approximate returns the fast polynomial primitives.
func Approximate() Funcs {
	return Funcs{Exp: Exp, Log: Log}
}

// ln(2) split into high and low parts so k*ln2 subtracts exactly.
const (
	ln2Hi  = 0.6931471803691238
	ln2Lo  = 1.9082149292705877e-10
	invLn2 = 1.4426950408889634

	expOverflow  = 709.782712893384
	expUnderflow = -708.3964185322641
)

// Taylor coefficients 1/n! for exp(r) on [-ln2/2, ln2/2].
var expCoeffs = [...]float64{
	1.0,
	1.0,
	0.5,
	0.16666666666666666,
	0.041666666666666664,
	0.008333333333333333,
	0.001388888888888889,
	0.0001984126984126984,
	2.48015873015873e-05,
	2.7557319223985893e-06,
	2.755731922398589e-07,
	2.505210838544172e-08,
}

// Exp computes e^x by range reduction and polynomial approximation:
// x = k*ln2 + r with |r| <= ln2/2, e^x = 2^k * e^r.
// Worst-case relative error is on the order of 1e-14 inside the reduced
// range, degrading near the overflow/underflow thresholds.
func Exp(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	if x > expOverflow {
		return math.Inf(1)
	}
	if x < expUnderflow {
		return 0
	}

	k := math.Round(x * invLn2)
	r := x - k*ln2Hi - k*ln2Lo

	p := expCoeffs[len(expCoeffs)-1]
	for i := len(expCoeffs) - 2; i >= 0; i-- {
		p = p*r + expCoeffs[i]
	}

	return math.Ldexp(p, int(k))
}

// Coefficients for the atanh-style log series; see Log.
var logCoeffs = [...]float64{
	2.0,
	0.6666666666666735,
	0.3999999999940942,
	0.2857142874366239,
	0.22222198432149784,
	0.1818357216161805,
	0.15313837699209373,
}

// Log computes the natural logarithm by decomposing x = m * 2^e with
// m in [sqrt(2)/2, sqrt(2)), then evaluating log(m) = 2*atanh(s) for
// s = (m-1)/(m+1) via an odd polynomial in s^2.
func Log(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 1) {
		return x
	}
	if x < 0 {
		return math.NaN()
	}
	if x == 0 {
		return math.Inf(-1)
	}

	m, e := math.Frexp(x)
	// Frexp yields m in [0.5, 1); shift to [sqrt(2)/2, sqrt(2)) so s stays small.
	if m < math.Sqrt2/2 {
		m *= 2
		e--
	}

	s := (m - 1) / (m + 1)
	s2 := s * s
	p := logCoeffs[len(logCoeffs)-1]
	for i := len(logCoeffs) - 2; i >= 0; i-- {
		p = p*s2 + logCoeffs[i]
	}

	return s*p + float64(e)*ln2Hi + float64(e)*ln2Lo
}
