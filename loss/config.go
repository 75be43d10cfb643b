package loss

import (
	"math"

	"github.com/arloliu/boostcore/internal/fastmath"
)

// IllegalGain marks a gain that has not been computed yet. It is far more
// negative than any value floating-point noise can produce, so it can never
// be confused with a near-zero negative gain.
const IllegalGain = -math.MaxFloat64

// Tolerance gathers the per-run epsilon policy for numeric comparisons.
// Values near zero on the wrong side of these bands are accepted as
// floating-point noise; values outside the bands indicate an internal
// consistency fault and should be reported, not clamped.
type Tolerance struct {
	// Gradient is the acceptable absolute difference when comparing
	// gradients computed by equivalent code paths.
	Gradient float64

	// NegativeGain is the most negative gain still treated as zero.
	// Gains are mathematically non-negative.
	NegativeGain float64

	// NegativeValidation is the most negative validation metric still
	// treated as zero.
	NegativeValidation float64

	// LogLoss is the probability clamp applied where log(p) or a division
	// by p(1-p) would otherwise blow up.
	LogLoss float64

	// BinaryToMulticlass is the tolerance for comparing the single-logit
	// binary formulation against the equivalent two-class multiclass
	// formulation. It widens substantially under approximate exp, where
	// the two paths accumulate different rounding noise.
	BinaryToMulticlass float64
}

// DefaultTolerance returns the standard epsilon policy. With approximate
// math enabled, the binary-to-multiclass band widens from 1e-7 to 1e-1 to
// avoid false-positive validation failures caused purely by approximation
// noise.
func DefaultTolerance(approximate bool) Tolerance {
	t := Tolerance{
		Gradient:           1e-7,
		NegativeGain:       -1e-7,
		NegativeValidation: -1e-7,
		LogLoss:            1e-7,
		BinaryToMulticlass: 1e-7,
	}
	if approximate {
		t.BinaryToMulticlass = 1e-1
	}

	return t
}

// GainAcceptable reports whether a computed gain is non-negative up to the
// configured noise band.
func (t Tolerance) GainAcceptable(gain float64) bool {
	return gain >= t.NegativeGain
}

// Config is the immutable numeric policy of a training run, constructed once
// at setup and shared read-only afterwards.
type Config struct {
	// Approximate substitutes polynomial exp/log approximations for the
	// exact math primitives in the per-sample loop.
	Approximate bool

	// ExpandBinaryLogits drives 2-class tasks through the multiclass
	// two-logit representation instead of the collapsed single logit.
	ExpandBinaryLogits bool

	// ZeroFirstLogit anchors the first class logit of multiclass tasks at
	// zero: its gradient and hessian are forced to zero so the model never
	// updates it, removing the softmax translation degeneracy.
	ZeroFirstLogit bool

	// Tolerance is the epsilon policy. The zero value selects
	// DefaultTolerance(Approximate).
	Tolerance Tolerance
}

// DefaultConfig returns the exact-math configuration with default tolerances.
func DefaultConfig() Config {
	return Config{Tolerance: DefaultTolerance(false)}
}

// withDefaults fills in the zero-value tolerance and returns the math
// primitives matching the approximation policy.
func (c Config) withDefaults() (Config, fastmath.Funcs) {
	if c.Tolerance == (Tolerance{}) {
		c.Tolerance = DefaultTolerance(c.Approximate)
	}
	if c.Approximate {
		return c, fastmath.Approximate()
	}

	return c, fastmath.Exact()
}
