package loss

import (
	"fmt"
	"math"

	"github.com/arloliu/boostcore/errs"
)

func init() {
	register("rmse", newRMSE)
}

// rmseObjective is the squared-error regression objective generalized to an
// |score-target|^power penalty. power=2 recovers the standard case with a
// constant hessian of 1.
type rmseObjective struct {
	power float64
}

func newRMSE(params Params, _ Config) (*Objective, error) {
	power := params.pop("power", 2)
	// power < 1 makes the gradient singular at zero residual and the
	// hessian negative, which breaks the Newton step downstream
	if power < 1 || math.IsNaN(power) || math.IsInf(power, 0) {
		return nil, fmt.Errorf("power=%v: %w", power, errs.ErrParamOutOfDomain)
	}

	return &Objective{
		name:       "rmse",
		family:     FamilyRegression,
		hasHessian: true,
		regression: &rmseObjective{power: power},
	}, nil
}

// GradHess returns the first and second derivative of |d|^power / power at
// d = score - target. For power=2 that is the familiar residual with a unit
// hessian.
//
// At zero residual both derivatives are taken as 0. That is the analytic
// limit for power > 2; for power <= 2 the hessian limit diverges, and 0 is
// the convention that keeps the Newton step finite on an exactly fitted
// sample.
func (o *rmseObjective) GradHess(score, target float64) GradHess {
	d := score - target
	if o.power == 2 {
		return GradHess{Grad: d, Hess: 1}
	}
	if d == 0 {
		return GradHess{}
	}
	// power 1 is absolute error: constant gradient, zero curvature. The
	// general expression would form 0*Inf for subnormal residuals.
	if o.power == 1 {
		return GradHess{Grad: math.Copysign(1, d)}
	}

	ad := math.Abs(d)
	grad := math.Copysign(math.Pow(ad, o.power-1), d)
	hess := (o.power - 1) * math.Pow(ad, o.power-2)

	return GradHess{Grad: grad, Hess: hess}
}
