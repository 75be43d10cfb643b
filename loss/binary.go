package loss

// sigmoid evaluates 1/(1+e^-x) through the branch that never feeds a large
// positive argument to exp, so neither tail overflows.
func sigmoid(x float64, exp func(float64) float64) float64 {
	if x >= 0 {
		return 1 / (1 + exp(-x))
	}
	e := exp(x)

	return e / (1 + e)
}

func init() {
	register("log_loss", newLogLoss)
}

// logLossObjective is binary cross-entropy on a single collapsed logit:
// gradient p-y, hessian p(1-p) with p = sigmoid(score).
type logLossObjective struct {
	exp func(float64) float64
}

func newLogLoss(_ Params, cfg Config) (*Objective, error) {
	_, funcs := cfg.withDefaults()

	return &Objective{
		name:       "log_loss",
		family:     FamilyBinary,
		hasHessian: true,
		binary:     &logLossObjective{exp: funcs.Exp},
	}, nil
}

// GradHess computes the log-loss gradient and hessian for one sample.
// The label must be 0 or 1; Compute validates labels before the parallel
// region so this stays branch-light.
func (o *logLossObjective) GradHess(score float64, label int) GradHess {
	p := sigmoid(score, o.exp)

	return GradHess{Grad: p - float64(label), Hess: p * (1 - p)}
}
