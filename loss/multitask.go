package loss

func init() {
	register("multitask_log_loss", newMultitaskLogLoss)
}

// multitaskLogLossObjective applies independent binary cross-entropy to K
// tasks per sample. There is no cross-task interaction, but the
// stabilization differs from the single-target binary objective: with many
// tasks per sample, saturated probabilities are routine rather than
// exceptional, so probabilities are clamped away from 0 and 1 before the
// gradient and hessian are formed. This bounds the gradient magnitude and
// keeps the hessian strictly positive for the Newton step.
type multitaskLogLossObjective struct {
	exp   func(float64) float64
	clamp float64
}

func newMultitaskLogLoss(_ Params, cfg Config) (*Objective, error) {
	cfg, funcs := cfg.withDefaults()

	return &Objective{
		name:       "multitask_log_loss",
		family:     FamilyMultitaskBinary,
		hasHessian: true,
		multitask: &multitaskLogLossObjective{
			exp:   funcs.Exp,
			clamp: cfg.Tolerance.LogLoss,
		},
	}, nil
}

// GradHessVec computes one independent log-loss gradient/hessian per task.
// scores, labels and out must share a length; labels must be 0 or 1.
func (o *multitaskLogLossObjective) GradHessVec(scores []float64, labels []int, out []GradHess) {
	lo, hi := o.clamp, 1-o.clamp
	for k, s := range scores {
		p := sigmoid(s, o.exp)
		if p < lo {
			p = lo
		} else if p > hi {
			p = hi
		}
		out[k] = GradHess{Grad: p - float64(labels[k]), Hess: p * (1 - p)}
	}
}
