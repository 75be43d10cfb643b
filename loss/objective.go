package loss

// Family identifies one of the four closed task families. The set is closed
// by design: dispatch happens through capability accessors on Objective, not
// through open-ended extension.
type Family uint8

const (
	FamilyRegression Family = iota + 1
	FamilyBinary
	FamilyMulticlass
	FamilyMultitaskBinary
)

// String implements fmt.Stringer.
func (f Family) String() string {
	switch f {
	case FamilyRegression:
		return "regression"
	case FamilyBinary:
		return "binary"
	case FamilyMulticlass:
		return "multiclass"
	case FamilyMultitaskBinary:
		return "multitask_binary"
	default:
		return "unknown"
	}
}

// GradHess is the per-sample, per-output-dimension result: the first
// derivative of the loss with respect to the raw score, and the second when
// the objective produces one.
type GradHess struct {
	Grad float64
	Hess float64
}

// Regression computes gradient and hessian for a continuous target from a
// single raw score.
type Regression interface {
	GradHess(score, target float64) GradHess
}

// Binary computes gradient and hessian for a 2-class target from a single
// logit. The label must be 0 or 1.
type Binary interface {
	GradHess(score float64, label int) GradHess
}

// Multiclass computes one gradient/hessian per class logit. out must have
// the same length as scores; class must be in [0, len(scores)).
type Multiclass interface {
	GradHessVec(scores []float64, class int, out []GradHess)
}

// MultitaskBinary computes one independent binary gradient/hessian per task.
// labels holds one 0/1 label per task; scores, labels and out share a length.
type MultitaskBinary interface {
	GradHessVec(scores []float64, labels []int, out []GradHess)
}

// Objective is a configured, named loss bound to exactly one task family.
// It owns no mutable state beyond its static configuration, so a single
// instance is safe to invoke concurrently across samples.
//
// Exactly one of the capability accessors returns ok for a given instance.
type Objective struct {
	name       string
	family     Family
	hasHessian bool

	regression Regression
	binary     Binary
	multiclass Multiclass
	multitask  MultitaskBinary
}

// Name returns the canonical registration name.
func (o *Objective) Name() string { return o.name }

// Family returns the task family the objective is bound to.
func (o *Objective) Family() Family { return o.family }

// HasHessian reports whether the objective produces second-order terms.
// When false, callers must ignore the Hess field of the output.
func (o *Objective) HasHessian() bool { return o.hasHessian }

// Regression returns the regression capability, if this objective has it.
func (o *Objective) Regression() (Regression, bool) {
	return o.regression, o.regression != nil
}

// Binary returns the binary-classification capability, if present.
func (o *Objective) Binary() (Binary, bool) {
	return o.binary, o.binary != nil
}

// Multiclass returns the multiclass capability, if present.
func (o *Objective) Multiclass() (Multiclass, bool) {
	return o.multiclass, o.multiclass != nil
}

// MultitaskBinary returns the multi-task binary capability, if present.
func (o *Objective) MultitaskBinary() (MultitaskBinary, bool) {
	return o.multitask, o.multitask != nil
}
