package loss

import (
	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/boostcore/internal/pool"
	"github.com/arloliu/boostcore/task"
)

func init() {
	register("cross_entropy", newCrossEntropy)
}

// crossEntropyObjective is softmax cross-entropy over N class logits:
// gradient p_k - [k == class], diagonal hessian p_k(1-p_k).
type crossEntropyObjective struct {
	exp       func(float64) float64
	zeroFirst bool
}

func newCrossEntropy(_ Params, cfg Config) (*Objective, error) {
	cfg, funcs := cfg.withDefaults()

	return &Objective{
		name:       "cross_entropy",
		family:     FamilyMulticlass,
		hasHessian: true,
		multiclass: &crossEntropyObjective{
			exp:       funcs.Exp,
			zeroFirst: cfg.ZeroFirstLogit,
		},
	}, nil
}

// GradHessVec dispatches between the fixed-length fast path for class counts
// in [task.FastClassesMin, task.FastClassesMax] and the generic
// runtime-length path for everything else. The two paths agree up to
// floating-point rounding; the dispatch is a performance choice only.
func (o *crossEntropyObjective) GradHessVec(scores []float64, class int, out []GradHess) {
	n := len(scores)
	if task.FastClassesMin <= n && n <= task.FastClassesMax {
		o.gradHessFast(scores, class, out)
	} else {
		o.gradHessGeneric(scores, class, out)
	}
	if o.zeroFirst {
		// anchor the first logit: the model never updates it
		out[0] = GradHess{}
	}
}

// gradHessFast keeps the probability scratch in a fixed stack buffer and
// stabilizes by subtracting the running maximum, so the whole evaluation
// does no heap work.
func (o *crossEntropyObjective) gradHessFast(scores []float64, class int, out []GradHess) {
	var buf [task.FastClassesMax]float64
	n := len(scores)
	scores = scores[:n:n]

	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		e := o.exp(scores[i] - maxScore)
		buf[i] = e
		sum += e
	}

	inv := 1 / sum
	for i := 0; i < n; i++ {
		p := buf[i] * inv
		g := p
		if i == class {
			g = p - 1
		}
		out[i] = GradHess{Grad: g, Hess: p * (1 - p)}
	}
}

// gradHessGeneric serves any class count through a pooled scratch slice,
// stabilizing in log space with log-sum-exp.
func (o *crossEntropyObjective) gradHessGeneric(scores []float64, class int, out []GradHess) {
	n := len(scores)
	scratch, release := pool.GetFloat64Slice(n)
	defer release()

	lse := floats.LogSumExp(scores)
	for i := 0; i < n; i++ {
		scratch[i] = o.exp(scores[i] - lse)
	}

	for i := 0; i < n; i++ {
		p := scratch[i]
		g := p
		if i == class {
			g = p - 1
		}
		out[i] = GradHess{Grad: g, Hess: p * (1 - p)}
	}
}
