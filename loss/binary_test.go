package loss

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBinary(t *testing.T, cfg Config) Binary {
	t.Helper()
	obj, err := Parse("log_loss", cfg)
	require.NoError(t, err)
	bin, ok := obj.Binary()
	require.True(t, ok)

	return bin
}

func TestLogLoss_ZeroScore(t *testing.T) {
	bin := mustBinary(t, DefaultConfig())

	// p = 0.5 at score 0
	gh := bin.GradHess(0, 1)
	require.InDelta(t, -0.5, gh.Grad, 1e-15)
	require.InDelta(t, 0.25, gh.Hess, 1e-15)

	gh = bin.GradHess(0, 0)
	require.InDelta(t, 0.5, gh.Grad, 1e-15)
	require.InDelta(t, 0.25, gh.Hess, 1e-15)
}

func TestLogLoss_MatchesClosedForm(t *testing.T) {
	bin := mustBinary(t, DefaultConfig())
	for _, score := range []float64{-5, -1.5, -0.1, 0.1, 1.5, 5} {
		p := 1 / (1 + math.Exp(-score))
		for _, label := range []int{0, 1} {
			gh := bin.GradHess(score, label)
			require.InDelta(t, p-float64(label), gh.Grad, 1e-12, "score=%v label=%d", score, label)
			require.InDelta(t, p*(1-p), gh.Hess, 1e-12, "score=%v label=%d", score, label)
		}
	}
}

func TestLogLoss_ExtremeScoresStayFinite(t *testing.T) {
	bin := mustBinary(t, DefaultConfig())
	for _, score := range []float64{-1e4, -100, 100, 1e4} {
		for _, label := range []int{0, 1} {
			gh := bin.GradHess(score, label)
			require.False(t, math.IsNaN(gh.Grad), "score=%v", score)
			require.False(t, math.IsInf(gh.Grad, 0), "score=%v", score)
			require.GreaterOrEqual(t, gh.Hess, 0.0)
			require.LessOrEqual(t, gh.Hess, 0.25)
			require.GreaterOrEqual(t, gh.Grad, -1.0)
			require.LessOrEqual(t, gh.Grad, 1.0)
		}
	}
}

func TestLogLoss_ApproximateCloseToExact(t *testing.T) {
	exact := mustBinary(t, DefaultConfig())
	approx := mustBinary(t, Config{Approximate: true})

	tol := DefaultTolerance(true)
	for _, score := range []float64{-8, -2, -0.25, 0, 0.25, 2, 8} {
		for _, label := range []int{0, 1} {
			e := exact.GradHess(score, label)
			a := approx.GradHess(score, label)
			require.InDelta(t, e.Grad, a.Grad, tol.BinaryToMulticlass)
			require.InDelta(t, e.Hess, a.Hess, tol.BinaryToMulticlass)
		}
	}
}

func TestSigmoid_Monotone(t *testing.T) {
	prev := -1.0
	for score := -20.0; score <= 20.0; score += 0.5 {
		p := sigmoid(score, math.Exp)
		require.Greater(t, p, prev)
		require.Greater(t, p, 0.0)
		require.Less(t, p, 1.0)
		prev = p
	}
}
