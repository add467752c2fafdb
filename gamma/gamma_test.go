package gamma_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgamma/gamma"
	"github.com/katalvlaran/lvgamma/lanczos"
	"github.com/katalvlaran/lvgamma/numerr"
)

func newEvaluator(t testing.TB, opts ...gamma.Option) *gamma.Evaluator {
	t.Helper()
	tab, err := lanczos.New()
	require.NoError(t, err)
	ev, err := gamma.New(tab, opts...)
	require.NoError(t, err)

	return ev
}

// TestGamma_KnownValues covers integers, the half-integer √π and its reflection.
func TestGamma_KnownValues(t *testing.T) {
	for _, mode := range []gamma.PrecisionMode{gamma.Quick, gamma.Precise} {
		ev := newEvaluator(t, gamma.WithPrecision(mode))

		g, err := ev.Gamma(5)
		require.NoError(t, err)
		assert.InDelta(t, 24.0, g, 1e-12, mode.String())

		g, err = ev.Gamma(1)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, g, 1e-15, mode.String())

		g, err = ev.Gamma(0.5)
		require.NoError(t, err)
		assert.InDelta(t, 1.7724538509055165, g, 1e-15, mode.String())

		g, err = ev.Gamma(-0.5)
		require.NoError(t, err)
		assert.InDelta(t, -3.544907701811031, g, 1e-14, mode.String())
	}
}

// TestGamma_AgainstStdlib compares with math.Gamma over both half-lines.
func TestGamma_AgainstStdlib(t *testing.T) {
	ev := newEvaluator(t)
	for _, x := range []float64{0.1, 0.75, 3, 7.3, 20.1, 40.5, -0.25, -3.3, -7.9} {
		got, err := ev.Gamma(x)
		require.NoError(t, err)
		assert.InEpsilon(t, math.Gamma(x), got, 1e-13, "x=%g", x)
	}
}

// TestGamma_SpecialArguments covers zero, poles, NaN and overflow.
func TestGamma_SpecialArguments(t *testing.T) {
	ev := newEvaluator(t)

	g, err := ev.Gamma(0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(g, 1))

	for _, x := range []float64{-1, -2, -10, math.Inf(-1)} {
		_, err = ev.Gamma(x)
		assert.ErrorIs(t, err, numerr.ErrDomain, "x=%g", x)
	}

	_, err = ev.Gamma(math.NaN())
	assert.ErrorIs(t, err, numerr.ErrUndefined)

	g, err = ev.Gamma(200)
	require.NoError(t, err)
	assert.True(t, math.IsInf(g, 1))

	g, err = ev.Gamma(math.Inf(1))
	require.NoError(t, err)
	assert.True(t, math.IsInf(g, 1))
}

// TestLogGamma_Domain leaves reflection to the caller.
func TestLogGamma_Domain(t *testing.T) {
	ev := newEvaluator(t, gamma.WithPrecision(gamma.Precise))

	_, err := ev.LogGamma(0)
	assert.ErrorIs(t, err, numerr.ErrDomain)
	_, err = ev.LogGamma(-2.5)
	assert.ErrorIs(t, err, numerr.ErrDomain)
	_, err = ev.LogGamma(math.NaN())
	assert.ErrorIs(t, err, numerr.ErrUndefined)

	lg, err := ev.LogGamma(10)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(362880), lg, 1e-14)
}

// TestGergoNemes checks accuracy bands and the shared special-argument rules.
func TestGergoNemes(t *testing.T) {
	g, err := gamma.GergoNemes(5)
	require.NoError(t, err)
	assert.InEpsilon(t, 24.0, g, 1e-6)

	g, err = gamma.GergoNemes(20)
	require.NoError(t, err)
	assert.InEpsilon(t, math.Gamma(20), g, 1e-9)

	g, err = gamma.GergoNemes(-2.5)
	require.NoError(t, err)
	assert.InEpsilon(t, math.Gamma(-2.5), g, 1e-4)

	g, err = gamma.GergoNemes(0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(g, 1))

	_, err = gamma.GergoNemes(-3)
	assert.ErrorIs(t, err, numerr.ErrDomain)
	_, err = gamma.GergoNemes(math.NaN())
	assert.ErrorIs(t, err, numerr.ErrUndefined)
}

// TestNew_NilTables refuses to build an Evaluator without tables.
func TestNew_NilTables(t *testing.T) {
	_, err := gamma.New(nil)
	assert.ErrorIs(t, err, gamma.ErrNilTables)
}

// TestPrecisionMode round-trips names and rejects unknown ones.
func TestPrecisionMode(t *testing.T) {
	for _, m := range []gamma.PrecisionMode{gamma.Quick, gamma.Precise} {
		got, err := gamma.ParsePrecisionMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := gamma.ParsePrecisionMode(" PRECISE ")
	require.NoError(t, err)
	assert.Equal(t, gamma.Precise, got)

	_, err = gamma.ParsePrecisionMode("fast")
	assert.ErrorIs(t, err, gamma.ErrUnknownPrecision)
	assert.Equal(t, numerr.CategoryOther, numerr.Classify(err), "a configuration mistake is not a numeric error")
	assert.Panics(t, func() { gamma.WithPrecision(gamma.PrecisionMode(7)) })
	assert.Equal(t, gamma.Quick, newEvaluator(t).Mode())
}

// TestGamma_FunctionalEquation checks Γ(x+1) = x·Γ(x) on random arguments.
func TestGamma_FunctionalEquation(t *testing.T) {
	ev := newEvaluator(t)

	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 300
	properties := gopter.NewProperties(params)

	properties.Property("Γ(x+1) = x·Γ(x)", prop.ForAll(
		func(x float64) bool {
			g, err := ev.Gamma(x)
			if err != nil {
				return false
			}
			g1, err := ev.Gamma(x + 1)
			if err != nil {
				return false
			}

			return math.Abs(g1-x*g) <= 1e-12*math.Abs(g1)
		},
		gen.Float64Range(0.05, 50),
	))
	properties.Property("reflection Γ(x)·Γ(1−x) = π/sin(πx)", prop.ForAll(
		func(x float64) bool {
			if math.Abs(x-math.Round(x)) < 1e-3 {
				return true
			}
			a, err := ev.Gamma(x)
			if err != nil {
				return false
			}
			b, err := ev.Gamma(1 - x)
			if err != nil {
				return false
			}
			want := math.Pi / math.Sin(math.Pi*x)

			return math.Abs(a*b-want) <= 1e-11*math.Abs(want)
		},
		gen.Float64Range(-5, 5),
	))

	properties.TestingRun(t)
}
