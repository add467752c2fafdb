package lanczos_test

import (
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgamma/lanczos"
	"github.com/katalvlaran/lvgamma/matrix"
	"github.com/katalvlaran/lvgamma/numerr"
)

// godfrey holds the 15 coefficients for g = 607/128 to 60 significant digits.
var godfrey = []string{
	"2.50662827463099321269071321290298104377823131793487861521421e+0",
	"1.43269436391524834116310803080216408071593930149541870335896e+2",
	"-1.49389932537372300003892850647534301566462333368904572301170e+2",
	"3.54339428764416862384261658231359416879859464122333804015896e+1",
	"-1.23304508011192900199205019045366385661386634385593590312481e+0",
	"8.52119508381137920039166842581357287636785786304380307407387e-5",
	"1.16617443706980676361066723073155328779760333596672525474653e-4",
	"-2.46588241301200230325289044382556220961419739069719774135518e-4",
	"3.96269613403314676853385056732651423122064985324934997622187e-4",
	"-5.27054794775143575920367995455947669733035102715184805717095e-4",
	"5.45040294792559109233521222939185396504178269532974513890703e-4",
	"-4.11884411878881395461043822782626554566755272164732526614592e-4",
	"2.11605107132058147537083645155915069151466885414715781615271e-4",
	"-6.56506960736953574742190938202579772594763806351937193524517e-5",
	"9.24925345651558838630300519322709593428767728128245438317698e-6",
}

func defaultTables(t testing.TB) *lanczos.Tables {
	t.Helper()
	tab, err := lanczos.New()
	require.NoError(t, err)

	return tab
}

// row narrows the i-th row of a decimal matrix to float64.
func row(t *testing.T, m *matrix.Dense[*apd.Decimal], i int) []float64 {
	t.Helper()
	out := make([]float64, m.Cols())
	for j := range out {
		v, err := m.At(i, j)
		require.NoError(t, err)
		out[j], err = v.Float64()
		require.NoError(t, err)
	}

	return out
}

// TestCoefficients_Godfrey narrows to the same float64 as the 60-digit table.
func TestCoefficients_Godfrey(t *testing.T) {
	tab := defaultTables(t)

	got := tab.Coefficients()
	require.Len(t, got, len(godfrey))
	for i, s := range godfrey {
		want, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		assert.Equal(t, want, got[i], "P[%d]", i)
	}
}

// TestPreciseCoefficients_Godfrey compares the decimal vector with the table at 1e-20 relative.
func TestPreciseCoefficients_Godfrey(t *testing.T) {
	tab := defaultTables(t)
	ctx := apd.BaseContext.WithPrecision(80)
	bound := apd.New(1, -20)

	for i, s := range tab.PreciseCoefficients() {
		got, _, err := apd.NewFromString(s)
		require.NoError(t, err)
		want, _, err := apd.NewFromString(godfrey[i])
		require.NoError(t, err)

		diff := new(apd.Decimal)
		_, err = ctx.Sub(diff, got, want)
		require.NoError(t, err)
		_, err = ctx.Quo(diff, diff, want)
		require.NoError(t, err)
		diff.Abs(diff)
		assert.Negative(t, diff.Cmp(bound), "P[%d] = %s", i, s)
	}
}

// TestMatrices_Structure checks the leading rows of B and C, the diagonal of D and F0..F2.
func TestMatrices_Structure(t *testing.T) {
	tab := defaultTables(t)

	b := tab.B()
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, row(t, b, 0)[:5])
	assert.Equal(t, []float64{0, 1, -2, 3, -4}, row(t, b, 1)[:5])
	assert.Equal(t, []float64{0, 0, 1, -4, 10}, row(t, b, 2)[:5])

	c := tab.C()
	assert.Equal(t, []float64{0.5, 0, 0, 0}, row(t, c, 0)[:4])
	assert.Equal(t, []float64{-1, 2, 0, 0}, row(t, c, 1)[:4])
	assert.Equal(t, []float64{1, -8, 8, 0}, row(t, c, 2)[:4])
	assert.Equal(t, []float64{-1, 18, -48, 32}, row(t, c, 3)[:4])

	d := tab.D()
	wantDiag := []float64{
		1, -1, -6, -30, -140, -630, -2772, -12012, -51480, -218790,
		-923780, -3879876, -16224936, -67603900, -280816200,
	}
	gotDiag := make([]float64, d.Rows())
	for i := range gotDiag {
		gotDiag[i] = row(t, d, i)[i]
	}
	if diff := cmp.Diff(wantDiag, gotDiag); diff != "" {
		t.Errorf("D diagonal mismatch (-want +got):\n%s", diff)
	}

	f := tab.F()
	require.Equal(t, 15, f.Rows())
	require.Equal(t, 1, f.Cols())
	assert.InEpsilon(t, 165.1683478954885735, row(t, f, 0)[0], 1e-15)
	assert.InEpsilon(t, 32.95659778694548732, row(t, f, 1)[0], 1e-15)
	assert.InEpsilon(t, 14.84769083740137456, row(t, f, 2)[0], 1e-15)
}

// TestMatrices_AreCopies mutating a returned matrix leaves the tables intact.
func TestMatrices_AreCopies(t *testing.T) {
	tab := defaultTables(t)

	b := tab.B()
	require.NoError(t, b.Set(0, 0, apd.New(42, 0)))
	assert.Equal(t, 1.0, row(t, tab.B(), 0)[0])

	coeffs := tab.Coefficients()
	coeffs[0] = 0
	assert.NotZero(t, tab.Coefficients()[0])
}

// TestLogGamma_KnownValues exercises both paths against factorials and √π.
func TestLogGamma_KnownValues(t *testing.T) {
	tab := defaultTables(t)
	cases := []struct {
		x, want float64
	}{
		{1, 0},
		{2, 0},
		{5, math.Log(24)},
		{0.5, 0.5 * math.Log(math.Pi)},
		{10, math.Log(362880)},
		{100, 359.1342053695754},
	}
	for _, tc := range cases {
		quick, err := tab.LogGammaQuick(tc.x)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, quick, 1e-13*math.Max(1, math.Abs(tc.want)), "quick x=%g", tc.x)

		precise, err := tab.LogGamma(tc.x)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, precise, 1e-14*math.Max(1, math.Abs(tc.want)), "precise x=%g", tc.x)
	}
}

// TestLogGamma_QuickMatchesPrecise sweeps several decades and expects agreement to ~1e-14.
func TestLogGamma_QuickMatchesPrecise(t *testing.T) {
	tab := defaultTables(t)
	for _, x := range []float64{1e-3, 0.1, 0.7, 1.5, 3.5, 12.25, 50, 171.5, 1e5} {
		quick, err := tab.LogGammaQuick(x)
		require.NoError(t, err)
		precise, err := tab.LogGamma(x)
		require.NoError(t, err)

		lg, _ := math.Lgamma(x)
		assert.InDelta(t, precise, quick, 1e-14*math.Max(1, math.Abs(lg)), "x=%g", x)
		assert.InDelta(t, lg, precise, 1e-13*math.Max(1, math.Abs(lg)), "x=%g", x)
	}
}

// TestLogGamma_Domain rejects non-positive and NaN arguments and passes +Inf through.
func TestLogGamma_Domain(t *testing.T) {
	tab := defaultTables(t)
	for _, x := range []float64{0, -1, -0.5, math.NaN(), math.Inf(-1)} {
		_, err := tab.LogGamma(x)
		assert.ErrorIs(t, err, numerr.ErrDomain, "precise x=%g", x)
		_, err = tab.LogGammaQuick(x)
		assert.ErrorIs(t, err, numerr.ErrDomain, "quick x=%g", x)
	}

	v, err := tab.LogGammaQuick(math.Inf(1))
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

// TestOptions_Panics checks that nonsensical options fail fast.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { lanczos.WithG(0) })
	assert.Panics(t, func() { lanczos.WithG(math.Inf(1)) })
	assert.Panics(t, func() { lanczos.WithN(0) })
	assert.Panics(t, func() { lanczos.WithN(61) })
	assert.Panics(t, func() { lanczos.WithScale(0) })
}

// TestParameters_Validate mirrors the option panics as errors.
func TestParameters_Validate(t *testing.T) {
	assert.NoError(t, lanczos.DefaultParameters().Validate())

	bad := []lanczos.Parameters{
		{G: -1, N: 15, Scale: 30},
		{G: math.NaN(), N: 15, Scale: 30},
		{G: 5, N: 0, Scale: 30},
		{G: 5, N: 15, Scale: 0},
	}
	for _, p := range bad {
		_, err := lanczos.NewFromParameters(p)
		assert.ErrorIs(t, err, lanczos.ErrInvalidParameters, "%+v", p)
	}
	assert.Equal(t, uint32(50), lanczos.DefaultParameters().Precision())
}

// TestNew_SingleCoefficient n = 1 reduces the chain to D·B·C·F = F0/2.
func TestNew_SingleCoefficient(t *testing.T) {
	tab, err := lanczos.New(lanczos.WithN(1))
	require.NoError(t, err)

	got := tab.Coefficients()
	require.Len(t, got, 1)
	assert.InEpsilon(t, 82.58417394774429, got[0], 1e-15)
	assert.Equal(t, 1, tab.Parameters().N)
}

// TestNew_CustomScale raises the working precision.
func TestNew_CustomScale(t *testing.T) {
	tab, err := lanczos.New(lanczos.WithScale(40), lanczos.WithG(5))
	require.NoError(t, err)
	assert.Equal(t, uint32(60), tab.Precision())

	v, err := tab.LogGamma(5)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(24), v, 1e-13)
}

// TestTables_ConcurrentUse shares one Tables value across goroutines.
func TestTables_ConcurrentUse(t *testing.T) {
	tab := defaultTables(t)
	want, err := tab.LogGamma(7.5)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]float64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = tab.LogGamma(7.5)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want, r)
	}
}
