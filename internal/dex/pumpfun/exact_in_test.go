package pumpfun

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuyExactSolIn(t *testing.T) {
	tests := []struct {
		name   string
		budget uint64
		want   ExactSolInQuote
	}{
		{
			name:   "1 SOL fits exactly",
			budget: 1_000_000_000,
			want: ExactSolInQuote{
				SpendableSolIn: 1_000_000_000,
				NetSol:         990_099_009,
				ProtocolFee:    9_405_941,
				CreatorFee:     495_050,
				TokensOut:      34_281_150_096_027,
			},
		},
		{
			name:   "rounding overshoot is cut from netSol",
			budget: 991_530_319,
			want: ExactSolInQuote{
				SpendableSolIn: 991_530_319,
				NetSol:         981_713_186,
				ProtocolFee:    9_326_276,
				CreatorFee:     490_857,
				TokensOut:      33_999_999_974_662,
			},
		},
		{
			name:   "dust budget buys nothing",
			budget: 2,
			want:   ExactSolInQuote{SpendableSolIn: 2, ProtocolFee: 1, CreatorFee: 1},
		},
		{
			name:   "zero budget",
			budget: 0,
			want:   ExactSolInQuote{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuyExactSolIn(QuoteParams{Global: testGlobal(), Curve: FreshCurve(), Amount: tt.budget})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuyExactSolIn_NeverExceedsBudget(t *testing.T) {
	rng := rand.New(rand.NewPCG(2024, 11))

	type budgetCase struct {
		protocolBps uint64
		creatorBps  uint64
		curve       CurveState
		budget      uint64
	}
	cases := make([]budgetCase, 0, 2_000)
	for len(cases) < cap(cases) {
		c := budgetCase{
			protocolBps: rng.Uint64N(500),
			creatorBps:  rng.Uint64N(300),
			budget:      1 + rng.Uint64N(100_000_000_000),
			curve:       FreshCurve(),
		}
		if rng.IntN(2) == 0 {
			bc := testCurve(testCreator)
			bc.VirtualSolReserves = 1_000_000_000 + rng.Uint64N(100_000_000_000)
			bc.VirtualTokenReserves = 1_000_000_000_000 + rng.Uint64N(testInitialVirtualTokens)
			bc.RealTokenReserves = min(bc.VirtualTokenReserves, testInitialRealTokens)
			c.curve = ExistingCurve(bc)
		}
		cases = append(cases, c)
	}

	for _, c := range cases {
		global := testGlobal()
		global.FeeBasisPoints = c.protocolBps
		global.CreatorFeeBasisPoints = c.creatorBps

		q, err := BuyExactSolIn(QuoteParams{
			Global: global, Curve: c.curve,
			MintSupply: supplyPtr(testTokenTotalSupply), Amount: c.budget,
		})
		require.NoError(t, err)
		assert.LessOrEqual(t, q.NetSol+q.ProtocolFee+q.CreatorFee, c.budget,
			"budget=%d protocol=%d creator=%d fresh=%v", c.budget, c.protocolBps, c.creatorBps, c.curve.IsFresh())
	}
}

func TestBuyExactSolIn_CompleteCurve(t *testing.T) {
	bc := testCurve(testCreator)
	bc.Complete = true

	_, err := BuyExactSolIn(QuoteParams{
		Global: testGlobal(), Curve: ExistingCurve(bc),
		MintSupply: supplyPtr(testTokenTotalSupply), Amount: 1_000_000_000,
	})
	assert.ErrorIs(t, err, ErrCurveComplete)
}

func TestRequiredSolForTokens(t *testing.T) {
	got, err := RequiredSolForTokens(QuoteParams{Global: testGlobal(), Curve: FreshCurve(), Amount: 34_000_000_000_000})
	require.NoError(t, err)
	assert.Equal(t, ExactSolInCost{
		Tokens:         34_000_000_000_000,
		NetSol:         981_713_187,
		SpendableSolIn: 991_530_319,
	}, got)

	got, err = RequiredSolForTokens(QuoteParams{Global: testGlobal(), Curve: FreshCurve()})
	require.NoError(t, err)
	assert.Zero(t, got.SpendableSolIn)
}

func TestRequiredSolForTokens_MoreThanVirtualReserves(t *testing.T) {
	_, err := RequiredSolForTokens(QuoteParams{Global: testGlobal(), Curve: FreshCurve(), Amount: testInitialVirtualTokens + 1})
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = RequiredSolForTokens(QuoteParams{Global: testGlobal(), Curve: FreshCurve(), Amount: testInitialVirtualTokens})
	assert.ErrorIs(t, err, ErrDivisionByZero)
}
