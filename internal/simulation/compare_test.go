package simulation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dohyun-im/saegil/internal/domain"
)

func TestComparePlans_EmptyListRejected(t *testing.T) {
	result, err := ComparePlans(nil)

	require.Error(t, err)
	assert.Nil(t, result)

	var compareErr *CompareError
	require.ErrorAs(t, err, &compareErr)
	assert.Equal(t, "compare_plans", compareErr.Operation)
	assert.Contains(t, compareErr.Error(), "empty plan list")
}

func TestComparePlans_RankedSortedByScoreDescending(t *testing.T) {
	candidates := []PlanCandidate{
		{Name: "small", MonthlySavings: krw(100_000), TotalSavings: krw(5_000_000), PeriodMonths: 96},
		{Name: "big", MonthlySavings: krw(600_000), TotalSavings: krw(80_000_000), PeriodMonths: 60},
		{Name: "short", MonthlySavings: krw(200_000), TotalSavings: krw(10_000_000), PeriodMonths: 12},
	}

	result, err := ComparePlans(candidates)
	require.NoError(t, err)
	require.Len(t, result.Ranked, len(candidates))

	for i := 1; i < len(result.Ranked); i++ {
		assert.True(t, result.Ranked[i-1].Score.GreaterThanOrEqual(result.Ranked[i].Score),
			"rank %d (%s) below rank %d (%s)", i-1, result.Ranked[i-1].Name, i, result.Ranked[i].Name)
	}
}

func TestComparePlans_IndependentBestPicks(t *testing.T) {
	candidates := []PlanCandidate{
		{Name: "monthly-winner", MonthlySavings: krw(900_000), TotalSavings: krw(20_000_000), PeriodMonths: 96},
		{Name: "total-winner", MonthlySavings: krw(300_000), TotalSavings: krw(120_000_000), PeriodMonths: 72},
		{Name: "period-winner", MonthlySavings: krw(100_000), TotalSavings: krw(8_000_000), PeriodMonths: 12},
	}

	result, err := ComparePlans(candidates)
	require.NoError(t, err)

	assert.Equal(t, "monthly-winner", result.BestMonthlySavings.Name)
	assert.Equal(t, "total-winner", result.BestTotalSavings.Name)
	assert.Equal(t, "period-winner", result.ShortestPeriod.Name)
}

func TestScore_Formula(t *testing.T) {
	// monthly 250k/500k×40 = 20; total 25M/50M×30 = 15; period 60/120×30
	// subtracted from 30 = 15. Total 50.
	c := PlanCandidate{
		MonthlySavings: krw(250_000),
		TotalSavings:   krw(25_000_000),
		PeriodMonths:   60,
	}
	assert.True(t, Score(c).Equal(krw(50)), "score: %s", Score(c))
}

func TestScore_Caps(t *testing.T) {
	// Every component saturates: 40 + 30 + 0.
	c := PlanCandidate{
		MonthlySavings: krw(10_000_000),
		TotalSavings:   krw(900_000_000),
		PeriodMonths:   240,
	}
	assert.True(t, Score(c).Equal(krw(70)), "score: %s", Score(c))

	// Period component floors at zero rather than going negative.
	c.PeriodMonths = 1200
	assert.True(t, Score(c).Equal(krw(70)))
}

func TestCandidatesFromPlans(t *testing.T) {
	plans := []domain.RestructuringPlan{
		{
			PlanType: domain.PlanFreshStartFund,
			Name:     "새출발기금",
			ComparisonMetrics: domain.ComparisonMetrics{
				MonthlySavings: krw(400_000),
				TotalSavings:   krw(360_000_000),
				PeriodMonths:   96,
			},
		},
	}

	candidates := CandidatesFromPlans(plans)
	require.Len(t, candidates, 1)
	assert.Equal(t, domain.PlanFreshStartFund, candidates[0].PlanType)
	assert.True(t, candidates[0].TotalSavings.Equal(krw(360_000_000)))
	assert.Equal(t, 96, candidates[0].PeriodMonths)

	_, err := ComparePlans(candidates)
	assert.NoError(t, err)
}

func TestComparePlans_SingleCandidate(t *testing.T) {
	candidates := []PlanCandidate{{Name: "only", MonthlySavings: krw(100_000), PeriodMonths: 60}}

	result, err := ComparePlans(candidates)
	require.NoError(t, err)
	assert.Equal(t, "only", result.BestMonthlySavings.Name)
	assert.Equal(t, "only", result.BestTotalSavings.Name)
	assert.Equal(t, "only", result.ShortestPeriod.Name)
	require.Len(t, result.Ranked, 1)

	var zero decimal.Decimal
	assert.True(t, result.Ranked[0].Score.GreaterThanOrEqual(zero))
}
