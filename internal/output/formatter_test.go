package output

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dohyun-im/saegil/internal/domain"
	"github.com/dohyun-im/saegil/internal/simulation"
)

func TestGetFormatterByName(t *testing.T) {
	assert.IsType(t, &ConsoleFormatter{}, GetFormatterByName("console"))
	assert.IsType(t, &JSONFormatter{}, GetFormatterByName("json"))
	assert.IsType(t, &CSVFormatter{}, GetFormatterByName("csv"))
	assert.Nil(t, GetFormatterByName("xml"))
	assert.Nil(t, GetFormatterByName(""))
}

func TestFormatKRW(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "₩0"},
		{999, "₩999"},
		{1_000, "₩1,000"},
		{87_500_000, "₩87,500,000"},
		{1_000_000_000, "₩1,000,000,000"},
		{-2_325_000, "-₩2,325,000"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatKRW(decimal.NewFromInt(tc.amount)), "amount %d", tc.amount)
	}
}

func TestFormatKRW_DropsFractions(t *testing.T) {
	assert.Equal(t, "₩1,235", FormatKRW(decimal.NewFromFloat(1234.56)))
}

func sampleReport() *Report {
	largest := domain.CreditorDebt{
		Creditor:       "국민은행",
		Amount:         decimal.NewFromInt(87_500_000),
		MonthlyPayment: decimal.NewFromInt(2_325_000),
		InterestRate:   decimal.NewFromFloat(8.5),
	}

	return &Report{
		Analysis: &domain.DebtAnalysisResult{
			TotalDebt:      decimal.NewFromInt(87_500_000),
			TotalAssets:    decimal.NewFromInt(1_200_000),
			MonthlyPayment: decimal.NewFromInt(2_325_000),
			DTI:            decimal.NewFromFloat(77.5),
			DSR:            decimal.NewFromFloat(77.5),
			CreditGrade:    domain.GradeCC,
			RiskLevel:      domain.RiskCritical,
			Breakdown: domain.DebtBreakdown{
				Loans: domain.DebtCategory{
					Count:          1,
					Amount:         decimal.NewFromInt(87_500_000),
					MonthlyPayment: decimal.NewFromInt(2_325_000),
				},
				ByCreditor:  []domain.CreditorDebt{largest},
				LargestDebt: &largest,
			},
			Recommendations: []domain.Recommendation{
				{Urgency: domain.UrgencyImmediate, Title: "채무조정 상담", Detail: "즉시 상담이 필요합니다"},
			},
			EligiblePrograms: []string{"프리워크아웃"},
			AnalyzedAt:       time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
			DataSources:      domain.DataSources{SyncedAccounts: 2, ManualDebts: 0},
		},
		Plans: []domain.RestructuringPlan{
			{
				PlanType:             domain.PlanPreWorkout,
				Name:                 "프리워크아웃",
				AdjustedPayment:      decimal.NewFromInt(1_511_250),
				AdjustedPeriodMonths: 72,
				TotalSavings:         decimal.NewFromInt(58_590_000),
				Priority:             90,
				IsRecommended:        true,
			},
		},
		Simulation: &domain.SimulationResult{
			OriginalPlan: domain.PlanProjection{
				MonthlyPayment: decimal.NewFromInt(2_325_000),
				TotalPayment:   decimal.NewFromInt(111_600_000),
				TotalInterest:  decimal.NewFromInt(24_100_000),
				PeriodMonths:   48,
			},
			AdjustedPlan: domain.PlanProjection{
				MonthlyPayment: decimal.NewFromInt(1_511_250),
				TotalPayment:   decimal.NewFromInt(108_810_000),
				TotalInterest:  decimal.NewFromInt(21_310_000),
				PeriodMonths:   72,
			},
			Savings: domain.SimulationSavings{
				Monthly:  decimal.NewFromInt(813_750),
				Total:    decimal.NewFromInt(2_790_000),
				Interest: decimal.NewFromInt(2_790_000),
			},
			BreakEvenMonth: 2,
		},
		Comparison: &simulation.PlanComparison{
			BestMonthlySavings: simulation.PlanCandidate{Name: "프리워크아웃"},
			BestTotalSavings:   simulation.PlanCandidate{Name: "프리워크아웃"},
			ShortestPeriod:     simulation.PlanCandidate{Name: "프리워크아웃"},
			Ranked: []simulation.ScoredPlan{
				{
					PlanCandidate: simulation.PlanCandidate{
						Name:           "프리워크아웃",
						MonthlySavings: decimal.NewFromInt(813_750),
						TotalSavings:   decimal.NewFromInt(58_590_000),
						PeriodMonths:   72,
					},
					Score: decimal.NewFromInt(58),
				},
			},
		},
	}
}

func TestJSONFormatter_RoundTrips(t *testing.T) {
	out, err := (&JSONFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "analysis")
	assert.Contains(t, decoded, "plans")
	assert.Contains(t, decoded, "simulation")
	assert.Contains(t, decoded, "comparison")
}

func TestJSONFormatter_OmitsEmptySections(t *testing.T) {
	out, err := (&JSONFormatter{}).Format(&Report{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Empty(t, decoded)
}

func TestConsoleFormatter_RendersAllSections(t *testing.T) {
	out, err := (&ConsoleFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	assert.Contains(t, out, "FINANCIAL DIAGNOSIS")
	assert.Contains(t, out, "DEBT BREAKDOWN")
	assert.Contains(t, out, "MATCHED RESTRUCTURING PLANS")
	assert.Contains(t, out, "PAYMENT SIMULATION")
	assert.Contains(t, out, "PLAN COMPARISON")
	assert.Contains(t, out, "₩87,500,000")
	assert.Contains(t, out, "77.50")
	assert.Contains(t, out, "프리워크아웃")
	assert.Contains(t, out, "Break-even month: 2")
}

func TestConsoleFormatter_SkipsMissingSections(t *testing.T) {
	report := &Report{Analysis: sampleReport().Analysis}

	out, err := (&ConsoleFormatter{}).Format(report)
	require.NoError(t, err)

	assert.Contains(t, out, "FINANCIAL DIAGNOSIS")
	assert.NotContains(t, out, "PAYMENT SIMULATION")
	assert.NotContains(t, out, "PLAN COMPARISON")
}

func TestCSVFormatter_Smoke(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	assert.Contains(t, out, "total_debt")
	assert.Contains(t, out, "87500000")
	assert.Contains(t, out, "프리워크아웃")
}

func TestTruncate_RuneSafe(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "개인회생...", truncate("개인회생 프로그램 비교", 7))
}
