package output

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter renders the report as flat CSV sections, one block per
// populated report part, separated by blank lines.
type CSVFormatter struct{}

// Format implements Formatter.
func (cf *CSVFormatter) Format(report *Report) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if a := report.Analysis; a != nil {
		rows := [][]string{
			{"metric", "value"},
			{"total_debt", a.TotalDebt.StringFixed(0)},
			{"total_assets", a.TotalAssets.StringFixed(0)},
			{"monthly_payment", a.MonthlyPayment.StringFixed(0)},
			{"dti", a.DTI.StringFixed(2)},
			{"dsr", a.DSR.StringFixed(2)},
			{"credit_grade", a.CreditGrade.String()},
			{"risk_level", a.RiskLevel.String()},
		}
		if err := w.WriteAll(rows); err != nil {
			return "", fmt.Errorf("failed to write analysis rows: %w", err)
		}
		sb.WriteString("\n")
	}

	if len(report.Plans) > 0 {
		rows := [][]string{{
			"plan_type", "name", "adjusted_payment", "adjusted_rate",
			"period_months", "total_savings", "reduction_rate",
			"recommended", "priority",
		}}
		for _, p := range report.Plans {
			rows = append(rows, []string{
				string(p.PlanType),
				p.Name,
				p.AdjustedPayment.StringFixed(0),
				p.AdjustedInterestRate.StringFixed(1),
				fmt.Sprintf("%d", p.AdjustedPeriodMonths),
				p.TotalSavings.StringFixed(0),
				p.DebtReductionRate.StringFixed(0),
				fmt.Sprintf("%t", p.IsRecommended),
				fmt.Sprintf("%d", p.Priority),
			})
		}
		if err := w.WriteAll(rows); err != nil {
			return "", fmt.Errorf("failed to write plan rows: %w", err)
		}
		sb.WriteString("\n")
	}

	if sim := report.Simulation; sim != nil {
		rows := [][]string{
			{"plan", "monthly_payment", "total_interest", "total_payment", "period_months"},
			{"original", sim.OriginalPlan.MonthlyPayment.StringFixed(0),
				sim.OriginalPlan.TotalInterest.StringFixed(0),
				sim.OriginalPlan.TotalPayment.StringFixed(0),
				fmt.Sprintf("%d", sim.OriginalPlan.PeriodMonths)},
			{"adjusted", sim.AdjustedPlan.MonthlyPayment.StringFixed(0),
				sim.AdjustedPlan.TotalInterest.StringFixed(0),
				sim.AdjustedPlan.TotalPayment.StringFixed(0),
				fmt.Sprintf("%d", sim.AdjustedPlan.PeriodMonths)},
		}
		if err := w.WriteAll(rows); err != nil {
			return "", fmt.Errorf("failed to write simulation rows: %w", err)
		}
		sb.WriteString("\n")
	}

	if cmp := report.Comparison; cmp != nil {
		rows := [][]string{{"rank", "plan_type", "name", "score", "monthly_savings", "total_savings", "period_months"}}
		for i, p := range cmp.Ranked {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				string(p.PlanType),
				p.Name,
				p.Score.StringFixed(2),
				p.MonthlySavings.StringFixed(0),
				p.TotalSavings.StringFixed(0),
				fmt.Sprintf("%d", p.PeriodMonths),
			})
		}
		if err := w.WriteAll(rows); err != nil {
			return "", fmt.Errorf("failed to write comparison rows: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("csv writer failed: %w", err)
	}
	return sb.String(), nil
}
