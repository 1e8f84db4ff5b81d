package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dohyun-im/saegil/internal/domain"
	"github.com/dohyun-im/saegil/internal/simulation"
)

// ConsoleFormatter renders a human-readable report with lipgloss styling.
type ConsoleFormatter struct{}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)

	riskStyles = map[domain.RiskLevel]lipgloss.Style{
		domain.RiskLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		domain.RiskMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		domain.RiskHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		domain.RiskCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}

	recommendedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// Format implements Formatter.
func (cf *ConsoleFormatter) Format(report *Report) (string, error) {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("DEBT ANALYSIS REPORT"))
	sb.WriteString("\n" + strings.Repeat("=", 72) + "\n")

	if report.Analysis != nil {
		cf.writeAnalysis(&sb, report.Analysis)
	}
	if len(report.Plans) > 0 {
		cf.writePlans(&sb, report.Plans)
	}
	if report.Simulation != nil {
		cf.writeSimulation(&sb, report.Simulation)
	}
	if report.Comparison != nil {
		cf.writeComparison(&sb, report.Comparison)
	}

	return sb.String(), nil
}

func (cf *ConsoleFormatter) writeAnalysis(sb *strings.Builder, a *domain.DebtAnalysisResult) {
	sb.WriteString("\n" + sectionStyle.Render("FINANCIAL DIAGNOSIS") + "\n")
	fmt.Fprintf(sb, "Total Debt:       %s\n", FormatKRW(a.TotalDebt))
	fmt.Fprintf(sb, "Total Assets:     %s\n", FormatKRW(a.TotalAssets))
	fmt.Fprintf(sb, "Monthly Payment:  %s\n", FormatKRW(a.MonthlyPayment))
	fmt.Fprintf(sb, "DTI / DSR:        %s%% / %s%%\n", a.DTI.StringFixed(2), a.DSR.StringFixed(2))
	fmt.Fprintf(sb, "Credit Grade:     %s\n", a.CreditGrade)

	risk := a.RiskLevel.String()
	if style, ok := riskStyles[a.RiskLevel]; ok {
		risk = style.Render(risk)
	}
	fmt.Fprintf(sb, "Risk Level:       %s\n", risk)

	fmt.Fprintf(sb, "Data Sources:     %d synced accounts, %d manual debts\n",
		a.DataSources.SyncedAccounts, a.DataSources.ManualDebts)

	sb.WriteString("\n" + sectionStyle.Render("DEBT BREAKDOWN") + "\n")
	cf.writeCategory(sb, "Loans", a.Breakdown.Loans)
	cf.writeCategory(sb, "Credit Cards", a.Breakdown.CreditCards)
	cf.writeCategory(sb, "Other", a.Breakdown.Other)
	if a.Breakdown.LargestDebt != nil {
		fmt.Fprintf(sb, "Largest Debt:     %s (%s)\n",
			a.Breakdown.LargestDebt.Creditor, FormatKRW(a.Breakdown.LargestDebt.Amount))
	}

	if len(a.Recommendations) > 0 {
		sb.WriteString("\n" + sectionStyle.Render("RECOMMENDATIONS") + "\n")
		for _, rec := range a.Recommendations {
			fmt.Fprintf(sb, "[%s] %s\n", rec.Urgency, rec.Title)
			fmt.Fprintf(sb, "  %s\n", dimStyle.Render(rec.Detail))
		}
	}

	if len(a.EligiblePrograms) > 0 {
		sb.WriteString("\n" + sectionStyle.Render("ELIGIBLE PROGRAMS (QUICK CHECK)") + "\n")
		for _, name := range a.EligiblePrograms {
			fmt.Fprintf(sb, "- %s\n", name)
		}
	}
}

func (cf *ConsoleFormatter) writeCategory(sb *strings.Builder, label string, cat domain.DebtCategory) {
	fmt.Fprintf(sb, "%-17s %d items, %s (monthly %s)\n",
		label+":", cat.Count, FormatKRW(cat.Amount), FormatKRW(cat.MonthlyPayment))
}

func (cf *ConsoleFormatter) writePlans(sb *strings.Builder, plans []domain.RestructuringPlan) {
	sb.WriteString("\n" + sectionStyle.Render("MATCHED RESTRUCTURING PLANS") + "\n")

	for i, plan := range plans {
		marker := " "
		name := plan.Name
		if plan.IsRecommended {
			marker = "*"
			name = recommendedStyle.Render(name)
		}
		fmt.Fprintf(sb, "%s %d. %s (priority %d)\n", marker, i+1, name, plan.Priority)
		fmt.Fprintf(sb, "     Adjusted Payment: %s/mo over %d months",
			FormatKRW(plan.AdjustedPayment), plan.AdjustedPeriodMonths)
		if !plan.DebtReductionRate.IsZero() {
			fmt.Fprintf(sb, ", %s%% principal reduction", plan.DebtReductionRate.StringFixed(0))
		}
		sb.WriteString("\n")
		fmt.Fprintf(sb, "     Total Savings:    %s\n", FormatKRW(plan.TotalSavings))
	}
	sb.WriteString(dimStyle.Render("* recommended") + "\n")
}

func (cf *ConsoleFormatter) writeSimulation(sb *strings.Builder, sim *domain.SimulationResult) {
	sb.WriteString("\n" + sectionStyle.Render("PAYMENT SIMULATION") + "\n")

	nameWidth, numWidth := 18, 16
	fmt.Fprintf(sb, "%-*s %*s %*s\n", nameWidth, "", numWidth, "Original", numWidth, "Adjusted")
	sb.WriteString(strings.Repeat("-", nameWidth+2*numWidth+2) + "\n")
	fmt.Fprintf(sb, "%-*s %*s %*s\n", nameWidth, "Monthly Payment",
		numWidth, FormatKRW(sim.OriginalPlan.MonthlyPayment),
		numWidth, FormatKRW(sim.AdjustedPlan.MonthlyPayment))
	fmt.Fprintf(sb, "%-*s %*s %*s\n", nameWidth, "Total Interest",
		numWidth, FormatKRW(sim.OriginalPlan.TotalInterest),
		numWidth, FormatKRW(sim.AdjustedPlan.TotalInterest))
	fmt.Fprintf(sb, "%-*s %*s %*s\n", nameWidth, "Total Payment",
		numWidth, FormatKRW(sim.OriginalPlan.TotalPayment),
		numWidth, FormatKRW(sim.AdjustedPlan.TotalPayment))
	fmt.Fprintf(sb, "%-*s %*d %*d\n", nameWidth, "Period (months)",
		numWidth, sim.OriginalPlan.PeriodMonths,
		numWidth, sim.AdjustedPlan.PeriodMonths)

	sb.WriteString("\nSavings: ")
	fmt.Fprintf(sb, "%s/mo, %s total (%s interest, %s forgiven)\n",
		FormatKRW(sim.Savings.Monthly), FormatKRW(sim.Savings.Total),
		FormatKRW(sim.Savings.Interest), FormatKRW(sim.Savings.DebtForgiven))
	fmt.Fprintf(sb, "Break-even month: %d\n", sim.BreakEvenMonth)
}

func (cf *ConsoleFormatter) writeComparison(sb *strings.Builder, cmp *simulation.PlanComparison) {
	sb.WriteString("\n" + sectionStyle.Render("PLAN COMPARISON") + "\n")

	nameWidth, numWidth := 36, 10
	fmt.Fprintf(sb, "%-*s %*s %*s %*s %*s\n",
		nameWidth, "Plan", numWidth, "Score",
		numWidth+4, "Monthly", numWidth+6, "Total", numWidth, "Months")
	sb.WriteString(strings.Repeat("-", nameWidth+3*numWidth+14) + "\n")
	for _, plan := range cmp.Ranked {
		fmt.Fprintf(sb, "%-*s %*s %*s %*s %*d\n",
			nameWidth, truncate(plan.Name, nameWidth),
			numWidth, plan.Score.StringFixed(1),
			numWidth+4, FormatKRW(plan.MonthlySavings),
			numWidth+6, FormatKRW(plan.TotalSavings),
			numWidth, plan.PeriodMonths)
	}

	sb.WriteString("\n")
	fmt.Fprintf(sb, "Best monthly savings: %s\n", cmp.BestMonthlySavings.Name)
	fmt.Fprintf(sb, "Best total savings:   %s\n", cmp.BestTotalSavings.Name)
	fmt.Fprintf(sb, "Shortest period:      %s\n", cmp.ShortestPeriod.Name)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
