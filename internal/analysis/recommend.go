package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/dohyun-im/saegil/internal/domain"
)

// Short program names used by the quick eligibility list. The detailed
// matcher attaches the full catalog copy instead.
const (
	ProgramPreWorkout         = "프리워크아웃"
	ProgramFreshStartFund     = "새출발기금"
	ProgramIndividualRecovery = "개인회생"
	ProgramPersonalBankruptcy = "개인파산"
	ProgramCreditAdjustment   = "개인워크아웃"
)

// buildRecommendations emits advisories from independent DTI bands plus a
// separate low-grade entry that can co-occur with any band.
func buildRecommendations(dti decimal.Decimal, grade domain.CreditGrade) []domain.Recommendation {
	recs := []domain.Recommendation{}

	switch {
	case dti.GreaterThan(decimal.NewFromInt(70)):
		recs = append(recs, domain.Recommendation{
			Urgency: domain.UrgencyImmediate,
			Title:   "긴급 채무조정 상담 필요",
			Detail:  "소득 대비 상환 부담이 한계를 넘었습니다. 신용회복위원회 또는 법원 채무조정 제도를 즉시 검토하세요.",
		})
	case dti.GreaterThan(decimal.NewFromInt(50)):
		recs = append(recs, domain.Recommendation{
			Urgency: domain.UrgencyShortTerm,
			Title:   "상환 구조 재조정 권장",
			Detail:  "상환 부담이 높은 수준입니다. 고금리 채무부터 통합·차환하여 월 상환액을 낮추는 방안을 검토하세요.",
		})
	case dti.LessThan(decimal.NewFromInt(30)):
		recs = append(recs, domain.Recommendation{
			Urgency: domain.UrgencyLongTerm,
			Title:   "안정적인 상환 흐름 유지",
			Detail:  "상환 부담이 안정적입니다. 여유 자금으로 원금을 추가 상환하면 총 이자를 줄일 수 있습니다.",
		})
	}

	if grade.WorseThan(domain.GradeB) {
		recs = append(recs, domain.Recommendation{
			Urgency: domain.UrgencyLongTerm,
			Title:   "신용등급 개선 관리",
			Detail:  "연체 방지와 카드 사용액 관리로 신용등급을 단계적으로 회복하세요. 등급이 오르면 차환 금리도 낮아집니다.",
		})
	}

	return recs
}

// Quick-list thresholds. These intentionally differ slightly from the
// detailed matcher's rule set; see the threshold-drift note in DESIGN.md.
var (
	quickDebtFloorSmall  = decimal.NewFromInt(10_000_000)
	quickDebtFloorMid    = decimal.NewFromInt(50_000_000)
	quickDebtFloorLarge  = decimal.NewFromInt(100_000_000)
	quickDebtCeilAdjust  = decimal.NewFromInt(500_000_000)
	quickDebtCeilFresh   = decimal.NewFromInt(800_000_000)
	quickDebtCeilWorkout = decimal.NewFromInt(1_000_000_000)
	quickIncomeCeilFresh = decimal.NewFromInt(3_000_000)
	quickIncomeFloorBank = decimal.NewFromInt(1_000_000)
	quickDTIFloorWorkout = decimal.NewFromInt(30)
	quickDTICeilBankrupt = decimal.NewFromInt(80)
)

// EligiblePrograms runs the five quick predicates and returns the matching
// program names, 0 to 5 entries, in fixed program order.
func EligiblePrograms(totalDebt, monthlyIncome, dti decimal.Decimal) []string {
	hasIncome := monthlyIncome.GreaterThan(decimal.Zero)
	programs := []string{}

	if totalDebt.GreaterThanOrEqual(quickDebtFloorMid) &&
		totalDebt.LessThanOrEqual(quickDebtCeilWorkout) &&
		hasIncome &&
		dti.GreaterThanOrEqual(quickDTIFloorWorkout) {
		programs = append(programs, ProgramPreWorkout)
	}

	if totalDebt.GreaterThanOrEqual(quickDebtFloorMid) &&
		totalDebt.LessThanOrEqual(quickDebtCeilFresh) &&
		hasIncome &&
		monthlyIncome.LessThanOrEqual(quickIncomeCeilFresh) {
		programs = append(programs, ProgramFreshStartFund)
	}

	if totalDebt.GreaterThanOrEqual(quickDebtFloorLarge) && hasIncome {
		programs = append(programs, ProgramIndividualRecovery)
	}

	if dti.GreaterThan(quickDTICeilBankrupt) ||
		(monthlyIncome.LessThan(quickIncomeFloorBank) && totalDebt.GreaterThan(quickDebtFloorSmall)) {
		programs = append(programs, ProgramPersonalBankruptcy)
	}

	if totalDebt.GreaterThanOrEqual(quickDebtFloorSmall) &&
		totalDebt.LessThanOrEqual(quickDebtCeilAdjust) &&
		dti.GreaterThanOrEqual(quickDTIFloorWorkout) {
		programs = append(programs, ProgramCreditAdjustment)
	}

	return programs
}
