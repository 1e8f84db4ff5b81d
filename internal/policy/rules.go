// Package policy re-evaluates a debt analysis against the five government
// relief programs, with each program's own eligibility predicate and
// adjusted-payment formula, and produces ranked restructuring plans.
// Program copy (Korean names, conditions, documents, pros/cons) lives in
// the catalog; this file holds only the numeric rule set.
package policy

import (
	"github.com/shopspring/decimal"
)

// Per-program constants. These are a compatibility contract with the
// production matcher and must not drift; the analyzer's quick list
// intentionally uses a slightly different set (see DESIGN.md).
var (
	// 프리워크아웃: payment haircut for borrowers current on income.
	preWorkoutDebtMin   = decimal.NewFromInt(50_000_000)
	preWorkoutDebtMax   = decimal.NewFromInt(1_000_000_000)
	preWorkoutHaircut   = decimal.NewFromFloat(0.65)
	preWorkoutRecDTIMin = decimal.NewFromInt(40)
	preWorkoutRecDTIMax = decimal.NewFromInt(60)

	// 새출발기금: repay 40% of principal over 96 months, 60% forgiven.
	freshStartDebtMin    = decimal.NewFromInt(50_000_000)
	freshStartDebtMax    = decimal.NewFromInt(800_000_000)
	freshStartIncomeMax  = decimal.NewFromInt(3_500_000)
	freshStartRepayRatio = decimal.NewFromFloat(0.4)
	freshStartReduction  = decimal.NewFromInt(60)
	freshStartRecIncome  = decimal.NewFromInt(2_500_000)
	freshStartRecDTI     = decimal.NewFromInt(50)

	// 개인회생: court-supervised, repay 30% over 60 months.
	recoveryDebtMin    = decimal.NewFromInt(100_000_000)
	recoveryDebtMax    = decimal.NewFromInt(1_500_000_000)
	recoveryRepayRatio = decimal.NewFromFloat(0.30)
	recoveryReduction  = decimal.NewFromInt(70)
	recoveryRecDebt    = decimal.NewFromInt(300_000_000)

	// 개인파산: full discharge, the 12-month period is procedural only.
	bankruptcyDTIMin    = decimal.NewFromInt(90)
	bankruptcyIncomeMax = decimal.NewFromInt(1_000_000)
	bankruptcyDebtMin   = decimal.NewFromInt(10_000_000)
	bankruptcyRecDebt   = decimal.NewFromInt(100_000_000)

	// 개인워크아웃 (신용회복위원회 채무조정): 25% payment haircut.
	creditAdjustDebtMin   = decimal.NewFromInt(10_000_000)
	creditAdjustDebtMax   = decimal.NewFromInt(500_000_000)
	creditAdjustDTIMin    = decimal.NewFromInt(35)
	creditAdjustHaircut   = decimal.NewFromFloat(0.75)
	creditAdjustRecDTIMax = decimal.NewFromInt(50)
)

// Fixed program terms.
const (
	preWorkoutPeriodMonths   = 72
	freshStartPeriodMonths   = 96
	recoveryPeriodMonths     = 60
	bankruptcyPeriodMonths   = 12
	creditAdjustPeriodMonths = 60

	preWorkoutPriority   = 90
	freshStartPriority   = 95
	recoveryPriority     = 80
	bankruptcyPriority   = 60
	creditAdjustPriority = 70
)

// Adjusted annual rates attached to the produced plans. Haircut programs
// keep a capped servicing rate; principal-reduction and discharge
// programs repay interest-free.
var (
	haircutAdjustedRate   = decimal.NewFromFloat(5.0)
	reductionAdjustedRate = decimal.Zero
)
