// Package analysis turns one caller-supplied debt record into a full
// financial diagnosis: totals, DTI/DSR, credit grade, risk tier, a
// categorized breakdown, recommendations and a quick eligible-program list.
// Everything here is a stateless, synchronous transform; nothing is
// fetched, persisted or retried.
package analysis

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dohyun-im/saegil/internal/domain"
)

// DTISentinel is the DTI/DSR value reported when monthly income is zero or
// negative. The engine never divides by a non-positive income and never
// returns NaN; callers treat the sentinel as "unmeasurable, worst case".
var DTISentinel = decimal.NewFromFloat(999.99)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Analyzer computes debt diagnoses. The zero value is not usable; construct
// with NewAnalyzer.
type Analyzer struct {
	clock func() time.Time
}

// NewAnalyzer returns an analyzer stamping results with the wall clock.
func NewAnalyzer() *Analyzer {
	return &Analyzer{clock: time.Now}
}

// NewAnalyzerWithClock returns an analyzer with a fixed clock, for tests.
func NewAnalyzerWithClock(clock func() time.Time) *Analyzer {
	return &Analyzer{clock: clock}
}

// Analyze runs the full diagnosis over one input record.
func (a *Analyzer) Analyze(input domain.DebtAnalysisInput) *domain.DebtAnalysisResult {
	totalDebt := TotalDebt(input)
	totalAssets := TotalAssets(input)
	monthlyPayment := MonthlyPaymentTotal(input)

	dti := CalculateDTI(input.MonthlyIncome, monthlyPayment)
	dsr := CalculateDSR(input.MonthlyIncome, monthlyPayment)
	grade := EstimateCreditGrade(input.CreditScore, dti)
	risk := AssessRiskLevel(dti, totalDebt, input.MonthlyIncome)

	manualDebts := len(input.OtherDebts)
	syncedDebts := 0
	for _, acct := range input.Accounts {
		if acct.IsDebt() {
			syncedDebts++
		}
	}

	return &domain.DebtAnalysisResult{
		TotalDebt:        totalDebt,
		TotalAssets:      totalAssets,
		MonthlyPayment:   monthlyPayment,
		DTI:              dti,
		DSR:              dsr,
		CreditGrade:      grade,
		RiskLevel:        risk,
		Breakdown:        buildBreakdown(input),
		Recommendations:  buildRecommendations(dti, grade),
		EligiblePrograms: EligiblePrograms(totalDebt, input.MonthlyIncome, dti),
		AnalyzedAt:       a.clock(),
		DataSources: domain.DataSources{
			SyncedAccounts: syncedDebts,
			ManualDebts:    manualDebts,
		},
	}
}

// TotalDebt sums the absolute balance of every negative-balance account
// plus every manually declared debt. Together with TotalAssets this
// partitions the account list: each account contributes to exactly one sum.
func TotalDebt(input domain.DebtAnalysisInput) decimal.Decimal {
	total := decimal.Zero
	for _, acct := range input.Accounts {
		total = total.Add(acct.DebtAmount())
	}
	for _, debt := range input.OtherDebts {
		total = total.Add(debt.Amount)
	}
	return total
}

// TotalAssets sums the balances of every non-negative-balance account.
func TotalAssets(input domain.DebtAnalysisInput) decimal.Decimal {
	total := decimal.Zero
	for _, acct := range input.Accounts {
		if !acct.IsDebt() {
			total = total.Add(acct.Balance)
		}
	}
	return total
}

// MonthlyPaymentTotal sums every account's and manual debt's monthly
// payment, treating missing values as zero.
func MonthlyPaymentTotal(input domain.DebtAnalysisInput) decimal.Decimal {
	total := decimal.Zero
	for _, acct := range input.Accounts {
		total = total.Add(acct.PaymentOrZero())
	}
	for _, debt := range input.OtherDebts {
		total = total.Add(debt.MonthlyPayment)
	}
	return total
}

// CalculateDTI returns the debt-to-income ratio in percent, rounded to two
// decimal places. A non-positive income yields DTISentinel.
func CalculateDTI(monthlyIncome, monthlyPayment decimal.Decimal) decimal.Decimal {
	if monthlyIncome.LessThanOrEqual(decimal.Zero) {
		return DTISentinel
	}
	return monthlyPayment.Div(monthlyIncome).Mul(hundred).Round(2)
}

// CalculateDSR returns the debt service ratio. No non-debt obligations are
// modeled, so DSR is defined identically to DTI.
func CalculateDSR(monthlyIncome, monthlyPayment decimal.Decimal) decimal.Decimal {
	return CalculateDTI(monthlyIncome, monthlyPayment)
}

// Risk ladder thresholds. First match wins, top down.
var (
	riskCriticalDTI  = decimal.NewFromInt(70)
	riskHighDTI      = decimal.NewFromInt(50)
	riskMediumDTI    = decimal.NewFromInt(30)
	riskCriticalMult = decimal.NewFromInt(10)
	riskHighMult     = decimal.NewFromInt(5)
)

// AssessRiskLevel places the user on the LOW..CRITICAL ladder. The ladder
// is monotonic non-decreasing in dti when the other inputs are held fixed.
func AssessRiskLevel(dti, totalDebt, monthlyIncome decimal.Decimal) domain.RiskLevel {
	annualIncome := monthlyIncome.Mul(twelve)
	switch {
	case dti.GreaterThan(riskCriticalDTI) || totalDebt.GreaterThan(annualIncome.Mul(riskCriticalMult)):
		return domain.RiskCritical
	case dti.GreaterThan(riskHighDTI) || totalDebt.GreaterThan(annualIncome.Mul(riskHighMult)):
		return domain.RiskHigh
	case dti.GreaterThan(riskMediumDTI):
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// buildBreakdown groups every debt by kind and by creditor. Loan accounts
// feed the loans bucket, card accounts the card bucket; every other debt
// account and all manual debts land in other. The by-creditor list keeps
// input order, which is also the tie-break order for the largest debt.
func buildBreakdown(input domain.DebtAnalysisInput) domain.DebtBreakdown {
	var bd domain.DebtBreakdown

	addTo := func(cat *domain.DebtCategory, amount, payment decimal.Decimal) {
		cat.Count++
		cat.Amount = cat.Amount.Add(amount)
		cat.MonthlyPayment = cat.MonthlyPayment.Add(payment)
	}

	for _, acct := range input.Accounts {
		if !acct.IsDebt() {
			continue
		}
		amount := acct.DebtAmount()
		payment := acct.PaymentOrZero()
		rate := decimal.Zero
		if acct.InterestRate != nil {
			rate = *acct.InterestRate
		}
		switch acct.AccountType {
		case domain.AccountTypeLoan:
			addTo(&bd.Loans, amount, payment)
		case domain.AccountTypeCreditCard:
			addTo(&bd.CreditCards, amount, payment)
		default:
			addTo(&bd.Other, amount, payment)
		}
		bd.ByCreditor = append(bd.ByCreditor, domain.CreditorDebt{
			Creditor:       acct.BankName,
			Amount:         amount,
			MonthlyPayment: payment,
			InterestRate:   rate,
		})
	}

	for _, debt := range input.OtherDebts {
		addTo(&bd.Other, debt.Amount, debt.MonthlyPayment)
		bd.ByCreditor = append(bd.ByCreditor, domain.CreditorDebt{
			Creditor:       debt.CreditorName,
			Amount:         debt.Amount,
			MonthlyPayment: debt.MonthlyPayment,
			InterestRate:   debt.InterestRate,
		})
	}

	for i := range bd.ByCreditor {
		if bd.LargestDebt == nil || bd.ByCreditor[i].Amount.GreaterThan(bd.LargestDebt.Amount) {
			bd.LargestDebt = &bd.ByCreditor[i]
		}
	}

	return bd
}
