package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtAnalysisInput is the single record the analyzer consumes. It is
// assembled by the surrounding service from synced accounts and manual
// entries; the engine never fetches anything itself.
type DebtAnalysisInput struct {
	MonthlyIncome decimal.Decimal   `yaml:"monthly_income" json:"monthlyIncome"`
	Accounts      []BankAccountInfo `yaml:"accounts" json:"accounts"`
	OtherDebts    []OtherDebt       `yaml:"other_debts,omitempty" json:"otherDebts,omitempty"`
	CreditScore   *int              `yaml:"credit_score,omitempty" json:"creditScore,omitempty"` // 300-1000
}

// CreditGrade is an ordinal creditworthiness tier, AAA best through D worst.
type CreditGrade int

const (
	GradeAAA CreditGrade = iota
	GradeAA
	GradeA
	GradeBBB
	GradeBB
	GradeB
	GradeCCC
	GradeCC
	GradeC
	GradeD
)

var creditGradeNames = [...]string{"AAA", "AA", "A", "BBB", "BB", "B", "CCC", "CC", "C", "D"}

func (g CreditGrade) String() string {
	if g < GradeAAA || g > GradeD {
		return "UNKNOWN"
	}
	return creditGradeNames[g]
}

// WorseThan reports whether g is a lower tier than other.
func (g CreditGrade) WorseThan(other CreditGrade) bool {
	return g > other
}

// RiskLevel is an ordinal tier summarizing overall debt danger.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
	RiskCritical
)

var riskLevelNames = [...]string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}

func (r RiskLevel) String() string {
	if r < RiskLow || r > RiskCritical {
		return "UNKNOWN"
	}
	return riskLevelNames[r]
}

// DebtCategory aggregates one slice of the breakdown.
type DebtCategory struct {
	Count          int             `json:"count"`
	Amount         decimal.Decimal `json:"amount"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
}

// CreditorDebt is one creditor-level entry of the breakdown.
type CreditorDebt struct {
	Creditor       string          `json:"creditor"`
	Amount         decimal.Decimal `json:"amount"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	InterestRate   decimal.Decimal `json:"interestRate"`
}

// DebtBreakdown groups every debt by kind and by creditor. LargestDebt
// points at the by-creditor entry with the highest amount; ties resolve to
// the first-encountered entry.
type DebtBreakdown struct {
	Loans       DebtCategory   `json:"loans"`
	CreditCards DebtCategory   `json:"creditCards"`
	Other       DebtCategory   `json:"other"`
	ByCreditor  []CreditorDebt `json:"byCreditor"`
	LargestDebt *CreditorDebt  `json:"largestDebt,omitempty"`
}

// Urgency buckets a recommendation by how soon the user should act.
type Urgency string

const (
	UrgencyImmediate Urgency = "IMMEDIATE"
	UrgencyShortTerm Urgency = "SHORT_TERM"
	UrgencyLongTerm  Urgency = "LONG_TERM"
)

// Recommendation is one free-text advisory emitted by the analyzer.
type Recommendation struct {
	Urgency Urgency `json:"urgency"`
	Title   string  `json:"title"`
	Detail  string  `json:"detail"`
}

// DataSources counts where the analyzed debts came from.
type DataSources struct {
	SyncedAccounts int `json:"syncedAccounts"`
	ManualDebts    int `json:"manualDebts"`
}

// DebtAnalysisResult is the analyzer's full diagnosis. It is a pure value
// with no identity; every call produces a fresh one.
type DebtAnalysisResult struct {
	TotalDebt        decimal.Decimal  `json:"totalDebt"`
	TotalAssets      decimal.Decimal  `json:"totalAssets"`
	MonthlyPayment   decimal.Decimal  `json:"monthlyPayment"`
	DTI              decimal.Decimal  `json:"dti"`
	DSR              decimal.Decimal  `json:"dsr"`
	CreditGrade      CreditGrade      `json:"creditGrade"`
	RiskLevel        RiskLevel        `json:"riskLevel"`
	Breakdown        DebtBreakdown    `json:"breakdown"`
	Recommendations  []Recommendation `json:"recommendations"`
	EligiblePrograms []string         `json:"eligiblePrograms"`
	AnalyzedAt       time.Time        `json:"analyzedAt"`
	DataSources      DataSources      `json:"dataSources"`
}
