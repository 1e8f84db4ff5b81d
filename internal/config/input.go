// Package config loads and validates the YAML request files the CLI feeds
// into the engine. The engine packages themselves never touch files; this
// is the only place input enters from the outside.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/dohyun-im/saegil/internal/domain"
)

// Request is one analysis request file: the analyzer input plus the
// optional facts the matcher and simulator need.
type Request struct {
	MonthlyIncome    decimal.Decimal          `yaml:"monthly_income"`
	CreditScore      *int                     `yaml:"credit_score,omitempty"`
	HasRegularIncome *bool                    `yaml:"has_regular_income,omitempty"`
	Accounts         []domain.BankAccountInfo `yaml:"accounts"`
	OtherDebts       []domain.OtherDebt       `yaml:"other_debts,omitempty"`
	Simulation       *domain.SimulationInput  `yaml:"simulation,omitempty"`
}

// AnalysisInput converts the request into the analyzer's input record.
func (r *Request) AnalysisInput() domain.DebtAnalysisInput {
	return domain.DebtAnalysisInput{
		MonthlyIncome: r.MonthlyIncome,
		Accounts:      r.Accounts,
		OtherDebts:    r.OtherDebts,
		CreditScore:   r.CreditScore,
	}
}

// RegularIncome reports the declared regular-income flag, defaulting to
// "has income" whenever monthly income is positive.
func (r *Request) RegularIncome() bool {
	if r.HasRegularIncome != nil {
		return *r.HasRegularIncome
	}
	return r.MonthlyIncome.GreaterThan(decimal.Zero)
}

// InputParser handles parsing of request files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a request from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Request, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &req, nil
}

// ValidateRequest validates a loaded request. A zero or negative income is
// legal (the analyzer reports the DTI sentinel for it); only structurally
// broken input is rejected here.
func (ip *InputParser) ValidateRequest(req *Request) error {
	if req.CreditScore != nil && (*req.CreditScore < 300 || *req.CreditScore > 1000) {
		return fmt.Errorf("credit score must be between 300 and 1000, got %d", *req.CreditScore)
	}

	if len(req.Accounts) == 0 && len(req.OtherDebts) == 0 {
		return fmt.Errorf("at least one account or manual debt is required")
	}

	for i, acct := range req.Accounts {
		if err := ip.validateAccount(&acct); err != nil {
			return fmt.Errorf("account %d (%s) validation failed: %w", i, acct.BankName, err)
		}
	}

	for i, debt := range req.OtherDebts {
		if err := ip.validateOtherDebt(&debt); err != nil {
			return fmt.Errorf("other debt %d (%s) validation failed: %w", i, debt.CreditorName, err)
		}
	}

	if req.Simulation != nil {
		if err := ip.validateSimulation(req.Simulation); err != nil {
			return fmt.Errorf("simulation validation failed: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateAccount(acct *domain.BankAccountInfo) error {
	if acct.BankName == "" {
		return fmt.Errorf("bank name is required")
	}
	if !acct.AccountType.IsValid() {
		return fmt.Errorf("unknown account type %q", acct.AccountType)
	}
	if acct.MonthlyPayment != nil && acct.MonthlyPayment.IsNegative() {
		return fmt.Errorf("monthly payment cannot be negative")
	}
	if acct.InterestRate != nil && acct.InterestRate.IsNegative() {
		return fmt.Errorf("interest rate cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateOtherDebt(debt *domain.OtherDebt) error {
	if debt.CreditorName == "" {
		return fmt.Errorf("creditor name is required")
	}
	if debt.Amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	if debt.MonthlyPayment.IsNegative() {
		return fmt.Errorf("monthly payment cannot be negative")
	}
	if debt.InterestRate.IsNegative() {
		return fmt.Errorf("interest rate cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateSimulation(sim *domain.SimulationInput) error {
	if sim.CurrentDebt.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("current debt must be positive")
	}
	if sim.CurrentMonthlyPayment.IsNegative() {
		return fmt.Errorf("current monthly payment cannot be negative")
	}
	if sim.CurrentInterestRate.IsNegative() {
		return fmt.Errorf("current interest rate cannot be negative")
	}
	if sim.AdjustedInterestRate != nil && sim.AdjustedInterestRate.IsNegative() {
		return fmt.Errorf("adjusted interest rate cannot be negative")
	}
	if sim.AdjustedPeriodMonths != nil && *sim.AdjustedPeriodMonths <= 0 {
		return fmt.Errorf("adjusted period must be positive")
	}
	if sim.DebtReductionRate != nil {
		rate := *sim.DebtReductionRate
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("debt reduction rate must be between 0 and 100")
		}
	}
	return nil
}
