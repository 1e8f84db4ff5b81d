package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dohyun-im/saegil/internal/domain"
)

func writeRequestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_FullRequest(t *testing.T) {
	path := writeRequestFile(t, `
monthly_income: 3000000
credit_score: 720
has_regular_income: true
accounts:
  - bank_name: 국민은행
    account_type: LOAN
    balance: -87500000
    interest_rate: 8.5
    monthly_payment: 2325000
  - bank_name: 신한은행
    account_type: CHECKING
    balance: 1200000
other_debts:
  - creditor_name: 카드론
    amount: 5000000
    monthly_payment: 300000
    interest_rate: 15.0
simulation:
  current_debt: 92500000
  current_monthly_payment: 2625000
  current_interest_rate: 9.0
  adjusted_interest_rate: 5.0
  adjusted_period_months: 72
`)

	parser := NewInputParser()
	req, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, req.MonthlyIncome.Equal(decimal.NewFromInt(3_000_000)))
	require.NotNil(t, req.CreditScore)
	assert.Equal(t, 720, *req.CreditScore)
	require.Len(t, req.Accounts, 2)
	assert.Equal(t, domain.AccountTypeLoan, req.Accounts[0].AccountType)
	assert.True(t, req.Accounts[0].Balance.Equal(decimal.NewFromInt(-87_500_000)))
	require.NotNil(t, req.Accounts[0].MonthlyPayment)
	require.Len(t, req.OtherDebts, 1)
	require.NotNil(t, req.Simulation)
	require.NotNil(t, req.Simulation.AdjustedPeriodMonths)
	assert.Equal(t, 72, *req.Simulation.AdjustedPeriodMonths)

	input := req.AnalysisInput()
	assert.True(t, input.MonthlyIncome.Equal(req.MonthlyIncome))
	assert.Len(t, input.Accounts, 2)
	assert.Len(t, input.OtherDebts, 1)
	assert.True(t, req.RegularIncome())
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_MalformedYAML(t *testing.T) {
	path := writeRequestFile(t, "monthly_income: [not: closed")

	parser := NewInputParser()
	_, err := parser.LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateRequest(t *testing.T) {
	loan := domain.BankAccountInfo{
		BankName:    "은행",
		AccountType: domain.AccountTypeLoan,
		Balance:     decimal.NewFromInt(-10_000_000),
	}

	score := func(v int) *int { return &v }
	rate := func(v float64) *decimal.Decimal {
		d := decimal.NewFromFloat(v)
		return &d
	}
	months := func(v int) *int { return &v }

	tests := []struct {
		name    string
		req     Request
		wantErr string
	}{
		{
			name: "valid minimal",
			req:  Request{MonthlyIncome: decimal.NewFromInt(2_000_000), Accounts: []domain.BankAccountInfo{loan}},
		},
		{
			name: "zero income is legal",
			req:  Request{Accounts: []domain.BankAccountInfo{loan}},
		},
		{
			name:    "nothing to analyze",
			req:     Request{MonthlyIncome: decimal.NewFromInt(2_000_000)},
			wantErr: "at least one account or manual debt",
		},
		{
			name: "credit score below floor",
			req: Request{
				CreditScore: score(299),
				Accounts:    []domain.BankAccountInfo{loan},
			},
			wantErr: "credit score must be between 300 and 1000",
		},
		{
			name: "credit score above ceiling",
			req: Request{
				CreditScore: score(1001),
				Accounts:    []domain.BankAccountInfo{loan},
			},
			wantErr: "credit score must be between 300 and 1000",
		},
		{
			name: "unknown account type",
			req: Request{
				Accounts: []domain.BankAccountInfo{{
					BankName:    "은행",
					AccountType: "MORTGAGE",
					Balance:     decimal.NewFromInt(-10_000_000),
				}},
			},
			wantErr: `unknown account type "MORTGAGE"`,
		},
		{
			name: "missing bank name",
			req: Request{
				Accounts: []domain.BankAccountInfo{{AccountType: domain.AccountTypeLoan}},
			},
			wantErr: "bank name is required",
		},
		{
			name: "negative account payment",
			req: Request{
				Accounts: []domain.BankAccountInfo{{
					BankName:       "은행",
					AccountType:    domain.AccountTypeLoan,
					MonthlyPayment: rate(-1),
				}},
			},
			wantErr: "monthly payment cannot be negative",
		},
		{
			name: "other debt without creditor",
			req: Request{
				OtherDebts: []domain.OtherDebt{{Amount: decimal.NewFromInt(1_000_000)}},
			},
			wantErr: "creditor name is required",
		},
		{
			name: "negative other debt amount",
			req: Request{
				OtherDebts: []domain.OtherDebt{{
					CreditorName: "사채",
					Amount:       decimal.NewFromInt(-1),
				}},
			},
			wantErr: "amount cannot be negative",
		},
		{
			name: "simulation needs positive debt",
			req: Request{
				Accounts:   []domain.BankAccountInfo{loan},
				Simulation: &domain.SimulationInput{},
			},
			wantErr: "current debt must be positive",
		},
		{
			name: "simulation reduction rate over 100",
			req: Request{
				Accounts: []domain.BankAccountInfo{loan},
				Simulation: &domain.SimulationInput{
					CurrentDebt:       decimal.NewFromInt(10_000_000),
					DebtReductionRate: rate(100.5),
				},
			},
			wantErr: "debt reduction rate must be between 0 and 100",
		},
		{
			name: "simulation period must be positive",
			req: Request{
				Accounts: []domain.BankAccountInfo{loan},
				Simulation: &domain.SimulationInput{
					CurrentDebt:          decimal.NewFromInt(10_000_000),
					AdjustedPeriodMonths: months(0),
				},
			},
			wantErr: "adjusted period must be positive",
		},
	}

	parser := NewInputParser()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := parser.ValidateRequest(&tc.req)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestRegularIncome_Default(t *testing.T) {
	earning := Request{MonthlyIncome: decimal.NewFromInt(2_000_000)}
	assert.True(t, earning.RegularIncome())

	broke := Request{}
	assert.False(t, broke.RegularIncome())

	declared := false
	overridden := Request{
		MonthlyIncome:    decimal.NewFromInt(2_000_000),
		HasRegularIncome: &declared,
	}
	assert.False(t, overridden.RegularIncome())
}
