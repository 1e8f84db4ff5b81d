package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies a synced bank account.
type AccountType string

const (
	AccountTypeChecking           AccountType = "CHECKING"
	AccountTypeSavings            AccountType = "SAVINGS"
	AccountTypeLoan               AccountType = "LOAN"
	AccountTypeCreditCard         AccountType = "CREDIT_CARD"
	AccountTypeInstallmentSavings AccountType = "INSTALLMENT_SAVINGS"
	AccountTypeDeposit            AccountType = "DEPOSIT"
)

// ValidAccountTypes lists every accepted account type, for input validation.
var ValidAccountTypes = []AccountType{
	AccountTypeChecking,
	AccountTypeSavings,
	AccountTypeLoan,
	AccountTypeCreditCard,
	AccountTypeInstallmentSavings,
	AccountTypeDeposit,
}

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	for _, v := range ValidAccountTypes {
		if t == v {
			return true
		}
	}
	return false
}

// BankAccountInfo is a caller-supplied snapshot of one synced account.
// A negative balance means the account carries debt (loan principal or
// card balance); a positive balance is an asset.
type BankAccountInfo struct {
	BankName       string           `yaml:"bank_name" json:"bankName"`
	AccountType    AccountType      `yaml:"account_type" json:"accountType"`
	Balance        decimal.Decimal  `yaml:"balance" json:"balance"`
	InterestRate   *decimal.Decimal `yaml:"interest_rate,omitempty" json:"interestRate,omitempty"`   // annual %
	MonthlyPayment *decimal.Decimal `yaml:"monthly_payment,omitempty" json:"monthlyPayment,omitempty"`
	Currency       string           `yaml:"currency,omitempty" json:"currency,omitempty"`
}

// IsDebt reports whether the account contributes to total debt.
func (a BankAccountInfo) IsDebt() bool {
	return a.Balance.IsNegative()
}

// DebtAmount returns the absolute debt carried by the account, zero for
// asset accounts.
func (a BankAccountInfo) DebtAmount() decimal.Decimal {
	if !a.IsDebt() {
		return decimal.Zero
	}
	return a.Balance.Abs()
}

// PaymentOrZero returns the monthly payment, treating a missing value as zero.
func (a BankAccountInfo) PaymentOrZero() decimal.Decimal {
	if a.MonthlyPayment == nil {
		return decimal.Zero
	}
	return *a.MonthlyPayment
}

// OtherDebt is a manually declared debt that is not backed by a synced
// account (private loans, delinquent bills, etc.).
type OtherDebt struct {
	CreditorName   string          `yaml:"creditor_name" json:"creditorName"`
	Amount         decimal.Decimal `yaml:"amount" json:"amount"`
	MonthlyPayment decimal.Decimal `yaml:"monthly_payment" json:"monthlyPayment"`
	InterestRate   decimal.Decimal `yaml:"interest_rate" json:"interestRate"`
}
