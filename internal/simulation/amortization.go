package simulation

import (
	"iter"

	"github.com/shopspring/decimal"

	"github.com/dohyun-im/saegil/internal/domain"
)

// Schedule returns a lazy month-by-month amortization sequence for a level
// payment plan. The sequence is finite: it stops at maxMonths, when the
// balance reaches zero, or as soon as the payment no longer covers the
// accrued interest. The yielded balance is never negative; the final
// month's payment shrinks to exactly clear the balance.
func Schedule(principal, payment, annualRate decimal.Decimal, maxMonths int) iter.Seq[domain.AmortizationEntry] {
	return func(yield func(domain.AmortizationEntry) bool) {
		monthlyRate := annualRate.Div(hundred).Div(twelve)
		balance := principal

		for month := 1; month <= maxMonths; month++ {
			if !balance.GreaterThan(decimal.Zero) {
				return
			}

			interest := balance.Mul(monthlyRate)
			principalPart := payment.Sub(interest)
			if principalPart.LessThanOrEqual(decimal.Zero) {
				return
			}

			actualPayment := payment
			if principalPart.GreaterThanOrEqual(balance) {
				principalPart = balance
				actualPayment = balance.Add(interest)
			}
			balance = balance.Sub(principalPart)

			entry := domain.AmortizationEntry{
				Month:     month,
				Payment:   actualPayment,
				Principal: principalPart,
				Interest:  interest,
				Balance:   balance,
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// ScheduleSlice materializes Schedule for callers that want the whole
// table at once.
func ScheduleSlice(principal, payment, annualRate decimal.Decimal, maxMonths int) []domain.AmortizationEntry {
	var entries []domain.AmortizationEntry
	for entry := range Schedule(principal, payment, annualRate, maxMonths) {
		entries = append(entries, entry)
	}
	return entries
}
