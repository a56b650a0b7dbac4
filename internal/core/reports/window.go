// Package reports is the derivation layer: pure functions that turn a
// profile's AppState into the financial reports served by the API. Nothing
// here performs I/O or mutates its input; every builder is a total function
// and recomputing it over unchanged state yields identical output.
package reports

import (
	"strconv"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
)

// ParseYearMonth extracts the calendar year and month from a stored
// YYYY-MM-DD date string. The string is read directly so a plain calendar
// date never shifts across a timezone boundary the way an epoch round trip
// can. ok is false for anything that does not start with YYYY-MM.
func ParseYearMonth(date string) (year, month int, ok bool) {
	if len(date) < 7 || date[4] != '-' {
		return 0, 0, false
	}
	y, err := strconv.Atoi(date[0:4])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(date[5:7])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	return y, m, true
}

// InMonth reports whether a stored date falls in the given calendar month.
// Month is 1-12.
func InMonth(date string, month, year int) bool {
	y, m, ok := ParseYearMonth(date)
	return ok && y == year && m == month
}

// FilterMonth returns the transactions dated in the given calendar month.
func FilterMonth(txs []domain.Transaction, month, year int) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txs))
	for _, tx := range txs {
		if InMonth(tx.Date, month, year) {
			out = append(out, tx)
		}
	}
	return out
}
