package flow

import (
	"time"

	"github.com/cleared-dev/ynabflow/internal/accounts"
	"github.com/cleared-dev/ynabflow/internal/model"
)

// InWindow returns the records dated on or after start.
func InWindow(records []model.TransactionRecord, start time.Time) []model.TransactionRecord {
	var out []model.TransactionRecord
	for _, rec := range records {
		if !rec.Date.Before(start) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterAccounts returns the records whose account the filter includes.
func FilterAccounts(records []model.TransactionRecord, filter accounts.Filter) []model.TransactionRecord {
	var out []model.TransactionRecord
	for _, rec := range records {
		if filter.Includes(rec.Account) {
			out = append(out, rec)
		}
	}
	return out
}

// DropNonEconomic removes records that carry no flow: a zero signed amount or
// a missing amount. The records dropped for a missing amount are returned
// separately.
func DropNonEconomic(records []model.TransactionRecord) (kept, missing []model.TransactionRecord) {
	for _, rec := range records {
		amount, ok := rec.SignedAmount()
		switch {
		case !ok:
			missing = append(missing, rec)
		case amount.IsZero():
		default:
			kept = append(kept, rec)
		}
	}
	return kept, missing
}
