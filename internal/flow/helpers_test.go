package flow

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ynabflow/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func amt(s string) model.Amount {
	return model.NewAmount(dec(s))
}

// txn builds a record; inflow and outflow are decimal strings.
func txn(account, payee, group string, day time.Time, inflow, outflow string) model.TransactionRecord {
	return model.TransactionRecord{
		Account:       account,
		Payee:         payee,
		Date:          day,
		CategoryGroup: group,
		Category:      group + " misc",
		Inflow:        amt(inflow),
		Outflow:       amt(outflow),
	}
}
