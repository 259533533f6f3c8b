package flow

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ynabflow/internal/model"
)

// Summarize computes run statistics. window holds every record on or after
// start; reported holds the records that survived all filters.
func Summarize(window, reported []model.TransactionRecord, groupBy model.GroupBy, start time.Time) model.RunStatistics {
	stats := model.RunStatistics{
		StartDate:          start,
		WindowTransactions: len(window),
		Transactions:       len(reported),
		Excluded:           len(window) - len(reported),
		TotalInflow:        decimal.Zero,
		TotalOutflow:       decimal.Zero,
	}

	accts := make(map[string]bool)
	groups := make(map[string]bool)
	for _, rec := range reported {
		accts[rec.Account] = true
		groups[groupBy.Key(rec)] = true
		if rec.Date.After(stats.LatestDate) {
			stats.LatestDate = rec.Date
		}

		amount, ok := rec.SignedAmount()
		if !ok {
			continue
		}
		if amount.IsPositive() {
			stats.TotalInflow = stats.TotalInflow.Add(amount)
		} else {
			stats.TotalOutflow = stats.TotalOutflow.Add(amount.Abs())
		}
	}

	stats.UniqueAccounts = len(accts)
	stats.UniqueGroups = len(groups)
	stats.Net = stats.TotalInflow.Sub(stats.TotalOutflow)
	return stats
}
