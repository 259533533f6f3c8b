package accounts

import (
	"sort"

	"github.com/cleared-dev/ynabflow/internal/model"
)

// Discover returns the distinct non-empty account names in records, sorted.
func Discover(records []model.TransactionRecord) []string {
	seen := make(map[string]bool)
	var names []string
	for _, rec := range records {
		if rec.Account == "" || seen[rec.Account] {
			continue
		}
		seen[rec.Account] = true
		names = append(names, rec.Account)
	}
	sort.Strings(names)
	return names
}

// IncludeAll returns a Filter that reports every named account.
func IncludeAll(names []string) Filter {
	entries := make(map[string]bool, len(names))
	for _, name := range names {
		entries[name] = true
	}
	return NewFilter(entries)
}
