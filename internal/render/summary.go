package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ynabflow/internal/money"
)

var rule = strings.Repeat("=", 50)

func count(n int) string {
	return money.Group(decimal.NewFromInt(int64(n)), 0)
}

// Summary writes the operator-facing statistics block.
func Summary(w io.Writer, r Report) error {
	s := r.Stats
	lines := []string{
		rule,
		strings.ToUpper(r.Title) + " SUMMARY",
		rule,
		fmt.Sprintf("Start Date: %s", s.StartDate.Format(dataThroughFormat)),
		fmt.Sprintf("Data Through: %s", dataThrough(s)),
		fmt.Sprintf("Filtered Transactions: %s", count(s.Transactions)),
		fmt.Sprintf("Excluded Transactions: %s", count(s.Excluded)),
		fmt.Sprintf("Unique Accounts: %d", s.UniqueAccounts),
		fmt.Sprintf("Unique Categories: %d", s.UniqueGroups),
		fmt.Sprintf("Total Inflow: $%s", money.Group(s.TotalInflow, 2)),
		fmt.Sprintf("Total Outflow: $%s", money.Group(s.TotalOutflow, 2)),
		fmt.Sprintf("Net Flow: %s", money.USD(s.Net)),
		rule,
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
