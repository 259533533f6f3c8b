package flow

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ynabflow/internal/model"
)

type edgeKey struct {
	source string
	target string
}

type edgeTotals struct {
	sum   decimal.Decimal
	count int
}

// Aggregate splits records by the sign of their signed amount and merges them
// into edges. Inflows become payee -> Income, outflows Income -> groupBy key.
// Each (source, target) pair appears once per direction. Amounts are
// magnitudes. Records with a zero or missing amount are ignored.
func Aggregate(records []model.TransactionRecord, groupBy model.GroupBy) (inflows, outflows []model.FlowEdge) {
	in := make(map[edgeKey]*edgeTotals)
	out := make(map[edgeKey]*edgeTotals)

	for _, rec := range records {
		amount, ok := rec.SignedAmount()
		if !ok || amount.IsZero() {
			continue
		}
		if amount.IsPositive() {
			add(in, edgeKey{source: rec.Payee, target: model.IncomeNode}, amount)
		} else {
			add(out, edgeKey{source: model.IncomeNode, target: groupBy.Key(rec)}, amount)
		}
	}

	return collect(in, model.RoleInflowSource), collect(out, model.RoleOutflowTarget)
}

func add(groups map[edgeKey]*edgeTotals, key edgeKey, amount decimal.Decimal) {
	t, ok := groups[key]
	if !ok {
		t = &edgeTotals{sum: decimal.Zero}
		groups[key] = t
	}
	t.sum = t.sum.Add(amount)
	t.count++
}

// collect turns grouped totals into edges ordered by source, then target.
func collect(groups map[edgeKey]*edgeTotals, role model.NodeRole) []model.FlowEdge {
	keys := make([]edgeKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].source != keys[j].source {
			return keys[i].source < keys[j].source
		}
		return keys[i].target < keys[j].target
	})

	var edges []model.FlowEdge
	for _, k := range keys {
		t := groups[k]
		edges = append(edges, model.FlowEdge{
			Source: k.source,
			Target: k.target,
			Amount: t.sum.Abs(),
			Count:  t.count,
			Role:   role,
		})
	}
	return edges
}
