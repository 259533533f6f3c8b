package render

import (
	"encoding/json"
	"io"

	"github.com/shopspring/decimal"
)

type jsonNode struct {
	Index  int             `json:"index"`
	Name   string          `json:"name"`
	Role   string          `json:"role"`
	Label  string          `json:"label"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type jsonLink struct {
	Source int             `json:"source"`
	Target int             `json:"target"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

type jsonStats struct {
	StartDate          string          `json:"start_date"`
	DataThrough        string          `json:"data_through"`
	WindowTransactions int             `json:"window_transactions"`
	Transactions       int             `json:"transactions"`
	Excluded           int             `json:"excluded"`
	UniqueAccounts     int             `json:"unique_accounts"`
	UniqueGroups       int             `json:"unique_groups"`
	TotalInflow        decimal.Decimal `json:"total_inflow"`
	TotalOutflow       decimal.Decimal `json:"total_outflow"`
	Net                decimal.Decimal `json:"net"`
}

type jsonReport struct {
	Title   string     `json:"title"`
	GroupBy string     `json:"group_by"`
	Nodes   []jsonNode `json:"nodes"`
	Links   []jsonLink `json:"links"`
	Stats   jsonStats  `json:"stats"`
}

// JSON writes the graph as node and link arrays plus statistics. Amounts are
// decimal strings.
func JSON(w io.Writer, r Report) error {
	out := jsonReport{
		Title:   ChartTitle(r),
		GroupBy: string(r.GroupBy),
		Nodes:   make([]jsonNode, 0, len(r.Graph.Nodes)),
		Links:   make([]jsonLink, 0, len(r.Graph.Links)),
		Stats: jsonStats{
			StartDate:          r.Stats.StartDate.Format(dataThroughFormat),
			DataThrough:        dataThrough(r.Stats),
			WindowTransactions: r.Stats.WindowTransactions,
			Transactions:       r.Stats.Transactions,
			Excluded:           r.Stats.Excluded,
			UniqueAccounts:     r.Stats.UniqueAccounts,
			UniqueGroups:       r.Stats.UniqueGroups,
			TotalInflow:        r.Stats.TotalInflow,
			TotalOutflow:       r.Stats.TotalOutflow,
			Net:                r.Stats.Net,
		},
	}
	for _, n := range r.Graph.Nodes {
		out.Nodes = append(out.Nodes, jsonNode{
			Index: n.Index, Name: n.Name, Role: n.Role.String(), Label: n.Label,
			Count: n.Count, Amount: n.Amount,
		})
	}
	for i, l := range r.Graph.Links {
		out.Links = append(out.Links, jsonLink{
			Source: l.Source, Target: l.Target, Amount: l.Amount,
			Count: r.Graph.Edges[i].Count,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
