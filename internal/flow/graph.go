package flow

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ynabflow/internal/model"
	"github.com/cleared-dev/ynabflow/internal/money"
)

// Assemble joins inflow and outflow edges into a graph. Nodes are numbered in
// order of first appearance, scanning each edge's source then target. A name
// keeps the role it first appeared with; the income hub is always
// RoleIncomeHub.
func Assemble(inflows, outflows []model.FlowEdge) model.FlowGraph {
	edges := make([]model.FlowEdge, 0, len(inflows)+len(outflows))
	edges = append(edges, inflows...)
	edges = append(edges, outflows...)

	g := model.FlowGraph{Edges: edges}
	index := make(map[string]int)

	node := func(name string, role model.NodeRole) int {
		if i, ok := index[name]; ok {
			return i
		}
		if name == model.IncomeNode {
			role = model.RoleIncomeHub
		}
		i := len(g.Nodes)
		index[name] = i
		g.Nodes = append(g.Nodes, model.Node{Name: name, Index: i, Role: role, Amount: decimal.Zero})
		return i
	}

	for _, e := range edges {
		var src, dst int
		if e.Role == model.RoleInflowSource {
			src = node(e.Source, model.RoleInflowSource)
			dst = node(e.Target, model.RoleIncomeHub)
			tally(&g.Nodes[src], model.RoleInflowSource, e.Count, e.Amount)
			// The hub counts distinct sources, not transactions.
			tally(&g.Nodes[dst], model.RoleIncomeHub, 1, e.Amount)
		} else {
			src = node(e.Source, model.RoleIncomeHub)
			dst = node(e.Target, model.RoleOutflowTarget)
			tally(&g.Nodes[dst], model.RoleOutflowTarget, e.Count, e.Amount)
		}
		g.Links = append(g.Links, model.Link{Source: src, Target: dst, Amount: e.Amount})
	}

	for i := range g.Nodes {
		g.Nodes[i].Label = label(g.Nodes[i])
	}
	return g
}

// tally adds to n only when n carries role, so a name first seen as an inflow
// source is labelled with inflow figures only.
func tally(n *model.Node, role model.NodeRole, count int, amount decimal.Decimal) {
	if n.Role != role {
		return
	}
	n.Count += count
	n.Amount = n.Amount.Add(amount)
}

// Detail returns the parenthesized part of a node label.
func Detail(n model.Node) string {
	switch n.Role {
	case model.RoleIncomeHub:
		return fmt.Sprintf("(%d sources)", n.Count)
	case model.RoleInflowSource, model.RoleOutflowTarget:
		return fmt.Sprintf("(%d tx, %s)", n.Count, money.Dollars(n.Amount))
	}
	return ""
}

func label(n model.Node) string {
	if d := Detail(n); d != "" {
		return n.Name + " " + d
	}
	return n.Name
}

// Validate checks that every link resolves into the node list and matches its
// edge's names.
func Validate(g model.FlowGraph) error {
	if len(g.Links) != len(g.Edges) {
		return fmt.Errorf("%d links for %d edges", len(g.Links), len(g.Edges))
	}
	for i, l := range g.Links {
		if l.Source < 0 || l.Source >= len(g.Nodes) || l.Target < 0 || l.Target >= len(g.Nodes) {
			return fmt.Errorf("link %d: index out of range (%d -> %d, %d nodes)", i, l.Source, l.Target, len(g.Nodes))
		}
		e := g.Edges[i]
		if g.Nodes[l.Source].Name != e.Source || g.Nodes[l.Target].Name != e.Target {
			return fmt.Errorf("link %d: resolves to %q -> %q, edge is %q -> %q",
				i, g.Nodes[l.Source].Name, g.Nodes[l.Target].Name, e.Source, e.Target)
		}
	}
	return nil
}
