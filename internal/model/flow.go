package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeNode is the hub every inflow lands in and every outflow leaves from.
const IncomeNode = "Income"

// NodeRole tells how a node entered the graph.
type NodeRole int

const (
	RoleIncomeHub NodeRole = iota
	RoleInflowSource
	RoleOutflowTarget
)

func (r NodeRole) String() string {
	switch r {
	case RoleIncomeHub:
		return "income_hub"
	case RoleInflowSource:
		return "inflow_source"
	case RoleOutflowTarget:
		return "outflow_target"
	}
	return "unknown"
}

// FlowEdge is an aggregated source -> target flow. Amount is always a
// magnitude; direction comes from Role.
type FlowEdge struct {
	Source string
	Target string
	Amount decimal.Decimal
	Count  int
	// Role of the endpoint that is not the income hub.
	Role NodeRole
}

// Node is a graph vertex with its position and label data.
type Node struct {
	Name   string
	Index  int
	Role   NodeRole
	Count  int             // transactions (edges for the hub)
	Amount decimal.Decimal // zero for the hub
	Label  string
}

// Link is an edge resolved to node indices for a renderer.
type Link struct {
	Source int
	Target int
	Amount decimal.Decimal
}

// FlowGraph is the rendering input. Every edge endpoint is in Nodes.
type FlowGraph struct {
	Nodes []Node
	Edges []FlowEdge
	Links []Link
}

// Empty reports whether the graph carries no flows.
func (g FlowGraph) Empty() bool {
	return len(g.Edges) == 0
}

// RunStatistics summarizes a pipeline run for display.
type RunStatistics struct {
	StartDate          time.Time
	LatestDate         time.Time // zero when no transactions survived
	WindowTransactions int       // on or after StartDate, before any other filter
	Transactions       int       // survived every filter
	Excluded           int
	UniqueAccounts     int
	UniqueGroups       int
	TotalInflow        decimal.Decimal
	TotalOutflow       decimal.Decimal
	Net                decimal.Decimal
}
