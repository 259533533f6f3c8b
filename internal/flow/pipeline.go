// Package flow turns register records into a Sankey flow graph:
// payees -> Income -> spending groups.
package flow

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/ynabflow/internal/accounts"
	"github.com/cleared-dev/ynabflow/internal/model"
)

// Options configures a Pipeline. It is fixed for the pipeline's lifetime.
type Options struct {
	Filter  accounts.Filter
	Start   time.Time // inclusive
	GroupBy model.GroupBy
}

// Result is the output of one pipeline run.
type Result struct {
	Graph model.FlowGraph
	Stats model.RunStatistics
	// Reported holds the records behind the graph, in input order.
	Reported []model.TransactionRecord
}

// Pipeline filters, aggregates and assembles register records.
type Pipeline struct {
	opts Options
	log  zerolog.Logger
}

// NewPipeline creates a Pipeline. An empty GroupBy selects category groups.
func NewPipeline(opts Options, log zerolog.Logger) *Pipeline {
	if opts.GroupBy == "" {
		opts.GroupBy = model.GroupByCategoryGroup
	}
	return &Pipeline{opts: opts, log: log}
}

// Options returns the pipeline configuration.
func (p *Pipeline) Options() Options {
	return p.opts
}

// Run processes records. It never modifies records and returns the same
// result for the same input.
func (p *Pipeline) Run(records []model.TransactionRecord) (Result, error) {
	window := InWindow(records, p.opts.Start)
	included := FilterAccounts(window, p.opts.Filter)
	nonTransfers := DropTransfers(included, p.opts.Filter)
	reported, missing := DropNonEconomic(nonTransfers)

	for _, rec := range missing {
		p.log.Debug().
			Str("account", rec.Account).
			Str("payee", rec.Payee).
			Time("date", rec.Date).
			Msg("skipping transaction with unparseable amount")
	}

	inflows, outflows := Aggregate(reported, p.opts.GroupBy)
	graph := Assemble(inflows, outflows)
	if err := Validate(graph); err != nil {
		return Result{}, fmt.Errorf("assembling flow graph: %w", err)
	}

	p.log.Debug().
		Int("records", len(records)).
		Int("in_window", len(window)).
		Int("included_accounts", len(included)).
		Int("transfers", len(included)-len(nonTransfers)).
		Int("missing_amount", len(missing)).
		Int("reported", len(reported)).
		Int("inflow_edges", len(inflows)).
		Int("outflow_edges", len(outflows)).
		Msg("pipeline stages")

	return Result{
		Graph:    graph,
		Stats:    Summarize(window, reported, p.opts.GroupBy, p.opts.Start),
		Reported: reported,
	}, nil
}
