package flow

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ynabflow/internal/accounts"
	"github.com/cleared-dev/ynabflow/internal/model"
	"github.com/cleared-dev/ynabflow/internal/register"
)

func run(t *testing.T, opts Options, records []model.TransactionRecord) Result {
	t.Helper()
	res, err := NewPipeline(opts, zerolog.Nop()).Run(records)
	require.NoError(t, err)
	require.NoError(t, Validate(res.Graph))
	return res
}

func TestPipeline_IncomeAndSpending(t *testing.T) {
	records := []model.TransactionRecord{
		txn("Checking", "Employer", "", date(2025, 1, 5), "3000", "0"),
		txn("Checking", "Store", "Food", date(2025, 1, 10), "0", "45.00"),
	}
	res := run(t, Options{
		Filter: accounts.NewFilter(map[string]bool{"Checking": true}),
		Start:  date(2025, 1, 1),
	}, records)

	require.Len(t, res.Graph.Edges, 2)
	assert.Equal(t, "Employer", res.Graph.Edges[0].Source)
	assert.Equal(t, "Income", res.Graph.Edges[0].Target)
	assert.True(t, res.Graph.Edges[0].Amount.Equal(dec("3000")))
	assert.Equal(t, 1, res.Graph.Edges[0].Count)
	assert.Equal(t, "Income", res.Graph.Edges[1].Source)
	assert.Equal(t, "Food", res.Graph.Edges[1].Target)
	assert.True(t, res.Graph.Edges[1].Amount.Equal(dec("45")))
	assert.Equal(t, 1, res.Graph.Edges[1].Count)

	names := make([]string, 0, len(res.Graph.Nodes))
	for _, n := range res.Graph.Nodes {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"Employer", "Income", "Food"}, names)

	assert.True(t, res.Stats.TotalInflow.Equal(dec("3000")))
	assert.True(t, res.Stats.TotalOutflow.Equal(dec("45")))
	assert.True(t, res.Stats.Net.Equal(dec("2955")))
}

func TestPipeline_KnownTransferExcluded(t *testing.T) {
	records := []model.TransactionRecord{
		txn("Checking", "Transfer : Visa", "", date(2025, 1, 15), "0", "100"),
	}
	for _, visa := range []bool{true, false} {
		res := run(t, Options{
			Filter: accounts.NewFilter(map[string]bool{"Checking": true, "Visa": visa}),
			Start:  date(2025, 1, 1),
		}, records)
		assert.True(t, res.Graph.Empty(), "Visa=%v", visa)
		assert.Equal(t, 1, res.Stats.Excluded)
	}
}

func TestPipeline_UnknownAccountExcluded(t *testing.T) {
	records := []model.TransactionRecord{
		txn("Cash", "Market", "Food", date(2025, 1, 15), "0", "20"),
		txn("Cash", "Employer", "", date(2030, 1, 1), "99999", "0"),
	}
	res := run(t, Options{
		Filter: accounts.NewFilter(map[string]bool{"Checking": true}),
		Start:  date(2025, 1, 1),
	}, records)
	assert.True(t, res.Graph.Empty())
	assert.Equal(t, 0, res.Stats.Transactions)
	assert.Equal(t, 2, res.Stats.Excluded)
}

func TestPipeline_EmptyInput(t *testing.T) {
	res := run(t, Options{Start: date(2025, 1, 1)}, nil)
	assert.True(t, res.Graph.Empty())
	assert.Empty(t, res.Graph.Nodes)
	assert.True(t, res.Stats.TotalInflow.IsZero())
	assert.True(t, res.Stats.Net.IsZero())
	assert.Equal(t, 0, res.Stats.Excluded)
}

func TestPipeline_DefaultGroupBy(t *testing.T) {
	p := NewPipeline(Options{}, zerolog.Nop())
	assert.Equal(t, model.GroupByCategoryGroup, p.Options().GroupBy)
}

func fixture(t *testing.T) ([]model.TransactionRecord, accounts.Filter) {
	t.Helper()
	records, err := register.ReadFile(&register.YNABParser{}, "../../testdata/register.csv")
	require.NoError(t, err)
	filter, err := accounts.Load("../../testdata/account-filter.yaml")
	require.NoError(t, err)
	return records, filter
}

func TestPipeline_Fixture(t *testing.T) {
	records, filter := fixture(t)
	res := run(t, Options{Filter: filter, Start: date(2025, 1, 1)}, records)

	labels := make([]string, 0, len(res.Graph.Nodes))
	for _, n := range res.Graph.Nodes {
		labels = append(labels, n.Label)
	}
	assert.Equal(t, []string{
		"Employer (2 tx, $6,000)",
		"Income (2 sources)",
		"Side Gig (1 tx, $251)",
		"Food (3 tx, $130)",
		"Home (1 tx, $1,200)",
	}, labels)

	s := res.Stats
	assert.Equal(t, 14, s.WindowTransactions)
	assert.Equal(t, 7, s.Transactions)
	assert.Equal(t, 7, s.Excluded)
	assert.Equal(t, 2, s.UniqueAccounts)
	assert.Equal(t, 3, s.UniqueGroups)
	assert.Equal(t, date(2025, 2, 3), s.LatestDate)
	assert.True(t, s.TotalInflow.Equal(dec("6250.75")), "inflow %s", s.TotalInflow)
	assert.True(t, s.TotalOutflow.Equal(dec("1329.75")), "outflow %s", s.TotalOutflow)
	assert.True(t, s.Net.Equal(dec("4921")), "net %s", s.Net)
	assert.Len(t, res.Reported, 7)
}

func TestPipeline_FixtureByCategory(t *testing.T) {
	records, filter := fixture(t)
	res := run(t, Options{Filter: filter, Start: date(2025, 1, 1), GroupBy: model.GroupByCategory}, records)

	var targets []string
	for _, e := range res.Graph.Edges {
		if e.Role == model.RoleOutflowTarget {
			targets = append(targets, e.Target)
		}
	}
	assert.Equal(t, []string{"Dining Out", "Groceries", "Rent"}, targets)
}

func TestPipeline_Idempotent(t *testing.T) {
	records, filter := fixture(t)
	opts := Options{Filter: filter, Start: date(2025, 1, 1)}

	first := run(t, opts, records)
	second := run(t, opts, records)
	assert.Equal(t, first.Graph, second.Graph)
	assert.Equal(t, first.Stats, second.Stats)
}

func TestPipeline_LogsSkippedAmounts(t *testing.T) {
	records, filter := fixture(t)
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := NewPipeline(Options{Filter: filter, Start: date(2025, 1, 1)}, log).Run(records)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"payee":"Mystery"`)
	assert.Contains(t, buf.String(), `"reported":7`)
}
