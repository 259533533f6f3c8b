package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(s string) Amount {
	return NewAmount(decimal.RequireFromString(s))
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name    string
		inflow  Amount
		outflow Amount
		want    string
		wantOK  bool
	}{
		{"inflow", amt("3000.00"), amt("0"), "3000", true},
		{"outflow", amt("0"), amt("45.10"), "-45.1", true},
		{"both sides", amt("10"), amt("10"), "0", true},
		{"missing inflow", MissingAmount(), amt("5"), "0", false},
		{"missing outflow", amt("5"), MissingAmount(), "0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := TransactionRecord{Inflow: tt.inflow, Outflow: tt.outflow}
			got, ok := rec.SignedAmount()
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestParseGroupBy(t *testing.T) {
	tests := []struct {
		in   string
		want GroupBy
	}{
		{"", GroupByCategoryGroup},
		{"Category Group", GroupByCategoryGroup},
		{"category_group", GroupByCategoryGroup},
		{"Category", GroupByCategory},
		{"category", GroupByCategory},
	}
	for _, tt := range tests {
		got, err := ParseGroupBy(tt.in)
		require.NoError(t, err, "ParseGroupBy(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseGroupBy(%q)", tt.in)
	}

	_, err := ParseGroupBy("Payee")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGroupBy)
}

func TestGroupByKey(t *testing.T) {
	rec := TransactionRecord{CategoryGroup: "Home", Category: "Utilities"}
	assert.Equal(t, "Home", GroupByCategoryGroup.Key(rec))
	assert.Equal(t, "Utilities", GroupByCategory.Key(rec))
}

func TestNodeRoleString(t *testing.T) {
	assert.Equal(t, "income_hub", RoleIncomeHub.String())
	assert.Equal(t, "inflow_source", RoleInflowSource.String())
	assert.Equal(t, "outflow_target", RoleOutflowTarget.String())
	assert.Equal(t, "unknown", NodeRole(9).String())
}
