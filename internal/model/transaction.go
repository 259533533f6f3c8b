package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClearedState is the reconciliation status YNAB attaches to a register row.
type ClearedState string

const (
	ClearedStateCleared    ClearedState = "Cleared"
	ClearedStateUncleared  ClearedState = "Uncleared"
	ClearedStateReconciled ClearedState = "Reconciled"
)

// Amount is a currency value that may be missing. A missing amount came from a
// cell that could not be parsed and is distinct from a true zero.
type Amount = decimal.NullDecimal

// NewAmount returns a present Amount.
func NewAmount(d decimal.Decimal) Amount {
	return decimal.NewNullDecimal(d)
}

// MissingAmount returns an Amount with no value.
func MissingAmount() Amount {
	return decimal.NullDecimal{}
}

// TransactionRecord is one normalized line of a register export.
type TransactionRecord struct {
	Account       string
	Flag          string
	Date          time.Time // calendar date, midnight UTC
	Payee         string
	CategoryGroup string
	Category      string
	Memo          string
	Outflow       Amount // non-negative
	Inflow        Amount // non-negative
	Cleared       ClearedState
}

// SignedAmount returns Inflow - Outflow. ok is false when either side is
// missing.
func (r TransactionRecord) SignedAmount() (amount decimal.Decimal, ok bool) {
	if !r.Inflow.Valid || !r.Outflow.Valid {
		return decimal.Zero, false
	}
	return r.Inflow.Decimal.Sub(r.Outflow.Decimal), true
}
