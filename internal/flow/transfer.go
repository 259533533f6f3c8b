package flow

import (
	"strings"

	"github.com/cleared-dev/ynabflow/internal/accounts"
	"github.com/cleared-dev/ynabflow/internal/model"
)

// TransferMarker prefixes the payee of a transfer between two ledger
// accounts, e.g. "Transfer : Visa".
const TransferMarker = "Transfer : "

// ParseTransfer returns the counterparty account named in payee. ok is false
// when payee does not contain TransferMarker. Matching is exact and
// case-sensitive.
func ParseTransfer(payee string) (counterparty string, ok bool) {
	if !strings.Contains(payee, TransferMarker) {
		return "", false
	}
	return strings.TrimSpace(strings.ReplaceAll(payee, TransferMarker, "")), true
}

// IsKnownTransfer reports whether rec moves money to or from an account the
// filter knows about. Either side being known is enough, whatever its flag.
func IsKnownTransfer(rec model.TransactionRecord, filter accounts.Filter) bool {
	counterparty, ok := ParseTransfer(rec.Payee)
	if !ok {
		return false
	}
	return filter.Known(rec.Account) || filter.Known(counterparty)
}

// DropTransfers removes known transfers.
func DropTransfers(records []model.TransactionRecord, filter accounts.Filter) []model.TransactionRecord {
	var out []model.TransactionRecord
	for _, rec := range records {
		if !IsKnownTransfer(rec, filter) {
			out = append(out, rec)
		}
	}
	return out
}
