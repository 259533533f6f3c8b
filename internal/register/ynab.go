package register

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ynabflow/internal/model"
)

// Register column names.
const (
	ColAccount       = "Account"
	ColFlag          = "Flag"
	ColDate          = "Date"
	ColPayee         = "Payee"
	ColGroupCategory = "Category Group/Category"
	ColCategoryGroup = "Category Group"
	ColCategory      = "Category"
	ColMemo          = "Memo"
	ColOutflow       = "Outflow"
	ColInflow        = "Inflow"
	ColCleared       = "Cleared"
)

// DateFormat is the register date layout. Month and day may be one or two
// digits.
const DateFormat = "1/2/2006"

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

var requiredColumns = []string{
	ColAccount, ColDate, ColPayee, ColCategoryGroup, ColCategory, ColOutflow, ColInflow,
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// YNABParser parses YNAB register CSV exports.
type YNABParser struct{}

// Format returns the parser name.
func (p *YNABParser) Format() string { return "ynab" }

// Parse reads a register export. Rows come back in file order.
func (p *YNABParser) Parse(r io.Reader) ([]model.TransactionRecord, error) {
	cr := csv.NewReader(skipBOM(r))
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading register CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols, err := indexColumns(records[0])
	if err != nil {
		return nil, err
	}

	var txns []model.TransactionRecord
	for i, rec := range records[1:] {
		txn, err := cols.parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && string(head) == string(utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

// columns maps a column name to its position; -1 when absent.
type columns map[string]int

func indexColumns(header []string) (columns, error) {
	cols := make(columns, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

func (c columns) get(rec []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func (c columns) parseRow(rec []string) (model.TransactionRecord, error) {
	rawDate := strings.TrimSpace(c.get(rec, ColDate))
	date, err := time.Parse(DateFormat, rawDate)
	if err != nil {
		return model.TransactionRecord{}, fmt.Errorf("parsing date %q: %w", rawDate, err)
	}

	return model.TransactionRecord{
		Account:       c.get(rec, ColAccount),
		Flag:          c.get(rec, ColFlag),
		Date:          date,
		Payee:         c.get(rec, ColPayee),
		CategoryGroup: c.get(rec, ColCategoryGroup),
		Category:      c.get(rec, ColCategory),
		Memo:          c.get(rec, ColMemo),
		Outflow:       ParseCurrency(c.get(rec, ColOutflow)),
		Inflow:        ParseCurrency(c.get(rec, ColInflow)),
		Cleared:       model.ClearedState(c.get(rec, ColCleared)),
	}, nil
}

// ParseCurrency parses values like "$1,234.56". Every "$" and "," is
// dropped first. An empty cell is zero; anything else that is not a number
// is a missing amount.
func ParseCurrency(s string) model.Amount {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return model.NewAmount(decimal.Zero)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return model.MissingAmount()
	}
	return model.NewAmount(d)
}
