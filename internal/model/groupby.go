package model

import (
	"errors"
	"fmt"
)

// GroupBy selects the register column that outflow edges are grouped by.
type GroupBy string

const (
	GroupByCategoryGroup GroupBy = "Category Group"
	GroupByCategory      GroupBy = "Category"
)

// ErrInvalidGroupBy is returned by ParseGroupBy for unknown columns.
var ErrInvalidGroupBy = errors.New("invalid group-by column")

// ParseGroupBy accepts the column name or its snake_case form.
// An empty string selects the default, GroupByCategoryGroup.
func ParseGroupBy(s string) (GroupBy, error) {
	switch s {
	case "", string(GroupByCategoryGroup), "category_group":
		return GroupByCategoryGroup, nil
	case string(GroupByCategory), "category":
		return GroupByCategory, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGroupBy, s)
}

// Key returns the grouping value of rec.
func (g GroupBy) Key(rec TransactionRecord) string {
	if g == GroupByCategory {
		return rec.Category
	}
	return rec.CategoryGroup
}
