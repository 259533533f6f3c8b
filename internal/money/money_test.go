package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGroup(t *testing.T) {
	tests := []struct {
		in     string
		places int32
		want   string
	}{
		{"0", 0, "0"},
		{"999", 0, "999"},
		{"1234567", 0, "1,234,567"},
		{"250.75", 0, "251"},
		{"129.5", 0, "130"},
		{"1234.5", 2, "1,234.50"},
		{"6250.75", 2, "6,250.75"},
		{"0.005", 2, "0.01"},
		{"-1234.5", 2, "-1,234.50"},
		{"-0.004", 2, "0.00"},
		{"12345678901234567.89", 2, "12,345,678,901,234,567.89"},
		{"9007199254740993.01", 2, "9,007,199,254,740,993.01"},
	}
	for _, tt := range tests {
		got := Group(decimal.RequireFromString(tt.in), tt.places)
		assert.Equal(t, tt.want, got, "Group(%s, %d)", tt.in, tt.places)
	}
}

func TestDollars(t *testing.T) {
	assert.Equal(t, "$6,000", Dollars(decimal.RequireFromString("6000.00")))
	assert.Equal(t, "$45", Dollars(decimal.RequireFromString("45")))
	assert.Equal(t, "-$12", Dollars(decimal.RequireFromString("-12.2")))
}

func TestUSD(t *testing.T) {
	assert.Equal(t, "4,921.00 USD", USD(decimal.RequireFromString("4921")))
	assert.Equal(t, "(1,329.75) USD", USD(decimal.RequireFromString("-1329.75")))
	assert.Equal(t, "0.00 USD", USD(decimal.Zero))
}
