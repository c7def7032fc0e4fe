package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	cases := map[string]string{
		"1.005":  "1.01",
		"1.004":  "1",
		"2.675":  "2.68",
		"0.125":  "0.13",
		"175":    "175",
		"33.333": "33.33",
	}
	for in, want := range cases {
		got := Round2(decimal.RequireFromString(in))
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s → %s, se obtuvo %s", in, want, got)
	}
}

func TestAmount(t *testing.T) {
	got := Amount(decimal.RequireFromString("1.333"), decimal.NewFromInt(75))
	assert.Equal(t, "99.98", got.StringFixed(2))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.00", Format(decimal.Zero))
	assert.Equal(t, "175.00", Format(decimal.NewFromInt(175)))
	assert.Equal(t, "1,234.50", Format(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "1,000,000.00", Format(decimal.NewFromInt(1_000_000)))
	assert.Equal(t, "12.35", Format(decimal.RequireFromString("12.345")))
}

func TestFormat_ImportesGrandesSinPerderCentavos(t *testing.T) {
	assert.Equal(t, "90,071,992,547,409.93", Format(decimal.RequireFromString("90071992547409.93")))
	assert.Equal(t, "123,456,789,012,345,678,901.01", Format(decimal.RequireFromString("123456789012345678901.005")))
	assert.Equal(t, "-1,234.50", Format(decimal.RequireFromString("-1234.5")))
	assert.Equal(t, "0.00", Format(decimal.RequireFromString("-0.001")))
}
