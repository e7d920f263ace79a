package terminal

import (
	"context"
	"strings"
	"testing"

	"github.com/de-tools/edi-analytics/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMetrics() domain.Metrics {
	return domain.Metrics{
		TotalTransactions: 5,
		TotalOrderValue:   decimal.NewFromInt(9200),
		AverageOrderValue: decimal.NewFromInt(5800).Div(decimal.NewFromInt(3)),
		ErrorRate:         decimal.NewFromInt(40),
		CompletedCount:    3,
		ErrorCount:        2,
	}
}

func TestReporter_Render_SampleMetrics(t *testing.T) {
	expected := strings.Join([]string{
		"EDI Analytics Report",
		"====================",
		"Total Transactions: 5",
		"Total Order Value: $9,200.00",
		"Average Order Value (Completed): $1,933.33",
		"Error Rate: 40.00%",
		"Completed Transactions: 3",
		"Error Transactions: 2",
	}, "\n")

	report, err := NewReporter().Render(context.Background(), sampleMetrics())

	require.NoError(t, err)
	assert.Equal(t, expected, report)
}

func TestReporter_Render_ZeroMetrics(t *testing.T) {
	report, err := NewReporter().Render(context.Background(), domain.Metrics{})
	require.NoError(t, err)

	lines := strings.Split(report, "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Total Transactions: 0", lines[2])
	assert.Equal(t, "Total Order Value: $0.00", lines[3])
	assert.Equal(t, "Average Order Value (Completed): $0.00", lines[4])
	assert.Equal(t, "Error Rate: 0.00%", lines[5])
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"999.999", "$1,000.00"},
		{"1234567.891", "$1,234,567.89"},
		{"1933.3333333333333333", "$1,933.33"},
		{"12.5", "$12.50"},
		{"-1500.25", "-$1,500.25"},
		{"0.125", "$0.13"},
		{"9223372036854775808", "$9,223,372,036,854,775,808.00"},
		{"1000000000000000000000.5", "$1,000,000,000,000,000,000,000.50"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCurrency(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "33.33%", formatPercent(decimal.NewFromInt(100).Div(decimal.NewFromInt(3))))
	assert.Equal(t, "100.00%", formatPercent(decimal.NewFromInt(100)))
	assert.Equal(t, "12.35%", formatPercent(decimal.RequireFromString("12.345")))
}
