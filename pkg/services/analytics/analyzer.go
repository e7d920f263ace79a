package analytics

import (
	"context"
	"fmt"

	"github.com/de-tools/edi-analytics/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Analyzer interface {
	Analyze(ctx context.Context, transactions []domain.Transaction) (domain.Metrics, error)
}

type analyzer struct{}

func NewAnalyzer() Analyzer {
	return analyzer{}
}

func (analyzer) Analyze(ctx context.Context, transactions []domain.Transaction) (domain.Metrics, error) {
	return Analyze(ctx, transactions)
}

// Analyze computes the dashboard KPIs over transactions.
// Sums are taken left to right in input order. The average and the error rate
// are zero when their denominators are empty.
func Analyze(ctx context.Context, transactions []domain.Transaction) (domain.Metrics, error) {
	logger := zerolog.Ctx(ctx)

	var (
		total          = decimal.Zero
		completedTotal = decimal.Zero
		completed      int
		errored        int
	)

	for i, t := range transactions {
		if err := t.Validate(); err != nil {
			return domain.Metrics{}, fmt.Errorf("transaction #%d (%q): %w", i, t.ID, err)
		}

		total = total.Add(t.OrderValue)
		if t.IsCompleted() {
			completedTotal = completedTotal.Add(t.OrderValue)
			completed++
		}
		if t.Error {
			errored++
		}
	}

	metrics := domain.Metrics{
		TotalTransactions: len(transactions),
		TotalOrderValue:   total,
		AverageOrderValue: decimal.Zero,
		ErrorRate:         decimal.Zero,
		CompletedCount:    completed,
		ErrorCount:        errored,
	}
	if completed > 0 {
		metrics.AverageOrderValue = completedTotal.Div(decimal.NewFromInt(int64(completed)))
	}
	if len(transactions) > 0 {
		metrics.ErrorRate = decimal.NewFromInt(int64(errored)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(len(transactions))))
	}

	logger.Debug().
		Int("total_transactions", metrics.TotalTransactions).
		Str("total_order_value", metrics.TotalOrderValue.String()).
		Str("avg_order_value", metrics.AverageOrderValue.String()).
		Str("error_rate", metrics.ErrorRate.String()).
		Int("completed_count", metrics.CompletedCount).
		Int("error_count", metrics.ErrorCount).
		Msg("analysis result")

	return metrics, nil
}
