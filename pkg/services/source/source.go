package source

import (
	"context"
	"slices"

	"github.com/de-tools/edi-analytics/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Provider supplies the transactions a report is computed over.
type Provider interface {
	Transactions(ctx context.Context) ([]domain.Transaction, error)
}

type static struct {
	records []domain.Transaction
}

// NewStatic returns a Provider over a fixed set of records.
// Every call hands out its own copy of the slice.
func NewStatic(records ...domain.Transaction) Provider {
	return &static{records: slices.Clone(records)}
}

func (s *static) Transactions(_ context.Context) ([]domain.Transaction, error) {
	return slices.Clone(s.records), nil
}

// Sample returns the built-in demo data set.
func Sample() Provider {
	return NewStatic(
		sampleRecord("T1001", 1500, domain.TransactionStatusCompleted, false),
		sampleRecord("T1002", 2500, domain.TransactionStatusCompleted, false),
		sampleRecord("T1003", 1200, domain.TransactionStatusFailed, true),
		sampleRecord("T1004", 1800, domain.TransactionStatusCompleted, false),
		sampleRecord("T1005", 2200, domain.TransactionStatusFailed, true),
	)
}

func sampleRecord(id string, value int64, status domain.TransactionStatus, failed bool) domain.Transaction {
	return domain.Transaction{
		ID:         id,
		OrderValue: decimal.NewFromInt(value),
		Status:     status,
		Error:      failed,
	}
}
