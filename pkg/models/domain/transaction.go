package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingField       = errors.New("missing required field")
	ErrNegativeOrderValue = errors.New("order value must not be negative")
)

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "Completed"
	TransactionStatusFailed    TransactionStatus = "Failed"
	TransactionStatusPending   TransactionStatus = "Pending"
)

// Transaction is a single EDI business transaction.
type Transaction struct {
	ID         string
	OrderValue decimal.Decimal
	Status     TransactionStatus
	Error      bool
}

func (t Transaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}

// Validate reports the first structural problem with the record, if any.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: transaction_id", ErrMissingField)
	}
	if t.Status == "" {
		return fmt.Errorf("%w: status", ErrMissingField)
	}
	if t.OrderValue.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeOrderValue, t.OrderValue.String())
	}
	return nil
}
