package domain

import "github.com/shopspring/decimal"

// Metrics holds the KPIs computed over one batch of transactions.
type Metrics struct {
	TotalTransactions int
	TotalOrderValue   decimal.Decimal
	AverageOrderValue decimal.Decimal // completed transactions only
	ErrorRate         decimal.Decimal // percent, 0..100
	CompletedCount    int
	ErrorCount        int
}
