package api

type Metrics struct {
	TotalTransactions int     `json:"total_transactions"`
	TotalOrderValue   float64 `json:"total_order_value"`
	AverageOrderValue float64 `json:"average_order_value"`
	ErrorRate         float64 `json:"error_rate"`
	CompletedCount    int     `json:"completed_count"`
	ErrorCount        int     `json:"error_count"`
}

type Error struct {
	Error string `json:"error"`
}
