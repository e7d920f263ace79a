package adapters

import (
	"github.com/de-tools/edi-analytics/pkg/models/api"
	"github.com/de-tools/edi-analytics/pkg/models/domain"
)

const apiAmountPlaces = 2

func MapDomainMetricsToApi(m domain.Metrics) api.Metrics {
	return api.Metrics{
		TotalTransactions: m.TotalTransactions,
		TotalOrderValue:   m.TotalOrderValue.Round(apiAmountPlaces).InexactFloat64(),
		AverageOrderValue: m.AverageOrderValue.Round(apiAmountPlaces).InexactFloat64(),
		ErrorRate:         m.ErrorRate.Round(apiAmountPlaces).InexactFloat64(),
		CompletedCount:    m.CompletedCount,
		ErrorCount:        m.ErrorCount,
	}
}
