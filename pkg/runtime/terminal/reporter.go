package terminal

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"strings"
	"text/template"

	"github.com/de-tools/edi-analytics/pkg/models/domain"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	reportTitle    = "EDI Analytics Report"
	currencySymbol = "$"
)

const reportTemplate = `{{.Title}}
{{underline .Title}}
Total Transactions: {{.Metrics.TotalTransactions}}
Total Order Value: {{currency .Metrics.TotalOrderValue}}
Average Order Value (Completed): {{currency .Metrics.AverageOrderValue}}
Error Rate: {{percent .Metrics.ErrorRate}}
Completed Transactions: {{.Metrics.CompletedCount}}
Error Transactions: {{.Metrics.ErrorCount}}`

// Reporter renders dashboard metrics as a plain text report
type Reporter struct{}

// NewReporter creates a new console reporter
func NewReporter() *Reporter {
	return &Reporter{}
}

func (r *Reporter) Render(ctx context.Context, metrics domain.Metrics) (string, error) {
	funcMap := template.FuncMap{
		"underline": func(s string) string { return strings.Repeat("=", len(s)) },
		"currency":  formatCurrency,
		"percent":   formatPercent,
	}

	t, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	err = t.Execute(&buf, struct {
		Title   string
		Metrics domain.Metrics
	}{
		Title:   reportTitle,
		Metrics: metrics,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	zerolog.Ctx(ctx).Info().Msg("report generated successfully")
	return buf.String(), nil
}

// formatCurrency prints d as $#,###.## without going through float64.
// Cents are rounded half away from zero, so 0.125 prints as $0.13.
func formatCurrency(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")
	n, _ := new(big.Int).SetString(whole, 10)
	return sign + currencySymbol + humanize.BigComma(n) + "." + frac
}

// formatPercent rounds half away from zero, like formatCurrency.
func formatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}
