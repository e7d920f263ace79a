package dashboard

import (
	"context"
	"fmt"

	"github.com/de-tools/edi-analytics/pkg/models/domain"
	"github.com/de-tools/edi-analytics/pkg/services/analytics"
	"github.com/de-tools/edi-analytics/pkg/services/source"
)

// Renderer turns computed metrics into the text report.
type Renderer interface {
	Render(ctx context.Context, metrics domain.Metrics) (string, error)
}

type Service interface {
	Metrics(ctx context.Context) (domain.Metrics, error)
	Report(ctx context.Context) (string, error)
}

type service struct {
	provider source.Provider
	analyzer analytics.Analyzer
	renderer Renderer
}

func NewService(provider source.Provider, analyzer analytics.Analyzer, renderer Renderer) Service {
	return &service{
		provider: provider,
		analyzer: analyzer,
		renderer: renderer,
	}
}

func (s *service) Metrics(ctx context.Context) (domain.Metrics, error) {
	transactions, err := s.provider.Transactions(ctx)
	if err != nil {
		return domain.Metrics{}, fmt.Errorf("failed to load transactions: %w", err)
	}

	metrics, err := s.analyzer.Analyze(ctx, transactions)
	if err != nil {
		return domain.Metrics{}, fmt.Errorf("failed to analyze transactions: %w", err)
	}
	return metrics, nil
}

func (s *service) Report(ctx context.Context) (string, error) {
	metrics, err := s.Metrics(ctx)
	if err != nil {
		return "", err
	}

	report, err := s.renderer.Render(ctx, metrics)
	if err != nil {
		return "", fmt.Errorf("failed to generate report: %w", err)
	}
	return report, nil
}
