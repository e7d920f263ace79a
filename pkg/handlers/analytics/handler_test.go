package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/de-tools/edi-analytics/pkg/models/api"
	"github.com/de-tools/edi-analytics/pkg/models/domain"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDashboard struct {
	mock.Mock
}

func (m *mockDashboard) Metrics(ctx context.Context) (domain.Metrics, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Metrics), args.Error(1)
}

func (m *mockDashboard) Report(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func setupRouter(svc *mockDashboard) http.Handler {
	h := NewHandler(svc)
	r := chi.NewRouter()
	r.Get("/metrics", h.GetMetrics)
	r.Get("/report", h.GetReport)
	return r
}

func TestGetMetrics(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mockDashboard)
		expectedStatus int
		expectedBody   any
		parse          func([]byte) (any, error)
	}{
		{
			name: "successful response",
			setupMock: func(m *mockDashboard) {
				m.On("Metrics", mock.Anything).Return(domain.Metrics{
					TotalTransactions: 5,
					TotalOrderValue:   decimal.NewFromInt(9200),
					AverageOrderValue: decimal.NewFromInt(5800).Div(decimal.NewFromInt(3)),
					ErrorRate:         decimal.NewFromInt(40),
					CompletedCount:    3,
					ErrorCount:        2,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: api.Metrics{
				TotalTransactions: 5,
				TotalOrderValue:   9200,
				AverageOrderValue: 1933.33,
				ErrorRate:         40,
				CompletedCount:    3,
				ErrorCount:        2,
			},
			parse: decode[api.Metrics],
		},
		{
			name: "pipeline failure",
			setupMock: func(m *mockDashboard) {
				m.On("Metrics", mock.Anything).Return(domain.Metrics{}, errors.New("missing required field: status"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   api.Error{Error: "missing required field: status"},
			parse:          decode[api.Error],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockDashboard)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			setupRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			body, err := tt.parse(rec.Body.Bytes())
			require.NoError(t, err)
			assert.Equal(t, tt.expectedBody, body)
			svc.AssertExpectations(t)
		})
	}
}

func TestGetReport(t *testing.T) {
	t.Run("successful response", func(t *testing.T) {
		svc := new(mockDashboard)
		svc.On("Report", mock.Anything).Return("EDI Analytics Report\n====================", nil)

		rec := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/report", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "EDI Analytics Report\n====================\n", rec.Body.String())
	})

	t.Run("pipeline failure", func(t *testing.T) {
		svc := new(mockDashboard)
		svc.On("Report", mock.Anything).Return("", errors.New("boom"))

		rec := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/report", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body, err := decode[api.Error](rec.Body.Bytes())
		require.NoError(t, err)
		assert.Equal(t, api.Error{Error: "boom"}, body)
	})
}

func decode[T any](data []byte) (any, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}
