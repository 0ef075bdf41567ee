package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/store-deck-api/internal/domain"
	"github.com/vfg2006/store-deck-api/internal/usecases/aggregating"
	"github.com/vfg2006/store-deck-api/pkg/apiErrors"
	"github.com/vfg2006/store-deck-api/pkg/log"
)

func GetStoreMetrics(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseMetricFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"window_days": r.URL.Query().Get("window_days"),
				"error":       err.Error(),
			}).Warn("metrics: invalid window parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetros de janela inválidos", nil)
			return
		}

		logger.WithField("window_days", filters.WindowDays).Debug("metrics: aggregating store metrics")

		metrics, err := service.AggregateStoreMetrics(r.Context(), filters)
		if err != nil {
			writeAggregationError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
		}
	})
}

func GetStoreOverview(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		overview, err := service.GetStoreOverview(r.Context())
		if err != nil {
			writeAggregationError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			logger.WithError(err).Error("overview: failed to encode response")
		}
	})
}

// parseMetricFilters lê as janelas opcionais da query string; ausência vira
// zero e o serviço aplica os padrões de configuração
func parseMetricFilters(r *http.Request) (*domain.MetricFilters, error) {
	filters := &domain.MetricFilters{}

	if raw := r.URL.Query().Get("window_days"); raw != "" {
		windowDays, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		filters.WindowDays = windowDays
	}

	if raw := r.URL.Query().Get("compare_window_days"); raw != "" {
		compareDays, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		filters.CompareWindowDays = compareDays
	}

	return filters, nil
}

func writeAggregationError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, aggregating.ErrInvalidWindow):
		logger.WithError(err).Warn("metrics: invalid aggregation window")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Janela de agregação inválida", nil)
	case errors.Is(err, aggregating.ErrDataSourceUnavailable):
		logger.WithError(err).Error("metrics: data source unavailable")
		apiErrors.WriteError(w, apiErrors.ErrDataSourceUnavailable, "Fonte de dados indisponível", nil)
	default:
		logger.WithError(err).Error("metrics: unexpected aggregation failure")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao agregar métricas", nil)
	}
}
