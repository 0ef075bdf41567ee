package aggregating

import (
	"context"

	"github.com/vfg2006/store-deck-api/internal/domain"
)

// Aggregator define a interface de agregação de métricas da loja
type Aggregator interface {
	// AggregateStoreMetrics produz o snapshot completo de métricas para as janelas informadas
	AggregateStoreMetrics(ctx context.Context, filters *domain.MetricFilters) (*domain.StoreMetrics, error)

	// GetStoreOverview retorna os dados brutos da loja exibidos no painel administrativo
	GetStoreOverview(ctx context.Context) (*domain.StoreOverview, error)
}
