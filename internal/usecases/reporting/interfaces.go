package reporting

import (
	"context"

	"github.com/vfg2006/store-deck-api/internal/domain"
)

// ReportBuilder define a interface de montagem de conteúdo e geração de decks
type ReportBuilder interface {
	// BuildDeckContent monta os pares título/corpo do deck na ordem da seleção.
	// Chaves de seção desconhecidas são ignoradas; seleção vazia usa a ordem canônica.
	BuildDeckContent(ctx context.Context, metrics *domain.StoreMetrics, sections []string) ([]*domain.SlideContent, error)

	// GenerateDeck orquestra agregação, montagem de conteúdo e empacotamento .pptx
	GenerateDeck(ctx context.Context, req *domain.DeckRequest) (*domain.DeckArtifact, error)
}
