package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vfg2006/store-deck-api/internal/domain"
	"github.com/vfg2006/store-deck-api/internal/usecases/aggregating"
	"github.com/vfg2006/store-deck-api/internal/usecases/reporting"
	"github.com/vfg2006/store-deck-api/pkg/apiErrors"
	"github.com/vfg2006/store-deck-api/pkg/log"
	"github.com/vfg2006/store-deck-api/pkg/pptx"
)

// CreateDeck gera e publica um novo deck de apresentação a partir das métricas atuais
func CreateDeck(service reporting.ReportBuilder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// Corpo vazio é aceito: a geração usa as seções e janela padrão
		req := &domain.DeckRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
			logger.WithError(err).Warn("deck: invalid request body")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"sections":    req.Sections,
			"window_days": req.WindowDays,
		}).Info("deck: generating investment deck")

		artifact, err := service.GenerateDeck(r.Context(), req)
		if err != nil {
			writeDeckError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"deck_file":   artifact.FileName,
			"slide_count": artifact.SlideCount,
		}).Info("deck: deck published")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(artifact); err != nil {
			logger.WithError(err).Error("deck: failed to encode response")
		}
	})
}

func writeDeckError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, aggregating.ErrInvalidWindow):
		logger.WithError(err).Warn("deck: invalid aggregation window")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Janela de agregação inválida", nil)
	case errors.Is(err, aggregating.ErrDataSourceUnavailable):
		logger.WithError(err).Error("deck: data source unavailable")
		apiErrors.WriteError(w, apiErrors.ErrDataSourceUnavailable, "Fonte de dados indisponível", nil)
	case errors.Is(err, pptx.ErrPackageWrite):
		logger.WithError(err).Error("deck: failed to write package")
		apiErrors.WriteError(w, apiErrors.ErrPackageWrite, "Falha ao gravar o arquivo do deck", nil)
	case errors.Is(err, pptx.ErrDeckFinalized):
		logger.WithError(err).Error("deck: deck already finalized")
		apiErrors.WriteError(w, apiErrors.ErrDeckFinalized, "Deck já finalizado", nil)
	default:
		logger.WithError(err).Error("deck: unexpected generation failure")
		apiErrors.WriteError(w, apiErrors.ErrDeckGeneration, "Erro interno ao gerar o deck", nil)
	}
}
