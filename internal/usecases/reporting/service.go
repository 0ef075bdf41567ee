package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-deck-api/infrastructure/integrator/narrative"
	"github.com/vfg2006/store-deck-api/internal/config"
	"github.com/vfg2006/store-deck-api/internal/domain"
	"github.com/vfg2006/store-deck-api/internal/usecases/aggregating"
	"github.com/vfg2006/store-deck-api/pkg/pptx"
	"github.com/vfg2006/store-deck-api/pkg/utils"
)

type Service struct {
	cfg              *config.Config
	aggregator       aggregating.Aggregator
	narrativeService narrative.NarrativeIntegrator
}

// NewService cria uma nova instância do serviço de geração de relatórios
func NewService(
	cfg *config.Config,
	aggregator aggregating.Aggregator,
	narrativeService narrative.NarrativeIntegrator,
) ReportBuilder {
	return &Service{
		cfg:              cfg,
		aggregator:       aggregator,
		narrativeService: narrativeService,
	}
}

// BuildDeckContent monta os slides na ordem da seleção. Na primeira falha de
// narrativa as seções narrativas restantes caem no corpo de fallback; os slides
// são retornados junto com ErrNarrativeGeneration para o chamador decidir.
func (s *Service) BuildDeckContent(
	ctx context.Context,
	metrics *domain.StoreMetrics,
	sections []string,
) ([]*domain.SlideContent, error) {
	if len(sections) == 0 {
		sections = domain.DefaultSections
	}

	slides := make([]*domain.SlideContent, 0, len(sections))

	var narrativeErr error

	for _, key := range sections {
		spec, ok := sectionSpecs[key]
		if !ok {
			logrus.WithField("section", key).Warn("Seção desconhecida ignorada na montagem do deck")
			continue
		}

		body := spec.fallback(metrics)

		if spec.narrative && narrativeErr == nil {
			prompt := buildSectionPrompt(s.cfg.Store, metrics, spec.ask)

			text, err := s.narrativeService.GenerateNarrative(ctx, prompt)
			if err != nil {
				narrativeErr = fmt.Errorf("%w: %v", ErrNarrativeGeneration, err)
				logrus.WithError(err).WithField("section", key).
					Warn("Falha na narrativa, usando fallback de métricas nas seções restantes")
			} else {
				body = text
			}
		}

		slides = append(slides, &domain.SlideContent{
			Title: spec.title,
			Body:  body,
		})
	}

	return slides, narrativeErr
}

// GenerateDeck agrega as métricas, monta o conteúdo e publica o arquivo .pptx
func (s *Service) GenerateDeck(ctx context.Context, req *domain.DeckRequest) (*domain.DeckArtifact, error) {
	filters := &domain.MetricFilters{}
	if req != nil {
		filters.WindowDays = req.WindowDays
	}

	metrics, err := s.aggregator.AggregateStoreMetrics(ctx, filters)
	if err != nil {
		return nil, err
	}

	var sections []string
	if req != nil {
		sections = req.Sections
	}

	slides, narrativeErr := s.BuildDeckContent(ctx, metrics, sections)

	deck, err := pptx.NewDeck(s.cfg.Deck)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeckGeneration, err)
	}

	for _, slide := range slides {
		if err := deck.AddSlide(slide.Title, slide.Body); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDeckGeneration, err)
		}
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeckGeneration, err)
	}

	fileName := fmt.Sprintf("investment-deck-%s-%s.pptx", time.Now().Format("2006-01-02"), suffix)

	artifact, err := deck.Save(fileName)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"deck_file":   fileName,
		"slide_count": deck.SlideCount(),
	}).Info("Deck gerado com sucesso")

	return &domain.DeckArtifact{
		URL:               artifact.URL,
		FileName:          fileName,
		SlideCount:        deck.SlideCount(),
		NarrativeIncluded: narrativeErr == nil,
	}, nil
}
