package reporting

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	narrativemocks "github.com/vfg2006/store-deck-api/infrastructure/integrator/narrative/mocks"
	"github.com/vfg2006/store-deck-api/internal/config"
	"github.com/vfg2006/store-deck-api/internal/domain"
	aggregatingmocks "github.com/vfg2006/store-deck-api/internal/usecases/aggregating/mocks"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Store: config.Store{
			Name:          "Loja Teste",
			URL:           "https://loja.teste",
			Established:   "2020",
			BusinessModel: "E-commerce",
		},
		Deck: config.Deck{
			OutputDir:     t.TempDir(),
			ScratchDir:    t.TempDir(),
			PublicBaseURL: "http://localhost:8000/uploads",
		},
	}
}

func testMetrics() *domain.StoreMetrics {
	return &domain.StoreMetrics{
		Financial: domain.FinancialMetrics{
			Revenue:          domain.RevenuePeriod{WindowDays: 30, Amount: "1234.50"},
			MRRGrowthPercent: 12.5,
			CustomerLTV:      "411.50",
			EstimatedCAC:     "45.00",
		},
		Growth: domain.GrowthMetrics{
			YearOverYearPercent:        25,
			CustomerGrowthPercent:      100,
			MarketShareEstimatePercent: 2.5,
		},
		Customer: domain.CustomerMetrics{
			RepeatPurchaseRatePercent: 30,
			AverageOrderValue:         "61.73",
			SatisfactionPercent:       94,
		},
		ProductCategories: []*domain.ProductCategory{{Name: "Acessórios", Count: 12}},
		TimeSeries:        map[string]*domain.TimeSeries{},
		GeneratedAt:       time.Now(),
	}
}

func TestBuildDeckContentDefaultSections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	narrativeMock := narrativemocks.NewMockNarrativeIntegrator(ctrl)
	narrativeMock.EXPECT().GenerateNarrative(gomock.Any(), gomock.Any()).
		Return("texto gerado", nil).
		Times(3)

	service := &Service{
		cfg:              testConfig(t),
		narrativeService: narrativeMock,
	}

	slides, err := service.BuildDeckContent(context.Background(), testMetrics(), nil)
	require.NoError(t, err)
	require.Len(t, slides, 4)

	// Seleção vazia produz a ordem canônica
	assert.Equal(t, "Executive Summary", slides[0].Title)
	assert.Equal(t, "Market Analysis", slides[1].Title)
	assert.Equal(t, "Financial Highlights", slides[2].Title)
	assert.Equal(t, "Projections", slides[3].Title)

	assert.Equal(t, "texto gerado", slides[0].Body)
	// A seção financeira nunca passa pelo serviço de narrativa
	assert.Contains(t, slides[2].Body, "1234.50")
	assert.Contains(t, slides[2].Body, "45.00")
}

func TestBuildDeckContentSelectionOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	narrativeMock := narrativemocks.NewMockNarrativeIntegrator(ctrl)
	narrativeMock.EXPECT().GenerateNarrative(gomock.Any(), gomock.Any()).
		Return("projeções geradas", nil)

	service := &Service{
		cfg:              testConfig(t),
		narrativeService: narrativeMock,
	}

	slides, err := service.BuildDeckContent(
		context.Background(),
		testMetrics(),
		[]string{domain.SectionProjections, "secao_invalida", domain.SectionFinancials},
	)
	require.NoError(t, err)

	// Chave desconhecida é ignorada sem abortar; a ordem segue a seleção
	require.Len(t, slides, 2)
	assert.Equal(t, "Projections", slides[0].Title)
	assert.Equal(t, "Financial Highlights", slides[1].Title)
}

func TestBuildDeckContentNarrativeFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	narrativeMock := narrativemocks.NewMockNarrativeIntegrator(ctrl)
	// A primeira falha desativa as chamadas das seções narrativas seguintes
	narrativeMock.EXPECT().GenerateNarrative(gomock.Any(), gomock.Any()).
		Return("", errors.New("timeout")).
		Times(1)

	service := &Service{
		cfg:              testConfig(t),
		narrativeService: narrativeMock,
	}

	slides, err := service.BuildDeckContent(context.Background(), testMetrics(), nil)
	assert.ErrorIs(t, err, ErrNarrativeGeneration)

	// O deck de fallback mantém todos os slides, com corpo derivado das métricas
	require.Len(t, slides, 4)
	assert.Contains(t, slides[0].Body, "1234.50")
	assert.Contains(t, slides[3].Body, "100.00%")
}

func TestGenerateDeck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig(t)

	aggregatorMock := aggregatingmocks.NewMockAggregator(ctrl)
	aggregatorMock.EXPECT().
		AggregateStoreMetrics(gomock.Any(), &domain.MetricFilters{WindowDays: 90}).
		Return(testMetrics(), nil)

	narrativeMock := narrativemocks.NewMockNarrativeIntegrator(ctrl)
	narrativeMock.EXPECT().GenerateNarrative(gomock.Any(), gomock.Any()).
		Return("narrativa", nil).
		Times(3)

	service := &Service{
		cfg:              cfg,
		aggregator:       aggregatorMock,
		narrativeService: narrativeMock,
	}

	artifact, err := service.GenerateDeck(context.Background(), &domain.DeckRequest{WindowDays: 90})
	require.NoError(t, err)

	assert.Equal(t, 4, artifact.SlideCount)
	assert.True(t, artifact.NarrativeIncluded)
	assert.Contains(t, artifact.FileName, "investment-deck-")
	assert.Contains(t, artifact.URL, artifact.FileName)

	// O pacote publicado existe no diretório de saída
	_, err = os.Stat(filepath.Join(cfg.Deck.OutputDir, artifact.FileName))
	assert.NoError(t, err)
}

func TestGenerateDeckNarrativeFailureStillPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig(t)

	aggregatorMock := aggregatingmocks.NewMockAggregator(ctrl)
	aggregatorMock.EXPECT().AggregateStoreMetrics(gomock.Any(), gomock.Any()).
		Return(testMetrics(), nil)

	narrativeMock := narrativemocks.NewMockNarrativeIntegrator(ctrl)
	narrativeMock.EXPECT().GenerateNarrative(gomock.Any(), gomock.Any()).
		Return("", errors.New("serviço indisponível")).
		Times(1)

	service := &Service{
		cfg:              cfg,
		aggregator:       aggregatorMock,
		narrativeService: narrativeMock,
	}

	artifact, err := service.GenerateDeck(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 4, artifact.SlideCount)
	assert.False(t, artifact.NarrativeIncluded)
}
