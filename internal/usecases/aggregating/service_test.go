package aggregating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/store-deck-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-deck-api/internal/config"
	"github.com/vfg2006/store-deck-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Store: config.Store{
			Name:        "Loja Teste",
			URL:         "https://loja.teste",
			Established: "2020",
		},
		Metrics: config.Metrics{
			DefaultWindowDays:          30,
			EstimatedCAC:               "45.00",
			MarketShareEstimatePercent: 2.5,
			SatisfactionPercent:        94.0,
		},
	}
}

func newTestService(cfg *config.Config, orderRepo *mocks.MockOrderRepository, customerRepo *mocks.MockCustomerRepository, productRepo *mocks.MockProductRepository) *Service {
	return &Service{
		cfg:          cfg,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		nowFn: func() time.Time {
			return time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestAggregateStoreMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)

	now := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	windowStart := now.AddDate(0, 0, -30)
	compareStart := windowStart.AddDate(0, 0, -30)

	// Receita da janela atual e da janela anterior (baseline zero)
	orderRepo.EXPECT().SumRevenue(gomock.Any(), windowStart, now).
		Return(decimal.NewFromFloat(1234.5), nil)
	orderRepo.EXPECT().SumRevenue(gomock.Any(), compareStart, windowStart).
		Return(decimal.Zero, nil)

	// Janelas anuais
	orderRepo.EXPECT().SumRevenue(gomock.Any(), now.AddDate(0, 0, -365), now).
		Return(decimal.NewFromInt(5000), nil)
	orderRepo.EXPECT().SumRevenue(gomock.Any(), now.AddDate(0, 0, -730), now.AddDate(0, 0, -365)).
		Return(decimal.NewFromInt(4000), nil)

	orderRepo.EXPECT().CustomerLifetimeValue(gomock.Any()).
		Return(decimal.NewFromFloat(411.5), nil)
	orderRepo.EXPECT().AverageOrderValue(gomock.Any()).
		Return(decimal.NewFromFloat(61.725), nil)
	orderRepo.EXPECT().DistinctCustomerCount(gomock.Any()).Return(10, nil)
	orderRepo.EXPECT().RepeatCustomerCount(gomock.Any()).Return(3, nil)

	customerRepo.EXPECT().CountRegisteredBetween(gomock.Any(), windowStart, now).Return(20, nil)
	customerRepo.EXPECT().CountRegisteredBetween(gomock.Any(), compareStart, windowStart).Return(10, nil)

	productRepo.EXPECT().CategoryBreakdown(gomock.Any()).
		Return([]*domain.ProductCategory{{Name: "Óculos de Sol", Count: 12}}, nil)

	// Série esparsa: um único mês com duas vendas agregadas (100 + 50)
	orderRepo.EXPECT().MonthlyRevenue(gomock.Any(), now.AddDate(0, -12, 0), now).
		Return([]*domain.MonthlyAmount{
			{Month: "2024-01", Total: decimal.NewFromInt(150)},
		}, nil)
	customerRepo.EXPECT().MonthlyRegistrations(gomock.Any(), now.AddDate(0, -6, 0), now).
		Return([]*domain.MonthlyCount{}, nil)

	service := newTestService(testConfig(), orderRepo, customerRepo, productRepo)

	metrics, err := service.AggregateStoreMetrics(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 30, metrics.Financial.Revenue.WindowDays)
	assert.Equal(t, "1234.50", metrics.Financial.Revenue.Amount)
	// Baseline zero nunca produz divisão por zero
	assert.Equal(t, 0.0, metrics.Financial.MRRGrowthPercent)
	assert.Equal(t, "411.50", metrics.Financial.CustomerLTV)
	assert.Equal(t, "45.00", metrics.Financial.EstimatedCAC)

	assert.Equal(t, 25.0, metrics.Growth.YearOverYearPercent)
	assert.Equal(t, 100.0, metrics.Growth.CustomerGrowthPercent)
	assert.Equal(t, 2.5, metrics.Growth.MarketShareEstimatePercent)

	assert.Equal(t, 30.0, metrics.Customer.RepeatPurchaseRatePercent)
	assert.Equal(t, "61.73", metrics.Customer.AverageOrderValue)
	assert.Equal(t, 94.0, metrics.Customer.SatisfactionPercent)

	require.Len(t, metrics.ProductCategories, 1)
	assert.Equal(t, "Óculos de Sol", metrics.ProductCategories[0].Name)

	revenue := metrics.TimeSeries[domain.SeriesMonthlyRevenue]
	require.NotNil(t, revenue)
	assert.Equal(t, []string{"Jan 2024"}, revenue.Labels)
	assert.Equal(t, []float64{150}, revenue.Values)

	registrations := metrics.TimeSeries[domain.SeriesCustomerRegistrations]
	require.NotNil(t, registrations)
	assert.Empty(t, registrations.Labels)
	assert.Empty(t, registrations.Values)

	assert.Equal(t, now, metrics.GeneratedAt)
}

func TestAggregateStoreMetricsInvalidWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(
		testConfig(),
		mocks.NewMockOrderRepository(ctrl),
		mocks.NewMockCustomerRepository(ctrl),
		mocks.NewMockProductRepository(ctrl),
	)

	_, err := service.AggregateStoreMetrics(context.Background(), &domain.MetricFilters{WindowDays: -1})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestAggregateStoreMetricsDataSourceUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	orderRepo.EXPECT().SumRevenue(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(decimal.Zero, errors.New("connection refused"))

	service := newTestService(
		testConfig(),
		orderRepo,
		mocks.NewMockCustomerRepository(ctrl),
		mocks.NewMockProductRepository(ctrl),
	)

	_, err := service.AggregateStoreMetrics(context.Background(), nil)
	assert.ErrorIs(t, err, ErrDataSourceUnavailable)
}

func TestGetStoreOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)

	productRepo.EXPECT().CountPublished(gomock.Any()).Return(42, nil)
	productRepo.EXPECT().CategoryBreakdown(gomock.Any()).
		Return([]*domain.ProductCategory{{Name: "Acessórios", Count: 42}}, nil)
	orderRepo.EXPECT().TotalRevenue(gomock.Any()).Return(decimal.NewFromInt(9000), nil)
	orderRepo.EXPECT().AverageOrderValue(gomock.Any()).Return(decimal.NewFromFloat(72.3), nil)
	customerRepo.EXPECT().CountCustomers(gomock.Any()).Return(310, nil)

	service := newTestService(testConfig(), orderRepo, customerRepo, productRepo)

	overview, err := service.GetStoreOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Loja Teste", overview.StoreInfo.Name)
	assert.Equal(t, 42, overview.Products.Total)
	assert.Equal(t, "9000.00", overview.Revenue.Total)
	assert.Equal(t, "72.30", overview.Revenue.AverageOrder)
	assert.Equal(t, 310, overview.Customers.Total)
}
