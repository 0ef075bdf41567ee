package aggregating

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-deck-api/infrastructure/repository"
	"github.com/vfg2006/store-deck-api/internal/config"
	"github.com/vfg2006/store-deck-api/internal/domain"
	"github.com/vfg2006/store-deck-api/pkg/utils"
)

const (
	revenueSeriesMonths       = 12
	registrationsSeriesMonths = 6
	yearWindowDays            = 365
)

type Service struct {
	cfg          *config.Config
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository

	// nowFn permite fixar o relógio nos testes
	nowFn func() time.Time
}

// NewService cria uma nova instância do serviço de agregação de métricas
func NewService(
	cfg *config.Config,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) Aggregator {
	return &Service{
		cfg:          cfg,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		nowFn:        time.Now,
	}
}

// AggregateStoreMetrics calcula o snapshot de métricas da loja.
// Conjuntos vazios produzem zeros; apenas falha de consulta resulta em erro.
func (s *Service) AggregateStoreMetrics(ctx context.Context, filters *domain.MetricFilters) (*domain.StoreMetrics, error) {
	windowDays := s.cfg.Metrics.DefaultWindowDays
	compareDays := 0

	if filters != nil {
		if filters.WindowDays < 0 || filters.CompareWindowDays < 0 {
			return nil, ErrInvalidWindow
		}
		if filters.WindowDays > 0 {
			windowDays = filters.WindowDays
		}
		compareDays = filters.CompareWindowDays
	}

	if compareDays == 0 {
		compareDays = windowDays
	}

	now := s.nowFn()
	windowStart := now.AddDate(0, 0, -windowDays)
	compareStart := windowStart.AddDate(0, 0, -compareDays)

	logrus.WithFields(logrus.Fields{
		"window_days":  windowDays,
		"compare_days": compareDays,
	}).Debug("Agregando métricas da loja")

	currentRevenue, err := s.orderRepo.SumRevenue(ctx, windowStart, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	previousRevenue, err := s.orderRepo.SumRevenue(ctx, compareStart, windowStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	yearRevenue, err := s.orderRepo.SumRevenue(ctx, now.AddDate(0, 0, -yearWindowDays), now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	previousYearRevenue, err := s.orderRepo.SumRevenue(
		ctx,
		now.AddDate(0, 0, -2*yearWindowDays),
		now.AddDate(0, 0, -yearWindowDays),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	ltv, err := s.orderRepo.CustomerLifetimeValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	avgOrderValue, err := s.orderRepo.AverageOrderValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	distinctCustomers, err := s.orderRepo.DistinctCustomerCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	repeatCustomers, err := s.orderRepo.RepeatCustomerCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	currentRegistrations, err := s.customerRepo.CountRegisteredBetween(ctx, windowStart, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	previousRegistrations, err := s.customerRepo.CountRegisteredBetween(ctx, compareStart, windowStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	categories, err := s.productRepo.CategoryBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	monthlyRevenue, err := s.orderRepo.MonthlyRevenue(ctx, now.AddDate(0, -revenueSeriesMonths, 0), now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	monthlyRegistrations, err := s.customerRepo.MonthlyRegistrations(
		ctx,
		now.AddDate(0, -registrationsSeriesMonths, 0),
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	repeatRate := 0.0
	if distinctCustomers > 0 {
		repeatRate = utils.RoundWithTwoDecimalPlace(
			float64(repeatCustomers) / float64(distinctCustomers) * 100,
		)
	}

	metrics := &domain.StoreMetrics{
		Financial: domain.FinancialMetrics{
			Revenue: domain.RevenuePeriod{
				WindowDays: windowDays,
				Amount:     domain.FormatAmount(currentRevenue),
			},
			MRRGrowthPercent: domain.GrowthPercent(
				currentRevenue.InexactFloat64(),
				previousRevenue.InexactFloat64(),
			),
			CustomerLTV:  domain.FormatAmount(ltv),
			EstimatedCAC: s.cfg.Metrics.EstimatedCAC,
		},
		Growth: domain.GrowthMetrics{
			YearOverYearPercent: domain.GrowthPercent(
				yearRevenue.InexactFloat64(),
				previousYearRevenue.InexactFloat64(),
			),
			CustomerGrowthPercent: domain.GrowthPercent(
				float64(currentRegistrations),
				float64(previousRegistrations),
			),
			MarketShareEstimatePercent: utils.RoundWithTwoDecimalPlace(s.cfg.Metrics.MarketShareEstimatePercent),
		},
		Customer: domain.CustomerMetrics{
			RepeatPurchaseRatePercent: repeatRate,
			AverageOrderValue:         domain.FormatAmount(avgOrderValue),
			SatisfactionPercent:       utils.RoundWithTwoDecimalPlace(s.cfg.Metrics.SatisfactionPercent),
		},
		ProductCategories: categories,
		TimeSeries: map[string]*domain.TimeSeries{
			domain.SeriesMonthlyRevenue:        revenueSeries(monthlyRevenue),
			domain.SeriesCustomerRegistrations: registrationsSeries(monthlyRegistrations),
		},
		GeneratedAt: now,
	}

	return metrics, nil
}

// GetStoreOverview monta o payload bruto do painel administrativo
func (s *Service) GetStoreOverview(ctx context.Context) (*domain.StoreOverview, error) {
	totalProducts, err := s.productRepo.CountPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	categories, err := s.productRepo.CategoryBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	totalRevenue, err := s.orderRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	avgOrderValue, err := s.orderRepo.AverageOrderValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	totalCustomers, err := s.customerRepo.CountCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}

	return &domain.StoreOverview{
		StoreInfo: domain.StoreInfo{
			Name:        s.cfg.Store.Name,
			URL:         s.cfg.Store.URL,
			Established: s.cfg.Store.Established,
		},
		Products: domain.ProductsOverview{
			Total:      totalProducts,
			Categories: categories,
		},
		Revenue: domain.RevenueOverview{
			Total:        domain.FormatAmount(totalRevenue),
			AverageOrder: domain.FormatAmount(avgOrderValue),
		},
		Customers: domain.CustomersOverview{
			Total: totalCustomers,
		},
	}, nil
}

// revenueSeries converte buckets mensais de receita na série esparsa dos gráficos
func revenueSeries(buckets []*domain.MonthlyAmount) *domain.TimeSeries {
	series := &domain.TimeSeries{
		Labels: make([]string, 0, len(buckets)),
		Values: make([]float64, 0, len(buckets)),
	}

	for _, bucket := range buckets {
		series.Labels = append(series.Labels, domain.MonthLabel(bucket.Month))
		series.Values = append(series.Values, bucket.Total.Round(2).InexactFloat64())
	}

	return series
}

func registrationsSeries(buckets []*domain.MonthlyCount) *domain.TimeSeries {
	series := &domain.TimeSeries{
		Labels: make([]string, 0, len(buckets)),
		Values: make([]float64, 0, len(buckets)),
	}

	for _, bucket := range buckets {
		series.Labels = append(series.Labels, domain.MonthLabel(bucket.Month))
		series.Values = append(series.Values, float64(bucket.Count))
	}

	return series
}
