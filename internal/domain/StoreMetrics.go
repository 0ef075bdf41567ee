package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-deck-api/pkg/utils"
)

// Nomes das séries temporais expostas para os gráficos do dashboard
const (
	SeriesMonthlyRevenue        = "monthly_revenue"
	SeriesCustomerRegistrations = "customer_registrations"
)

type MetricFilters struct {
	WindowDays        int
	CompareWindowDays int
}

// RevenuePeriod é a receita acumulada de uma janela de dias
type RevenuePeriod struct {
	WindowDays int    `json:"window_days"`
	Amount     string `json:"amount"`
}

type FinancialMetrics struct {
	Revenue          RevenuePeriod `json:"revenue"`
	MRRGrowthPercent float64       `json:"mrr_growth_percent"`
	CustomerLTV      string        `json:"customer_ltv"`
	EstimatedCAC     string        `json:"estimated_cac"`
}

type GrowthMetrics struct {
	YearOverYearPercent        float64 `json:"year_over_year_percent"`
	CustomerGrowthPercent      float64 `json:"customer_growth_percent"`
	MarketShareEstimatePercent float64 `json:"market_share_estimate_percent"`
}

type CustomerMetrics struct {
	RepeatPurchaseRatePercent float64 `json:"repeat_purchase_rate_percent"`
	AverageOrderValue         string  `json:"average_order_value"`
	SatisfactionPercent       float64 `json:"satisfaction_percent"`
}

type ProductCategory struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TimeSeries mantém labels e values alinhados índice a índice.
// Meses sem dados são omitidos (série esparsa), nunca preenchidos com zero.
type TimeSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// StoreMetrics é o snapshot imutável produzido por uma agregação
type StoreMetrics struct {
	Financial         FinancialMetrics       `json:"financial"`
	Growth            GrowthMetrics          `json:"growth"`
	Customer          CustomerMetrics        `json:"customer"`
	ProductCategories []*ProductCategory     `json:"product_categories"`
	TimeSeries        map[string]*TimeSeries `json:"time_series"`
	GeneratedAt       time.Time              `json:"generated_at"`
}

// MonthlyAmount é um bucket mensal (chave YYYY-MM) com valor monetário
type MonthlyAmount struct {
	Month string
	Total decimal.Decimal
}

// MonthlyCount é um bucket mensal (chave YYYY-MM) com contagem
type MonthlyCount struct {
	Month string
	Count int
}

// GrowthPercent calcula a variação percentual entre dois períodos.
// Baseline zero ou ausente resulta em 0, nunca em divisão por zero.
func GrowthPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(((current - previous) / previous) * 100)
}

// FormatAmount renderiza um valor monetário com exatamente duas casas decimais
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// MonthLabel converte uma chave de bucket YYYY-MM no label exibido nos gráficos (ex: "Jan 2024")
func MonthLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}

	return t.Format("Jan 2006")
}
