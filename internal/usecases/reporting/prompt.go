package reporting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/store-deck-api/internal/config"
	"github.com/vfg2006/store-deck-api/internal/domain"
)

// sectionSpec descreve como cada seção reconhecida vira um slide
type sectionSpec struct {
	title     string
	narrative bool
	ask       string
	fallback  func(metrics *domain.StoreMetrics) string
}

// sectionSpecs mapeia as chaves de seção reconhecidas. A seção financials é
// sempre montada a partir das métricas, sem chamada ao serviço de narrativa.
var sectionSpecs = map[string]sectionSpec{
	domain.SectionExecutiveSummary: {
		title:     "Executive Summary",
		narrative: true,
		ask:       "A compelling executive summary (2-3 paragraphs) highlighting the strongest investment signals in the data.",
		fallback:  executiveSummaryFallback,
	},
	domain.SectionMarketAnalysis: {
		title:     "Market Analysis",
		narrative: true,
		ask:       "A market opportunity analysis with specific industry insights grounded in the product mix and customer base.",
		fallback:  marketAnalysisFallback,
	},
	domain.SectionFinancials: {
		title:     "Financial Highlights",
		narrative: false,
		fallback:  financialsBody,
	},
	domain.SectionProjections: {
		title:     "Projections",
		narrative: true,
		ask:       "Future projections and growth potential. Be specific but realistic given the growth rates in the data.",
		fallback:  projectionsFallback,
	},
}

// buildSectionPrompt monta o prompt do analista para uma seção narrativa.
// O texto enviado ao modelo é em inglês, como o restante do conteúdo do deck.
func buildSectionPrompt(store config.Store, metrics *domain.StoreMetrics, ask string) string {
	var b strings.Builder

	b.WriteString("You are an expert business analyst creating content for an investment pitch deck.\n")
	b.WriteString("Based on the following e-commerce metrics, create compelling content.\n\n")
	b.WriteString("Business Overview:\n")
	fmt.Fprintf(&b, "- Company: %s\n", store.Name)
	fmt.Fprintf(&b, "- Industry: %s\n", store.BusinessModel)
	fmt.Fprintf(&b, "- Established: %s\n", store.Established)
	fmt.Fprintf(&b, "- Revenue (last %d days): %s\n",
		metrics.Financial.Revenue.WindowDays, metrics.Financial.Revenue.Amount)
	fmt.Fprintf(&b, "- MRR Growth: %.2f%%\n", metrics.Financial.MRRGrowthPercent)
	fmt.Fprintf(&b, "- Year-over-year Growth: %.2f%%\n", metrics.Growth.YearOverYearPercent)
	fmt.Fprintf(&b, "- Customer Growth: %.2f%%\n", metrics.Growth.CustomerGrowthPercent)
	fmt.Fprintf(&b, "- Customer Lifetime Value: %s\n", metrics.Financial.CustomerLTV)
	fmt.Fprintf(&b, "- Average Order Value: %s\n", metrics.Customer.AverageOrderValue)
	fmt.Fprintf(&b, "- Repeat Purchase Rate: %.2f%%\n", metrics.Customer.RepeatPurchaseRatePercent)

	if len(metrics.ProductCategories) > 0 {
		b.WriteString("\nProduct Categories:\n")
		for _, category := range metrics.ProductCategories {
			fmt.Fprintf(&b, "- %s: %d products\n", category.Name, category.Count)
		}
	}

	b.WriteString("\nPlease provide:\n")
	b.WriteString(ask)
	b.WriteString("\n\nRespond with the section content only, no headers or preamble.")

	return b.String()
}

func executiveSummaryFallback(metrics *domain.StoreMetrics) string {
	return fmt.Sprintf(
		"Revenue of %s over the last %d days with %.2f%% MRR growth. "+
			"Customer lifetime value stands at %s with a %.2f%% repeat purchase rate.",
		metrics.Financial.Revenue.Amount,
		metrics.Financial.Revenue.WindowDays,
		metrics.Financial.MRRGrowthPercent,
		metrics.Financial.CustomerLTV,
		metrics.Customer.RepeatPurchaseRatePercent,
	)
}

func marketAnalysisFallback(metrics *domain.StoreMetrics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Estimated market share: %.2f%%.", metrics.Growth.MarketShareEstimatePercent)

	if len(metrics.ProductCategories) > 0 {
		b.WriteString(" Catalog coverage: ")

		names := make([]string, 0, len(metrics.ProductCategories))
		for _, category := range metrics.ProductCategories {
			names = append(names, fmt.Sprintf("%s (%d)", category.Name, category.Count))
		}

		b.WriteString(strings.Join(names, ", "))
		b.WriteString(".")
	}

	return b.String()
}

func financialsBody(metrics *domain.StoreMetrics) string {
	return fmt.Sprintf(
		"Revenue (last %d days): %s | MRR growth: %.2f%% | Year-over-year: %.2f%% | "+
			"Customer LTV: %s | Estimated CAC: %s | Average order value: %s",
		metrics.Financial.Revenue.WindowDays,
		metrics.Financial.Revenue.Amount,
		metrics.Financial.MRRGrowthPercent,
		metrics.Growth.YearOverYearPercent,
		metrics.Financial.CustomerLTV,
		metrics.Financial.EstimatedCAC,
		metrics.Customer.AverageOrderValue,
	)
}

func projectionsFallback(metrics *domain.StoreMetrics) string {
	return fmt.Sprintf(
		"Customer growth of %.2f%% and year-over-year revenue growth of %.2f%% "+
			"support continued expansion at the current trajectory.",
		metrics.Growth.CustomerGrowthPercent,
		metrics.Growth.YearOverYearPercent,
	)
}
