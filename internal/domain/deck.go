package domain

// Chaves de seção reconhecidas pelo montador de conteúdo do deck
const (
	SectionExecutiveSummary = "executive_summary"
	SectionMarketAnalysis   = "market_analysis"
	SectionFinancials       = "financials"
	SectionProjections      = "projections"
)

// DefaultSections é a ordem canônica usada quando a seleção vem vazia
var DefaultSections = []string{
	SectionExecutiveSummary,
	SectionMarketAnalysis,
	SectionFinancials,
	SectionProjections,
}

// SlideContent é um par título/corpo na ordem final do deck
type SlideContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type DeckRequest struct {
	Sections   []string `json:"sections"`
	WindowDays int      `json:"window_days"`
}

// DeckArtifact é o handle do arquivo publicado
type DeckArtifact struct {
	URL               string `json:"url"`
	FileName          string `json:"file_name"`
	SlideCount        int    `json:"slide_count"`
	NarrativeIncluded bool   `json:"narrative_included"`
}
