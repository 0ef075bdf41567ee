package domain

// StoreOverview é o payload do painel administrativo com os dados brutos da loja
type StoreOverview struct {
	StoreInfo StoreInfo         `json:"store_info"`
	Products  ProductsOverview  `json:"products"`
	Revenue   RevenueOverview   `json:"revenue"`
	Customers CustomersOverview `json:"customers"`
}

type StoreInfo struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Established string `json:"established"`
}

type ProductsOverview struct {
	Total      int                `json:"total"`
	Categories []*ProductCategory `json:"categories,omitempty"`
}

type RevenueOverview struct {
	Total        string `json:"total"`
	AverageOrder string `json:"average_order"`
}

type CustomersOverview struct {
	Total int `json:"total"`
}
