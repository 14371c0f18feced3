// internal/catalog/model.go
package catalog

import "inventory-risk-service/internal/risk"

// Product is a catalog entry together with the inventory signals the
// scoring engine consumes.
type Product struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Description    string  `json:"description,omitempty"`
	Image          string  `json:"image,omitempty"`
	StockAmount    float64 `json:"stock_amount"`
	WeeklySales    float64 `json:"weekly_sales"`
	ProductAgeDays float64 `json:"product_age_days"`
	Rating         float64 `json:"rating"`
	ReturnRate     float64 `json:"return_rate"`
}

// Features extracts the scoring signals from the product record.
func (p Product) Features() risk.FeatureSet {
	return risk.FeatureSet{
		StockAmount:    p.StockAmount,
		WeeklySales:    p.WeeklySales,
		ProductAgeDays: p.ProductAgeDays,
		Rating:         p.Rating,
		ReturnRate:     p.ReturnRate,
	}
}
