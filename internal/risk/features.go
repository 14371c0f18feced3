// internal/risk/features.go
package risk

// Canonical feature field names, matching the wire contract and the
// artifact's expected input order.
const (
	FieldStockAmount    = "stock_amount"
	FieldWeeklySales    = "weekly_sales"
	FieldProductAgeDays = "product_age_days"
	FieldRating         = "rating"
	FieldReturnRate     = "return_rate"
)

// FeatureOrder is the canonical ordering of the five features. Vectors
// handed to the model and explanations emitted by the explainer both
// follow this order.
var FeatureOrder = []string{
	FieldStockAmount,
	FieldWeeklySales,
	FieldProductAgeDays,
	FieldRating,
	FieldReturnRate,
}

// FeatureSet is the validated five-field input to scoring. The HTTP
// boundary guarantees all fields are present and numeric before a
// FeatureSet is constructed; the scoring path never sees a partial one.
type FeatureSet struct {
	StockAmount    float64 `json:"stock_amount"`
	WeeklySales    float64 `json:"weekly_sales"`
	ProductAgeDays float64 `json:"product_age_days"`
	Rating         float64 `json:"rating"`
	ReturnRate     float64 `json:"return_rate"`
}

// Vector returns the features in canonical order.
func (f FeatureSet) Vector() []float64 {
	return []float64{
		f.StockAmount,
		f.WeeklySales,
		f.ProductAgeDays,
		f.Rating,
		f.ReturnRate,
	}
}

// Clamp saturates each field to its documented domain: counts and ages
// are floored at zero, rating is held to the 0-5 scale and return rate
// to [0,1]. Out-of-domain values are treated as saturated signals rather
// than rejected, so classification stays total.
func (f FeatureSet) Clamp() FeatureSet {
	f.StockAmount = clamp(f.StockAmount, 0, maxStock)
	f.WeeklySales = clamp(f.WeeklySales, 0, maxWeeklySales)
	f.ProductAgeDays = clamp(f.ProductAgeDays, 0, maxProductAgeDays)
	f.Rating = clamp(f.Rating, 0, maxRating)
	f.ReturnRate = clamp(f.ReturnRate, 0, 1)
	return f
}

// Upper saturation bounds. Counts have no natural ceiling; these only
// exist so Clamp maps every float input into a finite domain.
const (
	maxStock          = 1e9
	maxWeeklySales    = 1e9
	maxProductAgeDays = 1e6
	maxRating         = 5
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
