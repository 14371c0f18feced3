// internal/risk/thresholds.go
package risk

// The threshold table is the single source of truth for both the
// rule-based classifier and the explanation generator. Each feature has
// a severe and an elevated band; a band triggers when the value crosses
// its cutoff, with the cutoff itself counting as triggered (ties resolve
// toward higher risk).

type direction int

const (
	// highIsRisky triggers a band when value >= cutoff.
	highIsRisky direction = iota
	// lowIsRisky triggers a band when value <= cutoff.
	lowIsRisky
)

type band struct {
	cutoff float64
	points int
	reason string
}

type featureThreshold struct {
	field    string
	value    func(FeatureSet) float64
	dir      direction
	severe   band
	elevated band
	// healthy is the contribution when neither band triggers. Strong
	// demand and strong ratings actively offset risk elsewhere.
	healthy int
}

// contribution returns the feature's score contribution and the reason
// string for the triggered band ("" when no band triggered).
func (t featureThreshold) contribution(f FeatureSet) (int, string) {
	v := t.value(f)
	triggered := func(b band) bool {
		if t.dir == highIsRisky {
			return v >= b.cutoff
		}
		return v <= b.cutoff
	}
	switch {
	case triggered(t.severe):
		return t.severe.points, t.severe.reason
	case triggered(t.elevated):
		return t.elevated.points, t.elevated.reason
	default:
		return t.healthy, ""
	}
}

// thresholds lists the features in canonical order: stock level, sales
// velocity, product age, rating, return rate.
var thresholds = []featureThreshold{
	{
		field:    FieldStockAmount,
		value:    func(f FeatureSet) float64 { return f.StockAmount },
		dir:      highIsRisky,
		severe:   band{cutoff: 600, points: 2, reason: "Very high stock level"},
		elevated: band{cutoff: 300, points: 1, reason: "High stock level"},
	},
	{
		field:    FieldWeeklySales,
		value:    func(f FeatureSet) float64 { return f.WeeklySales },
		dir:      lowIsRisky,
		severe:   band{cutoff: 3, points: 2, reason: "Very low weekly sales"},
		elevated: band{cutoff: 10, points: 1, reason: "Slowing demand / low weekly sales"},
		healthy:  -1,
	},
	{
		field:    FieldProductAgeDays,
		value:    func(f FeatureSet) float64 { return f.ProductAgeDays },
		dir:      highIsRisky,
		severe:   band{cutoff: 250, points: 2, reason: "Product has been in inventory for a long time"},
		elevated: band{cutoff: 120, points: 1, reason: "Product age is increasing (mid-term shelf time)"},
	},
	{
		field:    FieldRating,
		value:    func(f FeatureSet) float64 { return f.Rating },
		dir:      lowIsRisky,
		severe:   band{cutoff: 2.5, points: 2, reason: "Low customer rating (reduces purchase probability)"},
		elevated: band{cutoff: 3.5, points: 1, reason: "Average customer rating"},
		healthy:  -1,
	},
	{
		field:    FieldReturnRate,
		value:    func(f FeatureSet) float64 { return f.ReturnRate },
		dir:      highIsRisky,
		severe:   band{cutoff: 0.20, points: 2, reason: "High return rate (indicates product quality issues)"},
		elevated: band{cutoff: 0.10, points: 1, reason: "Moderately high return rate"},
	},
}

// Total-score cut points, inclusive on the riskier side.
const (
	highCutoff   = 6
	mediumCutoff = 3
)
