// internal/risk/rules_test.go
package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func healthyFeatures() FeatureSet {
	return FeatureSet{
		StockAmount:    50,
		WeeklySales:    40,
		ProductAgeDays: 10,
		Rating:         4.8,
		ReturnRate:     0.02,
	}
}

func distressedFeatures() FeatureSet {
	return FeatureSet{
		StockAmount:    800,
		WeeklySales:    2,
		ProductAgeDays: 300,
		Rating:         2.1,
		ReturnRate:     0.25,
	}
}

// ==========================
// Core Classification Tests
// ==========================

func TestRuleClassifier_Classify(t *testing.T) {
	tests := []struct {
		name     string
		features FeatureSet
		expected Label
	}{
		{
			name:     "all signals severe",
			features: distressedFeatures(),
			expected: High,
		},
		{
			name:     "all signals healthy",
			features: healthyFeatures(),
			expected: Low,
		},
		{
			name: "mixed elevated signals reach medium",
			features: FeatureSet{
				StockAmount:    400,
				WeeklySales:    5,
				ProductAgeDays: 130,
				Rating:         4.0,
				ReturnRate:     0.12,
			},
			expected: Medium,
		},
		{
			name: "single severe signal stays low",
			features: FeatureSet{
				StockAmount:    100,
				WeeklySales:    2,
				ProductAgeDays: 50,
				Rating:         4.0,
				ReturnRate:     0.05,
			},
			expected: Low,
		},
		{
			name: "score exactly at high cut point",
			features: FeatureSet{
				StockAmount:    800,
				WeeklySales:    2,
				ProductAgeDays: 130,
				Rating:         3.0,
				ReturnRate:     0.05,
			},
			expected: High,
		},
		{
			name: "one point below high cut point",
			features: FeatureSet{
				StockAmount:    800,
				WeeklySales:    2,
				ProductAgeDays: 50,
				Rating:         3.0,
				ReturnRate:     0.05,
			},
			expected: Medium,
		},
		{
			name: "one point below medium cut point",
			features: FeatureSet{
				StockAmount:    400,
				WeeklySales:    5,
				ProductAgeDays: 50,
				Rating:         3.6,
				ReturnRate:     0.12,
			},
			expected: Low,
		},
	}

	c := NewRuleClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.features))
		})
	}
}

// ==========================
// Boundary Tie-Break Tests
// ==========================

// A value exactly at a threshold must land in the riskier band for every
// threshold the table defines.
func TestRuleClassifier_BoundaryTieBreak(t *testing.T) {
	tests := []struct {
		name     string
		features FeatureSet
		points   int
	}{
		{"stock at severe cutoff", FeatureSet{StockAmount: 600, WeeklySales: 20, Rating: 5}, 2},
		{"stock at elevated cutoff", FeatureSet{StockAmount: 300, WeeklySales: 20, Rating: 5}, 1},
		{"sales at severe cutoff", FeatureSet{WeeklySales: 3, Rating: 5}, 2},
		{"sales at elevated cutoff", FeatureSet{WeeklySales: 10, Rating: 5}, 1},
		{"age at severe cutoff", FeatureSet{ProductAgeDays: 250, WeeklySales: 20, Rating: 5}, 2},
		{"age at elevated cutoff", FeatureSet{ProductAgeDays: 120, WeeklySales: 20, Rating: 5}, 1},
		{"rating at severe cutoff", FeatureSet{WeeklySales: 20, Rating: 2.5}, 2},
		{"rating at elevated cutoff", FeatureSet{WeeklySales: 20, Rating: 3.5}, 1},
		{"return rate at severe cutoff", FeatureSet{WeeklySales: 20, Rating: 5, ReturnRate: 0.20}, 2},
		{"return rate at elevated cutoff", FeatureSet{WeeklySales: 20, Rating: 5, ReturnRate: 0.10}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := 0
			for _, th := range thresholds {
				pts, _ := th.contribution(tt.features)
				if pts > 0 {
					total += pts
				}
			}
			assert.Equal(t, tt.points, total, "positive contributions should come from the boundary feature only")
		})
	}
}

func TestRuleClassifier_JustInsideHealthySide(t *testing.T) {
	c := NewRuleClassifier()

	// One step past each cutoff on the healthy side must not trigger.
	features := FeatureSet{
		StockAmount:    299,
		WeeklySales:    11,
		ProductAgeDays: 119,
		Rating:         3.6,
		ReturnRate:     0.09,
	}
	assert.Equal(t, Low, c.Classify(features))
	assert.Empty(t, NewExplainer().Explain(features))
}

// ==========================
// Properties
// ==========================

func TestRuleClassifier_Deterministic(t *testing.T) {
	c := NewRuleClassifier()
	for i := 0; i < 10; i++ {
		assert.Equal(t, High, c.Classify(distressedFeatures()))
		assert.Equal(t, Low, c.Classify(healthyFeatures()))
	}
}

func TestRuleClassifier_TotalOverDomain(t *testing.T) {
	c := NewRuleClassifier()
	samples := []FeatureSet{
		{},
		{StockAmount: 1e6, WeeklySales: 0, ProductAgeDays: 1e4, Rating: 0, ReturnRate: 1},
		{StockAmount: 599.99, WeeklySales: 3.01, ProductAgeDays: 249.99, Rating: 2.51, ReturnRate: 0.1999},
		healthyFeatures(),
		distressedFeatures(),
	}
	for _, f := range samples {
		label := c.Classify(f)
		assert.Contains(t, []Label{Low, Medium, High}, label)
	}
}
