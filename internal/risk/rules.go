// internal/risk/rules.go
package risk

// RuleClassifier is the deterministic fallback classifier. It sums the
// per-feature contributions from the shared threshold table and maps the
// total onto the label enumeration. Pure function of its input, no
// state, safe for concurrent use.
type RuleClassifier struct{}

func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{}
}

// Classify maps a feature set to a risk label.
func (c *RuleClassifier) Classify(f FeatureSet) Label {
	score := 0
	for _, t := range thresholds {
		pts, _ := t.contribution(f)
		score += pts
	}
	switch {
	case score >= highCutoff:
		return High
	case score >= mediumCutoff:
		return Medium
	default:
		return Low
	}
}
