// internal/risk/explain.go
package risk

// Explainer turns a feature set into the ordered list of triggered risk
// conditions. It walks the same threshold table as RuleClassifier, so a
// band that contributed points always has a matching reason string and
// vice versa. It never consults the model: explanations describe the
// feature-level signals and stay meaningful even when the model and the
// rules disagree on the final label.
type Explainer struct{}

func NewExplainer() *Explainer {
	return &Explainer{}
}

// Explain returns one reason per triggered band, in canonical feature
// order. A healthy feature set yields an empty (non-nil) slice; no
// reassuring filler is emitted for Low risk.
func (e *Explainer) Explain(f FeatureSet) []string {
	reasons := make([]string, 0, len(thresholds))
	for _, t := range thresholds {
		if _, reason := t.contribution(f); reason != "" {
			reasons = append(reasons, reason)
		}
	}
	return reasons
}
