// internal/risk/engine.go
package risk

// Predictor produces a risk label for a feature set. ModelPredictor and
// RuleClassifier both satisfy it; tests substitute stubs.
type Predictor interface {
	Predict(f FeatureSet) Label
}

// Classify makes RuleClassifier usable wherever a Predictor is expected.
func (c *RuleClassifier) Predict(f FeatureSet) Label {
	return c.Classify(f)
}

// Scoring path names, reported by health checks and metric labels.
const (
	PathModel = "model"
	PathRules = "rules"
)

// Result is the sole output of a scoring call: the label and the ordered
// explanation list. It carries no reference to the input and is
// discarded once the response is written.
type Result struct {
	Risk         Label    `json:"risk"`
	Explanations []string `json:"explanations"`
}

// Engine orchestrates a scoring call: clamp the features to their
// domains, pick the model path when an artifact was loaded and the rule
// path otherwise, and attach explanations regardless of path. Path
// selection happens only here; neither predictor knows about the other.
type Engine struct {
	model Predictor
	rules *RuleClassifier
	expl  *Explainer
}

// NewEngine builds an engine around an optional model predictor. Pass
// nil when no artifact could be loaded; the engine then classifies with
// the rule-based path for the lifetime of the process.
func NewEngine(model Predictor) *Engine {
	return &Engine{
		model: model,
		rules: NewRuleClassifier(),
		expl:  NewExplainer(),
	}
}

// Score classifies a feature set. Total over the declared numeric
// domains: well-formed input never produces an error.
func (e *Engine) Score(f FeatureSet) Result {
	f = f.Clamp()

	var label Label
	if e.model != nil {
		label = e.model.Predict(f)
	} else {
		label = e.rules.Classify(f)
	}

	return Result{
		Risk:         label,
		Explanations: e.expl.Explain(f),
	}
}

// Path reports which scoring path the engine is using.
func (e *Engine) Path() string {
	if e.model != nil {
		return PathModel
	}
	return PathRules
}
