// internal/risk/artifact.go
package risk

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	ErrArtifactNotFound = errors.New("ARTIFACT_NOT_FOUND")
	ErrArtifactInvalid  = errors.New("ARTIFACT_INVALID")
)

// Artifact is the on-disk representation of a pre-trained classifier: a
// multinomial linear model over the canonical five-feature vector. The
// engine treats it as opaque beyond Predict; training and persistence
// happen elsewhere.
type Artifact struct {
	ModelVersion string      `json:"model_version"`
	Features     []string    `json:"features"`
	Classes      []string    `json:"classes"`
	Weights      [][]float64 `json:"weights"`
	Intercepts   []float64   `json:"intercepts"`
}

// ModelPredictor wraps a successfully loaded artifact. Immutable after
// LoadArtifact returns; concurrent Predict calls need no locking.
type ModelPredictor struct {
	artifact Artifact
	classes  []Label
}

// LoadArtifact reads and validates a classifier artifact. It is called
// once at process start; a missing, corrupt, or schema-incompatible
// artifact returns an error and the caller degrades to the rule-based
// path for the lifetime of the process. There is no mid-process reload.
func LoadArtifact(path string) (*ModelPredictor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrArtifactInvalid, path, err)
	}

	var art Artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrArtifactInvalid, path, err)
	}

	classes, err := validateArtifact(&art)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactInvalid, err)
	}

	return &ModelPredictor{artifact: art, classes: classes}, nil
}

func validateArtifact(art *Artifact) ([]Label, error) {
	if len(art.Features) != len(FeatureOrder) {
		return nil, fmt.Errorf("expected %d features, got %d", len(FeatureOrder), len(art.Features))
	}
	for i, name := range art.Features {
		if name != FeatureOrder[i] {
			return nil, fmt.Errorf("feature %d is %q, expected %q", i, name, FeatureOrder[i])
		}
	}

	if len(art.Classes) == 0 {
		return nil, errors.New("artifact declares no classes")
	}
	classes := make([]Label, len(art.Classes))
	for i, c := range art.Classes {
		label, err := ParseLabel(c)
		if err != nil {
			return nil, err
		}
		classes[i] = label
	}

	if len(art.Weights) != len(art.Classes) {
		return nil, fmt.Errorf("expected %d weight rows, got %d", len(art.Classes), len(art.Weights))
	}
	for i, row := range art.Weights {
		if len(row) != len(FeatureOrder) {
			return nil, fmt.Errorf("weight row %d has %d entries, expected %d", i, len(row), len(FeatureOrder))
		}
	}
	if len(art.Intercepts) != len(art.Classes) {
		return nil, fmt.Errorf("expected %d intercepts, got %d", len(art.Classes), len(art.Intercepts))
	}

	return classes, nil
}

// Predict runs a single forward pass and returns the argmax class. No
// feature engineering happens here beyond assembling the ordered vector.
func (m *ModelPredictor) Predict(f FeatureSet) Label {
	vec := f.Vector()
	best := 0
	bestScore := m.decision(0, vec)
	for i := 1; i < len(m.classes); i++ {
		if s := m.decision(i, vec); s > bestScore {
			best, bestScore = i, s
		}
	}
	return m.classes[best]
}

func (m *ModelPredictor) decision(class int, vec []float64) float64 {
	s := m.artifact.Intercepts[class]
	for i, w := range m.artifact.Weights[class] {
		s += w * vec[i]
	}
	return s
}

// Version reports the artifact's declared model version.
func (m *ModelPredictor) Version() string {
	return m.artifact.ModelVersion
}
