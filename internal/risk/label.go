// internal/risk/label.go
package risk

import "fmt"

// Label is the closed risk enumeration. Severity order is Low < Medium
// < High; the engine never compares labels, the order only matters to
// consumers rendering them.
type Label string

const (
	Low    Label = "Low"
	Medium Label = "Medium"
	High   Label = "High"
)

// ParseLabel validates an externally supplied label, e.g. a class name
// declared by a model artifact.
func ParseLabel(s string) (Label, error) {
	switch Label(s) {
	case Low, Medium, High:
		return Label(s), nil
	}
	return "", fmt.Errorf("unknown risk label %q", s)
}
