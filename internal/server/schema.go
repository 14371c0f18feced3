// internal/server/schema.go
package server

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// predictRequestSchema rejects anything but a flat object carrying the
// five numeric inventory signals.
const predictRequestSchema = `{
	"type": "object",
	"properties": {
		"stock_amount":     {"type": "number"},
		"weekly_sales":     {"type": "number"},
		"product_age_days": {"type": "number"},
		"rating":           {"type": "number"},
		"return_rate":      {"type": "number"}
	},
	"required": ["stock_amount", "weekly_sales", "product_age_days", "rating", "return_rate"],
	"additionalProperties": false
}`

var predictSchema = gojsonschema.NewStringLoader(predictRequestSchema)

// validatePredictRequest checks the raw request body against the
// predict schema. It returns one message per violation; an empty slice
// means the body is valid.
func validatePredictRequest(body []byte) ([]string, error) {
	documentLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(predictSchema, documentLoader)
	if err != nil {
		// Malformed JSON never reaches schema evaluation
		return []string{fmt.Sprintf("body: %v", err)}, nil
	}

	if result.Valid() {
		return nil, nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return details, nil
}
