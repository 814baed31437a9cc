package explanation

import (
	"context"
	"fmt"
	"strings"

	"github.com/r-okamoto/explainer/internal/inference"
)

// Explainer wires the inference client and the schema validator into the
// explain request/validate cycle used by every UI surface.
type Explainer struct {
	client    inference.Client
	validator *SchemaValidator
}

func NewExplainer(client inference.Client) (*Explainer, error) {
	schemaValidator, err := NewSchemaValidator()
	if err != nil {
		return nil, fmt.Errorf("NewSchemaValidator() > %w", err)
	}

	return &Explainer{
		client:    client,
		validator: schemaValidator,
	}, nil
}

// Explain sends the paragraph to the model and validates the returned JSON.
// Empty input is rejected before any network call.
func (e *Explainer) Explain(ctx context.Context, paragraph string) (Explanation, error) {
	paragraph = strings.TrimSpace(paragraph)
	if paragraph == "" {
		return Explanation{}, ErrEmptyParagraph
	}

	response, err := e.client.Explain(ctx, inference.ExplainRequest{Paragraph: paragraph})
	if err != nil {
		return Explanation{}, fmt.Errorf("client.Explain() > %w", err)
	}

	result, err := e.validator.Parse(response.Content)
	if err != nil {
		return Explanation{}, err
	}
	return result, nil
}
