package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// planTestSchema is a trimmed version of the coach plan schema, enough to
// exercise required fields, enums and nesting.
func planTestSchema() *Schema {
	return &Schema{
		Name:        "plan-test",
		Description: "A guided plan for one exercise",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"steps": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"text": map[string]any{"type": "string"},
						},
						"required": []any{"text"},
					},
				},
				"nivel":        map[string]any{"type": "string", "enum": []any{"3-4", "5-6"}},
				"final_answer": map[string]any{"type": "string"},
			},
			"required": []any{"title", "steps", "final_answer"},
		},
	}
}

func TestValidateAcceptsWellFormedPlan(t *testing.T) {
	raw := json.RawMessage(`{
		"title": "Sumar fracciones",
		"steps": [{"text": "¿Cuál es el m.c.m. de 3 y 7?"}],
		"nivel": "5-6",
		"final_answer": "29/21"
	}`)
	if err := validateResponse(planTestSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateAcceptsPlanWithoutOptionalFields(t *testing.T) {
	raw := json.RawMessage(`{"title":"Capitales","steps":[{"text":"¿Capital de Francia?"}],"final_answer":"parís"}`)
	if err := validateResponse(planTestSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsMissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"title":"Capitales","steps":[{"text":"¿Capital de Francia?"}]}`)
	err := validateResponse(planTestSchema(), raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestValidateRejectsWrongType(t *testing.T) {
	raw := json.RawMessage(`{"title":"X","steps":"no es una lista","final_answer":"1"}`)
	err := validateResponse(planTestSchema(), raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestValidateRejectsUnknownEnumValue(t *testing.T) {
	raw := json.RawMessage(`{"title":"X","steps":[{"text":"?"}],"nivel":"bachillerato","final_answer":"1"}`)
	err := validateResponse(planTestSchema(), raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestValidateRejectsStepWithoutText(t *testing.T) {
	raw := json.RawMessage(`{"title":"X","steps":[{}],"final_answer":"1"}`)
	err := validateResponse(planTestSchema(), raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	err := validateResponse(planTestSchema(), json.RawMessage(`el modelo se disculpa en prosa`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestValidateRejectsEmptyReply(t *testing.T) {
	if err := validateResponse(planTestSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty reply")
	}
}

func TestValidateNilSchemaIsNoOp(t *testing.T) {
	raw := json.RawMessage(`{"cualquier":"cosa"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
