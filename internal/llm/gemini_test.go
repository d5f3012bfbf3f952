package llm

import "testing"

func TestGeminiModelNames(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		// Full IDs pass through untouched.
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, c := range cases {
		if got := resolveModel(c.in, geminiModels); got != c.want {
			t.Errorf("resolveModel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	// The shape of the coach plan schema: nested objects, an array of
	// objects, an enum and required fields.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{"type": "string"},
					},
					"required": []any{"text"},
				},
			},
			"nivel":     map[string]any{"type": "string", "enum": []any{"3-4", "5-6"}},
			"num_pasos": map[string]any{"type": "integer"},
		},
		"required": []any{"title", "steps"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("got %d properties, want 4", len(schema.Properties))
	}
	if schema.Properties["title"].Type != "STRING" {
		t.Errorf("title type = %s", schema.Properties["title"].Type)
	}
	if schema.Properties["num_pasos"].Type != "INTEGER" {
		t.Errorf("num_pasos type = %s", schema.Properties["num_pasos"].Type)
	}
	if len(schema.Properties["nivel"].Enum) != 2 {
		t.Errorf("nivel enum = %v", schema.Properties["nivel"].Enum)
	}
	steps := schema.Properties["steps"]
	if steps.Type != "ARRAY" {
		t.Fatalf("steps type = %s, want ARRAY", steps.Type)
	}
	if steps.Items.Properties["text"].Type != "STRING" {
		t.Errorf("steps item text type = %s", steps.Items.Properties["text"].Type)
	}
	if len(steps.Items.Required) != 1 || steps.Items.Required[0] != "text" {
		t.Errorf("steps item required = %v", steps.Items.Required)
	}
	if len(schema.Required) != 2 {
		t.Errorf("required = %v", schema.Required)
	}
}
