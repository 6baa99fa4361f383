package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const documentSchemaName = "dealer-dashboard.schema.json"

var defaultDocumentValidator = NewDocumentValidator(DocumentSchema())

// DocumentSchema returns the JSON schema for model documents.
func DocumentSchema() map[string]any {
	scalar := map[string]any{"type": []string{"string", "number"}}
	row := map[string]any{
		"type":                 "object",
		"additionalProperties": scalar,
	}
	card := map[string]any{
		"type":     "object",
		"required": []string{"label", "value"},
		"properties": map[string]any{
			"label":      map[string]any{"type": "string"},
			"value":      scalar,
			"delta":      map[string]any{"type": "string"},
			"color_hint": map[string]any{"type": "string"},
		},
		"additionalProperties": false,
	}
	percent := map[string]any{"type": "number", "minimum": 0, "maximum": 100}
	widget := map[string]any{
		"type":     "object",
		"required": []string{"kind"},
		"properties": map[string]any{
			"kind":  map[string]any{"enum": []string{"chart", "table", "metric", "progress", "panel"}},
			"title": map[string]any{"type": "string"},
			"width": map[string]any{"type": "integer", "minimum": 0, "maximum": 12},
			"chart": map[string]any{
				"type":     "object",
				"required": []string{"type", "category", "series", "rows"},
				"properties": map[string]any{
					"type":     map[string]any{"enum": []string{"bar", "line", "area"}},
					"category": map[string]any{"type": "string", "minLength": 1},
					"series": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"rows":    map[string]any{"type": "array", "items": row},
					"palette": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
				"additionalProperties": false,
			},
			"table": map[string]any{
				"type":     "object",
				"required": []string{"columns", "rows"},
				"properties": map[string]any{
					"columns": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"rows": map[string]any{"type": "array", "items": row},
					"formats": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "string"},
					},
					"highlights": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type":     "object",
							"required": []string{"style"},
							"properties": map[string]any{
								"style": map[string]any{"enum": []string{"gradient", "bar"}},
								"color": map[string]any{"type": "string"},
							},
							"additionalProperties": false,
						},
					},
				},
				"additionalProperties": false,
			},
			"metric": card,
			"progress": map[string]any{
				"type":     "object",
				"required": []string{"value"},
				"properties": map[string]any{
					"value": percent,
					"label": map[string]any{"type": "string"},
				},
				"additionalProperties": false,
			},
			"panel": map[string]any{
				"type":     "object",
				"required": []string{"title", "body"},
				"properties": map[string]any{
					"title":    map[string]any{"type": "string"},
					"body":     map[string]any{"type": "string"},
					"progress": percent,
				},
				"additionalProperties": false,
			},
		},
		"additionalProperties": false,
	}
	return map[string]any{
		"type":     "object",
		"required": []string{"dashboard"},
		"properties": map[string]any{
			"version": map[string]any{"type": "string"},
			"dashboard": map[string]any{
				"type":     "object",
				"required": []string{"title", "sections"},
				"properties": map[string]any{
					"title":        map[string]any{"type": "string"},
					"last_updated": map[string]any{"type": "string"},
					"headline":     map[string]any{"type": "array", "items": card},
					"sections": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type":     "object",
							"required": []string{"title", "widgets"},
							"properties": map[string]any{
								"title":   map[string]any{"type": "string"},
								"heading": map[string]any{"type": "string"},
								"widgets": map[string]any{"type": "array", "items": widget},
							},
							"additionalProperties": false,
						},
					},
				},
				"additionalProperties": false,
			},
		},
		"additionalProperties": false,
	}
}

// DocumentValidator checks raw documents against a JSON schema compiled on
// first use.
type DocumentValidator struct {
	schema map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// NewDocumentValidator builds a validator for the given schema.
func NewDocumentValidator(schema map[string]any) *DocumentValidator {
	return &DocumentValidator{schema: schema}
}

// Validate checks a decoded YAML/JSON document. Schema violations come back
// as *ValidationError.
func (v *DocumentValidator) Validate(document any) error {
	schema, err := v.compile()
	if err != nil {
		return err
	}
	data, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("dashboard: marshal document: %w", err)
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("dashboard: normalize document: %w", err)
	}
	if err := schema.Validate(payload); err != nil {
		var schemaErr *jsonschema.ValidationError
		if errors.As(err, &schemaErr) {
			return &ValidationError{Issues: schemaIssues(schemaErr)}
		}
		return fmt.Errorf("dashboard: document failed schema validation: %w", err)
	}
	return nil
}

func (v *DocumentValidator) compile() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		data, err := json.Marshal(v.schema)
		if err != nil {
			v.err = fmt.Errorf("dashboard: marshal document schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(documentSchemaName, bytes.NewReader(data)); err != nil {
			v.err = fmt.Errorf("dashboard: load document schema: %w", err)
			return
		}
		v.compiled, v.err = compiler.Compile(documentSchemaName)
		if v.err != nil {
			v.err = fmt.Errorf("dashboard: compile document schema: %w", v.err)
		}
	})
	return v.compiled, v.err
}

func schemaIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if len(err.Causes) == 0 {
		return []ValidationIssue{{
			Path:    jsonPointerToPath(err.InstanceLocation),
			Message: err.Message,
		}}
	}
	var issues []ValidationIssue
	for _, cause := range err.Causes {
		issues = append(issues, schemaIssues(cause)...)
	}
	return issues
}

// jsonPointerToPath turns "/dashboard/sections/0/title" into
// "dashboard.sections[0].title".
func jsonPointerToPath(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return ""
	}
	var b strings.Builder
	for i, part := range strings.Split(pointer, "/") {
		part = strings.NewReplacer("~1", "/", "~0", "~").Replace(part)
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(part string) bool {
	if part == "" {
		return false
	}
	for _, r := range part {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
