package content

// CatalogSchema is the JSON schema authored catalogs are validated
// against before any structural graph checks run.
var CatalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"subjects": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"title": map[string]any{"type": "string", "minLength": 1},
					"prerequisites": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string", "minLength": 1},
					},
					"position":   map[string]any{"type": "integer", "minimum": 0},
					"created_at": map[string]any{"type": "string"},
				},
				"required":             []any{"id", "title", "position"},
				"additionalProperties": false,
			},
		},
		"lessons": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":            map[string]any{"type": "string", "minLength": 1},
					"subject_id":    map[string]any{"type": "string", "minLength": 1},
					"title":         map[string]any{"type": "string", "minLength": 1},
					"position":      map[string]any{"type": "integer", "minimum": 0},
					"is_reviewable": map[string]any{"type": "boolean"},
					"audio_preset":  map[string]any{"type": "string"},
					"created_at":    map[string]any{"type": "string"},
				},
				"required":             []any{"id", "subject_id", "title", "position"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"subjects", "lessons"},
	"additionalProperties": false,
}
