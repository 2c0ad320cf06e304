package remote

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

func projectSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"id", "title"},
		Properties: map[string]*jsonschema.Schema{
			"id":          {Type: "integer"},
			"title":       {Type: "string"},
			"description": {Types: []string{"null", "string"}},
			"image":       {Types: []string{"null", "string"}},
			"technologies": {
				Types: []string{"null", "array"},
				Items: &jsonschema.Schema{Type: "string"},
			},
			"githubUrl": {Types: []string{"null", "string"}},
			"liveUrl":   {Types: []string{"null", "string"}},
			"category":  {Types: []string{"null", "string"}},
			"featured":  {Types: []string{"null", "boolean"}},
			"createdAt": {Types: []string{"null", "string"}},
		},
	}
}

func messageSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"id", "name", "email", "message"},
		Properties: map[string]*jsonschema.Schema{
			"id":        {Type: "integer"},
			"name":      {Type: "string"},
			"email":     {Type: "string"},
			"subject":   {Types: []string{"null", "string"}},
			"message":   {Type: "string"},
			"createdAt": {Types: []string{"null", "string"}},
		},
	}
}

func uploadSchema() *jsonschema.Schema {
	minLen := 1
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"url"},
		Properties: map[string]*jsonschema.Schema{
			"id":  {Type: "integer"},
			"url": {Type: "string", MinLength: &minLen},
		},
	}
}

func listOf(item *jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "array", Items: item}
}

var (
	projectResolved     = mustResolve(projectSchema())
	projectListResolved = mustResolve(listOf(projectSchema()))
	messageResolved     = mustResolve(messageSchema())
	messageListResolved = mustResolve(listOf(messageSchema()))
	uploadResolved      = mustResolve(uploadSchema())
)

func mustResolve(schema *jsonschema.Schema) *jsonschema.Resolved {
	resolved, err := schema.Resolve(nil)
	if err != nil {
		panic(err)
	}
	return resolved
}

// decode validates data against schema before unmarshalling it into out.
func decode(data []byte, schema *jsonschema.Resolved, out any) error {
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return invalidResponse(err)
	}
	if err := schema.Validate(instance); err != nil {
		return invalidResponse(err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return invalidResponse(err)
	}
	return nil
}
