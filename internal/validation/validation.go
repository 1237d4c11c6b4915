// Package validation checks to-do payloads at the transport edge.
//
// The wire shape (endTime as string or null) is validated with a JSON
// Schema, then coerced into the internal shape (typed *time.Time). One
// canonical properties block is shared by the create and update schemas
// so the two cannot drift.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const todoFields = `
	"todoTitle": {"type": "string", "minLength": 1, "maxLength": 30},
	"todoText":  {"type": "string", "maxLength": 100},
	"endTime":   {"type": ["string", "null"]}`

var (
	createSchema = jsonschema.MustCompileString("create-todo.json", fmt.Sprintf(`{
		"type": "object",
		"properties": {%s},
		"required": ["todoTitle"]
	}`, todoFields))

	updateSchema = jsonschema.MustCompileString("update-todo.json", fmt.Sprintf(`{
		"type": "object",
		"properties": {"id": {"type": "string", "minLength": 1},%s},
		"required": ["id", "todoTitle"]
	}`, todoFields))
)

// FieldError names the first failing field of a payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var fieldMessages = map[string]string{
	"id":        "id is required",
	"todoTitle": "title is required and must be at most 30 characters",
	"todoText":  "text must be at most 100 characters",
	"endTime":   "endTime must be a date string or null",
}

// CreateInput is the internal shape of a create payload.
type CreateInput struct {
	Title   string
	Text    string
	EndTime *time.Time
}

// UpdateInput is the internal shape of an update payload. The id comes
// from the request path, not the body.
type UpdateInput struct {
	ID      string
	Title   string
	Text    string
	EndTime *time.Time
}

// DecodeCreate validates raw JSON against the create schema and coerces
// it into the internal shape. Missing todoText becomes "".
func DecodeCreate(raw []byte) (CreateInput, error) {
	doc, err := validate(raw, createSchema)
	if err != nil {
		return CreateInput{}, err
	}

	endTime, err := coerceEndTime(doc["endTime"])
	if err != nil {
		return CreateInput{}, err
	}

	return CreateInput{
		Title:   stringField(doc, "todoTitle"),
		Text:    stringField(doc, "todoText"),
		EndTime: endTime,
	}, nil
}

// DecodeUpdate injects id into the payload before validating against the
// update schema, mirroring how the route parameter overrides the body.
func DecodeUpdate(raw []byte, id string) (UpdateInput, error) {
	doc, err := decodeObject(raw)
	if err != nil {
		return UpdateInput{}, err
	}
	doc["id"] = id

	if err := updateSchema.Validate(doc); err != nil {
		return UpdateInput{}, toFieldError(err)
	}

	endTime, err := coerceEndTime(doc["endTime"])
	if err != nil {
		return UpdateInput{}, err
	}

	return UpdateInput{
		ID:      id,
		Title:   stringField(doc, "todoTitle"),
		Text:    stringField(doc, "todoText"),
		EndTime: endTime,
	}, nil
}

func validate(raw []byte, schema *jsonschema.Schema) (map[string]interface{}, error) {
	doc, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, toFieldError(err)
	}
	return doc, nil
}

func decodeObject(raw []byte) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &FieldError{Field: "body", Message: "invalid JSON payload"}
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	return doc, nil
}

// coerceEndTime accepts an ISO date or RFC3339 timestamp string, or
// nil/absent for "no deadline". The schema has already rejected every
// other JSON type.
func coerceEndTime(v interface{}) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, &FieldError{Field: "endTime", Message: fieldMessages["endTime"]}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, &FieldError{Field: "endTime", Message: fieldMessages["endTime"]}
}

func stringField(doc map[string]interface{}, key string) string {
	s, _ := doc[key].(string)
	return s
}

// toFieldError walks to the deepest schema violation and reports its
// field with a stable human-readable message.
func toFieldError(err error) error {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &FieldError{Field: "body", Message: "invalid payload"}
	}
	leaf := verr
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	field := strings.TrimPrefix(leaf.InstanceLocation, "/")
	if field == "" {
		// A required-property failure points at the object root; the
		// missing key is named in the message.
		for key := range fieldMessages {
			if strings.Contains(leaf.Message, "'"+key+"'") {
				field = key
				break
			}
		}
	}

	msg, ok := fieldMessages[field]
	if !ok {
		field, msg = "body", "invalid payload"
	}
	return &FieldError{Field: field, Message: msg}
}
