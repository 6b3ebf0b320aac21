package api

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Request schemas check shape only. Ranges and enum values are left to the
// engine so its error codes reach the caller.

const decimalSchema = `{"type": ["number", "string"]}`

const profileSchema = `{
	"type": "object",
	"required": ["base_hourly_rate"],
	"properties": {
		"base_hourly_rate": ` + decimalSchema + `,
		"target_annual_income": ` + decimalSchema + `,
		"typical_weekly_hours": ` + decimalSchema + `,
		"currency": {"type": "string"}
	}
}`

const projectTypeSchema = `{
	"type": "object",
	"required": ["name", "complexity", "typical_duration_days"],
	"properties": {
		"name": {"type": "string"},
		"description": {"type": "string"},
		"complexity": {"type": "integer"},
		"typical_duration_days": {"type": "integer"}
	}
}`

const generateRequestSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["profile", "project_type", "client_type", "positioning"],
	"properties": {
		"profile": ` + profileSchema + `,
		"project_type": ` + projectTypeSchema + `,
		"client_type": {"type": "string"},
		"positioning": {"type": "string"},
		"include_breakdown": {"type": "boolean"}
	}
}`

const setupRequestSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["profile", "project_types", "client_type", "positioning"],
	"properties": {
		"profile": ` + profileSchema + `,
		"project_types": {"type": "array", "items": ` + projectTypeSchema + `},
		"client_type": {"type": "string"},
		"positioning": {"type": "string"}
	}
}`

var (
	generateSchema = mustSchema(generateRequestSchema)
	setupSchema    = mustSchema(setupRequestSchema)
)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic("api: invalid request schema: " + err.Error())
	}
	return schema
}

// schemaViolation is returned when a body is valid JSON of the wrong shape.
type schemaViolation struct {
	details []string
}

func (e *schemaViolation) Error() string {
	return "request does not match schema: " + strings.Join(e.details, "; ")
}

// validateBody reports malformed JSON as a plain error and a shape mismatch
// as *schemaViolation.
func validateBody(schema *gojsonschema.Schema, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		details[i] = desc.String()
	}
	return &schemaViolation{details: details}
}
