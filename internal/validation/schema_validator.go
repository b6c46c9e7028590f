package validation

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON documents against one compiled JSON schema
type SchemaValidator interface {
	ValidateBytes(data []byte) error
}

type schemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles schemaJSON under the given resource name
func NewSchemaValidator(name string, schemaJSON []byte) (SchemaValidator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &schemaValidator{schema: schema}, nil
}

// NewMissionCatalogValidator returns a validator for mission catalog files
func NewMissionCatalogValidator() (SchemaValidator, error) {
	return NewSchemaValidator(MissionCatalogSchemaName, missionCatalogSchema)
}

// ValidateBytes validates JSON data bytes against the schema
func (v *schemaValidator) ValidateBytes(data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := v.schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError flattens a schema error tree into one line per failure
func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var errors []string
		collectErrors(validationErr, &errors)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(errors, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

func collectErrors(err *jsonschema.ValidationError, errors *[]string) {
	// Leaves carry the useful locations; parents only repeat them
	if len(err.Causes) == 0 {
		*errors = append(*errors, formatError(err))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, errors)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(keywordPath, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
