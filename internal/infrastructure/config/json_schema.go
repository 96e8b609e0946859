package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of the configuration file.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "toml",
		ExpandedStruct: true,
	}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/dumbed/config.schema.json"
	schema.Title = "dumbed configuration"
	schema.Description = "Configuration schema for dumbed, the editor layout manager"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes the JSON schema next to the config file.
// It is called whenever a default config is created.
func GenerateSchemaFile() error {
	schemaFile, err := GetSchemaFile()
	if err != nil {
		return fmt.Errorf("failed to get schema path: %w", err)
	}

	data, err := GenerateSchema()
	if err != nil {
		return err
	}
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
