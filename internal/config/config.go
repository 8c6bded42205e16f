package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the settings used when OWS documents are written.
type Config struct {
	Indent         string `yaml:"indent"`
	XMLDeclaration bool   `yaml:"xmlDeclaration"`
	// Namespaces maps a prefix to a namespace URI.
	Namespaces map[string]string `yaml:"namespaces"`
	// SchemaLocations maps a namespace URI to a schema URL, ${VAR}
	// references are expanded by the caller.
	SchemaLocations map[string]string `yaml:"schemaLocations"`
}

// NewConfig returns a new decoded Config struct
func NewConfig(configPath string) (*Config, error) {
	// Open config file
	file, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Parse decodes a Config from r
func Parse(r io.Reader) (*Config, error) {
	// Create config structure
	config := &Config{}

	// Init new YAML decode
	d := yaml.NewDecoder(r)

	// Start YAML decoding
	if err := d.Decode(&config); err != nil && err != io.EOF {
		return nil, err
	}

	return config, nil
}
