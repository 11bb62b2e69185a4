package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// DefaultRuntimePackage is the Java package the generated classes
// import the support types (Optional, InputFieldWriter,
// InputFieldMarshaller) from when the config does not name one.
const DefaultRuntimePackage = "graphql.runtime"

// Config represents the config file.
type Config struct {
	Schema         []string          `yaml:"schema,omitempty"`
	Endpoint       *EndpointConfig   `yaml:"endpoint,omitempty"`
	Output         OutputConfig      `yaml:"output"`
	ScalarMappings map[string]string `yaml:"scalar_mappings,omitempty"`
	Generate       GenerateConfig    `yaml:"generate,omitempty"`

	// LoadedSchema is filled by LoadSchema, not by the config file.
	LoadedSchema *ast.Schema `yaml:"-"`
}

// OutputConfig names where generated Java sources go and which packages
// they belong to.
type OutputConfig struct {
	Dir            string `yaml:"dir"`
	Package        string `yaml:"package"`
	RuntimePackage string `yaml:"runtime_package,omitempty"`
}

// GenerateConfig toggles the individual generators. Unset values mean
// enabled.
type GenerateConfig struct {
	InputTypes *bool `yaml:"input_types,omitempty"`
	EnumTypes  *bool `yaml:"enum_types,omitempty"`
}

func (c GenerateConfig) InputTypesEnabled() bool {
	return c.InputTypes == nil || *c.InputTypes
}

func (c GenerateConfig) EnumTypesEnabled() bool {
	return c.EnumTypes == nil || *c.EnumTypes
}

// EndpointConfig are the allowed options for the 'endpoint' config.
type EndpointConfig struct {
	Headers http.Header  `yaml:"headers,omitempty"`
	URL     string       `yaml:"url"`
	Client  *http.Client `yaml:"-"`
}

// FindConfigFile returns the first of the candidate file names that
// exists under dir.
func FindConfigFile(dir string, names []string) (string, error) {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no config file found in %s (looked for %v)", dir, names)
}

// Load loads and parses the config file.
func Load(configFilename string) (*Config, error) {
	configContent, err := os.ReadFile(configFilename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	var c Config

	yamlDecoder := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(configContent)))), yaml.DisallowUnknownField())
	if err := yamlDecoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	// validation
	if len(c.Schema) != 0 && c.Endpoint != nil {
		return nil, errors.New("'schema' and 'endpoint' both specified. Use schema to load from local files, use endpoint to load from a remote server (using introspection)")
	}

	if len(c.Schema) == 0 && c.Endpoint == nil {
		return nil, errors.New("neither 'schema' nor 'endpoint' specified. Use schema to load from local files, use endpoint to load from a remote server (using introspection)")
	}

	if c.Output.Dir == "" {
		return nil, errors.New("'output.dir' must be set")
	}

	if c.Output.Package == "" {
		return nil, errors.New("'output.package' must be set")
	}

	if c.Output.RuntimePackage == "" {
		c.Output.RuntimePackage = DefaultRuntimePackage
	}

	return &c, nil
}

// SchemaFiles expands the schema globs into the list of matching files.
func (c *Config) SchemaFiles() ([]string, error) {
	var files []string
	for _, pattern := range c.Schema {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to glob schema filename %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("schema pattern %q matched no files", pattern)
		}
		for _, m := range matches {
			if !slices.Contains(files, m) {
				files = append(files, m)
			}
		}
	}
	return files, nil
}

// LoadSchema fills LoadedSchema from local SDL files or from the
// configured endpoint via introspection.
func (c *Config) LoadSchema(ctx context.Context) error {
	switch {
	case len(c.Schema) != 0:
		files, err := c.SchemaFiles()
		if err != nil {
			return err
		}

		sources := make([]*ast.Source, 0, len(files))
		for _, filename := range files {
			content, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("unable to read schema %s: %w", filename, err)
			}
			sources = append(sources, &ast.Source{Name: filename, Input: string(content)})
		}

		schema, err := gqlparser.LoadSchema(sources...)
		if err != nil {
			return fmt.Errorf("load local schema failed: %w", err)
		}
		c.LoadedSchema = schema
	case c.Endpoint != nil:
		httpClient := c.Endpoint.Client
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		schema, err := introspectionSchema(ctx, httpClient, c.Endpoint.URL, c.Endpoint.Headers)
		if err != nil {
			return fmt.Errorf("introspect schema failed: %w", err)
		}
		c.LoadedSchema = schema
	default:
		return errors.New("neither 'schema' nor 'endpoint' specified")
	}

	return nil
}
