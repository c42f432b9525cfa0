package catalogue

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/API4KBs/kmdp-models-sub004/errors"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	})
	return schema, schemaErr
}

// Schema returns the JSON schema of catalogue documents.
func Schema() []byte {
	return append([]byte(nil), schemaJSON...)
}

// Document is a decoded catalogue document.
type Document struct {
	Terms  []TermSpec   `yaml:"terms" json:"terms,omitempty"`
	Series []SeriesSpec `yaml:"series" json:"series,omitempty"`
}

// TermSpec declares a single term. A non-nil Ancestors, even empty, gives the
// term the closure capability.
type TermSpec struct {
	Kind      string    `yaml:"kind" json:"kind"`
	Tag       string    `yaml:"tag" json:"tag"`
	UUID      string    `yaml:"uuid" json:"uuid,omitempty"`
	Label     string    `yaml:"label" json:"label,omitempty"`
	Version   string    `yaml:"version" json:"version,omitempty"`
	URI       string    `yaml:"uri" json:"uri,omitempty"`
	Referent  string    `yaml:"referent" json:"referent,omitempty"`
	Namespace string    `yaml:"namespace" json:"namespace,omitempty"`
	Ancestors *[]string `yaml:"ancestors" json:"ancestors,omitempty"`
}

// SeriesSpec declares a series and its versions, oldest first.
type SeriesSpec struct {
	Kind      string        `yaml:"kind" json:"kind"`
	Tag       string        `yaml:"tag" json:"tag"`
	UUID      string        `yaml:"uuid" json:"uuid,omitempty"`
	Label     string        `yaml:"label" json:"label,omitempty"`
	URI       string        `yaml:"uri" json:"uri,omitempty"`
	Referent  string        `yaml:"referent" json:"referent,omitempty"`
	Namespace string        `yaml:"namespace" json:"namespace,omitempty"`
	Versions  []VersionSpec `yaml:"versions" json:"versions"`
}

// VersionSpec declares one version of a series. Tag defaults to
// "<series tag>-<version>", URI to the versioned namespace.
type VersionSpec struct {
	Version string `yaml:"version" json:"version"`
	Tag     string `yaml:"tag" json:"tag,omitempty"`
	Label   string `yaml:"label" json:"label,omitempty"`
	URI     string `yaml:"uri" json:"uri,omitempty"`
}

// Parse validates data against the document schema and decodes it.
func Parse(data []byte) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapInvalid(fmt.Errorf("%w: %v", errors.ErrInvalidCatalogue, err),
			"catalogue", "Parse", "yaml decode")
	}
	if raw == nil {
		return &Document{}, nil
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, errors.WrapInvalid(fmt.Errorf("%w: %v", errors.ErrInvalidCatalogue, err),
			"catalogue", "Parse", "document decode")
	}
	return doc, nil
}

func validate(raw any) error {
	s, err := compiledSchema()
	if err != nil {
		return errors.WrapFatal(err, "catalogue", "validate", "schema compilation")
	}

	result, err := s.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return errors.WrapInvalid(fmt.Errorf("%w: %v", errors.ErrInvalidCatalogue, err),
			"catalogue", "validate", "schema validation")
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return errors.WrapInvalid(fmt.Errorf("%w: %s", errors.ErrInvalidCatalogue, strings.Join(problems, "; ")),
		"catalogue", "validate", "schema validation")
}
