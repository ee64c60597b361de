// Package docs serves the OpenAPI description of the HTTP API and checks
// payloads against the schemas it declares.
package docs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openapiYAML []byte

// ErrUnknownSchema reports a schema name missing from components.schemas.
var ErrUnknownSchema = errors.New("unknown schema")

// Document is a parsed OpenAPI document.
type Document struct {
	raw     []byte
	json    []byte
	schemas map[string]map[string]any
}

// Load parses the embedded OpenAPI document.
func Load() (*Document, error) {
	return parse(openapiYAML)
}

func parse(src []byte) (*Document, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(src, &tree); err != nil {
		return nil, fmt.Errorf("parse openapi: %w", err)
	}
	if tree == nil {
		return nil, errors.New("parse openapi: empty document")
	}
	encoded, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("encode openapi: %w", err)
	}

	schemas := make(map[string]map[string]any)
	if components, ok := tree["components"].(map[string]any); ok {
		if named, ok := components["schemas"].(map[string]any); ok {
			for name, s := range named {
				if m, ok := s.(map[string]any); ok {
					schemas[name] = m
				}
			}
		}
	}
	return &Document{raw: src, json: encoded, schemas: schemas}, nil
}

// JSON returns the document encoded as JSON.
func (d *Document) JSON() []byte { return d.json }

// YAML returns the document source.
func (d *Document) YAML() []byte { return d.raw }

// SchemaNames lists the component schemas in sorted order.
func (d *Document) SchemaNames() []string {
	names := make([]string, 0, len(d.schemas))
	for name := range d.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks a JSON payload against the named component schema and
// returns one message per violation. A nil slice means the payload conforms.
func (d *Document) Validate(schema string, payload []byte) ([]string, error) {
	s, ok := d.schemas[schema]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, schema)
	}

	schemaLoader := gojsonschema.NewGoLoader(s)
	documentLoader := gojsonschema.NewBytesLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("validate against %s: %w", schema, err)
	}
	if result.Valid() {
		return nil, nil
	}

	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return errs, nil
}

// RegisterRoutes serves the document as /docs-json and /docs-yaml.
func (d *Document) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/docs-json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", d.json)
	})
	rg.GET("/docs-yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", d.raw)
	})
}
