package item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/PouchSim_Go/internal/logger"
	"github.com/osse101/PouchSim_Go/internal/validation"
)

// Sentinel errors for the item catalog
var (
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrInvalidConfig = errors.New("invalid item configuration")
)

// Config is the JSON catalog file
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def is a single item definition. Declaration order matters: it decides
// the sort order of items sharing a type.
type Def struct {
	ID            string `json:"id" validate:"required,max=128,alphanumunderscore"`
	Type          string `json:"type" validate:"required,item_type"`
	Repeatable    *bool  `json:"repeatable,omitempty"`
	Stackable     bool   `json:"stackable"`
	Image         string `json:"image"`
	AnimatedImage string `json:"animated_image,omitempty"`
}

// IsRepeatable defaults to true when the catalog does not say otherwise
func (d Def) IsRepeatable() bool {
	return d.Repeatable == nil || *d.Repeatable
}

// Loader reads item catalogs from disk
type Loader interface {
	Load(path string) (*Config, error)
	LoadRegistry(ctx context.Context, path string) (*Registry, error)
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads, schema-checks and parses a catalog file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, validation.ItemsSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// LoadRegistry loads a catalog file and runs the registration pass over it
func (l *itemLoader) LoadRegistry(ctx context.Context, path string) (*Registry, error) {
	config, err := l.Load(path)
	if err != nil {
		return nil, err
	}

	registry, err := NewRegistry(config.Items)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded,
		"path", path,
		"version", config.Version,
		"items", registry.Len())
	return registry, nil
}
