package jsonapi

import (
	"fmt"
	"io"

	"github.com/diwise/jsonapi/pkg/jsonapi/errors"
	yaml "gopkg.in/yaml.v2"
)

// CyclePolicy decides what happens when a relationship leads back to a resource that
// is already being resolved further up the same chain
type CyclePolicy string

const (
	// CyclePolicyReference replaces the repeated resource with a node holding only its id
	CyclePolicyReference CyclePolicy = "reference"
	// CyclePolicyFail aborts the deserialization with errors.ErrCyclicRelationship
	CyclePolicyFail CyclePolicy = "fail"
	// CyclePolicyUnguarded does not look for cycles at all. Cyclic input will recurse
	// until MaxDepth is exceeded, or without bound if no MaxDepth is set.
	CyclePolicyUnguarded CyclePolicy = "unguarded"
)

type Config struct {
	CyclePolicy CyclePolicy `yaml:"cyclePolicy"`
	MaxDepth    int         `yaml:"maxDepth"`
}

func DefaultConfig() Config {
	return Config{
		CyclePolicy: CyclePolicyReference,
	}
}

func (cfg Config) Validate() error {
	switch cfg.CyclePolicy {
	case CyclePolicyReference, CyclePolicyFail, CyclePolicyUnguarded:
	default:
		return errors.NewBadConfigurationError(fmt.Sprintf("unknown cycle policy \"%s\"", cfg.CyclePolicy))
	}

	if cfg.MaxDepth < 0 {
		return errors.NewBadConfigurationError(fmt.Sprintf("max depth must not be negative (%d)", cfg.MaxDepth))
	}

	return nil
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cfg.CyclePolicy == "" {
		cfg.CyclePolicy = CyclePolicyReference
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
