package manifest

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/DragonMoffon/file-factory/charset"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// Factory kinds a definition may name.
const (
	KindOpener = "opener"
	KindFinder = "finder"
	KindText   = "text"
	KindBytes  = "bytes"
)

// ErrEmptyData is returned when the manifest data is empty.
var ErrEmptyData = errors.New("empty manifest data")

// ErrNoFactories is returned when a manifest defines no factories.
var ErrNoFactories = errors.New("manifest defines no factories")

// ErrMissingAnchor is returned when a definition has no anchor reference.
var ErrMissingAnchor = errors.New("definition is missing an anchor")

// ErrUnknownKind is returned when a definition names an unknown factory kind.
var ErrUnknownKind = errors.New("unknown factory kind")

// Definition describes a single factory to build. Encoding and OnError only
// apply to the text kind.
type Definition struct {
	Anchor    string `yaml:"anchor"`
	Extension string `yaml:"extension"`
	Kind      string `yaml:"kind"`
	Encoding  string `yaml:"encoding"`
	OnError   string `yaml:"on_error"`
}

// Manifest is a named collection of factory definitions.
type Manifest struct {
	Factories map[string]Definition `yaml:"factories"`
}

// SetDefaults fills unset definition fields: the kind defaults to bytes, and
// text definitions default to UTF-8 with the strict error policy. Reports
// whether anything changed.
func (m *Manifest) SetDefaults() bool {
	changed := false

	for name, def := range m.Factories {
		if def.Kind == "" {
			def.Kind = KindBytes
			changed = true
		}

		if def.Kind == KindText {
			if def.Encoding == "" {
				def.Encoding = charset.UTF8
				changed = true
			}

			if def.OnError == "" {
				def.OnError = string(charset.PolicyStrict)
				changed = true
			}
		}

		m.Factories[name] = def
	}

	return changed
}

// Validate checks every definition, accumulating all problems into a single
// error rather than stopping at the first.
func (m *Manifest) Validate() error {
	var result *multierror.Error

	if len(m.Factories) == 0 {
		result = multierror.Append(result, ErrNoFactories)
	}

	for name, def := range m.Factories {
		if def.Anchor == "" {
			result = multierror.Append(result, fmt.Errorf("factory %q: %w", name, ErrMissingAnchor))
		}

		switch def.Kind {
		case KindOpener, KindFinder, KindText, KindBytes:
		default:
			result = multierror.Append(result, fmt.Errorf("factory %q: %w: %q", name, ErrUnknownKind, def.Kind))
		}

		if def.Kind == KindText {
			if _, err := charset.Lookup(def.Encoding); err != nil {
				result = multierror.Append(result, fmt.Errorf("factory %q: %w", name, err))
			}

			if _, err := charset.ParsePolicy(def.OnError); err != nil {
				result = multierror.Append(result, fmt.Errorf("factory %q: %w", name, err))
			}
		}
	}

	return result.ErrorOrNil()
}

// Load parses manifest data, applies defaults and validates.
func Load(data []byte) (*Manifest, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var m Manifest

	err := yaml.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	m.SetDefaults()

	err = m.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating manifest: %w", err)
	}

	return &m, nil
}

// LoadFile reads and parses the manifest at path through fsys.
func LoadFile(fsys afero.Fs, path string) (*Manifest, error) {
	cleanPath := filepath.Clean(path)

	data, err := afero.ReadFile(fsys, cleanPath)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %q: %w", cleanPath, err)
	}

	return Load(data)
}
