package manifest

import (
	"fmt"

	filefactory "github.com/DragonMoffon/file-factory"
	"github.com/DragonMoffon/file-factory/anchor"
	"github.com/DragonMoffon/file-factory/charset"

	"github.com/hashicorp/go-multierror"
)

// Set holds the factories built from a manifest, grouped by kind and
// addressable by their definition names.
type Set struct {
	Openers map[string]*filefactory.Opener
	Finders map[string]*filefactory.Finder
	Texts   map[string]*filefactory.Text
	Bytes   map[string]*filefactory.Bytes
}

// Len returns the number of factories in the set.
func (s *Set) Len() int {
	return len(s.Openers) + len(s.Finders) + len(s.Texts) + len(s.Bytes)
}

// Build constructs every factory the manifest defines. opts apply to each
// factory after the definition's own settings, so ambient options like
// WithFS and WithLogger affect the whole set. Construction failures are
// accumulated per definition; any failure means no set is returned.
func Build(m *Manifest, opts ...filefactory.Option) (*Set, error) {
	set := &Set{
		Openers: map[string]*filefactory.Opener{},
		Finders: map[string]*filefactory.Finder{},
		Texts:   map[string]*filefactory.Text{},
		Bytes:   map[string]*filefactory.Bytes{},
	}

	var result *multierror.Error

	for name, def := range m.Factories {
		err := buildOne(set, name, def, opts)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("factory %q: %w", name, err))
		}
	}

	err := result.ErrorOrNil()
	if err != nil {
		return nil, err
	}

	return set, nil
}

func buildOne(set *Set, name string, def Definition, opts []filefactory.Option) error {
	src, err := anchor.Parse(def.Anchor)
	if err != nil {
		return err
	}

	switch def.Kind {
	case KindOpener:
		opener, err := filefactory.NewOpener(src, def.Extension, opts...)
		if err != nil {
			return err
		}

		set.Openers[name] = opener
	case KindFinder:
		finder, err := filefactory.NewFinder(src, def.Extension, opts...)
		if err != nil {
			return err
		}

		set.Finders[name] = finder
	case KindText:
		policy, err := charset.ParsePolicy(def.OnError)
		if err != nil {
			return err
		}

		textOpts := append([]filefactory.Option{
			filefactory.WithEncoding(def.Encoding),
			filefactory.WithErrorPolicy(policy),
		}, opts...)

		text, err := filefactory.NewText(src, def.Extension, textOpts...)
		if err != nil {
			return err
		}

		set.Texts[name] = text
	case KindBytes:
		bytes, err := filefactory.NewBytes(src, def.Extension, opts...)
		if err != nil {
			return err
		}

		set.Bytes[name] = bytes
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, def.Kind)
	}

	return nil
}
