package filefactory

import (
	"fmt"

	"github.com/DragonMoffon/file-factory/anchor"

	"github.com/spf13/afero"
)

// Bytes reads whole files under a fixed root as raw byte slices.
type Bytes struct {
	base
}

// NewBytes creates a Bytes factory rooted at src.
func NewBytes(src anchor.Anchor, extension string, opts ...Option) (*Bytes, error) {
	options := buildOptions(Options{}, opts)

	factory, err := newBase(src, extension, &options)
	if err != nil {
		return nil, err
	}

	return &Bytes{base: factory}, nil
}

// Read resolves name under the root and returns the file's entire contents.
// A single atomic read; filesystem errors surface unchanged.
func (b *Bytes) Read(name string, sub []string) ([]byte, error) {
	path, err := b.resolve(name, sub)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(b.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	return data, nil
}
