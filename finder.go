package filefactory

import "github.com/DragonMoffon/file-factory/anchor"

// Finder resolves file names to absolute paths under a fixed root without
// touching the filesystem.
type Finder struct {
	base
}

// NewFinder creates a Finder rooted at src.
func NewFinder(src anchor.Anchor, extension string, opts ...Option) (*Finder, error) {
	options := buildOptions(Options{}, opts)

	factory, err := newBase(src, extension, &options)
	if err != nil {
		return nil, err
	}

	return &Finder{base: factory}, nil
}

// Find returns the absolute path for name under the root. The file need not
// exist; no I/O happens beyond the resolution done at construction. Errors
// occur only for malformed inputs.
func (f *Finder) Find(name string, sub []string) (string, error) {
	return f.resolve(name, sub)
}
