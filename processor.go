package filefactory

import "github.com/DragonMoffon/file-factory/anchor"

// Args carries named arguments for a transform function.
type Args map[string]any

// TransformFunc turns a resolved path into a value of type T. Without an
// injection key the path arrives as the positional argument; with one, path
// is empty and the resolved path is stored in args under the key.
type TransformFunc[T any] func(path string, args Args) (T, error)

// Processor resolves file names under a fixed root and hands the resulting
// paths to a caller-supplied transform function. It is the generic hook for
// plugging in custom parsers ("open this path as JSON", "compile this path
// as a template") while the factory owns path resolution.
type Processor[T any] struct {
	base
	transform TransformFunc[T]
	key       string
	args      Args
}

// NewProcessor creates a Processor rooted at src. Use WithInjectKey to
// deliver the path through Args instead of positionally, and WithArgs to
// configure base arguments merged into every call.
func NewProcessor[T any](src anchor.Anchor, extension string, transform TransformFunc[T], opts ...Option) (*Processor[T], error) {
	if transform == nil {
		return nil, ErrNilTransform
	}

	options := buildOptions(Options{}, opts)

	factory, err := newBase(src, extension, &options)
	if err != nil {
		return nil, err
	}

	return &Processor[T]{
		base:      factory,
		transform: transform,
		key:       options.InjectKey,
		args:      options.Args,
	}, nil
}

// Process resolves name under the root and invokes the transform with the
// path and the merged arguments (per-call extra wins over construction-time
// Args on key collisions). Whatever the transform returns is returned
// unchanged, errors included.
func (p *Processor[T]) Process(name string, sub []string, extra Args) (T, error) {
	var zero T

	path, err := p.resolve(name, sub)
	if err != nil {
		return zero, err
	}

	args := make(Args, len(p.args)+len(extra)+1)

	for key, value := range p.args {
		args[key] = value
	}

	for key, value := range extra {
		args[key] = value
	}

	if p.key == "" {
		return p.transform(path, args)
	}

	args[p.key] = path

	return p.transform("", args)
}
