// Package filefactory provides reusable file access functions bound to a
// fixed root location and file extension.
//
// A factory is constructed once with an anchor (see the anchor package), an
// optional extension and default options, and is then called many times with
// just a file name plus optional subdirectories:
//
//	greetings, err := filefactory.NewText(anchor.Dir("assets"), "txt")
//	...
//	text, err := greetings.Read("greeting", []string{"templates"})
//
// Every factory resolves its anchor exactly once, at construction, and
// resolves each call to root/sub.../name+extension. Factories are immutable
// after construction and safe for concurrent use; the filesystem itself is
// the only shared mutable state.
package filefactory

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/DragonMoffon/file-factory/anchor"
	"github.com/DragonMoffon/file-factory/logging"

	"github.com/spf13/afero"
)

// base carries the state shared by every factory kind: the resolved root,
// the normalized extension and the filesystem the factory operates on.
type base struct {
	fsys afero.Fs
	log  *slog.Logger
	root string
	ext  string
}

func newBase(src anchor.Anchor, extension string, options *Options) (base, error) {
	if options.FS == nil {
		options.FS = afero.NewOsFs()
	}

	if options.Logger == nil {
		options.Logger = logging.Nop()
	}

	ext := NormalizeExtension(extension)
	if strings.ContainsAny(ext, `/\`) {
		return base{}, fmt.Errorf("extension %q: %w", extension, ErrUnsafeExtension)
	}

	root, err := src.Resolve(options.FS)
	if err != nil {
		return base{}, fmt.Errorf("resolving anchor: %w", err)
	}

	factory := base{
		fsys: options.FS,
		log:  options.Logger,
		root: root,
		ext:  ext,
	}

	factory.log.Debug("anchor resolved",
		slog.String("root", factory.root),
		slog.String("extension", factory.ext))

	return factory, nil
}

// Root returns the absolute directory the factory resolved at construction.
func (b base) Root() string {
	return b.root
}

// Extension returns the normalized extension appended to names, or the empty
// string when callers supply the extension themselves.
func (b base) Extension() string {
	return b.ext
}

// resolve joins root, the subdirectories in order, and name+extension.
// Components are restricted to single path elements, so the result cannot
// escape the root.
func (b base) resolve(name string, sub []string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}

	if err := checkComponent(name); err != nil {
		return "", err
	}

	for _, dir := range sub {
		if err := checkComponent(dir); err != nil {
			return "", err
		}
	}

	elems := make([]string, 0, len(sub)+2)
	elems = append(elems, b.root)
	elems = append(elems, sub...)
	elems = append(elems, name+b.ext)

	return filepath.Join(elems...), nil
}

func checkComponent(component string) error {
	if component == "" || component == "." || component == ".." ||
		strings.ContainsAny(component, `/\`) {
		return fmt.Errorf("%w: %q", ErrUnsafeComponent, component)
	}

	return nil
}

// NormalizeExtension returns extension with a leading dot, or the empty
// string for no extension. "txt" and ".txt" normalize identically.
func NormalizeExtension(extension string) string {
	if extension == "" {
		return ""
	}

	if !strings.HasPrefix(extension, ".") {
		return "." + extension
	}

	return extension
}

func buildOptions(defaults Options, opts []Option) Options {
	options := defaults

	for _, apply := range opts {
		apply(&options)
	}

	return options
}

func buildCallOptions(opts []CallOption) callOptions {
	var call callOptions

	for _, apply := range opts {
		apply(&call)
	}

	return call
}
