package filefactory

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/DragonMoffon/file-factory/anchor"

	"github.com/spf13/afero"
)

// DefaultPerm is the permission applied when a write-mode open creates a file.
const DefaultPerm fs.FileMode = 0o644

// Opener opens files under a fixed root with a fixed extension. Defaults for
// the open flag and create permission are set at construction and can be
// overridden per call with Flag and Perm.
type Opener struct {
	base
	flag int
	perm fs.FileMode
}

// NewOpener creates an Opener rooted at src. The default flag is os.O_RDONLY
// and the default create permission is DefaultPerm.
func NewOpener(src anchor.Anchor, extension string, opts ...Option) (*Opener, error) {
	options := buildOptions(Options{Flag: os.O_RDONLY, Perm: DefaultPerm}, opts)

	factory, err := newBase(src, extension, &options)
	if err != nil {
		return nil, err
	}

	return &Opener{base: factory, flag: options.Flag, perm: options.Perm}, nil
}

// Open resolves name under the root and opens it with the effective flag and
// permission. The caller owns the returned handle and must close it on every
// exit path, typically with defer. Filesystem errors surface unchanged, so
// errors.Is(err, fs.ErrNotExist) and friends keep working.
//
//nolint:ireturn // afero.File is the afero contract for open handles
func (o *Opener) Open(name string, sub []string, opts ...CallOption) (afero.File, error) {
	call := buildCallOptions(opts)

	path, err := o.resolve(name, sub)
	if err != nil {
		return nil, err
	}

	flag, perm := o.flag, o.perm

	if call.flagSet {
		flag = call.flag
	}

	if call.permSet {
		perm = call.perm
	}

	file, err := o.fsys.OpenFile(path, flag, perm)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	return file, nil
}
