package di

import (
	"errors"
	"fmt"
	"log/slog"

	filefactory "github.com/DragonMoffon/file-factory"
	"github.com/DragonMoffon/file-factory/logging"
	"github.com/DragonMoffon/file-factory/manifest"

	"github.com/spf13/afero"
	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ErrEmptyPath is returned when the manifest path is empty.
var ErrEmptyPath = errors.New("manifest path must not be empty")

// Module creates an Fx module that loads the factory manifest at path and
// provides the built *manifest.Set under the module name's DI tag. opts apply
// to every factory in the set; WithFS also selects the filesystem the
// manifest itself is read from. If the container carries a *slog.Logger it is
// used, otherwise the set is built silently.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(name, path string, opts ...filefactory.Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	if path == "" {
		return fx.Error(ErrEmptyPath)
	}

	var options filefactory.Options

	for _, apply := range opts {
		apply(&options)
	}

	fsys := options.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func(logger *slog.Logger) (*manifest.Set, error) {
					if logger == nil {
						logger = logging.Nop()
					}

					m, err := manifest.LoadFile(fsys, path)
					if err != nil {
						return nil, err
					}

					set, err := manifest.Build(m, opts...)
					if err != nil {
						return nil, err
					}

					logger.Debug("file factories built",
						slog.String("module", name),
						slog.String("manifest", path),
						slog.Int("count", set.Len()))

					return set, nil
				},
				fx.ParamTags(`optional:"true"`),
				fx.ResultTags(fmt.Sprintf(`name:%q`, name)),
			),
		),
	)
}
