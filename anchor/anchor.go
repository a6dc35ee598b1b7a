package anchor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/anchore/go-homedir"
	"github.com/spf13/afero"
)

// SchemeSeparator splits an anchor scheme from its location in textual
// anchor references.
const SchemeSeparator = ":"

// ErrEmptyAnchor is returned when an anchor reference or path is empty.
var ErrEmptyAnchor = errors.New("anchor must not be empty")

// ErrUnknownAnchor is returned when a package anchor names nothing in the registry.
var ErrUnknownAnchor = errors.New("unknown package anchor")

// ErrNotDirectory is returned when an anchor resolves to something other than a directory.
var ErrNotDirectory = errors.New("anchor is not a directory")

// Anchor identifies a logical root location. Resolve turns it into an
// absolute directory path, checking existence through fsys. Factories call
// Resolve exactly once, at construction time.
type Anchor interface {
	Resolve(fsys afero.Fs) (string, error)
}

// Dir returns an anchor for a directory path. A leading ~ expands to the
// current user's home directory.
func Dir(path string) Anchor {
	return dirAnchor(path)
}

type dirAnchor string

func (d dirAnchor) Resolve(fsys afero.Fs) (string, error) {
	if d == "" {
		return "", ErrEmptyAnchor
	}

	path, err := homedir.Expand(string(d))
	if err != nil {
		return "", fmt.Errorf("expanding home dir in %q: %w", string(d), err)
	}

	path, err = filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path for %q: %w", path, err)
	}

	stat, err := fsys.Stat(path)
	if err != nil {
		return "", fmt.Errorf("anchor %q: %w", path, err)
	}

	if !stat.IsDir() {
		return "", fmt.Errorf("anchor %q: %w", path, ErrNotDirectory)
	}

	return path, nil
}

//nolint:gochecknoglobals // process-wide named anchor registry.
var (
	registryMu sync.RWMutex
	registry   = map[string]string{}
)

// Register maps a logical package name to a root directory path. Applications
// register their data roots once, typically during init, and factories refer
// to them with Package. Registering an existing name replaces it.
func Register(name, path string) error {
	if name == "" || path == "" {
		return ErrEmptyAnchor
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	registry[name] = path

	return nil
}

// Package returns an anchor for a name previously passed to Register.
// Resolution fails with ErrUnknownAnchor for names never registered.
func Package(name string) Anchor {
	return pkgAnchor(name)
}

type pkgAnchor string

func (p pkgAnchor) Resolve(fsys afero.Fs) (string, error) {
	registryMu.RLock()
	path, ok := registry[string(p)]
	registryMu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAnchor, string(p))
	}

	return Dir(path).Resolve(fsys)
}

// ConfigDir returns an anchor for the application's directory under the
// XDG config home.
func ConfigDir(app string) Anchor {
	return xdgAnchor{base: xdg.ConfigHome, app: app}
}

// DataDir returns an anchor for the application's directory under the
// XDG data home.
func DataDir(app string) Anchor {
	return xdgAnchor{base: xdg.DataHome, app: app}
}

// CacheDir returns an anchor for the application's directory under the
// XDG cache home.
func CacheDir(app string) Anchor {
	return xdgAnchor{base: xdg.CacheHome, app: app}
}

type xdgAnchor struct {
	base string
	app  string
}

func (x xdgAnchor) Resolve(fsys afero.Fs) (string, error) {
	if x.app == "" {
		return "", ErrEmptyAnchor
	}

	return Dir(filepath.Join(x.base, x.app)).Resolve(fsys)
}

// Parse interprets a textual anchor reference. References may carry a scheme
// ("pkg:", "xdg-config:", "xdg-data:", "xdg-cache:"); anything else is taken
// as a directory path.
//
//nolint:ireturn // callers only need the Anchor contract
func Parse(ref string) (Anchor, error) {
	if ref == "" {
		return nil, ErrEmptyAnchor
	}

	scheme, rest, found := strings.Cut(ref, SchemeSeparator)
	if found {
		switch scheme {
		case "pkg":
			return Package(rest), nil
		case "xdg-config":
			return ConfigDir(rest), nil
		case "xdg-data":
			return DataDir(rest), nil
		case "xdg-cache":
			return CacheDir(rest), nil
		}
	}

	return Dir(ref), nil
}
