package filefactory

import (
	"io/fs"
	"log/slog"

	"github.com/DragonMoffon/file-factory/charset"

	"github.com/spf13/afero"
)

// Options holds construction-time settings for a factory. Each factory kind
// reads the fields relevant to it and ignores the rest.
type Options struct {
	FS        afero.Fs
	Logger    *slog.Logger
	Flag      int
	Perm      fs.FileMode
	Encoding  string
	OnError   charset.Policy
	InjectKey string
	Args      Args
}

// Option defines a function type for applying construction-time options.
type Option func(*Options)

// WithFS sets the filesystem the factory operates on.
// Defaults to the host filesystem.
func WithFS(fsys afero.Fs) Option {
	return func(opts *Options) {
		opts.FS = fsys
	}
}

// WithLogger sets the logger the factory reports resolutions to.
// Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithFlag sets an Opener's default open flag (os.O_RDONLY, os.O_WRONLY|os.O_CREATE, ...).
func WithFlag(flag int) Option {
	return func(opts *Options) {
		opts.Flag = flag
	}
}

// WithPerm sets the permission an Opener uses when a write-mode open creates the file.
func WithPerm(perm fs.FileMode) Option {
	return func(opts *Options) {
		opts.Perm = perm
	}
}

// WithEncoding sets a Text factory's default encoding name.
// Defaults to UTF-8.
func WithEncoding(name string) Option {
	return func(opts *Options) {
		opts.Encoding = name
	}
}

// WithErrorPolicy sets a Text factory's default handling of input that is
// invalid in the source encoding. Defaults to charset.PolicyStrict.
func WithErrorPolicy(policy charset.Policy) Option {
	return func(opts *Options) {
		opts.OnError = policy
	}
}

// WithInjectKey sets the key a Processor stores the resolved path under in
// the transform's Args. Without a key the path is passed positionally.
func WithInjectKey(key string) Option {
	return func(opts *Options) {
		opts.InjectKey = key
	}
}

// WithArgs sets the base Args a Processor merges with per-call Args before
// invoking the transform. Per-call entries win on key collisions.
func WithArgs(args Args) Option {
	return func(opts *Options) {
		opts.Args = args
	}
}

type callOptions struct {
	flag        int
	flagSet     bool
	perm        fs.FileMode
	permSet     bool
	encoding    string
	encodingSet bool
	policy      charset.Policy
	policySet   bool
}

// CallOption defines a function type for per-call overrides of a factory's
// construction-time defaults. Omitted options fall back to the defaults.
type CallOption func(*callOptions)

// Flag overrides an Opener's open flag for a single call.
func Flag(flag int) CallOption {
	return func(call *callOptions) {
		call.flag = flag
		call.flagSet = true
	}
}

// Perm overrides an Opener's create permission for a single call.
func Perm(perm fs.FileMode) CallOption {
	return func(call *callOptions) {
		call.perm = perm
		call.permSet = true
	}
}

// Encoding overrides a Text factory's encoding for a single call.
func Encoding(name string) CallOption {
	return func(call *callOptions) {
		call.encoding = name
		call.encodingSet = true
	}
}

// OnError overrides a Text factory's error policy for a single call.
func OnError(policy charset.Policy) CallOption {
	return func(call *callOptions) {
		call.policy = policy
		call.policySet = true
	}
}
