package filefactory

import (
	"fmt"

	"github.com/DragonMoffon/file-factory/anchor"
	"github.com/DragonMoffon/file-factory/charset"

	"github.com/spf13/afero"
)

// Text reads whole files under a fixed root as decoded strings. The default
// encoding and error policy are set at construction and can be overridden
// per call with Encoding and OnError.
type Text struct {
	base
	encoding string
	policy   charset.Policy
}

// NewText creates a Text factory rooted at src. The default encoding is
// UTF-8 with charset.PolicyStrict.
func NewText(src anchor.Anchor, extension string, opts ...Option) (*Text, error) {
	options := buildOptions(Options{Encoding: charset.UTF8, OnError: charset.PolicyStrict}, opts)

	if _, err := charset.Lookup(options.Encoding); err != nil {
		return nil, err
	}

	factory, err := newBase(src, extension, &options)
	if err != nil {
		return nil, err
	}

	return &Text{base: factory, encoding: options.Encoding, policy: options.OnError}, nil
}

// Read resolves name under the root and returns the file's entire contents
// decoded with the effective encoding and error policy. A single atomic
// read; filesystem and decode errors surface unchanged.
func (t *Text) Read(name string, sub []string, opts ...CallOption) (string, error) {
	call := buildCallOptions(opts)

	path, err := t.resolve(name, sub)
	if err != nil {
		return "", err
	}

	data, err := afero.ReadFile(t.fsys, path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}

	enc, policy := t.encoding, t.policy

	if call.encodingSet {
		enc = call.encoding
	}

	if call.policySet {
		policy = call.policy
	}

	text, err := charset.Decode(data, enc, policy)
	if err != nil {
		return "", fmt.Errorf("decoding %q: %w", path, err)
	}

	return text, nil
}
