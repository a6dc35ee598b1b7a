package charset

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// UTF8 is the canonical name of the default encoding.
const UTF8 = "utf-8"

// Policy controls how invalid byte sequences are handled during decoding.
type Policy string

const (
	// PolicyStrict fails on input that is invalid in the source encoding.
	PolicyStrict Policy = "strict"
	// PolicyReplace substitutes invalid input with U+FFFD.
	PolicyReplace Policy = "replace"
	// PolicyIgnore drops invalid input.
	PolicyIgnore Policy = "ignore"
)

// ErrUnknownEncoding is returned when an encoding name is not in the index.
var ErrUnknownEncoding = errors.New("unknown encoding")

// ErrUnknownPolicy is returned when a policy name is not recognized.
var ErrUnknownPolicy = errors.New("unknown error policy")

// ErrMalformedInput is returned under PolicyStrict when input is invalid in
// the source encoding.
var ErrMalformedInput = errors.New("malformed input for encoding")

// ParsePolicy maps a textual policy name to a Policy. The empty string
// means PolicyStrict.
func ParsePolicy(name string) (Policy, error) {
	policy := Policy(strings.ToLower(name))
	switch policy {
	case "":
		return PolicyStrict, nil
	case PolicyStrict, PolicyReplace, PolicyIgnore:
		return policy, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Lookup resolves an encoding name through the WHATWG index. A nil Encoding
// with nil error means the name denotes UTF-8 and no transformation is needed.
//
//nolint:ireturn // encoding.Encoding is the x/text contract
func Lookup(name string) (encoding.Encoding, error) {
	if isUTF8(name) {
		return nil, nil //nolint:nilnil // nil encoding marks the UTF-8 passthrough
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}

	return enc, nil
}

// Decode converts data from the named encoding into a Go (UTF-8) string,
// applying policy to invalid input. For non-UTF-8 sources invalid sequences
// are detected through the replacement runes the decoder emits, so under
// PolicyStrict and PolicyIgnore a source that legitimately encodes U+FFFD is
// indistinguishable from a malformed one.
func Decode(data []byte, name string, policy Policy) (string, error) {
	if policy == "" {
		policy = PolicyStrict
	}

	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}

	if enc == nil {
		return applyPolicy(data, name, policy)
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding as %q: %w", name, err)
	}

	text := string(decoded)

	switch policy {
	case PolicyStrict:
		if strings.ContainsRune(text, utf8.RuneError) {
			return "", fmt.Errorf("%w: %q", ErrMalformedInput, name)
		}

		return text, nil
	case PolicyReplace:
		return text, nil
	case PolicyIgnore:
		return strings.ReplaceAll(text, string(utf8.RuneError), ""), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, string(policy))
}

func applyPolicy(data []byte, name string, policy Policy) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	switch policy {
	case PolicyStrict:
		if name == "" {
			name = UTF8
		}

		return "", fmt.Errorf("%w: %q", ErrMalformedInput, name)
	case PolicyReplace:
		return strings.ToValidUTF8(string(data), string(utf8.RuneError)), nil
	case PolicyIgnore:
		return strings.ToValidUTF8(string(data), ""), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, string(policy))
}

func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return true
	}

	return false
}
