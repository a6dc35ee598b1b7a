package filefactory_test

import (
	"testing"

	filefactory "github.com/DragonMoffon/file-factory"
	"github.com/DragonMoffon/file-factory/anchor"
	"github.com/DragonMoffon/file-factory/charset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_Read(t *testing.T) {
	t.Parallel()

	fsys := newTestFS(t, map[string][]byte{
		"/data/templates/greeting.txt": []byte("hello"),
	})

	reader, err := filefactory.NewText(anchor.Dir("/data"), "txt", filefactory.WithFS(fsys))
	require.NoError(t, err)

	text, err := reader.Read("greeting", []string{"templates"})
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestText_DefaultEncoding(t *testing.T) {
	t.Parallel()

	// 0xE9 is é in latin1 and invalid UTF-8.
	fsys := newTestFS(t, map[string][]byte{"/data/caf.txt": {'c', 'a', 'f', 0xE9}})

	latin, err := filefactory.NewText(anchor.Dir("/data"), "txt",
		filefactory.WithFS(fsys),
		filefactory.WithEncoding("latin1"))
	require.NoError(t, err)

	text, err := latin.Read("caf", nil)
	require.NoError(t, err)
	assert.Equal(t, "café", text)
}

func TestText_PerCallEncodingOverride(t *testing.T) {
	t.Parallel()

	fsys := newTestFS(t, map[string][]byte{"/data/caf.txt": {'c', 'a', 'f', 0xE9}})

	// UTF-8 default would reject the byte; the per-call override wins.
	reader, err := filefactory.NewText(anchor.Dir("/data"), "txt", filefactory.WithFS(fsys))
	require.NoError(t, err)

	_, err = reader.Read("caf", nil)
	require.ErrorIs(t, err, charset.ErrMalformedInput)

	text, err := reader.Read("caf", nil, filefactory.Encoding("latin1"))
	require.NoError(t, err)
	assert.Equal(t, "café", text)

	// Omitting the override falls back to the construction-time default.
	_, err = reader.Read("caf", nil)
	require.ErrorIs(t, err, charset.ErrMalformedInput)
}

func TestText_PerCallPolicyOverride(t *testing.T) {
	t.Parallel()

	fsys := newTestFS(t, map[string][]byte{"/data/bad.txt": {'o', 'k', 0xFF}})

	reader, err := filefactory.NewText(anchor.Dir("/data"), "txt", filefactory.WithFS(fsys))
	require.NoError(t, err)

	_, err = reader.Read("bad", nil)
	require.ErrorIs(t, err, charset.ErrMalformedInput)

	text, err := reader.Read("bad", nil, filefactory.OnError(charset.PolicyReplace))
	require.NoError(t, err)
	assert.Equal(t, "ok�", text)

	text, err = reader.Read("bad", nil, filefactory.OnError(charset.PolicyIgnore))
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestNewText_UnknownEncoding(t *testing.T) {
	t.Parallel()

	fsys := newTestFS(t, nil)

	_, err := filefactory.NewText(anchor.Dir("/data"), "txt",
		filefactory.WithFS(fsys),
		filefactory.WithEncoding("not-an-encoding"))

	require.ErrorIs(t, err, charset.ErrUnknownEncoding)
}

func TestText_MissingFile(t *testing.T) {
	t.Parallel()

	fsys := newTestFS(t, nil)

	reader, err := filefactory.NewText(anchor.Dir("/data"), "txt", filefactory.WithFS(fsys))
	require.NoError(t, err)

	_, err = reader.Read("missing", nil)
	require.Error(t, err)
}
