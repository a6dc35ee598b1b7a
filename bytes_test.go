package filefactory_test

import (
	"io/fs"
	"testing"

	filefactory "github.com/DragonMoffon/file-factory"
	"github.com/DragonMoffon/file-factory/anchor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes_Read(t *testing.T) {
	t.Parallel()

	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	fsys := newTestFS(t, map[string][]byte{"/data/assets/logo.png": payload})

	reader, err := filefactory.NewBytes(anchor.Dir("/data"), "png", filefactory.WithFS(fsys))
	require.NoError(t, err)

	data, err := reader.Read("logo", []string{"assets"})
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestBytes_EmptyExtension(t *testing.T) {
	t.Parallel()

	fsys := newTestFS(t, map[string][]byte{"/data/README.md": []byte("# hi")})

	reader, err := filefactory.NewBytes(anchor.Dir("/data"), "", filefactory.WithFS(fsys))
	require.NoError(t, err)

	// With no extension configured the name carries it.
	data, err := reader.Read("README.md", nil)
	require.NoError(t, err)
	assert.Equal(t, "# hi", string(data))
}

func TestBytes_MissingFile(t *testing.T) {
	t.Parallel()

	fsys := newTestFS(t, nil)

	reader, err := filefactory.NewBytes(anchor.Dir("/data"), "png", filefactory.WithFS(fsys))
	require.NoError(t, err)

	_, err = reader.Read("missing", nil)

	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}
