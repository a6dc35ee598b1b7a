package filefactory_test

import (
	"errors"
	"testing"

	filefactory "github.com/DragonMoffon/file-factory"
	"github.com/DragonMoffon/file-factory/anchor"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_PositionalPath(t *testing.T) {
	t.Parallel()

	fsys := newTestFS(t, map[string][]byte{"/data/settings.json": []byte(`{"a":1}`)})

	load := func(path string, _ filefactory.Args) (string, error) {
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return "", err
		}

		return string(data), nil
	}

	processor, err := filefactory.NewProcessor(anchor.Dir("/data"), "json", load, filefactory.WithFS(fsys))
	require.NoError(t, err)

	result, err := processor.Process("settings", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, result)
}

func TestProcessor_InjectKey(t *testing.T) {
	t.Parallel()

	fsys := newTestFS(t, nil)

	var gotPath, gotInjected string

	capture := func(path string, args filefactory.Args) (struct{}, error) {
		gotPath = path
		gotInjected, _ = args["path"].(string)

		return struct{}{}, nil
	}

	processor, err := filefactory.NewProcessor(anchor.Dir("/data"), "json", capture,
		filefactory.WithFS(fsys),
		filefactory.WithInjectKey("path"))
	require.NoError(t, err)

	_, err = processor.Process("settings", nil, nil)
	require.NoError(t, err)

	assert.Empty(t, gotPath, "positional path should be empty when a key is configured")
	assert.Equal(t, "/data/settings.json", gotInjected)
}

func TestProcessor_MergesArgs(t *testing.T) {
	t.Parallel()

	fsys := newTestFS(t, nil)

	var got filefactory.Args

	capture := func(_ string, args filefactory.Args) (int, error) {
		got = args

		return 0, nil
	}

	processor, err := filefactory.NewProcessor(anchor.Dir("/data"), "json", capture,
		filefactory.WithFS(fsys),
		filefactory.WithArgs(filefactory.Args{"indent": 2, "strict": true}))
	require.NoError(t, err)

	_, err = processor.Process("settings", nil, filefactory.Args{"indent": 4})
	require.NoError(t, err)

	// Per-call args win on collisions; configured args survive otherwise.
	assert.Equal(t, 4, got["indent"])
	assert.Equal(t, true, got["strict"])
}

func TestProcessor_TransformErrorPropagates(t *testing.T) {
	t.Parallel()

	fsys := newTestFS(t, nil)
	errBoom := errors.New("boom")

	failing := func(_ string, _ filefactory.Args) (string, error) {
		return "", errBoom
	}

	processor, err := filefactory.NewProcessor(anchor.Dir("/data"), "json", failing, filefactory.WithFS(fsys))
	require.NoError(t, err)

	_, err = processor.Process("settings", nil, nil)
	require.ErrorIs(t, err, errBoom)
}

func TestProcessor_ResolutionFailure(t *testing.T) {
	t.Parallel()

	fsys := newTestFS(t, nil)

	called := false
	transform := func(_ string, _ filefactory.Args) (string, error) {
		called = true

		return "", nil
	}

	processor, err := filefactory.NewProcessor(anchor.Dir("/data"), "json", transform, filefactory.WithFS(fsys))
	require.NoError(t, err)

	_, err = processor.Process("..", nil, nil)
	require.ErrorIs(t, err, filefactory.ErrUnsafeComponent)
	assert.False(t, called, "transform must not run when resolution fails")
}

func TestNewProcessor_NilTransform(t *testing.T) {
	t.Parallel()

	fsys := newTestFS(t, nil)

	_, err := filefactory.NewProcessor[string](anchor.Dir("/data"), "json", nil, filefactory.WithFS(fsys))
	require.ErrorIs(t, err, filefactory.ErrNilTransform)
}
