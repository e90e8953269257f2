package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/modelkit/pkg/common"
	"kgeyst.com/modelkit/pkg/modelkit/domain"
)

func newTestAPIInDir(t *testing.T, dir string) API {
	a, err := NewAPI(common.NewConfig(map[string]any{
		domain.ConfigKeyLogPath:       filepath.Join(dir, "log.txt"),
		domain.ConfigKeyLoadDelay:     0,
		domain.ConfigKeyTempDirectory: dir,
	}))
	require.NoError(t, err)
	return a
}

func newTestAPI(t *testing.T) API {
	return newTestAPIInDir(t, t.TempDir())
}

func TestListAvailable(t *testing.T) {
	a := newTestAPI(t)
	expected := []string{ModelTypeTextClassification, ModelTypeImageClassification}
	assert.Equal(t, expected, a.ListAvailable())
	assert.Equal(t, expected, a.ListAvailable())
}

func TestCreateMatchesCategory(t *testing.T) {
	a := newTestAPI(t)
	for _, modelType := range a.ListAvailable() {
		model, err := a.Create(modelType)
		require.NoError(t, err)
		assert.Equal(t, modelType, model.Describe().Category)
		assert.Equal(t, domain.LoadStateNotLoaded, model.LoadState())

		descriptor, err := a.Describe(modelType)
		require.NoError(t, err)
		assert.Equal(t, model.Describe(), descriptor)
	}
}

func TestCreateUnknown(t *testing.T) {
	a := newTestAPI(t)
	_, err := a.Create("nonexistent")
	assert.True(t, errors.Is(err, domain.ErrUnknownModelType))
	_, err = a.Describe("nonexistent")
	assert.True(t, errors.Is(err, domain.ErrUnknownModelType))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	a := newTestAPIInDir(t, dir)
	model, err := a.Create(ModelTypeTextClassification)
	require.NoError(t, err)
	model.Load()

	output, err := a.Run(model, 1, domain.InputKindText, "what a great day")
	require.NoError(t, err)
	assert.Empty(t, output.Error)
	top, ok := output.Result.TopPrediction()
	require.True(t, ok)
	assert.Equal(t, "POSITIVE", top.Label)
	assert.Contains(t, output.JSON(), `"model_number": 1`)
	assert.Contains(t, output.JSON(), `"label": "POSITIVE"`)

	output, err = a.Run(model, 1, domain.InputKindImage, "cat.png")
	require.NoError(t, err)
	assert.Nil(t, output.Result)
	assert.Contains(t, output.Error, "doesn't support image input")

	_, err = a.Run(model, 1, domain.InputKindText, "")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	data, err := os.ReadFile(filepath.Join(dir, "log.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "load '")
	assert.Contains(t, string(data), "rejected")
}

func TestResolveImageInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/pets/dog.png" {
			_, _ = w.Write([]byte("png bytes"))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()
	a := newTestAPI(t)

	path, cleanup, err := a.ResolveImageInput(`  '/home/me/my cat.jpg' `)
	require.NoError(t, err)
	cleanup()
	assert.Equal(t, "/home/me/my cat.jpg", path)

	path, cleanup, err = a.ResolveImageInput(server.URL + "/pets/dog.png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "_dog.png"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))
	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	_, _, err = a.ResolveImageInput(server.URL + "/missing.png")
	assert.Error(t, err)
}
