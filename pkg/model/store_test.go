package model_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	// Packages
	model "github.com/mutablelogic/go-transcribe/pkg/model"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Variant_001(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("ggml-large-v3.bin", model.FileForVariant("large-v3"))
	assert.Equal("ggml-tiny.en.bin", model.FileForVariant("tiny.en"))
	// Unknown variants pass through as filenames
	assert.Equal("ggml-custom.bin", model.FileForVariant("ggml-custom.bin"))
}

func Test_Store_001(t *testing.T) {
	// An empty store lists no models
	assert := assert.New(t)

	store, err := model.NewStore(t.TempDir())
	assert.NoError(err)
	models, err := store.List()
	assert.NoError(err)
	assert.Empty(models)
}

func Test_Store_002(t *testing.T) {
	// Weights files are listed, other files are not
	assert := assert.New(t)

	dir := t.TempDir()
	assert.NoError(os.WriteFile(filepath.Join(dir, "ggml-base.bin"), []byte("weights"), 0644))
	assert.NoError(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("notes"), 0644))

	store, err := model.NewStore(dir)
	assert.NoError(err)
	models, err := store.List()
	assert.NoError(err)
	assert.Len(models, 1)
	assert.Equal("ggml-base.bin", models[0].Id)

	// Path resolves by variant name
	path, err := store.Path("base")
	assert.NoError(err)
	assert.Equal(filepath.Join(dir, "ggml-base.bin"), path)

	// Missing weights are reported
	_, err = store.Path("large-v3")
	assert.Error(err)
}

func Test_Store_003(t *testing.T) {
	// Download fetches weights from the remote and renames them into place
	assert := assert.New(t)

	weights := []byte("fake ggml weights")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ggml-tiny.bin" {
			http.NotFound(w, r)
			return
		}
		w.Write(weights)
	}))
	defer server.Close()

	dir := t.TempDir()
	store, err := model.NewStore(dir, model.WithRemote(server.URL))
	assert.NoError(err)

	downloaded, err := store.Download(context.Background(), "tiny", nil)
	assert.NoError(err)
	assert.Equal("ggml-tiny.bin", downloaded.Id)
	assert.Equal(int64(len(weights)), downloaded.Size)

	data, err := os.ReadFile(downloaded.Path)
	assert.NoError(err)
	assert.Equal(weights, data)

	// No partial file left behind
	_, err = os.Stat(downloaded.Path + ".partial")
	assert.True(os.IsNotExist(err))
}

func Test_Store_004(t *testing.T) {
	// A failed download leaves no weights behind
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	dir := t.TempDir()
	store, err := model.NewStore(dir, model.WithRemote(server.URL))
	assert.NoError(err)

	_, err = store.Download(context.Background(), "tiny", nil)
	assert.Error(err)
	_, err = os.Stat(filepath.Join(dir, "ggml-tiny.bin"))
	assert.True(os.IsNotExist(err))
}

func Test_Store_005(t *testing.T) {
	// Delete removes weights by variant name
	assert := assert.New(t)

	dir := t.TempDir()
	assert.NoError(os.WriteFile(filepath.Join(dir, "ggml-small.bin"), []byte("weights"), 0644))

	store, err := model.NewStore(dir)
	assert.NoError(err)
	assert.NoError(store.Delete("small"))
	assert.Error(store.Delete("small"))
}
