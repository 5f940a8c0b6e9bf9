package model

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	// Packages
	errors "github.com/djthorpe/go-errors"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Store manages ggml weights files in a local directory
type Store struct {
	dir    string
	client *client
}

type Opt func(*Store) error

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultRemote = "https://huggingface.co/ggerganov/whisper.cpp/resolve/main"
	extWeights    = ".bin"
)

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a model store rooted at the given directory, creating it if needed
func NewStore(dir string, opts ...Opt) (*Store, error) {
	if dir == "" {
		return nil, errors.ErrBadParameter.With("model directory")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	store := &Store{
		dir:    dir,
		client: newClient(defaultRemote),
	}
	for _, opt := range opts {
		if err := opt(store); err != nil {
			return nil, err
		}
	}
	return store, nil
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - OPTIONS

// Set the remote weights repository URL
func WithRemote(remote string) Opt {
	return func(s *Store) error {
		client := newClient(remote)
		if client == nil {
			return errors.ErrBadParameter.Withf("invalid remote URL: %q", remote)
		}
		s.client = client
		return nil
	}
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// List the downloaded models, ordered by id
func (s *Store) List() ([]Model, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var models []Model
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), extWeights) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		models = append(models, Model{
			Id:         entry.Name(),
			Path:       filepath.Join(s.dir, entry.Name()),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}
	sort.Slice(models, func(i, j int) bool {
		return models[i].Id < models[j].Id
	})
	return models, nil
}

// Return the path to the weights for a model variant, or ErrNotFound when
// the weights have not been downloaded
func (s *Store) Path(variant string) (string, error) {
	path := filepath.Join(s.dir, FileForVariant(variant))
	if _, err := os.Stat(path); err != nil {
		return "", errors.ErrNotFound.Withf("model %q (run the download command first)", variant)
	}
	return path, nil
}

// Download the weights for a model variant. The progress callback receives
// the current and total byte counts, and may be nil.
func (s *Store) Download(ctx context.Context, variant string, progress func(cur, total uint64)) (Model, error) {
	file := FileForVariant(variant)
	dest := filepath.Join(s.dir, file)

	// Download to a partial file, then rename into place so that an
	// interrupted download never leaves truncated weights behind
	partial := dest + ".partial"
	f, err := os.Create(partial)
	if err != nil {
		return Model{}, err
	}
	defer os.Remove(partial)

	if _, err := s.client.Get(ctx, &progressWriter{w: f, fn: progress}, file); err != nil {
		f.Close()
		return Model{}, err
	}
	if err := f.Close(); err != nil {
		return Model{}, err
	}
	if err := os.Rename(partial, dest); err != nil {
		return Model{}, err
	}

	info, err := os.Stat(dest)
	if err != nil {
		return Model{}, err
	}
	return Model{
		Id:         file,
		Path:       dest,
		Size:       info.Size(),
		ModifiedAt: info.ModTime(),
	}, nil
}

// Delete the weights for a model variant
func (s *Store) Delete(variant string) error {
	path := filepath.Join(s.dir, FileForVariant(variant))
	if _, err := os.Stat(path); err != nil {
		return errors.ErrNotFound.With(variant)
	}
	return os.Remove(path)
}
