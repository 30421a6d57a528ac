package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"idscan/internal/config"
	"idscan/internal/domain"
	"idscan/internal/port"
)

type localStore struct {
	fs  afero.Fs
	dir string
}

// NewLocalStore creates an UploadStore that spools uploads into cfg.Dir on
// the OS filesystem. The directory is created if it does not exist.
func NewLocalStore(cfg *config.UploadConfig) (port.UploadStore, error) {
	return NewLocalStoreWithFs(afero.NewOsFs(), cfg)
}

// NewLocalStoreWithFs creates an UploadStore on the given filesystem (for testing).
func NewLocalStoreWithFs(afs afero.Fs, cfg *config.UploadConfig) (port.UploadStore, error) {
	if err := afs.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &localStore{fs: afs, dir: cfg.Dir}, nil
}

func (s *localStore) Save(ctx context.Context, input port.SaveInput) (*domain.Upload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Client filenames never reach the filesystem.
	path := filepath.Join(s.dir, uuid.New().String())
	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("creating upload file: %w", err)
	}

	n, err := io.Copy(f, input.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = s.fs.Remove(path)
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	return &domain.Upload{
		OriginalName: input.OriginalName,
		Size:         n,
		Path:         path,
		ContentType:  input.ContentType,
	}, nil
}

func (s *localStore) Read(_ context.Context, upload *domain.Upload) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, upload.Path)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	return data, nil
}

func (s *localStore) Remove(_ context.Context, upload *domain.Upload) error {
	err := s.fs.Remove(upload.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing upload: %w", err)
	}
	return nil
}

func (s *localStore) Ping(_ context.Context) error {
	f, err := afero.TempFile(s.fs, s.dir, ".ping-*")
	if err != nil {
		return fmt.Errorf("upload dir not writable: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	return s.fs.Remove(name)
}
