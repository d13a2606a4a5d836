package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/MKhiriev/go-meet/models"
)

// localPhotoStorage keeps photos under a directory that the HTTP server
// exposes at publicURL.
type localPhotoStorage struct {
	dir       string
	publicURL string
	ids       utils.IDGenerator
	logger    *logger.Logger
}

func NewLocalPhotoStorage(dir, publicURL string, ids utils.IDGenerator, logger *logger.Logger) (PhotoStorage, error) {
	if err := os.MkdirAll(filepath.Join(dir, photoKeyPrefix), 0o755); err != nil {
		return nil, fmt.Errorf("error creating photo directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating local photo storage")
	return &localPhotoStorage{
		dir:       dir,
		publicURL: publicURL,
		ids:       ids,
		logger:    logger,
	}, nil
}

func (s *localPhotoStorage) SavePhoto(ctx context.Context, photo models.Photo) (string, error) {
	log := logger.FromContext(ctx)

	key, _, err := photoKey(s.ids, photo)
	if err != nil {
		return "", err
	}

	target := filepath.Join(s.dir, filepath.FromSlash(key))
	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*localPhotoStorage.SavePhoto").Str("path", target).Msg("error creating photo file")
		return "", fmt.Errorf("error creating photo file: %w", err)
	}

	written, err := io.Copy(file, io.LimitReader(photo.Content, MaxPhotoSize+1))
	closeErr := file.Close()
	if err == nil && written > MaxPhotoSize {
		err = fmt.Errorf("%w: upload exceeds the limit", ErrUnsupportedPhoto)
	}
	if err = errors.Join(err, closeErr); err != nil {
		_ = os.Remove(target)
		log.Err(err).Str("func", "*localPhotoStorage.SavePhoto").Str("path", target).Msg("error writing photo file")
		return "", err
	}

	return publicPhotoURL(s.publicURL, key), nil
}

func (s *localPhotoStorage) DeletePhoto(ctx context.Context, url string) error {
	key, ok := photoKeyFromURL(s.publicURL, url)
	if !ok {
		return nil
	}

	target := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*localPhotoStorage.DeletePhoto").Str("path", target).Msg("error removing photo file")
		return fmt.Errorf("error removing photo file: %w", err)
	}
	return nil
}
