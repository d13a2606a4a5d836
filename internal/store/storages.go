package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-meet/internal/config"
	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/utils"
)

// Storages bundles every repository the services depend on.
type Storages struct {
	UserRepository       UserRepository
	ProfileRepository    ProfileRepository
	InterestRepository   InterestRepository
	ConnectionRepository ConnectionRepository
	PhotoStorage         PhotoStorage
}

// NewStorages builds the repositories on top of db and the photo backend
// selected by cfg.Photos.Driver.
func NewStorages(ctx context.Context, db *DB, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	photos, err := newPhotoStorage(ctx, cfg.Photos, log)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error creating photo storage")
		return nil, err
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		ProfileRepository:    NewProfileRepository(db, log),
		InterestRepository:   NewInterestRepository(db, log),
		ConnectionRepository: NewConnectionRepository(db, log),
		PhotoStorage:         photos,
	}, nil
}

func newPhotoStorage(ctx context.Context, cfg config.Photos, log *logger.Logger) (PhotoStorage, error) {
	ids := utils.NewUUIDGenerator()

	switch cfg.Driver {
	case config.PhotoDriverLocal, "":
		return NewLocalPhotoStorage(cfg.Dir, cfg.PublicURL, ids, log)
	case config.PhotoDriverS3:
		client, err := NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return NewS3PhotoStorage(client, cfg.S3.Bucket, cfg.PublicURL, ids, log), nil
	default:
		return nil, fmt.Errorf("unknown photo driver %q", cfg.Driver)
	}
}
