package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-meet/internal/config"
	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/store"
	"github.com/MKhiriev/go-meet/internal/utils"
)

type Services struct {
	AuthService       AuthService
	ProfileService    ProfileService
	ConnectionService ConnectionService
	InterestService   InterestService
	UserService       UserService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	verifier, err := NewInitDataVerifier(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating init data verifier: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService: NewAuthService(verifier, storages.UserRepository, storages.ProfileRepository, ids, cfg, logger),
		ProfileService: NewProfileValidationService(time.Now).
			Wrap(NewProfileService(storages.ProfileRepository, storages.PhotoStorage, time.Now, logger)),
		ConnectionService: NewConnectionValidationService().
			Wrap(NewConnectionService(storages.ConnectionRepository, logger)),
		InterestService: NewInterestService(storages.InterestRepository, logger),
		UserService:     NewUserService(storages.UserRepository, logger),
		AppInfoService:  appInfo,
	}, nil
}
