package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/store"
	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/MKhiriev/go-meet/internal/validators"
	"github.com/MKhiriev/go-meet/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(users store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: users,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.UserWithProfile, error) {
	users, err := s.userRepository.ListUsersWithProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}
	return users, nil
}

func (s *userService) VerifyUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if !utils.IsUUID(userID) {
		return models.User{}, validationError(validators.ErrInvalidUserID)
	}

	user, err := s.userRepository.SetUserStatus(ctx, userID, models.UserStatusVerified)
	if err != nil {
		log.Err(err).Str("func", "*userService.VerifyUser").Str("user_id", userID).Msg("verification failed")
		return models.User{}, fmt.Errorf("verification failed: %w", fromStoreError(err))
	}

	log.Info().Str("user_id", userID).Msg("user verified")
	return user, nil
}
