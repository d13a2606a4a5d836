package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/store"
	"github.com/MKhiriev/go-meet/models"
)

type interestService struct {
	interestRepository store.InterestRepository
	logger             *logger.Logger
}

func NewInterestService(interests store.InterestRepository, logger *logger.Logger) InterestService {
	return &interestService{
		interestRepository: interests,
		logger:             logger,
	}
}

func (s *interestService) ListInterests(ctx context.Context) ([]models.Interest, error) {
	interests, err := s.interestRepository.ListInterests(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing interests failed: %w", err)
	}
	return interests, nil
}
