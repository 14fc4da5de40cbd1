package services

import (
	"context"
	"fmt"
	"log/slog"

	"sunshare/internal/metrics"
	"sunshare/internal/models"
	"sunshare/internal/repositories"
)

// FallbackSource is reported when a list was answered from mock data after a
// read error.
const FallbackSource = "fallback"

type PropertyService struct {
	repo     repositories.PropertyRepository
	fallback repositories.PropertyRepository
	rng      RandomSource
	log      *slog.Logger
	metrics  *metrics.Registry
}

func NewPropertyService(
	repo repositories.PropertyRepository,
	fallback repositories.PropertyRepository,
	rng RandomSource,
	log *slog.Logger,
	m *metrics.Registry,
) *PropertyService {
	if rng == nil {
		rng = DefaultRandom
	}
	return &PropertyService{
		repo:     repo,
		fallback: fallback,
		rng:      rng,
		log:      log.With("component", "property_service"),
		metrics:  m,
	}
}

// ListResult is the outcome of List. Degraded is set when the active
// repository failed and mock data was served instead.
type ListResult struct {
	Properties []models.WireProperty
	Source     string
	Degraded   bool
}

// Backend names the active repository.
func (s *PropertyService) Backend() string {
	return s.repo.Name()
}

// List never fails: a read error from the active repository is logged and
// answered with the mock data set.
func (s *PropertyService) List(ctx context.Context) ListResult {
	props, err := s.repo.List(ctx)
	if err == nil {
		s.metrics.PropertiesListed.WithLabelValues(s.repo.Name()).Inc()
		return ListResult{
			Properties: models.NormalizeAll(props),
			Source:     s.repo.Name(),
		}
	}

	s.log.Warn("Failed to read properties, serving mock data",
		"backend", s.repo.Name(),
		"error", err,
	)
	s.metrics.ListFallbacks.Inc()
	s.metrics.PropertiesListed.WithLabelValues(FallbackSource).Inc()

	mock, mockErr := s.fallback.List(ctx)
	if mockErr != nil {
		s.log.Error("Failed to read mock data", "error", mockErr)
		mock = nil
	}

	return ListResult{
		Properties: models.NormalizeAll(mock),
		Source:     FallbackSource,
		Degraded:   true,
	}
}

// Create derives the computed fields, stores the record in the active
// repository and returns it in wire form.
func (s *PropertyService) Create(ctx context.Context, req models.CreatePropertyRequest) (*models.WireProperty, error) {
	property := NewProperty(req, s.rng)

	if err := s.repo.Create(ctx, &property); err != nil {
		s.metrics.CreateFailures.WithLabelValues(s.repo.Name()).Inc()
		return nil, fmt.Errorf("failed to save property to %s: %w", s.repo.Name(), err)
	}

	s.metrics.PropertiesCreated.WithLabelValues(s.repo.Name()).Inc()
	s.log.Info("Property created",
		"id", property.ID,
		"backend", s.repo.Name(),
		"capacity_kw", *property.CapacityKw,
	)

	wire := models.Normalize(property)
	return &wire, nil
}
