package service

import (
	"context"

	"github.com/guide-directory-api/internal/config"
	"github.com/guide-directory-api/internal/models"
	"github.com/guide-directory-api/internal/repository"
	"github.com/rs/zerolog"
)

// referenceService is the concrete implementation of ReferenceService.
// Reference tabs are optional: a backend failure degrades to an empty list
// flagged unavailable, so the UI can warn instead of breaking.
type referenceService struct {
	refs repository.ReferenceRepository
	tabs *config.TabsConfig
	log  zerolog.Logger
}

func newReferenceService(refs repository.ReferenceRepository, tabs *config.TabsConfig, log zerolog.Logger) ReferenceService {
	return &referenceService{
		refs: refs,
		tabs: tabs,
		log:  log.With().Str("service", "reference").Logger(),
	}
}

// TripCodes returns the "Básicos" trip-code list
func (s *referenceService) TripCodes(ctx context.Context) models.ReferenceList {
	return s.loadList(ctx, s.tabs.TripCodes, s.tabs.TripCodesColumn)
}

// Cities returns the city list
func (s *referenceService) Cities(ctx context.Context) models.ReferenceList {
	return s.loadList(ctx, s.tabs.Cities, s.tabs.CitiesColumn)
}

func (s *referenceService) loadList(ctx context.Context, tab, column string) models.ReferenceList {
	values, err := s.refs.LoadList(ctx, tab, column)
	if err != nil {
		s.log.Warn().Err(err).Str("tab", tab).Msg("Reference list unavailable")
		return models.ReferenceList{Values: []string{}, Available: false}
	}
	return models.ReferenceList{Values: values, Available: true}
}
