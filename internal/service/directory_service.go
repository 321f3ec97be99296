package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/guide-directory-api/internal/mailto"
	"github.com/guide-directory-api/internal/models"
	"github.com/guide-directory-api/internal/repository"
	"github.com/rs/zerolog"
)

// CityAll is the city filter value meaning "no filter"
const CityAll = "ALL"

// directoryService is the concrete implementation of DirectoryService.
// Every interaction starts from a fresh load of the whole tab, and every
// mutation rewrites the whole tab and reloads, so responses always reflect
// backend-assigned state.
type directoryService struct {
	guides repository.GuideRepository
	log    zerolog.Logger
}

func newDirectoryService(guides repository.GuideRepository, log zerolog.Logger) DirectoryService {
	return &directoryService{
		guides: guides,
		log:    log.With().Str("service", "directory").Logger(),
	}
}

// List returns the directory, optionally filtered by exact city match.
// Filtering happens on the loaded snapshot and never touches the store.
func (s *directoryService) List(ctx context.Context, city string) ([]models.GuideRecord, error) {
	records, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if city == "" || city == CityAll {
		return records, nil
	}

	filtered := make([]models.GuideRecord, 0)
	for _, rec := range records {
		if rec.City == city {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// Add appends one record per selected city, in city-list order. Zero cities
// is a silent no-op: the current snapshot is returned unchanged.
func (s *directoryService) Add(ctx context.Context, cities []string, fields models.GuideFields) ([]models.GuideRecord, error) {
	records, rev, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		return records, nil
	}

	for _, city := range cities {
		rec := models.GuideRecord{ID: uuid.NewString()}
		rec.Apply(fields)
		rec.City = city
		records = append(records, rec)
	}

	if err := s.guides.SaveAll(ctx, records, rev); err != nil {
		return nil, err
	}

	s.log.Info().Int("added", len(cities)).Msg("Records added")
	return s.refresh(ctx)
}

// Update overwrites the fields of the record with the given ID
func (s *directoryService) Update(ctx context.Context, id string, fields models.GuideFields) ([]models.GuideRecord, error) {
	records, rev, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(records, id)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	records[idx].Apply(fields)

	if err := s.guides.SaveAll(ctx, records, rev); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", id).Msg("Record updated")
	return s.refresh(ctx)
}

// Delete removes the record with the given ID; records after it shift down
// by one position.
func (s *directoryService) Delete(ctx context.Context, id string) ([]models.GuideRecord, error) {
	records, rev, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(records, id)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	records = append(records[:idx], records[idx+1:]...)

	if err := s.guides.SaveAll(ctx, records, rev); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", id).Msg("Record deleted")
	return s.refresh(ctx)
}

// Count returns the number of records in the directory
func (s *directoryService) Count(ctx context.Context) (int, error) {
	return s.guides.Count(ctx)
}

// MailtoLink builds the compose link for one record
func (s *directoryService) MailtoLink(ctx context.Context, id, tripCode, dateText, busInput string) (mailto.Link, error) {
	records, _, err := s.load(ctx)
	if err != nil {
		return mailto.Link{}, err
	}

	idx := indexOf(records, id)
	if idx == -1 {
		return mailto.Link{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return mailto.Build(records[idx], tripCode, dateText, busInput), nil
}

// load fetches the current snapshot and backfills IDs onto legacy rows that
// predate the ID column. The backfill is persisted immediately so that IDs
// stay stable across requests.
func (s *directoryService) load(ctx context.Context) ([]models.GuideRecord, repository.Revision, error) {
	records, rev, err := s.guides.LoadAll(ctx)
	if err != nil {
		return nil, "", err
	}

	missing := 0
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
			missing++
		}
	}
	if missing == 0 {
		return records, rev, nil
	}

	if err := s.guides.SaveAll(ctx, records, rev); err != nil {
		return nil, "", err
	}
	s.log.Info().Int("backfilled", missing).Msg("Assigned IDs to legacy rows")

	return s.guides.LoadAll(ctx)
}

// refresh re-reads the store after a mutation
func (s *directoryService) refresh(ctx context.Context) ([]models.GuideRecord, error) {
	records, _, err := s.guides.LoadAll(ctx)
	return records, err
}

func indexOf(records []models.GuideRecord, id string) int {
	for i, rec := range records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}
