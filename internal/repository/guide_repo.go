package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/guide-directory-api/internal/gateway"
	"github.com/guide-directory-api/internal/models"
	"github.com/rs/zerolog"
)

// guideRepo is the concrete implementation of GuideRepository
type guideRepo struct {
	gw  gateway.Gateway
	tab string
	log zerolog.Logger
}

// NewGuideRepo creates a new guide record store over the gateway
func NewGuideRepo(gw gateway.Gateway, tab string, log zerolog.Logger) GuideRepository {
	return &guideRepo{
		gw:  gw,
		tab: tab,
		log: log.With().Str("component", "guide-repo").Logger(),
	}
}

// LoadAll reads the whole tab and parses every data row in stored order
func (r *guideRepo) LoadAll(ctx context.Context) ([]models.GuideRecord, Revision, error) {
	rows, err := r.gw.ReadAll(ctx, r.tab)
	if err != nil {
		return nil, "", err
	}

	records := make([]models.GuideRecord, 0)
	if len(rows) > 1 {
		for _, row := range rows[1:] {
			records = append(records, models.GuideFromRow(row))
		}
	}
	return records, revisionOf(rows), nil
}

// SaveAll rewrites the whole tab: header row first, then one row per record.
// Before writing it re-reads the tab and rejects the save with ErrConflict
// if anyone else wrote since the caller's load. The check and the write are
// not atomic, so a conflict can still slip through the gap; it narrows the
// silent last-writer-wins window rather than closing it.
func (r *guideRepo) SaveAll(ctx context.Context, records []models.GuideRecord, expected Revision) error {
	current, err := r.gw.ReadAll(ctx, r.tab)
	if err != nil {
		return err
	}
	if revisionOf(current) != expected {
		return fmt.Errorf("%w: tab %s", ErrConflict, r.tab)
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, models.GuideColumns)
	for _, rec := range records {
		rows = append(rows, rec.Row())
	}

	if err := r.gw.ReplaceAll(ctx, r.tab, rows); err != nil {
		return err
	}

	r.log.Debug().Int("records", len(records)).Msg("Directory rewritten")
	return nil
}

// Count returns the number of data rows in the tab
func (r *guideRepo) Count(ctx context.Context) (int, error) {
	rows, err := r.gw.ReadAll(ctx, r.tab)
	if err != nil {
		return 0, err
	}
	if len(rows) <= 1 {
		return 0, nil
	}
	return len(rows) - 1, nil
}

// revisionOf hashes the raw rows. Cell boundaries are delimited so that
// ["ab","c"] and ["a","bc"] hash differently.
func revisionOf(rows [][]string) Revision {
	h := sha256.New()
	for _, row := range rows {
		for _, cell := range row {
			h.Write([]byte(cell))
			h.Write([]byte{0x1f})
		}
		h.Write([]byte{0x1e})
	}
	return Revision(hex.EncodeToString(h.Sum(nil)))
}
