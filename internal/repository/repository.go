package repository

import (
	"context"
	"errors"

	"github.com/guide-directory-api/internal/config"
	"github.com/guide-directory-api/internal/gateway"
	"github.com/guide-directory-api/internal/models"
	"github.com/rs/zerolog"
)

// ErrConflict is returned by SaveAll when the backing tab changed between
// the caller's load and the save. The caller's snapshot is stale; it must
// reload and retry.
var ErrConflict = errors.New("backing tab changed since load")

// Revision identifies the exact contents of a tab at load time. It is
// computed from the raw rows, not stored in the backend.
type Revision string

// GuideRepository is the record store for the guide directory. Every load
// reads the whole tab and every save rewrites it; there is no per-row
// update and no merge.
type GuideRepository interface {
	// LoadAll returns every record in stored order together with the
	// revision of the tab contents. An empty tab yields an empty slice.
	LoadAll(ctx context.Context) ([]models.GuideRecord, Revision, error)

	// SaveAll serializes header + one row per record and overwrites the
	// whole tab. It fails with ErrConflict if the tab's revision no longer
	// matches expected.
	SaveAll(ctx context.Context, records []models.GuideRecord, expected Revision) error

	// Count returns the number of data rows currently stored
	Count(ctx context.Context) (int, error)
}

// CredentialRepository reads the ADMIN tab
type CredentialRepository interface {
	LoadAll(ctx context.Context) ([]models.AdminCredential, error)
}

// ReferenceRepository reads one column of an auxiliary tab
type ReferenceRepository interface {
	LoadList(ctx context.Context, tab, column string) ([]string, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Guide      GuideRepository
	Credential CredentialRepository
	Reference  ReferenceRepository
}

// New creates all repositories over the given gateway
func New(gw gateway.Gateway, cfg *config.Config, log zerolog.Logger) *Repositories {
	return &Repositories{
		Guide:      NewGuideRepo(gw, cfg.Tabs.Guides, log),
		Credential: NewCredentialRepo(gw, cfg.Tabs.Admin),
		Reference:  NewReferenceRepo(gw),
	}
}
