package service

import (
	"context"
	"errors"

	"github.com/guide-directory-api/internal/config"
	"github.com/guide-directory-api/internal/mailto"
	"github.com/guide-directory-api/internal/models"
	"github.com/guide-directory-api/internal/repository"
	"github.com/rs/zerolog"
)

var (
	// ErrNotFound means the addressed record is not in the current snapshot
	ErrNotFound = errors.New("guide record not found")

	// ErrInvalidCredentials means no ADMIN row matched the submitted pair.
	// It is deliberately distinct from a backend failure.
	ErrInvalidCredentials = errors.New("incorrect credentials")
)

// DirectoryService drives the guide directory workflow: list, add, edit,
// delete, and mailto-link building
type DirectoryService interface {
	List(ctx context.Context, city string) ([]models.GuideRecord, error)
	Add(ctx context.Context, cities []string, fields models.GuideFields) ([]models.GuideRecord, error)
	Update(ctx context.Context, id string, fields models.GuideFields) ([]models.GuideRecord, error)
	Delete(ctx context.Context, id string) ([]models.GuideRecord, error)
	Count(ctx context.Context) (int, error)
	MailtoLink(ctx context.Context, id, tripCode, dateText, busInput string) (mailto.Link, error)
}

// AuthService validates admin credentials and manages session tokens
type AuthService interface {
	Login(ctx context.Context, username, password string) (Session, error)
	Verify(token string) (string, error)
}

// ReferenceService loads the selection-control lookup lists
type ReferenceService interface {
	TripCodes(ctx context.Context) models.ReferenceList
	Cities(ctx context.Context) models.ReferenceList
}

// Services holds all service interfaces
type Services struct {
	Directory DirectoryService
	Auth      AuthService
	Reference ReferenceService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Directory: newDirectoryService(repos.Guide, log),
		Auth:      newAuthService(repos.Credential, &cfg.Auth, log),
		Reference: newReferenceService(repos.Reference, &cfg.Tabs, log),
	}
}
