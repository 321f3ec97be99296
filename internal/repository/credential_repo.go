package repository

import (
	"context"

	"github.com/guide-directory-api/internal/gateway"
	"github.com/guide-directory-api/internal/models"
)

// credentialRepo is the concrete implementation of CredentialRepository
type credentialRepo struct {
	gw  gateway.Gateway
	tab string
}

// NewCredentialRepo creates a reader for the ADMIN tab
func NewCredentialRepo(gw gateway.Gateway, tab string) CredentialRepository {
	return &credentialRepo{gw: gw, tab: tab}
}

// LoadAll reads every credential row. There is no caching: authentication
// always sees the current tab contents.
func (r *credentialRepo) LoadAll(ctx context.Context) ([]models.AdminCredential, error) {
	rows, err := r.gw.ReadAll(ctx, r.tab)
	if err != nil {
		return nil, err
	}

	creds := make([]models.AdminCredential, 0)
	if len(rows) > 1 {
		for _, row := range rows[1:] {
			creds = append(creds, models.CredentialFromRow(row))
		}
	}
	return creds, nil
}
