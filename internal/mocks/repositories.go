package mocks

import (
	"context"
	"fmt"

	"github.com/guide-directory-api/internal/models"
	"github.com/guide-directory-api/internal/repository"
)

// MockGuideRepository is an in-memory implementation of GuideRepository
// with the same revision-checked whole-table write semantics as the real one
type MockGuideRepository struct {
	Records   []models.GuideRecord
	LoadErr   error
	SaveErr   error
	LoadCalls int
	SaveCalls int

	rev int
}

// Verify interface compliance
var _ repository.GuideRepository = (*MockGuideRepository)(nil)

func NewMockGuideRepository() *MockGuideRepository {
	return &MockGuideRepository{Records: make([]models.GuideRecord, 0)}
}

func (m *MockGuideRepository) LoadAll(_ context.Context) ([]models.GuideRecord, repository.Revision, error) {
	m.LoadCalls++
	if m.LoadErr != nil {
		return nil, "", m.LoadErr
	}
	return append([]models.GuideRecord(nil), m.Records...), m.revision(), nil
}

func (m *MockGuideRepository) SaveAll(_ context.Context, records []models.GuideRecord, expected repository.Revision) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if expected != m.revision() {
		return repository.ErrConflict
	}
	m.Records = append([]models.GuideRecord(nil), records...)
	m.rev++
	return nil
}

func (m *MockGuideRepository) Count(_ context.Context) (int, error) {
	if m.LoadErr != nil {
		return 0, m.LoadErr
	}
	return len(m.Records), nil
}

func (m *MockGuideRepository) revision() repository.Revision {
	return repository.Revision(fmt.Sprintf("rev-%d", m.rev))
}

// MockCredentialRepository is an in-memory implementation of CredentialRepository
type MockCredentialRepository struct {
	Credentials []models.AdminCredential
	LoadErr     error
	LoadCalls   int
}

// Verify interface compliance
var _ repository.CredentialRepository = (*MockCredentialRepository)(nil)

func NewMockCredentialRepository() *MockCredentialRepository {
	return &MockCredentialRepository{Credentials: make([]models.AdminCredential, 0)}
}

func (m *MockCredentialRepository) LoadAll(_ context.Context) ([]models.AdminCredential, error) {
	m.LoadCalls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]models.AdminCredential(nil), m.Credentials...), nil
}

// MockReferenceRepository is an in-memory implementation of ReferenceRepository
type MockReferenceRepository struct {
	// Lists is keyed by "tab/column"
	Lists   map[string][]string
	LoadErr error
}

// Verify interface compliance
var _ repository.ReferenceRepository = (*MockReferenceRepository)(nil)

func NewMockReferenceRepository() *MockReferenceRepository {
	return &MockReferenceRepository{Lists: make(map[string][]string)}
}

func (m *MockReferenceRepository) LoadList(_ context.Context, tab, column string) ([]string, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]string(nil), m.Lists[tab+"/"+column]...), nil
}
