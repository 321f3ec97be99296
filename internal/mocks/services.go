package mocks

import (
	"context"

	"github.com/guide-directory-api/internal/mailto"
	"github.com/guide-directory-api/internal/models"
	"github.com/guide-directory-api/internal/service"
)

// MockDirectoryService is a mock implementation of DirectoryService
type MockDirectoryService struct {
	ListFunc   func(ctx context.Context, city string) ([]models.GuideRecord, error)
	AddFunc    func(ctx context.Context, cities []string, fields models.GuideFields) ([]models.GuideRecord, error)
	UpdateFunc func(ctx context.Context, id string, fields models.GuideFields) ([]models.GuideRecord, error)
	DeleteFunc func(ctx context.Context, id string) ([]models.GuideRecord, error)
	MailtoFunc func(ctx context.Context, id, tripCode, dateText, busInput string) (mailto.Link, error)

	Records []models.GuideRecord
}

// Verify interface compliance
var _ service.DirectoryService = (*MockDirectoryService)(nil)

func NewMockDirectoryService() *MockDirectoryService {
	return &MockDirectoryService{Records: make([]models.GuideRecord, 0)}
}

func (m *MockDirectoryService) List(ctx context.Context, city string) ([]models.GuideRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, city)
	}
	if city == "" || city == service.CityAll {
		return m.Records, nil
	}
	filtered := make([]models.GuideRecord, 0)
	for _, rec := range m.Records {
		if rec.City == city {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

func (m *MockDirectoryService) Add(ctx context.Context, cities []string, fields models.GuideFields) ([]models.GuideRecord, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, cities, fields)
	}
	for _, city := range cities {
		rec := models.GuideRecord{ID: "mock-" + city}
		rec.Apply(fields)
		rec.City = city
		m.Records = append(m.Records, rec)
	}
	return m.Records, nil
}

func (m *MockDirectoryService) Update(ctx context.Context, id string, fields models.GuideFields) ([]models.GuideRecord, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	for i := range m.Records {
		if m.Records[i].ID == id {
			m.Records[i].Apply(fields)
			return m.Records, nil
		}
	}
	return nil, service.ErrNotFound
}

func (m *MockDirectoryService) Delete(ctx context.Context, id string) ([]models.GuideRecord, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	for i := range m.Records {
		if m.Records[i].ID == id {
			m.Records = append(m.Records[:i], m.Records[i+1:]...)
			return m.Records, nil
		}
	}
	return nil, service.ErrNotFound
}

func (m *MockDirectoryService) Count(_ context.Context) (int, error) {
	return len(m.Records), nil
}

func (m *MockDirectoryService) MailtoLink(ctx context.Context, id, tripCode, dateText, busInput string) (mailto.Link, error) {
	if m.MailtoFunc != nil {
		return m.MailtoFunc(ctx, id, tripCode, dateText, busInput)
	}
	for _, rec := range m.Records {
		if rec.ID == id {
			return mailto.Build(rec, tripCode, dateText, busInput), nil
		}
	}
	return mailto.Link{}, service.ErrNotFound
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	LoginFunc  func(ctx context.Context, username, password string) (service.Session, error)
	VerifyFunc func(token string) (string, error)

	// ValidToken is accepted by the default Verify implementation
	ValidToken string
}

// Verify interface compliance
var _ service.AuthService = (*MockAuthService)(nil)

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{ValidToken: "test-token"}
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (service.Session, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return service.Session{Token: m.ValidToken, Username: username}, nil
}

func (m *MockAuthService) Verify(token string) (string, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	if token == m.ValidToken {
		return "admin", nil
	}
	return "", service.ErrInvalidCredentials
}

// MockReferenceService is a mock implementation of ReferenceService
type MockReferenceService struct {
	TripCodeValues []string
	CityValues     []string
	Unavailable    bool
}

// Verify interface compliance
var _ service.ReferenceService = (*MockReferenceService)(nil)

func NewMockReferenceService() *MockReferenceService {
	return &MockReferenceService{}
}

func (m *MockReferenceService) TripCodes(_ context.Context) models.ReferenceList {
	return models.ReferenceList{Values: m.TripCodeValues, Available: !m.Unavailable}
}

func (m *MockReferenceService) Cities(_ context.Context) models.ReferenceList {
	return models.ReferenceList{Values: m.CityValues, Available: !m.Unavailable}
}
