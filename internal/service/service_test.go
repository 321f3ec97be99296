package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/guide-directory-api/internal/config"
	"github.com/guide-directory-api/internal/gateway"
	"github.com/guide-directory-api/internal/mocks"
	"github.com/guide-directory-api/internal/models"
	"github.com/guide-directory-api/internal/repository"
	"github.com/guide-directory-api/internal/service"
	"github.com/rs/zerolog"
)

func setupServices() (*service.Services, *mocks.MockGuideRepository, *mocks.MockCredentialRepository, *mocks.MockReferenceRepository) {
	mockGuide := mocks.NewMockGuideRepository()
	mockCred := mocks.NewMockCredentialRepository()
	mockRef := mocks.NewMockReferenceRepository()

	repos := &repository.Repositories{
		Guide:      mockGuide,
		Credential: mockCred,
		Reference:  mockRef,
	}

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret",
			SessionTTL: time.Hour,
		},
		Tabs: config.TabsConfig{
			TripCodes:       "Basicos",
			TripCodesColumn: "Básicos",
			Cities:          "Ciudades",
			CitiesColumn:    "Ciudad",
		},
	}

	return service.NewServices(repos, cfg, zerolog.Nop()), mockGuide, mockCred, mockRef
}

func seedGuides(repo *mocks.MockGuideRepository, records ...models.GuideRecord) {
	repo.Records = append(repo.Records, records...)
}

func TestDirectoryService_AddIsAdditiveAndPositional(t *testing.T) {
	services, mockGuide, _, _ := setupServices()
	seedGuides(mockGuide,
		models.GuideRecord{ID: "id-1", City: "Lima", FirstName: "Ana", WorkEmail: "a@emv.com"},
	)

	records, err := services.Directory.Add(context.Background(), []string{"A", "B"}, models.GuideFields{
		FirstName: "X",
		WorkEmail: "x@emv.com",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	// New records append at the end, in city-list order
	if records[1].City != "A" || records[2].City != "B" {
		t.Errorf("Expected cities A then B at the end, got %q, %q", records[1].City, records[2].City)
	}
	if records[1].FirstName != "X" || records[2].FirstName != "X" {
		t.Error("Both added records should carry the guide's fields")
	}
	if records[1].ID == "" || records[2].ID == "" {
		t.Error("Added records must get IDs")
	}
	if records[1].ID == records[2].ID {
		t.Error("Added records must get distinct IDs")
	}
	if records[0].ID != "id-1" {
		t.Errorf("Existing record must be untouched, got %+v", records[0])
	}
}

func TestDirectoryService_AddZeroCitiesIsNoOp(t *testing.T) {
	services, mockGuide, _, _ := setupServices()
	seedGuides(mockGuide,
		models.GuideRecord{ID: "id-1", City: "Lima", FirstName: "Ana", WorkEmail: "a@emv.com"},
	)

	records, err := services.Directory.Add(context.Background(), nil, models.GuideFields{FirstName: "X"})
	if err != nil {
		t.Fatalf("Zero-city add must not error: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Expected unchanged sequence, got %d records", len(records))
	}
	if mockGuide.SaveCalls != 0 {
		t.Errorf("Zero-city add must not write, saw %d saves", mockGuide.SaveCalls)
	}
}

func TestDirectoryService_DeleteReindexes(t *testing.T) {
	services, mockGuide, _, _ := setupServices()
	seedGuides(mockGuide,
		models.GuideRecord{ID: "id-1", City: "Lima", FirstName: "Ana", WorkEmail: "a@emv.com"},
		models.GuideRecord{ID: "id-2", City: "Cusco", FirstName: "Luis", WorkEmail: "l@emv.com"},
		models.GuideRecord{ID: "id-3", City: "Trujillo", FirstName: "Eva", WorkEmail: "e@emv.com"},
	)

	records, err := services.Directory.Delete(context.Background(), "id-2")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	// Records after the deleted one shift down by one
	if records[0].ID != "id-1" || records[1].ID != "id-3" {
		t.Errorf("Expected [id-1 id-3], got [%s %s]", records[0].ID, records[1].ID)
	}
}

func TestDirectoryService_UpdateByID(t *testing.T) {
	services, mockGuide, _, _ := setupServices()
	seedGuides(mockGuide,
		models.GuideRecord{ID: "id-1", City: "Lima", FirstName: "Ana", WorkEmail: "a@emv.com"},
		models.GuideRecord{ID: "id-2", City: "Cusco", FirstName: "Luis", WorkEmail: "l@emv.com"},
	)

	records, err := services.Directory.Update(context.Background(), "id-2", models.GuideFields{
		City:      "Arequipa",
		FirstName: "Luis",
		WorkEmail: "l@emv.com",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if records[1].City != "Arequipa" {
		t.Errorf("Expected updated city, got %q", records[1].City)
	}
	if records[1].ID != "id-2" {
		t.Errorf("Identity must survive an update, got %q", records[1].ID)
	}
	if records[0].City != "Lima" {
		t.Errorf("Unrelated record must be untouched, got %+v", records[0])
	}
}

func TestDirectoryService_UnknownID(t *testing.T) {
	services, mockGuide, _, _ := setupServices()
	seedGuides(mockGuide,
		models.GuideRecord{ID: "id-1", City: "Lima", FirstName: "Ana", WorkEmail: "a@emv.com"},
	)

	_, err := services.Directory.Update(context.Background(), "nope", models.GuideFields{})
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	_, err = services.Directory.Delete(context.Background(), "nope")
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if mockGuide.SaveCalls != 0 {
		t.Errorf("Failed lookups must not write, saw %d saves", mockGuide.SaveCalls)
	}
}

func TestDirectoryService_FilterIsNonDestructive(t *testing.T) {
	services, mockGuide, _, _ := setupServices()
	seedGuides(mockGuide,
		models.GuideRecord{ID: "id-1", City: "Lima", FirstName: "Ana", WorkEmail: "a@emv.com"},
		models.GuideRecord{ID: "id-2", City: "Cusco", FirstName: "Luis", WorkEmail: "l@emv.com"},
	)

	filtered, err := services.Directory.List(context.Background(), "Lima")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].City != "Lima" {
		t.Fatalf("Expected only Lima, got %+v", filtered)
	}

	if mockGuide.SaveCalls != 0 {
		t.Errorf("Filtering must not write, saw %d saves", mockGuide.SaveCalls)
	}

	all, err := services.Directory.List(context.Background(), "ALL")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Filter must not shrink the store, got %d records", len(all))
	}
}

func TestDirectoryService_RefreshAfterMutation(t *testing.T) {
	services, mockGuide, _, _ := setupServices()

	_, err := services.Directory.Add(context.Background(), []string{"Lima"}, models.GuideFields{
		FirstName: "Ana",
		WorkEmail: "a@emv.com",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Load before the mutation plus the reload after the save
	if mockGuide.LoadCalls != 2 {
		t.Errorf("Expected load + refresh, got %d loads", mockGuide.LoadCalls)
	}
	if mockGuide.SaveCalls != 1 {
		t.Errorf("Expected exactly one save, got %d", mockGuide.SaveCalls)
	}
}

func TestDirectoryService_BackfillsLegacyIDs(t *testing.T) {
	services, mockGuide, _, _ := setupServices()
	seedGuides(mockGuide,
		models.GuideRecord{City: "Lima", FirstName: "Ana", WorkEmail: "a@emv.com"},
	)

	records, err := services.Directory.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if records[0].ID == "" {
		t.Error("Legacy record should have been assigned an ID")
	}
	if mockGuide.SaveCalls != 1 {
		t.Errorf("Backfill should persist once, saw %d saves", mockGuide.SaveCalls)
	}

	// The assigned ID is durable across interactions
	first := records[0].ID
	again, _ := services.Directory.List(context.Background(), "")
	if again[0].ID != first {
		t.Errorf("ID changed between loads: %q vs %q", first, again[0].ID)
	}
	if mockGuide.SaveCalls != 1 {
		t.Errorf("Backfill must not repeat, saw %d saves", mockGuide.SaveCalls)
	}
}

func TestDirectoryService_ConflictSurfaces(t *testing.T) {
	services, mockGuide, _, _ := setupServices()
	mockGuide.SaveErr = repository.ErrConflict

	_, err := services.Directory.Add(context.Background(), []string{"Lima"}, models.GuideFields{
		FirstName: "Ana",
		WorkEmail: "a@emv.com",
	})
	if !errors.Is(err, repository.ErrConflict) {
		t.Errorf("Expected ErrConflict, got %v", err)
	}
}

func TestDirectoryService_MailtoLink(t *testing.T) {
	services, mockGuide, _, _ := setupServices()
	seedGuides(mockGuide,
		models.GuideRecord{ID: "id-1", City: "Lima", FirstName: "Ana", WorkEmail: "a@x.com"},
	)
	ctx := context.Background()

	link, err := services.Directory.MailtoLink(ctx, "id-1", "B1", "12/05", "1")
	if err != nil {
		t.Fatalf("MailtoLink failed: %v", err)
	}
	if len(link.Recipients) != 1 || link.Recipients[0] != "a@x.com" {
		t.Errorf("Expected recipients [a@x.com], got %v", link.Recipients)
	}

	_, err = services.Directory.MailtoLink(ctx, "nope", "B1", "12/05", "1")
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestAuthService_ExactMatch(t *testing.T) {
	services, _, mockCred, _ := setupServices()
	mockCred.Credentials = []models.AdminCredential{
		{Username: "bob", Password: "pw1"},
	}
	ctx := context.Background()

	session, err := services.Auth.Login(ctx, "bob", "pw1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if session.Token == "" {
		t.Error("Expected a session token")
	}
	if session.Username != "bob" {
		t.Errorf("Expected username bob, got %q", session.Username)
	}

	// Case matters, on both fields
	if _, err := services.Auth.Login(ctx, "bob", "PW1"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := services.Auth.Login(ctx, "Bob", "pw1"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ReadsCredentialsFreshEveryCall(t *testing.T) {
	services, _, mockCred, _ := setupServices()
	mockCred.Credentials = []models.AdminCredential{{Username: "bob", Password: "pw1"}}
	ctx := context.Background()

	services.Auth.Login(ctx, "bob", "pw1")
	services.Auth.Login(ctx, "bob", "pw1")

	if mockCred.LoadCalls != 2 {
		t.Errorf("Expected a fresh read per login, got %d reads", mockCred.LoadCalls)
	}
}

func TestAuthService_BackendFailureIsNotInvalidCredentials(t *testing.T) {
	services, _, mockCred, _ := setupServices()
	mockCred.LoadErr = fmt.Errorf("%w: read tab ADMIN: offline", gateway.ErrBackendUnavailable)

	_, err := services.Auth.Login(context.Background(), "bob", "pw1")
	if !errors.Is(err, gateway.ErrBackendUnavailable) {
		t.Errorf("Expected ErrBackendUnavailable, got %v", err)
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		t.Error("Backend failure must not masquerade as bad credentials")
	}
}

func TestAuthService_VerifyRoundTrip(t *testing.T) {
	services, _, mockCred, _ := setupServices()
	mockCred.Credentials = []models.AdminCredential{{Username: "bob", Password: "pw1"}}

	session, err := services.Auth.Login(context.Background(), "bob", "pw1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	username, err := services.Auth.Verify(session.Token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if username != "bob" {
		t.Errorf("Expected bob, got %q", username)
	}

	if _, err := services.Auth.Verify("not-a-token"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for garbage token, got %v", err)
	}
}

func TestReferenceService_LoadsAndSorts(t *testing.T) {
	services, _, _, mockRef := setupServices()
	mockRef.Lists["Basicos/Básicos"] = []string{"B1", "B2"}
	mockRef.Lists["Ciudades/Ciudad"] = []string{"Cusco", "Lima"}

	codes := services.Reference.TripCodes(context.Background())
	if !codes.Available {
		t.Error("Expected trip codes to be available")
	}
	if len(codes.Values) != 2 || codes.Values[0] != "B1" {
		t.Errorf("Unexpected trip codes: %v", codes.Values)
	}

	cities := services.Reference.Cities(context.Background())
	if len(cities.Values) != 2 {
		t.Errorf("Unexpected cities: %v", cities.Values)
	}
}

func TestReferenceService_DegradesToEmpty(t *testing.T) {
	services, _, _, mockRef := setupServices()
	mockRef.LoadErr = fmt.Errorf("%w: read tab Basicos: offline", gateway.ErrBackendUnavailable)

	codes := services.Reference.TripCodes(context.Background())
	if codes.Available {
		t.Error("Unreachable tab must be flagged unavailable")
	}
	if codes.Values == nil || len(codes.Values) != 0 {
		t.Errorf("Expected empty values, got %v", codes.Values)
	}
}
