package benchmark

import (
	"context"
	"fmt"
	"testing"

	"github.com/guide-directory-api/internal/config"
	"github.com/guide-directory-api/internal/gateway"
	"github.com/guide-directory-api/internal/mailto"
	"github.com/guide-directory-api/internal/models"
	"github.com/guide-directory-api/internal/repository"
	"github.com/rs/zerolog"
)

func seededRepos(n int) (*repository.Repositories, error) {
	gw := gateway.NewMemory()
	cfg := &config.Config{
		Tabs: config.TabsConfig{Guides: "Incorporaciones", Admin: "ADMIN"},
	}
	repos := repository.New(gw, cfg, zerolog.Nop())

	records := make([]models.GuideRecord, n)
	for i := 0; i < n; i++ {
		records[i] = models.GuideRecord{
			ID:        fmt.Sprintf("id-%04d", i),
			City:      fmt.Sprintf("City %02d", i%20),
			FirstName: fmt.Sprintf("Guide %04d", i),
			WorkEmail: fmt.Sprintf("guide%04d@emv.com", i),
		}
	}

	_, rev, err := repos.Guide.LoadAll(context.Background())
	if err != nil {
		return nil, err
	}
	if err := repos.Guide.SaveAll(context.Background(), records, rev); err != nil {
		return nil, err
	}
	return repos, nil
}

// BenchmarkLoadAll measures a whole-tab read of 1000 records
func BenchmarkLoadAll(b *testing.B) {
	repos, err := seededRepos(1000)
	if err != nil {
		b.Fatalf("seed failed: %v", err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, _, err := repos.Guide.LoadAll(context.Background()); err != nil {
			b.Fatalf("LoadAll failed: %v", err)
		}
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}

// BenchmarkSaveAll measures the whole-tab rewrite path, revision check included
func BenchmarkSaveAll(b *testing.B) {
	repos, err := seededRepos(1000)
	if err != nil {
		b.Fatalf("seed failed: %v", err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		records, rev, err := repos.Guide.LoadAll(context.Background())
		if err != nil {
			b.Fatalf("LoadAll failed: %v", err)
		}
		if err := repos.Guide.SaveAll(context.Background(), records, rev); err != nil {
			b.Fatalf("SaveAll failed: %v", err)
		}
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}

// BenchmarkMailtoBuild measures compose-link construction
func BenchmarkMailtoBuild(b *testing.B) {
	rec := models.GuideRecord{
		ID:            "id-1",
		City:          "Lima",
		FirstName:     "Ana",
		WorkEmail:     "a@emv.com",
		PersonalEmail: "a@personal.com",
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		link := mailto.Build(rec, "B1", "12/05", "1,2")
		if link.URI() == "" {
			b.Fatal("empty URI")
		}
	}
}
