package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"alphagate/internal/models/db_models"
	"alphagate/pkg/utils"
)

func seedProtocol(repo *stubProtocolRepo, name string, ranking float64, updatedAt int64) uuid.UUID {
	id := uuid.New()
	repo.protocols[id] = db_models.Protocol{
		BaseModel: db_models.BaseModel{ID: id, CreatedAt: updatedAt, UpdatedAt: updatedAt},
		Name:      name,
		Category:  db_models.CategoryDefi,
		Stage:     db_models.StageSeed,
		RiskLevel: db_models.RiskLow,

		RankingScore:     ranking,
		ShortDescription: "short",
		DetailedAnalysis: "premium analysis",
		EntryStrategy:    "enter early",
		ExitStrategy:     "exit at tge",
		RiskFactors:      []string{"smart contract risk"},
		Tasks:            []string{"bridge"},
	}
	return id
}

func TestListProtocolsOrderAndGating(t *testing.T) {
	repo := newStubProtocolRepo()
	seedProtocol(repo, "second", 50, 100)
	seedProtocol(repo, "first", 90, 200)
	svc := NewCatalogService(repo)

	cases := []struct {
		name        string
		level       AccessLevel
		wantPremium bool
	}{
		{"anonymous", LevelAnonymous, false},
		{"authenticated", LevelAuthenticated, false},
		{"subscribed", LevelSubscribed, true},
		{"admin", LevelAdmin, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			catalog, err := svc.ListProtocols(context.Background(), tc.level)
			if err != nil {
				t.Fatalf("ListProtocols error: %v", err)
			}
			if len(catalog.Protocols) != 2 {
				t.Fatalf("expected 2 protocols, got %d", len(catalog.Protocols))
			}
			if catalog.Protocols[0].Name != "first" || catalog.Protocols[1].Name != "second" {
				t.Fatalf("wrong ranking order: %q, %q", catalog.Protocols[0].Name, catalog.Protocols[1].Name)
			}

			view := catalog.Protocols[0]
			if view.ShortDescription != "short" {
				t.Fatalf("public field missing: %+v", view)
			}
			if tc.wantPremium {
				if view.PremiumLocked {
					t.Fatalf("premium should be unlocked for %s", tc.level)
				}
				if view.DetailedAnalysis == "" || len(view.RiskFactors) == 0 || len(view.Tasks) == 0 {
					t.Fatalf("premium fields missing for %s: %+v", tc.level, view)
				}
			} else {
				if !view.PremiumLocked {
					t.Fatalf("premium should be locked for %s", tc.level)
				}
				if view.DetailedAnalysis != "" || view.EntryStrategy != "" ||
					view.ExitStrategy != "" || view.RiskFactors != nil || view.Tasks != nil {
					t.Fatalf("premium fields leaked for %s: %+v", tc.level, view)
				}
			}
		})
	}
}

func TestListProtocolsLastUpdatedIsMax(t *testing.T) {
	repo := newStubProtocolRepo()
	for _, ts := range []string{"2024-01-01T00:00:00Z", "2024-03-15T00:00:00Z", "2024-02-01T00:00:00Z"} {
		parsed, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			t.Fatalf("parse %s: %v", ts, err)
		}
		seedProtocol(repo, ts, 1, parsed.Unix())
	}
	svc := NewCatalogService(repo)

	catalog, err := svc.ListProtocols(context.Background(), LevelAnonymous)
	if err != nil {
		t.Fatalf("ListProtocols error: %v", err)
	}
	if catalog.LastUpdated != "2024-03-15T00:00:00Z" {
		t.Fatalf("last_updated: got %q, want 2024-03-15T00:00:00Z", catalog.LastUpdated)
	}
}

func TestListProtocolsLastUpdatedDefaultsToNow(t *testing.T) {
	repo := newStubProtocolRepo()
	svc := NewCatalogService(repo)

	before := time.Now().Add(-2 * time.Second)
	catalog, err := svc.ListProtocols(context.Background(), LevelAnonymous)
	if err != nil {
		t.Fatalf("ListProtocols error: %v", err)
	}
	after := time.Now().Add(2 * time.Second)

	got, err := time.Parse(time.RFC3339, catalog.LastUpdated)
	if err != nil {
		t.Fatalf("last_updated not RFC3339: %q", catalog.LastUpdated)
	}
	if got.Before(before) || got.After(after) {
		t.Fatalf("last_updated %v not close to now", got)
	}
}

func TestListProtocolsFailureReturnsEmptySet(t *testing.T) {
	repo := newStubProtocolRepo()
	repo.failAll = true
	svc := NewCatalogService(repo)

	catalog, err := svc.ListProtocols(context.Background(), LevelAnonymous)
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("expected database error, got %v", err)
	}
	if catalog == nil || len(catalog.Protocols) != 0 {
		t.Fatalf("expected empty protocol set on failure, got %+v", catalog)
	}
}

func TestGetProtocolNotFound(t *testing.T) {
	repo := newStubProtocolRepo()
	svc := NewCatalogService(repo)

	if _, err := svc.GetProtocol(context.Background(), uuid.NewString(), LevelAdmin); !errors.Is(err, utils.ErrProtocolNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
