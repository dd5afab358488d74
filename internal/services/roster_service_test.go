package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"alphagate/internal/models/db_models"
	"alphagate/internal/models/request_models"
	"alphagate/pkg/utils"
)

func TestUpdateAccountOnlyTouchesWhitelistedColumns(t *testing.T) {
	repo := newStubAccountRepo()
	id := uuid.New()
	repo.accounts[id] = db_models.Account{
		BaseModel:        db_models.BaseModel{ID: id, CreatedAt: 1, UpdatedAt: 1},
		Name:             "Jane",
		Email:            "jane@example.com",
		Role:             db_models.RoleUser,
		SubscriptionTier: db_models.TierFree,
	}
	svc := NewRosterService(repo)

	role := db_models.RoleAdmin
	err := svc.UpdateAccount(context.Background(), id, request_models.RosterEditRequest{Role: &role})
	if err != nil {
		t.Fatalf("UpdateAccount error: %v", err)
	}

	for column := range repo.lastUpdateFields {
		switch column {
		case "role", "subscription_tier", "is_subscribed", "subscription_end_date", "updated_at":
		default:
			t.Fatalf("non-whitelisted column written: %s", column)
		}
	}
	if _, ok := repo.lastUpdateFields["role"]; !ok {
		t.Fatalf("role not written: %v", repo.lastUpdateFields)
	}
	if len(repo.lastUpdateFields) != 2 {
		t.Fatalf("expected only role and updated_at, got %v", repo.lastUpdateFields)
	}

	after := repo.accounts[id]
	if after.Email != "jane@example.com" {
		t.Fatalf("email changed through roster edit: %q", after.Email)
	}
	if after.Role != db_models.RoleAdmin {
		t.Fatalf("role not applied: %q", after.Role)
	}
	if after.SubscriptionTier != db_models.TierFree {
		t.Fatalf("tier changed without being in the draft: %q", after.SubscriptionTier)
	}
}

func TestUpdateAccountValidatesEnums(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewRosterService(repo)

	badRole := "superuser"
	err := svc.UpdateAccount(context.Background(), uuid.New(), request_models.RosterEditRequest{Role: &badRole})
	if !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected validation error for role, got %v", err)
	}
	if repo.lastUpdateFields != nil {
		t.Fatalf("store touched despite invalid role")
	}

	badTier := "platinum"
	err = svc.UpdateAccount(context.Background(), uuid.New(), request_models.RosterEditRequest{SubscriptionTier: &badTier})
	if !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected validation error for tier, got %v", err)
	}
}

func TestUpdateAccountMissingRow(t *testing.T) {
	svc := NewRosterService(newStubAccountRepo())

	subscribed := true
	err := svc.UpdateAccount(context.Background(), uuid.New(), request_models.RosterEditRequest{IsSubscribed: &subscribed})
	if !errors.Is(err, utils.ErrAccountNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListAccountsNewestFirstWithCounters(t *testing.T) {
	repo := newStubAccountRepo()
	older := uuid.New()
	repo.accounts[older] = db_models.Account{
		BaseModel:        db_models.BaseModel{ID: older, CreatedAt: 100},
		Email:            "old@example.com",
		Role:             db_models.RoleAdmin,
		IsSubscribed:     true,
		SubscriptionTier: db_models.TierPremium,
	}
	newer := uuid.New()
	repo.accounts[newer] = db_models.Account{
		BaseModel:        db_models.BaseModel{ID: newer, CreatedAt: 200},
		Email:            "new@example.com",
		Role:             db_models.RoleUser,
		SubscriptionTier: db_models.TierFree,
	}
	svc := NewRosterService(repo)

	roster, err := svc.ListAccounts(context.Background())
	if err != nil {
		t.Fatalf("ListAccounts error: %v", err)
	}

	if len(roster.Users) != 2 || roster.Users[0].Email != "new@example.com" {
		t.Fatalf("wrong order: %+v", roster.Users)
	}
	if roster.Stats.Total != 2 || roster.Stats.Admins != 1 ||
		roster.Stats.Subscribed != 1 || roster.Stats.Premium != 1 {
		t.Fatalf("wrong counters: %+v", roster.Stats)
	}
}

func TestRosterCountersEmptySnapshot(t *testing.T) {
	stats := RosterCounters(nil)
	if stats.Total != 0 || stats.Admins != 0 || stats.Subscribed != 0 || stats.Premium != 0 {
		t.Fatalf("expected zero counters, got %+v", stats)
	}
}
