package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"alphagate/internal/models/db_models"
	"alphagate/pkg/utils"
)

func seedAccount(repo *stubAccountRepo, role string, subscribed bool) uuid.UUID {
	id := uuid.New()
	repo.accounts[id] = db_models.Account{
		BaseModel:    db_models.BaseModel{ID: id, CreatedAt: 1, UpdatedAt: 1},
		Email:        id.String() + "@example.com",
		Role:         role,
		IsSubscribed: subscribed,
	}
	return id
}

func TestResolveNoToken(t *testing.T) {
	repo := newStubAccountRepo()
	// An admin row exists, but with no session it must never matter.
	seedAccount(repo, db_models.RoleAdmin, true)
	gate := NewAccessGate(repo)

	level, accountID := gate.Resolve(context.Background(), "")
	if level != LevelAnonymous {
		t.Fatalf("expected anonymous, got %s", level)
	}
	if accountID != uuid.Nil {
		t.Fatalf("expected nil account id, got %s", accountID)
	}
}

func TestResolveGarbageToken(t *testing.T) {
	gate := NewAccessGate(newStubAccountRepo())

	if level, _ := gate.Resolve(context.Background(), "not-a-jwt"); level != LevelAnonymous {
		t.Fatalf("expected anonymous, got %s", level)
	}
}

func TestResolveLevelsFromStoredRole(t *testing.T) {
	repo := newStubAccountRepo()
	gate := NewAccessGate(repo)

	cases := []struct {
		name       string
		role       string
		subscribed bool
		want       AccessLevel
	}{
		{"plain user", db_models.RoleUser, false, LevelAuthenticated},
		{"subscriber", db_models.RoleUser, true, LevelSubscribed},
		{"admin", db_models.RoleAdmin, false, LevelAdmin},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := seedAccount(repo, tc.role, tc.subscribed)
			token, err := utils.CreateToken(id, tc.role)
			if err != nil {
				t.Fatalf("CreateToken error: %v", err)
			}

			level, accountID := gate.Resolve(context.Background(), token)
			if level != tc.want {
				t.Fatalf("got %s, want %s", level, tc.want)
			}
			if accountID != id {
				t.Fatalf("account id mismatch: got %s, want %s", accountID, id)
			}
		})
	}
}

func TestResolveAdminClaimWithoutRowDegrades(t *testing.T) {
	// Token says admin, but no matching account exists. The claim alone
	// must never grant admin.
	gate := NewAccessGate(newStubAccountRepo())

	token, err := utils.CreateToken(uuid.New(), db_models.RoleAdmin)
	if err != nil {
		t.Fatalf("CreateToken error: %v", err)
	}

	if level, _ := gate.Resolve(context.Background(), token); level != LevelAuthenticated {
		t.Fatalf("expected authenticated, got %s", level)
	}
}

func TestResolveLookupFailureDegrades(t *testing.T) {
	repo := newStubAccountRepo()
	id := seedAccount(repo, db_models.RoleAdmin, true)
	repo.failFind = true
	gate := NewAccessGate(repo)

	token, err := utils.CreateToken(id, db_models.RoleAdmin)
	if err != nil {
		t.Fatalf("CreateToken error: %v", err)
	}

	if level, _ := gate.Resolve(context.Background(), token); level != LevelAuthenticated {
		t.Fatalf("expected authenticated on lookup failure, got %s", level)
	}
}
