package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"alphagate/internal/models/db_models"
	"alphagate/internal/repositories"
	"alphagate/pkg/utils"
)

// AccessLevel orders the four caller states. Gating compares levels, so
// the ordering is load-bearing: anonymous < authenticated < subscribed
// < admin.
type AccessLevel int

const (
	LevelAnonymous AccessLevel = iota
	LevelAuthenticated
	LevelSubscribed
	LevelAdmin
)

func (l AccessLevel) String() string {
	switch l {
	case LevelAuthenticated:
		return "authenticated"
	case LevelSubscribed:
		return "subscribed"
	case LevelAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// CanViewPremium reports whether detailed analysis, strategies and risk
// factors may be shown to this caller.
func (l AccessLevel) CanViewPremium() bool {
	return l >= LevelSubscribed
}

// AccessGate resolves a bearer token to an access level. It never
// returns an error: any failure degrades to the lowest level the
// evidence still supports, and admin is only granted from the stored
// role, never from the token claim alone.
type AccessGate interface {
	Resolve(ctx context.Context, token string) (AccessLevel, uuid.UUID)
}

type accessGate struct {
	accountRepo repositories.AccountRepository
}

func NewAccessGate(accountRepo repositories.AccountRepository) AccessGate {
	return &accessGate{accountRepo: accountRepo}
}

func (g *accessGate) Resolve(ctx context.Context, token string) (AccessLevel, uuid.UUID) {
	if token == "" {
		return LevelAnonymous, uuid.Nil
	}

	claims, err := utils.ValidateToken(token)
	if err != nil || claims == nil {
		return LevelAnonymous, uuid.Nil
	}

	accountID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return LevelAnonymous, uuid.Nil
	}

	account, err := g.accountRepo.FindByID(ctx, accountID.String())
	if err != nil {
		log.Printf("Access gate lookup failed: %v", err)
		return LevelAuthenticated, accountID
	}
	if account == nil {
		return LevelAuthenticated, accountID
	}

	return LevelForAccount(account), accountID
}

func LevelForAccount(account *db_models.Account) AccessLevel {
	if account == nil {
		return LevelAnonymous
	}
	if account.Role == db_models.RoleAdmin {
		return LevelAdmin
	}
	if account.IsSubscribed {
		return LevelSubscribed
	}
	return LevelAuthenticated
}
