package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"alphagate/internal/models/db_models"
	"alphagate/internal/models/request_models"
	"alphagate/internal/models/response_models"
	"alphagate/internal/repositories"
	"alphagate/pkg/utils"
)

// RosterService is the admin view over accounts. Edits touch only the
// whitelisted subscription/role subset; email and id never change
// through this path.
type RosterService interface {
	ListAccounts(ctx context.Context) (*response_models.RosterResponse, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, req request_models.RosterEditRequest) error
}

type rosterService struct {
	accountRepo repositories.AccountRepository
}

func NewRosterService(accountRepo repositories.AccountRepository) RosterService {
	return &rosterService{accountRepo: accountRepo}
}

func (s *rosterService) ListAccounts(ctx context.Context) (*response_models.RosterResponse, error) {
	accounts, err := s.accountRepo.ListByNewest(ctx)
	if err != nil {
		log.Printf("Error listing accounts: %v", err)
		return nil, utils.ErrDatabaseError
	}

	users := make([]response_models.RosterUser, 0, len(accounts))
	for i := range accounts {
		users = append(users, rosterUser(&accounts[i]))
	}

	return &response_models.RosterResponse{
		Users: users,
		Stats: RosterCounters(accounts),
	}, nil
}

func (s *rosterService) UpdateAccount(ctx context.Context, id uuid.UUID, req request_models.RosterEditRequest) error {
	fields, err := rosterEditFields(req)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = utils.NowUnixSeconds()

	rows, err := s.accountRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		log.Printf("Error updating account: %v", err)
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrAccountNotFound
	}
	return nil
}

// rosterEditFields validates the draft and maps it to columns. Only the
// four editable fields can ever appear in the result.
func rosterEditFields(req request_models.RosterEditRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	if req.Role != nil {
		if *req.Role != db_models.RoleUser && *req.Role != db_models.RoleAdmin {
			return nil, fmt.Errorf("%w: unknown role %q", utils.ErrValidation, *req.Role)
		}
		fields["role"] = *req.Role
	}
	if req.SubscriptionTier != nil {
		if !db_models.SubscriptionTier(*req.SubscriptionTier).Valid() {
			return nil, fmt.Errorf("%w: unknown subscription_tier %q", utils.ErrValidation, *req.SubscriptionTier)
		}
		fields["subscription_tier"] = *req.SubscriptionTier
	}
	if req.IsSubscribed != nil {
		fields["is_subscribed"] = *req.IsSubscribed
	}
	if req.SubscriptionEndDate != nil {
		fields["subscription_end_date"] = *req.SubscriptionEndDate
	}

	return fields, nil
}

// RosterCounters reduces the fetched snapshot; the numbers are stale
// until the next list call.
func RosterCounters(accounts []db_models.Account) response_models.RosterStats {
	stats := response_models.RosterStats{Total: len(accounts)}
	for i := range accounts {
		if accounts[i].Role == db_models.RoleAdmin {
			stats.Admins++
		}
		if accounts[i].IsSubscribed {
			stats.Subscribed++
		}
		if accounts[i].SubscriptionTier == db_models.TierPremium {
			stats.Premium++
		}
	}
	return stats
}

func rosterUser(account *db_models.Account) response_models.RosterUser {
	user := response_models.RosterUser{
		ID:               account.ID.String(),
		Name:             account.Name,
		Email:            account.Email,
		Role:             account.Role,
		IsSubscribed:     account.IsSubscribed,
		SubscriptionTier: string(account.SubscriptionTier),
		CreatedAt:        utils.FormatUnixRFC3339(account.CreatedAt),
	}
	if account.SubscriptionEndDate != nil {
		user.SubscriptionEndDate = utils.FormatUnixRFC3339(*account.SubscriptionEndDate)
	}
	return user
}
