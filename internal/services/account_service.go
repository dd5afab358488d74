package services

import (
	"context"
	"log"
	"time"

	"alphagate/internal/models/db_models"
	"alphagate/internal/models/request_models"
	"alphagate/internal/models/response_models"
	"alphagate/internal/repositories"
	"alphagate/pkg/memcache"
	"alphagate/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	Me(ctx context.Context, accountID string) (*response_models.AccountResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AccountService struct {
	accountRepo   repositories.AccountRepository
	resetTokens   memcache.ResetTokenStore
	resetTokenTTL time.Duration
}

func NewAccountService(accountRepo repositories.AccountRepository, resetTokens memcache.ResetTokenStore, resetTokenTTL time.Duration) AccountServiceInterface {
	return &AccountService{
		accountRepo:   accountRepo,
		resetTokens:   resetTokens,
		resetTokenTTL: resetTokenTTL,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("Error checking email: %v", err)
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:             request.DisplayName,
		Email:            request.Email,
		PasswordHash:     hashedPassword,
		Role:             db_models.RoleUser,
		SubscriptionTier: db_models.TierFree,
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		log.Printf("Error inserting account: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("Error fetching account: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AccountLoginResponse{
		Token:             token,
		IsUserHavePremium: account.SubscriptionTier == db_models.TierPremium,
	}, nil
}

func (a *AccountService) Me(ctx context.Context, accountID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		log.Printf("Error fetching account: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := &response_models.AccountResponse{
		ID:               account.ID.String(),
		Name:             account.Name,
		Email:            account.Email,
		Role:             account.Role,
		IsSubscribed:     account.IsSubscribed,
		SubscriptionTier: string(account.SubscriptionTier),
		AccessLevel:      LevelForAccount(account).String(),
		CreatedAt:        utils.FormatUnixRFC3339(account.CreatedAt),
	}
	if account.SubscriptionEndDate != nil {
		resp.SubscriptionEndDate = utils.FormatUnixRFC3339(*account.SubscriptionEndDate)
	}
	return resp, nil
}

// ForgotPassword never reports whether the email exists.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("Error fetching account: %v", err)
		return utils.ErrDatabaseError
	}
	if account == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, account.Email, a.resetTokenTTL)

	// No mail transport wired; operators read the token from the log.
	log.Printf("Password reset token for %s: %s", account.Email, token)
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" {
		return utils.ErrResetTokenInvalid
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("Error fetching account: %v", err)
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePassword(ctx, account.ID, hashedPassword); err != nil {
		log.Printf("Error updating password: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
