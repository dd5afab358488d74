package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alphagate/internal/models/db_models"
)

// In-memory repository stubs. Write paths mimic the gorm hooks: ids
// are assigned on create and updated_at is bumped on save.

type stubProtocolRepo struct {
	protocols map[uuid.UUID]db_models.Protocol

	createCalls int
	updateCalls int
	failAll     bool
}

func newStubProtocolRepo() *stubProtocolRepo {
	return &stubProtocolRepo{protocols: map[uuid.UUID]db_models.Protocol{}}
}

func (s *stubProtocolRepo) Create(ctx context.Context, protocol *db_models.Protocol) (uuid.UUID, error) {
	s.createCalls++
	if s.failAll {
		return uuid.Nil, errors.New("stub failure")
	}
	if protocol.ID == uuid.Nil {
		protocol.ID = uuid.New()
	}
	now := time.Now().Unix()
	protocol.CreatedAt = now
	protocol.UpdatedAt = now
	s.protocols[protocol.ID] = *protocol
	return protocol.ID, nil
}

func (s *stubProtocolRepo) Update(ctx context.Context, protocol *db_models.Protocol) error {
	s.updateCalls++
	if s.failAll {
		return errors.New("stub failure")
	}
	if _, ok := s.protocols[protocol.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	protocol.UpdatedAt = time.Now().Unix()
	s.protocols[protocol.ID] = *protocol
	return nil
}

func (s *stubProtocolRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.failAll {
		return errors.New("stub failure")
	}
	delete(s.protocols, id)
	return nil
}

func (s *stubProtocolRepo) GetByID(ctx context.Context, id string) (*db_models.Protocol, error) {
	if s.failAll {
		return nil, errors.New("stub failure")
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	if p, ok := s.protocols[parsed]; ok {
		copy := p
		return &copy, nil
	}
	return nil, nil
}

func (s *stubProtocolRepo) ListByRanking(ctx context.Context) ([]db_models.Protocol, error) {
	if s.failAll {
		return nil, errors.New("stub failure")
	}
	out := make([]db_models.Protocol, 0, len(s.protocols))
	for _, p := range s.protocols {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RankingScore > out[j].RankingScore
	})
	return out, nil
}

type stubAccountRepo struct {
	accounts map[uuid.UUID]db_models.Account

	lastUpdateFields map[string]interface{}
	failFind         bool
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: map[uuid.UUID]db_models.Account{}}
}

func (s *stubAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	now := time.Now().Unix()
	if account.CreatedAt == 0 {
		account.CreatedAt = now
	}
	account.UpdatedAt = now
	s.accounts[account.ID] = *account
	return nil
}

func (s *stubAccountRepo) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	if s.failFind {
		return nil, errors.New("stub failure")
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	if a, ok := s.accounts[parsed]; ok {
		copy := a
		return &copy, nil
	}
	return nil, nil
}

func (s *stubAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if s.failFind {
		return nil, errors.New("stub failure")
	}
	for _, a := range s.accounts {
		if a.Email == email {
			copy := a
			return &copy, nil
		}
	}
	return nil, nil
}

func (s *stubAccountRepo) ListByNewest(ctx context.Context) ([]db_models.Account, error) {
	if s.failFind {
		return nil, errors.New("stub failure")
	}
	out := make([]db_models.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

func (s *stubAccountRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	s.lastUpdateFields = fields

	account, ok := s.accounts[id]
	if !ok {
		return 0, nil
	}
	for column, value := range fields {
		switch column {
		case "role":
			account.Role = value.(string)
		case "subscription_tier":
			account.SubscriptionTier = db_models.SubscriptionTier(value.(string))
		case "is_subscribed":
			account.IsSubscribed = value.(bool)
		case "subscription_end_date":
			v := value.(int64)
			account.SubscriptionEndDate = &v
		case "updated_at":
			account.UpdatedAt = value.(int64)
		}
	}
	s.accounts[id] = account
	return 1, nil
}

func (s *stubAccountRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	account, ok := s.accounts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	account.PasswordHash = passwordHash
	s.accounts[id] = account
	return nil
}
