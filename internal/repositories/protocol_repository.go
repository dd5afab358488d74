package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alphagate/internal/models/db_models"
)

type ProtocolRepository interface {
	Create(ctx context.Context, protocol *db_models.Protocol) (uuid.UUID, error)
	Update(ctx context.Context, protocol *db_models.Protocol) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Protocol, error)
	ListByRanking(ctx context.Context) ([]db_models.Protocol, error)
}

type protocolRepository struct {
	db *gorm.DB
}

func NewProtocolRepository(db *gorm.DB) ProtocolRepository {
	return &protocolRepository{db: db}
}

func (r *protocolRepository) Create(ctx context.Context, protocol *db_models.Protocol) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(protocol).Error; err != nil {
		return uuid.Nil, err
	}
	return protocol.ID, nil
}

func (r *protocolRepository) Update(ctx context.Context, protocol *db_models.Protocol) error {
	result := r.db.WithContext(ctx).Save(protocol)
	if result.Error != nil {
		return fmt.Errorf("failed to update protocol: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *protocolRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Protocol{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// GetByID returns (nil, nil) when no row matches.
func (r *protocolRepository) GetByID(ctx context.Context, id string) (*db_models.Protocol, error) {
	var protocol db_models.Protocol
	err := r.db.WithContext(ctx).First(&protocol, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &protocol, nil
}

func (r *protocolRepository) ListByRanking(ctx context.Context) ([]db_models.Protocol, error) {
	var protocols []db_models.Protocol
	err := r.db.WithContext(ctx).
		Order("ranking_score DESC").
		Find(&protocols).Error
	if err != nil {
		return nil, err
	}
	return protocols, nil
}
