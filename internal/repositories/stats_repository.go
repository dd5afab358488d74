package repositories

import (
	"context"

	"gorm.io/gorm"

	"alphagate/internal/models/db_models"
)

type StatsRepository interface {
	CountProtocols(ctx context.Context) (int64, error)
	CountAccounts(ctx context.Context) (int64, error)
	CountSubscriptions(ctx context.Context) (int64, error)

	// LastProtocolUpdate returns 0 when the table is empty.
	LastProtocolUpdate(ctx context.Context) (int64, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountProtocols(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Protocol{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountAccounts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Account{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountSubscriptions(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Subscription{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) LastProtocolUpdate(ctx context.Context) (int64, error) {
	var last int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Protocol{}).
		Select("COALESCE(MAX(updated_at), 0)").
		Scan(&last).Error
	return last, err
}
