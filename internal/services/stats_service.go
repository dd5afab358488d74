package services

import (
	"context"
	"log"

	"alphagate/internal/models/response_models"
	"alphagate/internal/repositories"
	"alphagate/pkg/utils"
)

// StatsService backs the admin database view: plain counts recomputed
// on every request, nothing incremental.
type StatsService interface {
	BuildStats(ctx context.Context) (*response_models.TableStats, error)
}

type statsService struct {
	statsRepo repositories.StatsRepository
}

func NewStatsService(statsRepo repositories.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) BuildStats(ctx context.Context) (*response_models.TableStats, error) {
	protocols, err := s.statsRepo.CountProtocols(ctx)
	if err != nil {
		log.Printf("Error counting protocols: %v", err)
		return nil, utils.ErrDatabaseError
	}

	users, err := s.statsRepo.CountAccounts(ctx)
	if err != nil {
		log.Printf("Error counting accounts: %v", err)
		return nil, utils.ErrDatabaseError
	}

	subscriptions, err := s.statsRepo.CountSubscriptions(ctx)
	if err != nil {
		log.Printf("Error counting subscriptions: %v", err)
		return nil, utils.ErrDatabaseError
	}

	lastUpdate, err := s.statsRepo.LastProtocolUpdate(ctx)
	if err != nil {
		log.Printf("Error fetching last protocol update: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TableStats{
		ProtocolsCount:     protocols,
		UsersCount:         users,
		SubscriptionsCount: subscriptions,
		LastProtocolUpdate: utils.FormatUnixRFC3339(lastUpdate),
	}, nil
}
