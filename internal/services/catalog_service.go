package services

import (
	"context"
	"log"
	"time"

	"alphagate/internal/models/db_models"
	"alphagate/internal/models/response_models"
	"alphagate/internal/repositories"
	"alphagate/pkg/utils"
)

// CatalogService is the public read path. Premium fields are filtered
// here, before they leave the API, so an unauthorized client never
// receives them at all.
type CatalogService interface {
	ListProtocols(ctx context.Context, level AccessLevel) (*response_models.CatalogResponse, error)
	GetProtocol(ctx context.Context, id string, level AccessLevel) (*response_models.ProtocolView, error)
}

type catalogService struct {
	protocolRepo repositories.ProtocolRepository
}

func NewCatalogService(protocolRepo repositories.ProtocolRepository) CatalogService {
	return &catalogService{protocolRepo: protocolRepo}
}

func (s *catalogService) ListProtocols(ctx context.Context, level AccessLevel) (*response_models.CatalogResponse, error) {
	protocols, err := s.protocolRepo.ListByRanking(ctx)
	if err != nil {
		log.Printf("Error listing protocols: %v", err)
		return &response_models.CatalogResponse{Protocols: []response_models.ProtocolView{}}, utils.ErrDatabaseError
	}

	views := make([]response_models.ProtocolView, 0, len(protocols))
	for i := range protocols {
		views = append(views, ProtocolToView(&protocols[i], level))
	}

	return &response_models.CatalogResponse{
		Protocols:   views,
		LastUpdated: utils.FormatRFC3339(mostRecentUpdate(protocols)),
	}, nil
}

func (s *catalogService) GetProtocol(ctx context.Context, id string, level AccessLevel) (*response_models.ProtocolView, error) {
	protocol, err := s.protocolRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching protocol: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if protocol == nil {
		return nil, utils.ErrProtocolNotFound
	}

	view := ProtocolToView(protocol, level)
	return &view, nil
}

// mostRecentUpdate is max(updated_at) over the set, "now" when empty.
func mostRecentUpdate(protocols []db_models.Protocol) time.Time {
	if len(protocols) == 0 {
		return time.Now().UTC()
	}
	var last int64
	for i := range protocols {
		if protocols[i].UpdatedAt > last {
			last = protocols[i].UpdatedAt
		}
	}
	return utils.FromUnixSeconds(last)
}

// ProtocolToView maps a stored record to its gated public shape.
func ProtocolToView(p *db_models.Protocol, level AccessLevel) response_models.ProtocolView {
	view := response_models.ProtocolView{
		ID:      p.ID.String(),
		Name:    p.Name,
		LogoURL: p.LogoURL,

		Category:  string(p.Category),
		Stage:     string(p.Stage),
		RiskLevel: string(p.RiskLevel),

		RankingScore:       p.RankingScore,
		FoundingTeamScore:  p.FoundingTeamScore,
		VCTrackRecordScore: p.VCTrackRecordScore,
		BusinessModelScore: p.BusinessModelScore,
		AirdropProbability: p.AirdropProbability,

		TotalRaisedUSD: p.TotalRaisedUSD,
		ExpectedCosts:  p.ExpectedCosts,
		ListedDays:     p.ListedDays,

		ShortDescription: p.ShortDescription,
		LeadInvestors:    p.LeadInvestors,
		Chains:           p.Chains,

		WebsiteURL: p.WebsiteURL,
		TwitterURL: p.TwitterURL,
		DiscordURL: p.DiscordURL,

		KeyMetrics: p.KeyMetrics,
		IsFeatured: p.IsFeatured,

		CreatedAt:   utils.FormatUnixRFC3339(p.CreatedAt),
		LastUpdated: utils.FormatUnixRFC3339(p.UpdatedAt),

		PremiumLocked: !level.CanViewPremium(),
	}

	if p.ExpectedTGEDate != nil {
		view.ExpectedTGEDate = utils.FormatUnixRFC3339(*p.ExpectedTGEDate)
	}

	if level.CanViewPremium() {
		view.DetailedAnalysis = p.DetailedAnalysis
		view.EntryStrategy = p.EntryStrategy
		view.ExitStrategy = p.ExitStrategy
		view.StrategyForecast = p.StrategyForecast
		view.RiskFactors = p.RiskFactors
		view.Tasks = p.Tasks
	}

	return view
}
