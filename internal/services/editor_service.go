package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"alphagate/internal/models/db_models"
	"alphagate/internal/models/request_models"
	"alphagate/internal/repositories"
	"alphagate/pkg/utils"
)

// DefaultTasks is the task list a new record starts with when the draft
// omits one.
var DefaultTasks = []string{
	"Bridge funds to the target chain",
	"Interact with core contracts weekly",
	"Join the community Discord",
}

const (
	defaultExpectedCosts = 30
	defaultListedDays    = 3
)

// EditorService is the admin write path: validate the draft before any
// store I/O, then create or fully overwrite a row. Writes are
// at-most-once; a failure is surfaced and the admin may resubmit.
type EditorService interface {
	ListProtocols(ctx context.Context) ([]db_models.Protocol, error)
	LoadProtocol(ctx context.Context, id string) (*db_models.Protocol, error)
	SaveProtocol(ctx context.Context, draft request_models.ProtocolDraft, existingID *uuid.UUID) (*db_models.Protocol, error)
	DeleteProtocol(ctx context.Context, id uuid.UUID) error
}

type editorService struct {
	protocolRepo repositories.ProtocolRepository
}

func NewEditorService(protocolRepo repositories.ProtocolRepository) EditorService {
	return &editorService{protocolRepo: protocolRepo}
}

func (s *editorService) ListProtocols(ctx context.Context) ([]db_models.Protocol, error) {
	protocols, err := s.protocolRepo.ListByRanking(ctx)
	if err != nil {
		log.Printf("Error listing protocols: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return protocols, nil
}

func (s *editorService) LoadProtocol(ctx context.Context, id string) (*db_models.Protocol, error) {
	protocol, err := s.protocolRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error loading protocol: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if protocol == nil {
		return nil, utils.ErrProtocolNotFound
	}
	return protocol, nil
}

func (s *editorService) SaveProtocol(ctx context.Context, draft request_models.ProtocolDraft, existingID *uuid.UUID) (*db_models.Protocol, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	if existingID != nil {
		existing, err := s.protocolRepo.GetByID(ctx, existingID.String())
		if err != nil {
			log.Printf("Error fetching protocol: %v", err)
			return nil, utils.ErrDatabaseError
		}
		if existing == nil {
			return nil, utils.ErrProtocolNotFound
		}

		if err := applyDraft(existing, draft); err != nil {
			return nil, err
		}
		if err := s.protocolRepo.Update(ctx, existing); err != nil {
			log.Printf("Error updating protocol: %v", err)
			return nil, utils.ErrDatabaseError
		}
		return existing, nil
	}

	protocol := &db_models.Protocol{}
	if err := applyDraft(protocol, draft); err != nil {
		return nil, err
	}
	if _, err := s.protocolRepo.Create(ctx, protocol); err != nil {
		log.Printf("Error creating protocol: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return protocol, nil
}

func (s *editorService) DeleteProtocol(ctx context.Context, id uuid.UUID) error {
	existing, err := s.protocolRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching protocol: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrProtocolNotFound
	}

	if err := s.protocolRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting protocol: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func validateDraft(draft request_models.ProtocolDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return fmt.Errorf("%w: name is required", utils.ErrValidation)
	}
	if strings.TrimSpace(draft.ShortDescription) == "" {
		return fmt.Errorf("%w: short_description is required", utils.ErrValidation)
	}
	if !db_models.Category(draft.Category).Valid() {
		return fmt.Errorf("%w: unknown category %q", utils.ErrValidation, draft.Category)
	}
	if !db_models.ProtocolStage(draft.Stage).Valid() {
		return fmt.Errorf("%w: unknown stage %q", utils.ErrValidation, draft.Stage)
	}
	if !db_models.RiskLevel(draft.RiskLevel).Valid() {
		return fmt.Errorf("%w: unknown risk_level %q", utils.ErrValidation, draft.RiskLevel)
	}

	for name, score := range map[string]int{
		"founding_team_score":   draft.FoundingTeamScore,
		"vc_track_record_score": draft.VCTrackRecordScore,
		"business_model_score":  draft.BusinessModelScore,
	} {
		if score < 0 || score > 100 {
			return fmt.Errorf("%w: %s must be between 0 and 100", utils.ErrValidation, name)
		}
	}
	if draft.AirdropProbability < 0 || draft.AirdropProbability > 100 {
		return fmt.Errorf("%w: airdrop_probability must be between 0 and 100", utils.ErrValidation)
	}
	if draft.TotalRaisedUSD < 0 {
		return fmt.Errorf("%w: total_raised_usd must not be negative", utils.ErrValidation)
	}
	if draft.ExpectedCosts != nil && *draft.ExpectedCosts < 0 {
		return fmt.Errorf("%w: expected_costs must not be negative", utils.ErrValidation)
	}
	if draft.ListedDays != nil && *draft.ListedDays <= 0 {
		return fmt.Errorf("%w: listed_days must be positive", utils.ErrValidation)
	}
	return nil
}

// applyDraft overwrites every editable field from the draft; omitted
// defaulted fields get their documented defaults.
func applyDraft(p *db_models.Protocol, draft request_models.ProtocolDraft) error {
	p.Name = strings.TrimSpace(draft.Name)
	p.LogoURL = draft.LogoURL

	p.Category = db_models.Category(draft.Category)
	p.Stage = db_models.ProtocolStage(draft.Stage)
	p.RiskLevel = db_models.RiskLevel(draft.RiskLevel)

	p.RankingScore = draft.RankingScore
	p.FoundingTeamScore = draft.FoundingTeamScore
	p.VCTrackRecordScore = draft.VCTrackRecordScore
	p.BusinessModelScore = draft.BusinessModelScore
	p.AirdropProbability = draft.AirdropProbability

	p.TotalRaisedUSD = draft.TotalRaisedUSD
	if draft.ExpectedCosts != nil {
		p.ExpectedCosts = *draft.ExpectedCosts
	} else {
		p.ExpectedCosts = defaultExpectedCosts
	}
	if draft.ListedDays != nil {
		p.ListedDays = *draft.ListedDays
	} else {
		p.ListedDays = defaultListedDays
	}

	p.ShortDescription = strings.TrimSpace(draft.ShortDescription)
	p.DetailedAnalysis = draft.DetailedAnalysis
	p.EntryStrategy = draft.EntryStrategy
	p.ExitStrategy = draft.ExitStrategy
	p.StrategyForecast = draft.StrategyForecast

	p.LeadInvestors = append([]string(nil), draft.LeadInvestors...)
	p.Chains = append([]string(nil), draft.Chains...)
	p.RiskFactors = append([]string(nil), draft.RiskFactors...)
	if draft.Tasks != nil {
		p.Tasks = append([]string(nil), draft.Tasks...)
	} else {
		p.Tasks = append([]string(nil), DefaultTasks...)
	}

	p.WebsiteURL = draft.WebsiteURL
	p.TwitterURL = draft.TwitterURL
	p.DiscordURL = draft.DiscordURL

	p.ExpectedTGEDate = draft.ExpectedTGEDate
	p.IsFeatured = draft.IsFeatured

	if draft.KeyMetrics != nil {
		raw, err := json.Marshal(draft.KeyMetrics)
		if err != nil {
			return fmt.Errorf("%w: key_metrics is not serializable", utils.ErrValidation)
		}
		p.KeyMetrics = datatypes.JSON(raw)
	} else {
		p.KeyMetrics = datatypes.JSON([]byte("{}"))
	}
	return nil
}
