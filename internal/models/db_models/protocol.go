package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Category string

const (
	CategoryDefi           Category = "defi"
	CategoryInfrastructure Category = "infrastructure"
	CategoryGaming         Category = "gaming"
	CategoryNFT            Category = "nft"
	CategoryDAO            Category = "dao"
	CategoryLayer1         Category = "layer1"
	CategoryLayer2         Category = "layer2"
	CategoryOther          Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryDefi, CategoryInfrastructure, CategoryGaming, CategoryNFT,
		CategoryDAO, CategoryLayer1, CategoryLayer2, CategoryOther:
		return true
	default:
		return false
	}
}

type ProtocolStage string

const (
	StageSeed    ProtocolStage = "seed"
	StageSeriesA ProtocolStage = "series-a"
	StageSeriesB ProtocolStage = "series-b"
	StagePreTGE  ProtocolStage = "pre-tge"
	StageTGE     ProtocolStage = "tge"
)

func (s ProtocolStage) Valid() bool {
	switch s {
	case StageSeed, StageSeriesA, StageSeriesB, StagePreTGE, StageTGE:
		return true
	default:
		return false
	}
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	default:
		return false
	}
}

// Protocol is one tracked investment opportunity. Scores use the
// numeric 0-100 schema; UpdatedAt doubles as the public last_updated
// value.
type Protocol struct {
	BaseModel
	Name    string `gorm:"not null"`
	LogoURL string

	Category  Category      `gorm:"index"`
	Stage     ProtocolStage `gorm:"index"`
	RiskLevel RiskLevel

	RankingScore       float64 `gorm:"index"`
	FoundingTeamScore  int
	VCTrackRecordScore int
	BusinessModelScore int
	AirdropProbability float64

	TotalRaisedUSD int64
	ExpectedCosts  float64 `gorm:"default:30"`
	ListedDays     int     `gorm:"default:3"`

	ShortDescription string `gorm:"not null"`
	DetailedAnalysis string
	EntryStrategy    string
	ExitStrategy     string
	StrategyForecast string

	LeadInvestors pq.StringArray `gorm:"type:text[]"`
	Chains        pq.StringArray `gorm:"type:text[]"`
	Tasks         pq.StringArray `gorm:"type:text[]"`
	RiskFactors   pq.StringArray `gorm:"type:text[]"`

	WebsiteURL string
	TwitterURL string
	DiscordURL string

	ExpectedTGEDate *int64
	KeyMetrics      datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	IsFeatured      bool
}
