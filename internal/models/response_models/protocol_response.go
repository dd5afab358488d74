package response_models

import "gorm.io/datatypes"

// ProtocolView is the gated public shape of a protocol record. Premium
// fields are only populated for subscribed or admin callers; below that
// level they are omitted from the payload and PremiumLocked is set so
// clients can render the paywall.
type ProtocolView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`

	Category  string `json:"category"`
	Stage     string `json:"stage"`
	RiskLevel string `json:"risk_level"`

	RankingScore       float64 `json:"ranking_score"`
	FoundingTeamScore  int     `json:"founding_team_score"`
	VCTrackRecordScore int     `json:"vc_track_record_score"`
	BusinessModelScore int     `json:"business_model_score"`
	AirdropProbability float64 `json:"airdrop_probability"`

	TotalRaisedUSD int64   `json:"total_raised_usd"`
	ExpectedCosts  float64 `json:"expected_costs"`
	ListedDays     int     `json:"listed_days"`

	ShortDescription string   `json:"short_description"`
	LeadInvestors    []string `json:"lead_investors"`
	Chains           []string `json:"chains,omitempty"`

	WebsiteURL string `json:"website_url,omitempty"`
	TwitterURL string `json:"twitter_url,omitempty"`
	DiscordURL string `json:"discord_url,omitempty"`

	ExpectedTGEDate string         `json:"expected_tge_date,omitempty"`
	KeyMetrics      datatypes.JSON `json:"key_metrics,omitempty"`
	IsFeatured      bool           `json:"is_featured"`

	CreatedAt   string `json:"created_at"`
	LastUpdated string `json:"last_updated"`

	PremiumLocked bool `json:"premium_locked"`

	DetailedAnalysis string   `json:"detailed_analysis,omitempty"`
	EntryStrategy    string   `json:"entry_strategy,omitempty"`
	ExitStrategy     string   `json:"exit_strategy,omitempty"`
	StrategyForecast string   `json:"strategy_forecast,omitempty"`
	RiskFactors      []string `json:"risk_factors,omitempty"`
	Tasks            []string `json:"tasks,omitempty"`
}

type CatalogResponse struct {
	Protocols []ProtocolView `json:"protocols"`
	// LastUpdated is max(last_updated) over the set, "now" when empty.
	LastUpdated string `json:"last_updated"`
}
