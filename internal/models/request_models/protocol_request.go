package request_models

import "strings"

// ProtocolDraft is the full editor payload. An update sends the whole
// draft and overwrites the stored row; there is no field diffing.
// Pointer fields distinguish "omitted" from a deliberate zero so the
// editor can apply defaults only when the field is absent.
type ProtocolDraft struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`

	Category  string `json:"category"`
	Stage     string `json:"stage"`
	RiskLevel string `json:"risk_level"`

	RankingScore       float64 `json:"ranking_score"`
	FoundingTeamScore  int     `json:"founding_team_score"`
	VCTrackRecordScore int     `json:"vc_track_record_score"`
	BusinessModelScore int     `json:"business_model_score"`
	AirdropProbability float64 `json:"airdrop_probability"`

	TotalRaisedUSD int64    `json:"total_raised_usd"`
	ExpectedCosts  *float64 `json:"expected_costs"`
	ListedDays     *int     `json:"listed_days"`

	ShortDescription string `json:"short_description"`
	DetailedAnalysis string `json:"detailed_analysis"`
	EntryStrategy    string `json:"entry_strategy"`
	ExitStrategy     string `json:"exit_strategy"`
	StrategyForecast string `json:"strategy_forecast"`

	LeadInvestors []string `json:"lead_investors"`
	Chains        []string `json:"chains"`
	Tasks         []string `json:"tasks"`
	RiskFactors   []string `json:"risk_factors"`

	WebsiteURL string `json:"website_url"`
	TwitterURL string `json:"twitter_url"`
	DiscordURL string `json:"discord_url"`

	ExpectedTGEDate *int64                 `json:"expected_tge_date"`
	KeyMetrics      map[string]interface{} `json:"key_metrics"`
	IsFeatured      bool                   `json:"is_featured"`
}

// List helpers below are pure in-memory edits on the draft's ordered
// string lists. Add trims whitespace and ignores empty input; remove is
// index-based and keeps the relative order of the remaining elements.

func appendTrimmed(list []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return list
	}
	return append(list, value)
}

func removeAt(list []string, index int) []string {
	if index < 0 || index >= len(list) {
		return list
	}
	out := make([]string, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}

// moveItem relocates the element at from to position to, shifting the
// elements in between.
func moveItem(list []string, from, to int) []string {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) || from == to {
		return list
	}
	out := removeAt(list, from)
	tail := make([]string, 0, len(list))
	tail = append(tail, out[:to]...)
	tail = append(tail, list[from])
	return append(tail, out[to:]...)
}

func (d *ProtocolDraft) AddInvestor(name string)   { d.LeadInvestors = appendTrimmed(d.LeadInvestors, name) }
func (d *ProtocolDraft) RemoveInvestor(index int)  { d.LeadInvestors = removeAt(d.LeadInvestors, index) }
func (d *ProtocolDraft) AddChain(name string)      { d.Chains = appendTrimmed(d.Chains, name) }
func (d *ProtocolDraft) RemoveChain(index int)     { d.Chains = removeAt(d.Chains, index) }
func (d *ProtocolDraft) AddTask(label string)      { d.Tasks = appendTrimmed(d.Tasks, label) }
func (d *ProtocolDraft) RemoveTask(index int)      { d.Tasks = removeAt(d.Tasks, index) }
func (d *ProtocolDraft) AddRiskFactor(text string) { d.RiskFactors = appendTrimmed(d.RiskFactors, text) }
func (d *ProtocolDraft) RemoveRiskFactor(index int) {
	d.RiskFactors = removeAt(d.RiskFactors, index)
}
func (d *ProtocolDraft) MoveTask(from, to int) { d.Tasks = moveItem(d.Tasks, from, to) }
