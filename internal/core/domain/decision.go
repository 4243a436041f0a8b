package domain

import "time"

// Stage is the last step a decision reached.
type Stage string

const (
	StageReceived  Stage = "received"
	StageValidated Stage = "validated"
	StageFiltered  Stage = "filtered"
	StageScored    Stage = "scored"
	StagePriced    Stage = "priced"
	StageResolved  Stage = "resolved"
	StageRecorded  Stage = "recorded"
)

// ReasonNoEligibleAds is reported when no candidate survives filtering.
const ReasonNoEligibleAds = "no eligible ads"

// CandidateScore is the per-candidate breakdown of an auction.
type CandidateScore struct {
	AdID           int64   `json:"ad_id"`
	CampaignID     int64   `json:"campaign_id"`
	TargetingScore float64 `json:"targeting_score"`
	QualityScore   float64 `json:"quality_score"`
	BidScore       float64 `json:"bid_score"`
	TotalScore     float64 `json:"total_score"`
	BidAmount      float64 `json:"bid_amount"`
	Confidence     float64 `json:"confidence"`
}

// Decision is the result of one ad request.
type Decision struct {
	Success       bool             `json:"success"`
	RequestID     string           `json:"request_id,omitempty"`
	AdID          int64            `json:"ad_id,omitempty"`
	CampaignID    int64            `json:"campaign_id,omitempty"`
	BidAmount     float64          `json:"bid_amount"`
	ClearingPrice float64          `json:"clearing_price"`
	Scores        []CandidateScore `json:"scores,omitempty"`
	Reason        string           `json:"reason,omitempty"`
	Stage         Stage            `json:"stage"`
}

// NoFill builds an unsuccessful decision.
func NoFill(requestID, reason string, stage Stage) *Decision {
	return &Decision{RequestID: requestID, Reason: reason, Stage: stage}
}

// Outcome is the record of one processed request handed to the outcome sink.
type Outcome struct {
	ID             string    `json:"id"`
	RequestID      string    `json:"request_id"`
	OrganizationID int64     `json:"organization_id"`
	SiteID         int64     `json:"site_id"`
	AdUnitID       int64     `json:"ad_unit_id"`
	UserID         string    `json:"user_id,omitempty"`
	Success        bool      `json:"success"`
	AdID           int64     `json:"ad_id,omitempty"`
	CampaignID     int64     `json:"campaign_id,omitempty"`
	BidAmount      float64   `json:"bid_amount"`
	ClearingPrice  float64   `json:"clearing_price"`
	Reason         string    `json:"reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// SimulationResult reports how a real bid ranks among synthetic competitors.
type SimulationResult struct {
	AdID           int64     `json:"ad_id"`
	Bid            float64   `json:"bid"`
	Rank           int       `json:"rank"`
	Participants   int       `json:"participants"`
	InTopThree     bool      `json:"in_top_three"`
	Won            bool      `json:"won"`
	WinningBid     float64   `json:"winning_bid"`
	ClearingPrice  float64   `json:"clearing_price"`
	CompetitorBids []float64 `json:"competitor_bids"`
}
