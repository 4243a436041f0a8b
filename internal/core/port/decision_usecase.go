package port

import (
	"context"

	"mesa-decision/internal/core/bidding"
	"mesa-decision/internal/core/domain"
	"mesa-decision/internal/core/targeting"
)

// DecisionUseCase defines the business operations exposed by the decision
// engine. It is the primary port into the application and the HTTP adapter
// depends only on it.
type DecisionUseCase interface {
	// RequestDecision runs the full pipeline for one ad request. A request
	// without eligible ads yields a decision with Success=false and no error.
	RequestDecision(ctx context.Context, req domain.AdRequest) (*domain.Decision, error)

	// RegisterClick records a click for the ad served under requestID and
	// returns its landing URL. Repeated clicks are counted once.
	RegisterClick(ctx context.Context, requestID string) (string, error)

	// EvaluateTargeting scores a stored ad against a request context.
	EvaluateTargeting(ctx context.Context, adID int64, rc domain.RequestContext) (targeting.Result, error)

	// CalculateBid prices a campaign on an ad unit for a targeting score.
	CalculateBid(ctx context.Context, req BidRequest) (bidding.Bid, error)

	// SimulateAuction ranks a stored ad's bid against random competitors.
	SimulateAuction(ctx context.Context, req SimulationRequest) (domain.SimulationResult, error)

	// CheckFrequency reports whether another event is allowed for the key.
	CheckFrequency(ctx context.Context, key domain.FrequencyKey, campaignID int64) (domain.CapStatus, error)

	// RecordEvent counts one frequency event.
	RecordEvent(ctx context.Context, ev domain.FrequencyEvent) (domain.FrequencyRecord, error)

	// RecommendCaps suggests frequency caps from a campaign's history.
	RecommendCaps(ctx context.Context, campaignID, organizationID int64) (domain.RecommendedCaps, error)
}

// BidRequest identifies what to price.
type BidRequest struct {
	CampaignID     int64   `json:"campaign_id" validate:"required"`
	OrganizationID int64   `json:"organization_id" validate:"required"`
	AdUnitID       int64   `json:"ad_unit_id" validate:"required"`
	TargetingScore float64 `json:"targeting_score" validate:"gte=0,lte=1"`
}

// SimulationRequest asks how a stored ad would fare against synthetic
// competitors on an ad unit.
type SimulationRequest struct {
	AdID           int64                 `json:"ad_id" validate:"required"`
	OrganizationID int64                 `json:"organization_id" validate:"required"`
	AdUnitID       int64                 `json:"ad_unit_id" validate:"required"`
	Competitors    int                   `json:"competitors" validate:"gte=0,lte=1000"`
	Context        domain.RequestContext `json:"context"`
}
