package port

import (
	"context"
	"time"

	"mesa-decision/internal/core/domain"
)

// CampaignStore reads campaigns. Implementations return a
// *domain.NotFoundError when the campaign does not exist for the
// organization.
type CampaignStore interface {
	GetCampaign(ctx context.Context, id, organizationID int64) (domain.Campaign, error)
}

// AdStore reads ads. Soft deletion and counter updates are performed by
// external jobs, not through this port.
type AdStore interface {
	// ListActiveCandidates returns active ads of active campaigns owned by
	// the organization, paired with their campaign.
	ListActiveCandidates(ctx context.Context, organizationID int64) ([]domain.Candidate, error)
	// GetCandidate returns one ad with its campaign regardless of status.
	GetCandidate(ctx context.Context, adID int64) (domain.Candidate, error)
}

// AdUnitStore reads ad units and the sites that host them.
type AdUnitStore interface {
	GetAdUnit(ctx context.Context, id int64) (domain.AdUnit, error)
	GetSite(ctx context.Context, id int64) (domain.Site, error)
}

// PerformanceStore returns the trailing per-ad performance of a campaign,
// most recent ads first, at most limit rows.
type PerformanceStore interface {
	CampaignHistory(ctx context.Context, campaignID int64, limit int) ([]domain.AdPerformance, error)
}

// FrequencyStore persists frequency counters. Increment must be atomic per
// key: concurrent increments of the same key never lose updates.
type FrequencyStore interface {
	// Current returns the record of key whose window contains at.
	Current(ctx context.Context, key domain.FrequencyKey, at time.Time) (domain.FrequencyRecord, bool, error)
	// Increment counts ev. When a record containing ev.OccurredAt exists it
	// is incremented, otherwise a record spanning window is created with a
	// count of one. Event ids are unique per user: an ev.EventID the user
	// already had counted, under any ad or event type, is not counted again
	// and reports applied=false. An event id is remembered at least until the
	// window it was counted in ends.
	Increment(ctx context.Context, ev domain.FrequencyEvent, window domain.Window) (rec domain.FrequencyRecord, applied bool, err error)
}

// OutcomeSink stores one outcome per request id. Writing the same request id
// twice keeps the first record.
type OutcomeSink interface {
	RecordOutcome(ctx context.Context, outcome domain.Outcome) error
}

// OutcomeReader looks up a stored outcome by request id.
type OutcomeReader interface {
	FindOutcome(ctx context.Context, requestID string) (domain.Outcome, error)
}

// OutcomeStore is implemented by adapters that both write and read
// outcomes.
type OutcomeStore interface {
	OutcomeSink
	OutcomeReader
}

// Metrics receives decision telemetry.
type Metrics interface {
	ObserveDecision(outcome string, elapsed time.Duration)
	ObserveClearingPrice(price float64)
	IncFrequencyCapped(eventType domain.EventType)
	ObserveCandidates(n int)
}
