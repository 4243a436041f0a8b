package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"mesa-decision/internal/core/auction"
	"mesa-decision/internal/core/bidding"
	"mesa-decision/internal/core/domain"
	"mesa-decision/internal/core/eligibility"
	"mesa-decision/internal/core/frequency"
	"mesa-decision/internal/core/port"
	"mesa-decision/internal/core/targeting"
)

const (
	outcomeFilled  = "filled"
	outcomeNoFill  = "no_fill"
	outcomeInvalid = "invalid"
	outcomeTimeout = "timeout"
	outcomeError   = "error"

	clickEventPrefix = "click:"
)

var tracer = otel.Tracer("mesa-decision/usecase")

// Stores groups the outbound ports the orchestrator reads and writes.
type Stores struct {
	Campaigns port.CampaignStore
	Ads       port.AdStore
	AdUnits   port.AdUnitStore
	History   port.PerformanceStore
	Outcomes  port.OutcomeStore
}

// DecisionUseCase runs the ad decision pipeline and the operations built on
// its components. It implements port.DecisionUseCase.
type DecisionUseCase struct {
	stores  Stores
	ledger  *frequency.Ledger
	caps    *cappedCounter
	filter  *eligibility.Filter
	metrics port.Metrics
	logger  *slog.Logger

	random        auction.RandomSource
	now           func() time.Time
	timeout       time.Duration
	recordTimeout time.Duration
	concurrency   int
}

// Option configures a DecisionUseCase.
type Option func(*DecisionUseCase)

// WithTimeout bounds a whole decision. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(u *DecisionUseCase) { u.timeout = d }
}

// WithRecordTimeout bounds the side-effect writes of a decision.
func WithRecordTimeout(d time.Duration) Option {
	return func(u *DecisionUseCase) { u.recordTimeout = d }
}

// WithConcurrency limits how many candidates are evaluated at once.
func WithConcurrency(n int) Option {
	return func(u *DecisionUseCase) { u.concurrency = n }
}

// WithRandomSource sets the generator for auction simulations.
func WithRandomSource(r auction.RandomSource) Option {
	return func(u *DecisionUseCase) { u.random = r }
}

// WithClock overrides time.Now for recency scoring and outcome timestamps.
func WithClock(now func() time.Time) Option {
	return func(u *DecisionUseCase) { u.now = now }
}

// NewDecisionUseCase wires the pipeline. metrics may be nil.
func NewDecisionUseCase(stores Stores, ledger *frequency.Ledger, metrics port.Metrics, logger *slog.Logger, opts ...Option) *DecisionUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	u := &DecisionUseCase{
		stores:        stores,
		ledger:        ledger,
		metrics:       metrics,
		logger:        logger,
		random:        auction.DefaultSource(),
		now:           time.Now,
		recordTimeout: 2 * time.Second,
		concurrency:   8,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.caps = &cappedCounter{ledger: ledger, metrics: metrics}
	u.filter = eligibility.NewFilter(stores.AdUnits, stores.Ads, u.caps, logger)
	return u
}

// RequestDecision validates req, filters, scores and prices the candidates,
// resolves the auction and records the outcome. A request without eligible
// ads returns a no-fill decision and a nil error. A request id that already
// has an outcome gets that outcome back and nothing is recorded again.
func (u *DecisionUseCase) RequestDecision(ctx context.Context, req domain.AdRequest) (*domain.Decision, error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "DecisionUseCase.RequestDecision", trace.WithAttributes(
		attribute.String("request.id", req.RequestID),
		attribute.Int64("organization.id", req.OrganizationID),
		attribute.Int64("ad_unit.id", req.AdUnitID),
	))
	defer span.End()
	span.AddEvent(string(domain.StageReceived))

	if err := validateStruct(req); err != nil {
		u.metrics.ObserveDecision(outcomeInvalid, time.Since(start))
		span.SetAttributes(attribute.String("decision.stage", string(domain.StageReceived)))
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	decision, stage, err := u.decide(ctx, req)
	if err != nil {
		label := outcomeError
		if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
			label = outcomeTimeout
			err = fmt.Errorf("%w: %w", domain.ErrDecisionTimeout, err)
		}
		u.metrics.ObserveDecision(label, time.Since(start))
		span.SetAttributes(attribute.String("decision.stage", string(stage)))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		u.logger.Warn("decision failed",
			slog.String("request_id", req.RequestID),
			slog.String("stage", string(stage)),
			slog.String("error", err.Error()))
		return nil, err
	}

	label := outcomeNoFill
	if decision.Success {
		label = outcomeFilled
		u.metrics.ObserveClearingPrice(decision.ClearingPrice)
	}
	u.metrics.ObserveDecision(label, time.Since(start))
	span.SetAttributes(
		attribute.Bool("decision.success", decision.Success),
		attribute.Int64("decision.ad_id", decision.AdID),
		attribute.String("decision.stage", string(decision.Stage)),
	)
	u.logger.Info("decision made",
		slog.String("request_id", req.RequestID),
		slog.Bool("success", decision.Success),
		slog.Int64("ad_id", decision.AdID),
		slog.Float64("bid_amount", decision.BidAmount),
		slog.Float64("clearing_price", decision.ClearingPrice),
		slog.String("reason", decision.Reason),
		slog.Duration("elapsed", time.Since(start)))
	return decision, nil
}

// decide runs the pipeline after validation. The returned stage is the last
// one completed, also on error. Every transition is added to the span as an
// event.
func (u *DecisionUseCase) decide(ctx context.Context, req domain.AdRequest) (*domain.Decision, domain.Stage, error) {
	span := trace.SpanFromContext(ctx)
	var stage domain.Stage
	advance := func(s domain.Stage) {
		stage = s
		span.AddEvent(string(s))
	}
	advance(domain.StageValidated)

	prior, ok, err := u.priorOutcome(ctx, req.RequestID)
	if err != nil {
		return nil, stage, err
	}
	if ok {
		d := replay(prior)
		advance(d.Stage)
		return d, stage, nil
	}

	unit, candidates, err := u.filter.Eligible(ctx, req)
	if err != nil {
		return nil, stage, fmt.Errorf("filter candidates: %w", err)
	}
	advance(domain.StageFiltered)
	u.metrics.ObserveCandidates(len(candidates))

	if len(candidates) == 0 {
		decision := domain.NoFill(req.RequestID, domain.ReasonNoEligibleAds, stage)
		if err := u.record(ctx, req, decision); err != nil {
			return nil, stage, err
		}
		return decision, stage, nil
	}

	scores, err := u.score(ctx, req.Context, candidates)
	if err != nil {
		return nil, stage, err
	}
	advance(domain.StageScored)

	entries, err := u.price(ctx, unit, candidates, scores)
	if err != nil {
		return nil, stage, err
	}
	advance(domain.StagePriced)

	decision := auction.Resolve(req.RequestID, entries, u.now())
	advance(decision.Stage)
	if err := u.record(ctx, req, decision); err != nil {
		return nil, stage, err
	}
	if decision.Success {
		decision.Stage = domain.StageRecorded
		advance(decision.Stage)
	}
	return decision, stage, nil
}

// priorOutcome looks up an outcome already stored for requestID.
func (u *DecisionUseCase) priorOutcome(ctx context.Context, requestID string) (domain.Outcome, bool, error) {
	o, err := u.stores.Outcomes.FindOutcome(ctx, requestID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Outcome{}, false, nil
	}
	if err != nil {
		return domain.Outcome{}, false, fmt.Errorf("find outcome: %w", err)
	}
	return o, true, nil
}

// replay rebuilds the decision served for a stored outcome. Per-candidate
// scores are not stored and stay empty.
func replay(o domain.Outcome) *domain.Decision {
	if !o.Success {
		return domain.NoFill(o.RequestID, o.Reason, domain.StageFiltered)
	}
	return &domain.Decision{
		Success:       true,
		RequestID:     o.RequestID,
		AdID:          o.AdID,
		CampaignID:    o.CampaignID,
		BidAmount:     o.BidAmount,
		ClearingPrice: o.ClearingPrice,
		Stage:         domain.StageRecorded,
	}
}

// score evaluates the targeting of every candidate against rc.
func (u *DecisionUseCase) score(ctx context.Context, rc domain.RequestContext, candidates []domain.Candidate) ([]float64, error) {
	ctx, span := tracer.Start(ctx, "DecisionUseCase.score",
		trace.WithAttributes(attribute.Int("candidates", len(candidates))))
	defer span.End()

	scores := make([]float64, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(u.concurrency, 1))
	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scores[i] = targeting.Evaluate(c.Ad.Targeting, rc).Score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

// price bids every candidate. History is loaded once per campaign.
func (u *DecisionUseCase) price(ctx context.Context, unit domain.AdUnit, candidates []domain.Candidate, scores []float64) ([]auction.Entry, error) {
	ctx, span := tracer.Start(ctx, "DecisionUseCase.price",
		trace.WithAttributes(attribute.Int("candidates", len(candidates))))
	defer span.End()

	campaigns := make(map[int64]bidding.History)
	for _, c := range candidates {
		campaigns[c.Campaign.ID] = bidding.History{}
	}
	ids := make([]int64, 0, len(campaigns))
	for id := range campaigns {
		ids = append(ids, id)
	}

	histories := make([]bidding.History, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(u.concurrency, 1))
	for i, id := range ids {
		g.Go(func() error {
			rows, err := u.stores.History.CampaignHistory(gctx, id, bidding.HistoryDepth)
			if err != nil {
				return fmt.Errorf("campaign %d history: %w", id, err)
			}
			histories[i] = bidding.NewHistory(rows)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for i, id := range ids {
		campaigns[id] = histories[i]
	}

	entries := make([]auction.Entry, len(candidates))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(max(u.concurrency, 1))
	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries[i] = auction.Entry{
				Candidate:      c,
				TargetingScore: scores[i],
				Bid:            bidding.CalculateBid(c.Campaign, unit, campaigns[c.Campaign.ID], scores[i]),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// record writes the impression event and the outcome of a decision. Nothing
// is written when ctx is already done. Once started, both writes run to
// completion under their own deadline.
func (u *DecisionUseCase) record(ctx context.Context, req domain.AdRequest, d *domain.Decision) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("skip recording: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.recordTimeout)
	defer cancel()
	ctx, span := tracer.Start(ctx, "DecisionUseCase.record")
	defer span.End()

	now := u.now()
	if d.Success && req.Context.UserID != "" {
		_, err := u.ledger.RecordEvent(ctx, domain.FrequencyEvent{
			EventID:    req.RequestID,
			UserID:     req.Context.UserID,
			AdID:       d.AdID,
			CampaignID: d.CampaignID,
			Type:       domain.EventImpression,
			OccurredAt: now,
		})
		if err != nil {
			return fmt.Errorf("record impression: %w", err)
		}
	}

	err := u.stores.Outcomes.RecordOutcome(ctx, domain.Outcome{
		ID:             uuid.NewString(),
		RequestID:      req.RequestID,
		OrganizationID: req.OrganizationID,
		SiteID:         req.SiteID,
		AdUnitID:       req.AdUnitID,
		UserID:         req.Context.UserID,
		Success:        d.Success,
		AdID:           d.AdID,
		CampaignID:     d.CampaignID,
		BidAmount:      d.BidAmount,
		ClearingPrice:  d.ClearingPrice,
		Reason:         d.Reason,
		CreatedAt:      now,
	})
	if err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}
	return nil
}

// RegisterClick counts a click on the ad served for requestID and returns its
// landing URL. Ledger failures are logged and do not block the redirect.
func (u *DecisionUseCase) RegisterClick(ctx context.Context, requestID string) (string, error) {
	if requestID == "" {
		return "", missing("request_id")
	}
	outcome, err := u.stores.Outcomes.FindOutcome(ctx, requestID)
	if err != nil {
		return "", fmt.Errorf("find outcome: %w", err)
	}
	if !outcome.Success {
		return "", fmt.Errorf("request served no ad: %w", domain.OutcomeNotFound(requestID))
	}
	candidate, err := u.stores.Ads.GetCandidate(ctx, outcome.AdID)
	if err != nil {
		return "", fmt.Errorf("get ad: %w", err)
	}

	if outcome.UserID != "" {
		_, err = u.ledger.RecordEvent(ctx, domain.FrequencyEvent{
			EventID:    clickEventPrefix + requestID,
			UserID:     outcome.UserID,
			AdID:       outcome.AdID,
			CampaignID: outcome.CampaignID,
			Type:       domain.EventClick,
		})
		if err != nil {
			u.logger.Warn("click not recorded",
				slog.String("request_id", requestID),
				slog.String("error", err.Error()))
		}
	}
	return candidate.Ad.Creative.LandingURL, nil
}

// EvaluateTargeting scores a stored ad against rc.
func (u *DecisionUseCase) EvaluateTargeting(ctx context.Context, adID int64, rc domain.RequestContext) (targeting.Result, error) {
	if adID == 0 {
		return targeting.Result{}, missing("ad_id")
	}
	if err := validateStruct(rc); err != nil {
		return targeting.Result{}, err
	}
	candidate, err := u.stores.Ads.GetCandidate(ctx, adID)
	if err != nil {
		return targeting.Result{}, fmt.Errorf("get ad: %w", err)
	}
	return targeting.Evaluate(candidate.Ad.Targeting, rc), nil
}

// CalculateBid prices a campaign on an ad unit.
func (u *DecisionUseCase) CalculateBid(ctx context.Context, req port.BidRequest) (bidding.Bid, error) {
	if err := validateStruct(req); err != nil {
		return bidding.Bid{}, err
	}
	campaign, err := u.stores.Campaigns.GetCampaign(ctx, req.CampaignID, req.OrganizationID)
	if err != nil {
		return bidding.Bid{}, fmt.Errorf("get campaign: %w", err)
	}
	unit, err := u.stores.AdUnits.GetAdUnit(ctx, req.AdUnitID)
	if err != nil {
		return bidding.Bid{}, fmt.Errorf("get ad unit: %w", err)
	}
	rows, err := u.stores.History.CampaignHistory(ctx, campaign.ID, bidding.HistoryDepth)
	if err != nil {
		return bidding.Bid{}, fmt.Errorf("campaign history: %w", err)
	}
	return bidding.CalculateBid(campaign, unit, bidding.NewHistory(rows), req.TargetingScore), nil
}

// SimulateAuction prices a stored ad for the request context and ranks it
// against synthetic competitor bids.
func (u *DecisionUseCase) SimulateAuction(ctx context.Context, req port.SimulationRequest) (domain.SimulationResult, error) {
	if err := validateStruct(req); err != nil {
		return domain.SimulationResult{}, err
	}
	candidate, err := u.stores.Ads.GetCandidate(ctx, req.AdID)
	if err != nil {
		return domain.SimulationResult{}, fmt.Errorf("get ad: %w", err)
	}
	if candidate.Campaign.OrganizationID != req.OrganizationID {
		return domain.SimulationResult{}, fmt.Errorf("ad of another organization: %w", domain.CandidateNotFound(req.AdID))
	}
	unit, err := u.stores.AdUnits.GetAdUnit(ctx, req.AdUnitID)
	if err != nil {
		return domain.SimulationResult{}, fmt.Errorf("get ad unit: %w", err)
	}
	rows, err := u.stores.History.CampaignHistory(ctx, candidate.Campaign.ID, bidding.HistoryDepth)
	if err != nil {
		return domain.SimulationResult{}, fmt.Errorf("campaign history: %w", err)
	}

	score := targeting.Evaluate(candidate.Ad.Targeting, req.Context).Score
	bid := bidding.CalculateBid(candidate.Campaign, unit, bidding.NewHistory(rows), score)
	return auction.Simulate(req.AdID, bid.Amount, req.Competitors, u.random), nil
}

// CheckFrequency reports the cap status of key.
func (u *DecisionUseCase) CheckFrequency(ctx context.Context, key domain.FrequencyKey, campaignID int64) (domain.CapStatus, error) {
	if err := validateStruct(key); err != nil {
		return domain.CapStatus{}, err
	}
	return u.caps.CheckCap(ctx, key, campaignID)
}

// RecordEvent counts one frequency event.
func (u *DecisionUseCase) RecordEvent(ctx context.Context, ev domain.FrequencyEvent) (domain.FrequencyRecord, error) {
	if err := validateStruct(ev); err != nil {
		return domain.FrequencyRecord{}, err
	}
	return u.ledger.RecordEvent(ctx, ev)
}

// RecommendCaps derives suggested caps from the campaign's trailing history.
func (u *DecisionUseCase) RecommendCaps(ctx context.Context, campaignID, organizationID int64) (domain.RecommendedCaps, error) {
	var absent []string
	if campaignID == 0 {
		absent = append(absent, "campaign_id")
	}
	if organizationID == 0 {
		absent = append(absent, "organization_id")
	}
	if len(absent) > 0 {
		return domain.RecommendedCaps{}, missing(absent...)
	}
	campaign, err := u.stores.Campaigns.GetCampaign(ctx, campaignID, organizationID)
	if err != nil {
		return domain.RecommendedCaps{}, fmt.Errorf("get campaign: %w", err)
	}
	rows, err := u.stores.History.CampaignHistory(ctx, campaign.ID, bidding.HistoryDepth)
	if err != nil {
		return domain.RecommendedCaps{}, fmt.Errorf("campaign history: %w", err)
	}
	return u.ledger.RecommendCaps(bidding.NewHistory(rows).Totals), nil
}

// cappedCounter counts negative cap checks.
type cappedCounter struct {
	ledger  *frequency.Ledger
	metrics port.Metrics
}

func (c *cappedCounter) CheckCap(ctx context.Context, key domain.FrequencyKey, campaignID int64) (domain.CapStatus, error) {
	status, err := c.ledger.CheckCap(ctx, key, campaignID)
	if err != nil {
		return status, err
	}
	if !status.Allowed {
		c.metrics.IncFrequencyCapped(key.EventType)
	}
	return status, nil
}

type noopMetrics struct{}

func (noopMetrics) ObserveDecision(string, time.Duration) {}
func (noopMetrics) ObserveClearingPrice(float64)          {}
func (noopMetrics) IncFrequencyCapped(domain.EventType)   {}
func (noopMetrics) ObserveCandidates(int)                 {}
