package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"mesa-decision/internal/adapter/memory"
	"mesa-decision/internal/core/domain"
	"mesa-decision/internal/core/frequency"
	"mesa-decision/internal/core/port"
	"mesa-decision/internal/core/port/mocks"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type recordingMetrics struct {
	mu        sync.Mutex
	decisions []string
	capped    map[domain.EventType]int
	prices    []float64
}

func (m *recordingMetrics) ObserveDecision(outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decisions = append(m.decisions, outcome)
}

func (m *recordingMetrics) ObserveClearingPrice(price float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices = append(m.prices, price)
}

func (m *recordingMetrics) IncFrequencyCapped(t domain.EventType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.capped == nil {
		m.capped = map[domain.EventType]int{}
	}
	m.capped[t]++
}

func (m *recordingMetrics) ObserveCandidates(int) {}

type fixedSource struct{ v float64 }

func (s fixedSource) Float64() float64 { return s.v }

type fixture struct {
	campaigns *mocks.MockCampaignStore
	ads       *mocks.MockAdStore
	units     *mocks.MockAdUnitStore
	history   *mocks.MockPerformanceStore
	outcomes  *mocks.MockOutcomeStore
	ledger    *frequency.Ledger
	metrics   *recordingMetrics
	uc        *DecisionUseCase
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	f := &fixture{
		campaigns: mocks.NewMockCampaignStore(t),
		ads:       mocks.NewMockAdStore(t),
		units:     mocks.NewMockAdUnitStore(t),
		history:   mocks.NewMockPerformanceStore(t),
		outcomes:  mocks.NewMockOutcomeStore(t),
		metrics:   &recordingMetrics{},
	}
	f.ledger = frequency.NewLedger(memory.NewFrequencyStore(), discard)
	f.uc = NewDecisionUseCase(Stores{
		Campaigns: f.campaigns,
		Ads:       f.ads,
		AdUnits:   f.units,
		History:   f.history,
		Outcomes:  f.outcomes,
	}, f.ledger, f.metrics, discard, opts...)
	return f
}

func (f *fixture) expectServingUnit() {
	f.units.EXPECT().GetAdUnit(mock.Anything, int64(5)).
		Return(domain.AdUnit{ID: 5, SiteID: 3, Format: domain.FormatBanner, Status: domain.AdUnitStatusActive}, nil)
	f.units.EXPECT().GetSite(mock.Anything, int64(3)).
		Return(domain.Site{ID: 3, Status: domain.SiteStatusActive}, nil)
}

// expectFirstAttempt reports no stored outcome for requestID.
func (f *fixture) expectFirstAttempt(requestID string) {
	f.outcomes.EXPECT().FindOutcome(mock.Anything, requestID).
		Return(domain.Outcome{}, domain.OutcomeNotFound(requestID)).Once()
}

// outcomeLog backs the outcome mock with a map that keeps the first write
// per request id.
type outcomeLog struct {
	mu     sync.Mutex
	stored map[string]domain.Outcome
	writes []domain.Outcome
}

func (f *fixture) keepOutcomes() *outcomeLog {
	l := &outcomeLog{stored: map[string]domain.Outcome{}}
	f.outcomes.EXPECT().FindOutcome(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, requestID string) (domain.Outcome, error) {
			l.mu.Lock()
			defer l.mu.Unlock()
			o, ok := l.stored[requestID]
			if !ok {
				return domain.Outcome{}, domain.OutcomeNotFound(requestID)
			}
			return o, nil
		})
	f.outcomes.EXPECT().RecordOutcome(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o domain.Outcome) error {
			l.mu.Lock()
			defer l.mu.Unlock()
			l.writes = append(l.writes, o)
			if _, ok := l.stored[o.RequestID]; !ok {
				l.stored[o.RequestID] = o
			}
			return nil
		})
	return l
}

func candidate(adID, campaignID int64, targetCPM float64) domain.Candidate {
	return domain.Candidate{
		Ad: domain.Ad{
			ID: adID, CampaignID: campaignID, Status: domain.AdStatusActive,
			Creative: domain.Creative{LandingURL: "https://example.com/ad"},
		},
		Campaign: domain.Campaign{
			ID: campaignID, OrganizationID: 1, OrganizationType: domain.OrganizationAdvertiser,
			Status: domain.CampaignStatusActive, BidStrategy: domain.BidStrategyAutoCPM,
			Budget: 1000, TargetCPM: targetCPM,
		},
	}
}

func adRequest(id string) domain.AdRequest {
	return domain.AdRequest{
		RequestID: id, OrganizationID: 1, SiteID: 3, AdUnitID: 5,
		Context: domain.RequestContext{UserID: "u1"},
	}
}

func TestRequestDecisionPicksHighestScore(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.expectFirstAttempt("r1")
	f.expectServingUnit()
	f.ads.EXPECT().ListActiveCandidates(mock.Anything, int64(1)).
		Return([]domain.Candidate{candidate(1, 100, 10), candidate(2, 200, 40)}, nil)
	f.history.EXPECT().CampaignHistory(mock.Anything, int64(100), 30).Return(nil, nil)
	f.history.EXPECT().CampaignHistory(mock.Anything, int64(200), 30).Return(nil, nil)
	f.outcomes.EXPECT().RecordOutcome(mock.Anything, mock.MatchedBy(func(o domain.Outcome) bool {
		return o.RequestID == "r1" && o.Success && o.AdID == 2 && o.UserID == "u1" && o.ID != ""
	})).Return(nil).Once()

	d, err := f.uc.RequestDecision(ctx, adRequest("r1"))
	require.NoError(t, err)

	assert.True(t, d.Success)
	assert.Equal(t, int64(2), d.AdID)
	assert.Equal(t, int64(200), d.CampaignID)
	assert.Equal(t, 0.04, d.BidAmount)
	assert.Equal(t, 0.26, d.ClearingPrice)
	assert.Equal(t, domain.StageRecorded, d.Stage)
	require.Len(t, d.Scores, 2)
	assert.Equal(t, 0.44, d.Scores[0].TotalScore)

	status, err := f.ledger.CheckCap(ctx, domain.FrequencyKey{UserID: "u1", AdID: 2, EventType: domain.EventImpression}, 200)
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.CurrentCount)
	assert.Equal(t, []string{outcomeFilled}, f.metrics.decisions)
	assert.Equal(t, []float64{0.26}, f.metrics.prices)
}

func TestRequestDecisionRetryCountsOneImpression(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	log := f.keepOutcomes()
	f.expectServingUnit()
	f.ads.EXPECT().ListActiveCandidates(mock.Anything, int64(1)).
		Return([]domain.Candidate{candidate(1, 100, 10)}, nil).Once()
	f.history.EXPECT().CampaignHistory(mock.Anything, int64(100), 30).Return(nil, nil).Once()

	for range 2 {
		d, err := f.uc.RequestDecision(ctx, adRequest("retry"))
		require.NoError(t, err)
		require.True(t, d.Success)
		assert.Equal(t, domain.StageRecorded, d.Stage)
	}

	status, err := f.ledger.CheckCap(ctx, domain.FrequencyKey{UserID: "u1", AdID: 1, EventType: domain.EventImpression}, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.CurrentCount)
	assert.Len(t, log.writes, 1)
}

func TestRequestDecisionRetryAfterWinnerCappedReturnsSameAd(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for _, id := range []string{"a", "b"} {
		_, err := f.ledger.RecordEvent(ctx, domain.FrequencyEvent{
			EventID: id, UserID: "u1", AdID: 2, CampaignID: 200, Type: domain.EventImpression,
		})
		require.NoError(t, err)
	}

	log := f.keepOutcomes()
	f.expectServingUnit()
	f.ads.EXPECT().ListActiveCandidates(mock.Anything, int64(1)).
		Return([]domain.Candidate{candidate(1, 100, 10), candidate(2, 200, 40)}, nil).Once()
	f.history.EXPECT().CampaignHistory(mock.Anything, int64(100), 30).Return(nil, nil).Once()
	f.history.EXPECT().CampaignHistory(mock.Anything, int64(200), 30).Return(nil, nil).Once()

	first, err := f.uc.RequestDecision(ctx, adRequest("r"))
	require.NoError(t, err)
	require.Equal(t, int64(2), first.AdID)

	retry, err := f.uc.RequestDecision(ctx, adRequest("r"))
	require.NoError(t, err)
	assert.True(t, retry.Success)
	assert.Equal(t, first.AdID, retry.AdID)
	assert.Equal(t, first.CampaignID, retry.CampaignID)
	assert.Equal(t, first.BidAmount, retry.BidAmount)
	assert.Equal(t, first.ClearingPrice, retry.ClearingPrice)

	for ad, want := range map[int64]int64{1: 0, 2: 3} {
		status, err := f.ledger.CheckCap(ctx, domain.FrequencyKey{UserID: "u1", AdID: ad, EventType: domain.EventImpression}, 0)
		require.NoError(t, err)
		assert.Equal(t, want, status.CurrentCount, "impressions of ad %d", ad)
	}
	require.Len(t, log.writes, 1)
	assert.Equal(t, int64(2), log.writes[0].AdID)
	assert.Zero(t, f.metrics.capped[domain.EventImpression], "retry does not run eligibility")
}

func TestRequestDecisionRetryOfNoFill(t *testing.T) {
	f := newFixture(t)
	f.outcomes.EXPECT().FindOutcome(mock.Anything, "nf").
		Return(domain.Outcome{RequestID: "nf", Reason: domain.ReasonNoEligibleAds}, nil)

	d, err := f.uc.RequestDecision(context.Background(), adRequest("nf"))
	require.NoError(t, err)

	assert.False(t, d.Success)
	assert.Equal(t, domain.ReasonNoEligibleAds, d.Reason)
	assert.Equal(t, domain.StageFiltered, d.Stage)
	assert.Equal(t, []string{outcomeNoFill}, f.metrics.decisions)
}

func TestRequestDecisionOutcomeLookupFails(t *testing.T) {
	f := newFixture(t)
	f.outcomes.EXPECT().FindOutcome(mock.Anything, "r8").Return(domain.Outcome{}, errors.New("connection reset"))

	_, err := f.uc.RequestDecision(context.Background(), adRequest("r8"))

	assert.ErrorContains(t, err, "find outcome")
	assert.Equal(t, []string{outcomeError}, f.metrics.decisions)
}

func TestRequestDecisionTracesStages(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	f := newFixture(t)
	f.expectFirstAttempt("traced")
	f.expectServingUnit()
	f.ads.EXPECT().ListActiveCandidates(mock.Anything, int64(1)).
		Return([]domain.Candidate{candidate(1, 100, 10)}, nil)
	f.history.EXPECT().CampaignHistory(mock.Anything, int64(100), 30).Return(nil, nil)
	f.outcomes.EXPECT().RecordOutcome(mock.Anything, mock.Anything).Return(nil)

	_, err := f.uc.RequestDecision(context.Background(), adRequest("traced"))
	require.NoError(t, err)

	var stages []domain.Stage
	for _, span := range recorder.Ended() {
		if span.Name() != "DecisionUseCase.RequestDecision" {
			continue
		}
		for _, ev := range span.Events() {
			stages = append(stages, domain.Stage(ev.Name))
		}
	}
	assert.Equal(t, []domain.Stage{
		domain.StageReceived, domain.StageValidated, domain.StageFiltered, domain.StageScored,
		domain.StagePriced, domain.StageResolved, domain.StageRecorded,
	}, stages)
}

func TestRequestDecisionReportsEveryMissingField(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RequestDecision(context.Background(), domain.AdRequest{})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"request_id", "organization_id", "site_id", "ad_unit_id"}, verr.Missing())
	assert.Contains(t, err.Error(), "missing required fields:")
	assert.Equal(t, []string{outcomeInvalid}, f.metrics.decisions)
}

func TestRequestDecisionRejectsInvalidContext(t *testing.T) {
	f := newFixture(t)
	req := adRequest("r1")
	req.Context.Geo = &domain.GeoLocation{Coordinates: &domain.Coordinates{Lat: 120}}

	_, err := f.uc.RequestDecision(context.Background(), req)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "context.geo.coordinates.lat", verr.Violations[0].Field)
	assert.Equal(t, "lte", verr.Violations[0].Rule)
}

func TestRequestDecisionNoEligibleAds(t *testing.T) {
	f := newFixture(t)
	f.expectFirstAttempt("r2")
	f.expectServingUnit()
	f.ads.EXPECT().ListActiveCandidates(mock.Anything, int64(1)).Return(nil, nil)
	f.outcomes.EXPECT().RecordOutcome(mock.Anything, mock.MatchedBy(func(o domain.Outcome) bool {
		return !o.Success && o.Reason == domain.ReasonNoEligibleAds
	})).Return(nil).Once()

	d, err := f.uc.RequestDecision(context.Background(), adRequest("r2"))
	require.NoError(t, err)

	assert.False(t, d.Success)
	assert.Equal(t, domain.ReasonNoEligibleAds, d.Reason)
	assert.Equal(t, domain.StageFiltered, d.Stage)
	assert.Equal(t, []string{outcomeNoFill}, f.metrics.decisions)
}

func TestRequestDecisionSkipsCappedAds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.expectFirstAttempt("r3")
	for _, id := range []string{"a", "b", "c"} {
		_, err := f.ledger.RecordEvent(ctx, domain.FrequencyEvent{
			EventID: id, UserID: "u1", AdID: 2, CampaignID: 200, Type: domain.EventImpression,
		})
		require.NoError(t, err)
	}

	f.expectServingUnit()
	f.ads.EXPECT().ListActiveCandidates(mock.Anything, int64(1)).
		Return([]domain.Candidate{candidate(1, 100, 10), candidate(2, 200, 40)}, nil)
	f.history.EXPECT().CampaignHistory(mock.Anything, int64(100), 30).Return(nil, nil)
	f.outcomes.EXPECT().RecordOutcome(mock.Anything, mock.Anything).Return(nil)

	d, err := f.uc.RequestDecision(ctx, adRequest("r3"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), d.AdID)
	// sole bidder pays 80% of its own score
	assert.Equal(t, 0.208, d.ClearingPrice)
	assert.Equal(t, 1, f.metrics.capped[domain.EventImpression])
}

func TestRequestDecisionUnknownAdUnit(t *testing.T) {
	f := newFixture(t)
	f.expectFirstAttempt("r4")
	f.units.EXPECT().GetAdUnit(mock.Anything, int64(5)).Return(domain.AdUnit{}, domain.AdUnitNotFound(5))

	_, err := f.uc.RequestDecision(context.Background(), adRequest("r4"))

	assert.ErrorIs(t, err, domain.ErrAdUnitNotFound)
	assert.Equal(t, []string{outcomeError}, f.metrics.decisions)
}

func TestRequestDecisionTimeout(t *testing.T) {
	f := newFixture(t, WithTimeout(20*time.Millisecond))
	f.expectFirstAttempt("r5")
	f.expectServingUnit()
	f.ads.EXPECT().ListActiveCandidates(mock.Anything, int64(1)).
		Run(func(ctx context.Context, _ int64) { <-ctx.Done() }).
		Return(nil, context.DeadlineExceeded)

	_, err := f.uc.RequestDecision(context.Background(), adRequest("r5"))

	assert.ErrorIs(t, err, domain.ErrDecisionTimeout)
	assert.Equal(t, []string{outcomeTimeout}, f.metrics.decisions)
}

func TestRequestDecisionCancelledRecordsNothing(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.expectFirstAttempt("r6")
	f.expectServingUnit()
	f.ads.EXPECT().ListActiveCandidates(mock.Anything, int64(1)).
		Run(func(context.Context, int64) { cancel() }).
		Return([]domain.Candidate{candidate(1, 100, 10)}, nil)
	f.history.EXPECT().CampaignHistory(mock.Anything, int64(100), 30).Return(nil, nil).Maybe()

	_, err := f.uc.RequestDecision(ctx, adRequest("r6"))
	assert.ErrorIs(t, err, context.Canceled)

	status, err := f.ledger.CheckCap(context.Background(), domain.FrequencyKey{UserID: "u1", AdID: 1, EventType: domain.EventImpression}, 100)
	require.NoError(t, err)
	assert.Zero(t, status.CurrentCount)
}

func TestRecordSkipsSideEffectsWhenCancelled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.uc.record(ctx, adRequest("r7"), &domain.Decision{Success: true, AdID: 1, CampaignID: 100})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegisterClick(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.outcomes.EXPECT().FindOutcome(mock.Anything, "r1").
		Return(domain.Outcome{RequestID: "r1", Success: true, AdID: 1, CampaignID: 100, UserID: "u1"}, nil).Times(2)
	f.ads.EXPECT().GetCandidate(mock.Anything, int64(1)).Return(candidate(1, 100, 10), nil).Times(2)

	for range 2 {
		url, err := f.uc.RegisterClick(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/ad", url)
	}

	status, err := f.uc.CheckFrequency(ctx, domain.FrequencyKey{UserID: "u1", AdID: 1, EventType: domain.EventClick}, 100)
	require.NoError(t, err)
	assert.False(t, status.Allowed)
	assert.Equal(t, int64(1), status.CurrentCount)
	assert.Equal(t, 1, f.metrics.capped[domain.EventClick])
}

func TestRegisterClickOnNoFill(t *testing.T) {
	f := newFixture(t)
	f.outcomes.EXPECT().FindOutcome(mock.Anything, "r2").Return(domain.Outcome{RequestID: "r2"}, nil)

	_, err := f.uc.RegisterClick(context.Background(), "r2")
	assert.ErrorIs(t, err, domain.ErrOutcomeNotFound)
}

func TestRegisterClickUnknownRequest(t *testing.T) {
	f := newFixture(t)
	f.outcomes.EXPECT().FindOutcome(mock.Anything, "nope").Return(domain.Outcome{}, domain.OutcomeNotFound("nope"))

	_, err := f.uc.RegisterClick(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalculateBid(t *testing.T) {
	f := newFixture(t)
	campaign := domain.Campaign{ID: 7, Budget: 1000, BidStrategy: domain.BidStrategyAutoCPC, TargetCPC: 2}
	f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(7), int64(1)).Return(campaign, nil)
	f.units.EXPECT().GetAdUnit(mock.Anything, int64(5)).Return(domain.AdUnit{ID: 5, Format: domain.FormatBanner}, nil)
	f.history.EXPECT().CampaignHistory(mock.Anything, int64(7), 30).Return(nil, nil)

	bid, err := f.uc.CalculateBid(context.Background(), port.BidRequest{
		CampaignID: 7, OrganizationID: 1, AdUnitID: 5, TargetingScore: 0.8,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.2, bid.Amount)
}

func TestCalculateBidUnknownCampaign(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(7), int64(1)).Return(domain.Campaign{}, domain.CampaignNotFound(7))

	_, err := f.uc.CalculateBid(context.Background(), port.BidRequest{CampaignID: 7, OrganizationID: 1, AdUnitID: 5})
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestCalculateBidValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CalculateBid(context.Background(), port.BidRequest{TargetingScore: 2})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 4)
}

func TestSimulateAuction(t *testing.T) {
	f := newFixture(t, WithRandomSource(fixedSource{v: 0.5}))
	c := candidate(1, 100, 10)
	f.ads.EXPECT().GetCandidate(mock.Anything, int64(1)).Return(c, nil)
	f.units.EXPECT().GetAdUnit(mock.Anything, int64(5)).Return(domain.AdUnit{ID: 5, Format: domain.FormatBanner}, nil)
	f.history.EXPECT().CampaignHistory(mock.Anything, int64(100), 30).Return(nil, nil)

	res, err := f.uc.SimulateAuction(context.Background(), port.SimulationRequest{
		AdID: 1, OrganizationID: 1, AdUnitID: 5, Competitors: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.01, res.Bid)
	assert.Equal(t, []float64{5.01, 5.01, 5.01}, res.CompetitorBids)
	assert.Equal(t, 4, res.Rank)
	assert.False(t, res.InTopThree)
}

func TestSimulateAuctionOtherOrganization(t *testing.T) {
	f := newFixture(t)
	f.ads.EXPECT().GetCandidate(mock.Anything, int64(1)).Return(candidate(1, 100, 10), nil)

	_, err := f.uc.SimulateAuction(context.Background(), port.SimulationRequest{AdID: 1, OrganizationID: 2, AdUnitID: 5})
	assert.ErrorIs(t, err, domain.ErrCandidateNotFound)
}

func TestEvaluateTargeting(t *testing.T) {
	f := newFixture(t)
	c := candidate(1, 100, 10)
	c.Ad.Targeting.Interests = []string{"sports", "music"}
	f.ads.EXPECT().GetCandidate(mock.Anything, int64(1)).Return(c, nil)
	f.ads.EXPECT().GetCandidate(mock.Anything, int64(9)).Return(domain.Candidate{}, domain.CandidateNotFound(9))

	res, err := f.uc.EvaluateTargeting(context.Background(), 1, domain.RequestContext{Interests: []string{"music", "sports"}})
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Score)
	assert.True(t, res.Matched)

	_, err = f.uc.EvaluateTargeting(context.Background(), 9, domain.RequestContext{})
	assert.ErrorIs(t, err, domain.ErrCandidateNotFound)
}

func TestRecordEventValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RecordEvent(context.Background(), domain.FrequencyEvent{EventID: "e1", AdID: 1, Type: "view"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"user_id"}, verr.Missing())
	assert.Contains(t, err.Error(), "event_type (oneof)")
}

func TestRecommendCaps(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(7), int64(1)).Return(domain.Campaign{ID: 7}, nil)
	f.history.EXPECT().CampaignHistory(mock.Anything, int64(7), 30).Return([]domain.AdPerformance{
		{AdID: 1, Performance: domain.Performance{Impressions: 600, Clicks: 30, Conversions: 3}},
		{AdID: 2, Performance: domain.Performance{Impressions: 400, Clicks: 30}},
	}, nil)

	caps, err := f.uc.RecommendCaps(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(6), caps.ImpressionLimit)
	assert.Equal(t, int64(3), caps.ClickLimit)
	assert.InDelta(t, 0.06, caps.CTR, 1e-12)
}

func TestRecommendCapsUnknownCampaign(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(7), int64(1)).Return(domain.Campaign{}, domain.CampaignNotFound(7))

	_, err := f.uc.RecommendCaps(context.Background(), 7, 1)
	assert.True(t, errors.Is(err, domain.ErrCampaignNotFound))
}
