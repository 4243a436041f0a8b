package eligibility

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-decision/internal/adapter/memory"
	"mesa-decision/internal/core/domain"
	"mesa-decision/internal/core/frequency"
	"mesa-decision/internal/core/port/mocks"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func activeCandidate(adID int64, targeting domain.Targeting) domain.Candidate {
	return domain.Candidate{
		Ad: domain.Ad{ID: adID, CampaignID: 100, Status: domain.AdStatusActive, Targeting: targeting},
		Campaign: domain.Campaign{
			ID: 100, OrganizationID: 1, OrganizationType: domain.OrganizationAdvertiser,
			Status: domain.CampaignStatusActive, Budget: 1000,
		},
	}
}

func bannerUnit() domain.AdUnit {
	return domain.AdUnit{ID: 5, SiteID: 3, Format: domain.FormatBanner, Status: domain.AdUnitStatusActive}
}

func request() domain.AdRequest {
	return domain.AdRequest{
		RequestID: "r1", OrganizationID: 1, SiteID: 3, AdUnitID: 5,
		Context: domain.RequestContext{
			UserID: "u1",
			Geo:    &domain.GeoLocation{Country: "US", City: "Austin"},
			Device: &domain.DeviceInfo{Type: "mobile", OS: "iOS"},
		},
	}
}

func TestEligibleAppliesHardRules(t *testing.T) {
	units := mocks.NewMockAdUnitStore(t)
	ads := mocks.NewMockAdStore(t)

	paused := activeCandidate(4, domain.Targeting{})
	paused.Campaign.Status = domain.CampaignStatusPaused
	publisher := activeCandidate(6, domain.Targeting{})
	publisher.Campaign.OrganizationType = domain.OrganizationPublisher
	draft := activeCandidate(7, domain.Targeting{})
	draft.Ad.Status = domain.AdStatusDraft

	candidates := []domain.Candidate{
		activeCandidate(1, domain.Targeting{}),
		activeCandidate(2, domain.Targeting{Formats: []domain.AdFormat{domain.FormatVideo}}),
		activeCandidate(3, domain.Targeting{Geo: &domain.GeoLocation{Country: "CA"}}),
		paused,
		activeCandidate(5, domain.Targeting{Device: &domain.DeviceInfo{Type: "desktop"}}),
		publisher,
		draft,
		// city mismatch is scoring-only
		activeCandidate(8, domain.Targeting{
			Geo:     &domain.GeoLocation{Country: "us", City: "Dallas"},
			Device:  &domain.DeviceInfo{Type: "Mobile", OS: "android"},
			Formats: []domain.AdFormat{domain.FormatBanner, domain.FormatNative},
		}),
	}

	units.EXPECT().GetAdUnit(mock.Anything, int64(5)).Return(bannerUnit(), nil)
	units.EXPECT().GetSite(mock.Anything, int64(3)).Return(domain.Site{ID: 3, Status: domain.SiteStatusActive}, nil)
	ads.EXPECT().ListActiveCandidates(mock.Anything, int64(1)).Return(candidates, nil)

	f := NewFilter(units, ads, nil, discard)
	unit, eligible, err := f.Eligible(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, domain.FormatBanner, unit.Format)

	var ids []int64
	for _, c := range eligible {
		ids = append(ids, c.Ad.ID)
	}
	assert.Equal(t, []int64{1, 8}, ids)
}

func TestEligibleDropsFrequencyCappedAds(t *testing.T) {
	ctx := context.Background()
	units := mocks.NewMockAdUnitStore(t)
	ads := mocks.NewMockAdStore(t)
	ledger := frequency.NewLedger(memory.NewFrequencyStore(), discard)

	for _, id := range []string{"a", "b", "c"} {
		_, err := ledger.RecordEvent(ctx, domain.FrequencyEvent{
			EventID: id, UserID: "u1", AdID: 1, CampaignID: 100, Type: domain.EventImpression,
		})
		require.NoError(t, err)
	}

	units.EXPECT().GetAdUnit(mock.Anything, int64(5)).Return(bannerUnit(), nil)
	units.EXPECT().GetSite(mock.Anything, int64(3)).Return(domain.Site{ID: 3, Status: domain.SiteStatusActive}, nil)
	ads.EXPECT().ListActiveCandidates(mock.Anything, int64(1)).
		Return([]domain.Candidate{activeCandidate(1, domain.Targeting{}), activeCandidate(2, domain.Targeting{})}, nil)

	_, eligible, err := NewFilter(units, ads, ledger, discard).Eligible(ctx, request())
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, int64(2), eligible[0].Ad.ID)
}

func TestEligibleUnknownAdUnit(t *testing.T) {
	units := mocks.NewMockAdUnitStore(t)
	ads := mocks.NewMockAdStore(t)
	units.EXPECT().GetAdUnit(mock.Anything, int64(5)).Return(domain.AdUnit{}, domain.AdUnitNotFound(5))

	_, _, err := NewFilter(units, ads, nil, discard).Eligible(context.Background(), request())
	assert.True(t, errors.Is(err, domain.ErrAdUnitNotFound))
}

func TestEligibleUnknownSite(t *testing.T) {
	units := mocks.NewMockAdUnitStore(t)
	ads := mocks.NewMockAdStore(t)
	units.EXPECT().GetAdUnit(mock.Anything, int64(5)).Return(bannerUnit(), nil)
	units.EXPECT().GetSite(mock.Anything, int64(3)).Return(domain.Site{}, domain.SiteNotFound(3))

	_, _, err := NewFilter(units, ads, nil, discard).Eligible(context.Background(), request())
	assert.True(t, errors.Is(err, domain.ErrSiteNotFound))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestEligibleUnitOnOtherSite(t *testing.T) {
	units := mocks.NewMockAdUnitStore(t)
	ads := mocks.NewMockAdStore(t)
	unit := bannerUnit()
	unit.SiteID = 99
	units.EXPECT().GetAdUnit(mock.Anything, int64(5)).Return(unit, nil)

	_, _, err := NewFilter(units, ads, nil, discard).Eligible(context.Background(), request())
	assert.True(t, errors.Is(err, domain.ErrAdUnitNotFound))
}

func TestEligibleInactiveUnitIsEmpty(t *testing.T) {
	units := mocks.NewMockAdUnitStore(t)
	ads := mocks.NewMockAdStore(t)
	unit := bannerUnit()
	unit.Status = domain.AdUnitStatusInactive
	units.EXPECT().GetAdUnit(mock.Anything, int64(5)).Return(unit, nil)
	units.EXPECT().GetSite(mock.Anything, int64(3)).Return(domain.Site{ID: 3, Status: domain.SiteStatusActive}, nil)

	_, eligible, err := NewFilter(units, ads, nil, discard).Eligible(context.Background(), request())
	require.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestRejectFlightDates(t *testing.T) {
	now := time.Now()
	ended := now.Add(-time.Hour)
	c := activeCandidate(1, domain.Targeting{})
	c.Campaign.EndDate = &ended

	assert.Equal(t, "campaign outside flight dates", Reject(c, bannerUnit(), domain.RequestContext{}, now))
}
