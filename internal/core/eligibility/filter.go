// Package eligibility narrows the candidate set of an ad request to ads that
// may be served on the requested ad unit.
package eligibility

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"mesa-decision/internal/core/domain"
	"mesa-decision/internal/core/port"
)

// CapChecker answers frequency cap checks.
type CapChecker interface {
	CheckCap(ctx context.Context, key domain.FrequencyKey, campaignID int64) (domain.CapStatus, error)
}

// Filter applies state and hard compatibility rules. It never mutates
// anything.
type Filter struct {
	units  port.AdUnitStore
	ads    port.AdStore
	caps   CapChecker
	now    func() time.Time
	logger *slog.Logger
}

// NewFilter creates a filter. caps may be nil to disable cap checks.
func NewFilter(units port.AdUnitStore, ads port.AdStore, caps CapChecker, logger *slog.Logger) *Filter {
	return &Filter{units: units, ads: ads, caps: caps, now: time.Now, logger: logger}
}

// Eligible resolves the ad unit of req and returns the candidates that may be
// served on it. An empty slice is a valid result.
func (f *Filter) Eligible(ctx context.Context, req domain.AdRequest) (domain.AdUnit, []domain.Candidate, error) {
	unit, err := f.units.GetAdUnit(ctx, req.AdUnitID)
	if err != nil {
		return domain.AdUnit{}, nil, fmt.Errorf("get ad unit: %w", err)
	}
	if req.SiteID != 0 && unit.SiteID != req.SiteID {
		return domain.AdUnit{}, nil, fmt.Errorf("ad unit is not on site %d: %w", req.SiteID, domain.AdUnitNotFound(req.AdUnitID))
	}
	site, err := f.units.GetSite(ctx, unit.SiteID)
	if err != nil {
		return domain.AdUnit{}, nil, fmt.Errorf("get site: %w", err)
	}
	if unit.Status != domain.AdUnitStatusActive || site.Status != domain.SiteStatusActive {
		f.logger.Debug("ad unit not serving",
			slog.Int64("ad_unit_id", unit.ID),
			slog.String("unit_status", string(unit.Status)),
			slog.String("site_status", string(site.Status)))
		return unit, nil, nil
	}

	all, err := f.ads.ListActiveCandidates(ctx, req.OrganizationID)
	if err != nil {
		return domain.AdUnit{}, nil, fmt.Errorf("list candidates: %w", err)
	}

	now := f.now()
	eligible := make([]domain.Candidate, 0, len(all))
	for _, c := range all {
		if reason := Reject(c, unit, req.Context, now); reason != "" {
			f.logger.Debug("candidate rejected", slog.Int64("ad_id", c.Ad.ID), slog.String("reason", reason))
			continue
		}
		if f.caps != nil && req.Context.UserID != "" {
			key := domain.FrequencyKey{UserID: req.Context.UserID, AdID: c.Ad.ID, EventType: domain.EventImpression}
			status, err := f.caps.CheckCap(ctx, key, c.Campaign.ID)
			if err != nil {
				return domain.AdUnit{}, nil, fmt.Errorf("check frequency cap: %w", err)
			}
			if !status.Allowed {
				f.logger.Debug("candidate frequency capped", slog.Int64("ad_id", c.Ad.ID))
				continue
			}
		}
		eligible = append(eligible, c)
	}
	return unit, eligible, nil
}

// Reject returns why c cannot be served on unit for rc, or "" when it can.
func Reject(c domain.Candidate, unit domain.AdUnit, rc domain.RequestContext, now time.Time) string {
	switch {
	case c.Campaign.Status != domain.CampaignStatusActive:
		return "campaign not active"
	case !c.Campaign.InFlight(now):
		return "campaign outside flight dates"
	case c.Ad.Status != domain.AdStatusActive:
		return "ad not active"
	case c.Campaign.OrganizationType != domain.OrganizationAdvertiser:
		return "campaign not owned by an advertiser"
	}

	t := c.Ad.Targeting
	if len(t.Formats) > 0 && !slices.Contains(t.Formats, unit.Format) {
		return fmt.Sprintf("format %s not allowed", unit.Format)
	}
	if t.Geo != nil && rc.Geo != nil && t.Geo.Country != "" && rc.Geo.Country != "" &&
		!strings.EqualFold(t.Geo.Country, rc.Geo.Country) {
		return "country mismatch"
	}
	if t.Device != nil && rc.Device != nil && t.Device.Type != "" && rc.Device.Type != "" &&
		!strings.EqualFold(t.Device.Type, rc.Device.Type) {
		return "device type mismatch"
	}
	return ""
}
