package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-decision/internal/core/domain"
)

// AdRepository reads the ad catalog: campaigns, ads, ad units, sites and
// per-ad performance. It implements port.CampaignStore, port.AdStore,
// port.AdUnitStore and port.PerformanceStore.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

const campaignColumns = `
            c.id,
            c.organization_id,
            o.type,
            c.name,
            c.status,
            c.bid_strategy,
            c.budget_type,
            c.budget::float8,
            c.spent::float8,
            c.target_cpm::float8,
            c.target_cpc::float8,
            c.target_cpa::float8,
            c.start_date,
            c.end_date,
            c.created_at,
            c.updated_at`

const candidateQuery = `
        SELECT` + campaignColumns + `,
            a.id,
            a.campaign_id,
            a.name,
            a.status,
            a.creative,
            a.targeting,
            a.weight,
            a.impressions,
            a.clicks,
            a.conversions,
            a.spend::float8,
            a.created_at,
            a.updated_at
        FROM ads a
        JOIN campaigns c ON a.campaign_id = c.id
        JOIN organizations o ON c.organization_id = o.id`

// GetCampaign returns the campaign owned by organizationID.
func (r *AdRepository) GetCampaign(ctx context.Context, id, organizationID int64) (domain.Campaign, error) {
	query := `
        SELECT` + campaignColumns + `
        FROM campaigns c
        JOIN organizations o ON c.organization_id = o.id
        WHERE c.id = $1 AND c.organization_id = $2`

	var c domain.Campaign
	err := r.pool.QueryRow(ctx, query, id, organizationID).Scan(campaignDest(&c)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, domain.CampaignNotFound(id)
	}
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("select campaign: %w", err)
	}
	return c, nil
}

// ListActiveCandidates returns active ads of active campaigns owned by the
// organization, oldest ad first.
func (r *AdRepository) ListActiveCandidates(ctx context.Context, organizationID int64) ([]domain.Candidate, error) {
	query := candidateQuery + `
        WHERE c.organization_id = $1
          AND c.status = 'active'
          AND a.status = 'active'
        ORDER BY a.created_at, a.id`

	rows, err := r.pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("select candidates: %w", err)
	}
	candidates, err := pgx.CollectRows(rows, scanCandidate)
	if err != nil {
		return nil, fmt.Errorf("scan candidates: %w", err)
	}
	return candidates, nil
}

// GetCandidate returns one ad with its campaign regardless of status.
func (r *AdRepository) GetCandidate(ctx context.Context, adID int64) (domain.Candidate, error) {
	rows, err := r.pool.Query(ctx, candidateQuery+` WHERE a.id = $1`, adID)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("select ad: %w", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCandidate)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Candidate{}, domain.CandidateNotFound(adID)
	}
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("scan ad: %w", err)
	}
	return c, nil
}

// GetAdUnit returns an ad unit by id.
func (r *AdRepository) GetAdUnit(ctx context.Context, id int64) (domain.AdUnit, error) {
	var u domain.AdUnit
	err := r.pool.QueryRow(ctx, `
        SELECT id, site_id, name, format, width, height, status
        FROM ad_units WHERE id = $1`, id).
		Scan(&u.ID, &u.SiteID, &u.Name, &u.Format, &u.Size.Width, &u.Size.Height, &u.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AdUnit{}, domain.AdUnitNotFound(id)
	}
	if err != nil {
		return domain.AdUnit{}, fmt.Errorf("select ad unit: %w", err)
	}
	return u, nil
}

// GetSite returns a site by id.
func (r *AdRepository) GetSite(ctx context.Context, id int64) (domain.Site, error) {
	var s domain.Site
	err := r.pool.QueryRow(ctx, `
        SELECT id, organization_id, domain, status
        FROM sites WHERE id = $1`, id).
		Scan(&s.ID, &s.OrganizationID, &s.Domain, &s.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Site{}, domain.SiteNotFound(id)
	}
	if err != nil {
		return domain.Site{}, fmt.Errorf("select site: %w", err)
	}
	return s, nil
}

// CampaignHistory returns the counters of the campaign's most recent ads,
// whatever their status.
func (r *AdRepository) CampaignHistory(ctx context.Context, campaignID int64, limit int) ([]domain.AdPerformance, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, impressions, clicks, conversions, spend::float8, created_at
        FROM ads
        WHERE campaign_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2`, campaignID, limit)
	if err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}
	history, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdPerformance, error) {
		var p domain.AdPerformance
		err := row.Scan(&p.AdID, &p.Performance.Impressions, &p.Performance.Clicks,
			&p.Performance.Conversions, &p.Performance.Spend, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan history: %w", err)
	}
	return history, nil
}

func campaignDest(c *domain.Campaign) []any {
	return []any{
		&c.ID,
		&c.OrganizationID,
		&c.OrganizationType,
		&c.Name,
		&c.Status,
		&c.BidStrategy,
		&c.BudgetType,
		&c.Budget,
		&c.Spent,
		&c.TargetCPM,
		&c.TargetCPC,
		&c.TargetCPA,
		&c.StartDate,
		&c.EndDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}

func scanCandidate(row pgx.CollectableRow) (domain.Candidate, error) {
	var (
		c                       domain.Candidate
		creativeRaw, targetRaw []byte
	)
	dest := append(campaignDest(&c.Campaign),
		&c.Ad.ID,
		&c.Ad.CampaignID,
		&c.Ad.Name,
		&c.Ad.Status,
		&creativeRaw,
		&targetRaw,
		&c.Ad.Weight,
		&c.Ad.Performance.Impressions,
		&c.Ad.Performance.Clicks,
		&c.Ad.Performance.Conversions,
		&c.Ad.Performance.Spend,
		&c.Ad.CreatedAt,
		&c.Ad.UpdatedAt,
	)
	if err := row.Scan(dest...); err != nil {
		return domain.Candidate{}, err
	}
	if err := json.Unmarshal(creativeRaw, &c.Ad.Creative); err != nil {
		return domain.Candidate{}, fmt.Errorf("ad %d creative: %w", c.Ad.ID, err)
	}
	if err := json.Unmarshal(targetRaw, &c.Ad.Targeting); err != nil {
		return domain.Candidate{}, fmt.Errorf("ad %d targeting: %w", c.Ad.ID, err)
	}
	return c, nil
}
