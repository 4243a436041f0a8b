package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-decision/internal/core/domain"
)

// OutcomeStore writes one row per processed request into request_outcomes.
type OutcomeStore struct {
	pool *pgxpool.Pool
}

// NewOutcomeStore returns a new store instance.
func NewOutcomeStore(pool *pgxpool.Pool) *OutcomeStore {
	return &OutcomeStore{pool: pool}
}

// RecordOutcome inserts o. A second write for the same request id is
// ignored.
func (s *OutcomeStore) RecordOutcome(ctx context.Context, o domain.Outcome) error {
	id, err := uuid.Parse(o.ID)
	if err != nil {
		return fmt.Errorf("outcome id: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
        INSERT INTO request_outcomes
            (id, request_id, organization_id, site_id, ad_unit_id, user_id, success,
             ad_id, campaign_id, bid_amount, clearing_price, reason, created_at)
        VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7,
                NULLIF($8::bigint, 0), NULLIF($9::bigint, 0), $10, $11, NULLIF($12, ''), $13)
        ON CONFLICT (request_id) DO NOTHING`,
		id, o.RequestID, o.OrganizationID, o.SiteID, o.AdUnitID, o.UserID, o.Success,
		o.AdID, o.CampaignID, o.BidAmount, o.ClearingPrice, o.Reason, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert outcome: %w", err)
	}
	return nil
}

// FindOutcome returns the outcome stored for requestID.
func (s *OutcomeStore) FindOutcome(ctx context.Context, requestID string) (domain.Outcome, error) {
	var o domain.Outcome
	err := s.pool.QueryRow(ctx, `
        SELECT id::text, request_id, organization_id, site_id, ad_unit_id, COALESCE(user_id, ''), success,
               COALESCE(ad_id, 0), COALESCE(campaign_id, 0), bid_amount::float8, clearing_price::float8,
               COALESCE(reason, ''), created_at
        FROM request_outcomes
        WHERE request_id = $1`, requestID).
		Scan(&o.ID, &o.RequestID, &o.OrganizationID, &o.SiteID, &o.AdUnitID, &o.UserID, &o.Success,
			&o.AdID, &o.CampaignID, &o.BidAmount, &o.ClearingPrice, &o.Reason, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Outcome{}, domain.OutcomeNotFound(requestID)
	}
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("select outcome: %w", err)
	}
	return o, nil
}
