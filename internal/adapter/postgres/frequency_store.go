package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-decision/internal/core/domain"
)

// Postgres error codes that mean a counter update lost a race.
var contentionCodes = map[string]struct{}{
	"40001": {}, // serialization_failure
	"40P01": {}, // deadlock_detected
	"55P03": {}, // lock_not_available
}

// FrequencyStore keeps frequency counters in frequency_counters. Increments
// of one key are serialised with a transaction-scoped advisory lock and
// deduplicated per user through frequency_events.
type FrequencyStore struct {
	pool *pgxpool.Pool
}

// NewFrequencyStore returns a new store instance.
func NewFrequencyStore(pool *pgxpool.Pool) *FrequencyStore {
	return &FrequencyStore{pool: pool}
}

const selectCurrent = `
        SELECT campaign_id, count, window_start, window_end
        FROM frequency_counters
        WHERE user_id = $1 AND ad_id = $2 AND event_type = $3
          AND window_start <= $4 AND window_end > $4
        ORDER BY window_start DESC
        LIMIT 1`

// Current returns the record of key whose window contains at.
func (s *FrequencyStore) Current(ctx context.Context, key domain.FrequencyKey, at time.Time) (domain.FrequencyRecord, bool, error) {
	return current(ctx, s.pool, key, at)
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func current(ctx context.Context, q querier, key domain.FrequencyKey, at time.Time) (domain.FrequencyRecord, bool, error) {
	rec := domain.FrequencyRecord{Key: key}
	err := q.QueryRow(ctx, selectCurrent, key.UserID, key.AdID, string(key.EventType), at).
		Scan(&rec.CampaignID, &rec.Count, &rec.Window.Start, &rec.Window.End)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.FrequencyRecord{}, false, nil
	}
	if err != nil {
		return domain.FrequencyRecord{}, false, classify("select counter", err)
	}
	return rec, true, nil
}

// Increment counts ev inside one transaction.
func (s *FrequencyStore) Increment(ctx context.Context, ev domain.FrequencyEvent, window domain.Window) (rec domain.FrequencyRecord, applied bool, err error) {
	key := ev.Key()
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.FrequencyRecord{}, false, classify("begin", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, lockKey(key)); err != nil {
		return domain.FrequencyRecord{}, false, classify("lock counter", err)
	}

	// The event is kept until the window it is counted in ends.
	tag, err := tx.Exec(ctx, `
        INSERT INTO frequency_events (user_id, event_id, ad_id, event_type, occurred_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, GREATEST($6, (
            SELECT max(window_end) FROM frequency_counters
            WHERE user_id = $1 AND ad_id = $3 AND event_type = $4
              AND window_start <= $5 AND window_end > $5)))
        ON CONFLICT (user_id, event_id) DO NOTHING`,
		ev.UserID, ev.EventID, ev.AdID, string(ev.Type), ev.OccurredAt, window.End)
	if err != nil {
		return domain.FrequencyRecord{}, false, classify("insert event", err)
	}

	if tag.RowsAffected() == 0 {
		rec, ok, err := current(ctx, tx, key, ev.OccurredAt)
		if err != nil {
			return domain.FrequencyRecord{}, false, err
		}
		if !ok {
			rec = domain.FrequencyRecord{Key: key, CampaignID: ev.CampaignID}
		}
		return rec, false, s.commit(ctx, tx)
	}

	rec = domain.FrequencyRecord{Key: key}
	err = tx.QueryRow(ctx, `
        UPDATE frequency_counters SET count = count + 1
        WHERE user_id = $1 AND ad_id = $2 AND event_type = $3
          AND window_start = (
              SELECT max(window_start) FROM frequency_counters
              WHERE user_id = $1 AND ad_id = $2 AND event_type = $3
                AND window_start <= $4 AND window_end > $4)
        RETURNING campaign_id, count, window_start, window_end`,
		key.UserID, key.AdID, string(key.EventType), ev.OccurredAt).
		Scan(&rec.CampaignID, &rec.Count, &rec.Window.Start, &rec.Window.End)
	if errors.Is(err, pgx.ErrNoRows) {
		err = tx.QueryRow(ctx, `
            INSERT INTO frequency_counters (user_id, ad_id, event_type, window_start, window_end, campaign_id, count)
            VALUES ($1, $2, $3, $4, $5, $6, 1)
            ON CONFLICT (user_id, ad_id, event_type, window_start)
            DO UPDATE SET count = frequency_counters.count + 1
            RETURNING campaign_id, count, window_start, window_end`,
			key.UserID, key.AdID, string(key.EventType), window.Start, window.End, ev.CampaignID).
			Scan(&rec.CampaignID, &rec.Count, &rec.Window.Start, &rec.Window.End)
	}
	if err != nil {
		return domain.FrequencyRecord{}, false, classify("upsert counter", err)
	}
	if err = s.commit(ctx, tx); err != nil {
		return domain.FrequencyRecord{}, false, err
	}
	return rec, true, nil
}

// Sweep deletes counters and event ids whose window ended before now and
// returns how many counters were removed.
func (s *FrequencyStore) Sweep(ctx context.Context, now time.Time) (removed int64, err error) {
	err = pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM frequency_counters WHERE window_end <= $1`, now)
		if err != nil {
			return classify("sweep counters", err)
		}
		removed = tag.RowsAffected()
		if _, err := tx.Exec(ctx, `DELETE FROM frequency_events WHERE expires_at <= $1`, now); err != nil {
			return classify("sweep events", err)
		}
		return nil
	})
	return removed, err
}

func (s *FrequencyStore) commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return classify("commit", err)
	}
	return nil
}

func lockKey(key domain.FrequencyKey) string {
	return key.UserID + "|" + strconv.FormatInt(key.AdID, 10) + "|" + string(key.EventType)
}

// classify maps lock and serialization failures to
// domain.ErrLedgerContention.
func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if _, ok := contentionCodes[pgErr.Code]; ok {
			return fmt.Errorf("%s: %w: %s", op, domain.ErrLedgerContention, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
