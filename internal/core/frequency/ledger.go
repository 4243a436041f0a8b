// Package frequency implements per-user frequency capping on top of a keyed
// counter store.
package frequency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mesa-decision/internal/core/domain"
	"mesa-decision/internal/core/port"
)

// ErrUnknownEventType is returned for event types without a cap rule.
var ErrUnknownEventType = errors.New("unknown event type")

// Policy maps event types to their cap rule.
type Policy map[domain.EventType]domain.CapRule

// DefaultPolicy allows three impressions and one click per user and ad a day.
func DefaultPolicy() Policy {
	return Policy{
		domain.EventImpression: {Limit: 3, Window: 24 * time.Hour},
		domain.EventClick:      {Limit: 1, Window: 24 * time.Hour},
	}
}

// Ledger answers cap checks and records events. Reads and writes derive the
// window with domain.WindowAround and match records with Window.Contains, so
// a count written by RecordEvent is always visible to CheckCap.
type Ledger struct {
	store  port.FrequencyStore
	policy Policy
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithPolicy replaces the default policy.
func WithPolicy(p Policy) Option {
	return func(l *Ledger) { l.policy = p }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// NewLedger creates a ledger over store.
func NewLedger(store port.FrequencyStore, logger *slog.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		store:  store,
		policy: DefaultPolicy(),
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Rule returns the cap rule of an event type.
func (l *Ledger) Rule(t domain.EventType) (domain.CapRule, error) {
	rule, ok := l.policy[t]
	if !ok {
		return domain.CapRule{}, fmt.Errorf("%w: %q", ErrUnknownEventType, t)
	}
	return rule, nil
}

// CheckCap reports whether one more event of key.EventType is allowed.
// The campaign id is accepted for campaign-level overrides; the current
// policy is global.
func (l *Ledger) CheckCap(ctx context.Context, key domain.FrequencyKey, campaignID int64) (domain.CapStatus, error) {
	rule, err := l.Rule(key.EventType)
	if err != nil {
		return domain.CapStatus{}, err
	}
	now := l.now()
	window := domain.WindowAround(now, rule.Window)

	rec, ok, err := l.store.Current(ctx, key, now)
	if err != nil {
		return domain.CapStatus{}, fmt.Errorf("read frequency counter: %w", err)
	}

	var count int64
	if ok {
		count = rec.Count
		window = rec.Window
	}
	remaining := window.End.Sub(now)
	if remaining < 0 {
		remaining = 0
	}

	status := domain.CapStatus{
		Allowed:       count < rule.Limit,
		CurrentCount:  count,
		Limit:         rule.Limit,
		TimeRemaining: remaining,
	}
	if !status.Allowed {
		l.logger.Debug("frequency cap reached",
			slog.String("user_id", key.UserID),
			slog.Int64("ad_id", key.AdID),
			slog.Int64("campaign_id", campaignID),
			slog.String("event_type", string(key.EventType)),
			slog.Int64("count", count))
	}
	return status, nil
}

// RecordEvent counts ev. Recording the same EventID twice counts once.
func (l *Ledger) RecordEvent(ctx context.Context, ev domain.FrequencyEvent) (domain.FrequencyRecord, error) {
	rule, err := l.Rule(ev.Type)
	if err != nil {
		return domain.FrequencyRecord{}, err
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = l.now()
	}

	rec, applied, err := l.store.Increment(ctx, ev, domain.WindowAround(ev.OccurredAt, rule.Window))
	if err != nil {
		return domain.FrequencyRecord{}, fmt.Errorf("increment frequency counter: %w", err)
	}
	if !applied {
		l.logger.Debug("duplicate frequency event ignored",
			slog.String("event_id", ev.EventID),
			slog.String("event_type", string(ev.Type)))
	}
	return rec, nil
}
