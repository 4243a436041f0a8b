package domain

import (
	"time"
)

// EventType is a frequency-capped event kind.
type EventType string

const (
	EventImpression EventType = "impression"
	EventClick      EventType = "click"
)

// CapRule limits how many events of one type a user may produce for an ad
// within Window.
type CapRule struct {
	Limit  int64         `json:"limit"`
	Window time.Duration `json:"window"`
}

// FrequencyKey identifies one counter.
type FrequencyKey struct {
	UserID    string    `json:"user_id" validate:"required"`
	AdID      int64     `json:"ad_id" validate:"required"`
	EventType EventType `json:"event_type" validate:"required,oneof=impression click"`
}

// Window is a half-open time interval [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// WindowAround returns [t-size, t+size). Reads and writes of the ledger both
// go through this function.
func WindowAround(t time.Time, size time.Duration) Window {
	return Window{Start: t.Add(-size), End: t.Add(size)}
}

// Contains reports whether t lies in [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// FrequencyRecord is a counter for one key within one window.
type FrequencyRecord struct {
	Key        FrequencyKey `json:"key"`
	CampaignID int64        `json:"campaign_id"`
	Count      int64        `json:"count"`
	Window     Window       `json:"window"`
}

// FrequencyEvent is a single impression or click to be counted. EventID makes
// recording idempotent.
type FrequencyEvent struct {
	EventID    string    `json:"event_id" validate:"required"`
	UserID     string    `json:"user_id" validate:"required"`
	AdID       int64     `json:"ad_id" validate:"required"`
	CampaignID int64     `json:"campaign_id"`
	Type       EventType `json:"event_type" validate:"required,oneof=impression click"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Key returns the counter key of the event.
func (e FrequencyEvent) Key() FrequencyKey {
	return FrequencyKey{UserID: e.UserID, AdID: e.AdID, EventType: e.Type}
}

// CapStatus is the answer of a cap check.
type CapStatus struct {
	Allowed       bool          `json:"allowed"`
	CurrentCount  int64         `json:"current_count"`
	Limit         int64         `json:"limit"`
	TimeRemaining time.Duration `json:"-"`
}

// TimeRemainingMillis is TimeRemaining in milliseconds.
func (s CapStatus) TimeRemainingMillis() int64 {
	return s.TimeRemaining.Milliseconds()
}

// RecommendedCaps are operator guidance derived from past performance. They
// are not enforced.
type RecommendedCaps struct {
	ImpressionLimit int64   `json:"impression_limit"`
	ClickLimit      int64   `json:"click_limit"`
	CTR             float64 `json:"ctr"`
	ConversionRate  float64 `json:"conversion_rate"`
}
