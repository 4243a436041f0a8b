// Package memory provides in-process implementations of outbound ports.
package memory

import (
	"context"
	"sync"
	"time"

	"mesa-decision/internal/core/domain"
)

type seenKey struct {
	userID, eventID string
}

// FrequencyStore implements port.FrequencyStore with a mutex-guarded map.
// It is suitable for a single instance; counters are lost on restart.
type FrequencyStore struct {
	mu      sync.Mutex
	entries map[domain.FrequencyKey]domain.FrequencyRecord
	// seen maps an event to the end of the window it was counted in.
	seen map[seenKey]time.Time
}

// NewFrequencyStore returns an empty store.
func NewFrequencyStore() *FrequencyStore {
	return &FrequencyStore{
		entries: make(map[domain.FrequencyKey]domain.FrequencyRecord),
		seen:    make(map[seenKey]time.Time),
	}
}

// Current returns the record of key whose window contains at.
func (s *FrequencyStore) Current(ctx context.Context, key domain.FrequencyKey, at time.Time) (domain.FrequencyRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.FrequencyRecord{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries[key]
	if !ok || !rec.Window.Contains(at) {
		return domain.FrequencyRecord{}, false, nil
	}
	return rec, true, nil
}

// Increment counts ev under the store lock.
func (s *FrequencyStore) Increment(ctx context.Context, ev domain.FrequencyEvent, window domain.Window) (domain.FrequencyRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.FrequencyRecord{}, false, err
	}
	key := ev.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries[key]
	seen := seenKey{userID: ev.UserID, eventID: ev.EventID}
	if _, dup := s.seen[seen]; dup {
		if !ok {
			rec = domain.FrequencyRecord{Key: key, CampaignID: ev.CampaignID}
		}
		return rec, false, nil
	}

	if ok && rec.Window.Contains(ev.OccurredAt) {
		rec.Count++
	} else {
		rec = domain.FrequencyRecord{
			Key:        key,
			CampaignID: ev.CampaignID,
			Count:      1,
			Window:     window,
		}
	}
	s.entries[key] = rec
	s.seen[seen] = rec.Window.End
	return rec, true, nil
}

// Sweep drops counters whose window ended before now, together with the
// event ids counted in them, and returns how many counters were removed.
func (s *FrequencyStore) Sweep(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for k, rec := range s.entries {
		if !now.Before(rec.Window.End) {
			delete(s.entries, k)
			removed++
		}
	}
	for k, end := range s.seen {
		if !now.Before(end) {
			delete(s.seen, k)
		}
	}
	return removed, nil
}

// Len returns the number of tracked keys.
func (s *FrequencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
