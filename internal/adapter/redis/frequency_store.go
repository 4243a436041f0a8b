// Package redis keeps frequency counters in Redis so several decision
// instances can share one ledger.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"mesa-decision/internal/core/domain"
)

// incrementScript deduplicates by event id and increments the counter in one
// round trip. The event marker expires with the window it was counted in.
// Times are unix milliseconds.
//
// KEYS[1] counter hash, KEYS[2] event marker
// ARGV[1] occurred at, ARGV[2] window start, ARGV[3] window end,
// ARGV[4] campaign id
var incrementScript = redis.NewScript(`
local cur = redis.call('HMGET', KEYS[1], 'count', 'start', 'end', 'campaign')
if not redis.call('SET', KEYS[2], '1', 'NX') then
  return {0, cur[1] or '0', cur[2] or '0', cur[3] or '0', cur[4] or ARGV[4]}
end
local at = tonumber(ARGV[1])
if cur[1] and tonumber(cur[2]) <= at and at < tonumber(cur[3]) then
  local n = redis.call('HINCRBY', KEYS[1], 'count', 1)
  redis.call('PEXPIREAT', KEYS[2], cur[3])
  return {1, tostring(n), cur[2], cur[3], cur[4]}
end
redis.call('HSET', KEYS[1], 'count', 1, 'start', ARGV[2], 'end', ARGV[3], 'campaign', ARGV[4])
redis.call('PEXPIREAT', KEYS[1], ARGV[3])
redis.call('PEXPIREAT', KEYS[2], ARGV[3])
return {1, '1', ARGV[2], ARGV[3], ARGV[4]}
`)

// FrequencyStore implements port.FrequencyStore on Redis hashes. Counters
// expire with their window.
type FrequencyStore struct {
	client redis.UniversalClient
	prefix string
}

// NewFrequencyStore returns a store that namespaces its keys with prefix.
func NewFrequencyStore(client redis.UniversalClient, prefix string) *FrequencyStore {
	if prefix == "" {
		prefix = "freq"
	}
	return &FrequencyStore{client: client, prefix: prefix}
}

// Current returns the record of key whose window contains at.
func (s *FrequencyStore) Current(ctx context.Context, key domain.FrequencyKey, at time.Time) (domain.FrequencyRecord, bool, error) {
	vals, err := s.client.HMGet(ctx, s.counterKey(key), "count", "start", "end", "campaign").Result()
	if err != nil {
		return domain.FrequencyRecord{}, false, fmt.Errorf("read counter: %w", err)
	}
	if vals[0] == nil {
		return domain.FrequencyRecord{}, false, nil
	}
	rec, err := parseRecord(key, vals)
	if err != nil {
		return domain.FrequencyRecord{}, false, err
	}
	if !rec.Window.Contains(at) {
		return domain.FrequencyRecord{}, false, nil
	}
	return rec, true, nil
}

// Increment counts ev atomically on the server.
func (s *FrequencyStore) Increment(ctx context.Context, ev domain.FrequencyEvent, window domain.Window) (domain.FrequencyRecord, bool, error) {
	key := ev.Key()
	res, err := incrementScript.Run(ctx, s.client,
		[]string{s.counterKey(key), s.eventKey(ev.UserID, ev.EventID)},
		ev.OccurredAt.UnixMilli(),
		window.Start.UnixMilli(),
		window.End.UnixMilli(),
		ev.CampaignID,
	).Slice()
	if err != nil {
		return domain.FrequencyRecord{}, false, fmt.Errorf("increment counter: %w", err)
	}
	if len(res) != 5 {
		return domain.FrequencyRecord{}, false, fmt.Errorf("increment counter: unexpected reply of %d values", len(res))
	}

	applied, _ := res[0].(int64)
	rec, err := parseRecord(key, res[1:])
	if err != nil {
		return domain.FrequencyRecord{}, false, err
	}
	if applied == 0 && rec.Count == 0 {
		rec = domain.FrequencyRecord{Key: key, CampaignID: ev.CampaignID}
	}
	return rec, applied == 1, nil
}

// Keys of one user share the {user} hash tag so the script's keys land in one
// cluster slot.
func (s *FrequencyStore) counterKey(key domain.FrequencyKey) string {
	return s.prefix + ":{" + key.UserID + "}:" + strconv.FormatInt(key.AdID, 10) + ":" + string(key.EventType)
}

func (s *FrequencyStore) eventKey(userID, eventID string) string {
	return s.prefix + ":{" + userID + "}:evt:" + eventID
}

var errMalformed = errors.New("malformed counter")

// parseRecord reads count, start, end and campaign from a Redis reply.
func parseRecord(key domain.FrequencyKey, vals []any) (domain.FrequencyRecord, error) {
	var n [4]int64
	for i := range n {
		s, ok := vals[i].(string)
		if !ok {
			return domain.FrequencyRecord{}, fmt.Errorf("%w: field %d is %T", errMalformed, i, vals[i])
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return domain.FrequencyRecord{}, fmt.Errorf("%w: %w", errMalformed, err)
		}
		n[i] = v
	}
	return domain.FrequencyRecord{
		Key:        key,
		Count:      n[0],
		CampaignID: n[3],
		Window: domain.Window{
			Start: time.UnixMilli(n[1]).UTC(),
			End:   time.UnixMilli(n[2]).UTC(),
		},
	}, nil
}
