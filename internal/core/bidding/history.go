package bidding

import "mesa-decision/internal/core/domain"

const (
	// HistoryDepth is how many of a campaign's most recent ads feed the
	// performance multiplier.
	HistoryDepth = 30
	// RecentDepth is how many of those are kept for inspection.
	RecentDepth = 10
)

// Metrics are the rates the calculator works with.
type Metrics struct {
	Impressions    int64   `json:"impressions"`
	CTR            float64 `json:"ctr"`
	CPC            float64 `json:"cpc"`
	CPM            float64 `json:"cpm"`
	ConversionRate float64 `json:"conversion_rate"`
	Defaulted      bool    `json:"defaulted"`
}

// DefaultMetrics are used for campaigns without trailing history.
var DefaultMetrics = Metrics{
	CTR:            0.02,
	CPC:            1.50,
	CPM:            3.00,
	ConversionRate: 0.01,
	Defaulted:      true,
}

// History is the aggregated trailing performance of a campaign.
type History struct {
	Totals domain.Performance     `json:"totals"`
	Recent []domain.AdPerformance `json:"recent"`
	Ads    int                    `json:"ads"`
}

// NewHistory aggregates rows, which are expected most recent first. Rows past
// HistoryDepth are ignored.
func NewHistory(rows []domain.AdPerformance) History {
	if len(rows) > HistoryDepth {
		rows = rows[:HistoryDepth]
	}
	var h History
	for _, r := range rows {
		h.Totals = h.Totals.Add(r.Performance)
	}
	h.Ads = len(rows)
	recent := rows
	if len(recent) > RecentDepth {
		recent = recent[:RecentDepth]
	}
	h.Recent = append([]domain.AdPerformance(nil), recent...)
	return h
}

// Metrics derives rates, falling back to DefaultMetrics where a counter has
// no denominator.
func (h History) Metrics() Metrics {
	t := h.Totals
	if t.Impressions == 0 {
		return DefaultMetrics
	}
	m := Metrics{
		Impressions:    t.Impressions,
		CTR:            t.CTR(),
		CPM:            t.CPM(),
		CPC:            DefaultMetrics.CPC,
		ConversionRate: DefaultMetrics.ConversionRate,
	}
	if t.Clicks > 0 {
		m.CPC = t.CPC()
		m.ConversionRate = t.ConversionRate()
	}
	return m
}
