package domain

import "time"

// AdStatus is the lifecycle state of an ad. Deleted ads move to
// AdStatusRejected and are never physically removed.
type AdStatus string

const (
	AdStatusDraft    AdStatus = "draft"
	AdStatusActive   AdStatus = "active"
	AdStatusPaused   AdStatus = "paused"
	AdStatusRejected AdStatus = "rejected"
	AdStatusApproved AdStatus = "approved"
)

// Creative holds the renderable part of an ad.
type Creative struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`
	LandingURL  string    `json:"landing_url"`
	Width       int       `json:"width,omitempty"`
	Height      int       `json:"height,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Performance holds rolling counters maintained by reporting jobs.
type Performance struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
}

// CTR is clicks per impression.
func (p Performance) CTR() float64 {
	if p.Impressions == 0 {
		return 0
	}
	return float64(p.Clicks) / float64(p.Impressions)
}

// ConversionRate is conversions per click.
func (p Performance) ConversionRate() float64 {
	if p.Clicks == 0 {
		return 0
	}
	return float64(p.Conversions) / float64(p.Clicks)
}

// CPC is spend per click.
func (p Performance) CPC() float64 {
	if p.Clicks == 0 {
		return 0
	}
	return p.Spend / float64(p.Clicks)
}

// CPM is spend per thousand impressions.
func (p Performance) CPM() float64 {
	if p.Impressions == 0 {
		return 0
	}
	return p.Spend / float64(p.Impressions) * 1000
}

// Add returns the element-wise sum of two counters.
func (p Performance) Add(o Performance) Performance {
	return Performance{
		Impressions: p.Impressions + o.Impressions,
		Clicks:      p.Clicks + o.Clicks,
		Conversions: p.Conversions + o.Conversions,
		Spend:       p.Spend + o.Spend,
	}
}

// Ad is an individual advertisement owned by a campaign.
type Ad struct {
	ID          int64       `json:"id"`
	CampaignID  int64       `json:"campaign_id"`
	Name        string      `json:"name"`
	Status      AdStatus    `json:"status"`
	Creative    Creative    `json:"creative"`
	Targeting   Targeting   `json:"targeting"`
	Weight      int         `json:"weight"`
	Performance Performance `json:"performance"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// AdPerformance is one row of a campaign's trailing history.
type AdPerformance struct {
	AdID        int64       `json:"ad_id"`
	Performance Performance `json:"performance"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Candidate pairs an ad with its owning campaign for evaluation.
type Candidate struct {
	Ad       Ad       `json:"ad"`
	Campaign Campaign `json:"campaign"`
}
