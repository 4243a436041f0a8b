package domain

import "time"

// BidStrategy selects how the base bid of a campaign is derived.
type BidStrategy string

const (
	BidStrategyManual      BidStrategy = "manual"
	BidStrategyAutoCPC     BidStrategy = "auto_cpc"
	BidStrategyAutoCPM     BidStrategy = "auto_cpm"
	BidStrategyTargetCPA   BidStrategy = "target_cpa"
	BidStrategyPredictive  BidStrategy = "predictive"
	BidStrategyAIOptimized BidStrategy = "ai_optimized"
)

// BudgetType tells whether Budget resets daily or covers the whole flight.
type BudgetType string

const (
	BudgetTypeDaily    BudgetType = "daily"
	BudgetTypeLifetime BudgetType = "lifetime"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// OrganizationType classifies the organization owning a campaign or site.
type OrganizationType string

const (
	OrganizationAdvertiser OrganizationType = "advertiser"
	OrganizationPublisher  OrganizationType = "publisher"
	OrganizationAgency     OrganizationType = "agency"
)

// Campaign represents an advertising campaign.
// Money fields are expressed in currency units (e.g. dollars).
type Campaign struct {
	ID               int64            `json:"id"`
	OrganizationID   int64            `json:"organization_id"`
	OrganizationType OrganizationType `json:"organization_type"`
	Name             string           `json:"name"`
	Status           CampaignStatus   `json:"status"`
	BidStrategy      BidStrategy      `json:"bid_strategy"`
	BudgetType       BudgetType       `json:"budget_type"`
	Budget           float64          `json:"budget"`
	Spent            float64          `json:"spent"`
	TargetCPM        float64          `json:"target_cpm"`
	TargetCPC        float64          `json:"target_cpc"`
	TargetCPA        float64          `json:"target_cpa"`
	StartDate        *time.Time       `json:"start_date,omitempty"`
	EndDate          *time.Time       `json:"end_date,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// Utilization is the spent share of the budget. A campaign without budget
// reports zero.
func (c Campaign) Utilization() float64 {
	if c.Budget <= 0 {
		return 0
	}
	return c.Spent / c.Budget
}

// InFlight reports whether t falls inside the optional flight dates.
func (c Campaign) InFlight(t time.Time) bool {
	if c.StartDate != nil && t.Before(*c.StartDate) {
		return false
	}
	if c.EndDate != nil && t.After(*c.EndDate) {
		return false
	}
	return true
}
