// Package bidding prices a candidate from its campaign strategy, trailing
// performance, targeting score and budget state.
package bidding

import (
	"math"

	"github.com/shopspring/decimal"

	"mesa-decision/internal/core/domain"
)

const (
	// MinBid is the floor of every bid.
	MinBid = 0.01
	// BudgetShare caps a single bid as a fraction of the campaign budget.
	BudgetShare = 0.1

	minPerformanceMultiplier = 0.5
	maxPerformanceMultiplier = 2.0

	bidPrecision = 4
)

// Factors explains how a bid was built.
type Factors struct {
	Strategy              domain.BidStrategy     `json:"strategy"`
	BaseBid               float64                `json:"base_bid"`
	FormatMultiplier      float64                `json:"format_multiplier"`
	PerformanceMultiplier float64                `json:"performance_multiplier"`
	TargetingMultiplier   float64                `json:"targeting_multiplier"`
	BudgetMultiplier      float64                `json:"budget_multiplier"`
	BudgetUtilization     float64                `json:"budget_utilization"`
	UnclampedBid          float64                `json:"unclamped_bid"`
	MaxBid                float64                `json:"max_bid"`
	Metrics               Metrics                `json:"metrics"`
	RecentAds             []domain.AdPerformance `json:"recent_ads,omitempty"`
}

// Bid is the priced result for one candidate.
type Bid struct {
	Amount     float64 `json:"bid_amount"`
	Confidence float64 `json:"confidence"`
	Factors    Factors `json:"factors"`
}

// CalculateBid prices campaign on unit. The amount always lies in
// [MinBid, BudgetShare*budget] unless the budget is too small to hold the
// floor, in which case the floor wins.
func CalculateBid(campaign domain.Campaign, unit domain.AdUnit, history History, targetingScore float64) Bid {
	score := math.Max(0, math.Min(1, targetingScore))
	metrics := history.Metrics()

	f := Factors{
		Strategy:              campaign.BidStrategy,
		BaseBid:               BaseBid(campaign),
		FormatMultiplier:      FormatMultiplier(unit.Format),
		PerformanceMultiplier: PerformanceMultiplier(metrics),
		TargetingMultiplier:   TargetingMultiplier(score),
		BudgetUtilization:     campaign.Utilization(),
		Metrics:               metrics,
		RecentAds:             history.Recent,
	}
	f.BudgetMultiplier = BudgetMultiplier(f.BudgetUtilization)

	// The format multiplier adjusts the base bid before the other factors.
	raw := f.BaseBid * f.FormatMultiplier * f.PerformanceMultiplier * f.TargetingMultiplier * f.BudgetMultiplier
	f.UnclampedBid = round(raw)
	f.MaxBid = round(BudgetShare * campaign.Budget)

	amount := math.Min(raw, f.MaxBid)
	amount = math.Max(amount, MinBid)

	return Bid{
		Amount:     round(amount),
		Confidence: Confidence(metrics, score),
		Factors:    f,
	}
}

// BaseBid derives the starting bid from the campaign's strategy.
func BaseBid(c domain.Campaign) float64 {
	switch c.BidStrategy {
	case domain.BidStrategyManual:
		return perMille(c.TargetCPM, 0.01)
	case domain.BidStrategyAutoCPC:
		if c.TargetCPC > 0 {
			return c.TargetCPC
		}
		return 1.50
	case domain.BidStrategyAutoCPM:
		return perMille(c.TargetCPM, 0.003)
	case domain.BidStrategyTargetCPA:
		if c.TargetCPA > 0 {
			return c.TargetCPA * 0.1
		}
		return 0.50
	case domain.BidStrategyPredictive:
		if c.TargetCPM > 0 {
			return c.TargetCPM / 1000 * 1.2
		}
		return 0.01
	case domain.BidStrategyAIOptimized:
		if c.TargetCPM > 0 {
			return c.TargetCPM / 1000 * 1.5
		}
		return 0.01
	default:
		return 0.01
	}
}

func perMille(cpm, fallback float64) float64 {
	if cpm > 0 {
		return cpm / 1000
	}
	return fallback
}

// FormatMultiplier weights richer formats higher.
func FormatMultiplier(f domain.AdFormat) float64 {
	switch f {
	case domain.FormatVideo:
		return 1.5
	case domain.FormatNative:
		return 1.3
	case domain.FormatInterstitial:
		return 1.2
	default:
		return 1.0
	}
}

// PerformanceMultiplier rewards strong trailing CTR, conversion rate and cheap
// clicks, clamped to [0.5, 2.0].
func PerformanceMultiplier(m Metrics) float64 {
	mult := 1.0
	switch {
	case m.CTR > 0.03:
		mult *= 1.2
	case m.CTR < 0.01:
		mult *= 0.8
	}
	switch {
	case m.ConversionRate > 0.02:
		mult *= 1.3
	case m.ConversionRate < 0.005:
		mult *= 0.7
	}
	switch {
	case m.CPC < 1.0:
		mult *= 1.1
	case m.CPC > 3.0:
		mult *= 0.9
	}
	return math.Max(minPerformanceMultiplier, math.Min(maxPerformanceMultiplier, mult))
}

// TargetingMultiplier maps a targeting score to a bid adjustment.
func TargetingMultiplier(score float64) float64 {
	switch {
	case score >= 0.9:
		return 1.3
	case score >= 0.7:
		return 1.1
	case score >= 0.5:
		return 1.0
	case score >= 0.3:
		return 0.9
	default:
		return 0.7
	}
}

// BudgetMultiplier slows spend on nearly exhausted budgets and speeds up
// under-delivering ones. A campaign that has not spent anything yet has no
// pacing signal and is left at 1.0.
func BudgetMultiplier(utilization float64) float64 {
	switch {
	case utilization <= 0:
		return 1.0
	case utilization > 0.9:
		return 0.8
	case utilization > 0.7:
		return 0.9
	case utilization < 0.3:
		return 1.2
	default:
		return 1.0
	}
}

// Confidence estimates how reliable the bid is.
func Confidence(m Metrics, targetingScore float64) float64 {
	c := 0.5
	switch {
	case m.Impressions > 10000:
		c += 0.2
	case m.Impressions > 1000:
		c += 0.1
	}
	if m.CTR >= 0.01 && m.CTR <= 0.05 {
		c += 0.1
	}
	c += targetingScore * 0.2
	return round(math.Min(1.0, c))
}

func round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(bidPrecision).InexactFloat64()
}
