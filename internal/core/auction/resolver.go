// Package auction ranks priced candidates and settles a winner.
package auction

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"mesa-decision/internal/core/bidding"
	"mesa-decision/internal/core/domain"
)

const (
	TargetingWeight = 0.4
	QualityWeight   = 0.3
	BidWeight       = 0.3

	// ReferenceCPM is the target CPM that earns a full bid score.
	ReferenceCPM = 50.0
	// SoleBidderShare is the fraction of the winner's score charged when
	// nobody else took part.
	SoleBidderShare = 0.8

	maxCTRContribution        = 0.4
	maxConversionContribution = 0.3
	maxRecencyContribution    = 0.1
	recencyHorizon            = 30 * 24 * time.Hour

	scorePrecision = 4
)

// Entry is a candidate that went through targeting and pricing.
type Entry struct {
	Candidate      domain.Candidate
	TargetingScore float64
	Bid            bidding.Bid
}

// Resolve scores entries and settles the auction. Entries keep their
// declaration order for tie-breaking.
func Resolve(requestID string, entries []Entry, now time.Time) *domain.Decision {
	scores := make([]domain.CandidateScore, len(entries))
	for i, e := range entries {
		scores[i] = Score(e, now)
	}
	return Settle(requestID, scores)
}

// Score computes the weighted total of one entry.
func Score(e Entry, now time.Time) domain.CandidateScore {
	s := domain.CandidateScore{
		AdID:           e.Candidate.Ad.ID,
		CampaignID:     e.Candidate.Campaign.ID,
		TargetingScore: clamp01(e.TargetingScore),
		QualityScore:   QualityScore(e.Candidate.Ad, now),
		BidScore:       BidScore(e.Candidate.Campaign, e.Bid.Amount),
		BidAmount:      e.Bid.Amount,
		Confidence:     e.Bid.Confidence,
	}
	s.TotalScore = round(TargetingWeight*s.TargetingScore + QualityWeight*s.QualityScore + BidWeight*s.BidScore)
	return s
}

// QualityScore rewards click-through, conversion and fresh creatives.
func QualityScore(ad domain.Ad, now time.Time) float64 {
	p := ad.Performance
	q := math.Min(p.CTR()*10, maxCTRContribution)
	q += math.Min(p.ConversionRate()*10, maxConversionContribution)

	if !ad.CreatedAt.IsZero() {
		age := now.Sub(ad.CreatedAt)
		if age < 0 {
			age = 0
		}
		decay := float64(recencyHorizon-age) / float64(recencyHorizon)
		q += math.Min(math.Max(0, decay)*maxRecencyContribution, maxRecencyContribution)
	}
	return round(clamp01(q))
}

// BidScore normalizes the campaign's target CPM against ReferenceCPM. A
// campaign without a target CPM is scored on the CPM its bid implies.
func BidScore(c domain.Campaign, bid float64) float64 {
	cpm := c.TargetCPM
	if cpm <= 0 {
		cpm = bid * 1000
	}
	return round(clamp01(cpm / ReferenceCPM))
}

// Settle picks the highest total score. Equal scores keep their input order.
// The clearing price is the runner-up's total, or SoleBidderShare of the
// winner's when there is no runner-up.
func Settle(requestID string, scores []domain.CandidateScore) *domain.Decision {
	if len(scores) == 0 {
		return domain.NoFill(requestID, domain.ReasonNoEligibleAds, domain.StageResolved)
	}

	ranked := slices.Clone(scores)
	slices.SortStableFunc(ranked, func(a, b domain.CandidateScore) int {
		return cmp.Compare(b.TotalScore, a.TotalScore)
	})

	winner := ranked[0]
	price := round(winner.TotalScore * SoleBidderShare)
	if len(ranked) > 1 {
		price = ranked[1].TotalScore
	}

	return &domain.Decision{
		Success:       true,
		RequestID:     requestID,
		AdID:          winner.AdID,
		CampaignID:    winner.CampaignID,
		BidAmount:     winner.BidAmount,
		ClearingPrice: price,
		Scores:        ranked,
		Stage:         domain.StageResolved,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(scorePrecision).InexactFloat64()
}
