package auction

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"mesa-decision/internal/core/domain"
)

const (
	MinCompetitorBid   = 0.01
	CompetitorBidRange = 10.0
	topPlacements      = 3
)

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource draws from the process-wide generator.
func DefaultSource() RandomSource { return globalSource{} }

// Simulate ranks bid against a number of synthetic competitor bids drawn from
// [MinCompetitorBid, MinCompetitorBid+CompetitorBidRange]. The real bid wins
// ties. It is meant for load-testing the pricing path only.
func Simulate(adID int64, bid float64, competitors int, rnd RandomSource) domain.SimulationResult {
	if rnd == nil {
		rnd = DefaultSource()
	}
	others := make([]float64, max(competitors, 0))
	for i := range others {
		others[i] = round(MinCompetitorBid + rnd.Float64()*CompetitorBidRange)
	}

	rank := 1
	for _, b := range others {
		if b > bid {
			rank++
		}
	}

	all := append([]float64{bid}, others...)
	slices.SortStableFunc(all, func(a, b float64) int { return cmp.Compare(b, a) })

	out := domain.SimulationResult{
		AdID:           adID,
		Bid:            bid,
		Rank:           rank,
		Participants:   len(all),
		InTopThree:     rank <= topPlacements,
		Won:            rank == 1,
		WinningBid:     all[0],
		CompetitorBids: others,
	}
	if len(all) > 1 {
		out.ClearingPrice = all[1]
	} else {
		out.ClearingPrice = round(all[0] * SoleBidderShare)
	}
	return out
}
