// Package targeting scores an ad's declared audience against the context of
// an ad request. Scoring never eliminates a candidate; hard compatibility
// rules live in the eligibility package.
package targeting

import (
	"fmt"
	"strings"

	"mesa-decision/internal/core/domain"
)

// Dimension names one independent targeting axis.
type Dimension string

const (
	DimensionGeo         Dimension = "geo"
	DimensionDevice      Dimension = "device"
	DimensionInterest    Dimension = "interest"
	DimensionDemographic Dimension = "demographic"
	DimensionBehavioral  Dimension = "behavioral"
)

// Dimensions lists the axes in evaluation order.
var Dimensions = []Dimension{
	DimensionGeo,
	DimensionDevice,
	DimensionInterest,
	DimensionDemographic,
	DimensionBehavioral,
}

const (
	// NeutralScore is reported for a dimension without data on either side
	// and for an evaluation where no dimension applied.
	NeutralScore = 0.5

	GeoThreshold         = 0.7
	DeviceThreshold      = 0.7
	InterestThreshold    = 0.3
	DemographicThreshold = 0.7
	BehavioralThreshold  = 0.6

	// MatchThreshold applies to the overall score. The resulting flag is
	// advisory and only used for ranking.
	MatchThreshold = 0.5
)

// DimensionResult is the outcome of one axis.
type DimensionResult struct {
	Applicable bool     `json:"applicable"`
	Score      float64  `json:"score"`
	Matched    bool     `json:"matched"`
	Checks     int      `json:"checks"`
	Reasons    []string `json:"reasons,omitempty"`
}

// Result is the combined targeting evaluation of one candidate.
type Result struct {
	Score     float64                       `json:"score"`
	Matched   bool                          `json:"matched"`
	Breakdown map[Dimension]DimensionResult `json:"breakdown"`
	Reasons   []string                      `json:"reasons"`
}

// Evaluate scores criteria against rc. The overall score is the unweighted
// mean of the dimensions that had data on both sides.
func Evaluate(criteria domain.Targeting, rc domain.RequestContext) Result {
	breakdown := map[Dimension]DimensionResult{
		DimensionGeo:         evaluateGeo(criteria.Geo, rc.Geo),
		DimensionDevice:      evaluateDevice(criteria.Device, rc.Device),
		DimensionInterest:    evaluateInterests(criteria.Interests, rc.Interests),
		DimensionDemographic: evaluateDemographics(criteria.Demographics, rc.Demographics),
		DimensionBehavioral:  evaluateBehaviors(criteria.Behaviors, rc.Behaviors),
	}

	var (
		sum     float64
		applied int
		reasons []string
	)
	for _, d := range Dimensions {
		r := breakdown[d]
		for _, reason := range r.Reasons {
			reasons = append(reasons, fmt.Sprintf("%s: %s", d, reason))
		}
		if !r.Applicable {
			continue
		}
		sum += r.Score
		applied++
	}

	score := NeutralScore
	if applied > 0 {
		score = clamp01(sum / float64(applied))
	}
	reasons = append(reasons, fmt.Sprintf("overall: %.2f across %d dimension(s)", score, applied))
	return Result{
		Score:     score,
		Matched:   score >= MatchThreshold,
		Breakdown: breakdown,
		Reasons:   reasons,
	}
}

func notApplicable(reason string) DimensionResult {
	return DimensionResult{Score: NeutralScore, Reasons: []string{reason}}
}

// checks accumulates per-field scores of one dimension.
type checks struct {
	sum     float64
	n       int
	reasons []string
}

func (c *checks) exact(field, want, got string) {
	if want == "" || got == "" {
		return
	}
	c.n++
	if normalize(want) == normalize(got) {
		c.sum++
		c.reasons = append(c.reasons, fmt.Sprintf("%s match (%s)", field, got))
		return
	}
	c.reasons = append(c.reasons, fmt.Sprintf("%s mismatch (want %s, got %s)", field, want, got))
}

func (c *checks) add(score float64, reason string) {
	c.n++
	c.sum += score
	c.reasons = append(c.reasons, reason)
}

func (c *checks) result(threshold float64, empty string) DimensionResult {
	if c.n == 0 {
		return notApplicable(empty)
	}
	score := clamp01(c.sum / float64(c.n))
	return DimensionResult{
		Applicable: true,
		Score:      score,
		Matched:    score >= threshold,
		Checks:     c.n,
		Reasons:    c.reasons,
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
