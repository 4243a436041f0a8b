package targeting

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"mesa-decision/internal/core/domain"
)

func evaluateInterests(ad, user []string) DimensionResult {
	adSet, userSet := toSet(ad), toSet(user)
	if len(adSet) == 0 || len(userSet) == 0 {
		return notApplicable("no interest data")
	}

	var inter int
	for k := range adSet {
		if _, ok := userSet[k]; ok {
			inter++
		}
	}
	union := len(adSet) + len(userSet) - inter
	score := float64(inter) / float64(union)
	return DimensionResult{
		Applicable: true,
		Score:      score,
		Matched:    score >= InterestThreshold,
		Checks:     1,
		Reasons:    []string{fmt.Sprintf("overlap %d/%d (%.2f)", inter, union, score)},
	}
}

func evaluateDemographics(ad *domain.AudienceDemographics, user *domain.UserDemographics) DimensionResult {
	if ad.IsZero() || user.IsZero() {
		return notApplicable("no demographic data")
	}

	var c checks
	if ad.AgeRange != "" && user.Age > 0 {
		if r, ok := ParseAgeRange(ad.AgeRange); ok {
			if r.Contains(user.Age) {
				c.add(1, fmt.Sprintf("age %d within %s", user.Age, ad.AgeRange))
			} else {
				c.add(0, fmt.Sprintf("age %d outside %s", user.Age, ad.AgeRange))
			}
		}
	}
	c.exact("gender", ad.Gender, user.Gender)
	c.exact("income", ad.Income, user.Income)
	c.exact("education", ad.Education, user.Education)
	return c.result(DemographicThreshold, "no comparable demographic fields")
}

func evaluateBehaviors(ad, user []domain.Behavior) DimensionResult {
	if len(ad) == 0 || len(user) == 0 {
		return notApplicable("no behavioral data")
	}

	type pair struct{ typ, value string }
	observed := make(map[pair]float64, len(user))
	for _, b := range user {
		observed[pair{normalize(b.Type), normalize(b.Value)}] = b.Frequency
	}

	var (
		sum     float64
		matched int
		reasons []string
	)
	for _, b := range ad {
		freq, ok := observed[pair{normalize(b.Type), normalize(b.Value)}]
		if !ok {
			continue
		}
		ratio := frequencyRatio(b.Frequency, freq)
		sum += ratio
		matched++
		reasons = append(reasons, fmt.Sprintf("%s=%s frequency ratio %.2f", b.Type, b.Value, ratio))
	}
	if matched == 0 {
		return DimensionResult{
			Applicable: true,
			Score:      0,
			Checks:     len(ad),
			Reasons:    []string{"no shared behaviors"},
		}
	}
	score := clamp01(sum / float64(matched))
	return DimensionResult{
		Applicable: true,
		Score:      score,
		Matched:    score >= BehavioralThreshold,
		Checks:     matched,
		Reasons:    reasons,
	}
}

func frequencyRatio(a, b float64) float64 {
	hi := math.Max(a, b)
	if hi <= 0 {
		return 1
	}
	return math.Min(a, b) / hi
}

// AgeRange is an inclusive age interval. Max is zero when unbounded.
type AgeRange struct {
	Min int
	Max int
}

// Contains reports whether age lies within the range.
func (r AgeRange) Contains(age int) bool {
	if age < r.Min {
		return false
	}
	return r.Max == 0 || age <= r.Max
}

// ParseAgeRange parses "18-25", "25+" or "30".
func ParseAgeRange(s string) (AgeRange, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasSuffix(s, "+"):
		lo, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(s, "+")))
		if err != nil || lo < 0 {
			return AgeRange{}, false
		}
		return AgeRange{Min: lo}, true
	case strings.Contains(s, "-"):
		lo, hi, _ := strings.Cut(s, "-")
		lower, err1 := strconv.Atoi(strings.TrimSpace(lo))
		upper, err2 := strconv.Atoi(strings.TrimSpace(hi))
		if err1 != nil || err2 != nil || lower < 0 || upper < lower {
			return AgeRange{}, false
		}
		return AgeRange{Min: lower, Max: upper}, true
	default:
		age, err := strconv.Atoi(s)
		if err != nil || age <= 0 {
			return AgeRange{}, false
		}
		return AgeRange{Min: age, Max: age}, true
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if n := normalize(v); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}
