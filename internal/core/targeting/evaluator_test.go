package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-decision/internal/core/domain"
)

var newYork = domain.Coordinates{Lat: 40.7128, Lon: -74.0060}

func TestEvaluateWithoutDataIsNeutral(t *testing.T) {
	res := Evaluate(domain.Targeting{}, domain.RequestContext{UserID: "u1"})

	assert.Equal(t, NeutralScore, res.Score)
	assert.True(t, res.Matched)
	for _, d := range Dimensions {
		r := res.Breakdown[d]
		assert.False(t, r.Applicable, "dimension %s", d)
		assert.Equal(t, NeutralScore, r.Score, "dimension %s", d)
	}
}

func TestDistanceScoreBands(t *testing.T) {
	cases := []struct {
		name string
		to   domain.Coordinates
		want float64
	}{
		{"newark", domain.Coordinates{Lat: 40.7357, Lon: -74.1724}, 1.0},
		{"trenton", domain.Coordinates{Lat: 40.2206, Lon: -74.7597}, 0.8},
		{"philadelphia", domain.Coordinates{Lat: 39.9526, Lon: -75.1652}, 0.6},
		{"boston", domain.Coordinates{Lat: 42.3601, Lon: -71.0589}, 0.2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DistanceScore(HaversineKm(newYork, tc.to)))
		})
	}
}

func TestGeoDimension(t *testing.T) {
	ad := &domain.GeoLocation{Country: "US", Region: "NY", City: "New York", Coordinates: &newYork}
	user := &domain.GeoLocation{Country: "us", Region: "NJ", City: "Newark",
		Coordinates: &domain.Coordinates{Lat: 40.7357, Lon: -74.1724}}

	r := evaluateGeo(ad, user)
	require.True(t, r.Applicable)
	assert.Equal(t, 4, r.Checks)
	// country 1 + region 0 + city 0 + distance 1.0
	assert.InDelta(t, 0.5, r.Score, 1e-9)
	assert.False(t, r.Matched)

	r = evaluateGeo(&domain.GeoLocation{Country: "US"}, &domain.GeoLocation{Country: "US", City: "Austin"})
	assert.Equal(t, 1, r.Checks)
	assert.Equal(t, 1.0, r.Score)
	assert.True(t, r.Matched)

	r = evaluateGeo(&domain.GeoLocation{City: "Paris"}, &domain.GeoLocation{Country: "FR"})
	assert.False(t, r.Applicable)
	assert.Equal(t, NeutralScore, r.Score)
}

func TestDeviceDimension(t *testing.T) {
	ad := &domain.DeviceInfo{Type: "mobile", OS: "iOS", Screen: &domain.Size{Width: 320, Height: 50}}
	user := &domain.DeviceInfo{Type: "Mobile", Browser: "Safari", OS: "android",
		Screen: &domain.Size{Width: 390, Height: 844}}

	r := evaluateDevice(ad, user)
	require.True(t, r.Applicable)
	assert.Equal(t, 3, r.Checks)
	assert.InDelta(t, 2.0/3.0, r.Score, 1e-9)
	assert.False(t, r.Matched)

	r = evaluateDevice(&domain.DeviceInfo{Screen: &domain.Size{Width: 728, Height: 90}},
		&domain.DeviceInfo{Screen: &domain.Size{Width: 390, Height: 844}})
	assert.Equal(t, 0.0, r.Score)
}

func TestInterestJaccard(t *testing.T) {
	r := evaluateInterests([]string{"sports", "music", "tech"}, []string{"Music", "tech", "travel", "food"})
	require.True(t, r.Applicable)
	// 2 shared out of 5 distinct
	assert.InDelta(t, 0.4, r.Score, 1e-9)
	assert.True(t, r.Matched)

	r = evaluateInterests([]string{"sports"}, []string{"music", "tech", "travel", "food"})
	assert.Equal(t, 0.0, r.Score)
	assert.False(t, r.Matched)

	assert.False(t, evaluateInterests(nil, []string{"music"}).Applicable)
}

func TestParseAgeRange(t *testing.T) {
	cases := []struct {
		in     string
		ok     bool
		age    int
		inside bool
	}{
		{"18-25", true, 20, true},
		{"18-25", true, 26, false},
		{"25+", true, 70, true},
		{"25+", true, 24, false},
		{"30", true, 30, true},
		{"abc", false, 0, false},
		{"40-30", false, 0, false},
	}
	for _, tc := range cases {
		r, ok := ParseAgeRange(tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
		if ok {
			assert.Equal(t, tc.inside, r.Contains(tc.age), "%s contains %d", tc.in, tc.age)
		}
	}
}

func TestDemographicDimension(t *testing.T) {
	ad := &domain.AudienceDemographics{AgeRange: "25-34", Gender: "female", Income: "high"}
	user := &domain.UserDemographics{Age: 29, Gender: "female", Income: "medium", Education: "masters"}

	r := evaluateDemographics(ad, user)
	require.True(t, r.Applicable)
	assert.Equal(t, 3, r.Checks)
	assert.InDelta(t, 2.0/3.0, r.Score, 1e-9)
	assert.False(t, r.Matched)

	r = evaluateDemographics(&domain.AudienceDemographics{AgeRange: "25+", Gender: "male"},
		&domain.UserDemographics{Age: 40, Gender: "male"})
	assert.Equal(t, 1.0, r.Score)
	assert.True(t, r.Matched)
}

func TestBehavioralDimension(t *testing.T) {
	ad := []domain.Behavior{
		{Type: "purchase", Value: "electronics", Frequency: 4},
		{Type: "visit", Value: "sports", Frequency: 10},
		{Type: "search", Value: "cars", Frequency: 1},
	}
	user := []domain.Behavior{
		{Type: "purchase", Value: "electronics", Frequency: 2},
		{Type: "visit", Value: "sports", Frequency: 10},
	}

	r := evaluateBehaviors(ad, user)
	require.True(t, r.Applicable)
	assert.Equal(t, 2, r.Checks)
	assert.InDelta(t, 0.75, r.Score, 1e-9)
	assert.True(t, r.Matched)

	r = evaluateBehaviors(ad[2:], user)
	assert.True(t, r.Applicable)
	assert.Equal(t, 0.0, r.Score)
	assert.False(t, r.Matched)
}

func TestEvaluateAveragesApplicableDimensions(t *testing.T) {
	criteria := domain.Targeting{
		Geo:       &domain.GeoLocation{Country: "US"},
		Interests: []string{"sports", "music"},
		Device:    &domain.DeviceInfo{Type: "desktop"},
	}
	rc := domain.RequestContext{
		Geo:       &domain.GeoLocation{Country: "US"},
		Interests: []string{"sports", "music"},
		Device:    &domain.DeviceInfo{Type: "mobile"},
	}

	res := Evaluate(criteria, rc)
	// geo 1, interest 1, device 0; demographic and behavioral excluded
	assert.InDelta(t, 2.0/3.0, res.Score, 1e-9)
	assert.True(t, res.Matched)
	assert.False(t, res.Breakdown[DimensionDemographic].Applicable)
	assert.NotEmpty(t, res.Reasons)
}

func TestEvaluateScoreStaysInUnitInterval(t *testing.T) {
	criteria := domain.Targeting{
		Geo:          &domain.GeoLocation{Country: "US", City: "Boston", Coordinates: &newYork},
		Device:       &domain.DeviceInfo{Type: "tv", Screen: &domain.Size{Width: 4000, Height: 4000}},
		Interests:    []string{"a"},
		Demographics: &domain.AudienceDemographics{AgeRange: "65+"},
		Behaviors:    []domain.Behavior{{Type: "t", Value: "v", Frequency: 0}},
	}
	rc := domain.RequestContext{
		Geo:          &domain.GeoLocation{Country: "DE", City: "Berlin", Coordinates: &domain.Coordinates{Lat: 52.52, Lon: 13.405}},
		Device:       &domain.DeviceInfo{Type: "mobile", Screen: &domain.Size{Width: 1, Height: 1}},
		Interests:    []string{"b"},
		Demographics: &domain.UserDemographics{Age: 20},
		Behaviors:    []domain.Behavior{{Type: "t", Value: "v", Frequency: 0}},
	}

	res := Evaluate(criteria, rc)
	assert.GreaterOrEqual(t, res.Score, 0.0)
	assert.LessOrEqual(t, res.Score, 1.0)
	for _, d := range Dimensions {
		assert.GreaterOrEqual(t, res.Breakdown[d].Score, 0.0)
		assert.LessOrEqual(t, res.Breakdown[d].Score, 1.0)
	}
}
