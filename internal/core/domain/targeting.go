package domain

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// GeoLocation is used both as an ad's geo criteria and as the requester's
// location. Empty fields mean "no data".
type GeoLocation struct {
	Country     string       `json:"country,omitempty"`
	Region      string       `json:"region,omitempty"`
	City        string       `json:"city,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// IsZero reports whether no geo field is set.
func (g *GeoLocation) IsZero() bool {
	return g == nil || (g.Country == "" && g.Region == "" && g.City == "" && g.Coordinates == nil)
}

// DeviceInfo describes a device. On an ad, Screen is the declared creative
// size that must fit the user's screen; on a request it is the screen size.
type DeviceInfo struct {
	Type    string `json:"type,omitempty"`
	Browser string `json:"browser,omitempty"`
	OS      string `json:"os,omitempty"`
	Screen  *Size  `json:"screen,omitempty"`
}

// IsZero reports whether no device field is set.
func (d *DeviceInfo) IsZero() bool {
	return d == nil || (d.Type == "" && d.Browser == "" && d.OS == "" && d.Screen == nil)
}

// AudienceDemographics is the demographic criteria declared by an ad.
// AgeRange accepts "18-25", "25+" or a single age.
type AudienceDemographics struct {
	AgeRange  string `json:"age_range,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Income    string `json:"income,omitempty"`
	Education string `json:"education,omitempty"`
}

// IsZero reports whether no demographic criterion is set.
func (d *AudienceDemographics) IsZero() bool {
	return d == nil || (d.AgeRange == "" && d.Gender == "" && d.Income == "" && d.Education == "")
}

// UserDemographics is the demographic hint carried by a request.
type UserDemographics struct {
	Age       int    `json:"age,omitempty" validate:"gte=0,lte=150"`
	Gender    string `json:"gender,omitempty"`
	Income    string `json:"income,omitempty"`
	Education string `json:"education,omitempty"`
}

// IsZero reports whether no demographic hint is set.
func (d *UserDemographics) IsZero() bool {
	return d == nil || (d.Age == 0 && d.Gender == "" && d.Income == "" && d.Education == "")
}

// Behavior is a (type, value) signal with an observed or desired frequency.
type Behavior struct {
	Type      string  `json:"type" validate:"required"`
	Value     string  `json:"value" validate:"required"`
	Frequency float64 `json:"frequency" validate:"gte=0"`
}

// Targeting describes who should see an ad. Every dimension is optional; a
// nil pointer or empty slice means the ad does not constrain it.
type Targeting struct {
	Geo          *GeoLocation          `json:"geo,omitempty"`
	Device       *DeviceInfo           `json:"device,omitempty"`
	Interests    []string              `json:"interests,omitempty"`
	Demographics *AudienceDemographics `json:"demographics,omitempty"`
	Behaviors    []Behavior            `json:"behaviors,omitempty" validate:"dive"`
	Formats      []AdFormat            `json:"formats,omitempty"`
}
