package domain

// RequestContext is the targeting signal of one ad request. It lives only for
// the duration of a decision.
type RequestContext struct {
	UserID       string            `json:"user_id,omitempty"`
	SessionID    string            `json:"session_id,omitempty"`
	Geo          *GeoLocation      `json:"geo,omitempty"`
	Device       *DeviceInfo       `json:"device,omitempty"`
	Interests    []string          `json:"interests,omitempty"`
	Demographics *UserDemographics `json:"demographics,omitempty"`
	Behaviors    []Behavior        `json:"behaviors,omitempty" validate:"dive"`
}

// AdRequest is the envelope the orchestrator receives. The identifiers are
// required; missing ones are reported together.
type AdRequest struct {
	RequestID      string         `json:"request_id" validate:"required"`
	OrganizationID int64          `json:"organization_id" validate:"required"`
	SiteID         int64          `json:"site_id" validate:"required"`
	AdUnitID       int64          `json:"ad_unit_id" validate:"required"`
	Context        RequestContext `json:"context"`
}
