package domain

// AdFormat is the creative format an ad unit accepts.
type AdFormat string

const (
	FormatBanner       AdFormat = "banner"
	FormatVideo        AdFormat = "video"
	FormatNative       AdFormat = "native"
	FormatDisplay      AdFormat = "display"
	FormatInterstitial AdFormat = "interstitial"
)

// AdUnitStatus is the serving state of an ad unit.
type AdUnitStatus string

const (
	AdUnitStatusActive   AdUnitStatus = "active"
	AdUnitStatusInactive AdUnitStatus = "inactive"
)

// SiteStatus is the serving state of a site.
type SiteStatus string

const (
	SiteStatusActive   SiteStatus = "active"
	SiteStatusInactive SiteStatus = "inactive"
)

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `json:"width" validate:"gte=0"`
	Height int `json:"height" validate:"gte=0"`
}

// Fits reports whether s fits within outer on both axes.
func (s Size) Fits(outer Size) bool {
	return s.Width <= outer.Width && s.Height <= outer.Height
}

// AdUnit is a placement on a publisher site.
type AdUnit struct {
	ID     int64        `json:"id"`
	SiteID int64        `json:"site_id"`
	Name   string       `json:"name"`
	Format AdFormat     `json:"format"`
	Size   Size         `json:"size"`
	Status AdUnitStatus `json:"status"`
}

// Site is a publisher property hosting ad units.
type Site struct {
	ID             int64      `json:"id"`
	OrganizationID int64      `json:"organization_id"`
	Domain         string     `json:"domain"`
	Status         SiteStatus `json:"status"`
}
