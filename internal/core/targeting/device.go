package targeting

import (
	"fmt"

	"mesa-decision/internal/core/domain"
)

func evaluateDevice(ad, user *domain.DeviceInfo) DimensionResult {
	if ad.IsZero() || user.IsZero() {
		return notApplicable("no device data")
	}

	var c checks
	c.exact("type", ad.Type, user.Type)
	c.exact("browser", ad.Browser, user.Browser)
	c.exact("os", ad.OS, user.OS)
	if ad.Screen != nil && user.Screen != nil {
		if ad.Screen.Fits(*user.Screen) {
			c.add(1, fmt.Sprintf("creative %dx%d fits screen %dx%d",
				ad.Screen.Width, ad.Screen.Height, user.Screen.Width, user.Screen.Height))
		} else {
			c.add(0, fmt.Sprintf("creative %dx%d exceeds screen %dx%d",
				ad.Screen.Width, ad.Screen.Height, user.Screen.Width, user.Screen.Height))
		}
	}
	return c.result(DeviceThreshold, "no comparable device fields")
}
