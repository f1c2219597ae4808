package configs

import (
	"net/url"
	"time"
)

// Meta holds configuration for the Meta Marketing Graph API and the
// Conversions API. GraphVersion pins the API version every request is issued
// against. The fallback token and pixel are system-wide last-resort
// credentials used when neither the request nor the stored records carry
// their own; both may be empty, in which case calls that need them degrade
// as documented on the individual endpoints.
type Meta struct {
	// BaseURL is the Graph API origin. Overridable for tests.
	BaseURL url.URL `env:"BASE_URL" envDefault:"https://graph.facebook.com"`
	// GraphVersion is the pinned Graph API version segment.
	GraphVersion string `env:"GRAPH_VERSION" envDefault:"v21.0"`
	// FallbackAccessToken is the system-wide access token of last resort.
	FallbackAccessToken string `env:"FALLBACK_ACCESS_TOKEN"`
	// FallbackPixelID is the system-wide Conversions API pixel of last resort.
	FallbackPixelID string `env:"FALLBACK_PIXEL_ID"`
	// DefaultCountry is the country used for ad set targeting when a draft
	// supplies no geo points.
	DefaultCountry string `env:"DEFAULT_COUNTRY" envDefault:"AU"`
	// Timeout bounds each outbound Graph API round-trip. The launch sequence
	// issues six sequential calls, so the platform invocation ceiling should
	// comfortably exceed six times this value.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"55s"`
}
