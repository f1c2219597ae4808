package domain

import "time"

// Business is the account-level record a campaign may hang off. It can carry
// its own Meta credentials, which the sync and conversion paths fall back to
// when the campaign record has none.
type Business struct {
	ID          string
	Name        string
	AccessToken string
	PixelID     string
	CreatedAt   time.Time
}
