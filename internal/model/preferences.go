package model

import "time"

// Default preference values applied on first contact with a user.
const (
	DefaultCurrency = "USD"
	DefaultTimezone = "UTC"
)

// UserPreferences holds per-user display and localization settings.
// A row is created lazily the first time a user is seen.
type UserPreferences struct {
	Currency string
	Timezone string
	UserID   int64
}

// DefaultPreferences returns the preferences a new user starts with.
func DefaultPreferences(userID int64) *UserPreferences {
	return &UserPreferences{
		UserID:   userID,
		Currency: DefaultCurrency,
		Timezone: DefaultTimezone,
	}
}

// Location resolves the user's timezone, falling back to UTC when the
// stored name does not resolve on this host.
func (p *UserPreferences) Location() *time.Location {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
