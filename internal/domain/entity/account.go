package entity

import (
	"time"
)

// Consent is the tri-state data-collection consent flag. The zero value
// is ConsentUnset, which blocks every parcel command until the user
// explicitly grants or denies collection.
type Consent string

const (
	ConsentUnset   Consent = ""
	ConsentGranted Consent = "granted"
	ConsentDenied  Consent = "denied"
)

// Set reports whether the user has made a consent decision either way.
func (c Consent) Set() bool {
	return c == ConsentGranted || c == ConsentDenied
}

// Preferences is the per-account configuration relevant to the parcel
// workflows.
type Preferences struct {
	// GeocheckEnabled controls whether a proximity check is performed
	// before a remote compartment unlock.
	GeocheckEnabled bool
	// DefaultMachine is the name of the user's default parcel machine.
	// Empty means unset.
	DefaultMachine string
	// Notifications enables parcel-arrival push notifications.
	Notifications bool
}

// LocationState is the cached last confirmed geolocation of an account.
// SampledAt nil means the user has never shared a location, which always
// forces a fresh location request.
type LocationState struct {
	Latitude  float64
	Longitude float64
	SampledAt *time.Time
}

// Sampled reports whether a location has ever been confirmed.
func (s LocationState) Sampled() bool {
	return s.SampledAt != nil
}

// FreshAt reports whether the cached sample is still inside the freshness
// window at the given instant. An unsampled state is never fresh.
func (s LocationState) FreshAt(now time.Time, window time.Duration) bool {
	if s.SampledAt == nil {
		return false
	}

	return now.Sub(*s.SampledAt) <= window
}

// Account is the core entity representing one Telegram user of the bot,
// together with the linked parcel-machine phone number identity the bot
// acts as.
type Account struct {
	TelegramID  int64  // Telegram user id, the account's natural key.
	PhoneNumber string // Phone number registered with the parcel-machine operator.
	Preferences Preferences
	Consent     Consent
	Location    LocationState
	DeviceToken string // Optional push token of a companion device. Empty when none registered.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
