package usecase

import (
	"time"

	"boxbot/internal/domain/entity"
	"boxbot/internal/domain/service"
)

// PolicyOutcome is the proximity policy engine's verdict for one unlock
// attempt. Outcomes are first-class workflow results, not errors.
type PolicyOutcome string

const (
	// PolicyAlreadyDelivered means the parcel has already been collected.
	PolicyAlreadyDelivered PolicyOutcome = "already_delivered"
	// PolicyNotReady means the parcel status is not pickup-eligible.
	PolicyNotReady PolicyOutcome = "not_ready"
	// PolicySkipCheck means no proximity verification is needed.
	PolicySkipCheck PolicyOutcome = "skip_check"
	// PolicyNeedFreshSample means a fresh location must be requested
	// before the decision can be made.
	PolicyNeedFreshSample PolicyOutcome = "need_fresh_sample"
	// PolicyInRange means the sample lies inside the machine's bounding box.
	PolicyInRange PolicyOutcome = "in_range"
	// PolicyOutOfRange means the sample lies outside the bounding box.
	// The unlock is still offered; proximity is advisory.
	PolicyOutOfRange PolicyOutcome = "out_of_range"
)

// ProximityUsecase decides whether geolocation proof-of-proximity is
// required before allowing a remote unlock. Decide is a pure function of
// its inputs; persisting new samples is the caller's responsibility.
type ProximityUsecase interface {
	// Decide evaluates the policy rules in order, first match wins:
	// delivered, not pickup-eligible, geocheck skip, stale-or-missing
	// sample, bounding-box inclusion. A non-nil sample short-circuits
	// the freshness check.
	Decide(parcel *entity.Parcel, prefs entity.Preferences, state entity.LocationState, sample *service.Location, now time.Time) PolicyOutcome
}
