// Package impl contains the concrete implementations of the application
// usecases.
package impl

import (
	"time"

	"boxbot/config"
	"boxbot/internal/domain/entity"
	"boxbot/internal/domain/service"
	"boxbot/internal/usecase"

	"github.com/paulmach/orb"
)

type proximityService struct {
	boxDegrees     float64
	freshness      time.Duration
	pickupStatuses map[entity.ParcelStatus]struct{}
}

// NewProximityService creates the proximity policy engine from the
// geocheck configuration.
func NewProximityService(cfg *config.Config) usecase.ProximityUsecase {
	// If Geocheck is not configured, provide a default configuration
	geocheck := cfg.Geocheck
	if geocheck == nil {
		geocheck = &config.GeocheckConfig{
			BoxDegrees: 0.0005,
			Freshness:  2 * time.Minute,
			PickupStatuses: []string{
				string(entity.StatusReadyToPickup),
				string(entity.StatusStackInBoxMachine),
				string(entity.StatusStackInCustomerServicePoint),
				string(entity.StatusPickupReminderSent),
			},
		}
	}

	eligible := make(map[entity.ParcelStatus]struct{}, len(geocheck.PickupStatuses))
	for _, status := range geocheck.PickupStatuses {
		eligible[entity.ParcelStatus(status)] = struct{}{}
	}

	return &proximityService{
		boxDegrees:     geocheck.BoxDegrees,
		freshness:      geocheck.Freshness,
		pickupStatuses: eligible,
	}
}

// Decide evaluates the policy rules in order; the first matching rule
// wins. It is a pure function: persisting a new sample is up to the
// caller.
func (s *proximityService) Decide(parcel *entity.Parcel, prefs entity.Preferences, state entity.LocationState, sample *service.Location, now time.Time) usecase.PolicyOutcome {
	if parcel.Status == entity.StatusDelivered {
		return usecase.PolicyAlreadyDelivered
	}

	if _, ok := s.pickupStatuses[parcel.Status]; !ok {
		return usecase.PolicyNotReady
	}

	if !prefs.GeocheckEnabled && parcel.PickupPoint != nil && parcel.PickupPoint.Name == prefs.DefaultMachine {
		return usecase.PolicySkipCheck
	}

	if sample == nil {
		if !state.FreshAt(now, s.freshness) {
			return usecase.PolicyNeedFreshSample
		}
		// Reuse the cached sample; the user confirmed a location moments
		// ago and is assumed to still be on site.
		sample = &service.Location{Latitude: state.Latitude, Longitude: state.Longitude}
	}

	if s.inRange(parcel.PickupPoint, sample) {
		return usecase.PolicyInRange
	}

	return usecase.PolicyOutOfRange
}

// boundaryEpsilon pads the box edges. Computing point±boxDegrees rounds
// the coordinate arithmetic, so a sample sitting exactly on the boundary
// can land a few ULPs outside the box; the padding is far below GPS
// precision and keeps the edges inclusive.
const boundaryEpsilon = 1e-9

// inRange checks the fixed-radius bounding box around the pickup point,
// boundary inclusive. A cheap proxy for "standing at the machine" that
// avoids precise distance computation.
func (s *proximityService) inRange(point *entity.PickupPoint, sample *service.Location) bool {
	if point == nil {
		return false
	}

	pad := s.boxDegrees + boundaryEpsilon
	box := orb.Bound{
		Min: orb.Point{point.Longitude - pad, point.Latitude - pad},
		Max: orb.Point{point.Longitude + pad, point.Latitude + pad},
	}

	return box.Contains(orb.Point{sample.Longitude, sample.Latitude})
}
