// Package usecase defines the application-layer interfaces. Concrete
// implementations live in usecase/impl.
package usecase

import (
	"context"

	"boxbot/internal/domain/entity"
)

// ParcelGroup is one displayable parcel entry. A plain parcel is a group
// with no companions; a multicompartment shipment is represented by its
// main member plus the sibling compartments as companions.
type ParcelGroup struct {
	Representative *entity.Parcel
	Companions     []*entity.Parcel
}

// GroupingUsecase collapses multicompartment shipments into single
// representative entries and keeps satellite compartments out of
// independent display.
type GroupingUsecase interface {
	// Group partitions a raw parcel list into display groups. Input
	// order is preserved; a multicompartment group is emitted once, at
	// the position of its first-seen member.
	Group(ctx context.Context, phoneNumber string, parcels []*entity.Parcel) ([]*ParcelGroup, error)

	// Resolve expands a single target parcel into its display group,
	// fetching the sibling set when the parcel is a group member.
	Resolve(ctx context.Context, phoneNumber string, parcel *entity.Parcel) (*ParcelGroup, error)
}
