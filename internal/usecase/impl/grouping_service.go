package impl

import (
	"context"
	"log/slog"

	"boxbot/internal/domain/entity"
	domainerrors "boxbot/internal/domain/errors"
	"boxbot/internal/domain/service"
	"boxbot/internal/usecase"
)

type groupingService struct {
	client service.ParcelClient
	logger *slog.Logger
}

// NewGroupingService creates the grouping and filtering service.
func NewGroupingService(client service.ParcelClient, logger *slog.Logger) usecase.GroupingUsecase {
	return &groupingService{
		client: client,
		logger: logger,
	}
}

// Group partitions the parcel list in a single pass. Satellite
// compartments of a multicompartment shipment are recorded in an exclude
// set and skipped from independent display; the first-seen member of a
// group emits the whole group at its position.
func (s *groupingService) Group(ctx context.Context, phoneNumber string, parcels []*entity.Parcel) ([]*usecase.ParcelGroup, error) {
	groups := make([]*usecase.ParcelGroup, 0, len(parcels))
	exclude := make(map[string]struct{})

	for _, parcel := range parcels {
		if _, skip := exclude[parcel.ShipmentNumber]; skip {
			continue
		}

		if !parcel.InGroup() {
			groups = append(groups, &usecase.ParcelGroup{Representative: parcel})

			continue
		}

		group, err := s.expand(ctx, phoneNumber, parcel)
		if err != nil {
			return nil, err
		}

		exclude[group.Representative.ShipmentNumber] = struct{}{}
		for _, companion := range group.Companions {
			exclude[companion.ShipmentNumber] = struct{}{}
		}

		groups = append(groups, group)
	}

	return groups, nil
}

// Resolve expands a single target parcel into its display group.
func (s *groupingService) Resolve(ctx context.Context, phoneNumber string, parcel *entity.Parcel) (*usecase.ParcelGroup, error) {
	if !parcel.InGroup() {
		return &usecase.ParcelGroup{Representative: parcel}, nil
	}

	return s.expand(ctx, phoneNumber, parcel)
}

// expand fetches the full sibling set of the parcel's group and
// partitions it into the main representative and its companions.
func (s *groupingService) expand(ctx context.Context, phoneNumber string, member *entity.Parcel) (*usecase.ParcelGroup, error) {
	siblings, err := s.client.FetchGroup(ctx, phoneNumber, member.MultiCompartmentID)
	if err != nil {
		return nil, translateClientError(err, "failed to fetch multicompartment group")
	}

	group := &usecase.ParcelGroup{
		Companions: make([]*entity.Parcel, 0, len(siblings)),
	}
	for _, sibling := range siblings {
		if sibling.IsMainMultiCompartment {
			group.Representative = sibling

			continue
		}
		group.Companions = append(group.Companions, sibling)
	}

	// A sibling set without a main member is broken upstream data;
	// another sibling is never silently substituted.
	if group.Representative == nil {
		s.logger.Warn("multicompartment group without a main member",
			slog.String("groupID", member.MultiCompartmentID),
			slog.Int("siblings", len(siblings)),
		)

		return nil, domainerrors.ErrGroupInconsistent
	}

	return group, nil
}
