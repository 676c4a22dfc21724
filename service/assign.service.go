package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ealexandergarcia/logistics-api/internal/kafka"
	"github.com/ealexandergarcia/logistics-api/internal/models"
	"github.com/ealexandergarcia/logistics-api/store"
)

// AssignedEvent is the payload published after a successful assignment commit.
type AssignedEvent struct {
	EventID    string                `json:"eventId"`
	Event      string                `json:"event"`
	ShipmentID int64                 `json:"shipmentId"`
	UserID     int64                 `json:"userId"`
	RouteID    int64                 `json:"routeId"`
	CarrierID  int64                 `json:"carrierId"`
	Status     models.ShipmentStatus `json:"status"`
	AssignedAt time.Time             `json:"assignedAt"`
}

// AssignmentService executes the one state transition this system performs:
// PENDING -> IN_TRANSIT, binding a shipment to a carrier and route. Each
// precondition is checked in order and fails hard; the commit itself is a
// conditional update on the prior status, so of two racing assignments for
// the same shipment exactly one wins and the other surfaces ErrNothingUpdated.
type AssignmentService struct {
	shipments store.ShipmentStore
	carriers  store.CarrierStore
	routes    store.RouteStore
	status    *StatusService
	producer  kafka.Publisher // optional; nil disables event fan-out
}

func NewAssignmentService(
	shipments store.ShipmentStore,
	carriers store.CarrierStore,
	routes store.RouteStore,
	status *StatusService,
	producer kafka.Publisher,
) *AssignmentService {
	return &AssignmentService{
		shipments: shipments,
		carriers:  carriers,
		routes:    routes,
		status:    status,
		producer:  producer,
	}
}

// Assign validates the carrier, route, shipment and capacity in that order,
// commits the transition to the record store, then propagates the new status
// into the cached projection. The returned shipment carries the committed
// route, carrier, status and update timestamp.
func (s *AssignmentService) Assign(ctx context.Context, userID, shipmentID, routeID, carrierID int64) (models.Shipment, error) {
	carrier, err := s.carriers.GetCarrier(ctx, carrierID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Shipment{}, ErrCarrierUnavailable
		}
		return models.Shipment{}, fmt.Errorf("carrier lookup: %w", err)
	}
	if !carrier.IsAvailable() {
		return models.Shipment{}, ErrCarrierUnavailable
	}

	route, err := s.routes.GetRoute(ctx, routeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Shipment{}, ErrRouteNotFound
		}
		return models.Shipment{}, fmt.Errorf("route lookup: %w", err)
	}

	shipment, err := s.shipments.GetShipment(ctx, shipmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Shipment{}, ErrShipmentNotFound
		}
		return models.Shipment{}, fmt.Errorf("shipment lookup: %w", err)
	}

	if shipment.Package != nil && carrier.Capacity < shipment.Package.Weight {
		return models.Shipment{}, ErrCapacityExceeded
	}

	updatedAt, err := s.shipments.AssignShipment(ctx, shipmentID, routeID, carrierID)
	if err != nil {
		return models.Shipment{}, fmt.Errorf("assign shipment %d: %w", shipmentID, err)
	}

	shipment.RouteID = &routeID
	shipment.CarrierID = &carrierID
	shipment.Status = models.StatusInTransit
	shipment.UpdatedAt = updatedAt
	shipment.Route = &route

	// Cache write comes after the store commit and is not rolled back on
	// failure: the next cache miss re-derives the projection from the store.
	if err := s.status.SetStatus(ctx, shipmentID, models.StatusInTransit); err != nil {
		return models.Shipment{}, err
	}

	if s.producer != nil {
		event := AssignedEvent{
			EventID:    uuid.NewString(),
			Event:      "shipment.assigned",
			ShipmentID: shipmentID,
			UserID:     userID,
			RouteID:    routeID,
			CarrierID:  carrierID,
			Status:     models.StatusInTransit,
			AssignedAt: updatedAt,
		}
		// Fire-and-forget: event delivery never blocks or fails an assignment.
		go s.producer.Publish(context.Background(), strconv.FormatInt(shipmentID, 10), event)
	}

	return shipment, nil
}
