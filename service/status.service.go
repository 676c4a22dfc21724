package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ealexandergarcia/logistics-api/cache"
	"github.com/ealexandergarcia/logistics-api/internal/models"
	"github.com/ealexandergarcia/logistics-api/store"
)

// StatusService serves shipment state through the cache-aside pattern: the
// fast cache is consulted first, a miss falls back to the record store and
// populates the cache on the way out. Cache errors are never downgraded to
// misses; masking a cache outage as a miss would turn it into a full-store
// load spike.
type StatusService struct {
	cache cache.Cache
	store store.ShipmentStore

	now func() time.Time
}

func NewStatusService(c cache.Cache, s store.ShipmentStore) *StatusService {
	return &StatusService{
		cache: c,
		store: s,
		now:   time.Now,
	}
}

func shipmentKey(id int64) string {
	return fmt.Sprintf("shipment:%d", id)
}

// GetStatus returns the cached projection for the shipment, falling back to
// the record store when the cache holds nothing. On a successful fallback the
// cache is populated before returning, so subsequent reads stay off the store.
func (s *StatusService) GetStatus(ctx context.Context, shipmentID int64) (Projection, error) {
	fields, err := s.cache.HGetAll(ctx, shipmentKey(shipmentID))
	if err != nil {
		return Projection{}, fmt.Errorf("shipment cache read: %w", err)
	}
	if len(fields) > 0 {
		return DecodeProjection(fields)
	}

	shipment, err := s.store.GetShipment(ctx, shipmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Projection{}, ErrShipmentNotFound
		}
		return Projection{}, fmt.Errorf("shipment lookup: %w", err)
	}

	if err := s.SetShipmentData(ctx, shipmentID, shipment); err != nil {
		return Projection{}, err
	}
	return ProjectionFromShipment(shipment), nil
}

// SetStatus overwrites the status field of the cached projection, leaving the
// rest of the hash intact. The record store is untouched: durable status
// changes go through the assignment flow, which calls both. The cached
// updatedAt is refreshed alongside so a status read agrees with the report's
// delivery-time column.
func (s *StatusService) SetStatus(ctx context.Context, shipmentID int64, status models.ShipmentStatus) error {
	fields := map[string]string{
		fieldStatus:    string(status),
		fieldUpdatedAt: s.now().UTC().Format(time.RFC3339),
	}
	if err := s.cache.HSet(ctx, shipmentKey(shipmentID), fields); err != nil {
		return fmt.Errorf("shipment cache write: %w", err)
	}
	return nil
}

// SetShipmentData replaces the cached projection wholesale with a fresh
// flattening of the given shipment row.
func (s *StatusService) SetShipmentData(ctx context.Context, shipmentID int64, shipment models.Shipment) error {
	fields := ProjectionFromShipment(shipment).Encode()
	if err := s.cache.HSet(ctx, shipmentKey(shipmentID), fields); err != nil {
		return fmt.Errorf("shipment cache write: %w", err)
	}
	return nil
}
