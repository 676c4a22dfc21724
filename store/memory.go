package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ealexandergarcia/logistics-api/internal/models"
)

// MemoryStore is an in-memory record store used in tests and local runs.
// It mirrors the PostgresStore semantics, including the guarded assignment
// update.
type MemoryStore struct {
	mu        sync.RWMutex
	shipments map[int64]models.Shipment
	carriers  map[int64]models.Carrier
	routes    map[int64]models.Route
	nextID    int64

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		shipments: make(map[int64]models.Shipment),
		carriers:  make(map[int64]models.Carrier),
		routes:    make(map[int64]models.Route),
		nextID:    1,
		now:       time.Now,
	}
}

// AddCarrier seeds a carrier row. Carriers are read-only for the service
// itself, so seeding happens outside the store interfaces.
func (s *MemoryStore) AddCarrier(carrier models.Carrier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carriers[carrier.ID] = carrier
}

// AddRoute seeds a route row.
func (s *MemoryStore) AddRoute(route models.Route) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[route.ID] = route
}

func (s *MemoryStore) GetShipment(ctx context.Context, id int64) (models.Shipment, error) {
	select {
	case <-ctx.Done():
		return models.Shipment{}, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	shipment, ok := s.shipments[id]
	if !ok {
		return models.Shipment{}, ErrNotFound
	}
	return shipment, nil
}

func (s *MemoryStore) CreateShipment(ctx context.Context, shipment models.Shipment) (int64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if shipment.ID == 0 {
		shipment.ID = s.nextID
	}
	if shipment.ID >= s.nextID {
		s.nextID = shipment.ID + 1
	}
	if shipment.Status == "" {
		shipment.Status = models.StatusPending
	}
	if shipment.CreatedAt.IsZero() {
		shipment.CreatedAt = s.now()
	}
	if shipment.UpdatedAt.IsZero() {
		shipment.UpdatedAt = shipment.CreatedAt
	}
	s.shipments[shipment.ID] = shipment
	return shipment.ID, nil
}

func (s *MemoryStore) AssignShipment(ctx context.Context, id, routeID, carrierID int64) (time.Time, error) {
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	shipment, ok := s.shipments[id]
	// Same guard as the SQL update: id must match and status must still be PENDING.
	if !ok || shipment.Status != models.StatusPending {
		return time.Time{}, ErrNothingUpdated
	}

	shipment.RouteID = &routeID
	shipment.CarrierID = &carrierID
	shipment.Status = models.StatusInTransit
	shipment.UpdatedAt = s.now()
	s.shipments[id] = shipment
	return shipment.UpdatedAt, nil
}

func (s *MemoryStore) GetCarrier(ctx context.Context, id int64) (models.Carrier, error) {
	select {
	case <-ctx.Done():
		return models.Carrier{}, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	carrier, ok := s.carriers[id]
	if !ok {
		return models.Carrier{}, ErrNotFound
	}
	return carrier, nil
}

func (s *MemoryStore) GetRoute(ctx context.Context, id int64) (models.Route, error) {
	select {
	case <-ctx.Done():
		return models.Route{}, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	route, ok := s.routes[id]
	if !ok {
		return models.Route{}, ErrNotFound
	}
	return route, nil
}

func (s *MemoryStore) GetReport(ctx context.Context, filters models.ReportFilters) ([]models.ReportRow, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.Shipment
	for _, shipment := range s.shipments {
		if filters.StartDate != nil && filters.EndDate != nil {
			if shipment.CreatedAt.Before(*filters.StartDate) || shipment.CreatedAt.After(*filters.EndDate) {
				continue
			}
		}
		if filters.Status != "" && shipment.Status != filters.Status {
			continue
		}
		if filters.CarrierID != nil {
			if shipment.CarrierID == nil || *shipment.CarrierID != *filters.CarrierID {
				continue
			}
		}
		matched = append(matched, shipment)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	start := (filters.Page - 1) * filters.Limit
	if start > len(matched) {
		return nil, nil
	}
	end := start + filters.Limit
	if end > len(matched) {
		end = len(matched)
	}
	matched = matched[start:end]

	report := make([]models.ReportRow, 0, len(matched))
	for _, shipment := range matched {
		row := models.ReportRow{
			ID:                shipment.ID,
			Status:            shipment.Status,
			CreatedAt:         shipment.CreatedAt,
			UpdatedAt:         shipment.UpdatedAt,
			DeliveryTimeHours: int64(shipment.UpdatedAt.Sub(shipment.CreatedAt).Hours()),
		}
		if shipment.CarrierID != nil {
			if carrier, ok := s.carriers[*shipment.CarrierID]; ok {
				name := carrier.Name
				row.CarrierName = &name
			}
		}
		report = append(report, row)
	}
	return report, nil
}
