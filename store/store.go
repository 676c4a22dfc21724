package store

import (
	"context"
	"errors"
	"time"

	"github.com/ealexandergarcia/logistics-api/internal/models"
)

var (
	// ErrNotFound is returned by point lookups with no matching row.
	ErrNotFound = errors.New("record not found")

	// ErrNothingUpdated is returned when a guarded update affects zero rows,
	// e.g. an assignment racing against another writer.
	ErrNothingUpdated = errors.New("no rows updated")
)

// ShipmentStore is the record-store surface for shipments. It is the single
// source of truth; the fast cache is reconciled from it on every miss.
type ShipmentStore interface {
	// GetShipment returns the shipment with its package summary and, when
	// assigned, its route summary.
	GetShipment(ctx context.Context, id int64) (models.Shipment, error)

	// CreateShipment inserts a new PENDING shipment and returns its id.
	CreateShipment(ctx context.Context, shipment models.Shipment) (int64, error)

	// AssignShipment binds the route and carrier and advances the status to
	// IN_TRANSIT, guarded by the expected prior status PENDING. It returns
	// the committed update timestamp, or ErrNothingUpdated when another
	// writer got there first.
	AssignShipment(ctx context.Context, id, routeID, carrierID int64) (time.Time, error)

	// GetReport runs the filtered, paged report query. Filters must already
	// be normalized.
	GetReport(ctx context.Context, filters models.ReportFilters) ([]models.ReportRow, error)
}

// CarrierStore reads carrier rows. Fleet management owns writes.
type CarrierStore interface {
	GetCarrier(ctx context.Context, id int64) (models.Carrier, error)
}

// RouteStore reads route rows.
type RouteStore interface {
	GetRoute(ctx context.Context, id int64) (models.Route, error)
}
