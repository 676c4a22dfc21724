package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ealexandergarcia/logistics-api/internal/models"
)

// Hash field names of the cached shipment projection. The set is fixed:
// writers only ever produce these keys, and the decoder ignores anything else.
const (
	fieldID              = "id"
	fieldUserID          = "userId"
	fieldPackageID       = "packageId"
	fieldAddressID       = "addressId"
	fieldReturnAddressID = "returnAddressId"
	fieldRouteID         = "routeId"
	fieldCarrierID       = "carrierId"
	fieldStatus          = "status"
	fieldCreatedAt       = "createdAt"
	fieldUpdatedAt       = "updatedAt"
	fieldPackageWeight   = "packageWeight"
	fieldProductType     = "productType"
	fieldRouteName       = "routeName"
)

// Projection is the flattened shipment snapshot stored in the fast cache.
// Every field is optional: the hash may have been written by an older writer
// or partially refreshed by a status-only update. It is a cache artifact,
// never a source of truth.
type Projection struct {
	ID              *int64
	UserID          *int64
	PackageID       *int64
	AddressID       *int64
	ReturnAddressID *int64
	RouteID         *int64
	CarrierID       *int64
	Status          *models.ShipmentStatus
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
	PackageWeight   *float64
	ProductType     *string
	RouteName       *string
}

// ProjectionFromShipment flattens a shipment row, embedding the package and
// route summaries when the row has them joined.
func ProjectionFromShipment(shipment models.Shipment) Projection {
	p := Projection{
		ID:              &shipment.ID,
		UserID:          &shipment.UserID,
		PackageID:       &shipment.PackageID,
		AddressID:       &shipment.AddressID,
		ReturnAddressID: &shipment.ReturnAddressID,
		RouteID:         shipment.RouteID,
		CarrierID:       shipment.CarrierID,
		Status:          &shipment.Status,
		CreatedAt:       &shipment.CreatedAt,
		UpdatedAt:       &shipment.UpdatedAt,
	}
	if shipment.Package != nil {
		p.PackageWeight = &shipment.Package.Weight
		p.ProductType = &shipment.Package.ProductType
	}
	if shipment.Route != nil {
		p.RouteName = &shipment.Route.Name
	}
	return p
}

// Encode serializes the projection into the hash stored in the fast cache.
// Nil fields are omitted entirely, never written as the text "null"; times
// are RFC 3339 in UTC.
func (p Projection) Encode() map[string]string {
	fields := make(map[string]string)
	putInt := func(key string, v *int64) {
		if v != nil {
			fields[key] = strconv.FormatInt(*v, 10)
		}
	}
	putInt(fieldID, p.ID)
	putInt(fieldUserID, p.UserID)
	putInt(fieldPackageID, p.PackageID)
	putInt(fieldAddressID, p.AddressID)
	putInt(fieldReturnAddressID, p.ReturnAddressID)
	putInt(fieldRouteID, p.RouteID)
	putInt(fieldCarrierID, p.CarrierID)
	if p.Status != nil {
		fields[fieldStatus] = string(*p.Status)
	}
	if p.CreatedAt != nil {
		fields[fieldCreatedAt] = p.CreatedAt.UTC().Format(time.RFC3339)
	}
	if p.UpdatedAt != nil {
		fields[fieldUpdatedAt] = p.UpdatedAt.UTC().Format(time.RFC3339)
	}
	if p.PackageWeight != nil {
		fields[fieldPackageWeight] = strconv.FormatFloat(*p.PackageWeight, 'f', -1, 64)
	}
	if p.ProductType != nil {
		fields[fieldProductType] = *p.ProductType
	}
	if p.RouteName != nil {
		fields[fieldRouteName] = *p.RouteName
	}
	return fields
}

// DecodeProjection parses a cached hash back into a projection. Unknown
// fields are ignored; a malformed value in a known field is an error rather
// than a silent zero.
func DecodeProjection(fields map[string]string) (Projection, error) {
	var p Projection
	for key, value := range fields {
		switch key {
		case fieldID, fieldUserID, fieldPackageID, fieldAddressID,
			fieldReturnAddressID, fieldRouteID, fieldCarrierID:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return Projection{}, fmt.Errorf("projection field %q: %w", key, err)
			}
			switch key {
			case fieldID:
				p.ID = &n
			case fieldUserID:
				p.UserID = &n
			case fieldPackageID:
				p.PackageID = &n
			case fieldAddressID:
				p.AddressID = &n
			case fieldReturnAddressID:
				p.ReturnAddressID = &n
			case fieldRouteID:
				p.RouteID = &n
			case fieldCarrierID:
				p.CarrierID = &n
			}
		case fieldStatus:
			status := models.ShipmentStatus(value)
			p.Status = &status
		case fieldCreatedAt, fieldUpdatedAt:
			t, err := time.Parse(time.RFC3339, value)
			if err != nil {
				return Projection{}, fmt.Errorf("projection field %q: %w", key, err)
			}
			if key == fieldCreatedAt {
				p.CreatedAt = &t
			} else {
				p.UpdatedAt = &t
			}
		case fieldPackageWeight:
			w, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return Projection{}, fmt.Errorf("projection field %q: %w", key, err)
			}
			p.PackageWeight = &w
		case fieldProductType:
			v := value
			p.ProductType = &v
		case fieldRouteName:
			v := value
			p.RouteName = &v
		}
	}
	return p, nil
}
