package models

import "time"

// ShipmentStatus tracks a shipment through its lifecycle. A shipment starts
// as PENDING and only the assignment flow moves it to IN_TRANSIT.
type ShipmentStatus string

const (
	StatusPending   ShipmentStatus = "PENDING"
	StatusInTransit ShipmentStatus = "IN_TRANSIT"
	// Terminal states reserved for delivery tracking; nothing in this
	// service transitions into them.
	StatusDelivered ShipmentStatus = "DELIVERED"
	StatusCancelled ShipmentStatus = "CANCELLED"
)

// Shipment is a package moving from a user to a destination address.
// RouteID and CarrierID are nil until the shipment is assigned; they are
// always set together with status IN_TRANSIT.
type Shipment struct {
	ID              int64
	UserID          int64
	PackageID       int64
	AddressID       int64
	ReturnAddressID int64
	RouteID         *int64
	CarrierID       *int64
	Status          ShipmentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Summaries joined on point lookups so the cached projection can embed them.
	Package *Package
	Route   *Route
}

// CarrierAvailable is the only carrier status that accepts assignments.
const CarrierAvailable = "AVAILABLE"

// Carrier details like vehicle type and weight capacity. Read-only here;
// fleet management owns the rows.
type Carrier struct {
	ID          int64
	Name        string
	VehicleType string
	Capacity    float64
	Status      string
}

// IsAvailable reports whether the carrier can take new shipments.
func (c Carrier) IsAvailable() bool {
	return c.Status == CarrierAvailable
}

// Route between two locations with an estimated duration in hours.
type Route struct {
	ID                int64
	Name              string
	StartLocation     string
	EndLocation       string
	EstimatedDuration float64
}

// Package dimensions and weight. Weight is compared against carrier capacity
// during assignment.
type Package struct {
	ID          int64
	Weight      float64
	Length      float64
	Width       float64
	Height      float64
	ProductType string
}
