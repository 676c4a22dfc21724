package service

import "errors"

var (
	// ErrShipmentNotFound means the lookup reached the record store and
	// found no matching shipment.
	ErrShipmentNotFound = errors.New("shipment not found")

	// ErrRouteNotFound means the requested route does not exist.
	ErrRouteNotFound = errors.New("route not found")

	// ErrCarrierUnavailable covers both an absent carrier and one whose
	// status is not AVAILABLE.
	ErrCarrierUnavailable = errors.New("carrier is not available")

	// ErrCapacityExceeded protects the assignment precondition: the package
	// weight must not exceed the carrier's capacity.
	ErrCapacityExceeded = errors.New("vehicle capacity exceeded")
)
