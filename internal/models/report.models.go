package models

import "time"

// ReportFilters selects shipments for the advanced report. Zero values mean
// "not supplied"; StartDate and EndDate only take effect when both are set.
// Page and Limit are normalized by the report service before use.
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    ShipmentStatus
	CarrierID *int64
	Page      int
	Limit     int
}

// ReportRow is one line of the advanced shipment report. Rows are cached as
// JSON, so the tags are part of the cache format.
type ReportRow struct {
	ID                int64          `json:"id"`
	Status            ShipmentStatus `json:"status"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	CarrierName       *string        `json:"carrierName"`
	DeliveryTimeHours int64          `json:"deliveryTimeHours"`
}
