package store

import (
	"context"
	"testing"
	"time"

	"github.com/ealexandergarcia/logistics-api/internal/models"
)

func seedReportData(t *testing.T, s *MemoryStore) {
	t.Helper()
	ctx := context.Background()

	s.AddCarrier(models.Carrier{ID: 1, Name: "FedEx", VehicleType: "TRUCK", Capacity: 100, Status: models.CarrierAvailable})
	s.AddCarrier(models.Carrier{ID: 2, Name: "DHL", VehicleType: "VAN", Capacity: 60, Status: models.CarrierAvailable})

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	carrierOne := int64(1)
	carrierTwo := int64(2)
	shipments := []models.Shipment{
		{ID: 1, UserID: 1, PackageID: 1, Status: models.StatusPending, CreatedAt: base, UpdatedAt: base},
		{ID: 2, UserID: 1, PackageID: 2, Status: models.StatusInTransit, CarrierID: &carrierOne,
			CreatedAt: base.AddDate(0, 0, 1), UpdatedAt: base.AddDate(0, 0, 1).Add(30 * time.Hour)},
		{ID: 3, UserID: 2, PackageID: 3, Status: models.StatusInTransit, CarrierID: &carrierTwo,
			CreatedAt: base.AddDate(0, 0, 2), UpdatedAt: base.AddDate(0, 0, 2).Add(5 * time.Hour)},
		{ID: 4, UserID: 2, PackageID: 4, Status: models.StatusPending, CreatedAt: base.AddDate(0, 1, 0), UpdatedAt: base.AddDate(0, 1, 0)},
	}
	for _, shipment := range shipments {
		if _, err := s.CreateShipment(ctx, shipment); err != nil {
			t.Fatalf("seed shipment %d: %v", shipment.ID, err)
		}
	}
}

func TestMemoryStoreGetReportFilters(t *testing.T) {
	s := NewMemoryStore()
	seedReportData(t, s)
	ctx := context.Background()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)
	carrierOne := int64(1)

	tests := []struct {
		name    string
		filters models.ReportFilters
		wantIDs []int64
	}{
		{
			name:    "no filters returns everything newest first",
			filters: models.ReportFilters{Page: 1, Limit: 10},
			wantIDs: []int64{4, 3, 2, 1},
		},
		{
			name:    "date range is inclusive and needs both bounds",
			filters: models.ReportFilters{StartDate: &start, EndDate: &end, Page: 1, Limit: 10},
			wantIDs: []int64{3, 2, 1},
		},
		{
			name:    "status filter",
			filters: models.ReportFilters{Status: models.StatusInTransit, Page: 1, Limit: 10},
			wantIDs: []int64{3, 2},
		},
		{
			name:    "carrier filter",
			filters: models.ReportFilters{CarrierID: &carrierOne, Page: 1, Limit: 10},
			wantIDs: []int64{2},
		},
		{
			name: "filters combine conjunctively",
			filters: models.ReportFilters{
				StartDate: &start, EndDate: &end,
				Status: models.StatusInTransit, CarrierID: &carrierOne,
				Page: 1, Limit: 10,
			},
			wantIDs: []int64{2},
		},
		{
			name:    "pagination slices the ordered set",
			filters: models.ReportFilters{Page: 2, Limit: 2},
			wantIDs: []int64{2, 1},
		},
		{
			name:    "page past the end is empty",
			filters: models.ReportFilters{Page: 9, Limit: 10},
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := s.GetReport(ctx, tt.filters)
			if err != nil {
				t.Fatalf("GetReport: %v", err)
			}
			if len(rows) != len(tt.wantIDs) {
				t.Fatalf("expected %d rows, got %d", len(tt.wantIDs), len(rows))
			}
			for i, id := range tt.wantIDs {
				if rows[i].ID != id {
					t.Errorf("row %d: expected id %d, got %d", i, id, rows[i].ID)
				}
			}
		})
	}
}

func TestMemoryStoreGetReportRowShape(t *testing.T) {
	s := NewMemoryStore()
	seedReportData(t, s)

	rows, err := s.GetReport(context.Background(), models.ReportFilters{Status: models.StatusInTransit, Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	for _, row := range rows {
		if row.CarrierName == nil {
			t.Fatalf("row %d missing carrier name", row.ID)
		}
	}
	// Shipment 2 took 30 hours between creation and last update.
	if rows[1].DeliveryTimeHours != 30 {
		t.Fatalf("expected 30 delivery hours, got %d", rows[1].DeliveryTimeHours)
	}
}

func TestMemoryStoreAssignShipmentGuard(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	id, err := s.CreateShipment(ctx, models.Shipment{UserID: 1, PackageID: 1})
	if err != nil {
		t.Fatalf("CreateShipment: %v", err)
	}

	if _, err := s.AssignShipment(ctx, id, 4, 9); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	shipment, err := s.GetShipment(ctx, id)
	if err != nil {
		t.Fatalf("GetShipment: %v", err)
	}
	if shipment.Status != models.StatusInTransit {
		t.Fatalf("expected IN_TRANSIT, got %s", shipment.Status)
	}

	// Guard: a second transition finds no PENDING row.
	if _, err := s.AssignShipment(ctx, id, 4, 9); err != ErrNothingUpdated {
		t.Fatalf("expected ErrNothingUpdated, got %v", err)
	}

	// Unknown ids behave the same as a lost race.
	if _, err := s.AssignShipment(ctx, 404, 4, 9); err != ErrNothingUpdated {
		t.Fatalf("expected ErrNothingUpdated for unknown id, got %v", err)
	}
}
