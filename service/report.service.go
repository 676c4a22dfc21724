package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ealexandergarcia/logistics-api/cache"
	"github.com/ealexandergarcia/logistics-api/internal/models"
	"github.com/ealexandergarcia/logistics-api/store"
)

const (
	defaultReportPage  = 1
	defaultReportLimit = 10

	// reportTTL bounds report staleness; shipment projections by contrast
	// never expire and are only ever overwritten.
	reportTTL = time.Hour
)

// ReportStore is the slice of the record store the report service needs.
type ReportStore interface {
	GetReport(ctx context.Context, filters models.ReportFilters) ([]models.ReportRow, error)
}

var _ ReportStore = (store.ShipmentStore)(nil)

// ReportService serves filtered, paged shipment reports, caching each
// computed page under a canonical key for one hour.
type ReportService struct {
	cache cache.Cache
	store ReportStore
}

func NewReportService(c cache.Cache, s ReportStore) *ReportService {
	return &ReportService{cache: c, store: s}
}

// GetAdvancedReport returns the report page for the given filters. A cache
// hit is returned verbatim without consulting the record store; a miss runs
// the store query and caches the full result before returning. Errors from
// either side propagate; nothing partial is ever cached.
func (r *ReportService) GetAdvancedReport(ctx context.Context, filters models.ReportFilters) ([]models.ReportRow, error) {
	filters = normalizeFilters(filters)
	key := reportKey(filters)

	cached, err := r.cache.Get(ctx, key)
	if err == nil {
		var rows []models.ReportRow
		if err := json.Unmarshal([]byte(cached), &rows); err != nil {
			return nil, fmt.Errorf("decode cached report: %w", err)
		}
		return rows, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		return nil, fmt.Errorf("report cache read: %w", err)
	}

	rows, err := r.store.GetReport(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("report query: %w", err)
	}

	encoded, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	if err := r.cache.SetEx(ctx, key, string(encoded), reportTTL); err != nil {
		return nil, fmt.Errorf("report cache write: %w", err)
	}
	return rows, nil
}

// normalizeFilters coerces page and limit to positive integers. Missing or
// invalid values collapse to the defaults, never to zero or negative.
func normalizeFilters(f models.ReportFilters) models.ReportFilters {
	if f.Page <= 0 {
		f.Page = defaultReportPage
	}
	if f.Limit <= 0 {
		f.Limit = defaultReportLimit
	}
	return f
}

// reportKey derives the cache key from the normalized filters. The key is
// canonical: fields appear in a fixed order with normalized encodings, so two
// logically equal filter sets always land on the same entry no matter how the
// caller assembled them.
func reportKey(f models.ReportFilters) string {
	var b strings.Builder
	b.WriteString("shipmentReport:v1:start=")
	writeTime(&b, f.StartDate)
	b.WriteString("&end=")
	writeTime(&b, f.EndDate)
	b.WriteString("&status=")
	b.WriteString(string(f.Status))
	b.WriteString("&carrier=")
	if f.CarrierID != nil {
		b.WriteString(strconv.FormatInt(*f.CarrierID, 10))
	}
	b.WriteString("&page=")
	b.WriteString(strconv.Itoa(f.Page))
	b.WriteString("&limit=")
	b.WriteString(strconv.Itoa(f.Limit))
	return b.String()
}

func writeTime(b *strings.Builder, t *time.Time) {
	if t != nil {
		b.WriteString(t.UTC().Format(time.RFC3339))
	}
}
