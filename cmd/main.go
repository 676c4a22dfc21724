// cmd/main.go wires the shipment core together: configuration, the record
// store, the fast cache and the event producer are constructed here once and
// injected into the services, which hold no global state of their own.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ealexandergarcia/logistics-api/cache"
	"github.com/ealexandergarcia/logistics-api/config"
	"github.com/ealexandergarcia/logistics-api/internal/kafka"
	"github.com/ealexandergarcia/logistics-api/service"
	"github.com/ealexandergarcia/logistics-api/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	recordStore, err := store.NewPostgresStore(cfg.DBURL())
	if err != nil {
		slog.Error("failed to create record store", "error", err)
		os.Exit(1)
	}
	defer recordStore.Close()

	fastCache, err := cache.NewRedisCache(cfg.RedisAddr(), cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		slog.Error("failed to create cache client", "error", err)
		os.Exit(1)
	}
	defer fastCache.Close()

	var producer kafka.Publisher
	if cfg.KafkaBroker != "" {
		p := kafka.NewKafkaProducer(cfg.KafkaBroker, cfg.KafkaTopic)
		defer p.Close()
		producer = p
	}

	statusSvc := service.NewStatusService(fastCache, recordStore)
	core := service.Core{
		Status:      statusSvc,
		Reports:     service.NewReportService(fastCache, recordStore),
		Assignments: service.NewAssignmentService(recordStore, recordStore, recordStore, statusSvc, producer),
	}
	_ = core // handed to the transport layer once it mounts

	slog.Info("shipment core ready",
		"db", cfg.DBHost+":"+cfg.DBPort,
		"redis", cfg.RedisAddr(),
		"kafka", cfg.KafkaBroker,
	)

	// The transport layer mounts the services; this process owns their
	// lifecycle and shuts the shared clients down cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	slog.Info("shutting down")
}
