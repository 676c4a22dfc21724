package service

// Core bundles the three caller-facing contracts of the shipment subsystem.
// The transport layer (HTTP, gRPC, whatever mounts this core) receives one
// Core and calls plain methods; everything it gets back is data or a typed
// error from errors.go.
type Core struct {
	Status      *StatusService
	Reports     *ReportService
	Assignments *AssignmentService
}
