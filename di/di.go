// Package di assembles the concrete object graph: database connections,
// tracing, the zone lookup, and the event service. The graph is small enough
// to build by hand.
package di

import (
	"tzfield/config"
	"tzfield/infras/otel"
	"tzfield/infras/postgres"
	eventRepository "tzfield/internal/domains/event/repository"
	eventService "tzfield/internal/domains/event/service"
)

// InitializeEventService builds the full stack from configuration: postgres
// read/write connections, the OTLP tracer, and the event service on top.
func InitializeEventService() (eventService.Event, error) {
	cfg := config.Get()

	db := postgres.New(cfg)
	otl := otel.New(cfg)

	return NewEventService(db, otl)
}

// NewEventService wires the event domain onto already constructed
// infrastructure. The relation zone lookup and the storage capability probe
// share the same connection as the repository.
func NewEventService(db *postgres.Connection, otl otel.Otel) (eventService.Event, error) {
	repo := eventRepository.New(db, otl)
	lookup := postgres.NewZoneLookup(db, otl)

	return eventService.New(repo, otl, lookup, postgres.Capability{})
}
