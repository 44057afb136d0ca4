package di_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tzfield/config"
	"tzfield/di"
	"tzfield/infras/otel"
	"tzfield/infras/postgres"
)

func TestNewEventService(t *testing.T) {
	// Exporter and connections dial lazily, so the graph can be assembled
	// without a running database or collector.
	svc, err := di.NewEventService(&postgres.Connection{}, otel.New(config.Get()))

	assert.NoError(t, err)
	assert.NotNil(t, svc)
}
