package model

import (
	"time"
	"tzfield/field"
	"tzfield/shared/model"

	"github.com/google/uuid"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID       = "id"
	FieldTitle    = "title"
	FieldTimezone = "timezone"
	FieldStartsAt = "starts_at"
)

// Event is a scheduled happening with a per-record display timezone. The
// timezone column feeds the relation zone policy of starts_at; starts_at is
// persisted normalized to the storage zone.
type Event struct {
	ID       uuid.UUID      `db:"id"`
	Title    string         `db:"title"`
	Timezone field.TimeZone `db:"timezone"`
	StartsAt time.Time      `db:"starts_at"`
	model.Metadata
	field.ReadCache
}

// PrimaryKey implements field.Record.
func (e *Event) PrimaryKey() any {
	return e.ID
}
