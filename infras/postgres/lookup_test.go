package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"tzfield/infras/otel/mocks"
	"tzfield/infras/postgres"
)

func newZoneLookup(t *testing.T) (*postgres.ZoneLookup, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	conn := &postgres.Connection{Read: sqlx.NewDb(db, "postgres")}

	return postgres.NewZoneLookup(conn, mocks.NewOtel()), mock
}

const zoneQuery = `SELECT timezone FROM events WHERE id = \$1`

func TestZoneLookup_ZoneName(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored identifier", func(t *testing.T) {
		lookup, mock := newZoneLookup(t)

		mock.ExpectPrepare(zoneQuery).
			ExpectQuery().
			WithArgs("event-1").
			WillReturnRows(sqlmock.NewRows([]string{"timezone"}).AddRow("Asia/Tokyo"))

		name, err := lookup.ZoneName(ctx, "events", "id", "event-1", "timezone")

		assert.NoError(t, err)
		assert.Equal(t, "Asia/Tokyo", name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row reports an empty name, not an error", func(t *testing.T) {
		lookup, mock := newZoneLookup(t)

		mock.ExpectPrepare(zoneQuery).
			ExpectQuery().
			WithArgs("event-1").
			WillReturnRows(sqlmock.NewRows([]string{"timezone"}))

		name, err := lookup.ZoneName(ctx, "events", "id", "event-1", "timezone")

		assert.NoError(t, err)
		assert.Empty(t, name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NULL value reports an empty name, not an error", func(t *testing.T) {
		lookup, mock := newZoneLookup(t)

		mock.ExpectPrepare(zoneQuery).
			ExpectQuery().
			WithArgs("event-1").
			WillReturnRows(sqlmock.NewRows([]string{"timezone"}).AddRow(nil))

		name, err := lookup.ZoneName(ctx, "events", "id", "event-1", "timezone")

		assert.NoError(t, err)
		assert.Empty(t, name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error propagates", func(t *testing.T) {
		lookup, mock := newZoneLookup(t)

		mock.ExpectPrepare(zoneQuery).
			ExpectQuery().
			WithArgs("event-1").
			WillReturnError(errors.New("connection refused"))

		_, err := lookup.ZoneName(ctx, "events", "id", "event-1", "timezone")

		assert.Error(t, err)
	})

	t.Run("prepare error propagates", func(t *testing.T) {
		lookup, mock := newZoneLookup(t)

		mock.ExpectPrepare(zoneQuery).
			WillReturnError(errors.New("syntax error"))

		_, err := lookup.ZoneName(ctx, "events", "id", "event-1", "timezone")

		assert.Error(t, err)
	})

	t.Run("rejects unquotable identifiers before touching the database", func(t *testing.T) {
		lookup, mock := newZoneLookup(t)

		_, err := lookup.ZoneName(ctx, "events", "id", "event-1", "tz; DROP TABLE events")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
