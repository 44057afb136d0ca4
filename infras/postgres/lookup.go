package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"tzfield/field"
	"tzfield/infras/otel"
	"tzfield/shared/constant"
	"tzfield/shared/logger"
)

// ZoneLookup resolves relation-policy timezone columns through the read
// connection. Missing rows and NULL values report an empty name so the field
// layer can fall back without treating either as an error.
type ZoneLookup struct {
	db   *Connection
	otel otel.Otel
}

func NewZoneLookup(db *Connection, otl otel.Otel) *ZoneLookup {
	return &ZoneLookup{
		db:   db,
		otel: otl,
	}
}

var _ field.ZoneLookup = (*ZoneLookup)(nil)

func (l *ZoneLookup) ZoneName(ctx context.Context, table, pkColumn string, pk any, column string) (string, error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelLookupScopeName, constant.OtelLookupScopeName+".ZoneName")
	defer scope.End()

	// Identifiers come from field definitions, never request input, but the
	// query is assembled by hand so reject anything unquotable.
	for _, ident := range []string{table, pkColumn, column} {
		if !validIdentifier(ident) {
			return "", fmt.Errorf("invalid identifier %q in zone lookup", ident)
		}
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = :pk", column, table, pkColumn)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := l.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return "", fmt.Errorf("failed to prepare zone lookup (%s.%s): %w", table, column, err)
	}
	defer prepare.Close()

	var name sql.NullString

	err = prepare.GetContext(ctx, &name, map[string]any{"pk": pk})
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return "", fmt.Errorf("failed to look up zone name (%s.%s): %w", table, column, err)
	}

	if !name.Valid {
		return "", nil
	}

	scope.SetAttribute(constant.OtelTimezoneAttributeKey, name.String)

	return name.String, nil
}

func validIdentifier(ident string) bool {
	if ident == "" {
		return false
	}

	for _, c := range ident {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}

	return true
}
