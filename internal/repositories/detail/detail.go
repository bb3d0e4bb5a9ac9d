package detail

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/juniper/pkg/database"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

// Patch is the merge-patch shape every detail type provides: absent fields
// leave the row untouched, explicit nulls clear nullable columns.
type Patch[T any] interface {
	HasChanges() bool
	Apply(*T)
}

// Store persists one detail table. Every component type stores a
// differently-shaped row but the access pattern is identical, so the
// statements are derived from the row struct's db tags.
type Store[T any, P Patch[T]] struct {
	db      database.DB
	logger  ectologger.Logger
	table   string
	name    string
	builder *database.Struct
	newRow  func(tenantID, componentID string) *T
}

// NewStore creates a detail store for one table. newRow returns an empty row
// with its owner columns populated; it seeds upserts that create the row on
// first patch.
func NewStore[T any, P Patch[T]](db database.DB, logger ectologger.Logger, table, name string, newRow func(tenantID, componentID string) *T) *Store[T, P] {
	var zero T
	return &Store[T, P]{
		db:      db,
		logger:  logger,
		table:   table,
		name:    name,
		builder: database.NewStruct(zero),
		newRow:  newRow,
	}
}

func (s *Store[T, P]) find(ctx context.Context, tenantID, componentID string) (*T, bool, error) {
	sb := s.builder.SelectFrom(s.table)
	sb.Where(
		sb.Equal("component_id", componentID),
		sb.Equal("tenant_id", tenantID),
	)

	query, args := sb.Build()
	var row T
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, false, nil
		}
		s.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"table":        s.table,
			"component_id": componentID,
		}).Error("Failed to get detail row")
		return nil, false, httperror.NewHTTPErrorf(http.StatusInternalServerError, "failed to get %s details", s.name)
	}

	return &row, true, nil
}

// Get retrieves the detail row for a component
func (s *Store[T, P]) Get(ctx context.Context, tenantID, componentID string) (*T, error) {
	ctx, span := tracing.StartSpan(ctx, fmt.Sprintf("detail.Store.Get.%s", s.name))
	defer span.End()

	row, found, err := s.find(ctx, tenantID, componentID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, httperror.NewHTTPErrorf(http.StatusNotFound, "%s details for component %s not found", s.name, componentID)
	}
	return row, nil
}

// Insert writes a fully-populated detail row. Callers set the owner columns.
func (s *Store[T, P]) Insert(ctx context.Context, row *T) error {
	ctx, span := tracing.StartSpan(ctx, fmt.Sprintf("detail.Store.Insert.%s", s.name))
	defer span.End()

	query, args := s.builder.InsertInto(s.table, row).Build()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"table": s.table,
		}).Error("Failed to insert detail row")
		return httperror.NewHTTPErrorf(http.StatusInternalServerError, "failed to insert %s details", s.name)
	}

	return nil
}

// BulkInsert writes detail rows in batches. Used by the schedule generators,
// which create all child detail rows in one round trip.
func (s *Store[T, P]) BulkInsert(ctx context.Context, rows []T) error {
	ctx, span := tracing.StartSpan(ctx, fmt.Sprintf("detail.Store.BulkInsert.%s", s.name))
	defer span.End()

	if len(rows) == 0 {
		return nil
	}

	const batchSize = 500
	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}

		batch := make([]any, 0, end-i)
		for j := i; j < end; j++ {
			batch = append(batch, &rows[j])
		}

		query, args := s.builder.InsertInto(s.table, batch...).Build()
		if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
			s.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
				"table": s.table,
				"count": len(rows),
			}).Error("Failed to bulk insert detail rows")
			return httperror.NewHTTPErrorf(http.StatusInternalServerError, "failed to bulk insert %s details", s.name)
		}
	}

	return nil
}

// Upsert applies a patch to the component's detail row, creating the row
// first when none exists yet. A patch with no set fields is a no-op.
func (s *Store[T, P]) Upsert(ctx context.Context, tenantID, componentID string, patch P) (*T, error) {
	ctx, span := tracing.StartSpan(ctx, fmt.Sprintf("detail.Store.Upsert.%s", s.name))
	defer span.End()

	row, found, err := s.find(ctx, tenantID, componentID)
	if err != nil {
		return nil, err
	}

	if !found {
		row = s.newRow(tenantID, componentID)
		patch.Apply(row)
		if err := s.Insert(ctx, row); err != nil {
			return nil, err
		}
		return row, nil
	}

	if !patch.HasChanges() {
		return row, nil
	}

	patch.Apply(row)

	ub := s.builder.Update(s.table, row)
	ub.Where(
		ub.Equal("component_id", componentID),
		ub.Equal("tenant_id", tenantID),
	)

	query, args := ub.Build()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"table":        s.table,
			"component_id": componentID,
		}).Error("Failed to update detail row")
		return nil, httperror.NewHTTPErrorf(http.StatusInternalServerError, "failed to update %s details", s.name)
	}

	return row, nil
}

// Delete removes the detail row if present. Missing rows are not an error
// since detail rows are optional for most component types.
func (s *Store[T, P]) Delete(ctx context.Context, tenantID, componentID string) error {
	ctx, span := tracing.StartSpan(ctx, fmt.Sprintf("detail.Store.Delete.%s", s.name))
	defer span.End()

	db := database.NewDeleteBuilder()
	db.DeleteFrom(s.table)
	db.Where(
		db.Equal("component_id", componentID),
		db.Equal("tenant_id", tenantID),
	)

	query, args := db.Build()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"table":        s.table,
			"component_id": componentID,
		}).Error("Failed to delete detail row")
		return httperror.NewHTTPErrorf(http.StatusInternalServerError, "failed to delete %s details", s.name)
	}

	return nil
}
