package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Notifuse/sitebuilder/internal/domain"
	"github.com/Notifuse/sitebuilder/pkg/styleset"
)

var elementColumns = []string{"id", "store_id", "page_id", "type", "position", "styles", "created_at", "updated_at"}

// elementRepository implements domain.ElementRepository for PostgreSQL
type elementRepository struct {
	db *sql.DB
}

// NewElementRepository creates a new PostgreSQL element repository
func NewElementRepository(db *sql.DB) domain.ElementRepository {
	return &elementRepository{db: db}
}

func (r *elementRepository) CreateElement(ctx context.Context, element *domain.Element) error {
	now := time.Now().UTC()
	element.CreatedAt = now
	element.UpdatedAt = now
	if element.Styles == nil {
		element.Styles = styleset.New()
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Insert("elements").
		Columns(elementColumns...).
		Values(
			element.ID,
			element.StoreID,
			element.PageID,
			string(element.Type),
			element.Position,
			element.Styles,
			element.CreatedAt,
			element.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create element: %w", err)
	}
	return nil
}

func (r *elementRepository) GetElement(ctx context.Context, storeID, id string) (*domain.Element, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(elementColumns...).
		From("elements").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"store_id": storeID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	element, err := scanElement(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "element", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get element: %w", err)
	}
	return element, nil
}

// ListElements returns the elements of a page in position order
func (r *elementRepository) ListElements(ctx context.Context, storeID, pageID string) ([]*domain.Element, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(elementColumns...).
		From("elements").
		Where(sq.Eq{"store_id": storeID}).
		Where(sq.Eq{"page_id": pageID}).
		OrderBy("position", "created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list elements: %w", err)
	}
	defer rows.Close()

	elements := []*domain.Element{}
	for rows.Next() {
		element, err := scanElement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan element: %w", err)
		}
		elements = append(elements, element)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating element rows: %w", err)
	}
	return elements, nil
}

// nextUpdatedAt returns a timestamp strictly after previous at the
// microsecond precision timestamptz stores, so the stored value always moves.
func nextUpdatedAt(now, previous time.Time) time.Time {
	next := now.UTC().Truncate(time.Microsecond)
	if prev := previous.UTC().Truncate(time.Microsecond); !next.After(prev) {
		next = prev.Add(time.Microsecond)
	}
	return next
}

// UpdateStyles is a compare-and-swap on updated_at: the write only lands if
// nobody else saved the element since it was read.
func (r *elementRepository) UpdateStyles(ctx context.Context, element *domain.Element, previous time.Time) error {
	if element.Styles == nil {
		element.Styles = styleset.New()
	}
	updatedAt := nextUpdatedAt(time.Now(), previous)

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Update("elements").
		Set("styles", element.Styles).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": element.ID}).
		Where(sq.Eq{"store_id": element.StoreID}).
		Where(sq.Eq{"updated_at": previous}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update element styles: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrStyleConflict
	}

	element.UpdatedAt = updatedAt
	return nil
}

func (r *elementRepository) DeleteElement(ctx context.Context, storeID, id string) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Delete("elements").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"store_id": storeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete element: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "element", ID: id}
	}
	return nil
}

func scanElement(row rowScanner) (*domain.Element, error) {
	var (
		element     domain.Element
		elementType string
		styles      styleset.StyleSet
	)
	err := row.Scan(
		&element.ID,
		&element.StoreID,
		&element.PageID,
		&elementType,
		&element.Position,
		&styles,
		&element.CreatedAt,
		&element.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	element.Type = domain.ElementType(elementType)
	element.Styles = &styles
	return &element, nil
}
