package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Notifuse/sitebuilder/internal/domain"
)

const uniqueViolation = "23505"

var pageColumns = []string{"id", "store_id", "name", "slug", "created_at", "updated_at"}

// pageRepository implements domain.PageRepository for PostgreSQL
type pageRepository struct {
	db *sql.DB
}

// NewPageRepository creates a new PostgreSQL page repository
func NewPageRepository(db *sql.DB) domain.PageRepository {
	return &pageRepository{db: db}
}

// CreatePage inserts a page. A slug already used in the store yields domain.ErrSlugTaken.
func (r *pageRepository) CreatePage(ctx context.Context, page *domain.Page) error {
	now := time.Now().UTC()
	page.CreatedAt = now
	page.UpdatedAt = now

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Insert("pages").
		Columns(pageColumns...).
		Values(page.ID, page.StoreID, page.Name, page.Slug, page.CreatedAt, page.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("failed to create page: %w", err)
	}
	return nil
}

// GetPage retrieves a page of a store by ID
func (r *pageRepository) GetPage(ctx context.Context, storeID, id string) (*domain.Page, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(pageColumns...).
		From("pages").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"store_id": storeID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	page, err := scanPage(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "page", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return page, nil
}

// ListPages returns one page of a store's pages, newest first, and the total count
func (r *pageRepository) ListPages(ctx context.Context, storeID string, limit, offset int) ([]*domain.Page, int, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countQuery, countArgs, err := psql.Select("COUNT(*)").
		From("pages").
		Where(sq.Eq{"store_id": storeID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count pages: %w", err)
	}

	query, args, err := psql.Select(pageColumns...).
		From("pages").
		Where(sq.Eq{"store_id": storeID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	pages := []*domain.Page{}
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan page: %w", err)
		}
		pages = append(pages, page)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating page rows: %w", err)
	}

	return pages, total, nil
}

// SlugExists reports whether a store already has a page with this slug
func (r *pageRepository) SlugExists(ctx context.Context, storeID, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM pages WHERE store_id = $1 AND slug = $2)`,
		storeID, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPage(row rowScanner) (*domain.Page, error) {
	var page domain.Page
	err := row.Scan(
		&page.ID,
		&page.StoreID,
		&page.Name,
		&page.Slug,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
