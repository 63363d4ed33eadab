package domain

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/gosimple/slug"
)

//go:generate mockgen -destination mocks/mock_page_repository.go -package mocks github.com/Notifuse/sitebuilder/internal/domain PageRepository
//go:generate mockgen -destination mocks/mock_page_service.go -package mocks github.com/Notifuse/sitebuilder/internal/domain PageService

// Page is a storefront page holding builder elements
type Page struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeSlug turns free text into a URL slug ("Summer Sale!" -> "summer-sale")
func NormalizeSlug(s string) string {
	return slug.Make(strings.TrimSpace(s))
}

type CreatePageRequest struct {
	StoreID string `json:"store_id" valid:"required"`
	Name    string `json:"name" valid:"required,stringlength(1|255)"`
	Slug    string `json:"slug,omitempty" valid:"optional,stringlength(1|100)"`
}

// Validate checks the request and returns the base slug to try first
func (r *CreatePageRequest) Validate() (string, error) {
	if r.StoreID == "" {
		return "", fmt.Errorf("store_id is required")
	}
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return "", fmt.Errorf("name is required")
	}
	if _, err := govalidator.ValidateStruct(r); err != nil {
		return "", fmt.Errorf("invalid request: %w", err)
	}

	base := r.Slug
	if base == "" {
		base = r.Name
	}
	normalized := NormalizeSlug(base)
	if normalized == "" || !slug.IsSlug(normalized) {
		return "", fmt.Errorf("cannot derive a slug from %q", base)
	}
	return normalized, nil
}

type GetPageRequest struct {
	StoreID string `json:"store_id"`
	ID      string `json:"id"`
}

// FromURLParams parses URL query parameters into the request
func (r *GetPageRequest) FromURLParams(values url.Values) error {
	r.StoreID = values.Get("store_id")
	r.ID = values.Get("id")
	return r.Validate()
}

func (r *GetPageRequest) Validate() error {
	if r.StoreID == "" {
		return fmt.Errorf("store_id is required")
	}
	if r.ID == "" {
		return fmt.Errorf("id is required")
	}
	return nil
}

type ListPagesRequest struct {
	StoreID string `json:"store_id"`
	Limit   int    `json:"limit,omitempty"`
	Offset  int    `json:"offset,omitempty"`
}

// FromURLParams parses URL query parameters into the request
func (r *ListPagesRequest) FromURLParams(values url.Values) (err error) {
	r.StoreID = values.Get("store_id")
	if v := values.Get("limit"); v != "" {
		if r.Limit, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("invalid limit: %w", err)
		}
	}
	if v := values.Get("offset"); v != "" {
		if r.Offset, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("invalid offset: %w", err)
		}
	}
	return r.Validate()
}

// Validate checks the request and applies paging defaults
func (r *ListPagesRequest) Validate() error {
	if r.StoreID == "" {
		return fmt.Errorf("store_id is required")
	}
	if r.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	if r.Limit <= 0 {
		r.Limit = 20
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
	return nil
}

type ListPagesResponse struct {
	Pages      []*Page `json:"pages"`
	TotalCount int     `json:"total_count"`
}

// PageRepository defines the data access layer for pages
type PageRepository interface {
	CreatePage(ctx context.Context, page *Page) error
	GetPage(ctx context.Context, storeID, id string) (*Page, error)
	ListPages(ctx context.Context, storeID string, limit, offset int) ([]*Page, int, error)
	SlugExists(ctx context.Context, storeID, slug string) (bool, error)
}

// PageService creates pages with unique slugs
type PageService interface {
	CreatePage(ctx context.Context, req *CreatePageRequest) (*Page, error)
	GetPage(ctx context.Context, storeID, id string) (*Page, error)
	ListPages(ctx context.Context, req *ListPagesRequest) (*ListPagesResponse, error)
}
