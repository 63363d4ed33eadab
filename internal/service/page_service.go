package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"

	"github.com/Notifuse/sitebuilder/internal/domain"
	"github.com/Notifuse/sitebuilder/pkg/logger"
	"github.com/Notifuse/sitebuilder/pkg/tracing"
)

const (
	slugSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	slugSuffixLength   = 6
	// base slugs are cut so that base + "-" + suffix fits the slug column
	maxBaseSlugLength = 100
)

// PageService creates and lists store pages
type PageService struct {
	repo        domain.PageRepository
	logger      logger.Logger
	maxAttempts int
	suffix      func() string
}

// NewPageService creates a page service. maxAttempts bounds the number of
// slugs tried before giving up with domain.ErrSlugExhausted.
func NewPageService(repo domain.PageRepository, logger logger.Logger, maxAttempts int) *PageService {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &PageService{
		repo:        repo,
		logger:      logger,
		maxAttempts: maxAttempts,
		suffix:      generateSlugSuffix,
	}
}

// CreatePage stores a page under the first free slug. The base slug comes
// from the request slug or the page name; every retry appends a random
// suffix ("summer-sale-k3x9a1").
func (s *PageService) CreatePage(ctx context.Context, req *domain.CreatePageRequest) (*domain.Page, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "PageService", "CreatePage")
	defer span.End()

	base, err := req.Validate()
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, domain.NewValidationError(err.Error())
	}
	base = truncateSlug(base, maxBaseSlugLength)

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		candidate := base
		if attempt > 0 {
			candidate = base + "-" + s.suffix()
		}

		exists, err := s.repo.SlugExists(ctx, req.StoreID, candidate)
		if err != nil {
			s.logger.WithField("store_id", req.StoreID).WithField("error", err.Error()).Error("Failed to check page slug")
			tracing.MarkSpanError(ctx, err)
			return nil, err
		}
		if exists {
			continue
		}

		page := &domain.Page{
			ID:      uuid.New().String(),
			StoreID: req.StoreID,
			Name:    req.Name,
			Slug:    candidate,
		}
		err = s.repo.CreatePage(ctx, page)
		if errors.Is(err, domain.ErrSlugTaken) {
			// lost a race with a concurrent insert
			s.logger.WithField("store_id", req.StoreID).WithField("slug", candidate).Debug("Page slug taken on insert, retrying")
			continue
		}
		if err != nil {
			s.logger.WithField("store_id", req.StoreID).WithField("error", err.Error()).Error("Failed to create page")
			tracing.MarkSpanError(ctx, err)
			return nil, err
		}

		tracing.AddAttribute(ctx, "slug_attempts", attempt+1)
		return page, nil
	}

	s.logger.WithField("store_id", req.StoreID).WithField("slug", base).Warn("No free page slug found")
	err = fmt.Errorf("%w after %d attempts for %q", domain.ErrSlugExhausted, s.maxAttempts, base)
	tracing.MarkSpanError(ctx, err)
	return nil, err
}

func (s *PageService) GetPage(ctx context.Context, storeID, id string) (*domain.Page, error) {
	req := domain.GetPageRequest{StoreID: storeID, ID: id}
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	page, err := s.repo.GetPage(ctx, storeID, id)
	if err != nil {
		s.logger.WithField("page_id", id).WithField("error", err.Error()).Error("Failed to get page")
		return nil, err
	}
	return page, nil
}

func (s *PageService) ListPages(ctx context.Context, req *domain.ListPagesRequest) (*domain.ListPagesResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	pages, total, err := s.repo.ListPages(ctx, req.StoreID, req.Limit, req.Offset)
	if err != nil {
		s.logger.WithField("store_id", req.StoreID).WithField("error", err.Error()).Error("Failed to list pages")
		return nil, err
	}
	return &domain.ListPagesResponse{Pages: pages, TotalCount: total}, nil
}

func truncateSlug(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimRight(s[:max], "-")
}

// generateSlugSuffix returns a short random [0-9a-z] string
func generateSlugSuffix() string {
	alphabetLen := big.NewInt(int64(len(slugSuffixAlphabet)))
	out := make([]byte, slugSuffixLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			n = big.NewInt(int64(i))
		}
		out[i] = slugSuffixAlphabet[n.Int64()]
	}
	return string(out)
}
