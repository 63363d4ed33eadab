package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Notifuse/sitebuilder/internal/domain"
	"github.com/Notifuse/sitebuilder/pkg/cache"
	"github.com/Notifuse/sitebuilder/pkg/logger"
	"github.com/Notifuse/sitebuilder/pkg/styleset"
	"github.com/Notifuse/sitebuilder/pkg/tracing"
)

// maxWriteAttempts bounds the read-modify-write loop when a concurrent save
// wins the updated_at compare-and-swap
const maxWriteAttempts = 3

const (
	opSetProperty   = "set_property"
	opUnsetProperty = "unset_property"
	opSetSpacing    = "set_spacing"
)

type ElementStyleServiceConfig struct {
	Repository     domain.ElementRepository
	PageRepository domain.PageRepository
	Cache          cache.Cache[*domain.ResolvedStyle]
	CacheTTL       time.Duration
	Breakpoints    styleset.Breakpoints
	Logger         logger.Logger
}

// ElementStyleService owns every read and write of element style documents.
// Resolved styles are cached per element and device; a write bumps the
// element's generation so results computed before it are never served.
type ElementStyleService struct {
	repo        domain.ElementRepository
	pageRepo    domain.PageRepository
	cache       cache.Cache[*domain.ResolvedStyle]
	cacheTTL    time.Duration
	breakpoints styleset.Breakpoints
	logger      logger.Logger

	mu          sync.Mutex
	generations map[string]uint64
}

func NewElementStyleService(cfg ElementStyleServiceConfig) *ElementStyleService {
	bp := cfg.Breakpoints
	if bp.TabletMin <= 0 || bp.DesktopMin <= bp.TabletMin {
		bp = styleset.DefaultBreakpoints()
	}
	return &ElementStyleService{
		repo:        cfg.Repository,
		pageRepo:    cfg.PageRepository,
		cache:       cfg.Cache,
		cacheTTL:    cfg.CacheTTL,
		breakpoints: bp,
		logger:      cfg.Logger,
		generations: make(map[string]uint64),
	}
}

func (s *ElementStyleService) CreateElement(ctx context.Context, req *domain.CreateElementRequest) (*domain.Element, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "ElementStyleService", "CreateElement")
	defer span.End()

	styles, err := req.Validate()
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	if _, err := s.pageRepo.GetPage(ctx, req.StoreID, req.PageID); err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, err
	}

	element := &domain.Element{
		ID:       uuid.New().String(),
		StoreID:  req.StoreID,
		PageID:   req.PageID,
		Type:     req.Type,
		Position: req.Position,
		Styles:   styles,
	}
	if err := s.repo.CreateElement(ctx, element); err != nil {
		s.logger.WithField("page_id", req.PageID).WithField("error", err.Error()).Error("Failed to create element")
		tracing.MarkSpanError(ctx, err)
		return nil, err
	}
	return element, nil
}

func (s *ElementStyleService) GetElement(ctx context.Context, storeID, id string) (*domain.Element, error) {
	if storeID == "" || id == "" {
		return nil, domain.NewValidationError("store_id and id are required")
	}
	return s.loadElement(ctx, storeID, id)
}

func (s *ElementStyleService) ListElements(ctx context.Context, req *domain.ListElementsRequest) ([]*domain.Element, error) {
	if req.StoreID == "" || req.PageID == "" {
		return nil, domain.NewValidationError("store_id and page_id are required")
	}
	elements, err := s.repo.ListElements(ctx, req.StoreID, req.PageID)
	if err != nil {
		s.logger.WithField("page_id", req.PageID).WithField("error", err.Error()).Error("Failed to list elements")
		return nil, err
	}
	return elements, nil
}

func (s *ElementStyleService) DeleteElement(ctx context.Context, req *domain.DeleteElementRequest) error {
	if err := req.Validate(); err != nil {
		return domain.NewValidationError(err.Error())
	}
	if err := s.repo.DeleteElement(ctx, req.StoreID, req.ID); err != nil {
		s.logger.WithField("element_id", req.ID).WithField("error", err.Error()).Error("Failed to delete element")
		return err
	}
	s.invalidate(req.ID)
	return nil
}

// ResolveStyle computes the effective style of an element for one device.
// Concurrent misses for the same element and device share a single load.
func (s *ElementStyleService) ResolveStyle(ctx context.Context, req *domain.ResolveStyleRequest) (*domain.ResolvedStyle, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "ElementStyleService", "ResolveStyle")
	defer span.End()

	d, err := req.Validate(s.breakpoints)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	tracing.AddAttribute(ctx, "device", d)

	start := time.Now()
	loaded := false
	resolved, err := s.cache.GetOrSet(s.cacheKey(req.StoreID, req.ElementID, d), s.cacheTTL, func() (*domain.ResolvedStyle, error) {
		loaded = true
		element, err := s.loadElement(ctx, req.StoreID, req.ElementID)
		if err != nil {
			return nil, err
		}
		return ResolveElement(element, d), nil
	})
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, err
	}

	if loaded {
		tracing.RecordResolveCacheMiss(ctx, d.String())
	} else {
		tracing.RecordResolveCacheHit(ctx, d.String())
	}
	tracing.AddAttribute(ctx, "cache_hit", !loaded)
	tracing.RecordResolveLatency(ctx, d.String(), time.Since(start))
	return resolved, nil
}

// ResolveElement flattens an element's style document for one device: the
// top-level properties, each sub-group of its type, and the effective
// margin and padding boxes.
func ResolveElement(element *domain.Element, d styleset.Device) *domain.ResolvedStyle {
	resolved := &domain.ResolvedStyle{
		ElementID:  element.ID,
		Device:     d,
		Properties: styleset.ResolveAll(element.Styles, d),
		Margin:     styleset.EffectiveSpacing(element.Styles, styleset.SpacingMargin, d),
		Padding:    styleset.EffectiveSpacing(element.Styles, styleset.SpacingPadding, d),
	}
	if groups := domain.ElementGroups(element.Type); len(groups) > 0 {
		resolved.Groups = make(map[string]styleset.Properties, len(groups))
		for _, name := range groups {
			resolved.Groups[name] = styleset.ResolveGroup(element.Styles, d, name)
		}
	}
	return resolved
}

// GetProperty reads one property with the device fallback chain. When
// nothing is set the element type's default is returned.
func (s *ElementStyleService) GetProperty(ctx context.Context, req *domain.GetPropertyRequest) (*domain.PropertyValue, error) {
	d, p, err := req.Validate()
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	element, err := s.loadElement(ctx, req.StoreID, req.ElementID)
	if err != nil {
		return nil, err
	}
	if err := element.Type.CheckPath(p); err != nil {
		return nil, err
	}

	return &domain.PropertyValue{
		ElementID: element.ID,
		Device:    d,
		Path:      p.String(),
		Value:     styleset.Resolve(element.Styles, d, p, domain.DefaultStyleValue(element.Type, p)),
	}, nil
}

func (s *ElementStyleService) SetProperty(ctx context.Context, req *domain.SetPropertyRequest) (*domain.Element, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "ElementStyleService", "SetProperty")
	defer span.End()

	d, p, err := req.Validate()
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	element, err := s.writeStyles(ctx, req.StoreID, req.ElementID, opSetProperty, p, func(styles *styleset.StyleSet) *styleset.StyleSet {
		return styleset.Mutate(styles, d, p, req.Value)
	})
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, err
	}
	tracing.RecordStyleWrite(ctx, d.String(), opSetProperty)
	return element, nil
}

func (s *ElementStyleService) UnsetProperty(ctx context.Context, req *domain.UnsetPropertyRequest) (*domain.Element, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "ElementStyleService", "UnsetProperty")
	defer span.End()

	d, p, err := req.Validate()
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	element, err := s.writeStyles(ctx, req.StoreID, req.ElementID, opUnsetProperty, p, func(styles *styleset.StyleSet) *styleset.StyleSet {
		return styleset.Unset(styles, d, p)
	})
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, err
	}
	tracing.RecordStyleWrite(ctx, d.String(), opUnsetProperty)
	return element, nil
}

// GetSpacing reads the device-aware spacing box the editor shows
func (s *ElementStyleService) GetSpacing(ctx context.Context, req *domain.GetSpacingRequest) (*domain.SpacingValue, error) {
	kind, d, err := req.Validate()
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	element, err := s.loadElement(ctx, req.StoreID, req.ElementID)
	if err != nil {
		return nil, err
	}

	box := styleset.GetSpacing(element.Styles, kind, d)
	return &domain.SpacingValue{
		ElementID: element.ID,
		Device:    d,
		Kind:      kind,
		Box:       box,
		CSS:       box.CSS(),
	}, nil
}

func (s *ElementStyleService) SetSpacing(ctx context.Context, req *domain.SetSpacingRequest) (*domain.Element, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "ElementStyleService", "SetSpacing")
	defer span.End()

	target, err := req.Validate()
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	element, err := s.writeStyles(ctx, req.StoreID, req.ElementID, opSetSpacing, styleset.PropertyPath{}, func(styles *styleset.StyleSet) *styleset.StyleSet {
		return styleset.SetSpacing(styles, target.Kind, target.Device, target.Side, req.Px)
	})
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, err
	}
	tracing.RecordStyleWrite(ctx, target.Device.String(), opSetSpacing)
	return element, nil
}

// writeStyles applies edit to the stored document and saves it, starting
// over from a fresh read when another writer saved in between.
func (s *ElementStyleService) writeStyles(
	ctx context.Context,
	storeID, elementID string,
	operation string,
	path styleset.PropertyPath,
	edit func(*styleset.StyleSet) *styleset.StyleSet,
) (*domain.Element, error) {
	for attempt := 1; ; attempt++ {
		element, err := s.loadElement(ctx, storeID, elementID)
		if err != nil {
			return nil, err
		}
		if err := element.Type.CheckPath(path); err != nil {
			return nil, err
		}

		previous := element.UpdatedAt
		element.Styles = edit(element.Styles)

		err = s.repo.UpdateStyles(ctx, element, previous)
		if err == nil {
			s.invalidate(elementID)
			return element, nil
		}
		if errors.Is(err, domain.ErrStyleConflict) {
			tracing.RecordStyleWriteConflict(ctx, operation)
		}
		if !errors.Is(err, domain.ErrStyleConflict) || attempt >= maxWriteAttempts {
			s.logger.WithField("element_id", elementID).WithField("attempt", attempt).WithField("error", err.Error()).Error("Failed to update element styles")
			return nil, err
		}
		s.logger.WithField("element_id", elementID).WithField("attempt", attempt).Debug("Element styles changed concurrently, retrying")
	}
}

func (s *ElementStyleService) loadElement(ctx context.Context, storeID, id string) (*domain.Element, error) {
	element, err := s.repo.GetElement(ctx, storeID, id)
	if err != nil {
		var notFound *domain.ErrNotFound
		if !errors.As(err, &notFound) {
			s.logger.WithField("element_id", id).WithField("error", err.Error()).Error("Failed to get element")
		}
		return nil, err
	}
	if element.Styles == nil {
		element.Styles = styleset.New()
	}
	return element, nil
}

// cacheKey starts with elementKeyPrefix so invalidate can drop every store,
// generation and device variant with one prefix. IDs are length-prefixed
// since they may themselves contain ':'.
func (s *ElementStyleService) cacheKey(storeID, elementID string, d styleset.Device) string {
	s.mu.Lock()
	gen := s.generations[elementID]
	s.mu.Unlock()
	return fmt.Sprintf("%s%d:%s:%d:%s", elementKeyPrefix(elementID), len(storeID), storeID, gen, d)
}

func elementKeyPrefix(elementID string) string {
	return fmt.Sprintf("element:%d:%s:", len(elementID), elementID)
}

func (s *ElementStyleService) invalidate(elementID string) {
	s.mu.Lock()
	s.generations[elementID]++
	s.mu.Unlock()
	s.cache.DeletePrefix(elementKeyPrefix(elementID))
}
