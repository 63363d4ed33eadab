package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/asaskevich/govalidator"

	"github.com/Notifuse/sitebuilder/pkg/styleset"
)

//go:generate mockgen -destination mocks/mock_element_repository.go -package mocks github.com/Notifuse/sitebuilder/internal/domain ElementRepository
//go:generate mockgen -destination mocks/mock_element_style_service.go -package mocks github.com/Notifuse/sitebuilder/internal/domain ElementStyleService

// ElementType identifies a page-builder element kind
type ElementType string

const (
	ElementTypeButton         ElementType = "button"
	ElementTypeAccordion      ElementType = "accordion"
	ElementTypeFAQ            ElementType = "faq"
	ElementTypeTabs           ElementType = "tabs"
	ElementTypeForm           ElementType = "form"
	ElementTypeWeeklyFeatured ElementType = "weeklyFeatured"
	ElementTypeText           ElementType = "text"
	ElementTypeImage          ElementType = "image"
)

var elementGroups = map[ElementType][]string{
	ElementTypeAccordion:      {"titleStyles", "descriptionStyles"},
	ElementTypeFAQ:            {"questionStyles", "answerStyles"},
	ElementTypeTabs:           {"tabListStyles", "tabStyles", "panelStyles"},
	ElementTypeWeeklyFeatured: {"titleStyles", "cardStyles"},
	ElementTypeForm:           {"labelStyles", "inputStyles", "buttonStyles"},
}

func (t ElementType) IsValid() bool {
	switch t {
	case ElementTypeButton, ElementTypeAccordion, ElementTypeFAQ, ElementTypeTabs,
		ElementTypeForm, ElementTypeWeeklyFeatured, ElementTypeText, ElementTypeImage:
		return true
	}
	return false
}

// ElementGroups lists the style sub-groups an element type uses
func ElementGroups(t ElementType) []string {
	return slices.Clone(elementGroups[t])
}

// HasGroup reports whether name is a sub-group of t
func (t ElementType) HasGroup(name string) bool {
	return slices.Contains(elementGroups[t], name)
}

// CheckPath rejects paths that walk into sub-groups the element type does not have.
// Only the outermost group is checked; nested groups are free-form.
func (t ElementType) CheckPath(p styleset.PropertyPath) error {
	if !p.IsGroup() {
		return nil
	}
	if !t.HasGroup(p.Groups[0]) {
		return NewValidationError(fmt.Sprintf("%s elements have no style group %q", t, p.Groups[0]))
	}
	return nil
}

var baseDefaults = map[string]string{
	"fontSize":        "16px",
	"fontWeight":      "400",
	"lineHeight":      "1.5",
	"color":           "#000000",
	"backgroundColor": "transparent",
	"textAlign":       "left",
	"borderRadius":    "0px",
	"borderWidth":     "0px",
	"borderColor":     "transparent",
	"width":           "auto",
}

var typeDefaults = map[ElementType]map[string]string{
	ElementTypeButton: {
		"backgroundColor": "#3b82f6",
		"color":           "#ffffff",
		"borderRadius":    "6px",
		"textAlign":       "center",
		"fontWeight":      "500",
	},
	ElementTypeImage: {
		"width":     "100%",
		"objectFit": "cover",
	},
}

var groupDefaults = map[string]map[string]string{
	"titleStyles":    {"fontWeight": "600"},
	"questionStyles": {"fontWeight": "600"},
	"tabStyles":      {"color": "#374151"},
	"cardStyles":     {"backgroundColor": "#ffffff", "borderRadius": "8px"},
	"inputStyles":    {"borderWidth": "1px", "borderColor": "#d1d5db", "borderRadius": "4px"},
	"buttonStyles":   {"backgroundColor": "#3b82f6", "color": "#ffffff"},
	"labelStyles":    {"fontSize": "14px"},
}

// DefaultStyleValue is the value an editor panel shows when nothing is set.
// Unknown properties have no default (zero Value).
func DefaultStyleValue(t ElementType, p styleset.PropertyPath) styleset.Value {
	if p.IsGroup() {
		if v, ok := groupDefaults[p.Groups[len(p.Groups)-1]][p.Property]; ok {
			return styleset.String(v)
		}
	} else if v, ok := typeDefaults[t][p.Property]; ok {
		return styleset.String(v)
	}
	if v, ok := baseDefaults[p.Property]; ok {
		return styleset.String(v)
	}
	return styleset.Value{}
}

// Element is one page-builder element with its style document
type Element struct {
	ID        string             `json:"id"`
	StoreID   string             `json:"store_id"`
	PageID    string             `json:"page_id"`
	Type      ElementType        `json:"type"`
	Position  int                `json:"position"`
	Styles    *styleset.StyleSet `json:"styles"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ResolvedStyle is the effective style of an element for one device
type ResolvedStyle struct {
	ElementID  string                         `json:"element_id"`
	Device     styleset.Device                `json:"device"`
	Properties styleset.Properties            `json:"properties"`
	Groups     map[string]styleset.Properties `json:"groups,omitempty"`
	Margin     styleset.SpacingBox            `json:"margin"`
	Padding    styleset.SpacingBox            `json:"padding"`
}

// PropertyValue is a single resolved property
type PropertyValue struct {
	ElementID string          `json:"element_id"`
	Device    styleset.Device `json:"device"`
	Path      string          `json:"path"`
	Value     styleset.Value  `json:"value"`
}

// SpacingValue is a resolved spacing box
type SpacingValue struct {
	ElementID string               `json:"element_id"`
	Device    styleset.Device      `json:"device"`
	Kind      styleset.SpacingKind `json:"kind"`
	Box       styleset.SpacingBox  `json:"box"`
	CSS       string               `json:"css"`
}

type CreateElementRequest struct {
	StoreID  string          `json:"store_id" valid:"required"`
	PageID   string          `json:"page_id" valid:"required"`
	Type     ElementType     `json:"type" valid:"required"`
	Position int             `json:"position"`
	Styles   json.RawMessage `json:"styles,omitempty"`
}

// Validate checks the request and decodes the initial style document
func (r *CreateElementRequest) Validate() (*styleset.StyleSet, error) {
	if _, err := govalidator.ValidateStruct(r); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	if !r.Type.IsValid() {
		return nil, fmt.Errorf("invalid element type: %s", r.Type)
	}
	if r.Position < 0 {
		return nil, fmt.Errorf("position must not be negative")
	}
	styles, err := styleset.Decode(r.Styles)
	if err != nil {
		return nil, fmt.Errorf("invalid styles: %w", err)
	}
	return styles, nil
}

type GetElementRequest struct {
	StoreID string `json:"store_id"`
	ID      string `json:"id"`
}

// FromURLParams parses URL query parameters into the request
func (r *GetElementRequest) FromURLParams(values url.Values) error {
	r.StoreID = values.Get("store_id")
	r.ID = values.Get("id")
	return requireIDs(r.StoreID, r.ID)
}

type ListElementsRequest struct {
	StoreID string `json:"store_id"`
	PageID  string `json:"page_id"`
}

// FromURLParams parses URL query parameters into the request
func (r *ListElementsRequest) FromURLParams(values url.Values) error {
	r.StoreID = values.Get("store_id")
	r.PageID = values.Get("page_id")
	if r.StoreID == "" {
		return fmt.Errorf("store_id is required")
	}
	if r.PageID == "" {
		return fmt.Errorf("page_id is required")
	}
	return nil
}

type DeleteElementRequest struct {
	StoreID string `json:"store_id"`
	ID      string `json:"id"`
}

func (r *DeleteElementRequest) Validate() error {
	return requireIDs(r.StoreID, r.ID)
}

func requireIDs(storeID, id string) error {
	if storeID == "" {
		return fmt.Errorf("store_id is required")
	}
	if id == "" {
		return fmt.Errorf("id is required")
	}
	return nil
}

// ResolveStyleRequest asks for an element's effective style, either for an
// explicit device or for a viewport width mapped through the breakpoints.
type ResolveStyleRequest struct {
	StoreID   string  `json:"store_id"`
	ElementID string  `json:"element_id"`
	Device    string  `json:"device,omitempty"`
	Width     float64 `json:"width,omitempty"`
}

// FromURLParams parses URL query parameters into the request
func (r *ResolveStyleRequest) FromURLParams(values url.Values) error {
	r.StoreID = values.Get("store_id")
	r.ElementID = values.Get("element_id")
	r.Device = values.Get("device")
	if w := values.Get("width"); w != "" {
		width, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return fmt.Errorf("invalid width: %w", err)
		}
		r.Width = width
	}
	_, err := r.Validate(styleset.DefaultBreakpoints())
	return err
}

// Validate returns the device to resolve for
func (r *ResolveStyleRequest) Validate(bp styleset.Breakpoints) (styleset.Device, error) {
	if err := requireElement(r.StoreID, r.ElementID); err != nil {
		return "", err
	}
	if r.Device != "" {
		return styleset.ParseDevice(r.Device)
	}
	if r.Width > 0 {
		return bp.DeviceForWidth(r.Width), nil
	}
	if r.Width < 0 {
		return "", fmt.Errorf("width must be positive")
	}
	return "", fmt.Errorf("device or width is required")
}

func requireElement(storeID, elementID string) error {
	if storeID == "" {
		return fmt.Errorf("store_id is required")
	}
	if elementID == "" {
		return fmt.Errorf("element_id is required")
	}
	return nil
}

// parseTarget validates the common element/device/path triple
func parseTarget(storeID, elementID, device, path string) (styleset.Device, styleset.PropertyPath, error) {
	if err := requireElement(storeID, elementID); err != nil {
		return "", styleset.PropertyPath{}, err
	}
	d, err := styleset.ParseDevice(device)
	if err != nil {
		return "", styleset.PropertyPath{}, err
	}
	p, err := styleset.ParsePath(path)
	if err != nil {
		return "", styleset.PropertyPath{}, err
	}
	return d, p, nil
}

type GetPropertyRequest struct {
	StoreID   string `json:"store_id"`
	ElementID string `json:"element_id"`
	Device    string `json:"device"`
	Path      string `json:"path"`
}

// FromURLParams parses URL query parameters into the request
func (r *GetPropertyRequest) FromURLParams(values url.Values) error {
	r.StoreID = values.Get("store_id")
	r.ElementID = values.Get("element_id")
	r.Device = values.Get("device")
	r.Path = values.Get("path")
	_, _, err := r.Validate()
	return err
}

func (r *GetPropertyRequest) Validate() (styleset.Device, styleset.PropertyPath, error) {
	return parseTarget(r.StoreID, r.ElementID, r.Device, r.Path)
}

type SetPropertyRequest struct {
	StoreID   string         `json:"store_id"`
	ElementID string         `json:"element_id"`
	Device    string         `json:"device"`
	Path      string         `json:"path"`
	Value     styleset.Value `json:"value"`
}

// Validate only accepts string and number values; use UnsetPropertyRequest to clear
func (r *SetPropertyRequest) Validate() (styleset.Device, styleset.PropertyPath, error) {
	d, p, err := parseTarget(r.StoreID, r.ElementID, r.Device, r.Path)
	if err != nil {
		return "", styleset.PropertyPath{}, err
	}
	switch r.Value.Kind() {
	case styleset.KindString, styleset.KindNumber:
	default:
		return "", styleset.PropertyPath{}, fmt.Errorf("value must be a string or a number")
	}
	return d, p, nil
}

type UnsetPropertyRequest struct {
	StoreID   string `json:"store_id"`
	ElementID string `json:"element_id"`
	Device    string `json:"device"`
	Path      string `json:"path"`
}

func (r *UnsetPropertyRequest) Validate() (styleset.Device, styleset.PropertyPath, error) {
	return parseTarget(r.StoreID, r.ElementID, r.Device, r.Path)
}

type GetSpacingRequest struct {
	StoreID   string `json:"store_id"`
	ElementID string `json:"element_id"`
	Kind      string `json:"kind"`
	Device    string `json:"device"`
}

// FromURLParams parses URL query parameters into the request
func (r *GetSpacingRequest) FromURLParams(values url.Values) error {
	r.StoreID = values.Get("store_id")
	r.ElementID = values.Get("element_id")
	r.Kind = values.Get("kind")
	r.Device = values.Get("device")
	_, _, err := r.Validate()
	return err
}

func (r *GetSpacingRequest) Validate() (styleset.SpacingKind, styleset.Device, error) {
	if err := requireElement(r.StoreID, r.ElementID); err != nil {
		return "", "", err
	}
	kind, err := styleset.ParseSpacingKind(r.Kind)
	if err != nil {
		return "", "", err
	}
	d, err := styleset.ParseDevice(r.Device)
	if err != nil {
		return "", "", err
	}
	return kind, d, nil
}

// SetSpacingRequest writes one spacing cell. Px outside [0, 200] is clamped, not rejected.
type SetSpacingRequest struct {
	StoreID   string `json:"store_id"`
	ElementID string `json:"element_id"`
	Kind      string `json:"kind"`
	Device    string `json:"device"`
	Side      string `json:"side"`
	Px        int    `json:"px"`
}

type SpacingTarget struct {
	Kind   styleset.SpacingKind
	Device styleset.Device
	Side   styleset.Side
}

func (r *SetSpacingRequest) Validate() (SpacingTarget, error) {
	get := GetSpacingRequest{StoreID: r.StoreID, ElementID: r.ElementID, Kind: r.Kind, Device: r.Device}
	kind, d, err := get.Validate()
	if err != nil {
		return SpacingTarget{}, err
	}
	side, err := styleset.ParseSide(r.Side)
	if err != nil {
		return SpacingTarget{}, err
	}
	return SpacingTarget{Kind: kind, Device: d, Side: side}, nil
}

// ElementRepository defines the data access layer for elements
type ElementRepository interface {
	CreateElement(ctx context.Context, element *Element) error
	GetElement(ctx context.Context, storeID, id string) (*Element, error)
	ListElements(ctx context.Context, storeID, pageID string) ([]*Element, error)
	// UpdateStyles stores element.Styles if the row's updated_at still equals
	// previous, and sets element.UpdatedAt. Otherwise it returns ErrStyleConflict.
	UpdateStyles(ctx context.Context, element *Element, previous time.Time) error
	DeleteElement(ctx context.Context, storeID, id string) error
}

// ElementStyleService is the only way the API reads and writes style state
type ElementStyleService interface {
	CreateElement(ctx context.Context, req *CreateElementRequest) (*Element, error)
	GetElement(ctx context.Context, storeID, id string) (*Element, error)
	ListElements(ctx context.Context, req *ListElementsRequest) ([]*Element, error)
	DeleteElement(ctx context.Context, req *DeleteElementRequest) error

	ResolveStyle(ctx context.Context, req *ResolveStyleRequest) (*ResolvedStyle, error)
	GetProperty(ctx context.Context, req *GetPropertyRequest) (*PropertyValue, error)
	SetProperty(ctx context.Context, req *SetPropertyRequest) (*Element, error)
	UnsetProperty(ctx context.Context, req *UnsetPropertyRequest) (*Element, error)
	GetSpacing(ctx context.Context, req *GetSpacingRequest) (*SpacingValue, error)
	SetSpacing(ctx context.Context, req *SetSpacingRequest) (*Element, error)
}
