package http

import (
	"net/http"

	"github.com/Notifuse/sitebuilder/internal/domain"
	"github.com/Notifuse/sitebuilder/pkg/logger"
)

// ElementStyleHandler exposes style resolution and editing.
// Reads are GET with query parameters; writes are POST with a JSON body.
type ElementStyleHandler struct {
	service domain.ElementStyleService
	logger  logger.Logger
}

func NewElementStyleHandler(service domain.ElementStyleService, logger logger.Logger) *ElementStyleHandler {
	return &ElementStyleHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ElementStyleHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/elementStyles.resolve", h.HandleResolve)
	mux.HandleFunc("/api/elementStyles.property", h.HandleGetProperty)
	mux.HandleFunc("/api/elementStyles.setProperty", h.HandleSetProperty)
	mux.HandleFunc("/api/elementStyles.unsetProperty", h.HandleUnsetProperty)
	mux.HandleFunc("/api/elementStyles.spacing", h.HandleGetSpacing)
	mux.HandleFunc("/api/elementStyles.setSpacing", h.HandleSetSpacing)
}

func (h *ElementStyleHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.ResolveStyleRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resolved, err := h.service.ResolveStyle(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to resolve style")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"style": resolved,
	})
}

func (h *ElementStyleHandler) HandleGetProperty(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.GetPropertyRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	value, err := h.service.GetProperty(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get property")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"property": value,
	})
}

func (h *ElementStyleHandler) HandleSetProperty(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	store, ok := storeID(w, r)
	if !ok {
		return
	}

	var req domain.SetPropertyRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}
	req.StoreID = store

	element, err := h.service.SetProperty(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to set property")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"element": element,
	})
}

func (h *ElementStyleHandler) HandleUnsetProperty(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	store, ok := storeID(w, r)
	if !ok {
		return
	}

	var req domain.UnsetPropertyRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}
	req.StoreID = store

	element, err := h.service.UnsetProperty(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to unset property")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"element": element,
	})
}

func (h *ElementStyleHandler) HandleGetSpacing(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.GetSpacingRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	spacing, err := h.service.GetSpacing(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get spacing")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"spacing": spacing,
	})
}

func (h *ElementStyleHandler) HandleSetSpacing(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	store, ok := storeID(w, r)
	if !ok {
		return
	}

	var req domain.SetSpacingRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}
	req.StoreID = store

	element, err := h.service.SetSpacing(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to set spacing")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"element": element,
	})
}
