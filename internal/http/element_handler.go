package http

import (
	"net/http"

	"github.com/Notifuse/sitebuilder/internal/domain"
	"github.com/Notifuse/sitebuilder/pkg/logger"
)

// ElementHandler handles HTTP requests for page elements
type ElementHandler struct {
	service domain.ElementStyleService
	logger  logger.Logger
}

func NewElementHandler(service domain.ElementStyleService, logger logger.Logger) *ElementHandler {
	return &ElementHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the element HTTP endpoints
func (h *ElementHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/elements.create", h.HandleCreate)
	mux.HandleFunc("/api/elements.get", h.HandleGet)
	mux.HandleFunc("/api/elements.list", h.HandleList)
	mux.HandleFunc("/api/elements.delete", h.HandleDelete)
}

func (h *ElementHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	store, ok := storeID(w, r)
	if !ok {
		return
	}

	var req domain.CreateElementRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}
	req.StoreID = store

	element, err := h.service.CreateElement(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to create element")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"element": element,
	})
}

func (h *ElementHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.GetElementRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	element, err := h.service.GetElement(r.Context(), req.StoreID, req.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get element")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"element": element,
	})
}

func (h *ElementHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.ListElementsRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	elements, err := h.service.ListElements(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list elements")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"elements": elements,
	})
}

func (h *ElementHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	store, ok := storeID(w, r)
	if !ok {
		return
	}

	var req domain.DeleteElementRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}
	req.StoreID = store

	if err := h.service.DeleteElement(r.Context(), &req); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete element")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
