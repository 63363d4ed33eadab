package http

import (
	"net/http"

	"github.com/Notifuse/sitebuilder/internal/domain"
	"github.com/Notifuse/sitebuilder/pkg/logger"
)

// PageHandler handles HTTP requests for store pages
type PageHandler struct {
	service domain.PageService
	logger  logger.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(service domain.PageService, logger logger.Logger) *PageHandler {
	return &PageHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the page HTTP endpoints
func (h *PageHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/pages.create", h.HandleCreate)
	mux.HandleFunc("/api/pages.get", h.HandleGet)
	mux.HandleFunc("/api/pages.list", h.HandleList)
}

func (h *PageHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	store, ok := storeID(w, r)
	if !ok {
		return
	}

	var req domain.CreatePageRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}
	req.StoreID = store

	page, err := h.service.CreatePage(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to create page")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"page": page,
	})
}

func (h *PageHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.GetPageRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.service.GetPage(r.Context(), req.StoreID, req.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get page")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"page": page,
	})
}

func (h *PageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.ListPagesRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.service.ListPages(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list pages")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
