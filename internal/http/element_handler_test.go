package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Notifuse/sitebuilder/internal/domain"
	"github.com/Notifuse/sitebuilder/internal/domain/mocks"
	http_handler "github.com/Notifuse/sitebuilder/internal/http"
	"github.com/Notifuse/sitebuilder/pkg/styleset"
)

func setupElementHandlers(t *testing.T) (*http.ServeMux, *mocks.MockElementStyleService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockElementStyleService(ctrl)
	mockLogger := newQuietLogger(ctrl)

	mux := http.NewServeMux()
	http_handler.NewElementHandler(mockService, mockLogger).RegisterRoutes(mux)
	http_handler.NewElementStyleHandler(mockService, mockLogger).RegisterRoutes(mux)
	return mux, mockService
}

func TestElementHandler_HandleCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mux, mockService := setupElementHandlers(t)

		mockService.EXPECT().
			CreateElement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.CreateElementRequest) (*domain.Element, error) {
				assert.Equal(t, "store-1", req.StoreID)
				assert.Equal(t, domain.ElementTypeAccordion, req.Type)
				assert.JSONEq(t, `{"fontSize":"16px"}`, string(req.Styles))
				return &domain.Element{ID: "el-1", Type: req.Type, Styles: styleset.New()}, nil
			})

		body := `{"page_id":"page-1","type":"accordion","styles":{"fontSize":"16px"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/elements.create?store_id=store-1", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"styles":{}`)
	})

	t.Run("Validation error", func(t *testing.T) {
		mux, mockService := setupElementHandlers(t)
		mockService.EXPECT().CreateElement(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewValidationError("invalid element type: carousel"))

		req := httptest.NewRequest(http.MethodPost, "/api/elements.create?store_id=store-1", bytes.NewBufferString(`{"page_id":"p","type":"carousel"}`))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "carousel")
	})
}

func TestElementHandler_HandleGetAndList(t *testing.T) {
	mux, mockService := setupElementHandlers(t)

	mockService.EXPECT().GetElement(gomock.Any(), "store-1", "el-1").Return(&domain.Element{ID: "el-1"}, nil)
	mockService.EXPECT().
		ListElements(gomock.Any(), &domain.ListElementsRequest{StoreID: "store-1", PageID: "page-1"}).
		Return([]*domain.Element{{ID: "el-1"}, {ID: "el-2"}}, nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/elements.get?store_id=store-1&id=el-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/elements.list?store_id=store-1&page_id=page-1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Elements []domain.Element `json:"elements"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Elements, 2)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/elements.list?store_id=store-1", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestElementHandler_HandleDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mux, mockService := setupElementHandlers(t)
		mockService.EXPECT().DeleteElement(gomock.Any(), &domain.DeleteElementRequest{StoreID: "store-1", ID: "el-1"}).Return(nil)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/elements.delete?store_id=store-1", bytes.NewBufferString(`{"id":"el-1"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	t.Run("Not found", func(t *testing.T) {
		mux, mockService := setupElementHandlers(t)
		mockService.EXPECT().DeleteElement(gomock.Any(), gomock.Any()).Return(&domain.ErrNotFound{Entity: "element", ID: "el-1"})

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/elements.delete?store_id=store-1", bytes.NewBufferString(`{"id":"el-1"}`)))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
